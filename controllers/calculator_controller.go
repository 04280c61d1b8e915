package controllers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mfghub/api-go/calc"
	"github.com/mfghub/api-go/config"
)

// CalculatorController serves the OEE and ROI lead-gen calculators: JSON
// results, downloadable PDF reports, and optionally reports persisted to
// object storage for sharing.
type CalculatorController struct {
	R2Client *s3.Client
	R2Config *config.R2Config
}

func NewCalculatorController(r2Client *s3.Client, r2Config *config.R2Config) *CalculatorController {
	return &CalculatorController{
		R2Client: r2Client,
		R2Config: r2Config,
	}
}

func (cc *CalculatorController) ComputeOEE(c *gin.Context) {
	var input calc.OEEInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateOEEInput(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: calc.ComputeOEE(input)})
}

func (cc *CalculatorController) OEEReport(c *gin.Context) {
	var input calc.OEEInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateOEEInput(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := calc.OEEReportPDF(input, calc.ComputeOEE(input))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	cc.deliverReport(c, "oee", data)
}

func (cc *CalculatorController) ComputeROI(c *gin.Context) {
	var input calc.ROIInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateROIInput(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: calc.ComputeROI(input)})
}

func (cc *CalculatorController) ROIReport(c *gin.Context) {
	var input calc.ROIInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateROIInput(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := calc.ROIReportPDF(input, calc.ComputeROI(input))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	cc.deliverReport(c, "roi", data)
}

// deliverReport either streams the PDF back or, with ?store=true, puts it
// on R2 and returns the public URL.
func (cc *CalculatorController) deliverReport(c *gin.Context, kind string, data []byte) {
	if c.Query("store") != "true" {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s-report.pdf", kind))
		c.Data(http.StatusOK, "application/pdf", data)
		return
	}

	key := fmt.Sprintf("reports/%s/%d_%s.pdf", kind, time.Now().Unix(), uuid.New().String())
	_, err := cc.R2Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(cc.R2Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store report"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: gin.H{
			"key": key,
			"url": fmt.Sprintf("%s/%s", cc.R2Config.PublicURL, key),
		},
		Message: "Report stored",
	})
}

func validateOEEInput(in calc.OEEInput) error {
	fields := map[string]float64{
		"plannedProductionTime": in.PlannedProductionTime,
		"plannedStops":          in.PlannedStops,
		"unplannedDowntime":     in.UnplannedDowntime,
		"idealCycleTime":        in.IdealCycleTime,
		"totalPartsProduced":    in.TotalPartsProduced,
		"defectiveParts":        in.DefectiveParts,
	}
	return requireNonNegative(fields)
}

func validateROIInput(in calc.ROIInput) error {
	fields := map[string]float64{
		"initialInvestment":    in.InitialInvestment,
		"currentAnnualCosts":   in.CurrentAnnualCosts,
		"laborSavings":         in.LaborSavings,
		"productivityGain":     in.ProductivityGain,
		"qualityImprovement":   in.QualityImprovement,
		"energySavings":        in.EnergySavings,
		"maintenanceReduction": in.MaintenanceReduction,
	}
	return requireNonNegative(fields)
}

func requireNonNegative(fields map[string]float64) error {
	for name, value := range fields {
		if value < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	return nil
}
