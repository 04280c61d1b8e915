package calc

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// OEEReportPDF renders the calculation summary as a one-page PDF.
func OEEReportPDF(in OEEInput, res OEEResult) ([]byte, error) {
	pdf := newReportPDF("OEE Calculation Report")

	addSection(pdf, "Inputs")
	addRow(pdf, "Planned production time", fmt.Sprintf("%.1f h", in.PlannedProductionTime))
	addRow(pdf, "Planned stops", fmt.Sprintf("%.0f min", in.PlannedStops))
	addRow(pdf, "Unplanned downtime", fmt.Sprintf("%.0f min", in.UnplannedDowntime))
	addRow(pdf, "Ideal cycle time", fmt.Sprintf("%.1f s/part", in.IdealCycleTime))
	addRow(pdf, "Total parts produced", fmt.Sprintf("%.0f", in.TotalPartsProduced))
	addRow(pdf, "Defective parts", fmt.Sprintf("%.0f", in.DefectiveParts))

	addSection(pdf, "Results")
	addRow(pdf, "Run time", fmt.Sprintf("%.1f min", res.RunTimeMinutes))
	addRow(pdf, "Availability", formatPercent(res.Availability))
	addRow(pdf, "Performance", formatPercent(res.Performance))
	addRow(pdf, "Quality", formatPercent(res.Quality))
	addRow(pdf, "OEE", formatPercent(res.OEE))
	addRow(pdf, "Benchmark", res.Benchmark)

	addSection(pdf, "Six Big Losses (minutes)")
	addRow(pdf, "Breakdowns", fmt.Sprintf("%.1f", res.Losses.Breakdowns))
	addRow(pdf, "Setup and adjustments", fmt.Sprintf("%.1f", res.Losses.Setup))
	addRow(pdf, "Minor stops", fmt.Sprintf("%.1f", res.Losses.MinorStops))
	addRow(pdf, "Speed loss", fmt.Sprintf("%.1f", res.Losses.SpeedLoss))
	addRow(pdf, "Defects", fmt.Sprintf("%.1f", res.Losses.Defects))
	addRow(pdf, "Startup rejects", fmt.Sprintf("%.1f", res.Losses.Startup))

	for _, w := range res.Warnings {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 6, "Warning: "+w, "", 1, "L", false, 0, "")
	}

	return outputPDF(pdf)
}

// ROIReportPDF renders the ROI estimate as a one-page PDF.
func ROIReportPDF(in ROIInput, res ROIResult) ([]byte, error) {
	pdf := newReportPDF("Automation ROI Report")

	addSection(pdf, "Inputs")
	addRow(pdf, "Initial investment", formatMoney(in.InitialInvestment))
	addRow(pdf, "Current annual costs", formatMoney(in.CurrentAnnualCosts))
	addRow(pdf, "Labor savings", formatMoney(in.LaborSavings))
	addRow(pdf, "Productivity gain", fmt.Sprintf("%.0f%%", in.ProductivityGain))
	addRow(pdf, "Quality improvement", fmt.Sprintf("%.0f%%", in.QualityImprovement))
	addRow(pdf, "Energy savings", fmt.Sprintf("%.0f%%", in.EnergySavings))
	addRow(pdf, "Maintenance reduction", fmt.Sprintf("%.0f%%", in.MaintenanceReduction))

	addSection(pdf, "Annual Savings")
	addRow(pdf, "Productivity", formatMoney(res.ProductivitySavings))
	addRow(pdf, "Quality", formatMoney(res.QualitySavings))
	addRow(pdf, "Energy", formatMoney(res.EnergySavings))
	addRow(pdf, "Maintenance", formatMoney(res.MaintenanceSavings))
	addRow(pdf, "Total annual savings", formatMoney(res.TotalAnnualSavings))
	addRow(pdf, "Payback period", fmt.Sprintf("%.1f months", res.PaybackMonths))

	addSection(pdf, "Five-Year Projection")
	for _, p := range res.Projection {
		addRow(pdf,
			fmt.Sprintf("Year %d", p.Year),
			fmt.Sprintf("%s cumulative, %s net, %.0f%% ROI",
				formatMoney(p.CumulativeSavings), formatMoney(p.NetPosition), p.ROIPercent))
	}

	return outputPDF(pdf)
}

func newReportPDF(title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 5, "Generated "+time.Now().Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	return pdf
}

func addSection(pdf *gofpdf.Fpdf, name string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, name, "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
}

func addRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(80, 7, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, value, "", 1, "R", false, 0, "")
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

func formatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func outputPDF(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
