package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
	"gorm.io/gorm"

	"github.com/mfghub/api-go/config"
	"github.com/mfghub/api-go/models"
	"github.com/mfghub/api-go/utils"
)

// BillingController delegates paid-course payment to Stripe: it creates
// checkout sessions and completes pending enrollments from the signed
// webhook. No card data or payment state lives in this system beyond the
// enrollment status.
type BillingController struct {
	DB           *gorm.DB
	StripeConfig *config.StripeConfig
}

func NewBillingController(db *gorm.DB, stripeConfig *config.StripeConfig) *BillingController {
	stripe.Key = stripeConfig.SecretKey
	return &BillingController{
		DB:           db,
		StripeConfig: stripeConfig,
	}
}

// CreateCheckoutSession opens a Stripe checkout for a paid course and
// parks the enrollment in pending_payment until the webhook confirms it.
func (bc *BillingController) CreateCheckoutSession(c *gin.Context) {
	user := utils.GetUser(c)

	var course models.Course
	if err := bc.DB.Where("is_published = ?", true).First(&course, "slug = ?", c.Param("slug")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	if course.IsFree || course.PriceCents == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "This course does not require checkout"})
		return
	}

	var existing models.Enrollment
	if bc.DB.Where("user_id = ? AND course_id = ? AND status = ?", user.UserID, course.ID, models.EnrollmentActive).First(&existing).Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Already enrolled in this course"})
		return
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String("usd"),
					UnitAmount: stripe.Int64(course.PriceCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(course.Title),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(bc.StripeConfig.SuccessURL),
		CancelURL:         stripe.String(bc.StripeConfig.CancelURL),
		ClientReferenceID: stripe.String(strconv.FormatUint(uint64(user.UserID), 10)),
	}

	checkoutSession, err := session.New(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
		return
	}

	enrollment := models.Enrollment{
		UserID:          user.UserID,
		CourseID:        course.ID,
		Status:          models.EnrollmentPendingPayment,
		StripeSessionID: checkoutSession.ID,
	}
	if err := bc.DB.Where("user_id = ? AND course_id = ?", user.UserID, course.ID).
		Assign(models.Enrollment{Status: models.EnrollmentPendingPayment, StripeSessionID: checkoutSession.ID}).
		FirstOrCreate(&enrollment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record enrollment"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: gin.H{
			"checkout_url": checkoutSession.URL,
			"session_id":   checkoutSession.ID,
		},
	})
}

// StripeWebhook verifies the event signature and activates the matching
// enrollment on checkout completion. Unknown event types are acknowledged
// and ignored.
func (bc *BillingController) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read payload"})
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), bc.StripeConfig.WebhookSecret)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook signature"})
		return
	}

	if event.Type != "checkout.session.completed" {
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	var checkoutSession stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &checkoutSession); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event payload"})
		return
	}

	result := bc.DB.Model(&models.Enrollment{}).
		Where("stripe_session_id = ? AND status = ?", checkoutSession.ID, models.EnrollmentPendingPayment).
		Update("status", models.EnrollmentActive)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate enrollment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
