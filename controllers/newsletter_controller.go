package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"gorm.io/gorm"

	"github.com/mfghub/api-go/config"
	"github.com/mfghub/api-go/models"
)

// NewsletterController manages the subscriber list. Delivery is delegated
// to Resend; a failed welcome email does not undo the subscription.
type NewsletterController struct {
	DB           *gorm.DB
	Mailer       *resend.Client
	MailerConfig *config.MailerConfig
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func NewNewsletterController(db *gorm.DB, mailerConfig *config.MailerConfig) *NewsletterController {
	return &NewsletterController{
		DB:           db,
		Mailer:       resend.NewClient(mailerConfig.APIKey),
		MailerConfig: mailerConfig,
	}
}

// Subscribe adds an email to the list, reactivating it if it unsubscribed
// earlier. Subscribing twice is idempotent.
func (nc *NewsletterController) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var subscriber models.Subscriber
	err := nc.DB.Where("email = ?", req.Email).First(&subscriber).Error
	switch {
	case err == nil:
		if subscriber.Status == models.SubscriberActive {
			c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Already subscribed"})
			return
		}
		if err := nc.DB.Model(&subscriber).Update("status", models.SubscriberActive).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
			return
		}
	default:
		subscriber = models.Subscriber{
			Email:            req.Email,
			Status:           models.SubscriberActive,
			UnsubscribeToken: uuid.New().String(),
		}
		if err := nc.DB.Create(&subscriber).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
			return
		}
	}

	nc.sendWelcome(&subscriber)

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Message: "Subscribed"})
}

// Unsubscribe is a tokened GET so the link works straight from an email.
func (nc *NewsletterController) Unsubscribe(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token is required"})
		return
	}

	result := nc.DB.Model(&models.Subscriber{}).
		Where("unsubscribe_token = ?", token).
		Update("status", models.SubscriberUnsubscribed)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unsubscribe"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown unsubscribe token"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Unsubscribed"})
}

// ListSubscribers is the admin view of the list.
func (nc *NewsletterController) ListSubscribers(c *gin.Context) {
	page, pageSize, offset := paginationParams(c)

	query := nc.DB.Model(&models.Subscriber{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var subscribers []models.Subscriber
	if err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&subscribers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching subscribers"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success:    true,
		Data:       subscribers,
		Pagination: paginationMeta(page, pageSize, total),
	})
}

func (nc *NewsletterController) sendWelcome(subscriber *models.Subscriber) {
	if nc.MailerConfig.APIKey == "" {
		return
	}

	unsubscribeURL := fmt.Sprintf("%s/api/newsletter/unsubscribe?token=%s", nc.MailerConfig.SiteURL, subscriber.UnsubscribeToken)
	_, err := nc.Mailer.Emails.Send(&resend.SendEmailRequest{
		From:    nc.MailerConfig.FromAddress,
		To:      []string{subscriber.Email},
		Subject: "Welcome to the newsletter",
		Html: fmt.Sprintf(
			"<p>Thanks for subscribing. You'll get new articles, course announcements and industry updates.</p><p><a href=%q>Unsubscribe</a></p>",
			unsubscribeURL),
	})
	if err != nil {
		log.Printf("Failed to send welcome email to %s: %v", subscriber.Email, err)
	}
}
