package config

import (
	"os"
)

type MailerConfig struct {
	APIKey      string
	FromAddress string
	SiteURL     string
}

func GetMailerConfig() *MailerConfig {
	return &MailerConfig{
		APIKey:      os.Getenv("RESEND_API_KEY"),
		FromAddress: os.Getenv("NEWSLETTER_FROM_ADDRESS"),
		SiteURL:     os.Getenv("SITE_URL"),
	}
}
