package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

type EmailService struct {
	client    *resend.Client
	fromEmail string
	appURL    string
	appName   string
	isDev     bool
}

func NewEmailService(apiKey, fromEmail, appURL, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		appURL:    appURL,
		appName:   appName,
		isDev:     isDev,
	}
}

func (s *EmailService) SendPasswordResetEmail(email, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.appURL, token)
	subject := fmt.Sprintf("Reset your %s password", s.appName)
	body := fmt.Sprintf(
		"We received a request to reset your %s password.\n\n"+
			"Open this link to choose a new one:\n\n%s\n\n"+
			"The link expires in one hour. If you didn't ask for this, you can ignore this email.\n",
		s.appName, resetURL)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "password_reset", "to", email, "subject", subject, "url", resetURL)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{email},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(context.Background(), params)
	if err == nil {
		slog.Info("email sent", "type", "password_reset", "to", email)
	}
	return err
}
