package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"autoportal-backend/internal/domain"
	"autoportal-backend/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
	enabled   bool
}

func NewEmailService(apiKey, fromEmail, fromName string, enabled bool) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   enabled,
	}
}

func (s *emailService) send(ctx context.Context, to, toName, subject, plainText string) error {
	if !s.enabled {
		logger.Debug("email disabled, skipping", "to", to, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "send", err)
		return err
	}
	logger.ExternalServiceResult("sendgrid", "send", nil)
	return nil
}

func formatCents(cents int32) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

func (s *emailService) SendRequestSubmitted(ctx context.Context, adminEmail, requesterName, requestCode, title string) error {
	subject := fmt.Sprintf("New Service Request %s", requestCode)
	body := fmt.Sprintf("%s submitted a new service request.\n\nRequest: %s\nTitle: %s\n\nReview it in the admin dashboard.", requesterName, requestCode, title)
	return s.send(ctx, adminEmail, "Service Team", subject, body)
}

func (s *emailService) SendRequestStatusUpdate(ctx context.Context, email, name, requestCode string, status domain.RequestStatus, reason string) error {
	subject := fmt.Sprintf("Service Request %s Update", requestCode)
	body := fmt.Sprintf("Hello %s,\n\nYour service request %s is now: %s.", name, requestCode, status)
	if reason != "" {
		body += fmt.Sprintf("\n\nReason: %s", reason)
	}
	body += "\n\nBest regards,\nThe AutoPortal Team"
	return s.send(ctx, email, name, subject, body)
}

func (s *emailService) SendInvoiceIssued(ctx context.Context, email, name, requestCode string, amountCents int32, dueOn time.Time) error {
	subject := fmt.Sprintf("Invoice for Service Request %s", requestCode)
	body := fmt.Sprintf("Hello %s,\n\nAn invoice of %s has been issued for your service request %s.\nIt is due on %s.\n\nBest regards,\nThe AutoPortal Team",
		name, formatCents(amountCents), requestCode, dueOn.Format("2006-01-02"))
	return s.send(ctx, email, name, subject, body)
}

func (s *emailService) SendPaymentReceipt(ctx context.Context, email, name, paymentID string, amountCents int32) error {
	subject := fmt.Sprintf("Payment Received - %s", paymentID)
	body := fmt.Sprintf("Hello %s,\n\nWe received your payment of %s (invoice %s). Thank you.\n\nBest regards,\nThe AutoPortal Team",
		name, formatCents(amountCents), paymentID)
	return s.send(ctx, email, name, subject, body)
}

func (s *emailService) SendPaymentReminder(ctx context.Context, email, name, paymentID string, amountCents int32) error {
	subject := fmt.Sprintf("Payment Overdue - %s", paymentID)
	body := fmt.Sprintf("Hello %s,\n\nYour invoice %s of %s is overdue. Please settle it at your earliest convenience.\n\nBest regards,\nThe AutoPortal Team",
		name, paymentID, formatCents(amountCents))
	return s.send(ctx, email, name, subject, body)
}
