package email

import (
	"context"
	"fmt"
	"time"

	"github.com/ashworthrenovations/ashworth-api/pkg/logger"
	"github.com/ashworthrenovations/ashworth-api/pkg/metrics"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// Message represents an email to be sent.
type Message struct {
	To      string
	ToName  string
	Subject string
	Body    string // plain text body
	HTML    string // optional HTML body
}

// Sender defines the interface for sending emails.
// Implementations can be swapped (SendGrid, SES, SMTP) without changing callers.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SendGridSender sends emails via the SendGrid API.
type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

// SendGridConfig holds configuration for SendGrid.
type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// NewSendGridSender creates a new SendGrid email sender.
// Returns nil when no API key is configured.
func NewSendGridSender(cfg SendGridConfig) *SendGridSender {
	if cfg.APIKey == "" {
		return nil
	}
	if cfg.FromName == "" {
		cfg.FromName = "Ashworth Renovations"
	}
	return &SendGridSender{
		client:    sendgrid.NewSendClient(cfg.APIKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

// Send sends an email via SendGrid.
func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	start := time.Now()
	operation := "send"

	if s == nil || s.client == nil {
		return fmt.Errorf("email: sendgrid client not configured")
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)

	var message *mail.SGMailV3
	if msg.HTML != "" {
		message = mail.NewSingleEmail(from, msg.Subject, to, msg.Body, msg.HTML)
	} else {
		message = mail.NewSingleEmail(from, msg.Subject, to, msg.Body, msg.Body)
	}

	response, err := s.client.SendWithContext(ctx, message)
	duration := metrics.MeasureDuration(start)

	if err != nil {
		metrics.EmailRequestDuration.WithLabelValues(operation, "error").Observe(duration)
		metrics.EmailRequestTotal.WithLabelValues(operation, "error").Inc()
		logger.LogAPICall(ctx, "sendgrid", operation, "error", duration, zap.Error(err), zap.String("to", msg.To))
		return fmt.Errorf("email: sendgrid send failed: %w", err)
	}

	if response.StatusCode >= 400 {
		metrics.EmailRequestDuration.WithLabelValues(operation, "error").Observe(duration)
		metrics.EmailRequestTotal.WithLabelValues(operation, "error").Inc()
		logger.LogAPICall(ctx, "sendgrid", operation, "error", duration,
			zap.Int("status_code", response.StatusCode),
			zap.String("to", msg.To))
		return fmt.Errorf("email: sendgrid returned status %d", response.StatusCode)
	}

	metrics.EmailRequestDuration.WithLabelValues(operation, "success").Observe(duration)
	metrics.EmailRequestTotal.WithLabelValues(operation, "success").Inc()
	logger.LogAPICall(ctx, "sendgrid", operation, "success", duration,
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject))
	return nil
}

// StubSender logs instead of sending. Used in development when no API key is set.
type StubSender struct{}

// Send logs the email but doesn't actually send it.
func (s *StubSender) Send(ctx context.Context, msg Message) error {
	logger.Info("Stub email sender: would send email",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject))
	return nil
}
