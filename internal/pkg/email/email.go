package email

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
	"time"

	"github.com/shiftpulse/timeclock-backend-go/internal/config"
)

const maxRetries = 3

// Service sends the late-arrival alert to the configured recipients.
type Service interface {
	SendLateAlert(date string, message string, lateNames []string) error
}

type emailServiceImpl struct {
	cfg config.SMTPConfig
}

// NewEmailService creates a new email service instance. With no SMTP host
// configured the service logs and skips delivery, so alerts are still marked
// sent without any transport.
func NewEmailService(cfg config.SMTPConfig) Service {
	return &emailServiceImpl{cfg: cfg}
}

// SendLateAlert sends the daily late-arrival summary email.
func (s *emailServiceImpl) SendLateAlert(date string, message string, lateNames []string) error {
	subject := fmt.Sprintf("Late arrivals for %s", date)
	body := fmt.Sprintf("%s\r\n\r\nEmployees: %s\r\n", message, strings.Join(lateNames, ", "))
	return s.send(subject, body)
}

func (s *emailServiceImpl) send(subject, body string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "subject", subject)
		return nil
	}

	if len(s.cfg.Recipients) == 0 {
		slog.Warn("No alert recipients configured, skipping email send", "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s\r\n", from)
	headers += fmt.Sprintf("To: %s\r\n", strings.Join(s.cfg.Recipients, ", "))
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/plain; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	msg := []byte(headers + body)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, s.cfg.Recipients, msg)
		if err == nil {
			slog.Info("Email sent successfully", "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
