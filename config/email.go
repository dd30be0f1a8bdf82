package config

import (
	"context"
	"fmt"
	"os"
	"sponsorship/domain"

	"gopkg.in/gomail.v2"
)

// GoMailer sends transactional mail through the configured SMTP relay.
type GoMailer struct {
	dialer *gomail.Dialer
	sender string
}

func NewGoMailer() (*GoMailer, error) {
	sender, err := getSender()
	if err != nil {
		return nil, err
	}

	dialer := gomail.NewDialer(
		getEnv("SMTP_HOST", "mail.smtp2go.com"),
		getEnvInt("SMTP_PORT", 2525),
		os.Getenv("SMTP_USERNAME"),
		os.Getenv("SMTP_PASSWORD"),
	)

	return &GoMailer{dialer: dialer, sender: sender}, nil
}

func (m *GoMailer) SendContactConfirmation(ctx context.Context, msg *domain.ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	goMailMessage := gomail.NewMessage()
	goMailMessage.SetHeader("From", m.sender)
	goMailMessage.SetHeader("To", msg.Email)
	goMailMessage.SetHeader("Subject", "Your message has been received")

	body := fmt.Sprintf(`Hello %s,

Your message has been received. We will get back to you soon!

Thanks,
%s
Management`, msg.Name, GetAppName())

	goMailMessage.SetBody("text/plain", body)

	return m.dialer.DialAndSend(goMailMessage)
}

func getSender() (string, error) {
	emailSender := os.Getenv("EMAIL_SENDER")
	if emailSender == "" {
		return "", fmt.Errorf("empty email sender")
	}
	return emailSender, nil
}

// LogMailer stands in when no SMTP sender is configured. It only records that a
// confirmation would have gone out.
type LogMailer struct{}

func (LogMailer) SendContactConfirmation(_ context.Context, msg *domain.ContactMessage) error {
	GetLogrusInstance().WithFields(map[string]interface{}{
		"contact_id": msg.ID,
		"to":         msg.Email,
	}).Warn("mail sender not configured, contact confirmation skipped")
	return nil
}
