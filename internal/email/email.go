package email

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/telehealth-connect/patient-api/internal/config"
)

// Service sends plain-text mail.
type Service interface {
	Send(to, subject, body string) error
}

type smtpService struct {
	dialer *gomail.Dialer
	from   string
}

// NewService builds an SMTP mailer, or a no-op one when SMTP is disabled
// in config.
func NewService(cfg config.SMTPConfig) Service {
	if !cfg.Enabled {
		return noopService{}
	}
	return &smtpService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *smtpService) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

type noopService struct{}

func (noopService) Send(to, subject, body string) error {
	return nil
}
