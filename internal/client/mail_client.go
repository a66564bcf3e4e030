package client

import (
	"sync"

	"gopkg.in/gomail.v2"

	"agency-console-api/internal/config"
)

// MailSender delivers notification emails through the configured relay.
// All sends are best-effort from the caller's perspective: failures are
// returned so they can be logged and counted, never propagated to the
// end user.
type MailSender interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer is the gomail-backed MailSender. A single dialer is shared
// process-wide and reused across requests.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer creates a new SMTPMailer from SMTP config
func NewSMTPMailer(cfg *config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// Send delivers a single HTML email
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	return m.dialer.DialAndSend(msg)
}

// MockMailSender records sent mail for tests. Safe for concurrent use
// since notification sends run in their own goroutines.
type MockMailSender struct {
	SendFunc func(to, subject, htmlBody string) error

	mu   sync.Mutex
	sent []MockMail
}

// MockMail is one recorded send
type MockMail struct {
	To      string
	Subject string
	Body    string
}

// Send implements MailSender
func (m *MockMailSender) Send(to, subject, htmlBody string) error {
	if m.SendFunc != nil {
		if err := m.SendFunc(to, subject, htmlBody); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, MockMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

// Sent returns a copy of the recorded sends
func (m *MockMailSender) Sent() []MockMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockMail, len(m.sent))
	copy(out, m.sent)
	return out
}
