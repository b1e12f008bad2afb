package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"journal-api/internal/server/config"
)

// SMTPMailer delivers mail through an authenticated SMTP relay.
type SMTPMailer struct {
	addr      string
	auth      smtp.Auth
	fromName  string
	fromEmail string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		addr:      net.JoinHostPort(cfg.SMTPHost, cfg.SMTPPort),
		auth:      smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost),
		fromName:  cfg.FromName,
		fromEmail: cfg.FromEmail,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := strings.Join([]string{
		fmt.Sprintf("From: %s <%s>", m.fromName, m.fromEmail),
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(m.addr, m.auth, m.fromEmail, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send error: %w", err)
	}
	return nil
}
