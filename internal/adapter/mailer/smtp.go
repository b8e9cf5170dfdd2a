package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPMailer implements ports.MailerPort with plain SMTP. The contact
// form is the only mail producer, so a single recipient list suffices.
type SMTPMailer struct {
	addr string
	auth smtp.Auth
	from string
	to   []string
}

func NewSMTPMailer(host, port, username, password, from string, to []string) *SMTPMailer {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%s", host, port),
		auth: auth,
		from: from,
		to:   to,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + strings.Join(m.to, ", "),
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(m.addr, m.auth, m.from, m.to, []byte(msg))
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
