// Package mailer delivers notification emails.
package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"
)

// SMTPConfig holds the settings for an SMTP relay.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer sends multipart (text + HTML) messages through an SMTP relay.
type SMTPMailer struct {
	client *mail.Client
	from   string
}

// NewSMTPMailer creates an SMTPMailer. Authentication is enabled when a username is set.
func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	if cfg.Host == "" {
		return nil, errors.New("smtp host is not set")
	}
	if cfg.From == "" {
		return nil, errors.New("mail from address is not set")
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}
	return &SMTPMailer{client: client, from: cfg.From}, nil
}

// Send delivers one message and waits for the relay to accept it.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, text, htmlBody string) error {
	msg, err := buildMessage(m.from, to, subject, text, htmlBody)
	if err != nil {
		return err
	}
	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}

func buildMessage(from, to, subject, text, htmlBody string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, text)
	if htmlBody != "" {
		msg.AddAlternativeString(mail.TypeTextHTML, htmlBody)
	}
	return msg, nil
}
