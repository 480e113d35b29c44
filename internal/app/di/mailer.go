// Package di provides dependency injection factories for creating application components.
package di

import (
	"errors"
	"log/slog"
	"os"

	authusecase "carrental_backend/internal/feature/auth/usecase"
	"carrental_backend/internal/platform/config"
	"carrental_backend/internal/platform/mailer"
)

// ErrSMTPRequired is returned when prod is configured without an SMTP host.
var ErrSMTPRequired = errors.New("SMTP_HOST is required when APP_ENV=prod")

// NewMailer returns an SMTP mailer when SMTP_HOST is set.
// Outside prod, mail is otherwise written to stdout for local development.
// In prod the stdout mailer is refused because it would put verification
// codes on the log stream.
func NewMailer(env string, cfg config.Mail) (authusecase.Mailer, error) {
	if cfg.Host == "" {
		if env == config.EnvProd {
			return nil, ErrSMTPRequired
		}
		slog.Warn("SMTP_HOST not set; verification mail goes to stdout")
		return mailer.NewOutboxMailer(os.Stdout), nil
	}
	m, err := mailer.NewSMTPMailer(mailer.SMTPConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Username: cfg.Username,
		Password: cfg.Password,
		From:     cfg.From,
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}
