// Package mail delivers magic-link sign-in emails over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"companion/config"
	"companion/internal/domain/service"
	"companion/internal/errors"

	"github.com/wneessen/go-mail"
)

// smtpMailer implements the MagicLinkMailer interface using go-mail.
type smtpMailer struct {
	client *mail.Client
	from   string
}

// NewSMTPMailer is the constructor for smtpMailer. Without SMTP configuration
// it falls back to a mailer that logs the sign-in link, which is how local
// development completes the flow without a mail server.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.MagicLinkMailer, error) {
	if cfg.SMTP == nil {
		return &logMailer{logger: logger}, nil
	}

	client, err := mail.NewClient(cfg.SMTP.Host,
		mail.WithPort(cfg.SMTP.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SMTP.Username),
		mail.WithPassword(cfg.SMTP.Password),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	return &smtpMailer{
		client: client,
		from:   cfg.SMTP.From,
	}, nil
}

// SendMagicLink emails a sign-in link to the given address.
func (m *smtpMailer) SendMagicLink(ctx context.Context, email, link string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return errors.Wrap(err, "failed to set mail sender")
	}
	if err := msg.To(email); err != nil {
		return errors.Wrap(err, "failed to set mail recipient")
	}

	msg.Subject("您的登入連結")
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"點擊以下連結完成登入:\n\n%s\n\n此連結僅能使用一次,若非您本人申請請忽略此信。\n", link))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to send magic link mail")
	}

	return nil
}

// logMailer writes the sign-in link to the log instead of sending mail.
type logMailer struct {
	logger *slog.Logger
}

// SendMagicLink logs the sign-in link.
func (m *logMailer) SendMagicLink(_ context.Context, email, link string) error {
	m.logger.Info("Magic link issued without SMTP configured",
		slog.String("email", email),
		slog.String("link", link),
	)

	return nil
}
