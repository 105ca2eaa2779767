// Package notification delivers account-facing notifications such as the
// signup verification email.
package notification

import (
	"context"
	"fmt"
	"html"
	"time"

	"enroll/config"
	"enroll/internal/domain/service"
	"enroll/internal/infra/mail"

	"github.com/pkg/errors"
)

const verificationSubject = "Verify Your Email"

type emailNotifier struct {
	mailer   mail.Mailer
	tokenTTL time.Duration
}

// NewEmailNotifier creates a Notifier that sends verification links over SMTP.
// The email states the link lifetime, so it must match verification.tokenTtl.
func NewEmailNotifier(mailer mail.Mailer, cfg *config.Config) service.Notifier {
	return &emailNotifier{mailer: mailer, tokenTTL: cfg.Verification.TokenTTL}
}

func (n *emailNotifier) SendVerification(ctx context.Context, to, name, link string) error {
	msg := mail.Message{
		To:       to,
		Subject:  verificationSubject,
		HTMLBody: verificationBody(name, link, n.tokenTTL),
	}

	if err := n.mailer.Send(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to send verification email")
	}

	return nil
}

func verificationBody(name, link string, ttl time.Duration) string {
	greeting := ""
	if name != "" {
		greeting = fmt.Sprintf("<p>Hi %s,</p>", html.EscapeString(name))
	}

	return fmt.Sprintf(
		"%s<p>Verify your email address to complete the signup and login into your account.</p>"+
			"<p>This link <b>expires in %s</b>.</p>"+
			"<p>Press <a href=%q>here</a> to proceed.</p>",
		greeting, formatTTL(ttl), link,
	)
}

// formatTTL renders the token lifetime the way a human would say it,
// such as "6 hours", "90 minutes" or "1 hour 30 minutes".
func formatTTL(ttl time.Duration) string {
	hours := int(ttl.Hours())
	minutes := int(ttl.Minutes()) % 60

	switch {
	case hours == 0:
		return plural(minutes, "minute")
	case minutes == 0:
		return plural(hours, "hour")
	default:
		return plural(hours, "hour") + " " + plural(minutes, "minute")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}

	return fmt.Sprintf("%d %ss", n, unit)
}
