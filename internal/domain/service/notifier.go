package service

import "context"

// Notifier delivers the verification email. It is injected so tests can
// substitute a fake; the transport (SMTP, API, ...) is an infra detail.
type Notifier interface {
	// SendVerification emails the recipient a verification link that
	// embeds the raw (unhashed) token. The link expires with the
	// pending verification record.
	SendVerification(ctx context.Context, to, name, link string) error
}
