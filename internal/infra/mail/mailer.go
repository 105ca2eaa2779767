// Package mail implements outbound SMTP delivery behind a small Mailer
// interface so the rest of the application never touches the transport.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	netmail "net/mail"
	"net/smtp"
	"strings"
	"time"

	"enroll/config"

	"github.com/pkg/errors"
)

// ErrSMTPDisabled signals that SMTP delivery is disabled via configuration.
var ErrSMTPDisabled = errors.New("smtp: delivery disabled")

const defaultSendTimeout = 10 * time.Second

// Message represents an outbound email.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

// Mailer defines behaviour for sending email messages.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type smtpClient interface {
	Mail(string) error
	Rcpt(string) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
	StartTLS(*tls.Config) error
	Auth(smtp.Auth) error
	Extension(string) (bool, string)
}

type smtpDialFunc func(ctx context.Context, cfg *config.SMTPConfig) (net.Conn, smtpClient, error)
type smtpAuthFunc func(client smtpClient, cfg *config.SMTPConfig) error

type smtpMailer struct {
	cfg    *config.SMTPConfig
	dialFn smtpDialFunc
	authFn smtpAuthFunc
}

// NewSMTPMailer validates the SMTP configuration and returns a Mailer.
// A disabled configuration is valid; Send then fails with ErrSMTPDisabled.
func NewSMTPMailer(cfg *config.SMTPConfig) (Mailer, error) {
	if cfg == nil {
		cfg = &config.SMTPConfig{}
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultSendTimeout
	}

	return &smtpMailer{
		cfg:    cfg,
		dialFn: defaultDialFunc,
		authFn: defaultAuthFunc,
	}, nil
}

func (m *smtpMailer) Send(ctx context.Context, msg Message) error {
	if !m.cfg.Enabled {
		return ErrSMTPDisabled
	}

	to := strings.TrimSpace(msg.To)
	if to == "" {
		return errors.New("smtp: recipient is required")
	}
	if _, err := netmail.ParseAddress(to); err != nil {
		return errors.Wrapf(err, "smtp: invalid recipient address %q", to)
	}

	from := strings.TrimSpace(m.cfg.From)
	if from == "" {
		return errors.New("smtp: sender address is required")
	}
	if _, err := netmail.ParseAddress(from); err != nil {
		return errors.Wrap(err, "smtp: invalid from address")
	}

	conn, client, err := m.dialFn(ctx, m.cfg)
	if err != nil {
		return err
	}
	defer conn.Close()
	defer client.Close()

	if err := m.authFn(client, m.cfg); err != nil {
		return err
	}

	if err := client.Mail(from); err != nil {
		return errors.Wrap(err, "smtp: mail from")
	}
	if err := client.Rcpt(to); err != nil {
		return errors.Wrapf(err, "smtp: rcpt to %s", to)
	}

	wc, err := client.Data()
	if err != nil {
		return errors.Wrap(err, "smtp: data command")
	}

	if _, err := io.WriteString(wc, formatMessage(from, to, msg.Subject, msg.HTMLBody)); err != nil {
		_ = wc.Close()

		return errors.Wrap(err, "smtp: write body")
	}
	if err := wc.Close(); err != nil {
		return errors.Wrap(err, "smtp: close data writer")
	}

	return client.Quit()
}

func validateConfig(cfg *config.SMTPConfig) error {
	if !cfg.Enabled {
		return nil
	}
	if strings.TrimSpace(cfg.Host) == "" {
		return errors.New("smtp: host is required when enabled")
	}
	if cfg.Port == 0 {
		return errors.New("smtp: port is required when enabled")
	}

	return nil
}

func defaultDialFunc(ctx context.Context, cfg *config.SMTPConfig) (net.Conn, smtpClient, error) {
	address := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	dialer := &net.Dialer{Timeout: cfg.Timeout}

	var (
		conn net.Conn
		err  error
	)

	if cfg.UseTLS {
		conn, err = tls.DialWithDialer(dialer, "tcp", address, &tls.Config{ServerName: cfg.Host})
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", address)
	}
	if err != nil {
		return nil, nil, errors.Wrapf(err, "smtp: dial %s", address)
	}

	client, err := smtp.NewClient(conn, cfg.Host)
	if err != nil {
		_ = conn.Close()

		return nil, nil, errors.Wrap(err, "smtp: new client")
	}

	// Opportunistic STARTTLS on plaintext connections.
	if !cfg.UseTLS {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: cfg.Host}); err != nil {
				_ = client.Close()
				_ = conn.Close()

				return nil, nil, errors.Wrap(err, "smtp: start tls")
			}
		}
	}

	return conn, client, nil
}

func defaultAuthFunc(client smtpClient, cfg *config.SMTPConfig) error {
	if strings.TrimSpace(cfg.Username) == "" {
		return nil
	}

	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	if err := client.Auth(auth); err != nil {
		return errors.Wrap(err, "smtp: auth")
	}

	return nil
}

func formatMessage(from, to, subject, htmlBody string) string {
	headers := []string{
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", escapeHeader(subject)),
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=UTF-8",
		"",
		"",
	}

	return strings.Join(headers, "\r\n") + htmlBody
}

func escapeHeader(value string) string {
	value = strings.ReplaceAll(value, "\r", " ")

	return strings.ReplaceAll(value, "\n", " ")
}
