package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"
)

// Config holds SMTP settings for the mailer.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer delivers messages over SMTP. The underlying client is
// constructed once at process start and injected where needed; there is
// no lazily-built global transporter.
type Mailer struct {
	client *mail.Client
	from   string
}

// NewMailer creates an SMTP-backed Notifier.
func NewMailer(cfg Config) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	}
	// Port 465 expects implicit TLS instead of STARTTLS.
	if cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}

	return &Mailer{client: client, from: cfg.From}, nil
}

// Send delivers a single message.
func (m *Mailer) Send(ctx context.Context, msg Message) error {
	email := mail.NewMsg()
	if err := email.From(m.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := email.To(msg.To); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	email.Subject(msg.Subject)
	email.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		email.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}

	if err := m.client.DialAndSendWithContext(ctx, email); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// Disabled is a Notifier used when SMTP is not configured. It logs and
// drops every message so the rest of the application behaves the same
// with or without email.
type Disabled struct {
	logger *slog.Logger
}

// NewDisabled returns a Notifier that drops all messages.
func NewDisabled(logger *slog.Logger) *Disabled {
	return &Disabled{logger: logger}
}

// Send logs the dropped message and reports success.
func (d *Disabled) Send(_ context.Context, msg Message) error {
	d.logger.Warn("email not configured, dropping notification",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)
	return nil
}
