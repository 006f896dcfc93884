// Package notification delivers outbound email for envelope events.
//
// Delivery is best-effort and always happens outside business transactions:
// a failed send never rolls back signing state. When SMTP is not configured
// the log mailer is used so development environments stay self-contained.
package notification

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"sealgate.io/sealgate/internal/config"
	"sealgate.io/sealgate/internal/pkg/logger"
)

// Attachment is a file carried by a message.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Message is one outbound email.
type Message struct {
	To         string
	ToName     string
	ReplyTo    string
	Subject    string
	Body       string
	Attachment *Attachment
}

// Mailer sends messages to signers and requesters.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// NewMailer picks the SMTP mailer when credentials are configured and falls
// back to the log mailer otherwise.
func NewMailer(cfg config.MailConfig) (Mailer, error) {
	if cfg.Host == "" || cfg.User == "" {
		logger.Info("smtp not configured, using log mailer")
		return &LogMailer{}, nil
	}
	return NewSMTPMailer(cfg)
}

// SMTPMailer delivers messages over SMTP.
type SMTPMailer struct {
	client *mail.Client
	from   string
}

// NewSMTPMailer creates a mailer from SMTP settings.
func NewSMTPMailer(cfg config.MailConfig) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Password),
		)
	}
	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return &SMTPMailer{client: client, from: cfg.Sender}, nil
}

// Send delivers one message.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	mm := mail.NewMsg()
	if err := mm.From(m.from); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := mm.AddToFormat(msg.ToName, msg.To); err != nil {
		return fmt.Errorf("set recipient %s: %w", msg.To, err)
	}
	if msg.ReplyTo != "" {
		if err := mm.ReplyTo(msg.ReplyTo); err != nil {
			return fmt.Errorf("set reply-to: %w", err)
		}
	}
	mm.Subject(msg.Subject)
	mm.SetBodyString(mail.TypeTextPlain, msg.Body)
	if att := msg.Attachment; att != nil {
		if err := mm.AttachReader(att.Filename, bytes.NewReader(att.Data),
			mail.WithFileContentType(mail.ContentType(att.ContentType))); err != nil {
			return fmt.Errorf("attach %s: %w", att.Filename, err)
		}
	}
	if err := m.client.DialAndSendWithContext(ctx, mm); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}
	logger.Debug("mail sent",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return nil
}

// LogMailer writes messages to the log instead of delivering them.
type LogMailer struct{}

// Send logs the message.
func (m *LogMailer) Send(_ context.Context, msg Message) error {
	fields := []zap.Field{
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.Body),
	}
	if msg.Attachment != nil {
		fields = append(fields,
			zap.String("attachment", msg.Attachment.Filename),
			zap.Int("attachment_bytes", len(msg.Attachment.Data)),
		)
	}
	logger.Info("mail (log only)", fields...)
	return nil
}
