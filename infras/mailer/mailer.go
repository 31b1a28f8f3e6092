package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"carre/config"
	"carre/infras/otel"
	"carre/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

// Attachment is an in-memory file sent along with a message.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Message is a single outbound email.
type Message struct {
	To          []string
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}

// Mailer sends transactional email over SMTP.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type mailerImpl struct {
	config *config.Config
	dialer *gomail.Dialer
	otel   otel.Otel
}

func New(conf *config.Config, o otel.Otel) Mailer {
	smtp := conf.External.SMTP
	if smtp.Host == "" || smtp.From == "" {
		log.Fatal().Msg("SMTP host and sender address are required")
	}

	dialer := gomail.NewDialer(smtp.Host, smtp.Port, smtp.Username, smtp.Password)

	return &mailerImpl{
		config: conf,
		dialer: dialer,
		otel:   o,
	}
}

func (m *mailerImpl) Send(ctx context.Context, msg Message) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelMailerScopeName, constant.OtelMailerScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(msg.To) == 0 {
		return errors.New("message has no recipient")
	}

	scope.SetAttributes(map[string]any{
		"recipients": len(msg.To),
		"subject":    msg.Subject,
	})

	mail := gomail.NewMessage()
	mail.SetAddressHeader("From", m.config.External.SMTP.From, m.config.App.Billing.SenderName)
	mail.SetHeader("To", msg.To...)
	mail.SetHeader("Subject", msg.Subject)
	mail.SetBody("text/html", msg.HTMLBody)

	for _, att := range msg.Attachments {
		data := att.Data
		mail.Attach(att.Filename,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, copyErr := io.Copy(w, bytes.NewReader(data))
				return copyErr
			}),
			gomail.SetHeader(map[string][]string{
				constant.RequestHeaderContentType: {att.ContentType},
			}),
		)
	}

	if err = m.dialer.DialAndSend(mail); err != nil {
		log.Error().Err(err).Strs("to", msg.To).Msg("failed to send email")

		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
