package smtp

import (
	"context"

	"github.com/JMURv/zedasignal/internal/config"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type EmailServer struct {
	dialer *gomail.Dialer
}

func New(conf config.Config) *EmailServer {
	return &EmailServer{
		dialer: gomail.NewDialer(conf.Email.Server, conf.Email.Port, conf.Email.User, conf.Email.Pass),
	}
}

// NewMessage builds an HTML message with a plain-text alternative.
func NewMessage(from, to, subject, text, html string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", text)
	if html != "" {
		m.AddAlternative("text/html", html)
	}
	return m
}

// Send delivers every message over a single connection.
func (s *EmailServer) Send(ctx context.Context, msgs ...*gomail.Message) error {
	const op = "smtp.Send.gomail"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if len(msgs) == 0 {
		return nil
	}

	if err := s.dialer.DialAndSend(msgs...); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error(
			"Failed to send emails",
			zap.String("op", op),
			zap.Int("count", len(msgs)),
			zap.Error(err),
		)
		return err
	}
	return nil
}
