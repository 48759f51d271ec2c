package notify

import (
	"context"
	"errors"
	"strings"

	"github.com/JMURv/zedasignal/internal/config"
	metrics "github.com/JMURv/zedasignal/internal/observability/metrics/prometheus"
	"github.com/JMURv/zedasignal/internal/sms/termii"
	"github.com/JMURv/zedasignal/internal/smtp"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

var (
	ErrNoEmail        = errors.New("recipient has no email address")
	ErrNoPhone        = errors.New("recipient has no phone number")
	ErrUnknownChannel = errors.New("unknown channel")
)

// SMSKey overrides the default SMS text when present in the render context.
const SMSKey = "sms_message"

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
	ChannelPush  Channel = "push"
)

type Recipient interface {
	EmailAddress() string
	Phone() string
}

type Mailer interface {
	Send(ctx context.Context, msgs ...*gomail.Message) error
}

type SMSGateway interface {
	Send(ctx context.Context, to, message string) (*termii.SendResponse, error)
}

type Sender struct {
	reg    *Registry
	mailer Mailer
	sms    SMSGateway
}

func NewSender(reg *Registry, mailer Mailer, sms SMSGateway) *Sender {
	return &Sender{reg: reg, mailer: mailer, sms: sms}
}

// Send delivers one message of kind to r over exactly one channel.
func (s *Sender) Send(ctx context.Context, r Recipient, kind Kind, data map[string]any, ch Channel) error {
	const op = "notify.Send.sender"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	d, err := s.reg.Lookup(kind)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("message kind is not registered", zap.String("op", op), zap.String("kind", string(kind)))
		return err
	}

	switch ch {
	case ChannelEmail:
		err = s.email(ctx, r, d, data)
	case ChannelSMS:
		err = s.text(ctx, r, data)
	case ChannelPush:
		return nil
	default:
		return ErrUnknownChannel
	}

	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		metrics.ObserveNotifications(string(ch), string(kind), metrics.StatusFailed, 1)
		zap.L().Error(
			"failed to send notification",
			zap.String("op", op),
			zap.String("kind", string(kind)),
			zap.String("channel", string(ch)),
			zap.Error(err),
		)
		return err
	}

	metrics.ObserveNotifications(string(ch), string(kind), metrics.StatusSent, 1)
	return nil
}

func (s *Sender) email(ctx context.Context, r Recipient, d *Descriptor, data map[string]any) error {
	to := r.EmailAddress()
	if to == "" {
		return ErrNoEmail
	}

	html, err := s.reg.Render(d, data)
	if err != nil {
		return err
	}

	return s.mailer.Send(ctx, smtp.NewMessage(d.From, to, d.Subject, d.Body, html))
}

func (s *Sender) text(ctx context.Context, r Recipient, data map[string]any) error {
	to := strings.TrimPrefix(r.Phone(), "+")
	if to == "" {
		return ErrNoPhone
	}

	msg, ok := data[SMSKey].(string)
	if !ok || msg == "" {
		msg = config.DefaultSMSMessage
	}

	_, err := s.sms.Send(ctx, to, msg)
	return err
}
