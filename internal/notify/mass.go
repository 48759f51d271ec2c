package notify

import (
	"context"

	"github.com/JMURv/zedasignal/internal/config"
	metrics "github.com/JMURv/zedasignal/internal/observability/metrics/prometheus"
	"github.com/JMURv/zedasignal/internal/smtp"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type MassSender struct {
	reg    *Registry
	mailer Mailer
}

func NewMassSender(reg *Registry, mailer Mailer) *MassSender {
	return &MassSender{reg: reg, mailer: mailer}
}

// SendMass emails every recipient in one batch and returns how many messages
// were handed to the mailer. With personalise set the template is rendered per
// recipient with the recipient available as "user".
func (m *MassSender) SendMass(
	ctx context.Context,
	rs []Recipient,
	kind Kind,
	data map[string]any,
	personalise bool,
) (int, error) {
	const op = "notify.SendMass.sender"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	d, err := m.reg.Lookup(kind)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("message kind is not registered", zap.String("op", op), zap.String("kind", string(kind)))
		return 0, err
	}

	if len(rs) == 0 {
		return 0, nil
	}

	var shared string
	if !personalise {
		if shared, err = m.reg.Render(d, data); err != nil {
			span.SetTag(config.ErrorSpanTag, true)
			zap.L().Error("failed to render message", zap.String("op", op), zap.Error(err))
			return 0, err
		}
	}

	msgs := make([]*gomail.Message, 0, len(rs))
	for _, r := range rs {
		to := r.EmailAddress()
		if to == "" {
			zap.L().Debug("skipping recipient without email", zap.String("op", op))
			continue
		}

		html := shared
		if personalise {
			ctxData := make(map[string]any, len(data)+1)
			for k, v := range data {
				ctxData[k] = v
			}
			ctxData["user"] = r

			if html, err = m.reg.Render(d, ctxData); err != nil {
				span.SetTag(config.ErrorSpanTag, true)
				zap.L().Error("failed to render message", zap.String("op", op), zap.Error(err))
				return 0, err
			}
		}

		msgs = append(msgs, smtp.NewMessage(d.From, to, d.Subject, d.Body, html))
	}

	if len(msgs) == 0 {
		return 0, nil
	}

	if err = m.mailer.Send(ctx, msgs...); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		metrics.ObserveNotifications(string(ChannelEmail), string(kind), metrics.StatusFailed, len(msgs))
		zap.L().Error("failed to send mass email", zap.String("op", op), zap.Int("count", len(msgs)), zap.Error(err))
		return 0, err
	}

	metrics.ObserveNotifications(string(ChannelEmail), string(kind), metrics.StatusSent, len(msgs))
	zap.L().Info("mass email sent", zap.String("kind", string(kind)), zap.Int("count", len(msgs)))
	return len(msgs), nil
}
