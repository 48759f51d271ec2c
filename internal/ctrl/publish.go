package ctrl

import (
	"context"

	"github.com/JMURv/zedasignal/internal/config"
	md "github.com/JMURv/zedasignal/internal/models"
	"github.com/JMURv/zedasignal/internal/notify"
	metrics "github.com/JMURv/zedasignal/internal/observability/metrics/prometheus"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// AudienceByChannel groups subscribers by every channel of their plan. A user
// with several active subscriptions appears at most once per channel.
func AudienceByChannel(subs []*md.Subscriber) map[md.NotificationChannel][]*md.Subscriber {
	res := make(map[md.NotificationChannel][]*md.Subscriber)
	seen := make(map[md.NotificationChannel]map[int64]struct{})

	for _, s := range subs {
		for _, raw := range s.Channels {
			ch := md.NotificationChannel(raw)
			if seen[ch] == nil {
				seen[ch] = make(map[int64]struct{})
			}
			if _, ok := seen[ch][s.ID]; ok {
				continue
			}

			seen[ch][s.ID] = struct{}{}
			res[ch] = append(res[ch], s)
		}
	}

	return res
}

// PublishSignal emails s to every subscriber whose plan includes email.
// Other channels are resolved and logged only.
func (c *Controller) PublishSignal(ctx context.Context, s *md.Signal) (int, error) {
	const op = "signals.PublishSignal.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	subs, err := c.repo.ListActiveSubscribers(ctx)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to resolve signal audience", zap.String("op", op), zap.Error(err))
		return 0, err
	}

	audience := AudienceByChannel(subs)
	for _, ch := range []md.NotificationChannel{md.ChannelSMS, md.ChannelWhatsApp, md.ChannelTelegram} {
		if n := len(audience[ch]); n > 0 {
			zap.L().Info(
				"signal audience not dispatched",
				zap.String("channel", string(ch)),
				zap.Int("count", n),
				zap.String("signal", s.UUID.String()),
			)
		}
	}

	emails := audience[md.ChannelEmail]
	rs := make([]notify.Recipient, 0, len(emails))
	for _, sub := range emails {
		rs = append(rs, sub)
	}

	return c.mass.SendMass(
		ctx, rs, notify.KindSignal, map[string]any{
			"signal": s,
			"domain": c.conf.DomainName,
		}, true,
	)
}

func (c *Controller) onSignalCreated(ctx context.Context, s *md.Signal) {
	const op = "signals.onSignalCreated.ctrl"

	n, err := c.PublishSignal(ctx, s)
	if err != nil {
		metrics.SignalDispatchFailed()
		zap.L().Error(
			"failed to publish signal",
			zap.String("op", op),
			zap.String("signal", s.UUID.String()),
			zap.Error(err),
		)
		return
	}

	zap.L().Info("signal published", zap.String("signal", s.UUID.String()), zap.Int("recipients", n))
}
