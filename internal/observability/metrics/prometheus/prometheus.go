package prometheus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	StatusSent   = "sent"
	StatusFailed = "failed"
)

var (
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "op"},
	)

	notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Notifications handed to a delivery channel",
		},
		[]string{"channel", "kind", "status"},
	)

	signalDispatchFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "signal_dispatch_failures_total",
			Help: "Signal publications whose audience dispatch failed",
		},
	)
)

type Metrics struct {
	srv *http.Server
}

func New(port int) *Metrics {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Metrics{
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%v", port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (m *Metrics) Start(ctx context.Context) {
	go func() {
		<-ctx.Done()
		if err := m.srv.Shutdown(context.Background()); err != nil {
			zap.L().Debug("failed to shutdown metrics server", zap.Error(err))
		}
	}()

	zap.L().Info("Starting metrics server", zap.String("addr", m.srv.Addr))
	if err := m.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.L().Error("metrics server error", zap.Error(err))
	}
}

func ObserveRequest(d time.Duration, status int, op string) {
	requestDuration.WithLabelValues(strconv.Itoa(status), op).Observe(d.Seconds())
}

func ObserveNotifications(channel, kind, status string, n int) {
	notifications.WithLabelValues(channel, kind, status).Add(float64(n))
}

func SignalDispatchFailed() {
	signalDispatchFailures.Inc()
}
