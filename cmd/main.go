package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JMURv/zedasignal/internal/auth"
	"github.com/JMURv/zedasignal/internal/cache/redis"
	"github.com/JMURv/zedasignal/internal/config"
	"github.com/JMURv/zedasignal/internal/ctrl"
	"github.com/JMURv/zedasignal/internal/hdl/http"
	"github.com/JMURv/zedasignal/internal/notify"
	"github.com/JMURv/zedasignal/internal/observability/metrics/prometheus"
	"github.com/JMURv/zedasignal/internal/observability/tracing/jaeger"
	"github.com/JMURv/zedasignal/internal/repo/db"
	"github.com/JMURv/zedasignal/internal/repo/s3"
	"github.com/JMURv/zedasignal/internal/sms/termii"
	"github.com/JMURv/zedasignal/internal/smtp"
	"go.uber.org/zap"
)

const configPath = ".env"

func mustRegisterLogger(mode string) {
	switch mode {
	case "prod":
		zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
	default:
		zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))
	}
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			zap.L().Panic("panic occurred", zap.Any("error", err))
			os.Exit(1)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf := config.MustLoad(configPath)
	mustRegisterLogger(conf.Server.Mode)

	go prometheus.New(conf.Server.Port + 5).Start(ctx)
	go jaeger.Start(ctx, conf.ServiceName, conf.Jaeger)

	reg, err := notify.NewRegistry(conf.Email.From)
	if err != nil {
		zap.L().Fatal("failed to build message registry", zap.Error(err))
	}

	mailer := smtp.New(conf)
	sender := notify.NewSender(reg, mailer, termii.New(conf))
	mass := notify.NewMassSender(reg, mailer)

	cache := redis.New(conf)
	repo := db.New(conf)
	au := auth.New(conf)
	svc := ctrl.New(au, repo, cache, s3.New(conf), sender, mass, conf)
	h := http.New(au, svc, conf.Server)

	zap.L().Info(
		fmt.Sprintf(
			"Starting server on %v://%v:%v",
			conf.Server.Scheme,
			conf.Server.Domain,
			conf.Server.Port,
		),
	)
	go h.Start(conf.Server.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-c

	zap.L().Info("Shutting down gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err = h.Close(shutdownCtx); err != nil {
		zap.L().Warn("Error closing handler", zap.Error(err))
	}

	if err = cache.Close(); err != nil {
		zap.L().Warn("Failed to close connection to Redis: ", zap.Error(err))
	}

	if err = repo.Close(shutdownCtx); err != nil {
		zap.L().Warn("Error closing repository", zap.Error(err))
	}

	cancel()
	_ = zap.L().Sync()
}
