package jaeger

import (
	"context"

	cfg "github.com/JMURv/zedasignal/internal/config"
	"github.com/opentracing/opentracing-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"
)

// Start installs the global tracer and flushes it once ctx is done.
func Start(ctx context.Context, serviceName string, conf cfg.JaegerConfig) {
	tracerCfg := jaegercfg.Configuration{
		ServiceName: serviceName,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  conf.Sampler.Type,
			Param: conf.Sampler.Param,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans:           conf.Reporter.LogSpans,
			LocalAgentHostPort: conf.Reporter.LocalAgentHostPort,
		},
	}

	tracer, closer, err := tracerCfg.NewTracer()
	if err != nil {
		zap.L().Error("failed to initialize jaeger tracer", zap.Error(err))
		return
	}

	opentracing.SetGlobalTracer(tracer)
	zap.L().Info("Jaeger has been started", zap.String("agent", conf.Reporter.LocalAgentHostPort))
	<-ctx.Done()

	if err = closer.Close(); err != nil {
		zap.L().Debug("failed to shutdown jaeger", zap.Error(err))
	}
	zap.L().Info("Jaeger has been stopped")
}
