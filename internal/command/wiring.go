package command

import (
	"io"

	"github.com/hyp3rd/ewrap"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hyp3rd/textstats"
	"github.com/hyp3rd/textstats/internal/sentinel"
	"github.com/hyp3rd/textstats/pkg/middleware"
)

const instrumentationName = "github.com/hyp3rd/textstats"

// NewLogger builds a console logger writing to w at the named level.
func NewLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, ewrap.Wrapf(sentinel.ErrUsage, "log level %q", level)
	}

	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), lvl)

	return zap.New(core), nil
}

// NewService wraps the Analyzer with the logging, metrics and tracing
// middlewares. Metrics and spans go to the global OpenTelemetry providers,
// which are no-ops unless the process installs real ones.
func NewService(tool textstats.Tool, logger *zap.SugaredLogger) (textstats.Service, error) {
	metrics, err := middleware.NewOTelMetricsMiddleware(textstats.NewAnalyzer(), otel.GetMeterProvider().Meter(instrumentationName))
	if err != nil {
		return nil, ewrap.Wrap(err, "metrics middleware")
	}

	return textstats.ApplyMiddleware(metrics,
		func(next textstats.Service) textstats.Service {
			return middleware.NewOTelTracingMiddleware(next, otel.Tracer(instrumentationName),
				middleware.WithCommonAttributes(attribute.String("tool", string(tool))))
		},
		func(next textstats.Service) textstats.Service {
			return middleware.NewLoggingMiddleware(next, logger)
		},
	), nil
}
