package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/longbridgeapp/assert"
	"go.opentelemetry.io/otel/attribute"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hyp3rd/textstats"
	"github.com/hyp3rd/textstats/internal/sentinel"
)

func chain(t *testing.T, logger Logger) textstats.Service {
	t.Helper()

	return textstats.ApplyMiddleware(textstats.NewAnalyzer(),
		func(next textstats.Service) textstats.Service {
			return NewLoggingMiddleware(next, logger)
		},
		func(next textstats.Service) textstats.Service {
			svc, err := NewOTelMetricsMiddleware(next, metricnoop.NewMeterProvider().Meter("test"))
			assert.Nil(t, err)

			return svc
		},
		func(next textstats.Service) textstats.Service {
			return NewOTelTracingMiddleware(next, tracenoop.NewTracerProvider().Tracer("test"),
				WithCommonAttributes(attribute.String("tool", "test")))
		},
	)
}

func TestMiddleware_Describe(t *testing.T) {
	svc := chain(t, zap.NewNop().Sugar())

	summary, err := svc.Describe(context.Background(), []float64{10, 20, 30})
	assert.Nil(t, err)
	assert.Equal(t, "20", summary.Mean.String())

	_, err = svc.Describe(context.Background(), []float64{1})
	assert.True(t, errors.Is(err, sentinel.ErrSingleSample))
}

func TestMiddleware_Convert(t *testing.T) {
	svc := chain(t, zap.NewNop().Sugar())

	rows, err := svc.Convert(context.Background(), []float64{255})
	assert.Nil(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "FF", rows[0].Hex)

	_, err = svc.Convert(context.Background(), nil)
	assert.True(t, errors.Is(err, sentinel.ErrNoValidNumbers))
}

func TestMiddleware_CountWords(t *testing.T) {
	svc := chain(t, zap.NewNop().Sugar())

	tally, err := svc.CountWords(context.Background(), []string{"a", "a", "b-", "c"})
	assert.Nil(t, err)
	assert.Len(t, tally.Entries, 2)
	assert.Equal(t, []string{"b-"}, tally.Rejected)
}

func TestLoggingMiddleware_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	svc := NewLoggingMiddleware(textstats.NewAnalyzer(), zap.New(core).Sugar())

	_, err := svc.Describe(context.Background(), []float64{1, 2})
	assert.Nil(t, err)
	assert.Equal(t, 1, logs.FilterMessage("method Describe called").Len())
	assert.Equal(t, 1, logs.FilterMessage("method Describe done").Len())

	_, err = svc.Convert(context.Background(), nil)
	assert.NotNil(t, err)
	assert.Equal(t, 1, logs.FilterMessage("method Convert failed").Len())

	_, err = svc.CountWords(context.Background(), []string{"x"})
	assert.Nil(t, err)
	assert.Equal(t, 1, logs.FilterMessage("method CountWords tally").Len())
}
