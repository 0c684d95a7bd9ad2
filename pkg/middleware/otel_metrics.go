package middleware

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/hyp3rd/textstats"
	"github.com/hyp3rd/textstats/internal/telemetry/attrs"
	"github.com/hyp3rd/textstats/pkg/convert"
	"github.com/hyp3rd/textstats/pkg/stats"
	"github.com/hyp3rd/textstats/pkg/words"
)

// OTelMetricsMiddleware emits OpenTelemetry metrics for service methods.
type OTelMetricsMiddleware struct {
	next  textstats.Service
	meter metric.Meter

	// instruments
	calls     metric.Int64Counter
	failures  metric.Int64Counter
	durations metric.Float64Histogram
}

// NewOTelMetricsMiddleware constructs a metrics middleware using the provided meter.
func NewOTelMetricsMiddleware(next textstats.Service, meter metric.Meter) (textstats.Service, error) {
	calls, err := meter.Int64Counter("textstats.calls")
	if err != nil {
		return nil, fmt.Errorf("create counter: %w", err)
	}

	failures, err := meter.Int64Counter("textstats.failures")
	if err != nil {
		return nil, fmt.Errorf("create counter: %w", err)
	}

	durations, err := meter.Float64Histogram("textstats.duration.ms")
	if err != nil {
		return nil, fmt.Errorf("create histogram: %w", err)
	}

	return &OTelMetricsMiddleware{next: next, meter: meter, calls: calls, failures: failures, durations: durations}, nil
}

// Describe implements Service.Describe with metrics.
func (mw *OTelMetricsMiddleware) Describe(ctx context.Context, values []float64) (stats.Summary, error) {
	start := time.Now()
	summary, err := mw.next.Describe(ctx, values)
	mw.rec(ctx, "Describe", start, err,
		attribute.Int(attrs.AttrValuesCount, len(values)),
		attribute.Bool(attrs.AttrHasMode, summary.HasMode))

	return summary, err
}

// Convert implements Service.Convert with metrics.
func (mw *OTelMetricsMiddleware) Convert(ctx context.Context, values []float64) ([]convert.Row, error) {
	start := time.Now()
	rows, err := mw.next.Convert(ctx, values)
	mw.rec(ctx, "Convert", start, err,
		attribute.Int(attrs.AttrValuesCount, len(values)),
		attribute.Int(attrs.AttrRowsCount, len(rows)))

	return rows, err
}

// CountWords implements Service.CountWords with metrics.
func (mw *OTelMetricsMiddleware) CountWords(ctx context.Context, tokens []string) (words.Tally, error) {
	start := time.Now()
	tally, err := mw.next.CountWords(ctx, tokens)
	mw.rec(ctx, "CountWords", start, err,
		attribute.Int(attrs.AttrTokensCount, len(tokens)),
		attribute.Int(attrs.AttrWordsCount, len(tally.Entries)),
		attribute.Int(attrs.AttrRejectedCount, len(tally.Rejected)))

	return tally, err
}

// rec records call count, failures and duration with attributes.
func (mw *OTelMetricsMiddleware) rec(ctx context.Context, method string, start time.Time, err error, attributes ...attribute.KeyValue) {
	base := []attribute.KeyValue{attribute.String(attrs.AttrMethod, method)}
	if len(attributes) > 0 {
		base = append(base, attributes...)
	}

	mw.calls.Add(ctx, 1, metric.WithAttributes(base...))
	if err != nil {
		mw.failures.Add(ctx, 1, metric.WithAttributes(attribute.String(attrs.AttrMethod, method)))
	}

	mw.durations.Record(ctx, float64(time.Since(start).Microseconds())/1000, metric.WithAttributes(base...))
}
