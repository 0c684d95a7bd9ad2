package middleware

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/hyp3rd/textstats"
	"github.com/hyp3rd/textstats/internal/telemetry/attrs"
	"github.com/hyp3rd/textstats/pkg/convert"
	"github.com/hyp3rd/textstats/pkg/stats"
	"github.com/hyp3rd/textstats/pkg/words"
)

// OTelTracingMiddleware wraps textstats.Service methods with OpenTelemetry spans.
type OTelTracingMiddleware struct {
	next   textstats.Service
	tracer trace.Tracer
	// static attributes applied to all spans
	commonAttrs []attribute.KeyValue
}

// OTelTracingOption allows configuring the tracing middleware.
type OTelTracingOption func(*OTelTracingMiddleware)

// WithCommonAttributes sets attributes applied to all spans.
func WithCommonAttributes(attributes ...attribute.KeyValue) OTelTracingOption {
	return func(m *OTelTracingMiddleware) { m.commonAttrs = append(m.commonAttrs, attributes...) }
}

// NewOTelTracingMiddleware creates a tracing middleware.
func NewOTelTracingMiddleware(next textstats.Service, tracer trace.Tracer, opts ...OTelTracingOption) textstats.Service {
	mw := &OTelTracingMiddleware{next: next, tracer: tracer}
	for _, o := range opts {
		o(mw)
	}

	return mw
}

// Describe implements Service.Describe with tracing.
func (mw OTelTracingMiddleware) Describe(ctx context.Context, values []float64) (stats.Summary, error) {
	ctx, span := mw.startSpan(ctx, "textstats.Describe", attribute.Int(attrs.AttrValuesCount, len(values)))
	defer span.End()

	summary, err := mw.next.Describe(ctx, values)
	if err != nil {
		recordError(span, err)

		return summary, err
	}

	span.SetAttributes(attribute.Bool(attrs.AttrHasMode, summary.HasMode))

	return summary, nil
}

// Convert implements Service.Convert with tracing.
func (mw OTelTracingMiddleware) Convert(ctx context.Context, values []float64) ([]convert.Row, error) {
	ctx, span := mw.startSpan(ctx, "textstats.Convert", attribute.Int(attrs.AttrValuesCount, len(values)))
	defer span.End()

	rows, err := mw.next.Convert(ctx, values)
	if err != nil {
		recordError(span, err)

		return rows, err
	}

	span.SetAttributes(attribute.Int(attrs.AttrRowsCount, len(rows)))

	return rows, nil
}

// CountWords implements Service.CountWords with tracing.
func (mw OTelTracingMiddleware) CountWords(ctx context.Context, tokens []string) (words.Tally, error) {
	ctx, span := mw.startSpan(ctx, "textstats.CountWords", attribute.Int(attrs.AttrTokensCount, len(tokens)))
	defer span.End()

	tally, err := mw.next.CountWords(ctx, tokens)
	if err != nil {
		recordError(span, err)

		return tally, err
	}

	span.SetAttributes(
		attribute.Int(attrs.AttrWordsCount, len(tally.Entries)),
		attribute.Int(attrs.AttrRejectedCount, len(tally.Rejected)))

	return tally, nil
}

// startSpan starts a span with common and provided attributes.
func (mw OTelTracingMiddleware) startSpan(ctx context.Context, name string, attributes ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := mw.tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
	if len(mw.commonAttrs) > 0 {
		span.SetAttributes(mw.commonAttrs...)
	}

	if len(attributes) > 0 {
		span.SetAttributes(attributes...)
	}

	return ctx, span
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
