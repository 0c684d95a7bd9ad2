// Package middleware provides various middleware implementations for the textstats service.
// This package includes logging middleware that wraps the service to provide execution
// time logging and method call tracing, plus OpenTelemetry metrics and tracing middlewares.
package middleware

import (
	"context"
	"time"

	"github.com/hyp3rd/textstats"
	"github.com/hyp3rd/textstats/pkg/convert"
	"github.com/hyp3rd/textstats/pkg/stats"
	"github.com/hyp3rd/textstats/pkg/words"
)

// Logger describes a logging interface allowing to implement different external, or custom logger.
// Zap's SugaredLogger satisfies it.
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
}

// LoggingMiddleware is a middleware that logs the time it takes to execute the next middleware.
// Must implement the textstats.Service interface.
type LoggingMiddleware struct {
	next   textstats.Service
	logger Logger
}

// NewLoggingMiddleware returns a new LoggingMiddleware.
func NewLoggingMiddleware(next textstats.Service, logger Logger) textstats.Service {
	return &LoggingMiddleware{next: next, logger: logger}
}

// Describe logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware) Describe(ctx context.Context, values []float64) (stats.Summary, error) {
	defer func(begin time.Time) {
		mw.logger.Debugw("method Describe done", "took", time.Since(begin))
	}(time.Now())

	mw.logger.Debugw("method Describe called", "values", len(values))

	summary, err := mw.next.Describe(ctx, values)
	if err != nil {
		mw.logger.Debugw("method Describe failed", "error", err)
	}

	return summary, err
}

// Convert logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware) Convert(ctx context.Context, values []float64) ([]convert.Row, error) {
	defer func(begin time.Time) {
		mw.logger.Debugw("method Convert done", "took", time.Since(begin))
	}(time.Now())

	mw.logger.Debugw("method Convert called", "values", len(values))

	rows, err := mw.next.Convert(ctx, values)
	if err != nil {
		mw.logger.Debugw("method Convert failed", "error", err)
	}

	return rows, err
}

// CountWords logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware) CountWords(ctx context.Context, tokens []string) (words.Tally, error) {
	defer func(begin time.Time) {
		mw.logger.Debugw("method CountWords done", "took", time.Since(begin))
	}(time.Now())

	mw.logger.Debugw("method CountWords called", "tokens", len(tokens))

	tally, err := mw.next.CountWords(ctx, tokens)
	if err == nil {
		mw.logger.Debugw("method CountWords tally", "words", len(tally.Entries), "rejected", len(tally.Rejected))
	}

	return tally, err
}
