// Package textstats implements three small report tools over ASCII text files:
// descriptive statistics of a list of numbers, decimal to binary and hexadecimal
// conversion, and word frequency counting.
//
// The computations are exposed through the Service interface, implemented by
// Analyzer and decorated by the middlewares of pkg/middleware. A Runner drives a
// single run of a tool: it reads the input, reports rejected lines, calls the
// service and appends the formatted block to the report file.
package textstats

import (
	"context"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/textstats/internal/sentinel"
	"github.com/hyp3rd/textstats/pkg/convert"
	"github.com/hyp3rd/textstats/pkg/stats"
	"github.com/hyp3rd/textstats/pkg/words"
)

// Analyzer is the default Service implementation. It is stateless.
type Analyzer struct{}

// NewAnalyzer returns a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Describe implements Service.Describe.
// It fails with sentinel.ErrNoValidNumbers or sentinel.ErrSingleSample when fewer
// than two values are given.
func (*Analyzer) Describe(_ context.Context, values []float64) (stats.Summary, error) {
	return stats.Describe(values)
}

// Convert implements Service.Convert.
// It fails with sentinel.ErrNoValidNumbers on an empty sequence.
func (*Analyzer) Convert(_ context.Context, values []float64) ([]convert.Row, error) {
	if len(values) == 0 {
		return nil, ewrap.Wrap(sentinel.ErrNoValidNumbers, "convert")
	}

	return convert.Convert(values), nil
}

// CountWords implements Service.CountWords. Invalid tokens are returned in
// Tally.Rejected and never fail the call.
func (*Analyzer) CountWords(_ context.Context, tokens []string) (words.Tally, error) {
	return words.Count(tokens), nil
}
