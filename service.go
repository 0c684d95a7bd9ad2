package textstats

import (
	"context"

	"github.com/hyp3rd/textstats/pkg/convert"
	"github.com/hyp3rd/textstats/pkg/stats"
	"github.com/hyp3rd/textstats/pkg/words"
)

// Service is the service interface of the textstats tools.
// It enables middleware to be added to the service.
type Service interface {
	// Describe computes the descriptive statistics of an ordered sequence of numbers
	Describe(ctx context.Context, values []float64) (stats.Summary, error)
	// Convert renders every number of an ordered sequence in binary and hexadecimal
	Convert(ctx context.Context, values []float64) ([]convert.Row, error)
	// CountWords validates tokens and counts the frequency of the valid ones
	CountWords(ctx context.Context, tokens []string) (words.Tally, error)
}

// Middleware describes a service middleware.
type Middleware func(Service) Service

// ApplyMiddleware applies middlewares to a service.
func ApplyMiddleware(svc Service, mw ...Middleware) Service {
	// Apply each middleware in the chain
	for _, m := range mw {
		svc = m(svc)
	}
	// Return the decorated service
	return svc
}
