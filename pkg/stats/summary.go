package stats

import (
	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/textstats/internal/sentinel"
	"github.com/hyp3rd/textstats/pkg/numeric"
)

// MinSamples is the smallest sequence Describe accepts.
const MinSamples = 2

// Summary holds the descriptive statistics of a sequence.
type Summary struct {
	Count    int            // number of samples
	Mean     numeric.Number // arithmetic mean
	Median   numeric.Number // middle value
	Mode     numeric.Number // most frequent value, meaningful only when HasMode is true
	HasMode  bool           // false when every sample is unique
	Variance numeric.Number // population variance
	StdDev   numeric.Number // population standard deviation
}

// Describe computes every statistic of values.
// It fails with sentinel.ErrNoValidNumbers on an empty sequence and with
// sentinel.ErrSingleSample when only one value is given.
func Describe(values []float64) (Summary, error) {
	switch len(values) {
	case 0:
		return Summary{}, ewrap.Wrap(sentinel.ErrNoValidNumbers, "describe")
	case 1:
		return Summary{}, ewrap.Wrap(sentinel.ErrSingleSample, "describe")
	}

	mode, hasMode := Mode(values)
	variance := Variance(values)

	return Summary{
		Count:    len(values),
		Mean:     Mean(values),
		Median:   Median(values),
		Mode:     mode,
		HasMode:  hasMode,
		Variance: variance,
		StdDev:   StdDev(variance),
	}, nil
}
