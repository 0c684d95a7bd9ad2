package stats

import "slices"

// Sample accumulates values in insertion order for a single computation pass.
// It is not safe for concurrent use.
type Sample struct {
	values []float64
}

// NewSample creates an empty sample with room for size values.
func NewSample(size int) *Sample {
	return &Sample{values: make([]float64, 0, max(size, 0))}
}

// Add appends values to the sample.
func (s *Sample) Add(values ...float64) {
	s.values = append(s.values, values...)
}

// Len returns the number of values collected.
func (s *Sample) Len() int { return len(s.values) }

// Values returns a copy of the collected values in insertion order.
func (s *Sample) Values() []float64 {
	return slices.Clone(s.values)
}

// Describe computes the statistics of the collected values.
func (s *Sample) Describe() (Summary, error) {
	return Describe(s.values)
}
