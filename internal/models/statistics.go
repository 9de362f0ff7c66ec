package models

import "errors"

// Statistics is a read-only summary over a dataset's value column,
// computed once. Statistics over zero records are undefined; callers must
// signal that condition instead of constructing a zero-valued summary.
type Statistics struct {
	Count  int
	Mean   float64
	Max    float64
	Min    float64
	Median float64
	StdDev float64 // sample standard deviation (n-1); 0 when Count == 1
}

// Validate checks internal consistency of the summary.
func (s *Statistics) Validate() error {
	if s.Count < 1 {
		return errors.New("statistics count must be at least 1")
	}
	if s.Min > s.Max {
		return errors.New("minimum must not exceed maximum")
	}
	if s.Mean < s.Min || s.Mean > s.Max {
		return errors.New("mean must lie between minimum and maximum")
	}
	if s.StdDev < 0 {
		return errors.New("standard deviation must not be negative")
	}
	return nil
}

// VariableInfo describes one well-known Fingrid variable for the static
// reference table. The ID space is externally defined; existence of other
// IDs is only discoverable through the API.
type VariableInfo struct {
	ID          int
	Description string
}
