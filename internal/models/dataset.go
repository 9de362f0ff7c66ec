package models

import (
	"errors"
	"fmt"
	"time"
)

// TimeRange is a validated (start, end) pair of UTC timestamps. It is
// constructed once per query, immutable, and discarded after the request.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Validate checks that both bounds are set and start is strictly before end.
func (tr TimeRange) Validate() error {
	if tr.Start.IsZero() || tr.End.IsZero() {
		return errors.New("time range bounds must not be zero")
	}
	if !tr.Start.Before(tr.End) {
		return errors.New("start time must be strictly before end time")
	}
	return nil
}

// Duration returns the span covered by the range.
func (tr TimeRange) Duration() time.Duration {
	return tr.End.Sub(tr.Start)
}

// DataSet is an ordered sequence of observations for one variable over one
// requested range. It is owned by the caller and never mutated after
// statistics are computed. QueryID correlates log lines for one query.
type DataSet struct {
	QueryID    string
	VariableID int
	Range      TimeRange
	Records    []DataRecord
}

// Validate checks dataset metadata and every contained record.
func (ds *DataSet) Validate() error {
	if ds.VariableID < 0 {
		return errors.New("variable ID must not be negative")
	}
	if err := ds.Range.Validate(); err != nil {
		return fmt.Errorf("invalid range: %w", err)
	}
	for i := range ds.Records {
		if err := ds.Records[i].Validate(); err != nil {
			return fmt.Errorf("invalid record %d: %w", i, err)
		}
	}
	return nil
}

// Empty reports whether the dataset holds no records.
func (ds *DataSet) Empty() bool {
	return len(ds.Records) == 0
}

// Values returns the value column in record order.
func (ds *DataSet) Values() []float64 {
	values := make([]float64, len(ds.Records))
	for i, r := range ds.Records {
		values[i] = r.Value
	}
	return values
}
