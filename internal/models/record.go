// Package models defines the core domain entities for the gridview
// application: raw API rows, parsed observations, datasets, and derived
// statistics. Models that cross component boundaries include built-in
// validation to keep data integrity explicit.
package models

import (
	"errors"
	"time"
)

// RawRecord is one row of the Fingrid API response body, before timestamp
// parsing. Value is a pointer so a missing "value" field is distinguishable
// from a literal zero.
type RawRecord struct {
	StartTime string   `json:"start_time"`
	Value     *float64 `json:"value"`
}

// DataRecord is one parsed observation: a timestamp and a measured value.
type DataRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// Validate checks that the record carries a usable timestamp.
func (r *DataRecord) Validate() error {
	if r.Timestamp.IsZero() {
		return errors.New("record timestamp must not be zero")
	}
	return nil
}

// DisplayRow is a formatted (timestamp, value) pair ready for table output.
type DisplayRow struct {
	Timestamp string
	Value     string
}
