// Package input parses and constrains user-supplied variable identifiers
// and time-range strings into typed values before any network call is made.
// All functions are pure; failures are validation faults.
package input

import (
	"strconv"
	"time"

	"github.com/fingrid-tools/gridview/internal/faults"
	"github.com/fingrid-tools/gridview/internal/models"
)

// Accepted timestamp layouts.
const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02T15:04:05Z"
)

// ParseVariableID parses a raw variable ID string. Only non-negative
// integers are accepted; the ID space itself is externally defined, so
// existence is discovered through the API, not here.
func ParseVariableID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, faults.Validation("invalid variable ID %q: must be a non-negative integer", raw)
	}
	if id < 0 {
		return 0, faults.Validation("invalid variable ID %q: must not be negative", raw)
	}
	return id, nil
}

// ParseTimestamp parses a raw timestamp string. Exactly two shapes are
// accepted: a bare date (YYYY-MM-DD), interpreted as midnight UTC, and a
// full timestamp (YYYY-MM-DDTHH:MM:SSZ), whose literal time is preserved.
func ParseTimestamp(raw string) (time.Time, error) {
	if ts, err := time.ParseInLocation(layoutDate, raw, time.UTC); err == nil {
		return ts, nil
	}
	if ts, err := time.ParseInLocation(layoutDateTime, raw, time.UTC); err == nil {
		return ts, nil
	}
	return time.Time{}, faults.Validation(
		"invalid timestamp %q: expected %s or %s", raw, layoutDate, layoutDateTime)
}

// ParseTimeRange parses both bounds and checks that start is strictly
// before end. No upper bound on range length is enforced here; the API's
// own limits surface through its response.
func ParseTimeRange(startRaw, endRaw string) (models.TimeRange, error) {
	start, err := ParseTimestamp(startRaw)
	if err != nil {
		return models.TimeRange{}, err
	}
	end, err := ParseTimestamp(endRaw)
	if err != nil {
		return models.TimeRange{}, err
	}
	if !start.Before(end) {
		return models.TimeRange{}, faults.Validation(
			"invalid time range: start %q must be strictly before end %q", startRaw, endRaw)
	}
	return models.TimeRange{Start: start, End: end}, nil
}
