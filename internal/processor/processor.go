// Package processor transforms raw API rows into a normalized, timestamp-
// sorted dataset and computes descriptive statistics over the value column.
// All functions operate on one immutable dataset at a time; nothing here
// performs I/O.
package processor

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/fingrid-tools/gridview/internal/faults"
	"github.com/fingrid-tools/gridview/internal/models"
)

// displayTimeLayout is the timestamp form used in console tables.
const displayTimeLayout = "2006-01-02 15:04:05"

// ToDataSet parses each raw record and returns a dataset sorted ascending
// by timestamp. The sort is stable, so records with equal timestamps keep
// their original order. Malformed rows reaching this layer are a data
// processing fault: the client is responsible for rejecting bodies that do
// not decode at all.
func ToDataSet(variableID int, tr models.TimeRange, raw []models.RawRecord) (*models.DataSet, error) {
	records := make([]models.DataRecord, 0, len(raw))
	for i, r := range raw {
		if r.Value == nil {
			return nil, faults.DataProcessing("record %d is missing the value field", i)
		}
		ts, err := time.Parse(time.RFC3339, r.StartTime)
		if err != nil {
			return nil, faults.DataProcessingWrap(err, "record %d has a malformed start_time %q", i, r.StartTime)
		}
		records = append(records, models.DataRecord{
			Timestamp: ts.UTC(),
			Value:     *r.Value,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})

	return &models.DataSet{
		QueryID:    uuid.NewString(),
		VariableID: variableID,
		Range:      tr,
		Records:    records,
	}, nil
}

// ComputeStatistics computes the summary statistics over a dataset's value
// column. Statistics over zero records are undefined, not zero-valued, so
// an empty dataset is a data processing fault: callers must be able to
// tell "no data" from "all zeros".
func ComputeStatistics(ds *models.DataSet) (*models.Statistics, error) {
	if ds.Empty() {
		return nil, faults.DataProcessing("no records: statistics are undefined for an empty dataset")
	}

	values := ds.Values()
	n := len(values)

	sum := 0.0
	min := values[0]
	max := values[0]
	for _, v := range values {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	mean := sum / float64(n)

	// Sample standard deviation (n-1). A single observation has no spread
	// to estimate, so it reports 0 rather than NaN.
	stdDev := 0.0
	if n > 1 {
		var sumSq float64
		for _, v := range values {
			d := v - mean
			sumSq += d * d
		}
		stdDev = math.Sqrt(sumSq / float64(n-1))
	}

	return &models.Statistics{
		Count:  n,
		Mean:   mean,
		Max:    max,
		Min:    min,
		Median: median(values),
		StdDev: stdDev,
	}, nil
}

// median returns the middle value, or the mean of the two middle values for
// even counts. The input slice is not modified.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// DisplayRows formats a dataset's records for table output: timestamps as
// YYYY-MM-DD HH:MM:SS and values with two decimal places. Pure formatting;
// rendering belongs to the display layer.
func DisplayRows(ds *models.DataSet) []models.DisplayRow {
	rows := make([]models.DisplayRow, len(ds.Records))
	for i, r := range ds.Records {
		rows[i] = models.DisplayRow{
			Timestamp: r.Timestamp.UTC().Format(displayTimeLayout),
			Value:     fmt.Sprintf("%.2f", r.Value),
		}
	}
	return rows
}
