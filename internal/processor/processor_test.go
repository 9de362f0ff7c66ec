package processor

import (
	"math"
	"testing"
	"time"

	"github.com/fingrid-tools/gridview/internal/faults"
	"github.com/fingrid-tools/gridview/internal/models"
)

func ptr(v float64) *float64 { return &v }

func demoRange() models.TimeRange {
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	return models.TimeRange{Start: start, End: start.Add(72 * time.Hour)}
}

func TestToDataSet_SortsByTimestamp(t *testing.T) {
	raw := []models.RawRecord{
		{StartTime: "2024-01-15T02:00:00Z", Value: ptr(3)},
		{StartTime: "2024-01-15T00:00:00Z", Value: ptr(1)},
		{StartTime: "2024-01-15T01:00:00Z", Value: ptr(2)},
	}

	ds, err := ToDataSet(124, demoRange(), raw)
	if err != nil {
		t.Fatalf("ToDataSet failed: %v", err)
	}

	for i, want := range []float64{1, 2, 3} {
		if ds.Records[i].Value != want {
			t.Errorf("Record %d value = %f, want %f", i, ds.Records[i].Value, want)
		}
	}
	for i := 1; i < len(ds.Records); i++ {
		if ds.Records[i].Timestamp.Before(ds.Records[i-1].Timestamp) {
			t.Errorf("Records not sorted at index %d", i)
		}
	}
}

func TestToDataSet_StableForEqualTimestamps(t *testing.T) {
	raw := []models.RawRecord{
		{StartTime: "2024-01-15T00:00:00Z", Value: ptr(1)},
		{StartTime: "2024-01-15T00:00:00Z", Value: ptr(2)},
		{StartTime: "2024-01-15T00:00:00Z", Value: ptr(3)},
	}

	ds, err := ToDataSet(124, demoRange(), raw)
	if err != nil {
		t.Fatalf("ToDataSet failed: %v", err)
	}

	for i, want := range []float64{1, 2, 3} {
		if ds.Records[i].Value != want {
			t.Errorf("Tie order not preserved: record %d = %f, want %f", i, ds.Records[i].Value, want)
		}
	}
}

func TestToDataSet_SortIsIdempotent(t *testing.T) {
	raw := []models.RawRecord{
		{StartTime: "2024-01-15T03:00:00Z", Value: ptr(4)},
		{StartTime: "2024-01-15T01:00:00Z", Value: ptr(2)},
		{StartTime: "2024-01-15T02:00:00Z", Value: ptr(3)},
		{StartTime: "2024-01-15T00:00:00Z", Value: ptr(1)},
	}

	first, err := ToDataSet(124, demoRange(), raw)
	if err != nil {
		t.Fatalf("ToDataSet failed: %v", err)
	}

	// Feed the sorted output back through; the sequence must not change.
	resorted := make([]models.RawRecord, len(first.Records))
	for i, r := range first.Records {
		v := r.Value
		resorted[i] = models.RawRecord{StartTime: r.Timestamp.Format(time.RFC3339), Value: &v}
	}
	second, err := ToDataSet(124, demoRange(), resorted)
	if err != nil {
		t.Fatalf("ToDataSet failed on sorted input: %v", err)
	}

	for i := range first.Records {
		if !first.Records[i].Timestamp.Equal(second.Records[i].Timestamp) ||
			first.Records[i].Value != second.Records[i].Value {
			t.Errorf("Sorting not idempotent at index %d", i)
		}
	}
}

func TestToDataSet_MalformedRecords(t *testing.T) {
	tests := []struct {
		name string
		raw  []models.RawRecord
	}{
		{name: "missing value", raw: []models.RawRecord{{StartTime: "2024-01-15T00:00:00Z"}}},
		{name: "empty timestamp", raw: []models.RawRecord{{StartTime: "", Value: ptr(1)}}},
		{name: "garbage timestamp", raw: []models.RawRecord{{StartTime: "last tuesday", Value: ptr(1)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToDataSet(124, demoRange(), tt.raw)
			if faults.KindOf(err) != faults.KindDataProcessing {
				t.Errorf("Expected data processing fault, got %v", err)
			}
		})
	}
}

func TestComputeStatistics_EmptyDataSet(t *testing.T) {
	ds, err := ToDataSet(124, demoRange(), nil)
	if err != nil {
		t.Fatalf("ToDataSet failed: %v", err)
	}

	_, err = ComputeStatistics(ds)
	if faults.KindOf(err) != faults.KindDataProcessing {
		t.Fatalf("Expected data processing fault for empty dataset, got %v", err)
	}
}

func TestComputeStatistics_SingleRecord(t *testing.T) {
	ds := &models.DataSet{
		VariableID: 124,
		Range:      demoRange(),
		Records: []models.DataRecord{
			{Timestamp: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), Value: 1234.5},
		},
	}

	stats, err := ComputeStatistics(ds)
	if err != nil {
		t.Fatalf("ComputeStatistics failed: %v", err)
	}

	if stats.Count != 1 {
		t.Errorf("Count = %d, want 1", stats.Count)
	}
	if stats.StdDev != 0 {
		t.Errorf("StdDev = %f, want exactly 0 for a single record", stats.StdDev)
	}
	if stats.Mean != 1234.5 || stats.Min != 1234.5 || stats.Max != 1234.5 || stats.Median != 1234.5 {
		t.Errorf("Degenerate statistics wrong: %+v", stats)
	}
}

func TestComputeStatistics_KnownValues(t *testing.T) {
	// values: 2, 4, 4, 4, 5, 5, 7, 9
	// mean 5, median 4.5, sample variance 32/7
	values := []float64{9, 2, 5, 4, 7, 4, 5, 4}
	base := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	records := make([]models.DataRecord, len(values))
	for i, v := range values {
		records[i] = models.DataRecord{Timestamp: base.Add(time.Duration(i) * time.Hour), Value: v}
	}
	ds := &models.DataSet{VariableID: 124, Range: demoRange(), Records: records}

	stats, err := ComputeStatistics(ds)
	if err != nil {
		t.Fatalf("ComputeStatistics failed: %v", err)
	}

	const eps = 1e-9
	if stats.Count != 8 {
		t.Errorf("Count = %d, want 8", stats.Count)
	}
	if math.Abs(stats.Mean-5) > eps {
		t.Errorf("Mean = %f, want 5", stats.Mean)
	}
	if stats.Max != 9 || stats.Min != 2 {
		t.Errorf("Max/Min = %f/%f, want 9/2", stats.Max, stats.Min)
	}
	if math.Abs(stats.Median-4.5) > eps {
		t.Errorf("Median = %f, want 4.5 (mean of two middle values)", stats.Median)
	}
	wantStdDev := math.Sqrt(32.0 / 7.0)
	if math.Abs(stats.StdDev-wantStdDev) > eps {
		t.Errorf("StdDev = %f, want %f (sample, n-1)", stats.StdDev, wantStdDev)
	}

	if err := stats.Validate(); err != nil {
		t.Errorf("Statistics failed validation: %v", err)
	}
}

func TestComputeStatistics_OddCountMedian(t *testing.T) {
	base := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	records := []models.DataRecord{
		{Timestamp: base, Value: 10},
		{Timestamp: base.Add(time.Hour), Value: 30},
		{Timestamp: base.Add(2 * time.Hour), Value: 20},
	}
	ds := &models.DataSet{VariableID: 124, Range: demoRange(), Records: records}

	stats, err := ComputeStatistics(ds)
	if err != nil {
		t.Fatalf("ComputeStatistics failed: %v", err)
	}
	if stats.Median != 20 {
		t.Errorf("Median = %f, want 20", stats.Median)
	}
}

func TestComputeStatistics_HourlyScenario(t *testing.T) {
	// 72 hourly records with values in [1100, 1350], mirroring a three-day
	// hydro production query.
	base := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	raw := make([]models.RawRecord, 72)
	for i := range raw {
		v := 1100.0 + float64(i*250)/71.0
		value := v
		raw[i] = models.RawRecord{
			StartTime: base.Add(time.Duration(i) * time.Hour).Format(time.RFC3339),
			Value:     &value,
		}
	}

	ds, err := ToDataSet(124, demoRange(), raw)
	if err != nil {
		t.Fatalf("ToDataSet failed: %v", err)
	}
	stats, err := ComputeStatistics(ds)
	if err != nil {
		t.Fatalf("ComputeStatistics failed: %v", err)
	}

	if stats.Count != 72 {
		t.Errorf("Count = %d, want 72", stats.Count)
	}
	if math.Abs(stats.Mean-1225) > 0.01 {
		t.Errorf("Mean = %f, want 1225", stats.Mean)
	}
	if stats.Min != 1100 || stats.Max != 1350 {
		t.Errorf("Min/Max = %f/%f, want 1100/1350", stats.Min, stats.Max)
	}
}

func TestDisplayRows(t *testing.T) {
	ds := &models.DataSet{
		VariableID: 124,
		Range:      demoRange(),
		Records: []models.DataRecord{
			{Timestamp: time.Date(2024, 1, 15, 6, 30, 0, 0, time.UTC), Value: 1234.567},
			{Timestamp: time.Date(2024, 1, 15, 7, 30, 0, 0, time.UTC), Value: 1000},
		},
	}

	rows := DisplayRows(ds)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].Timestamp != "2024-01-15 06:30:00" {
		t.Errorf("Timestamp = %q, want %q", rows[0].Timestamp, "2024-01-15 06:30:00")
	}
	if rows[0].Value != "1234.57" {
		t.Errorf("Value = %q, want %q", rows[0].Value, "1234.57")
	}
	if rows[1].Value != "1000.00" {
		t.Errorf("Value = %q, want %q", rows[1].Value, "1000.00")
	}
}
