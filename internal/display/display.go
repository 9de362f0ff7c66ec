// Package display renders datasets, statistics, and the variable reference
// table for the console. It consumes already-formatted rows from the
// processor and never computes anything itself.
package display

import (
	"fmt"
	"strings"

	"github.com/fingrid-tools/gridview/internal/models"
	"github.com/fingrid-tools/gridview/internal/processor"
)

const rule = "--------------------------------------------------"

// PrintTable prints a dataset as a two-column table, capped at maxRows.
func PrintTable(ds *models.DataSet, maxRows int) {
	if ds.Empty() {
		fmt.Println("No data available for the specified parameters.")
		return
	}

	rows := processor.DisplayRows(ds)

	fmt.Printf("\nData for variable %d:\n", ds.VariableID)
	fmt.Println(rule)
	fmt.Printf("%-21s %12s\n", "Time (UTC)", "Value")
	fmt.Println(rule)

	shown := len(rows)
	if maxRows > 0 && shown > maxRows {
		shown = maxRows
	}
	for _, row := range rows[:shown] {
		fmt.Printf("%-21s %12s\n", row.Timestamp, row.Value)
	}
	if shown < len(rows) {
		fmt.Printf("... (showing %d of %d rows)\n", shown, len(rows))
	}
	fmt.Println(rule)
}

// PrintStatistics prints the summary statistics block.
func PrintStatistics(stats *models.Statistics) {
	fmt.Println("\nStatistics:")
	fmt.Println(rule)
	fmt.Printf("Count:     %d\n", stats.Count)
	fmt.Printf("Average:   %.2f\n", stats.Mean)
	fmt.Printf("Maximum:   %.2f\n", stats.Max)
	fmt.Printf("Minimum:   %.2f\n", stats.Min)
	fmt.Printf("Median:    %.2f\n", stats.Median)
	fmt.Printf("Std Dev:   %.2f\n", stats.StdDev)
	fmt.Println(rule)
}

// PrintVariables prints the static reference table of well-known variables.
func PrintVariables(variables []models.VariableInfo) {
	fmt.Println("\nAvailable electricity variables:")
	fmt.Println(rule)
	for _, v := range variables {
		fmt.Printf("  ID %3d - %s\n", v.ID, v.Description)
	}
	fmt.Println(rule)
}

// PrintChart prints an ASCII line chart of the dataset with a title.
func PrintChart(ds *models.DataSet, title string, width, height int) {
	fmt.Printf("\n%s\n", title)
	fmt.Print(Chart(ds, width, height))
}

// Chart renders the dataset's value series as an ASCII chart string of at
// most width columns and height rows (plus axis lines). Returns a short
// placeholder line for empty datasets.
func Chart(ds *models.DataSet, width, height int) string {
	if ds.Empty() {
		return "(no data to chart)\n"
	}
	if width < 2 {
		width = 2
	}
	if height < 2 {
		height = 2
	}

	values := ds.Values()
	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	columns := sampleColumns(values, width)

	grid := make([][]byte, height)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", len(columns)))
	}
	for x, v := range columns {
		y := 0
		if max > min {
			y = int((v - min) / (max - min) * float64(height-1))
		}
		// Row 0 is the top of the chart.
		grid[height-1-y][x] = '*'
	}

	labels := []string{fmt.Sprintf("%.2f", max), fmt.Sprintf("%.2f", min)}
	gutter := 0
	for _, l := range labels {
		if len(l) > gutter {
			gutter = len(l)
		}
	}

	var b strings.Builder
	for i, row := range grid {
		label := strings.Repeat(" ", gutter)
		if i == 0 {
			label = fmt.Sprintf("%*s", gutter, labels[0])
		} else if i == height-1 {
			label = fmt.Sprintf("%*s", gutter, labels[1])
		}
		b.WriteString(label)
		b.WriteString(" |")
		b.Write(row)
		b.WriteByte('\n')
	}

	b.WriteString(strings.Repeat(" ", gutter))
	b.WriteString(" +")
	b.WriteString(strings.Repeat("-", len(columns)))
	b.WriteByte('\n')

	start := ds.Records[0].Timestamp.UTC().Format("2006-01-02 15:04")
	end := ds.Records[len(ds.Records)-1].Timestamp.UTC().Format("2006-01-02 15:04")
	b.WriteString(fmt.Sprintf("%s  %s .. %s\n", strings.Repeat(" ", gutter), start, end))

	return b.String()
}

// sampleColumns reduces the value series to at most width columns by
// picking evenly spaced samples. Series shorter than width map one value
// per column.
func sampleColumns(values []float64, width int) []float64 {
	if len(values) <= width {
		return values
	}
	columns := make([]float64, width)
	for x := 0; x < width; x++ {
		idx := x * (len(values) - 1) / (width - 1)
		columns[x] = values[idx]
	}
	return columns
}
