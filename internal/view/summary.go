package view

import (
	"fmt"
	"io"
	"strconv"

	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"

	"benchtab/internal/dataset"
)

// TestSummary aggregates one test column across all machines.
type TestSummary struct {
	Test   string
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Summarize computes per-test statistics across the machines of ds.
func Summarize(ds *dataset.Dataset) ([]TestSummary, error) {
	tests := ds.Tests()
	summaries := make([]TestSummary, 0, len(tests))

	for i, test := range tests {
		column := ds.Column(i)

		min, err := stats.Min(column)
		if err != nil {
			return nil, fmt.Errorf("failed to summarize test %q: %w", test, err)
		}

		max, err := stats.Max(column)
		if err != nil {
			return nil, fmt.Errorf("failed to summarize test %q: %w", test, err)
		}

		mean, err := stats.Mean(column)
		if err != nil {
			return nil, fmt.Errorf("failed to summarize test %q: %w", test, err)
		}

		stdDev, err := stats.StandardDeviation(column)
		if err != nil {
			return nil, fmt.Errorf("failed to summarize test %q: %w", test, err)
		}

		summaries = append(summaries, TestSummary{
			Test:   test,
			Min:    min,
			Max:    max,
			Mean:   mean,
			StdDev: stdDev,
		})
	}

	return summaries, nil
}

// DrawSummary renders per-test statistics as an ASCII table.
func DrawSummary(w io.Writer, summaries []TestSummary, precision int) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Test", "Min", "Max", "Mean", "StdDev"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	format := func(value float64) string {
		return strconv.FormatFloat(value, 'f', precision, 64)
	}

	for _, summary := range summaries {
		table.Append([]string{
			summary.Test,
			format(summary.Min),
			format(summary.Max),
			format(summary.Mean),
			format(summary.StdDev),
		})
	}

	table.Render()
}
