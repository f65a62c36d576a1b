// Package report renders benchmark data sets as markdown comparison
// documents.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"benchtab/internal/dataset"
	"benchtab/internal/normalizer"
)

// Renderer produces the markdown comparison report for a data set.
type Renderer struct {
	precision int
}

// NewRenderer creates a renderer formatting values with the given number of
// decimal places.
func NewRenderer(precision int) *Renderer {
	return &Renderer{precision: precision}
}

// Render writes the full report for ds to w: the raw data table followed by
// one normalized section per machine acting as reference, each closed by
// the ranking sentences. The report is built in memory first, so nothing
// reaches w when rendering fails halfway.
func (r *Renderer) Render(w io.Writer, ds *dataset.Dataset) error {
	var sb strings.Builder

	if err := r.render(&sb, ds); err != nil {
		return err
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

func (r *Renderer) render(sb *strings.Builder, ds *dataset.Dataset) error {
	fmt.Fprintf(sb, "# %s\n", ds.Title)
	sb.WriteString("\nWe have the following data:\n\n")
	r.writeTable(sb, ds.Headers, r.rawRows(ds))

	adjective := ds.Comparison.Adjective()

	for _, reference := range ds.Machines() {
		view, err := normalizer.Normalize(ds, reference)
		if err != nil {
			return fmt.Errorf("failed to normalize against %q: %w", reference, err)
		}

		scores, err := normalizer.Rank(ds, view)
		if err != nil {
			return err
		}

		fmt.Fprintf(sb, "\n## With computer %s as reference\n\n", reference)
		sb.WriteString("The normalized data looks like this\n\n")
		r.writeTable(sb, ds.Headers, r.normalizedRows(ds, view))
		sb.WriteString("\nIf we order their geometric means in increasing order, we have that:\n\n")

		for _, score := range scores {
			if score.Machine == reference {
				continue
			}

			fmt.Fprintf(sb, "- Computer %s is %s times as %s as computer %s.\n",
				score.Machine, r.format(score.Mean), adjective, reference)
		}
	}

	return nil
}

// writeTable emits a centered markdown table. Cells are not padded here,
// column alignment is a separate formatting pass.
func (r *Renderer) writeTable(sb *strings.Builder, headers []string, rows [][]string) {
	fmt.Fprintf(sb, "| %s |\n", strings.Join(headers, " | "))

	separators := make([]string, len(headers))
	for i := range separators {
		separators[i] = ":---:"
	}

	fmt.Fprintf(sb, "| %s |\n", strings.Join(separators, " | "))

	for _, row := range rows {
		fmt.Fprintf(sb, "| %s |\n", strings.Join(row, " | "))
	}
}

func (r *Renderer) rawRows(ds *dataset.Dataset) [][]string {
	machines := ds.Machines()
	rows := make([][]string, 0, len(machines))

	for _, machine := range machines {
		rows = append(rows, r.row(machine, ds.Results(machine)))
	}

	return rows
}

func (r *Renderer) normalizedRows(ds *dataset.Dataset, view *normalizer.View) [][]string {
	machines := ds.Machines()
	rows := make([][]string, 0, len(machines))

	for _, machine := range machines {
		rows = append(rows, r.row(machine, view.Ratios[machine]))
	}

	return rows
}

func (r *Renderer) row(machine string, values []float64) []string {
	row := make([]string, 0, len(values)+1)
	row = append(row, machine)

	for _, value := range values {
		row = append(row, r.format(value))
	}

	return row
}

func (r *Renderer) format(value float64) string {
	return strconv.FormatFloat(value, 'f', r.precision, 64)
}
