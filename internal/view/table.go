// Package view renders data sets and their statistics for the terminal.
package view

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"benchtab/internal/dataset"
)

// Preview draws the raw measurements of ds as an ASCII table.
func Preview(w io.Writer, ds *dataset.Dataset, precision int) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(ds.Headers)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_CENTER)

	for _, machine := range ds.Machines() {
		row := make([]string, 0, len(ds.Headers))
		row = append(row, machine)

		for _, value := range ds.Results(machine) {
			row = append(row, strconv.FormatFloat(value, 'f', precision, 64))
		}

		table.Append(row)
	}

	table.Render()
}

// DrawRegistry lists every demo data set of the registry as an ASCII table.
func DrawRegistry(w io.Writer, registry dataset.Registry) error {
	// Demo titles are longer than tablewriter's default column width, so
	// wrapping would split them across rows.
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Key", "Title", "Type", "Machines", "Tests"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	for _, key := range registry.Keys() {
		ds, err := registry.Lookup(key)
		if err != nil {
			return err
		}

		table.Append([]string{
			key,
			ds.Title,
			string(ds.Comparison),
			strconv.Itoa(len(ds.Machines())),
			strconv.Itoa(len(ds.Tests())),
		})
	}

	table.Render()

	return nil
}
