// Package dataset defines the benchmark data set model, its validation
// rules and the sources that produce validated data sets.
package dataset

import (
	"errors"
	"fmt"
)

// MachineColumn is the fixed label of the first header column.
const MachineColumn = "Computer"

// Validation errors.
var (
	ErrSchemaMismatch    = errors.New("column headers and data set don't match")
	ErrRaggedData        = errors.New("rows don't have the same number of data points")
	ErrInvalidComparison = errors.New("invalid comparison type")
	ErrNoMachines        = errors.New("data set contains no machines")
	ErrDuplicateMachine  = errors.New("duplicate machine in data set")
)

// ComparisonType states whether smaller or larger raw measurements are
// preferable.
type ComparisonType string

// Recognized comparison types.
const (
	// LowerIsBetter marks measurements where smaller values win, such as
	// elapsed time.
	LowerIsBetter ComparisonType = "LIB"
	// HigherIsBetter marks measurements where larger values win, such as
	// throughput.
	HigherIsBetter ComparisonType = "HIB"
)

// ParseComparisonType converts a wire tag into a ComparisonType.
func ParseComparisonType(tag string) (ComparisonType, error) {
	switch ComparisonType(tag) {
	case LowerIsBetter, HigherIsBetter:
		return ComparisonType(tag), nil
	default:
		return "", fmt.Errorf("%w: %q (must be either LIB or HIB)", ErrInvalidComparison, tag)
	}
}

// Adjective returns the word used in summary sentences for this comparison
// type.
func (t ComparisonType) Adjective() string {
	if t == HigherIsBetter {
		return "powerful"
	}

	return "fast"
}

// Row pairs a machine with its measurement vector. Rows carry the display
// order of machines, which a plain map would lose.
type Row struct {
	Machine string
	Values  []float64
}

// Dataset wraps a set of benchmark scores for a group of machines. It is
// validated on construction and read-only afterwards.
type Dataset struct {
	Title      string
	Headers    []string
	Comparison ComparisonType

	machines []string
	results  map[string][]float64
}

// New assembles a Dataset from its parts and validates it.
func New(title string, headers []string, rows []Row, comparison ComparisonType) (*Dataset, error) {
	ds := &Dataset{
		Title:      title,
		Headers:    append([]string(nil), headers...),
		Comparison: comparison,
		machines:   make([]string, 0, len(rows)),
		results:    make(map[string][]float64, len(rows)),
	}

	for _, row := range rows {
		if _, ok := ds.results[row.Machine]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMachine, row.Machine)
		}

		values := make([]float64, len(row.Values))
		copy(values, row.Values)

		ds.machines = append(ds.machines, row.Machine)
		ds.results[row.Machine] = values
	}

	if err := ds.Validate(); err != nil {
		return nil, err
	}

	return ds, nil
}

// Validate checks the data set invariants: at least one machine, a
// rectangular measurement matrix matching the header count, and a
// recognized comparison type.
func (d *Dataset) Validate() error {
	if len(d.machines) == 0 {
		return ErrNoMachines
	}

	first := d.results[d.machines[0]]
	if len(d.Headers)-1 != len(first) {
		return fmt.Errorf("%w: %d test columns for %d measurements",
			ErrSchemaMismatch, len(d.Headers)-1, len(first))
	}

	for _, machine := range d.machines {
		if len(d.results[machine]) != len(first) {
			return fmt.Errorf("%w: machine %q has %d data points, expected %d",
				ErrRaggedData, machine, len(d.results[machine]), len(first))
		}
	}

	if d.Comparison != LowerIsBetter && d.Comparison != HigherIsBetter {
		return fmt.Errorf("%w: %q (must be either LIB or HIB)", ErrInvalidComparison, d.Comparison)
	}

	return nil
}

// Machines returns the machine identifiers in insertion order.
func (d *Dataset) Machines() []string {
	out := make([]string, len(d.machines))
	copy(out, d.machines)

	return out
}

// Has reports whether machine exists in the data set.
func (d *Dataset) Has(machine string) bool {
	_, ok := d.results[machine]

	return ok
}

// Results returns a copy of the measurement vector for machine, or nil when
// the machine is unknown.
func (d *Dataset) Results(machine string) []float64 {
	values, ok := d.results[machine]
	if !ok {
		return nil
	}

	out := make([]float64, len(values))
	copy(out, values)

	return out
}

// Tests returns the test names, i.e. the headers without the leading
// machine column.
func (d *Dataset) Tests() []string {
	if len(d.Headers) <= 1 {
		return nil
	}

	out := make([]string, len(d.Headers)-1)
	copy(out, d.Headers[1:])

	return out
}

// Column returns every machine's value for test index i, in machine order.
// The index must name a valid test.
func (d *Dataset) Column(i int) []float64 {
	column := make([]float64, 0, len(d.machines))
	for _, machine := range d.machines {
		column = append(column, d.results[machine][i])
	}

	return column
}

// String returns a short description of the data set.
func (d *Dataset) String() string {
	return fmt.Sprintf("Dataset{Title: %q, Machines: %d, Tests: %d, Type: %s}",
		d.Title, len(d.machines), len(d.Tests()), d.Comparison)
}
