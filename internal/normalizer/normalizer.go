// Package normalizer derives normalized views and geometric-mean rankings
// from benchmark data sets.
package normalizer

import (
	"errors"
	"fmt"

	"benchtab/internal/dataset"
)

// Normalization errors.
var (
	ErrDivisionByZero   = errors.New("division by zero")
	ErrUnknownReference = errors.New("reference machine not in data set")
)

// View holds every machine's measurements normalized against one reference
// machine. A ratio above 1.0 means the machine beats the reference on that
// test, whatever the comparison direction of the raw data.
type View struct {
	Reference string
	Ratios    map[string][]float64
}

// Normalize computes the normalized view of ds relative to reference. For
// lower-is-better data the ratio is reference over machine, for
// higher-is-better data it is machine over reference, so the reference row
// always comes out as all ones.
func Normalize(ds *dataset.Dataset, reference string) (*View, error) {
	if !ds.Has(reference) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownReference, reference)
	}

	if ds.Comparison != dataset.LowerIsBetter && ds.Comparison != dataset.HigherIsBetter {
		return nil, fmt.Errorf("%w: %q", dataset.ErrInvalidComparison, ds.Comparison)
	}

	machines := ds.Machines()
	refValues := ds.Results(reference)

	view := &View{
		Reference: reference,
		Ratios:    make(map[string][]float64, len(machines)),
	}

	for _, machine := range machines {
		values := ds.Results(machine)
		ratios := make([]float64, len(values))

		for i, value := range values {
			if ds.Comparison == dataset.LowerIsBetter {
				if value == 0 {
					return nil, fmt.Errorf("%w: machine %q scored zero in test %q",
						ErrDivisionByZero, machine, ds.Headers[i+1])
				}

				ratios[i] = refValues[i] / value
			} else {
				if refValues[i] == 0 {
					return nil, fmt.Errorf("%w: reference machine %q scored zero in test %q",
						ErrDivisionByZero, reference, ds.Headers[i+1])
				}

				ratios[i] = value / refValues[i]
			}
		}

		view.Ratios[machine] = ratios
	}

	return view, nil
}
