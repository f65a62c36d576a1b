package normalizer

import (
	"errors"
	"fmt"
	"sort"

	"github.com/montanaflynn/stats"

	"benchtab/internal/dataset"
)

// Ranking errors.
var (
	ErrEmptySequence = errors.New("cannot take the geometric mean of an empty sequence")
	ErrNegativeValue = errors.New("cannot take the geometric mean of negative values")
)

// Score pairs a machine with the geometric mean of its normalized results.
type Score struct {
	Machine string
	Mean    float64
}

// GeometricMean returns the nth root of the product of values. A zero
// factor makes the whole mean zero, negative factors are rejected.
func GeometricMean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptySequence
	}

	hasZero := false

	for _, value := range values {
		if value < 0 {
			return 0, fmt.Errorf("%w: %v", ErrNegativeValue, value)
		}

		if value == 0 {
			hasZero = true
		}
	}

	// stats.GeometricMean drops zero factors from its running product, so
	// a zeroed vector has to short-circuit here.
	if hasZero {
		return 0, nil
	}

	mean, err := stats.GeometricMean(values)
	if err != nil {
		return 0, fmt.Errorf("failed to compute geometric mean: %w", err)
	}

	return mean, nil
}

// Rank orders every machine of the view by ascending geometric mean of its
// normalized results. Ties keep the data set's machine order. The reference
// machine ranks with a mean of 1.0 by construction and stays in the result,
// presentation layers decide whether to show it.
func Rank(ds *dataset.Dataset, view *View) ([]Score, error) {
	machines := ds.Machines()
	scores := make([]Score, 0, len(machines))

	for _, machine := range machines {
		mean, err := GeometricMean(view.Ratios[machine])
		if err != nil {
			return nil, fmt.Errorf("failed to rank machine %q: %w", machine, err)
		}

		scores = append(scores, Score{Machine: machine, Mean: mean})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Mean < scores[j].Mean
	})

	return scores, nil
}
