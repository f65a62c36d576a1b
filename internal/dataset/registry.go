package dataset

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownDemo is returned when a demo key has no registry entry.
var ErrUnknownDemo = errors.New("unknown demo data set")

// Registry maps demo keys to data set constructors. Constructors build a
// fresh Dataset per call so callers can never share state through the
// registry.
type Registry map[string]func() (*Dataset, error)

// BuiltinDemos returns the registry of bundled sample data sets.
func BuiltinDemos() Registry {
	return Registry{
		"p": performanceDemo,
		"t": timeDemo,
	}
}

// Lookup resolves a demo key into a freshly built, validated data set.
func (r Registry) Lookup(key string) (*Dataset, error) {
	build, ok := r[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)",
			ErrUnknownDemo, key, strings.Join(r.Keys(), ", "))
	}

	return build()
}

// Keys returns the demo keys in sorted order.
func (r Registry) Keys() []string {
	keys := make([]string, 0, len(r))
	for key := range r {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// performanceDemo bundles redis-benchmark throughput results for four
// machines, measured in requests per second.
func performanceDemo() (*Dataset, error) {
	return New(
		"Performance in requests per second",
		[]string{MachineColumn, "LPOP", "SADD", "LPUSH", "GET", "SET"},
		[]Row{
			{Machine: "A", Values: []float64{415742.52, 342444.95, 306472, 416612.54, 322154.33}},
			{Machine: "B", Values: []float64{1253954.38, 958227.51, 925685.69, 1202972.44, 884748.25}},
			{Machine: "C", Values: []float64{1365233.67, 1017367.58, 963456.75, 1159709.04, 916889.68}},
			{Machine: "D", Values: []float64{415742.52, 342494.98, 306477.42, 416612.54, 322154.54}},
		},
		HigherIsBetter,
	)
}

// timeDemo bundles phoronix-test-suite run times for four machines,
// measured in seconds.
func timeDemo() (*Dataset, error) {
	return New(
		"Time of execution in seconds",
		[]string{MachineColumn, "mafft", "mrbayes", "build-mplayer", "build-php", "compress-gzip", "dcraw", "encode-flac", "gnupg"},
		[]Row{
			{Machine: "A", Values: []float64{18.95, 42.51, 163.14, 87.3, 22.06, 109.64, 13.86, 14.79}},
			{Machine: "B", Values: []float64{20.81, 49.69, 287.17, 461.28, 19.47, 92.81, 10.68, 28.27}},
			{Machine: "C", Values: []float64{15.2, 800.96, 3.89, 289.57, 16.69, 76.23, 9.34, 17.34}},
			{Machine: "D", Values: []float64{37.45, 50.81, 751.93, 757.42, 33.53, 100.75, 29.2, 15.32}},
		},
		LowerIsBetter,
	)
}
