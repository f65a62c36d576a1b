package dataset

import (
	"errors"
	"reflect"
	"testing"
)

func validRows() []Row {
	return []Row{
		{Machine: "A", Values: []float64{10, 20}},
		{Machine: "B", Values: []float64{20, 10}},
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		title      string
		headers    []string
		rows       []Row
		comparison ComparisonType
		wantErr    error
	}{
		{
			name:       "valid LIB data set",
			title:      "Time of execution in seconds",
			headers:    []string{MachineColumn, "T1", "T2"},
			rows:       validRows(),
			comparison: LowerIsBetter,
		},
		{
			name:       "valid HIB data set",
			title:      "Requests per second",
			headers:    []string{MachineColumn, "T1", "T2"},
			rows:       validRows(),
			comparison: HigherIsBetter,
		},
		{
			name:       "no machines",
			title:      "Empty",
			headers:    []string{MachineColumn, "T1"},
			rows:       nil,
			comparison: LowerIsBetter,
			wantErr:    ErrNoMachines,
		},
		{
			name:       "headers do not match the vectors",
			title:      "Broken",
			headers:    []string{MachineColumn, "T1", "T2", "T3"},
			rows:       validRows(),
			comparison: LowerIsBetter,
			wantErr:    ErrSchemaMismatch,
		},
		{
			name:    "ragged rows",
			title:   "Broken",
			headers: []string{MachineColumn, "T1", "T2"},
			rows: []Row{
				{Machine: "A", Values: []float64{10, 20}},
				{Machine: "B", Values: []float64{20}},
			},
			comparison: LowerIsBetter,
			wantErr:    ErrRaggedData,
		},
		{
			name:       "unknown comparison type",
			title:      "Broken",
			headers:    []string{MachineColumn, "T1", "T2"},
			rows:       validRows(),
			comparison: ComparisonType("BIGGER"),
			wantErr:    ErrInvalidComparison,
		},
		{
			name:    "duplicate machine",
			title:   "Broken",
			headers: []string{MachineColumn, "T1", "T2"},
			rows: []Row{
				{Machine: "A", Values: []float64{10, 20}},
				{Machine: "A", Values: []float64{20, 10}},
			},
			comparison: LowerIsBetter,
			wantErr:    ErrDuplicateMachine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := New(tt.title, tt.headers, tt.rows, tt.comparison)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("New() unexpected error: %v", err)
			}

			if ds.Title != tt.title {
				t.Errorf("Title = %q, want %q", ds.Title, tt.title)
			}

			if ds.Comparison != tt.comparison {
				t.Errorf("Comparison = %q, want %q", ds.Comparison, tt.comparison)
			}
		})
	}
}

func TestDatasetAccessors(t *testing.T) {
	ds, err := New("Tiny", []string{MachineColumn, "T1", "T2"}, validRows(), LowerIsBetter)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	if got, want := ds.Machines(), []string{"A", "B"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Machines() = %v, want %v", got, want)
	}

	if got, want := ds.Tests(), []string{"T1", "T2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Tests() = %v, want %v", got, want)
	}

	if got, want := ds.Results("A"), []float64{10, 20}; !reflect.DeepEqual(got, want) {
		t.Errorf("Results(A) = %v, want %v", got, want)
	}

	if got := ds.Results("Z"); got != nil {
		t.Errorf("Results(Z) = %v, want nil", got)
	}

	if !ds.Has("B") {
		t.Error("Has(B) = false, want true")
	}

	if ds.Has("Z") {
		t.Error("Has(Z) = true, want false")
	}

	if got, want := ds.Column(0), []float64{10, 20}; !reflect.DeepEqual(got, want) {
		t.Errorf("Column(0) = %v, want %v", got, want)
	}

	if got, want := ds.Column(1), []float64{20, 10}; !reflect.DeepEqual(got, want) {
		t.Errorf("Column(1) = %v, want %v", got, want)
	}
}

func TestDatasetCopiesAreIndependent(t *testing.T) {
	rows := validRows()

	ds, err := New("Tiny", []string{MachineColumn, "T1", "T2"}, rows, LowerIsBetter)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	// Mutating the input rows after construction must not leak in.
	rows[0].Values[0] = 999

	if got := ds.Results("A")[0]; got != 10 {
		t.Errorf("Results(A)[0] = %v after input mutation, want 10", got)
	}

	// Mutating returned slices must not leak back either.
	ds.Machines()[0] = "Z"
	ds.Results("A")[0] = 999

	if got := ds.Machines()[0]; got != "A" {
		t.Errorf("Machines()[0] = %q after caller mutation, want %q", got, "A")
	}

	if got := ds.Results("A")[0]; got != 10 {
		t.Errorf("Results(A)[0] = %v after caller mutation, want 10", got)
	}
}

func TestMachineOrderPreserved(t *testing.T) {
	rows := []Row{
		{Machine: "zeta", Values: []float64{1}},
		{Machine: "alpha", Values: []float64{2}},
		{Machine: "mike", Values: []float64{3}},
	}

	ds, err := New("Order", []string{MachineColumn, "T1"}, rows, HigherIsBetter)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	if got, want := ds.Machines(), []string{"zeta", "alpha", "mike"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Machines() = %v, want %v", got, want)
	}
}

func TestParseComparisonType(t *testing.T) {
	tests := []struct {
		tag     string
		want    ComparisonType
		wantErr bool
	}{
		{tag: "LIB", want: LowerIsBetter},
		{tag: "HIB", want: HigherIsBetter},
		{tag: "lib", wantErr: true},
		{tag: "", wantErr: true},
		{tag: "BIGGER", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := ParseComparisonType(tt.tag)

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidComparison) {
					t.Fatalf("ParseComparisonType(%q) error = %v, want %v", tt.tag, err, ErrInvalidComparison)
				}

				return
			}

			if err != nil {
				t.Fatalf("ParseComparisonType(%q) unexpected error: %v", tt.tag, err)
			}

			if got != tt.want {
				t.Errorf("ParseComparisonType(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestAdjective(t *testing.T) {
	if got := LowerIsBetter.Adjective(); got != "fast" {
		t.Errorf("LowerIsBetter.Adjective() = %q, want %q", got, "fast")
	}

	if got := HigherIsBetter.Adjective(); got != "powerful" {
		t.Errorf("HigherIsBetter.Adjective() = %q, want %q", got, "powerful")
	}
}
