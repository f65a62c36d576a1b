package integration

import (
	"bytes"
	"strings"
	"testing"

	"benchtab/internal/dataset"
	"benchtab/internal/formatter"
	"benchtab/internal/report"
)

func render(t *testing.T, ds *dataset.Dataset) string {
	t.Helper()

	var buf bytes.Buffer
	if err := report.NewRenderer(2).Render(&buf, ds); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	return buf.String()
}

func TestReportFromJSONFile(t *testing.T) {
	ds, err := dataset.FileSource{Path: "../fixtures/times.json"}.Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if got, want := strings.Join(ds.Machines(), ","), "xeon,ryzen,m1"; got != want {
		t.Fatalf("Machines() = %v, want %v", got, want)
	}

	markdown := render(t, ds)

	wants := []string{
		"# Build times in seconds\n",
		"We have the following data:\n",
		"| Computer | build | compress |\n",
		"| ryzen | 20.00 | 40.00 |\n",
		"## With computer xeon as reference\n",
		// ryzen takes twice as long, m1 half as long, on every test.
		"- Computer ryzen is 0.50 times as fast as computer xeon.\n- Computer m1 is 2.00 times as fast as computer xeon.\n",
		"## With computer m1 as reference\n",
		"- Computer ryzen is 0.25 times as fast as computer m1.\n",
	}
	for _, want := range wants {
		if !strings.Contains(markdown, want) {
			t.Errorf("report is missing %q:\n%s", want, markdown)
		}
	}
}

func TestReportFromYAMLFile(t *testing.T) {
	ds, err := dataset.FileSource{Path: "../fixtures/requests.yaml"}.Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if got, want := strings.Join(ds.Machines(), ","), "m2,a14"; got != want {
		t.Fatalf("Machines() = %v, want %v", got, want)
	}

	markdown := render(t, ds)

	wants := []string{
		"# Requests served per second\n",
		// 1200/800 == 900/600 == 1.5 on both tests.
		"- Computer m2 is 1.50 times as powerful as computer a14.\n",
		"- Computer a14 is 0.67 times as powerful as computer m2.\n",
	}
	for _, want := range wants {
		if !strings.Contains(markdown, want) {
			t.Errorf("report is missing %q:\n%s", want, markdown)
		}
	}
}

func TestReportFromDemo(t *testing.T) {
	ds, err := dataset.DemoSource{Key: "t", Registry: dataset.BuiltinDemos()}.Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	markdown := render(t, ds)

	if !strings.Contains(markdown, "# Time of execution in seconds\n") {
		t.Error("report is missing the title")
	}

	if !strings.Contains(markdown, "| A | 18.95 | 42.51 | 163.14 | 87.30 | 22.06 | 109.64 | 13.86 | 14.79 |\n") {
		t.Error("report is missing the raw data row for machine A")
	}

	if count := strings.Count(markdown, "\n## With computer "); count != 4 {
		t.Errorf("got %d reference sections, want 4", count)
	}

	if count := strings.Count(markdown, "\n- Computer "); count != 12 {
		t.Errorf("got %d ranking sentences, want 12", count)
	}
}

func TestReportAlignmentPass(t *testing.T) {
	ds, err := dataset.FileSource{Path: "../fixtures/times.json"}.Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	compact := render(t, ds)
	aligned := formatter.FormatMarkdown(compact)

	if aligned == compact {
		t.Error("alignment pass changed nothing, expected padded tables")
	}

	// The alignment markers survive the pass and the pass is idempotent.
	if !strings.Contains(aligned, "| :------: |") {
		t.Errorf("aligned report lost its centering markers:\n%s", aligned)
	}

	if again := formatter.FormatMarkdown(aligned); again != aligned {
		t.Error("alignment pass is not idempotent")
	}

	// Every table line of one table ends up the same width.
	var tableLines []string

	for _, line := range strings.Split(aligned, "\n") {
		if strings.HasPrefix(line, "|") {
			tableLines = append(tableLines, line)

			continue
		}

		if len(tableLines) > 0 {
			break
		}
	}

	if len(tableLines) < 3 {
		t.Fatalf("expected a table in the report, got %d table lines", len(tableLines))
	}

	for _, line := range tableLines[1:] {
		if len(line) != len(tableLines[0]) {
			t.Errorf("table lines have uneven widths:\n%s", strings.Join(tableLines, "\n"))
		}
	}
}
