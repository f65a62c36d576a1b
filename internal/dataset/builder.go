package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"benchtab/pkg/ux"
)

// ErrInputClosed is returned when the answer stream ends before the data
// set is complete.
var ErrInputClosed = errors.New("input ended before the data set was complete")

// Builder collects a data set interactively, one prompt at a time. Invalid
// numeric or comparison answers are prompted again.
type Builder struct {
	in  *bufio.Reader
	out io.Writer
}

// NewBuilder creates a builder reading answers from in and writing prompts
// to out.
func NewBuilder(in io.Reader, out io.Writer) *Builder {
	return &Builder{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Build runs the prompt flow and returns the validated data set. An empty
// title triggers an extra title prompt.
func (b *Builder) Build(title string) (*Dataset, error) {
	if title == "" {
		answer, err := b.askString("Provide a title for your data set: ")
		if err != nil {
			return nil, err
		}

		title = answer
	}

	numTests, err := b.askCount("How many tests did you run?: ")
	if err != nil {
		return nil, err
	}

	headers := make([]string, 0, numTests+1)
	headers = append(headers, MachineColumn)

	for i := 0; i < numTests; i++ {
		name, err := b.askString(fmt.Sprintf("Name of the test number %d: ", i+1))
		if err != nil {
			return nil, err
		}

		headers = append(headers, name)
	}

	numMachines, err := b.askCount("How many computers did you run your tests on?: ")
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, numMachines)

	for i := 0; i < numMachines; i++ {
		machine := MachineName(i)
		values := make([]float64, 0, numTests)

		for _, test := range headers[1:] {
			value, err := b.askFloat(fmt.Sprintf("Machine %s's result in test %s: ", machine, test))
			if err != nil {
				return nil, err
			}

			values = append(values, value)
		}

		rows = append(rows, Row{Machine: machine, Values: values})
	}

	comparison, err := b.askComparison("Is your data LIB or HIB?: ")
	if err != nil {
		return nil, err
	}

	return New(title, headers, rows, comparison)
}

// askString prints a prompt and reads one trimmed answer line.
func (b *Builder) askString(prompt string) (string, error) {
	fmt.Fprint(b.out, ux.Styles.Prompt.Render(prompt))

	line, err := b.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}

	answer := strings.TrimSpace(line)
	if answer == "" && errors.Is(err, io.EOF) {
		return "", ErrInputClosed
	}

	return answer, nil
}

// askCount asks for a positive integer, prompting again on bad input.
func (b *Builder) askCount(prompt string) (int, error) {
	for {
		answer, err := b.askString(prompt)
		if err != nil {
			return 0, err
		}

		n, convErr := strconv.Atoi(answer)
		if convErr != nil || n < 1 {
			b.complain(fmt.Sprintf("%q is not a valid count, expected a whole number of at least 1.", answer))

			continue
		}

		return n, nil
	}
}

// askFloat asks for a measurement, prompting again on bad input.
func (b *Builder) askFloat(prompt string) (float64, error) {
	for {
		answer, err := b.askString(prompt)
		if err != nil {
			return 0, err
		}

		value, convErr := strconv.ParseFloat(answer, 64)
		if convErr != nil {
			b.complain(fmt.Sprintf("%q is not a valid measurement, expected a number.", answer))

			continue
		}

		return value, nil
	}
}

// askComparison asks for the comparison type, prompting again until the
// answer is LIB or HIB.
func (b *Builder) askComparison(prompt string) (ComparisonType, error) {
	for {
		answer, err := b.askString(prompt)
		if err != nil {
			return "", err
		}

		comparison, parseErr := ParseComparisonType(strings.ToUpper(answer))
		if parseErr != nil {
			b.complain(fmt.Sprintf("%q is not a valid comparison type, expected LIB or HIB.", answer))

			continue
		}

		return comparison, nil
	}
}

func (b *Builder) complain(message string) {
	fmt.Fprintln(b.out, ux.Styles.Warning.Render(message))
}

// MachineName produces spreadsheet-style machine names: A..Z, AA, AB, ...
func MachineName(i int) string {
	name := ""
	for i >= 0 {
		name = string(rune('A'+i%26)) + name
		i = i/26 - 1
	}

	return name
}
