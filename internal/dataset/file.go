package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loading errors.
var (
	ErrFileNotFound      = errors.New("data set file not found")
	ErrUnsupportedFormat = errors.New("unsupported data set format")
)

// LoadFile reads a data set from a JSON or YAML file. The machine order of
// the document is preserved. The returned data set is validated.
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}

		return nil, fmt.Errorf("failed to read data set file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return parseJSON(data)
	case ".yaml", ".yml":
		return parseYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q (expected .json, .yaml or .yml)",
			ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// jsonDataset mirrors the object form of a data set file. Measurements stay
// raw so their key order can be recovered by hand.
type jsonDataset struct {
	Title        string          `json:"title"`
	Headers      []string        `json:"headers"`
	Measurements json.RawMessage `json:"measurements"`
	Type         string          `json:"type"`
}

func parseJSON(data []byte) (*Dataset, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return parseJSONTuple(data)
	}

	var raw jsonDataset
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse data set: %w", err)
	}

	rows, err := decodeJSONRows(raw.Measurements)
	if err != nil {
		return nil, err
	}

	return New(raw.Title, raw.Headers, rows, ComparisonType(raw.Type))
}

// parseJSONTuple reads the legacy layout, a 4-element array of
// [title, headers, measurements, type].
func parseJSONTuple(data []byte) (*Dataset, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return nil, fmt.Errorf("failed to parse data set: %w", err)
	}

	if len(parts) != 4 {
		return nil, fmt.Errorf("failed to parse data set: expected 4 elements, got %d", len(parts))
	}

	var title string
	if err := json.Unmarshal(parts[0], &title); err != nil {
		return nil, fmt.Errorf("failed to parse title: %w", err)
	}

	var headers []string
	if err := json.Unmarshal(parts[1], &headers); err != nil {
		return nil, fmt.Errorf("failed to parse headers: %w", err)
	}

	rows, err := decodeJSONRows(parts[2])
	if err != nil {
		return nil, err
	}

	var tag string
	if err := json.Unmarshal(parts[3], &tag); err != nil {
		return nil, fmt.Errorf("failed to parse comparison type: %w", err)
	}

	return New(title, headers, rows, ComparisonType(tag))
}

// decodeJSONRows walks the measurement object token by token so that the
// key order of the document survives, which encoding/json maps would
// discard.
func decodeJSONRows(raw json.RawMessage) ([]Row, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse measurements: %w", err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("failed to parse measurements: expected an object, got %v", tok)
	}

	var rows []Row

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse measurements: %w", err)
		}

		machine, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("failed to parse measurements: unexpected key %v", keyTok)
		}

		var values []float64
		if err := dec.Decode(&values); err != nil {
			return nil, fmt.Errorf("failed to parse measurements for %q: %w", machine, err)
		}

		rows = append(rows, Row{Machine: machine, Values: values})
	}

	return rows, nil
}

// yamlDataset mirrors the YAML form of a data set file. Measurements stay a
// raw node so their key order can be recovered from the node contents.
type yamlDataset struct {
	Title        string    `yaml:"title"`
	Headers      []string  `yaml:"headers"`
	Measurements yaml.Node `yaml:"measurements"`
	Type         string    `yaml:"type"`
}

func parseYAML(data []byte) (*Dataset, error) {
	var raw yamlDataset
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse data set: %w", err)
	}

	rows, err := decodeYAMLRows(&raw.Measurements)
	if err != nil {
		return nil, err
	}

	return New(raw.Title, raw.Headers, rows, ComparisonType(raw.Type))
}

// decodeYAMLRows walks the mapping node pairwise, keeping the document
// order of machines.
func decodeYAMLRows(node *yaml.Node) ([]Row, error) {
	if node.Kind == 0 {
		return nil, nil
	}

	if node.Kind != yaml.MappingNode {
		return nil, errors.New("failed to parse measurements: expected a mapping of machine to values")
	}

	var rows []Row

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		var values []float64
		if err := valueNode.Decode(&values); err != nil {
			return nil, fmt.Errorf("failed to parse measurements for %q: %w", keyNode.Value, err)
		}

		rows = append(rows, Row{Machine: keyNode.Value, Values: values})
	}

	return rows, nil
}
