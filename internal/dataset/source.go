package dataset

import "io"

// Source produces a validated data set from one of the supported origins.
type Source interface {
	Load() (*Dataset, error)
}

// DemoSource resolves a bundled demo data set by registry key.
type DemoSource struct {
	Key      string
	Registry Registry
}

// Load looks the demo up in the registry.
func (s DemoSource) Load() (*Dataset, error) {
	return s.Registry.Lookup(s.Key)
}

// FileSource loads a data set from a JSON or YAML file.
type FileSource struct {
	Path string
}

// Load reads and parses the file.
func (s FileSource) Load() (*Dataset, error) {
	return LoadFile(s.Path)
}

// InteractiveSource collects a data set from prompt answers. An empty Title
// adds a title prompt to the flow.
type InteractiveSource struct {
	Title string
	In    io.Reader
	Out   io.Writer
}

// Load runs the interactive prompt flow.
func (s InteractiveSource) Load() (*Dataset, error) {
	return NewBuilder(s.In, s.Out).Build(s.Title)
}
