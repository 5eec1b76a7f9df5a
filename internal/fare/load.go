package fare

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// tableFile is the on-disk YAML layout of a fare table:
//
//	stations:
//	  A: [1]
//	  C: [2, 3]
//	prices:
//	  - {zoneFrom: 1, zoneTo: 2, costInCents: 240}
type tableFile struct {
	Stations map[string][]int `yaml:"stations"`
	Prices   []Rule           `yaml:"prices"`
}

// LoadTable decodes a YAML fare table from r and validates it.
func LoadTable(r io.Reader) (*Table, error) {
	var f tableFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("fare.LoadTable: decode: %w", err)
	}
	t, err := NewTable(f.Stations, f.Prices)
	if err != nil {
		return nil, fmt.Errorf("fare.LoadTable: %w", err)
	}
	return t, nil
}

// LoadTableFile loads the table at path, or returns DefaultTable when path is empty.
func LoadTableFile(path string) (*Table, error) {
	if path == "" {
		return DefaultTable(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fare.LoadTableFile: %w", err)
	}
	defer f.Close()
	return LoadTable(f)
}
