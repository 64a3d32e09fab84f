package schema

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/hmap/static"
	"gopkg.in/yaml.v3"
)

// Pair declares one key of a compile-time map.
type Pair struct {
	Key   string `yaml:"key" json:"key"`
	Type  string `yaml:"type" json:"type"`
	Value string `yaml:"value,omitempty" json:"value,omitempty"`
	// Name overrides the identifier derived from Key.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
}

// Schema describes a compile-time map.
type Schema struct {
	Package string   `yaml:"package" json:"package"`
	Name    string   `yaml:"name" json:"name"`
	Imports []string `yaml:"imports,omitempty" json:"imports,omitempty"`
	Pairs   []*Pair  `yaml:"pairs" json:"pairs"`
	// Output is the default location of the generated file.
	Output string `yaml:"output,omitempty" json:"output,omitempty"`
}

// Load downloads and parses a schema. A location without a scheme is read
// from the local file system.
func Load(ctx context.Context, location string) (*Schema, error) {
	URL := Normalize(location)
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %q: %w", URL, err)
	}
	ret, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema %q: %w", URL, err)
	}
	return ret, nil
}

// Parse decodes and validates a YAML (or JSON) schema.
func Parse(data []byte) (*Schema, error) {
	ret := &Schema{}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, err
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

// Normalize turns a local path into a file URL.
func Normalize(location string) string {
	if strings.Contains(location, "://") {
		return location
	}
	if abs, err := filepath.Abs(location); err == nil {
		location = abs
	}
	return "file://" + location
}

// Validate checks the schema is complete. Duplicate keys are reported by
// static.Build.
func (s *Schema) Validate() error {
	if strings.TrimSpace(s.Package) == "" {
		return static.NewError(static.InvalidSchema, "", "package is required")
	}
	if strings.TrimSpace(s.Name) == "" {
		return static.NewError(static.InvalidSchema, "", "name is required")
	}
	if len(s.Pairs) == 0 {
		return static.NewError(static.InvalidSchema, "", "schema has no pairs")
	}
	for i, pair := range s.Pairs {
		if pair == nil {
			return static.NewError(static.InvalidSchema, "", fmt.Sprintf("pair %d is empty", i))
		}
		if strings.TrimSpace(pair.Type) == "" {
			return static.NewError(static.InvalidSchema, pair.Key, "type is required")
		}
	}
	return nil
}

// HasDefaults reports whether every pair has a default value expression.
func (s *Schema) HasDefaults() bool {
	for _, pair := range s.Pairs {
		if pair.Value == "" {
			return false
		}
	}
	return true
}

// StaticPairs returns the pairs in declared order in the form used by the
// tree engine; Value carries the default value expression.
func (s *Schema) StaticPairs() []static.Pair {
	ret := make([]static.Pair, 0, len(s.Pairs))
	for _, pair := range s.Pairs {
		ret = append(ret, static.Pair{Key: pair.Key, Type: pair.Type, Value: pair.Value})
	}
	return ret
}

// Tree builds the balanced key tree of the schema.
func (s *Schema) Tree() (static.Tree, error) {
	return static.Build(s.StaticPairs())
}
