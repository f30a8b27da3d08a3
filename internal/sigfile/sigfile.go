// Package sigfile loads signature declarations from YAML files.
//
// A sigfile is the explicit, file-borne form of a schema.Signature:
//
//	table: div_rem
//	params:
//	  - {name: a, type: int}
//	  - {name: b, type: int}
//	returns:
//	  - {name: quot, type: int}
//	  - {name: rem, type: text, optional: true}
//
// Unlike the in-code declaration API, this layer faces external input,
// so it validates: unknown type names, empty or duplicate column
// names, and a missing table name are errors rather than panics.
package sigfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"exptable/internal/schema"
)

// File is the on-disk shape of a signature declaration.
type File struct {
	Table   string  `yaml:"table"`
	Params  []Entry `yaml:"params"`
	Returns []Entry `yaml:"returns"`
}

// Entry declares one parameter or return field.
type Entry struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Optional bool   `yaml:"optional"`
}

var kindNames = map[string]schema.Type{
	"int":   schema.Int,
	"float": schema.Float,
	"text":  schema.Text,
	"blob":  schema.Blob,
}

// Load reads and parses a sigfile from disk.
func Load(path string) (string, schema.Signature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", schema.Signature{}, fmt.Errorf("read sigfile: %w", err)
	}
	table, sig, err := Parse(data)
	if err != nil {
		return "", schema.Signature{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return table, sig, nil
}

// Parse decodes a YAML signature declaration.
func Parse(data []byte) (string, schema.Signature, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return "", schema.Signature{}, fmt.Errorf("decode yaml: %w", err)
	}
	if f.Table == "" {
		return "", schema.Signature{}, fmt.Errorf("missing table name")
	}

	// Parameter and return-field names share the table's namespace.
	seen := make(map[string]bool)

	params, err := declare(f.Params, seen)
	if err != nil {
		return "", schema.Signature{}, fmt.Errorf("params: %w", err)
	}
	results, err := declare(f.Returns, seen)
	if err != nil {
		return "", schema.Signature{}, fmt.Errorf("returns: %w", err)
	}

	return f.Table, schema.Signature{Params: params, Results: results}, nil
}

func declare(entries []Entry, seen map[string]bool) ([]schema.Field, error) {
	fields := make([]schema.Field, 0, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("entry with empty name")
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("duplicate column name %q", e.Name)
		}
		seen[e.Name] = true

		t, ok := kindNames[e.Type]
		if !ok {
			return nil, fmt.Errorf("unsupported type %q for %q", e.Type, e.Name)
		}
		if e.Optional {
			t = schema.Optional(t)
		}
		fields = append(fields, schema.Field{Name: e.Name, Type: t})
	}
	return fields, nil
}
