// Package table builds multimethods from declarative YAML dispatch tables.
//
// A table maps conditions to constant responses:
//
//	name: status
//	key: kind          # dispatch on the "kind" field of a map argument
//	branches:
//	  - when: ok
//	    then: 200
//	  - when: [not, found]
//	    then: 404
//	fallback: 500
//
// Conditions keep the shape YAML decodes them to (string, int, float64,
// bool, []any, map[string]any) and are matched structurally, so composite
// conditions work but disable the fast index of the resulting Method.
//
// A missing or null fallback (`fallback: ~`) both mean "no fallback": unmatched
// calls fail with multimethod.ErrNoBranch. A table cannot declare nil as a
// constant fallback response.
package table

import (
	"fmt"
	"os"

	"github.com/hupe1980/multimethod"
	"gopkg.in/yaml.v3"
)

// ErrEmptyTable is returned when a table declares no branches.
var ErrEmptyTable = fmt.Errorf("table: no branches declared")

// Spec is the YAML document shape.
type Spec struct {
	Name     string  `yaml:"name"`
	Key      string  `yaml:"key,omitempty"`
	Branches []Entry `yaml:"branches"`
	Fallback any     `yaml:"fallback,omitempty"` // nil means no fallback
}

// Entry is a single condition / response pair.
type Entry struct {
	When any `yaml:"when"`
	Then any `yaml:"then"`
}

// Load reads and parses the table at path.
func Load(path string, optFns ...func(o *multimethod.Options)) (*multimethod.Method, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("table: read %s: %w", path, err)
	}
	return Parse(data, optFns...)
}

// Parse decodes a YAML table and builds the Method it describes. optFns are
// applied after the table's own name and dispatch settings, so callers can
// override either.
func Parse(data []byte, optFns ...func(o *multimethod.Options)) (*multimethod.Method, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("table: decode: %w", err)
	}
	return Build(spec, optFns...)
}

// Build creates a Method from an already decoded Spec.
func Build(spec Spec, optFns ...func(o *multimethod.Options)) (*multimethod.Method, error) {
	if len(spec.Branches) == 0 {
		return nil, ErrEmptyTable
	}

	opts := []func(o *multimethod.Options){func(o *multimethod.Options) {
		o.Name = spec.Name
		if spec.Key != "" {
			o.Dispatch = field(spec.Key)
		}
	}}
	m := multimethod.New(append(opts, optFns...)...)

	for i, e := range spec.Branches {
		if err := m.When(e.When, constant(e.Then)); err != nil {
			return nil, fmt.Errorf("table: branch %d: %w", i, err)
		}
	}

	if spec.Fallback != nil {
		m.Fallback(constant(spec.Fallback))
	}

	return m, nil
}

// field dispatches on args[0][key] for map arguments and on nil otherwise.
func field(key string) multimethod.DispatchFunc {
	return func(args ...any) any {
		if len(args) == 0 {
			return nil
		}
		switch v := args[0].(type) {
		case map[string]any:
			return v[key]
		case map[string]string:
			if s, ok := v[key]; ok {
				return s
			}
		}
		return nil
	}
}

func constant(v any) multimethod.Handler {
	return func(...any) (any, error) { return v, nil }
}
