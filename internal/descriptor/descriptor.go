// SPDX-FileCopyrightText: 2026 payloaddoc
// SPDX-License-Identifier: FSL-1.1-MIT

// Package descriptor loads and validates field specification files.
package descriptor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/payloaddoc/payloaddoc/internal/payload"
	"github.com/payloaddoc/payloaddoc/pkg/types"
)

// Spec is the authored field specification document.
type Spec struct {
	// Fields is the ordered list of documented fields.
	Fields []types.FieldDescriptor `yaml:"fields"`
}

// Load reads a field specification file.
func Load(path string) ([]types.FieldDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read field specification: %w", err)
	}
	fields, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid field specification %s: %w", path, err)
	}
	return fields, nil
}

// Parse decodes and validates a field specification document.
func Parse(data []byte) ([]types.FieldDescriptor, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := Validate(spec.Fields); err != nil {
		return nil, err
	}
	return spec.Fields, nil
}

// Validate checks that every descriptor path compiles and that no path is
// declared twice. Type names outside the FieldType set are permitted: they
// are custom type tags.
func Validate(fields []types.FieldDescriptor) error {
	if len(fields) == 0 {
		return fmt.Errorf("the field specification declares no fields")
	}
	seen := make(map[string]bool, len(fields))
	for i, d := range fields {
		if d.Path == "" {
			return fmt.Errorf("field %d has no path", i)
		}
		path, err := payload.Compile(d.Path)
		if err != nil {
			return err
		}
		canonical := path.String()
		if seen[canonical] {
			return fmt.Errorf("the path %q is declared more than once", d.Path)
		}
		seen[canonical] = true
	}
	return nil
}

// Marshal renders descriptors back to a field specification document.
func Marshal(fields []types.FieldDescriptor) ([]byte, error) {
	return yaml.Marshal(Spec{Fields: fields})
}

// Skeleton infers a starter field specification from decoded payload
// content: one descriptor per document position, with types taken from the
// payload. Array element descriptors merge the keys of every object element,
// in first-occurrence order, so heterogeneous arrays still produce a single
// path list.
func Skeleton(content interface{}) []types.FieldDescriptor {
	var fields []types.FieldDescriptor
	var visit func(expr string, value interface{})
	visit = func(expr string, value interface{}) {
		switch v := value.(type) {
		case *payload.Object:
			if expr != "" {
				fields = append(fields, types.FieldDescriptor{Path: expr, Types: declared(types.FieldTypeObject)})
			}
			for _, key := range v.Keys() {
				child, _ := v.Get(key)
				visit(childExpr(expr, key), child)
			}
		case []interface{}:
			if expr != "" {
				fields = append(fields, types.FieldDescriptor{Path: expr, Types: declared(types.FieldTypeArray)})
			}
			if len(v) > 0 {
				visit(expr+"[]", mergeElements(v))
			}
		default:
			if expr != "" {
				fields = append(fields, types.FieldDescriptor{Path: expr, Types: declared(payload.Classify(value))})
			}
		}
	}
	visit("", content)
	return fields
}

func declared(t types.FieldType) types.TypeSet {
	return types.TypeSet{string(t)}
}

// childExpr appends a key to a path expression, quoting keys that are
// unsafe in the bare syntax.
func childExpr(expr, key string) string {
	quoted := key == ""
	for _, r := range key {
		if r == '.' || r == '[' || r == ']' || r == '\'' {
			quoted = true
			break
		}
	}
	if quoted {
		return expr + "['" + key + "']"
	}
	if expr == "" {
		return key
	}
	return expr + "." + key
}

// mergeElements reduces an array's elements to one representative value:
// object elements merge into a single object taking the first value seen per
// key; otherwise the first element stands in. An empty array merges to nil,
// ending the descent.
func mergeElements(list []interface{}) interface{} {
	if len(list) == 0 {
		return nil
	}
	merged := payload.NewObject()
	sawObject := false
	for _, item := range list {
		obj, ok := item.(*payload.Object)
		if !ok {
			continue
		}
		sawObject = true
		for _, key := range obj.Keys() {
			if _, exists := merged.Get(key); !exists {
				value, _ := obj.Get(key)
				merged.Set(key, value)
			}
		}
	}
	if sawObject {
		return merged
	}
	return list[0]
}
