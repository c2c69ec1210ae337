// SPDX-FileCopyrightText: 2026 payloaddoc
// SPDX-License-Identifier: FSL-1.1-MIT

// Package types defines the field specification types shared across payloaddoc.
package types

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FieldType identifies the JSON type of a documented field.
type FieldType string

// The closed set of JSON field types. FieldTypeVaries doubles as a declarable
// wildcard (accept anything) and an inferred result (heterogeneous array
// elements).
const (
	FieldTypeObject  FieldType = "Object"
	FieldTypeArray   FieldType = "Array"
	FieldTypeString  FieldType = "String"
	FieldTypeNumber  FieldType = "Number"
	FieldTypeBoolean FieldType = "Boolean"
	FieldTypeNull    FieldType = "Null"
	FieldTypeVaries  FieldType = "Varies"
)

// fieldTypes maps lower-cased names to their canonical FieldType.
var fieldTypes = map[string]FieldType{
	"object":  FieldTypeObject,
	"array":   FieldTypeArray,
	"string":  FieldTypeString,
	"number":  FieldTypeNumber,
	"boolean": FieldTypeBoolean,
	"null":    FieldTypeNull,
	"varies":  FieldTypeVaries,
}

// ParseFieldType resolves a type name to its FieldType, case-insensitively.
// It returns false for names outside the closed set; such names are treated
// as custom type tags by the type reconciliation logic.
func ParseFieldType(name string) (FieldType, bool) {
	t, ok := fieldTypes[strings.ToLower(name)]
	return t, ok
}

// FieldDescriptor declares a single documented field of a payload.
type FieldDescriptor struct {
	// Path is the field path expression, e.g. "a.b", "a[].b" or "['a.b']".
	Path string `mapstructure:"path" yaml:"path" json:"path"`

	// Description is the prose documentation for the field.
	Description string `mapstructure:"description" yaml:"description,omitempty" json:"description,omitempty"`

	// Optional marks a field whose absence is not an error.
	Optional bool `mapstructure:"optional" yaml:"optional,omitempty" json:"optional,omitempty"`

	// Subsection marks a field whose entire subtree is documented as one
	// unit; its interior is not inspected leaf by leaf.
	Subsection bool `mapstructure:"subsection" yaml:"subsection,omitempty" json:"subsection,omitempty"`

	// Types is the declared type or set of permissible types. Empty means
	// the type is inferred from the actual payload. Entries that are not
	// FieldType names are custom type tags and opt out of type checking.
	Types TypeSet `mapstructure:"type" yaml:"type,omitempty" json:"type,omitempty"`
}

// TypeSet is a declared type set. In YAML it may be authored as a single
// scalar or as a sequence.
type TypeSet []string

// UnmarshalYAML accepts either a scalar ("type: Number") or a sequence
// ("type: [Number, Null]").
func (ts *TypeSet) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		*ts = TypeSet{single}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := value.Decode(&many); err != nil {
			return err
		}
		*ts = TypeSet(many)
		return nil
	default:
		return fmt.Errorf("type must be a scalar or a sequence, got %s", value.Tag)
	}
}

// MarshalYAML renders a single-entry set as a scalar for readability.
func (ts TypeSet) MarshalYAML() (interface{}, error) {
	if len(ts) == 1 {
		return ts[0], nil
	}
	return []string(ts), nil
}

// FieldTypes resolves every entry to a FieldType. The second return value is
// false when any entry is a custom type tag.
func (ts TypeSet) FieldTypes() ([]FieldType, bool) {
	resolved := make([]FieldType, 0, len(ts))
	for _, name := range ts {
		t, ok := ParseFieldType(name)
		if !ok {
			return nil, false
		}
		resolved = append(resolved, t)
	}
	return resolved, true
}

// String joins the declared type names for display.
func (ts TypeSet) String() string {
	return strings.Join(ts, ", ")
}
