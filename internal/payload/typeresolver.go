// SPDX-FileCopyrightText: 2026 payloaddoc
// SPDX-License-Identifier: FSL-1.1-MIT

package payload

import (
	"encoding/json"

	"github.com/payloaddoc/payloaddoc/pkg/types"
)

// FieldTypeResolver determines the concrete JSON type of a located field.
type FieldTypeResolver struct {
	processor *FieldProcessor
}

// NewFieldTypeResolver returns a FieldTypeResolver.
func NewFieldTypeResolver() *FieldTypeResolver {
	return &FieldTypeResolver{processor: NewFieldProcessor()}
}

// ResolveFieldType classifies the value at the descriptor's path. For
// wildcard paths every collected element is classified; a single shared
// classification is returned, FieldTypeVaries otherwise. Extraction failures
// propagate as FieldDoesNotExistError.
func (r *FieldTypeResolver) ResolveFieldType(descriptor types.FieldDescriptor, content interface{}) (types.FieldType, error) {
	path, err := Compile(descriptor.Path)
	if err != nil {
		return "", err
	}
	value, err := r.processor.Extract(path, content)
	if err != nil {
		return "", err
	}
	if !path.HasWildcard() {
		return Classify(value), nil
	}

	var resolved types.FieldType
	for _, item := range value.([]interface{}) {
		itemType := Classify(item)
		if resolved == "" {
			resolved = itemType
			continue
		}
		if resolved != itemType {
			return types.FieldTypeVaries, nil
		}
	}
	if resolved == "" {
		// an empty collection pins nothing down
		return types.FieldTypeVaries, nil
	}
	return resolved, nil
}

// Classify returns the FieldType of a single decoded value.
func Classify(value interface{}) types.FieldType {
	switch value.(type) {
	case *Object:
		return types.FieldTypeObject
	case []interface{}:
		return types.FieldTypeArray
	case string:
		return types.FieldTypeString
	case json.Number, float64, int, int64:
		return types.FieldTypeNumber
	case bool:
		return types.FieldTypeBoolean
	case nil:
		return types.FieldTypeNull
	default:
		return types.FieldTypeVaries
	}
}
