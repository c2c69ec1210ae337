// SPDX-FileCopyrightText: 2026 payloaddoc
// SPDX-License-Identifier: FSL-1.1-MIT

package payload

import (
	"errors"
	"strings"

	"github.com/payloaddoc/payloaddoc/pkg/types"
)

// ContentHandler compares JSON payload content against field descriptors.
// It keeps the raw bytes and decodes them fresh for every operation, so
// removal never leaks between calls and compiled descriptors can be reused
// across handlers.
type ContentHandler struct {
	raw       []byte
	processor *FieldProcessor
	resolver  *FieldTypeResolver
}

// NewContentHandler validates and wraps raw JSON payload content.
func NewContentHandler(raw []byte) (*ContentHandler, error) {
	if _, err := Decode(raw); err != nil {
		return nil, err
	}
	return &ContentHandler{
		raw:       raw,
		processor: NewFieldProcessor(),
		resolver:  NewFieldTypeResolver(),
	}, nil
}

// readContent decodes the raw bytes. Decoding was validated at construction.
func (h *ContentHandler) readContent() interface{} {
	content, _ := Decode(h.raw)
	return content
}

// FindMissingFields returns, in input order, the non-optional descriptors
// whose paths do not resolve against the payload. A descriptor nested
// beneath an absent optional descriptor is not reported: the ancestor's
// absence already explains it.
func (h *ContentHandler) FindMissingFields(descriptors []types.FieldDescriptor) ([]types.FieldDescriptor, error) {
	paths := make([]*FieldPath, len(descriptors))
	canonical := make([]string, len(descriptors))
	for i, d := range descriptors {
		path, err := Compile(d.Path)
		if err != nil {
			return nil, err
		}
		paths[i] = path
		canonical[i] = path.String()
	}

	content := h.readContent()
	var missing []types.FieldDescriptor
	for i, d := range descriptors {
		if d.Optional {
			continue
		}
		if h.processor.HasField(paths[i], content) {
			continue
		}
		if h.nestedBeneathMissingOptionalField(i, descriptors, paths, canonical, content) {
			continue
		}
		missing = append(missing, d)
	}
	return missing, nil
}

func (h *ContentHandler) nestedBeneathMissingOptionalField(missing int, descriptors []types.FieldDescriptor,
	paths []*FieldPath, canonical []string, content interface{}) bool {
	for i, candidate := range descriptors {
		if i == missing || !candidate.Optional {
			continue
		}
		if strings.HasPrefix(canonical[missing], canonical[i]) && !h.processor.HasField(paths[i], content) {
			return true
		}
	}
	return false
}

// UndocumentedContent removes every descriptor's field from a fresh decode
// of the payload, in input order, tolerating non-resolving paths. It returns
// the remaining content pretty-printed, or "" when the payload is fully
// documented (the remainder is an empty object or array).
func (h *ContentHandler) UndocumentedContent(descriptors []types.FieldDescriptor) (string, error) {
	content := h.readContent()
	for _, d := range descriptors {
		path, err := Compile(d.Path)
		if err != nil {
			return "", err
		}
		if d.Subsection {
			content = h.processor.RemoveSubsection(path, content)
		} else {
			content = h.processor.Remove(path, content)
		}
	}
	if isEmptyContainer(content) {
		return "", nil
	}
	return MarshalIndent(content)
}

func isEmptyContainer(value interface{}) bool {
	switch v := value.(type) {
	case *Object:
		return v.Len() == 0
	case []interface{}:
		return len(v) == 0
	default:
		return false
	}
}

// DetermineFieldType returns the documented type of the descriptor's field.
// With no declared type the actual type is inferred. Declared custom type
// tags are returned verbatim, opting out of checking. Declared FieldTypes
// are reconciled against the actual type: a match returns the declared set;
// an absent field leaves the declaration unchallenged; a contradiction
// raises FieldTypeMismatchError.
func (h *ContentHandler) DetermineFieldType(descriptor types.FieldDescriptor) (types.TypeSet, error) {
	if len(descriptor.Types) == 0 {
		actual, err := h.resolver.ResolveFieldType(descriptor, h.readContent())
		if err != nil {
			return nil, err
		}
		return types.TypeSet{string(actual)}, nil
	}

	declared, ok := descriptor.Types.FieldTypes()
	if !ok {
		return descriptor.Types, nil
	}

	actual, err := h.resolver.ResolveFieldType(descriptor, h.readContent())
	if err != nil {
		var absent *FieldDoesNotExistError
		if errors.As(err, &absent) {
			return descriptor.Types, nil
		}
		return nil, err
	}

	for _, t := range declared {
		if t == types.FieldTypeVaries || t == actual || (descriptor.Optional && actual == types.FieldTypeNull) {
			return descriptor.Types, nil
		}
	}
	return nil, &FieldTypeMismatchError{Descriptor: descriptor, Actual: actual}
}
