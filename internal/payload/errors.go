// SPDX-FileCopyrightText: 2026 payloaddoc
// SPDX-License-Identifier: FSL-1.1-MIT

package payload

import (
	"errors"
	"fmt"

	"github.com/payloaddoc/payloaddoc/pkg/types"
)

// ErrEmptyContent is returned when structure summarization is invoked on an
// empty payload.
var ErrEmptyContent = errors.New("cannot summarize the structure of empty content")

// PathParseError indicates a malformed field path expression.
type PathParseError struct {
	Path   string
	Reason string
}

func (e *PathParseError) Error() string {
	return fmt.Sprintf("failed to parse field path %q: %s", e.Path, e.Reason)
}

// FieldDoesNotExistError indicates that a field path did not resolve against
// the payload content.
type FieldDoesNotExistError struct {
	Path string
}

func (e *FieldDoesNotExistError) Error() string {
	return fmt.Sprintf("the payload does not contain a field with the path %q", e.Path)
}

// FieldTypeMismatchError indicates that a descriptor's declared type
// contradicts the type observed in the payload.
type FieldTypeMismatchError struct {
	Descriptor types.FieldDescriptor
	Actual     types.FieldType
}

func (e *FieldTypeMismatchError) Error() string {
	return fmt.Sprintf("the field %q is documented as %s but the actual type is %s",
		e.Descriptor.Path, e.Descriptor.Types, e.Actual)
}

// ContentDecodingError indicates that the raw payload is not valid JSON.
type ContentDecodingError struct {
	Err error
}

func (e *ContentDecodingError) Error() string {
	return fmt.Sprintf("failed to decode payload content: %v", e.Err)
}

func (e *ContentDecodingError) Unwrap() error {
	return e.Err
}
