// SPDX-FileCopyrightText: 2026 payloaddoc
// SPDX-License-Identifier: FSL-1.1-MIT

package payload

import (
	"errors"
)

// FieldProcessor resolves compiled field paths against decoded payload
// content. All operations share one traversal routine parameterized by the
// terminal operation, so presence checks, extraction and removal agree on
// what a path denotes.
type FieldProcessor struct{}

// NewFieldProcessor returns a FieldProcessor.
func NewFieldProcessor() *FieldProcessor {
	return &FieldProcessor{}
}

// walkOp selects the terminal behavior of the shared traversal.
type walkOp int

const (
	opExtract walkOp = iota
	opRemove
	opRemoveSubsection
)

// errFieldAbsent is the internal absence signal; exported operations wrap it
// with the full path.
var errFieldAbsent = errors.New("field does not exist")

// Extract returns the value at path. For wildcard-free paths the result is
// the single sub-value. For wildcard paths the result is an ordered
// []interface{} with one nesting level per wildcard; consecutive wildcards
// flatten one level. A present-but-empty array under a trailing wildcard
// yields an empty slice, not an error.
func (p *FieldProcessor) Extract(path *FieldPath, content interface{}) (interface{}, error) {
	value, err := walk(path.Segments(), content, opExtract)
	if err != nil {
		return nil, &FieldDoesNotExistError{Path: path.String()}
	}
	return value, nil
}

// HasField reports whether path resolves against content.
func (p *FieldProcessor) HasField(path *FieldPath, content interface{}) bool {
	_, err := walk(path.Segments(), content, opExtract)
	return err == nil
}

// Remove deletes the leaf value at path: the key is deleted from its object
// parent, and elements addressed through a terminal wildcard are removed from
// their array so its length shrinks. Removal is best-effort: a non-resolving
// path is a no-op. The returned value is the content root, which is replaced
// when a terminal wildcard shrinks the root array.
func (p *FieldProcessor) Remove(path *FieldPath, content interface{}) interface{} {
	return remove(path, content, opRemove)
}

// RemoveSubsection deletes the entire value at path, subtree included. It is
// used for descriptors that document a nested subtree as one unit.
func (p *FieldProcessor) RemoveSubsection(path *FieldPath, content interface{}) interface{} {
	return remove(path, content, opRemoveSubsection)
}

func remove(path *FieldPath, content interface{}, op walkOp) interface{} {
	result, err := walk(path.Segments(), content, op)
	if err != nil {
		return content
	}
	return result
}

// walk is the single traversal shared by every operation. For opExtract it
// returns the extracted value; for the removal operations it returns the
// (possibly replaced) value at the current level, mutating containers along
// the way.
func walk(segments []string, value interface{}, op walkOp) (interface{}, error) {
	if len(segments) == 0 {
		return value, nil
	}
	seg, rest := segments[0], segments[1:]
	if seg == wildcardSegment {
		return walkArray(rest, value, op)
	}

	obj, ok := value.(*Object)
	if !ok {
		return nil, errFieldAbsent
	}
	child, present := obj.Get(seg)
	if !present {
		return nil, errFieldAbsent
	}
	if len(rest) == 0 && op != opExtract {
		obj.Delete(seg)
		return value, nil
	}
	result, err := walk(rest, child, op)
	if err != nil {
		return nil, err
	}
	if op == opExtract {
		return result, nil
	}
	obj.Set(seg, result)
	return value, nil
}

func walkArray(rest []string, value interface{}, op walkOp) (interface{}, error) {
	list, ok := value.([]interface{})
	if !ok {
		return nil, errFieldAbsent
	}
	if len(rest) == 0 {
		if op == opExtract {
			return append(make([]interface{}, 0, len(list)), list...), nil
		}
		// matching elements are removed, not nulled, so the array shrinks
		return []interface{}{}, nil
	}
	if op != opExtract {
		for i, item := range list {
			result, err := walk(rest, item, op)
			if err != nil {
				// best-effort: skip elements the path does not resolve in
				continue
			}
			list[i] = result
		}
		return list, nil
	}

	results := make([]interface{}, 0, len(list))
	flatten := rest[0] == wildcardSegment
	for _, item := range list {
		result, err := walk(rest, item, op)
		if err != nil {
			return nil, err
		}
		if flatten {
			results = append(results, result.([]interface{})...)
		} else {
			results = append(results, result)
		}
	}
	return results, nil
}
