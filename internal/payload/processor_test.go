// SPDX-FileCopyrightText: 2026 payloaddoc
// SPDX-License-Identifier: FSL-1.1-MIT

package payload

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) interface{} {
	t.Helper()
	content, err := Decode([]byte(raw))
	require.NoError(t, err)
	return content
}

func compile(t *testing.T, expr string) *FieldPath {
	t.Helper()
	path, err := Compile(expr)
	require.NoError(t, err)
	return path
}

func TestExtract_SingleValue(t *testing.T) {
	processor := NewFieldProcessor()
	content := decode(t, `{"a": {"b": 5, "c.d": true}}`)

	value, err := processor.Extract(compile(t, "a.b"), content)
	require.NoError(t, err)
	assert.Equal(t, json.Number("5"), value)

	value, err = processor.Extract(compile(t, "a['c.d']"), content)
	require.NoError(t, err)
	assert.Equal(t, true, value)
}

func TestExtract_Wildcard(t *testing.T) {
	processor := NewFieldProcessor()
	content := decode(t, `{"a": [{"b": 1}, {"b": 2}, {"b": 3}]}`)

	value, err := processor.Extract(compile(t, "a[].b"), content)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{json.Number("1"), json.Number("2"), json.Number("3")}, value)
}

func TestExtract_ConsecutiveWildcardsFlatten(t *testing.T) {
	processor := NewFieldProcessor()
	content := decode(t, `{"a": [[1, 2], [3]]}`)

	// one wildcard keeps the nesting
	value, err := processor.Extract(compile(t, "a[]"), content)
	require.NoError(t, err)
	assert.Len(t, value, 2)

	// a second wildcard flattens one level
	value, err = processor.Extract(compile(t, "a[][]"), content)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{json.Number("1"), json.Number("2"), json.Number("3")}, value)
}

func TestExtract_EmptyArrayWithTrailingWildcard(t *testing.T) {
	processor := NewFieldProcessor()
	content := decode(t, `{"a": []}`)

	value, err := processor.Extract(compile(t, "a[]"), content)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{}, value)
}

func TestExtract_Absent(t *testing.T) {
	processor := NewFieldProcessor()
	content := decode(t, `{"a": {"b": 1}}`)

	tests := []struct {
		name string
		expr string
	}{
		{"missing key", "a.c"},
		{"descent into scalar", "a.b.c"},
		{"wildcard over object", "a[]"},
		{"missing in one element", "a.b[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := processor.Extract(compile(t, tt.expr), content)
			require.Error(t, err)
			var absent *FieldDoesNotExistError
			assert.ErrorAs(t, err, &absent)
		})
	}
}

// A wildcard path resolves only when every element resolves; the error
// message carries the canonical path.
func TestExtract_WildcardRequiresEveryElement(t *testing.T) {
	processor := NewFieldProcessor()
	content := decode(t, `{"a": [{"b": 1}, {"c": 2}]}`)

	_, err := processor.Extract(compile(t, "a[].b"), content)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"a[].b"`)
}

func TestHasField(t *testing.T) {
	processor := NewFieldProcessor()
	content := decode(t, `{"a": {"b": null}, "list": [{"x": 1}]}`)

	assert.True(t, processor.HasField(compile(t, "a"), content))
	assert.True(t, processor.HasField(compile(t, "a.b"), content), "an explicit null is present")
	assert.True(t, processor.HasField(compile(t, "list[].x"), content))
	assert.False(t, processor.HasField(compile(t, "a.c"), content))
	assert.False(t, processor.HasField(compile(t, "list[].y"), content))
}

func TestRemove_Scalar(t *testing.T) {
	processor := NewFieldProcessor()
	content := decode(t, `{"a": {"b": 1, "c": 2}}`)

	result := processor.Remove(compile(t, "a.b"), content)
	assert.Equal(t, `{"a":{"c":2}}`, marshal(t, result))
}

func TestRemove_DeletesContainerLeaf(t *testing.T) {
	processor := NewFieldProcessor()
	content := decode(t, `{"a": {"b": 1}, "keep": true}`)

	result := processor.Remove(compile(t, "a"), content)
	assert.Equal(t, `{"keep":true}`, marshal(t, result))
}

// After a removal the path no longer resolves.
func TestRemove_ThenHasFieldIsFalse(t *testing.T) {
	processor := NewFieldProcessor()
	content := decode(t, `{"a": {"b": 1}, "list": [{"x": 1}, {"x": 2}]}`)

	for _, expr := range []string{"a.b", "list[].x", "a"} {
		path := compile(t, expr)
		content = processor.Remove(path, content)
		assert.False(t, processor.HasField(path, content), expr)
	}
}

func TestRemoveSubsection_DeletesSubtree(t *testing.T) {
	processor := NewFieldProcessor()
	content := decode(t, `{"a": {"b": 1}, "keep": true}`)

	result := processor.RemoveSubsection(compile(t, "a"), content)
	assert.Equal(t, `{"keep":true}`, marshal(t, result))
}

func TestRemove_TerminalWildcardShrinksArray(t *testing.T) {
	processor := NewFieldProcessor()
	content := decode(t, `{"a": [1, {"b": 2}, []], "keep": true}`)

	result := processor.Remove(compile(t, "a[]"), content)
	assert.Equal(t, `{"a":[],"keep":true}`, marshal(t, result))
}

func TestRemove_WildcardBestEffort(t *testing.T) {
	processor := NewFieldProcessor()
	content := decode(t, `{"a": [{"b": 1}, {"c": 2}]}`)

	// elements where the path does not resolve are skipped, not an error
	result := processor.Remove(compile(t, "a[].b"), content)
	assert.Equal(t, `{"a":[{},{"c":2}]}`, marshal(t, result))
}

func TestRemove_RootArrayReplacement(t *testing.T) {
	processor := NewFieldProcessor()
	content := decode(t, `[1, 2, 3]`)

	result := processor.Remove(compile(t, "[]"), content)
	assert.Equal(t, `[]`, marshal(t, result))
}

func TestRemove_AbsentPathIsNoOp(t *testing.T) {
	processor := NewFieldProcessor()
	content := decode(t, `{"a": 1}`)

	result := processor.Remove(compile(t, "missing.path"), content)
	assert.Equal(t, `{"a":1}`, marshal(t, result))
}

func TestRemove_Idempotent(t *testing.T) {
	processor := NewFieldProcessor()
	content := decode(t, `{"a": {"b": 1, "c": 2}}`)
	path := compile(t, "a.b")

	once := processor.Remove(path, content)
	twice := processor.Remove(path, once)
	assert.Equal(t, marshal(t, once), marshal(t, twice))
}

func marshal(t *testing.T, value interface{}) string {
	t.Helper()
	data, err := json.Marshal(value)
	require.NoError(t, err)
	return string(data)
}
