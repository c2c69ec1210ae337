// SPDX-FileCopyrightText: 2026 payloaddoc
// SPDX-License-Identifier: FSL-1.1-MIT

package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func structureOf(t *testing.T, raw string) *Structure {
	t.Helper()
	s, err := NewStructure([]byte(raw))
	require.NoError(t, err)
	return s
}

func TestNewStructure_EmptyContent(t *testing.T) {
	_, err := NewStructure([]byte(""))
	assert.ErrorIs(t, err, ErrEmptyContent)

	_, err = NewStructure([]byte("   \n\t"))
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestStructure_Scalars(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`"hello"`, "String\n"},
		{`42`, "Number\n"},
		{`true`, "Boolean\n"},
		{`null`, "Null\n"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, structureOf(t, tt.raw).String())
		})
	}
}

func TestStructure_NestedDocument(t *testing.T) {
	s := structureOf(t, `{
		"a": {"b": 1, "c": [{"d": "x"}, {"d": 2}]},
		"e": [3, 4]
	}`)

	want := "{\n" +
		"    a: {\n" +
		"        b: Number\n" +
		"        c: [ \n" +
		"            {\n" +
		"                d: Varies\n" +
		"            }\n" +
		"        ]\n" +
		"    }\n" +
		"    e: [ \n" +
		"        Number\n" +
		"    ]\n" +
		"}\n"
	assert.Equal(t, want, s.String())
}

// Array elements with structurally equal shapes collapse to one
// representative regardless of element count.
func TestStructure_DeduplicatesElementShapes(t *testing.T) {
	s := structureOf(t, `[{"id": 1}, {"id": 2}, {"id": 3}, {"name": "x"}]`)

	want := "[ \n" +
		"    {\n" +
		"        id: Number\n" +
		"    }\n" +
		"    {\n" +
		"        name: String\n" +
		"    }\n" +
		"]\n"
	assert.Equal(t, want, s.String())
}

// Shape equality ignores scalar types: two objects with the same keys are
// one shape even when the values differ in type, and the collapsed leaf
// renders as Varies.
func TestStructure_ScalarTypesDoNotSplitShapes(t *testing.T) {
	s := structureOf(t, `[{"v": 1}, {"v": "two"}]`)

	want := "[ \n" +
		"    {\n" +
		"        v: Varies\n" +
		"    }\n" +
		"]\n"
	assert.Equal(t, want, s.String())
}

func TestStructure_EmptyContainers(t *testing.T) {
	assert.Equal(t, "{\n}\n", structureOf(t, `{}`).String())
	assert.Equal(t, "[ \n]\n", structureOf(t, `[]`).String())
}

func TestStructure_NestedArrays(t *testing.T) {
	s := structureOf(t, `{"grid": [[1, 2], [3]]}`)

	want := "{\n" +
		"    grid: [ \n" +
		"        [ \n" +
		"            Number\n" +
		"        ]\n" +
		"    ]\n" +
		"}\n"
	assert.Equal(t, want, s.String())
}

// Keys unsafe in the bare path syntax must not break type resolution: the
// synthetic paths quote every object key.
func TestStructure_QuotedKeys(t *testing.T) {
	s := structureOf(t, `{"a.b": {"c[]": true}}`)

	want := "{\n" +
		"    a.b: {\n" +
		"        c[]: Boolean\n" +
		"    }\n" +
		"}\n"
	assert.Equal(t, want, s.String())
}

func TestStructure_PreservesKeyOrder(t *testing.T) {
	s := structureOf(t, `{"z": 1, "a": 2, "m": 3}`)

	want := "{\n" +
		"    z: Number\n" +
		"    a: Number\n" +
		"    m: Number\n" +
		"}\n"
	assert.Equal(t, want, s.String())
}
