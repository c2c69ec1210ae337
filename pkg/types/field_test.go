// SPDX-FileCopyrightText: 2026 payloaddoc
// SPDX-License-Identifier: FSL-1.1-MIT

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFieldType(t *testing.T) {
	tests := []struct {
		name string
		want FieldType
		ok   bool
	}{
		{"Object", FieldTypeObject, true},
		{"object", FieldTypeObject, true},
		{"STRING", FieldTypeString, true},
		{"varies", FieldTypeVaries, true},
		{"Null", FieldTypeNull, true},
		{"Timestamp", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseFieldType(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTypeSet_UnmarshalYAML(t *testing.T) {
	var d FieldDescriptor
	err := yaml.Unmarshal([]byte("path: a\ntype: Number"), &d)
	require.NoError(t, err)
	assert.Equal(t, TypeSet{"Number"}, d.Types)

	err = yaml.Unmarshal([]byte("path: a\ntype: [String, Null]"), &d)
	require.NoError(t, err)
	assert.Equal(t, TypeSet{"String", "Null"}, d.Types)

	err = yaml.Unmarshal([]byte("path: a\ntype: {bad: mapping}"), &d)
	assert.Error(t, err)
}

func TestTypeSet_MarshalYAML(t *testing.T) {
	single, err := yaml.Marshal(map[string]interface{}{"type": TypeSet{"Number"}})
	require.NoError(t, err)
	assert.Equal(t, "type: Number\n", string(single))

	many, err := yaml.Marshal(map[string]interface{}{"type": TypeSet{"String", "Null"}})
	require.NoError(t, err)
	assert.Contains(t, string(many), "- String")
	assert.Contains(t, string(many), "- Null")
}

func TestTypeSet_FieldTypes(t *testing.T) {
	resolved, ok := TypeSet{"String", "null"}.FieldTypes()
	assert.True(t, ok)
	assert.Equal(t, []FieldType{FieldTypeString, FieldTypeNull}, resolved)

	_, ok = TypeSet{"String", "ISO-8601"}.FieldTypes()
	assert.False(t, ok, "a custom tag makes the set unresolvable")
}

func TestTypeSet_String(t *testing.T) {
	assert.Equal(t, "String, Null", TypeSet{"String", "Null"}.String())
	assert.Equal(t, "Number", TypeSet{"Number"}.String())
}
