// SPDX-FileCopyrightText: 2026 payloaddoc
// SPDX-License-Identifier: FSL-1.1-MIT

package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_Segments(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		segments []string
		wildcard bool
	}{
		{"single key", "a", []string{"a"}, false},
		{"dotted keys", "a.b.c", []string{"a", "b", "c"}, false},
		{"trailing wildcard", "a[]", []string{"a", "[]"}, true},
		{"interior wildcard", "a[].b", []string{"a", "[]", "b"}, true},
		{"consecutive wildcards", "a[][]", []string{"a", "[]", "[]"}, true},
		{"root wildcard", "[]", []string{"[]"}, true},
		{"root wildcard with key", "[].id", []string{"[]", "id"}, true},
		{"quoted key", "['a.b']", []string{"a.b"}, false},
		{"quoted key with brackets", "['a[]']", []string{"a[]"}, false},
		{"quoted empty key", "['']", []string{""}, false},
		{"quoted key after dotted", "a.b['c.d']", []string{"a", "b", "c.d"}, false},
		{"key after quoted key", "['a']b", []string{"a", "b"}, false},
		{"wildcard after quoted key", "['a']c[]", []string{"a", "c", "[]"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := Compile(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.segments, path.Segments())
			assert.Equal(t, tt.wildcard, path.HasWildcard())
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"empty path", ""},
		{"leading dot", ".a"},
		{"trailing dot", "a."},
		{"double dot", "a..b"},
		{"unterminated bracket", "['a"},
		{"malformed bracket", "[a]"},
		{"stray closing bracket", "a]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.expr)
			require.Error(t, err)
			var parseErr *PathParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestFieldPath_String(t *testing.T) {
	tests := []struct {
		expr      string
		canonical string
	}{
		{"a.b", "a.b"},
		{"a[].b", "a[].b"},
		{"['a.b'].c", "['a.b'].c"},
		{"['plain']", "plain"},
		{"['']", "['']"},
		{"a['b[]']", "a['b[]']"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			path, err := Compile(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.canonical, path.String())
		})
	}
}

// The canonical form must compile back to the same segments, so prefix
// comparisons and error messages stay consistent with addressing.
func TestFieldPath_CanonicalRoundTrip(t *testing.T) {
	exprs := []string{"a.b.c", "a[].b", "['a.b']", "['x']y[]", "[].id", "a[][]"}
	for _, expr := range exprs {
		t.Run(expr, func(t *testing.T) {
			first, err := Compile(expr)
			require.NoError(t, err)
			second, err := Compile(first.String())
			require.NoError(t, err)
			assert.Equal(t, first.Segments(), second.Segments())
		})
	}
}
