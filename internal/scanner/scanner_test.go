// SPDX-FileCopyrightText: 2026 payloaddoc
// SPDX-License-Identifier: FSL-1.1-MIT

package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func names(files []PayloadFile, base string) []string {
	var out []string
	for _, f := range files {
		rel, _ := filepath.Rel(base, f.Path)
		out = append(out, filepath.ToSlash(rel))
	}
	sort.Strings(out)
	return out
}

func TestScan_IncludesJSONFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "user.json", `{"id": 1}`)
	writeFile(t, tmpDir, "nested/order.json", `{}`)
	writeFile(t, tmpDir, "notes.txt", "not a payload")

	s := New(Config{BasePath: tmpDir})
	files, err := s.Scan()
	require.NoError(t, err)

	assert.Equal(t, []string{"nested/order.json", "user.json"}, names(files, tmpDir))
}

func TestScan_ReadsContent(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "user.json", `{"id": 1}`)

	s := New(Config{BasePath: tmpDir})
	files, err := s.Scan()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, []byte(`{"id": 1}`), files[0].Content)
	assert.False(t, files[0].ModTime.IsZero())
}

func TestScan_ExcludePatterns(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "user.json", `{}`)
	writeFile(t, tmpDir, "node_modules/pkg/manifest.json", `{}`)
	writeFile(t, tmpDir, "fixtures/skip.json", `{}`)

	s := New(Config{
		BasePath:        tmpDir,
		ExcludePatterns: []string{"node_modules/**", "fixtures/**"},
	})
	files, err := s.Scan()
	require.NoError(t, err)

	assert.Equal(t, []string{"user.json"}, names(files, tmpDir))
}

func TestScan_CustomIncludePatterns(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "responses/user.json", `{}`)
	writeFile(t, tmpDir, "requests/user.json", `{}`)

	s := New(Config{
		BasePath:        tmpDir,
		IncludePatterns: []string{"responses/**/*.json"},
	})
	files, err := s.Scan()
	require.NoError(t, err)

	assert.Equal(t, []string{"responses/user.json"}, names(files, tmpDir))
}

func TestScanPath_SingleFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "user.json", `{}`)

	s := New(Config{BasePath: tmpDir})
	files, err := s.ScanPath(path)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, path, files[0].Path)
}

// A file given as the base path matches include patterns by its base name.
func TestScan_BasePathIsFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "user.json", `{}`)

	s := New(Config{BasePath: path})
	files, err := s.Scan()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, path, files[0].Path)
}

func TestScanPath_Missing(t *testing.T) {
	s := New(Config{})
	_, err := s.ScanPath(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestScanPaths_Deduplicates(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "user.json", `{}`)

	s := New(Config{BasePath: tmpDir})
	files, err := s.ScanPaths([]string{tmpDir, tmpDir})
	require.NoError(t, err)
	assert.Len(t, files, 1)
}
