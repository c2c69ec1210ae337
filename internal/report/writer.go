// SPDX-FileCopyrightText: 2026 payloaddoc
// SPDX-License-Identifier: FSL-1.1-MIT

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/payloaddoc/payloaddoc/pkg/types"
)

// headingCaser title-cases section headings in text output.
var headingCaser = cases.Title(language.English)

// Writer renders check results to various outputs.
type Writer struct {
	// Indent specifies the indentation for JSON output (default: 2 spaces)
	Indent int
}

// NewWriter creates a new Writer with default settings.
func NewWriter() *Writer {
	return &Writer{
		Indent: 2,
	}
}

// Write renders a result in the given format ("text", "json" or "yaml").
func (w *Writer) Write(result *Result, out io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "", "text":
		return w.WriteText(result, out)
	case "json":
		return w.WriteJSON(result, out)
	case "yaml", "yml":
		return w.WriteYAML(result, out)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// WriteText renders a human-readable report.
func (w *Writer) WriteText(result *Result, out io.Writer) error {
	for i := range result.Payloads {
		p := &result.Payloads[i]
		if _, err := fmt.Fprintf(out, "%s\n", p.Payload); err != nil {
			return err
		}
		if p.IsEmpty() {
			fmt.Fprintf(out, "  %s\n\n", "Fully documented")
			continue
		}
		if len(p.Missing) > 0 {
			fmt.Fprintf(out, "  %s:\n", headingCaser.String("missing fields"))
			for _, d := range p.Missing {
				fmt.Fprintf(out, "    - %s\n", d.Path)
			}
		}
		if len(p.Mismatches) > 0 {
			fmt.Fprintf(out, "  %s:\n", headingCaser.String("type mismatches"))
			for _, m := range p.Mismatches {
				fmt.Fprintf(out, "    ~ %s: documented as %s, actual %s\n",
					m.Descriptor.Path, m.Descriptor.Types, m.Actual)
			}
		}
		if p.Undocumented != "" {
			fmt.Fprintf(out, "  %s:\n", headingCaser.String("undocumented content"))
			fmt.Fprintf(out, "%s\n", indentLines(p.Undocumented, "    "))
		}
		fmt.Fprintln(out)
	}
	_, err := fmt.Fprintf(out, "%s\n", result.Summary())
	return err
}

// WriteJSON renders the result as JSON.
func (w *Writer) WriteJSON(result *Result, out io.Writer) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", strings.Repeat(" ", w.Indent))

	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// WriteYAML renders the result as YAML.
func (w *Writer) WriteYAML(result *Result, out io.Writer) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}

// FieldRow is one row of a resolved field documentation table.
type FieldRow struct {
	Path        string   `yaml:"path" json:"path"`
	Types       []string `yaml:"type" json:"type"`
	Optional    bool     `yaml:"optional" json:"optional"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
}

// NewFieldRow builds a table row from a descriptor and its resolved types.
func NewFieldRow(descriptor types.FieldDescriptor, resolved types.TypeSet) FieldRow {
	return FieldRow{
		Path:        descriptor.Path,
		Types:       resolved,
		Optional:    descriptor.Optional,
		Description: descriptor.Description,
	}
}

// WriteFieldTable renders rows of resolved field documentation as text.
func (w *Writer) WriteFieldTable(rows []FieldRow, out io.Writer) error {
	pathWidth, typeWidth := len("Path"), len("Type")
	for _, row := range rows {
		if len(row.Path) > pathWidth {
			pathWidth = len(row.Path)
		}
		if l := len(strings.Join(row.Types, ", ")); l > typeWidth {
			typeWidth = l
		}
	}
	if _, err := fmt.Fprintf(out, "%-*s  %-*s  %-8s  %s\n", pathWidth, "Path", typeWidth, "Type", "Optional", "Description"); err != nil {
		return err
	}
	for _, row := range rows {
		optional := ""
		if row.Optional {
			optional = "yes"
		}
		if _, err := fmt.Fprintf(out, "%-*s  %-*s  %-8s  %s\n",
			pathWidth, row.Path, typeWidth, strings.Join(row.Types, ", "), optional, row.Description); err != nil {
			return err
		}
	}
	return nil
}

// WriteMarkdownTable renders rows as a markdown field table.
func (w *Writer) WriteMarkdownTable(rows []FieldRow, out io.Writer) error {
	if _, err := fmt.Fprintln(out, "| Path | Type | Optional | Description |"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, "| --- | --- | --- | --- |"); err != nil {
		return err
	}
	for _, row := range rows {
		optional := ""
		if row.Optional {
			optional = "yes"
		}
		if _, err := fmt.Fprintf(out, "| `%s` | %s | %s | %s |\n",
			row.Path, strings.Join(row.Types, ", "), optional, row.Description); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile renders a result to a file, creating parent directories.
func (w *Writer) WriteFile(result *Result, path string, format string) error {
	if format == "" {
		ext := strings.ToLower(filepath.Ext(path))
		switch ext {
		case ".json":
			format = "json"
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "text"
		}
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return w.Write(result, file, format)
}

// indentLines prefixes every line of s.
func indentLines(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
