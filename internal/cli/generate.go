// SPDX-FileCopyrightText: 2026 payloaddoc
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/payloaddoc/payloaddoc/internal/descriptor"
	"github.com/payloaddoc/payloaddoc/internal/payload"
	"github.com/payloaddoc/payloaddoc/internal/report"
	"github.com/payloaddoc/payloaddoc/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate [payloads...]",
	Short: "Generate documentation snippets for captured payloads",
	Long: `Generate writes one markdown snippet per captured payload into the output
directory. Each snippet contains the payload's structure outline and the
resolved field documentation table, ready for inclusion in API documentation.

Example:
  payloaddoc generate                      # Generate for all configured payloads
  payloaddoc generate captured/user.json   # Generate for a single payload
  payloaddoc generate -o docs/api          # Write snippets to docs/api`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadCheckConfig()
	if err != nil {
		return err
	}

	fields, err := descriptor.Load(cfg.Descriptors)
	if err != nil {
		return err
	}

	payloads, err := discoverPayloads(cfg, args)
	if err != nil {
		return err
	}
	if len(payloads) == 0 {
		return fmt.Errorf("no payload files found")
	}

	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	writer := report.NewWriter()
	for _, file := range payloads {
		snippet, err := renderSnippet(writer, file.Path, file.Content, fields)
		if err != nil {
			return fmt.Errorf("%s: %w", file.Path, err)
		}

		name := strings.TrimSuffix(filepath.Base(file.Path), filepath.Ext(file.Path)) + ".md"
		target := filepath.Join(cfg.Output, name)
		if err := os.WriteFile(target, []byte(snippet), 0o644); err != nil {
			return fmt.Errorf("failed to write snippet: %w", err)
		}
		printVerbose("Wrote %s", target)
	}

	printInfo("Generated %d snippet(s) in %s", len(payloads), cfg.Output)
	return nil
}

// renderSnippet builds the markdown body for one payload: a structure outline
// code block, the field documentation table, and a warning when payload
// content is not covered by the field specification.
func renderSnippet(writer *report.Writer, path string, raw []byte, fields []types.FieldDescriptor) (string, error) {
	structure, err := payload.NewStructure(raw)
	if err != nil {
		return "", err
	}
	rows, err := resolveFieldRows(raw, fields)
	if err != nil {
		return "", err
	}
	handler, err := payload.NewContentHandler(raw)
	if err != nil {
		return "", err
	}
	undocumented, err := handler.UndocumentedContent(fields)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", filepath.Base(path))
	b.WriteString("## Structure\n\n```\n")
	b.WriteString(structure.String())
	b.WriteString("```\n\n## Fields\n\n")
	if err := writer.WriteMarkdownTable(rows, &b); err != nil {
		return "", err
	}
	if undocumented != "" {
		b.WriteString("\n## Undocumented Content\n\n")
		b.WriteString("The payload carries content the field specification does not cover:\n\n```json\n")
		b.WriteString(undocumented)
		b.WriteString("\n```\n")
	}
	return b.String(), nil
}
