// SPDX-FileCopyrightText: 2026 payloaddoc
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/payloaddoc/payloaddoc/internal/descriptor"
	"github.com/payloaddoc/payloaddoc/internal/payload"
	"github.com/payloaddoc/payloaddoc/internal/report"
	"github.com/payloaddoc/payloaddoc/pkg/types"
)

var fieldsMarkdown bool

var fieldsCmd = &cobra.Command{
	Use:   "fields <payload>",
	Short: "Print the resolved field documentation for a payload",
	Long: `Fields resolves the field specification against a captured payload and
prints the documentation table: every documented path with its resolved type,
optionality and description.

Declared types are checked against the payload; descriptors without a declared
type get the type inferred from the payload.

Example:
  payloaddoc fields captured/user.json
  payloaddoc fields captured/user.json --markdown`,
	Args: cobra.ExactArgs(1),
	RunE: runFields,
}

func init() {
	fieldsCmd.Flags().BoolVar(&fieldsMarkdown, "markdown", false, "render the table as markdown")
}

func runFields(cmd *cobra.Command, args []string) error {
	cfg, err := loadCheckConfig()
	if err != nil {
		return err
	}

	fields, err := descriptor.Load(cfg.Descriptors)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read payload: %w", err)
	}
	rows, err := resolveFieldRows(raw, fields)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	writer := report.NewWriter()
	if fieldsMarkdown {
		return writer.WriteMarkdownTable(rows, cmd.OutOrStdout())
	}
	return writer.WriteFieldTable(rows, cmd.OutOrStdout())
}

// resolveFieldRows determines every descriptor's documented type against the
// payload. A type mismatch renders as the actual type so the table shows what
// the payload really carries; check is the command that fails on it.
func resolveFieldRows(raw []byte, fields []types.FieldDescriptor) ([]report.FieldRow, error) {
	handler, err := payload.NewContentHandler(raw)
	if err != nil {
		return nil, err
	}

	rows := make([]report.FieldRow, 0, len(fields))
	for _, d := range fields {
		resolved, err := handler.DetermineFieldType(d)
		if err != nil {
			var mismatch *payload.FieldTypeMismatchError
			if errors.As(err, &mismatch) {
				resolved = types.TypeSet{string(mismatch.Actual)}
			} else {
				var absent *payload.FieldDoesNotExistError
				if !errors.As(err, &absent) {
					return nil, err
				}
				resolved = d.Types
			}
		}
		rows = append(rows, report.NewFieldRow(d, resolved))
	}
	return rows, nil
}
