// SPDX-FileCopyrightText: 2026 payloaddoc
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/payloaddoc/payloaddoc/internal/payload"
)

var structureCmd = &cobra.Command{
	Use:   "structure <payload> [payloads...]",
	Short: "Print the structure outline of captured payloads",
	Long: `Structure prints a condensed outline of a JSON payload's shape.

Objects render as "{ ... }" blocks, arrays as "[ ... ]" blocks and leaf
positions as their resolved type. Array elements with the same shape collapse
to one representative, so large collections stay readable.

Example:
  payloaddoc structure captured/user.json
  payloaddoc structure captured/*.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStructure,
}

func runStructure(cmd *cobra.Command, args []string) error {
	for _, path := range args {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read payload: %w", err)
		}
		structure, err := payload.NewStructure(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if len(args) > 1 {
			fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", path)
		}
		fmt.Fprint(cmd.OutOrStdout(), structure.String())
	}
	return nil
}
