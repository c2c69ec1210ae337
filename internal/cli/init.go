// SPDX-FileCopyrightText: 2026 payloaddoc
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/payloaddoc/payloaddoc/internal/descriptor"
	"github.com/payloaddoc/payloaddoc/internal/payload"
)

var (
	initFrom  string
	initForce bool
)

const defaultConfigContent = `# payloaddoc configuration
descriptors: fields.yaml
format: text
output: docs/payload

payloads:
  paths:
    - .
  include:
    - "**/*.json"
  exclude:
    - "node_modules/**"
    - ".git/**"

check:
  strict: true
  ignore: []

watch:
  debounce: 500
`

const defaultFieldsContent = `# payloaddoc field specification
#
# Document every payload field with a path expression, its type(s), an
# optional flag and a description. Example:
#
# fields:
#   - path: user.name
#     type: String
#     description: The user's display name
#   - path: user.roles[]
#     type: [String, Null]
#     optional: true
#     description: Roles granted to the user
fields: []
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a payloaddoc configuration",
	Long: `Init scaffolds a payloaddoc project: a payloaddoc.yaml configuration file
and a fields.yaml field specification.

With --from, the field specification is inferred from a captured payload: one
descriptor per document position, with types taken from the payload. Inferred
descriptions are left empty for you to fill in.

Example:
  payloaddoc init
  payloaddoc init --from captured/user.json`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initFrom, "from", "", "infer the field specification from a captured payload")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing files")
}

func runInit(cmd *cobra.Command, args []string) error {
	if err := writeInitFile("payloaddoc.yaml", []byte(defaultConfigContent)); err != nil {
		return err
	}

	fieldsContent := []byte(defaultFieldsContent)
	if initFrom != "" {
		inferred, err := inferFields(initFrom)
		if err != nil {
			return err
		}
		fieldsContent = inferred
	}
	if err := writeInitFile("fields.yaml", fieldsContent); err != nil {
		return err
	}

	printInfo("Initialized payloaddoc project")
	printInfo("  payloaddoc.yaml  configuration")
	printInfo("  fields.yaml      field specification")
	if initFrom == "" {
		printInfo("\nNext: document your payload fields in fields.yaml, then run 'payloaddoc check'")
	} else {
		printInfo("\nNext: review the inferred fields.yaml and add descriptions, then run 'payloaddoc check'")
	}
	return nil
}

func writeInitFile(path string, content []byte) error {
	if !initForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// inferFields builds a starter field specification from a captured payload.
func inferFields(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}
	content, err := payload.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	fields := descriptor.Skeleton(content)
	if len(fields) == 0 {
		return []byte(defaultFieldsContent), nil
	}
	return descriptor.Marshal(fields)
}
