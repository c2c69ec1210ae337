// SPDX-FileCopyrightText: 2026 payloaddoc
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/payloaddoc/payloaddoc/internal/config"
	"github.com/payloaddoc/payloaddoc/internal/descriptor"
	"github.com/payloaddoc/payloaddoc/internal/payload"
	"github.com/payloaddoc/payloaddoc/internal/report"
	"github.com/payloaddoc/payloaddoc/internal/scanner"
	"github.com/payloaddoc/payloaddoc/pkg/types"
)

// Exit codes for check command
const (
	ExitCodeDocumented = 0 // Payloads match the field specification
	ExitCodeFindings   = 1 // Payloads differ from the field specification
	ExitCodeCheckError = 2 // Error during analysis
)

var (
	checkStrict bool
	checkIgnore []string
	checkCI     bool
)

var checkCmd = &cobra.Command{
	Use:   "check [payloads...]",
	Short: "Check captured payloads against the field specification",
	Long: `Check verifies that captured JSON payloads match the field specification.

For every payload it reports documented fields that are missing, fields whose
documented type contradicts the payload, and payload content that is not
documented at all. It's useful for CI pipelines to ensure the documentation
is always in sync with the API.

Exit codes:
  0  Payloads match the field specification
  1  Payloads differ from the field specification
  2  Error during analysis

Example:
  payloaddoc check                      # Check all configured payloads
  payloaddoc check captured/user.json   # Check a single payload
  payloaddoc check --ci                 # CI mode with appropriate exit codes
  payloaddoc check --ignore "_links*"   # Ignore findings for matching paths`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", true, "fail on any finding")
	checkCmd.Flags().StringSliceVar(&checkIgnore, "ignore", nil, "field path patterns to ignore in findings")
	checkCmd.Flags().BoolVar(&checkCI, "ci", false, "CI mode: use exit codes for status")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadCheckConfig()
	if err != nil {
		if checkCI {
			os.Exit(ExitCodeCheckError)
		}
		return err
	}

	result, err := runCheckOnce(cfg, args)
	if err != nil {
		if checkCI {
			os.Exit(ExitCodeCheckError)
		}
		return err
	}

	ignore := append(append([]string{}, cfg.Check.Ignore...), checkIgnore...)
	result = result.FilterIgnored(func(path string) bool {
		return matchesAnyPattern(path, ignore)
	})

	writer := report.NewWriter()
	if err := writer.Write(result, os.Stdout, cfg.Format); err != nil {
		if checkCI {
			os.Exit(ExitCodeCheckError)
		}
		return err
	}

	if result.IsEmpty() {
		if checkCI {
			os.Exit(ExitCodeDocumented)
		}
		return nil
	}

	if checkCI {
		os.Exit(ExitCodeFindings)
	}
	if checkStrict || cfg.Check.Strict {
		return fmt.Errorf("payloads differ from the field specification")
	}
	return nil
}

// loadCheckConfig loads the configuration and applies command-line overrides.
func loadCheckConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if descriptors != "" {
		cfg.Descriptors = descriptors
	}
	if format != "" {
		cfg.Format = format
	}
	if output != "" {
		cfg.Output = output
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// runCheckOnce loads the field specification, discovers payloads and checks
// them. It is shared by the check and watch commands.
func runCheckOnce(cfg *config.Config, args []string) (*report.Result, error) {
	fields, err := descriptor.Load(cfg.Descriptors)
	if err != nil {
		return nil, err
	}

	payloads, err := discoverPayloads(cfg, args)
	if err != nil {
		return nil, err
	}
	if len(payloads) == 0 {
		return nil, fmt.Errorf("no payload files found")
	}

	printVerbose("Checking %d payload(s) against %s", len(payloads), cfg.Descriptors)

	return checkPayloads(fields, payloads)
}

// discoverPayloads resolves the payload files to check: explicit arguments
// when given, the configured discovery globs otherwise.
func discoverPayloads(cfg *config.Config, args []string) ([]scanner.PayloadFile, error) {
	paths := args
	if len(paths) == 0 {
		paths = cfg.Payloads.Paths
	}

	var files []scanner.PayloadFile
	for _, path := range paths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
		}
		s := scanner.New(scanner.Config{
			BasePath:        absPath,
			IncludePatterns: cfg.Payloads.Include,
			ExcludePatterns: cfg.Payloads.Exclude,
		})
		pathFiles, err := s.Scan()
		if err != nil {
			return nil, fmt.Errorf("failed to scan path %s: %w", path, err)
		}
		files = append(files, pathFiles...)
	}
	return files, nil
}

// checkPayloads runs the three checks for every payload.
func checkPayloads(fields []types.FieldDescriptor, payloads []scanner.PayloadFile) (*report.Result, error) {
	result := &report.Result{}
	for _, file := range payloads {
		payloadResult, err := checkPayload(fields, file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file.Path, err)
		}
		result.Payloads = append(result.Payloads, *payloadResult)
	}
	return result, nil
}

func checkPayload(fields []types.FieldDescriptor, file scanner.PayloadFile) (*report.PayloadResult, error) {
	handler, err := payload.NewContentHandler(file.Content)
	if err != nil {
		return nil, err
	}

	payloadResult := &report.PayloadResult{Payload: file.Path}

	missing, err := handler.FindMissingFields(fields)
	if err != nil {
		return nil, err
	}
	payloadResult.Missing = missing

	for _, d := range fields {
		if _, err := handler.DetermineFieldType(d); err != nil {
			var mismatch *payload.FieldTypeMismatchError
			if errors.As(err, &mismatch) {
				payloadResult.Mismatches = append(payloadResult.Mismatches, report.Mismatch{
					Descriptor: mismatch.Descriptor,
					Actual:     mismatch.Actual,
				})
				continue
			}
			var absent *payload.FieldDoesNotExistError
			if errors.As(err, &absent) {
				// already reported by the missing-field check
				continue
			}
			return nil, err
		}
	}

	undocumented, err := handler.UndocumentedContent(fields)
	if err != nil {
		return nil, err
	}
	payloadResult.Undocumented = undocumented

	return payloadResult, nil
}

// matchesAnyPattern checks if a field path matches any of the given patterns.
func matchesAnyPattern(s string, patterns []string) bool {
	for _, pattern := range patterns {
		// Simple prefix/suffix matching
		if strings.HasPrefix(pattern, "*") {
			if strings.HasSuffix(s, pattern[1:]) {
				return true
			}
		} else if strings.HasSuffix(pattern, "*") {
			if strings.HasPrefix(s, pattern[:len(pattern)-1]) {
				return true
			}
		} else if strings.Contains(pattern, "*") {
			// Use filepath.Match for glob patterns
			if matched, _ := filepath.Match(pattern, s); matched {
				return true
			}
		} else {
			// Exact match
			if s == pattern {
				return true
			}
		}
	}
	return false
}
