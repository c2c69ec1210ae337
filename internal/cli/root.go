// SPDX-FileCopyrightText: 2026 payloaddoc
// SPDX-License-Identifier: FSL-1.1-MIT

// Package cli provides the command-line interface for payloaddoc.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile     string
	descriptors string
	format      string
	output      string
	verbose     bool
	quiet       bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "payloaddoc",
	Short: "Payload documentation checker for HTTP APIs",
	Long: `payloaddoc documents HTTP API payloads by comparing a field specification
against JSON content captured from a real exchange.

It reports documented fields that are missing from the payload, fields whose
documented type contradicts the payload, and payload content that is not
documented at all.

Example:
  payloaddoc check                     # Check captured payloads against fields.yaml
  payloaddoc structure payload.json    # Print a payload's structure outline
  payloaddoc fields payload.json       # Print the resolved field documentation
  payloaddoc init --from payload.json  # Scaffold a field specification
  payloaddoc watch                     # Re-check when payloads or fields change`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: payloaddoc.yaml)")
	rootCmd.PersistentFlags().StringVarP(&descriptors, "descriptors", "d", "", "field specification file (default: fields.yaml)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "report format: text, json, yaml (default: text)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output directory for generated snippets (default: docs/payload)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(structureCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(watchCmd)
}

// printInfo prints a message if not in quiet mode.
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format+"\n", args...)
	}
}

// printVerbose prints a message if verbose mode is enabled.
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format+"\n", args...)
	}
}

// printError prints an error message.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
