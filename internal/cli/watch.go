// SPDX-FileCopyrightText: 2026 payloaddoc
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/payloaddoc/payloaddoc/internal/config"
	"github.com/payloaddoc/payloaddoc/internal/report"
)

var watchDebounce int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-check payloads when they or the field specification change",
	Long: `Watch monitors the configured payload paths and the field specification
file, re-running the check whenever a relevant file changes. Rapid bursts of
events are debounced into a single re-check.

An onChange command can be configured to run after every re-check, for example
to rebuild documentation.

Example:
  payloaddoc watch
  payloaddoc watch --debounce 1000`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&watchDebounce, "debounce", 0, "debounce duration in milliseconds (overrides config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadCheckConfig()
	if err != nil {
		return err
	}

	debounce := cfg.Watch.Debounce
	if watchDebounce > 0 {
		debounce = watchDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchTargets(watcher, cfg); err != nil {
		return err
	}

	printInfo("Watching for changes (debounce: %dms). Press Ctrl+C to stop.", debounce)

	// Initial check so the first report doesn't wait for a change.
	checkAndReport(cfg, args)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event, cfg) {
				continue
			}
			printVerbose("Change detected: %s", event.Name)
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(time.Duration(debounce) * time.Millisecond)
			timerCh = timer.C

			// Watch directories created after startup.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}

		case <-timerCh:
			timerCh = nil
			checkAndReport(cfg, args)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError("watch error: %v", err)

		case <-sigCh:
			printInfo("Stopping watch")
			return nil
		}
	}
}

// addWatchTargets registers the payload paths (recursively) and the directory
// holding the field specification file.
func addWatchTargets(watcher *fsnotify.Watcher, cfg *config.Config) error {
	for _, path := range cfg.Payloads.Paths {
		err := filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				base := d.Name()
				if base == ".git" || base == "node_modules" {
					return filepath.SkipDir
				}
				return watcher.Add(p)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to watch path %s: %w", path, err)
		}
	}

	descriptorDir := filepath.Dir(cfg.Descriptors)
	if descriptorDir == "" {
		descriptorDir = "."
	}
	if err := watcher.Add(descriptorDir); err != nil {
		return fmt.Errorf("failed to watch field specification: %w", err)
	}
	return nil
}

// relevantEvent reports whether an event should trigger a re-check: writes,
// creates, removes and renames of JSON payloads or the field specification.
func relevantEvent(event fsnotify.Event, cfg *config.Config) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	if filepath.Clean(event.Name) == filepath.Clean(cfg.Descriptors) {
		return true
	}
	ext := strings.ToLower(filepath.Ext(event.Name))
	if ext == ".json" {
		return true
	}
	// A created directory is relevant: it may receive payloads.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

// checkAndReport runs one check pass and prints the report. Watch keeps
// running on errors: a half-written file will produce another event.
func checkAndReport(cfg *config.Config, args []string) {
	result, err := runCheckOnce(cfg, args)
	if err != nil {
		printError("%v", err)
		return
	}

	ignore := cfg.Check.Ignore
	result = result.FilterIgnored(func(path string) bool {
		return matchesAnyPattern(path, ignore)
	})

	writer := report.NewWriter()
	if err := writer.Write(result, os.Stdout, cfg.Format); err != nil {
		printError("%v", err)
		return
	}

	if cfg.Watch.OnChange != "" {
		runOnChange(cfg.Watch.OnChange)
	}
}

// runOnChange executes the configured onChange command through the shell.
func runOnChange(command string) {
	printVerbose("Running onChange command: %s", command)
	cmd := exec.Command("sh", "-c", command)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		printError("onChange command failed: %v", err)
	}
}
