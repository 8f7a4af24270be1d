// Package cli implements the quotecard command-line interface.
//
// This package provides commands for generating quote card images from
// text, inspecting the computed layout, and generating shell completions.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Render a quote card image from quote text
//   - plan: Print the computed layout as JSON without rendering
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tkurosawa/quotecard/pkg/buildinfo"
	"github.com/tkurosawa/quotecard/pkg/cache"
	"github.com/tkurosawa/quotecard/pkg/diag"
	"github.com/tkurosawa/quotecard/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "quotecard"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "quotecard",
		Short:        "Quotecard renders quote text as shareable card images",
		Long:         `Quotecard is a CLI tool for turning a quote, an optional title, and an optional author into a typeset card image, with Japanese line-breaking rules applied to the text.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.planCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache, noDiag bool) (*pipeline.Runner, error) {
	store, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	rec, err := newRecorder(noDiag)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, rec, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// newRecorder creates the failure recorder. One log file is created per
// process, named by start time, so runs never interleave.
func newRecorder(noDiag bool) (diag.Recorder, error) {
	if noDiag {
		return diag.NewNullRecorder(), nil
	}
	dir, err := stateDir()
	if err != nil {
		return diag.NewNullRecorder(), nil
	}
	name := fmt.Sprintf("failures-%s.log", time.Now().Format("20060102-150405"))
	return diag.NewFileRecorder(filepath.Join(dir, name))
}

// cacheDir returns the cache directory using XDG standard (~/.cache/quotecard/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// stateDir returns the diagnostics directory using XDG standard
// (~/.local/state/quotecard/).
func stateDir() (string, error) {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", appName), nil
}
