// Package controller provides the output adapters that report scan progress.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "cleanrec.dev/pkg/cleanrec/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeClean StartMode = iota
	ModeDryRun
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithCleanMode reports build roots as being cleaned.
func WithCleanMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeClean
	}
}

// WithDryRunMode reports build roots as candidates only.
func WithDryRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeDryRun
	}
}

// UI receives the diagnostics emitted during a scan.
// Implementations can use different output methods (plain text, styled, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	DisplayScanInfo(ctx context.Context, root m.Path, depth uint, cfg m.Config)
	DisplayCleaning(ctx context.Context, path m.Path, actions []m.CleanAction)
	DisplayWarning(ctx context.Context, err error)
	DisplaySummary(ctx context.Context, summary m.Summary)
}

// NewUI returns a styled UI for terminals and a plain one otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewStyledUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func applyStartOptions(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeClean}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}
