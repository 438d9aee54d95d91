package domain

import (
	"context"
	"fmt"
	"log/slog"

	"cleanrec.dev/pkg/cleanrec/internal/adapter"
	"cleanrec.dev/pkg/cleanrec/internal/controller"
	m "cleanrec.dev/pkg/cleanrec/internal/model"
)

// Sweeper walks a directory tree depth-first and cleans every Cargo build
// root it reaches.
//
// A failure inside a child subtree is reported as a warning and the walk
// moves on to the next sibling; only a failure at the directory Walk was
// called with is returned.
type Sweeper interface {
	// Walk visits path and its subdirectories up to depth levels. A depth of
	// zero visits nothing, not even path itself.
	Walk(ctx context.Context, path m.Path, depth uint, cfg m.Config) error
	// DetectAndClean runs the configured clean actions when path is a build
	// root and reports whether it was one.
	DetectAndClean(ctx context.Context, path m.Path, cfg m.Config) (bool, error)
	// Summary returns what the sweeper did since the last Reset.
	Summary() m.Summary
	// Reset clears the accumulated summary.
	Reset()
}

// ExitStatusError reports a clean tool run that finished with a non-zero
// exit status.
type ExitStatusError struct {
	Code   int
	Output string
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

type sweeper struct {
	fsAdapter    adapter.DirFSAdapter
	cargoAdapter adapter.CargoAdapter
	ui           controller.UI
	summary      m.Summary
}

// NewSweeper constructs a Sweeper backed by the provided filesystem adapter,
// clean tool adapter and UI.
func NewSweeper(fsAdapter adapter.DirFSAdapter, cargoAdapter adapter.CargoAdapter, ui controller.UI) Sweeper {
	return &sweeper{
		fsAdapter:    fsAdapter,
		cargoAdapter: cargoAdapter,
		ui:           ui,
	}
}

func (s *sweeper) Walk(ctx context.Context, path m.Path, depth uint, cfg m.Config) error {
	if depth == 0 {
		return nil
	}

	s.summary.Visited++

	if _, err := s.DetectAndClean(ctx, path, cfg); err != nil {
		return fmt.Errorf("cleaning directory %q: %w", path, err)
	}

	entries, err := s.fsAdapter.ReadDir(path)
	if err != nil {
		return fmt.Errorf("reading directory %q: %w", path, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		if cfg.IsExcluded(entry.Name()) {
			slog.Debug("skipping excluded directory", "path", path, "name", entry.Name())
			continue
		}

		child := s.fsAdapter.JoinPath(string(path), entry.Name())

		if err := s.Walk(ctx, child, depth-1, cfg); err != nil {
			s.summary.Warnings++
			slog.Warn("Skipping subtree after failure", "path", child, "error", err)
			s.ui.DisplayWarning(ctx, err)
		}
	}

	return nil
}

func (s *sweeper) DetectAndClean(ctx context.Context, path m.Path, cfg m.Config) (bool, error) {
	if !s.isBuildRoot(path) {
		return false, nil
	}

	actions := cfg.DeleteMode.Actions()

	slog.Info("Found build root", "path", path, "mode", cfg.DeleteMode.String(), "dryRun", cfg.DryRun)
	s.ui.DisplayCleaning(ctx, path, actions)

	if !cfg.DryRun {
		for _, action := range actions {
			if err := s.runAction(ctx, path, action, cfg.Strict); err != nil {
				return true, err
			}
		}
	}

	// Only roots whose actions all succeeded reach the summary.
	s.summary.Cleaned = append(s.summary.Cleaned, m.CleanedRoot{
		Path:    path,
		Actions: actions,
		DryRun:  cfg.DryRun,
	})

	return true, nil
}

func (s *sweeper) Summary() m.Summary {
	summary := s.summary
	summary.Cleaned = append([]m.CleanedRoot(nil), s.summary.Cleaned...)

	return summary
}

func (s *sweeper) Reset() {
	s.summary = m.Summary{}
}

// isBuildRoot requires both the manifest and the target directory directly
// under path. Stat failures count as absence.
func (s *sweeper) isBuildRoot(path m.Path) bool {
	manifest := s.fsAdapter.JoinPath(string(path), m.ManifestFileName)

	hasManifest, err := s.fsAdapter.Exists(manifest)
	if err != nil {
		slog.Debug("Failed to stat manifest", "path", manifest, "error", err)
		return false
	}

	if !hasManifest {
		return false
	}

	target := s.fsAdapter.JoinPath(string(path), m.TargetDirName)

	hasTarget, err := s.fsAdapter.IsDir(target)
	if err != nil {
		slog.Debug("Failed to stat target directory", "path", target, "error", err)
		return false
	}

	return hasTarget
}

func (s *sweeper) runAction(ctx context.Context, path m.Path, action m.CleanAction, strict bool) error {
	result, err := s.cargoAdapter.Clean(ctx, path, action)
	if err != nil {
		slog.Error("Failed to invoke clean tool", "path", path, "action", action.String(), "error", err)
		return fmt.Errorf("clean %s: %w", action, err)
	}

	if result.ExitCode == 0 {
		slog.Debug("Clean finished", "path", path, "action", action.String())
		return nil
	}

	slog.Warn("Clean tool exited with non-zero status",
		"path", path, "action", action.String(), "exitCode", result.ExitCode, "output", result.Output)

	if strict {
		return fmt.Errorf("clean %s: %w", action, &ExitStatusError{Code: result.ExitCode, Output: result.Output})
	}

	return nil
}
