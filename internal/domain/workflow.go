// Package domain implements the recursive build-root scan and its single
// top-level entry point.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"cleanrec.dev/pkg/cleanrec/internal/adapter"
	"cleanrec.dev/pkg/cleanrec/internal/controller"
	m "cleanrec.dev/pkg/cleanrec/internal/model"
)

// DefaultDepth is the recursion budget used when the operator sets none.
const DefaultDepth uint = 64

// RunArgs contains the arguments for one scan.
type RunArgs struct {
	Root   m.Path
	Depth  uint
	Config m.Config
}

// Workflow runs a complete scan and reports its outcome.
type Workflow interface {
	// Run scans args.Root. The returned error is the failure of the root
	// directory itself; failures below it are reported as warnings.
	Run(ctx context.Context, args RunArgs) error
}

type workflow struct {
	adapter.DirFSAdapter
	controller.UI
	Sweeper
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(fsAdapter adapter.DirFSAdapter, ui controller.UI, sweeper Sweeper) Workflow {
	return &workflow{
		DirFSAdapter: fsAdapter,
		UI:           ui,
		Sweeper:      sweeper,
	}
}

func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	root, err := w.Abs(args.Root)
	if err != nil {
		return fmt.Errorf("resolving root path %q: %w", args.Root, err)
	}

	mode := controller.WithCleanMode()
	if args.Config.DryRun {
		mode = controller.WithDryRunMode()
	}

	if err := w.Start(ctx, mode); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}

	slog.Info("Starting scan",
		"root", root,
		"depth", args.Depth,
		"mode", args.Config.DeleteMode.String(),
		"exclude", args.Config.ExcludeDirs,
		"strict", args.Config.Strict,
		"dryRun", args.Config.DryRun,
	)
	w.DisplayScanInfo(ctx, root, args.Depth, args.Config)

	w.Reset()

	if err := w.Walk(ctx, root, args.Depth, args.Config); err != nil {
		slog.Error("Scan failed at root", "root", root, "error", err)
		return err
	}

	summary := w.Summary()
	slog.Info("Scan finished", "visited", summary.Visited, "cleaned", len(summary.Cleaned), "warnings", summary.Warnings)
	w.DisplaySummary(ctx, summary)

	return nil
}
