package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "cleanrec.dev/pkg/cleanrec/internal/model"
	"cleanrec.dev/pkg/cleanrec/pkg"
)

// SimpleUI implements UI with plain text written through the cobra command.
// Diagnostics go to the error stream, the summary to the output stream.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start records the display mode.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mode = applyStartOptions(options).mode

	return nil
}

// DisplayScanInfo prints where the scan starts and how it is bounded.
func (s *SimpleUI) DisplayScanInfo(ctx context.Context, root m.Path, depth uint, cfg m.Config) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.errorf("Scanning %q (depth %d, mode %s)\n", root, depth, cfg.DeleteMode)

	if len(cfg.ExcludeDirs) > 0 {
		s.errorf("Excluding directories ending with: %s\n", strings.Join(cfg.ExcludeDirs, ", "))
	}
}

// DisplayCleaning prints one line per build root.
func (s *SimpleUI) DisplayCleaning(ctx context.Context, path m.Path, _ []m.CleanAction) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.errorf("%s %q\n", cleaningVerb(s.mode), path)
}

// DisplayWarning prints an absorbed failure followed by its causes.
func (s *SimpleUI) DisplayWarning(ctx context.Context, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	chain := pkg.ErrorChain(err)
	if len(chain) == 0 {
		return
	}

	s.errorf("Warn: %s\n", chain[0])

	for _, cause := range chain[1:] {
		s.errorf("\tat: %s\n", cause)
	}
}

// DisplaySummary prints the table of build roots reached by the scan.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s", renderSummary(summary, s.mode))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}

func cleaningVerb(mode StartMode) string {
	if mode == ModeDryRun {
		return "Would clean"
	}

	return "Cleaning"
}

func renderSummary(summary m.Summary, mode StartMode) string {
	if len(summary.Cleaned) == 0 {
		return fmt.Sprintf("No build roots found (%d directories visited, %d warning(s))\n",
			summary.Visited, summary.Warnings)
	}

	return renderSummaryTable(summary, mode)
}

func renderSummaryTable(summary m.Summary, mode StartMode) string {
	var tableBuffer bytes.Buffer

	header := "Cleaned"
	if mode == ModeDryRun {
		header = "Would clean"
	}

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{header, "Actions"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, root := range summary.Cleaned {
		table.Append([]string{string(root.Path), formatActions(root.Actions)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Visited %d", summary.Visited),
		fmt.Sprintf("Warnings %d", summary.Warnings),
	})

	table.Render()

	return tableBuffer.String()
}

func formatActions(actions []m.CleanAction) string {
	if len(actions) == 0 {
		return "none"
	}

	names := make([]string, 0, len(actions))
	for _, action := range actions {
		names = append(names, action.String())
	}

	return strings.Join(names, ", ")
}
