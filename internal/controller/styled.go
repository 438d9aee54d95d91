package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "cleanrec.dev/pkg/cleanrec/internal/model"
	"cleanrec.dev/pkg/cleanrec/pkg"
)

var (
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	verbStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")).
			Bold(true)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3")).
			Bold(true)

	causeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3")).
			Faint(true)
)

// StyledUI implements UI with colored output for interactive terminals.
type StyledUI struct {
	cmd  *cobra.Command
	mode StartMode
}

// NewStyledUI creates a new StyledUI.
func NewStyledUI(cmd *cobra.Command) *StyledUI {
	return &StyledUI{cmd: cmd}
}

// Start records the display mode.
func (s *StyledUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mode = applyStartOptions(options).mode

	return nil
}

// DisplayScanInfo prints where the scan starts and how it is bounded.
func (s *StyledUI) DisplayScanInfo(ctx context.Context, root m.Path, depth uint, cfg m.Config) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.errorln(infoStyle.Render(fmt.Sprintf("Scanning %s (depth %d, mode %s)", root, depth, cfg.DeleteMode)))

	if len(cfg.ExcludeDirs) > 0 {
		s.errorln(infoStyle.Render("Excluding directories ending with: " + strings.Join(cfg.ExcludeDirs, ", ")))
	}
}

// DisplayCleaning prints one line per build root with the actions run there.
func (s *StyledUI) DisplayCleaning(ctx context.Context, path m.Path, actions []m.CleanAction) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.errorln(fmt.Sprintf("%s %s %s",
		verbStyle.Render(cleaningVerb(s.mode)),
		pathStyle.Render(string(path)),
		infoStyle.Render("["+formatActions(actions)+"]"),
	))
}

// DisplayWarning prints an absorbed failure followed by its causes.
func (s *StyledUI) DisplayWarning(ctx context.Context, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	chain := pkg.ErrorChain(err)
	if len(chain) == 0 {
		return
	}

	s.errorln(warnStyle.Render("Warn:") + " " + chain[0])

	for _, cause := range chain[1:] {
		s.errorln(causeStyle.Render("\tat: " + cause))
	}
}

// DisplaySummary prints the table of build roots reached by the scan.
func (s *StyledUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprint(s.cmd.OutOrStdout(), "\n"+renderSummary(summary, s.mode))
}

func (s *StyledUI) errorln(line string) {
	_, _ = fmt.Fprintln(s.cmd.ErrOrStderr(), line)
}
