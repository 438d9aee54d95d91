package controller

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "cleanrec.dev/pkg/cleanrec/internal/model"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := &cobra.Command{Use: "test"}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	return cmd, out, errOut
}

func TestNewUI(t *testing.T) {
	cmd, _, _ := newTestCommand()

	assert.IsType(t, &StyledUI{}, NewUI(cmd, true))
	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
}

func TestIsTTY_NonTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.False(t, IsTTY(f))
	assert.False(t, IsTTY(nil))
}

func TestSimpleUI_DisplayCleaning(t *testing.T) {
	ctx := context.Background()

	t.Run("clean mode", func(t *testing.T) {
		cmd, out, errOut := newTestCommand()
		ui := NewSimpleUI(cmd)
		require.NoError(t, ui.Start(ctx, WithCleanMode()))

		ui.DisplayCleaning(ctx, m.Path("/ws/proj-a"), []m.CleanAction{m.ActionFull})

		assert.Equal(t, "Cleaning \"/ws/proj-a\"\n", errOut.String())
		assert.Empty(t, out.String())
	})

	t.Run("dry run mode", func(t *testing.T) {
		cmd, _, errOut := newTestCommand()
		ui := NewSimpleUI(cmd)
		require.NoError(t, ui.Start(ctx, WithDryRunMode()))

		ui.DisplayCleaning(ctx, m.Path("/ws/proj-a"), []m.CleanAction{m.ActionFull})

		assert.Equal(t, "Would clean \"/ws/proj-a\"\n", errOut.String())
	})
}

func TestSimpleUI_DisplayWarning(t *testing.T) {
	cmd, _, errOut := newTestCommand()
	ui := NewSimpleUI(cmd)
	ctx := context.Background()

	err := fmt.Errorf("reading directory %q: %w", "/ws/locked", errors.New("permission denied"))
	ui.DisplayWarning(ctx, err)

	assert.Equal(t, "Warn: reading directory \"/ws/locked\"\n\tat: permission denied\n", errOut.String())
}

func TestSimpleUI_DisplayScanInfo(t *testing.T) {
	cmd, _, errOut := newTestCommand()
	ui := NewSimpleUI(cmd)

	ui.DisplayScanInfo(context.Background(), m.Path("/ws"), 64, m.Config{
		ExcludeDirs: []string{"build", ".git"},
		DeleteMode:  m.DeletePartial(true, false),
	})

	assert.Contains(t, errOut.String(), `Scanning "/ws" (depth 64, mode Partial{doc: true, release: false})`)
	assert.Contains(t, errOut.String(), "build, .git")
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	ctx := context.Background()

	t.Run("no build roots", func(t *testing.T) {
		cmd, out, _ := newTestCommand()
		ui := NewSimpleUI(cmd)

		ui.DisplaySummary(ctx, m.Summary{Visited: 5, Warnings: 1})

		assert.Equal(t, "No build roots found (5 directories visited, 1 warning(s))\n", out.String())
	})

	t.Run("table of cleaned roots", func(t *testing.T) {
		cmd, out, _ := newTestCommand()
		ui := NewSimpleUI(cmd)

		ui.DisplaySummary(ctx, m.Summary{
			Visited: 7,
			Cleaned: []m.CleanedRoot{
				{Path: m.Path("/ws/proj-a"), Actions: []m.CleanAction{m.ActionFull}},
				{Path: m.Path("/ws/proj-b"), Actions: []m.CleanAction{m.ActionDoc, m.ActionRelease}},
				{Path: m.Path("/ws/proj-c"), Actions: nil},
			},
		})

		output := out.String()
		assert.Contains(t, output, "Cleaned")
		assert.Contains(t, output, "/ws/proj-a")
		assert.Contains(t, output, "doc, release")
		assert.Contains(t, output, "none")
		assert.Contains(t, output, "Visited 7")
		assert.Contains(t, output, "Warnings 0")
	})
}

func TestSimpleUI_CanceledContext(t *testing.T) {
	cmd, out, errOut := newTestCommand()
	ui := NewSimpleUI(cmd)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, ui.Start(ctx))
	ui.DisplayCleaning(ctx, m.Path("/ws"), nil)
	ui.DisplayWarning(ctx, errors.New("boom"))
	ui.DisplaySummary(ctx, m.Summary{})

	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}

func TestStyledUI_Output(t *testing.T) {
	cmd, out, errOut := newTestCommand()
	ui := NewStyledUI(cmd)
	ctx := context.Background()
	require.NoError(t, ui.Start(ctx))

	ui.DisplayCleaning(ctx, m.Path("/ws/proj-a"), []m.CleanAction{m.ActionDoc})
	ui.DisplayWarning(ctx, fmt.Errorf("cleaning directory %q: %w", "/ws/x", errors.New("exec: not found")))
	ui.DisplaySummary(ctx, m.Summary{Visited: 2, Cleaned: []m.CleanedRoot{{Path: m.Path("/ws/proj-a")}}})

	assert.Contains(t, errOut.String(), "Cleaning")
	assert.Contains(t, errOut.String(), "/ws/proj-a")
	assert.Contains(t, errOut.String(), "[doc]")
	assert.Contains(t, errOut.String(), "Warn:")
	assert.Contains(t, errOut.String(), "at: exec: not found")
	assert.Contains(t, out.String(), "/ws/proj-a")
}
