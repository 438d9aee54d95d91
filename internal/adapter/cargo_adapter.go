package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"

	m "cleanrec.dev/pkg/cleanrec/internal/model"
)

// DefaultProgram is the clean tool invoked when none is configured.
const DefaultProgram = "cargo"

// CleanResult holds what a finished clean invocation produced.
type CleanResult struct {
	// Output is the combined stdout and stderr of the tool.
	Output   string
	ExitCode int
}

// CargoAdapter abstracts running the clean tool inside a build root.
type CargoAdapter interface {
	// Clean runs the tool with the arguments of action in workDir.
	// A non-zero exit status is reported through CleanResult.ExitCode; the
	// error is reserved for failures to run the tool at all.
	Clean(ctx context.Context, workDir m.Path, action m.CleanAction) (CleanResult, error)
}

// LocalCargoAdapter runs the clean tool with os/exec.
type LocalCargoAdapter struct {
	program string
}

// NewLocalCargoAdapter constructs a LocalCargoAdapter for program, falling
// back to DefaultProgram when it is empty.
func NewLocalCargoAdapter(program string) *LocalCargoAdapter {
	if program == "" {
		program = DefaultProgram
	}

	return &LocalCargoAdapter{program: program}
}

// Program returns the executable the adapter invokes.
func (a *LocalCargoAdapter) Program() string {
	return a.program
}

// SetProgram changes the executable used by later Clean calls. An empty
// program selects DefaultProgram.
func (a *LocalCargoAdapter) SetProgram(program string) {
	if program == "" {
		program = DefaultProgram
	}

	a.program = program
}

// Clean runs `<program> clean [flag]` with workDir as working directory.
func (a *LocalCargoAdapter) Clean(ctx context.Context, workDir m.Path, action m.CleanAction) (CleanResult, error) {
	args := action.Args()

	// #nosec G204 - program comes from the operator's own configuration
	cmd := exec.CommandContext(ctx, a.program, args...)
	cmd.Dir = string(workDir)

	var output bytes.Buffer

	cmd.Stdout = &output
	cmd.Stderr = &output

	slog.Debug("running clean tool", "program", a.program, "args", args, "dir", workDir)

	err := cmd.Run()
	result := CleanResult{Output: output.String()}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}

		return result, fmt.Errorf("running %s %v: %w", a.program, args, err)
	}

	return result, nil
}
