// Package checks runs an ordered battery of external quality gates with
// fail-fast semantics: the first failing tool aborts the run and its exit
// code becomes the battery's outcome.
package checks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// SearchPathVar is the environment variable pointing invoked tools at the
// project root so they can resolve project-local modules.
const SearchPathVar = "PYTHONPATH"

// Step is one tool invocation of the battery.
type Step struct {
	Name    string
	Command string
	Args    []string
}

// CommandLine renders the step the way it is echoed before execution.
func (s Step) CommandLine() string {
	if len(s.Args) == 0 {
		return s.Command
	}
	return s.Command + " " + strings.Join(s.Args, " ")
}

// StepError reports which step failed and the exit code to propagate.
type StepError struct {
	Step string
	Code int
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %q failed with exit code %d", e.Step, e.Code)
}

// Battery is a fail-fast sequence of steps sharing one output stream.
type Battery struct {
	Steps  []Step
	Stdout io.Writer
	Stderr io.Writer
}

// Run sets the search-path variable to the absolute working directory, then
// executes every step in order. The first failure stops the run; a tool's
// non-zero exit surfaces as *StepError carrying that code.
func (b *Battery) Run(ctx context.Context) error {
	stdout := b.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := b.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}
	if err := os.Setenv(SearchPathVar, wd); err != nil {
		return fmt.Errorf("failed to set %s: %w", SearchPathVar, err)
	}

	for _, step := range b.Steps {
		fmt.Fprintf(stdout, "$ %s\n", step.CommandLine())

		cmd := exec.CommandContext(ctx, step.Command, step.Args...)
		cmd.Stdout = stdout
		cmd.Stderr = stderr

		if err := cmd.Run(); err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code := exitErr.ExitCode()
				if code <= 0 {
					// Killed by a signal; keep the failure visible.
					code = 1
				}
				return &StepError{Step: step.Name, Code: code}
			}
			return fmt.Errorf("step %q could not run: %w", step.Name, err)
		}
	}
	return nil
}
