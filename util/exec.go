package util

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	zErrors "github.com/gjutils/gjutil/zErrors"
)

// Command is a program and its arguments. It is never passed through a
// shell, so arguments may contain quotes and spaces.
type Command struct {
	Program string
	Args    []string
}

func (c Command) String() string {
	return strings.TrimSpace(c.Program + " " + strings.Join(c.Args, " "))
}

// Result holds the captured output of one process run.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

var Exec Runner = execRunner{}

//go:generate mockgen -destination mocks/mock_runner.go -package mock_util github.com/gjutils/gjutil/util Runner
type Runner interface {
	// Run blocks until the process exits. A non-nil error is returned when the
	// program cannot be started or exits with a non-zero code; the Result is
	// populated in both cases.
	Run(ctx context.Context, cmd Command) (*Result, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, c Command) (*Result, error) {
	cmd := exec.CommandContext(ctx, c.Program, c.Args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return result, nil
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
		return result, fmt.Errorf("%s exited with code %d: %w", c, result.ExitCode, err)
	case errors.Is(err, exec.ErrNotFound):
		result.ExitCode = -1
		return result, fmt.Errorf("%w: %w", zErrors.NewToolNotFoundError(c.Program), err)
	default:
		result.ExitCode = -1
		return result, fmt.Errorf("running %s: %w", c, err)
	}
}
