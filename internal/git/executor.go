package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	gitpastErrors "github.com/bashhack/gitpast/internal/errors"
)

// CommandExecutor defines an interface for executing commands
type CommandExecutor interface {
	// ExecuteWithOutput runs a command and returns its standard output.
	// A non-zero exit is reported as a *errors.GitError.
	ExecuteWithOutput(ctx context.Context, cmd *exec.Cmd) (string, error)
}

// ExecExecutor is the default implementation of CommandExecutor
// that delegates to the os/exec package
type ExecExecutor struct{}

// NewExecExecutor creates a new ExecExecutor
func NewExecExecutor() *ExecExecutor {
	return &ExecExecutor{}
}

// ExecuteWithOutput implements CommandExecutor.ExecuteWithOutput
func (e *ExecExecutor) ExecuteWithOutput(ctx context.Context, cmd *exec.Cmd) (string, error) {
	operation, args := describe(cmd)

	if err := ctx.Err(); err != nil {
		return "", gitpastErrors.NewGitError(operation, args, err, "")
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", gitpastErrors.NewGitError(operation, args, ctxErr, strings.TrimSpace(stderr.String()))
		}
		// Keep both the sentinel and the *exec.ExitError reachable through errors.As/Is
		wrappedErr := fmt.Errorf("%w: %w", gitpastErrors.ErrGitOperationFailed, err)
		return "", gitpastErrors.NewGitError(operation, args, wrappedErr, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}

// describe extracts the git subcommand and its arguments from cmd,
// skipping global options such as -C <path>.
func describe(cmd *exec.Cmd) (string, []string) {
	if len(cmd.Args) == 0 {
		return filepath.Base(cmd.Path), nil
	}

	for i := 1; i < len(cmd.Args); i++ {
		arg := cmd.Args[i]
		switch {
		case arg == "-C" || arg == "-c":
			i++
		case strings.HasPrefix(arg, "-"):
		default:
			return arg, cmd.Args[i+1:]
		}
	}

	return filepath.Base(cmd.Args[0]), cmd.Args[1:]
}
