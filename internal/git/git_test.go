package git

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"testing"
	"time"

	gitpastErrors "github.com/bashhack/gitpast/internal/errors"
	"github.com/bashhack/gitpast/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() logger.Logger {
	return logger.NewWithOutput(false, "", false, io.Discard, io.Discard)
}

func TestCLICommands(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2023, time.June, 5, 14, 30, 0, 0, time.FixedZone("CEST", 2*60*60))

	tests := map[string]struct {
		call func(c *CLI) error
		want []string
	}{
		"init": {
			call: func(c *CLI) error { return c.Init(ctx, "main") },
			want: []string{"git", "-C", "/tmp/repo", "init", "-b", "main"},
		},
		"config": {
			call: func(c *CLI) error { return c.SetConfig(ctx, "user.name", "Ada Lovelace") },
			want: []string{"git", "-C", "/tmp/repo", "config", "--local", "user.name", "Ada Lovelace"},
		},
		"add": {
			call: func(c *CLI) error { return c.AddAll(ctx) },
			want: []string{"git", "-C", "/tmp/repo", "add", "."},
		},
		"commit": {
			call: func(c *CLI) error { return c.Commit(ctx, "Contribution: 2023-06-05 14:30", at) },
			want: []string{"git", "-C", "/tmp/repo", "commit", "-m", "Contribution: 2023-06-05 14:30", "--date", "2023-06-05T14:30:00+02:00"},
		},
		"remote": {
			call: func(c *CLI) error { return c.AddRemote(ctx, "origin", "git@example.com:user/repo.git") },
			want: []string{"git", "-C", "/tmp/repo", "remote", "add", "origin", "git@example.com:user/repo.git"},
		},
		"branch": {
			call: func(c *CLI) error { return c.RenameBranch(ctx, "main") },
			want: []string{"git", "-C", "/tmp/repo", "branch", "-M", "main"},
		},
		"push": {
			call: func(c *CLI) error { return c.Push(ctx, "origin", "main") },
			want: []string{"git", "-C", "/tmp/repo", "push", "-u", "origin", "main"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			executor := NewMockCommandExecutor()
			cli := NewCLIWithDeps("/tmp/repo", quietLogger(), executor)

			require.NoError(t, tc.call(cli))
			require.Len(t, executor.Commands, 1)
			assert.Equal(t, tc.want, executor.LastCmd.Args)
		})
	}
}

func TestCLICommitSetsHistoricalDates(t *testing.T) {
	executor := NewMockCommandExecutor()
	cli := NewCLIWithDeps("/tmp/repo", quietLogger(), executor)
	at := time.Date(2021, time.February, 3, 4, 5, 0, 0, time.UTC)

	require.NoError(t, cli.Commit(context.Background(), "msg", at))

	env := executor.LastCmd.Env
	assert.Contains(t, env, "GIT_AUTHOR_DATE=2021-02-03T04:05:00Z")
	assert.Contains(t, env, "GIT_COMMITTER_DATE=2021-02-03T04:05:00Z")
}

func TestCLIOnlyCommitOverridesEnvironment(t *testing.T) {
	executor := NewMockCommandExecutor()
	cli := NewCLIWithDeps("/tmp/repo", quietLogger(), executor)

	require.NoError(t, cli.AddAll(context.Background()))
	assert.Nil(t, executor.LastCmd.Env, "non-commit commands inherit the process environment")
}

func TestCLIPropagatesErrors(t *testing.T) {
	executor := NewMockCommandExecutor()
	executor.ExecuteWithOutputFn = func(ctx context.Context, cmd *exec.Cmd) (string, error) {
		return "", gitpastErrors.NewGitError("push", cmd.Args[3:], gitpastErrors.ErrGitOperationFailed, "Permission denied (publickey)")
	}
	cli := NewCLIWithDeps("/tmp/repo", quietLogger(), executor)

	err := cli.Push(context.Background(), "origin", "main")

	require.Error(t, err)
	assert.True(t, gitpastErrors.Is(err, gitpastErrors.ErrGitOperationFailed))
	assert.Contains(t, err.Error(), "Permission denied")
	assert.Len(t, executor.Commands, 1, "failed commands are not retried")
}

func TestIsAvailable(t *testing.T) {
	assert.NoError(t, IsAvailable(func(file string) (string, error) {
		return "/usr/bin/" + file, nil
	}))

	err := IsAvailable(func(file string) (string, error) {
		return "", errors.New("executable file not found in $PATH")
	})
	require.Error(t, err)
	assert.True(t, gitpastErrors.Is(err, gitpastErrors.ErrGitNotFound))
}

func TestDescribe(t *testing.T) {
	tests := map[string]struct {
		args   []string
		wantOp string
		want   []string
	}{
		"scoped commit": {
			args:   []string{"git", "-C", "/tmp/repo", "commit", "-m", "msg"},
			wantOp: "commit",
			want:   []string{"-m", "msg"},
		},
		"config override": {
			args:   []string{"git", "-c", "core.quotepath=off", "--no-pager", "log"},
			wantOp: "log",
			want:   []string{},
		},
		"flags only": {
			args:   []string{"git", "--version"},
			wantOp: "git",
			want:   []string{"--version"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			cmd := exec.Command(tc.args[0], tc.args[1:]...)
			op, args := describe(cmd)
			assert.Equal(t, tc.wantOp, op)
			assert.Equal(t, tc.want, args)
		})
	}
}

func TestExecExecutor(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}
	ctx := context.Background()
	executor := NewExecExecutor()

	output, err := executor.ExecuteWithOutput(ctx, exec.Command("echo", "test output"))
	require.NoError(t, err)
	assert.Equal(t, "test output", strings.TrimSpace(output))

	output, err = executor.ExecuteWithOutput(ctx, exec.Command("false"))
	require.Error(t, err)
	assert.Empty(t, output)
	assert.True(t, gitpastErrors.Is(err, gitpastErrors.ErrGitOperationFailed))

	var exitErr *exec.ExitError
	require.True(t, gitpastErrors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.ExitCode())

	var gitErr *gitpastErrors.GitError
	require.True(t, gitpastErrors.As(err, &gitErr))
	assert.Equal(t, "false", gitErr.Operation)
}

func TestExecExecutorCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewExecExecutor().ExecuteWithOutput(ctx, exec.CommandContext(ctx, "sleep", "5"))

	require.Error(t, err)
	assert.True(t, gitpastErrors.Is(err, context.Canceled))
}
