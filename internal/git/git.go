package git

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	gitpastErrors "github.com/bashhack/gitpast/internal/errors"
	"github.com/bashhack/gitpast/internal/logger"
)

// DateLayout is the timestamp format handed to git for author and committer dates.
const DateLayout = time.RFC3339

// Repository is the narrow set of version-control operations gitpast needs.
// Every call blocks until the underlying operation has finished.
type Repository interface {
	// Init creates an empty repository whose initial branch is branch.
	Init(ctx context.Context, branch string) error

	// SetConfig sets a repository-local configuration value.
	SetConfig(ctx context.Context, key, value string) error

	// AddAll stages every change in the working tree.
	AddAll(ctx context.Context) error

	// Commit records the staged changes with both author and committer date set to at.
	Commit(ctx context.Context, message string, at time.Time) error

	// AddRemote registers url under name.
	AddRemote(ctx context.Context, name, url string) error

	// RenameBranch force-renames the current branch to name.
	RenameBranch(ctx context.Context, name string) error

	// Push publishes branch to remote and sets it as upstream.
	Push(ctx context.Context, remote, branch string) error
}

// CLI implements Repository by invoking the git executable against a
// repository root. Every command runs with -C root, so the process working
// directory is never changed.
type CLI struct {
	root     string
	executor CommandExecutor
	logger   logger.Logger
}

var _ Repository = (*CLI)(nil)

// NewCLI creates a CLI for the repository at root using the real git executable.
func NewCLI(root string, log logger.Logger) *CLI {
	return NewCLIWithDeps(root, log, NewExecExecutor())
}

// NewCLIWithDeps creates a CLI with a custom command executor
func NewCLIWithDeps(root string, log logger.Logger, executor CommandExecutor) *CLI {
	return &CLI{
		root:     root,
		executor: executor,
		logger:   log,
	}
}

// IsAvailable checks that a git executable can be found with lookPath.
func IsAvailable(lookPath func(file string) (string, error)) error {
	if _, err := lookPath("git"); err != nil {
		return gitpastErrors.Wrap(gitpastErrors.ErrGitNotFound, err.Error())
	}
	return nil
}

// Init implements Repository.Init
func (c *CLI) Init(ctx context.Context, branch string) error {
	return c.run(ctx, nil, "init", "-b", branch)
}

// SetConfig implements Repository.SetConfig
func (c *CLI) SetConfig(ctx context.Context, key, value string) error {
	return c.run(ctx, nil, "config", "--local", key, value)
}

// AddAll implements Repository.AddAll
func (c *CLI) AddAll(ctx context.Context) error {
	return c.run(ctx, nil, "add", ".")
}

// Commit implements Repository.Commit
func (c *CLI) Commit(ctx context.Context, message string, at time.Time) error {
	date := at.Format(DateLayout)
	env := []string{
		"GIT_AUTHOR_DATE=" + date,
		"GIT_COMMITTER_DATE=" + date,
	}
	return c.run(ctx, env, "commit", "-m", message, "--date", date)
}

// AddRemote implements Repository.AddRemote
func (c *CLI) AddRemote(ctx context.Context, name, url string) error {
	return c.run(ctx, nil, "remote", "add", name, url)
}

// RenameBranch implements Repository.RenameBranch
func (c *CLI) RenameBranch(ctx context.Context, name string) error {
	return c.run(ctx, nil, "branch", "-M", name)
}

// Push implements Repository.Push
func (c *CLI) Push(ctx context.Context, remote, branch string) error {
	return c.run(ctx, nil, "push", "-u", remote, branch)
}

// run executes a git command in the repository root with extra environment entries.
func (c *CLI) run(ctx context.Context, env []string, args ...string) error {
	allArgs := append([]string{"-C", c.root}, args...)
	cmd := exec.CommandContext(ctx, "git", allArgs...)
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}

	c.logger.Info("git %s", strings.Join(args, " "))

	output, err := c.executor.ExecuteWithOutput(ctx, cmd)
	if err != nil {
		c.logger.Info("git %s failed: %v", args[0], err)
		return err
	}

	if trimmed := strings.TrimSpace(output); trimmed != "" {
		c.logger.Info("%s", trimmed)
	}
	return nil
}
