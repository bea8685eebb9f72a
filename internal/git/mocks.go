package git

import (
	"context"
	"fmt"
	"time"

	gitpastErrors "github.com/bashhack/gitpast/internal/errors"
)

// FakeCommit is a commit recorded by FakeRepository.
type FakeCommit struct {
	Message string
	Time    time.Time
	Branch  string
}

// FakeRepository is an in-memory Repository for tests.
// It enforces the same ordering rules as git for the operations gitpast uses:
// nothing works before Init, Commit needs staged changes, and Push needs a
// known remote and at least one commit.
type FakeRepository struct {
	// Calls records every operation in order, e.g. "init main" or "push -u origin main".
	Calls []string

	Initialized bool
	Branch      string
	Config      map[string]string
	Commits     []FakeCommit
	Remotes     map[string]string
	Upstream    string
	Pushed      []string

	// FailOn makes the n-th (1-based) call of an operation fail,
	// keyed by operation name: init, config, add, commit, remote, branch, push.
	FailOn map[string]int

	staged bool
	counts map[string]int
}

var _ Repository = (*FakeRepository)(nil)

// NewFakeRepository creates an empty FakeRepository.
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		Config:  make(map[string]string),
		Remotes: make(map[string]string),
		FailOn:  make(map[string]int),
		counts:  make(map[string]int),
	}
}

// Init implements Repository.Init
func (f *FakeRepository) Init(ctx context.Context, branch string) error {
	if err := f.record(ctx, "init", branch); err != nil {
		return err
	}
	if f.Initialized {
		return f.fail("init", "repository already initialized")
	}
	f.Initialized = true
	f.Branch = branch
	return nil
}

// SetConfig implements Repository.SetConfig
func (f *FakeRepository) SetConfig(ctx context.Context, key, value string) error {
	if err := f.recordInRepo(ctx, "config", key, value); err != nil {
		return err
	}
	f.Config[key] = value
	return nil
}

// AddAll implements Repository.AddAll
func (f *FakeRepository) AddAll(ctx context.Context) error {
	if err := f.recordInRepo(ctx, "add", "."); err != nil {
		return err
	}
	f.staged = true
	return nil
}

// Commit implements Repository.Commit
func (f *FakeRepository) Commit(ctx context.Context, message string, at time.Time) error {
	if err := f.recordInRepo(ctx, "commit", "-m", message, "--date", at.Format(DateLayout)); err != nil {
		return err
	}
	if !f.staged {
		return f.fail("commit", "nothing to commit, working tree clean")
	}
	f.staged = false
	f.Commits = append(f.Commits, FakeCommit{Message: message, Time: at, Branch: f.Branch})
	return nil
}

// AddRemote implements Repository.AddRemote
func (f *FakeRepository) AddRemote(ctx context.Context, name, url string) error {
	if err := f.recordInRepo(ctx, "remote", "add", name, url); err != nil {
		return err
	}
	if _, exists := f.Remotes[name]; exists {
		return f.fail("remote", fmt.Sprintf("remote %s already exists", name))
	}
	f.Remotes[name] = url
	return nil
}

// RenameBranch implements Repository.RenameBranch
func (f *FakeRepository) RenameBranch(ctx context.Context, name string) error {
	if err := f.recordInRepo(ctx, "branch", "-M", name); err != nil {
		return err
	}
	for i := range f.Commits {
		if f.Commits[i].Branch == f.Branch {
			f.Commits[i].Branch = name
		}
	}
	f.Branch = name
	return nil
}

// Push implements Repository.Push
func (f *FakeRepository) Push(ctx context.Context, remote, branch string) error {
	if err := f.recordInRepo(ctx, "push", "-u", remote, branch); err != nil {
		return err
	}
	if _, ok := f.Remotes[remote]; !ok {
		return f.fail("push", fmt.Sprintf("'%s' does not appear to be a git repository", remote))
	}
	if len(f.Commits) == 0 || branch != f.Branch {
		return f.fail("push", fmt.Sprintf("src refspec %s does not match any", branch))
	}
	f.Upstream = remote + "/" + branch
	f.Pushed = append(f.Pushed, fmt.Sprintf("%s %s (%d commits)", remote, branch, len(f.Commits)))
	return nil
}

// CommitMessages returns the messages of every recorded commit in order.
func (f *FakeRepository) CommitMessages() []string {
	messages := make([]string, 0, len(f.Commits))
	for _, c := range f.Commits {
		messages = append(messages, c.Message)
	}
	return messages
}

func (f *FakeRepository) recordInRepo(ctx context.Context, op string, args ...string) error {
	if err := f.record(ctx, op, args...); err != nil {
		return err
	}
	if !f.Initialized {
		return f.fail(op, "not a git repository")
	}
	return nil
}

func (f *FakeRepository) record(ctx context.Context, op string, args ...string) error {
	call := op
	for _, a := range args {
		call += " " + a
	}
	f.Calls = append(f.Calls, call)

	if err := ctx.Err(); err != nil {
		return gitpastErrors.NewGitError(op, args, err, "")
	}

	f.counts[op]++
	if n, ok := f.FailOn[op]; ok && n == f.counts[op] {
		return f.fail(op, "simulated failure")
	}
	return nil
}

func (f *FakeRepository) fail(op, output string) error {
	return gitpastErrors.NewGitError(op, nil, gitpastErrors.ErrGitOperationFailed, output)
}
