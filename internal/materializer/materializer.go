package materializer

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"time"

	"github.com/bashhack/gitpast/internal/constants"
	gitpastErrors "github.com/bashhack/gitpast/internal/errors"
	"github.com/bashhack/gitpast/internal/git"
	"github.com/bashhack/gitpast/internal/logger"
	"github.com/bashhack/gitpast/internal/schedule"
	"github.com/spf13/afero"
)

// Config describes the repository to create.
type Config struct {
	// Root is the directory the repository is created in. It must not exist yet.
	Root string

	// Branch is the initial branch. Defaults to constants.DefaultBranch.
	Branch string

	// UserName and UserEmail, when non-empty, are set as repository-local identity.
	UserName  string
	UserEmail string
}

// Result summarizes what Materialize wrote.
type Result struct {
	Root       string
	Commits    int
	ActiveDays int
	First      time.Time
	Last       time.Time
}

// Materializer turns a schedule into commits in a fresh repository.
type Materializer struct {
	config Config
	fs     afero.Fs
	repo   git.Repository
	logger logger.Logger
}

// New creates a Materializer. fs must be rooted the same way as repo,
// i.e. Config.Root names the same directory for both.
func New(cfg Config, fs afero.Fs, repo git.Repository, log logger.Logger) *Materializer {
	if cfg.Branch == "" {
		cfg.Branch = constants.DefaultBranch
	}
	return &Materializer{
		config: cfg,
		fs:     fs,
		repo:   repo,
		logger: log,
	}
}

// LedgerPath returns the path of the ledger file inside the repository.
func (m *Materializer) LedgerPath() string {
	return filepath.Join(m.config.Root, constants.LedgerFile)
}

// Prepare creates the repository directory, initializes it and applies the
// identity overrides. An existing directory is never reused.
func (m *Materializer) Prepare(ctx context.Context) error {
	if err := m.fs.Mkdir(m.config.Root, 0o755); err != nil {
		if os.IsExist(err) {
			return gitpastErrors.NewDirectoryError(m.config.Root, gitpastErrors.Errorf("%w: %w", gitpastErrors.ErrDirectoryExists, err))
		}
		return gitpastErrors.NewDirectoryError(m.config.Root, err)
	}
	m.logger.Info("Created repository directory %s", m.config.Root)

	if err := m.repo.Init(ctx, m.config.Branch); err != nil {
		return err
	}

	if m.config.UserName != "" {
		if err := m.repo.SetConfig(ctx, "user.name", m.config.UserName); err != nil {
			return err
		}
	}
	if m.config.UserEmail != "" {
		if err := m.repo.SetConfig(ctx, "user.email", m.config.UserEmail); err != nil {
			return err
		}
	}

	return nil
}

// Apply appends the event's message to the ledger, stages it and commits it
// with the event's timestamp as both author and committer date.
func (m *Materializer) Apply(ctx context.Context, event schedule.CommitEvent) error {
	message := event.Message()

	if err := m.appendLedger(message + "\n\n"); err != nil {
		return err
	}
	if err := m.repo.AddAll(ctx); err != nil {
		return err
	}
	return m.repo.Commit(ctx, message, event.Timestamp)
}

// Materialize runs Prepare and then applies every event in order.
// The first failure aborts the run; commits already made stay in place.
func (m *Materializer) Materialize(ctx context.Context, events iter.Seq[schedule.CommitEvent]) (Result, error) {
	result := Result{Root: m.config.Root}

	if err := m.Prepare(ctx); err != nil {
		return result, err
	}

	var lastDay time.Time
	for event := range events {
		if err := m.Apply(ctx, event); err != nil {
			m.logger.WarningToUser("Stopped after %d commits; the partial repository is left in %s", result.Commits, m.config.Root)
			return result, err
		}

		if result.Commits == 0 {
			result.First = event.Timestamp
		}
		if !event.Day.Date.Equal(lastDay) {
			result.ActiveDays++
			lastDay = event.Day.Date
		}
		result.Last = event.Timestamp
		result.Commits++

		m.logger.Info("Committed %s", event)
	}

	m.logger.Info("Materialized %d commits over %d days in %s", result.Commits, result.ActiveDays, m.config.Root)
	return result, nil
}

func (m *Materializer) appendLedger(text string) error {
	path := m.LedgerPath()

	f, err := m.fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return gitpastErrors.Wrapf(err, "cannot open ledger %s", path)
	}

	if _, err := f.WriteString(text); err != nil {
		_ = f.Close()
		return gitpastErrors.Wrapf(err, "cannot append to ledger %s", path)
	}

	if err := f.Close(); err != nil {
		return gitpastErrors.Wrapf(err, "cannot close ledger %s", path)
	}
	return nil
}
