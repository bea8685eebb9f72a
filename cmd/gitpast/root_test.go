package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/bashhack/gitpast/internal/config"
	"github.com/bashhack/gitpast/internal/git"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommandApp(t *testing.T) (*App, *git.FakeRepository, *bytes.Buffer) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg := config.New()
	cfg.VersionInfo = config.VersionInfo{Version: "v0.1.0", Commit: "deadbeef", Date: "today"}

	var stdout bytes.Buffer
	repo := git.NewFakeRepository()
	app := NewApp(AppOptions{
		Config:       cfg,
		Repository:   repo,
		Fs:           afero.NewMemMapFs(),
		Stdout:       &stdout,
		Stderr:       &bytes.Buffer{},
		ExecLookPath: func(file string) (string, error) { return file, nil },
		Now:          func() time.Time { return wednesday },
	})
	return app, repo, &stdout
}

func TestRootCommandFlags(t *testing.T) {
	app, repo, _ := newCommandApp(t)
	cmd := newRootCommand(app)
	cmd.SetArgs([]string{
		"--days_from", "0",
		"--frequency", "100",
		"--max_commits", "1",
		"--user_email", "dev@example.com",
		"--repository", "https://example.com/user/myrepo.git",
	})

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	assert.Equal(t, 0, app.Config.DaysFrom)
	assert.Equal(t, 100, app.Config.Frequency)
	assert.Equal(t, "myrepo", app.Config.Directory)
	assert.Len(t, repo.Commits, 1)
	assert.Equal(t, "dev@example.com", repo.Config["user.email"])
	assert.True(t, app.Published)
}

func TestRootCommandEnvironment(t *testing.T) {
	app, repo, _ := newCommandApp(t)
	t.Setenv("GITPAST_DAYS_FROM", "0")
	t.Setenv("GITPAST_FREQUENCY", "0")

	cmd := newRootCommand(app)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, 0, app.Config.DaysFrom)
	assert.Empty(t, repo.Commits)
}

func TestRootCommandValidationError(t *testing.T) {
	app, repo, stdout := newCommandApp(t)
	cmd := newRootCommand(app)
	cmd.SetArgs([]string{"--days_from", "5", "--days_to", "10"})

	err := cmd.ExecuteContext(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "days_from must be greater than or equal to days_to")
	assert.Empty(t, repo.Calls)
	assert.Empty(t, stdout.String(), "usage is not printed for runtime errors")
}

func TestRootCommandRejectsArguments(t *testing.T) {
	app, repo, _ := newCommandApp(t)
	cmd := newRootCommand(app)
	cmd.SetArgs([]string{"extra"})

	require.Error(t, cmd.ExecuteContext(context.Background()))
	assert.Empty(t, repo.Calls)
}

func TestRootCommandUnknownFlag(t *testing.T) {
	app, _, _ := newCommandApp(t)
	cmd := newRootCommand(app)
	cmd.SetArgs([]string{"--interval", "5"})

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag")
}

func TestRootCommandVersion(t *testing.T) {
	app, repo, stdout := newCommandApp(t)
	cmd := newRootCommand(app)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	assert.Equal(t, "gitpast v0.1.0 (deadbeef) built on today\n", stdout.String())
	assert.Empty(t, repo.Calls)
}
