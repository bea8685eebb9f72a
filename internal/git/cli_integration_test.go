package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIAgainstRealGit(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping git integration test in short mode")
	}
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	ctx := context.Background()
	root := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.Mkdir(root, 0o755))

	cli := NewCLI(root, quietLogger())
	require.NoError(t, cli.Init(ctx, "main"))
	require.NoError(t, cli.SetConfig(ctx, "user.name", "Test User"))
	require.NoError(t, cli.SetConfig(ctx, "user.email", "test@example.com"))
	require.NoError(t, cli.SetConfig(ctx, "commit.gpgsign", "false"))

	at := time.Date(2020, time.January, 2, 3, 4, 0, 0, time.UTC)
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("Contribution: 2020-01-02 03:04\n\n"), 0o644))
	require.NoError(t, cli.AddAll(ctx))
	require.NoError(t, cli.Commit(ctx, "Contribution: 2020-01-02 03:04", at))

	out, err := exec.Command("git", "-C", root, "log", "--format=%aI|%cI|%s").Output()
	require.NoError(t, err)
	assert.Equal(t, "2020-01-02T03:04:00+00:00|2020-01-02T03:04:00+00:00|Contribution: 2020-01-02 03:04", strings.TrimSpace(string(out)))

	branch, err := exec.Command("git", "-C", root, "symbolic-ref", "--short", "HEAD").Output()
	require.NoError(t, err)
	assert.Equal(t, "main", strings.TrimSpace(string(branch)))

	// Committing again with nothing staged is a git failure.
	require.Error(t, cli.Commit(ctx, "empty", at))
}
