// Package git provides the version-control operations gitpast performs.
//
// The Repository interface is the only view the rest of gitpast has of git:
// init, repository-local config, staging, backdated commits, remotes and push.
//
// # Core Components
//
//   - Repository: the narrow port used by the materializer and publisher
//   - CLI: production adapter that shells out to the git executable
//   - CommandExecutor: runs the commands built by CLI; replaceable in tests
//   - FakeRepository: in-memory Repository for unit tests
//
// # Usage
//
//	repo := git.NewCLI("/path/to/new/repo", logger)
//	if err := repo.Init(ctx, "main"); err != nil {
//	    return err
//	}
//	if err := repo.AddAll(ctx); err != nil {
//	    return err
//	}
//	if err := repo.Commit(ctx, "Contribution: 2024-03-11 10:00", at); err != nil {
//	    return err
//	}
//
// # Implementation Notes
//
// CLI uses the command-line git executable rather than a Go git library, so
// whatever credentials and transports the user's git is configured with are
// used for push. Every command runs as git -C <root>, which keeps the process
// working directory untouched.
//
// Commit sets GIT_AUTHOR_DATE and GIT_COMMITTER_DATE in addition to --date,
// so both dates shown by git log are the historical instant.
//
// Failed commands surface as *errors.GitError wrapping ErrGitOperationFailed
// and the underlying *exec.ExitError. Nothing is retried.
//
// # Concurrency Model
//
// A CLI is not meant to be shared between goroutines. Each call waits for git
// to exit before returning, which keeps commits strictly ordered.
package git
