// Package errors provides error handling utilities for the gitpast application.
//
// Every failure gitpast can report falls into one of a few categories, each
// represented by a sentinel error that can be matched with errors.Is:
//
//   - ErrInvalidConfiguration: bad command-line or environment input, reported
//     before any directory or repository is created
//   - ErrDirectoryExists: the target repository directory is already present
//   - ErrGitOperationFailed: a git invocation exited with a non-zero status
//   - ErrPublishFailed: adding the remote, renaming the branch or pushing failed
//   - ErrGitNotFound: no git executable on PATH
//
// Typed errors (ConfigError, GitError, DirectoryError, PublishError) carry the
// details of the failing operation and unwrap to the sentinels above.
//
// # Usage
//
//	if err := repo.Commit(ctx, msg, at); err != nil {
//	    return errors.Wrap(err, "failed to create commit")
//	}
//
// Nothing in gitpast retries or rolls back: errors propagate to the command
// and terminate the run, leaving the partially generated repository on disk.
package errors
