// Package materializer writes a commit schedule into a brand new git repository.
//
// For every event the ledger file (README.md) grows by one paragraph, the
// change is staged and committed with the event's timestamp. The directory is
// created through an afero.Fs and git is driven through git.Repository, so
// tests run entirely in memory.
//
// Failures are not retried and nothing is rolled back: a run that fails
// halfway leaves a repository with the commits made so far.
package materializer
