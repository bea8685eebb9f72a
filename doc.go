// Package gitpast creates git repositories with a backdated commit history.
//
// gitpast walks a window of past days, decides at random which days were
// active and how many commits each got, and writes those commits into a
// brand new repository with their historical author and committer dates.
// The result can be pushed to a remote in the same run.
//
// # Quick Start
//
//	# A year of history in ./repository-<timestamp>
//	gitpast
//
//	# Three months of weekday activity, pushed to a new remote
//	gitpast --days_from 90 --no_weekends --repository git@github.com:user/history.git
//
// # Module Structure
//
// The module is organized into these packages:
//
//   - cmd/gitpast: Command-line interface and orchestration
//   - internal/schedule: Random schedule generation
//   - internal/materializer: Repository creation and commit application
//   - internal/publisher: Remote registration and push
//   - internal/git: Git port, CLI adapter and in-memory fake
//   - internal/config: Flags, environment, config file and validation
//   - internal/logger: Logging facilities
//   - internal/errors: Error handling utilities
//   - internal/constants: Fixed values
//
// # How a Schedule Is Built
//
// Every day from --days_from days ago to --days_to days ago is visited in
// order. Weekends are skipped with --no_weekends. Each remaining day is active
// with a --frequency percent chance; an active day gets between 1 and
// --max_commits commits (clamped to 1-20) at random minutes of that day.
// Commits within a day are applied in time order, so the whole history is
// chronological.
//
// Runs are not reproducible: every invocation draws a new schedule.
//
// # Implementation Notes
//
// gitpast uses the command-line Git executable rather than a Go Git library,
// so pushes use whatever credentials the user's git is configured with. Every
// git command is scoped to the new repository with -C; the process working
// directory never changes.
//
// Nothing is retried or rolled back. If a git command fails the run stops and
// the partially written repository is left on disk for inspection.
package gitpast
