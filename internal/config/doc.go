// Package config holds gitpast's settings and how they are loaded.
//
// Sources, from highest to lowest precedence:
//
//   - command-line flags (--max_commits, --days_from, ...)
//   - GITPAST_* environment variables, including those loaded from .env.local and .env
//   - a config file given with --config, or gitpast.yaml in the working
//     directory or ~/.config/gitpast
//   - built-in defaults
//
// Finalize validates the schedule window and derives the repository
// directory from the remote URL (or the current time) before anything is
// written to disk.
package config
