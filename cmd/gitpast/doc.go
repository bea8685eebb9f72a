// Package main implements gitpast, a generator of backdated git history.
//
// gitpast creates a fresh repository and fills it with commits spread over a
// window of past days, optionally pushing the result to a remote. Each commit
// appends a "Contribution: YYYY-MM-DD HH:MM" line to README.md and carries
// that instant as both author and committer date.
//
// # Basic Usage
//
//	gitpast                                  # last 365 days, 80% of days active
//	gitpast --days_from 30 --days_to 7       # a window from 30 to 7 days ago
//	gitpast --no_weekends --max_commits 3    # weekdays only, at most 3 commits a day
//	gitpast --repository <url>               # push to <url>; directory named after it
//
// # Configuration Options
//
//	--no_weekends   Skip Saturdays and Sundays (env: GITPAST_NO_WEEKENDS)
//	--max_commits   Max commits on an active day, clamped to 1-20 (env: GITPAST_MAX_COMMITS)
//	--frequency     Percent chance a day is active (env: GITPAST_FREQUENCY)
//	--days_from     Window start in days before today (env: GITPAST_DAYS_FROM)
//	--days_to       Window end in days before today (env: GITPAST_DAYS_TO)
//	--repository    Remote to push to (env: GITPAST_REPOSITORY)
//	--user_name     Repository-local user.name (env: GITPAST_USER_NAME)
//	--user_email    Repository-local user.email (env: GITPAST_USER_EMAIL)
//	--quiet         Hide progress messages (env: GITPAST_QUIET)
//	--debug         Enable detailed logging (env: GITPAST_DEBUG)
//	--log_file      Debug log location (env: GITPAST_LOG_FILE)
//	--config        Config file with any of the keys above
//
// The repository is created in the working directory, named after the remote
// (https://example.com/user/myrepo.git gives myrepo) or
// repository-YYYY-MM-DD-HH-MM-SS without one. An existing directory is never
// reused.
//
// # Exit Codes
//
// gitpast exits 0 after printing "Repository generation completed
// successfully!" and 1 on any error. Invalid windows are rejected before
// anything is created; git failures stop the run and leave the partial
// repository on disk.
package main
