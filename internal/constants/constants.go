package constants

const (
	// DefaultBranch is the branch every generated repository is initialized with
	// and the branch pushed to the remote.
	DefaultBranch = "main"

	// DefaultRemote is the name under which the publishing remote is registered.
	DefaultRemote = "origin"

	// LedgerFile is the single tracked file; each commit appends one paragraph to it.
	LedgerFile = "README.md"

	// DirectoryPrefix names repositories created without a remote:
	// repository-YYYY-MM-DD-HH-MM-SS.
	DirectoryPrefix = "repository-"

	// DirectoryTimeLayout is the time layout appended to DirectoryPrefix.
	DirectoryTimeLayout = "2006-01-02-15-04-05"

	// Tagline is the short description shown in help output.
	Tagline = "Backfill a git repository with a plausible commit history"

	// SuccessHighlight wraps the success word(s) of the final banner on terminals.
	SuccessHighlight = "\x1b[6;30;42m"

	// ResetStyle restores default terminal styling.
	ResetStyle = "\x1b[0m"
)
