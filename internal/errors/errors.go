package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors that can be used with errors.Is() for error type checking
var (
	// ErrInvalidConfiguration indicates invalid or conflicting user input.
	// It is always reported before any side effect takes place.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrDirectoryExists indicates the target repository directory is already present
	ErrDirectoryExists = errors.New("directory already exists")

	// ErrGitOperationFailed indicates a git command returned an error
	ErrGitOperationFailed = errors.New("git operation failed")

	// ErrGitNotFound indicates the git executable could not be located in PATH
	ErrGitNotFound = errors.New("git is not found in PATH")

	// ErrPublishFailed indicates the local history could not be published to the remote
	ErrPublishFailed = errors.New("failed to publish repository")
)

// Errorf creates a new formatted error.
// This is a convenience function that wraps fmt.Errorf.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Wrap wraps an error with a message for better context.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted message for better context.
func Wrapf(err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether target is in err's chain.
// This is a convenience function that wraps errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience function that wraps errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GitError represents an error that occurred during a Git operation.
// It captures the command details, underlying error, and command output.
type GitError struct {
	Operation string
	Args      []string
	Err       error
	Output    string
}

// Error implements the error interface with a detailed, user-friendly error message.
func (e *GitError) Error() string {
	msg := fmt.Sprintf("git %s failed", e.Operation)
	if e.Output != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Output)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *GitError) Unwrap() error {
	return e.Err
}

// NewGitError creates a new GitError with the given parameters.
func NewGitError(operation string, args []string, err error, output string) *GitError {
	return &GitError{
		Operation: operation,
		Args:      args,
		Err:       err,
		Output:    output,
	}
}

// DirectoryError represents a failure to claim the repository directory.
type DirectoryError struct {
	Path string
	Err  error
}

// Error implements the error interface with the offending path.
func (e *DirectoryError) Error() string {
	return fmt.Sprintf("cannot create repository directory %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *DirectoryError) Unwrap() error {
	return e.Err
}

// NewDirectoryError creates a new DirectoryError with the given parameters.
func NewDirectoryError(path string, err error) *DirectoryError {
	return &DirectoryError{
		Path: path,
		Err:  err,
	}
}

// PublishError represents a failure while publishing history to a remote.
// Step names the publishing stage (remote, branch, push) that failed.
type PublishError struct {
	Remote string
	Step   string
	Err    error
}

// Error implements the error interface with the remote and failing step.
func (e *PublishError) Error() string {
	return fmt.Sprintf("publish to %s failed during %s: %v", e.Remote, e.Step, e.Err)
}

// Unwrap returns both ErrPublishFailed and the underlying error,
// so either can be matched with errors.Is.
func (e *PublishError) Unwrap() []error {
	return []error{ErrPublishFailed, e.Err}
}

// NewPublishError creates a new PublishError with the given parameters.
func NewPublishError(remote, step string, err error) *PublishError {
	return &PublishError{
		Remote: remote,
		Step:   step,
		Err:    err,
	}
}

// ConfigError represents an error in the application configuration.
// It includes the parameter name, its value if available, and the underlying error.
type ConfigError struct {
	Parameter string
	Value     interface{}
	Err       error
}

// Error implements the error interface with details about the invalid configuration.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("configuration error for %s = %v: %v", e.Parameter, e.Value, e.Err)
	}
	return fmt.Sprintf("configuration error for %s: %v", e.Parameter, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError with the given parameters.
func NewConfigError(parameter string, value interface{}, err error) *ConfigError {
	return &ConfigError{
		Parameter: parameter,
		Value:     value,
		Err:       err,
	}
}
