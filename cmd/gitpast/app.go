package main

import (
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"os/exec"
	"time"

	"github.com/bashhack/gitpast/internal/config"
	"github.com/bashhack/gitpast/internal/constants"
	gitpastErrors "github.com/bashhack/gitpast/internal/errors"
	"github.com/bashhack/gitpast/internal/git"
	"github.com/bashhack/gitpast/internal/logger"
	"github.com/bashhack/gitpast/internal/materializer"
	"github.com/bashhack/gitpast/internal/publisher"
	"github.com/bashhack/gitpast/internal/schedule"
	"github.com/spf13/afero"
	"golang.org/x/term"
)

// Scheduler produces the commit events for a policy
type Scheduler interface {
	Events(p schedule.Policy, reference time.Time) iter.Seq[schedule.CommitEvent]
}

// AppOptions contains app configuration and dependencies.
// Nil optional dependencies are replaced with production defaults.
type AppOptions struct {
	// Config holds the application configuration settings (required).
	// The application will panic if this field is nil.
	Config *config.Config

	// Optional components

	// Logger provides logging functionality (optional, a default will be created if nil).
	Logger logger.Logger

	// Scheduler generates the schedule (optional, defaults to an unseeded schedule.Generator).
	Scheduler Scheduler

	// Repository performs git operations in the new repository
	// (optional, defaults to git.CLI rooted at Config.Root).
	Repository git.Repository

	// Fs is the filesystem the repository directory and ledger are written to
	// (optional, defaults to the OS filesystem).
	Fs afero.Fs

	// I/O dependencies

	// Stdout is the writer for standard output (optional, defaults to os.Stdout).
	Stdout io.Writer

	// Stderr is the writer for error output (optional, defaults to os.Stderr).
	Stderr io.Writer

	// System dependencies

	// Exit is the function to terminate the application (optional, defaults to os.Exit).
	Exit func(code int)

	// ExecLookPath is used to find executables in PATH (optional, defaults to exec.LookPath).
	ExecLookPath func(file string) (string, error)

	// Now returns the current time (optional, defaults to time.Now).
	// It fixes both the directory timestamp and the schedule window.
	Now func() time.Time

	// IsTerminal reports whether w is a terminal (optional, defaults to a
	// golang.org/x/term check on *os.File). Controls banner colouring.
	IsTerminal func(w io.Writer) bool
}

// App is the main gitpast application.
// It validates the configuration, then runs generation, materialization and
// publishing in sequence.
type App struct {
	// Config holds the application configuration and settings.
	Config *config.Config

	// Logger provides logging functionality for both internal and user-facing messages.
	Logger logger.Logger

	// Scheduler generates the commit schedule.
	Scheduler Scheduler

	// Repository performs git operations in the generated repository.
	Repository git.Repository

	// Fs is the filesystem the repository is written to.
	Fs afero.Fs

	// Result is filled in as the repository is materialized.
	Result materializer.Result

	// Published is true once the history has been pushed.
	Published bool

	// I/O streams

	// Stdout is the writer for standard output messages.
	Stdout io.Writer

	// Stderr is the writer for error messages and warnings.
	Stderr io.Writer

	exit         func(code int)
	execLookPath func(file string) (string, error)
	now          func() time.Time
	isTerminal   func(w io.Writer) bool

	initialized bool
	startedAt   time.Time
}

// NewDefaultApp creates an App with standard dependencies.
func NewDefaultApp(versionInfo config.VersionInfo) *App {
	cfg := config.New()
	cfg.VersionInfo = versionInfo

	return NewApp(AppOptions{
		Config:       cfg,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		Exit:         os.Exit,
		ExecLookPath: exec.LookPath,
		Now:          time.Now,
	})
}

// NewApp creates an App with custom dependencies specified in opts.
// It panics if opts.Config is nil.
func NewApp(opts AppOptions) *App {
	if opts.Config == nil {
		panic("Config is required in AppOptions")
	}

	app := &App{
		Config:       opts.Config,
		Logger:       opts.Logger,
		Scheduler:    opts.Scheduler,
		Repository:   opts.Repository,
		Fs:           opts.Fs,
		Stdout:       opts.Stdout,
		Stderr:       opts.Stderr,
		exit:         opts.Exit,
		execLookPath: opts.ExecLookPath,
		now:          opts.Now,
		isTerminal:   opts.IsTerminal,
	}

	// Set defaults for nil dependencies
	if app.Stdout == nil {
		app.Stdout = os.Stdout
	}
	if app.Stderr == nil {
		app.Stderr = os.Stderr
	}
	if app.exit == nil {
		app.exit = os.Exit
	}
	if app.execLookPath == nil {
		app.execLookPath = exec.LookPath
	}
	if app.now == nil {
		app.now = time.Now
	}
	if app.isTerminal == nil {
		app.isTerminal = isTerminal
	}

	return app
}

// Initialize validates the configuration and sets up components not
// provided during construction. Nothing is written to disk when the
// configuration is invalid.
func (a *App) Initialize() error {
	if a.initialized {
		return nil
	}

	a.startedAt = a.now()

	if err := a.Config.Finalize(a.startedAt); err != nil {
		if gitpastErrors.Is(err, gitpastErrors.ErrInvalidConfiguration) {
			return err
		}
		return gitpastErrors.Wrap(gitpastErrors.ErrInvalidConfiguration, err.Error())
	}

	if a.Logger == nil {
		a.Logger = logger.NewWithOutput(a.Config.Debug, a.Config.LogFile, a.Config.Verbose, a.Stdout, a.Stderr)
	}
	if a.Scheduler == nil {
		a.Scheduler = schedule.NewGenerator(nil)
	}
	if a.Fs == nil {
		a.Fs = afero.NewOsFs()
	}
	if a.Repository == nil {
		a.Repository = git.NewCLI(a.Config.Root, a.Logger)
	}

	a.Logger.Info("Configuration: %+v", a.Config.Policy())
	a.initialized = true
	return nil
}

// Run generates the repository and publishes it when a remote is configured.
func (a *App) Run(ctx context.Context) error {
	if err := a.Initialize(); err != nil {
		return err
	}

	// Ensure we always clean up the logger, even on early error paths
	defer func() {
		if err := a.Close(); err != nil {
			a.Logger.Error("Error during cleanup: %v", err)
		}
	}()

	if err := git.IsAvailable(a.execLookPath); err != nil {
		return err
	}

	policy := a.Config.Policy()
	a.Logger.StatusMessage("Generating commits from %d days ago to %d days ago...", policy.DaysFrom, policy.DaysTo)

	m := materializer.New(materializer.Config{
		Root:      a.Config.Root,
		Branch:    constants.DefaultBranch,
		UserName:  a.Config.UserName,
		UserEmail: a.Config.UserEmail,
	}, a.Fs, a.Repository, a.Logger)

	result, err := m.Materialize(ctx, a.Scheduler.Events(policy, a.startedAt))
	a.Result = result
	if err != nil {
		return err
	}

	if a.Config.Repository != "" {
		if err := publisher.New(a.Repository, a.Logger).Publish(ctx, a.Config.Repository); err != nil {
			return err
		}
		a.Published = true
	}

	a.PrintSummary()
	a.printBanner()
	return nil
}

// PrintSummary reports what was generated
func (a *App) PrintSummary() {
	policy := a.Config.Policy()

	a.Logger.StatusMessage("")
	a.Logger.StatusMessage("Repository:      %s", a.Result.Root)
	a.Logger.StatusMessage("Days evaluated:  %d", policy.NumberOfDays()+1)
	a.Logger.StatusMessage("Active days:     %d", a.Result.ActiveDays)
	a.Logger.StatusMessage("Commits created: %d", a.Result.Commits)
	if a.Result.Commits > 0 {
		a.Logger.StatusMessage("History:         %s .. %s",
			a.Result.First.Format(time.DateOnly), a.Result.Last.Format(time.DateOnly))
	}
	if a.Published {
		a.Logger.StatusMessage("Pushed to:       %s", a.Config.Repository)
	}
}

// printBanner prints the final success line, highlighted on terminals
// unless NO_COLOR is set.
func (a *App) printBanner() {
	status := "completed successfully"
	if a.colorEnabled() {
		status = constants.SuccessHighlight + status + constants.ResetStyle
	}
	a.Logger.Success("Repository generation %s!", status)
}

func (a *App) colorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return a.isTerminal(a.Stdout)
}

// ReportError shows err to the user. It works before Initialize has
// created the logger, e.g. for invalid flags.
func (a *App) ReportError(err error) {
	log := a.Logger
	if log == nil {
		log = logger.NewWithOutput(false, "", a.Config.Verbose, a.Stdout, a.Stderr)
	}
	log.Error("Error: %v", err)
}

// VersionString describes the build
func (a *App) VersionString() string {
	return fmt.Sprintf("gitpast %s (%s) built on %s",
		a.Config.VersionInfo.Version,
		a.Config.VersionInfo.Commit,
		a.Config.VersionInfo.Date)
}

// Close releases resources held by the App
func (a *App) Close() error {
	if a.Logger == nil {
		return nil
	}
	if err := a.Logger.Close(); err != nil {
		return gitpastErrors.Wrap(err, "failed to close logger")
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
