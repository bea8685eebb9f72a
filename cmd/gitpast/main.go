package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bashhack/gitpast/internal/config"
	"github.com/bashhack/gitpast/internal/constants"
	"github.com/spf13/cobra"
)

// Version information - injected at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	app := NewDefaultApp(config.VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	err := newRootCommand(app).ExecuteContext(ctx)
	stop()
	if err != nil {
		app.ReportError(err)
		app.exit(1)
	}
}

// newRootCommand builds the gitpast command around app.
func newRootCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gitpast",
		Short: constants.Tagline,
		Long: `gitpast creates a new git repository and fills it with backdated commits.

Days are walked from --days_from days ago to --days_to days ago. Each eligible
day becomes active with a --frequency percent chance and then receives between
1 and --max_commits commits at random minutes. Every commit appends one line to
README.md. With --repository the result is pushed to that remote.`,
		Example: `  gitpast
  gitpast --days_from 90 --no_weekends --frequency 60
  gitpast --repository git@github.com:user/history.git --user_email me@example.com`,
		Version:       app.Config.VersionInfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Config.Load(cmd.Flags()); err != nil {
				return err
			}
			return app.Run(cmd.Context())
		},
	}

	app.Config.SetupFlags(cmd.Flags())
	cmd.SetVersionTemplate(app.VersionString() + "\n")
	cmd.SetOut(app.Stdout)
	cmd.SetErr(app.Stderr)

	return cmd
}
