package publisher

import (
	"context"

	"github.com/bashhack/gitpast/internal/constants"
	gitpastErrors "github.com/bashhack/gitpast/internal/errors"
	"github.com/bashhack/gitpast/internal/git"
	"github.com/bashhack/gitpast/internal/logger"
)

// Publish steps, reported in PublishError.Step.
const (
	StepRemote = "remote"
	StepBranch = "branch"
	StepPush   = "push"
)

// Publisher pushes a finished local history to a remote.
type Publisher struct {
	repo   git.Repository
	logger logger.Logger
	remote string
	branch string
}

// New creates a Publisher using the default remote name and branch.
func New(repo git.Repository, log logger.Logger) *Publisher {
	return &Publisher{
		repo:   repo,
		logger: log,
		remote: constants.DefaultRemote,
		branch: constants.DefaultBranch,
	}
}

// Publish registers url as the remote, makes sure the current branch is the
// default branch and pushes it with upstream tracking. Nothing is retried.
func (p *Publisher) Publish(ctx context.Context, url string) error {
	p.logger.StatusMessage("Publishing to %s", url)

	if err := p.repo.AddRemote(ctx, p.remote, url); err != nil {
		return gitpastErrors.NewPublishError(url, StepRemote, err)
	}
	if err := p.repo.RenameBranch(ctx, p.branch); err != nil {
		return gitpastErrors.NewPublishError(url, StepBranch, err)
	}
	if err := p.repo.Push(ctx, p.remote, p.branch); err != nil {
		return gitpastErrors.NewPublishError(url, StepPush, err)
	}

	p.logger.InfoToUser("Pushed %s to %s (%s)", p.branch, p.remote, url)
	return nil
}
