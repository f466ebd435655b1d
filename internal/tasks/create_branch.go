package tasks

import (
	"context"
	"errors"
	"fmt"

	"github.com/shaiso/releng/internal/ghclient"
	"github.com/shaiso/releng/internal/state"
	"github.com/shaiso/releng/internal/telemetry"
)

// CreateBranchTask создаёт release-ветку <имя>/<версия> текущего
// релиза от базовой ветки репозитория.
type CreateBranchTask struct {
	// GH — клиент репозитория.
	GH *ghclient.Client

	// Base — базовая ветка, от которой создаётся release-ветка.
	Base string
}

// Run реализует Runner.
func (t *CreateBranchTask) Run(ctx context.Context, st *state.State) error {
	log := telemetry.WithTask(st.Logger, TaskCreateBranch)

	log.Info("creating a new release branch", "base", t.Base)
	log.Info("current release", "release", st.Current.String())

	branch := st.Current.String()

	// заодно получаем коммит HEAD базовой ветки — от него создаётся ref
	base, err := t.GH.GetBranch(ctx, t.Base)
	if err != nil {
		return fmt.Errorf("could not retrieve the %s branch, does it exist: %w", t.Base, err)
	}
	log.Info("base branch resolved", "branch", t.Base, "commit", base.Commit.SHA)

	if _, err := t.GH.GetBranch(ctx, branch); err == nil {
		return fmt.Errorf("could not create branch %s: branch already exists", branch)
	} else if !errors.Is(err, ghclient.ErrNotFound) {
		return fmt.Errorf("check branch %s: %w", branch, err)
	}
	log.Info("okay to create branch, it does not exist yet", "branch", branch)

	if err := t.GH.CreateRef(ctx, "refs/heads/"+branch, base.Commit.SHA); err != nil {
		return fmt.Errorf("create branch %s: %w", branch, err)
	}

	log.Info("created new release branch", "branch", branch)
	return nil
}
