package repository

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/defectdash/pkg/domain/interfaces"
	"github.com/secmon-lab/defectdash/pkg/domain/model"
)

// Seed stores every project and notification of the dataset. Notification
// timestamps are resolved against now.
func Seed(ctx context.Context, repo interfaces.Repository, dataset *model.Dataset, now time.Time) error {
	if dataset == nil {
		return goerr.New("dataset is nil")
	}
	if err := dataset.Validate(); err != nil {
		return goerr.Wrap(err, "invalid dataset")
	}

	for i := range dataset.Projects {
		if err := repo.PutProject(ctx, &dataset.Projects[i]); err != nil {
			return goerr.Wrap(err, "failed to seed project", goerr.V("name", dataset.Projects[i].Name))
		}
	}

	notifications, err := dataset.BuildNotifications(now)
	if err != nil {
		return goerr.Wrap(err, "failed to build notifications")
	}
	for _, n := range notifications {
		if err := repo.PutNotification(ctx, n); err != nil {
			return goerr.Wrap(err, "failed to seed notification", goerr.V("id", n.ID))
		}
	}

	ctxlog.From(ctx).Info("Repository seeded",
		"projects", len(dataset.Projects),
		"notifications", len(notifications),
	)
	return nil
}
