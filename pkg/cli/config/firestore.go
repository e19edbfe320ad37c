package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/defectdash/pkg/domain/interfaces"
	"github.com/secmon-lab/defectdash/pkg/repository"
	"github.com/urfave/cli/v3"
)

// Firestore selects where projects and notifications are stored. An empty
// ProjectID selects the memory repository.
type Firestore struct {
	ProjectID  string
	DatabaseID string
}

// Flags returns CLI flags for Firestore configuration
func (f *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project",
			Usage:       "GCP project ID for Firestore (memory repository when empty)",
			Category:    "Firestore",
			Sources:     cli.EnvVars("DEFECTDASH_FIRESTORE_PROJECT"),
			Destination: &f.ProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Value:       "(default)",
			Sources:     cli.EnvVars("DEFECTDASH_FIRESTORE_DATABASE"),
			Destination: &f.DatabaseID,
		},
	}
}

// Configure opens the repository behind the dashboard and seeds it from ds.
// Without a project the memory repository is used and always seeded.
// Firestore keeps notification read state across restarts, so it is only
// seeded when ds.Seed is set.
func (f *Firestore) Configure(ctx context.Context, ds *Dataset) (interfaces.Repository, error) {
	if ds == nil {
		ds = &Dataset{}
	}

	repo, err := f.open(ctx)
	if err != nil {
		return nil, err
	}

	if f.IsConfigured() && !ds.Seed {
		ctxlog.From(ctx).Debug("Keep existing Firestore data, dataset is not seeded", "firestore", f)
		return repo, nil
	}

	if err := ds.SeedInto(ctx, repo); err != nil {
		_ = repo.Close()
		return nil, goerr.Wrap(err, "failed to seed repository",
			goerr.V("firestore", f.IsConfigured()),
			goerr.V("dataset", ds.Path),
		)
	}

	return repo, nil
}

func (f *Firestore) open(ctx context.Context) (interfaces.Repository, error) {
	if !f.IsConfigured() {
		ctxlog.From(ctx).Warn("Firestore project is not set, serving the dataset from memory. Read state is lost when shutting down")
		return repository.NewMemory(), nil
	}

	repo, err := repository.NewFirestore(ctx, f.ProjectID, f.DatabaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to init firestore",
			goerr.V("project", f.ProjectID),
			goerr.V("database", f.DatabaseID),
		)
	}
	return repo, nil
}

// IsConfigured checks if Firestore is properly configured
func (f *Firestore) IsConfigured() bool {
	return f.ProjectID != ""
}

// LogValue returns structured log value
func (f Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project", f.ProjectID),
		slog.String("database", f.DatabaseID),
	)
}
