package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/defectdash/pkg/dataset"
	"github.com/secmon-lab/defectdash/pkg/domain/interfaces"
	"github.com/secmon-lab/defectdash/pkg/domain/model"
	"github.com/secmon-lab/defectdash/pkg/repository"
	"github.com/urfave/cli/v3"
)

// Dataset holds the seed data configuration
type Dataset struct {
	Path string
	// Seed forces seeding of Firestore. The memory repository is always seeded.
	Seed bool
}

// Flags returns CLI flags for Dataset configuration
func (d *Dataset) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dataset",
			Usage:       "Path to YAML dataset of projects and notifications (bundled dataset when empty)",
			Category:    "Dataset",
			Sources:     cli.EnvVars("DEFECTDASH_DATASET"),
			Destination: &d.Path,
		},
		&cli.BoolFlag{
			Name:        "dataset-seed",
			Usage:       "Write the dataset into Firestore on start. Existing documents with the same keys are overwritten",
			Category:    "Dataset",
			Sources:     cli.EnvVars("DEFECTDASH_DATASET_SEED"),
			Destination: &d.Seed,
		},
	}
}

// Load returns the configured dataset
func (d *Dataset) Load() (*model.Dataset, error) {
	if d.Path == "" {
		return dataset.Default()
	}
	return dataset.LoadFile(d.Path)
}

// SeedInto loads the dataset and writes it into repo
func (d *Dataset) SeedInto(ctx context.Context, repo interfaces.Repository) error {
	ds, err := d.Load()
	if err != nil {
		return goerr.Wrap(err, "failed to load dataset", goerr.V("path", d.Path))
	}

	if err := repository.Seed(ctx, repo, ds, time.Now()); err != nil {
		return goerr.Wrap(err, "failed to seed repository")
	}
	return nil
}

// LogValue returns structured log value
func (d Dataset) LogValue() slog.Value {
	path := d.Path
	if path == "" {
		path = "(bundled)"
	}
	return slog.GroupValue(
		slog.String("path", path),
		slog.Bool("seed", d.Seed),
	)
}
