package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/defectdash/pkg/cli/config"
	"github.com/secmon-lab/defectdash/pkg/domain/interfaces"
	"github.com/urfave/cli/v3"
)

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}

// setupRepository opens the configured repository seeded with the dataset
func setupRepository(ctx context.Context, firestoreCfg *config.Firestore, datasetCfg *config.Dataset) (interfaces.Repository, error) {
	repo, err := firestoreCfg.Configure(ctx, datasetCfg)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to prepare repository")
	}
	return repo, nil
}
