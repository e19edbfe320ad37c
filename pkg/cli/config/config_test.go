package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/defectdash/pkg/cli/config"
	"github.com/secmon-lab/defectdash/pkg/domain/types"
	"github.com/secmon-lab/defectdash/pkg/repository"
)

func TestLoggerConfigure(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := config.Logger{Level: "debug", Format: "json"}
		logger, err := cfg.Configure()
		gt.NoError(t, err)
		gt.V(t, logger).NotNil()
	})

	t.Run("invalid level", func(t *testing.T) {
		cfg := config.Logger{Level: "loud", Format: "json"}
		_, err := cfg.Configure()
		gt.Error(t, err)
	})

	t.Run("invalid format", func(t *testing.T) {
		cfg := config.Logger{Level: "info", Format: "xml"}
		_, err := cfg.Configure()
		gt.Error(t, err)
	})
}

func TestMetricsConfigure(t *testing.T) {
	cfg := config.Metrics{LinesOfCode: 30000, RemarkCount: 10}
	m, err := cfg.Configure()
	gt.NoError(t, err)
	gt.Equal(t, m.LinesOfCode, 30000)
	gt.Equal(t, m.RemarkCount, 10)

	_, err = (&config.Metrics{LinesOfCode: -1}).Configure()
	gt.Error(t, err)

	_, err = (&config.Metrics{LinesOfCode: 1, RemarkCount: -1}).Configure()
	gt.Error(t, err)

	_, err = (&config.Metrics{AvgTimeToFixHours: -0.5}).Configure()
	gt.Error(t, err)

	_, err = (&config.Metrics{MultipleReopens: -1}).Configure()
	gt.Error(t, err)
}

func TestMetricsConfigureTiming(t *testing.T) {
	cfg := config.Metrics{
		LinesOfCode:        15000,
		RemarkCount:        45,
		AvgTimeToFindHours: 12,
		AvgTimeToFixHours:  6.5,
		MultipleReopens:    3,
	}
	m, err := cfg.Configure()
	gt.NoError(t, err).Required()
	gt.Equal(t, m.AvgTimeToFindHours, 12.0)
	gt.Equal(t, m.AvgTimeToFixHours, 6.5)
	gt.Equal(t, m.MultipleReopens, 3)
	gt.A(t, m.FoundPerDay).Length(10)
	gt.A(t, m.ReopenBuckets).Length(2)
}

func TestSlackConfigure(t *testing.T) {
	gt.V(t, (&config.Slack{}).Configure()).Nil()
	gt.V(t, (&config.Slack{OAuthToken: "xoxb-test"}).Configure()).Nil()
	gt.V(t, (&config.Slack{OAuthToken: "xoxb-test", ChannelID: "C123"}).Configure()).NotNil()
}

func TestFirestoreConfigure(t *testing.T) {
	ctx := context.Background()

	t.Run("memory repository is seeded with bundled dataset", func(t *testing.T) {
		cfg := config.Firestore{}
		gt.False(t, cfg.IsConfigured())

		repo, err := cfg.Configure(ctx, &config.Dataset{})
		gt.NoError(t, err).Required()
		defer repo.Close()

		_, ok := repo.(*repository.Memory)
		gt.True(t, ok)

		projects, err := repo.ListProjects(ctx)
		gt.NoError(t, err)
		gt.A(t, projects).Length(5)

		unread, err := repo.CountUnreadNotifications(ctx)
		gt.NoError(t, err)
		gt.Equal(t, unread, 2)
	})

	t.Run("nil dataset config uses bundled dataset", func(t *testing.T) {
		repo, err := (&config.Firestore{}).Configure(ctx, nil)
		gt.NoError(t, err).Required()
		defer repo.Close()

		projects, err := repo.ListProjects(ctx)
		gt.NoError(t, err)
		gt.A(t, projects).Length(5)
	})

	t.Run("file dataset", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dataset.yaml")
		gt.NoError(t, os.WriteFile(path, []byte("projects:\n  - name: Mobile App\n    risk: low\n"), 0600)).Required()

		repo, err := (&config.Firestore{}).Configure(ctx, &config.Dataset{Path: path})
		gt.NoError(t, err).Required()
		defer repo.Close()

		project, err := repo.GetProject(ctx, types.ProjectName("Mobile App"))
		gt.NoError(t, err).Required()
		gt.Equal(t, project.Risk, types.RiskLow)
	})

	t.Run("missing dataset file", func(t *testing.T) {
		_, err := (&config.Firestore{}).Configure(ctx, &config.Dataset{Path: filepath.Join(t.TempDir(), "missing.yaml")})
		gt.Error(t, err)
	})
}

func TestDatasetSeedInto(t *testing.T) {
	ctx := context.Background()

	t.Run("bundled dataset", func(t *testing.T) {
		repo := repository.NewMemory()
		gt.NoError(t, (&config.Dataset{}).SeedInto(ctx, repo)).Required()

		projects, err := repo.ListProjects(ctx)
		gt.NoError(t, err)
		gt.A(t, projects).Length(5)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := config.Dataset{Path: filepath.Join(t.TempDir(), "missing.yaml")}
		gt.Error(t, cfg.SeedInto(ctx, repository.NewMemory()))
	})
}
