package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/defectdash/pkg/domain/interfaces"
	"github.com/secmon-lab/defectdash/pkg/domain/metrics"
	"github.com/secmon-lab/defectdash/pkg/domain/model"
	"github.com/secmon-lab/defectdash/pkg/domain/types"
	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 4

// DashboardOption is a functional option for configuring Dashboard
type DashboardOption func(*Dashboard)

// WithMetricsConfig sets the lines of code and remark count used by the indicators
func WithMetricsConfig(cfg metrics.Config) DashboardOption {
	return func(d *Dashboard) {
		d.metricsConfig = cfg
	}
}

// WithConcurrency limits how many project reports are computed in parallel
func WithConcurrency(n int) DashboardOption {
	return func(d *Dashboard) {
		if n > 0 {
			d.concurrency = n
		}
	}
}

// Dashboard implements interfaces.Dashboard
type Dashboard struct {
	repo          interfaces.Repository
	metricsConfig metrics.Config
	concurrency   int
}

var _ interfaces.Dashboard = (*Dashboard)(nil)

// NewDashboard creates a new Dashboard use case
func NewDashboard(repo interfaces.Repository, opts ...DashboardOption) *Dashboard {
	d := &Dashboard{
		repo:          repo,
		metricsConfig: metrics.DefaultConfig(),
		concurrency:   defaultConcurrency,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ListProjects returns all projects sorted by name
func (d *Dashboard) ListProjects(ctx context.Context) ([]*model.ProjectData, error) {
	projects, err := d.repo.ListProjects(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list projects")
	}
	return projects, nil
}

// GetProject returns a project by name. Unknown names yield model.ErrProjectNotFound.
func (d *Dashboard) GetProject(ctx context.Context, name types.ProjectName) (*model.ProjectData, error) {
	if name == "" {
		return nil, goerr.New("project name is required", goerr.T(model.ErrTagInvalidInput))
	}

	project, err := d.repo.GetProject(ctx, name)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get project", goerr.V("name", name))
	}
	return project, nil
}

// GetDefects returns the defect counts of a project
func (d *Dashboard) GetDefects(ctx context.Context, name types.ProjectName) (*model.ProjectDefectSet, error) {
	project, err := d.GetProject(ctx, name)
	if err != nil {
		return nil, err
	}
	return &project.DefectData, nil
}

// GetProjectMetrics computes the report of a project
func (d *Dashboard) GetProjectMetrics(ctx context.Context, name types.ProjectName) (*metrics.Report, error) {
	project, err := d.GetProject(ctx, name)
	if err != nil {
		return nil, err
	}

	report := metrics.NewReport(project, d.metricsConfig)
	ctxlog.From(ctx).Debug("Project metrics computed",
		"project", name,
		"totalDefects", report.Indicators.TotalDefects,
		"severityIndex", report.Indicators.SeverityIndex.Formatted,
	)
	return report, nil
}

// ListProjectMetrics computes the reports of all projects. The order follows ListProjects.
func (d *Dashboard) ListProjectMetrics(ctx context.Context) ([]*metrics.Report, error) {
	projects, err := d.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]*metrics.Report, len(projects))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(d.concurrency)

	for i, project := range projects {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return goerr.Wrap(err, "metrics computation canceled", goerr.V("project", project.Name))
			}
			reports[i] = metrics.NewReport(project, d.metricsConfig)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
