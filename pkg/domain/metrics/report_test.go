package metrics_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/defectdash/pkg/domain/metrics"
	"github.com/secmon-lab/defectdash/pkg/domain/model"
	"github.com/secmon-lab/defectdash/pkg/domain/types"
)

func TestNewReport(t *testing.T) {
	project := &model.ProjectData{
		Name:       "Defect Tracker",
		Risk:       types.RiskHigh,
		DefectData: defectTrackerSet(),
	}

	report := metrics.NewReport(project, metrics.DefaultConfig())

	gt.Equal(t, report.Project, types.ProjectName("Defect Tracker"))
	gt.Equal(t, report.Risk, types.RiskHigh)
	gt.Equal(t, report.RiskLabel, "High Risk")
	gt.Equal(t, report.Indicators.TotalDefects, 75)

	gt.A(t, report.Tiers).Length(3)
	gt.Equal(t, report.Tiers[0].Tier, types.TierHigh)
	gt.Equal(t, report.Tiers[0].Total, 15)
	gt.Equal(t, report.Tiers[1].Tier, types.TierMedium)
	gt.Equal(t, report.Tiers[2].Tier, types.TierLow)
	gt.A(t, report.Tiers[2].Segments).Length(7)
}

func TestNewReportEmptyProject(t *testing.T) {
	report := metrics.NewReport(&model.ProjectData{Name: "empty", Risk: types.RiskLow}, metrics.DefaultConfig())

	gt.Equal(t, report.Indicators.TotalDefects, 0)
	gt.Equal(t, report.Indicators.SeverityIndex.Formatted, "0.00")
	for _, tier := range report.Tiers {
		gt.A(t, tier.Segments).Length(0)
	}
}
