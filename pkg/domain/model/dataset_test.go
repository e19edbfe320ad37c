package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/defectdash/pkg/domain/model"
	"github.com/secmon-lab/defectdash/pkg/domain/types"
)

func newTestDataset() *model.Dataset {
	return &model.Dataset{
		Projects: []model.ProjectData{
			{
				Name: "Defect Tracker",
				Risk: types.RiskHigh,
				DefectData: model.ProjectDefectSet{
					High:   model.DefectData{Total: 15, Reopen: 3, Fixed: 7},
					Medium: model.DefectData{Total: 25, Reopen: 5, Fixed: 12},
					Low:    model.DefectData{Total: 35, Reopen: 2, Fixed: 27},
				},
			},
			{
				Name: "API Integration",
				Risk: types.RiskLow,
			},
		},
		Notifications: []model.NotificationSeed{
			{ID: "1", Title: "High Priority Defect", Message: "Critical bug", Type: "error", Age: "5m"},
			{ID: "2", Title: "Weekly Report", Message: "Report ready", Type: "info", Age: "24h", Read: true},
		},
	}
}

func TestDatasetValidate(t *testing.T) {
	t.Run("valid dataset", func(t *testing.T) {
		gt.NoError(t, newTestDataset().Validate())
	})

	t.Run("error on duplicate project name", func(t *testing.T) {
		ds := newTestDataset()
		ds.Projects = append(ds.Projects, model.ProjectData{Name: "Defect Tracker", Risk: types.RiskLow})
		err := ds.Validate()
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("duplicate project name")
	})

	t.Run("error on duplicate notification ID", func(t *testing.T) {
		ds := newTestDataset()
		ds.Notifications = append(ds.Notifications, model.NotificationSeed{ID: "1", Title: "Again", Type: "info"})
		err := ds.Validate()
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("duplicate notification ID")
	})

	t.Run("error on invalid project", func(t *testing.T) {
		ds := newTestDataset()
		ds.Projects[1].Risk = "none"
		gt.Error(t, ds.Validate())
	})

	t.Run("error on malformed age", func(t *testing.T) {
		ds := newTestDataset()
		ds.Notifications[0].Age = "five minutes"
		gt.Error(t, ds.Validate())
	})

	t.Run("error on negative age", func(t *testing.T) {
		ds := newTestDataset()
		ds.Notifications[0].Age = "-5m"
		gt.Error(t, ds.Validate())
	})
}

func TestDatasetFindProject(t *testing.T) {
	ds := newTestDataset()

	p := ds.FindProject("API Integration")
	gt.V(t, p).NotNil()
	gt.Equal(t, p.Risk, types.RiskLow)

	gt.V(t, ds.FindProject("Unknown")).Nil()
}

func TestDatasetBuildNotifications(t *testing.T) {
	ds := newTestDataset()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	notifications, err := ds.BuildNotifications(now)
	gt.NoError(t, err).Required()
	gt.A(t, notifications).Length(2)

	gt.Equal(t, notifications[0].ID, types.NotificationID("1"))
	gt.Equal(t, notifications[0].Timestamp, now.Add(-5*time.Minute))
	gt.False(t, notifications[0].Read)
	gt.Equal(t, notifications[1].Type, types.NotificationTypeInfo)
	gt.True(t, notifications[1].Read)
}
