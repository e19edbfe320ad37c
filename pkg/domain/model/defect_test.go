package model_test

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/defectdash/pkg/domain/model"
	"github.com/secmon-lab/defectdash/pkg/domain/types"
)

func TestDefectDataValidate(t *testing.T) {
	t.Run("valid counts", func(t *testing.T) {
		d := model.DefectData{Total: 15, Reopen: 3, Closed: 8, New: 4, Reject: 1, Open: 6, Duplicate: 2, Fixed: 7}
		gt.NoError(t, d.Validate())
	})

	t.Run("all zero is valid", func(t *testing.T) {
		gt.NoError(t, model.DefectData{}.Validate())
	})

	t.Run("error when a count is negative", func(t *testing.T) {
		d := model.DefectData{Total: 5, Fixed: -1}
		err := d.Validate()
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagInvalidInput)).True()
		gt.S(t, err.Error()).Contains("non-negative")
	})
}

func TestDefectDataCount(t *testing.T) {
	d := model.DefectData{Total: 25, Reopen: 3, Closed: 8, New: 5, Reject: 2, Open: 4, Duplicate: 1, Fixed: 2}

	testCases := []struct {
		status   types.DefectStatus
		expected int
	}{
		{types.DefectStatusNew, 5},
		{types.DefectStatusFixed, 2},
		{types.DefectStatusClosed, 8},
		{types.DefectStatusOpen, 4},
		{types.DefectStatusReopen, 3},
		{types.DefectStatusReject, 2},
		{types.DefectStatusDuplicate, 1},
		{types.DefectStatus("unknown"), 0},
	}

	for _, tc := range testCases {
		t.Run(tc.status.String(), func(t *testing.T) {
			gt.Equal(t, d.Count(tc.status), tc.expected)
		})
	}
}

func TestProjectDefectSet(t *testing.T) {
	set := model.ProjectDefectSet{
		High:   model.DefectData{Total: 1},
		Medium: model.DefectData{Total: 2},
		Low:    model.DefectData{Total: 3},
	}

	t.Run("tier accessor", func(t *testing.T) {
		gt.Equal(t, set.Tier(types.TierHigh).Total, 1)
		gt.Equal(t, set.Tier(types.TierMedium).Total, 2)
		gt.Equal(t, set.Tier(types.TierLow).Total, 3)
		gt.Equal(t, set.Tier(types.Tier("none")), model.DefectData{})
	})

	t.Run("validate reports invalid tier", func(t *testing.T) {
		bad := set
		bad.Medium.Open = -2
		err := bad.Validate()
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("invalid defect data")
	})

	t.Run("validate accepts valid set", func(t *testing.T) {
		gt.NoError(t, set.Validate())
	})
}

func TestProjectDataValidate(t *testing.T) {
	t.Run("valid project", func(t *testing.T) {
		p := model.ProjectData{Name: "Defect Tracker", Risk: types.RiskHigh}
		gt.NoError(t, p.Validate())
	})

	t.Run("error when name is empty", func(t *testing.T) {
		p := model.ProjectData{Risk: types.RiskLow}
		err := p.Validate()
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagInvalidInput)).True()
	})

	t.Run("error when risk is unknown", func(t *testing.T) {
		p := model.ProjectData{Name: "QA testing", Risk: types.Risk("extreme")}
		gt.Error(t, p.Validate())
	})

	t.Run("error when defects are invalid", func(t *testing.T) {
		p := model.ProjectData{
			Name: "QA testing",
			Risk: types.RiskMedium,
			DefectData: model.ProjectDefectSet{
				Low: model.DefectData{Total: -1},
			},
		}
		gt.Error(t, p.Validate())
	})
}
