package metrics

import (
	"github.com/secmon-lab/defectdash/pkg/domain/model"
	"github.com/secmon-lab/defectdash/pkg/domain/types"
)

// TierSummary is the status pie chart of one severity tier
type TierSummary struct {
	Tier     types.Tier      `json:"tier"`
	Total    int             `json:"total"`
	Segments []StatusSegment `json:"segments"`
}

// Report is the analytics view of one project
type Report struct {
	Project    types.ProjectName `json:"project"`
	Risk       types.Risk        `json:"risk"`
	RiskLabel  string            `json:"riskLabel"`
	Indicators Indicators        `json:"indicators"`
	Tiers      []TierSummary     `json:"tiers"`
}

// NewReport computes the report of a project
func NewReport(project *model.ProjectData, cfg Config) *Report {
	tiers := make([]TierSummary, 0, len(types.Tiers))
	for _, tier := range types.Tiers {
		data := project.DefectData.Tier(tier)
		tiers = append(tiers, TierSummary{
			Tier:     tier,
			Total:    data.Total,
			Segments: StatusSegments(data),
		})
	}

	return &Report{
		Project:    project.Name,
		Risk:       project.Risk,
		RiskLabel:  project.Risk.Label(),
		Indicators: Compute(project.DefectData, cfg),
		Tiers:      tiers,
	}
}
