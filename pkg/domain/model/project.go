package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/defectdash/pkg/domain/types"
)

// ProjectData represents a tracked project and its defect counts
type ProjectData struct {
	Name       types.ProjectName `json:"name" yaml:"name"`
	Risk       types.Risk        `json:"risk" yaml:"risk"`
	DefectData ProjectDefectSet  `json:"defectData" yaml:"defectData"`
}

// Validate validates the project
func (p *ProjectData) Validate() error {
	if p.Name == "" {
		return goerr.New("project name is required", goerr.T(ErrTagInvalidInput))
	}
	if !p.Risk.IsValid() {
		return goerr.New("invalid project risk",
			goerr.V("name", p.Name),
			goerr.V("risk", p.Risk),
			goerr.T(ErrTagInvalidInput))
	}
	if err := p.DefectData.Validate(); err != nil {
		return goerr.Wrap(err, "invalid project defects", goerr.V("name", p.Name))
	}
	return nil
}
