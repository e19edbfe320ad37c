package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/defectdash/pkg/domain/types"
)

// DefectData holds the defect counts of one severity tier. Status counts may
// overlap, so Total is not required to equal their sum.
type DefectData struct {
	Total     int `json:"total" yaml:"total"`
	Reopen    int `json:"reopen" yaml:"reopen"`
	Closed    int `json:"closed" yaml:"closed"`
	New       int `json:"new" yaml:"new"`
	Reject    int `json:"reject" yaml:"reject"`
	Open      int `json:"open" yaml:"open"`
	Duplicate int `json:"duplicate" yaml:"duplicate"`
	Fixed     int `json:"fixed" yaml:"fixed"`
}

// Count returns the count for a status, or 0 for an unknown status
func (d DefectData) Count(status types.DefectStatus) int {
	switch status {
	case types.DefectStatusNew:
		return d.New
	case types.DefectStatusFixed:
		return d.Fixed
	case types.DefectStatusClosed:
		return d.Closed
	case types.DefectStatusOpen:
		return d.Open
	case types.DefectStatusReopen:
		return d.Reopen
	case types.DefectStatusReject:
		return d.Reject
	case types.DefectStatusDuplicate:
		return d.Duplicate
	default:
		return 0
	}
}

// Validate validates the defect counts
func (d DefectData) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"total", d.Total},
		{"reopen", d.Reopen},
		{"closed", d.Closed},
		{"new", d.New},
		{"reject", d.Reject},
		{"open", d.Open},
		{"duplicate", d.Duplicate},
		{"fixed", d.Fixed},
	}

	for _, f := range fields {
		if f.value < 0 {
			return goerr.New("defect count must be non-negative",
				goerr.V("field", f.name),
				goerr.V("value", f.value),
				goerr.T(ErrTagInvalidInput))
		}
	}
	return nil
}

// ProjectDefectSet holds defect data for all three severity tiers
type ProjectDefectSet struct {
	High   DefectData `json:"high" yaml:"high"`
	Medium DefectData `json:"medium" yaml:"medium"`
	Low    DefectData `json:"low" yaml:"low"`
}

// Tier returns the defect data of the given tier
func (s ProjectDefectSet) Tier(tier types.Tier) DefectData {
	switch tier {
	case types.TierHigh:
		return s.High
	case types.TierMedium:
		return s.Medium
	case types.TierLow:
		return s.Low
	default:
		return DefectData{}
	}
}

// Validate validates every tier
func (s ProjectDefectSet) Validate() error {
	for _, tier := range types.Tiers {
		if err := s.Tier(tier).Validate(); err != nil {
			return goerr.Wrap(err, "invalid defect data",
				goerr.V("tier", tier))
		}
	}
	return nil
}
