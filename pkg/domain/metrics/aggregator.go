// Package metrics derives dashboard statistics from project defect counts.
// Every function is pure and returns zero values instead of dividing by zero.
package metrics

import (
	"math"
	"math/big"
	"slices"
	"strconv"
	"strings"

	"github.com/secmon-lab/defectdash/pkg/domain/model"
	"github.com/secmon-lab/defectdash/pkg/domain/types"
)

// CalculateTotalDefects sums the totals of the three tiers
func CalculateTotalDefects(set model.ProjectDefectSet) int {
	return set.High.Total + set.Medium.Total + set.Low.Total
}

// GetDefectBreakdown computes tier proportions, the category split and the
// reopened/fixed sums of a defect set
func GetDefectBreakdown(set model.ProjectDefectSet) Breakdown {
	total := CalculateTotalDefects(set)

	b := Breakdown{
		TotalDefects:     total,
		HighProportion:   ratio(set.High.Total, total),
		MediumProportion: ratio(set.Medium.Total, total),
		LowProportion:    ratio(set.Low.Total, total),
		Reopened:         set.High.Reopen + set.Medium.Reopen + set.Low.Reopen,
		Fixed:            set.High.Fixed + set.Medium.Fixed + set.Low.Fixed,
	}

	for _, w := range CategoryWeights {
		count := roundHalfUp(float64(total) * w.Weight)
		switch w.Category {
		case CategoryFunctionality:
			b.Functionality = count
		case CategoryUI:
			b.UI = count
		case CategoryUsability:
			b.Usability = count
		case CategoryValidation:
			b.Validation = count
		}
	}

	return b
}

// DefectDensity returns defects per thousand lines of code
func DefectDensity(totalDefects, linesOfCode int) Score {
	if linesOfCode <= 0 || totalDefects <= 0 {
		return newScore(0)
	}
	return newScore(float64(totalDefects) / float64(linesOfCode) * 1000)
}

// SeverityIndex returns the tier-weighted average severity (high=3, medium=2, low=1)
func SeverityIndex(set model.ProjectDefectSet) Score {
	total := CalculateTotalDefects(set)
	if total <= 0 {
		return newScore(0)
	}

	weighted := 0
	for _, tier := range types.Tiers {
		weighted += set.Tier(tier).Total * tier.Weight()
	}
	return newScore(float64(weighted) / float64(total))
}

// DefectRemarkRatio returns defects as a percentage of defects plus remarks
func DefectRemarkRatio(defectCount, remarkCount int) RemarkRatio {
	total := defectCount + remarkCount
	percentage := 0.0
	if total > 0 {
		percentage = float64(defectCount) / float64(total) * 100
	}

	return RemarkRatio{
		Defects:    defectCount,
		Remarks:    remarkCount,
		Total:      total,
		Percentage: newScore(percentage),
		Band:       remarkRatioBand(percentage),
	}
}

func remarkRatioBand(percentage float64) Band {
	switch {
	case percentage <= RemarkRatioLowMax:
		return BandLow
	case percentage <= RemarkRatioMediumMax:
		return BandMedium
	default:
		return BandHigh
	}
}

// ModuleDistribution splits the total across modules. Weighted modules are
// floored and RemainderModule takes the rest, so the counts sum to the total.
func ModuleDistribution(totalDefects int) []ModuleCount {
	if totalDefects < 0 {
		totalDefects = 0
	}

	result := make([]ModuleCount, 0, len(ModuleWeights)+1)
	assigned := 0
	for _, w := range ModuleWeights {
		count := int(math.Floor(float64(totalDefects) * w.Weight))
		assigned += count
		result = append(result, ModuleCount{Module: w.Module, Count: count})
	}

	return append(result, ModuleCount{
		Module: RemainderModule,
		Count:  totalDefects - assigned,
	})
}

// StatusSegments returns the non-empty status slices of one tier in chart order
func StatusSegments(data model.DefectData) []StatusSegment {
	var segments []StatusSegment
	for _, status := range types.DefectStatuses {
		count := data.Count(status)
		if count <= 0 {
			continue
		}
		segments = append(segments, StatusSegment{
			Status: status.Label(),
			Count:  count,
			Share:  formatFixed(ratio(count, data.Total)*100, 1),
		})
	}
	return segments
}

// SeverityGauge maps a 0-3 severity index onto a clamped 0-100 gauge
func SeverityGauge(index float64) Gauge {
	percentage := math.Min(math.Max(index/SeverityIndexMax*100, 0), 100)

	band := BandHigh
	switch {
	case percentage <= SeverityGaugeLowMax:
		band = BandLow
	case percentage <= SeverityGaugeMediumMax:
		band = BandMedium
	}

	return Gauge{
		Percentage: roundHalfUp(percentage),
		Band:       band,
	}
}

// DensityBand classifies a density on the 0-12 meter
func DensityBand(density float64) Band {
	segment := DensityGaugeMax / 3
	switch {
	case density < segment:
		return BandLow
	case density < segment*2:
		return BandMedium
	default:
		return BandHigh
	}
}

// ReopenDistribution returns the non-empty buckets of defects reopened more
// than once, each with its share of the bucket sum
func ReopenDistribution(buckets []ReopenBucket) []ReopenShare {
	sum := 0
	for _, b := range buckets {
		if b.Count > 0 {
			sum += b.Count
		}
	}

	var shares []ReopenShare
	for _, b := range buckets {
		if b.Count <= 0 {
			continue
		}
		shares = append(shares, ReopenShare{
			Times: b.Times,
			Count: b.Count,
			Share: formatFixed(ratio(b.Count, sum)*100, 1),
		})
	}
	return shares
}

// Compute derives all indicators of a defect set. Bands are taken from the
// displayed two-decimal values so a band never contradicts its number.
func Compute(set model.ProjectDefectSet, cfg Config) Indicators {
	total := CalculateTotalDefects(set)
	density := DefectDensity(total, cfg.LinesOfCode)
	index := SeverityIndex(set)

	return Indicators{
		TotalDefects:  total,
		Density:       density,
		DensityBand:   DensityBand(density.Displayed()),
		SeverityIndex: index,
		SeverityGauge: SeverityGauge(index.Displayed()),
		RemarkRatio:   DefectRemarkRatio(total, cfg.RemarkCount),
		Modules:       ModuleDistribution(total),
		Breakdown:     GetDefectBreakdown(set),
		Timing: Timing{
			AvgTimeToFindHours: cfg.AvgTimeToFindHours,
			AvgTimeToFixHours:  cfg.AvgTimeToFixHours,
			FoundPerDay:        slices.Clone(cfg.FoundPerDay),
			FixedPerDay:        slices.Clone(cfg.FixedPerDay),
		},
		Reopens: Reopens{
			MultipleTimes: cfg.MultipleReopens,
			Distribution:  ReopenDistribution(cfg.ReopenBuckets),
		},
	}
}

func ratio(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total)
}

// roundHalfUp rounds non-negative values with ties going up
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// formatFixed renders v with the given number of decimals. Rounding works on
// the exact binary value and sends exact ties away from zero, so 1.255 (stored
// as 1.25499...) gives "1.25" and 0.125 gives "0.13".
func formatFixed(v float64, digits int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', digits, 64)
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	x := new(big.Float).SetPrec(256).SetFloat64(math.Abs(v))
	x.Mul(x, new(big.Float).SetPrec(256).SetInt(scale))
	x.Add(x, big.NewFloat(0.5))
	n, _ := x.Int(nil)

	s := n.String()
	if digits > 0 {
		if len(s) <= digits {
			s = strings.Repeat("0", digits-len(s)+1) + s
		}
		s = s[:len(s)-digits] + "." + s[len(s)-digits:]
	}
	if v < 0 {
		s = "-" + s
	}
	return s
}

func newScore(v float64) Score {
	return Score{
		Value:     v,
		Formatted: formatFixed(v, 2),
	}
}
