package metrics

import "strconv"

// Band is a Low/Medium/High classification of a score
type Band string

const (
	BandLow    Band = "Low"
	BandMedium Band = "Medium"
	BandHigh   Band = "High"
)

// String returns the string representation of the band
func (b Band) String() string {
	return string(b)
}

// Score is a scalar with its two-decimal display form
type Score struct {
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

// Displayed returns the value as shown to users, i.e. Formatted parsed back
func (s Score) Displayed() float64 {
	v, err := strconv.ParseFloat(s.Formatted, 64)
	if err != nil {
		return s.Value
	}
	return v
}

// Breakdown holds derived statistics of a project defect set
type Breakdown struct {
	TotalDefects     int     `json:"totalDefects"`
	HighProportion   float64 `json:"highProportion"`
	MediumProportion float64 `json:"mediumProportion"`
	LowProportion    float64 `json:"lowProportion"`
	Functionality    int     `json:"functionality"`
	UI               int     `json:"ui"`
	Usability        int     `json:"usability"`
	Validation       int     `json:"validation"`
	Reopened         int     `json:"reopened"`
	Fixed            int     `json:"fixed"`
}

// CategoryTotal returns the sum of the four category counts
func (b Breakdown) CategoryTotal() int {
	return b.Functionality + b.UI + b.Usability + b.Validation
}

// RemarkRatio is the share of defects among defects and remarks, in percent
type RemarkRatio struct {
	Defects    int   `json:"defects"`
	Remarks    int   `json:"remarks"`
	Total      int   `json:"total"`
	Percentage Score `json:"percentage"`
	Band       Band  `json:"band"`
}

// ModuleCount is one bucket of the module distribution
type ModuleCount struct {
	Module string `json:"module"`
	Count  int    `json:"count"`
}

// StatusSegment is one slice of a tier's status pie chart
type StatusSegment struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
	Share  string `json:"share"` // percent of the tier total, one decimal
}

// Gauge is a score mapped onto a 0-100 scale
type Gauge struct {
	Percentage int  `json:"percentage"`
	Band       Band `json:"band"`
}

// DailyCount is one point of a daily series
type DailyCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// ReopenBucket counts the defects reopened a given number of times
type ReopenBucket struct {
	Times int `json:"times"`
	Count int `json:"count"`
}

// ReopenShare is one slice of the reopened-multiple-times pie chart
type ReopenShare struct {
	Times int    `json:"times"`
	Count int    `json:"count"`
	Share string `json:"share"` // percent of all buckets, one decimal
}

// Timing holds the time-to-find and time-to-fix indicators
type Timing struct {
	AvgTimeToFindHours float64      `json:"avgTimeToFindHours"`
	AvgTimeToFixHours  float64      `json:"avgTimeToFixHours"`
	FoundPerDay        []DailyCount `json:"foundPerDay"`
	FixedPerDay        []DailyCount `json:"fixedPerDay"`
}

// Reopens describes defects reopened more than once
type Reopens struct {
	MultipleTimes int           `json:"multipleTimes"`
	Distribution  []ReopenShare `json:"distribution"`
}

// Config holds the external figures the indicators depend on. They are
// dashboard-wide and not derived from the defect counts.
type Config struct {
	LinesOfCode int
	RemarkCount int

	AvgTimeToFindHours float64
	AvgTimeToFixHours  float64
	FoundPerDay        []DailyCount
	FixedPerDay        []DailyCount

	MultipleReopens int
	ReopenBuckets   []ReopenBucket
}

// DefaultConfig returns the configuration of the bundled dataset
func DefaultConfig() Config {
	return Config{
		LinesOfCode:        DefaultLinesOfCode,
		RemarkCount:        DefaultRemarkCount,
		AvgTimeToFindHours: DefaultAvgTimeToFindHours,
		AvgTimeToFixHours:  DefaultAvgTimeToFixHours,
		FoundPerDay:        dailySeries(2, 3, 1, 4, 2, 3, 2, 1, 2, 1),
		FixedPerDay:        dailySeries(3, 2, 4, 3, 2, 3, 2, 1, 2, 2),
		MultipleReopens:    DefaultMultipleReopens,
		ReopenBuckets: []ReopenBucket{
			{Times: 2, Count: 5},
			{Times: 4, Count: 1},
		},
	}
}

func dailySeries(counts ...int) []DailyCount {
	series := make([]DailyCount, 0, len(counts))
	for i, c := range counts {
		series = append(series, DailyCount{Day: "Day " + strconv.Itoa(i+1), Count: c})
	}
	return series
}

// Indicators bundles every derived value of a project
type Indicators struct {
	TotalDefects  int           `json:"totalDefects"`
	Density       Score         `json:"density"`
	DensityBand   Band          `json:"densityBand"`
	SeverityIndex Score         `json:"severityIndex"`
	SeverityGauge Gauge         `json:"severityGauge"`
	RemarkRatio   RemarkRatio   `json:"remarkRatio"`
	Modules       []ModuleCount `json:"modules"`
	Breakdown     Breakdown     `json:"breakdown"`
	Timing        Timing        `json:"timing"`
	Reopens       Reopens       `json:"reopens"`
}
