package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/defectdash/pkg/domain/metrics"
	"github.com/urfave/cli/v3"
)

// Metrics holds the figures the defect indicators depend on
type Metrics struct {
	LinesOfCode        int
	RemarkCount        int
	AvgTimeToFindHours float64
	AvgTimeToFixHours  float64
	MultipleReopens    int
}

// Flags returns CLI flags for Metrics configuration
func (m *Metrics) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "lines-of-code",
			Usage:       "Lines of code used for defect density",
			Category:    "Metrics",
			Value:       metrics.DefaultLinesOfCode,
			Sources:     cli.EnvVars("DEFECTDASH_LINES_OF_CODE"),
			Destination: &m.LinesOfCode,
		},
		&cli.IntFlag{
			Name:        "remark-count",
			Usage:       "Number of remarks used for the defect/remark ratio",
			Category:    "Metrics",
			Value:       metrics.DefaultRemarkCount,
			Sources:     cli.EnvVars("DEFECTDASH_REMARK_COUNT"),
			Destination: &m.RemarkCount,
		},
		&cli.FloatFlag{
			Name:        "avg-time-to-find",
			Usage:       "Average hours from deployment to defect discovery",
			Category:    "Metrics",
			Value:       metrics.DefaultAvgTimeToFindHours,
			Sources:     cli.EnvVars("DEFECTDASH_AVG_TIME_TO_FIND"),
			Destination: &m.AvgTimeToFindHours,
		},
		&cli.FloatFlag{
			Name:        "avg-time-to-fix",
			Usage:       "Average hours from defect assignment to resolution",
			Category:    "Metrics",
			Value:       metrics.DefaultAvgTimeToFixHours,
			Sources:     cli.EnvVars("DEFECTDASH_AVG_TIME_TO_FIX"),
			Destination: &m.AvgTimeToFixHours,
		},
		&cli.IntFlag{
			Name:        "multiple-reopens",
			Usage:       "Number of defects reopened more than once",
			Category:    "Metrics",
			Value:       metrics.DefaultMultipleReopens,
			Sources:     cli.EnvVars("DEFECTDASH_MULTIPLE_REOPENS"),
			Destination: &m.MultipleReopens,
		},
	}
}

// Configure validates the figures and returns the aggregator configuration
func (m *Metrics) Configure() (metrics.Config, error) {
	if m.LinesOfCode < 0 {
		return metrics.Config{}, goerr.New("lines of code must not be negative", goerr.V("linesOfCode", m.LinesOfCode))
	}
	if m.RemarkCount < 0 {
		return metrics.Config{}, goerr.New("remark count must not be negative", goerr.V("remarkCount", m.RemarkCount))
	}

	if m.AvgTimeToFindHours < 0 || m.AvgTimeToFixHours < 0 {
		return metrics.Config{}, goerr.New("average times must not be negative",
			goerr.V("avgTimeToFind", m.AvgTimeToFindHours),
			goerr.V("avgTimeToFix", m.AvgTimeToFixHours))
	}
	if m.MultipleReopens < 0 {
		return metrics.Config{}, goerr.New("multiple reopens must not be negative", goerr.V("multipleReopens", m.MultipleReopens))
	}

	// daily series and reopen buckets keep the bundled values
	cfg := metrics.DefaultConfig()
	cfg.LinesOfCode = m.LinesOfCode
	cfg.RemarkCount = m.RemarkCount
	cfg.AvgTimeToFindHours = m.AvgTimeToFindHours
	cfg.AvgTimeToFixHours = m.AvgTimeToFixHours
	cfg.MultipleReopens = m.MultipleReopens
	return cfg, nil
}

// LogValue returns structured log value
func (m Metrics) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("lines_of_code", m.LinesOfCode),
		slog.Int("remark_count", m.RemarkCount),
		slog.Float64("avg_time_to_find_hours", m.AvgTimeToFindHours),
		slog.Float64("avg_time_to_fix_hours", m.AvgTimeToFixHours),
		slog.Int("multiple_reopens", m.MultipleReopens),
	)
}
