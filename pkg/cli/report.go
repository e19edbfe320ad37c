package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/defectdash/pkg/cli/config"
	"github.com/secmon-lab/defectdash/pkg/domain/metrics"
	"github.com/secmon-lab/defectdash/pkg/domain/types"
	"github.com/secmon-lab/defectdash/pkg/usecase"
	"github.com/urfave/cli/v3"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func cmdReport() *cli.Command {
	var (
		project      string
		format       string
		postSlack    bool
		firestoreCfg config.Firestore
		datasetCfg   config.Dataset
		metricsCfg   config.Metrics
		slackCfg     config.Slack
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "project",
				Aliases:     []string{"p"},
				Usage:       "Project name (all projects when empty)",
				Destination: &project,
			},
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "Output format (text, json)",
				Value:       formatText,
				Destination: &format,
			},
			&cli.BoolFlag{
				Name:        "post-slack",
				Usage:       "Also post the report to the configured Slack channel",
				Destination: &postSlack,
			},
		},
		firestoreCfg.Flags(),
		datasetCfg.Flags(),
		metricsCfg.Flags(),
		slackCfg.Flags(),
	)

	return &cli.Command{
		Name:  "report",
		Usage: "Print defect indicators of projects",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if format != formatText && format != formatJSON {
				return goerr.New("invalid output format", goerr.V("format", format))
			}

			metricsConfig, err := metricsCfg.Configure()
			if err != nil {
				return err
			}

			repo, err := setupRepository(ctx, &firestoreCfg, &datasetCfg)
			if err != nil {
				return err
			}
			defer repo.Close()

			dashboard := usecase.NewDashboard(repo, usecase.WithMetricsConfig(metricsConfig))

			var reports []*metrics.Report
			if project != "" {
				report, err := dashboard.GetProjectMetrics(ctx, types.ProjectName(project))
				if err != nil {
					return err
				}
				reports = append(reports, report)
			} else {
				reports, err = dashboard.ListProjectMetrics(ctx)
				if err != nil {
					return err
				}
			}

			if err := writeReports(c.Root().Writer, format, reports); err != nil {
				return err
			}

			if postSlack {
				notifier := slackCfg.Configure()
				if notifier == nil {
					return goerr.New("Slack is not configured. Set DEFECTDASH_SLACK_OAUTH_TOKEN and DEFECTDASH_SLACK_CHANNEL_ID")
				}
				for _, report := range reports {
					if err := notifier.PostReport(ctx, report); err != nil {
						return err
					}
				}
			}

			return nil
		},
	}
}

func writeReports(w io.Writer, format string, reports []*metrics.Report) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return goerr.Wrap(err, "failed to encode reports")
		}
		return nil
	}

	for i, report := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeReportText(w, report)
	}
	return nil
}

func writeReportText(w io.Writer, report *metrics.Report) {
	ind := report.Indicators
	b := ind.Breakdown

	fmt.Fprintf(w, "%s (%s)\n", report.Project, report.RiskLabel)
	fmt.Fprintf(w, "  Total defects:       %d\n", ind.TotalDefects)
	fmt.Fprintf(w, "  Defect density:      %s per KLOC (%s)\n", ind.Density.Formatted, ind.DensityBand)
	fmt.Fprintf(w, "  Severity index:      %s (%d%%, %s)\n", ind.SeverityIndex.Formatted, ind.SeverityGauge.Percentage, ind.SeverityGauge.Band)
	fmt.Fprintf(w, "  Defect/remark ratio: %s%% (%d defects, %d remarks, %s)\n",
		ind.RemarkRatio.Percentage.Formatted, ind.RemarkRatio.Defects, ind.RemarkRatio.Remarks, ind.RemarkRatio.Band)
	fmt.Fprintf(w, "  Reopened / fixed:    %d / %d\n", b.Reopened, b.Fixed)
	fmt.Fprintf(w, "  Time to find / fix:  %sh / %sh\n",
		formatHours(ind.Timing.AvgTimeToFindHours), formatHours(ind.Timing.AvgTimeToFixHours))
	fmt.Fprintf(w, "  Found per day:       %s\n", joinDaily(ind.Timing.FoundPerDay))
	fmt.Fprintf(w, "  Fixed per day:       %s\n", joinDaily(ind.Timing.FixedPerDay))

	reopens := make([]string, 0, len(ind.Reopens.Distribution))
	for _, r := range ind.Reopens.Distribution {
		reopens = append(reopens, fmt.Sprintf("%dx %d (%s%%)", r.Times, r.Count, r.Share))
	}
	if len(reopens) > 0 {
		fmt.Fprintf(w, "  Reopened 2+ times:   %d (%s)\n", ind.Reopens.MultipleTimes, strings.Join(reopens, ", "))
	} else {
		fmt.Fprintf(w, "  Reopened 2+ times:   %d\n", ind.Reopens.MultipleTimes)
	}

	fmt.Fprintf(w, "  Categories:          Functionality %d, UI %d, Usability %d, Validation %d\n",
		b.Functionality, b.UI, b.Usability, b.Validation)

	modules := make([]string, 0, len(ind.Modules))
	for _, m := range ind.Modules {
		modules = append(modules, fmt.Sprintf("%s %d", m.Module, m.Count))
	}
	fmt.Fprintf(w, "  Modules:             %s\n", strings.Join(modules, ", "))

	for _, tier := range report.Tiers {
		segments := make([]string, 0, len(tier.Segments))
		for _, s := range tier.Segments {
			segments = append(segments, fmt.Sprintf("%s %d (%s%%)", s.Status, s.Count, s.Share))
		}
		if len(segments) == 0 {
			segments = append(segments, "no defects")
		}
		fmt.Fprintf(w, "  %-6s %3d: %s\n", tier.Tier, tier.Total, strings.Join(segments, ", "))
	}
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

func joinDaily(series []metrics.DailyCount) string {
	if len(series) == 0 {
		return "-"
	}
	counts := make([]string, 0, len(series))
	for _, d := range series {
		counts = append(counts, strconv.Itoa(d.Count))
	}
	return strings.Join(counts, " ")
}
