package slack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/secmon-lab/defectdash/pkg/domain/metrics"
	"github.com/secmon-lab/defectdash/pkg/domain/model"
	"github.com/secmon-lab/defectdash/pkg/domain/types"
	"github.com/slack-go/slack"
)

// NotificationEmoji returns the emoji shown in front of a notification title
func NotificationEmoji(t types.NotificationType) string {
	switch t {
	case types.NotificationTypeError:
		return "🚨"
	case types.NotificationTypeWarning:
		return "⚠️"
	case types.NotificationTypeSuccess:
		return "✅"
	default:
		return "ℹ️"
	}
}

func bandEmoji(b metrics.Band) string {
	switch b {
	case metrics.BandHigh:
		return "🔴"
	case metrics.BandMedium:
		return "🟡"
	default:
		return "🟢"
	}
}

// BlockBuilder provides methods to build Slack message blocks
type BlockBuilder struct{}

// NewBlockBuilder creates a new BlockBuilder instance
func NewBlockBuilder() *BlockBuilder {
	return &BlockBuilder{}
}

// BuildNotificationBlocks renders a dashboard notification
func (b *BlockBuilder) BuildNotificationBlocks(n *model.Notification) []slack.Block {
	title := fmt.Sprintf("%s %s", NotificationEmoji(n.Type), n.Title)

	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, title, true, false),
		),
	}

	if n.Message != "" {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, n.Message, false, false),
			nil, nil,
		))
	}

	blocks = append(blocks, slack.NewContextBlock("",
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Type:* %s | <!date^%d^{date_short_pretty} {time}|%s>",
				n.Type, n.Timestamp.Unix(), n.Timestamp.UTC().Format("2006-01-02 15:04 MST")),
			false, false),
	))

	return blocks
}

// BuildReportBlocks renders the defect indicators of a project
func (b *BlockBuilder) BuildReportBlocks(report *metrics.Report) []slack.Block {
	ind := report.Indicators

	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Total defects*\n%d", ind.TotalDefects), false, false),
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Risk*\n%s", report.RiskLabel), false, false),
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Defect density*\n%s %s / KLOC", bandEmoji(ind.DensityBand), ind.Density.Formatted), false, false),
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Severity index*\n%s %s (%d%%)", bandEmoji(ind.SeverityGauge.Band), ind.SeverityIndex.Formatted, ind.SeverityGauge.Percentage), false, false),
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Defect/remark ratio*\n%s %s%%", bandEmoji(ind.RemarkRatio.Band), ind.RemarkRatio.Percentage.Formatted), false, false),
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Reopened / fixed*\n%d / %d", ind.Breakdown.Reopened, ind.Breakdown.Fixed), false, false),
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Time to find / fix*\n%sh / %sh",
				strconv.FormatFloat(ind.Timing.AvgTimeToFindHours, 'f', -1, 64),
				strconv.FormatFloat(ind.Timing.AvgTimeToFixHours, 'f', -1, 64)), false, false),
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Reopened 2+ times*\n%d", ind.Reopens.MultipleTimes), false, false),
	}

	modules := make([]string, 0, len(ind.Modules))
	for _, m := range ind.Modules {
		modules = append(modules, fmt.Sprintf("%s %d", m.Module, m.Count))
	}

	return []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, fmt.Sprintf("📊 %s", report.Project), true, false),
		),
		slack.NewSectionBlock(nil, fields, nil),
		slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("*Modules:* %s", strings.Join(modules, " · ")), false, false),
		),
	}
}
