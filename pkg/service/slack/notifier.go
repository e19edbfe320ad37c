package slack

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/defectdash/pkg/domain/interfaces"
	"github.com/secmon-lab/defectdash/pkg/domain/metrics"
	"github.com/secmon-lab/defectdash/pkg/domain/model"
	"github.com/secmon-lab/defectdash/pkg/domain/types"
	"github.com/slack-go/slack"
)

// Notifier forwards dashboard notifications and reports to one Slack channel
type Notifier struct {
	client    interfaces.SlackClient
	channelID types.SlackChannelID
	blocks    *BlockBuilder
}

// NewNotifier creates a Notifier posting to channelID
func NewNotifier(client interfaces.SlackClient, channelID types.SlackChannelID) *Notifier {
	return &Notifier{
		client:    client,
		channelID: channelID,
		blocks:    NewBlockBuilder(),
	}
}

// Verify checks the token and logs the bot identity
func (n *Notifier) Verify(ctx context.Context) error {
	resp, err := n.client.AuthTestContext(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to verify Slack token")
	}
	ctxlog.From(ctx).Info("Slack notifier ready",
		"team", resp.Team,
		"user", resp.User,
		"channel", n.channelID,
	)
	return nil
}

// Notify posts a notification
func (n *Notifier) Notify(ctx context.Context, notification *model.Notification) error {
	fallback := fmt.Sprintf("%s %s", NotificationEmoji(notification.Type), notification.Title)
	_, ts, err := n.client.PostMessage(ctx, n.channelID.String(),
		slack.MsgOptionText(fallback, false),
		slack.MsgOptionBlocks(n.blocks.BuildNotificationBlocks(notification)...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post notification",
			goerr.V("notificationID", notification.ID),
			goerr.V("channel", n.channelID))
	}

	ctxlog.From(ctx).Debug("Notification forwarded to Slack",
		"notificationID", notification.ID,
		"ts", ts,
	)
	return nil
}

// PostReport posts the indicators of a project
func (n *Notifier) PostReport(ctx context.Context, report *metrics.Report) error {
	fallback := fmt.Sprintf("%s: %d defects", report.Project, report.Indicators.TotalDefects)
	if _, _, err := n.client.PostMessage(ctx, n.channelID.String(),
		slack.MsgOptionText(fallback, false),
		slack.MsgOptionBlocks(n.blocks.BuildReportBlocks(report)...),
	); err != nil {
		return goerr.Wrap(err, "failed to post report",
			goerr.V("project", report.Project),
			goerr.V("channel", n.channelID))
	}
	return nil
}
