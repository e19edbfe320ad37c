package config

import (
	"log/slog"

	"github.com/secmon-lab/defectdash/pkg/domain/types"
	slackSvc "github.com/secmon-lab/defectdash/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack configuration
type Slack struct {
	OAuthToken string
	ChannelID  string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack bot token used to forward notifications",
			Category:    "Slack",
			Sources:     cli.EnvVars("DEFECTDASH_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel-id",
			Usage:       "Slack channel ID notifications are forwarded to",
			Category:    "Slack",
			Sources:     cli.EnvVars("DEFECTDASH_SLACK_CHANNEL_ID"),
			Destination: &s.ChannelID,
		},
	}
}

// Configure creates a Slack notifier. It returns nil when Slack is not configured.
func (s *Slack) Configure() *slackSvc.Notifier {
	if !s.IsConfigured() {
		return nil
	}
	return slackSvc.NewNotifier(slackSvc.New(s.OAuthToken), types.SlackChannelID(s.ChannelID))
}

// IsConfigured checks if both token and channel are set
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.ChannelID != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel_id", s.ChannelID),
	)
}
