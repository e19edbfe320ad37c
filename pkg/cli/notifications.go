package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/secmon-lab/defectdash/pkg/cli/config"
	"github.com/secmon-lab/defectdash/pkg/domain/model"
	"github.com/secmon-lab/defectdash/pkg/domain/types"
	"github.com/secmon-lab/defectdash/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdNotifications() *cli.Command {
	var (
		limit        int
		markRead     string
		markAllRead  bool
		firestoreCfg config.Firestore
		datasetCfg   config.Dataset
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.IntFlag{
				Name:        "limit",
				Aliases:     []string{"n"},
				Usage:       "Maximum number of notifications to show",
				Value:       usecase.DefaultRecentLimit,
				Destination: &limit,
			},
			&cli.StringFlag{
				Name:        "mark-read",
				Usage:       "Mark the notification with this ID as read before listing",
				Destination: &markRead,
			},
			&cli.BoolFlag{
				Name:        "mark-all-read",
				Usage:       "Mark all notifications as read before listing",
				Destination: &markAllRead,
			},
		},
		firestoreCfg.Flags(),
		datasetCfg.Flags(),
	)

	return &cli.Command{
		Name:  "notifications",
		Usage: "Show recent notifications",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := setupRepository(ctx, &firestoreCfg, &datasetCfg)
			if err != nil {
				return err
			}
			defer repo.Close()

			uc := usecase.NewNotification(repo)

			if markRead != "" {
				if err := uc.MarkAsRead(ctx, types.NotificationID(markRead)); err != nil {
					return err
				}
			}
			if markAllRead {
				if err := uc.MarkAllAsRead(ctx); err != nil {
					return err
				}
			}

			unread, err := uc.UnreadCount(ctx)
			if err != nil {
				return err
			}
			recent, err := uc.Recent(ctx, limit)
			if err != nil {
				return err
			}

			writeNotifications(c.Root().Writer, unread, recent, time.Now())
			return nil
		},
	}
}

func writeNotifications(w io.Writer, unread int, notifications []*model.Notification, now time.Time) {
	fmt.Fprintf(w, "Notifications (%d unread)\n", unread)
	if len(notifications) == 0 {
		fmt.Fprintln(w, "  No notifications")
		return
	}

	for _, n := range notifications {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		fmt.Fprintf(w, "%s [%s] %s (%s) id=%s\n", marker, n.Type, n.Title, n.FormatAge(now), n.ID)
		if n.Message != "" {
			fmt.Fprintf(w, "    %s\n", n.Message)
		}
	}
}
