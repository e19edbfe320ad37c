package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/defectdash/pkg/domain/interfaces"
	"github.com/secmon-lab/defectdash/pkg/domain/model"
	"github.com/secmon-lab/defectdash/pkg/domain/types"
	slackSvc "github.com/secmon-lab/defectdash/pkg/service/slack"
	"github.com/secmon-lab/defectdash/pkg/utils/async"
)

// DefaultRecentLimit is the number of notifications shown in the bell dropdown
const DefaultRecentLimit = 5

// NotificationOption is a functional option for configuring Notification
type NotificationOption func(*Notification)

// WithSlackNotifier forwards published notifications to Slack
func WithSlackNotifier(notifier *slackSvc.Notifier) NotificationOption {
	return func(n *Notification) {
		n.notifier = notifier
	}
}

// WithClock overrides the time source of published notifications
func WithClock(now func() time.Time) NotificationOption {
	return func(n *Notification) {
		n.now = now
	}
}

// Notification implements interfaces.Notification
type Notification struct {
	repo     interfaces.Repository
	notifier *slackSvc.Notifier
	now      func() time.Time
}

var _ interfaces.Notification = (*Notification)(nil)

// NewNotification creates a new Notification use case
func NewNotification(repo interfaces.Repository, opts ...NotificationOption) *Notification {
	n := &Notification{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// UnreadCount returns the number of unread notifications
func (n *Notification) UnreadCount(ctx context.Context) (int, error) {
	count, err := n.repo.CountUnreadNotifications(ctx)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to count unread notifications")
	}
	return count, nil
}

// Recent returns at most limit notifications, newest first. A limit of zero
// or less falls back to DefaultRecentLimit.
func (n *Notification) Recent(ctx context.Context, limit int) ([]*model.Notification, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	notifications, err := n.repo.ListNotifications(ctx, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list notifications", goerr.V("limit", limit))
	}
	return notifications, nil
}

// MarkAsRead marks a notification as read. Unknown IDs yield model.ErrNotificationNotFound.
func (n *Notification) MarkAsRead(ctx context.Context, id types.NotificationID) error {
	if id == "" {
		return goerr.New("notification ID is required", goerr.T(model.ErrTagInvalidInput))
	}

	if err := n.repo.MarkNotificationRead(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to mark notification as read", goerr.V("id", id))
	}
	return nil
}

// MarkAllAsRead marks every notification as read
func (n *Notification) MarkAllAsRead(ctx context.Context) error {
	changed, err := n.repo.MarkAllNotificationsRead(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to mark all notifications as read")
	}

	ctxlog.From(ctx).Debug("Notifications marked as read", "count", changed)
	return nil
}

// Publish stores a new unread notification and, when a Slack notifier is
// configured, forwards it in the background.
func (n *Notification) Publish(ctx context.Context, title, message string, notificationType types.NotificationType) (*model.Notification, error) {
	if notificationType == "" {
		notificationType = types.NotificationTypeInfo
	}

	notification, err := model.NewNotification(title, message, notificationType)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create notification")
	}
	notification.Timestamp = n.now()

	if err := n.repo.PutNotification(ctx, notification); err != nil {
		return nil, goerr.Wrap(err, "failed to save notification", goerr.V("id", notification.ID))
	}

	ctxlog.From(ctx).Info("Notification published",
		"id", notification.ID,
		"type", notification.Type,
	)

	if n.notifier != nil {
		forwarded := *notification
		async.Dispatch(ctx, "forward_notification", func(ctx context.Context) error {
			return n.notifier.Notify(ctx, &forwarded)
		})
	}

	return notification, nil
}
