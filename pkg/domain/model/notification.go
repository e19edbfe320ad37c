package model

import (
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/defectdash/pkg/domain/types"
)

// Notification represents an entry of the dashboard notification feed
type Notification struct {
	ID        types.NotificationID   `json:"id"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Type      types.NotificationType `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Read      bool                   `json:"read"`
}

// NewNotification creates a new unread Notification instance
func NewNotification(title, message string, notificationType types.NotificationType) (*Notification, error) {
	n := &Notification{
		ID:        types.NewNotificationID(),
		Title:     title,
		Message:   message,
		Type:      notificationType,
		Timestamp: time.Now(),
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

// Validate validates the notification
func (n *Notification) Validate() error {
	if n.ID == "" {
		return goerr.New("notification ID is required", goerr.T(ErrTagInvalidInput))
	}
	if n.Title == "" {
		return goerr.New("notification title is required",
			goerr.V("id", n.ID),
			goerr.T(ErrTagInvalidInput))
	}
	if !n.Type.IsValid() {
		return goerr.New("invalid notification type",
			goerr.V("id", n.ID),
			goerr.V("type", n.Type),
			goerr.T(ErrTagInvalidInput))
	}
	return nil
}

// FormatAge renders the time elapsed since the notification as the bell
// dropdown shows it: minutes below an hour, hours below a day, then days.
func (n *Notification) FormatAge(now time.Time) string {
	diff := now.Sub(n.Timestamp)
	if diff < 0 {
		diff = 0
	}

	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff/time.Minute))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff/time.Hour))
	default:
		return fmt.Sprintf("%dd ago", int(diff/(24*time.Hour)))
	}
}
