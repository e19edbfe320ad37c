package types

import (
	"github.com/google/uuid"
)

// ProjectName identifies a project. Names are unique across the dataset.
type ProjectName string

// String returns the string representation
func (n ProjectName) String() string {
	return string(n)
}

// NotificationID represents a notification identifier
type NotificationID string

// String returns the string representation
func (id NotificationID) String() string {
	return string(id)
}

// NewNotificationID creates a new NotificationID
func NewNotificationID() NotificationID {
	return NotificationID(uuid.New().String())
}

// SlackChannelID represents a Slack channel identifier
type SlackChannelID string

// String returns the string representation
func (id SlackChannelID) String() string {
	return string(id)
}
