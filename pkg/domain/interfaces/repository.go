package interfaces

import (
	"context"

	"github.com/secmon-lab/defectdash/pkg/domain/model"
	"github.com/secmon-lab/defectdash/pkg/domain/types"
)

// Repository defines the interface for data persistence
type Repository interface {
	// Project operations
	PutProject(ctx context.Context, project *model.ProjectData) error
	GetProject(ctx context.Context, name types.ProjectName) (*model.ProjectData, error)
	// ListProjects returns all projects sorted by name
	ListProjects(ctx context.Context) ([]*model.ProjectData, error)

	// Notification operations
	PutNotification(ctx context.Context, notification *model.Notification) error
	GetNotification(ctx context.Context, id types.NotificationID) (*model.Notification, error)
	// ListNotifications returns notifications newest first. limit <= 0 returns all.
	ListNotifications(ctx context.Context, limit int) ([]*model.Notification, error)
	CountUnreadNotifications(ctx context.Context) (int, error)
	MarkNotificationRead(ctx context.Context, id types.NotificationID) error
	// MarkAllNotificationsRead returns the number of notifications that changed
	MarkAllNotificationsRead(ctx context.Context) (int, error)

	// Close closes the repository connection
	Close() error
}
