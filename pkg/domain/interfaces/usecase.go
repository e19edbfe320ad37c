package interfaces

import (
	"context"

	"github.com/secmon-lab/defectdash/pkg/domain/metrics"
	"github.com/secmon-lab/defectdash/pkg/domain/model"
	"github.com/secmon-lab/defectdash/pkg/domain/types"
)

// Dashboard serves projects and their derived metrics
type Dashboard interface {
	ListProjects(ctx context.Context) ([]*model.ProjectData, error)
	GetProject(ctx context.Context, name types.ProjectName) (*model.ProjectData, error)
	GetDefects(ctx context.Context, name types.ProjectName) (*model.ProjectDefectSet, error)
	GetProjectMetrics(ctx context.Context, name types.ProjectName) (*metrics.Report, error)
	ListProjectMetrics(ctx context.Context) ([]*metrics.Report, error)
}

// Notification manages the notification feed
type Notification interface {
	UnreadCount(ctx context.Context) (int, error)
	Recent(ctx context.Context, limit int) ([]*model.Notification, error)
	MarkAsRead(ctx context.Context, id types.NotificationID) error
	MarkAllAsRead(ctx context.Context) error
	Publish(ctx context.Context, title, message string, notificationType types.NotificationType) (*model.Notification, error)
}
