package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/defectdash/pkg/domain/interfaces"
	"github.com/secmon-lab/defectdash/pkg/domain/model"
	"github.com/secmon-lab/defectdash/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu            sync.RWMutex
	projects      map[types.ProjectName]*model.ProjectData
	notifications map[types.NotificationID]*model.Notification
}

var _ interfaces.Repository = (*Memory)(nil)

// NewMemory creates a new memory repository
func NewMemory() *Memory {
	return &Memory{
		projects:      make(map[types.ProjectName]*model.ProjectData),
		notifications: make(map[types.NotificationID]*model.Notification),
	}
}

// PutProject saves a project to memory, replacing any project with the same name
func (m *Memory) PutProject(ctx context.Context, project *model.ProjectData) error {
	if project == nil {
		return goerr.New("project is nil")
	}
	if project.Name == "" {
		return goerr.New("project name is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	projectCopy := *project
	m.projects[project.Name] = &projectCopy
	return nil
}

// GetProject retrieves a project by name
func (m *Memory) GetProject(ctx context.Context, name types.ProjectName) (*model.ProjectData, error) {
	if name == "" {
		return nil, goerr.New("project name is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	project, exists := m.projects[name]
	if !exists {
		return nil, goerr.Wrap(model.ErrProjectNotFound, "project not found in memory",
			goerr.V("name", name))
	}

	projectCopy := *project
	return &projectCopy, nil
}

// ListProjects returns all projects sorted by name
func (m *Memory) ListProjects(ctx context.Context) ([]*model.ProjectData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	projects := make([]*model.ProjectData, 0, len(m.projects))
	for _, p := range m.projects {
		projectCopy := *p
		projects = append(projects, &projectCopy)
	}

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].Name < projects[j].Name
	})

	return projects, nil
}

// PutNotification saves a notification to memory
func (m *Memory) PutNotification(ctx context.Context, notification *model.Notification) error {
	if notification == nil {
		return goerr.New("notification is nil")
	}
	if notification.ID == "" {
		return goerr.New("notification ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	notificationCopy := *notification
	m.notifications[notification.ID] = &notificationCopy
	return nil
}

// GetNotification retrieves a notification by ID
func (m *Memory) GetNotification(ctx context.Context, id types.NotificationID) (*model.Notification, error) {
	if id == "" {
		return nil, goerr.New("notification ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	n, exists := m.notifications[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotificationNotFound, "notification not found in memory",
			goerr.V("id", id))
	}

	notificationCopy := *n
	return &notificationCopy, nil
}

// ListNotifications returns notifications newest first
func (m *Memory) ListNotifications(ctx context.Context, limit int) ([]*model.Notification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	notifications := make([]*model.Notification, 0, len(m.notifications))
	for _, n := range m.notifications {
		notificationCopy := *n
		notifications = append(notifications, &notificationCopy)
	}

	sortNotifications(notifications)

	if limit > 0 && len(notifications) > limit {
		notifications = notifications[:limit]
	}

	return notifications, nil
}

// CountUnreadNotifications returns the number of unread notifications
func (m *Memory) CountUnreadNotifications(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, n := range m.notifications {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

// MarkNotificationRead marks a notification as read. Marking a read notification is a no-op.
func (m *Memory) MarkNotificationRead(ctx context.Context, id types.NotificationID) error {
	if id == "" {
		return goerr.New("notification ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	n, exists := m.notifications[id]
	if !exists {
		return goerr.Wrap(model.ErrNotificationNotFound, "notification not found in memory",
			goerr.V("id", id))
	}

	n.Read = true
	return nil
}

// MarkAllNotificationsRead marks every notification as read
func (m *Memory) MarkAllNotificationsRead(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	changed := 0
	for _, n := range m.notifications {
		if !n.Read {
			n.Read = true
			changed++
		}
	}
	return changed, nil
}

// Close is a no-op for memory repository
func (m *Memory) Close() error {
	return nil
}

// sortNotifications orders notifications newest first, breaking ties by ID
// so that listings are stable.
func sortNotifications(notifications []*model.Notification) {
	sort.Slice(notifications, func(i, j int) bool {
		if notifications[i].Timestamp.Equal(notifications[j].Timestamp) {
			return notifications[i].ID < notifications[j].ID
		}
		return notifications[i].Timestamp.After(notifications[j].Timestamp)
	})
}
