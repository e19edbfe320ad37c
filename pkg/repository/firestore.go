package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/defectdash/pkg/domain/interfaces"
	"github.com/secmon-lab/defectdash/pkg/domain/model"
	"github.com/secmon-lab/defectdash/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Collection names
	projectsCollection      = "projects"
	notificationsCollection = "notifications"

	// Field names. Firestore stores Go struct field names as they are.
	fieldName      = "Name"
	fieldRead      = "Read"
	fieldTimestamp = "Timestamp"
)

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client *firestore.Client
}

var _ interfaces.Repository = (*Firestore)(nil)

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID))
	}

	// Fail fast on invalid project or missing permission. An empty collection is fine.
	_, err = client.Collection(projectsCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

// PutProject saves a project to Firestore keyed by its name
func (f *Firestore) PutProject(ctx context.Context, project *model.ProjectData) error {
	if project == nil {
		return goerr.New("project is nil")
	}
	if project.Name == "" {
		return goerr.New("project name is empty")
	}

	if _, err := f.client.Collection(projectsCollection).Doc(project.Name.String()).Set(ctx, project); err != nil {
		return goerr.Wrap(err, "failed to save project to firestore", goerr.V("name", project.Name))
	}
	return nil
}

// GetProject retrieves a project by name
func (f *Firestore) GetProject(ctx context.Context, name types.ProjectName) (*model.ProjectData, error) {
	if name == "" {
		return nil, goerr.New("project name is empty")
	}

	doc, err := f.client.Collection(projectsCollection).Doc(name.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrProjectNotFound, "project not found in firestore",
				goerr.V("name", name))
		}
		return nil, goerr.Wrap(err, "failed to get project from firestore", goerr.V("name", name))
	}

	var project model.ProjectData
	if err := doc.DataTo(&project); err != nil {
		return nil, goerr.Wrap(err, "failed to decode project", goerr.V("name", name))
	}
	return &project, nil
}

// ListProjects returns all projects sorted by name
func (f *Firestore) ListProjects(ctx context.Context) ([]*model.ProjectData, error) {
	iter := f.client.Collection(projectsCollection).OrderBy(fieldName, firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var projects []*model.ProjectData
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate projects")
		}

		var project model.ProjectData
		if err := doc.DataTo(&project); err != nil {
			return nil, goerr.Wrap(err, "failed to decode project", goerr.V("docID", doc.Ref.ID))
		}
		projects = append(projects, &project)
	}

	return projects, nil
}

// PutNotification saves a notification to Firestore
func (f *Firestore) PutNotification(ctx context.Context, notification *model.Notification) error {
	if notification == nil {
		return goerr.New("notification is nil")
	}
	if notification.ID == "" {
		return goerr.New("notification ID is empty")
	}

	if _, err := f.client.Collection(notificationsCollection).Doc(notification.ID.String()).Set(ctx, notification); err != nil {
		return goerr.Wrap(err, "failed to save notification to firestore", goerr.V("id", notification.ID))
	}
	return nil
}

// GetNotification retrieves a notification by ID
func (f *Firestore) GetNotification(ctx context.Context, id types.NotificationID) (*model.Notification, error) {
	if id == "" {
		return nil, goerr.New("notification ID is empty")
	}

	doc, err := f.client.Collection(notificationsCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrNotificationNotFound, "notification not found in firestore",
				goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get notification from firestore", goerr.V("id", id))
	}

	var notification model.Notification
	if err := doc.DataTo(&notification); err != nil {
		return nil, goerr.Wrap(err, "failed to decode notification", goerr.V("id", id))
	}
	return &notification, nil
}

// ListNotifications returns notifications newest first
func (f *Firestore) ListNotifications(ctx context.Context, limit int) ([]*model.Notification, error) {
	query := f.client.Collection(notificationsCollection).OrderBy(fieldTimestamp, firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	notifications, err := f.queryNotifications(ctx, query)
	if err != nil {
		return nil, err
	}

	sortNotifications(notifications)
	return notifications, nil
}

// CountUnreadNotifications returns the number of unread notifications
func (f *Firestore) CountUnreadNotifications(ctx context.Context) (int, error) {
	unread, err := f.queryNotifications(ctx, f.unreadQuery())
	if err != nil {
		return 0, err
	}
	return len(unread), nil
}

// MarkNotificationRead marks a notification as read
func (f *Firestore) MarkNotificationRead(ctx context.Context, id types.NotificationID) error {
	if id == "" {
		return goerr.New("notification ID is empty")
	}

	_, err := f.client.Collection(notificationsCollection).Doc(id.String()).Update(ctx, []firestore.Update{
		{Path: fieldRead, Value: true},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(model.ErrNotificationNotFound, "notification not found in firestore",
				goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to mark notification as read", goerr.V("id", id))
	}
	return nil
}

// MarkAllNotificationsRead marks every unread notification as read in one transaction
func (f *Firestore) MarkAllNotificationsRead(ctx context.Context) (int, error) {
	var changed int
	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		changed = 0

		docs, err := tx.Documents(f.unreadQuery()).GetAll()
		if err != nil {
			return goerr.Wrap(err, "failed to get unread notifications")
		}

		for _, doc := range docs {
			if err := tx.Update(doc.Ref, []firestore.Update{
				{Path: fieldRead, Value: true},
			}); err != nil {
				return goerr.Wrap(err, "failed to update notification", goerr.V("docID", doc.Ref.ID))
			}
			changed++
		}
		return nil
	})
	if err != nil {
		return 0, goerr.Wrap(err, "failed to mark all notifications as read")
	}

	return changed, nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

func (f *Firestore) unreadQuery() firestore.Query {
	return f.client.Collection(notificationsCollection).Where(fieldRead, "==", false)
}

func (f *Firestore) queryNotifications(ctx context.Context, query firestore.Query) ([]*model.Notification, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var notifications []*model.Notification
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate notifications")
		}

		var notification model.Notification
		if err := doc.DataTo(&notification); err != nil {
			return nil, goerr.Wrap(err, "failed to decode notification", goerr.V("docID", doc.Ref.ID))
		}
		notifications = append(notifications, &notification)
	}

	return notifications, nil
}
