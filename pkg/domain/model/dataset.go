package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/defectdash/pkg/domain/types"
)

// Dataset is the static data the service is seeded with
type Dataset struct {
	Projects      []ProjectData      `yaml:"projects"`
	Notifications []NotificationSeed `yaml:"notifications,omitempty"`
}

// NotificationSeed describes a notification whose timestamp is relative to load time
type NotificationSeed struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Message string `yaml:"message"`
	Type    string `yaml:"type"`
	Age     string `yaml:"age"` // Go duration, e.g. "5m", "2h", "72h"
	Read    bool   `yaml:"read"`
}

// ToNotification resolves the seed against now
func (s *NotificationSeed) ToNotification(now time.Time) (*Notification, error) {
	var age time.Duration
	if s.Age != "" {
		parsed, err := time.ParseDuration(s.Age)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid notification age",
				goerr.V("id", s.ID),
				goerr.V("age", s.Age),
				goerr.T(ErrTagInvalidInput))
		}
		if parsed < 0 {
			return nil, goerr.New("notification age must not be negative",
				goerr.V("id", s.ID),
				goerr.V("age", s.Age),
				goerr.T(ErrTagInvalidInput))
		}
		age = parsed
	}

	n := &Notification{
		ID:        types.NotificationID(s.ID),
		Title:     s.Title,
		Message:   s.Message,
		Type:      types.NotificationType(s.Type),
		Timestamp: now.Add(-age),
		Read:      s.Read,
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

// Validate validates the dataset. Project names and notification IDs must be unique.
func (d *Dataset) Validate() error {
	names := make(map[types.ProjectName]bool)
	for i := range d.Projects {
		p := &d.Projects[i]
		if err := p.Validate(); err != nil {
			return goerr.Wrap(err, "invalid project at index",
				goerr.V("index", i))
		}
		if names[p.Name] {
			return goerr.New("duplicate project name",
				goerr.V("name", p.Name),
				goerr.T(ErrTagInvalidInput))
		}
		names[p.Name] = true
	}

	ids := make(map[string]bool)
	for i, seed := range d.Notifications {
		if _, err := seed.ToNotification(time.Now()); err != nil {
			return goerr.Wrap(err, "invalid notification at index",
				goerr.V("index", i))
		}
		if ids[seed.ID] {
			return goerr.New("duplicate notification ID",
				goerr.V("id", seed.ID),
				goerr.T(ErrTagInvalidInput))
		}
		ids[seed.ID] = true
	}

	return nil
}

// FindProject finds a project by name
func (d *Dataset) FindProject(name types.ProjectName) *ProjectData {
	for _, p := range d.Projects {
		if p.Name == name {
			result := p
			return &result
		}
	}
	return nil
}

// BuildNotifications resolves all notification seeds against now
func (d *Dataset) BuildNotifications(now time.Time) ([]*Notification, error) {
	result := make([]*Notification, 0, len(d.Notifications))
	for i := range d.Notifications {
		n, err := d.Notifications[i].ToNotification(now)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, nil
}
