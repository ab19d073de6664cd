package store

import (
	"context"
	"time"

	"github.com/nhle/project-tracker/internal/model"
)

// DefaultActivityLimit is the page size used by ListActivities when the
// caller passes a non-positive limit.
const DefaultActivityLimit = 10

// Store defines the persistence interface for users, projects, activities,
// and notifications. Every project, activity, and notification operation is
// scoped to an owning user; a record belonging to someone else behaves
// exactly like a missing one.
type Store interface {
	// === Users ===

	CreateUser(ctx context.Context, name, email, passwordHash string) (int64, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)

	// === Projects ===

	CreateProject(ctx context.Context, ownerID int64, name string, description *string, deadline *time.Time) (int64, error)
	ListProjects(ctx context.Context, ownerID int64) ([]model.Project, error)
	GetProject(ctx context.Context, projectID, ownerID int64) (*model.Project, error)
	DeleteProject(ctx context.Context, projectID, ownerID int64) (model.Outcome, error)
	CountProjects(ctx context.Context, ownerID int64) (int, error)

	// === Activities ===

	AddActivity(ctx context.Context, actorID int64, projectID *int64, description, activityType string) (int64, error)
	ListActivities(ctx context.Context, ownerID int64, limit int) ([]model.Activity, error)
	CountActivities(ctx context.Context, ownerID int64) (int, error)

	// === Notifications ===

	AddNotification(ctx context.Context, targetID int64, title, message string) (int64, error)
	ListNotifications(ctx context.Context, ownerID int64) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID, ownerID int64) (model.Outcome, error)
	CountUnreadNotifications(ctx context.Context, ownerID int64) (int, error)

	// === Dashboard ===

	Counts(ctx context.Context, ownerID int64) (model.Counts, error)
}
