package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nhle/project-tracker/internal/model"
)

// AddActivity appends an audit entry for actorID. projectID may be nil.
func (s *SQLiteStore) AddActivity(
	ctx context.Context,
	actorID int64,
	projectID *int64,
	description, activityType string,
) (int64, error) {
	if strings.TrimSpace(activityType) == "" {
		return 0, fmt.Errorf("activity type must not be empty")
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO activities (user_id, project_id, description, type, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		actorID, projectID, description, activityType, time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("adding activity: %w", classifyError(err))
	}
	return result.LastInsertId()
}

// ListActivities returns the most recent activities of ownerID, newest
// first. A non-positive limit falls back to DefaultActivityLimit.
func (s *SQLiteStore) ListActivities(
	ctx context.Context,
	ownerID int64,
	limit int,
) ([]model.Activity, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}

	activities := []model.Activity{}
	err := s.db.SelectContext(ctx, &activities, `
		SELECT id, user_id, project_id, description, type, created_at
		FROM activities
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`,
		ownerID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying activities: %w", err)
	}
	return activities, nil
}

// CountActivities returns the number of activities logged by ownerID.
func (s *SQLiteStore) CountActivities(ctx context.Context, ownerID int64) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM activities WHERE user_id = ?", ownerID)
	if err != nil {
		return 0, fmt.Errorf("counting activities: %w", err)
	}
	return count, nil
}
