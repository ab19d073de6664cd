package store

import (
	"context"
	"fmt"
	"time"

	"github.com/nhle/project-tracker/internal/model"
)

// AddNotification inserts an unread notification for targetID.
func (s *SQLiteStore) AddNotification(
	ctx context.Context,
	targetID int64,
	title, message string,
) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO notifications (user_id, title, message, read, created_at)
		VALUES (?, ?, ?, 0, ?)`,
		targetID, title, message, time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("creating notification: %w", classifyError(err))
	}
	return result.LastInsertId()
}

// ListNotifications retrieves all notifications of ownerID, read and
// unread, ordered by creation time descending.
func (s *SQLiteStore) ListNotifications(
	ctx context.Context,
	ownerID int64,
) ([]model.Notification, error) {
	notifications := []model.Notification{}
	err := s.db.SelectContext(ctx, &notifications, `
		SELECT id, user_id, title, message, read, created_at
		FROM notifications
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying notifications: %w", err)
	}
	return notifications, nil
}

// MarkNotificationRead sets the read flag on a notification owned by
// ownerID. The update does not filter on the current flag, so repeating it
// on an owned notification reports OutcomeApplied again; a missing or
// foreign notification reports OutcomeNotFoundOrUnauthorized.
func (s *SQLiteStore) MarkNotificationRead(
	ctx context.Context,
	notificationID, ownerID int64,
) (model.Outcome, error) {
	result, err := s.db.ExecContext(ctx,
		"UPDATE notifications SET read = 1 WHERE id = ? AND user_id = ?",
		notificationID, ownerID,
	)
	if err != nil {
		return model.OutcomeNotFoundOrUnauthorized,
			fmt.Errorf("marking notification %d as read: %w", notificationID, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return model.OutcomeNotFoundOrUnauthorized,
			fmt.Errorf("reading rows affected for notification %d: %w", notificationID, err)
	}
	return model.OutcomeFromRows(rows), nil
}

// CountUnreadNotifications returns how many notifications of ownerID are
// still unread.
func (s *SQLiteStore) CountUnreadNotifications(ctx context.Context, ownerID int64) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM notifications WHERE user_id = ? AND read = 0", ownerID)
	if err != nil {
		return 0, fmt.Errorf("counting unread notifications: %w", err)
	}
	return count, nil
}

// Counts reads the project, activity, and unread notification counters of
// ownerID from a single transaction so they describe one snapshot.
func (s *SQLiteStore) Counts(ctx context.Context, ownerID int64) (model.Counts, error) {
	var counts model.Counts

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return counts, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	queries := []struct {
		dest  *int
		query string
	}{
		{&counts.Projects, "SELECT COUNT(*) FROM projects WHERE user_id = ?"},
		{&counts.Activities, "SELECT COUNT(*) FROM activities WHERE user_id = ?"},
		{&counts.Notifications, "SELECT COUNT(*) FROM notifications WHERE user_id = ? AND read = 0"},
	}
	for _, q := range queries {
		if err := tx.GetContext(ctx, q.dest, q.query, ownerID); err != nil {
			return model.Counts{}, fmt.Errorf("reading counts: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return model.Counts{}, fmt.Errorf("committing counts read: %w", err)
	}
	return counts, nil
}
