package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nhle/project-tracker/internal/model"
)

const projectColumns = "id, user_id, name, description, deadline, status, created_at"

// CreateProject inserts a new project owned by ownerID with status
// "in_progress" and returns its id.
func (s *SQLiteStore) CreateProject(
	ctx context.Context,
	ownerID int64,
	name string,
	description *string,
	deadline *time.Time,
) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, fmt.Errorf("project name must not be empty")
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (user_id, name, description, deadline, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		ownerID, name, description, deadline,
		model.ProjectStatusInProgress, time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("creating project: %w", classifyError(err))
	}
	return result.LastInsertId()
}

// ListProjects retrieves every project owned by ownerID, newest first.
func (s *SQLiteStore) ListProjects(ctx context.Context, ownerID int64) ([]model.Project, error) {
	projects := []model.Project{}
	err := s.db.SelectContext(ctx, &projects, `
		SELECT `+projectColumns+` FROM projects
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	return projects, nil
}

// GetProject retrieves a project only if it is owned by ownerID. A project
// that exists under another owner yields model.ErrNotFound.
func (s *SQLiteStore) GetProject(
	ctx context.Context,
	projectID, ownerID int64,
) (*model.Project, error) {
	var project model.Project
	err := s.db.GetContext(ctx, &project,
		"SELECT "+projectColumns+" FROM projects WHERE id = ? AND user_id = ?",
		projectID, ownerID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting project %d: %w", projectID, err)
	}
	return &project, nil
}

// DeleteProject removes a project and every activity the owner logged
// against it in a single transaction. The schema does not cascade, so the
// activities go first. When no project row matches the (id, owner) pair the
// transaction is rolled back and OutcomeNotFoundOrUnauthorized is returned
// with a nil error.
func (s *SQLiteStore) DeleteProject(
	ctx context.Context,
	projectID, ownerID int64,
) (model.Outcome, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.OutcomeNotFoundOrUnauthorized, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"DELETE FROM activities WHERE project_id = ? AND user_id = ?",
		projectID, ownerID,
	)
	if err != nil {
		return model.OutcomeNotFoundOrUnauthorized,
			fmt.Errorf("deleting activities of project %d: %w", projectID, classifyError(err))
	}

	result, err := tx.ExecContext(ctx,
		"DELETE FROM projects WHERE id = ? AND user_id = ?",
		projectID, ownerID,
	)
	if err != nil {
		return model.OutcomeNotFoundOrUnauthorized,
			fmt.Errorf("deleting project %d: %w", projectID, classifyError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return model.OutcomeNotFoundOrUnauthorized,
			fmt.Errorf("reading rows affected for project %d: %w", projectID, err)
	}
	if rows == 0 {
		return model.OutcomeNotFoundOrUnauthorized, nil
	}

	if err := tx.Commit(); err != nil {
		return model.OutcomeNotFoundOrUnauthorized, fmt.Errorf("committing project delete: %w", err)
	}
	return model.OutcomeApplied, nil
}

// CountProjects returns the number of projects owned by ownerID.
func (s *SQLiteStore) CountProjects(ctx context.Context, ownerID int64) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM projects WHERE user_id = ?", ownerID)
	if err != nil {
		return 0, fmt.Errorf("counting projects: %w", err)
	}
	return count, nil
}
