package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/project-tracker/internal/model"
)

func TestNewSQLiteStore_CreatesDatabaseFile(t *testing.T) {
	s, path := newFileStore(t)
	defer s.Close()

	_, err := os.Stat(path)
	assert.NoError(t, err, "database file was not created")
}

func TestNewSQLiteStore_CreatesAllTables(t *testing.T) {
	s := newTestStore(t)

	for _, table := range []string{"users", "projects", "activities", "notifications"} {
		var count int
		err := s.db.Get(&count,
			"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "table %s missing", table)
	}
}

func TestNewSQLiteStore_Idempotent(t *testing.T) {
	s, path := newFileStore(t)
	ctx := context.Background()
	userID, err := s.CreateUser(ctx, "Alice", "a@x.com", "hash")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	for i := 0; i < 3; i++ {
		reopened, err := NewSQLiteStore(path)
		require.NoError(t, err, "reopen iteration %d", i)

		version, err := reopened.SchemaVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, len(migrations), version)

		user, err := reopened.GetUserByID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", user.Email)
		require.NoError(t, reopened.Close())
	}
}

func TestNewSQLiteStore_RecordsSingleVersionRow(t *testing.T) {
	s, path := newFileStore(t)
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	var rows int
	require.NoError(t, reopened.db.Get(&rows, "SELECT COUNT(*) FROM schema_version"))
	assert.Equal(t, len(migrations), rows)
}

func TestNewSQLiteStore_ReportsOpenFailure(t *testing.T) {
	_, err := NewSQLiteStore(t.TempDir() + "/missing/dir/tracker.db")
	assert.Error(t, err)
}

func TestClassifyError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	mustCreateUser(t, s, "dup@x.com")

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (name, email, password) VALUES ('b', 'dup@x.com', 'h')")
	require.Error(t, err)
	assert.ErrorIs(t, classifyError(err), model.ErrConstraintViolation)

	plain := errors.New("disk on fire")
	assert.Same(t, plain, classifyError(plain))
	assert.NoError(t, classifyError(nil))
	assert.False(t, errors.Is(classifyError(fmt.Errorf("wrapped: %w", plain)), model.ErrConstraintViolation))
}
