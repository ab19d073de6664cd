package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err, "creating test store")
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func newFileStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tracker.db")
	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	return s, path
}

func mustCreateUser(t *testing.T, s *SQLiteStore, email string) int64 {
	t.Helper()

	id, err := s.CreateUser(context.Background(), "user "+email, email, "hash:"+email)
	require.NoError(t, err)
	return id
}

func mustCreateProject(t *testing.T, s *SQLiteStore, ownerID int64, name string) int64 {
	t.Helper()

	id, err := s.CreateProject(context.Background(), ownerID, name, nil, nil)
	require.NoError(t, err)
	return id
}

func ptr[T any](v T) *T {
	return &v
}

func date(t *testing.T, s string) time.Time {
	t.Helper()

	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}
