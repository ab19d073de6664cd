package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/project-tracker/internal/model"
)

func TestAddNotification_StartsUnread(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	alice := mustCreateUser(t, s, "a@x.com")

	id, err := s.AddNotification(ctx, alice, "New Project", "created")
	require.NoError(t, err)

	notifications, err := s.ListNotifications(ctx, alice)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, id, notifications[0].ID)
	assert.False(t, notifications[0].Read)

	unread, err := s.CountUnreadNotifications(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)
}

func TestListNotifications_NewestFirstIncludesRead(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	alice := mustCreateUser(t, s, "a@x.com")

	older, err := s.AddNotification(ctx, alice, "one", "first")
	require.NoError(t, err)
	newer, err := s.AddNotification(ctx, alice, "two", "second")
	require.NoError(t, err)

	_, err = s.MarkNotificationRead(ctx, older, alice)
	require.NoError(t, err)

	notifications, err := s.ListNotifications(ctx, alice)
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, newer, notifications[0].ID)
	assert.Equal(t, older, notifications[1].ID)
	assert.True(t, notifications[1].Read)
}

func TestMarkNotificationRead_RepeatIsApplied(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	alice := mustCreateUser(t, s, "a@x.com")
	id, err := s.AddNotification(ctx, alice, "t", "m")
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		outcome, err := s.MarkNotificationRead(ctx, id, alice)
		require.NoError(t, err)
		assert.Equal(t, model.OutcomeApplied, outcome, "call %d", i+1)
	}

	notifications, err := s.ListNotifications(ctx, alice)
	require.NoError(t, err)
	assert.True(t, notifications[0].Read)

	unread, err := s.CountUnreadNotifications(ctx, alice)
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestMarkNotificationRead_ForeignOrMissing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	alice := mustCreateUser(t, s, "a@x.com")
	bob := mustCreateUser(t, s, "b@x.com")
	id, err := s.AddNotification(ctx, alice, "t", "m")
	require.NoError(t, err)

	outcome, err := s.MarkNotificationRead(ctx, id, bob)
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeNotFoundOrUnauthorized, outcome)

	outcome, err = s.MarkNotificationRead(ctx, id+50, alice)
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeNotFoundOrUnauthorized, outcome)

	unread, err := s.CountUnreadNotifications(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)
}

func TestCounts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	alice := mustCreateUser(t, s, "a@x.com")
	project := mustCreateProject(t, s, alice, "p")
	_, err := s.AddActivity(ctx, alice, &project, "a", "update")
	require.NoError(t, err)
	_, err = s.AddActivity(ctx, alice, nil, "b", "update")
	require.NoError(t, err)
	read, err := s.AddNotification(ctx, alice, "t1", "m1")
	require.NoError(t, err)
	_, err = s.AddNotification(ctx, alice, "t2", "m2")
	require.NoError(t, err)
	_, err = s.MarkNotificationRead(ctx, read, alice)
	require.NoError(t, err)

	counts, err := s.Counts(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, model.Counts{Projects: 1, Activities: 2, Notifications: 1}, counts)
}
