package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/project-tracker/internal/model"
)

func TestAddActivity(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	alice := mustCreateUser(t, s, "a@x.com")
	project := mustCreateProject(t, s, alice, "Website")

	id, err := s.AddActivity(ctx, alice, &project, `New project "Website" created`, model.ActivityCreateProject)
	require.NoError(t, err)
	assert.Positive(t, id)

	activities, err := s.ListActivities(ctx, alice, 0)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, model.ActivityCreateProject, activities[0].Type)
	require.NotNil(t, activities[0].ProjectID)
	assert.Equal(t, project, *activities[0].ProjectID)
}

func TestAddActivity_WithoutProject(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	alice := mustCreateUser(t, s, "a@x.com")

	_, err := s.AddActivity(ctx, alice, nil, "deleted", model.ActivityDeleteProject)
	require.NoError(t, err)

	activities, err := s.ListActivities(ctx, alice, 0)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Nil(t, activities[0].ProjectID)
}

func TestAddActivity_RejectsEmptyType(t *testing.T) {
	s := newTestStore(t)
	alice := mustCreateUser(t, s, "a@x.com")

	_, err := s.AddActivity(context.Background(), alice, nil, "desc", "")
	assert.Error(t, err)
}

func TestListActivities_LimitAndOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	alice := mustCreateUser(t, s, "a@x.com")
	bob := mustCreateUser(t, s, "b@x.com")

	var ids []int64
	for i := 0; i < 15; i++ {
		id, err := s.AddActivity(ctx, alice, nil, fmt.Sprintf("event %d", i), "update")
		require.NoError(t, err)
		ids = append(ids, id)
	}
	_, err := s.AddActivity(ctx, bob, nil, "bob event", "update")
	require.NoError(t, err)

	defaulted, err := s.ListActivities(ctx, alice, 0)
	require.NoError(t, err)
	require.Len(t, defaulted, DefaultActivityLimit)
	assert.Equal(t, ids[14], defaulted[0].ID)
	assert.Equal(t, ids[5], defaulted[DefaultActivityLimit-1].ID)

	limited, err := s.ListActivities(ctx, alice, 3)
	require.NoError(t, err)
	assert.Len(t, limited, 3)

	count, err := s.CountActivities(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, 15, count)
}
