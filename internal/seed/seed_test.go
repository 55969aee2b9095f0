package seed

import (
	"context"
	"errors"
	"testing"
	"time"

	"teamtrack-backend/internal/database/models"
	"teamtrack-backend/internal/mocks"
	"teamtrack-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSample(t *testing.T) {
	snap, err := Sample()
	require.NoError(t, err)

	assert.Len(t, snap.Users, 3)
	assert.Len(t, snap.Teams, 1)
	assert.Len(t, snap.Projects, 1)
	assert.Len(t, snap.Tasks, 2)

	assert.Equal(t, models.RoleClient, snap.Users["user_1"].Role)
	assert.Equal(t, []string{"user_2", "user_3"}, snap.Teams["team_1"].Members)
	assert.Equal(t, models.ProjectStatusInProgress, snap.Projects["project_1"].Status)
	assert.Equal(t, "2024-03-15", snap.Projects["project_1"].Deadline)

	task := snap.Tasks["task_2"]
	require.NotNil(t, task.AssigneeID)
	assert.Equal(t, "user_3", *task.AssigneeID)
	assert.Equal(t, time.Date(2024, 1, 22, 15, 30, 0, 0, time.UTC), task.CreatedAt)
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)
}

func TestParseRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed yaml", "users: [\n"},
		{"unknown role", "users:\n  - id: u1\n    name: X\n    role: admin\n"},
		{"unknown project status", "projects:\n  - id: p1\n    name: P\n    status: Archived\n"},
		{"unknown task priority", "tasks:\n  - id: t1\n    title: T\n    priority: Urgent\n    status: Open\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestLoadIfEmpty(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store gets the sample", func(t *testing.T) {
		st, err := store.New(ctx, store.NewMemoryPersister(nil))
		require.NoError(t, err)

		loaded, err := LoadIfEmpty(ctx, st)
		require.NoError(t, err)
		assert.True(t, loaded)

		_, ok := st.Task("task_1")
		assert.True(t, ok)
	})

	t.Run("existing data is kept", func(t *testing.T) {
		existing := models.SnapshotOf([]models.User{{BaseModel: models.BaseModel{ID: "u1"}, Name: "Only", Role: models.RoleClient}}, nil, nil, nil)
		st, err := store.New(ctx, store.NewMemoryPersister(existing))
		require.NoError(t, err)

		loaded, err := LoadIfEmpty(ctx, st)
		require.NoError(t, err)
		assert.False(t, loaded)
		assert.Len(t, st.ListAll(ctx).Users, 1)
	})

	t.Run("persist failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		persister := mocks.NewMockPersister(ctrl)
		persister.EXPECT().Load(gomock.Any()).Return(nil, nil)
		persister.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("read-only"))

		st, err := store.New(ctx, persister)
		require.NoError(t, err)

		loaded, err := LoadIfEmpty(ctx, st)
		assert.Error(t, err)
		assert.False(t, loaded)
		assert.True(t, st.IsEmpty())
	})
}
