package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	testCases := []struct {
		input       string
		expected    Role
		expectError bool
	}{
		{input: "client", expected: RoleClient},
		{input: "Member", expected: RoleMember},
		{input: " GUEST ", expected: RoleGuest},
		{input: "admin", expectError: true},
		{input: "", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			role, err := ParseRole(tc.input)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, role)
		})
	}
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, ProjectStatusInProgress.IsValid())
	assert.False(t, ProjectStatus("Open").IsValid())
	assert.True(t, TaskStatusOpen.IsValid())
	assert.False(t, TaskStatus("Planned").IsValid())
	assert.True(t, TaskPriorityCritical.IsValid())
	assert.False(t, TaskPriority("urgent").IsValid())
}

func TestParseCollection(t *testing.T) {
	c, err := ParseCollection("Teams")
	require.NoError(t, err)
	assert.Equal(t, CollectionTeams, c)
	assert.Equal(t, "team", c.Singular())

	_, err = ParseCollection("comments")
	assert.Error(t, err)
}

func TestSnapshotPutGetRemove(t *testing.T) {
	s := NewSnapshot()
	team := &Team{BaseModel: BaseModel{ID: "team_1"}, Name: "Ops", Members: []string{"user_1"}}
	require.NoError(t, s.Put(team))

	// mutating the caller's slice must not leak into the snapshot
	team.Members[0] = "user_9"

	got, ok := s.Get(CollectionTeams, "team_1")
	require.True(t, ok)
	assert.Equal(t, []string{"user_1"}, got.(*Team).Members)

	assert.True(t, s.Remove(CollectionTeams, "team_1"))
	assert.False(t, s.Remove(CollectionTeams, "team_1"))
	assert.True(t, s.IsEmpty())
}

func TestSnapshotCloneIsDeep(t *testing.T) {
	assignee := "user_2"
	s := SnapshotOf(
		[]User{{BaseModel: BaseModel{ID: "user_2"}, Name: "Sarah Miller", Role: RoleMember}},
		[]Team{{BaseModel: BaseModel{ID: "team_1"}, Name: "Dev", Members: []string{"user_2"}}},
		nil,
		[]Task{{BaseModel: BaseModel{ID: "task_1"}, Title: "Design", AssigneeID: &assignee}},
	)

	c := s.Clone()
	c.Teams["team_1"].Members[0] = "changed"
	*c.Tasks["task_1"].AssigneeID = "changed"

	assert.Equal(t, "user_2", s.Teams["team_1"].Members[0])
	assert.Equal(t, "user_2", *s.Tasks["task_1"].AssigneeID)
}

func TestEmptyMembersEncodeAsArray(t *testing.T) {
	s := SnapshotOf(nil, []Team{{BaseModel: BaseModel{ID: "team_1"}, Name: "Dev", Members: []string{}}}, nil, nil)
	require.NoError(t, s.Put(&Team{BaseModel: BaseModel{ID: "team_2"}, Name: "Ops"}))

	got, ok := s.Get(CollectionTeams, "team_1")
	require.True(t, ok)
	teams := s.TeamList()
	require.Len(t, teams, 2)

	encoded := []interface{}{got, teams[0], teams[1], s.Clone().Teams["team_2"]}
	for _, v := range encoded {
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"members":[]`)
	}
}

func TestSnapshotListsAreOrdered(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	s := SnapshotOf(nil, nil, []Project{
		{BaseModel: BaseModel{ID: "b", CreatedAt: now}},
		{BaseModel: BaseModel{ID: "c", CreatedAt: now.Add(-time.Hour)}},
		{BaseModel: BaseModel{ID: "a", CreatedAt: now}},
	}, nil)

	list := s.ProjectList()
	require.Len(t, list, 3)
	assert.Equal(t, "c", list[0].ID)
	assert.Equal(t, "a", list[1].ID)
	assert.Equal(t, "b", list[2].ID)
	assert.Equal(t, 3, s.Len(CollectionProjects))
}

func TestTaskIsAssignedTo(t *testing.T) {
	id := "user_3"
	task := Task{AssigneeID: &id}
	assert.True(t, task.IsAssignedTo("user_3"))
	assert.False(t, task.IsAssignedTo("user_2"))
	assert.False(t, (&Task{}).IsAssignedTo("user_3"))
}
