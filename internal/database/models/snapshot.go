package models

import (
	"fmt"
	"sort"
)

// Snapshot holds all four collections keyed by entity id.
type Snapshot struct {
	Users    map[string]User
	Teams    map[string]Team
	Projects map[string]Project
	Tasks    map[string]Task
}

// NewSnapshot returns an empty snapshot with all maps allocated.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Users:    make(map[string]User),
		Teams:    make(map[string]Team),
		Projects: make(map[string]Project),
		Tasks:    make(map[string]Task),
	}
}

// SnapshotOf builds a snapshot from entity slices. Later duplicates win.
func SnapshotOf(users []User, teams []Team, projects []Project, tasks []Task) *Snapshot {
	s := NewSnapshot()
	for _, u := range users {
		s.Users[u.ID] = u
	}
	for _, t := range teams {
		t.Members = cloneIDs(t.Members)
		s.Teams[t.ID] = t
	}
	for _, p := range projects {
		s.Projects[p.ID] = p
	}
	for _, t := range tasks {
		t.AssigneeID = cloneString(t.AssigneeID)
		s.Tasks[t.ID] = t
	}
	return s
}

// Clone returns a deep copy; slices and pointers are not shared.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return NewSnapshot()
	}
	return SnapshotOf(s.UserList(), s.TeamList(), s.ProjectList(), s.TaskList())
}

// IsEmpty reports whether every collection is empty.
func (s *Snapshot) IsEmpty() bool {
	return len(s.Users) == 0 && len(s.Teams) == 0 && len(s.Projects) == 0 && len(s.Tasks) == 0
}

// Len returns the number of entities in a collection.
func (s *Snapshot) Len(c Collection) int {
	switch c {
	case CollectionUsers:
		return len(s.Users)
	case CollectionTeams:
		return len(s.Teams)
	case CollectionProjects:
		return len(s.Projects)
	case CollectionTasks:
		return len(s.Tasks)
	}
	return 0
}

// Get returns a copy of the entity with id in collection c.
func (s *Snapshot) Get(c Collection, id string) (Entity, bool) {
	switch c {
	case CollectionUsers:
		if u, ok := s.Users[id]; ok {
			return &u, true
		}
	case CollectionTeams:
		if t, ok := s.Teams[id]; ok {
			t.Members = cloneIDs(t.Members)
			return &t, true
		}
	case CollectionProjects:
		if p, ok := s.Projects[id]; ok {
			return &p, true
		}
	case CollectionTasks:
		if t, ok := s.Tasks[id]; ok {
			t.AssigneeID = cloneString(t.AssigneeID)
			return &t, true
		}
	}
	return nil, false
}

// Put stores a copy of e, replacing any entity with the same id.
func (s *Snapshot) Put(e Entity) error {
	switch v := e.(type) {
	case *User:
		s.Users[v.ID] = *v
	case *Team:
		t := *v
		t.Members = cloneIDs(v.Members)
		s.Teams[v.ID] = t
	case *Project:
		s.Projects[v.ID] = *v
	case *Task:
		t := *v
		t.AssigneeID = cloneString(v.AssigneeID)
		s.Tasks[v.ID] = t
	default:
		return fmt.Errorf("unsupported entity type %T", e)
	}
	return nil
}

// Remove deletes the entity with id from collection c and reports whether it existed.
func (s *Snapshot) Remove(c Collection, id string) bool {
	if _, ok := s.Get(c, id); !ok {
		return false
	}
	switch c {
	case CollectionUsers:
		delete(s.Users, id)
	case CollectionTeams:
		delete(s.Teams, id)
	case CollectionProjects:
		delete(s.Projects, id)
	case CollectionTasks:
		delete(s.Tasks, id)
	}
	return true
}

// UserList returns users ordered by creation time, then id.
func (s *Snapshot) UserList() []User {
	out := make([]User, 0, len(s.Users))
	for _, u := range s.Users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return before(out[i].BaseModel, out[j].BaseModel) })
	return out
}

// TeamList returns teams ordered by creation time, then id.
func (s *Snapshot) TeamList() []Team {
	out := make([]Team, 0, len(s.Teams))
	for _, t := range s.Teams {
		t.Members = cloneIDs(t.Members)
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return before(out[i].BaseModel, out[j].BaseModel) })
	return out
}

// ProjectList returns projects ordered by creation time, then id.
func (s *Snapshot) ProjectList() []Project {
	out := make([]Project, 0, len(s.Projects))
	for _, p := range s.Projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return before(out[i].BaseModel, out[j].BaseModel) })
	return out
}

// TaskList returns tasks ordered by creation time, then id.
func (s *Snapshot) TaskList() []Task {
	out := make([]Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		t.AssigneeID = cloneString(t.AssigneeID)
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return before(out[i].BaseModel, out[j].BaseModel) })
	return out
}

func before(a, b BaseModel) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}

// cloneIDs copies ids into a non-nil slice so an empty member list encodes
// as [] rather than null.
func cloneIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
