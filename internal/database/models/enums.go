package models

import (
	"fmt"
	"strings"
)

// Role is the closed set of user roles.
type Role string

const (
	RoleClient Role = "client"
	RoleMember Role = "member"
	RoleGuest  Role = "guest"
)

// Roles lists every role in display order.
var Roles = []Role{RoleClient, RoleMember, RoleGuest}

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleMember, RoleGuest:
		return true
	}
	return false
}

// ParseRole matches a role case-insensitively.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// ProjectStatus represents the status of a project
type ProjectStatus string

const (
	ProjectStatusPlanned    ProjectStatus = "Planned"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusBlocked    ProjectStatus = "Blocked"
	ProjectStatusDone       ProjectStatus = "Done"
)

// IsValid checks if the ProjectStatus is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPlanned, ProjectStatusInProgress, ProjectStatusBlocked, ProjectStatusDone:
		return true
	}
	return false
}

// TaskStatus represents the status of a task
type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "Open"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusBlocked    TaskStatus = "Blocked"
	TaskStatusDone       TaskStatus = "Done"
)

// IsValid checks if the TaskStatus is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusOpen, TaskStatusInProgress, TaskStatusBlocked, TaskStatusDone:
		return true
	}
	return false
}

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	TaskPriorityLow      TaskPriority = "Low"
	TaskPriorityMedium   TaskPriority = "Medium"
	TaskPriorityHigh     TaskPriority = "High"
	TaskPriorityCritical TaskPriority = "Critical"
)

// IsValid checks if the TaskPriority is valid
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityCritical:
		return true
	}
	return false
}

// Collection names one of the four entity collections.
type Collection string

const (
	CollectionUsers    Collection = "users"
	CollectionTeams    Collection = "teams"
	CollectionProjects Collection = "projects"
	CollectionTasks    Collection = "tasks"
)

// Collections lists every collection in dependency order.
var Collections = []Collection{CollectionUsers, CollectionTeams, CollectionProjects, CollectionTasks}

// IsValid checks if the Collection is valid
func (c Collection) IsValid() bool {
	switch c {
	case CollectionUsers, CollectionTeams, CollectionProjects, CollectionTasks:
		return true
	}
	return false
}

// ParseCollection validates a collection name taken from a route or request.
func ParseCollection(s string) (Collection, error) {
	c := Collection(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("unknown collection %q", s)
	}
	return c, nil
}

// Singular returns the entity name used in messages ("team" for teams).
func (c Collection) Singular() string {
	return strings.TrimSuffix(string(c), "s")
}
