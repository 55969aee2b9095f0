package authz

import (
	"sort"
	"strings"

	"teamtrack-backend/internal/database/models"
)

// IsTeamMember reports whether userID belongs to teamID. A missing team has no members.
func (e *Engine) IsTeamMember(teamID, userID string) bool {
	team, ok := e.snap.Teams[teamID]
	if !ok {
		return false
	}
	return team.HasMember(userID)
}

// TeamsOf returns every team whose members include userID.
func (e *Engine) TeamsOf(userID string) []models.Team {
	teams := []models.Team{}
	for _, t := range e.snap.TeamList() {
		if t.HasMember(userID) {
			teams = append(teams, t)
		}
	}
	return teams
}

// AccessibleProjectIDs returns the ids of projects owned by a team userID
// belongs to. Projects pointing at a deleted team are never accessible.
func (e *Engine) AccessibleProjectIDs(userID string) []string {
	teamIDs := make(map[string]struct{})
	for _, t := range e.TeamsOf(userID) {
		teamIDs[t.ID] = struct{}{}
	}

	ids := []string{}
	for _, p := range e.snap.ProjectList() {
		if _, ok := teamIDs[p.TeamID]; ok {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// AccessibleProjects returns the projects behind AccessibleProjectIDs.
func (e *Engine) AccessibleProjects(userID string) []models.Project {
	projects := []models.Project{}
	for _, id := range e.AccessibleProjectIDs(userID) {
		projects = append(projects, e.snap.Projects[id])
	}
	return projects
}

// MembersOf resolves a team's member ids to users. Ids with no matching user
// are skipped.
func (e *Engine) MembersOf(teamID string) []models.User {
	members := []models.User{}
	team, ok := e.snap.Teams[teamID]
	if !ok {
		return members
	}
	for _, id := range team.Members {
		if u, ok := e.snap.Users[id]; ok {
			members = append(members, u)
		}
	}
	sort.SliceStable(members, func(i, j int) bool { return members[i].Name < members[j].Name })
	return members
}

// TasksOf returns the tasks of projectID.
func (e *Engine) TasksOf(projectID string) []models.Task {
	tasks := []models.Task{}
	for _, t := range e.snap.TaskList() {
		if t.ProjectID == projectID {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// TasksAssignedTo returns the tasks whose assignee is userID.
func (e *Engine) TasksAssignedTo(userID string) []models.Task {
	tasks := []models.Task{}
	for _, t := range e.snap.TaskList() {
		if t.IsAssignedTo(userID) {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// AssignableUsers returns the users a task may be assigned to: everyone but guests.
func (e *Engine) AssignableUsers() []models.User {
	users := []models.User{}
	for _, u := range e.snap.UserList() {
		if u.Role != models.RoleGuest {
			users = append(users, u)
		}
	}
	return users
}

// FindUserByName matches name against user names case-insensitively,
// ignoring surrounding whitespace.
func (e *Engine) FindUserByName(name string) (*models.User, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false
	}
	for _, u := range e.snap.UserList() {
		if strings.EqualFold(u.Name, name) {
			u := u
			return &u, true
		}
	}
	return nil, false
}

// Stats are the dashboard counters.
type Stats struct {
	Teams    int `json:"teams"`
	Projects int `json:"projects"`
	Tasks    int `json:"tasks"`
	MyTasks  int `json:"my_tasks"`
}

// Stats counts the collections and the tasks assigned to s.
func (e *Engine) Stats(s Session) Stats {
	return Stats{
		Teams:    len(e.snap.Teams),
		Projects: len(e.snap.Projects),
		Tasks:    len(e.snap.Tasks),
		MyTasks:  len(e.TasksAssignedTo(s.UserID)),
	}
}
