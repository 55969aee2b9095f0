// Package authz decides whether a session may create, edit or delete an
// entity, and computes the relational views those decisions depend on.
//
// Every decision is a pure function of a snapshot, the session and the
// requested action. The engine never mutates the snapshot it is given.
//
// Permission matrix:
//
//	role    team c/e/d  project c/e/d  task create          task edit       task delete
//	client  allow       allow          allow                allow           allow
//	member  deny        deny           member of its team   assignee only   deny
//	guest   deny        deny           deny                 deny            deny
package authz

import (
	"fmt"

	"teamtrack-backend/internal/database/models"
	apperrors "teamtrack-backend/internal/errors"
)

// Decision is the outcome of an authorization check.
type Decision int

const (
	// Deny means the action is not permitted.
	Deny Decision = iota

	// Allow means the action is permitted.
	Allow
)

// String returns "allow" or "deny".
func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

func decision(ok bool) Decision {
	if ok {
		return Allow
	}
	return Deny
}

// Action is a mutation requested on an entity.
type Action string

const (
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// IsValid checks if the Action is valid
func (a Action) IsValid() bool {
	switch a {
	case ActionCreate, ActionEdit, ActionDelete:
		return true
	}
	return false
}

// Engine evaluates permissions and relational queries over one snapshot.
type Engine struct {
	snap *models.Snapshot
}

// NewEngine returns an engine reading snap. A nil snapshot behaves as empty.
func NewEngine(snap *models.Snapshot) *Engine {
	if snap == nil {
		snap = models.NewSnapshot()
	}
	return &Engine{snap: snap}
}

// manages reports whether role has full control over teams, projects and
// task deletion.
func manages(role models.Role) bool {
	switch role {
	case models.RoleClient:
		return true
	case models.RoleMember, models.RoleGuest:
		return false
	}
	return false
}

// CanCreateTeam reports whether s may create teams.
func (e *Engine) CanCreateTeam(s Session) bool { return manages(s.Role) }

// CanEditTeam reports whether s may edit teams.
func (e *Engine) CanEditTeam(s Session) bool { return manages(s.Role) }

// CanDeleteTeam reports whether s may delete teams.
func (e *Engine) CanDeleteTeam(s Session) bool { return manages(s.Role) }

// CanCreateProject reports whether s may create projects.
func (e *Engine) CanCreateProject(s Session) bool { return manages(s.Role) }

// CanEditProject reports whether s may edit projects.
func (e *Engine) CanEditProject(s Session) bool { return manages(s.Role) }

// CanDeleteProject reports whether s may delete projects.
func (e *Engine) CanDeleteProject(s Session) bool { return manages(s.Role) }

// CanDeleteTask reports whether s may delete tasks.
func (e *Engine) CanDeleteTask(s Session) bool { return manages(s.Role) }

// CanCreateTask reports whether s may create a task in projectID. A member
// needs to belong to the project's owning team; a project that does not exist
// has no owning team, so members are denied while clients are not.
func (e *Engine) CanCreateTask(s Session, projectID string) bool {
	switch s.Role {
	case models.RoleClient:
		return true
	case models.RoleMember:
		project, ok := e.snap.Projects[projectID]
		if !ok {
			return false
		}
		return e.IsTeamMember(project.TeamID, s.UserID)
	case models.RoleGuest:
		return false
	}
	return false
}

// CanEditTask reports whether s may edit task. Members may edit only the
// tasks assigned to them.
func (e *Engine) CanEditTask(s Session, task *models.Task) bool {
	switch s.Role {
	case models.RoleClient:
		return true
	case models.RoleMember:
		return task != nil && task.IsAssignedTo(s.UserID)
	case models.RoleGuest:
		return false
	}
	return false
}

// CanEditUser reports whether s may edit the user with id. Profiles are
// self-service only.
func (e *Engine) CanEditUser(s Session, id string) bool {
	return !s.IsZero() && s.Role.IsValid() && s.UserID == id
}

// Decide evaluates the matrix for (session, action, collection). target is
// the entity the action applies to: for task creation it carries the project
// id, for task edits it must be the stored task. target may be nil for team
// and project decisions.
func (e *Engine) Decide(s Session, action Action, c models.Collection, target models.Entity) Decision {
	if s.IsZero() || !action.IsValid() {
		return Deny
	}

	switch c {
	case models.CollectionTeams, models.CollectionProjects:
		return decision(manages(s.Role))
	case models.CollectionTasks:
		task, _ := target.(*models.Task)
		switch action {
		case ActionCreate:
			if task == nil {
				return Deny
			}
			return decision(e.CanCreateTask(s, task.ProjectID))
		case ActionEdit:
			return decision(e.CanEditTask(s, task))
		case ActionDelete:
			return decision(e.CanDeleteTask(s))
		}
	case models.CollectionUsers:
		switch action {
		case ActionEdit:
			if target == nil {
				return Deny
			}
			return decision(e.CanEditUser(s, target.Base().ID))
		case ActionCreate, ActionDelete:
			return decision(manages(s.Role))
		}
	}
	return Deny
}

// Authorize is Decide reported as an error: nil when allowed, a
// permission-denied error otherwise.
func (e *Engine) Authorize(s Session, action Action, c models.Collection, target models.Entity) error {
	if s.IsZero() {
		return apperrors.ErrSessionRequired
	}
	if e.Decide(s, action, c, target) == Allow {
		return nil
	}
	return apperrors.NewPermissionDenied(string(s.Role), string(action), c.Singular())
}

// Capabilities summarises what s may do in the current snapshot.
type Capabilities struct {
	Role              models.Role `json:"role"`
	ReadOnly          bool        `json:"read_only"`
	CanManageTeams    bool        `json:"can_manage_teams"`
	CanManageProjects bool        `json:"can_manage_projects"`
	CanDeleteTasks    bool        `json:"can_delete_tasks"`
	TaskProjectIDs    []string    `json:"task_project_ids"`
	EditableTaskIDs   []string    `json:"editable_task_ids"`
}

// Capabilities lists the allow/deny outcome of every rule for s.
func (e *Engine) Capabilities(s Session) Capabilities {
	caps := Capabilities{
		Role:              s.Role,
		CanManageTeams:    e.CanCreateTeam(s),
		CanManageProjects: e.CanCreateProject(s),
		CanDeleteTasks:    e.CanDeleteTask(s),
		TaskProjectIDs:    []string{},
		EditableTaskIDs:   []string{},
	}

	for _, p := range e.snap.ProjectList() {
		if e.CanCreateTask(s, p.ID) {
			caps.TaskProjectIDs = append(caps.TaskProjectIDs, p.ID)
		}
	}
	for _, t := range e.snap.TaskList() {
		t := t
		if e.CanEditTask(s, &t) {
			caps.EditableTaskIDs = append(caps.EditableTaskIDs, t.ID)
		}
	}
	caps.ReadOnly = s.Role != models.RoleClient && s.Role != models.RoleMember
	return caps
}

// Describe renders a decision request for logs.
func Describe(s Session, action Action, c models.Collection) string {
	return fmt.Sprintf("%s(%s) %s %s", s.UserID, s.Role, action, c.Singular())
}
