// Package seed loads the sample workspace shown to first-time users.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"teamtrack-backend/internal/database/models"
	"teamtrack-backend/internal/logger"

	"gopkg.in/yaml.v3"
)

//go:embed sample_data.yaml
var sampleData []byte

// Simple structures that directly match the sample file
type UserData struct {
	ID        string    `yaml:"id"`
	Name      string    `yaml:"name"`
	Role      string    `yaml:"role"`
	CreatedAt time.Time `yaml:"created_at"`
}

type TeamData struct {
	ID        string    `yaml:"id"`
	Name      string    `yaml:"name"`
	Members   []string  `yaml:"members"`
	CreatedAt time.Time `yaml:"created_at"`
}

type ProjectData struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	TeamID      string    `yaml:"team_id"`
	Description string    `yaml:"description"`
	Status      string    `yaml:"status"`
	Deadline    string    `yaml:"deadline"`
	CreatedAt   time.Time `yaml:"created_at"`
}

type TaskData struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	ProjectID   string    `yaml:"project_id"`
	AssigneeID  string    `yaml:"assignee_id"`
	Priority    string    `yaml:"priority"`
	Status      string    `yaml:"status"`
	DueDate     string    `yaml:"due_date"`
	Description string    `yaml:"description"`
	CreatedAt   time.Time `yaml:"created_at"`
}

// Data is the parsed sample file
type Data struct {
	Users    []UserData    `yaml:"users"`
	Teams    []TeamData    `yaml:"teams"`
	Projects []ProjectData `yaml:"projects"`
	Tasks    []TaskData    `yaml:"tasks"`
}

// Target is the part of the store the seeder needs
type Target interface {
	IsEmpty() bool
	Replace(ctx context.Context, snap *models.Snapshot) error
}

// Parse decodes raw YAML sample data into a snapshot
func Parse(raw []byte) (*models.Snapshot, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse sample data: %w", err)
	}
	return data.Snapshot()
}

// Sample returns the embedded sample workspace
func Sample() (*models.Snapshot, error) {
	return Parse(sampleData)
}

// Snapshot converts the parsed data, checking enum values
func (d *Data) Snapshot() (*models.Snapshot, error) {
	users := make([]models.User, 0, len(d.Users))
	for _, u := range d.Users {
		role, err := models.ParseRole(u.Role)
		if err != nil {
			return nil, fmt.Errorf("user %s: %w", u.ID, err)
		}
		users = append(users, models.User{BaseModel: base(u.ID, u.CreatedAt), Name: u.Name, Role: role})
	}

	teams := make([]models.Team, 0, len(d.Teams))
	for _, t := range d.Teams {
		members := t.Members
		if members == nil {
			members = []string{}
		}
		teams = append(teams, models.Team{BaseModel: base(t.ID, t.CreatedAt), Name: t.Name, Members: members})
	}

	projects := make([]models.Project, 0, len(d.Projects))
	for _, p := range d.Projects {
		status := models.ProjectStatus(p.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("project %s: unknown status %q", p.ID, p.Status)
		}
		projects = append(projects, models.Project{
			BaseModel:   base(p.ID, p.CreatedAt),
			Name:        p.Name,
			TeamID:      p.TeamID,
			Description: p.Description,
			Status:      status,
			Deadline:    p.Deadline,
		})
	}

	tasks := make([]models.Task, 0, len(d.Tasks))
	for _, t := range d.Tasks {
		priority, status := models.TaskPriority(t.Priority), models.TaskStatus(t.Status)
		if !priority.IsValid() || !status.IsValid() {
			return nil, fmt.Errorf("task %s: unknown priority %q or status %q", t.ID, t.Priority, t.Status)
		}
		task := models.Task{
			BaseModel:   base(t.ID, t.CreatedAt),
			Title:       t.Title,
			ProjectID:   t.ProjectID,
			Priority:    priority,
			Status:      status,
			DueDate:     t.DueDate,
			Description: t.Description,
		}
		if t.AssigneeID != "" {
			assignee := t.AssigneeID
			task.AssigneeID = &assignee
		}
		tasks = append(tasks, task)
	}

	return models.SnapshotOf(users, teams, projects, tasks), nil
}

// LoadIfEmpty writes the sample workspace into target when it holds nothing.
// It reports whether data was loaded.
func LoadIfEmpty(ctx context.Context, target Target) (bool, error) {
	if !target.IsEmpty() {
		return false, nil
	}
	snap, err := Sample()
	if err != nil {
		return false, err
	}
	if err := target.Replace(ctx, snap); err != nil {
		return false, fmt.Errorf("failed to load sample data: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"users":    len(snap.Users),
		"teams":    len(snap.Teams),
		"projects": len(snap.Projects),
		"tasks":    len(snap.Tasks),
	}).Info("Sample data loaded for first-time users")
	return true, nil
}

func base(id string, createdAt time.Time) models.BaseModel {
	createdAt = createdAt.UTC()
	return models.BaseModel{ID: id, CreatedAt: createdAt, UpdatedAt: createdAt}
}
