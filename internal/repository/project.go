package repository

import (
	"teamtrack-backend/internal/database/models"

	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Save inserts project or overwrites the row with its id
func (r *ProjectRepository) Save(project *models.Project) error {
	return upsertRow(r.db, project)
}

// GetAll retrieves every project ordered by creation time
func (r *ProjectRepository) GetAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("created_at, id").Find(&projects).Error
	return projects, err
}

// ReplaceAll makes the projects table hold exactly projects
func (r *ProjectRepository) ReplaceAll(projects []models.Project) error {
	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	return replaceRows(r.db, &models.Project{}, projects, ids)
}

// Delete deletes a project
func (r *ProjectRepository) Delete(id string) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}
