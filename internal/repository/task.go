package repository

import (
	"teamtrack-backend/internal/database/models"

	"gorm.io/gorm"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Save inserts task or overwrites the row with its id
func (r *TaskRepository) Save(task *models.Task) error {
	return upsertRow(r.db, task)
}

// GetAll retrieves every task ordered by creation time
func (r *TaskRepository) GetAll() ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Order("created_at, id").Find(&tasks).Error
	return tasks, err
}

// ReplaceAll makes the tasks table hold exactly tasks
func (r *TaskRepository) ReplaceAll(tasks []models.Task) error {
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return replaceRows(r.db, &models.Task{}, tasks, ids)
}

// Delete deletes a task
func (r *TaskRepository) Delete(id string) error {
	return r.db.Delete(&models.Task{}, "id = ?", id).Error
}
