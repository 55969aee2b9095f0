package repository

import (
	"teamtrack-backend/internal/database/models"

	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Save inserts user or overwrites the row with its id
func (r *UserRepository) Save(user *models.User) error {
	return upsertRow(r.db, user)
}

// GetAll retrieves every user ordered by creation time
func (r *UserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at, id").Find(&users).Error
	return users, err
}

// ReplaceAll makes the users table hold exactly users
func (r *UserRepository) ReplaceAll(users []models.User) error {
	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return replaceRows(r.db, &models.User{}, users, ids)
}

// Delete deletes a user
func (r *UserRepository) Delete(id string) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}
