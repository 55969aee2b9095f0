package repository

import (
	"teamtrack-backend/internal/database/models"

	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Save inserts team or overwrites the row with its id
func (r *TeamRepository) Save(team *models.Team) error {
	return upsertRow(r.db, team)
}

// GetAll retrieves every team ordered by creation time
func (r *TeamRepository) GetAll() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Order("created_at, id").Find(&teams).Error
	return teams, err
}

// ReplaceAll makes the teams table hold exactly teams
func (r *TeamRepository) ReplaceAll(teams []models.Team) error {
	ids := make([]string, 0, len(teams))
	for _, t := range teams {
		ids = append(ids, t.ID)
	}
	return replaceRows(r.db, &models.Team{}, teams, ids)
}

// Delete deletes a team
func (r *TeamRepository) Delete(id string) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}
