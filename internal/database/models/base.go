package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides the identity and lifecycle fields shared by every entity.
// Timestamps are owned by the entity store, so GORM's auto tracking is off.
type BaseModel struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
}

// Base exposes the embedded BaseModel so callers can work with any entity generically.
func (base *BaseModel) Base() *BaseModel {
	return base
}

// BeforeCreate sets the ID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == "" {
		base.ID = uuid.NewString()
	}
	return nil
}

// Entity is implemented by User, Team, Project and Task.
type Entity interface {
	Base() *BaseModel
	Collection() Collection
}
