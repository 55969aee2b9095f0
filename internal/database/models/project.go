package models

// Project belongs to exactly one team.
type Project struct {
	BaseModel
	Name        string        `json:"name" gorm:"not null;size:200"`
	TeamID      string        `json:"team_id" gorm:"size:64;not null;index"`
	Description string        `json:"description" gorm:"type:text"`
	Status      ProjectStatus `json:"status" gorm:"type:varchar(20);not null;default:'Planned'"`
	Deadline    string        `json:"deadline,omitempty" gorm:"size:10"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}

// Collection returns the collection projects are stored in
func (Project) Collection() Collection {
	return CollectionProjects
}
