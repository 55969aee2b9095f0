package models

// Team groups users. Members holds user ids; order carries no meaning.
type Team struct {
	BaseModel
	Name    string   `json:"name" gorm:"not null;size:100"`
	Members []string `json:"members" gorm:"serializer:json;type:text"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// Collection returns the collection teams are stored in
func (Team) Collection() Collection {
	return CollectionTeams
}

// HasMember reports whether userID is in the team.
func (t *Team) HasMember(userID string) bool {
	for _, id := range t.Members {
		if id == userID {
			return true
		}
	}
	return false
}
