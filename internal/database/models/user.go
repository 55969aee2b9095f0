package models

// User is a person who can log in to the tracker.
type User struct {
	BaseModel
	Name string `json:"name" gorm:"not null;size:100;index"`
	Role Role   `json:"role" gorm:"type:varchar(20);not null;default:'member'"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// Collection returns the collection users are stored in
func (User) Collection() Collection {
	return CollectionUsers
}
