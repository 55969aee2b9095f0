package models

// Task belongs to exactly one project and is optionally assigned to a user.
type Task struct {
	BaseModel
	Title       string       `json:"title" gorm:"not null;size:200"`
	ProjectID   string       `json:"project_id" gorm:"size:64;not null;index"`
	AssigneeID  *string      `json:"assignee_id" gorm:"size:64;index"`
	Priority    TaskPriority `json:"priority" gorm:"type:varchar(20);not null;default:'Medium'"`
	Status      TaskStatus   `json:"status" gorm:"type:varchar(20);not null;default:'Open'"`
	Description string       `json:"description" gorm:"type:text"`
	DueDate     string       `json:"due_date,omitempty" gorm:"size:10"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// Collection returns the collection tasks are stored in
func (Task) Collection() Collection {
	return CollectionTasks
}

// IsAssignedTo reports whether the task's assignee is userID.
func (t *Task) IsAssignedTo(userID string) bool {
	return t.AssigneeID != nil && *t.AssigneeID == userID
}
