package domain

import "time"

type Task struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      string    `json:"userId" gorm:"not null;index;size:255"`
	Title       string    `json:"title" gorm:"not null;size:200"`
	Description *string   `json:"description" gorm:"size:5000"`
	Completed   bool      `json:"completed" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TaskStatus filters task listings.
type TaskStatus string

const (
	TaskStatusAll       TaskStatus = "all"
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusAll, TaskStatusPending, TaskStatusCompleted:
		return true
	}
	return false
}
