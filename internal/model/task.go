package model

import "time"

// TaskStatus enumerates the allowed task states. Transitions are free-form:
// an owner may set any status at any time.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task represents a unit of work owned by a single user.
type Task struct {
	ID          int64      `gorm:"primaryKey" json:"id"`
	UserID      int64      `gorm:"index;not null" json:"user_id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `gorm:"type:varchar(20);default:pending" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateTaskRequest represents a task creation request.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
}

// UpdateTaskRequest represents a partial task update. Nil fields are left
// untouched.
type UpdateTaskRequest struct {
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	Status      *TaskStatus `json:"status"`
}

// TaskResponse wraps a single task for create/update responses.
type TaskResponse struct {
	Task    Task `json:"task"`
	Success bool `json:"success"`
}

// TaskListResponse wraps the caller's tasks, newest first.
type TaskListResponse struct {
	Tasks   []Task `json:"tasks"`
	Success bool   `json:"success"`
}

// MessageResponse carries a confirmation message, e.g. after a delete.
type MessageResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}
