package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/taskboard/taskboard-go/internal/model"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskRepository handles task persistence operations.
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task owned by task.UserID.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// ListByUser retrieves all tasks owned by a user, newest first.
func (r *TaskRepository) ListByUser(ctx context.Context, userID int64) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetByID retrieves a task by its ID regardless of owner. Ownership is
// decided by the service layer so that "absent" and "not owned" collapse
// into the same outward response.
func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// Update applies the given column changes to a task and returns the fresh
// record.
func (r *TaskRepository) Update(ctx context.Context, id int64, changes map[string]any) (*model.Task, error) {
	if err := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).Updates(changes).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a task by ID.
func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.Task{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
