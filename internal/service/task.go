package service

import (
	"context"
	"errors"

	"github.com/taskboard/taskboard-go/internal/model"
	"github.com/taskboard/taskboard-go/internal/repository"
)

// ErrTaskNotFound covers both a missing task and a task owned by someone
// else. Collapsing the two keeps non-owners from probing task existence.
var ErrTaskNotFound = errors.New("task not found or access denied")

// TaskService handles task business logic and the ownership checks on every
// single-task operation.
type TaskService struct {
	repo *repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// List returns all tasks owned by the caller, newest first.
func (s *TaskService) List(ctx context.Context, userID int64) ([]model.Task, error) {
	tasks, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

// Create validates and persists a new task owned by the caller. Status
// defaults to pending, description to empty.
func (s *TaskService) Create(ctx context.Context, userID int64, req model.CreateTaskRequest) (*model.Task, error) {
	fields := map[string][]string{}
	if req.Title == "" {
		addFieldError(fields, "title", "title must not be empty")
	}
	if req.Status != "" && !req.Status.Valid() {
		addFieldError(fields, "status", "status must be pending, in_progress, or completed")
	}
	if err := newValidationError(fields); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.StatusPending
	}

	task := &model.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Update applies a partial update to a task after the ownership check.
func (s *TaskService) Update(ctx context.Context, userID, taskID int64, req model.UpdateTaskRequest) (*model.Task, error) {
	fields := map[string][]string{}
	if req.Status != nil && !req.Status.Valid() {
		addFieldError(fields, "status", "status must be pending, in_progress, or completed")
	}
	if err := newValidationError(fields); err != nil {
		return nil, err
	}

	task, err := s.authorize(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	if req.Title != nil {
		changes["title"] = *req.Title
	}
	if req.Description != nil {
		changes["description"] = *req.Description
	}
	if req.Status != nil {
		changes["status"] = *req.Status
	}
	if len(changes) == 0 {
		return task, nil
	}

	return s.repo.Update(ctx, taskID, changes)
}

// Delete removes a task after the ownership check.
func (s *TaskService) Delete(ctx context.Context, userID, taskID int64) error {
	if _, err := s.authorize(ctx, userID, taskID); err != nil {
		return err
	}

	err := s.repo.Delete(ctx, taskID)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return ErrTaskNotFound
	}
	return err
}

// authorize loads a task and denies access unless it exists and is owned by
// the caller. Both failure modes surface as the same ErrTaskNotFound.
func (s *TaskService) authorize(ctx context.Context, userID, taskID int64) (*model.Task, error) {
	task, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	if task.UserID != userID {
		return nil, ErrTaskNotFound
	}
	return task, nil
}
