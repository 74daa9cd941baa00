package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/taskboard/taskboard-go/internal/model"
)

func newTestDB(t *testing.T) *TaskRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := NewDB("sqlite", dsn)
	if err != nil {
		t.Fatalf("NewDB() unexpected error: %v", err)
	}
	return NewTaskRepository(db)
}

func TestListByUserNewestFirst(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, title := range []string{"oldest", "middle", "newest"} {
		task := &model.Task{
			UserID:    1,
			Title:     title,
			Status:    model.StatusPending,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(ctx, task); err != nil {
			t.Fatalf("Create(%q) unexpected error: %v", title, err)
		}
	}

	tasks, err := repo.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListByUser() unexpected error: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("len(tasks) = %d, want 3", len(tasks))
	}
	for i, want := range []string{"newest", "middle", "oldest"} {
		if tasks[i].Title != want {
			t.Errorf("tasks[%d].Title = %q, want %q", i, tasks[i].Title, want)
		}
	}
}

func TestListByUserScoping(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	for userID := int64(1); userID <= 2; userID++ {
		task := &model.Task{UserID: userID, Title: fmt.Sprintf("task of %d", userID), Status: model.StatusPending}
		if err := repo.Create(ctx, task); err != nil {
			t.Fatalf("Create() unexpected error: %v", err)
		}
	}

	tasks, err := repo.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListByUser() unexpected error: %v", err)
	}
	if len(tasks) != 1 || tasks[0].UserID != 1 {
		t.Errorf("unexpected tasks: %+v", tasks)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	repo := newTestDB(t)

	_, err := repo.GetByID(context.Background(), 999)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("GetByID() error = %v, want ErrTaskNotFound", err)
	}
}

func TestDeleteMissing(t *testing.T) {
	repo := newTestDB(t)

	err := repo.Delete(context.Background(), 999)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Delete() error = %v, want ErrTaskNotFound", err)
	}
}

func TestUpdateChangesColumns(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	task := &model.Task{UserID: 1, Title: "before", Status: model.StatusPending}
	if err := repo.Create(ctx, task); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	updated, err := repo.Update(ctx, task.ID, map[string]any{"title": "after", "status": model.StatusCompleted})
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if updated.Title != "after" || updated.Status != model.StatusCompleted {
		t.Errorf("unexpected task after update: %+v", updated)
	}
}
