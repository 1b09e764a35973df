package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/repository"
)

type TaskUsecase struct {
	tasks repository.TaskRepository
}

func NewTaskUsecase(tasks repository.TaskRepository) *TaskUsecase {
	return &TaskUsecase{tasks: tasks}
}

// List returns the user's tasks, newest-created first.
func (u *TaskUsecase) List(ctx context.Context, userID string) ([]*domain.Task, error) {
	tasks, err := u.tasks.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (u *TaskUsecase) Create(ctx context.Context, userID, title string) (*domain.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, domain.ErrEmptyTitle
	}

	task, err := u.tasks.Create(ctx, &domain.Task{
		UserID:    userID,
		Title:     title,
		Completed: false,
	})
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

type UpdateTaskInput struct {
	Title     *string
	Completed *bool
}

// Update applies only the supplied fields. A supplied-but-blank title
// leaves the existing title in place. Ownership is checked by loading
// the task and comparing the owner before the single write; there is no
// conditional-write guard, concurrent updates are last-writer-wins.
func (u *TaskUsecase) Update(ctx context.Context, userID, taskID string, input UpdateTaskInput) (*domain.Task, error) {
	task, err := u.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	if task.UserID != userID {
		return nil, domain.ErrNotOwner
	}

	if input.Title != nil && strings.TrimSpace(*input.Title) != "" {
		task.Title = *input.Title
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}

	updated, err := u.tasks.Update(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return updated, nil
}

// Delete hard-deletes the task after the same load-then-compare
// ownership check as Update.
func (u *TaskUsecase) Delete(ctx context.Context, userID, taskID string) error {
	task, err := u.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return domain.ErrTaskNotFound
		}
		return fmt.Errorf("find task: %w", err)
	}
	if task.UserID != userID {
		return domain.ErrNotOwner
	}

	if err := u.tasks.Delete(ctx, task.ID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
