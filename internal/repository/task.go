package repository

import (
	"context"

	"github.com/taskdeck/taskdeck/internal/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// ListByOwner returns the user's tasks, newest-created first.
	ListByOwner(ctx context.Context, userID string) ([]*domain.Task, error)

	// FindByID loads a task regardless of owner. The ownership check
	// happens in the usecase (fetch, compare owner, branch).
	FindByID(ctx context.Context, id string) (*domain.Task, error)

	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}
