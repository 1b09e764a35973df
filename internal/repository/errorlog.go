package repository

import (
	"context"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

type ErrorLogRepository interface {
	Create(ctx context.Context, entry *domain.ErrorLog) error

	// DeleteOlderThan prunes entries created before cutoff. Returns the
	// number of rows removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
