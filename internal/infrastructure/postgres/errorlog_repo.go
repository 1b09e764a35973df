package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskdeck/taskdeck/internal/domain"
)

type ErrorLogRepository struct {
	pool *pgxpool.Pool
}

func NewErrorLogRepository(pool *pgxpool.Pool) *ErrorLogRepository {
	return &ErrorLogRepository{pool: pool}
}

func (r *ErrorLogRepository) Create(ctx context.Context, entry *domain.ErrorLog) error {
	query := `
		INSERT INTO error_logs (message, stack, route, method)
		VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, query, entry.Message, entry.Stack, entry.Route, entry.Method)
	if err != nil {
		return fmt.Errorf("insert error log: %w", err)
	}
	return nil
}

func (r *ErrorLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM error_logs WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune error logs: %w", err)
	}
	return tag.RowsAffected(), nil
}
