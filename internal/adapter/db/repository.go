package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

// Repository implements every storage port on top of either the shared
// connection pool or a single transaction.
type Repository struct {
	db  *sqlx.DB
	ext sqlx.ExtContext
}

var (
	_ ports.Store      = (*Repository)(nil)
	_ ports.Transactor = (*Repository)(nil)
)

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db, ext: db}
}

func (r *Repository) WithinTx(ctx context.Context, fn func(ctx context.Context, store ports.Store) error) error {
	if _, inTx := r.ext.(*sqlx.Tx); inTx {
		return fn(ctx, r)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return storageError(err)
	}

	if err := fn(ctx, &Repository{db: r.db, ext: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			zap.L().Warn("failed to rollback transaction", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return storageError(err)
	}
	return nil
}

func storageError(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
}

// notFoundOr maps sql.ErrNoRows to notFound and wraps anything else as a
// storage failure.
func notFoundOr(err, notFound error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	return storageError(err)
}

func insert(ctx context.Context, ext sqlx.ExtContext, query string, args ...any) (uint64, error) {
	result, err := ext.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, storageError(err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, storageError(err)
	}
	return uint64(id), nil
}

func nullableID(id *uint64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*id), Valid: true}
}

func nullableTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}

func timePointer(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	t := value.Time
	return &t
}

func idPointer(value sql.NullInt64) *uint64 {
	if !value.Valid {
		return nil
	}
	id := uint64(value.Int64)
	return &id
}
