package db

import (
	"context"

	"github.com/jmoiron/sqlx"

	"tasktracker/internal/core/domain"
)

type userRow struct {
	ID       uint64 `db:"id"`
	Username string `db:"username"`
	Email    string `db:"email"`
}

func (r *Repository) GetUser(ctx context.Context, id uint64) (domain.User, error) {
	var row userRow
	if err := sqlx.GetContext(ctx, r.ext, &row, `SELECT id, username, email FROM users WHERE id = ?`, id); err != nil {
		return domain.User{}, notFoundOr(err, domain.ErrUserNotFound)
	}
	return domain.User{ID: row.ID, Username: row.Username, Email: row.Email}, nil
}
