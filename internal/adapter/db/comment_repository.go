package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"tasktracker/internal/core/domain"
)

const selectCommentColumns = `
SELECT
  cm.id,
  cm.task_id,
  cm.author_id,
  u.username AS author_username,
  u.email AS author_email,
  cm.parent_id,
  cm.content,
  cm.created_at
FROM comments cm
JOIN users u ON u.id = cm.author_id
`

type commentRow struct {
	ID             uint64        `db:"id"`
	TaskID         uint64        `db:"task_id"`
	AuthorID       uint64        `db:"author_id"`
	AuthorUsername string        `db:"author_username"`
	AuthorEmail    string        `db:"author_email"`
	ParentID       sql.NullInt64 `db:"parent_id"`
	Content        string        `db:"content"`
	CreatedAt      time.Time     `db:"created_at"`
}

func (r *Repository) CreateComment(ctx context.Context, comment domain.Comment) (uint64, error) {
	return insert(ctx, r.ext,
		`INSERT INTO comments (task_id, author_id, parent_id, content, created_at) VALUES (?, ?, ?, ?, ?)`,
		comment.TaskID,
		comment.Author.ID,
		nullableID(comment.ParentID),
		comment.Content,
		comment.CreatedAt,
	)
}

func (r *Repository) GetComment(ctx context.Context, id uint64) (domain.Comment, error) {
	var row commentRow
	if err := sqlx.GetContext(ctx, r.ext, &row, selectCommentColumns+`WHERE cm.id = ?`, id); err != nil {
		return domain.Comment{}, notFoundOr(err, domain.ErrCommentNotFound)
	}
	return mapCommentRowToDomain(row), nil
}

// ListComments returns the comments of a task oldest first, flat.
func (r *Repository) ListComments(ctx context.Context, taskID uint64) ([]domain.Comment, error) {
	var rows []commentRow
	query := selectCommentColumns + `WHERE cm.task_id = ? ORDER BY cm.created_at ASC, cm.id ASC`
	if err := sqlx.SelectContext(ctx, r.ext, &rows, query, taskID); err != nil {
		return nil, storageError(err)
	}

	comments := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, mapCommentRowToDomain(row))
	}
	return comments, nil
}

func mapCommentRowToDomain(row commentRow) domain.Comment {
	return domain.Comment{
		ID:     row.ID,
		TaskID: row.TaskID,
		Author: domain.User{
			ID:       row.AuthorID,
			Username: row.AuthorUsername,
			Email:    row.AuthorEmail,
		},
		ParentID:  idPointer(row.ParentID),
		Content:   row.Content,
		CreatedAt: row.CreatedAt,
	}
}
