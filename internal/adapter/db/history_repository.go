package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"tasktracker/internal/core/domain"
)

const insertHistoryQuery = `
INSERT INTO task_history (task_id, user_id, action, details, created_at)
VALUES (?, ?, ?, ?, ?)
`

const listHistoryQuery = `
SELECT
  h.id,
  h.task_id,
  h.user_id,
  u.username,
  u.email,
  h.action,
  h.details,
  h.created_at
FROM task_history h
JOIN users u ON u.id = h.user_id
WHERE h.task_id = ?
ORDER BY h.created_at DESC, h.id DESC
`

type historyRow struct {
	ID        uint64    `db:"id"`
	TaskID    uint64    `db:"task_id"`
	UserID    uint64    `db:"user_id"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	Action    string    `db:"action"`
	Details   string    `db:"details"`
	CreatedAt time.Time `db:"created_at"`
}

// AppendHistory is the only write path for task_history; entries are never
// updated or deleted.
func (r *Repository) AppendHistory(ctx context.Context, entry domain.HistoryEntry) (uint64, error) {
	details := entry.Details
	if details == nil {
		details = domain.HistoryDetails{}
	}
	payload, err := json.Marshal(details)
	if err != nil {
		return 0, fmt.Errorf("%w: encode history details: %w", domain.ErrInvalidInput, err)
	}

	return insert(ctx, r.ext, insertHistoryQuery,
		entry.TaskID,
		entry.User.ID,
		string(entry.Action),
		string(payload),
		entry.CreatedAt,
	)
}

func (r *Repository) ListHistory(ctx context.Context, taskID uint64) ([]domain.HistoryEntry, error) {
	var rows []historyRow
	if err := sqlx.SelectContext(ctx, r.ext, &rows, listHistoryQuery, taskID); err != nil {
		return nil, storageError(err)
	}

	entries := make([]domain.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := mapHistoryRowToDomain(row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func mapHistoryRowToDomain(row historyRow) (domain.HistoryEntry, error) {
	details := domain.HistoryDetails{}
	if row.Details != "" {
		if err := json.Unmarshal([]byte(row.Details), &details); err != nil {
			return domain.HistoryEntry{}, storageError(fmt.Errorf("decode history %d details: %w", row.ID, err))
		}
	}

	return domain.HistoryEntry{
		ID:     row.ID,
		TaskID: row.TaskID,
		User: domain.User{
			ID:       row.UserID,
			Username: row.Username,
			Email:    row.Email,
		},
		Action:    domain.HistoryAction(row.Action),
		Details:   details,
		CreatedAt: row.CreatedAt,
	}, nil
}
