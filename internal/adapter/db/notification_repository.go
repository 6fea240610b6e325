package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"tasktracker/internal/core/domain"
)

type notificationRow struct {
	ID        uint64    `db:"id"`
	TaskID    uint64    `db:"task_id"`
	UserID    uint64    `db:"user_id"`
	Message   string    `db:"message"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
}

func (r *Repository) CreateNotification(ctx context.Context, notification domain.Notification) (uint64, error) {
	return insert(ctx, r.ext,
		`INSERT INTO task_notifications (task_id, user_id, message, is_read, created_at) VALUES (?, ?, ?, ?, ?)`,
		notification.TaskID,
		notification.UserID,
		notification.Message,
		notification.IsRead,
		notification.CreatedAt,
	)
}

func (r *Repository) ListNotifications(ctx context.Context, userID uint64, unreadOnly bool) ([]domain.Notification, error) {
	query := `SELECT id, task_id, user_id, message, is_read, created_at FROM task_notifications WHERE user_id = ?`
	if unreadOnly {
		query += ` AND is_read = 0`
	}
	query += ` ORDER BY created_at DESC, id DESC`

	var rows []notificationRow
	if err := sqlx.SelectContext(ctx, r.ext, &rows, query, userID); err != nil {
		return nil, storageError(err)
	}

	notifications := make([]domain.Notification, 0, len(rows))
	for _, row := range rows {
		notifications = append(notifications, domain.Notification{
			ID:        row.ID,
			TaskID:    row.TaskID,
			UserID:    row.UserID,
			Message:   row.Message,
			IsRead:    row.IsRead,
			CreatedAt: row.CreatedAt,
		})
	}
	return notifications, nil
}

// MarkNotificationRead only touches notifications owned by userID.
func (r *Repository) MarkNotificationRead(ctx context.Context, userID, id uint64) error {
	var owner uint64
	err := sqlx.GetContext(ctx, r.ext, &owner, `SELECT user_id FROM task_notifications WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return notFoundOr(err, domain.ErrNotificationNotFound)
	}

	if _, err := r.ext.ExecContext(ctx, `UPDATE task_notifications SET is_read = 1 WHERE id = ?`, id); err != nil {
		return storageError(err)
	}
	return nil
}
