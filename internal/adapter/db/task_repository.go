package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"tasktracker/internal/core/domain"
)

const selectTaskColumns = `
SELECT
  t.id,
  t.title,
  t.description,
  t.status,
  t.priority,
  t.due_date,
  t.start_time,
  t.end_time,
  t.time_taken,
  t.is_template,
  t.parent_template_id,
  t.created_at,
  t.updated_at,
  t.category_id,
  c.name AS category_name,
  c.description AS category_description,
  c.color AS category_color,
  t.assigned_to,
  ua.username AS assigned_to_username,
  ua.email AS assigned_to_email,
  t.assigned_by,
  ub.username AS assigned_by_username,
  ub.email AS assigned_by_email
FROM tasks t
JOIN users ua ON ua.id = t.assigned_to
JOIN users ub ON ub.id = t.assigned_by
LEFT JOIN categories c ON c.id = t.category_id
`

const getTaskQuery = selectTaskColumns + `WHERE t.id = ?`

const listTemplatesQuery = selectTaskColumns + `WHERE t.is_template = 1
ORDER BY t.created_at DESC, t.id DESC`

const insertTaskQuery = `
INSERT INTO tasks (
  title, description, status, priority, category_id, assigned_to, assigned_by,
  due_date, start_time, end_time, time_taken, is_template, parent_template_id,
  created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const updateTaskQuery = `
UPDATE tasks SET
  title = ?,
  description = ?,
  status = ?,
  priority = ?,
  category_id = ?,
  due_date = ?,
  start_time = ?,
  end_time = ?,
  time_taken = ?,
  updated_at = ?
WHERE id = ?
`

type taskRow struct {
	ID                  uint64         `db:"id"`
	Title               string         `db:"title"`
	Description         string         `db:"description"`
	Status              string         `db:"status"`
	Priority            string         `db:"priority"`
	DueDate             sql.NullTime   `db:"due_date"`
	StartTime           sql.NullTime   `db:"start_time"`
	EndTime             sql.NullTime   `db:"end_time"`
	TimeTaken           sql.NullInt64  `db:"time_taken"`
	IsTemplate          bool           `db:"is_template"`
	ParentTemplateID    sql.NullInt64  `db:"parent_template_id"`
	CreatedAt           time.Time      `db:"created_at"`
	UpdatedAt           time.Time      `db:"updated_at"`
	CategoryID          sql.NullInt64  `db:"category_id"`
	CategoryName        sql.NullString `db:"category_name"`
	CategoryDescription sql.NullString `db:"category_description"`
	CategoryColor       sql.NullString `db:"category_color"`
	AssignedTo          uint64         `db:"assigned_to"`
	AssignedToUsername  string         `db:"assigned_to_username"`
	AssignedToEmail     string         `db:"assigned_to_email"`
	AssignedBy          uint64         `db:"assigned_by"`
	AssignedByUsername  string         `db:"assigned_by_username"`
	AssignedByEmail     string         `db:"assigned_by_email"`
}

type statusCountRow struct {
	Status string `db:"status"`
	Total  int    `db:"total"`
}

func (r *Repository) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	var row taskRow
	if err := sqlx.GetContext(ctx, r.ext, &row, getTaskQuery, id); err != nil {
		return domain.Task{}, notFoundOr(err, domain.ErrTaskNotFound)
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *Repository) CreateTask(ctx context.Context, task domain.Task) (uint64, error) {
	var categoryID *uint64
	if task.Category != nil {
		categoryID = &task.Category.ID
	}

	return insert(ctx, r.ext, insertTaskQuery,
		task.Title,
		task.Description,
		string(task.Status),
		string(task.Priority),
		nullableID(categoryID),
		task.AssignedTo.ID,
		task.AssignedBy.ID,
		nullableTime(task.DueDate),
		nullableTime(task.StartTime),
		nullableTime(task.EndTime),
		durationToMicros(task.TimeTaken),
		task.IsTemplate,
		nullableID(task.ParentTemplateID),
		task.CreatedAt,
		task.UpdatedAt,
	)
}

func (r *Repository) UpdateTask(ctx context.Context, task domain.Task) error {
	var categoryID *uint64
	if task.Category != nil {
		categoryID = &task.Category.ID
	}

	result, err := r.ext.ExecContext(ctx, updateTaskQuery,
		task.Title,
		task.Description,
		string(task.Status),
		string(task.Priority),
		nullableID(categoryID),
		nullableTime(task.DueDate),
		nullableTime(task.StartTime),
		nullableTime(task.EndTime),
		durationToMicros(task.TimeTaken),
		task.UpdatedAt,
		task.ID,
	)
	if err != nil {
		return storageError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storageError(err)
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *Repository) SearchTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	query, args := buildSearchTasksQuery(filter)
	return r.selectTasks(ctx, query, args...)
}

func (r *Repository) ListTemplates(ctx context.Context) ([]domain.Task, error) {
	return r.selectTasks(ctx, listTemplatesQuery)
}

// CountTasksByStatus counts non-template tasks, optionally only the ones
// assigned to a given user.
func (r *Repository) CountTasksByStatus(ctx context.Context, assignedTo *uint64) (domain.StatusCounts, error) {
	query := `SELECT status, COUNT(*) AS total FROM tasks WHERE is_template = 0`
	var args []any
	if assignedTo != nil {
		query += ` AND assigned_to = ?`
		args = append(args, *assignedTo)
	}
	query += ` GROUP BY status`

	var rows []statusCountRow
	if err := sqlx.SelectContext(ctx, r.ext, &rows, query, args...); err != nil {
		return nil, storageError(err)
	}

	counts := domain.NewStatusCounts()
	for _, row := range rows {
		counts[domain.TaskStatus(row.Status)] = row.Total
	}
	return counts, nil
}

func (r *Repository) selectTasks(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	var rows []taskRow
	if err := sqlx.SelectContext(ctx, r.ext, &rows, query, args...); err != nil {
		return nil, storageError(err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks, nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:               row.ID,
		Title:            row.Title,
		Description:      row.Description,
		Status:           domain.TaskStatus(row.Status),
		Priority:         domain.TaskPriority(row.Priority),
		DueDate:          timePointer(row.DueDate),
		StartTime:        timePointer(row.StartTime),
		EndTime:          timePointer(row.EndTime),
		IsTemplate:       row.IsTemplate,
		ParentTemplateID: idPointer(row.ParentTemplateID),
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
		AssignedTo: domain.User{
			ID:       row.AssignedTo,
			Username: row.AssignedToUsername,
			Email:    row.AssignedToEmail,
		},
		AssignedBy: domain.User{
			ID:       row.AssignedBy,
			Username: row.AssignedByUsername,
			Email:    row.AssignedByEmail,
		},
	}

	if row.TimeTaken.Valid {
		value := time.Duration(row.TimeTaken.Int64) * time.Microsecond
		task.TimeTaken = &value
	}

	if row.CategoryID.Valid && row.CategoryName.Valid {
		task.Category = &domain.Category{
			ID:          uint64(row.CategoryID.Int64),
			Name:        row.CategoryName.String,
			Description: row.CategoryDescription.String,
			Color:       row.CategoryColor.String,
		}
	}

	return task
}

func durationToMicros(value *time.Duration) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: value.Microseconds(), Valid: true}
}
