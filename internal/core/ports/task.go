package ports

import (
	"context"
	"time"

	"tasktracker/internal/core/domain"
)

type TaskRepository interface {
	GetTask(ctx context.Context, id uint64) (domain.Task, error)
	CreateTask(ctx context.Context, task domain.Task) (uint64, error)
	UpdateTask(ctx context.Context, task domain.Task) error
	SearchTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	ListTemplates(ctx context.Context) ([]domain.Task, error)
	CountTasksByStatus(ctx context.Context, assignedTo *uint64) (domain.StatusCounts, error)
}

type HistoryRepository interface {
	AppendHistory(ctx context.Context, entry domain.HistoryEntry) (uint64, error)
	ListHistory(ctx context.Context, taskID uint64) ([]domain.HistoryEntry, error)
}

type CommentRepository interface {
	CreateComment(ctx context.Context, comment domain.Comment) (uint64, error)
	GetComment(ctx context.Context, id uint64) (domain.Comment, error)
	ListComments(ctx context.Context, taskID uint64) ([]domain.Comment, error)
}

type CategoryRepository interface {
	GetCategory(ctx context.Context, id uint64) (domain.Category, error)
	CreateCategory(ctx context.Context, category domain.Category) (uint64, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	DeleteCategory(ctx context.Context, id uint64) error
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification domain.Notification) (uint64, error)
	ListNotifications(ctx context.Context, userID uint64, unreadOnly bool) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, id uint64) error
}

type UserRepository interface {
	GetUser(ctx context.Context, id uint64) (domain.User, error)
}

// Store groups every repository backed by the same connection or transaction.
type Store interface {
	TaskRepository
	HistoryRepository
	CommentRepository
	CategoryRepository
	NotificationRepository
	UserRepository
}

// Transactor runs fn inside a single transaction. The transaction is
// committed when fn returns nil and rolled back otherwise.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, store Store) error) error
}

type TaskService interface {
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	GetTask(ctx context.Context, id uint64) (domain.Task, error)
	UpdateTask(ctx context.Context, id, actorID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	AcceptTask(ctx context.Context, id, actorID uint64) (domain.Task, error)
	RejectTask(ctx context.Context, id, actorID uint64) (domain.Task, error)
	CompleteTask(ctx context.Context, id, actorID uint64) (domain.Task, error)
	InstantiateTemplate(ctx context.Context, templateID, assignedTo uint64, dueDate *time.Time) (domain.Task, error)
	ListTemplates(ctx context.Context) ([]domain.Task, error)
	SearchTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	RecordHistory(ctx context.Context, taskID, userID uint64, action domain.HistoryAction, details domain.HistoryDetails) (domain.HistoryEntry, error)
	ListHistory(ctx context.Context, taskID uint64) ([]domain.HistoryEntry, error)
	AddComment(ctx context.Context, input domain.CreateCommentInput) (domain.Comment, error)
	ListComments(ctx context.Context, taskID uint64) ([]domain.Comment, error)
	Dashboard(ctx context.Context, userID uint64) (domain.Dashboard, error)
}

type CategoryService interface {
	CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	DeleteCategory(ctx context.Context, id uint64) error
}

type NotificationService interface {
	ListNotifications(ctx context.Context, userID uint64, unreadOnly bool) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, id uint64) error
}

// Messenger renders user-facing notification texts.
type Messenger interface {
	Message(id string, data map[string]any) string
}
