package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

// Notification message ids, rendered by the messenger.
const (
	notifyTaskAssigned  = "notifyTaskAssigned"
	notifyTaskAccepted  = "notifyTaskAccepted"
	notifyTaskRejected  = "notifyTaskRejected"
	notifyTaskCompleted = "notifyTaskCompleted"
	notifyTaskCommented = "notifyTaskCommented"
)

type TaskService struct {
	store      ports.Store
	transactor ports.Transactor
	messenger  ports.Messenger
	now        func() time.Time
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(store ports.Store, transactor ports.Transactor, messenger ports.Messenger) *TaskService {
	return &TaskService{
		store:      store,
		transactor: transactor,
		messenger:  messenger,
		now:        defaultClock,
	}
}

// WithClock replaces the time source. Timestamps are truncated to the
// microsecond precision of the database columns.
func (s *TaskService) WithClock(now func() time.Time) *TaskService {
	s.now = func() time.Time { return now().UTC().Truncate(time.Microsecond) }
	return s
}

func defaultClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return domain.Task{}, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if input.Priority == "" {
		input.Priority = domain.TaskPriorityMedium
	}
	if !input.Priority.Valid() {
		return domain.Task{}, fmt.Errorf("%w: unknown priority %q", domain.ErrInvalidInput, input.Priority)
	}
	if input.IsTemplate && input.AssignedToID == 0 {
		input.AssignedToID = input.AssignedByID
	}

	var created domain.Task
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, store ports.Store) error {
		assignee, err := store.GetUser(ctx, input.AssignedToID)
		if err != nil {
			return err
		}
		assigner, err := store.GetUser(ctx, input.AssignedByID)
		if err != nil {
			return err
		}

		now := s.now()
		task := domain.Task{
			Title:       input.Title,
			Description: input.Description,
			Status:      domain.TaskStatusPending,
			Priority:    input.Priority,
			AssignedTo:  assignee,
			AssignedBy:  assigner,
			DueDate:     input.DueDate,
			IsTemplate:  input.IsTemplate,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if input.CategoryID != nil {
			category, err := store.GetCategory(ctx, *input.CategoryID)
			if err != nil {
				return err
			}
			task.Category = &category
		}

		task.ID, err = store.CreateTask(ctx, task)
		if err != nil {
			return err
		}

		details := domain.HistoryDetails{
			"title":       task.Title,
			"assigned_to": assignee.Username,
			"priority":    string(task.Priority),
			"is_template": task.IsTemplate,
		}
		if err := s.record(ctx, store, task.ID, assigner, domain.HistoryActionCreate, details, now); err != nil {
			return err
		}

		if !task.IsTemplate && assignee.ID != assigner.ID {
			if err := s.notify(ctx, store, task, assignee.ID, assigner, notifyTaskAssigned, now); err != nil {
				return err
			}
		}

		created, err = store.GetTask(ctx, task.ID)
		return err
	})
	if err != nil {
		return domain.Task{}, err
	}

	return created, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	return s.store.GetTask(ctx, id)
}

// UpdateTask applies a partial update. Only the assigner or the assignee may
// edit a task; priority and due date changes get their own history entries.
func (s *TaskService) UpdateTask(ctx context.Context, id, actorID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	if input.Priority != nil && !input.Priority.Valid() {
		return domain.Task{}, fmt.Errorf("%w: unknown priority %q", domain.ErrInvalidInput, *input.Priority)
	}

	var updated domain.Task
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, store ports.Store) error {
		task, err := store.GetTask(ctx, id)
		if err != nil {
			return err
		}
		if task.AssignedBy.ID != actorID && task.AssignedTo.ID != actorID {
			return domain.ErrUnauthorized
		}
		actor, err := store.GetUser(ctx, actorID)
		if err != nil {
			return err
		}

		now := s.now()
		var changed []string

		if input.Title != nil {
			title := strings.TrimSpace(*input.Title)
			if title == "" {
				return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
			}
			if title != task.Title {
				task.Title = title
				changed = append(changed, "title")
			}
		}

		if input.Description != nil && *input.Description != task.Description {
			task.Description = *input.Description
			changed = append(changed, "description")
		}

		if input.CategoryIDSet {
			var category *domain.Category
			if input.CategoryID != nil {
				value, err := store.GetCategory(ctx, *input.CategoryID)
				if err != nil {
					return err
				}
				category = &value
			}
			if categoryID(category) != categoryID(task.Category) {
				task.Category = category
				changed = append(changed, "category")
			}
		}

		if input.Priority != nil && *input.Priority != task.Priority {
			details := domain.ChangeDetails(string(task.Priority), string(*input.Priority))
			task.Priority = *input.Priority
			if err := s.record(ctx, store, task.ID, actor, domain.HistoryActionPriorityChange, details, now); err != nil {
				return err
			}
		}

		if input.DueDateSet && !sameTime(input.DueDate, task.DueDate) {
			details := domain.ChangeDetails(formatTime(task.DueDate), formatTime(input.DueDate))
			task.DueDate = input.DueDate
			if err := s.record(ctx, store, task.ID, actor, domain.HistoryActionDueDateChange, details, now); err != nil {
				return err
			}
		}

		if len(changed) > 0 {
			details := domain.HistoryDetails{"fields": changed}
			if err := s.record(ctx, store, task.ID, actor, domain.HistoryActionUpdate, details, now); err != nil {
				return err
			}
		}

		task.UpdatedAt = now
		if err := store.UpdateTask(ctx, task); err != nil {
			return err
		}

		updated, err = store.GetTask(ctx, task.ID)
		return err
	})
	if err != nil {
		return domain.Task{}, err
	}

	return updated, nil
}

func (s *TaskService) AcceptTask(ctx context.Context, id, actorID uint64) (domain.Task, error) {
	return s.transition(ctx, id, actorID, notifyTaskAccepted, func(task *domain.Task, now time.Time) error {
		return task.Accept(now)
	})
}

func (s *TaskService) RejectTask(ctx context.Context, id, actorID uint64) (domain.Task, error) {
	return s.transition(ctx, id, actorID, notifyTaskRejected, func(task *domain.Task, _ time.Time) error {
		return task.Reject()
	})
}

func (s *TaskService) CompleteTask(ctx context.Context, id, actorID uint64) (domain.Task, error) {
	return s.transition(ctx, id, actorID, notifyTaskCompleted, func(task *domain.Task, now time.Time) error {
		return task.Complete(now)
	})
}

// transition loads the task, applies a lifecycle edge and persists the task,
// its status_change history entry and the assigner notification in one
// transaction.
func (s *TaskService) transition(
	ctx context.Context,
	id, actorID uint64,
	notification string,
	apply func(task *domain.Task, now time.Time) error,
) (domain.Task, error) {
	var updated domain.Task
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, store ports.Store) error {
		task, err := store.GetTask(ctx, id)
		if err != nil {
			return err
		}
		if err := task.CheckActor(actorID); err != nil {
			return err
		}

		now := s.now()
		oldStatus := task.Status
		if err := apply(&task, now); err != nil {
			return err
		}
		task.UpdatedAt = now

		if err := store.UpdateTask(ctx, task); err != nil {
			return err
		}

		details := domain.StatusChangeDetails(oldStatus, task.Status)
		if err := s.record(ctx, store, task.ID, task.AssignedTo, domain.HistoryActionStatusChange, details, now); err != nil {
			return err
		}

		if task.AssignedBy.ID != actorID {
			if err := s.notify(ctx, store, task, task.AssignedBy.ID, task.AssignedTo, notification, now); err != nil {
				return err
			}
		}

		updated = task
		return nil
	})
	if err != nil {
		return domain.Task{}, err
	}

	zap.L().Debug("task status changed",
		zap.Uint64("task_id", updated.ID),
		zap.Uint64("actor_id", actorID),
		zap.String("status", string(updated.Status)),
	)
	return updated, nil
}

// InstantiateTemplate spawns a pending task from a template. The template's
// assigner becomes the assigner of the new task.
func (s *TaskService) InstantiateTemplate(ctx context.Context, templateID, assignedTo uint64, dueDate *time.Time) (domain.Task, error) {
	var created domain.Task
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, store ports.Store) error {
		template, err := store.GetTask(ctx, templateID)
		if err != nil {
			return err
		}
		if !template.IsTemplate {
			return fmt.Errorf("%w: task %d is not a template", domain.ErrInvalidOperation, template.ID)
		}
		assignee, err := store.GetUser(ctx, assignedTo)
		if err != nil {
			return err
		}

		now := s.now()
		task, err := domain.NewTaskFromTemplate(template, assignee, dueDate, now)
		if err != nil {
			return err
		}

		task.ID, err = store.CreateTask(ctx, task)
		if err != nil {
			return err
		}

		details := domain.HistoryDetails{
			"template_id": template.ID,
			"assigned_to": assignee.Username,
		}
		if err := s.record(ctx, store, task.ID, template.AssignedBy, domain.HistoryActionAssign, details, now); err != nil {
			return err
		}

		if assignee.ID != template.AssignedBy.ID {
			if err := s.notify(ctx, store, task, assignee.ID, template.AssignedBy, notifyTaskAssigned, now); err != nil {
				return err
			}
		}

		created, err = store.GetTask(ctx, task.ID)
		return err
	})
	if err != nil {
		return domain.Task{}, err
	}

	return created, nil
}

func (s *TaskService) ListTemplates(ctx context.Context) ([]domain.Task, error) {
	return s.store.ListTemplates(ctx)
}

func (s *TaskService) SearchTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, *filter.Status)
	}
	if filter.Priority != nil && !filter.Priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", domain.ErrInvalidInput, *filter.Priority)
	}
	return s.store.SearchTasks(ctx, filter)
}

// RecordHistory appends a single audit entry outside of any other mutation.
func (s *TaskService) RecordHistory(
	ctx context.Context,
	taskID, userID uint64,
	action domain.HistoryAction,
	details domain.HistoryDetails,
) (domain.HistoryEntry, error) {
	if !action.Valid() {
		return domain.HistoryEntry{}, fmt.Errorf("%w: unknown history action %q", domain.ErrInvalidInput, action)
	}
	if _, err := s.store.GetTask(ctx, taskID); err != nil {
		return domain.HistoryEntry{}, err
	}
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return domain.HistoryEntry{}, err
	}

	entry := domain.HistoryEntry{
		TaskID:    taskID,
		User:      user,
		Action:    action,
		Details:   details,
		CreatedAt: s.now(),
	}
	if entry.Details == nil {
		entry.Details = domain.HistoryDetails{}
	}

	entry.ID, err = s.store.AppendHistory(ctx, entry)
	if err != nil {
		return domain.HistoryEntry{}, err
	}
	return entry, nil
}

func (s *TaskService) ListHistory(ctx context.Context, taskID uint64) ([]domain.HistoryEntry, error) {
	if _, err := s.store.GetTask(ctx, taskID); err != nil {
		return nil, err
	}
	return s.store.ListHistory(ctx, taskID)
}

func (s *TaskService) Dashboard(ctx context.Context, userID uint64) (domain.Dashboard, error) {
	mine, err := s.store.CountTasksByStatus(ctx, &userID)
	if err != nil {
		return domain.Dashboard{}, err
	}
	global, err := s.store.CountTasksByStatus(ctx, nil)
	if err != nil {
		return domain.Dashboard{}, err
	}
	assignedToMe, err := s.store.SearchTasks(ctx, domain.TaskFilter{AssignedTo: &userID})
	if err != nil {
		return domain.Dashboard{}, err
	}
	assignedByMe, err := s.store.SearchTasks(ctx, domain.TaskFilter{AssignedBy: &userID})
	if err != nil {
		return domain.Dashboard{}, err
	}
	return domain.Dashboard{
		Mine:         mine,
		Global:       global,
		AssignedToMe: assignedToMe,
		AssignedByMe: assignedByMe,
	}, nil
}

func (s *TaskService) record(
	ctx context.Context,
	store ports.HistoryRepository,
	taskID uint64,
	user domain.User,
	action domain.HistoryAction,
	details domain.HistoryDetails,
	now time.Time,
) error {
	_, err := store.AppendHistory(ctx, domain.HistoryEntry{
		TaskID:    taskID,
		User:      user,
		Action:    action,
		Details:   details,
		CreatedAt: now,
	})
	return err
}

func (s *TaskService) notify(
	ctx context.Context,
	store ports.NotificationRepository,
	task domain.Task,
	userID uint64,
	actor domain.User,
	messageID string,
	now time.Time,
) error {
	message := s.messenger.Message(messageID, map[string]any{
		"Actor": actor.Username,
		"Title": task.Title,
	})
	_, err := store.CreateNotification(ctx, domain.Notification{
		TaskID:    task.ID,
		UserID:    userID,
		Message:   truncate(message, 255),
		CreatedAt: now,
	})
	return err
}

func categoryID(category *domain.Category) uint64 {
	if category == nil {
		return 0
	}
	return category.ID
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func formatTime(value *time.Time) any {
	if value == nil {
		return nil
	}
	return value.UTC().Format(time.RFC3339)
}

func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit])
}
