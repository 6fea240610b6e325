package domain

import (
	"fmt"
	"time"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusRejected   TaskStatus = "rejected"
	TaskStatusCompleted  TaskStatus = "completed"
)

var TaskStatuses = []TaskStatus{
	TaskStatusPending,
	TaskStatusInProgress,
	TaskStatusRejected,
	TaskStatusCompleted,
}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusRejected, TaskStatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether no lifecycle transition leaves this status.
func (s TaskStatus) Terminal() bool {
	return s == TaskStatusRejected || s == TaskStatusCompleted
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

var priorityWeights = map[TaskPriority]int{
	TaskPriorityLow:    1,
	TaskPriorityMedium: 2,
	TaskPriorityHigh:   3,
	TaskPriorityUrgent: 4,
}

func (p TaskPriority) Valid() bool {
	_, ok := priorityWeights[p]
	return ok
}

// Weight is 0 for an unknown priority.
func (p TaskPriority) Weight() int {
	return priorityWeights[p]
}

type User struct {
	ID       uint64
	Username string
	Email    string
}

type Task struct {
	ID               uint64
	Title            string
	Description      string
	Status           TaskStatus
	Priority         TaskPriority
	Category         *Category
	AssignedTo       User
	AssignedBy       User
	DueDate          *time.Time
	StartTime        *time.Time
	EndTime          *time.Time
	TimeTaken        *time.Duration
	IsTemplate       bool
	ParentTemplateID *uint64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type CreateTaskInput struct {
	Title        string
	Description  string
	Priority     TaskPriority
	CategoryID   *uint64
	AssignedToID uint64
	AssignedByID uint64
	DueDate      *time.Time
	IsTemplate   bool
}

// UpdateTaskInput carries a partial update; a nil pointer leaves the field
// untouched and the *Set flags allow clearing nullable fields.
type UpdateTaskInput struct {
	Title         *string
	Description   *string
	Priority      *TaskPriority
	CategoryID    *uint64
	CategoryIDSet bool
	DueDate       *time.Time
	DueDateSet    bool
}

// CheckActor returns ErrUnauthorized unless userID is the task's assignee.
func (t *Task) CheckActor(userID uint64) error {
	if t.AssignedTo.ID != userID {
		return ErrUnauthorized
	}
	return nil
}

// Accept moves a pending task to in_progress and records its start time.
func (t *Task) Accept(now time.Time) error {
	if err := t.checkTransition(TaskStatusInProgress, TaskStatusPending); err != nil {
		return err
	}
	t.Status = TaskStatusInProgress
	t.StartTime = &now
	return nil
}

func (t *Task) Reject() error {
	if err := t.checkTransition(TaskStatusRejected, TaskStatusPending, TaskStatusInProgress); err != nil {
		return err
	}
	t.Status = TaskStatusRejected
	return nil
}

// Complete closes the task. TimeTaken is only derived when the task was
// accepted first.
func (t *Task) Complete(now time.Time) error {
	if err := t.checkTransition(TaskStatusCompleted, TaskStatusPending, TaskStatusInProgress); err != nil {
		return err
	}
	t.Status = TaskStatusCompleted
	t.EndTime = &now
	if t.StartTime != nil {
		taken := now.Sub(*t.StartTime)
		t.TimeTaken = &taken
	}
	return nil
}

func (t *Task) checkTransition(to TaskStatus, from ...TaskStatus) error {
	if t.IsTemplate {
		return fmt.Errorf("%w: templates cannot be %s", ErrInvalidOperation, to)
	}
	for _, status := range from {
		if t.Status == status {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.Status, to)
}

// PriorityScore ranks tasks by urgency. Overdue tasks fall into the
// "due within a day" bucket and get the highest bonus.
func (t *Task) PriorityScore(now time.Time) int {
	score := t.Priority.Weight() * 10
	if t.DueDate == nil {
		return score
	}

	untilDue := t.DueDate.Sub(now)
	switch {
	case untilDue < 24*time.Hour:
		score += 20
	case untilDue < 3*24*time.Hour:
		score += 10
	}
	return score
}

func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now)
}
