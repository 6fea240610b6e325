package domain

import "errors"

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrCommentNotFound      = errors.New("comment not found")
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrUnauthorized is returned when the acting user may not act on a task.
	ErrUnauthorized = errors.New("user is not allowed to act on this task")
	// ErrInvalidTransition is returned when a lifecycle precondition is violated.
	ErrInvalidTransition = errors.New("invalid task status transition")
	// ErrInvalidOperation is returned for misuse such as instantiating a
	// regular task or acting on a template.
	ErrInvalidOperation = errors.New("invalid task operation")
	ErrInvalidInput     = errors.New("invalid input")

	// ErrStorageUnavailable wraps every failure of the backing store.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
