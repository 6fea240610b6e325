package domain

import "time"

type Notification struct {
	ID        uint64
	TaskID    uint64
	UserID    uint64
	Message   string
	IsRead    bool
	CreatedAt time.Time
}

// StatusCounts holds the number of tasks per status.
type StatusCounts map[TaskStatus]int

func NewStatusCounts() StatusCounts {
	counts := make(StatusCounts, len(TaskStatuses))
	for _, status := range TaskStatuses {
		counts[status] = 0
	}
	return counts
}

type Dashboard struct {
	Mine   StatusCounts
	Global StatusCounts
	// Newest first, templates excluded.
	AssignedToMe []Task
	AssignedByMe []Task
}
