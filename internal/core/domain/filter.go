package domain

import "strings"

// TaskFilter narrows a task search. Empty fields mean "no filter".
type TaskFilter struct {
	Query      string
	CategoryID *uint64
	Status     *TaskStatus
	Priority   *TaskPriority
	AssignedTo *uint64
	AssignedBy *uint64
}

func (f TaskFilter) NormalizedQuery() string {
	return strings.TrimSpace(f.Query)
}
