package domain

import "time"

type HistoryAction string

const (
	HistoryActionCreate         HistoryAction = "create"
	HistoryActionAssign         HistoryAction = "assign"
	HistoryActionUpdate         HistoryAction = "update"
	HistoryActionComment        HistoryAction = "comment"
	HistoryActionStatusChange   HistoryAction = "status_change"
	HistoryActionPriorityChange HistoryAction = "priority_change"
	HistoryActionDueDateChange  HistoryAction = "due_date_change"
)

func (a HistoryAction) Valid() bool {
	switch a {
	case HistoryActionCreate, HistoryActionAssign, HistoryActionUpdate, HistoryActionComment,
		HistoryActionStatusChange, HistoryActionPriorityChange, HistoryActionDueDateChange:
		return true
	}
	return false
}

// HistoryDetails is the free-form payload of a history entry, usually
// {"old": ..., "new": ...}.
type HistoryDetails map[string]any

// HistoryEntry is an immutable audit record. Entries are only ever appended.
type HistoryEntry struct {
	ID        uint64
	TaskID    uint64
	User      User
	Action    HistoryAction
	Details   HistoryDetails
	CreatedAt time.Time
}

func ChangeDetails(oldValue, newValue any) HistoryDetails {
	return HistoryDetails{"old": oldValue, "new": newValue}
}

// StatusChangeDetails captures a lifecycle transition.
func StatusChangeDetails(oldStatus, newStatus TaskStatus) HistoryDetails {
	return ChangeDetails(string(oldStatus), string(newStatus))
}
