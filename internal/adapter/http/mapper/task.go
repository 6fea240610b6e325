package mapper

import (
	"time"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task, now time.Time) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task, now))
	}
	return items
}

// ToTaskItem renders a task together with the derived fields computed at now.
func ToTaskItem(task domain.Task, now time.Time) dto.TaskItem {
	item := dto.TaskItem{
		ID:               task.ID,
		Title:            task.Title,
		Description:      task.Description,
		Status:           string(task.Status),
		Priority:         string(task.Priority),
		PriorityScore:    task.PriorityScore(now),
		IsOverdue:        task.IsOverdue(now),
		AssignedTo:       toUserItem(task.AssignedTo),
		AssignedBy:       toUserItem(task.AssignedBy),
		DueDate:          formatOptional(task.DueDate),
		StartTime:        formatOptional(task.StartTime),
		EndTime:          formatOptional(task.EndTime),
		IsTemplate:       task.IsTemplate,
		ParentTemplateID: task.ParentTemplateID,
		CreatedAt:        task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        task.UpdatedAt.Format(time.RFC3339),
	}

	if task.TimeTaken != nil {
		value := task.TimeTaken.Seconds()
		item.TimeTakenSeconds = &value
	}

	if task.Category != nil {
		item.Category = &dto.Category{
			ID:          task.Category.ID,
			Name:        task.Category.Name,
			Description: task.Category.Description,
			Color:       task.Category.Color,
		}
	}

	return item
}

func ToHistoryItems(entries []domain.HistoryEntry) []dto.HistoryItem {
	items := make([]dto.HistoryItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, ToHistoryItem(entry))
	}
	return items
}

func ToHistoryItem(entry domain.HistoryEntry) dto.HistoryItem {
	details := map[string]any(entry.Details)
	if details == nil {
		details = map[string]any{}
	}
	return dto.HistoryItem{
		ID:        entry.ID,
		TaskID:    entry.TaskID,
		User:      toUserItem(entry.User),
		Action:    string(entry.Action),
		Details:   details,
		CreatedAt: entry.CreatedAt.Format(time.RFC3339),
	}
}

func ToDashboardResponse(dashboard domain.Dashboard, now time.Time) dto.DashboardResponse {
	return dto.DashboardResponse{
		Mine:         toCountMap(dashboard.Mine),
		Global:       toCountMap(dashboard.Global),
		AssignedToMe: ToTaskItems(dashboard.AssignedToMe, now),
		AssignedByMe: ToTaskItems(dashboard.AssignedByMe, now),
	}
}

func toCountMap(counts domain.StatusCounts) map[string]int {
	out := make(map[string]int, len(counts))
	for status, total := range counts {
		out[string(status)] = total
	}
	return out
}

func toUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{ID: user.ID, Username: user.Username}
}

func formatOptional(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.Format(time.RFC3339)
	return &formatted
}
