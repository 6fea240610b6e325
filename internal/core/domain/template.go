package domain

import (
	"fmt"
	"time"
)

// NewTaskFromTemplate builds a live pending task from a template. The
// template is read only and may be instantiated any number of times.
func NewTaskFromTemplate(template Task, assignedTo User, dueDate *time.Time, now time.Time) (Task, error) {
	if !template.IsTemplate {
		return Task{}, fmt.Errorf("%w: task %d is not a template", ErrInvalidOperation, template.ID)
	}

	templateID := template.ID
	task := Task{
		Title:            template.Title,
		Description:      template.Description,
		Status:           TaskStatusPending,
		Priority:         template.Priority,
		AssignedTo:       assignedTo,
		AssignedBy:       template.AssignedBy,
		ParentTemplateID: &templateID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if template.Category != nil {
		category := *template.Category
		task.Category = &category
	}
	if dueDate != nil {
		value := *dueDate
		task.DueDate = &value
	}

	return task, nil
}
