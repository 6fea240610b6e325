package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func templateTask() Task {
	return Task{
		ID:          10,
		Title:       "Weekly report",
		Description: "Collect team updates",
		Status:      TaskStatusPending,
		Priority:    TaskPriorityHigh,
		Category:    &Category{ID: 3, Name: "Reporting"},
		AssignedTo:  User{ID: 1, Username: "alice"},
		AssignedBy:  User{ID: 1, Username: "alice"},
		IsTemplate:  true,
	}
}

func TestNewTaskFromTemplate_CopiesFields(t *testing.T) {
	template := templateTask()
	snapshot := templateTask()
	due := now.Add(48 * time.Hour)
	assignee := User{ID: 2, Username: "bob"}

	task, err := NewTaskFromTemplate(template, assignee, &due, now)
	require.NoError(t, err)

	assert.Zero(t, task.ID)
	assert.Equal(t, template.Title, task.Title)
	assert.Equal(t, template.Description, task.Description)
	assert.Equal(t, template.Priority, task.Priority)
	assert.Equal(t, TaskStatusPending, task.Status)
	assert.False(t, task.IsTemplate)
	assert.Equal(t, assignee, task.AssignedTo)
	assert.Equal(t, template.AssignedBy, task.AssignedBy)
	require.NotNil(t, task.ParentTemplateID)
	assert.Equal(t, template.ID, *task.ParentTemplateID)
	require.NotNil(t, task.Category)
	assert.Equal(t, uint64(3), task.Category.ID)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, due, *task.DueDate)
	assert.Equal(t, now, task.CreatedAt)

	// Mutating the new task must not leak into the template.
	task.Category.Name = "Changed"
	assert.Equal(t, snapshot, template)
}

func TestNewTaskFromTemplate_CanBeRepeated(t *testing.T) {
	template := templateTask()

	first, err := NewTaskFromTemplate(template, User{ID: 2}, nil, now)
	require.NoError(t, err)
	second, err := NewTaskFromTemplate(template, User{ID: 3}, nil, now)
	require.NoError(t, err)

	assert.Equal(t, uint64(2), first.AssignedTo.ID)
	assert.Equal(t, uint64(3), second.AssignedTo.ID)
	assert.Nil(t, first.DueDate)
}

func TestNewTaskFromTemplate_RejectsRegularTask(t *testing.T) {
	regular := templateTask()
	regular.IsTemplate = false

	_, err := NewTaskFromTemplate(regular, User{ID: 2}, nil, now)
	require.ErrorIs(t, err, ErrInvalidOperation)
}
