package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
)

var (
	ErrInvalidTaskPayload = errors.New("invalid task payload")
	ErrInvalidSearch      = errors.New("invalid search filter")
)

// Accepted due date layouts, the last one being what an HTML
// datetime-local input submits.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02T15:04",
}

func ParseDueDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dueDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidTaskPayload
}

func BuildCreateTaskInput(req dto.CreateTaskRequest, assignedBy uint64) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	priority := domain.TaskPriorityMedium
	if req.Priority != nil {
		priority = domain.TaskPriority(*req.Priority)
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := ParseDueDate(*req.DueDate)
		if err != nil {
			return domain.CreateTaskInput{}, err
		}
		dueDate = &parsed
	}

	return domain.CreateTaskInput{
		Title:        title,
		Description:  req.Description,
		Priority:     priority,
		CategoryID:   req.CategoryID,
		AssignedToID: req.AssignedTo,
		AssignedByID: assignedBy,
		DueDate:      dueDate,
	}, nil
}

func BuildCreateTemplateInput(req dto.CreateTemplateRequest, createdBy uint64) (domain.CreateTaskInput, error) {
	input, err := BuildCreateTaskInput(dto.CreateTaskRequest{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  createdBy,
		CategoryID:  req.CategoryID,
		Priority:    req.Priority,
	}, createdBy)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}
	input.IsTemplate = true
	return input, nil
}

// BuildUpdateTaskInput uses the raw payload to tell an absent field from an
// explicit null, which clears category and due date.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	if hasJSONField(raw, "priority") && req.Priority == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	var priority *domain.TaskPriority
	if req.Priority != nil {
		value := domain.TaskPriority(*req.Priority)
		priority = &value
	}

	categoryIDSet := hasJSONField(raw, "category_id")
	if categoryIDSet && !isJSONNull(raw["category_id"]) && req.CategoryID == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var dueDate *time.Time
	dueDateSet := hasJSONField(raw, "due_date")
	if dueDateSet && !isJSONNull(raw["due_date"]) {
		if req.DueDate == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		parsed, err := ParseDueDate(*req.DueDate)
		if err != nil {
			return domain.UpdateTaskInput{}, err
		}
		dueDate = &parsed
	}

	return domain.UpdateTaskInput{
		Title:         req.Title,
		Description:   req.Description,
		Priority:      priority,
		CategoryID:    req.CategoryID,
		CategoryIDSet: categoryIDSet,
		DueDate:       dueDate,
		DueDateSet:    dueDateSet,
	}, nil
}

// BuildTaskFilter reads the search query string. Empty parameters mean no
// filter on that field.
func BuildTaskFilter(query, category, status, priority string) (domain.TaskFilter, error) {
	filter := domain.TaskFilter{Query: strings.TrimSpace(query)}

	if category = strings.TrimSpace(category); category != "" {
		id, err := strconv.ParseUint(category, 10, 64)
		if err != nil || id == 0 {
			return domain.TaskFilter{}, ErrInvalidSearch
		}
		filter.CategoryID = &id
	}

	if status = strings.TrimSpace(status); status != "" {
		value := domain.TaskStatus(status)
		if !value.Valid() {
			return domain.TaskFilter{}, ErrInvalidSearch
		}
		filter.Status = &value
	}

	if priority = strings.TrimSpace(priority); priority != "" {
		value := domain.TaskPriority(priority)
		if !value.Valid() {
			return domain.TaskFilter{}, ErrInvalidSearch
		}
		filter.Priority = &value
	}

	return filter, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "priority") ||
		hasJSONField(raw, "due_date") ||
		hasJSONField(raw, "category_id")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
