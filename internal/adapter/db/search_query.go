package db

import (
	"strings"

	"tasktracker/internal/core/domain"
)

const likeEscape = "!"

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// buildSearchTasksQuery turns a filter into a parameterised query. Templates
// are always excluded, the free-text query ORs across title, description and
// both usernames, and every other filter narrows the result.
func buildSearchTasksQuery(filter domain.TaskFilter) (string, []any) {
	conditions := []string{"t.is_template = 0"}
	var args []any

	if q := filter.NormalizedQuery(); q != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(q)) + "%"
		textColumns := []string{"t.title", "t.description", "ua.username", "ub.username"}
		matches := make([]string, 0, len(textColumns))
		for _, column := range textColumns {
			matches = append(matches, "LOWER("+column+") LIKE ? ESCAPE '"+likeEscape+"'")
			args = append(args, pattern)
		}
		conditions = append(conditions, "("+strings.Join(matches, " OR ")+")")
	}

	if filter.CategoryID != nil {
		conditions = append(conditions, "t.category_id = ?")
		args = append(args, *filter.CategoryID)
	}

	if filter.Status != nil {
		conditions = append(conditions, "t.status = ?")
		args = append(args, string(*filter.Status))
	}

	if filter.Priority != nil {
		conditions = append(conditions, "t.priority = ?")
		args = append(args, string(*filter.Priority))
	}

	if filter.AssignedTo != nil {
		conditions = append(conditions, "t.assigned_to = ?")
		args = append(args, *filter.AssignedTo)
	}

	if filter.AssignedBy != nil {
		conditions = append(conditions, "t.assigned_by = ?")
		args = append(args, *filter.AssignedBy)
	}

	var query strings.Builder
	query.WriteString(selectTaskColumns)
	query.WriteString("WHERE ")
	query.WriteString(strings.Join(conditions, "\n  AND "))
	query.WriteString("\nORDER BY t.created_at DESC, t.id DESC")

	return query.String(), args
}
