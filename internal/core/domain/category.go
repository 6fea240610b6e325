package domain

import (
	"regexp"
	"time"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

const DefaultCategoryColor = "#007bff"

type Category struct {
	ID          uint64
	Name        string
	Description string
	Color       string
	CreatedAt   time.Time
}

type CreateCategoryInput struct {
	Name        string
	Description string
	Color       string
}

func ValidColor(color string) bool {
	return hexColorPattern.MatchString(color)
}
