// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"
)

// UncategorizedName is the display name for transactions without a resolvable category.
const UncategorizedName = "Uncategorized"

// FallbackCategoryColor is used wherever a category color cannot be resolved.
const FallbackCategoryColor = "#8884d8"

// Category represents a spending category.
type Category struct {
	ID        string
	Name      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name, color string) (*Category, error) {
	id, err := NewID()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &Category{
		ID:        id,
		Name:      name,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// DefaultCategories are inserted by the seed command.
var DefaultCategories = []struct {
	Name  string
	Color string
}{
	{Name: "Food & Dining", Color: "#FF6384"},
	{Name: "Transportation", Color: "#36A2EB"},
	{Name: "Shopping", Color: "#FFCE56"},
	{Name: "Entertainment", Color: "#4BC0C0"},
	{Name: "Bills & Utilities", Color: "#9966FF"},
	{Name: "Healthcare", Color: "#FF9F40"},
	{Name: "Education", Color: "#FF6384"},
	{Name: "Travel", Color: "#36A2EB"},
	{Name: "Personal Care", Color: "#FFCE56"},
	{Name: "Other", Color: "#4BC0C0"},
}
