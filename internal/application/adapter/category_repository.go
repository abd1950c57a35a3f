// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category. A duplicate name yields domainerror.ErrCategoryNameExists.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id string) (*entity.Category, error)

	// FindAll retrieves every category sorted by name.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// ExistsByName checks if a category with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)
}
