// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/fin-ledger/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database. The store assigns the ID.
	// Returns domain ErrCategoryAlreadyExists when the (name, kind) pair is taken.
	Create(ctx context.Context, category *entity.Category) error

	// FindByKind retrieves all categories of the given kind, ordered by name
	// ascending.
	FindByKind(ctx context.Context, kind entity.Kind) ([]*entity.Category, error)

	// FindByNameAndKind retrieves a category by its unique (name, kind) pair.
	// Returns nil without error when no such category exists.
	FindByNameAndKind(ctx context.Context, name string, kind entity.Kind) (*entity.Category, error)

	// ExistsByNameAndKind checks if a category with the given name and kind exists.
	ExistsByNameAndKind(ctx context.Context, name string, kind entity.Kind) (bool, error)
}
