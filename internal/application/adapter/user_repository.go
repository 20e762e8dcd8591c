// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/fin-ledger/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create creates a new user in the database. The store assigns the ID.
	// Returns domain ErrUsernameAlreadyExists on a duplicate username.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a user by their exact username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByUsername checks if a user with the given username exists.
	// The match is case-sensitive.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
