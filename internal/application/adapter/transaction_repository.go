// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/fin-ledger/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database. The store assigns the ID.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindRecent retrieves up to limit transactions ordered by date descending.
	// Equal dates are broken by ID descending, newest insert first.
	FindRecent(ctx context.Context, limit int) ([]*entity.Transaction, error)

	// FindAll retrieves the full transaction history, ordered like FindRecent.
	FindAll(ctx context.Context) ([]*entity.Transaction, error)
}
