// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/fin-ledger/backend/internal/application/adapter"
	"github.com/fin-ledger/backend/internal/domain/entity"
)

// DefaultRecentLimit caps the recent-transactions listing when the caller
// does not pass a limit.
const DefaultRecentLimit = 10

// ListTransactionsInput represents the input for listing recent transactions.
type ListTransactionsInput struct {
	Limit int
}

// ListTransactionsOutput represents the output of a transaction listing.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// ExecuteRecent returns the most recent transactions, date descending with ID
// descending as the tie-break, capped to the limit (default 10).
func (uc *ListTransactionsUseCase) ExecuteRecent(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	transactions, err := uc.transactionRepo.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}

	return &ListTransactionsOutput{Transactions: transactions}, nil
}

// ExecuteAll returns the full transaction history in the same order as
// ExecuteRecent, without a cap.
func (uc *ListTransactionsUseCase) ExecuteAll(ctx context.Context) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{Transactions: transactions}, nil
}
