// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fin-ledger/backend/internal/application/adapter"
	"github.com/fin-ledger/backend/internal/domain/entity"
	domainerror "github.com/fin-ledger/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
// A zero Date means "today". An empty Icon copies the category's icon.
type CreateTransactionInput struct {
	Title        string
	Amount       decimal.Decimal
	CategoryName string
	Kind         entity.Kind
	Date         time.Time
	Icon         string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute validates the input and persists the transaction. The category name
// and icon are stored as denormalized copies, not a foreign key, so the record
// stays a snapshot of what was entered.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyTitle,
			"title must not be empty",
			domainerror.ErrEmptyTitle,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNonPositiveAmount,
			"amount must be positive",
			domainerror.ErrNonPositiveAmount,
		)
	}

	if !input.Kind.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionKind,
			"kind must be income or expense",
			domainerror.ErrInvalidKind,
		)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	// Copy the icon from the selected category when the caller did not pick one.
	icon := input.Icon
	if icon == "" {
		category, err := uc.categoryRepo.FindByNameAndKind(ctx, input.CategoryName, input.Kind)
		if err != nil {
			return nil, fmt.Errorf("failed to look up category: %w", err)
		}
		if category != nil {
			icon = category.Icon
		} else {
			icon = entity.DefaultIcon
		}
	}
	if !entity.IsValidIcon(icon) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"icon is not in the supported icon set",
			domainerror.ErrUnknownIcon,
		)
	}

	tx := entity.NewTransaction(title, input.Amount, input.CategoryName, input.Kind, date, icon)

	if err := uc.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: tx}, nil
}
