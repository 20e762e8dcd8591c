// Package statistics computes aggregate figures over transaction snapshots.
package statistics

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fin-ledger/backend/internal/application/adapter"
	"github.com/fin-ledger/backend/internal/domain/entity"
)

// CategoryBreakdown is one category's share of a kind's total.
type CategoryBreakdown struct {
	CategoryName string
	Amount       decimal.Decimal
	Percentage   int
}

// GetSummaryOutput is the display-ready aggregate over the full history.
type GetSummaryOutput struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
	Income       []CategoryBreakdown
	Expense      []CategoryBreakdown
}

// GetSummaryUseCase composes the aggregation functions over a snapshot read
// from the transaction repository.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(transactionRepo adapter.TransactionRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute reads the full transaction history once and derives totals, balance
// and per-category breakdowns for both kinds from that single snapshot.
func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*GetSummaryOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	income, expense := Totals(transactions)

	return &GetSummaryOutput{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
		Income:       breakdown(transactions, entity.KindIncome, income),
		Expense:      breakdown(transactions, entity.KindExpense, expense),
	}, nil
}

// breakdown flattens CategoryTotals into a slice sorted by amount descending,
// name ascending on ties, so the ordering is deterministic.
func breakdown(transactions []*entity.Transaction, kind entity.Kind, total decimal.Decimal) []CategoryBreakdown {
	totals := CategoryTotals(transactions, kind)

	result := make([]CategoryBreakdown, 0, len(totals))
	for name, amount := range totals {
		result = append(result, CategoryBreakdown{
			CategoryName: name,
			Amount:       amount,
			Percentage:   Percentage(amount, total),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Amount.Equal(result[j].Amount) {
			return result[i].Amount.GreaterThan(result[j].Amount)
		}
		return result[i].CategoryName < result[j].CategoryName
	})

	return result
}
