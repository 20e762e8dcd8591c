// Package statistics computes aggregate figures over transaction snapshots.
package statistics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fin-ledger/backend/internal/domain/entity"
)

// fakeTransactionRepository serves a fixed snapshot.
type fakeTransactionRepository struct {
	transactions []*entity.Transaction
	err          error
}

func (f *fakeTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	return errors.New("not implemented")
}

func (f *fakeTransactionRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > len(f.transactions) {
		limit = len(f.transactions)
	}
	return f.transactions[:limit], nil
}

func (f *fakeTransactionRepository) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.transactions, nil
}

func summaryTx(amount string, categoryName string, kind entity.Kind) *entity.Transaction {
	return &entity.Transaction{
		Title:        categoryName,
		Amount:       decimal.RequireFromString(amount),
		CategoryName: categoryName,
		Kind:         kind,
		Date:         time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestGetSummaryUseCase_Execute(t *testing.T) {
	t.Run("empty history yields zero summary", func(t *testing.T) {
		uc := NewGetSummaryUseCase(&fakeTransactionRepository{})

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.TotalIncome.IsZero() || !output.TotalExpense.IsZero() || !output.Balance.IsZero() {
			t.Errorf("expected all totals zero, got income=%s expense=%s balance=%s",
				output.TotalIncome, output.TotalExpense, output.Balance)
		}
		if len(output.Income) != 0 || len(output.Expense) != 0 {
			t.Errorf("expected empty breakdowns, got %d income and %d expense entries",
				len(output.Income), len(output.Expense))
		}
	})

	t.Run("computes totals, balance and breakdowns from one snapshot", func(t *testing.T) {
		repo := &fakeTransactionRepository{
			transactions: []*entity.Transaction{
				summaryTx("1000", "Salary", entity.KindIncome),
				summaryTx("300", "Food", entity.KindExpense),
				summaryTx("100", "Food", entity.KindExpense),
				summaryTx("200", "Transport", entity.KindExpense),
			},
		}
		uc := NewGetSummaryUseCase(repo)

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.TotalIncome.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected total income 1000, got %s", output.TotalIncome)
		}
		if !output.TotalExpense.Equal(decimal.NewFromInt(600)) {
			t.Errorf("expected total expense 600, got %s", output.TotalExpense)
		}
		if !output.Balance.Equal(decimal.NewFromInt(400)) {
			t.Errorf("expected balance 400, got %s", output.Balance)
		}

		if len(output.Expense) != 2 {
			t.Fatalf("expected 2 expense breakdown entries, got %d", len(output.Expense))
		}

		// Sorted by amount descending
		if output.Expense[0].CategoryName != "Food" {
			t.Errorf("expected Food first, got %s", output.Expense[0].CategoryName)
		}
		if !output.Expense[0].Amount.Equal(decimal.NewFromInt(400)) {
			t.Errorf("expected Food total 400, got %s", output.Expense[0].Amount)
		}
		if output.Expense[0].Percentage != 66 {
			t.Errorf("expected Food at 66%%, got %d%%", output.Expense[0].Percentage)
		}
		if output.Expense[1].CategoryName != "Transport" {
			t.Errorf("expected Transport second, got %s", output.Expense[1].CategoryName)
		}
		if output.Expense[1].Percentage != 33 {
			t.Errorf("expected Transport at 33%%, got %d%%", output.Expense[1].Percentage)
		}

		if len(output.Income) != 1 {
			t.Fatalf("expected 1 income breakdown entry, got %d", len(output.Income))
		}
		if output.Income[0].Percentage != 100 {
			t.Errorf("expected Salary at 100%%, got %d%%", output.Income[0].Percentage)
		}
	})

	t.Run("equal amounts tie-break by name ascending", func(t *testing.T) {
		repo := &fakeTransactionRepository{
			transactions: []*entity.Transaction{
				summaryTx("50", "Zoo", entity.KindExpense),
				summaryTx("50", "Apples", entity.KindExpense),
			},
		}
		uc := NewGetSummaryUseCase(repo)

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Expense[0].CategoryName != "Apples" || output.Expense[1].CategoryName != "Zoo" {
			t.Errorf("expected [Apples Zoo], got [%s %s]",
				output.Expense[0].CategoryName, output.Expense[1].CategoryName)
		}
	})

	t.Run("repository failure is propagated", func(t *testing.T) {
		uc := NewGetSummaryUseCase(&fakeTransactionRepository{err: errors.New("db down")})

		if _, err := uc.Execute(context.Background()); err == nil {
			t.Error("expected error, got nil")
		}
	})
}
