// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fin-ledger/backend/internal/domain/entity"
	domainerror "github.com/fin-ledger/backend/internal/domain/error"
)

// fakeTransactionRepository stores transactions in insertion order.
type fakeTransactionRepository struct {
	transactions []*entity.Transaction
	nextID       uint
}

func newFakeTransactionRepository() *fakeTransactionRepository {
	return &fakeTransactionRepository{nextID: 1}
}

func (f *fakeTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transaction.ID = f.nextID
	f.nextID++
	f.transactions = append(f.transactions, transaction)
	return nil
}

func (f *fakeTransactionRepository) ordered() []*entity.Transaction {
	result := make([]*entity.Transaction, len(f.transactions))
	copy(result, f.transactions)
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return result[i].ID > result[j].ID
	})
	return result
}

func (f *fakeTransactionRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Transaction, error) {
	result := f.ordered()
	if limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}

func (f *fakeTransactionRepository) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	return f.ordered(), nil
}

// fakeCategoryRepository serves one fixed category.
type fakeCategoryRepository struct {
	category *entity.Category
}

func (f *fakeCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return errors.New("not implemented")
}

func (f *fakeCategoryRepository) FindByKind(ctx context.Context, kind entity.Kind) ([]*entity.Category, error) {
	return nil, nil
}

func (f *fakeCategoryRepository) FindByNameAndKind(ctx context.Context, name string, kind entity.Kind) (*entity.Category, error) {
	if f.category != nil && f.category.Name == name && f.category.Kind == kind {
		return f.category, nil
	}
	return nil, nil
}

func (f *fakeCategoryRepository) ExistsByNameAndKind(ctx context.Context, name string, kind entity.Kind) (bool, error) {
	c, _ := f.FindByNameAndKind(ctx, name, kind)
	return c != nil, nil
}

func date(day int) time.Time {
	return time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
}

func TestCreateTransactionUseCase_Execute(t *testing.T) {
	t.Run("persists a valid transaction", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		uc := NewCreateTransactionUseCase(repo, &fakeCategoryRepository{})

		output, err := uc.Execute(context.Background(), CreateTransactionInput{
			Title:        "Groceries",
			Amount:       decimal.RequireFromString("42.50"),
			CategoryName: "Food",
			Kind:         entity.KindExpense,
			Date:         date(15),
			Icon:         "food",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Transaction.ID == 0 {
			t.Error("expected store-assigned transaction ID")
		}
		if !output.Transaction.Amount.Equal(decimal.RequireFromString("42.50")) {
			t.Errorf("expected amount 42.50, got %s", output.Transaction.Amount)
		}
	})

	t.Run("rejects blank title", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newFakeTransactionRepository(), &fakeCategoryRepository{})

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			Title:  "   ",
			Amount: decimal.NewFromInt(10),
			Kind:   entity.KindExpense,
		})

		var txErr *domainerror.TransactionError
		if !errors.As(err, &txErr) || txErr.Code != domainerror.ErrCodeEmptyTitle {
			t.Errorf("expected empty title error, got %v", err)
		}
	})

	t.Run("rejects zero and negative amounts", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newFakeTransactionRepository(), &fakeCategoryRepository{})

		for _, amount := range []string{"0", "-5.00"} {
			_, err := uc.Execute(context.Background(), CreateTransactionInput{
				Title:  "Oops",
				Amount: decimal.RequireFromString(amount),
				Kind:   entity.KindExpense,
			})

			var txErr *domainerror.TransactionError
			if !errors.As(err, &txErr) || txErr.Code != domainerror.ErrCodeNonPositiveAmount {
				t.Errorf("amount %s: expected non-positive amount error, got %v", amount, err)
			}
		}
	})

	t.Run("rejects invalid kind", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newFakeTransactionRepository(), &fakeCategoryRepository{})

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			Title:  "Lunch",
			Amount: decimal.NewFromInt(10),
			Kind:   entity.Kind("loan"),
		})

		var txErr *domainerror.TransactionError
		if !errors.As(err, &txErr) || txErr.Code != domainerror.ErrCodeInvalidTransactionKind {
			t.Errorf("expected invalid kind error, got %v", err)
		}
	})

	t.Run("zero date defaults to today", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		uc := NewCreateTransactionUseCase(repo, &fakeCategoryRepository{})

		output, err := uc.Execute(context.Background(), CreateTransactionInput{
			Title:  "Lunch",
			Amount: decimal.NewFromInt(10),
			Kind:   entity.KindExpense,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		today := time.Now().UTC().Truncate(24 * time.Hour)
		if !output.Transaction.Date.Equal(today) {
			t.Errorf("expected today %s, got %s", today, output.Transaction.Date)
		}
	})

	t.Run("empty icon copies the category icon", func(t *testing.T) {
		category := entity.NewCategory("Food", entity.KindExpense, "food")
		repo := newFakeTransactionRepository()
		uc := NewCreateTransactionUseCase(repo, &fakeCategoryRepository{category: category})

		output, err := uc.Execute(context.Background(), CreateTransactionInput{
			Title:        "Groceries",
			Amount:       decimal.NewFromInt(10),
			CategoryName: "Food",
			Kind:         entity.KindExpense,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Transaction.Icon != "food" {
			t.Errorf("expected icon food, got %s", output.Transaction.Icon)
		}
	})

	t.Run("unknown category falls back to the default icon", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newFakeTransactionRepository(), &fakeCategoryRepository{})

		output, err := uc.Execute(context.Background(), CreateTransactionInput{
			Title:        "Mystery",
			Amount:       decimal.NewFromInt(10),
			CategoryName: "Gone",
			Kind:         entity.KindExpense,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Transaction.Icon != entity.DefaultIcon {
			t.Errorf("expected default icon, got %s", output.Transaction.Icon)
		}
	})
}

func TestListTransactionsUseCase(t *testing.T) {
	seed := func(t *testing.T, repo *fakeTransactionRepository, days ...int) {
		t.Helper()
		uc := NewCreateTransactionUseCase(repo, &fakeCategoryRepository{})
		for _, d := range days {
			if _, err := uc.Execute(context.Background(), CreateTransactionInput{
				Title:  "Entry",
				Amount: decimal.NewFromInt(int64(d)),
				Kind:   entity.KindExpense,
				Date:   date(d),
			}); err != nil {
				t.Fatalf("fixture create failed: %v", err)
			}
		}
	}

	t.Run("recent listing is newest first", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		seed(t, repo, 1, 3, 2)
		uc := NewListTransactionsUseCase(repo)

		output, err := uc.ExecuteRecent(context.Background(), ListTransactionsInput{Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []int{3, 2, 1}
		for i, tx := range output.Transactions {
			if tx.Date.Day() != want[i] {
				t.Fatalf("position %d: expected day %d, got %d", i, want[i], tx.Date.Day())
			}
		}
	})

	t.Run("equal dates are broken by newest insert first", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		seed(t, repo, 5, 5)
		uc := NewListTransactionsUseCase(repo)

		output, err := uc.ExecuteRecent(context.Background(), ListTransactionsInput{Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Transactions[0].ID <= output.Transactions[1].ID {
			t.Errorf("expected higher ID first on equal dates, got %d then %d",
				output.Transactions[0].ID, output.Transactions[1].ID)
		}
	})

	t.Run("non-positive limit defaults to ten", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		seed(t, repo, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)
		uc := NewListTransactionsUseCase(repo)

		output, err := uc.ExecuteRecent(context.Background(), ListTransactionsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Transactions) != DefaultRecentLimit {
			t.Errorf("expected %d transactions, got %d", DefaultRecentLimit, len(output.Transactions))
		}
	})

	t.Run("full listing has no cap", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		seed(t, repo, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)
		uc := NewListTransactionsUseCase(repo)

		output, err := uc.ExecuteAll(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Transactions) != 12 {
			t.Errorf("expected 12 transactions, got %d", len(output.Transactions))
		}
	})
}
