// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/fin-ledger/backend/internal/domain/entity"
	domainerror "github.com/fin-ledger/backend/internal/domain/error"
)

// fakeCategoryRepository keeps categories in a map keyed by (name, kind).
type fakeCategoryRepository struct {
	categories map[string]*entity.Category
	nextID     uint
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{categories: make(map[string]*entity.Category), nextID: 1}
}

func (f *fakeCategoryRepository) key(name string, kind entity.Kind) string {
	return name + "|" + string(kind)
}

func (f *fakeCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	k := f.key(category.Name, category.Kind)
	if _, taken := f.categories[k]; taken {
		return domainerror.ErrCategoryAlreadyExists
	}
	category.ID = f.nextID
	f.nextID++
	f.categories[k] = category
	return nil
}

func (f *fakeCategoryRepository) FindByKind(ctx context.Context, kind entity.Kind) ([]*entity.Category, error) {
	var result []*entity.Category
	for _, c := range f.categories {
		if c.Kind == kind {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (f *fakeCategoryRepository) FindByNameAndKind(ctx context.Context, name string, kind entity.Kind) (*entity.Category, error) {
	return f.categories[f.key(name, kind)], nil
}

func (f *fakeCategoryRepository) ExistsByNameAndKind(ctx context.Context, name string, kind entity.Kind) (bool, error) {
	_, ok := f.categories[f.key(name, kind)]
	return ok, nil
}

func TestCreateCategoryUseCase_Execute(t *testing.T) {
	t.Run("creates a category with a valid icon", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		uc := NewCreateCategoryUseCase(repo)

		output, err := uc.Execute(context.Background(), CreateCategoryInput{
			Name: "Coffee",
			Kind: entity.KindExpense,
			Icon: "cafe",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Category.ID == 0 {
			t.Error("expected store-assigned category ID")
		}
		if output.Category.Icon != "cafe" {
			t.Errorf("expected icon cafe, got %s", output.Category.Icon)
		}
	})

	t.Run("trims surrounding whitespace from the name", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		uc := NewCreateCategoryUseCase(repo)

		output, err := uc.Execute(context.Background(), CreateCategoryInput{
			Name: "  Coffee  ",
			Kind: entity.KindExpense,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Name != "Coffee" {
			t.Errorf("expected trimmed name Coffee, got %q", output.Category.Name)
		}
	})

	t.Run("defaults the icon when omitted", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepository())

		output, err := uc.Execute(context.Background(), CreateCategoryInput{
			Name: "Misc",
			Kind: entity.KindExpense,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Icon != entity.DefaultIcon {
			t.Errorf("expected default icon %s, got %s", entity.DefaultIcon, output.Category.Icon)
		}
	})

	t.Run("rejects unknown icons", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepository())

		_, err := uc.Execute(context.Background(), CreateCategoryInput{
			Name: "Misc",
			Kind: entity.KindExpense,
			Icon: "spaceship",
		})

		var catErr *domainerror.CategoryError
		if !errors.As(err, &catErr) || catErr.Code != domainerror.ErrCodeUnknownIcon {
			t.Errorf("expected unknown icon error, got %v", err)
		}
	})

	t.Run("rejects blank and overlong names", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepository())

		for _, name := range []string{"", "   ", strings.Repeat("x", entity.MaxCategoryNameLength+1)} {
			_, err := uc.Execute(context.Background(), CreateCategoryInput{
				Name: name,
				Kind: entity.KindExpense,
			})

			var catErr *domainerror.CategoryError
			if !errors.As(err, &catErr) || catErr.Code != domainerror.ErrCodeInvalidCategoryName {
				t.Errorf("name %q: expected invalid name error, got %v", name, err)
			}
		}
	})

	t.Run("name length is counted in runes", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepository())

		// 8 cyrillic characters, 16 bytes
		_, err := uc.Execute(context.Background(), CreateCategoryInput{
			Name: "Зарплата",
			Kind: entity.KindIncome,
		})
		if err != nil {
			t.Errorf("expected cyrillic name to pass length check, got %v", err)
		}
	})

	t.Run("rejects invalid kind", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepository())

		_, err := uc.Execute(context.Background(), CreateCategoryInput{
			Name: "Misc",
			Kind: entity.Kind("savings"),
		})

		var catErr *domainerror.CategoryError
		if !errors.As(err, &catErr) || catErr.Code != domainerror.ErrCodeInvalidKind {
			t.Errorf("expected invalid kind error, got %v", err)
		}
	})

	t.Run("rejects duplicate name within the same kind", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		uc := NewCreateCategoryUseCase(repo)

		input := CreateCategoryInput{Name: "Coffee", Kind: entity.KindExpense}
		if _, err := uc.Execute(context.Background(), input); err != nil {
			t.Fatalf("unexpected error on first create: %v", err)
		}

		_, err := uc.Execute(context.Background(), input)

		var catErr *domainerror.CategoryError
		if !errors.As(err, &catErr) || catErr.Code != domainerror.ErrCodeCategoryExists {
			t.Errorf("expected category exists error, got %v", err)
		}
	})

	t.Run("same name under the other kind is allowed", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		uc := NewCreateCategoryUseCase(repo)

		if _, err := uc.Execute(context.Background(), CreateCategoryInput{Name: "Other", Kind: entity.KindExpense}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Execute(context.Background(), CreateCategoryInput{Name: "Other", Kind: entity.KindIncome}); err != nil {
			t.Errorf("expected same name under income to succeed, got %v", err)
		}
	})
}

func TestListCategoriesUseCase_Execute(t *testing.T) {
	t.Run("returns categories of the requested kind ordered by name", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		create := NewCreateCategoryUseCase(repo)
		for _, name := range []string{"Transport", "Food", "Cafe"} {
			if _, err := create.Execute(context.Background(), CreateCategoryInput{Name: name, Kind: entity.KindExpense}); err != nil {
				t.Fatalf("fixture create failed: %v", err)
			}
		}
		uc := NewListCategoriesUseCase(repo)

		output, err := uc.Execute(context.Background(), ListCategoriesInput{Kind: entity.KindExpense})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := make([]string, len(output.Categories))
		for i, c := range output.Categories {
			got[i] = c.Name
		}
		want := []string{"Cafe", "Food", "Transport"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, got)
			}
		}
	})

	t.Run("empty kind set is an empty list, not an error", func(t *testing.T) {
		uc := NewListCategoriesUseCase(newFakeCategoryRepository())

		output, err := uc.Execute(context.Background(), ListCategoriesInput{Kind: entity.KindIncome})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Categories) != 0 {
			t.Errorf("expected empty list, got %d entries", len(output.Categories))
		}
	})

	t.Run("rejects invalid kind", func(t *testing.T) {
		uc := NewListCategoriesUseCase(newFakeCategoryRepository())

		_, err := uc.Execute(context.Background(), ListCategoriesInput{Kind: entity.Kind("bogus")})

		var catErr *domainerror.CategoryError
		if !errors.As(err, &catErr) || catErr.Code != domainerror.ErrCodeInvalidKind {
			t.Errorf("expected invalid kind error, got %v", err)
		}
	})
}

func TestCheckCategoryUseCase_Execute(t *testing.T) {
	repo := newFakeCategoryRepository()
	create := NewCreateCategoryUseCase(repo)
	if _, err := create.Execute(context.Background(), CreateCategoryInput{Name: "Food", Kind: entity.KindExpense}); err != nil {
		t.Fatalf("fixture create failed: %v", err)
	}
	uc := NewCheckCategoryUseCase(repo)

	t.Run("reports an existing pair", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), CheckCategoryInput{Name: "Food", Kind: entity.KindExpense})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Exists {
			t.Error("expected Food/expense to exist")
		}
	})

	t.Run("match is exact per kind", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), CheckCategoryInput{Name: "Food", Kind: entity.KindIncome})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Exists {
			t.Error("expected Food/income to be free")
		}
	})

	t.Run("trims the name before matching", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), CheckCategoryInput{Name: " Food ", Kind: entity.KindExpense})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Exists {
			t.Error("expected trimmed name to match")
		}
	})
}
