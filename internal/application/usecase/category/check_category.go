// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/fin-ledger/backend/internal/application/adapter"
	"github.com/fin-ledger/backend/internal/domain/entity"
	domainerror "github.com/fin-ledger/backend/internal/domain/error"
)

// CheckCategoryInput represents the input for the existence check.
type CheckCategoryInput struct {
	Name string
	Kind entity.Kind
}

// CheckCategoryOutput represents the output of the existence check.
type CheckCategoryOutput struct {
	Exists bool
}

// CheckCategoryUseCase reports whether a (name, kind) pair is already taken.
// Callers use it as a pre-write guard before creating a category.
type CheckCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCheckCategoryUseCase creates a new CheckCategoryUseCase instance.
func NewCheckCategoryUseCase(categoryRepo adapter.CategoryRepository) *CheckCategoryUseCase {
	return &CheckCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the existence check with an exact match on name and kind.
func (uc *CheckCategoryUseCase) Execute(ctx context.Context, input CheckCategoryInput) (*CheckCategoryOutput, error) {
	if !input.Kind.IsValid() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidKind,
			"kind must be income or expense",
			domainerror.ErrInvalidKind,
		)
	}

	exists, err := uc.categoryRepo.ExistsByNameAndKind(ctx, strings.TrimSpace(input.Name), input.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to check category existence: %w", err)
	}

	return &CheckCategoryOutput{Exists: exists}, nil
}
