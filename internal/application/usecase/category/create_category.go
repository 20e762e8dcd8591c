// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fin-ledger/backend/internal/application/adapter"
	"github.com/fin-ledger/backend/internal/domain/entity"
	domainerror "github.com/fin-ledger/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name string
	Kind entity.Kind
	Icon string
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation. The (name, kind) uniqueness
// invariant is enforced here and again by the store's unique index, so a
// concurrent caller cannot slip a duplicate past the pre-check.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if len([]rune(name)) < entity.MinCategoryNameLength || len([]rune(name)) > entity.MaxCategoryNameLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryName,
			fmt.Sprintf("category name must be %d-%d characters", entity.MinCategoryNameLength, entity.MaxCategoryNameLength),
			domainerror.ErrInvalidCategoryName,
		)
	}

	if !input.Kind.IsValid() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidKind,
			"kind must be income or expense",
			domainerror.ErrInvalidKind,
		)
	}

	icon := input.Icon
	if icon == "" {
		icon = entity.DefaultIcon
	}
	if !entity.IsValidIcon(icon) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeUnknownIcon,
			"icon is not in the supported icon set",
			domainerror.ErrUnknownIcon,
		)
	}

	exists, err := uc.categoryRepo.ExistsByNameAndKind(ctx, name, input.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to check category existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryExists,
			"category with this name and kind already exists",
			domainerror.ErrCategoryAlreadyExists,
		)
	}

	category := entity.NewCategory(name, input.Kind, icon)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, domainerror.ErrCategoryAlreadyExists) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryExists,
				"category with this name and kind already exists",
				err,
			)
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{Category: category}, nil
}
