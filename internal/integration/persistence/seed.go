// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/fin-ledger/backend/internal/domain/entity"
	"github.com/fin-ledger/backend/internal/integration/persistence/model"
)

// SeedCategories inserts the default category set into an empty categories
// table. It is idempotent: a store that has ever been seeded (or that the
// user has added categories to) is left untouched, so re-initialization is
// additive rather than destructive.
func SeedCategories(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.CategoryModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	seeds := entity.SeedCategories()
	models := make([]*model.CategoryModel, len(seeds))
	for i, category := range seeds {
		models[i] = model.CategoryFromEntity(category)
	}

	if err := db.WithContext(ctx).Create(models).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	slog.Info("Seeded default categories", "count", len(models))
	return nil
}
