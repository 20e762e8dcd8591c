// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/fin-ledger/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
// The composite unique index carries the (name, kind) invariant so a
// duplicate insert fails at the store even without the usecase pre-check.
type CategoryModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_categories_name_kind"`
	Kind      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_categories_name_kind"`
	Icon      string    `gorm:"type:varchar(20);not null;default:'other'"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:        m.ID,
		Name:      m.Name,
		Kind:      entity.Kind(m.Kind),
		Icon:      m.Icon,
		CreatedAt: m.CreatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:        category.ID,
		Name:      category.Name,
		Kind:      string(category.Kind),
		Icon:      category.Icon,
		CreatedAt: category.CreatedAt,
	}
}
