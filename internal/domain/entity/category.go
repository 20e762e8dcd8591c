// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"
)

// Kind classifies categories and transactions as income or expense.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// IsValid reports whether k is one of the two known kinds.
func (k Kind) IsValid() bool {
	return k == KindIncome || k == KindExpense
}

// DefaultIcon is the icon assigned when the caller does not pick one.
const DefaultIcon = "other"

// Category name length bounds, applied after trimming whitespace.
const (
	MinCategoryNameLength = 1
	MaxCategoryNameLength = 20
)

// icons is the fixed set of icon identifiers a category may carry.
var icons = map[string]struct{}{
	"food":          {},
	"cafe":          {},
	"transport":     {},
	"entertainment": {},
	"salary":        {},
	"gift":          {},
	"bank":          {},
	"hospital":      {},
	"internet":      {},
	"music":         {},
	"game":          {},
	"car":           {},
	"phone":         {},
	"book":          {},
	"cash":          {},
	DefaultIcon:     {},
}

// IsValidIcon reports whether icon belongs to the fixed icon set.
func IsValidIcon(icon string) bool {
	_, ok := icons[icon]
	return ok
}

// Category represents a user-defined grouping for transactions.
// The pair (Name, Kind) is unique across the store.
type Category struct {
	ID        uint
	Name      string
	Kind      Kind
	Icon      string
	CreatedAt time.Time
}

// NewCategory creates a new Category entity with a trimmed name.
// The ID is assigned by the store.
func NewCategory(name string, kind Kind, icon string) *Category {
	if icon == "" {
		icon = DefaultIcon
	}
	return &Category{
		Name:      strings.TrimSpace(name),
		Kind:      kind,
		Icon:      icon,
		CreatedAt: time.Now().UTC(),
	}
}

// SeedCategories returns the fixed category set created on a fresh store.
func SeedCategories() []*Category {
	return []*Category{
		NewCategory("Зарплата", KindIncome, "salary"),
		NewCategory("Подарок", KindIncome, "gift"),
		NewCategory("Продукты", KindExpense, "food"),
		NewCategory("Кафе", KindExpense, "cafe"),
		NewCategory("Транспорт", KindExpense, "transport"),
		NewCategory("Развлечения", KindExpense, "entertainment"),
	}
}
