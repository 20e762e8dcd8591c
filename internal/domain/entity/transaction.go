// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DisplayDateFormat is the wire format for transaction dates (DD.MM.YYYY).
const DisplayDateFormat = "02.01.2006"

// Transaction represents a single income or expense record.
// The category name and icon are denormalized copies taken at creation time,
// so historical records stay an exact snapshot of what was entered.
// Transactions are immutable after creation.
type Transaction struct {
	ID           uint
	Title        string
	Amount       decimal.Decimal
	CategoryName string
	Kind         Kind
	Date         time.Time
	Icon         string
	CreatedAt    time.Time
}

// NewTransaction creates a new Transaction entity. The ID is assigned by the
// store. The date is truncated to day precision.
func NewTransaction(title string, amount decimal.Decimal, categoryName string, kind Kind, date time.Time, icon string) *Transaction {
	if icon == "" {
		icon = DefaultIcon
	}
	return &Transaction{
		Title:        title,
		Amount:       amount,
		CategoryName: categoryName,
		Kind:         kind,
		Date:         date.Truncate(24 * time.Hour),
		Icon:         icon,
		CreatedAt:    time.Now().UTC(),
	}
}
