// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fin-ledger/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// CategoryName and Icon are denormalized copies, not foreign keys: renaming a
// category (out of scope today) must not rewrite history.
type TransactionModel struct {
	ID           uint            `gorm:"primaryKey;autoIncrement"`
	Title        string          `gorm:"type:varchar(255);not null"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CategoryName string          `gorm:"type:varchar(20);not null"`
	Kind         string          `gorm:"type:varchar(10);not null;index"`
	Date         time.Time       `gorm:"type:date;not null;index"`
	Icon         string          `gorm:"type:varchar(20);not null;default:'other'"`
	CreatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:           m.ID,
		Title:        m.Title,
		Amount:       m.Amount,
		CategoryName: m.CategoryName,
		Kind:         entity.Kind(m.Kind),
		Date:         m.Date,
		Icon:         m.Icon,
		CreatedAt:    m.CreatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:           transaction.ID,
		Title:        transaction.Title,
		Amount:       transaction.Amount,
		CategoryName: transaction.CategoryName,
		Kind:         string(transaction.Kind),
		Date:         transaction.Date,
		Icon:         transaction.Icon,
		CreatedAt:    transaction.CreatedAt,
	}
}
