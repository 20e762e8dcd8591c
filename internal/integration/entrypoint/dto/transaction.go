// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/fin-ledger/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction
// creation. Amount travels as a decimal string so no precision is lost in
// JSON number handling. Date, when present, uses DD.MM.YYYY; it defaults to
// today. Icon, when absent, is copied from the category.
type CreateTransactionRequest struct {
	Title        string `json:"title" binding:"required"`
	Amount       string `json:"amount" binding:"required"`
	CategoryName string `json:"category_name" binding:"required"`
	Kind         string `json:"kind" binding:"required,oneof=income expense"`
	Date         string `json:"date,omitempty"`
	Icon         string `json:"icon,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Amount       string    `json:"amount"`
	CategoryName string    `json:"category_name"`
	Kind         string    `json:"kind"`
	Date         string    `json:"date"`
	Icon         string    `json:"icon"`
	CreatedAt    time.Time `json:"created_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a
// TransactionResponse DTO, rendering the date as DD.MM.YYYY.
func ToTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           transaction.ID,
		Title:        transaction.Title,
		Amount:       transaction.Amount.String(),
		CategoryName: transaction.CategoryName,
		Kind:         string(transaction.Kind),
		Date:         transaction.Date.Format(entity.DisplayDateFormat),
		Icon:         transaction.Icon,
		CreatedAt:    transaction.CreatedAt,
	}
}

// ToTransactionListResponse converts domain transactions to a
// TransactionListResponse.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, transaction := range transactions {
		responses[i] = ToTransactionResponse(transaction)
	}
	return TransactionListResponse{Transactions: responses}
}
