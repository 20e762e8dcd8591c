// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/fin-ledger/backend/internal/application/usecase/statistics"
)

// CategoryBreakdownResponse is one category's share within a summary.
type CategoryBreakdownResponse struct {
	CategoryName string `json:"category_name"`
	Amount       string `json:"amount"`
	Percentage   int    `json:"percentage"`
}

// SummaryResponse represents the aggregate over the full history.
type SummaryResponse struct {
	TotalIncome  string                      `json:"total_income"`
	TotalExpense string                      `json:"total_expense"`
	Balance      string                      `json:"balance"`
	Income       []CategoryBreakdownResponse `json:"income"`
	Expense      []CategoryBreakdownResponse `json:"expense"`
}

// ToSummaryResponse converts a summary usecase output to a SummaryResponse DTO.
func ToSummaryResponse(output *statistics.GetSummaryOutput) SummaryResponse {
	return SummaryResponse{
		TotalIncome:  output.TotalIncome.String(),
		TotalExpense: output.TotalExpense.String(),
		Balance:      output.Balance.String(),
		Income:       toBreakdownResponses(output.Income),
		Expense:      toBreakdownResponses(output.Expense),
	}
}

func toBreakdownResponses(breakdowns []statistics.CategoryBreakdown) []CategoryBreakdownResponse {
	responses := make([]CategoryBreakdownResponse, len(breakdowns))
	for i, b := range breakdowns {
		responses[i] = CategoryBreakdownResponse{
			CategoryName: b.CategoryName,
			Amount:       b.Amount.String(),
			Percentage:   b.Percentage,
		}
	}
	return responses
}
