// Package statistics computes aggregate figures over transaction snapshots.
//
// Everything in this file is a pure function: no state, no error paths, safe
// to call concurrently.
package statistics

import (
	"github.com/shopspring/decimal"

	"github.com/fin-ledger/backend/internal/domain/entity"
)

var oneHundred = decimal.NewFromInt(100)

// Totals sums transaction amounts per kind. An empty snapshot yields (0, 0).
func Totals(transactions []*entity.Transaction) (income, expense decimal.Decimal) {
	income = decimal.Zero
	expense = decimal.Zero
	for _, tx := range transactions {
		switch tx.Kind {
		case entity.KindIncome:
			income = income.Add(tx.Amount)
		case entity.KindExpense:
			expense = expense.Add(tx.Amount)
		}
	}
	return income, expense
}

// Balance is total income minus total expense. It is derived, never stored.
func Balance(transactions []*entity.Transaction) decimal.Decimal {
	income, expense := Totals(transactions)
	return income.Sub(expense)
}

// CategoryTotals groups transactions of the given kind by category name and
// sums the amounts per group. Categories with no transactions are absent from
// the result, not zero-filled.
func CategoryTotals(transactions []*entity.Transaction, kind entity.Kind) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if tx.Kind != kind {
			continue
		}
		totals[tx.CategoryName] = totals[tx.CategoryName].Add(tx.Amount)
	}
	return totals
}

// Percentage returns amount/total as a whole percent, truncated toward zero.
// A zero total yields 0.
func Percentage(amount, total decimal.Decimal) int {
	if total.IsZero() {
		return 0
	}
	return int(amount.Mul(oneHundred).Div(total).IntPart())
}
