// Package model defines the core domain types for the finance tracker.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is income or expense.
// It is derived from the sign of the amount and must stay consistent with it.
type TransactionType string

const (
	// TransactionTypeIncome marks transactions with a non-negative amount.
	TransactionTypeIncome TransactionType = "income"
	// TransactionTypeExpense marks transactions with a negative amount.
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single dated, signed monetary record.
// Negative amounts are expenses, non-negative amounts are income.
type Transaction struct {
	Date        time.Time
	CreatedAt   time.Time
	Description string
	Category    string
	Type        TransactionType
	Amount      decimal.Decimal
	ID          int64
}

// TypeForAmount returns the transaction type implied by the sign of amount.
func TypeForAmount(amount decimal.Decimal) TransactionType {
	if amount.IsNegative() {
		return TransactionTypeExpense
	}
	return TransactionTypeIncome
}

// Consistent reports whether the transaction's type matches the sign of
// its amount. A mismatch is a data-integrity error, never a valid state.
func (t *Transaction) Consistent() bool {
	return t.Type == TypeForAmount(t.Amount)
}

// NewTransaction builds a transaction draft with the type derived from the
// amount's sign. ID and CreatedAt are assigned by the store on insert.
func NewTransaction(date time.Time, description string, amount decimal.Decimal, category string) Transaction {
	return Transaction{
		Date:        date,
		Description: description,
		Amount:      amount,
		Category:    category,
		Type:        TypeForAmount(amount),
	}
}
