// Package storage provides the data persistence layer for the tracker.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SemTiOne/personal-finance-tracker/internal/common"
	"github.com/SemTiOne/personal-finance-tracker/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrNilParameter       = errors.New("parameter cannot be nil")
	ErrInvalidDateRange   = errors.New("start date must be before end date")
	ErrInvalidType        = errors.New("invalid category type")
	ErrInvalidTransaction = errors.New("invalid transaction")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateCategoryType ensures the category type is income or expense.
func validateCategoryType(t model.CategoryType) error {
	if t != model.CategoryTypeIncome && t != model.CategoryTypeExpense {
		return fmt.Errorf("%w: %q", ErrInvalidType, t)
	}
	return nil
}

// validateTransaction validates a transaction before it is stored.
func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	if strings.TrimSpace(txn.Description) == "" {
		return fmt.Errorf("%w: missing description", ErrInvalidTransaction)
	}
	if strings.TrimSpace(txn.Category) == "" {
		return fmt.Errorf("%w: missing category", ErrInvalidTransaction)
	}
	if !txn.Consistent() {
		return &common.ConsistencyError{
			Detail: fmt.Sprintf("type %s with amount %s", txn.Type, txn.Amount),
		}
	}
	return nil
}
