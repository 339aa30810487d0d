// Package importer parses external transaction rows into the canonical
// transaction shape and feeds them through auto-categorization.
package importer

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SemTiOne/personal-finance-tracker/internal/common"
	"github.com/SemTiOne/personal-finance-tracker/internal/model"
)

// dateFormats are tried in order; the first format that parses wins. The
// list order is the contract: ISO first, then US month-first, then
// day-first and the remaining variants.
var dateFormats = []string{
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	"2006/01/02",
	"01-02-2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// currencyReplacer strips currency symbols and thousands separators
// before decimal parsing.
var currencyReplacer = strings.NewReplacer("$", "", "€", "", "£", "", ",", "")

// ParseDate parses a date string by trying each supported format in
// priority order.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, common.NewValidationError("date", s, "empty")
	}

	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, common.NewValidationError("date", s, "unrecognized format")
}

// ParseAmount parses an amount string into a signed decimal. Currency
// symbols and thousands separators are stripped, and a parenthesized
// amount is treated as negative per accounting convention.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, common.NewValidationError("amount", s, "empty")
	}

	cleaned := currencyReplacer.Replace(s)
	cleaned = strings.TrimSpace(cleaned)

	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		cleaned = "-" + strings.Trim(cleaned, "()")
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, common.NewValidationError("amount", s, "not a decimal value")
	}

	return amount, nil
}

// NormalizeRow turns a raw (date, description, amount) row into a
// transaction draft with the type inferred from the amount's sign. The
// category is left empty for the caller to fill, either from an explicit
// column or the categorizer.
func NormalizeRow(dateStr, description, amountStr string) (model.Transaction, error) {
	date, err := ParseDate(dateStr)
	if err != nil {
		return model.Transaction{}, err
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return model.Transaction{}, common.NewValidationError("description", description, "empty")
	}

	amount, err := ParseAmount(amountStr)
	if err != nil {
		return model.Transaction{}, err
	}

	return model.NewTransaction(date, description, amount, ""), nil
}
