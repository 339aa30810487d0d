package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"

	"github.com/SemTiOne/personal-finance-tracker/internal/keyword"
	"github.com/SemTiOne/personal-finance-tracker/internal/model"
	"github.com/SemTiOne/personal-finance-tracker/internal/service"
)

// OFXImporter imports transactions from OFX/QFX statement files, feeding
// them through the same categorization pipeline as CSV rows.
type OFXImporter struct {
	store       service.Storage
	categorizer *keyword.Categorizer
}

// NewOFXImporter creates an OFX importer writing to the given store.
func NewOFXImporter(store service.Storage, categorizer *keyword.Categorizer) *OFXImporter {
	return &OFXImporter{
		store:       store,
		categorizer: categorizer,
	}
}

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	tagFixRegex   = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocessOFX fixes common formatting issues in OFX files: mixed-case
// SEVERITY values and SGML-style tags missing their closing bracket.
func preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)
	content = tagFixRegex.ReplaceAllString(content, "$1>")
	return content
}

// Import parses an OFX/QFX file and inserts its transactions. Statements
// that fail to convert are collected as skipped entries; one bad entry
// never aborts the batch.
func (i *OFXImporter) Import(ctx context.Context, r io.Reader, dryRun bool) (*Result, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var entries []ofxgo.Transaction
	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			entries = append(entries, stmt.BankTranList.Transactions...)
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			entries = append(entries, stmt.BankTranList.Transactions...)
		}
	}

	result := &Result{}
	for n, entry := range entries {
		txn, convErr := i.convert(entry)
		if convErr != nil {
			result.Skipped = append(result.Skipped, SkippedRow{
				Line:   n + 1,
				Row:    []string{string(entry.Name), entry.TrnAmt.String()},
				Reason: convErr.Error(),
			})
			continue
		}

		if !dryRun {
			if _, err := i.store.InsertTransaction(ctx, txn); err != nil {
				result.Skipped = append(result.Skipped, SkippedRow{
					Line:   n + 1,
					Row:    []string{string(entry.Name), entry.TrnAmt.String()},
					Reason: err.Error(),
				})
				continue
			}
		}
		result.Imported++
	}

	slog.Info("parsed OFX file",
		"imported", result.Imported,
		"skipped", len(result.Skipped),
		"dry_run", dryRun)
	return result, nil
}

// convert turns an OFX entry into a transaction draft. OFX already uses
// signed amounts with debits negative, matching our convention.
func (i *OFXImporter) convert(entry ofxgo.Transaction) (model.Transaction, error) {
	description := strings.TrimSpace(string(entry.Name))
	if entry.Payee != nil && entry.Payee.Name != "" {
		description = strings.TrimSpace(string(entry.Payee.Name))
	}
	if description == "" {
		description = strings.TrimSpace(string(entry.Memo))
	}
	if description == "" {
		return model.Transaction{}, fmt.Errorf("entry %s has no description", entry.FiTID)
	}

	amount := decimal.NewFromBigRat(&entry.TrnAmt.Rat, 2)

	posted := entry.DtPosted.Time
	date := time.Date(posted.Year(), posted.Month(), posted.Day(), 0, 0, 0, 0, time.UTC)

	category := i.categorizer.Categorize(description, amount)
	return model.NewTransaction(date, description, amount, category), nil
}
