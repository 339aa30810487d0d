package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/SemTiOne/personal-finance-tracker/internal/common"
	"github.com/SemTiOne/personal-finance-tracker/internal/keyword"
	"github.com/SemTiOne/personal-finance-tracker/internal/model"
	"github.com/SemTiOne/personal-finance-tracker/internal/service"
)

// Options configures a CSV import.
type Options struct {
	// Column names, used when the file has a header row. Defaults are
	// Date, Description, Amount and Category.
	DateColumn        string
	DescriptionColumn string
	AmountColumn      string
	CategoryColumn    string

	HasHeader bool
	DryRun    bool
	Progress  bool
}

// SkippedRow records a row that failed normalization, with the original
// row and the reason it was skipped.
type SkippedRow struct {
	Reason string
	Row    []string
	Line   int
}

// Result reports the outcome of an import batch.
type Result struct {
	Skipped  []SkippedRow
	Imported int
}

// CSVImporter imports transactions from CSV rows. Rows that fail to
// normalize are collected and reported; a bad row never aborts the batch.
type CSVImporter struct {
	store       service.Storage
	categorizer *keyword.Categorizer
}

// NewCSVImporter creates a CSV importer writing to the given store.
func NewCSVImporter(store service.Storage, categorizer *keyword.Categorizer) *CSVImporter {
	return &CSVImporter{
		store:       store,
		categorizer: categorizer,
	}
}

// Import reads CSV rows and inserts the well-formed ones. Rows are
// normalized, categorized when no explicit category is given, and
// validated against the store's category types.
func (i *CSVImporter) Import(ctx context.Context, r io.Reader, opts Options) (*Result, error) {
	applyColumnDefaults(&opts)

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return &Result{}, nil
	}

	columns := positionalColumns()
	firstRow := 0
	if opts.HasHeader {
		columns = headerColumns(records[0], opts)
		firstRow = 1
	}

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.Default(int64(len(records) - firstRow))
	}

	result := &Result{}
	for line := firstRow; line < len(records); line++ {
		if bar != nil {
			_ = bar.Add(1)
		}

		row := records[line]
		if err := i.importRow(ctx, row, columns, opts.DryRun); err != nil {
			result.Skipped = append(result.Skipped, SkippedRow{
				Line:   line + 1,
				Row:    row,
				Reason: err.Error(),
			})
			slog.Debug("skipped row", "line", line+1, "reason", err)
			continue
		}
		result.Imported++
	}

	slog.Info("import finished",
		"imported", result.Imported,
		"skipped", len(result.Skipped),
		"dry_run", opts.DryRun)
	return result, nil
}

// columnMap resolves field positions for the four supported columns.
// A value of -1 means the column is absent.
type columnMap struct {
	date        int
	description int
	amount      int
	category    int
}

func positionalColumns() columnMap {
	return columnMap{date: 0, description: 1, amount: 2, category: 3}
}

func applyColumnDefaults(opts *Options) {
	if opts.DateColumn == "" {
		opts.DateColumn = "Date"
	}
	if opts.DescriptionColumn == "" {
		opts.DescriptionColumn = "Description"
	}
	if opts.AmountColumn == "" {
		opts.AmountColumn = "Amount"
	}
	if opts.CategoryColumn == "" {
		opts.CategoryColumn = "Category"
	}
}

func headerColumns(header []string, opts Options) columnMap {
	columns := columnMap{date: -1, description: -1, amount: -1, category: -1}
	for pos, name := range header {
		switch strings.TrimSpace(name) {
		case opts.DateColumn:
			columns.date = pos
		case opts.DescriptionColumn:
			columns.description = pos
		case opts.AmountColumn:
			columns.amount = pos
		case opts.CategoryColumn:
			columns.category = pos
		}
	}
	return columns
}

func field(row []string, pos int) string {
	if pos < 0 || pos >= len(row) {
		return ""
	}
	return row[pos]
}

func (i *CSVImporter) importRow(ctx context.Context, row []string, columns columnMap, dryRun bool) error {
	txn, err := NormalizeRow(
		field(row, columns.date),
		field(row, columns.description),
		field(row, columns.amount),
	)
	if err != nil {
		return err
	}

	if explicit := strings.TrimSpace(field(row, columns.category)); explicit != "" {
		if err := i.checkCategoryType(ctx, explicit, txn.Type); err != nil {
			return err
		}
		txn.Category = explicit
	} else {
		txn.Category = i.categorizer.Categorize(txn.Description, txn.Amount)
	}

	if dryRun {
		return nil
	}

	if _, err := i.store.InsertTransaction(ctx, txn); err != nil {
		return err
	}
	return nil
}

// checkCategoryType rejects an explicit category whose declared type
// contradicts the transaction's. Categories unknown to the store are
// allowed as ad-hoc soft references.
func (i *CSVImporter) checkCategoryType(ctx context.Context, category string, txnType model.TransactionType) error {
	cat, err := i.store.GetCategoryByName(ctx, category)
	if errors.Is(err, common.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !cat.Compatible(txnType) {
		return &common.ReferenceError{
			Category: category,
			Reason:   fmt.Sprintf("cannot assign %s category to %s transaction", cat.Type, txnType),
		}
	}
	return nil
}
