package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SemTiOne/personal-finance-tracker/internal/common"
	"github.com/SemTiOne/personal-finance-tracker/internal/model"
	"github.com/SemTiOne/personal-finance-tracker/internal/service"
)

const dateLayout = "2006-01-02"

// InsertTransaction stores a new transaction and returns its assigned ID.
// The transaction's type must match the sign of its amount.
func (s *SQLiteStorage) InsertTransaction(ctx context.Context, txn model.Transaction) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateTransaction(&txn); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (date, description, amount, category, type)
		VALUES (?, ?, ?, ?, ?)`,
		txn.Date.Format(dateLayout),
		txn.Description,
		txn.Amount.String(),
		txn.Category,
		string(txn.Type),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get transaction ID: %w", err)
	}

	slog.Debug("inserted transaction",
		"id", id,
		"category", txn.Category,
		"amount", txn.Amount.String())
	return id, nil
}

// GetTransactionByID returns a single transaction by its ID.
func (s *SQLiteStorage) GetTransactionByID(ctx context.Context, id int64) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, date, description, amount, category, type, created_at
		FROM transactions
		WHERE id = ?`, id)

	txn, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &common.NotFoundError{Kind: "transaction", Key: fmt.Sprintf("%d", id)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction: %w", err)
	}

	return txn, nil
}

// GetTransactions returns transactions matching the filter, most recent
// date first.
func (s *SQLiteStorage) GetTransactions(ctx context.Context, filter service.TransactionFilter) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, fmt.Errorf("%w: end date %v is before start date %v",
			ErrInvalidDateRange, filter.EndDate.Format(dateLayout), filter.StartDate.Format(dateLayout))
	}

	query := `
		SELECT id, date, description, amount, category, type, created_at
		FROM transactions
		WHERE 1=1`
	args := make([]any, 0, 4)

	if filter.StartDate != nil {
		query += " AND date >= ?"
		args = append(args, filter.StartDate.Format(dateLayout))
	}
	if filter.EndDate != nil {
		query += " AND date <= ?"
		args = append(args, filter.EndDate.Format(dateLayout))
	}
	if filter.Category != "" {
		query += " AND category = ?"
		args = append(args, filter.Category)
	}

	query += " ORDER BY date DESC, id DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		txn, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", scanErr)
		}
		transactions = append(transactions, *txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return transactions, nil
}

// UpdateTransactionCategory re-categorizes a stored transaction. The new
// category, if known to the store, must be type-compatible with the
// transaction.
func (s *SQLiteStorage) UpdateTransactionCategory(ctx context.Context, id int64, category string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(category, "category"); err != nil {
		return err
	}

	txn, err := s.GetTransactionByID(ctx, id)
	if err != nil {
		return err
	}

	// Ad-hoc category names are allowed; only a known category with a
	// conflicting type is rejected.
	cat, err := s.GetCategoryByName(ctx, category)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return err
	}
	if cat != nil && !cat.Compatible(txn.Type) {
		return &common.ReferenceError{
			Category: category,
			Reason:   fmt.Sprintf("cannot assign %s category to %s transaction", cat.Type, txn.Type),
		}
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE transactions SET category = ? WHERE id = ?", category, id)
	if err != nil {
		return fmt.Errorf("failed to update transaction category: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &common.NotFoundError{Kind: "transaction", Key: fmt.Sprintf("%d", id)}
	}

	slog.Info("re-categorized transaction", "id", id, "category", category)
	return nil
}

// DeleteTransaction removes a transaction by ID.
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &common.NotFoundError{Kind: "transaction", Key: fmt.Sprintf("%d", id)}
	}

	slog.Info("deleted transaction", "id", id)
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanning.
type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner) (*model.Transaction, error) {
	var (
		txn       model.Transaction
		date      time.Time
		amount    string
		txnType   string
		createdAt time.Time
	)

	if err := row.Scan(&txn.ID, &date, &txn.Description, &amount, &txn.Category, &txnType, &createdAt); err != nil {
		return nil, err
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("stored amount %q is not a decimal: %w", amount, err)
	}

	txn.Date = date
	txn.Amount = parsed
	txn.Type = model.TransactionType(txnType)
	txn.CreatedAt = createdAt

	if !txn.Consistent() {
		return nil, &common.ConsistencyError{
			Detail: fmt.Sprintf("transaction %d has type %s with amount %s", txn.ID, txn.Type, txn.Amount),
		}
	}

	return &txn, nil
}
