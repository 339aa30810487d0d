package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/SemTiOne/personal-finance-tracker/internal/model"
)

// exportHeader is the canonical field order for exported transactions.
var exportHeader = []string{"date", "description", "amount", "category", "type"}

// ExportCSV writes transactions in canonical field order. The delimiter
// and any further serialization concerns belong to the writer's consumer.
func ExportCSV(w io.Writer, transactions []model.Transaction) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for _, txn := range transactions {
		record := []string{
			txn.Date.Format("2006-01-02"),
			txn.Description,
			txn.Amount.String(),
			txn.Category,
			string(txn.Type),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write transaction %d: %w", txn.ID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush export: %w", err)
	}
	return nil
}
