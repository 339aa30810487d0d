package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SemTiOne/personal-finance-tracker/internal/model"
	"github.com/SemTiOne/personal-finance-tracker/internal/testutil"
)

func TestExportCSV(t *testing.T) {
	transactions := []model.Transaction{
		testutil.Txn("2026-02-01", "Grocery Store", "-125.50", "Food & Dining"),
		testutil.Txn("2026-02-02", "Salary - ABC Corp", "3500.00", "Salary"),
	}

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, transactions))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "date,description,amount,category,type", lines[0])
	assert.Equal(t, "2026-02-01,Grocery Store,-125.5,Food & Dining,expense", lines[1])
	assert.Equal(t, "2026-02-02,Salary - ABC Corp,3500,Salary,income", lines[2])
}

func TestExportCSV_QuotesEmbeddedCommas(t *testing.T) {
	transactions := []model.Transaction{
		testutil.Txn("2026-02-01", "Dinner, drinks and tip", "-88.00", "Food & Dining"),
	}

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, transactions))
	assert.Contains(t, buf.String(), `"Dinner, drinks and tip"`)
}

func TestExportCSV_EmptySet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, nil))
	assert.Equal(t, "date,description,amount,category,type\n", buf.String())
}
