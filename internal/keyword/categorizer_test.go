package keyword

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SemTiOne/personal-finance-tracker/internal/model"
)

func testIndex() *Index {
	return NewIndex([]Entry{
		{
			Category: "Food & Dining",
			Type:     model.CategoryTypeExpense,
			Keywords: []string{"grocery", "restaurant", "coffee"},
		},
		{
			Category: "Transportation",
			Type:     model.CategoryTypeExpense,
			Keywords: []string{"gas", "uber"},
		},
		{
			Category: "Bills & Utilities",
			Type:     model.CategoryTypeExpense,
			Keywords: []string{"gas bill", "internet"},
		},
		{
			Category: "Salary",
			Type:     model.CategoryTypeIncome,
			Keywords: []string{"payroll", "salary"},
		},
	})
}

func TestCategorizer_Categorize(t *testing.T) {
	categorizer := NewCategorizer(testIndex())

	tests := []struct {
		name        string
		description string
		amount      string
		want        string
	}{
		{
			name:        "single keyword match",
			description: "Grocery Store",
			amount:      "-125.50",
			want:        "Food & Dining",
		},
		{
			name:        "case insensitive match",
			description: "UBER TRIP HELSINKI",
			amount:      "-18.50",
			want:        "Transportation",
		},
		{
			name:        "no keyword match",
			description: "Mystery Purchase",
			amount:      "-10.00",
			want:        model.CategoryUncategorized,
		},
		{
			name:        "empty description",
			description: "",
			amount:      "-5.00",
			want:        model.CategoryUncategorized,
		},
		{
			name:        "longest keyword wins across categories",
			description: "City Gas Bill March",
			amount:      "-80.00",
			want:        "Bills & Utilities",
		},
		{
			name:        "income keyword with positive amount",
			description: "ACME Corp Payroll",
			amount:      "3500.00",
			want:        "Salary",
		},
		{
			name:        "income keyword with negative amount falls back",
			description: "ACME Corp Payroll",
			amount:      "-3500.00",
			want:        model.CategoryUncategorized,
		},
		{
			name:        "expense keyword with positive amount falls back",
			description: "Grocery Store Refund",
			amount:      "125.50",
			want:        model.CategoryUncategorized,
		},
		{
			name:        "zero amount counts as income",
			description: "Salary adjustment",
			amount:      "0",
			want:        "Salary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := categorizer.Categorize(tt.description, decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategorizer_TieBreakPriorityOrder(t *testing.T) {
	// Two categories share a keyword of the same length; the one earlier
	// in the index wins.
	index := NewIndex([]Entry{
		{Category: "First", Type: model.CategoryTypeExpense, Keywords: []string{"market"}},
		{Category: "Second", Type: model.CategoryTypeExpense, Keywords: []string{"market"}},
	})
	categorizer := NewCategorizer(index)

	got := categorizer.Categorize("Central Market", decimal.RequireFromString("-20"))
	assert.Equal(t, "First", got)
}

func TestCategorizer_PureFunction(t *testing.T) {
	categorizer := NewCategorizer(testIndex())
	amount := decimal.RequireFromString("-12.00")

	first := categorizer.Categorize("coffee shop downtown", amount)
	second := categorizer.Categorize("coffee shop downtown", amount)
	assert.Equal(t, first, second)
}

func TestIndex_AddKeywordIdempotent(t *testing.T) {
	index := testIndex()

	index.AddKeyword("Food & Dining", "Bakery")
	index.AddKeyword("Food & Dining", "bakery")
	index.AddKeyword("Food & Dining", "bakery")

	keywords := index.Keywords("Food & Dining")
	count := 0
	for _, kw := range keywords {
		if kw == "bakery" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestIndex_AddKeywordExtendsWithoutRestart(t *testing.T) {
	index := testIndex()
	categorizer := NewCategorizer(index)
	amount := decimal.RequireFromString("-45.00")

	assert.Equal(t, model.CategoryUncategorized, categorizer.Categorize("Vet visit", amount))

	index.AddKeyword("Healthcare", "vet")
	assert.Equal(t, "Healthcare", categorizer.Categorize("Vet visit", amount))
}

func TestIndex_AddCategoryKeepsPriority(t *testing.T) {
	index := testIndex()

	// Re-adding an existing category must not move it to the back or
	// change its type.
	index.AddCategory("Food & Dining", model.CategoryTypeIncome, "brunch")

	categories := index.Categories()
	require.NotEmpty(t, categories)
	assert.Equal(t, "Food & Dining", categories[0])

	categorizer := NewCategorizer(index)
	got := categorizer.Categorize("Sunday brunch", decimal.RequireFromString("-30"))
	assert.Equal(t, "Food & Dining", got)
}

func TestDefaultIndex_Coverage(t *testing.T) {
	index := DefaultIndex()

	categories := index.Categories()
	assert.GreaterOrEqual(t, len(categories), 10, "default index should cover at least 10 categories")

	total := 0
	for _, category := range categories {
		total += len(index.Keywords(category))
	}
	assert.GreaterOrEqual(t, total, 100, "default index should cover at least 100 keywords")
}

func TestDefaultIndex_SampleDescriptions(t *testing.T) {
	categorizer := NewCategorizer(DefaultIndex())

	tests := []struct {
		description string
		amount      string
		want        string
	}{
		{"Grocery Store", "-125.50", "Food & Dining"},
		{"Gas Station", "-45.00", "Transportation"},
		{"Amazon Purchase", "-89.99", "Shopping"},
		{"Electricity Bill", "-120.00", "Bills & Utilities"},
		{"Gym Membership", "-50.00", "Entertainment"},
		{"Pharmacy", "-25.75", "Healthcare"},
		{"Salary - ABC Corp", "3500.00", "Salary"},
		{"Freelance Project", "500.00", "Freelance"},
		{"Quarterly dividend", "82.10", "Investments"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			got := categorizer.Categorize(tt.description, decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.want, got)
		})
	}
}
