package keyword

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/SemTiOne/personal-finance-tracker/internal/model"
)

// Categorizer assigns a category to a transaction description using
// substring keyword matching against a configured index.
type Categorizer struct {
	index *Index
}

// NewCategorizer creates a categorizer backed by the given index.
func NewCategorizer(index *Index) *Categorizer {
	return &Categorizer{index: index}
}

// Categorize returns the best-guess category for a description and signed
// amount. It is a pure function of its inputs and the current index and
// never fails; descriptions with no keyword match return the
// Uncategorized sentinel.
//
// Ties between categories are broken deterministically: the longest
// matching keyword wins, and among equal lengths the category earlier in
// the index's priority order wins. A match whose category type contradicts
// the amount's sign is discarded in favor of Uncategorized rather than
// returned as an inconsistent label.
func (c *Categorizer) Categorize(description string, amount decimal.Decimal) string {
	desc := strings.ToLower(description)
	if desc == "" {
		return model.CategoryUncategorized
	}

	var (
		best    *Entry
		bestLen int
	)

	// Entries are scanned in priority order, so a strictly-longer match is
	// required to displace an earlier category.
	for i := range c.index.entries {
		entry := &c.index.entries[i]
		for _, kw := range entry.Keywords {
			if len(kw) > bestLen && strings.Contains(desc, kw) {
				best = entry
				bestLen = len(kw)
			}
		}
	}

	if best == nil {
		return model.CategoryUncategorized
	}

	// Amount sign is a secondary signal: an expense keyword on income (or
	// the reverse) means the match cannot be trusted.
	if string(best.Type) != string(model.TypeForAmount(amount)) {
		return model.CategoryUncategorized
	}

	return best.Category
}
