// Package keyword implements the keyword index and the auto-categorization
// engine that assigns categories to transaction descriptions.
package keyword

import (
	"strings"

	"github.com/SemTiOne/personal-finance-tracker/internal/model"
)

// Entry associates a category with the keywords that indicate membership.
// Keywords are matched as case-insensitive substrings of the description.
type Entry struct {
	Category string
	Type     model.CategoryType
	Keywords []string
}

// Index holds the keyword-to-category configuration. Entry order is the
// fixed priority order used to break categorization ties, established at
// construction and unaffected by later keyword additions.
type Index struct {
	byCategory map[string]int
	entries    []Entry
}

// NewIndex builds an index from the given entries. Keywords are
// lower-cased and de-duplicated; empty keywords are dropped.
func NewIndex(entries []Entry) *Index {
	ix := &Index{
		byCategory: make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		ix.add(e.Category, e.Type, e.Keywords...)
	}
	return ix
}

func (ix *Index) add(category string, ctype model.CategoryType, keywords ...string) {
	pos, ok := ix.byCategory[category]
	if !ok {
		pos = len(ix.entries)
		ix.byCategory[category] = pos
		ix.entries = append(ix.entries, Entry{Category: category, Type: ctype})
	}

	entry := &ix.entries[pos]
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || entry.contains(kw) {
			continue
		}
		entry.Keywords = append(entry.Keywords, kw)
	}
}

func (e *Entry) contains(keyword string) bool {
	for _, kw := range e.Keywords {
		if kw == keyword {
			return true
		}
	}
	return false
}

// AddCategory registers a category with the given type and keywords. It is
// idempotent; re-adding an existing category only extends its keyword set
// and never changes its type or priority position.
func (ix *Index) AddCategory(category string, ctype model.CategoryType, keywords ...string) {
	ix.add(category, ctype, keywords...)
}

// AddKeyword adds a keyword to an existing category. Re-adding an existing
// keyword is a no-op. Adding to an unknown category registers it as an
// expense category at the lowest priority.
func (ix *Index) AddKeyword(category, keyword string) {
	ix.add(category, model.CategoryTypeExpense, keyword)
}

// Keywords returns the configured keywords for a category, or nil if the
// category is not in the index.
func (ix *Index) Keywords(category string) []string {
	pos, ok := ix.byCategory[category]
	if !ok {
		return nil
	}
	return ix.entries[pos].Keywords
}

// Categories returns the category names in priority order.
func (ix *Index) Categories() []string {
	names := make([]string, len(ix.entries))
	for i, e := range ix.entries {
		names[i] = e.Category
	}
	return names
}
