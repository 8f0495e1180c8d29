// Package engine derives the visible transfer list from the fetched items, a
// search query and a sort mode.
package engine

import (
	"slices"
	"strings"
	"time"

	"github.com/Veraticus/transfers/internal/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CollationLanguage is the locale used to order beneficiary names.
var CollationLanguage = language.Indonesian

// Apply returns the transfers matching query, ordered by mode. The input is
// never modified and the result is always a new slice, so callers may run it
// on every keystroke.
//
// Date modes place records whose created_at cannot be parsed after all
// parseable ones, keeping their original relative order.
func Apply(items []model.Transaction, query string, mode model.SortMode) []model.Transaction {
	result := Filter(items, query)
	Sort(result, mode)
	return result
}

// Filter returns the transfers matching query as a new slice. A record matches
// when the query is a case-insensitive substring of the beneficiary name,
// beneficiary bank or sender bank, or a substring of the amount's decimal
// form. An empty query matches everything.
func Filter(items []model.Transaction, query string) []model.Transaction {
	result := make([]model.Transaction, 0, len(items))
	if query == "" {
		return append(result, items...)
	}

	needle := strings.ToLower(query)
	for _, tx := range items {
		if Matches(tx, query, needle) {
			result = append(result, tx)
		}
	}
	return result
}

// Matches reports whether tx passes the search predicate. needle is the
// lowercased query.
func Matches(tx model.Transaction, query, needle string) bool {
	return strings.Contains(strings.ToLower(tx.BeneficiaryName), needle) ||
		strings.Contains(strings.ToLower(tx.BeneficiaryBank), needle) ||
		strings.Contains(strings.ToLower(tx.SenderBank), needle) ||
		strings.Contains(tx.Amount.String(), query)
}

// Sort orders items in place with a stable sort. SortNone leaves them as is.
func Sort(items []model.Transaction, mode model.SortMode) {
	switch mode {
	case model.SortNameAsc, model.SortNameDesc:
		sortByName(items, mode == model.SortNameDesc)
	case model.SortDateDesc, model.SortDateAsc:
		sortByDate(items, mode == model.SortDateDesc)
	}
}

func sortByName(items []model.Transaction, desc bool) {
	// A Collator keeps scratch buffers and is not safe for concurrent use.
	c := collate.New(CollationLanguage)

	slices.SortStableFunc(items, func(a, b model.Transaction) int {
		if desc {
			return c.CompareString(b.BeneficiaryName, a.BeneficiaryName)
		}
		return c.CompareString(a.BeneficiaryName, b.BeneficiaryName)
	})
}

type datedTransaction struct {
	at    time.Time
	tx    model.Transaction
	valid bool
}

func sortByDate(items []model.Transaction, desc bool) {
	keyed := make([]datedTransaction, len(items))
	for i, tx := range items {
		at, err := tx.CreatedTime()
		keyed[i] = datedTransaction{tx: tx, at: at, valid: err == nil}
	}

	slices.SortStableFunc(keyed, func(a, b datedTransaction) int {
		switch {
		case a.valid && !b.valid:
			return -1
		case !a.valid && b.valid:
			return 1
		case !a.valid && !b.valid:
			return 0
		}
		if desc {
			return b.at.Compare(a.at)
		}
		return a.at.Compare(b.at)
	})

	for i, k := range keyed {
		items[i] = k.tx
	}
}
