package engine

import "github.com/Veraticus/transfers/internal/model"

// FilterState holds the inputs of the visible list and the list derived from
// them. The derived list is recomputed in full whenever an input changes.
type FilterState struct {
	query   string
	items   []model.Transaction
	derived []model.Transaction
	mode    model.SortMode
}

// NewFilterState creates a state over items with an empty query.
func NewFilterState(items []model.Transaction, mode model.SortMode) FilterState {
	f := FilterState{items: items, mode: mode}
	f.recompute()
	return f
}

// SetItems replaces the source items.
func (f *FilterState) SetItems(items []model.Transaction) {
	f.items = items
	f.recompute()
}

// SetQuery replaces the search query.
func (f *FilterState) SetQuery(query string) {
	if query == f.query {
		return
	}
	f.query = query
	f.recompute()
}

// SetSortMode replaces the sort mode.
func (f *FilterState) SetSortMode(mode model.SortMode) {
	if mode == f.mode {
		return
	}
	f.mode = mode
	f.recompute()
}

// Query returns the current search query.
func (f FilterState) Query() string { return f.query }

// SortMode returns the current sort mode.
func (f FilterState) SortMode() model.SortMode { return f.mode }

// Items returns the unfiltered source items.
func (f FilterState) Items() []model.Transaction { return f.items }

// Derived returns the filtered and sorted list.
func (f FilterState) Derived() []model.Transaction { return f.derived }

// Len returns the number of visible transfers.
func (f FilterState) Len() int { return len(f.derived) }

// At returns the visible transfer at index i.
func (f FilterState) At(i int) (model.Transaction, bool) {
	if i < 0 || i >= len(f.derived) {
		return model.Transaction{}, false
	}
	return f.derived[i], true
}

func (f *FilterState) recompute() {
	f.derived = Apply(f.items, f.query, f.mode)
}
