package vlist

import "sort"

// SortState holds the single active sort column and its direction.
type SortState struct {
	Column string
	Desc   bool
}

// toggle applies the header-click policy: clicking the active column flips
// the direction; clicking a new column selects it descending-first, since
// most metrics in this domain read best top-down.
func (s SortState) toggle(id string) SortState {
	if s.Column == id {
		s.Desc = !s.Desc
		return s
	}
	return SortState{Column: id, Desc: true}
}

// applySort stable-sorts records in place by the state's column key.
// Ties keep the relative order the filter produced. An unknown column or a
// nil Key leaves the order untouched.
func applySort[T any](records []T, st SortState, cols *Columns[T]) {
	col, ok := cols.ByID(st.Column)
	if !ok || col.Key == nil {
		return
	}
	sort.SliceStable(records, func(i, j int) bool {
		c := compareKeys(col.Key(records[i]), col.Key(records[j]))
		if st.Desc {
			return c > 0
		}
		return c < 0
	})
}
