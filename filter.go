package vlist

import "strings"

// CategoryAll is the wildcard category that matches every record.
const CategoryAll = "all"

// FilterState is a conjunction of independently toggleable predicates.
// The zero value is not the default state; use DefaultFilter.
type FilterState struct {
	Search          string // case-insensitive substring match on the name column; "" matches all
	Category        string // equality match on the category column, or CategoryAll
	IncludeInactive bool   // when false, records whose activity columns sum to zero are excluded
}

// DefaultFilter returns the filter state a list starts with.
func DefaultFilter() FilterState {
	return FilterState{Search: "", Category: CategoryAll, IncludeInactive: false}
}

// FilterUpdate is a partial filter change. Nil fields leave the current
// state untouched, so event adapters can change one predicate at a time.
type FilterUpdate struct {
	Search          *string
	Category        *string
	IncludeInactive *bool
}

// merge applies the update onto a filter state.
func (u FilterUpdate) merge(st FilterState) FilterState {
	if u.Search != nil {
		st.Search = *u.Search
	}
	if u.Category != nil {
		st.Category = *u.Category
	}
	if u.IncludeInactive != nil {
		st.IncludeInactive = *u.IncludeInactive
	}
	return st
}

// Search returns an update that sets only the search text.
func Search(s string) FilterUpdate { return FilterUpdate{Search: &s} }

// Category returns an update that sets only the category filter.
func Category(c string) FilterUpdate { return FilterUpdate{Category: &c} }

// IncludeInactive returns an update that sets only the zero-activity toggle.
func IncludeInactive(v bool) FilterUpdate { return FilterUpdate{IncludeInactive: &v} }

// applyFilter returns the records passing the filter, preserving the
// relative order of the input. allow is an optional external membership
// predicate (e.g. a blacklist check) owned by the caller; nil passes all.
// Pure: the input slice is never modified.
func applyFilter[T any](records []T, st FilterState, cols *Columns[T], allow func(T) bool) []T {
	search := strings.ToLower(st.Search)

	out := make([]T, 0, len(records))
	for _, rec := range records {
		if search != "" && !strings.Contains(strings.ToLower(cols.name(rec)), search) {
			continue
		}
		if st.Category != CategoryAll && cols.category(rec) != st.Category {
			continue
		}
		if !st.IncludeInactive && cols.activitySum(rec) <= 0 {
			continue
		}
		if allow != nil && !allow(rec) {
			continue
		}
		out = append(out, rec)
	}
	return out
}
