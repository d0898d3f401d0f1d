// Package vlist is a virtualized list/content rendering engine for
// combat-statistics overlays: it binds an arbitrarily large, live-filtered,
// live-sorted record collection to a small fixed pool of presentation
// slots, and pages very large flat text logs in append-only chunks.
package vlist

import "fmt"

// List virtualizes a large, live-filtered, live-sorted record collection
// behind a fixed pool of presentation slots. One instance per open window;
// it owns its filter/sort/scroll state exclusively, so there is no shared
// state and no locking. Every recompute is a total function of current
// state — a newer event simply supersedes the last.
//
// usage:
//
//	list, err := NewList(cols, vp)
//	list.SetDataset(participants)
//	list.SetFilter(Search("thr"))
//	list.SetSort("damage")
//	list.OnScroll(270)
type List[T any] struct {
	cols *Columns[T]
	vp   *Viewport

	items  []T
	filter FilterState
	sort   SortState
	allow  func(T) bool
	scroll int

	view   []T
	window Window
	slots  []Slot
	binder SlotBinder
}

// NewList creates a list over the given column registry and viewport
// geometry. The slot pool is allocated here, once, and never resized.
func NewList[T any](cols *Columns[T], vp *Viewport) (*List[T], error) {
	if cols == nil || cols.Len() == 0 {
		return nil, fmt.Errorf("vlist: list needs at least one column")
	}
	if vp == nil {
		return nil, fmt.Errorf("vlist: list needs a viewport")
	}
	l := &List[T]{
		cols:   cols,
		vp:     vp,
		filter: DefaultFilter(),
		sort:   SortState{Column: cols.DefaultSortID(), Desc: true},
		slots:  newSlots(vp.PoolSize(), cols.Len()),
	}
	l.recompute()
	return l, nil
}

// Binder sets the presentation hook called on every rebind.
func (l *List[T]) Binder(b SlotBinder) *List[T] {
	l.binder = b
	return l
}

// Allow sets an external membership predicate ANDed into the filter
// (e.g. an entity-blacklist check owned by the caller). Nil passes all.
// Takes effect on the next recompute.
func (l *List[T]) Allow(fn func(T) bool) *List[T] {
	l.allow = fn
	return l
}

// SetDataset replaces the master collection, resets filter, sort and
// scroll to their defaults, and recomputes.
func (l *List[T]) SetDataset(items []T) {
	l.items = items
	l.filter = DefaultFilter()
	l.sort = SortState{Column: l.cols.DefaultSortID(), Desc: true}
	l.scroll = 0
	l.recompute()
}

// SetFilter merges a partial filter change into the current state and
// recomputes the full pipeline.
func (l *List[T]) SetFilter(u FilterUpdate) {
	l.filter = u.merge(l.filter)
	l.recompute()
}

// SetSort applies the header-click toggle policy for the given column and
// recomputes. Clicking the active column flips direction; a new column
// starts descending.
func (l *List[T]) SetSort(columnID string) {
	l.sort = l.sort.toggle(columnID)
	l.recompute()
}

// OnScroll updates the scroll offset and rebinds. The filtered/sorted view
// is reused untouched — only the window moves.
func (l *List[T]) OnScroll(offset int) {
	l.scroll = l.clampScroll(offset)
	l.rebind()
}

// Refresh re-runs the full pipeline against current state. Idempotent; use
// it after the dataset mutated in place without a state-field change.
func (l *List[T]) Refresh() {
	l.recompute()
}

// ScrollBy scrolls by a number of rows (positive = down).
func (l *List[T]) ScrollBy(rows int) {
	l.OnScroll(l.scroll + rows*l.vp.RowHeight())
}

// PageDown scrolls down one pool-full of rows.
func (l *List[T]) PageDown() { l.ScrollBy(l.vp.PoolSize()) }

// PageUp scrolls up one pool-full of rows.
func (l *List[T]) PageUp() { l.ScrollBy(-l.vp.PoolSize()) }

// ScrollToTop jumps to the first row.
func (l *List[T]) ScrollToTop() { l.OnScroll(0) }

// ScrollToEnd jumps so the last pool-full of rows is visible.
func (l *List[T]) ScrollToEnd() { l.OnScroll(l.vp.MaxScroll(len(l.view))) }

// recompute derives the view (filter then stable sort), clamps the scroll
// offset against the new shape, and rebinds every slot.
func (l *List[T]) recompute() {
	l.view = applyFilter(l.items, l.filter, l.cols, l.allow)
	applySort(l.view, l.sort, l.cols)
	l.scroll = l.clampScroll(l.scroll)
	l.rebind()
}

// rebind recomputes the window and slot bindings from the cached view.
func (l *List[T]) rebind() {
	l.window = l.vp.Window(l.scroll, len(l.view))
	rebindSlots(l.slots, l.view, l.window, l.vp, l.cols, l.binder)
}

// clampScroll keeps the offset inside the current view so a narrowing
// filter never strands the viewport past the end of the content.
func (l *List[T]) clampScroll(offset int) int {
	if offset < 0 {
		return 0
	}
	if m := l.vp.MaxScroll(len(l.view)); offset > m {
		return m
	}
	return offset
}

// Filter returns the current filter state.
func (l *List[T]) Filter() FilterState { return l.filter }

// Sort returns the current sort state.
func (l *List[T]) Sort() SortState { return l.sort }

// ScrollOffset returns the current scroll offset in pixels.
func (l *List[T]) ScrollOffset() int { return l.scroll }

// Len returns the master collection size.
func (l *List[T]) Len() int { return len(l.items) }

// ViewLen returns the filtered/sorted view size.
func (l *List[T]) ViewLen() int { return len(l.view) }

// At returns the view record at index i.
func (l *List[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(l.view) {
		var zero T
		return zero, false
	}
	return l.view[i], true
}

// Slots returns the slot pool. Callers must not grow or shrink it.
func (l *List[T]) Slots() []Slot { return l.slots }

// Window returns the current visible index window.
func (l *List[T]) Window() Window { return l.window }

// VisibleRange returns the half-open range of view indices currently bound.
func (l *List[T]) VisibleRange() (start, end int) {
	return l.window.Start, l.window.Start + l.window.Count
}

// ContentHeight returns the scrollable content height for the current view.
func (l *List[T]) ContentHeight() int { return l.vp.ContentHeight(len(l.view)) }

// Columns returns the column registry.
func (l *List[T]) Columns() *Columns[T] { return l.cols }

// Viewport returns the viewport geometry.
func (l *List[T]) Viewport() *Viewport { return l.vp }
