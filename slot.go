package vlist

// Slot is one reusable presentation binding. Exactly poolSize slots exist
// for the lifetime of a list; rebinds mutate them in place and never
// allocate new ones, which is what keeps refresh cheap enough to run on
// every scroll tick.
type Slot struct {
	Index int      // index into the filtered/sorted view, -1 when hidden
	Shown bool
	Y     int      // vertical offset within the scrollable content, not the viewport
	Cells []string // one formatted value per registered column
}

// SlotBinder is the thin presentation hook. The engine stays
// toolkit-independent: implement this against whatever widget primitive the
// host UI provides. Bind is called for every shown slot on every rebind
// (bindings are recomputed wholesale, not diffed); Hide for every hidden
// one. A nil binder is legal — slot state is still fully maintained and can
// be read back through List.Slots.
type SlotBinder interface {
	Bind(slot int, s *Slot)
	Hide(slot int)
}

// newSlots builds the fixed pool. Called once at list construction.
func newSlots(poolSize, columns int) []Slot {
	slots := make([]Slot, poolSize)
	for i := range slots {
		slots[i] = Slot{Index: -1, Cells: make([]string, columns)}
	}
	return slots
}

// rebindSlots points each slot at its target view index. Slots past the end
// of the view are hidden with their cells cleared so no stale data survives
// a later partial read. Idempotent: same view, same window, same bindings.
func rebindSlots[T any](slots []Slot, view []T, w Window, vp *Viewport, cols *Columns[T], binder SlotBinder) {
	for i := range slots {
		s := &slots[i]
		target := w.Start + i

		if target >= len(view) {
			if s.Shown || s.Index != -1 {
				s.Index = -1
				s.Shown = false
				s.Y = 0
				clear(s.Cells)
			}
			if binder != nil {
				binder.Hide(i)
			}
			continue
		}

		rec := view[target]
		s.Index = target
		s.Shown = true
		s.Y = target * vp.RowHeight()
		for j, col := range cols.All() {
			s.Cells[j] = col.cell(rec)
		}
		if binder != nil {
			binder.Bind(i, s)
		}
	}
}
