package vlist

import "testing"

// recordingBinder captures bind/hide calls for assertions.
type recordingBinder struct {
	bound  map[int]int // slot -> view index
	hidden map[int]bool
}

func newRecordingBinder() *recordingBinder {
	return &recordingBinder{bound: map[int]int{}, hidden: map[int]bool{}}
}

func (b *recordingBinder) Bind(slot int, s *Slot) {
	b.bound[slot] = s.Index
	delete(b.hidden, slot)
}

func (b *recordingBinder) Hide(slot int) {
	b.hidden[slot] = true
	delete(b.bound, slot)
}

func roster(n int) []participant {
	rs := make([]participant, n)
	for i := range rs {
		rs[i] = participant{name: "p" + string(rune('a'+i%26)), damage: float64((i*37)%1000 + 1)}
	}
	return rs
}

func TestRebindSlots(t *testing.T) {
	cols := participantColumns()
	vp := mustViewport(t, 27, 13)

	t.Run("FullPoolAtTop", func(t *testing.T) {
		// 45 records, pool 13, offset 0: slots 0-12 bound to view[0..12]
		view := roster(45)
		slots := newSlots(13, cols.Len())
		binder := newRecordingBinder()
		rebindSlots(slots, view, vp.Window(0, len(view)), vp, cols, binder)

		for i, s := range slots {
			if !s.Shown || s.Index != i {
				t.Fatalf("slot %d: shown=%v index=%d, want shown index %d", i, s.Shown, s.Index, i)
			}
			if s.Y != i*27 {
				t.Errorf("slot %d: y=%d, want %d", i, s.Y, i*27)
			}
			if binder.bound[i] != i {
				t.Errorf("binder slot %d bound to %d", i, binder.bound[i])
			}
		}
		if len(binder.hidden) != 0 {
			t.Errorf("unexpected hidden slots: %v", binder.hidden)
		}
	})

	t.Run("TailHidesOverflow", func(t *testing.T) {
		view := roster(5)
		slots := newSlots(13, cols.Len())
		rebindSlots(slots, view, vp.Window(0, len(view)), vp, cols, nil)

		for i := 0; i < 5; i++ {
			if !slots[i].Shown {
				t.Errorf("slot %d should be shown", i)
			}
		}
		for i := 5; i < 13; i++ {
			if slots[i].Shown || slots[i].Index != -1 {
				t.Errorf("slot %d should be hidden with index -1", i)
			}
		}
	})

	t.Run("PositionIsAbsoluteInContent", func(t *testing.T) {
		view := roster(45)
		slots := newSlots(13, cols.Len())
		rebindSlots(slots, view, vp.Window(270, len(view)), vp, cols, nil)

		// first slot binds view[10] and sits at 10*27 within the content
		if slots[0].Index != 10 || slots[0].Y != 270 {
			t.Errorf("slot 0: index=%d y=%d, want index 10 y 270", slots[0].Index, slots[0].Y)
		}
	})

	t.Run("HiddenSlotsClearStaleCells", func(t *testing.T) {
		slots := newSlots(13, cols.Len())
		view := roster(45)
		rebindSlots(slots, view, vp.Window(0, len(view)), vp, cols, nil)
		if slots[12].Cells[0] == "" {
			t.Fatalf("expected slot 12 populated before shrink")
		}

		// shrink the view; slot 12 must not leak the old binding
		rebindSlots(slots, roster(3), Window{Start: 0, Count: 3}, vp, cols, nil)
		for _, cell := range slots[12].Cells {
			if cell != "" {
				t.Errorf("hidden slot kept stale cell %q", cell)
			}
		}
		if slots[12].Y != 0 {
			t.Errorf("hidden slot kept stale offset %d", slots[12].Y)
		}
	})

	t.Run("PoolNeverResized", func(t *testing.T) {
		slots := newSlots(13, cols.Len())
		for _, n := range []int{0, 3, 45, 500} {
			view := roster(n)
			rebindSlots(slots, view, vp.Window(0, n), vp, cols, nil)
			if len(slots) != 13 {
				t.Fatalf("pool resized to %d for view of %d", len(slots), n)
			}
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		view := roster(45)
		w := vp.Window(270, len(view))

		a := newSlots(13, cols.Len())
		rebindSlots(a, view, w, vp, cols, nil)
		first := make([]Slot, len(a))
		for i, s := range a {
			first[i] = Slot{Index: s.Index, Shown: s.Shown, Y: s.Y, Cells: append([]string(nil), s.Cells...)}
		}

		rebindSlots(a, view, w, vp, cols, nil)
		for i, s := range a {
			if s.Index != first[i].Index || s.Shown != first[i].Shown || s.Y != first[i].Y {
				t.Fatalf("slot %d changed on identical rebind", i)
			}
			for j := range s.Cells {
				if s.Cells[j] != first[i].Cells[j] {
					t.Fatalf("slot %d cell %d changed on identical rebind", i, j)
				}
			}
		}
	})
}
