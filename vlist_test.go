package vlist

import "testing"

// participant is the shared test record: one combat participant.
type participant struct {
	name    string
	class   string
	damage  float64
	healing float64
	taken   float64
}

// participantColumns mirrors a damage-meter window: name, class, three
// metrics, and a composite total column.
func participantColumns() *Columns[participant] {
	return NewColumns(
		Column[participant]{
			ID: "name", Title: "Name", Width: 14,
			Key:    func(p participant) any { return p.name },
			Format: func(p participant) string { return p.name },
		},
		Column[participant]{
			ID: "class", Title: "Class", Width: 8,
			Key:    func(p participant) any { return p.class },
			Format: func(p participant) string { return p.class },
		},
		Column[participant]{
			ID: "damage", Title: "Damage", Width: 10, Align: AlignRight,
			Key:    func(p participant) any { return p.damage },
			Format: func(p participant) string { return FormatNumber(p.damage, 0) },
		},
		Column[participant]{
			ID: "healing", Title: "Healing", Width: 10, Align: AlignRight,
			Key:    func(p participant) any { return p.healing },
			Format: func(p participant) string { return FormatNumber(p.healing, 0) },
		},
		Column[participant]{
			ID: "taken", Title: "Taken", Width: 10, Align: AlignRight,
			Key:    func(p participant) any { return p.taken },
			Format: func(p participant) string { return FormatNumber(p.taken, 0) },
		},
		Column[participant]{
			ID: "total", Title: "Total", Width: 10, Align: AlignRight,
			Key:    func(p participant) any { return p.damage + p.healing },
			Format: func(p participant) string { return FormatNumber(p.damage+p.healing, 0) },
		},
	).Name("name").Category("class").Activity("damage", "healing", "taken").DefaultSort("total")
}

func mustViewport(t testing.TB, rowHeight, poolSize int) *Viewport {
	t.Helper()
	vp, err := NewViewport(rowHeight, poolSize)
	if err != nil {
		t.Fatalf("NewViewport(%d, %d): %v", rowHeight, poolSize, err)
	}
	return vp
}

func mustList(t testing.TB, cols *Columns[participant], vp *Viewport) *List[participant] {
	t.Helper()
	l, err := NewList(cols, vp)
	if err != nil {
		t.Fatalf("NewList: %v", err)
	}
	return l
}
