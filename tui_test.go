package vlist

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel(t *testing.T) {
	newModel := func(t *testing.T) Model[participant] {
		vp := mustViewport(t, 1, 13)
		l := mustList(t, participantColumns(), vp)
		l.SetDataset(roster(45))
		return NewModel(l, "mage", "shaman")
	}

	t.Run("ScrollKeys", func(t *testing.T) {
		m := newModel(t)
		next, _ := m.Update(keyMsg("j"))
		m = next.(Model[participant])
		if m.List().ScrollOffset() != 1 {
			t.Errorf("offset %d after j, want 1", m.List().ScrollOffset())
		}
		next, _ = m.Update(keyMsg("G"))
		m = next.(Model[participant])
		if m.List().ScrollOffset() != 45-13 {
			t.Errorf("offset %d after G, want %d", m.List().ScrollOffset(), 45-13)
		}
		next, _ = m.Update(keyMsg("g"))
		m = next.(Model[participant])
		if m.List().ScrollOffset() != 0 {
			t.Errorf("offset %d after g, want 0", m.List().ScrollOffset())
		}
	})

	t.Run("NumberKeySorts", func(t *testing.T) {
		m := newModel(t)
		next, _ := m.Update(keyMsg("3")) // third column is damage
		m = next.(Model[participant])
		if st := m.List().Sort(); st.Column != "damage" || !st.Desc {
			t.Errorf("sort = %+v, want {damage desc}", st)
		}
		next, _ = m.Update(keyMsg("3"))
		m = next.(Model[participant])
		if st := m.List().Sort(); st.Desc {
			t.Errorf("second press should flip to ascending, got %+v", st)
		}
	})

	t.Run("SearchMode", func(t *testing.T) {
		m := newModel(t)
		next, _ := m.Update(keyMsg("/"))
		m = next.(Model[participant])
		next, _ = m.Update(keyMsg("p"))
		m = next.(Model[participant])
		if m.List().Filter().Search != "p" {
			t.Errorf("search = %q, want p", m.List().Filter().Search)
		}
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
		m = next.(Model[participant])
		if m.List().Filter().Search != "" {
			t.Errorf("escape should clear search, got %q", m.List().Filter().Search)
		}
	})

	t.Run("CategoryCycle", func(t *testing.T) {
		m := newModel(t)
		next, _ := m.Update(keyMsg("c"))
		m = next.(Model[participant])
		if m.List().Filter().Category != "mage" {
			t.Errorf("category = %q, want mage", m.List().Filter().Category)
		}
		next, _ = m.Update(keyMsg("c"))
		m = next.(Model[participant])
		next, _ = m.Update(keyMsg("c"))
		m = next.(Model[participant])
		if m.List().Filter().Category != CategoryAll {
			t.Errorf("cycle should wrap to %q, got %q", CategoryAll, m.List().Filter().Category)
		}
	})

	t.Run("ViewShowsSortArrow", func(t *testing.T) {
		m := newModel(t)
		if !strings.Contains(m.View(), "▼") {
			t.Errorf("expected descending arrow in header")
		}
		next, _ := m.Update(keyMsg("6")) // total is the active default sort
		m = next.(Model[participant])
		if !strings.Contains(m.View(), "▲") {
			t.Errorf("expected ascending arrow after flip")
		}
	})

	t.Run("QuitKey", func(t *testing.T) {
		m := newModel(t)
		_, cmd := m.Update(keyMsg("q"))
		if cmd == nil {
			t.Fatalf("expected quit command")
		}
	})
}

func TestTextModel(t *testing.T) {
	newText := func(t *testing.T, lines int) TextModel {
		cl, err := NewChunkLoader(eventLog(lines), mustViewport(t, 1, 20), 500, 1000)
		if err != nil {
			t.Fatalf("NewChunkLoader: %v", err)
		}
		cl.Debounce(0)
		cl.Open()
		return NewTextModel(cl)
	}

	t.Run("ScrollLoadsChunks", func(t *testing.T) {
		m := newText(t, 5000)
		for i := 0; i < 600; i++ {
			next, _ := m.Update(keyMsg("j"))
			m = next.(TextModel)
		}
		if m.Loader().LoadedThrough() < 1000 {
			t.Errorf("loaded through %d after deep scroll, want >= 1000", m.Loader().LoadedThrough())
		}
	})

	t.Run("OffsetClampedToRendered", func(t *testing.T) {
		m := newText(t, 800)
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnd})
		m = next.(TextModel)
		maxOff := len(m.Loader().Rendered()) - 20
		if m.Offset() != maxOff {
			t.Errorf("offset %d, want clamped to %d", m.Offset(), maxOff)
		}
	})

	t.Run("ViewShowsWindow", func(t *testing.T) {
		m := newText(t, 800)
		v := m.View()
		if !strings.Contains(v, "COMBAT_LOG_VERSION 9") {
			t.Errorf("expected header at top of view")
		}
		if !strings.Contains(v, "fully-loaded") {
			t.Errorf("expected state in status line")
		}
	})
}
