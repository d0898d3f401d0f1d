package vlist

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles collects the lipgloss styles used by the bubbletea adapters.
type Styles struct {
	Header       lipgloss.Style
	ActiveHeader lipgloss.Style
	Row          lipgloss.Style
	Status       lipgloss.Style
	Scrollbar    lipgloss.Style
	Thumb        lipgloss.Style
}

// DefaultStyles returns the stock look: dim headers, bold active sort
// column, muted status line.
func DefaultStyles() Styles {
	return Styles{
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		ActiveHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Row:          lipgloss.NewStyle(),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Scrollbar:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Thumb:        lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	}
}

// KeyMap is the key bindings for the record-mode adapter.
type KeyMap struct {
	Up             key.Binding
	Down           key.Binding
	PageUp         key.Binding
	PageDown       key.Binding
	Home           key.Binding
	End            key.Binding
	Search         key.Binding
	CycleCategory  key.Binding
	ToggleInactive key.Binding
	Quit           key.Binding
}

// DefaultKeyMap returns vim-flavoured defaults.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:         key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown:       key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Home:           key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:            key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Search:         key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		CycleCategory:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
		ToggleInactive: key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "zeros")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is a bubbletea adapter around a List. It translates key and mouse
// wheel events into the list's public API and renders the slot pool as a
// table with a sortable header and a scrollbar. Number keys 1–9 sort by
// the corresponding column (a second press flips direction).
//
// The model expects a list built with a row height of 1, so scroll offsets
// are terminal rows.
type Model[T any] struct {
	list   *List[T]
	keys   KeyMap
	styles Styles

	categories []string // cycled by the category key; CategoryAll is implicit at index 0
	catIndex   int

	searching bool
	search    string

	width int
}

// NewModel wraps a list for bubbletea. categories lists the category filter
// values to cycle through (the wildcard is prepended automatically).
func NewModel[T any](list *List[T], categories ...string) Model[T] {
	return Model[T]{
		list:       list,
		keys:       DefaultKeyMap(),
		styles:     DefaultStyles(),
		categories: append([]string{CategoryAll}, categories...),
	}
}

// KeyMap replaces the default key bindings.
func (m Model[T]) KeyMap(k KeyMap) Model[T] {
	m.keys = k
	return m
}

// Styles replaces the default styles.
func (m Model[T]) Styles(s Styles) Model[T] {
	m.styles = s
	return m
}

// List returns the wrapped list.
func (m Model[T]) List() *List[T] { return m.list }

// Init implements tea.Model.
func (m Model[T]) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.list.ScrollBy(-3)
		case tea.MouseButtonWheelDown:
			m.list.ScrollBy(3)
		}

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.list.ScrollBy(-1)
		case key.Matches(msg, m.keys.Down):
			m.list.ScrollBy(1)
		case key.Matches(msg, m.keys.PageUp):
			m.list.PageUp()
		case key.Matches(msg, m.keys.PageDown):
			m.list.PageDown()
		case key.Matches(msg, m.keys.Home):
			m.list.ScrollToTop()
		case key.Matches(msg, m.keys.End):
			m.list.ScrollToEnd()
		case key.Matches(msg, m.keys.Search):
			m.searching = true
		case key.Matches(msg, m.keys.CycleCategory):
			m.catIndex = (m.catIndex + 1) % len(m.categories)
			m.list.SetFilter(Category(m.categories[m.catIndex]))
		case key.Matches(msg, m.keys.ToggleInactive):
			m.list.SetFilter(IncludeInactive(!m.list.Filter().IncludeInactive))
		default:
			if n := columnNumber(msg.String()); n >= 0 && n < m.list.Columns().Len() {
				m.list.SetSort(m.list.Columns().All()[n].ID)
			}
		}
	}
	return m, nil
}

// updateSearch handles key events while the search prompt is active.
func (m Model[T]) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.searching = false
		m.search = ""
		m.list.SetFilter(Search(""))
	case tea.KeyEnter:
		m.searching = false
	case tea.KeyBackspace:
		if len(m.search) > 0 {
			r := []rune(m.search)
			m.search = string(r[:len(r)-1])
			m.list.SetFilter(Search(m.search))
		}
	case tea.KeySpace:
		m.search += " "
		m.list.SetFilter(Search(m.search))
	case tea.KeyRunes:
		m.search += string(msg.Runes)
		m.list.SetFilter(Search(m.search))
	}
	return m, nil
}

// columnNumber maps "1".."9" to a column index, -1 otherwise.
func columnNumber(s string) int {
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return int(s[0] - '1')
	}
	return -1
}

// View implements tea.Model.
func (m Model[T]) View() string {
	var b strings.Builder

	cols := m.list.Columns().All()
	st := m.list.Sort()

	// header with active-column highlight and direction arrow
	for i, col := range cols {
		title := col.Title
		style := m.styles.Header
		if col.ID == st.Column {
			style = m.styles.ActiveHeader
			if st.Desc {
				title += " ▼"
			} else {
				title += " ▲"
			}
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(style.Render(PadCell(title, colWidth(col), col.Align)))
	}
	b.WriteByte('\n')

	bar := m.scrollbar()
	for row, s := range m.list.Slots() {
		if s.Shown {
			var line strings.Builder
			for i, col := range cols {
				if i > 0 {
					line.WriteByte(' ')
				}
				line.WriteString(PadCell(s.Cells[i], colWidth(col), col.Align))
			}
			b.WriteString(m.styles.Row.Render(line.String()))
		}
		if row < len(bar) {
			b.WriteByte(' ')
			b.WriteString(bar[row])
		}
		b.WriteByte('\n')
	}

	b.WriteString(m.statusLine())
	return b.String()
}

// scrollbar returns one thumb/track cell per slot row, or nil when the
// whole view fits in the pool.
func (m Model[T]) scrollbar() []string {
	viewLen := m.list.ViewLen()
	pool := m.list.Viewport().PoolSize()
	if viewLen <= pool {
		return nil
	}

	thumbSize := pool * pool / viewLen
	if thumbSize < 1 {
		thumbSize = 1
	}
	maxStart := viewLen - pool
	thumbPos := 0
	if maxStart > 0 {
		thumbPos = (pool - thumbSize) * m.list.Window().Start / maxStart
	}

	bar := make([]string, pool)
	for i := range bar {
		if i >= thumbPos && i < thumbPos+thumbSize {
			bar[i] = m.styles.Thumb.Render("┃")
		} else {
			bar[i] = m.styles.Scrollbar.Render("│")
		}
	}
	return bar
}

// statusLine renders counts and the active filter.
func (m Model[T]) statusLine() string {
	var parts []string
	start, end := m.list.VisibleRange()
	if m.list.ViewLen() > 0 {
		parts = append(parts, FormatNumber(start+1, 0)+"–"+FormatNumber(end, 0)+" of "+FormatNumber(m.list.ViewLen(), 0))
	} else {
		parts = append(parts, "no entries")
	}
	f := m.list.Filter()
	if m.searching {
		parts = append(parts, "/"+m.search+"▌")
	} else if f.Search != "" {
		parts = append(parts, "/"+f.Search)
	}
	if f.Category != CategoryAll {
		parts = append(parts, "category:"+f.Category)
	}
	if f.IncludeInactive {
		parts = append(parts, "+zeros")
	}
	return m.styles.Status.Render(strings.Join(parts, "  "))
}

func colWidth[T any](c Column[T]) int {
	if c.Width > 0 {
		return c.Width
	}
	return 10
}

// chunkTickMsg asks a TextModel to repaint after the chunk loader's quiet
// period has had a chance to fire.
type chunkTickMsg struct{}

// TextModel is a bubbletea adapter around a ChunkLoader: a pager over the
// loader's rendered buffer that drives chunk appends through the loader's
// debounced scroll path.
//
// Like Model it expects a viewport with a row height of 1.
type TextModel struct {
	cl     *ChunkLoader
	keys   KeyMap
	styles Styles

	offset int
}

// NewTextModel wraps a chunk loader for bubbletea. Call Open on the loader
// before starting the program.
func NewTextModel(cl *ChunkLoader) TextModel {
	return TextModel{cl: cl, keys: DefaultKeyMap(), styles: DefaultStyles()}
}

// Loader returns the wrapped chunk loader.
func (m TextModel) Loader() *ChunkLoader { return m.cl }

// Offset returns the current scroll offset in lines.
func (m TextModel) Offset() int { return m.offset }

// Init implements tea.Model.
func (m TextModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m TextModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case chunkTickMsg:
		// repaint; Rendered() picks up whatever the debounced append loaded

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return m.scrollTo(m.offset - 3)
		case tea.MouseButtonWheelDown:
			return m.scrollTo(m.offset + 3)
		}

	case tea.KeyMsg:
		pool := m.cl.vp.PoolSize()
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			return m.scrollTo(m.offset - 1)
		case key.Matches(msg, m.keys.Down):
			return m.scrollTo(m.offset + 1)
		case key.Matches(msg, m.keys.PageUp):
			return m.scrollTo(m.offset - pool)
		case key.Matches(msg, m.keys.PageDown):
			return m.scrollTo(m.offset + pool)
		case key.Matches(msg, m.keys.Home):
			return m.scrollTo(0)
		case key.Matches(msg, m.keys.End):
			return m.scrollTo(len(m.cl.Rendered()))
		}
	}
	return m, nil
}

// scrollTo clamps the offset against the rendered buffer, notifies the
// loader, and schedules a repaint for after the debounce window.
func (m TextModel) scrollTo(offset int) (tea.Model, tea.Cmd) {
	maxOffset := len(m.cl.Rendered()) - m.cl.vp.PoolSize()
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	m.offset = offset
	m.cl.OnScroll(offset)
	return m, tea.Tick(150*time.Millisecond, func(time.Time) tea.Msg { return chunkTickMsg{} })
}

// View implements tea.Model.
func (m TextModel) View() string {
	lines := m.cl.Rendered()
	pool := m.cl.vp.PoolSize()

	var b strings.Builder
	for i := m.offset; i < m.offset+pool && i < len(lines); i++ {
		b.WriteString(lines[i])
		b.WriteByte('\n')
	}

	status := m.cl.State().String()
	if m.cl.State() == ChunkPartial {
		status += "  " + FormatNumber(m.cl.LoadedThrough(), 0) + "/" + FormatNumber(m.cl.TotalLines(), 0) + " lines"
	}
	b.WriteString(m.styles.Status.Render(status))
	return b.String()
}
