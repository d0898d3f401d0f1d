package vlist

import (
	"fmt"
	"sync"
	"time"
)

// ChunkState is the loading state of a chunked text view.
type ChunkState int

const (
	ChunkUnloaded ChunkState = iota
	ChunkHeaderOnly
	ChunkPartial
	ChunkFullyLoaded
)

func (s ChunkState) String() string {
	switch s {
	case ChunkHeaderOnly:
		return "header-only"
	case ChunkPartial:
		return "partial"
	case ChunkFullyLoaded:
		return "fully-loaded"
	default:
		return "unloaded"
	}
}

// LineSource supplies header lines plus a line-indexable body. Body access
// is index-based so both eager slices and lazy generators work.
type LineSource interface {
	Header() []string
	Line(i int) string
	LineCount() int
}

// SliceSource is the eager LineSource over in-memory slices.
type SliceSource struct {
	Head []string
	Body []string
}

func (s SliceSource) Header() []string { return s.Head }
func (s SliceSource) Line(i int) string {
	if i < 0 || i >= len(s.Body) {
		return ""
	}
	return s.Body[i]
}
func (s SliceSource) LineCount() int { return len(s.Body) }

// ChunkLoader virtualizes a monolithic line-oriented text view (e.g. a full
// combat-event log) by appending fixed-size chunks of lines as scrolling
// demands them. Growth is append-only: rendered lines are never evicted,
// because the text widget this feeds cannot truncate cheaply. The buffer
// only shrinks on Reset, when the underlying content is replaced.
//
// Content below the virtualization threshold is rendered in one pass —
// chunking overhead is not worth it for small views.
//
// usage:
//
//	cl, err := NewChunkLoader(src, vp, 500, 1000)
//	cl.Open()
//	cl.OnScroll(offsetPx) // debounced chunk appends
type ChunkLoader struct {
	src        LineSource
	vp         *Viewport
	perChunk   int
	minVirtual int

	mu            sync.Mutex
	state         ChunkState
	loadedThrough int // body lines rendered so far
	buf           []string

	deb      *Debouncer
	onAppend func(appended []string)
}

// NewChunkLoader creates a loader over src. The viewport supplies the
// scroll-to-line arithmetic (row height, visible line count). perChunk is
// the append granularity; content shorter than minVirtual body lines skips
// chunking entirely.
func NewChunkLoader(src LineSource, vp *Viewport, perChunk, minVirtual int) (*ChunkLoader, error) {
	if src == nil {
		return nil, fmt.Errorf("vlist: chunk loader needs a line source")
	}
	if vp == nil {
		return nil, fmt.Errorf("vlist: chunk loader needs a viewport")
	}
	if perChunk <= 0 {
		return nil, fmt.Errorf("vlist: lines per chunk must be positive, got %d", perChunk)
	}
	if minVirtual < 0 {
		return nil, fmt.Errorf("vlist: virtualization threshold must be non-negative, got %d", minVirtual)
	}
	return &ChunkLoader{
		src:        src,
		vp:         vp,
		perChunk:   perChunk,
		minVirtual: minVirtual,
		deb:        NewDebouncer(100 * time.Millisecond),
	}, nil
}

// Debounce sets the quiet period for scroll-driven appends. Zero makes
// appends synchronous (useful in tests).
func (c *ChunkLoader) Debounce(d time.Duration) *ChunkLoader {
	c.deb.delay = d
	return c
}

// OnAppend sets a callback invoked with each batch of newly rendered lines,
// so the presentation layer can append to its widget instead of re-reading
// the whole buffer.
func (c *ChunkLoader) OnAppend(fn func(appended []string)) *ChunkLoader {
	c.onAppend = fn
	return c
}

// Open performs the initial render: everything at once below the threshold,
// otherwise header plus the first chunk.
func (c *ChunkLoader) Open() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.buf = append(c.buf[:0], c.src.Header()...)
	c.loadedThrough = 0
	c.state = ChunkHeaderOnly

	total := c.src.LineCount()
	if total < c.minVirtual {
		c.appendLines(total)
		return
	}
	c.appendLines(c.perChunk)
}

// OnScroll notes a new scroll offset and, after the quiet period, appends
// enough chunks to cover the implied end of the visible range. Bursts of
// scroll events coalesce; only the most recent offset is acted on.
func (c *ChunkLoader) OnScroll(scrollOffset int) {
	w := c.vp.Window(scrollOffset, c.src.LineCount())
	needed := w.Start + c.vp.PoolSize()
	c.deb.Call(func() { c.EnsureVisible(needed) })
}

// EnsureVisible synchronously extends the rendered buffer by whole chunks
// until body line index through (exclusive) is covered. No-op once fully
// loaded or when already covered.
func (c *ChunkLoader) EnsureVisible(through int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == ChunkFullyLoaded || c.state == ChunkUnloaded {
		return
	}
	for c.loadedThrough < through && c.state != ChunkFullyLoaded {
		c.appendLines(c.perChunk)
	}
}

// Flush runs any pending debounced append immediately.
func (c *ChunkLoader) Flush() { c.deb.Flush() }

// Reset replaces the content and rewinds to the initial render. The only
// path by which rendered lines are discarded.
func (c *ChunkLoader) Reset(src LineSource) {
	c.deb.Stop()
	c.mu.Lock()
	c.src = src
	c.state = ChunkUnloaded
	c.mu.Unlock()
	c.Open()
}

// appendLines renders up to n more body lines. Caller holds mu.
func (c *ChunkLoader) appendLines(n int) {
	total := c.src.LineCount()
	end := c.loadedThrough + n
	if end > total {
		end = total
	}

	var appended []string
	if c.onAppend != nil {
		appended = make([]string, 0, end-c.loadedThrough)
	}
	for i := c.loadedThrough; i < end; i++ {
		line := c.src.Line(i)
		c.buf = append(c.buf, line)
		if c.onAppend != nil {
			appended = append(appended, line)
		}
	}
	c.loadedThrough = end

	if c.loadedThrough >= total {
		c.state = ChunkFullyLoaded
	} else {
		c.state = ChunkPartial
	}
	if c.onAppend != nil && len(appended) > 0 {
		c.onAppend(appended)
	}
}

// Rendered returns the rendered buffer: header plus all loaded body lines.
func (c *ChunkLoader) Rendered() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf
}

// State returns the current loading state.
func (c *ChunkLoader) State() ChunkState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LoadedThrough returns how many body lines have been rendered.
func (c *ChunkLoader) LoadedThrough() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadedThrough
}

// TotalLines returns the body line count of the current source.
func (c *ChunkLoader) TotalLines() int { return c.src.LineCount() }

// Debouncer coalesces bursts of work behind a quiet-period timer. Only the
// most recently queued func runs; earlier pending work is superseded
// (last write wins, never queued).
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending func()
}

// NewDebouncer creates a debouncer with the given quiet period.
// A zero delay runs work synchronously.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Call schedules fn after the quiet period, replacing any pending fn and
// restarting the timer.
func (d *Debouncer) Call(fn func()) {
	if d.delay == 0 {
		fn()
		return
	}
	d.mu.Lock()
	d.pending = fn
	if d.timer == nil {
		d.timer = time.AfterFunc(d.delay, d.fire)
	} else {
		d.timer.Reset(d.delay)
	}
	d.mu.Unlock()
}

// Flush runs any pending fn now and cancels the timer.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	fn := d.pending
	d.pending = nil
	d.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Stop cancels any pending work without running it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = nil
	d.mu.Unlock()
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	fn := d.pending
	d.pending = nil
	d.mu.Unlock()
	if fn != nil {
		fn()
	}
}
