package vlist

import "fmt"

// Viewport holds the fixed geometry of a virtualized view: row height in
// pixels, the slot pool size, and the minimum scrollable content height.
// Geometry is validated once at construction; the per-call arithmetic can
// then assume sane values.
type Viewport struct {
	rowHeight int
	poolSize  int
	minHeight int
}

// Window is the visible index range computed from a scroll offset:
// slots bind view indices [Start, Start+Count).
type Window struct {
	Start int
	Count int
}

// NewViewport creates a viewport. poolSize is sized to the maximum rows
// visible at once (optionally +1 for partial-row smoothness) and never
// changes afterwards.
func NewViewport(rowHeight, poolSize int) (*Viewport, error) {
	if rowHeight <= 0 {
		return nil, fmt.Errorf("vlist: row height must be positive, got %d", rowHeight)
	}
	if poolSize <= 0 {
		return nil, fmt.Errorf("vlist: pool size must be positive, got %d", poolSize)
	}
	return &Viewport{rowHeight: rowHeight, poolSize: poolSize}, nil
}

// MinContentHeight sets the minimum scrollable content height.
// Defaults to 0 (content height tracks the view exactly).
func (v *Viewport) MinContentHeight(h int) *Viewport {
	v.minHeight = h
	return v
}

// RowHeight returns the fixed row height in pixels.
func (v *Viewport) RowHeight() int { return v.rowHeight }

// PoolSize returns the fixed slot pool size.
func (v *Viewport) PoolSize() int { return v.poolSize }

// Window computes the visible index window for a scroll offset against a
// view of viewLen records. Start is clamped into the view; Count never
// exceeds the pool size. An empty view yields {0, 0}.
func (v *Viewport) Window(scrollOffset, viewLen int) Window {
	if viewLen <= 0 {
		return Window{}
	}
	start := scrollOffset / v.rowHeight
	if start < 0 {
		start = 0
	}
	if start > viewLen-1 {
		start = viewLen - 1
	}
	count := viewLen - start
	if count > v.poolSize {
		count = v.poolSize
	}
	return Window{Start: start, Count: count}
}

// ContentHeight returns the total scrollable content height for viewLen
// records, floored at the configured minimum.
func (v *Viewport) ContentHeight(viewLen int) int {
	h := viewLen * v.rowHeight
	if h < v.minHeight {
		return v.minHeight
	}
	return h
}

// MaxScroll returns the largest useful scroll offset for viewLen records:
// past it the last pool-full of rows is already fully visible.
func (v *Viewport) MaxScroll(viewLen int) int {
	m := (viewLen - v.poolSize) * v.rowHeight
	if m < 0 {
		return 0
	}
	return m
}
