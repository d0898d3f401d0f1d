package vlist

import "strings"

// Align sets horizontal cell alignment within a column.
type Align uint8

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Column describes one displayable, sortable field of a record.
// The engine never inspects records directly; it only calls Key and Format.
// Columns are immutable once registered.
type Column[T any] struct {
	ID     string
	Title  string
	Width  int
	Align  Align
	Key    func(T) any    // comparison key for sorting; coerced, see compareKeys
	Format func(T) string // display text for slot cells
}

// Columns is a registry of column definitions plus the designated roles the
// filter pipeline needs: which column carries the searchable name, which the
// category, and which columns count as "activity" for the zero-activity
// filter.
//
// usage:
//
//	cols := NewColumns(nameCol, dmgCol, healCol, totalCol).
//	    Name("name").
//	    Category("class").
//	    Activity("damage", "healing").
//	    DefaultSort("total")
type Columns[T any] struct {
	cols []Column[T]
	byID map[string]int

	nameID        string
	categoryID    string
	activityIDs   []string
	defaultSortID string
}

// NewColumns creates a registry from the given column definitions.
// Column IDs must be unique; a duplicate keeps the first definition.
func NewColumns[T any](cols ...Column[T]) *Columns[T] {
	c := &Columns[T]{
		cols: cols,
		byID: make(map[string]int, len(cols)),
	}
	for i, col := range cols {
		if _, exists := c.byID[col.ID]; !exists {
			c.byID[col.ID] = i
		}
	}
	if len(cols) > 0 {
		c.defaultSortID = cols[0].ID
	}
	return c
}

// Name designates the column whose Key is matched by search text.
func (c *Columns[T]) Name(id string) *Columns[T] {
	c.nameID = id
	return c
}

// Category designates the column whose Key is matched by the category filter.
func (c *Columns[T]) Category(id string) *Columns[T] {
	c.categoryID = id
	return c
}

// Activity designates the columns summed by the zero-activity filter.
func (c *Columns[T]) Activity(ids ...string) *Columns[T] {
	c.activityIDs = ids
	return c
}

// DefaultSort designates the column selected when sort state resets.
// Defaults to the first registered column.
func (c *Columns[T]) DefaultSort(id string) *Columns[T] {
	c.defaultSortID = id
	return c
}

// Len returns the number of registered columns.
func (c *Columns[T]) Len() int { return len(c.cols) }

// All returns the registered columns in registration order.
func (c *Columns[T]) All() []Column[T] { return c.cols }

// ByID returns the column with the given ID.
func (c *Columns[T]) ByID(id string) (Column[T], bool) {
	i, ok := c.byID[id]
	if !ok {
		return Column[T]{}, false
	}
	return c.cols[i], true
}

// DefaultSortID returns the designated default sort column ID.
func (c *Columns[T]) DefaultSortID() string { return c.defaultSortID }

// name extracts the searchable name text for a record.
// Records with no name column or a non-string key coerce to "".
func (c *Columns[T]) name(rec T) string {
	col, ok := c.ByID(c.nameID)
	if !ok || col.Key == nil {
		return ""
	}
	return toString(col.Key(rec))
}

// category extracts the category text for a record.
func (c *Columns[T]) category(rec T) string {
	col, ok := c.ByID(c.categoryID)
	if !ok || col.Key == nil {
		return ""
	}
	return toString(col.Key(rec))
}

// activitySum sums the activity column keys for a record.
// Malformed or missing values count as zero.
func (c *Columns[T]) activitySum(rec T) float64 {
	var sum float64
	for _, id := range c.activityIDs {
		col, ok := c.ByID(id)
		if !ok || col.Key == nil {
			continue
		}
		sum += toFloat64(col.Key(rec))
	}
	return sum
}

// cell formats the display text for one record in one column.
// A nil Format falls back to the coerced Key text so a column is never
// blank by accident.
func (c Column[T]) cell(rec T) string {
	if c.Format != nil {
		return c.Format(rec)
	}
	if c.Key != nil {
		return toString(c.Key(rec))
	}
	return ""
}

// compareKeys orders two extracted keys. Numeric kinds compare as float64
// with missing values treated as 0; everything else compares as
// case-insensitive strings with missing values treated as "". A mixed
// numeric/non-numeric pair compares numerically, coercing the odd one out,
// so a single malformed record never poisons a numeric column.
func compareKeys(a, b any) int {
	fa, aNum := toFloat64Ok(a)
	fb, bNum := toFloat64Ok(b)
	if aNum || bNum {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(strings.ToLower(toString(a)), strings.ToLower(toString(b)))
}

// toFloat64 coerces a key to float64, 0 for anything non-numeric.
func toFloat64(v any) float64 {
	f, _ := toFloat64Ok(v)
	return f
}

func toFloat64Ok(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// toString coerces a key to its string form, "" for nil or non-strings.
func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
