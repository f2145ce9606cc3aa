package datatable

import (
	"cmp"
	"math"
	"slices"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Order sorts rows by one column.
type Order struct {
	Column int // index into Config.Columns
	Desc   bool
}

// Order stages a new sort for the next Draw; the first entry is the primary
// key. Entries naming a column that does not exist are dropped. It is ignored
// when ordering is disabled.
func (t *Table[R]) Order(orders ...Order) Drawer {
	t.mustBeLive("order")
	if !t.cfg.Ordering {
		return t
	}
	t.pendingOrder = t.validOrders(orders)
	t.orderDirty = true
	return t
}

// Ordering returns the committed sort, primary key first.
func (t *Table[R]) Ordering() []Order {
	return slices.Clone(t.order)
}

func (t *Table[R]) validOrders(orders []Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if o.Column >= 0 && o.Column < len(t.cfg.Columns) {
			out = append(out, o)
		}
	}
	return out
}

// detectTypes marks the columns whose non-empty cells are all numbers; those
// sort numerically, everything else by collation.
func (t *Table[R]) detectTypes() {
	t.numeric = make([]bool, len(t.cfg.Columns))
	for j := range t.cfg.Columns {
		seen := false
		numeric := true
		for _, cells := range t.index {
			if cells[j] == "" {
				continue
			}
			seen = true
			if _, err := strconv.ParseFloat(cells[j], 64); err != nil {
				numeric = false
				break
			}
		}
		t.numeric[j] = seen && numeric
	}
}

// sortRank rebuilds the display order of the records. Ties keep source order.
func (t *Table[R]) sortRank() {
	t.rank = make([]int, len(t.cfg.Data))
	for i := range t.rank {
		t.rank[i] = i
	}
	if len(t.order) == 0 {
		return
	}

	slices.SortStableFunc(t.rank, func(a, b int) int {
		for _, o := range t.order {
			c := t.compareCells(o.Column, a, b)
			if o.Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})
}

func (t *Table[R]) compareCells(col, a, b int) int {
	x, y := t.index[a][col], t.index[b][col]
	if t.numeric[col] {
		return cmp.Compare(sortNumber(x), sortNumber(y))
	}
	return t.collator.CompareString(x, y)
}

// sortNumber puts empty cells before every number.
func sortNumber(s string) float64 {
	if s == "" {
		return math.Inf(-1)
	}
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func newCollator() *collate.Collator {
	return collate.New(language.Und, collate.Loose)
}
