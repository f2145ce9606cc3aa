// Package datatable is a stateful, searchable, sortable and paged table widget
// on top of bubbles/table. A Table is configured once with its data and
// columns; searches and sorts are staged with Search and Order and committed
// with Draw.
package datatable

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	bubtable "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
)

// DefaultPageLength matches the page size a table uses when none is configured.
const DefaultPageLength = 10

const (
	// EmptyTableText is rendered in place of rows when the table has no data.
	EmptyTableText = "No data available in table"
	// ZeroRecordsText is rendered in place of rows when nothing matches the search.
	ZeroRecordsText = "No matching records found"
)

const (
	ascIndicator  = " ▲"
	descIndicator = " ▼"
)

var (
	ErrNoColumns = errors.New("datatable: no columns configured")
	ErrDestroyed = errors.New("datatable: table has been destroyed")
)

// Record is a row the table can display: it resolves a column's Data field to text.
type Record interface {
	Field(name string) (string, bool)
}

// Styles are the bubbles table styles used to paint a table.
type Styles = bubtable.Styles

// Column binds a record field to a header.
type Column struct {
	Data     string // field name passed to Record.Field
	Title    string
	MaxWidth int // 0 means as wide as the widest cell
}

// Config is the construction-time configuration of a Table.
type Config[R Record] struct {
	Paging     bool
	Searching  bool
	Ordering   bool
	PageLength int
	// Order is the initial sort; empty means the first column ascending.
	Order   []Order
	Data    []R
	Columns []Column
}

// Drawer commits staged changes to the table.
type Drawer interface {
	Draw()
}

// PageInfo describes the rows visible after the last Draw.
type PageInfo struct {
	Page     int // zero based
	Pages    int
	Start    int // one based index of the first visible row, 0 when empty
	End      int
	Filtered int
	Total    int
}

type Table[R Record] struct {
	cfg     Config[R]
	table   bubtable.Model
	pager   paginator.Model
	folder  cases.Caser
	index   [][]string // case-folded cell text per record and column
	pending string
	search  string

	collator     *collate.Collator
	numeric      []bool // per column
	rank         []int  // record indices in display order
	order        []Order
	pendingOrder []Order
	orderDirty   bool

	filtered  []R
	visible   []R
	destroyed bool
}

// New builds a table from cfg and draws it once with no search applied.
func New[R Record](cfg Config[R]) (*Table[R], error) {
	if len(cfg.Columns) == 0 {
		return nil, ErrNoColumns
	}

	seen := make(map[string]struct{}, len(cfg.Columns))
	for i, c := range cfg.Columns {
		if c.Data == "" {
			return nil, fmt.Errorf("datatable: column %d has no data field", i)
		}
		if _, ok := seen[c.Data]; ok {
			return nil, fmt.Errorf("datatable: column %q configured twice", c.Data)
		}
		seen[c.Data] = struct{}{}
	}
	for _, o := range cfg.Order {
		if o.Column < 0 || o.Column >= len(cfg.Columns) {
			return nil, fmt.Errorf("datatable: order column %d out of range", o.Column)
		}
	}

	if cfg.PageLength <= 0 {
		cfg.PageLength = DefaultPageLength
	}
	data := make([]R, len(cfg.Data))
	copy(data, cfg.Data)
	cfg.Data = data

	t := &Table[R]{
		cfg:    cfg,
		folder: cases.Fold(),
	}
	t.buildIndex()

	if cfg.Ordering {
		t.collator = newCollator()
		t.detectTypes()
		t.order = append([]Order(nil), cfg.Order...)
		if len(t.order) == 0 {
			t.order = []Order{{Column: 0}}
		}
	}
	t.sortRank()

	t.table = bubtable.New(
		bubtable.WithColumns(t.columns()),
		bubtable.WithFocused(true),
	)

	t.pager = paginator.New()
	t.pager.Type = paginator.Arabic
	t.pager.PerPage = cfg.PageLength

	t.Draw()
	return t, nil
}

func (t *Table[R]) buildIndex() {
	t.index = make([][]string, len(t.cfg.Data))
	for i, r := range t.cfg.Data {
		cells := make([]string, len(t.cfg.Columns))
		for j, c := range t.cfg.Columns {
			v, _ := r.Field(c.Data)
			cells[j] = t.folder.String(v)
		}
		t.index[i] = cells
	}
}

// columns sizes every column to its widest cell or title.
func (t *Table[R]) columns() []bubtable.Column {
	cols := make([]bubtable.Column, len(t.cfg.Columns))
	for j, c := range t.cfg.Columns {
		width := runewidth.StringWidth(c.Title)
		for _, r := range t.cfg.Data {
			v, _ := r.Field(c.Data)
			width = max(width, runewidth.StringWidth(v))
		}
		if t.cfg.Ordering {
			width = max(width, runewidth.StringWidth(c.Title+ascIndicator))
		}
		if c.MaxWidth > 0 {
			width = min(width, c.MaxWidth)
		}
		cols[j] = bubtable.Column{Title: c.Title, Width: width}
	}
	return cols
}

// Search stages a query for the next Draw. It is ignored when searching is
// disabled.
func (t *Table[R]) Search(query string) Drawer {
	t.mustBeLive("search")
	if t.cfg.Searching {
		t.pending = query
	}
	return t
}

// Draw applies the staged search and sort and repaints the current page. A
// changed search or a new sort moves back to the first page.
func (t *Table[R]) Draw() {
	t.mustBeLive("draw")

	resort := t.orderDirty
	if resort {
		t.order = t.pendingOrder
		t.pendingOrder = nil
		t.orderDirty = false
		t.sortRank()
	}

	if resort || t.pending != t.search || t.filtered == nil {
		t.search = t.pending
		t.pager.Page = 0
		t.filtered = t.filter(t.search)
	}
	t.paginate()
}

func (t *Table[R]) filter(query string) []R {
	terms := searchTerms(query)
	if len(terms) == 0 {
		out := make([]R, len(t.rank))
		for k, i := range t.rank {
			out[k] = t.cfg.Data[i]
		}
		return out
	}
	for i, term := range terms {
		terms[i] = t.folder.String(term)
	}

	out := make([]R, 0, len(t.cfg.Data))
	for _, i := range t.rank {
		if matchRow(t.index[i], terms) {
			out = append(out, t.cfg.Data[i])
		}
	}
	return out
}

func (t *Table[R]) paginate() {
	if t.cfg.Paging {
		t.pager.PerPage = t.cfg.PageLength
	} else {
		t.pager.PerPage = max(len(t.filtered), 1)
	}
	// SetTotalPages leaves the old total in place for zero items.
	if len(t.filtered) == 0 {
		t.pager.TotalPages = 1
	} else {
		t.pager.SetTotalPages(len(t.filtered))
	}
	if t.pager.Page >= t.pager.TotalPages {
		t.pager.Page = t.pager.TotalPages - 1
	}

	start, end := t.pager.GetSliceBounds(len(t.filtered))
	t.visible = t.filtered[start:end]

	rows := make([]bubtable.Row, len(t.visible))
	for i, r := range t.visible {
		row := make(bubtable.Row, len(t.cfg.Columns))
		for j, c := range t.cfg.Columns {
			row[j], _ = r.Field(c.Data)
		}
		rows[i] = row
	}
	t.table.SetRows(rows)
	if t.table.Cursor() >= len(rows) || t.table.Cursor() < 0 {
		t.table.SetCursor(0)
	}
}

// NextPage moves forward one page. It reports whether the page changed.
func (t *Table[R]) NextPage() bool {
	t.mustBeLive("page")
	if t.pager.OnLastPage() {
		return false
	}
	t.pager.NextPage()
	t.table.SetCursor(0)
	t.paginate()
	return true
}

// PrevPage moves back one page. It reports whether the page changed.
func (t *Table[R]) PrevPage() bool {
	t.mustBeLive("page")
	if t.pager.Page == 0 {
		return false
	}
	t.pager.PrevPage()
	t.table.SetCursor(0)
	t.paginate()
	return true
}

// SetPage jumps to page (zero based), clamped to the available pages.
func (t *Table[R]) SetPage(page int) {
	t.mustBeLive("page")
	t.pager.Page = max(0, min(page, t.pager.TotalPages-1))
	t.table.SetCursor(0)
	t.paginate()
}

// Update forwards key messages to the row cursor.
func (t *Table[R]) Update(msg tea.Msg) tea.Cmd {
	t.mustBeLive("update")
	var cmd tea.Cmd
	t.table, cmd = t.table.Update(msg)
	return cmd
}

// Selected returns the record under the cursor.
func (t *Table[R]) Selected() (R, bool) {
	var zero R
	if t.destroyed {
		return zero, false
	}
	c := t.table.Cursor()
	if c < 0 || c >= len(t.visible) {
		return zero, false
	}
	return t.visible[c], true
}

// Visible returns the records on the current page.
func (t *Table[R]) Visible() []R {
	t.mustBeLive("visible")
	out := make([]R, len(t.visible))
	copy(out, t.visible)
	return out
}

// Filtered returns every record matching the committed search.
func (t *Table[R]) Filtered() []R {
	t.mustBeLive("filtered")
	out := make([]R, len(t.filtered))
	copy(out, t.filtered)
	return out
}

// SearchText returns the committed search.
func (t *Table[R]) SearchText() string {
	return t.search
}

func (t *Table[R]) Info() PageInfo {
	t.mustBeLive("info")
	start, end := t.pager.GetSliceBounds(len(t.filtered))
	info := PageInfo{
		Page:     t.pager.Page,
		Pages:    t.pager.TotalPages,
		Filtered: len(t.filtered),
		Total:    len(t.cfg.Data),
	}
	if end > start {
		info.Start = start + 1
		info.End = end
	}
	return info
}

// InfoText summarises the visible range, e.g.
// "Showing 1 to 2 of 2 entries (filtered from 3 total entries)".
func (t *Table[R]) InfoText() string {
	info := t.Info()
	text := fmt.Sprintf("Showing %d to %d of %d entries", info.Start, info.End, info.Filtered)
	if info.Filtered != info.Total {
		text += fmt.Sprintf(" (filtered from %d total entries)", info.Total)
	}
	return text
}

// PagerView renders the page indicator, or "" when paging is off.
func (t *Table[R]) PagerView() string {
	t.mustBeLive("render")
	if !t.cfg.Paging {
		return ""
	}
	return t.pager.View()
}

// Render paints the header and current page with styles. It works on a copy
// of the widget, so rendering never changes table state.
func (t *Table[R]) Render(styles Styles) string {
	t.mustBeLive("render")

	view := t.table
	if len(t.order) > 0 {
		view.SetColumns(t.sortedColumns())
	}
	view.SetStyles(styles)
	// Oversize the viewport, then drop its blank padding lines.
	rowHeight := lipgloss.Height(styles.Cell.Render("x"))
	view.SetHeight(len(t.visible)*rowHeight + lipgloss.Height(styles.Header.Render("x")) + 2)

	lines := strings.Split(view.View(), "\n")
	for len(lines) > 0 && strings.TrimSpace(ansi.Strip(lines[len(lines)-1])) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(t.visible) == 0 {
		text := ZeroRecordsText
		if len(t.cfg.Data) == 0 {
			text = EmptyTableText
		}
		lines = append(lines, styles.Cell.Render(text))
	}
	return strings.Join(lines, "\n")
}

// sortedColumns marks the primary sort column's title with its direction.
func (t *Table[R]) sortedColumns() []bubtable.Column {
	cols := slices.Clone(t.table.Columns())
	primary := t.order[0]
	if primary.Desc {
		cols[primary.Column].Title += descIndicator
	} else {
		cols[primary.Column].Title += ascIndicator
	}
	return cols
}

// Destroy releases the table. Every later call panics with ErrDestroyed.
func (t *Table[R]) Destroy() {
	t.mustBeLive("destroy")
	t.destroyed = true
	t.table.SetRows(nil)
	t.cfg.Data = nil
	t.index = nil
	t.rank = nil
	t.filtered = nil
	t.visible = nil
}

func (t *Table[R]) Destroyed() bool {
	return t.destroyed
}

func (t *Table[R]) mustBeLive(op string) {
	if t.destroyed {
		panic(fmt.Errorf("%s: %w", op, ErrDestroyed))
	}
}
