package datatable

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// item is a small record used to exercise the table.
type item struct {
	Key   string
	Value string
	Note  *string
}

func (i item) Field(name string) (string, bool) {
	switch name {
	case "key":
		return i.Key, true
	case "value":
		return i.Value, true
	case "note":
		if i.Note == nil {
			return "", true
		}
		return *i.Note, true
	}
	return "", false
}

func note(s string) *string { return &s }

func itemColumns() []Column {
	return []Column{
		{Data: "key", Title: "KEY"},
		{Data: "value", Title: "VALUE"},
		{Data: "note", Title: "NOTE"},
	}
}

func makeTable(t *testing.T, items []item, pageLength int) *Table[item] {
	t.Helper()
	tbl, err := New(Config[item]{
		Paging:     true,
		Searching:  true,
		PageLength: pageLength,
		Data:       items,
		Columns:    itemColumns(),
	})
	require.NoError(t, err)
	return tbl
}

func keys(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Key
	}
	return out
}

func fruit() []item {
	return []item{
		{Key: "apple", Value: "red", Note: note("Crisp")},
		{Key: "banana", Value: "yellow"},
		{Key: "apricot", Value: "orange", Note: note("stone fruit")},
	}
}

func plainStyles() Styles {
	s := table.DefaultStyles()
	s.Selected = s.Cell
	return s
}

func TestNewValidatesColumns(t *testing.T) {
	_, err := New(Config[item]{})
	require.ErrorIs(t, err, ErrNoColumns)

	_, err = New(Config[item]{Columns: []Column{{Title: "KEY"}}})
	require.Error(t, err)

	_, err = New(Config[item]{Columns: []Column{{Data: "key"}, {Data: "key"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configured twice")
}

func TestNewDrawsEverything(t *testing.T) {
	tbl := makeTable(t, fruit(), 0)

	assert.Equal(t, []string{"apple", "banana", "apricot"}, keys(tbl.Visible()))
	assert.Equal(t, PageInfo{Page: 0, Pages: 1, Start: 1, End: 3, Filtered: 3, Total: 3}, tbl.Info())
	assert.Equal(t, "Showing 1 to 3 of 3 entries", tbl.InfoText())
}

func TestSearchRequiresDraw(t *testing.T) {
	tbl := makeTable(t, fruit(), 0)

	tbl.Search("ap")
	assert.Len(t, tbl.Visible(), 3, "search is staged until Draw")

	tbl.Search("ap").Draw()
	assert.Equal(t, []string{"apple", "apricot"}, keys(tbl.Visible()))
	assert.Equal(t, "ap", tbl.SearchText())
}

func TestSearchSemantics(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty passes through", "", []string{"apple", "banana", "apricot"}},
		{"whitespace passes through", "   ", []string{"apple", "banana", "apricot"}},
		{"case insensitive", "YELLOW", []string{"banana"}},
		{"substring in any column", "rang", []string{"apricot"}},
		{"nil cell never matches", "crisp", []string{"apple"}},
		{"terms are anded", "ap red", []string{"apple"}},
		{"terms may hit different cells", "stone apricot", []string{"apricot"}},
		{"quoted phrase", `"stone fruit"`, []string{"apricot"}},
		{"quoted phrase must be contiguous", `"fruit stone"`, []string{}},
		{"no match", "kiwi", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := makeTable(t, fruit(), 0)
			tbl.Search(tt.query).Draw()
			assert.Equal(t, tt.want, keys(tbl.Filtered()))
		})
	}
}

func TestSearchIsIdempotent(t *testing.T) {
	tbl := makeTable(t, fruit(), 0)

	tbl.Search("an").Draw()
	once := keys(tbl.Visible())

	tbl.Search("an").Draw()
	assert.Equal(t, once, keys(tbl.Visible()))
}

func TestSearchingDisabled(t *testing.T) {
	tbl, err := New(Config[item]{
		Paging:  true,
		Data:    fruit(),
		Columns: itemColumns(),
	})
	require.NoError(t, err)

	tbl.Search("banana").Draw()
	assert.Len(t, tbl.Visible(), 3)
	assert.Empty(t, tbl.SearchText())
}

func TestUnicodeCaseFolding(t *testing.T) {
	tbl := makeTable(t, []item{{Key: "ΔELTA"}, {Key: "ÉCOLE"}}, 0)

	tbl.Search("δelta").Draw()
	assert.Equal(t, []string{"ΔELTA"}, keys(tbl.Visible()))

	tbl.Search("école").Draw()
	assert.Equal(t, []string{"ÉCOLE"}, keys(tbl.Visible()))
}

func manyItems(n int) []item {
	items := make([]item, n)
	for i := range items {
		value := "even"
		if i%2 == 1 {
			value = "odd"
		}
		items[i] = item{Key: fmt.Sprintf("k%02d", i), Value: value}
	}
	return items
}

func TestPaging(t *testing.T) {
	tbl := makeTable(t, manyItems(25), 10)

	info := tbl.Info()
	assert.Equal(t, 3, info.Pages)
	assert.Equal(t, 1, info.Start)
	assert.Equal(t, 10, info.End)
	assert.Equal(t, "1/3", tbl.PagerView())

	require.True(t, tbl.NextPage())
	require.True(t, tbl.NextPage())
	assert.False(t, tbl.NextPage())
	assert.Equal(t, "k20", tbl.Visible()[0].Key)
	assert.Len(t, tbl.Visible(), 5)
	assert.Equal(t, "Showing 21 to 25 of 25 entries", tbl.InfoText())

	require.True(t, tbl.PrevPage())
	assert.Equal(t, 1, tbl.Info().Page)

	tbl.SetPage(99)
	assert.Equal(t, 2, tbl.Info().Page)
	tbl.SetPage(-1)
	assert.Equal(t, 0, tbl.Info().Page)
	assert.False(t, tbl.PrevPage())
}

func TestSearchResetsPage(t *testing.T) {
	tbl := makeTable(t, manyItems(25), 10)
	tbl.NextPage()
	require.Equal(t, 1, tbl.Info().Page)

	tbl.Search("odd").Draw()
	info := tbl.Info()
	assert.Equal(t, 0, info.Page)
	assert.Equal(t, 12, info.Filtered)
	assert.Equal(t, 2, info.Pages)
	assert.Equal(t, "Showing 1 to 10 of 12 entries (filtered from 25 total entries)", tbl.InfoText())

	// Redrawing the same search keeps the page.
	tbl.NextPage()
	tbl.Search("odd").Draw()
	assert.Equal(t, 1, tbl.Info().Page)
}

func TestEmptyResult(t *testing.T) {
	tbl := makeTable(t, manyItems(25), 10)
	tbl.NextPage()

	tbl.Search("nothing").Draw()
	assert.Equal(t, PageInfo{Page: 0, Pages: 1, Filtered: 0, Total: 25}, tbl.Info())
	assert.Equal(t, "Showing 0 to 0 of 0 entries (filtered from 25 total entries)", tbl.InfoText())

	_, ok := tbl.Selected()
	assert.False(t, ok)

	out := ansi.Strip(tbl.Render(plainStyles()))
	assert.Contains(t, out, ZeroRecordsText)
	assert.NotContains(t, out, EmptyTableText)
}

func TestEmptyTable(t *testing.T) {
	tbl := makeTable(t, nil, 10)

	assert.Equal(t, "Showing 0 to 0 of 0 entries", tbl.InfoText())
	out := ansi.Strip(tbl.Render(plainStyles()))
	assert.Contains(t, out, EmptyTableText)
	assert.NotContains(t, out, ZeroRecordsText)

	tbl.Search("anything").Draw()
	assert.Contains(t, ansi.Strip(tbl.Render(plainStyles())), EmptyTableText)
}

func TestPagingDisabled(t *testing.T) {
	tbl, err := New(Config[item]{
		Searching:  true,
		PageLength: 10,
		Data:       manyItems(25),
		Columns:    itemColumns(),
	})
	require.NoError(t, err)

	assert.Len(t, tbl.Visible(), 25)
	assert.Equal(t, 1, tbl.Info().Pages)
	assert.Empty(t, tbl.PagerView())
	assert.False(t, tbl.NextPage())
}

func TestCursorAndSelection(t *testing.T) {
	tbl := makeTable(t, fruit(), 0)

	sel, ok := tbl.Selected()
	require.True(t, ok)
	assert.Equal(t, "apple", sel.Key)

	tbl.Update(tea.KeyMsg{Type: tea.KeyDown})
	sel, ok = tbl.Selected()
	require.True(t, ok)
	assert.Equal(t, "banana", sel.Key)

	tbl.Search("apricot").Draw()
	sel, ok = tbl.Selected()
	require.True(t, ok)
	assert.Equal(t, "apricot", sel.Key, "cursor is clamped into the filtered rows")
}

func TestRenderDoesNotMutate(t *testing.T) {
	tbl := makeTable(t, fruit(), 0)
	before := tbl.Info()

	compact := plainStyles()
	wide := plainStyles()
	wide.Cell = wide.Cell.Padding(0, 2)

	a := ansi.Strip(tbl.Render(compact))
	b := ansi.Strip(tbl.Render(wide))
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, ansi.Strip(tbl.Render(compact)))
	assert.Equal(t, before, tbl.Info())
}

func TestRenderContent(t *testing.T) {
	tbl := makeTable(t, fruit(), 0)
	out := ansi.Strip(tbl.Render(plainStyles()))

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], "KEY")
	assert.Contains(t, lines[0], "NOTE")
	assert.Contains(t, out, "apricot")
	assert.Contains(t, out, "stone fruit")
	assert.NotEqual(t, "", strings.TrimSpace(lines[len(lines)-1]), "trailing padding is trimmed")
}

func TestColumnWidths(t *testing.T) {
	tbl, err := New(Config[item]{
		Data: []item{{Key: "a-very-long-key", Value: "v"}},
		Columns: []Column{
			{Data: "key", Title: "KEY", MaxWidth: 5},
			{Data: "value", Title: "VALUE"},
		},
	})
	require.NoError(t, err)

	cols := tbl.columns()
	assert.Equal(t, 5, cols[0].Width)
	assert.Equal(t, 5, cols[1].Width, "title is wider than the cell")
}

func TestDestroy(t *testing.T) {
	tbl := makeTable(t, fruit(), 0)
	tbl.Destroy()
	assert.True(t, tbl.Destroyed())

	assert.PanicsWithError(t, "search: "+ErrDestroyed.Error(), func() { tbl.Search("a") })
	assert.Panics(t, func() { tbl.Draw() })
	assert.Panics(t, func() { tbl.Render(plainStyles()) })
	assert.Panics(t, func() { tbl.Destroy() }, "a table is released exactly once")

	_, ok := tbl.Selected()
	assert.False(t, ok)
}

func TestDataIsCopied(t *testing.T) {
	items := fruit()
	tbl := makeTable(t, items, 0)
	items[0].Key = "mutated"

	assert.Equal(t, "apple", tbl.Visible()[0].Key)
}

func TestSearchTerms(t *testing.T) {
	assert.Nil(t, searchTerms(""))
	assert.Equal(t, []string{"a", "b"}, searchTerms(" a\tb "))
	assert.Equal(t, []string{"a b", "c"}, searchTerms(`"a b" c`))
	assert.Equal(t, []string{"x", "open phrase"}, searchTerms(`x "open phrase`))
}
