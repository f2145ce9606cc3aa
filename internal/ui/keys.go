package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextFocus key.Binding
	PrevFocus key.Binding
	CycleMode key.Binding
	Reload    key.Binding
	Help      key.Binding
	Quit      key.Binding

	// toggle group
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Modes  []key.Binding

	// table
	Up        key.Binding
	Down      key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	FirstPage key.Binding
	LastPage  key.Binding
	SortNext  key.Binding
	Reverse   key.Binding
	Search    key.Binding

	// search input
	Clear key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous section")),
		CycleMode: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "cycle display mode")),
		Reload:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous mode")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next mode")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select mode")),
		Modes: []key.Binding{
			key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "default")),
			key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "compact")),
			key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "compact borderless")),
		},

		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PrevPage:  key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/pgup", "previous page")),
		NextPage:  key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/pgdn", "next page")),
		FirstPage: key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g/home", "first page")),
		LastPage:  key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G/end", "last page")),
		SortNext:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort by next column")),
		Reverse:   key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "reverse sort")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),

		Clear: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.CycleMode, k.Search, k.Reload, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFocus, k.PrevFocus, k.CycleMode, k.Reload},
		{k.Left, k.Right, k.Select, k.Modes[0], k.Modes[1], k.Modes[2]},
		{k.Up, k.Down, k.PrevPage, k.NextPage, k.FirstPage, k.LastPage, k.SortNext, k.Reverse},
		{k.Search, k.Clear, k.Help, k.Quit},
	}
}
