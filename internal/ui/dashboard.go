package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Johannes-Berggren/repodash/internal/models"
)

type focusZone int

const (
	focusToggle focusZone = iota
	focusSearch
	focusTable
	focusZones
)

func (f focusZone) String() string {
	switch f {
	case focusToggle:
		return "display mode"
	case focusSearch:
		return "search"
	case focusTable:
		return "table"
	}
	return fmt.Sprintf("focusZone(%d)", int(f))
}

// DashboardView renders the toggle group, the search input and the table, and
// routes keys from the focused section to the controller.
type DashboardView struct {
	controller   *Controller
	search       *SearchInput
	keys         keyMap
	focus        focusZone
	toggleCursor int
	title        string
	err          error
	width        int
	height       int
}

type DashboardOptions struct {
	Title       string
	Placeholder string
}

func NewDashboardView(controller *Controller, opts DashboardOptions) *DashboardView {
	return &DashboardView{
		controller:   controller,
		search:       NewSearchInput(opts.Placeholder),
		keys:         defaultKeyMap(),
		focus:        focusSearch,
		toggleCursor: modeIndex(controller.DisplayMode()),
		title:        opts.Title,
	}
}

// Init mounts the table and focuses the search input.
func (d *DashboardView) Init() tea.Cmd {
	if err := d.controller.Mount(); err != nil {
		d.err = err
		d.controller.log.Error(err, "mount failed")
	}
	return d.search.Focus()
}

// Typing reports whether keys currently go to the search input.
func (d *DashboardView) Typing() bool {
	return d.focus == focusSearch
}

func (d *DashboardView) Update(msg tea.Msg) (*DashboardView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return d, d.handleKey(msg)

	case tea.WindowSizeMsg:
		d.width = msg.Width
		d.height = msg.Height
		var cmd tea.Cmd
		d.search, cmd = d.search.Update(msg)
		return d, cmd
	}

	if d.focus == focusSearch {
		// cursor blink and other input housekeeping
		var cmd tea.Cmd
		d.search, cmd = d.search.Update(msg)
		return d, cmd
	}
	return d, nil
}

func (d *DashboardView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, d.keys.NextFocus):
		return d.setFocus((d.focus + 1) % focusZones)
	case key.Matches(msg, d.keys.PrevFocus):
		return d.setFocus((d.focus + focusZones - 1) % focusZones)
	case key.Matches(msg, d.keys.CycleMode):
		d.selectMode(d.controller.DisplayMode().Next())
		return nil
	case key.Matches(msg, d.keys.Reload):
		d.reload()
		return nil
	}

	switch d.focus {
	case focusToggle:
		d.handleToggleKey(msg)
	case focusSearch:
		return d.handleSearchKey(msg)
	case focusTable:
		return d.handleTableKey(msg)
	}
	return nil
}

func (d *DashboardView) handleToggleKey(msg tea.KeyMsg) {
	modes := models.DisplayModes()

	switch {
	case key.Matches(msg, d.keys.Left):
		d.toggleCursor = max(0, d.toggleCursor-1)
	case key.Matches(msg, d.keys.Right):
		d.toggleCursor = min(len(modes)-1, d.toggleCursor+1)
	case key.Matches(msg, d.keys.Select):
		d.selectMode(modes[d.toggleCursor])
	default:
		d.handleModeShortcut(msg)
	}
}

func (d *DashboardView) handleModeShortcut(msg tea.KeyMsg) bool {
	for i, binding := range d.keys.Modes {
		if key.Matches(msg, binding) {
			d.selectMode(models.DisplayModes()[i])
			return true
		}
	}
	return false
}

func (d *DashboardView) selectMode(mode models.DisplayMode) {
	d.controller.SetDisplayMode(mode)
	d.toggleCursor = modeIndex(mode)
}

// handleSearchKey feeds the input and forwards every change of its value to
// the controller before the next event is handled.
func (d *DashboardView) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	if !d.controller.Mounted() {
		return nil
	}

	before := d.search.Value()
	var cmd tea.Cmd
	d.search, cmd = d.search.Update(msg)
	if after := d.search.Value(); after != before {
		d.controller.SetQuery(after)
	}
	return cmd
}

func (d *DashboardView) handleTableKey(msg tea.KeyMsg) tea.Cmd {
	if d.handleModeShortcut(msg) {
		return nil
	}
	if key.Matches(msg, d.keys.Search) {
		return d.setFocus(focusSearch)
	}
	if !d.controller.Mounted() {
		return nil
	}

	switch {
	case key.Matches(msg, d.keys.Up), key.Matches(msg, d.keys.Down):
		return d.controller.MoveCursor(msg)
	case key.Matches(msg, d.keys.PrevPage):
		d.controller.PrevPage()
	case key.Matches(msg, d.keys.NextPage):
		d.controller.NextPage()
	case key.Matches(msg, d.keys.FirstPage):
		d.controller.FirstPage()
	case key.Matches(msg, d.keys.LastPage):
		d.controller.LastPage()
	case key.Matches(msg, d.keys.SortNext):
		d.controller.SortBy((d.controller.SortColumn() + 1) % d.controller.Columns())
	case key.Matches(msg, d.keys.Reverse):
		d.controller.SortBy(max(d.controller.SortColumn(), 0))
	}
	return nil
}

func (d *DashboardView) setFocus(zone focusZone) tea.Cmd {
	d.focus = zone
	if zone == focusSearch {
		return d.search.Focus()
	}
	d.search.Blur()
	if zone == focusToggle {
		d.toggleCursor = modeIndex(d.controller.DisplayMode())
	}
	return nil
}

// reload remounts the table from a fresh copy of the dataset.
func (d *DashboardView) reload() {
	if err := d.controller.Remount(); err != nil {
		d.err = err
		d.controller.log.Error(err, "reload failed")
		return
	}
	d.err = nil
}

func (d *DashboardView) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(accentColor).
		MarginBottom(1)

	sections := []string{
		titleStyle.Render(d.title),
		renderToggleGroup(d.controller.DisplayMode(), d.toggleCursor, d.focus == focusToggle),
		d.search.View(),
	}

	if d.controller.Mounted() {
		sections = append(sections, d.controller.Render(d.focus == focusTable))
	}

	if d.err != nil {
		errStyle := lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)
		sections = append(sections, errStyle.Render(fmt.Sprintf("⚠  %v", d.err)))
	}

	return lipgloss.NewStyle().
		MarginLeft(2).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func modeIndex(mode models.DisplayMode) int {
	for i, m := range models.DisplayModes() {
		if m == mode {
			return i
		}
	}
	return 0
}
