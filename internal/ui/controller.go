package ui

import (
	"errors"
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"github.com/Johannes-Berggren/repodash/internal/datatable"
	"github.com/Johannes-Berggren/repodash/internal/models"
	"github.com/Johannes-Berggren/repodash/internal/repos"
)

var (
	ErrNotMounted     = errors.New("table is not mounted")
	ErrAlreadyMounted = errors.New("table is already mounted")
)

// LifecycleError reports an operation issued in the wrong mount state. These
// are programming errors: the controller panics with them.
type LifecycleError struct {
	Op  string
	Err error
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *LifecycleError) Unwrap() error {
	return e.Err
}

// TableHandle is the live table a mounted controller owns.
type TableHandle interface {
	Search(query string) datatable.Drawer
	Order(orders ...datatable.Order) datatable.Drawer
	Ordering() []datatable.Order
	Destroy()

	Render(styles datatable.Styles) string
	Info() datatable.PageInfo
	InfoText() string
	PagerView() string

	NextPage() bool
	PrevPage() bool
	SetPage(page int)
	Update(msg tea.Msg) tea.Cmd

	Visible() []models.Repository
	Selected() (models.Repository, bool)
}

// TableFactory creates the table for a mount.
type TableFactory func(cfg datatable.Config[models.Repository]) (TableHandle, error)

// NewTable is the default TableFactory.
func NewTable(cfg datatable.Config[models.Repository]) (TableHandle, error) {
	t, err := datatable.New(cfg)
	if err != nil {
		return nil, err
	}
	return t, nil
}

type ControllerOptions struct {
	Paging         bool
	Searching      bool
	Ordering       bool
	PageLength     int
	MaxColumnWidth int
	DisplayMode    models.DisplayMode
	NewTable       TableFactory
	Logger         logr.Logger
}

// Controller owns the dashboard's query, display mode and the mounted table.
// All methods run on the UI goroutine.
type Controller struct {
	source repos.Source
	opts   ControllerOptions
	log    logr.Logger

	query  string
	order  []datatable.Order
	mode   models.DisplayMode
	handle TableHandle
	mounts int
}

func NewController(source repos.Source, opts ControllerOptions) *Controller {
	if opts.NewTable == nil {
		opts.NewTable = NewTable
	}
	if !opts.DisplayMode.Valid() {
		opts.DisplayMode = models.DefaultDisplayMode
	}
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}

	return &Controller{
		source: source,
		opts:   opts,
		log:    log.WithName("controller"),
		mode:   opts.DisplayMode,
	}
}

// Mount loads the dataset and creates the table. A query left over from a
// previous mount is applied to the new table.
func (c *Controller) Mount() error {
	if c.handle != nil {
		panic(&LifecycleError{Op: "mount", Err: ErrAlreadyMounted})
	}

	data, err := c.source.Repositories()
	if err != nil {
		return fmt.Errorf("failed to load repositories: %w", err)
	}

	handle, err := c.opts.NewTable(datatable.Config[models.Repository]{
		Paging:     c.opts.Paging,
		Searching:  c.opts.Searching,
		Ordering:   c.opts.Ordering,
		PageLength: c.opts.PageLength,
		Order:      c.order,
		Data:       data,
		Columns:    c.columns(),
	})
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	c.handle = handle
	c.mounts++
	c.order = handle.Ordering()
	if c.query != "" {
		handle.Search(c.query).Draw()
	}

	c.log.Info("mounted", "rows", len(data), "mount", c.mounts)
	return nil
}

func (c *Controller) columns() []datatable.Column {
	schema := models.Columns()
	cols := make([]datatable.Column, len(schema))
	for i, col := range schema {
		cols[i] = datatable.Column{
			Data:     col.Field,
			Title:    col.Label,
			MaxWidth: c.opts.MaxColumnWidth,
		}
	}
	return cols
}

// Unmount destroys the table. It must follow a successful Mount.
func (c *Controller) Unmount() {
	handle := c.live("unmount")
	c.handle = nil
	handle.Destroy()
	c.log.Info("unmounted", "mount", c.mounts)
}

// Remount replaces the table with a fresh one built from a reloaded dataset.
func (c *Controller) Remount() error {
	if c.handle != nil {
		c.Unmount()
	}
	return c.Mount()
}

func (c *Controller) Mounted() bool {
	return c.handle != nil
}

// Mounts counts successful mounts over the controller's life.
func (c *Controller) Mounts() int {
	return c.mounts
}

// SetQuery stores the query and redraws the table filtered by it.
func (c *Controller) SetQuery(query string) {
	handle := c.live("query")
	c.query = query
	handle.Search(query).Draw()
	c.log.V(1).Info("search", "query", query, "matches", handle.Info().Filtered)
}

func (c *Controller) Query() string {
	return c.query
}

// SortBy orders the table by column. Picking the column already sorted on
// flips its direction; any other column starts ascending. The sort is kept
// across searches and remounts.
func (c *Controller) SortBy(column int) {
	handle := c.live("sort")
	order := datatable.Order{Column: column}
	if current := handle.Ordering(); len(current) > 0 && current[0].Column == column {
		order.Desc = !current[0].Desc
	}
	handle.Order(order).Draw()
	c.order = handle.Ordering()
	c.log.V(1).Info("sort", "column", column, "desc", order.Desc)
}

// Ordering returns the current sort, primary key first. Empty when ordering
// is disabled.
func (c *Controller) Ordering() []datatable.Order {
	return slices.Clone(c.order)
}

// SortColumn returns the primary sort column, or -1 when unsorted.
func (c *Controller) SortColumn() int {
	if len(c.order) == 0 {
		return -1
	}
	return c.order[0].Column
}

// Columns is the number of table columns.
func (c *Controller) Columns() int {
	return len(models.Columns())
}

// SetDisplayMode switches the render variant. The table itself is not touched;
// the next render picks up the mode's styles.
func (c *Controller) SetDisplayMode(mode models.DisplayMode) {
	if mode == c.mode || !mode.Valid() {
		return
	}
	c.mode = mode
	c.log.V(1).Info("display mode", "mode", string(mode))
}

func (c *Controller) DisplayMode() models.DisplayMode {
	return c.mode
}

func (c *Controller) NextPage() bool {
	return c.live("page").NextPage()
}

func (c *Controller) PrevPage() bool {
	return c.live("page").PrevPage()
}

func (c *Controller) FirstPage() {
	c.live("page").SetPage(0)
}

func (c *Controller) LastPage() {
	handle := c.live("page")
	handle.SetPage(handle.Info().Pages - 1)
}

// MoveCursor forwards navigation keys to the table's row cursor.
func (c *Controller) MoveCursor(msg tea.Msg) tea.Cmd {
	return c.live("cursor").Update(msg)
}

func (c *Controller) Selected() (models.Repository, bool) {
	if c.handle == nil {
		return models.Repository{}, false
	}
	return c.handle.Selected()
}

// Visible returns the rows on the current page.
func (c *Controller) Visible() []models.Repository {
	return c.live("visible").Visible()
}

func (c *Controller) Info() datatable.PageInfo {
	return c.live("info").Info()
}

// Render paints the table region in the current display mode: the table in
// its container, then the entries summary and page indicator.
func (c *Controller) Render(focused bool) string {
	handle := c.live("render")

	body := containerStyle(c.mode, focused).Render(handle.Render(tableStyles(c.mode, focused)))
	return body + "\n" + infoLine(handle.InfoText(), handle.PagerView())
}

func (c *Controller) live(op string) TableHandle {
	if c.handle == nil {
		panic(&LifecycleError{Op: op, Err: ErrNotMounted})
	}
	return c.handle
}
