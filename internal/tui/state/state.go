// Package state holds the data shared by the logic and ui packages of the
// list page.
package state

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/hy4ri/basiclist-tui/internal/api"
	"github.com/hy4ri/basiclist-tui/internal/config"
	"github.com/hy4ri/basiclist-tui/internal/store"
	"github.com/hy4ri/basiclist-tui/internal/tui/components"
	"github.com/hy4ri/basiclist-tui/internal/tui/styles"
)

// Store is the part of *store.Store the page uses.
type Store interface {
	Dispatch(ctx context.Context, intent store.Intent) error
	State() store.State
	Subscribe() (<-chan store.State, func())
}

// Status filter radio values. The filter is shown but not applied.
const (
	FilterAll = iota
	FilterInProgress
	FilterWaiting
)

// FilterLabels are the radio captions, indexed by filter value.
var FilterLabels = []string{"All", "In progress", "Waiting"}

// MenuItems are the entries of the per-row "more" menu.
var MenuItems = []string{"Edit", "Delete"}

// State holds the page state.
// All fields are exported to allow access from logic and ui packages.
type State struct {
	// Dependencies
	Config *config.Config
	Store  Store

	// View is the modal and delete dialog state.
	View ViewState
	Form *TaskForm

	// Data mirrored from the store
	Tasks   []api.Task
	Loading bool
	Err     error

	// List state
	Cursor     int
	MenuOpen   bool
	MenuCursor int
	Page       int

	// ConfirmCursor is 0 on the confirm button, 1 on cancel.
	ConfirmCursor int

	// Filter bar
	Filter      int
	SearchInput textinput.Model
	Searching   bool

	// UI state
	StatusMsg string
	Width     int
	Height    int
	ShowHelp  bool

	// Components
	Spinner   spinner.Model
	AddButton components.Focusable
	HelpComp  *components.HelpModel
	HelpBar   help.Model
	Keymap    KeyMap
}

// DefaultPageSize is the number of rows per page when the config does not
// say otherwise.
const DefaultPageSize = 5

// New creates the page state over st.
func New(cfg *config.Config, st Store) *State {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	search := textinput.New()
	search.Placeholder = "Search"
	search.CharLimit = 100
	search.Width = 20

	km := DefaultKeyMap()
	return &State{
		Config:      cfg,
		Store:       st,
		SearchInput: search,
		Page:        1,
		Spinner:     sp,
		AddButton:   components.NewAddButton("+ Add"),
		HelpComp:    components.NewHelp(km.HelpItems()),
		HelpBar:     help.New(),
		Keymap:      km,
	}
}

// SelectedTask returns the task under the cursor, or nil when the current
// page has no rows.
func (s *State) SelectedTask() *api.Task {
	start, end := s.PageBounds()
	if s.Cursor < start || s.Cursor >= end {
		return nil
	}
	return &s.Tasks[s.Cursor]
}

// PageSize returns the configured rows per page.
func (s *State) PageSize() int {
	if s.Config.UI.PageSize > 0 {
		return s.Config.UI.PageSize
	}
	return DefaultPageSize
}

// PageCount returns how many pages the pager offers. The configured total
// wins unless the list is longer.
func (s *State) PageCount() int {
	total := max(s.Config.UI.Total, len(s.Tasks))
	if total <= 0 {
		return 1
	}
	return (total + s.PageSize() - 1) / s.PageSize()
}

// PageBounds returns the slice of Tasks shown on the current page.
func (s *State) PageBounds() (start, end int) {
	size := s.PageSize()
	start = min((s.Page-1)*size, len(s.Tasks))
	start = max(start, 0)
	end = min(start+size, len(s.Tasks))
	return start, end
}

// SetPage moves to page and puts the cursor on its first row.
func (s *State) SetPage(page int) {
	if page < 1 || page > s.PageCount() {
		return
	}
	s.Page = page
	s.Cursor, _ = s.PageBounds()
}

// MoveCursor moves the cursor by delta within the list and turns the page
// when the cursor leaves it.
func (s *State) MoveCursor(delta int) {
	c := s.Cursor + delta
	if c < 0 || c >= len(s.Tasks) {
		return
	}
	s.Cursor = c
	s.Page = c/s.PageSize() + 1
}

// ApplyStore copies a store snapshot into the page and keeps the cursor on
// the list.
func (s *State) ApplyStore(st store.State) {
	s.Tasks = st.List
	s.Loading = st.Loading
	s.Err = st.Err
	if s.Cursor >= len(s.Tasks) {
		s.Cursor = len(s.Tasks) - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	if start, end := s.PageBounds(); start < end && (s.Cursor < start || s.Cursor >= end) {
		s.Cursor = start
	}
}
