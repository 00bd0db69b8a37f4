// Package tui provides the terminal user interface for the task list.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/basiclist-tui/internal/config"
	"github.com/hy4ri/basiclist-tui/internal/tui/logic"
	"github.com/hy4ri/basiclist-tui/internal/tui/state"
	"github.com/hy4ri/basiclist-tui/internal/tui/ui"
)

// App is the main Bubble Tea model for the application.
// It delegates updates to logic.Handler and rendering to ui.Renderer.
type App struct {
	state    *state.State
	handler  *logic.Handler
	renderer *ui.Renderer
}

// NewApp creates the list page over st.
func NewApp(ctx context.Context, cfg *config.Config, st state.Store) *App {
	s := state.New(cfg, st)
	return &App{
		state:    s,
		handler:  logic.NewHandler(ctx, s),
		renderer: ui.NewRenderer(s),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.handler.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.handler.Update(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	return a.renderer.View()
}

// Close releases the store subscription.
func (a *App) Close() {
	a.handler.Close()
}

// State exposes the page state, mainly for tests.
func (a *App) State() *state.State {
	return a.state
}
