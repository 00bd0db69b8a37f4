// Package components provides reusable UI components for the list page.
package components

import tea "github.com/charmbracelet/bubbletea"

// Component is a sub-model that owns one part of the page.
type Component interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Component, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Focusable is a component that can hold input focus. Handlers get one of
// these instead of reaching into the component to change its focus.
type Focusable interface {
	Component
	Focus()
	Blur()
	Focused() bool
}
