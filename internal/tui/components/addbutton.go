package components

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/basiclist-tui/internal/tui/styles"
)

var _ Focusable = (*AddButton)(nil)

// AddButton is the "+ Add" trigger of the list panel. It keeps focus while
// the modal it opened is up.
type AddButton struct {
	label   string
	width   int
	focused bool
}

// NewAddButton creates an unfocused button.
func NewAddButton(label string) *AddButton {
	if label == "" {
		label = "+ Add"
	}
	return &AddButton{label: label, width: 40}
}

// Init implements Component.
func (b *AddButton) Init() tea.Cmd { return nil }

// Update implements Component. The button reacts to nothing on its own.
func (b *AddButton) Update(tea.Msg) (Component, tea.Cmd) { return b, nil }

// View implements Component.
func (b *AddButton) View() string {
	style := styles.AddButton
	if b.focused {
		style = styles.AddButtonFocused
	}
	w := b.width - 2
	if w < len(b.label) {
		w = len(b.label)
	}
	return style.Width(w).Render(b.label)
}

// SetSize implements Component.
func (b *AddButton) SetSize(width, _ int) { b.width = width }

// Focus implements Focusable.
func (b *AddButton) Focus() { b.focused = true }

// Blur implements Focusable.
func (b *AddButton) Blur() { b.focused = false }

// Focused implements Focusable.
func (b *AddButton) Focused() bool { return b.focused }
