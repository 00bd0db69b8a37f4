package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/basiclist-tui/internal/tui/styles"
)

// HelpClosedMsg is emitted when the help overlay asks to be closed.
type HelpClosedMsg struct{}

// HelpModel renders the keyboard shortcut overlay.
type HelpModel struct {
	width, height int
	items         [][]string
}

// NewHelp creates a HelpModel showing items, as returned by
// state.KeyMap.HelpItems.
func NewHelp(items [][]string) *HelpModel {
	return &HelpModel{items: items}
}

// Init implements Component.
func (h *HelpModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (h *HelpModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "?", "q":
			return h, func() tea.Msg { return HelpClosedMsg{} }
		}
	}
	return h, nil
}

// View implements Component.
func (h *HelpModel) View() string {
	if len(h.items) == 0 {
		return styles.Dialog.Render("No keybindings registered")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n")

	// Sections alternate between two columns; "General" always goes right.
	var left, right strings.Builder
	col := &left
	sections := 0
	for _, item := range h.items {
		if len(item) < 2 {
			continue
		}
		keyName, desc := item[0], item[1]

		switch {
		case desc == "" && keyName != "":
			if sections%2 == 0 && keyName != "General" {
				col = &left
			} else {
				col = &right
			}
			sections++
			col.WriteString("\n" + styles.SectionHeader.Render(" "+keyName+" ") + "\n")
		case keyName == "" && desc == "":
			col.WriteString("\n")
		default:
			keyStyle := styles.HelpKey.Width(14).Align(lipgloss.Right).PaddingRight(2)
			col.WriteString(keyStyle.Render(keyName) + styles.HelpDesc.Render(desc) + "\n")
		}
	}

	colWidth := h.width / 2
	if colWidth > 46 || colWidth <= 0 {
		colWidth = 46
	}
	column := lipgloss.NewStyle().Width(colWidth).PaddingLeft(1).PaddingRight(1)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, column.Render(left.String()), column.Render(right.String())))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpDesc.Render("Press ESC or ? to close"))

	return styles.Dialog.Render(b.String())
}

// SetSize implements Component.
func (h *HelpModel) SetSize(width, height int) {
	h.width = width
	h.height = height
}
