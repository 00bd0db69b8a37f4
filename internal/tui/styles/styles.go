// Package styles provides Lip Gloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/basiclist-tui/internal/api"
)

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#1677FF", Dark: "#4096FF"}

	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
)

// Progress bar colors per task status.
const (
	ProgressNormal    = "#1677FF"
	ProgressActive    = "#52C41A"
	ProgressException = "#FF4D4F"
)

// ProgressColor returns the bar color for status.
func ProgressColor(status api.ProgressStatus) string {
	switch status {
	case api.StatusActive:
		return ProgressActive
	case api.StatusException:
		return ProgressException
	default:
		return ProgressNormal
	}
}

// Base styles
var (
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)

	// Panel is the card around the summary and the list
	Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Subtle).
		Padding(0, 1)
)

// Summary tile styles
var (
	TileTitle = lipgloss.NewStyle().
			Foreground(Subtle)

	TileValue = lipgloss.NewStyle().
			Bold(true)

	// TileDivider separates a tile from the next one
	TileDivider = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(Subtle)
)

// Task row styles
var (
	TaskItem = lipgloss.NewStyle().
			PaddingLeft(2)

	TaskSelected = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeftForeground(Highlight).
			Bold(true).
			Background(lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#2A2A2A"})

	TaskTitle = lipgloss.NewStyle().
			Foreground(Highlight).
			Underline(true)

	TaskDescription = lipgloss.NewStyle().
			Foreground(Subtle).
			Italic(true)

	TaskMetaLabel = lipgloss.NewStyle().
			Foreground(Subtle)

	TaskMetaValue = lipgloss.NewStyle()

	TaskActions = lipgloss.NewStyle().
			Foreground(Highlight)
)

// Filter bar and pagination styles
var (
	RadioActive = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Highlight)

	Radio = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(Subtle)

	PageCurrent = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight)

	PageOther = lipgloss.NewStyle().
			Foreground(Subtle)

	// AddButton is the dashed "+ Add" trigger under the filter bar
	AddButton = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(Subtle).
			Foreground(Subtle).
			Align(lipgloss.Center)

	AddButtonFocused = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(Highlight).
				Foreground(Highlight).
				Align(lipgloss.Center)
)

// Menu styles
var (
	Menu = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Subtle).
		Padding(0, 1)

	MenuItem = lipgloss.NewStyle().
			PaddingLeft(1)

	MenuItemSelected = lipgloss.NewStyle().
				PaddingLeft(1).
				Bold(true).
				Foreground(Highlight)
)

// StatusBar styles
var (
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Padding(0, 1)

	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Bold(true)

	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
				Bold(true)
)

// Help styles
var (
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)

	// NOTE: No margins here - the help overlay counts lines to center itself.
	SectionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle).
			Underline(true)
)

// Input styles
var (
	InputLabel = lipgloss.NewStyle().
			Bold(true)

	InputLabelFocused = lipgloss.NewStyle().
				Bold(true).
				Foreground(Highlight)

	InputError = lipgloss.NewStyle().
			Foreground(ErrorColor)

	Button = lipgloss.NewStyle().
		Padding(0, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Subtle)

	ButtonFocused = lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Foreground(Highlight).
			Bold(true)
)

// Dialog styles
var (
	Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(1, 2)

	DialogDanger = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor).
			Padding(1, 2)

	DialogTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight)

	SuccessIcon = lipgloss.NewStyle().
			Bold(true).
			Foreground(SuccessColor)
)

var Spinner = lipgloss.NewStyle().
	Foreground(Highlight)
