// Package ui renders the list page from state.State.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/basiclist-tui/internal/api"
	"github.com/hy4ri/basiclist-tui/internal/tui/state"
	"github.com/hy4ri/basiclist-tui/internal/tui/styles"
)

// Renderer renders the page. It only reads the state.
type Renderer struct {
	*state.State
}

func NewRenderer(s *state.State) *Renderer {
	return &Renderer{State: s}
}

func (r *Renderer) View() string {
	if r.Width == 0 {
		return "Loading..."
	}

	content := r.renderMainView()

	// Overlay content checks
	type overlaySpec struct {
		active bool
		render func() string
	}
	overlays := []overlaySpec{
		{r.ShowHelp, r.renderHelp},
		{r.State.View.Visible, r.renderModal},
		{r.State.View.Confirming(), r.renderConfirm},
	}
	for _, o := range overlays {
		if o.active {
			content = r.overlay(o.render())
		}
	}
	return content
}

// overlay centers a dialog on the screen.
func (r *Renderer) overlay(dialog string) string {
	return lipgloss.Place(r.Width, r.Height, lipgloss.Center, lipgloss.Center, dialog)
}

func (r *Renderer) renderMainView() string {
	parts := []string{
		r.renderSummary(),
		r.renderListPanel(),
		r.renderStatusBar(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r *Renderer) panelWidth() int {
	w := r.Width - 2
	if w < 20 {
		w = 20
	}
	return w
}

func (r *Renderer) renderSummary() string {
	tiles := r.Config.UI.Summary
	if len(tiles) == 0 {
		return ""
	}
	inner := r.panelWidth() - styles.Panel.GetHorizontalFrameSize()
	tileWidth := inner/len(tiles) - 1

	rendered := make([]string, len(tiles))
	for i, t := range tiles {
		rendered[i] = SummaryTile(t.Title, t.Value, i < len(tiles)-1, tileWidth)
	}
	return styles.Panel.Width(r.panelWidth()).Render(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
}

func (r *Renderer) renderListPanel() string {
	width := r.panelWidth() - styles.Panel.GetHorizontalFrameSize()

	var b strings.Builder
	header := styles.Title.Render("Standard list")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, header, "   ", FilterBar(r.Filter, r.SearchInput.View())))
	b.WriteString("\n\n")
	b.WriteString(r.AddButton.View())
	b.WriteString("\n")

	switch {
	case r.Loading && len(r.Tasks) == 0:
		b.WriteString("\n" + r.Spinner.View() + " Loading tasks...\n")
	default:
		start, end := r.PageBounds()
		if start == end {
			b.WriteString("\n" + styles.HelpDesc.Render("No data") + "\n")
			break
		}
		for i := start; i < end; i++ {
			t := r.Tasks[i]
			b.WriteString(r.renderTaskRow(i, t, width))
			b.WriteString("\n")
			if r.MenuOpen && i == r.Cursor {
				b.WriteString(lipgloss.NewStyle().PaddingLeft(width-16).Render(MoreMenu(r.MenuCursor)))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	pager := Pagination(r.Page, r.PageSize(), max(r.Config.UI.Total, len(r.Tasks)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Right, pager))

	return styles.Panel.Width(r.panelWidth()).Render(b.String())
}

func (r *Renderer) renderTaskRow(i int, t api.Task, width int) string {
	titleWidth := width / 3
	title := styles.TaskTitle.Render(truncateString(t.Title, titleWidth))
	desc := styles.TaskDescription.Render(truncateString(t.SubDescription, titleWidth))
	actions := styles.TaskActions.Render("Edit  More ▾")

	meta := ListContent(t, width-titleWidth-lipgloss.Width(actions)-6)
	left := lipgloss.JoinVertical(lipgloss.Left, title, desc)
	row := lipgloss.JoinHorizontal(lipgloss.Center,
		lipgloss.NewStyle().Width(titleWidth+2).Render(left),
		meta, "  ", actions,
	)

	if i == r.Cursor {
		return styles.TaskSelected.Render(row)
	}
	return styles.TaskItem.Render(row)
}

func (r *Renderer) renderStatusBar() string {
	left := ""
	if r.Err != nil {
		left = styles.StatusBarError.Render("Error: " + oneLine(r.Err.Error()))
	} else if r.StatusMsg != "" {
		left = styles.StatusBarSuccess.Render(oneLine(r.StatusMsg))
	} else if r.Loading {
		left = r.Spinner.View() + " loading"
	}

	right := r.HelpBar.ShortHelpView(r.Keymap.ShortHelp())
	count := fmt.Sprintf("%d tasks", len(r.Tasks))

	maxLeft := r.Width - lipgloss.Width(right) - lipgloss.Width(count) - 6
	if lipgloss.Width(left) > maxLeft && maxLeft > 10 {
		left = truncateString(left, maxLeft)
	}

	gap := r.Width - lipgloss.Width(left) - lipgloss.Width(right) - lipgloss.Width(count) - 4
	if gap < 1 {
		gap = 1
	}
	return styles.StatusBar.Width(r.Width).Render(left + strings.Repeat(" ", gap) + count + "  " + right)
}

func (r *Renderer) renderHelp() string {
	return r.HelpComp.View()
}
