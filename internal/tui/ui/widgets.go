package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/basiclist-tui/internal/api"
	"github.com/hy4ri/basiclist-tui/internal/tui/state"
	"github.com/hy4ri/basiclist-tui/internal/tui/styles"
)

// SummaryTile renders one tile of the summary panel. Bordered tiles get a
// divider on their right edge.
func SummaryTile(title, value string, bordered bool, width int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.TileTitle.Render(title),
		styles.TileValue.Render(value),
	)
	style := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if bordered {
		style = styles.TileDivider.Width(width).Align(lipgloss.Center)
	}
	return style.Render(body)
}

// ListContent renders the owner, start time and progress of a task row.
func ListContent(t api.Task, width int) string {
	owner := styles.TaskMetaLabel.Render("Owner ") + styles.TaskMetaValue.Render(truncateString(t.Owner, 12))
	start := styles.TaskMetaLabel.Render("Start time ") + styles.TaskMetaValue.Render(t.StartDisplay())

	barWidth := width - lipgloss.Width(owner) - lipgloss.Width(start) - 13
	if barWidth > 30 {
		barWidth = 30
	}
	if barWidth < 6 {
		barWidth = 6
	}
	return strings.Join([]string{owner, start, ProgressBar(t, barWidth)}, "   ")
}

// ProgressBar renders the task's progress colored by its status.
func ProgressBar(t api.Task, width int) string {
	bar := progress.New(
		progress.WithSolidFill(styles.ProgressColor(t.Status)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	label := fmt.Sprintf("%3d%%", t.ClampedPercent())
	if t.Status == api.StatusException {
		label += " ✕"
	}
	return bar.ViewAs(float64(t.ClampedPercent())/100) + " " + label
}

// MoreMenu renders the per-row actions menu with cursor on the selected item.
func MoreMenu(cursor int) string {
	var lines []string
	for i, item := range state.MenuItems {
		if i == cursor {
			lines = append(lines, styles.MenuItemSelected.Render("> "+item))
		} else {
			lines = append(lines, styles.MenuItem.Render("  "+item))
		}
	}
	return styles.Menu.Render(strings.Join(lines, "\n"))
}

// Pagination renders the page switcher. It shows at most seven page numbers
// around page.
func Pagination(page, pageSize, total int) string {
	if pageSize <= 0 {
		pageSize = 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	var parts []string
	parts = append(parts, styles.PageOther.Render("<"))
	for _, p := range pageWindow(page, pages) {
		switch {
		case p == 0:
			parts = append(parts, styles.PageOther.Render("…"))
		case p == page:
			parts = append(parts, styles.PageCurrent.Render(fmt.Sprintf("[%d]", p)))
		default:
			parts = append(parts, styles.PageOther.Render(fmt.Sprintf("%d", p)))
		}
	}
	parts = append(parts, styles.PageOther.Render(">"))
	parts = append(parts, styles.PageOther.Render(fmt.Sprintf("  %d / page  Total %d", pageSize, total)))
	return strings.Join(parts, " ")
}

// pageWindow returns the page numbers to show; 0 stands for a gap.
func pageWindow(page, pages int) []int {
	if pages <= 7 {
		out := make([]int, pages)
		for i := range out {
			out[i] = i + 1
		}
		return out
	}

	lo, hi := page-2, page+2
	if lo < 2 {
		lo, hi = 2, 5
	}
	if hi > pages-1 {
		lo, hi = pages-4, pages-1
	}

	out := []int{1}
	if lo > 2 {
		out = append(out, 0)
	}
	for p := lo; p <= hi; p++ {
		out = append(out, p)
	}
	if hi < pages-1 {
		out = append(out, 0)
	}
	return append(out, pages)
}

// FilterBar renders the status radio group and the search box.
func FilterBar(filter int, search string) string {
	var radios []string
	for i, label := range state.FilterLabels {
		if i == filter {
			radios = append(radios, styles.RadioActive.Render(label))
		} else {
			radios = append(radios, styles.Radio.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(radios, ""), "   ", search)
}
