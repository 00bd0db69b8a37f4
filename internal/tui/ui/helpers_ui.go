package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// truncateString cuts s to at most width terminal cells, ending it with an
// ellipsis when anything was dropped. Wide runes count as two cells.
func truncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// oneLine folds line breaks so a message fits on the status bar.
func oneLine(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\n", " ")
}
