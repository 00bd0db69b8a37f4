package logic

import (
	"fmt"
	"log"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/hy4ri/basiclist-tui/internal/api"
)

// notify and writeClipboard are swapped out in tests.
var (
	notify = func(title, message string) error {
		return beeep.Notify(title, message, "")
	}
	writeClipboard = clipboard.WriteAll
)

func notifyCmd(title, message string) tea.Cmd {
	return func() tea.Msg {
		if err := notify(title, message); err != nil {
			log.Printf("Failed to send notification: %v", err)
		}
		return nil
	}
}

// copyLinkCmd puts the task's link on the clipboard, or its title when it
// has no link.
func copyLinkCmd(t api.Task) tea.Cmd {
	text := t.Href
	if text == "" {
		text = t.Title
	}
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return statusMsg{msg: "Failed to copy: " + err.Error()}
		}
		return statusMsg{msg: fmt.Sprintf("Copied %s", text)}
	}
}
