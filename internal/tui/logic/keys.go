package logic

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/basiclist-tui/internal/store"
	"github.com/hy4ri/basiclist-tui/internal/tui/state"
)

func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	switch {
	case h.View.Confirming():
		return h.handleConfirmKey(msg)
	case h.View.Visible:
		return h.handleModalKey(msg)
	case h.ShowHelp:
		_, cmd := h.HelpComp.Update(msg)
		return cmd
	case h.Searching:
		return h.handleSearchKey(msg)
	case h.MenuOpen:
		return h.handleMenuKey(msg)
	}
	return h.handleListKey(msg)
}

func (h *Handler) handleListKey(msg tea.KeyMsg) tea.Cmd {
	km := h.Keymap
	switch {
	case key.Matches(msg, km.Quit):
		return tea.Quit
	case key.Matches(msg, km.Up):
		h.MoveCursor(-1)
	case key.Matches(msg, km.Down):
		h.MoveCursor(1)
	case key.Matches(msg, km.Add):
		return h.Apply(OpenAdd{})
	case key.Matches(msg, km.Edit):
		if t := h.SelectedTask(); t != nil {
			return h.Apply(OpenEdit{Task: *t})
		}
	case key.Matches(msg, km.More):
		if h.SelectedTask() != nil {
			h.MenuOpen = true
			h.MenuCursor = 0
		}
	case key.Matches(msg, km.Delete):
		if t := h.SelectedTask(); t != nil {
			return h.Apply(RequestDelete{Task: *t})
		}
	case key.Matches(msg, km.CopyLink):
		if t := h.SelectedTask(); t != nil {
			return copyLinkCmd(*t)
		}
	case key.Matches(msg, km.Filter):
		switch msg.String() {
		case "1":
			h.Filter = state.FilterAll
		case "2":
			h.Filter = state.FilterInProgress
		case "3":
			h.Filter = state.FilterWaiting
		}
	case key.Matches(msg, km.Search):
		h.Searching = true
		h.SearchInput.Focus()
		return textinput.Blink
	case key.Matches(msg, km.PrevPage):
		h.SetPage(h.Page - 1)
	case key.Matches(msg, km.NextPage):
		h.SetPage(h.Page + 1)
	case key.Matches(msg, km.Refresh):
		return h.dispatch(store.Fetch{Count: h.PageSize()})
	case key.Matches(msg, km.Help):
		h.ShowHelp = true
	}
	return nil
}

func (h *Handler) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "m", "q":
		h.MenuOpen = false
	case "j", "down":
		h.MenuCursor = (h.MenuCursor + 1) % len(state.MenuItems)
	case "k", "up":
		h.MenuCursor = (h.MenuCursor - 1 + len(state.MenuItems)) % len(state.MenuItems)
	case "e":
		h.MenuCursor = 0
		return h.chooseMenuItem()
	case "d":
		h.MenuCursor = 1
		return h.chooseMenuItem()
	case "enter":
		return h.chooseMenuItem()
	}
	return nil
}

func (h *Handler) chooseMenuItem() tea.Cmd {
	h.MenuOpen = false
	t := h.SelectedTask()
	if t == nil {
		return nil
	}
	switch state.MenuItems[h.MenuCursor] {
	case "Edit":
		return h.Apply(OpenEdit{Task: *t})
	case "Delete":
		return h.Apply(RequestDelete{Task: *t})
	}
	return nil
}

func (h *Handler) handleModalKey(msg tea.KeyMsg) tea.Cmd {
	if h.View.Phase() == state.PhaseSuccess {
		switch msg.String() {
		case "enter":
			return h.Apply(Acknowledge{})
		case "esc":
			return h.Apply(Cancel{})
		}
		return nil
	}

	if h.Form == nil {
		return nil
	}

	switch msg.String() {
	case "esc":
		return h.Apply(Cancel{})
	case "ctrl+s":
		return h.submitForm()
	case "enter":
		switch h.Form.FocusIndex {
		case state.FormFocusSave:
			return h.submitForm()
		case state.FormFocusCancel:
			return h.Apply(Cancel{})
		case state.FormFocusSubDescription:
			return h.Form.Update(msg)
		default:
			h.Form.NextField()
			return nil
		}
	}
	return h.Form.Update(msg)
}

func (h *Handler) submitForm() tea.Cmd {
	values := h.Form.Values()
	h.Form.SetErrors(nil)
	return h.Apply(SubmitForm{Values: values})
}

func (h *Handler) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "right", "tab", "shift+tab", "h", "l":
		h.ConfirmCursor = 1 - h.ConfirmCursor
	case "enter":
		if h.ConfirmCursor == 0 {
			return h.Apply(ConfirmDelete{})
		}
		return h.Apply(DismissDelete{})
	case "y", "Y":
		return h.Apply(ConfirmDelete{})
	case "n", "N", "esc", "q":
		return h.Apply(DismissDelete{})
	}
	return nil
}

func (h *Handler) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		h.Searching = false
		h.SearchInput.Blur()
		h.SearchInput.SetValue("")
		return nil
	case "enter":
		h.Searching = false
		h.SearchInput.Blur()
		return nil
	}
	var cmd tea.Cmd
	h.SearchInput, cmd = h.SearchInput.Update(msg)
	return cmd
}
