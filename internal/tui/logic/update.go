// Package logic turns terminal input into page events and runs the effects
// the page reducer asks for.
package logic

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/basiclist-tui/internal/api"
	"github.com/hy4ri/basiclist-tui/internal/store"
	"github.com/hy4ri/basiclist-tui/internal/tui/components"
	"github.com/hy4ri/basiclist-tui/internal/tui/state"
)

// Handler owns the update side of the page.
type Handler struct {
	*state.State

	ctx         context.Context
	sub         <-chan store.State
	unsubscribe func()
	now         func() time.Time
}

// NewHandler creates a handler over s. Store calls made by the handler use
// ctx.
func NewHandler(ctx context.Context, s *state.State) *Handler {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Handler{
		State: s,
		ctx:   ctx,
		now:   time.Now,
	}
}

// Message types
type (
	storeChangedMsg struct{ state store.State }
	dispatchedMsg   struct {
		intent store.Intent
		err    error
	}
	blurMsg   struct{}
	statusMsg struct{ msg string }
)

// Init subscribes to the store and issues the mount-time fetch.
func (h *Handler) Init() tea.Cmd {
	view, effects := Init(h.Config)
	h.View = view

	cmds := []tea.Cmd{h.Spinner.Tick, h.runEffects(effects)}
	if h.Store != nil {
		h.sub, h.unsubscribe = h.Store.Subscribe()
		cmds = append(cmds, h.listen())
	}
	return tea.Batch(cmds...)
}

// Close ends the store subscription.
func (h *Handler) Close() {
	if h.unsubscribe != nil {
		h.unsubscribe()
	}
}

// Update handles one message.
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		h.handleWindowSize(msg)
		return nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		h.Spinner, cmd = h.Spinner.Update(msg)
		return cmd

	case storeChangedMsg:
		h.ApplyStore(msg.state)
		return h.listen()

	case dispatchedMsg:
		return h.handleDispatched(msg)

	case blurMsg:
		h.AddButton.Blur()
		return nil

	case statusMsg:
		h.StatusMsg = msg.msg
		return nil

	case components.HelpClosedMsg:
		h.ShowHelp = false
		return nil
	}
	return nil
}

// Apply runs ev through the reducer and returns the effects as a command.
func (h *Handler) Apply(ev Event) tea.Cmd {
	next, effects := Reduce(h.View, ev)

	switch ev := ev.(type) {
	case OpenAdd:
		h.Form = state.NewTaskForm(h.Config.UI.Owners, h.now())
		h.AddButton.Focus()
	case OpenEdit:
		h.Form = state.NewEditTaskForm(ev.Task, h.Config.UI.Owners)
	case RequestDelete:
		h.ConfirmCursor = 0
	}
	if next.Visible || next.Confirming() {
		h.MenuOpen = false
	}
	if !next.Visible {
		h.Form = nil
	}

	h.View = next
	return h.runEffects(effects)
}

func (h *Handler) runEffects(effects []Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, eff := range effects {
		switch eff := eff.(type) {
		case Dispatch:
			cmds = append(cmds, h.dispatch(eff.Intent))
		case Blur:
			cmds = append(cmds, blurCmd)
		case FieldErrors:
			if h.Form != nil {
				h.Form.SetErrors(eff.Errors)
			}
		}
	}
	return tea.Batch(cmds...)
}

// dispatch sends intent to the store off the update loop.
func (h *Handler) dispatch(intent store.Intent) tea.Cmd {
	if h.Store == nil {
		return nil
	}
	if _, ok := intent.(store.Fetch); ok {
		h.Loading = true
	}
	return func() tea.Msg {
		err := h.Store.Dispatch(h.ctx, intent)
		return dispatchedMsg{intent: intent, err: err}
	}
}

// blurCmd defers the blur to the next turn of the event loop so it lands
// after the render of the closing transition.
func blurCmd() tea.Msg {
	return blurMsg{}
}

// listen waits for the next store change.
func (h *Handler) listen() tea.Cmd {
	ch := h.sub
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		st, ok := <-ch
		if !ok {
			return nil
		}
		return storeChangedMsg{state: st}
	}
}

func (h *Handler) handleDispatched(msg dispatchedMsg) tea.Cmd {
	h.ApplyStore(h.Store.State())

	if msg.err != nil {
		log.Printf("dispatch %s failed: %v", msg.intent.Type(), msg.err)
		h.StatusMsg = errorStatus(msg.err)
		return nil
	}

	submit, ok := msg.intent.(store.Submit)
	if !ok {
		return nil
	}

	var text string
	switch submit.Op {
	case store.OpCreate:
		text = fmt.Sprintf("Task %q added", submit.Fields.Title)
	case store.OpUpdate:
		text = fmt.Sprintf("Task %q saved", submit.Fields.Title)
	case store.OpDelete:
		text = "Task deleted"
	}
	h.StatusMsg = text

	if h.Config.UI.Notifications {
		return notifyCmd("basiclist", text)
	}
	return nil
}

// errorStatus turns a dispatch failure into a status bar line, with a hint
// for the service errors a user can act on.
func errorStatus(err error) string {
	apiErr, ok := api.IsAPIError(err)
	switch {
	case !ok:
		return "Error: " + err.Error()
	case apiErr.IsUnauthorized():
		return "Error: not authorized, run 'basiclist token set'"
	case apiErr.IsBadRequest():
		return "Error: task rejected: " + apiErr.Message
	case apiErr.IsServerError():
		return fmt.Sprintf("Error: service unavailable (%d), press r to retry", apiErr.StatusCode)
	}
	return "Error: " + err.Error()
}

func (h *Handler) handleWindowSize(msg tea.WindowSizeMsg) {
	h.Width = msg.Width
	h.Height = msg.Height
	h.HelpComp.SetSize(msg.Width, msg.Height)
	h.HelpBar.Width = msg.Width
	h.AddButton.SetSize(msg.Width-6, 1)
	if h.Form != nil {
		h.Form.SetWidth(formWidth(msg.Width))
	}
}

func formWidth(termWidth int) int {
	w := termWidth - 20
	switch {
	case w > 60:
		return 60
	case w < 20:
		return 20
	}
	return w
}
