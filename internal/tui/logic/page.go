package logic

import (
	"github.com/hy4ri/basiclist-tui/internal/api"
	"github.com/hy4ri/basiclist-tui/internal/config"
	"github.com/hy4ri/basiclist-tui/internal/store"
	"github.com/hy4ri/basiclist-tui/internal/tui/state"
)

// DefaultPageSize is the number of tasks fetched on mount when the config
// does not say otherwise.
const DefaultPageSize = state.DefaultPageSize

// Event is something the user did on the page.
type Event interface{ isEvent() }

type (
	// OpenAdd opens the modal with an empty form.
	OpenAdd struct{}
	// OpenEdit opens the modal on Task.
	OpenEdit struct{ Task api.Task }
	// SubmitForm saves the form.
	SubmitForm struct{ Values state.FormValues }
	// Acknowledge closes the success view.
	Acknowledge struct{}
	// Cancel dismisses the modal.
	Cancel struct{}
	// RequestDelete opens the delete confirmation for Task.
	RequestDelete struct{ Task api.Task }
	// ConfirmDelete deletes the pending task.
	ConfirmDelete struct{}
	// DismissDelete closes the confirmation without deleting.
	DismissDelete struct{}
)

func (OpenAdd) isEvent()       {}
func (OpenEdit) isEvent()      {}
func (SubmitForm) isEvent()    {}
func (Acknowledge) isEvent()   {}
func (Cancel) isEvent()        {}
func (RequestDelete) isEvent() {}
func (ConfirmDelete) isEvent() {}
func (DismissDelete) isEvent() {}

// Effect is work Reduce asks the caller to do.
type Effect interface{ isEffect() }

type (
	// Dispatch sends Intent to the store.
	Dispatch struct{ Intent store.Intent }
	// Blur takes focus away from the add button on the next loop turn.
	Blur struct{}
	// FieldErrors shows validation messages under the form fields.
	FieldErrors struct{ Errors map[state.FormField]string }
)

func (Dispatch) isEffect()    {}
func (Blur) isEffect()        {}
func (FieldErrors) isEffect() {}

// Init returns the view state of a freshly mounted page and the initial
// fetch.
func Init(cfg *config.Config) (state.ViewState, []Effect) {
	count := DefaultPageSize
	if cfg != nil && cfg.UI.PageSize > 0 {
		count = cfg.UI.PageSize
	}
	return state.ViewState{}, []Effect{Dispatch{Intent: store.Fetch{Count: count}}}
}

// Reduce applies ev to v. It never touches the store or the terminal; the
// returned effects say what should happen outside.
func Reduce(v state.ViewState, ev Event) (state.ViewState, []Effect) {
	switch ev := ev.(type) {
	case OpenAdd:
		v.Visible = true
		v.Done = false
		v.Current = nil
		return v, nil

	case OpenEdit:
		task := ev.Task
		v.Visible = true
		v.Done = false
		v.Current = &task
		return v, nil

	case SubmitForm:
		if v.Phase() != state.PhaseAdd && v.Phase() != state.PhaseEdit {
			return v, nil
		}
		res := state.Validate(ev.Values)
		if !res.OK() {
			return v, []Effect{FieldErrors{Errors: res.Errors}}
		}
		v.Done = true
		return v, []Effect{Dispatch{Intent: store.SubmitFor(v.CurrentID(), res.Fields)}}

	case Acknowledge:
		if v.Phase() != state.PhaseSuccess {
			return v, nil
		}
		return closeModal(v)

	case Cancel:
		if !v.Visible {
			return v, nil
		}
		return closeModal(v)

	case RequestDelete:
		task := ev.Task
		v.PendingDelete = &task
		return v, nil

	case ConfirmDelete:
		if v.PendingDelete == nil {
			return v, nil
		}
		id := v.PendingDelete.ID
		v.PendingDelete = nil
		return v, []Effect{Dispatch{Intent: store.DeleteIntent(id)}}

	case DismissDelete:
		v.PendingDelete = nil
		return v, nil
	}
	return v, nil
}

func closeModal(v state.ViewState) (state.ViewState, []Effect) {
	v.Visible = false
	v.Done = false
	return v, []Effect{Blur{}}
}
