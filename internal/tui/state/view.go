package state

import "github.com/hy4ri/basiclist-tui/internal/api"

// Phase is the modal state derived from a ViewState.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseAdd
	PhaseEdit
	PhaseSuccess
)

func (p Phase) String() string {
	switch p {
	case PhaseClosed:
		return "closed"
	case PhaseAdd:
		return "add"
	case PhaseEdit:
		return "edit"
	case PhaseSuccess:
		return "success"
	}
	return "unknown"
}

// ViewState is the page-local state of the add/edit modal and the delete
// dialog. Done is only ever true while Visible is.
type ViewState struct {
	Visible bool
	Done    bool

	// Current is the task being edited, nil when adding.
	Current *api.Task

	// PendingDelete is the task whose delete confirmation is open.
	PendingDelete *api.Task
}

// Phase reports which modal state v is in.
func (v ViewState) Phase() Phase {
	switch {
	case !v.Visible:
		return PhaseClosed
	case v.Done:
		return PhaseSuccess
	case v.Current != nil:
		return PhaseEdit
	}
	return PhaseAdd
}

// CurrentID returns the id of the edited task, or "" when adding.
func (v ViewState) CurrentID() string {
	if v.Current == nil {
		return ""
	}
	return v.Current.ID
}

// Confirming reports whether the delete dialog is open.
func (v ViewState) Confirming() bool {
	return v.PendingDelete != nil
}
