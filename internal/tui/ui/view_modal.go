package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/basiclist-tui/internal/tui/state"
	"github.com/hy4ri/basiclist-tui/internal/tui/styles"
)

func (r *Renderer) dialogWidth() int {
	w := r.Width - 4
	if w > 70 {
		w = 70
	}
	return w
}

// renderModal renders the add/edit modal, or its success view once the
// submission went out.
func (r *Renderer) renderModal() string {
	if r.State.View.Phase() == state.PhaseSuccess {
		return r.renderSuccess()
	}
	return r.renderTaskForm()
}

func (r *Renderer) renderTaskForm() string {
	if r.Form == nil {
		return styles.Dialog.Width(r.dialogWidth()).Render("Form not initialized")
	}

	var b strings.Builder
	f := r.Form

	title := "Add task"
	if r.State.View.Phase() == state.PhaseEdit {
		title = "Edit task"
	}
	b.WriteString(styles.DialogTitle.Render(title) + "\n\n")

	b.WriteString(fieldBlock(f, state.FormFocusTitle, state.FieldTitle, "Task name", f.Title.View()))
	b.WriteString(fieldBlock(f, state.FormFocusCreatedAt, state.FieldCreatedAt, "Start time", f.CreatedAt.View()))
	b.WriteString(fieldBlock(f, state.FormFocusOwner, state.FieldOwner, "Owner", ownerSelect(f)))
	b.WriteString(fieldBlock(f, state.FormFocusSubDescription, state.FieldSubDescription, "Product description", f.SubDescription.View()))

	b.WriteString(buttonRow(
		[]string{"Save", "Cancel"},
		f.FocusIndex-state.FormFocusSave,
	))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpDesc.Render("Tab: next field | Ctrl+S: save | Esc: cancel"))

	return styles.Dialog.Width(r.dialogWidth()).Render(b.String())
}

func fieldBlock(f *state.TaskForm, focus int, field state.FormField, label, input string) string {
	var b strings.Builder
	if f.FocusIndex == focus {
		b.WriteString(styles.InputLabelFocused.Render(label))
	} else {
		b.WriteString(styles.InputLabel.Render(label))
	}
	b.WriteString("\n" + input + "\n")
	if msg, ok := f.Errors[field]; ok {
		b.WriteString(styles.InputError.Render(msg) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

// ownerSelect renders the owner options with the selected one highlighted.
func ownerSelect(f *state.TaskForm) string {
	if len(f.Owners) == 0 {
		return styles.HelpDesc.Render("No owners configured")
	}
	opts := make([]string, len(f.Owners))
	for i, o := range f.Owners {
		if i == f.OwnerIndex {
			opts[i] = styles.RadioActive.Render(o)
		} else {
			opts[i] = styles.Radio.Render(o)
		}
	}
	hint := ""
	if f.OwnerIndex < 0 {
		hint = styles.HelpDesc.Render("  ← → to choose")
	}
	return strings.Join(opts, "") + hint
}

// buttonRow renders buttons side by side; focused is the index of the
// focused button, anything out of range focuses none.
func buttonRow(labels []string, focused int) string {
	rendered := make([]string, len(labels))
	for i, l := range labels {
		if i == focused {
			rendered[i] = styles.ButtonFocused.Render(l)
		} else {
			rendered[i] = styles.Button.Render(l)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (r *Renderer) renderSuccess() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.SuccessIcon.Render("✓"),
		"",
		styles.DialogTitle.Render("Operation succeeded"),
		styles.Subtitle.Render("The task list has been updated."),
		"",
		buttonRow([]string{"OK"}, 0),
	)
	return styles.Dialog.Width(r.dialogWidth()).Align(lipgloss.Center).Render(body)
}

func (r *Renderer) renderConfirm() string {
	labels := r.Config.UI.Labels
	var b strings.Builder

	b.WriteString(styles.DialogTitle.Render(labels.DeleteTitle) + "\n\n")
	b.WriteString(labels.DeleteContent + "\n")
	if t := r.State.View.PendingDelete; t != nil {
		b.WriteString(styles.TaskTitle.Render(truncateString(t.Title, r.dialogWidth()-6)) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(buttonRow([]string{labels.Confirm, labels.Cancel}, r.ConfirmCursor))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpDesc.Render("y: confirm | n/Esc: cancel"))

	return styles.DialogDanger.Width(r.dialogWidth()).Render(b.String())
}
