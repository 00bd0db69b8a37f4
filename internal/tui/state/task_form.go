package state

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/basiclist-tui/internal/api"
)

// Focus positions inside the task form, in tab order.
const (
	FormFocusTitle = iota
	FormFocusCreatedAt
	FormFocusOwner
	FormFocusSubDescription
	FormFocusSave
	FormFocusCancel
)

const formFocusCount = 6

// TaskForm is the add/edit form shown in the modal.
type TaskForm struct {
	Title          textinput.Model
	CreatedAt      textinput.Model
	SubDescription textarea.Model

	// Owners are the select options; OwnerIndex is -1 until one is picked.
	Owners     []string
	OwnerIndex int

	FocusIndex int
	Errors     map[FormField]string

	// Original is the task being edited, nil when adding.
	Original *api.Task
}

// NewTaskForm creates an empty form. The start time is prefilled with now.
func NewTaskForm(owners []string, now time.Time) *TaskForm {
	title := textinput.New()
	title.Placeholder = "Task name"
	title.CharLimit = 200
	title.Width = 40

	createdAt := textinput.New()
	createdAt.Placeholder = "2006-01-02 15:04"
	createdAt.CharLimit = 19
	createdAt.Width = 20
	if !now.IsZero() {
		createdAt.SetValue(now.Local().Format("2006-01-02 15:04"))
	}

	desc := textarea.New()
	desc.Placeholder = "At least five characters"
	desc.CharLimit = 1000
	desc.ShowLineNumbers = false
	desc.SetWidth(40)
	desc.SetHeight(3)

	f := &TaskForm{
		Title:          title,
		CreatedAt:      createdAt,
		SubDescription: desc,
		Owners:         append([]string(nil), owners...),
		OwnerIndex:     -1,
		Errors:         map[FormField]string{},
	}
	f.Focus(FormFocusTitle)
	return f
}

// NewEditTaskForm creates a form prefilled from t. An owner missing from
// owners is added to the options so it stays selectable.
func NewEditTaskForm(t api.Task, owners []string) *TaskForm {
	f := NewTaskForm(owners, time.Time{})
	task := t
	f.Original = &task
	f.Title.SetValue(t.Title)
	if !t.CreatedAt.IsZero() {
		f.CreatedAt.SetValue(t.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	f.SubDescription.SetValue(t.SubDescription)

	if t.Owner != "" {
		f.OwnerIndex = -1
		for i, o := range f.Owners {
			if o == t.Owner {
				f.OwnerIndex = i
				break
			}
		}
		if f.OwnerIndex < 0 {
			f.Owners = append(f.Owners, t.Owner)
			f.OwnerIndex = len(f.Owners) - 1
		}
	}
	return f
}

// Owner returns the selected owner, or "" when none is selected.
func (f *TaskForm) Owner() string {
	if f.OwnerIndex < 0 || f.OwnerIndex >= len(f.Owners) {
		return ""
	}
	return f.Owners[f.OwnerIndex]
}

// Values returns the current text of every field.
func (f *TaskForm) Values() FormValues {
	return FormValues{
		Title:          f.Title.Value(),
		Owner:          f.Owner(),
		CreatedAt:      f.CreatedAt.Value(),
		SubDescription: f.SubDescription.Value(),
	}
}

// SetErrors replaces the messages shown under the fields.
func (f *TaskForm) SetErrors(errs map[FormField]string) {
	f.Errors = make(map[FormField]string, len(errs))
	for k, v := range errs {
		f.Errors[k] = v
	}
}

// Update routes a message to the focused field.
func (f *TaskForm) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab":
			f.NextField()
			return nil
		case "shift+tab":
			f.PrevField()
			return nil
		}

		switch f.FocusIndex {
		case FormFocusOwner:
			switch msg.String() {
			case "left", "h":
				f.SelectOwner(-1)
			case "right", "l", " ":
				f.SelectOwner(1)
			}
			return nil
		case FormFocusSave, FormFocusCancel:
			switch msg.String() {
			case "left", "right":
				if f.FocusIndex == FormFocusSave {
					f.Focus(FormFocusCancel)
				} else {
					f.Focus(FormFocusSave)
				}
			}
			return nil
		}
	}

	var cmd tea.Cmd
	switch f.FocusIndex {
	case FormFocusTitle:
		f.Title, cmd = f.Title.Update(msg)
	case FormFocusCreatedAt:
		f.CreatedAt, cmd = f.CreatedAt.Update(msg)
	case FormFocusSubDescription:
		f.SubDescription, cmd = f.SubDescription.Update(msg)
	}
	return cmd
}

// SelectOwner moves the owner selection by delta, wrapping around.
func (f *TaskForm) SelectOwner(delta int) {
	n := len(f.Owners)
	if n == 0 {
		return
	}
	if f.OwnerIndex < 0 {
		if delta < 0 {
			f.OwnerIndex = n - 1
		} else {
			f.OwnerIndex = 0
		}
		return
	}
	f.OwnerIndex = ((f.OwnerIndex+delta)%n + n) % n
}

// NextField moves focus to the next field.
func (f *TaskForm) NextField() {
	f.Focus((f.FocusIndex + 1) % formFocusCount)
}

// PrevField moves focus to the previous field.
func (f *TaskForm) PrevField() {
	f.Focus((f.FocusIndex - 1 + formFocusCount) % formFocusCount)
}

// Focus moves focus to index.
func (f *TaskForm) Focus(index int) {
	f.FocusIndex = index
	f.Title.Blur()
	f.CreatedAt.Blur()
	f.SubDescription.Blur()

	switch index {
	case FormFocusTitle:
		f.Title.Focus()
	case FormFocusCreatedAt:
		f.CreatedAt.Focus()
	case FormFocusSubDescription:
		f.SubDescription.Focus()
	}
}

// SetWidth sets the width of the text fields.
func (f *TaskForm) SetWidth(width int) {
	f.Title.Width = width
	f.SubDescription.SetWidth(width)
}
