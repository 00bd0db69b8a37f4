package state

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hy4ri/basiclist-tui/internal/api"
)

var owners = []string{"付晓晓", "周毛毛", "周勇"}

func typeText(f *TaskForm, s string) {
	for _, r := range s {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNewTaskFormDefaults(t *testing.T) {
	now := time.Date(2024, 5, 20, 9, 30, 0, 0, time.Local)
	f := NewTaskForm(owners, now)

	assert.Nil(t, f.Original)
	assert.Equal(t, FormFocusTitle, f.FocusIndex)
	assert.True(t, f.Title.Focused())
	assert.Equal(t, "", f.Owner())
	assert.Equal(t, "2024-05-20 09:30", f.CreatedAt.Value())
}

func TestTaskFormTyping(t *testing.T) {
	f := NewTaskForm(owners, time.Time{})
	typeText(f, "Vue")

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FormFocusCreatedAt, f.FocusIndex)
	typeText(f, "2024-01-01")

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, FormFocusOwner, f.FocusIndex)
	f.Update(tea.KeyMsg{Type: tea.KeyRight})
	f.Update(tea.KeyMsg{Type: tea.KeyRight})

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(f, "hello world")

	assert.Equal(t, FormValues{
		Title:          "Vue",
		Owner:          "周毛毛",
		CreatedAt:      "2024-01-01",
		SubDescription: "hello world",
	}, f.Values())
}

func TestTaskFormFocusWraps(t *testing.T) {
	f := NewTaskForm(owners, time.Time{})
	f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FormFocusCancel, f.FocusIndex)
	assert.False(t, f.Title.Focused())

	f.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, FormFocusSave, f.FocusIndex)

	f.NextField()
	f.NextField()
	assert.Equal(t, FormFocusTitle, f.FocusIndex)
}

func TestSelectOwnerWraps(t *testing.T) {
	f := NewTaskForm(owners, time.Time{})
	f.SelectOwner(-1)
	assert.Equal(t, "周勇", f.Owner())
	f.SelectOwner(1)
	assert.Equal(t, "付晓晓", f.Owner())

	empty := NewTaskForm(nil, time.Time{})
	empty.SelectOwner(1)
	assert.Equal(t, "", empty.Owner())
}

func TestNewEditTaskForm(t *testing.T) {
	task := api.Task{
		ID:             "fake-list-3",
		Title:          "Webpack",
		Owner:          "曲丽丽",
		CreatedAt:      time.Date(2024, 2, 3, 4, 5, 0, 0, time.Local),
		SubDescription: "bundles things",
	}
	f := NewEditTaskForm(task, owners)

	require.NotNil(t, f.Original)
	assert.Equal(t, task, *f.Original)
	assert.Len(t, f.Owners, 4, "unknown owner is appended")
	assert.Equal(t, FormValues{
		Title:          "Webpack",
		Owner:          "曲丽丽",
		CreatedAt:      "2024-02-03 04:05",
		SubDescription: "bundles things",
	}, f.Values())

	task.Title = "changed"
	assert.Equal(t, "Webpack", f.Original.Title, "form keeps its own copy")
}

func TestSetErrorsCopies(t *testing.T) {
	f := NewTaskForm(owners, time.Time{})
	errs := map[FormField]string{FieldTitle: "required"}
	f.SetErrors(errs)
	errs[FieldOwner] = "later"
	assert.Len(t, f.Errors, 1)
}
