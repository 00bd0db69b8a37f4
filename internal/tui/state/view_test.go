package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hy4ri/basiclist-tui/internal/api"
	"github.com/hy4ri/basiclist-tui/internal/store"
)

func TestViewStatePhase(t *testing.T) {
	task := &api.Task{ID: "1"}
	tests := []struct {
		name string
		v    ViewState
		want Phase
	}{
		{"zero value", ViewState{}, PhaseClosed},
		{"add", ViewState{Visible: true}, PhaseAdd},
		{"edit", ViewState{Visible: true, Current: task}, PhaseEdit},
		{"success", ViewState{Visible: true, Done: true, Current: task}, PhaseSuccess},
		{"hidden edit", ViewState{Current: task}, PhaseClosed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Phase())
		})
	}
	assert.Equal(t, "success", PhaseSuccess.String())
}

func TestViewStateCurrentID(t *testing.T) {
	assert.Equal(t, "", ViewState{}.CurrentID())
	assert.Equal(t, "x", ViewState{Current: &api.Task{ID: "x"}}.CurrentID())
}

func TestApplyStoreClampsCursor(t *testing.T) {
	s := New(nil, nil)
	s.Cursor = 4
	s.ApplyStore(store.State{List: []api.Task{{ID: "a"}, {ID: "b"}}, Loading: true})
	assert.Equal(t, 1, s.Cursor)
	assert.True(t, s.Loading)
	assert.Equal(t, "b", s.SelectedTask().ID)

	s.ApplyStore(store.State{})
	assert.Equal(t, 0, s.Cursor)
	assert.Nil(t, s.SelectedTask())
}

func TestPagination(t *testing.T) {
	s := New(nil, nil)
	s.Config.UI.PageSize = 2
	s.Config.UI.Total = 0
	s.ApplyStore(store.State{List: []api.Task{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"}}})

	assert.Equal(t, 3, s.PageCount())
	start, end := s.PageBounds()
	assert.Equal(t, []int{0, 2}, []int{start, end})

	s.SetPage(3)
	assert.Equal(t, 3, s.Page)
	assert.Equal(t, "e", s.SelectedTask().ID)
	start, end = s.PageBounds()
	assert.Equal(t, []int{4, 5}, []int{start, end})

	s.SetPage(4)
	assert.Equal(t, 3, s.Page, "no page past the last")

	s.MoveCursor(-1)
	assert.Equal(t, 2, s.Page, "cursor leaving the page turns it")
	assert.Equal(t, "d", s.SelectedTask().ID)

	s.MoveCursor(-3)
	assert.Equal(t, "d", s.SelectedTask().ID, "moves past the top are ignored")

	s.Config.UI.Total = 50
	assert.Equal(t, 25, s.PageCount())
	s.SetPage(10)
	assert.Nil(t, s.SelectedTask(), "pages beyond the loaded rows are empty")
}
