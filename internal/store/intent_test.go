package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hy4ri/basiclist-tui/internal/api"
)

func TestIntentTypes(t *testing.T) {
	assert.Equal(t, "list/fetch", Fetch{Count: 5}.Type())
	assert.Equal(t, "list/submit", CreateIntent(api.TaskFields{}).Type())
	assert.Equal(t, "list/submit", DeleteIntent("x").Type())
}

func TestSubmitFor(t *testing.T) {
	fields := api.TaskFields{Title: "Alipay", Owner: "周勇"}

	create := SubmitFor("", fields)
	assert.Equal(t, OpCreate, create.Op)
	assert.Empty(t, create.ID)

	update := SubmitFor("fake-list-1", fields)
	assert.Equal(t, OpUpdate, update.Op)
	assert.Equal(t, "fake-list-1", update.ID)
	assert.Equal(t, fields, update.Fields)
}

func TestSubmitPayload(t *testing.T) {
	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local)
	fields := api.TaskFields{Title: "A", Owner: "付晓晓", CreatedAt: at, SubDescription: "hello world"}

	t.Run("create carries empty id", func(t *testing.T) {
		p := CreateIntent(fields).Payload()
		assert.Equal(t, "", p["id"])
		assert.Equal(t, "A", p["title"])
		assert.Equal(t, "付晓晓", p["owner"])
		assert.Equal(t, at, p["createdAt"])
		assert.Equal(t, "hello world", p["subDescription"])
	})

	t.Run("update carries id", func(t *testing.T) {
		p := UpdateIntent("t-1", fields).Payload()
		assert.Equal(t, "t-1", p["id"])
		assert.Len(t, p, 5)
	})

	t.Run("delete carries only id", func(t *testing.T) {
		p := DeleteIntent("t-2").Payload()
		assert.Equal(t, map[string]any{"id": "t-2"}, p)
	})
}

func TestSubmitValidate(t *testing.T) {
	tests := []struct {
		name    string
		submit  Submit
		wantErr bool
	}{
		{"create", CreateIntent(api.TaskFields{}), false},
		{"create with id", Submit{Op: OpCreate, ID: "x"}, true},
		{"update", UpdateIntent("x", api.TaskFields{}), false},
		{"update without id", UpdateIntent("", api.TaskFields{}), true},
		{"delete", DeleteIntent("x"), false},
		{"delete without id", DeleteIntent(""), true},
		{"unknown op", Submit{Op: Op(9), ID: "x"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.submit.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "create", OpCreate.String())
	assert.Equal(t, "update", OpUpdate.String())
	assert.Equal(t, "delete", OpDelete.String())
	assert.Equal(t, "Op(7)", Op(7).String())
}
