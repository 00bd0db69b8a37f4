package store

import (
	"fmt"

	"github.com/hy4ri/basiclist-tui/internal/api"
)

// Intent type names understood by the store.
const (
	TypeFetch  = "list/fetch"
	TypeSubmit = "list/submit"
)

// Intent is a named request sent to the store.
type Intent interface {
	Type() string
}

// Fetch asks the store to load the first Count tasks.
type Fetch struct {
	Count int
}

// Type implements Intent.
func (Fetch) Type() string { return TypeFetch }

// Op tells the store what a Submit does.
type Op int

const (
	OpCreate Op = iota
	OpUpdate
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Submit mutates a single task. Fields is ignored for OpDelete.
type Submit struct {
	Op     Op
	ID     string
	Fields api.TaskFields
}

// Type implements Intent.
func (Submit) Type() string { return TypeSubmit }

// CreateIntent adds a new task.
func CreateIntent(fields api.TaskFields) Submit {
	return Submit{Op: OpCreate, Fields: fields}
}

// UpdateIntent replaces the editable fields of task id.
func UpdateIntent(id string, fields api.TaskFields) Submit {
	return Submit{Op: OpUpdate, ID: id, Fields: fields}
}

// DeleteIntent removes task id.
func DeleteIntent(id string) Submit {
	return Submit{Op: OpDelete, ID: id}
}

// SubmitFor builds the intent for a saved form: create when id is empty,
// update otherwise.
func SubmitFor(id string, fields api.TaskFields) Submit {
	if id == "" {
		return CreateIntent(fields)
	}
	return UpdateIntent(id, fields)
}

// Payload renders the submit in the untagged wire shape used by list
// services: {id, ...fields} for create and update (id is "" when creating)
// and exactly {id} for delete.
func (s Submit) Payload() map[string]any {
	if s.Op == OpDelete {
		return map[string]any{"id": s.ID}
	}
	return map[string]any{
		"id":             s.ID,
		"title":          s.Fields.Title,
		"owner":          s.Fields.Owner,
		"createdAt":      s.Fields.CreatedAt,
		"subDescription": s.Fields.SubDescription,
	}
}

// Validate rejects submits the store cannot carry out.
func (s Submit) Validate() error {
	switch s.Op {
	case OpCreate:
		if s.ID != "" {
			return fmt.Errorf("create must not carry an id, got %q", s.ID)
		}
	case OpUpdate, OpDelete:
		if s.ID == "" {
			return fmt.Errorf("%s requires an id", s.Op)
		}
	default:
		return fmt.Errorf("unknown submit op %v", s.Op)
	}
	return nil
}
