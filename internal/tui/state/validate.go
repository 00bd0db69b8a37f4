package state

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hy4ri/basiclist-tui/internal/api"
)

// FormField names a field of the task form. The values match the wire names.
type FormField string

const (
	FieldTitle          FormField = "title"
	FieldOwner          FormField = "owner"
	FieldCreatedAt      FormField = "createdAt"
	FieldSubDescription FormField = "subDescription"
)

// MinSubDescription is the shortest non-empty description accepted.
const MinSubDescription = 5

// StartLayouts are the accepted formats for the start time, tried in order.
var StartLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// FormValues is the raw text of the form.
type FormValues struct {
	Title          string
	Owner          string
	CreatedAt      string
	SubDescription string
}

// ResultKind tells a successful validation from a failed one.
type ResultKind int

const (
	Valid ResultKind = iota
	Invalid
)

// ValidationResult carries either the parsed fields or per-field messages.
type ValidationResult struct {
	Kind   ResultKind
	Fields api.TaskFields
	Errors map[FormField]string
}

// OK reports whether the values were accepted.
func (r ValidationResult) OK() bool {
	return r.Kind == Valid
}

// Validate checks v and converts it to task fields.
func Validate(v FormValues) ValidationResult {
	errs := make(map[FormField]string)

	title := strings.TrimSpace(v.Title)
	if title == "" {
		errs[FieldTitle] = "Please enter a task name"
	}

	owner := strings.TrimSpace(v.Owner)
	if owner == "" {
		errs[FieldOwner] = "Please select an owner"
	}

	var start time.Time
	if raw := strings.TrimSpace(v.CreatedAt); raw == "" {
		errs[FieldCreatedAt] = "Please select a start time"
	} else if t, err := ParseStart(raw); err != nil {
		errs[FieldCreatedAt] = "Start time must look like 2006-01-02 15:04"
	} else {
		start = t
	}

	desc := strings.TrimSpace(v.SubDescription)
	if desc != "" && utf8.RuneCountInString(desc) < MinSubDescription {
		errs[FieldSubDescription] = fmt.Sprintf("Please enter at least %d characters", MinSubDescription)
	}

	if len(errs) > 0 {
		return ValidationResult{Kind: Invalid, Errors: errs}
	}
	return ValidationResult{
		Kind: Valid,
		Fields: api.TaskFields{
			Title:          title,
			Owner:          owner,
			CreatedAt:      start,
			SubDescription: desc,
		},
	}
}

// ParseStart parses a start time in local time using StartLayouts.
func ParseStart(s string) (time.Time, error) {
	for _, layout := range StartLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised start time %q", s)
}
