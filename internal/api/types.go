// Package api provides a client for a remote task list service.
package api

import (
	"fmt"
	"time"
)

// ProgressStatus is the state shown by a task's progress bar.
type ProgressStatus string

const (
	StatusNormal    ProgressStatus = "normal"
	StatusActive    ProgressStatus = "active"
	StatusException ProgressStatus = "exception"
)

// Valid reports whether s is one of the known statuses.
func (s ProgressStatus) Valid() bool {
	switch s {
	case StatusNormal, StatusActive, StatusException:
		return true
	}
	return false
}

// Task represents a single row of the task list.
type Task struct {
	ID             string         `json:"id" yaml:"id"`
	Title          string         `json:"title" yaml:"title"`
	Owner          string         `json:"owner" yaml:"owner"`
	CreatedAt      time.Time      `json:"createdAt" yaml:"createdAt"`
	Percent        int            `json:"percent" yaml:"percent"`
	Status         ProgressStatus `json:"status" yaml:"status"`
	SubDescription string         `json:"subDescription,omitempty" yaml:"subDescription,omitempty"`
	Logo           string         `json:"logo,omitempty" yaml:"logo,omitempty"`
	Href           string         `json:"href,omitempty" yaml:"href,omitempty"`
}

// StartDisplay returns the start time the way the list shows it.
func (t Task) StartDisplay() string {
	if t.CreatedAt.IsZero() {
		return "-"
	}
	return t.CreatedAt.Local().Format("2006-01-02 15:04")
}

// ClampedPercent returns Percent limited to 0..100.
func (t Task) ClampedPercent() int {
	switch {
	case t.Percent < 0:
		return 0
	case t.Percent > 100:
		return 100
	}
	return t.Percent
}

// TaskFields holds the user-editable fields of a task, as submitted by the
// add/edit form.
type TaskFields struct {
	Title          string    `json:"title"`
	Owner          string    `json:"owner"`
	CreatedAt      time.Time `json:"createdAt"`
	SubDescription string    `json:"subDescription,omitempty"`
}

// Apply copies the fields onto t.
func (f TaskFields) Apply(t *Task) {
	t.Title = f.Title
	t.Owner = f.Owner
	t.CreatedAt = f.CreatedAt
	t.SubDescription = f.SubDescription
}

// FieldsOf extracts the editable fields from a task.
func FieldsOf(t Task) TaskFields {
	return TaskFields{
		Title:          t.Title,
		Owner:          t.Owner,
		CreatedAt:      t.CreatedAt,
		SubDescription: t.SubDescription,
	}
}

// ListResponse is the body returned by the list endpoint.
type ListResponse struct {
	Results []Task `json:"results"`
	Total   int    `json:"total"`
}

// String implements fmt.Stringer for log output.
func (t Task) String() string {
	return fmt.Sprintf("%s (%s, %d%%)", t.Title, t.Owner, t.Percent)
}
