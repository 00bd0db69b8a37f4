package store

import (
	"context"

	"github.com/hy4ri/basiclist-tui/internal/api"
)

// Remote is a Backend served by the task list HTTP API.
type Remote struct {
	client *api.Client
}

// NewRemote wraps client as a Backend.
func NewRemote(client *api.Client) *Remote {
	return &Remote{client: client}
}

// List implements Backend.
func (r *Remote) List(ctx context.Context, count int) ([]api.Task, error) {
	return r.client.GetTasks(ctx, count)
}

// Create implements Backend.
func (r *Remote) Create(ctx context.Context, fields api.TaskFields) (api.Task, error) {
	task, err := r.client.CreateTask(ctx, fields)
	if err != nil {
		return api.Task{}, err
	}
	return *task, nil
}

// Update implements Backend. A 404 from the service becomes ErrNotFound.
func (r *Remote) Update(ctx context.Context, id string, fields api.TaskFields) (api.Task, error) {
	task, err := r.client.UpdateTask(ctx, id, fields)
	if err != nil {
		return api.Task{}, notFound(err)
	}
	return *task, nil
}

// Delete implements Backend.
func (r *Remote) Delete(ctx context.Context, id string) error {
	return notFound(r.client.DeleteTask(ctx, id))
}

func notFound(err error) error {
	if apiErr, ok := api.IsAPIError(err); ok && apiErr.IsNotFound() {
		return &notFoundError{err: err}
	}
	return err
}

// notFoundError keeps the API error text while matching ErrNotFound.
type notFoundError struct {
	err error
}

func (e *notFoundError) Error() string { return e.err.Error() }

func (e *notFoundError) Unwrap() []error { return []error{ErrNotFound, e.err} }
