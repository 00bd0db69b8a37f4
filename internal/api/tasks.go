package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// GetTasks returns the first count tasks of the list. A count of zero or less
// asks the service for every task.
func (c *Client) GetTasks(ctx context.Context, count int) ([]Task, error) {
	query := url.Values{}
	if count > 0 {
		query.Set("count", strconv.Itoa(count))
	}

	var response ListResponse
	if err := c.GetWithQuery(ctx, "/tasks", query, &response); err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}

	if response.Results == nil {
		return []Task{}, nil
	}
	return response.Results, nil
}

// CreateTask creates a new task from the submitted fields.
func (c *Client) CreateTask(ctx context.Context, fields TaskFields) (*Task, error) {
	var task Task
	if err := c.Post(ctx, "/tasks", fields, &task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

// UpdateTask replaces the editable fields of an existing task.
func (c *Client) UpdateTask(ctx context.Context, id string, fields TaskFields) (*Task, error) {
	if id == "" {
		return nil, fmt.Errorf("task id cannot be empty")
	}
	var task Task
	if err := c.Post(ctx, "/tasks/"+url.PathEscape(id), fields, &task); err != nil {
		return nil, fmt.Errorf("failed to update task %s: %w", id, err)
	}
	return &task, nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("task id cannot be empty")
	}
	if err := c.Delete(ctx, "/tasks/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("failed to delete task %s: %w", id, err)
	}
	return nil
}
