package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hy4ri/basiclist-tui/internal/api"
)

var (
	demoTitles = []string{
		"Alipay", "Angular", "Ant Design", "Ant Design Pro",
		"Bootstrap", "React", "Vue", "Webpack",
	}
	demoDescriptions = []string{
		"Whatever the future holds, it starts with what you do today.",
		"Hope is a good thing, maybe the best of things.",
		"Everything that happens is part of the plan.",
		"Small steps every day add up to big results.",
		"Ship it, learn from it, make it better.",
	}
	demoStatuses = []api.ProgressStatus{api.StatusActive, api.StatusException, api.StatusNormal}
)

// DemoTasks generates n example tasks owned by the given owners, newest
// first, two hours apart starting at now.
func DemoTasks(n int, owners []string, now time.Time) []api.Task {
	if len(owners) == 0 {
		owners = []string{"user"}
	}
	tasks := make([]api.Task, 0, n)
	for i := 0; i < n; i++ {
		tasks = append(tasks, api.Task{
			ID:             fmt.Sprintf("fake-list-%d", i),
			Title:          demoTitles[i%len(demoTitles)],
			Owner:          owners[i%len(owners)],
			CreatedAt:      now.Add(-time.Duration(i) * 2 * time.Hour),
			Percent:        50 + (i*17)%50,
			Status:         demoStatuses[i%len(demoStatuses)],
			SubDescription: demoDescriptions[i%len(demoDescriptions)],
			Logo:           fmt.Sprintf("https://avatars.example.com/%d.png", i%8),
			Href:           "https://ant.design",
		})
	}
	return tasks
}

// Memory is an in-process Backend. It is safe for concurrent use.
type Memory struct {
	mu    sync.Mutex
	tasks []api.Task
	newID func() string
}

// NewMemory creates a memory backend holding a copy of tasks.
func NewMemory(tasks []api.Task) *Memory {
	return &Memory{
		tasks: append([]api.Task(nil), tasks...),
		newID: uuid.NewString,
	}
}

// List implements Backend.
func (m *Memory) List(_ context.Context, count int) ([]api.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.tasks)
	if count > 0 && count < n {
		n = count
	}
	return append([]api.Task{}, m.tasks[:n]...), nil
}

// Create implements Backend. New tasks go first.
func (m *Memory) Create(_ context.Context, fields api.TaskFields) (api.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	task := newTask(m.newID(), fields)
	m.tasks = append([]api.Task{task}, m.tasks...)
	return task, nil
}

// Update implements Backend.
func (m *Memory) Update(_ context.Context, id string, fields api.TaskFields) (api.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.tasks {
		if m.tasks[i].ID == id {
			fields.Apply(&m.tasks[i])
			return m.tasks[i], nil
		}
	}
	return api.Task{}, fmt.Errorf("update %s: %w", id, ErrNotFound)
}

// Delete implements Backend.
func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete %s: %w", id, ErrNotFound)
}

// newTask is the row every backend creates for a submitted form.
func newTask(id string, fields api.TaskFields) api.Task {
	task := api.Task{
		ID:      id,
		Percent: 0,
		Status:  api.StatusActive,
	}
	fields.Apply(&task)
	return task
}
