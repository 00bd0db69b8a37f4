package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/hy4ri/basiclist-tui/internal/api"
)

// taskDocument is the on-disk layout of the task file.
type taskDocument struct {
	Tasks []api.Task `yaml:"tasks"`
}

// File is a Backend that keeps tasks in a YAML file. Every call re-reads the
// file, so edits made by other programs are picked up.
type File struct {
	path string
	mu   sync.Mutex
}

// NewFile creates a file backend for path. The file is created lazily.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the task file location.
func (f *File) Path() string {
	return f.path
}

// SeedIfMissing writes tasks to the file when it does not exist yet.
func (f *File) SeedIfMissing(tasks []api.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := os.Stat(f.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat task file: %w", err)
	}
	return f.write(tasks)
}

// List implements Backend.
func (f *File) List(_ context.Context, count int) ([]api.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	tasks, err := f.read()
	if err != nil {
		return nil, err
	}
	if count > 0 && count < len(tasks) {
		tasks = tasks[:count]
	}
	return tasks, nil
}

// Create implements Backend.
func (f *File) Create(_ context.Context, fields api.TaskFields) (api.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	tasks, err := f.read()
	if err != nil {
		return api.Task{}, err
	}
	task := newTask(uuid.NewString(), fields)
	if err := f.write(append([]api.Task{task}, tasks...)); err != nil {
		return api.Task{}, err
	}
	return task, nil
}

// Update implements Backend.
func (f *File) Update(_ context.Context, id string, fields api.TaskFields) (api.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	tasks, err := f.read()
	if err != nil {
		return api.Task{}, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			fields.Apply(&tasks[i])
			if err := f.write(tasks); err != nil {
				return api.Task{}, err
			}
			return tasks[i], nil
		}
	}
	return api.Task{}, fmt.Errorf("update %s: %w", id, ErrNotFound)
}

// Delete implements Backend.
func (f *File) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	tasks, err := f.read()
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			return f.write(append(tasks[:i], tasks[i+1:]...))
		}
	}
	return fmt.Errorf("delete %s: %w", id, ErrNotFound)
}

func (f *File) read() ([]api.Task, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []api.Task{}, nil
		}
		return nil, fmt.Errorf("read task file: %w", err)
	}

	var doc taskDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse task file %s: %w", f.path, err)
	}
	if doc.Tasks == nil {
		doc.Tasks = []api.Task{}
	}
	return doc.Tasks, nil
}

// write replaces the file atomically so watchers never see a partial file.
func (f *File) write(tasks []api.Task) error {
	data, err := yaml.Marshal(taskDocument{Tasks: tasks})
	if err != nil {
		return fmt.Errorf("serialize tasks: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create task directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tasks-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace task file: %w", err)
	}
	return nil
}
