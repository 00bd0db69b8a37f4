package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hy4ri/basiclist-tui/internal/api"
)

var testNow = time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

func TestDemoTasks(t *testing.T) {
	tasks := DemoTasks(5, []string{"付晓晓", "周毛毛"}, testNow)
	require.Len(t, tasks, 5)

	for i, task := range tasks {
		assert.NotEmpty(t, task.ID)
		assert.True(t, task.Status.Valid(), "task %d status", i)
		assert.GreaterOrEqual(t, task.Percent, 50)
		assert.Less(t, task.Percent, 100)
	}
	assert.Equal(t, "付晓晓", tasks[0].Owner)
	assert.Equal(t, "周毛毛", tasks[1].Owner)
	assert.Equal(t, testNow.Add(-2*time.Hour), tasks[1].CreatedAt)
}

// backendFactories lets each conformance test run against every local backend.
func backendFactories(t *testing.T) map[string]func(seed []api.Task) Backend {
	return map[string]func(seed []api.Task) Backend{
		"memory": func(seed []api.Task) Backend {
			return NewMemory(seed)
		},
		"file": func(seed []api.Task) Backend {
			f := NewFile(filepath.Join(t.TempDir(), "tasks.yaml"))
			require.NoError(t, f.SeedIfMissing(seed))
			return f
		},
	}
}

func TestBackendList(t *testing.T) {
	seed := DemoTasks(6, []string{"a"}, testNow)
	for name, factory := range backendFactories(t) {
		t.Run(name, func(t *testing.T) {
			b := factory(seed)
			ctx := context.Background()

			got, err := b.List(ctx, 5)
			require.NoError(t, err)
			assert.Len(t, got, 5)
			assert.Equal(t, seed[0].ID, got[0].ID)

			all, err := b.List(ctx, 0)
			require.NoError(t, err)
			assert.Len(t, all, 6)
		})
	}
}

func TestBackendCreate(t *testing.T) {
	for name, factory := range backendFactories(t) {
		t.Run(name, func(t *testing.T) {
			b := factory(DemoTasks(2, []string{"a"}, testNow))
			ctx := context.Background()

			fields := api.TaskFields{Title: "New", Owner: "周勇", CreatedAt: testNow}
			created, err := b.Create(ctx, fields)
			require.NoError(t, err)
			assert.NotEmpty(t, created.ID)
			assert.Equal(t, 0, created.Percent)
			assert.Equal(t, api.StatusActive, created.Status)

			all, err := b.List(ctx, 0)
			require.NoError(t, err)
			require.Len(t, all, 3)
			assert.Equal(t, created.ID, all[0].ID)
			assert.Equal(t, "New", all[0].Title)
		})
	}
}

func TestBackendUpdate(t *testing.T) {
	for name, factory := range backendFactories(t) {
		t.Run(name, func(t *testing.T) {
			seed := DemoTasks(2, []string{"a"}, testNow)
			b := factory(seed)
			ctx := context.Background()

			fields := api.TaskFields{Title: "Renamed", Owner: "b", CreatedAt: testNow, SubDescription: "changed"}
			updated, err := b.Update(ctx, seed[1].ID, fields)
			require.NoError(t, err)
			assert.Equal(t, "Renamed", updated.Title)
			assert.Equal(t, seed[1].Percent, updated.Percent, "percent is not editable")

			_, err = b.Update(ctx, "missing", fields)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestBackendDelete(t *testing.T) {
	for name, factory := range backendFactories(t) {
		t.Run(name, func(t *testing.T) {
			seed := DemoTasks(3, []string{"a"}, testNow)
			b := factory(seed)
			ctx := context.Background()

			require.NoError(t, b.Delete(ctx, seed[1].ID))
			all, err := b.List(ctx, 0)
			require.NoError(t, err)
			require.Len(t, all, 2)
			assert.Equal(t, seed[0].ID, all[0].ID)
			assert.Equal(t, seed[2].ID, all[1].ID)

			assert.ErrorIs(t, b.Delete(ctx, seed[1].ID), ErrNotFound)
		})
	}
}

func TestFileSeedIfMissingKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tasks.yaml")
	f := NewFile(path)
	require.NoError(t, f.SeedIfMissing(DemoTasks(2, []string{"a"}, testNow)))
	require.NoError(t, f.SeedIfMissing(DemoTasks(4, []string{"a"}, testNow)))

	all, err := f.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, path, f.Path())
}

func TestFileMissingAndInvalid(t *testing.T) {
	dir := t.TempDir()

	empty, err := NewFile(filepath.Join(dir, "none.yaml")).List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("tasks: [unclosed"), 0o600))
	_, err = NewFile(bad).List(context.Background(), 0)
	assert.Error(t, err)
}

func TestRemoteBackend(t *testing.T) {
	var deleted []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/tasks":
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(api.ListResponse{Results: []api.Task{{ID: "r1", Title: "Remote"}}, Total: 1})
		case r.Method == http.MethodDelete && r.URL.Path == "/tasks/r1":
			deleted = append(deleted, "r1")
			w.WriteHeader(http.StatusNoContent)
		case strings.HasPrefix(r.URL.Path, "/tasks/"):
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"not found"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	remote := NewRemote(api.NewClient(server.URL, ""))
	ctx := context.Background()

	tasks, err := remote.List(ctx, 5)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Remote", tasks[0].Title)

	require.NoError(t, remote.Delete(ctx, "r1"))
	assert.Equal(t, []string{"r1"}, deleted)

	err = remote.Delete(ctx, "gone")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "404")

	_, err = remote.Update(ctx, "gone", api.TaskFields{Title: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}
