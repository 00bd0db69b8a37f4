package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// mockServer creates a test HTTP server for mocking API responses.
func mockServer(handler http.HandlerFunc) *httptest.Server {
	return httptest.NewServer(handler)
}

func TestNewClient(t *testing.T) {
	client := NewClient("", "test-token")

	if client.accessToken != "test-token" {
		t.Errorf("expected token %q, got %q", "test-token", client.accessToken)
	}
	if client.baseURL != DefaultBaseURL {
		t.Errorf("unexpected base URL: %s", client.baseURL)
	}

	client = NewClient("http://example.test/api/", "")
	if client.BaseURL() != "http://example.test/api" {
		t.Errorf("expected trailing slash trimmed, got %s", client.BaseURL())
	}
}

func TestGetTasks(t *testing.T) {
	tests := []struct {
		name       string
		count      int
		wantCount  string
		response   ListResponse
		statusCode int
		wantErr    bool
	}{
		{
			name:      "first page",
			count:     5,
			wantCount: "5",
			response: ListResponse{
				Results: []Task{
					{ID: "fake-list-0", Title: "Alipay", Owner: "Serati Ma", Percent: 40, Status: StatusActive},
					{ID: "fake-list-1", Title: "Angular", Owner: "Qu Lili", Percent: 90, Status: StatusException},
				},
				Total: 2,
			},
			statusCode: http.StatusOK,
		},
		{
			name:       "all rows",
			count:      0,
			wantCount:  "",
			response:   ListResponse{},
			statusCode: http.StatusOK,
		},
		{
			name:       "unauthorized",
			count:      5,
			wantCount:  "5",
			statusCode: http.StatusUnauthorized,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := mockServer(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("expected GET request, got %s", r.Method)
				}
				if r.URL.Path != "/tasks" {
					t.Errorf("expected path /tasks, got %s", r.URL.Path)
				}
				if got := r.URL.Query().Get("count"); got != tt.wantCount {
					t.Errorf("expected count %q, got %q", tt.wantCount, got)
				}
				if auth := r.Header.Get("Authorization"); auth != "Bearer test-token" {
					t.Errorf("expected Bearer token, got %q", auth)
				}

				w.WriteHeader(tt.statusCode)
				json.NewEncoder(w).Encode(tt.response)
			})
			defer server.Close()

			client := NewClient(server.URL, "test-token")
			tasks, err := client.GetTasks(context.Background(), tt.count)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				apiErr, ok := IsAPIError(err)
				if !ok {
					t.Fatalf("expected wrapped APIError, got %T", err)
				}
				if !apiErr.IsUnauthorized() {
					t.Errorf("expected 401, got %d", apiErr.StatusCode)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tasks == nil {
				t.Fatal("expected non-nil slice")
			}
			if len(tasks) != len(tt.response.Results) {
				t.Errorf("expected %d tasks, got %d", len(tt.response.Results), len(tasks))
			}
			if len(tasks) > 0 && tasks[0].Title != tt.response.Results[0].Title {
				t.Errorf("expected title %q, got %q", tt.response.Results[0].Title, tasks[0].Title)
			}
		})
	}
}

func TestCreateTask(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	fields := TaskFields{Title: "Write report", Owner: "Qu Lili", CreatedAt: created, SubDescription: "quarterly numbers"}

	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/tasks" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}

		var got TaskFields
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if got.Title != fields.Title || got.Owner != fields.Owner || !got.CreatedAt.Equal(created) {
			t.Errorf("unexpected body: %+v", got)
		}

		task := Task{ID: "new-1", Percent: 0, Status: StatusActive}
		got.Apply(&task)
		json.NewEncoder(w).Encode(task)
	})
	defer server.Close()

	client := NewClient(server.URL, "")
	task, err := client.CreateTask(context.Background(), fields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID != "new-1" || task.Title != "Write report" {
		t.Errorf("unexpected task: %+v", task)
	}
}

func TestUpdateTask(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/tasks/abc" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(Task{ID: "abc", Title: "Renamed"})
	})
	defer server.Close()

	client := NewClient(server.URL, "")
	task, err := client.UpdateTask(context.Background(), "abc", TaskFields{Title: "Renamed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Title != "Renamed" {
		t.Errorf("expected updated title, got %q", task.Title)
	}

	if _, err := client.UpdateTask(context.Background(), "", TaskFields{}); err == nil {
		t.Error("expected error for empty id")
	}
}

func TestDeleteTask(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		statusCode int
		wantErr    bool
	}{
		{name: "deleted", id: "abc", statusCode: http.StatusNoContent},
		{name: "missing", id: "nope", statusCode: http.StatusNotFound, wantErr: true},
		{name: "empty id", id: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := mockServer(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodDelete {
					t.Errorf("expected DELETE, got %s", r.Method)
				}
				w.WriteHeader(tt.statusCode)
			})
			defer server.Close()

			client := NewClient(server.URL, "")
			err := client.DeleteTask(context.Background(), tt.id)
			if tt.wantErr != (err != nil) {
				t.Fatalf("wantErr %v, got %v", tt.wantErr, err)
			}
			if tt.statusCode == http.StatusNotFound {
				apiErr, ok := IsAPIError(err)
				if !ok || !apiErr.IsNotFound() {
					t.Errorf("expected not found APIError, got %v", err)
				}
			}
		})
	}
}

func TestTaskDisplayHelpers(t *testing.T) {
	task := Task{Percent: 140}
	if task.ClampedPercent() != 100 {
		t.Errorf("expected clamp to 100, got %d", task.ClampedPercent())
	}
	task.Percent = -3
	if task.ClampedPercent() != 0 {
		t.Errorf("expected clamp to 0, got %d", task.ClampedPercent())
	}
	if task.StartDisplay() != "-" {
		t.Errorf("expected placeholder for zero time, got %q", task.StartDisplay())
	}

	local := time.Date(2024, 5, 6, 7, 8, 9, 0, time.Local)
	task.CreatedAt = local
	if got := task.StartDisplay(); got != "2024-05-06 07:08" {
		t.Errorf("unexpected start display %q", got)
	}

	if !StatusException.Valid() || ProgressStatus("done").Valid() {
		t.Error("unexpected status validity")
	}
}
