package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/board"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/db"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/state"
)

type mockSearcher struct {
	ids     []string
	err     error
	records []board.SearchRecord
}

func (m *mockSearcher) FindTasks(ctx context.Context, query string, tasks []board.SearchRecord, today models.Date) ([]string, error) {
	m.records = tasks
	return m.ids, m.err
}

type testServer struct {
	server   *Server
	session  *state.Session
	store    *db.Store
	searcher *mockSearcher
	client   models.Client
	project  models.Project
}

// newTestServer seeds one client and project with a prerequisite task and a
// task waiting on it
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	store, err := db.Open(filepath.Join(t.TempDir(), "web.db"), "silent")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	client, err := store.CreateClient(ctx, "Acme")
	if err != nil {
		t.Fatal(err)
	}
	project, err := store.CreateProject(ctx, "Acme Audit", client.ID)
	if err != nil {
		t.Fatal(err)
	}
	seed := []models.Task{
		{ID: "t-prep", Title: "Collect statements", Status: models.StatusToDo, Priority: models.PriorityHigh,
			ClientID: client.ID, ProjectID: project.ID, DueDate: models.NewDate(2024, 5, 5),
			Subtasks: []models.Subtask{{ID: "s1", Text: "Bank statements"}}},
		{ID: "t-wait", Title: "Reconcile accounts", Status: models.StatusInProgress, Priority: models.PriorityLow,
			ClientID: client.ID, ProjectID: project.ID, DependsOn: "t-prep"},
	}
	for _, task := range seed {
		if _, err := store.CreateTask(ctx, task); err != nil {
			t.Fatal(err)
		}
	}

	searcher := &mockSearcher{}
	session := state.NewSession(store, state.Options{
		LongPendingDays: 7,
		Searcher:        searcher,
		Today:           func() models.Date { return models.NewDate(2024, 5, 10) },
	})
	if err := session.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}

	return &testServer{
		server:   NewServer(session, store),
		session:  session,
		store:    store,
		searcher: searcher,
		client:   client,
		project:  project,
	}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.server.ServeHTTP(w, req)

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("%s %s: invalid JSON %q", method, path, w.Body.String())
	}
	return w, resp
}

func TestBoard(t *testing.T) {
	ts := newTestServer(t)

	w, resp := ts.do(t, http.MethodGet, "/api/board", nil)
	if w.Code != http.StatusOK || resp["success"] != true {
		t.Fatalf("status = %d, body = %v", w.Code, resp)
	}
	if resp["count"] != float64(2) {
		t.Errorf("count = %v, want 2", resp["count"])
	}
	columns := resp["data"].(map[string]any)["columns"].([]any)
	if len(columns) != len(models.Statuses()) {
		t.Errorf("columns = %d", len(columns))
	}
}

func TestBoardQueryLeavesSessionView(t *testing.T) {
	ts := newTestServer(t)

	w, resp := ts.do(t, http.MethodGet, "/api/board?mode=project&sort=priority", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %v", w.Code, resp)
	}
	view := resp["data"].(map[string]any)["view"].(map[string]any)
	if view["view_mode"] != "project" || view["filter_id"] != ts.project.ID {
		t.Errorf("view = %v", view)
	}
	if got := ts.session.State().View; got.Mode != board.ViewByClient || got.SortBy != board.SortDefault {
		t.Errorf("session view changed to %+v", got)
	}

	w, _ = ts.do(t, http.MethodGet, "/api/board?sort=size", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad sort status = %d", w.Code)
	}
}

func TestDashboardStat(t *testing.T) {
	ts := newTestServer(t)

	w, resp := ts.do(t, http.MethodGet, "/api/dashboard?stat=high-priority", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %v", w.Code, resp)
	}
	if resp["stat"] != string(board.StatHighPriority) {
		t.Errorf("stat = %v", resp["stat"])
	}
	if tasks := resp["tasks"].([]any); len(tasks) != 1 {
		t.Errorf("high priority tasks = %d, want 1", len(tasks))
	}
}

func TestCreateTask(t *testing.T) {
	ts := newTestServer(t)

	w, resp := ts.do(t, http.MethodPost, "/api/tasks", map[string]any{
		"title":      "VAT return",
		"project_id": ts.project.ID,
		"priority":   "High",
		"due_date":   "2024-06-01",
		"subtasks":   []string{"Collect invoices", "Submit"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %v", w.Code, resp)
	}

	stored, err := ts.store.GetTask(context.Background(), resp["id"].(string))
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if stored.ClientID != ts.client.ID || stored.Status != models.StatusToDo || len(stored.Subtasks) != 2 {
		t.Errorf("stored = %+v", stored)
	}
	if first := ts.session.State().Snapshot.Tasks[0]; first.ID != stored.ID {
		t.Errorf("new task not first, got %s", first.ID)
	}
}

func TestCreateTaskValidation(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body map[string]any
		want int
	}{
		{"blank title", map[string]any{"title": " "}, http.StatusBadRequest},
		{"bad date", map[string]any{"title": "x", "due_date": "soon"}, http.StatusBadRequest},
		{"unknown prerequisite", map[string]any{"title": "x", "depends_on": "missing"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := ts.do(t, http.MethodPost, "/api/tasks", tt.body)
			if w.Code != tt.want || resp["success"] != false {
				t.Errorf("status = %d, body = %v", w.Code, resp)
			}
		})
	}
}

func TestMoveTask(t *testing.T) {
	ts := newTestServer(t)

	w, resp := ts.do(t, http.MethodPost, "/api/tasks/t-prep/move", map[string]any{"status": "In Review"})
	if w.Code != http.StatusOK || resp["outcome"] != string(state.Committed) {
		t.Fatalf("status = %d, body = %v", w.Code, resp)
	}
	stored, _ := ts.store.GetTask(context.Background(), "t-prep")
	if stored.Status != models.StatusInReview {
		t.Errorf("stored status = %s", stored.Status)
	}
}

func TestMoveBlockedTask(t *testing.T) {
	ts := newTestServer(t)

	w, resp := ts.do(t, http.MethodPost, "/api/tasks/t-wait/move", map[string]any{"status": "Done"})
	if w.Code != http.StatusConflict || resp["outcome"] != string(state.RolledBack) {
		t.Fatalf("status = %d, body = %v", w.Code, resp)
	}
	task, _ := ts.session.State().FindTask("t-wait")
	if task.Status != models.StatusInProgress {
		t.Errorf("blocked task moved to %s", task.Status)
	}
}

func TestUpdateTask(t *testing.T) {
	ts := newTestServer(t)

	w, resp := ts.do(t, http.MethodPut, "/api/tasks/t-prep", map[string]any{
		"title":    "Collect bank statements",
		"due_date": "",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %v", w.Code, resp)
	}
	task, _ := ts.session.State().FindTask("t-prep")
	if task.Title != "Collect bank statements" || !task.DueDate.IsZero() || task.Priority != models.PriorityHigh {
		t.Errorf("task = %+v", task)
	}

	w, _ = ts.do(t, http.MethodPut, "/api/tasks/t-prep", map[string]any{"depends_on": "t-wait"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("cycle status = %d, want 400", w.Code)
	}

	w, _ = ts.do(t, http.MethodPut, "/api/tasks/nope", map[string]any{"title": "x"})
	if w.Code != http.StatusNotFound {
		t.Errorf("missing task status = %d, want 404", w.Code)
	}
}

func TestToggleSubtaskOnPrerequisite(t *testing.T) {
	ts := newTestServer(t)

	w, resp := ts.do(t, http.MethodPost, "/api/tasks/t-prep/subtasks/s1/toggle", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %v", w.Code, resp)
	}
	subtasks := resp["data"].(map[string]any)["subtasks"].([]any)
	if subtasks[0].(map[string]any)["completed"] != true {
		t.Errorf("subtask not completed: %v", subtasks[0])
	}

	w, _ = ts.do(t, http.MethodPost, "/api/tasks/t-prep/subtasks/s9/toggle", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown subtask status = %d", w.Code)
	}
}

func TestAddComment(t *testing.T) {
	ts := newTestServer(t)

	w, resp := ts.do(t, http.MethodPost, "/api/tasks/t-prep/comments", map[string]any{
		"user": map[string]any{"name": "Dana"},
		"text": "Client sent March only",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %v", w.Code, resp)
	}
	stored, _ := ts.store.GetTask(context.Background(), "t-prep")
	if len(stored.Comments) != 1 || stored.Comments[0].User.Name != "Dana" {
		t.Errorf("comments = %+v", stored.Comments)
	}

	w, _ = ts.do(t, http.MethodPost, "/api/tasks/t-prep/comments", map[string]any{"text": "  "})
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty comment status = %d", w.Code)
	}
}

func TestSearch(t *testing.T) {
	ts := newTestServer(t)
	ts.searcher.ids = []string{"t-wait", "unknown"}

	w, resp := ts.do(t, http.MethodPost, "/api/search", map[string]any{"query": "what is blocked"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %v", w.Code, resp)
	}
	if resp["count"] != float64(1) {
		t.Errorf("count = %v, want 1", resp["count"])
	}
	if len(ts.searcher.records) != 2 {
		t.Errorf("records sent = %d", len(ts.searcher.records))
	}

	ts.searcher.err = errors.New("quota exceeded")
	w, resp = ts.do(t, http.MethodPost, "/api/search", map[string]any{"query": "again"})
	if w.Code != http.StatusBadGateway || resp["success"] != false {
		t.Errorf("status = %d, body = %v", w.Code, resp)
	}
}

func TestSuggestWithoutAssistant(t *testing.T) {
	ts := newTestServer(t)

	w, _ := ts.do(t, http.MethodPost, "/api/tasks/t-prep/suggestions", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestRunQuery(t *testing.T) {
	ts := newTestServer(t)

	w, resp := ts.do(t, http.MethodPost, "/api/sql/query", map[string]any{"sql": "SELECT title FROM tasks ORDER BY title"})
	if w.Code != http.StatusOK || resp["count"] != float64(2) {
		t.Fatalf("status = %d, body = %v", w.Code, resp)
	}

	w, _ = ts.do(t, http.MethodPost, "/api/sql/query", map[string]any{"sql": "DELETE FROM tasks"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("write query status = %d, want 400", w.Code)
	}

	w, resp = ts.do(t, http.MethodGet, "/api/sql/schema", nil)
	if w.Code != http.StatusOK || resp["schema"] == "" {
		t.Errorf("schema status = %d", w.Code)
	}
}

func TestSettings(t *testing.T) {
	ts := newTestServer(t)

	w, resp := ts.do(t, http.MethodPut, "/api/settings", map[string]any{"long_pending_days": 14})
	if w.Code != http.StatusOK || resp["long_pending_days"] != float64(14) {
		t.Fatalf("status = %d, body = %v", w.Code, resp)
	}
	profile, _ := ts.store.GetProfile(context.Background())
	if profile.LongPendingDays != 14 {
		t.Errorf("stored days = %d", profile.LongPendingDays)
	}

	w, _ = ts.do(t, http.MethodPut, "/api/settings", map[string]any{"long_pending_days": -1})
	if w.Code != http.StatusBadRequest {
		t.Errorf("negative days status = %d", w.Code)
	}
	w, _ = ts.do(t, http.MethodPut, "/api/settings", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing days status = %d", w.Code)
	}
}

func TestCreateClientReloadsSession(t *testing.T) {
	ts := newTestServer(t)

	w, resp := ts.do(t, http.MethodPost, "/api/clients", map[string]any{"name": "Globex"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %v", w.Code, resp)
	}
	if n := len(ts.session.State().Snapshot.Clients); n != 2 {
		t.Errorf("clients in session = %d, want 2", n)
	}

	w, _ = ts.do(t, http.MethodPost, "/api/projects", map[string]any{"name": "Tax", "client_id": "nope"})
	if w.Code != http.StatusNotFound {
		t.Errorf("project for unknown client status = %d, want 404", w.Code)
	}
}
