package db

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), "silent")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestTaskRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	client, err := s.CreateClient(ctx, "Acme Ltd")
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	project, err := s.CreateProject(ctx, "Year End", client.ID)
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	created, err := s.CreateTask(ctx, models.Task{
		Title:          "Draft statutory accounts",
		Priority:       models.PriorityHigh,
		Status:         models.StatusToDo,
		StartDate:      models.MustParseDate("2025-10-01"),
		DueDate:        models.MustParseDate("2025-10-31"),
		ClientID:       client.ID,
		ProjectID:      project.ID,
		EngagementType: models.EngagementAudit,
		Assignee:       models.Assignee{Name: "Priya", AvatarURL: "https://example.com/p.png"},
		Subtasks:       []models.Subtask{{ID: "s1", Text: "Trial balance"}},
		Financials:     &models.Financials{TotalFee: 1500, AmountReceived: 500},
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if created.ID == "" {
		t.Fatal("CreateTask did not assign an id")
	}

	got, err := s.GetTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.DueDate.String() != "2025-10-31" || got.StartDate.String() != "2025-10-01" {
		t.Errorf("dates = %s..%s", got.StartDate, got.DueDate)
	}
	if got.Assignee.Name != "Priya" || len(got.Subtasks) != 1 || got.Subtasks[0].Text != "Trial balance" {
		t.Errorf("nested fields not stored: %+v", got)
	}
	if got.Financials == nil || got.Financials.BalanceDue() != 1000 {
		t.Errorf("Financials = %+v, want balance 1000", got.Financials)
	}

	got.Status = models.StatusInProgress
	got.Subtasks[0].Completed = true
	got.Financials = nil
	updated, err := s.UpdateTask(ctx, got)
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated.Status != models.StatusInProgress || !updated.Subtasks[0].Completed {
		t.Errorf("UpdateTask did not persist changes: %+v", updated)
	}
	if updated.Financials != nil {
		t.Errorf("Financials = %+v, want nil after clearing", updated.Financials)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("CreatedAt changed from %v to %v", created.CreatedAt, updated.CreatedAt)
	}
}

func TestTaskNotFound(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	var notFound TaskNotFoundError
	if _, err := s.GetTask(ctx, "nope"); !errors.As(err, &notFound) {
		t.Errorf("GetTask(nope) error = %v, want TaskNotFoundError", err)
	}
	if _, err := s.UpdateTask(ctx, models.Task{ID: "nope", Title: "x"}); !errors.As(err, &notFound) {
		t.Errorf("UpdateTask(nope) error = %v, want TaskNotFoundError", err)
	}
	if _, err := s.CreateTask(ctx, models.Task{Title: "  "}); err == nil {
		t.Error("CreateTask with blank title should fail")
	}
}

func TestCreateProjectRequiresClient(t *testing.T) {
	s := openTestStore(t)

	var notFound ClientNotFoundError
	if _, err := s.CreateProject(context.Background(), "Orphan", "missing"); !errors.As(err, &notFound) {
		t.Errorf("CreateProject error = %v, want ClientNotFoundError", err)
	}
}

func TestSnapshot(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	client, _ := s.CreateClient(ctx, "Zeta plc")
	if _, err := s.CreateClient(ctx, "Alpha LLP"); err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	project, _ := s.CreateProject(ctx, "Payroll", client.ID)
	if _, err := s.SaveAssignee(ctx, models.Assignee{Name: "Sam"}); err != nil {
		t.Fatalf("SaveAssignee: %v", err)
	}
	if _, err := s.SaveAssignee(ctx, models.Assignee{Name: "Sam", AvatarURL: "https://example.com/s.png"}); err != nil {
		t.Fatalf("SaveAssignee update: %v", err)
	}
	if _, err := s.CreateTask(ctx, models.Task{Title: "Run payroll", ClientID: client.ID, ProjectID: project.ID, Status: models.StatusToDo}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	snap, err := s.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(snap.Tasks) != 1 || len(snap.Clients) != 2 || len(snap.Projects) != 1 || len(snap.Assignees) != 1 {
		t.Fatalf("Snapshot sizes = %d tasks, %d clients, %d projects, %d assignees",
			len(snap.Tasks), len(snap.Clients), len(snap.Projects), len(snap.Assignees))
	}
	if snap.Clients[0].Name != "Alpha LLP" {
		t.Errorf("clients not ordered by name: %+v", snap.Clients)
	}
	if snap.Assignees[0].AvatarURL != "https://example.com/s.png" {
		t.Errorf("assignee avatar not updated: %+v", snap.Assignees[0])
	}
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	p, err := s.GetProfile(ctx)
	if err != nil || p.LongPendingDays != models.DefaultLongPendingDays {
		t.Fatalf("GetProfile() = %+v, %v; want default threshold", p, err)
	}

	if _, err := s.SetLongPendingDays(ctx, 14); err != nil {
		t.Fatalf("SetLongPendingDays: %v", err)
	}
	if _, err := s.SetLongPendingDays(ctx, 0); err != nil {
		t.Fatalf("SetLongPendingDays(0): %v", err)
	}
	p, _ = s.GetProfile(ctx)
	if p.LongPendingDays != 0 {
		t.Errorf("LongPendingDays = %d, want 0", p.LongPendingDays)
	}
	if _, err := s.SetLongPendingDays(ctx, -1); err == nil {
		t.Error("SetLongPendingDays(-1) should fail")
	}
}

func TestSQLTools(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	if _, err := s.CreateClient(ctx, "Acme Ltd"); err != nil {
		t.Fatalf("CreateClient: %v", err)
	}

	schema, err := s.Schema(ctx)
	if err != nil {
		t.Fatalf("Schema: %v", err)
	}
	if !strings.Contains(schema, "CREATE TABLE `tasks`") {
		t.Errorf("Schema() missing tasks table:\n%s", schema)
	}

	res, err := s.RunQuery(ctx, "SELECT name FROM clients;")
	if err != nil {
		t.Fatalf("RunQuery: %v", err)
	}
	if len(res.Columns) != 1 || res.Columns[0] != "name" || len(res.Rows) != 1 || res.Rows[0][0] != "Acme Ltd" {
		t.Errorf("RunQuery() = %+v", res)
	}

	res, err = s.RunQuery(ctx, "SELECT count(*) FROM clients WHERE name <> 'a;b'")
	if err != nil {
		t.Fatalf("RunQuery with quoted ';': %v", err)
	}
	if len(res.Rows) != 1 || res.Rows[0][0] != "1" {
		t.Errorf("RunQuery() = %+v", res)
	}

	var readOnly ReadOnlyQueryError
	for _, q := range []string{
		"DELETE FROM clients",
		"SELECT 1; DROP TABLE tasks",
		"WITH x AS (SELECT 1) DELETE FROM clients",
		"WITH x AS (SELECT 1) UPDATE clients SET name = 'Gone'",
		"WITH x AS (SELECT 'c9' AS id, 'Gone' AS name) INSERT INTO clients (id, name) SELECT id, name FROM x",
	} {
		if _, err := s.RunQuery(ctx, q); !errors.As(err, &readOnly) {
			t.Errorf("RunQuery(%q) error = %v, want ReadOnlyQueryError", q, err)
		}
	}

	clients, err := s.ListClients(ctx)
	if err != nil {
		t.Fatalf("ListClients: %v", err)
	}
	if len(clients) != 1 || clients[0].Name != "Acme Ltd" {
		t.Errorf("clients after rejected writes = %+v", clients)
	}
	if _, err := s.CreateClient(ctx, "Globex"); err != nil {
		t.Errorf("CreateClient after RunQuery: %v", err)
	}
}
