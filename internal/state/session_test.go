package state

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/board"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

type fakeStore struct {
	mu        sync.Mutex
	snapshot  models.Snapshot
	profile   models.Profile
	updateErr error
	updates   []models.Task
	created   []models.Task
}

func (f *fakeStore) Snapshot(ctx context.Context) (models.Snapshot, error) {
	return f.snapshot, nil
}

func (f *fakeStore) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, task)
	return task, nil
}

func (f *fakeStore) UpdateTask(ctx context.Context, task models.Task) (models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, task)
	if f.updateErr != nil {
		return models.Task{}, f.updateErr
	}
	return task, nil
}

func (f *fakeStore) GetProfile(ctx context.Context) (models.Profile, error) {
	return f.profile, nil
}

func (f *fakeStore) SetLongPendingDays(ctx context.Context, days int) (models.Profile, error) {
	f.profile.LongPendingDays = days
	return f.profile, nil
}

type fakeAssistant struct {
	ids      []string
	err      error
	subtasks []string
	title    string
	calls    int
	records  []board.SearchRecord
	today    models.Date
}

func (f *fakeAssistant) FindTasks(ctx context.Context, query string, tasks []board.SearchRecord, today models.Date) ([]string, error) {
	f.calls++
	f.records = tasks
	f.today = today
	return f.ids, f.err
}

func (f *fakeAssistant) GenerateSubtasks(ctx context.Context, title, description string) ([]string, error) {
	f.calls++
	return f.subtasks, f.err
}

func (f *fakeAssistant) GenerateTitle(ctx context.Context, description string) (string, error) {
	f.calls++
	return f.title, f.err
}

func (f *fakeAssistant) FormatSQL(ctx context.Context, query string) (string, error) {
	f.calls++
	return "SELECT\n  1", f.err
}

var today = models.NewDate(2024, 5, 10)

func newTestSession(t *testing.T, store *fakeStore, assistant *fakeAssistant) *Session {
	t.Helper()
	n := 0
	opts := Options{
		LongPendingDays: models.DefaultLongPendingDays,
		Today:           func() models.Date { return today },
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	}
	if assistant != nil {
		opts.Searcher = assistant
		opts.Suggester = assistant
		opts.Formatter = assistant
	}
	sess := NewSession(store, opts)
	if err := sess.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return sess
}

func TestLoadAppliesProfile(t *testing.T) {
	store := &fakeStore{snapshot: sampleSnapshot(), profile: models.Profile{LongPendingDays: 3}}
	sess := newTestSession(t, store, nil)

	s := sess.State()
	if len(s.Snapshot.Tasks) != 3 || s.LongPendingDays != 3 || s.View.FilterID != "c1" {
		t.Errorf("state after load = %d tasks, %d days, filter %q", len(s.Snapshot.Tasks), s.LongPendingDays, s.View.FilterID)
	}
}

func TestCreateTask(t *testing.T) {
	store := &fakeStore{snapshot: sampleSnapshot()}
	sess := newTestSession(t, store, nil)

	created, err := sess.CreateTask(context.Background(), NewTask{
		Title:     "  Prepare VAT return ",
		ProjectID: "p2",
		Subtasks:  []string{"Gather invoices", " ", "Submit"},
		TotalFee:  1200,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if created.ID != "id-1" || created.Title != "Prepare VAT return" {
		t.Errorf("created = %s %q", created.ID, created.Title)
	}
	if created.Status != models.StatusToDo || created.Priority != models.PriorityMedium {
		t.Errorf("status/priority = %s/%s", created.Status, created.Priority)
	}
	if created.ClientID != "c2" {
		t.Errorf("ClientID = %q, want client of project p2", created.ClientID)
	}
	if len(created.Subtasks) != 2 || created.Subtasks[1].Text != "Submit" || created.Subtasks[1].Completed {
		t.Errorf("subtasks = %+v", created.Subtasks)
	}
	if created.Financials == nil || created.Financials.TotalFee != 1200 {
		t.Errorf("financials = %+v", created.Financials)
	}
	if first := sess.State().Snapshot.Tasks[0]; first.ID != created.ID {
		t.Errorf("new task not prepended, first is %s", first.ID)
	}
}

func TestCreateTaskValidation(t *testing.T) {
	store := &fakeStore{snapshot: sampleSnapshot()}
	sess := newTestSession(t, store, nil)
	ctx := context.Background()

	cases := []struct {
		name string
		in   NewTask
	}{
		{"blank title", NewTask{Title: "  "}},
		{"bad priority", NewTask{Title: "x", Priority: "Critical"}},
		{"unknown project", NewTask{Title: "x", ProjectID: "p9"}},
		{"project of other client", NewTask{Title: "x", ClientID: "c1", ProjectID: "p2"}},
		{"cross project dependency", NewTask{Title: "x", ClientID: "c2", ProjectID: "p2", DependsOn: "t1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := sess.CreateTask(ctx, tc.in); err == nil {
				t.Error("expected error")
			}
		})
	}
	if len(store.created) != 0 {
		t.Errorf("store received %d invalid tasks", len(store.created))
	}

	_, err := sess.CreateTask(ctx, NewTask{Title: "x", ProjectID: "p2", DependsOn: "t1"})
	var crossErr board.CrossProjectDependencyError
	if !errors.As(err, &crossErr) {
		t.Errorf("err = %v, want CrossProjectDependencyError", err)
	}
}

func TestUpdateTaskCommits(t *testing.T) {
	store := &fakeStore{snapshot: sampleSnapshot()}
	sess := newTestSession(t, store, nil)

	task, _ := sess.State().FindTask("t1")
	task.Status = models.StatusInReview

	res := sess.UpdateTask(context.Background(), task)
	if res.Outcome != Committed || res.Err != nil {
		t.Fatalf("result = %+v", res)
	}
	got, _ := sess.State().FindTask("t1")
	if got.Status != models.StatusInReview {
		t.Errorf("status = %s", got.Status)
	}
	if sess.State().Pending("t1") {
		t.Error("still pending")
	}
}

func TestUpdateTaskRollsBackOnStoreFailure(t *testing.T) {
	store := &fakeStore{snapshot: sampleSnapshot(), updateErr: errors.New("disk full")}
	sess := newTestSession(t, store, nil)

	task, _ := sess.State().FindTask("t1")
	task.Title = "Renamed"

	res := sess.UpdateTask(context.Background(), task)
	if res.Outcome != RolledBack {
		t.Fatalf("outcome = %s, want rolled back", res.Outcome)
	}
	if res.Reason == "" || res.Task.Title != "Collect statements" {
		t.Errorf("result = %+v", res)
	}
	got, _ := sess.State().FindTask("t1")
	if got.Title != "Collect statements" {
		t.Errorf("title after rollback = %q", got.Title)
	}
	if len(store.updates) != 1 {
		t.Errorf("store updates = %d", len(store.updates))
	}
}

func TestUpdateTaskRejectsCycle(t *testing.T) {
	store := &fakeStore{snapshot: sampleSnapshot()}
	sess := newTestSession(t, store, nil)

	task, _ := sess.State().FindTask("t1")
	task.DependsOn = "t2"

	res := sess.UpdateTask(context.Background(), task)
	var cycle board.DependencyCycleError
	if res.Outcome != RolledBack || !errors.As(res.Err, &cycle) {
		t.Errorf("result = %+v, want cycle rejection", res)
	}
	if len(store.updates) != 0 {
		t.Error("invalid update reached the store")
	}
}

func TestEditKeepsStoredDependency(t *testing.T) {
	tests := []struct {
		name      string
		dependsOn string
	}{
		{"dangling prerequisite", "ghost"},
		{"prerequisite in another project", "t3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := sampleSnapshot()
			snap.Tasks[0].DependsOn = tt.dependsOn
			snap.Tasks[0].Subtasks = []models.Subtask{{ID: "s1", Text: "Bank letters"}}
			store := &fakeStore{snapshot: snap}
			sess := newTestSession(t, store, nil)
			ctx := context.Background()

			task, _ := sess.State().FindTask("t1")
			if dep := Dependency(sess.State(), task); dep.Blocked() {
				t.Fatalf("Dependency() = %+v, want not blocked", dep)
			}
			if res := sess.MoveTask(ctx, "t1", models.StatusInReview); res.Outcome != Committed {
				t.Errorf("MoveTask() = %+v, want committed", res)
			}
			if res := sess.ToggleSubtask(ctx, "t1", "s1"); res.Outcome != Committed {
				t.Errorf("ToggleSubtask() = %+v, want committed", res)
			}
			if res := sess.AddComment(ctx, "t1", models.Assignee{Name: "Priya"}, "chased"); res.Outcome != Committed {
				t.Errorf("AddComment() = %+v, want committed", res)
			}
			if len(store.updates) != 3 {
				t.Errorf("store updates = %d, want 3", len(store.updates))
			}
		})
	}
}

func TestUpdateTaskValidatesChangedDependency(t *testing.T) {
	store := &fakeStore{snapshot: sampleSnapshot()}
	sess := newTestSession(t, store, nil)

	task, _ := sess.State().FindTask("t1")
	task.DependsOn = "ghost"
	res := sess.UpdateTask(context.Background(), task)
	var missing board.PrerequisiteNotFoundError
	if res.Outcome != RolledBack || !errors.As(res.Err, &missing) {
		t.Errorf("UpdateTask() = %+v, want PrerequisiteNotFoundError", res)
	}

	task, _ = sess.State().FindTask("t2")
	task.ProjectID = "p2"
	task.ClientID = "c2"
	res = sess.UpdateTask(context.Background(), task)
	var cross board.CrossProjectDependencyError
	if res.Outcome != RolledBack || !errors.As(res.Err, &cross) {
		t.Errorf("UpdateTask() = %+v, want CrossProjectDependencyError", res)
	}
	if len(store.updates) != 0 {
		t.Error("invalid update reached the store")
	}
}

func TestEditBlockedTask(t *testing.T) {
	store := &fakeStore{snapshot: sampleSnapshot()}
	sess := newTestSession(t, store, nil)
	ctx := context.Background()

	res := sess.MoveTask(ctx, "t2", models.StatusDone)
	if !IsBlocked(res.Err) {
		t.Fatalf("err = %v, want BlockedError", res.Err)
	}

	// Subtasks stay toggleable while blocked
	store.snapshot.Tasks[1].Subtasks = []models.Subtask{{ID: "s1", Text: "Match"}}
	if err := sess.Load(ctx); err != nil {
		t.Fatal(err)
	}
	if res := sess.ToggleSubtask(ctx, "t2", "s1"); res.Outcome != Committed {
		t.Errorf("toggle = %+v", res)
	}

	// Finishing the prerequisite unblocks
	if res := sess.MoveTask(ctx, "t1", models.StatusDone); res.Outcome != Committed {
		t.Fatalf("move t1 = %+v", res)
	}
	if res := sess.MoveTask(ctx, "t2", models.StatusDone); res.Outcome != Committed {
		t.Errorf("move t2 = %+v", res)
	}
}

func TestAddComment(t *testing.T) {
	store := &fakeStore{snapshot: sampleSnapshot()}
	sess := newTestSession(t, store, nil)
	ctx := context.Background()

	if res := sess.AddComment(ctx, "t1", models.Assignee{Name: "Dana"}, "  "); res.Err == nil {
		t.Error("blank comment accepted")
	}
	res := sess.AddComment(ctx, "t1", models.Assignee{Name: "Dana"}, "Sent reminder")
	if res.Outcome != Committed {
		t.Fatalf("result = %+v", res)
	}
	got, _ := sess.State().FindTask("t1")
	if len(got.Comments) != 1 || got.Comments[0].User.Name != "Dana" || got.Comments[0].Text != "Sent reminder" {
		t.Errorf("comments = %+v", got.Comments)
	}
}

func TestSuggestAndApply(t *testing.T) {
	snap := sampleSnapshot()
	snap.Tasks[0].Description = "Collect all bank statements for FY24"
	snap.Tasks[0].Subtasks = []models.Subtask{{ID: "s1", Text: "Email client"}}
	store := &fakeStore{snapshot: snap}
	assistant := &fakeAssistant{subtasks: []string{"Email client", "Download statements", "File copies"}, title: "Collect FY24 bank statements"}
	sess := newTestSession(t, store, assistant)
	ctx := context.Background()

	sg, err := sess.Suggest(ctx, "t1")
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if sg.Title != "Collect FY24 bank statements" || len(sg.Subtasks) != 3 {
		t.Errorf("suggestion = %+v", sg)
	}

	res := sess.ApplySuggestion(ctx, sg)
	if res.Outcome != Committed {
		t.Fatalf("apply = %+v", res)
	}
	got, _ := sess.State().FindTask("t1")
	var texts []string
	for _, st := range got.Subtasks {
		texts = append(texts, st.Text)
	}
	if !slices.Equal(texts, []string{"Email client", "Download statements", "File copies"}) {
		t.Errorf("subtasks = %v", texts)
	}
	if got.Title != "Collect FY24 bank statements" {
		t.Errorf("title = %q", got.Title)
	}
}

func TestSuggestWithoutDescriptionSkipsTitle(t *testing.T) {
	store := &fakeStore{snapshot: sampleSnapshot()}
	assistant := &fakeAssistant{subtasks: []string{"a"}, title: "unused"}
	sess := newTestSession(t, store, assistant)

	sg, err := sess.Suggest(context.Background(), "t1")
	if err != nil {
		t.Fatal(err)
	}
	if sg.Title != "" || assistant.calls != 1 {
		t.Errorf("title = %q after %d calls", sg.Title, assistant.calls)
	}
}

func TestSearch(t *testing.T) {
	store := &fakeStore{snapshot: sampleSnapshot()}
	assistant := &fakeAssistant{ids: []string{"t3", "missing"}}
	sess := newTestSession(t, store, assistant)
	ctx := context.Background()

	s := sess.Search(ctx, "   ")
	if assistant.calls != 0 || s.Search.Query != "" {
		t.Errorf("empty query called the assistant %d times", assistant.calls)
	}

	s = sess.Search(ctx, "everything filed")
	got := SearchResults(s)
	if len(got) != 1 || got[0].ID != "t3" || got[0].ClientName != "Globex" {
		t.Errorf("results = %+v", got)
	}
	if len(assistant.records) != 3 || assistant.today != today {
		t.Errorf("assistant saw %d records for %s", len(assistant.records), assistant.today)
	}

	assistant.err = errors.New("quota exceeded")
	s = sess.Search(ctx, "again")
	if s.Search.Error != "quota exceeded" || s.Search.Running {
		t.Errorf("search state = %+v", s.Search)
	}
}

func TestAssistantDisabled(t *testing.T) {
	sess := newTestSession(t, &fakeStore{snapshot: sampleSnapshot()}, nil)
	ctx := context.Background()

	if _, err := sess.Suggest(ctx, "t1"); !errors.Is(err, ErrAssistantDisabled) {
		t.Errorf("Suggest err = %v", err)
	}
	if _, err := sess.FormatSQL(ctx, "select 1"); !errors.Is(err, ErrAssistantDisabled) {
		t.Errorf("FormatSQL err = %v", err)
	}
	if s := sess.Search(ctx, "q"); s.Search.Error == "" {
		t.Error("search without assistant should fail")
	}
}

func TestSetLongPendingDays(t *testing.T) {
	store := &fakeStore{snapshot: sampleSnapshot(), profile: models.Profile{LongPendingDays: 7}}
	sess := newTestSession(t, store, nil)
	ctx := context.Background()

	if err := sess.SetLongPendingDays(ctx, -1); err == nil {
		t.Error("negative threshold accepted")
	}
	if err := sess.SetLongPendingDays(ctx, 21); err != nil {
		t.Fatal(err)
	}
	if sess.State().LongPendingDays != 21 || store.profile.LongPendingDays != 21 {
		t.Errorf("threshold = %d / %d", sess.State().LongPendingDays, store.profile.LongPendingDays)
	}
}

func TestUserMessage(t *testing.T) {
	sess := NewSession(&fakeStore{}, Options{
		UserMessage: func(error) string { return "assistant unavailable" },
	})

	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrAssistantDisabled, ErrAssistantDisabled.Error()},
		{ValidationError{Field: "title", Reason: "is required"}, "title is required"},
		{fmt.Errorf("wrapped: %w", TaskNotFoundError{ID: "x"}), "wrapped: task not found: x"},
		{errors.New("HTTP 500"), "assistant unavailable"},
	}
	for _, tt := range tests {
		if got := sess.UserMessage(tt.err); got != tt.want {
			t.Errorf("UserMessage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
