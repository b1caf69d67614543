package state

import (
	"testing"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/board"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

func sampleSnapshot() models.Snapshot {
	return models.Snapshot{
		Clients: []models.Client{
			{ID: "c1", Name: "Acme"},
			{ID: "c2", Name: "Globex"},
		},
		Projects: []models.Project{
			{ID: "p1", Name: "Acme Audit", ClientID: "c1"},
			{ID: "p2", Name: "Globex Tax", ClientID: "c2"},
		},
		Tasks: []models.Task{
			{ID: "t1", Title: "Collect statements", Status: models.StatusToDo, Priority: models.PriorityHigh, ClientID: "c1", ProjectID: "p1",
				StartDate: models.NewDate(2024, 5, 1), DueDate: models.NewDate(2024, 5, 5)},
			{ID: "t2", Title: "Reconcile", Status: models.StatusInProgress, Priority: models.PriorityLow, ClientID: "c1", ProjectID: "p1", DependsOn: "t1",
				StartDate: models.NewDate(2024, 5, 6), DueDate: models.NewDate(2024, 5, 12)},
			{ID: "t3", Title: "File return", Status: models.StatusDone, Priority: models.PriorityMedium, ClientID: "c2", ProjectID: "p2"},
		},
	}
}

func loaded() State {
	return Reduce(New(board.View{}, 7), SnapshotLoaded{Snapshot: sampleSnapshot()})
}

func TestNewDefaultsInvalidView(t *testing.T) {
	s := New(board.View{Mode: "team", SortBy: "size"}, 7)
	if s.View.Mode != board.ViewByClient || s.View.SortBy != board.SortDefault {
		t.Errorf("View = %+v", s.View)
	}
	if s.MainView != MainBoard {
		t.Errorf("MainView = %q", s.MainView)
	}
}

func TestSnapshotLoadedSelectsFirstClient(t *testing.T) {
	s := loaded()
	if s.View.FilterID != "c1" {
		t.Errorf("FilterID = %q, want c1", s.View.FilterID)
	}

	// A known filter survives a reload
	s = Reduce(s, FilterSelected{ID: "c2"})
	s = Reduce(s, SnapshotLoaded{Snapshot: sampleSnapshot()})
	if s.View.FilterID != "c2" {
		t.Errorf("FilterID after reload = %q, want c2", s.View.FilterID)
	}
}

func TestViewModeChangedResetsFilter(t *testing.T) {
	s := Reduce(loaded(), FilterSelected{ID: "c2"})
	s = Reduce(s, ViewModeChanged{Mode: board.ViewByProject})
	if s.View.Mode != board.ViewByProject || s.View.FilterID != "p1" {
		t.Errorf("View = %+v, want project p1", s.View)
	}

	same := Reduce(s, ViewModeChanged{Mode: "bogus"})
	if same.View != s.View {
		t.Errorf("invalid mode changed view to %+v", same.View)
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	before := loaded()
	edited := before.Snapshot.Tasks[0]
	edited.Title = "Changed"

	after := Reduce(before, TaskTentativelyUpdated{Task: edited})
	if before.Snapshot.Tasks[0].Title != "Collect statements" {
		t.Error("input state was mutated")
	}
	if before.Pending("t1") {
		t.Error("input pending set was mutated")
	}
	if !after.Pending("t1") {
		t.Error("tentative update not recorded as pending")
	}

	created := Reduce(before, TaskCreated{Task: models.Task{ID: "t9"}})
	if len(before.Snapshot.Tasks) != 3 || len(created.Snapshot.Tasks) != 4 {
		t.Errorf("task counts = %d/%d", len(before.Snapshot.Tasks), len(created.Snapshot.Tasks))
	}
	if created.Snapshot.Tasks[0].ID != "t9" {
		t.Errorf("created task not prepended: %s", created.Snapshot.Tasks[0].ID)
	}
}

func TestOptimisticRollbackRestoresConfirmedVersion(t *testing.T) {
	s := loaded()
	first := s.Snapshot.Tasks[0]
	first.Title = "Edit 1"
	second := first
	second.Title = "Edit 2"

	s = Reduce(s, TaskTentativelyUpdated{Task: first})
	s = Reduce(s, TaskTentativelyUpdated{Task: second})
	if got, _ := s.FindTask("t1"); got.Title != "Edit 2" {
		t.Errorf("title = %q, want Edit 2", got.Title)
	}

	s = Reduce(s, TaskRolledBack{ID: "t1"})
	if got, _ := s.FindTask("t1"); got.Title != "Collect statements" {
		t.Errorf("title after rollback = %q", got.Title)
	}
	if s.Pending("t1") {
		t.Error("task still pending after rollback")
	}
}

func TestTaskCommittedUsesStoredVersion(t *testing.T) {
	s := loaded()
	edit := s.Snapshot.Tasks[1]
	edit.Title = "  Reconcile  "
	s = Reduce(s, TaskTentativelyUpdated{Task: edit})

	stored := edit
	stored.Title = "Reconcile bank"
	s = Reduce(s, TaskCommitted{Task: stored})
	if got, _ := s.FindTask("t2"); got.Title != "Reconcile bank" {
		t.Errorf("title = %q, want stored version", got.Title)
	}
	if s.Pending("t2") {
		t.Error("task still pending after commit")
	}

	// Rolling back after a commit has nothing to restore
	s = Reduce(s, TaskRolledBack{ID: "t2"})
	if got, _ := s.FindTask("t2"); got.Title != "Reconcile bank" {
		t.Errorf("title = %q after stray rollback", got.Title)
	}
}

func TestSearchIgnoresStaleResults(t *testing.T) {
	s := Reduce(loaded(), SearchStarted{Query: "first"})
	s = Reduce(s, SearchStarted{Query: "second"})
	s = Reduce(s, SearchCompleted{Query: "first", IDs: []string{"t1"}})
	if !s.Search.Running || len(s.Search.IDs) != 0 {
		t.Errorf("stale result applied: %+v", s.Search)
	}

	s = Reduce(s, SearchCompleted{Query: "second", IDs: []string{"t3", "t1"}})
	got := SearchResults(s)
	if len(got) != 2 || got[0].ID != "t1" || got[1].ID != "t3" {
		t.Errorf("SearchResults = %v, want t1, t3 in board order", got)
	}

	s = Reduce(s, SearchFailed{Query: "second", Message: "boom"})
	if s.Search.Error != "boom" || len(SearchResults(s)) != 0 {
		t.Errorf("Search = %+v", s.Search)
	}

	s = Reduce(s, SearchCleared{})
	if s.Search.Query != "" || s.Search.Running {
		t.Errorf("Search not cleared: %+v", s.Search)
	}
}

func TestSelectors(t *testing.T) {
	s := loaded()
	today := models.NewDate(2024, 5, 10)

	if n := Board(s).TaskCount(); n != 2 {
		t.Errorf("board task count = %d, want 2 for client c1", n)
	}
	if n := len(Displayed(s)); n != 2 {
		t.Errorf("displayed = %d", n)
	}
	// Dashboard ignores the client filter
	if n := Dashboard(s, today).Count(board.Stat(models.StatusDone)); n != 1 {
		t.Errorf("done card = %d, want 1", n)
	}

	if n := len(StatTasks(s, today)); n != 0 {
		t.Errorf("StatTasks without selection = %d", n)
	}
	s = Reduce(s, StatSelected{Stat: board.StatHighPriority})
	if got := StatTasks(s, today); len(got) != 1 || got[0].ID != "t1" {
		t.Errorf("StatTasks(high) = %v", got)
	}

	g := Gantt(s)
	if len(g.Rows) != 2 || g.TotalDays != 12 || len(g.Links) != 1 {
		t.Errorf("gantt = %d rows, %d days, %d links", len(g.Rows), g.TotalDays, len(g.Links))
	}

	t2, _ := s.FindTask("t2")
	if !Dependency(s, t2).Blocked() {
		t.Error("t2 should be blocked by t1")
	}
}

func TestSettingsEvents(t *testing.T) {
	s := Reduce(loaded(), LongPendingDaysChanged{Days: 14})
	s = Reduce(s, LongPendingDaysChanged{Days: -3})
	if s.LongPendingDays != 14 {
		t.Errorf("LongPendingDays = %d, want 14", s.LongPendingDays)
	}

	s = Reduce(s, SortChanged{SortBy: board.SortDueDate})
	s = Reduce(s, SortChanged{SortBy: "bogus"})
	if s.View.SortBy != board.SortDueDate {
		t.Errorf("SortBy = %q", s.View.SortBy)
	}

	s = Reduce(s, MainViewChanged{View: MainGantt})
	if s.MainView != MainGantt {
		t.Errorf("MainView = %q", s.MainView)
	}
}
