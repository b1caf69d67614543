package board

import (
	"testing"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

func makeTask(id string, status models.Status) models.Task {
	return models.Task{
		ID:        id,
		Title:     "Task " + id,
		Status:    status,
		Priority:  models.PriorityMedium,
		ClientID:  "c1",
		ProjectID: "p1",
	}
}

func enrichOne(t models.Task) TaskWithDetails {
	return TaskWithDetails{Task: t, ClientName: "Client", ProjectName: "Project"}
}

func ids(tasks []TaskWithDetails) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEnrich(t *testing.T) {
	clients := []models.Client{{ID: "c1", Name: "Acme Ltd"}}
	projects := []models.Project{{ID: "p1", Name: "Year End 2025", ClientID: "c1"}}

	known := makeTask("1", models.StatusToDo)
	dangling := makeTask("2", models.StatusToDo)
	dangling.ClientID = "missing"
	dangling.ProjectID = "gone"
	unset := makeTask("3", models.StatusDone)
	unset.ClientID = ""
	unset.ProjectID = ""

	got := Enrich([]models.Task{known, dangling, unset}, clients, projects)
	if len(got) != 3 {
		t.Fatalf("Enrich returned %d tasks, want 3", len(got))
	}

	tests := []struct {
		id          string
		clientName  string
		projectName string
	}{
		{"1", "Acme Ltd", "Year End 2025"},
		{"2", UnknownClient, UnknownProject},
		{"3", UnknownClient, UnknownProject},
	}
	for i, tt := range tests {
		if got[i].ID != tt.id {
			t.Errorf("Enrich()[%d].ID = %q, want %q", i, got[i].ID, tt.id)
		}
		if got[i].ClientName != tt.clientName {
			t.Errorf("Enrich()[%d].ClientName = %q, want %q", i, got[i].ClientName, tt.clientName)
		}
		if got[i].ProjectName != tt.projectName {
			t.Errorf("Enrich()[%d].ProjectName = %q, want %q", i, got[i].ProjectName, tt.projectName)
		}
	}
}

func TestFilterByView(t *testing.T) {
	a := makeTask("a", models.StatusToDo)
	b := makeTask("b", models.StatusToDo)
	b.ClientID, b.ProjectID = "c2", "p2"
	c := makeTask("c", models.StatusDone)
	c.ProjectID = "p3"
	tasks := []TaskWithDetails{enrichOne(a), enrichOne(b), enrichOne(c)}

	tests := []struct {
		name     string
		mode     ViewMode
		filterID string
		want     []string
	}{
		{"client keeps input order", ViewByClient, "c1", []string{"a", "c"}},
		{"project", ViewByProject, "p3", []string{"c"}},
		{"empty filter shows nothing", ViewByClient, "", []string{}},
		{"no match", ViewByProject, "p9", []string{}},
		{"unknown mode", ViewMode("team"), "c1", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(FilterByView(tasks, tt.mode, tt.filterID))
			if !equalIDs(got, tt.want) {
				t.Errorf("FilterByView(%q, %q) = %v, want %v", tt.mode, tt.filterID, got, tt.want)
			}
		})
	}
}

func TestBucketByStatusAlwaysHasFiveBuckets(t *testing.T) {
	odd := makeTask("x", models.Status("Archived"))
	tests := []struct {
		name  string
		tasks []TaskWithDetails
	}{
		{"nil", nil},
		{"one status", []TaskWithDetails{enrichOne(makeTask("1", models.StatusInReview))}},
		{"unknown status dropped", []TaskWithDetails{enrichOne(odd)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buckets := BucketByStatus(tt.tasks)
			if len(buckets) != 5 {
				t.Fatalf("BucketByStatus returned %d buckets, want 5", len(buckets))
			}
			total := 0
			for _, s := range models.Statuses() {
				bucket, ok := buckets[s]
				if !ok {
					t.Errorf("missing bucket %q", s)
				}
				total += len(bucket)
			}
			if _, ok := buckets[models.Status("Archived")]; ok {
				t.Error("unknown status should not get a bucket")
			}
			if tt.name == "unknown status dropped" && total != 0 {
				t.Errorf("unknown status task was kept, total = %d", total)
			}
		})
	}
}

func TestSortBucketScenario(t *testing.T) {
	t1 := makeTask("1", models.StatusToDo)
	t1.Priority = models.PriorityUrgent
	t1.DueDate = models.MustParseDate("2025-10-07")
	t2 := makeTask("2", models.StatusToDo)
	t2.Priority = models.PriorityLow
	t2.DueDate = models.MustParseDate("2025-10-01")
	tasks := []TaskWithDetails{enrichOne(t1), enrichOne(t2)}

	byPriority := Columns(tasks, SortPriority)
	if got := ids(byPriority[0].Tasks); !equalIDs(got, []string{"1", "2"}) {
		t.Errorf("priority sort of To Do = %v, want [1 2]", got)
	}

	byDue := Columns(tasks, SortDueDate)
	if got := ids(byDue[0].Tasks); !equalIDs(got, []string{"2", "1"}) {
		t.Errorf("due date sort of To Do = %v, want [2 1]", got)
	}
}

func TestSortBucket(t *testing.T) {
	mk := func(id string, p models.Priority, start, due, assignee string) TaskWithDetails {
		task := makeTask(id, models.StatusToDo)
		task.Priority = p
		task.StartDate = models.MustParseDate(start)
		task.DueDate = models.MustParseDate(due)
		task.Assignee = models.Assignee{Name: assignee}
		return enrichOne(task)
	}
	tasks := []TaskWithDetails{
		mk("a", models.PriorityLow, "2025-03-01", "2025-04-01", "bob"),
		mk("b", models.PriorityHigh, "2025-01-01", "2025-04-01", "Alice"),
		mk("c", models.PriorityUrgent, "2025-02-01", "2025-02-15", "Émile"),
		mk("d", models.PriorityHigh, "2025-01-01", "2025-05-01", "Alicia"),
		mk("e", models.Priority("Someday"), "2025-01-01", "", "Zoe"),
	}

	tests := []struct {
		sortBy SortBy
		want   []string
	}{
		{SortDefault, []string{"b", "d", "e", "c", "a"}},
		{SortPriority, []string{"c", "b", "d", "a", "e"}},
		{SortDueDate, []string{"e", "c", "a", "b", "d"}},
		{SortAssignee, []string{"b", "d", "a", "c", "e"}},
		{SortBy("unknown"), []string{"b", "d", "e", "c", "a"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.sortBy), func(t *testing.T) {
			got := ids(SortBucket(tasks, tt.sortBy))
			if !equalIDs(got, tt.want) {
				t.Errorf("SortBucket(%q) = %v, want %v", tt.sortBy, got, tt.want)
			}
		})
	}
}

func TestSortBucketIsStableAndDoesNotMutateInput(t *testing.T) {
	var tasks []TaskWithDetails
	for _, id := range []string{"5", "3", "9", "1", "7"} {
		task := makeTask(id, models.StatusToDo)
		task.StartDate = models.MustParseDate("2025-06-01")
		tasks = append(tasks, enrichOne(task))
	}

	for _, sortBy := range SortModes() {
		got := ids(SortBucket(tasks, sortBy))
		want := []string{"5", "3", "9", "1", "7"}
		if !equalIDs(got, want) {
			t.Errorf("SortBucket(%q) with equal keys = %v, want input order %v", sortBy, got, want)
		}
	}

	tasks[0].Priority = models.PriorityLow
	tasks[4].Priority = models.PriorityUrgent
	_ = SortBucket(tasks, SortPriority)
	if tasks[0].ID != "5" || tasks[4].ID != "7" {
		t.Error("SortBucket reordered its input")
	}
}

func TestBuild(t *testing.T) {
	todo := makeTask("1", models.StatusToDo)
	done := makeTask("2", models.StatusDone)
	other := makeTask("3", models.StatusToDo)
	other.ClientID = "c2"
	enriched := []TaskWithDetails{enrichOne(todo), enrichOne(done), enrichOne(other)}

	b := Build(enriched, View{Mode: ViewByClient, FilterID: "c1", SortBy: SortDefault})
	if len(b.Columns) != 5 {
		t.Fatalf("Build returned %d columns, want 5", len(b.Columns))
	}
	for i, s := range models.Statuses() {
		if b.Columns[i].Status != s {
			t.Errorf("column %d = %q, want %q", i, b.Columns[i].Status, s)
		}
	}
	if got := ids(b.Column(models.StatusToDo).Tasks); !equalIDs(got, []string{"1"}) {
		t.Errorf("To Do = %v, want [1]", got)
	}
	if got := ids(b.Column(models.StatusDone).Tasks); !equalIDs(got, []string{"2"}) {
		t.Errorf("Done = %v, want [2]", got)
	}
	if b.TaskCount() != 2 {
		t.Errorf("TaskCount() = %d, want 2", b.TaskCount())
	}

	empty := Build(enriched, View{Mode: ViewByClient})
	if empty.TaskCount() != 0 || len(empty.Columns) != 5 {
		t.Errorf("Build with no filter = %d tasks in %d columns, want 0 in 5", empty.TaskCount(), len(empty.Columns))
	}
}
