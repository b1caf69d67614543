package board

import (
	"testing"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

func TestBuildGantt(t *testing.T) {
	mk := func(id, start, due, dependsOn string, status models.Status) models.Task {
		task := makeTask(id, status)
		task.StartDate = models.MustParseDate(start)
		task.DueDate = models.MustParseDate(due)
		task.DependsOn = dependsOn
		return task
	}
	a := mk("a", "2025-10-01", "2025-10-03", "", models.StatusDone)
	b := mk("b", "2025-10-04", "2025-10-10", "a", models.StatusToDo)
	c := mk("c", "2025-10-02", "2025-10-02", "hidden", models.StatusToDo)
	hidden := mk("hidden", "2025-09-01", "2025-09-02", "", models.StatusInProgress)
	all := []models.Task{a, b, c, hidden}
	displayed := []TaskWithDetails{enrichOne(a), enrichOne(b), enrichOne(c)}

	g := BuildGantt(displayed, all)

	if g.Start.String() != "2025-10-01" || g.End.String() != "2025-10-10" {
		t.Errorf("range = %s..%s, want 2025-10-01..2025-10-10", g.Start, g.End)
	}
	if g.TotalDays != 10 || len(g.Days()) != 10 {
		t.Errorf("TotalDays = %d (%d axis days), want 10", g.TotalDays, len(g.Days()))
	}

	wantRows := []struct {
		id           string
		offset, span int
		state        DependencyState
	}{
		{"a", 0, 3, DependencyNone},
		{"b", 3, 7, DependencySatisfied},
		{"c", 1, 1, DependencyBlocked},
	}
	if len(g.Rows) != len(wantRows) {
		t.Fatalf("BuildGantt returned %d rows, want %d", len(g.Rows), len(wantRows))
	}
	for i, w := range wantRows {
		row := g.Rows[i]
		if row.Task.ID != w.id || row.Offset != w.offset || row.Span != w.span || row.Dependency.State != w.state {
			t.Errorf("row %d = {%s offset=%d span=%d %s}, want {%s offset=%d span=%d %s}",
				i, row.Task.ID, row.Offset, row.Span, row.Dependency.State, w.id, w.offset, w.span, w.state)
		}
	}

	// c depends on a task that is not displayed, so only a -> b is linked
	if len(g.Links) != 1 || g.Links[0] != (GanttLink{FromID: "a", ToID: "b"}) {
		t.Errorf("Links = %+v, want [a->b]", g.Links)
	}
}

func TestBuildGanttEdgeCases(t *testing.T) {
	empty := BuildGantt(nil, nil)
	if empty.TotalDays != 0 || len(empty.Rows) != 0 {
		t.Errorf("BuildGantt(nil) = %+v, want empty chart", empty)
	}

	backwards := makeTask("x", models.StatusToDo)
	backwards.StartDate = models.MustParseDate("2025-05-10")
	backwards.DueDate = models.MustParseDate("2025-05-01")
	onlyDue := makeTask("y", models.StatusToDo)
	onlyDue.DueDate = models.MustParseDate("2025-05-12")

	g := BuildGantt([]TaskWithDetails{enrichOne(backwards), enrichOne(onlyDue)}, nil)
	if g.TotalDays != 3 {
		t.Errorf("TotalDays = %d, want 3", g.TotalDays)
	}
	if g.Rows[0].Span != 1 {
		t.Errorf("due before start span = %d, want 1", g.Rows[0].Span)
	}
	if g.Rows[1].Offset != 2 || g.Rows[1].Span != 1 {
		t.Errorf("due-only row = offset %d span %d, want offset 2 span 1", g.Rows[1].Offset, g.Rows[1].Span)
	}
}
