package board

import (
	"testing"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

func TestBuildDashboard(t *testing.T) {
	today := models.MustParseDate("2025-10-20")

	mk := func(id string, status models.Status, p models.Priority, due string) TaskWithDetails {
		task := makeTask(id, status)
		task.Priority = p
		task.DueDate = models.MustParseDate(due)
		return enrichOne(task)
	}
	tasks := []TaskWithDetails{
		mk("1", models.StatusToDo, models.PriorityUrgent, "2025-10-25"),
		mk("2", models.StatusToDo, models.PriorityLow, "2025-10-25"),
		mk("3", models.StatusInProgress, models.PriorityHigh, "2025-10-25"),
		mk("4", models.StatusPendingClient, models.PriorityMedium, "2025-10-01"),
		mk("5", models.StatusPendingClient, models.PriorityMedium, "2025-10-19"),
		mk("6", models.StatusDone, models.PriorityHigh, "2025-09-01"),
	}

	d := BuildDashboard(tasks, 7, today)
	want := map[Stat]int{
		Stat(models.StatusToDo):          2,
		Stat(models.StatusInProgress):    1,
		Stat(models.StatusInReview):      0,
		Stat(models.StatusPendingClient): 2,
		Stat(models.StatusDone):          1,
		StatHighPriority:                 3,
		StatLongPending:                  1,
	}

	if len(d.Cards) != len(Stats()) {
		t.Fatalf("BuildDashboard returned %d cards, want %d", len(d.Cards), len(Stats()))
	}
	for i, s := range Stats() {
		if d.Cards[i].Stat != s {
			t.Errorf("card %d = %q, want %q", i, d.Cards[i].Stat, s)
		}
		if got := d.Count(s); got != want[s] {
			t.Errorf("Count(%q) = %d, want %d", s, got, want[s])
		}
	}

	disabled := BuildDashboard(tasks, 0, today)
	if got := disabled.Count(StatLongPending); got != 0 {
		t.Errorf("Long Pending with threshold 0 = %d, want 0", got)
	}
}

func TestFilterByStat(t *testing.T) {
	today := models.MustParseDate("2025-10-20")
	urgent := makeTask("u", models.StatusInReview)
	urgent.Priority = models.PriorityUrgent
	review := makeTask("r", models.StatusInReview)
	tasks := []TaskWithDetails{enrichOne(urgent), enrichOne(review)}

	tests := []struct {
		stat Stat
		want []string
	}{
		{Stat(models.StatusInReview), []string{"u", "r"}},
		{StatHighPriority, []string{"u"}},
		{StatLongPending, []string{}},
		{Stat("Bogus"), []string{}},
	}

	for _, tt := range tests {
		got := ids(FilterByStat(tasks, tt.stat, 7, today))
		if !equalIDs(got, tt.want) {
			t.Errorf("FilterByStat(%q) = %v, want %v", tt.stat, got, tt.want)
		}
	}
}
