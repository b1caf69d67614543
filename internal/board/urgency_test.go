package board

import (
	"testing"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

func TestDueDateUrgency(t *testing.T) {
	today := models.MustParseDate("2025-10-07")

	tests := []struct {
		name string
		due  models.Date
		want Urgency
	}{
		{"today", today, UrgencyDueSoon},
		{"yesterday", today.AddDays(-1), UrgencyOverdue},
		{"last year", models.MustParseDate("2024-10-07"), UrgencyOverdue},
		{"tomorrow", today.AddDays(1), UrgencyDueSoon},
		{"in two days", today.AddDays(2), UrgencyDueSoon},
		{"in three days", today.AddDays(3), UrgencyNormal},
		{"unset", models.Date{}, UrgencyNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DueDateUrgency(tt.due, today); got != tt.want {
				t.Errorf("DueDateUrgency(%s, %s) = %q, want %q", tt.due, today, got, tt.want)
			}
		})
	}
}

func TestLongPending(t *testing.T) {
	today := models.MustParseDate("2025-10-20")

	mk := func(id string, status models.Status, due string) TaskWithDetails {
		task := makeTask(id, status)
		task.DueDate = models.MustParseDate(due)
		return enrichOne(task)
	}
	tasks := []TaskWithDetails{
		mk("old", models.StatusPendingClient, "2025-10-01"),    // 19 days
		mk("edge", models.StatusPendingClient, "2025-10-13"),   // exactly 7 days
		mk("recent", models.StatusPendingClient, "2025-10-18"), // 2 days
		mk("future", models.StatusPendingClient, "2025-11-01"),
		mk("wrong status", models.StatusInProgress, "2025-09-01"),
		mk("no due", models.StatusPendingClient, ""),
		mk("eight", models.StatusPendingClient, "2025-10-12"),
	}

	tests := []struct {
		threshold int
		want      []string
	}{
		{7, []string{"old", "eight"}},
		{1, []string{"old", "edge", "recent", "eight"}},
		{30, []string{}},
		{0, []string{}},
		{-5, []string{}},
	}

	for _, tt := range tests {
		got := ids(LongPending(tasks, tt.threshold, today))
		if !equalIDs(got, tt.want) {
			t.Errorf("LongPending(threshold=%d) = %v, want %v", tt.threshold, got, tt.want)
		}
	}
}

func TestLongPendingDisabledForAnyInput(t *testing.T) {
	today := models.MustParseDate("2030-01-01")
	var tasks []TaskWithDetails
	for i, due := range []string{"2000-01-01", "2020-06-15", "2029-12-01"} {
		task := makeTask(string(rune('a'+i)), models.StatusPendingClient)
		task.DueDate = models.MustParseDate(due)
		tasks = append(tasks, enrichOne(task))
	}
	if got := LongPending(tasks, 0, today); len(got) != 0 {
		t.Errorf("LongPending with threshold 0 = %v, want empty", ids(got))
	}
}
