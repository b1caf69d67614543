package board

import (
	"slices"
	"strings"
	"time"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

// WeekMark is what a task does on one day of the week plan
type WeekMark string

const (
	MarkNone   WeekMark = ""
	MarkStart  WeekMark = "start"
	MarkActive WeekMark = "active"
	MarkDue    WeekMark = "due"
	MarkSingle WeekMark = "single" // starts and is due the same day
)

// WeekRow is one open task on the week plan, Monday first
type WeekRow struct {
	Task TaskWithDetails `json:"task"`
	Days [7]WeekMark     `json:"days"`
}

// WeekPlan shows which open tasks run during one Monday to Sunday week
type WeekPlan struct {
	Start     models.Date `json:"start"`
	Rows      []WeekRow   `json:"rows"`
	DueCounts [7]int      `json:"due_counts"`
}

// WeekStart returns the Monday on or before d
func WeekStart(d models.Date) models.Date {
	daysFromMonday := int(d.Time().Weekday() - time.Monday)
	if d.Time().Weekday() == time.Sunday {
		daysFromMonday = 6
	}
	return d.AddDays(-daysFromMonday)
}

// BuildWeekPlan places every open, dated task whose span overlaps the week
// starting at weekStart. Rows are ordered by due date, then title.
func BuildWeekPlan(tasks []TaskWithDetails, weekStart models.Date) WeekPlan {
	weekStart = WeekStart(weekStart)
	weekEnd := weekStart.AddDays(6)
	plan := WeekPlan{Start: weekStart, Rows: []WeekRow{}}

	for _, t := range tasks {
		if t.Status == models.StatusDone {
			continue
		}
		start, due := taskSpan(t.Task)
		if start.IsZero() || due.Before(weekStart) || start.After(weekEnd) {
			continue
		}

		row := WeekRow{Task: t}
		for i := range row.Days {
			day := weekStart.AddDays(i)
			switch {
			case day.Compare(start) == 0 && day.Compare(due) == 0:
				row.Days[i] = MarkSingle
			case day.Compare(start) == 0:
				row.Days[i] = MarkStart
			case day.Compare(due) == 0:
				row.Days[i] = MarkDue
			case day.After(start) && day.Before(due):
				row.Days[i] = MarkActive
			}
			if day.Compare(due) == 0 {
				plan.DueCounts[i]++
			}
		}
		plan.Rows = append(plan.Rows, row)
	}

	slices.SortStableFunc(plan.Rows, func(a, b WeekRow) int {
		_, dueA := taskSpan(a.Task.Task)
		_, dueB := taskSpan(b.Task.Task)
		if c := dueA.Compare(dueB); c != 0 {
			return c
		}
		return strings.Compare(a.Task.Title, b.Task.Title)
	})
	return plan
}
