package board

import (
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

// GanttRow places one task on the timeline
type GanttRow struct {
	Task       TaskWithDetails `json:"task"`
	Offset     int             `json:"offset"` // days from the chart start
	Span       int             `json:"span"`   // days covered, at least 1
	Dependency Dependency      `json:"dependency"`
}

// GanttLink connects a prerequisite to the task waiting on it
type GanttLink struct {
	FromID string `json:"from_id"`
	ToID   string `json:"to_id"`
}

// Gantt is the timeline view model
type Gantt struct {
	Start     models.Date `json:"start"`
	End       models.Date `json:"end"`
	TotalDays int         `json:"total_days"`
	Rows      []GanttRow  `json:"rows"`
	Links     []GanttLink `json:"links"`
}

// Days lists every date on the chart axis
func (g Gantt) Days() []models.Date {
	days := make([]models.Date, 0, g.TotalDays)
	for i := 0; i < g.TotalDays; i++ {
		days = append(days, g.Start.AddDays(i))
	}
	return days
}

// BuildGantt lays out the displayed tasks between the earliest start date and
// the latest due date. Links are only drawn when both ends are displayed; all is
// used to resolve the dependency state of each row.
func BuildGantt(displayed []TaskWithDetails, all []models.Task) Gantt {
	g := Gantt{Rows: []GanttRow{}, Links: []GanttLink{}}
	if len(displayed) == 0 {
		return g
	}

	for _, t := range displayed {
		start, due := taskSpan(t.Task)
		if start.IsZero() {
			continue
		}
		if g.Start.IsZero() || start.Before(g.Start) {
			g.Start = start
		}
		if g.End.IsZero() || due.After(g.End) {
			g.End = due
		}
	}
	if g.Start.IsZero() {
		return g
	}
	g.TotalDays = max(g.Start.DaysUntil(g.End)+1, 1)

	shown := make(map[string]bool, len(displayed))
	for _, t := range displayed {
		shown[t.ID] = true
	}

	for _, t := range displayed {
		row := GanttRow{Task: t, Span: 1, Dependency: ResolveDependency(t.Task, all)}
		if start, due := taskSpan(t.Task); !start.IsZero() {
			row.Offset = g.Start.DaysUntil(start)
			row.Span = max(start.DaysUntil(due)+1, 1)
		}
		g.Rows = append(g.Rows, row)

		if t.DependsOn != "" && shown[t.DependsOn] {
			g.Links = append(g.Links, GanttLink{FromID: t.DependsOn, ToID: t.ID})
		}
	}
	return g
}

// taskSpan fills a missing start or due date from the other one
func taskSpan(t models.Task) (start, due models.Date) {
	start, due = t.StartDate, t.DueDate
	if start.IsZero() {
		start = due
	}
	if due.IsZero() || due.Before(start) {
		due = start
	}
	return start, due
}
