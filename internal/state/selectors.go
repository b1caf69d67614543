package state

import (
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/board"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

// Enriched resolves client and project names for every task
func Enriched(s State) []board.TaskWithDetails {
	return board.Enrich(s.Snapshot.Tasks, s.Snapshot.Clients, s.Snapshot.Projects)
}

// Displayed is the tasks of the selected client or project
func Displayed(s State) []board.TaskWithDetails {
	return board.FilterByView(Enriched(s), s.View.Mode, s.View.FilterID)
}

// Board is the kanban for the current view
func Board(s State) board.Board {
	return board.Build(Enriched(s), s.View)
}

// Dashboard counts every task, not just the displayed ones
func Dashboard(s State, today models.Date) board.Dashboard {
	return board.BuildDashboard(Enriched(s), s.LongPendingDays, today)
}

// StatTasks is the list behind the selected dashboard card
func StatTasks(s State, today models.Date) []board.TaskWithDetails {
	if s.SelectedStat == "" {
		return []board.TaskWithDetails{}
	}
	return board.FilterByStat(Enriched(s), s.SelectedStat, s.LongPendingDays, today)
}

// Gantt lays out the displayed tasks
func Gantt(s State) board.Gantt {
	return board.BuildGantt(Displayed(s), s.Snapshot.Tasks)
}

// SearchResults is the tasks matched by the last completed search, in board order
func SearchResults(s State) []board.TaskWithDetails {
	return board.MatchIDs(Enriched(s), s.Search.IDs)
}

// Dependency resolves the prerequisite of a task against the current snapshot
func Dependency(s State, t models.Task) board.Dependency {
	return board.ResolveDependency(t, s.Snapshot.Tasks)
}
