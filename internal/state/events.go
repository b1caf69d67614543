package state

import (
	"slices"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/board"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

// Event is a state transition. The set of events is closed.
type Event interface {
	isEvent()
}

type (
	// SnapshotLoaded replaces all entities with a fresh load from the store
	SnapshotLoaded struct{ Snapshot models.Snapshot }

	// ViewModeChanged switches between client and project filtering and
	// selects the first client or project of the new mode
	ViewModeChanged struct{ Mode board.ViewMode }

	FilterSelected struct{ ID string }

	SortChanged struct{ SortBy board.SortBy }

	MainViewChanged struct{ View MainView }

	LongPendingDaysChanged struct{ Days int }

	// StatSelected opens the task list behind a dashboard card, an empty stat closes it
	StatSelected struct{ Stat board.Stat }

	// TaskCreated prepends a task the store has accepted
	TaskCreated struct{ Task models.Task }

	// TaskTentativelyUpdated applies an edit before the store confirms it
	TaskTentativelyUpdated struct{ Task models.Task }

	// TaskCommitted applies the version the store returned
	TaskCommitted struct{ Task models.Task }

	// TaskRolledBack restores the version from before the tentative update
	TaskRolledBack struct{ ID string }

	SearchStarted struct{ Query string }

	SearchCompleted struct {
		Query string
		IDs   []string
	}

	SearchFailed struct {
		Query   string
		Message string
	}

	SearchCleared struct{}
)

func (SnapshotLoaded) isEvent()         {}
func (ViewModeChanged) isEvent()        {}
func (FilterSelected) isEvent()         {}
func (SortChanged) isEvent()            {}
func (MainViewChanged) isEvent()        {}
func (LongPendingDaysChanged) isEvent() {}
func (StatSelected) isEvent()           {}
func (TaskCreated) isEvent()            {}
func (TaskTentativelyUpdated) isEvent() {}
func (TaskCommitted) isEvent()          {}
func (TaskRolledBack) isEvent()         {}
func (SearchStarted) isEvent()          {}
func (SearchCompleted) isEvent()        {}
func (SearchFailed) isEvent()           {}
func (SearchCleared) isEvent()          {}

// Reduce returns the state after applying e. s is left unchanged.
func Reduce(s State, e Event) State {
	switch e := e.(type) {
	case SnapshotLoaded:
		snap := e.Snapshot
		snap.Tasks = nonNil(slices.Clone(snap.Tasks))
		snap.Clients = nonNil(slices.Clone(snap.Clients))
		snap.Projects = nonNil(slices.Clone(snap.Projects))
		snap.Assignees = nonNil(slices.Clone(snap.Assignees))
		s.Snapshot = snap
		s.pending = nil
		if !s.filterKnown() {
			s.View.FilterID = s.firstFilterID()
		}

	case ViewModeChanged:
		if !e.Mode.IsValid() || e.Mode == s.View.Mode {
			return s
		}
		s.View.Mode = e.Mode
		s.View.FilterID = s.firstFilterID()

	case FilterSelected:
		s.View.FilterID = e.ID

	case SortChanged:
		if e.SortBy.IsValid() {
			s.View.SortBy = e.SortBy
		}

	case MainViewChanged:
		if e.View.IsValid() {
			s.MainView = e.View
		}

	case LongPendingDaysChanged:
		if e.Days >= 0 {
			s.LongPendingDays = e.Days
		}

	case StatSelected:
		s.SelectedStat = e.Stat

	case TaskCreated:
		tasks := make([]models.Task, 0, len(s.Snapshot.Tasks)+1)
		tasks = append(tasks, e.Task)
		s = s.withTasks(append(tasks, s.Snapshot.Tasks...))

	case TaskTentativelyUpdated:
		previous, ok := s.Snapshot.FindTask(e.Task.ID)
		if !ok {
			return s
		}
		tasks, _ := replaceTask(s.Snapshot.Tasks, e.Task)
		s = s.withTasks(tasks)
		if !s.Pending(e.Task.ID) {
			// Only the last confirmed version is kept when edits stack up
			s = s.withPending(func(p map[string]models.Task) { p[e.Task.ID] = previous })
		}

	case TaskCommitted:
		if tasks, ok := replaceTask(s.Snapshot.Tasks, e.Task); ok {
			s = s.withTasks(tasks)
		}
		s = s.withPending(func(p map[string]models.Task) { delete(p, e.Task.ID) })

	case TaskRolledBack:
		previous, ok := s.pending[e.ID]
		if !ok {
			return s
		}
		tasks, _ := replaceTask(s.Snapshot.Tasks, previous)
		s = s.withTasks(tasks)
		s = s.withPending(func(p map[string]models.Task) { delete(p, e.ID) })

	case SearchStarted:
		s.Search = Search{Query: e.Query, Running: true, IDs: []string{}}

	case SearchCompleted:
		if e.Query != s.Search.Query {
			// A newer search has started since
			return s
		}
		s.Search = Search{Query: e.Query, IDs: slices.Clone(nonNil(e.IDs))}

	case SearchFailed:
		if e.Query != s.Search.Query {
			return s
		}
		s.Search = Search{Query: e.Query, IDs: []string{}, Error: e.Message}

	case SearchCleared:
		s.Search = Search{}
	}
	return s
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
