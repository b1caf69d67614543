// Package state holds the application state of the board as an immutable value.
// Transitions go through Reduce, derived view models come from the selectors, and
// Session serialises transitions that involve the store or the AI assistant.
package state

import (
	"maps"
	"slices"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/board"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

// MainView is the top-level screen being shown
type MainView string

const (
	MainBoard     MainView = "board"
	MainDashboard MainView = "dashboard"
	MainGantt     MainView = "gantt"
)

func (v MainView) IsValid() bool {
	return v == MainBoard || v == MainDashboard || v == MainGantt
}

// Search is the state of the natural-language search box
type Search struct {
	Query   string   `json:"query"`
	Running bool     `json:"running"`
	IDs     []string `json:"ids"`
	Error   string   `json:"error,omitempty"`
}

// State is everything the views are computed from. Treat it as read-only:
// Reduce never mutates the value it is given.
type State struct {
	Snapshot        models.Snapshot `json:"snapshot"`
	View            board.View      `json:"view"`
	MainView        MainView        `json:"main_view"`
	LongPendingDays int             `json:"long_pending_days"`
	SelectedStat    board.Stat      `json:"selected_stat,omitempty"`
	Search          Search          `json:"search"`

	// pending holds the last confirmed version of tasks with an update in flight
	pending map[string]models.Task
}

// New returns an empty state using the given view selection
func New(view board.View, longPendingDays int) State {
	if !view.Mode.IsValid() {
		view.Mode = board.ViewByClient
	}
	if !view.SortBy.IsValid() {
		view.SortBy = board.SortDefault
	}
	return State{
		View:            view,
		MainView:        MainBoard,
		LongPendingDays: longPendingDays,
		Snapshot: models.Snapshot{
			Tasks:     []models.Task{},
			Clients:   []models.Client{},
			Projects:  []models.Project{},
			Assignees: []models.Assignee{},
		},
	}
}

// Pending reports whether an update of the task is waiting for the store
func (s State) Pending(id string) bool {
	_, ok := s.pending[id]
	return ok
}

// FindTask returns the current version of a task
func (s State) FindTask(id string) (models.Task, bool) {
	return s.Snapshot.FindTask(id)
}

// FilterOption is an entry of the client or project picker
type FilterOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FilterOptions lists the clients or projects selectable in the current view mode
func (s State) FilterOptions() []FilterOption {
	options := []FilterOption{}
	switch s.View.Mode {
	case board.ViewByClient:
		for _, c := range s.Snapshot.Clients {
			options = append(options, FilterOption{ID: c.ID, Name: c.Name})
		}
	case board.ViewByProject:
		for _, p := range s.Snapshot.Projects {
			options = append(options, FilterOption{ID: p.ID, Name: p.Name})
		}
	}
	return options
}

// firstFilterID is the id the filter falls back to after a mode change
func (s State) firstFilterID() string {
	if options := s.FilterOptions(); len(options) > 0 {
		return options[0].ID
	}
	return ""
}

func (s State) filterKnown() bool {
	for _, o := range s.FilterOptions() {
		if o.ID == s.View.FilterID {
			return true
		}
	}
	return false
}

// withTasks returns a copy of s with its own task slice
func (s State) withTasks(tasks []models.Task) State {
	s.Snapshot.Tasks = tasks
	return s
}

func (s State) withPending(mutate func(map[string]models.Task)) State {
	pending := maps.Clone(s.pending)
	if pending == nil {
		pending = map[string]models.Task{}
	}
	mutate(pending)
	s.pending = pending
	return s
}

// replaceTask swaps in t by id, leaving the original slice untouched
func replaceTask(tasks []models.Task, t models.Task) ([]models.Task, bool) {
	i := slices.IndexFunc(tasks, func(x models.Task) bool { return x.ID == t.ID })
	if i < 0 {
		return tasks, false
	}
	next := slices.Clone(tasks)
	next[i] = t
	return next, true
}
