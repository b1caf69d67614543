package board

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

// ViewMode selects whether the board is filtered by client or by project
type ViewMode string

const (
	ViewByClient  ViewMode = "client"
	ViewByProject ViewMode = "project"
)

func (m ViewMode) IsValid() bool {
	return m == ViewByClient || m == ViewByProject
}

// SortBy selects the comparator used inside each column
type SortBy string

const (
	SortDefault  SortBy = "default"
	SortPriority SortBy = "priority"
	SortDueDate  SortBy = "dueDate"
	SortAssignee SortBy = "assignee"
)

// SortModes returns the sort modes in the order the UI cycles through them
func SortModes() []SortBy {
	return []SortBy{SortDefault, SortPriority, SortDueDate, SortAssignee}
}

func (s SortBy) IsValid() bool {
	return slices.Contains(SortModes(), s)
}

// View is the filter and sort selection the board is built for
type View struct {
	Mode     ViewMode `json:"view_mode"`
	FilterID string   `json:"filter_id"`
	SortBy   SortBy   `json:"sort_by"`
}

// Column is one status lane of the board
type Column struct {
	Status models.Status     `json:"status"`
	Title  string            `json:"title"`
	Tasks  []TaskWithDetails `json:"tasks"`
}

// Board is the kanban view model
type Board struct {
	View    View     `json:"view"`
	Columns []Column `json:"columns"`
}

// FilterByView keeps the tasks belonging to the selected client or project.
// An empty filter id or an unknown mode selects nothing.
func FilterByView(tasks []TaskWithDetails, mode ViewMode, filterID string) []TaskWithDetails {
	filtered := []TaskWithDetails{}
	if filterID == "" {
		return filtered
	}
	for _, t := range tasks {
		switch mode {
		case ViewByClient:
			if t.ClientID == filterID {
				filtered = append(filtered, t)
			}
		case ViewByProject:
			if t.ProjectID == filterID {
				filtered = append(filtered, t)
			}
		}
	}
	return filtered
}

// BucketByStatus groups tasks into exactly one bucket per known status.
// Tasks with an unknown status are dropped.
func BucketByStatus(tasks []TaskWithDetails) map[models.Status][]TaskWithDetails {
	buckets := make(map[models.Status][]TaskWithDetails, len(models.Statuses()))
	for _, s := range models.Statuses() {
		buckets[s] = []TaskWithDetails{}
	}
	for _, t := range tasks {
		if bucket, ok := buckets[t.Status]; ok {
			buckets[t.Status] = append(bucket, t)
		}
	}
	return buckets
}

// SortBucket returns a stably sorted copy of tasks
func SortBucket(tasks []TaskWithDetails, sortBy SortBy) []TaskWithDetails {
	sorted := slices.Clone(tasks)
	if sorted == nil {
		sorted = []TaskWithDetails{}
	}

	var cmp func(a, b TaskWithDetails) int
	switch sortBy {
	case SortPriority:
		cmp = func(a, b TaskWithDetails) int {
			return a.Priority.Rank() - b.Priority.Rank()
		}
	case SortDueDate:
		cmp = func(a, b TaskWithDetails) int {
			return a.DueDate.Compare(b.DueDate)
		}
	case SortAssignee:
		// Collators keep internal buffers, so each sort gets its own
		col := collate.New(language.English)
		cmp = func(a, b TaskWithDetails) int {
			return col.CompareString(a.Assignee.Name, b.Assignee.Name)
		}
	default:
		cmp = func(a, b TaskWithDetails) int {
			return a.StartDate.Compare(b.StartDate)
		}
	}

	slices.SortStableFunc(sorted, cmp)
	return sorted
}

// Columns buckets tasks by status and sorts every bucket with the same mode
func Columns(tasks []TaskWithDetails, sortBy SortBy) []Column {
	buckets := BucketByStatus(tasks)
	columns := make([]Column, 0, len(buckets))
	for _, s := range models.Statuses() {
		columns = append(columns, Column{
			Status: s,
			Title:  string(s),
			Tasks:  SortBucket(buckets[s], sortBy),
		})
	}
	return columns
}

// Build runs the whole pipeline: filter by view, bucket by status, sort
func Build(enriched []TaskWithDetails, v View) Board {
	return Board{
		View:    v,
		Columns: Columns(FilterByView(enriched, v.Mode, v.FilterID), v.SortBy),
	}
}

// Column returns the lane for a status
func (b Board) Column(s models.Status) Column {
	for _, c := range b.Columns {
		if c.Status == s {
			return c
		}
	}
	return Column{Status: s, Title: string(s), Tasks: []TaskWithDetails{}}
}

// TaskCount is the number of tasks across all lanes
func (b Board) TaskCount() int {
	n := 0
	for _, c := range b.Columns {
		n += len(c.Tasks)
	}
	return n
}
