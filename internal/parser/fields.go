package parser

import (
	"fmt"
	"strings"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/board"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

// ParsePriority converts user input to a priority.
// Accepts names (low/medium/med/high/urgent) or numbers 1-4, 4 being most urgent.
func ParsePriority(input string) (models.Priority, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "1", "low":
		return models.PriorityLow, nil
	case "2", "medium", "med":
		return models.PriorityMedium, nil
	case "3", "high":
		return models.PriorityHigh, nil
	case "4", "urgent":
		return models.PriorityUrgent, nil
	default:
		return "", fmt.Errorf("invalid priority '%s'. Use: low, medium, high, urgent or 1-4", input)
	}
}

// ParseStatus converts user input to a status. Case, spaces, dashes and
// underscores are ignored, so "in-progress", "In Progress" and "inprogress" all work.
func ParseStatus(input string) (models.Status, error) {
	key := normalizeKey(input)
	switch key {
	case "todo":
		return models.StatusToDo, nil
	case "inprogress", "doing", "wip":
		return models.StatusInProgress, nil
	case "inreview", "review":
		return models.StatusInReview, nil
	case "pendingclient", "pending", "waiting":
		return models.StatusPendingClient, nil
	case "done", "complete", "completed":
		return models.StatusDone, nil
	default:
		return "", fmt.Errorf("invalid status '%s'. Use: todo, in-progress, in-review, pending-client or done", input)
	}
}

// ParseEngagementType converts user input to an engagement type
func ParseEngagementType(input string) (models.EngagementType, error) {
	key := normalizeKey(input)
	for _, e := range models.EngagementTypes() {
		if key == normalizeKey(string(e)) {
			return e, nil
		}
	}
	return "", fmt.Errorf("invalid engagement type '%s'. Use: audit, tax, advisory or bookkeeping", input)
}

// ParseSortBy converts user input to a board sort mode
func ParseSortBy(input string) (board.SortBy, error) {
	key := normalizeKey(input)
	switch key {
	case "", "default", "start", "startdate":
		return board.SortDefault, nil
	case "priority", "prio":
		return board.SortPriority, nil
	case "duedate", "due":
		return board.SortDueDate, nil
	case "assignee", "owner":
		return board.SortAssignee, nil
	default:
		return "", fmt.Errorf("invalid sort '%s'. Use: default, priority, due or assignee", input)
	}
}

// ParseViewMode converts user input to a board view mode
func ParseViewMode(input string) (board.ViewMode, error) {
	switch normalizeKey(input) {
	case "client", "clients":
		return board.ViewByClient, nil
	case "project", "projects":
		return board.ViewByProject, nil
	default:
		return "", fmt.Errorf("invalid view '%s'. Use: client or project", input)
	}
}

// ParseStat converts user input to a dashboard card
func ParseStat(input string) (board.Stat, error) {
	key := normalizeKey(input)
	switch key {
	case "highpriority", "high":
		return board.StatHighPriority, nil
	case "longpending", "long":
		return board.StatLongPending, nil
	}
	status, err := ParseStatus(input)
	if err != nil {
		return "", fmt.Errorf("invalid stat '%s'. Use a status, high-priority or long-pending", input)
	}
	return board.Stat(status), nil
}

func normalizeKey(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
}
