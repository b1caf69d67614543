package board

import (
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

// Urgency classifies how close a due date is
type Urgency string

const (
	UrgencyNormal  Urgency = "normal"
	UrgencyDueSoon Urgency = "dueSoon"
	UrgencyOverdue Urgency = "overdue"
)

// dueSoonDays is the last day difference still flagged as due soon
const dueSoonDays = 2

// DueDateUrgency compares calendar days: before today is overdue, today up to two
// days ahead is due soon, anything later is normal. An unset due date is normal.
func DueDateUrgency(due, today models.Date) Urgency {
	if due.IsZero() {
		return UrgencyNormal
	}
	dayDiff := today.DaysUntil(due)
	switch {
	case dayDiff < 0:
		return UrgencyOverdue
	case dayDiff <= dueSoonDays:
		return UrgencyDueSoon
	default:
		return UrgencyNormal
	}
}

// IsLongPending reports whether a task has waited on the client for more than
// thresholdDays past its due date. A threshold of zero or less disables the check.
func IsLongPending(t models.Task, thresholdDays int, today models.Date) bool {
	if thresholdDays <= 0 || t.Status != models.StatusPendingClient || t.DueDate.IsZero() {
		return false
	}
	return t.DueDate.DaysUntil(today) > thresholdDays
}

// LongPending returns the long pending tasks in input order
func LongPending(tasks []TaskWithDetails, thresholdDays int, today models.Date) []TaskWithDetails {
	pending := []TaskWithDetails{}
	if thresholdDays <= 0 {
		return pending
	}
	for _, t := range tasks {
		if IsLongPending(t.Task, thresholdDays, today) {
			pending = append(pending, t)
		}
	}
	return pending
}
