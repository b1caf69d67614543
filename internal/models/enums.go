package models

// Priority is how urgent a task is
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

// Priorities returns all priorities from least to most urgent
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// Rank orders priorities most urgent first: Urgent=1, High=2, Medium=3, Low=4.
// Unknown values rank after Low.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 1
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 3
	case PriorityLow:
		return 4
	default:
		return 5
	}
}

func (p Priority) IsValid() bool {
	return p.Rank() <= 4
}

// Status is the board column a task sits in
type Status string

const (
	StatusToDo          Status = "To Do"
	StatusInProgress    Status = "In Progress"
	StatusInReview      Status = "In Review"
	StatusPendingClient Status = "Pending Client"
	StatusDone          Status = "Done"
)

// Statuses returns the statuses in board display order
func Statuses() []Status {
	return []Status{StatusToDo, StatusInProgress, StatusInReview, StatusPendingClient, StatusDone}
}

func (s Status) IsValid() bool {
	for _, known := range Statuses() {
		if s == known {
			return true
		}
	}
	return false
}

// EngagementType is the category of accounting work a task belongs to
type EngagementType string

const (
	EngagementAudit       EngagementType = "Audit"
	EngagementTax         EngagementType = "Tax"
	EngagementAdvisory    EngagementType = "Advisory"
	EngagementBookkeeping EngagementType = "Bookkeeping"
)

func EngagementTypes() []EngagementType {
	return []EngagementType{EngagementAudit, EngagementTax, EngagementAdvisory, EngagementBookkeeping}
}

func (e EngagementType) IsValid() bool {
	for _, known := range EngagementTypes() {
		if e == known {
			return true
		}
	}
	return false
}
