package board

import (
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

// Stat names a dashboard card
type Stat string

const (
	StatHighPriority Stat = "High Priority"
	StatLongPending  Stat = "Long Pending"
)

// Stats returns the dashboard cards in display order: one per status, then
// high priority and long pending.
func Stats() []Stat {
	stats := make([]Stat, 0, len(models.Statuses())+2)
	for _, s := range models.Statuses() {
		stats = append(stats, Stat(s))
	}
	return append(stats, StatHighPriority, StatLongPending)
}

func (s Stat) IsValid() bool {
	for _, known := range Stats() {
		if s == known {
			return true
		}
	}
	return false
}

// StatCount is one dashboard card
type StatCount struct {
	Stat  Stat `json:"stat"`
	Count int  `json:"count"`
}

// Dashboard summarises every task regardless of the board filter
type Dashboard struct {
	Cards           []StatCount `json:"cards"`
	LongPendingDays int         `json:"long_pending_days"`
}

// Count returns the number on a card, zero for unknown stats
func (d Dashboard) Count(s Stat) int {
	for _, c := range d.Cards {
		if c.Stat == s {
			return c.Count
		}
	}
	return 0
}

// BuildDashboard counts tasks per card
func BuildDashboard(tasks []TaskWithDetails, longPendingDays int, today models.Date) Dashboard {
	cards := make([]StatCount, 0, len(Stats()))
	for _, s := range Stats() {
		cards = append(cards, StatCount{
			Stat:  s,
			Count: len(FilterByStat(tasks, s, longPendingDays, today)),
		})
	}
	return Dashboard{Cards: cards, LongPendingDays: longPendingDays}
}

// FilterByStat returns the tasks behind a dashboard card, in input order
func FilterByStat(tasks []TaskWithDetails, stat Stat, longPendingDays int, today models.Date) []TaskWithDetails {
	switch stat {
	case StatHighPriority:
		matched := []TaskWithDetails{}
		for _, t := range tasks {
			if t.Priority == models.PriorityHigh || t.Priority == models.PriorityUrgent {
				matched = append(matched, t)
			}
		}
		return matched
	case StatLongPending:
		return LongPending(tasks, longPendingDays, today)
	default:
		matched := []TaskWithDetails{}
		for _, t := range tasks {
			if Stat(t.Status) == stat {
				matched = append(matched, t)
			}
		}
		return matched
	}
}
