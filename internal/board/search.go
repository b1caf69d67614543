package board

import (
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

// SearchRecord is the subset of a task shared with the search model
type SearchRecord struct {
	ID             string                `json:"id"`
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	Priority       models.Priority       `json:"priority"`
	Status         models.Status         `json:"status"`
	StartDate      models.Date           `json:"startDate"`
	DueDate        models.Date           `json:"dueDate"`
	Assignee       string                `json:"assignee"`
	EngagementType models.EngagementType `json:"engagementType"`
	ProjectID      string                `json:"projectId"`
}

// Redact reduces tasks to the fields needed for matching
func Redact(tasks []models.Task) []SearchRecord {
	records := make([]SearchRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, SearchRecord{
			ID:             t.ID,
			Title:          t.Title,
			Description:    t.Description,
			Priority:       t.Priority,
			Status:         t.Status,
			StartDate:      t.StartDate,
			DueDate:        t.DueDate,
			Assignee:       t.Assignee.Name,
			EngagementType: t.EngagementType,
			ProjectID:      t.ProjectID,
		})
	}
	return records
}

// MatchIDs keeps the tasks whose id is in ids, preserving the order of tasks.
// Unknown ids are ignored.
func MatchIDs(tasks []TaskWithDetails, ids []string) []TaskWithDetails {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	matched := []TaskWithDetails{}
	for _, t := range tasks {
		if wanted[t.ID] {
			matched = append(matched, t)
		}
	}
	return matched
}
