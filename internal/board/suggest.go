package board

import (
	"strings"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

// MergeSubtasks appends suggested subtasks whose text does not already exist on
// the task. Matching is exact and case-sensitive. newID supplies ids for the
// appended subtasks.
func MergeSubtasks(existing []models.Subtask, suggestions []string, newID func() string) []models.Subtask {
	merged := make([]models.Subtask, 0, len(existing)+len(suggestions))
	merged = append(merged, existing...)

	seen := make(map[string]bool, len(existing))
	for _, s := range existing {
		seen[s.Text] = true
	}
	for _, text := range suggestions {
		if strings.TrimSpace(text) == "" || seen[text] {
			continue
		}
		merged = append(merged, models.Subtask{ID: newID(), Text: text})
	}
	return merged
}
