package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/board"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/parser"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/state"
)

// printJSON writes v as indented JSON
func printJSON(v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}

// truncate shortens s to width runes, marking the cut with "..."
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

// renderTaskTable prints tasks in fixed columns for 100-character terminals
func renderTaskTable(tasks []board.TaskWithDetails, all []models.Task, today models.Date) {
	// ID(8) TITLE(32) CLIENT(14) PRIORITY(8) STATUS(14) DUE(9) ASSIGNEE
	fmt.Printf("%-8s %-32s %-14s %-8s %-14s %-9s %s\n", "ID", "TITLE", "CLIENT", "PRIORITY", "STATUS", "DUE", "ASSIGNEE")
	fmt.Println(strings.Repeat("-", 100))

	for _, t := range tasks {
		title := t.Title
		if board.ResolveDependency(t.Task, all).Blocked() {
			title = "[blocked] " + title
		}
		fmt.Printf("%-8s %-32s %-14s %-8s %-14s %-9s %s\n",
			shortID(t.ID),
			truncate(title, 32),
			truncate(t.ClientName, 14),
			t.Priority,
			t.Status,
			parser.ShortDue(t.DueDate, today),
			t.Assignee.Name)
	}
}

// urgencyMarker flags due dates on plain-text output
func urgencyMarker(due, today models.Date) string {
	switch board.DueDateUrgency(due, today) {
	case board.UrgencyOverdue:
		return "!!"
	case board.UrgencyDueSoon:
		return "! "
	default:
		return "  "
	}
}

// printTaskDetails prints every field of one task
func printTaskDetails(t board.TaskWithDetails, dep board.Dependency, today models.Date) {
	fmt.Printf("Task %s: %s\n", t.ID, t.Title)
	fmt.Printf("  Client:     %s\n", t.ClientName)
	fmt.Printf("  Project:    %s\n", t.ProjectName)
	fmt.Printf("  Status:     %s\n", t.Status)
	fmt.Printf("  Priority:   %s\n", t.Priority)
	if t.EngagementType != "" {
		fmt.Printf("  Engagement: %s\n", t.EngagementType)
	}
	if t.Assignee.Name != "" {
		fmt.Printf("  Assignee:   %s\n", t.Assignee.Name)
	}
	if !t.StartDate.IsZero() {
		fmt.Printf("  Start:      %s\n", t.StartDate.Format("02/01/2006"))
	}
	if !t.DueDate.IsZero() {
		fmt.Printf("  Due:        %s\n", parser.FormatDueDate(t.DueDate, today))
	}
	switch dep.State {
	case board.DependencyBlocked:
		fmt.Printf("  Blocked by: %s (%s)\n", dep.PrerequisiteTitle, shortID(dep.PrerequisiteID))
	case board.DependencySatisfied:
		fmt.Printf("  Depends on: %s (done)\n", dep.PrerequisiteTitle)
	}
	if t.Description != "" {
		fmt.Printf("\n  %s\n", t.Description)
	}

	if len(t.Subtasks) > 0 {
		done, total := t.SubtaskProgress()
		fmt.Printf("\n  Subtasks (%d/%d):\n", done, total)
		for _, st := range t.Subtasks {
			check := "[ ]"
			if st.Completed {
				check = "[x]"
			}
			fmt.Printf("    %s %s  (%s)\n", check, st.Text, shortID(st.ID))
		}
	}

	if f := t.Financials; f != nil {
		fmt.Printf("\n  Fee: %.2f  Received: %.2f  Balance: %.2f\n", f.TotalFee, f.AmountReceived, f.BalanceDue())
	}

	if len(t.Comments) > 0 {
		fmt.Printf("\n  Comments:\n")
		for _, c := range t.Comments {
			fmt.Printf("    %s, %s: %s\n", c.User.Name, c.CreatedAt.Format("02/01 15:04"), c.Text)
		}
	}
}

// reportUpdate prints the outcome of an optimistic update
func reportUpdate(res state.UpdateResult, success string) error {
	if res.Err != nil {
		return res.Err
	}
	fmt.Println(success)
	return nil
}
