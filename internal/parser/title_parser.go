package parser

import (
	"regexp"
	"strings"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

var (
	engagementRegex = regexp.MustCompile(`#([a-zA-Z]+)`)
	projectRegex    = regexp.MustCompile(`@([a-zA-Z0-9_-]+)`)
	priorityRegex   = regexp.MustCompile(`\+([a-zA-Z0-9]+)`)
	dueRegex        = regexp.MustCompile(`due:([^\s]+)`)
	startRegex      = regexp.MustCompile(`start:([^\s]+)`)
	afterRegex      = regexp.MustCompile(`after:([^\s]+)`)
)

// ParsedTask represents a task parsed from quick-add text
type ParsedTask struct {
	Title          string
	Project        string // project name or id, resolved by the caller
	Priority       models.Priority
	EngagementType models.EngagementType
	StartDate      models.Date
	DueDate        models.Date
	DependsOn      string
	Errors         []string
}

// ParseTitle extracts metadata from a task title using natural syntax
// Syntax: "VAT return #tax @acme-vat +urgent start:today due:+5d after:<task-id>"
func ParseTitle(input string, today models.Date) ParsedTask {
	result := ParsedTask{
		Title:  input,
		Errors: []string{},
	}

	// Extract dates (due:+5d, start:07/10/2025, etc.)
	if m := dueRegex.FindStringSubmatch(input); len(m) > 1 {
		if d, err := ParseDate(m[1], today); err == nil {
			result.DueDate = d
		} else {
			result.Errors = append(result.Errors, "Invalid due date '"+m[1]+"': "+err.Error())
		}
		input = dueRegex.ReplaceAllString(input, "")
	}
	if m := startRegex.FindStringSubmatch(input); len(m) > 1 {
		if d, err := ParseDate(m[1], today); err == nil {
			result.StartDate = d
		} else {
			result.Errors = append(result.Errors, "Invalid start date '"+m[1]+"': "+err.Error())
		}
		input = startRegex.ReplaceAllString(input, "")
	}

	// Extract prerequisite task (after:<task-id>)
	if m := afterRegex.FindStringSubmatch(input); len(m) > 1 {
		result.DependsOn = m[1]
		input = afterRegex.ReplaceAllString(input, "")
	}

	// Extract engagement type (#tax, #audit, ...)
	if m := engagementRegex.FindStringSubmatch(input); len(m) > 1 {
		if e, err := ParseEngagementType(m[1]); err == nil {
			result.EngagementType = e
		} else {
			result.Errors = append(result.Errors, err.Error())
		}
		input = engagementRegex.ReplaceAllString(input, "")
	}

	// Extract project (@project-name)
	if m := projectRegex.FindStringSubmatch(input); len(m) > 1 {
		result.Project = m[1]
		input = projectRegex.ReplaceAllString(input, "")
	}

	// Extract priority (+high, +4, +urgent, etc.)
	if m := priorityRegex.FindStringSubmatch(input); len(m) > 1 {
		if p, err := ParsePriority(m[1]); err == nil {
			result.Priority = p
		} else {
			result.Errors = append(result.Errors, err.Error())
		}
		input = priorityRegex.ReplaceAllString(input, "")
	}

	// Clean up the title (remove extra spaces)
	result.Title = strings.Join(strings.Fields(input), " ")

	return result
}
