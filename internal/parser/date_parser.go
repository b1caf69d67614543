package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

var (
	slashDateRegex = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	relativeRegex  = regexp.MustCompile(`^\+?(\d+)\s*(d|day|days|w|week|weeks)$`)
)

// ParseDate parses the date formats accepted on the command line and in quick-add text.
// Supported formats:
// - yyyy-mm-dd (e.g., "2025-10-07")
// - dd/mm/yyyy (e.g., "07/10/2025")
// - today, tomorrow, yesterday
// - X days / X weeks (e.g., "3 days", "+5d", "2w")
func ParseDate(input string, today models.Date) (models.Date, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return models.Date{}, nil
	}

	switch input {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	case "yesterday":
		return today.AddDays(-1), nil
	}

	if d, err := models.ParseDate(input); err == nil {
		return d, nil
	}

	// Try dd/mm/yyyy format next
	if d, err := parseSlashDate(input); err == nil {
		return d, nil
	}

	// Try relative formats
	if d, err := parseRelativeDate(input, today); err == nil {
		return d, nil
	}

	return models.Date{}, fmt.Errorf("invalid date format. Use: yyyy-mm-dd, dd/mm/yyyy, today, tomorrow, X days or X weeks")
}

// parseSlashDate parses dd/mm/yyyy format
func parseSlashDate(input string) (models.Date, error) {
	matches := slashDateRegex.FindStringSubmatch(input)
	if len(matches) != 4 {
		return models.Date{}, fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if month < 1 || month > 12 {
		return models.Date{}, fmt.Errorf("month must be between 1 and 12")
	}
	if day < 1 || day > 31 {
		return models.Date{}, fmt.Errorf("day must be between 1 and 31")
	}

	d := models.NewDate(year, time.Month(month), day)

	// Check the date exists (handles leap years, 31/04, etc.)
	if t := d.Time(); t.Day() != day || t.Month() != time.Month(month) {
		return models.Date{}, fmt.Errorf("invalid date")
	}
	return d, nil
}

// parseRelativeDate parses "3 days", "+5d", "2 weeks" relative to today
func parseRelativeDate(input string, today models.Date) (models.Date, error) {
	matches := relativeRegex.FindStringSubmatch(input)
	if len(matches) != 3 {
		return models.Date{}, fmt.Errorf("invalid relative date format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return models.Date{}, fmt.Errorf("invalid number")
	}

	switch matches[2] {
	case "d", "day", "days":
		if amount > 365 {
			return models.Date{}, fmt.Errorf("days must be between 0 and 365")
		}
		return today.AddDays(amount), nil
	case "w", "week", "weeks":
		if amount > 52 {
			return models.Date{}, fmt.Errorf("weeks must be between 0 and 52")
		}
		return today.AddDays(amount * 7), nil
	default:
		return models.Date{}, fmt.Errorf("unsupported time unit")
	}
}

// FormatDueDate formats a due date for display relative to today
func FormatDueDate(due, today models.Date) string {
	if due.IsZero() {
		return ""
	}

	daysDiff := today.DaysUntil(due)

	// Always show the actual date to avoid confusion
	dateStr := due.Format("02/01/2006")

	switch {
	case daysDiff < 0:
		return fmt.Sprintf("⚠️ OVERDUE (%s)", dateStr)
	case daysDiff == 0:
		return fmt.Sprintf("🔥 Due today (%s)", dateStr)
	case daysDiff == 1:
		return fmt.Sprintf("📅 Due tomorrow (%s)", dateStr)
	case daysDiff <= 7:
		return fmt.Sprintf("📅 Due %s (in %d days)", dateStr, daysDiff)
	default:
		return fmt.Sprintf("📅 Due %s", dateStr)
	}
}

// ShortDue is the compact due label used in tables: OVERDUE, TODAY, TOMORROW, 5d or 07/10
func ShortDue(due, today models.Date) string {
	if due.IsZero() {
		return "-"
	}
	days := today.DaysUntil(due)
	switch {
	case days < 0:
		return "OVERDUE"
	case days == 0:
		return "TODAY"
	case days == 1:
		return "TOMORROW"
	case days <= 7:
		return fmt.Sprintf("%dd", days)
	default:
		return due.Format("02/01")
	}
}
