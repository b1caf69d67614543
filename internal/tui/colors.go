package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/board"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

// Color constants for the sratask TUI theme
const (
	// Base Colors
	ColorCardBackground = "#1B1530" // Dark purple
	ColorBorder         = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2"
	ColorSecondaryText = "#B1B8C7"
	ColorDisabledText  = "#6D7383"
	ColorPlaceholder   = "#B1B8C7"
	ColorHelpText      = "240"

	// Accent Colors (Purple theme)
	ColorAccentMain   = "#7C3AED" // Logo, active borders
	ColorAccentBright = "#A78BFA" // Selection, current field

	// State Colors
	ColorError   = "#EF4444" // Validation errors, overdue
	ColorSuccess = "#22C55E" // Done, confirmations
	ColorWarning = "#F59E0B" // Due soon, rollbacks

	// Status lanes
	ColorStatusToDo          = "#60A5FA"
	ColorStatusInProgress    = "#FACC15"
	ColorStatusInReview      = "#C084FC"
	ColorStatusPendingClient = "#FB923C"
	ColorStatusDone          = ColorSuccess
)

// StatusColor is the lane colour of a status
func StatusColor(s models.Status) lipgloss.Color {
	switch s {
	case models.StatusToDo:
		return lipgloss.Color(ColorStatusToDo)
	case models.StatusInProgress:
		return lipgloss.Color(ColorStatusInProgress)
	case models.StatusInReview:
		return lipgloss.Color(ColorStatusInReview)
	case models.StatusPendingClient:
		return lipgloss.Color(ColorStatusPendingClient)
	case models.StatusDone:
		return lipgloss.Color(ColorStatusDone)
	}
	return lipgloss.Color(ColorSecondaryText)
}

// UrgencyColor colours a due date
func UrgencyColor(u board.Urgency) lipgloss.Color {
	switch u {
	case board.UrgencyOverdue:
		return lipgloss.Color(ColorError)
	case board.UrgencyDueSoon:
		return lipgloss.Color(ColorWarning)
	}
	return lipgloss.Color(ColorSecondaryText)
}

// PriorityColor colours the priority badge of a card
func PriorityColor(p models.Priority) lipgloss.Color {
	switch p {
	case models.PriorityUrgent:
		return lipgloss.Color(ColorError)
	case models.PriorityHigh:
		return lipgloss.Color(ColorWarning)
	case models.PriorityLow:
		return lipgloss.Color(ColorDisabledText)
	}
	return lipgloss.Color(ColorSecondaryText)
}
