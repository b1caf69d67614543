// Package tui is the terminal interface: the kanban board and the add task form.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/state"
)

// Options tune the interactive board
type Options struct {
	ReduceMotion bool // no shimmer on the selected card
}

// RunBoard opens the interactive board on a loaded session
func RunBoard(session *state.Session, opts Options) error {
	shimmer := DefaultShimmerConfig()
	shimmer.ReduceMotion = opts.ReduceMotion

	model := NewBoardModel(context.Background(), session, shimmer)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// RunAddTaskTUI starts the interactive add task TUI
func RunAddTaskTUI(session *state.Session, prefilled map[string]string) error {
	model := NewAddTaskModel(context.Background(), session, prefilled)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(AddTaskModel); ok {
		switch {
		case m.cancelled:
			fmt.Println("❌ Task creation cancelled.")
		case m.completed:
			fmt.Printf("✅ New task \"%s\" added - ID: %s\n", m.created.Title, m.created.ID)
		}
	}
	return nil
}
