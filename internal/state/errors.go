package state

import (
	"errors"
	"fmt"
)

// ErrAssistantDisabled is returned when no AI assistant is configured
var ErrAssistantDisabled = errors.New("AI assistant is not configured")

// TaskNotFoundError indicates the task is not in the loaded snapshot
type TaskNotFoundError struct {
	ID string
}

func (e TaskNotFoundError) Error() string {
	return fmt.Sprintf("task not found: %s", e.ID)
}

// SubtaskNotFoundError indicates the subtask is not on the task
type SubtaskNotFoundError struct {
	TaskID    string
	SubtaskID string
}

func (e SubtaskNotFoundError) Error() string {
	return fmt.Sprintf("subtask %s not found on task %s", e.SubtaskID, e.TaskID)
}

// BlockedError indicates the task is waiting on an unfinished prerequisite
type BlockedError struct {
	ID                string
	PrerequisiteTitle string
}

func (e BlockedError) Error() string {
	return fmt.Sprintf("task %s is blocked by %q", e.ID, e.PrerequisiteTitle)
}

// ValidationError indicates invalid task input
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}
