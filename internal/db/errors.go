package db

import "fmt"

// TaskNotFoundError indicates no task has the given id
type TaskNotFoundError struct {
	ID string
}

func (e TaskNotFoundError) Error() string {
	return fmt.Sprintf("task not found: %s", e.ID)
}

// ClientNotFoundError indicates no client has the given id
type ClientNotFoundError struct {
	ID string
}

func (e ClientNotFoundError) Error() string {
	return fmt.Sprintf("client not found: %s", e.ID)
}

// ReadOnlyQueryError indicates a raw query tried to do more than read
type ReadOnlyQueryError struct {
	Query string
}

func (e ReadOnlyQueryError) Error() string {
	return fmt.Sprintf("only single SELECT or WITH queries can be run: %q", e.Query)
}
