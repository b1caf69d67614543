package board

import (
	"fmt"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

// DependencyState describes what a task's prerequisite means for it right now
type DependencyState string

const (
	DependencyNone      DependencyState = "none"
	DependencyBlocked   DependencyState = "blocked"
	DependencySatisfied DependencyState = "satisfied"
)

// Dependency is the resolved prerequisite of a task
type Dependency struct {
	State             DependencyState `json:"state"`
	PrerequisiteID    string          `json:"prerequisite_id,omitempty"`
	PrerequisiteTitle string          `json:"prerequisite_title,omitempty"`
}

// Blocked reports whether the task must wait for its prerequisite
func (d Dependency) Blocked() bool {
	return d.State == DependencyBlocked
}

// ResolveDependency looks up the task's prerequisite. A missing prerequisite
// resolves to none, it never blocks.
func ResolveDependency(t models.Task, all []models.Task) Dependency {
	if t.DependsOn == "" {
		return Dependency{State: DependencyNone}
	}
	for _, p := range all {
		if p.ID != t.DependsOn {
			continue
		}
		state := DependencyBlocked
		if p.Status == models.StatusDone {
			state = DependencySatisfied
		}
		return Dependency{State: state, PrerequisiteID: p.ID, PrerequisiteTitle: p.Title}
	}
	return Dependency{State: DependencyNone}
}

// DependencyCandidates lists the tasks t may depend on: same project, not t
// itself and not a task that already depends on t.
func DependencyCandidates(t models.Task, all []models.Task) []models.Task {
	candidates := []models.Task{}
	for _, p := range all {
		if p.ID == t.ID || p.ProjectID != t.ProjectID {
			continue
		}
		if t.ID != "" && p.DependsOn == t.ID {
			continue
		}
		candidates = append(candidates, p)
	}
	return candidates
}

// WouldCreateCycle reports whether making taskID depend on dependsOn closes a
// loop. It follows the prerequisite chain from dependsOn looking for taskID.
func WouldCreateCycle(all []models.Task, taskID, dependsOn string) bool {
	next := make(map[string]string, len(all))
	for _, t := range all {
		next[t.ID] = t.DependsOn
	}

	visited := make(map[string]bool)
	current := dependsOn
	for current != "" {
		if current == taskID {
			return true
		}
		if visited[current] {
			// Existing loop that does not pass through taskID
			return false
		}
		visited[current] = true
		current = next[current]
	}
	return false
}

// ValidateDependency checks t.DependsOn against the rest of the snapshot.
// An empty DependsOn is always valid.
func ValidateDependency(t models.Task, all []models.Task) error {
	if t.DependsOn == "" {
		return nil
	}
	if t.DependsOn == t.ID {
		return SelfDependencyError{ID: t.ID}
	}

	var prerequisite *models.Task
	for i := range all {
		if all[i].ID == t.DependsOn {
			prerequisite = &all[i]
			break
		}
	}
	if prerequisite == nil {
		return PrerequisiteNotFoundError{ID: t.DependsOn}
	}
	if prerequisite.ProjectID != t.ProjectID {
		return CrossProjectDependencyError{ID: t.ID, DependsOn: t.DependsOn}
	}
	if t.ID != "" && WouldCreateCycle(all, t.ID, t.DependsOn) {
		return DependencyCycleError{ID: t.ID, DependsOn: t.DependsOn}
	}
	return nil
}

// SelfDependencyError indicates a task was pointed at itself
type SelfDependencyError struct {
	ID string
}

func (e SelfDependencyError) Error() string {
	return fmt.Sprintf("task %s cannot depend on itself", e.ID)
}

// PrerequisiteNotFoundError indicates the prerequisite id is not in the snapshot
type PrerequisiteNotFoundError struct {
	ID string
}

func (e PrerequisiteNotFoundError) Error() string {
	return fmt.Sprintf("prerequisite task not found: %s", e.ID)
}

// CrossProjectDependencyError indicates the prerequisite belongs to another project
type CrossProjectDependencyError struct {
	ID        string
	DependsOn string
}

func (e CrossProjectDependencyError) Error() string {
	return fmt.Sprintf("task %s can only depend on tasks in the same project, %s is not", e.ID, e.DependsOn)
}

// DependencyCycleError indicates the dependency would make tasks wait on each other
type DependencyCycleError struct {
	ID        string
	DependsOn string
}

func (e DependencyCycleError) Error() string {
	return fmt.Sprintf("making %s depend on %s would create a cycle", e.ID, e.DependsOn)
}
