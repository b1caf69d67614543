// Package board derives the kanban, dashboard and Gantt view models from a
// snapshot of tasks, clients and projects. Every function is pure: callers pass
// in an immutable snapshot and get a freshly built result.
package board

import (
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

// Names shown when a task points at a client or project that is not in the snapshot
const (
	UnknownClient  = "Unknown Client"
	UnknownProject = "Unknown Project"
)

// TaskWithDetails is a task with its client and project names resolved
type TaskWithDetails struct {
	models.Task
	ClientName  string `json:"client_name"`
	ProjectName string `json:"project_name"`
}

// Enrich resolves client and project names for every task. It runs over the
// complete task set so totals can be computed independent of any filter.
func Enrich(tasks []models.Task, clients []models.Client, projects []models.Project) []TaskWithDetails {
	clientNames := make(map[string]string, len(clients))
	for _, c := range clients {
		clientNames[c.ID] = c.Name
	}
	projectNames := make(map[string]string, len(projects))
	for _, p := range projects {
		projectNames[p.ID] = p.Name
	}

	enriched := make([]TaskWithDetails, 0, len(tasks))
	for _, t := range tasks {
		clientName, ok := clientNames[t.ClientID]
		if !ok {
			clientName = UnknownClient
		}
		projectName, ok := projectNames[t.ProjectID]
		if !ok {
			projectName = UnknownProject
		}
		enriched = append(enriched, TaskWithDetails{
			Task:        t,
			ClientName:  clientName,
			ProjectName: projectName,
		})
	}
	return enriched
}

// Tasks strips the resolved names again
func Tasks(enriched []TaskWithDetails) []models.Task {
	tasks := make([]models.Task, 0, len(enriched))
	for _, t := range enriched {
		tasks = append(tasks, t.Task)
	}
	return tasks
}
