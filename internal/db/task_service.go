package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

// CreateTask stores a new task and returns the stored version
func (s *Store) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	if strings.TrimSpace(task.Title) == "" {
		return models.Task{}, fmt.Errorf("task title is required")
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}

	if err := s.db.WithContext(ctx).Create(&task).Error; err != nil {
		return models.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return s.GetTask(ctx, task.ID)
}

// UpdateTask replaces a task wholesale and returns the stored version
func (s *Store) UpdateTask(ctx context.Context, task models.Task) (models.Task, error) {
	existing, err := s.GetTask(ctx, task.ID)
	if err != nil {
		return models.Task{}, err
	}

	task.CreatedAt = existing.CreatedAt
	if err := s.db.WithContext(ctx).Save(&task).Error; err != nil {
		return models.Task{}, fmt.Errorf("failed to update task %s: %w", task.ID, err)
	}
	return s.GetTask(ctx, task.ID)
}

// GetTask retrieves a single task by id
func (s *Store) GetTask(ctx context.Context, id string) (models.Task, error) {
	var task models.Task
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Task{}, TaskNotFoundError{ID: id}
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to load task %s: %w", id, err)
	}
	return task, nil
}

// ListTasks returns every task, newest first
func (s *Store) ListTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Snapshot loads every entity the board is computed from
func (s *Store) Snapshot(ctx context.Context) (models.Snapshot, error) {
	var snap models.Snapshot

	tasks, err := s.ListTasks(ctx)
	if err != nil {
		return snap, err
	}
	snap.Tasks = tasks

	if snap.Clients, err = s.ListClients(ctx); err != nil {
		return snap, err
	}
	if snap.Projects, err = s.ListProjects(ctx); err != nil {
		return snap, err
	}
	if snap.Assignees, err = s.ListAssignees(ctx); err != nil {
		return snap, err
	}
	return snap, nil
}
