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

// CreateClient adds a client
func (s *Store) CreateClient(ctx context.Context, name string) (models.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Client{}, fmt.Errorf("client name is required")
	}

	client := models.Client{ID: uuid.NewString(), Name: name}
	if err := s.db.WithContext(ctx).Create(&client).Error; err != nil {
		return models.Client{}, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}

// ListClients returns all clients ordered by name
func (s *Store) ListClients(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := s.db.WithContext(ctx).Order("name").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// CreateProject adds a project under an existing client
func (s *Store) CreateProject(ctx context.Context, name, clientID string) (models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Project{}, fmt.Errorf("project name is required")
	}

	var client models.Client
	err := s.db.WithContext(ctx).Where("id = ?", clientID).First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Project{}, ClientNotFoundError{ID: clientID}
	}
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to load client %s: %w", clientID, err)
	}

	project := models.Project{ID: uuid.NewString(), Name: name, ClientID: client.ID}
	if err := s.db.WithContext(ctx).Create(&project).Error; err != nil {
		return models.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// ListProjects returns all projects ordered by name
func (s *Store) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.WithContext(ctx).Order("name").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// SaveAssignee adds an assignee or updates their avatar
func (s *Store) SaveAssignee(ctx context.Context, a models.Assignee) (models.Assignee, error) {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return models.Assignee{}, fmt.Errorf("assignee name is required")
	}
	if err := s.db.WithContext(ctx).Save(&a).Error; err != nil {
		return models.Assignee{}, fmt.Errorf("failed to save assignee: %w", err)
	}
	return a, nil
}

// ListAssignees returns all assignees ordered by name
func (s *Store) ListAssignees(ctx context.Context) ([]models.Assignee, error) {
	var assignees []models.Assignee
	if err := s.db.WithContext(ctx).Order("name").Find(&assignees).Error; err != nil {
		return nil, fmt.Errorf("failed to list assignees: %w", err)
	}
	return assignees, nil
}
