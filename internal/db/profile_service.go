package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

// profileID is the single settings row
const profileID = 1

// GetProfile returns the stored settings, or defaults when none were saved yet
func (s *Store) GetProfile(ctx context.Context) (models.Profile, error) {
	var p models.Profile
	err := s.db.WithContext(ctx).First(&p, profileID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Profile{ID: profileID, LongPendingDays: models.DefaultLongPendingDays}, nil
	}
	if err != nil {
		return models.Profile{}, fmt.Errorf("failed to load profile: %w", err)
	}
	return p, nil
}

// SetLongPendingDays stores the long pending threshold. Zero disables the check.
func (s *Store) SetLongPendingDays(ctx context.Context, days int) (models.Profile, error) {
	if days < 0 {
		return models.Profile{}, fmt.Errorf("long pending days cannot be negative, got %d", days)
	}

	p := models.Profile{ID: profileID, LongPendingDays: days}
	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return models.Profile{}, fmt.Errorf("failed to save profile: %w", err)
	}
	return p, nil
}
