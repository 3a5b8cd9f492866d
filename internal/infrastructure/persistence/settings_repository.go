package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/myorder/backend/internal/domain/identity"
	"github.com/myorder/backend/internal/domain/shared"
	"github.com/myorder/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormUserSettingsRepository implements UserSettingsRepository using GORM
type GormUserSettingsRepository struct {
	db *gorm.DB
}

// NewGormUserSettingsRepository creates a new GormUserSettingsRepository
func NewGormUserSettingsRepository(db *gorm.DB) *GormUserSettingsRepository {
	return &GormUserSettingsRepository{db: db}
}

// FindByUserID finds the settings row for a user
func (r *GormUserSettingsRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*identity.UserSettings, error) {
	var model models.UserSettingsModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates the settings row for a user
func (r *GormUserSettingsRepository) Save(ctx context.Context, settings *identity.UserSettings) error {
	var model models.UserSettingsModel
	model.FromDomain(settings)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete removes the settings row for a user
func (r *GormUserSettingsRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.UserSettingsModel{}, "user_id = ?", userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormUserSettingsRepository implements UserSettingsRepository
var _ identity.UserSettingsRepository = (*GormUserSettingsRepository)(nil)
