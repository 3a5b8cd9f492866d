package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/myorder/backend/internal/domain/identity"
	"github.com/myorder/backend/internal/domain/shared"
)

// SettingsService handles per-user preference management. Settings rows are
// created lazily: reads for users without a row return defaults without
// persisting anything.
type SettingsService struct {
	settingsRepo identity.UserSettingsRepository
	userRepo     identity.UserRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(settingsRepo identity.UserSettingsRepository, userRepo identity.UserRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		userRepo:     userRepo,
	}
}

// Get returns the user's settings, synthesizing defaults when no row exists
func (s *SettingsService) Get(ctx context.Context, userID uuid.UUID) (*SystemSettingsResponse, error) {
	settings, err := s.loadOrDefault(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := ToSystemSettingsResponse(settings)
	return &response, nil
}

// UpdateSystem updates display and notification preferences, creating the
// settings row on first write
func (s *SettingsService) UpdateSystem(ctx context.Context, userID uuid.UUID, req SystemSettingsRequest) (*SystemSettingsResponse, error) {
	settings, err := s.loadOrDefault(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := settings.UpdateSystem(req.Language, req.Timezone, req.DateFormat,
		req.EmailNotifications, req.PushNotifications); err != nil {
		return nil, err
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}

	response := ToSystemSettingsResponse(settings)
	return &response, nil
}

// UpdateSecurity updates security preferences, creating the settings row on
// first write
func (s *SettingsService) UpdateSecurity(ctx context.Context, userID uuid.UUID, req SecuritySettingsRequest) (*SecuritySettingsResponse, error) {
	settings, err := s.loadOrDefault(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := settings.UpdateSecurity(req.TwoFactorEnabled, req.SessionTimeout); err != nil {
		return nil, err
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}

	response := ToSecuritySettingsResponse(settings)
	return &response, nil
}

// ChangePassword verifies the current password and stores a new hash. The
// stored hash is untouched when verification or validation fails.
func (s *SettingsService) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := user.ChangePassword(req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}

	return s.userRepo.Save(ctx, user)
}

func (s *SettingsService) loadOrDefault(ctx context.Context, userID uuid.UUID) (*identity.UserSettings, error) {
	settings, err := s.settingsRepo.FindByUserID(ctx, userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	return identity.NewUserSettings(userID)
}
