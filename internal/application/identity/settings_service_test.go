package identity

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/myorder/backend/internal/domain/identity"
	"github.com/myorder/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserSettingsRepository is a mock implementation of UserSettingsRepository
type MockUserSettingsRepository struct {
	mock.Mock
}

func (m *MockUserSettingsRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*identity.UserSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.UserSettings), args.Error(1)
}

func (m *MockUserSettingsRepository) Save(ctx context.Context, settings *identity.UserSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *MockUserSettingsRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestSettingsService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns defaults without persisting when no row exists", func(t *testing.T) {
		settingsRepo := new(MockUserSettingsRepository)
		userRepo := new(MockUserRepository)
		service := NewSettingsService(settingsRepo, userRepo)

		userID := uuid.New()
		settingsRepo.On("FindByUserID", ctx, userID).Return(nil, shared.ErrNotFound)

		resp, err := service.Get(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, "ja", resp.Language)
		assert.Equal(t, "Asia/Tokyo", resp.Timezone)
		assert.Equal(t, "YYYY/MM/DD", resp.DateFormat)
		assert.True(t, resp.EmailNotifications)
		assert.True(t, resp.PushNotifications)
		settingsRepo.AssertNotCalled(t, "Save")
	})

	t.Run("system payload marshals to exactly the five camelCase keys", func(t *testing.T) {
		settingsRepo := new(MockUserSettingsRepository)
		userRepo := new(MockUserRepository)
		service := NewSettingsService(settingsRepo, userRepo)

		userID := uuid.New()
		settingsRepo.On("FindByUserID", ctx, userID).Return(nil, shared.ErrNotFound)

		resp, err := service.Get(ctx, userID)
		require.NoError(t, err)

		raw, err := json.Marshal(resp)
		require.NoError(t, err)

		var keys map[string]any
		require.NoError(t, json.Unmarshal(raw, &keys))
		assert.Equal(t, map[string]any{
			"language":           "ja",
			"timezone":           "Asia/Tokyo",
			"dateFormat":         "YYYY/MM/DD",
			"emailNotifications": true,
			"pushNotifications":  true,
		}, keys)
	})

	t.Run("returns stored values when a row exists", func(t *testing.T) {
		settingsRepo := new(MockUserSettingsRepository)
		userRepo := new(MockUserRepository)
		service := NewSettingsService(settingsRepo, userRepo)

		userID := uuid.New()
		stored, err := identity.NewUserSettings(userID)
		require.NoError(t, err)
		require.NoError(t, stored.UpdateSystem("en", "UTC", "DD/MM/YYYY", false, true))

		settingsRepo.On("FindByUserID", ctx, userID).Return(stored, nil)

		resp, err := service.Get(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, "en", resp.Language)
		assert.Equal(t, "UTC", resp.Timezone)
	})
}

func TestSettingsService_UpdateSecurity(t *testing.T) {
	ctx := context.Background()

	t.Run("creates row on first write", func(t *testing.T) {
		settingsRepo := new(MockUserSettingsRepository)
		userRepo := new(MockUserRepository)
		service := NewSettingsService(settingsRepo, userRepo)

		userID := uuid.New()
		settingsRepo.On("FindByUserID", ctx, userID).Return(nil, shared.ErrNotFound)
		settingsRepo.On("Save", ctx, mock.AnythingOfType("*identity.UserSettings")).Return(nil)

		resp, err := service.UpdateSecurity(ctx, userID, SecuritySettingsRequest{
			TwoFactorEnabled: true,
			SessionTimeout:   60,
		})

		require.NoError(t, err)
		assert.True(t, resp.TwoFactorEnabled)
		assert.Equal(t, 60, resp.SessionTimeout)
		settingsRepo.AssertExpectations(t)
	})

	t.Run("rejects timeout outside bounds", func(t *testing.T) {
		settingsRepo := new(MockUserSettingsRepository)
		userRepo := new(MockUserRepository)
		service := NewSettingsService(settingsRepo, userRepo)

		userID := uuid.New()
		settingsRepo.On("FindByUserID", ctx, userID).Return(nil, shared.ErrNotFound)

		for _, timeout := range []int{4, 121, 0, -5} {
			_, err := service.UpdateSecurity(ctx, userID, SecuritySettingsRequest{SessionTimeout: timeout})
			assert.Error(t, err, "timeout %d should be rejected", timeout)
		}
		settingsRepo.AssertNotCalled(t, "Save")
	})
}

func TestSettingsService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates the stored hash", func(t *testing.T) {
		settingsRepo := new(MockUserSettingsRepository)
		userRepo := new(MockUserRepository)
		service := NewSettingsService(settingsRepo, userRepo)

		user, err := identity.NewUser("alice", "alice@example.com", "password123")
		require.NoError(t, err)
		originalHash := user.PasswordHash

		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
		userRepo.On("Save", ctx, user).Return(nil)

		err = service.ChangePassword(ctx, user.ID, ChangePasswordRequest{
			CurrentPassword: "password123",
			NewPassword:     "new-password-456",
		})

		require.NoError(t, err)
		assert.NotEqual(t, originalHash, user.PasswordHash)
		assert.True(t, user.VerifyPassword("new-password-456"))
	})

	t.Run("keeps hash when current password is wrong", func(t *testing.T) {
		settingsRepo := new(MockUserSettingsRepository)
		userRepo := new(MockUserRepository)
		service := NewSettingsService(settingsRepo, userRepo)

		user, err := identity.NewUser("alice", "alice@example.com", "password123")
		require.NoError(t, err)
		originalHash := user.PasswordHash

		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		err = service.ChangePassword(ctx, user.ID, ChangePasswordRequest{
			CurrentPassword: "wrong",
			NewPassword:     "new-password-456",
		})

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, originalHash, user.PasswordHash)
		userRepo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects short new password", func(t *testing.T) {
		settingsRepo := new(MockUserSettingsRepository)
		userRepo := new(MockUserRepository)
		service := NewSettingsService(settingsRepo, userRepo)

		user, err := identity.NewUser("alice", "alice@example.com", "password123")
		require.NoError(t, err)

		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		err = service.ChangePassword(ctx, user.ID, ChangePasswordRequest{
			CurrentPassword: "password123",
			NewPassword:     "short",
		})

		assert.Error(t, err)
		userRepo.AssertNotCalled(t, "Save")
	})
}
