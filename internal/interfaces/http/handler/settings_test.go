package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	identityapp "github.com/myorder/backend/internal/application/identity"
	"github.com/myorder/backend/internal/domain/identity"
	"github.com/myorder/backend/internal/domain/shared"
	"github.com/myorder/backend/internal/interfaces/http/dto"
	"github.com/myorder/backend/internal/interfaces/http/middleware"
)

type stubSettingsRepository struct {
	settings map[uuid.UUID]*identity.UserSettings
}

func newStubSettingsRepository() *stubSettingsRepository {
	return &stubSettingsRepository{settings: make(map[uuid.UUID]*identity.UserSettings)}
}

func (s *stubSettingsRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*identity.UserSettings, error) {
	if settings, ok := s.settings[userID]; ok {
		return settings, nil
	}
	return nil, shared.ErrNotFound
}

func (s *stubSettingsRepository) Save(ctx context.Context, settings *identity.UserSettings) error {
	s.settings[settings.UserID] = settings
	return nil
}

func (s *stubSettingsRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	delete(s.settings, userID)
	return nil
}

func newSettingsTestRouter(t *testing.T, userID uuid.UUID, users identity.UserRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewSettingsHandler(identityapp.NewSettingsService(newStubSettingsRepository(), users))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.JWTUserIDKey, userID.String())
		c.Next()
	})
	r.GET("/settings/system", h.Get)
	r.PUT("/settings/system", h.UpdateSystem)
	r.PUT("/settings/security", h.UpdateSecurity)
	r.PUT("/settings/password", h.ChangePassword)
	return r
}

func TestSettingsHandler_Get_ReturnsDefaults(t *testing.T) {
	userID := uuid.New()
	router := newSettingsTestRouter(t, userID, newStubUserRepository())

	req := httptest.NewRequest(http.MethodGet, "/settings/system", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, "ja", data["language"])
	assert.Equal(t, "Asia/Tokyo", data["timezone"])
	assert.Equal(t, "YYYY/MM/DD", data["dateFormat"])
	assert.Equal(t, true, data["emailNotifications"])
	assert.Equal(t, true, data["pushNotifications"])

	// The system payload carries display and notification preferences only.
	assert.Len(t, data, 5)
	assert.NotContains(t, data, "sessionTimeout")
	assert.NotContains(t, data, "twoFactorEnabled")
}

func TestSettingsHandler_UpdateSystem(t *testing.T) {
	router := newSettingsTestRouter(t, uuid.New(), newStubUserRepository())

	body, _ := json.Marshal(map[string]any{
		"language":           "en",
		"timezone":           "UTC",
		"dateFormat":         "2006-01-02",
		"emailNotifications": true,
		"pushNotifications":  false,
	})
	req := httptest.NewRequest(http.MethodPut, "/settings/system", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, "en", data["language"])
	assert.Equal(t, "UTC", data["timezone"])
}

func TestSettingsHandler_UpdateSecurity_TimeoutBounds(t *testing.T) {
	router := newSettingsTestRouter(t, uuid.New(), newStubUserRepository())

	for _, timeout := range []int{4, 121} {
		body, _ := json.Marshal(map[string]any{"sessionTimeout": timeout})
		req := httptest.NewRequest(http.MethodPut, "/settings/security", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "timeout=%d", timeout)
	}

	body, _ := json.Marshal(map[string]any{"sessionTimeout": 60})
	req := httptest.NewRequest(http.MethodPut, "/settings/security", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, float64(60), data["sessionTimeout"])
	assert.Len(t, data, 2)
}

func TestSettingsHandler_ChangePassword(t *testing.T) {
	users := newStubUserRepository()
	user, err := identity.NewUser("tanaka", "tanaka@example.com", "oldpassword1")
	require.NoError(t, err)
	require.NoError(t, users.Save(context.Background(), user))

	router := newSettingsTestRouter(t, user.ID, users)

	body, _ := json.Marshal(map[string]any{
		"currentPassword": "oldpassword1",
		"newPassword":     "newpassword1",
	})
	req := httptest.NewRequest(http.MethodPut, "/settings/password", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, users.users[user.ID].VerifyPassword("newpassword1"))
}

func TestSettingsHandler_ChangePassword_WrongCurrent(t *testing.T) {
	users := newStubUserRepository()
	user, err := identity.NewUser("tanaka", "tanaka@example.com", "oldpassword1")
	require.NoError(t, err)
	require.NoError(t, users.Save(context.Background(), user))

	router := newSettingsTestRouter(t, user.ID, users)

	body, _ := json.Marshal(map[string]any{
		"currentPassword": "not-the-password",
		"newPassword":     "newpassword1",
	})
	req := httptest.NewRequest(http.MethodPut, "/settings/password", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSettingsHandler_ChangePassword_TooShort(t *testing.T) {
	router := newSettingsTestRouter(t, uuid.New(), newStubUserRepository())

	body, _ := json.Marshal(map[string]any{
		"currentPassword": "oldpassword1",
		"newPassword":     "short",
	})
	req := httptest.NewRequest(http.MethodPut, "/settings/password", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
