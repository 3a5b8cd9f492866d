package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/myorder/backend/internal/domain/identity"
)

// LoginRequest carries OAuth2 password-style form credentials
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// TokenResponse is the login result
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   int64  `json:"expires_at"`
}

// CreateUserRequest represents a request to create a new user
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=128"`
	Name     string `json:"name" binding:"max=255"`
	Phone    string `json:"phone" binding:"max=50"`
	Position string `json:"position" binding:"max=100"`
	IsAdmin  bool   `json:"is_admin"`
}

// UpdateUserRequest represents a request to update a user
type UpdateUserRequest struct {
	Email     *string `json:"email" binding:"omitempty,email,max=255"`
	Name      *string `json:"name" binding:"omitempty,max=255"`
	Phone     *string `json:"phone" binding:"omitempty,max=50"`
	Position  *string `json:"position" binding:"omitempty,max=100"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,max=500"`
	Role      *string `json:"role" binding:"omitempty,max=50"`
	IsActive  *bool   `json:"is_active"`
	IsAdmin   *bool   `json:"is_admin"`
}

// UpdateProfileRequest carries the fields a user may change on themselves
type UpdateProfileRequest struct {
	Email     *string `json:"email" binding:"omitempty,email,max=255"`
	Name      *string `json:"name" binding:"omitempty,max=255"`
	Phone     *string `json:"phone" binding:"omitempty,max=50"`
	Position  *string `json:"position" binding:"omitempty,max=100"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,max=500"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Position  string    `json:"position"`
	AvatarURL string    `json:"avatar_url"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUserResponse converts a domain user to a response DTO
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Position:  u.Position,
		AvatarURL: u.AvatarURL,
		Role:      u.Role,
		IsActive:  u.IsActive,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToUserResponses converts a slice of domain users
func ToUserResponses(users []identity.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses
}

// ListFilter carries listing options for user endpoints
type ListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	IsActive *bool  `form:"is_active"`
	Role     string `form:"role"`
}

// SystemSettingsRequest updates display and notification preferences. Field
// names ride the legacy camelCase wire contract.
type SystemSettingsRequest struct {
	Language           string `json:"language" binding:"required,max=10"`
	Timezone           string `json:"timezone" binding:"required,max=50"`
	DateFormat         string `json:"dateFormat" binding:"required,max=20"`
	EmailNotifications bool   `json:"emailNotifications"`
	PushNotifications  bool   `json:"pushNotifications"`
}

// SecuritySettingsRequest updates security preferences
type SecuritySettingsRequest struct {
	TwoFactorEnabled bool `json:"twoFactorEnabled"`
	SessionTimeout   int  `json:"sessionTimeout" binding:"required"`
}

// ChangePasswordRequest changes the caller's password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8,max=128"`
}

// SystemSettingsResponse carries display and notification preferences only;
// security fields travel on their own payload.
type SystemSettingsResponse struct {
	Language           string `json:"language"`
	Timezone           string `json:"timezone"`
	DateFormat         string `json:"dateFormat"`
	EmailNotifications bool   `json:"emailNotifications"`
	PushNotifications  bool   `json:"pushNotifications"`
}

// SecuritySettingsResponse carries security preferences
type SecuritySettingsResponse struct {
	TwoFactorEnabled bool `json:"twoFactorEnabled"`
	SessionTimeout   int  `json:"sessionTimeout"`
}

// ToSystemSettingsResponse converts domain settings to the system payload
func ToSystemSettingsResponse(s *identity.UserSettings) SystemSettingsResponse {
	return SystemSettingsResponse{
		Language:           s.Language,
		Timezone:           s.Timezone,
		DateFormat:         s.DateFormat,
		EmailNotifications: s.EmailNotifications,
		PushNotifications:  s.PushNotifications,
	}
}

// ToSecuritySettingsResponse converts domain settings to the security payload
func ToSecuritySettingsResponse(s *identity.UserSettings) SecuritySettingsResponse {
	return SecuritySettingsResponse{
		TwoFactorEnabled: s.TwoFactorEnabled,
		SessionTimeout:   s.SessionTimeout,
	}
}
