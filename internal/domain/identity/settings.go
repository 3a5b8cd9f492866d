package identity

import (
	"github.com/google/uuid"
	"github.com/myorder/backend/internal/domain/shared"
)

// Default values applied when a user has no persisted settings row
const (
	DefaultLanguage       = "ja"
	DefaultTimezone       = "Asia/Tokyo"
	DefaultDateFormat     = "YYYY/MM/DD"
	DefaultSessionTimeout = 30
)

// Session timeout bounds in minutes
const (
	MinSessionTimeout = 5
	MaxSessionTimeout = 120
)

// UserSettings holds per-user preferences. A row is created lazily on the
// first write; reads for users without a row synthesize defaults.
type UserSettings struct {
	shared.BaseEntity
	UserID             uuid.UUID
	Language           string
	Timezone           string
	DateFormat         string
	EmailNotifications bool
	PushNotifications  bool
	TwoFactorEnabled   bool
	SessionTimeout     int
}

// NewUserSettings creates settings for a user with default values
func NewUserSettings(userID uuid.UUID) (*UserSettings, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "User ID cannot be empty")
	}

	return &UserSettings{
		BaseEntity:         shared.NewBaseEntity(),
		UserID:             userID,
		Language:           DefaultLanguage,
		Timezone:           DefaultTimezone,
		DateFormat:         DefaultDateFormat,
		EmailNotifications: true,
		PushNotifications:  true,
		TwoFactorEnabled:   false,
		SessionTimeout:     DefaultSessionTimeout,
	}, nil
}

// UpdateSystem updates the display and notification preferences
func (s *UserSettings) UpdateSystem(language, timezone, dateFormat string, emailNotifications, pushNotifications bool) error {
	if language == "" {
		return shared.NewDomainError("INVALID_LANGUAGE", "Language cannot be empty")
	}
	if timezone == "" {
		return shared.NewDomainError("INVALID_TIMEZONE", "Timezone cannot be empty")
	}
	if dateFormat == "" {
		return shared.NewDomainError("INVALID_DATE_FORMAT", "Date format cannot be empty")
	}

	s.Language = language
	s.Timezone = timezone
	s.DateFormat = dateFormat
	s.EmailNotifications = emailNotifications
	s.PushNotifications = pushNotifications
	s.Touch()
	return nil
}

// UpdateSecurity updates the security preferences
func (s *UserSettings) UpdateSecurity(twoFactorEnabled bool, sessionTimeout int) error {
	if sessionTimeout < MinSessionTimeout || sessionTimeout > MaxSessionTimeout {
		return shared.NewDomainError("INVALID_SESSION_TIMEOUT", "Session timeout must be between 5 and 120 minutes")
	}

	s.TwoFactorEnabled = twoFactorEnabled
	s.SessionTimeout = sessionTimeout
	s.Touch()
	return nil
}
