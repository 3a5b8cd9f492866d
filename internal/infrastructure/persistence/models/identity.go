package models

import (
	"github.com/google/uuid"
	"github.com/myorder/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	BaseModel
	Username     string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Email        string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Name         string `gorm:"type:varchar(200)"`
	PasswordHash string `gorm:"type:varchar(200);not null"`
	IsActive     bool   `gorm:"not null;default:true"`
	IsAdmin      bool   `gorm:"not null;default:false"`
	Role         string `gorm:"type:varchar(50)"`
	Phone        string `gorm:"type:varchar(50)"`
	Position     string `gorm:"type:varchar(100)"`
	AvatarURL    string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:   m.BaseModel.ToDomain(),
		Username:     m.Username,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		IsActive:     m.IsActive,
		IsAdmin:      m.IsAdmin,
		Role:         m.Role,
		Phone:        m.Phone,
		Position:     m.Position,
		AvatarURL:    m.AvatarURL,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.Username = u.Username
	m.Email = u.Email
	m.Name = u.Name
	m.PasswordHash = u.PasswordHash
	m.IsActive = u.IsActive
	m.IsAdmin = u.IsAdmin
	m.Role = u.Role
	m.Phone = u.Phone
	m.Position = u.Position
	m.AvatarURL = u.AvatarURL
}

// UserSettingsModel is the persistence model for per-user settings.
type UserSettingsModel struct {
	BaseModel
	UserID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Language           string    `gorm:"type:varchar(10);not null;default:'ja'"`
	Timezone           string    `gorm:"type:varchar(50);not null;default:'Asia/Tokyo'"`
	DateFormat         string    `gorm:"type:varchar(20);not null;default:'YYYY/MM/DD'"`
	EmailNotifications bool      `gorm:"not null;default:true"`
	PushNotifications  bool      `gorm:"not null;default:true"`
	TwoFactorEnabled   bool      `gorm:"not null;default:false"`
	SessionTimeout     int       `gorm:"not null;default:30"`
}

// TableName returns the table name for GORM
func (UserSettingsModel) TableName() string {
	return "user_settings"
}

// ToDomain converts the persistence model to a domain UserSettings entity.
func (m *UserSettingsModel) ToDomain() *identity.UserSettings {
	return &identity.UserSettings{
		BaseEntity:         m.BaseModel.ToDomain(),
		UserID:             m.UserID,
		Language:           m.Language,
		Timezone:           m.Timezone,
		DateFormat:         m.DateFormat,
		EmailNotifications: m.EmailNotifications,
		PushNotifications:  m.PushNotifications,
		TwoFactorEnabled:   m.TwoFactorEnabled,
		SessionTimeout:     m.SessionTimeout,
	}
}

// FromDomain populates the persistence model from a domain UserSettings entity.
func (m *UserSettingsModel) FromDomain(s *identity.UserSettings) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.UserID = s.UserID
	m.Language = s.Language
	m.Timezone = s.Timezone
	m.DateFormat = s.DateFormat
	m.EmailNotifications = s.EmailNotifications
	m.PushNotifications = s.PushNotifications
	m.TwoFactorEnabled = s.TwoFactorEnabled
	m.SessionTimeout = s.SessionTimeout
}
