package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/myorder/backend/internal/domain/shared"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]User, error)
	Save(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// UserSettingsRepository defines persistence operations for user settings
type UserSettingsRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*UserSettings, error)
	Save(ctx context.Context, settings *UserSettings) error
	Delete(ctx context.Context, userID uuid.UUID) error
}
