package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/myorder/backend/internal/domain/identity"
	"github.com/myorder/backend/internal/domain/shared"
	"github.com/myorder/backend/internal/infrastructure/auth"
	"github.com/myorder/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-for-auth-service-tests",
		AccessTokenExpiration: 30 * time.Minute,
		Issuer:                "myorder-test",
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("issues bearer token for valid credentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewAuthService(repo, newTestJWTService(), zap.NewNop())

		user, err := identity.NewUser("alice", "alice@example.com", "password123")
		require.NoError(t, err)

		repo.On("FindByUsername", ctx, "alice").Return(user, nil)

		resp, err := service.Login(ctx, LoginRequest{Username: "alice", Password: "password123"})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
	})

	t.Run("same error for unknown user and wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewAuthService(repo, newTestJWTService(), zap.NewNop())

		user, err := identity.NewUser("alice", "alice@example.com", "password123")
		require.NoError(t, err)

		repo.On("FindByUsername", ctx, "ghost").Return(nil, shared.ErrNotFound)
		repo.On("FindByUsername", ctx, "alice").Return(user, nil)

		_, unknownErr := service.Login(ctx, LoginRequest{Username: "ghost", Password: "whatever"})
		_, wrongErr := service.Login(ctx, LoginRequest{Username: "alice", Password: "nope"})

		require.Error(t, unknownErr)
		require.Error(t, wrongErr)
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})

	t.Run("rejects deactivated account", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewAuthService(repo, newTestJWTService(), zap.NewNop())

		user, err := identity.NewUser("alice", "alice@example.com", "password123")
		require.NoError(t, err)
		user.Deactivate()

		repo.On("FindByUsername", ctx, "alice").Return(user, nil)

		_, err = service.Login(ctx, LoginRequest{Username: "alice", Password: "password123"})

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	})
}

func TestAuthService_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips token back to the user", func(t *testing.T) {
		repo := new(MockUserRepository)
		jwtService := newTestJWTService()
		service := NewAuthService(repo, jwtService, zap.NewNop())

		user, err := identity.NewUser("alice", "alice@example.com", "password123")
		require.NoError(t, err)

		repo.On("FindByUsername", ctx, "alice").Return(user, nil)
		repo.On("FindByID", ctx, user.ID).Return(user, nil)

		login, err := service.Login(ctx, LoginRequest{Username: "alice", Password: "password123"})
		require.NoError(t, err)

		resp, err := service.Validate(ctx, login.AccessToken)

		require.NoError(t, err)
		assert.Equal(t, user.ID, resp.ID)
		assert.Equal(t, "alice", resp.Username)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewAuthService(repo, newTestJWTService(), zap.NewNop())

		_, err := service.Validate(ctx, "not-a-token")

		assert.Error(t, err)
	})

	t.Run("rejects token whose user was deleted", func(t *testing.T) {
		repo := new(MockUserRepository)
		jwtService := newTestJWTService()
		service := NewAuthService(repo, jwtService, zap.NewNop())

		userID := uuid.New()
		token, err := jwtService.GenerateToken(auth.GenerateTokenInput{UserID: userID, Username: "gone"})
		require.NoError(t, err)

		repo.On("FindByID", ctx, userID).Return(nil, shared.ErrNotFound)

		_, err = service.Validate(ctx, token.AccessToken)

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	})
}

func TestAuthService_EnsureAdminUser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates admin when absent", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewAuthService(repo, newTestJWTService(), zap.NewNop())

		repo.On("ExistsByUsername", ctx, "admin").Return(false, nil)
		repo.On("Save", ctx, mock.MatchedBy(func(u *identity.User) bool {
			return u.Username == "admin" && u.IsAdmin
		})).Return(nil)

		err := service.EnsureAdminUser(ctx, "admin", "admin@example.com", "changeme-now")

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("does nothing when admin exists", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewAuthService(repo, newTestJWTService(), zap.NewNop())

		repo.On("ExistsByUsername", ctx, "admin").Return(true, nil)

		err := service.EnsureAdminUser(ctx, "admin", "admin@example.com", "changeme-now")

		require.NoError(t, err)
		repo.AssertNotCalled(t, "Save")
	})
}
