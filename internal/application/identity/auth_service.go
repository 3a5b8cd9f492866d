package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/myorder/backend/internal/domain/identity"
	"github.com/myorder/backend/internal/domain/shared"
	"github.com/myorder/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService handles authentication and token issuance
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	logger     *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo identity.UserRepository, jwtService *auth.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login verifies credentials and issues a bearer token. Wrong username and
// wrong password return the same error.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("UNAUTHORIZED", "Incorrect username or password")
		}
		return nil, err
	}

	if !user.VerifyPassword(req.Password) {
		s.logger.Warn("Failed login attempt", zap.String("username", req.Username))
		return nil, shared.NewDomainError("UNAUTHORIZED", "Incorrect username or password")
	}

	if !user.CanLogin() {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Account is disabled")
	}

	token, err := s.jwtService.GenerateToken(auth.GenerateTokenInput{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("User logged in", zap.String("username", user.Username))

	return &TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiresAt.Unix(),
	}, nil
}

// Validate checks a bearer token and returns the authenticated user
func (s *AuthService) Validate(ctx context.Context, tokenString string) (*UserResponse, error) {
	claims, err := s.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid or expired token")
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid token claims")
	}

	return s.requireActiveUser(ctx, userID)
}

// RequireActiveUser loads a user by id and rejects disabled accounts
func (s *AuthService) RequireActiveUser(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	return s.requireActiveUser(ctx, userID)
}

func (s *AuthService) requireActiveUser(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("UNAUTHORIZED", "User no longer exists")
		}
		return nil, err
	}

	if !user.CanLogin() {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Account is disabled")
	}

	response := ToUserResponse(user)
	return &response, nil
}

// EnsureAdminUser creates the initial admin account if no user owns the
// configured username yet. Called once at startup.
func (s *AuthService) EnsureAdminUser(ctx context.Context, username, email, password string) error {
	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	admin, err := identity.NewAdminUser(username, email, password)
	if err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, admin); err != nil {
		return err
	}

	s.logger.Info("Initial admin user created", zap.String("username", username))
	return nil
}
