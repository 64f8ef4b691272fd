package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/adeolu/campusreg/internal/app/models"
	"github.com/adeolu/campusreg/internal/app/models/dto"
	"github.com/adeolu/campusreg/internal/pkg/apperrors"
	"github.com/adeolu/campusreg/internal/pkg/auth"
	"github.com/adeolu/campusreg/internal/pkg/validation"
)

// AuthService handles account and authentication operations
type AuthService struct {
	userStore  UserStore
	tokenStore TokenStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userStore UserStore,
	tokenStore TokenStore,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userStore:  userStore,
		tokenStore: tokenStore,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new account with a bcrypt-hashed password and returns the
// stored account.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if req.Password != req.Password2 {
		return nil, apperrors.NewValidationError("passwords do not match")
	}
	if !validation.IsAlphanumericUsername(req.Username) {
		return nil, apperrors.NewValidationError("username must contain only alphanumeric characters")
	}
	if req.Role != models.RoleStudent && req.Role != models.RoleCourseAdviser {
		return nil, apperrors.NewValidationError("role must be STUDENT or COURSE_ADVISER")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:           req.Username,
		Email:              req.Email,
		Password:           hashedPassword,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		RegistrationNumber: req.RegistrationNumber,
		Role:               req.Role,
		IsActive:           true,
		IsVerified:         true,
		IsSuperuser:        false,
	}

	id, err := s.userStore.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	s.logger.Info().Int64("userId", id).Str("role", string(user.Role)).Msg("Account registered")

	created, err := s.userStore.GetUserByID(ctx, id)
	if err != nil {
		return user, nil
	}
	return created, nil
}

// Login authenticates an account by email and password. The three failure
// reasons stay distinct: unknown email or wrong password, disabled account,
// unverified account.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userStore.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}
	if !user.IsVerified {
		return nil, apperrors.ErrAccountNotVerified
	}

	tokens, err := s.generateTokenResponse(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.userStore.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Int64("userId", user.ID).Msg("Failed to update last login time")
	}

	return &dto.LoginResponse{
		Email:    user.Email,
		Username: user.Username,
		Tokens:   *tokens,
	}, nil
}

// RefreshToken rotates a refresh token: the presented token is revoked and a
// fresh pair is issued. Reuse of a rotated token fails.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if refreshToken == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	token, err := s.tokenStore.GetRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenNotFound) {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, fmt.Errorf("token lookup error: %w", err)
	}

	if token.IsRevoked {
		return nil, apperrors.ErrTokenRevoked
	}
	if token.ExpiresAt.Before(time.Now()) {
		_ = s.tokenStore.RevokeRefreshToken(ctx, refreshToken)
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userStore.GetUserByID(ctx, token.UserID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	if err := s.tokenStore.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke old token: %w", err)
	}

	return s.generateTokenResponse(ctx, user)
}

// Logout revokes the presented refresh token. Only the token's owner may
// revoke it; any malformed, unknown, expired or already revoked token is
// reported as an invalid token.
func (s *AuthService) Logout(ctx context.Context, userID int64, refreshToken string) error {
	if refreshToken == "" {
		return apperrors.ErrTokenInvalid
	}

	token, err := s.tokenStore.GetRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenNotFound) {
			return apperrors.ErrTokenInvalid
		}
		return fmt.Errorf("token lookup error: %w", err)
	}

	if token.UserID != userID {
		return apperrors.ErrPermissionDenied
	}
	if token.IsRevoked || token.ExpiresAt.Before(time.Now()) {
		return apperrors.ErrTokenInvalid
	}

	if err := s.tokenStore.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	s.logger.Info().Int64("userId", userID).Msg("Refresh token revoked")
	return nil
}

// ChangePassword replaces the caller's password after verifying the current
// one. A wrong current password is a permission failure, not a validation
// failure. All existing refresh tokens are revoked.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, req *dto.ChangePasswordRequest) error {
	if req.Password != req.Password2 {
		return apperrors.NewValidationError("passwords do not match")
	}

	user, err := s.userStore.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.Password, req.OldPassword) {
		return apperrors.NewForbiddenError("current password is incorrect")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userStore.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		return err
	}

	if err := s.tokenStore.RevokeUserRefreshTokens(ctx, userID); err != nil {
		s.logger.Warn().Err(err).Int64("userId", userID).Msg("Failed to revoke refresh tokens after password change")
	}

	s.logger.Info().Int64("userId", userID).Msg("Password changed")
	return nil
}

// UpdateAccount replaces the caller's account fields. All fields are required;
// email and username uniqueness is re-checked against other accounts.
func (s *AuthService) UpdateAccount(ctx context.Context, userID int64, req *dto.UpdateAccountRequest) (*models.User, error) {
	if !validation.IsAlphanumericUsername(req.Username) {
		return nil, apperrors.NewValidationError("username must contain only alphanumeric characters")
	}

	if _, err := s.userStore.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	emailTaken, err := s.userStore.EmailExists(ctx, req.Email, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if emailTaken {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	usernameTaken, err := s.userStore.UsernameExists(ctx, req.Username, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if usernameTaken {
		return nil, apperrors.ErrUsernameAlreadyExists
	}

	if err := s.userStore.UpdateAccount(ctx, userID, req.Username, req.FirstName, req.LastName, req.Email); err != nil {
		return nil, err
	}

	return s.userStore.GetUserByID(ctx, userID)
}

// GetUserByID retrieves one account
func (s *AuthService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userStore.GetUserByID(ctx, id)
}

// GetAllUsers lists every account
func (s *AuthService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.userStore.GetAllUsers(ctx)
}

// generateTokenResponse creates and persists a token pair for a user
func (s *AuthService) generateTokenResponse(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	record := &models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: s.jwtService.GetRefreshTokenExpiry(),
	}
	if err := s.tokenStore.StoreRefreshToken(ctx, record); err != nil {
		return nil, fmt.Errorf("token saving error: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		TokenType:        "Bearer",
		ExpiresIn:        int64(expiresIn),
		RefreshExpiresIn: int64(refreshExpiresIn),
	}, nil
}
