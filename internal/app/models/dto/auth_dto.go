package dto

import (
	"time"

	"github.com/adeolu/campusreg/internal/app/models"
)

// RegisterRequest represents an account registration request. Password2 must
// repeat Password exactly.
type RegisterRequest struct {
	Username           string          `json:"username" binding:"required,alphanum"`
	Email              string          `json:"email" binding:"required,email"`
	Password           string          `json:"password" binding:"required,min=6"`
	Password2          string          `json:"password2" binding:"required,eqfield=Password"`
	RegistrationNumber string          `json:"registrationNumber" binding:"required"`
	FirstName          string          `json:"firstName" binding:"required"`
	LastName           string          `json:"lastName" binding:"required"`
	Role               models.RoleType `json:"role" binding:"required,oneof=STUDENT COURSE_ADVISER"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents the issued credential pair
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	TokenType        string `json:"tokenType" example:"Bearer"`
	ExpiresIn        int64  `json:"expiresIn"`
	RefreshExpiresIn int64  `json:"refreshExpiresIn"`
}

// LoginResponse carries the authenticated identity and its tokens
type LoginResponse struct {
	Email    string        `json:"email"`
	Username string        `json:"username"`
	Tokens   TokenResponse `json:"tokens"`
}

// RefreshTokenRequest represents a refresh token rotation request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest carries the refresh token to revoke
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ChangePasswordRequest represents a password change for the acting account
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	Password2   string `json:"password2" binding:"required,eqfield=Password"`
}

// UpdateAccountRequest represents an account detail update. All fields are
// required; partial updates are not supported.
type UpdateAccountRequest struct {
	Username  string `json:"username" binding:"required,alphanum"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

// UserResponse is the redacted account view embedded in API responses.
// It never carries the password hash or raw tokens.
type UserResponse struct {
	ID                 int64     `json:"id"`
	Username           string    `json:"username"`
	Email              string    `json:"email"`
	FirstName          string    `json:"firstName"`
	LastName           string    `json:"lastName"`
	RegistrationNumber string    `json:"registrationNumber"`
	Role               string    `json:"role"`
	IsActive           bool      `json:"isActive"`
	IsVerified         bool      `json:"isVerified"`
	IsSuperuser        bool      `json:"isSuperuser"`
	CreatedAt          time.Time `json:"createdAt"`
}

// FromUser converts a user model to its redacted view
func FromUser(u *models.User) UserResponse {
	if u == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:                 u.ID,
		Username:           u.Username,
		Email:              u.Email,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		RegistrationNumber: u.RegistrationNumber,
		Role:               string(u.Role),
		IsActive:           u.IsActive,
		IsVerified:         u.IsVerified,
		IsSuperuser:        u.IsSuperuser,
		CreatedAt:          u.CreatedAt,
	}
}
