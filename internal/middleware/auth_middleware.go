package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appauth "github.com/adeolu/campusreg/internal/app/auth"
	"github.com/adeolu/campusreg/internal/app/models"
	"github.com/adeolu/campusreg/internal/app/models/dto"
	"github.com/adeolu/campusreg/internal/pkg/auth"
)

// Context keys seeded by JWTAuth
const (
	ContextUserID      = "userID"
	ContextEmail       = "email"
	ContextRole        = "role"
	ContextIsSuperuser = "isSuperuser"
)

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// JWTAuth validates the bearer token and seeds the caller's identity into the
// request context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Authorization header missing")

			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Invalid token format")

			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			errorDetails := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				errorCode = dto.ErrorCodeExpiredToken
				errorDetails = "Token has expired"
			}

			errorDetail := dto.NewErrorDetail(errorCode, "Authentication failed")
			errorDetail = errorDetail.WithDetails(errorDetails)
			errorDetail = errorDetail.WithSeverity(dto.ErrorSeverityError)

			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextIsSuperuser, claims.IsSuperuser)

		c.Next()
	}
}

// AdminRequired gates admin-only endpoints. It must run after JWTAuth.
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFromContext(c)
		if !appauth.IsAdmin(actor) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Administrator privileges required")

			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}

// GetUserIDFromContext returns the authenticated account id, or 0 when the
// request carries no identity.
func GetUserIDFromContext(c *gin.Context) int64 {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return 0
	}
	userID, ok := value.(int64)
	if !ok {
		return 0
	}
	return userID
}

// ActorFromContext reconstructs the acting account from the seeded claims.
// Only the fields carried in the token are populated.
func ActorFromContext(c *gin.Context) *models.User {
	userID := GetUserIDFromContext(c)
	if userID == 0 {
		return nil
	}

	actor := &models.User{ID: userID}
	if email, ok := c.Get(ContextEmail); ok {
		if s, ok := email.(string); ok {
			actor.Email = s
		}
	}
	if role, ok := c.Get(ContextRole); ok {
		if s, ok := role.(string); ok {
			actor.Role = models.RoleType(s)
		}
	}
	if super, ok := c.Get(ContextIsSuperuser); ok {
		if b, ok := super.(bool); ok {
			actor.IsSuperuser = b
		}
	}
	return actor
}
