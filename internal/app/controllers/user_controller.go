package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adeolu/campusreg/internal/app/models/dto"
	"github.com/adeolu/campusreg/internal/app/services"
	"github.com/adeolu/campusreg/internal/middleware"
)

// UserController handles the public, redacted account listing endpoints
type UserController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(authService *services.AuthService, logger zerolog.Logger) *UserController {
	return &UserController{
		authService: authService,
		logger:      logger,
	}
}

// parseIDParam reads a positive integer path parameter
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid id parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// ListUsers lists every account in redacted form
// @Summary List accounts
// @Description Lists every account. Password hashes and tokens are never included.
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse} "Accounts"
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.authService.GetAllUsers(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list accounts")
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, dto.FromUser(user))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// GetUser retrieves one account in redacted form
// @Summary Get an account
// @Tags users
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Account"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Router /users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	user, err := c.authService.GetUserByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromUser(user)))
}
