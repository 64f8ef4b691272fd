package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adeolu/campusreg/internal/app/models/dto"
	"github.com/adeolu/campusreg/internal/app/services"
	"github.com/adeolu/campusreg/internal/middleware"
)

// ProfileController handles student and councillor profile endpoints
type ProfileController struct {
	profileService *services.ProfileService
	logger         zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService *services.ProfileService, logger zerolog.Logger) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		logger:         logger,
	}
}

// CreateStudentProfile creates the caller's student profile
// @Summary Create student profile
// @Description Creates the student profile owned by the authenticated caller. One profile per account.
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentProfileRequest true "Profile fields"
// @Success 201 {object} dto.APIResponse{data=dto.StudentProfileResponse} "Profile created"
// @Failure 409 {object} dto.ErrorResponse "Account already has a profile"
// @Router /profiles/students [post]
func (c *ProfileController) CreateStudentProfile(ctx *gin.Context) {
	var req dto.CreateStudentProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	userID := middleware.GetUserIDFromContext(ctx)
	profile, err := c.profileService.CreateStudentProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		c.logger.Error().Err(err).Int64("userId", userID).Msg("Failed to create student profile")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromStudentProfile(profile)))
}

// ListStudentProfiles lists every student profile
// @Summary List student profiles
// @Tags profiles
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentProfileResponse} "Profiles"
// @Router /profiles/students [get]
func (c *ProfileController) ListStudentProfiles(ctx *gin.Context) {
	profiles, err := c.profileService.GetAllStudentProfiles(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.StudentProfileResponse, 0, len(profiles))
	for _, profile := range profiles {
		resp = append(resp, dto.FromStudentProfile(profile))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// GetMyStudentProfile retrieves the caller's own student profile
// @Summary Get own student profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StudentProfileResponse} "Profile"
// @Failure 404 {object} dto.ErrorResponse "Caller has no student profile"
// @Router /profiles/students/mine [get]
func (c *ProfileController) GetMyStudentProfile(ctx *gin.Context) {
	userID := middleware.GetUserIDFromContext(ctx)
	profile, err := c.profileService.GetOwnStudentProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromStudentProfile(profile)))
}

// GetStudentProfile retrieves one student profile
// @Summary Get a student profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Profile ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentProfileResponse} "Profile"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /profiles/students/{id} [get]
func (c *ProfileController) GetStudentProfile(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	profile, err := c.profileService.GetStudentProfile(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromStudentProfile(profile)))
}

// UpdateStudentProfile replaces an owned student profile
// @Summary Update student profile
// @Description Replaces every profile field. Only the profile's owner may update it; partial updates are rejected by validation.
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Profile ID"
// @Param request body dto.UpdateStudentProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=dto.StudentProfileResponse} "Updated profile"
// @Failure 403 {object} dto.ErrorResponse "Not the profile owner"
// @Router /profiles/students/{id} [put]
func (c *ProfileController) UpdateStudentProfile(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	actorID := middleware.GetUserIDFromContext(ctx)
	profile, err := c.profileService.UpdateStudentProfile(ctx.Request.Context(), actorID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromStudentProfile(profile)))
}

// UploadStudentProfilePicture stores a picture for an owned student profile
// @Summary Upload student profile picture
// @Tags profiles
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Profile ID"
// @Param picture formData file true "Profile picture"
// @Success 200 {object} dto.APIResponse{data=dto.StudentProfileResponse} "Updated profile"
// @Router /profiles/students/{id}/picture [put]
func (c *ProfileController) UploadStudentProfilePicture(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("picture")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Picture file is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	actorID := middleware.GetUserIDFromContext(ctx)
	profile, err := c.profileService.UpdateStudentProfilePicture(ctx.Request.Context(), actorID, id, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromStudentProfile(profile)))
}

// CreateCouncillorProfile creates the caller's councillor profile
// @Summary Create councillor profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCouncillorProfileRequest true "Profile fields"
// @Success 201 {object} dto.APIResponse{data=dto.CouncillorProfileResponse} "Profile created"
// @Failure 409 {object} dto.ErrorResponse "Account already has a profile"
// @Router /profiles/councillors [post]
func (c *ProfileController) CreateCouncillorProfile(ctx *gin.Context) {
	var req dto.CreateCouncillorProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	userID := middleware.GetUserIDFromContext(ctx)
	profile, err := c.profileService.CreateCouncillorProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		c.logger.Error().Err(err).Int64("userId", userID).Msg("Failed to create councillor profile")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromCouncillorProfile(profile)))
}

// ListCouncillorProfiles lists every councillor profile
// @Summary List councillor profiles
// @Tags profiles
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CouncillorProfileResponse} "Profiles"
// @Router /profiles/councillors [get]
func (c *ProfileController) ListCouncillorProfiles(ctx *gin.Context) {
	profiles, err := c.profileService.GetAllCouncillorProfiles(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.CouncillorProfileResponse, 0, len(profiles))
	for _, profile := range profiles {
		resp = append(resp, dto.FromCouncillorProfile(profile))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// GetMyCouncillorProfile retrieves the caller's own councillor profile
// @Summary Get own councillor profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CouncillorProfileResponse} "Profile"
// @Failure 404 {object} dto.ErrorResponse "Caller has no councillor profile"
// @Router /profiles/councillors/mine [get]
func (c *ProfileController) GetMyCouncillorProfile(ctx *gin.Context) {
	userID := middleware.GetUserIDFromContext(ctx)
	profile, err := c.profileService.GetOwnCouncillorProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromCouncillorProfile(profile)))
}

// GetCouncillorProfile retrieves one councillor profile
// @Summary Get a councillor profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Profile ID"
// @Success 200 {object} dto.APIResponse{data=dto.CouncillorProfileResponse} "Profile"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /profiles/councillors/{id} [get]
func (c *ProfileController) GetCouncillorProfile(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	profile, err := c.profileService.GetCouncillorProfile(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromCouncillorProfile(profile)))
}

// UpdateCouncillorProfile replaces an owned councillor profile
// @Summary Update councillor profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Profile ID"
// @Param request body dto.UpdateCouncillorProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=dto.CouncillorProfileResponse} "Updated profile"
// @Failure 403 {object} dto.ErrorResponse "Not the profile owner"
// @Router /profiles/councillors/{id} [put]
func (c *ProfileController) UpdateCouncillorProfile(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCouncillorProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	actorID := middleware.GetUserIDFromContext(ctx)
	profile, err := c.profileService.UpdateCouncillorProfile(ctx.Request.Context(), actorID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromCouncillorProfile(profile)))
}

// UploadCouncillorProfilePicture stores a picture for an owned councillor profile
// @Summary Upload councillor profile picture
// @Tags profiles
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Profile ID"
// @Param picture formData file true "Profile picture"
// @Success 200 {object} dto.APIResponse{data=dto.CouncillorProfileResponse} "Updated profile"
// @Router /profiles/councillors/{id}/picture [put]
func (c *ProfileController) UploadCouncillorProfilePicture(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("picture")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Picture file is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	actorID := middleware.GetUserIDFromContext(ctx)
	profile, err := c.profileService.UpdateCouncillorProfilePicture(ctx.Request.Context(), actorID, id, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromCouncillorProfile(profile)))
}
