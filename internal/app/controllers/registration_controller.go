package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adeolu/campusreg/internal/app/models/dto"
	"github.com/adeolu/campusreg/internal/app/services"
	"github.com/adeolu/campusreg/internal/middleware"
)

// RegistrationController handles course enrollment endpoints
type RegistrationController struct {
	registrationService *services.RegistrationService
	logger              zerolog.Logger
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService *services.RegistrationService, logger zerolog.Logger) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
		logger:              logger,
	}
}

// RegisterForCourse enrolls the caller in a course
// @Summary Register for a course
// @Description Enrolls the authenticated caller in a course. A second enrollment in the same course is rejected.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterForCourseRequest true "Course to enroll in"
// @Success 201 {object} dto.APIResponse{data=dto.RegistrationResponse} "Enrollment created"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Already registered for this course"
// @Router /registrations [post]
func (c *RegistrationController) RegisterForCourse(ctx *gin.Context) {
	var req dto.RegisterForCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	actorID := middleware.GetUserIDFromContext(ctx)
	reg, err := c.registrationService.RegisterForCourse(ctx.Request.Context(), actorID, actorID, req.CourseID)
	if err != nil {
		c.logger.Warn().Err(err).Int64("userId", actorID).Int64("courseId", req.CourseID).Msg("Course registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromRegistration(reg)))
}

// ListRegistrations lists every enrollment
// @Summary List registrations
// @Description Lists every enrollment with the redacted account and course embedded.
// @Tags registrations
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.RegistrationResponse} "Enrollments"
// @Router /registrations [get]
func (c *RegistrationController) ListRegistrations(ctx *gin.Context) {
	registrations, err := c.registrationService.GetAllRegistrations(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.RegistrationResponse, 0, len(registrations))
	for _, reg := range registrations {
		resp = append(resp, dto.FromRegistration(reg))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// GetRegistration retrieves one enrollment
// @Summary Get a registration
// @Tags registrations
// @Produce json
// @Param id path int true "Registration ID"
// @Success 200 {object} dto.APIResponse{data=dto.RegistrationResponse} "Enrollment"
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Router /registrations/{id} [get]
func (c *RegistrationController) GetRegistration(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	reg, err := c.registrationService.GetRegistration(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromRegistration(reg)))
}

// ListMyRegistrations lists the caller's enrollments
// @Summary List own registrations
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.RegistrationResponse} "Enrollments"
// @Router /registrations/mine [get]
func (c *RegistrationController) ListMyRegistrations(ctx *gin.Context) {
	actorID := middleware.GetUserIDFromContext(ctx)
	registrations, err := c.registrationService.GetRegistrationsForUser(ctx.Request.Context(), actorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.RegistrationResponse, 0, len(registrations))
	for _, reg := range registrations {
		resp = append(resp, dto.FromRegistration(reg))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// DropRegistration removes an owned enrollment
// @Summary Drop a registration
// @Description Removes an enrollment. Only its owner may drop it.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Success 204 "Enrollment removed"
// @Failure 403 {object} dto.ErrorResponse "Not the enrollment owner"
// @Router /registrations/{id} [delete]
func (c *RegistrationController) DropRegistration(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	actorID := middleware.GetUserIDFromContext(ctx)
	if err := c.registrationService.DropRegistration(ctx.Request.Context(), actorID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
