package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adeolu/campusreg/internal/app/models"
	"github.com/adeolu/campusreg/internal/app/models/dto"
	"github.com/adeolu/campusreg/internal/app/services"
	"github.com/adeolu/campusreg/internal/middleware"
)

// CourseController handles course catalog endpoints
type CourseController struct {
	courseService *services.CourseService
	logger        zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService, logger zerolog.Logger) *CourseController {
	return &CourseController{
		courseService: courseService,
		logger:        logger,
	}
}

// CreateCourse adds a catalog entry
// @Summary Create a course
// @Description Adds a course to the catalog. Restricted to administrator accounts.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course fields"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created"
// @Failure 403 {object} dto.ErrorResponse "Administrator privileges required"
// @Failure 409 {object} dto.ErrorResponse "Course code already exists"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	actor := middleware.ActorFromContext(ctx)
	course, err := c.courseService.CreateCourse(ctx.Request.Context(), actor, &req)
	if err != nil {
		c.logger.Error().Err(err).Str("courseCode", req.CourseCode).Msg("Failed to create course")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(course))
}

// ListCourses lists the catalog
// @Summary List courses
// @Description Lists the course catalog, optionally filtered by semester.
// @Tags courses
// @Produce json
// @Param semester query string false "Semester filter (First or Second)"
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	semester := models.Semester(ctx.Query("semester"))
	if semester != "" && semester != models.SemesterFirst && semester != models.SemesterSecond {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Semester must be First or Second")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	courses, err := c.courseService.GetAllCourses(ctx.Request.Context(), semester)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// GetCourse retrieves one catalog entry
// @Summary Get a course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourse(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}
