package services

import (
	"context"

	"github.com/rs/zerolog"

	appauth "github.com/adeolu/campusreg/internal/app/auth"
	"github.com/adeolu/campusreg/internal/app/models"
	"github.com/adeolu/campusreg/internal/app/models/dto"
	"github.com/adeolu/campusreg/internal/pkg/apperrors"
	"github.com/adeolu/campusreg/internal/pkg/validation"
)

// CourseService handles course catalog operations
type CourseService struct {
	courseStore CourseStore
	logger      zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courseStore CourseStore, logger zerolog.Logger) *CourseService {
	return &CourseService{
		courseStore: courseStore,
		logger:      logger,
	}
}

// CreateCourse adds a course to the catalog. Only superusers may create
// courses; ordinary accounts of either role are rejected.
func (s *CourseService) CreateCourse(ctx context.Context, actor *models.User, req *dto.CreateCourseRequest) (*models.Course, error) {
	if !appauth.IsAdmin(actor) {
		return nil, apperrors.NewForbiddenError("only administrators may create courses")
	}

	if !validation.IsValidCourseUnit(req.CourseUnit) {
		return nil, apperrors.NewValidationError("course unit must be positive with at most one fractional digit")
	}
	if req.MinimumCredit < 1 || req.MaximumCredit < 1 {
		return nil, apperrors.NewValidationError("credit bounds must be at least 1")
	}

	course := &models.Course{
		Semester:      models.Semester(req.Semester),
		CourseCode:    req.CourseCode,
		CourseName:    req.CourseName,
		CourseType:    models.CourseType(req.CourseType),
		CourseUnit:    req.CourseUnit,
		MinimumCredit: req.MinimumCredit,
		MaximumCredit: req.MaximumCredit,
	}

	id, err := s.courseStore.CreateCourse(ctx, course)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("courseId", id).Str("courseCode", course.CourseCode).Msg("Course created")
	return s.courseStore.GetCourseByID(ctx, id)
}

// GetCourse retrieves one catalog entry
func (s *CourseService) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseStore.GetCourseByID(ctx, id)
}

// GetAllCourses lists the catalog, optionally filtered by semester
func (s *CourseService) GetAllCourses(ctx context.Context, semester models.Semester) ([]*models.Course, error) {
	return s.courseStore.GetAllCourses(ctx, semester)
}
