package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	appauth "github.com/adeolu/campusreg/internal/app/auth"
	"github.com/adeolu/campusreg/internal/app/models"
	"github.com/adeolu/campusreg/internal/pkg/apperrors"
)

// RegistrationService handles the course enrollment ledger
type RegistrationService struct {
	registrationStore RegistrationStore
	courseStore       CourseStore
	logger            zerolog.Logger
}

// NewRegistrationService creates a new RegistrationService
func NewRegistrationService(registrationStore RegistrationStore, courseStore CourseStore, logger zerolog.Logger) *RegistrationService {
	return &RegistrationService{
		registrationStore: registrationStore,
		courseStore:       courseStore,
		logger:            logger,
	}
}

// RegisterForCourse enrolls an account in a course. Enrollments are always
// created for the authenticated caller; requesting one for another account is
// a permission failure. A second enrollment in the same course is a conflict.
func (s *RegistrationService) RegisterForCourse(ctx context.Context, actorID, targetUserID, courseID int64) (*models.CourseRegistration, error) {
	if !appauth.IsOwner(actorID, targetUserID) {
		return nil, apperrors.NewForbiddenError("accounts may only register themselves for courses")
	}

	if _, err := s.courseStore.GetCourseByID(ctx, courseID); err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, err
	}

	id, err := s.registrationStore.CreateRegistration(ctx, actorID, courseID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", actorID).Int64("courseId", courseID).Msg("Course registration created")
	return s.registrationStore.GetRegistrationByID(ctx, id)
}

// GetRegistration retrieves one enrollment with its account and course
func (s *RegistrationService) GetRegistration(ctx context.Context, id int64) (*models.CourseRegistration, error) {
	return s.registrationStore.GetRegistrationByID(ctx, id)
}

// GetAllRegistrations lists every enrollment
func (s *RegistrationService) GetAllRegistrations(ctx context.Context) ([]*models.CourseRegistration, error) {
	return s.registrationStore.GetAllRegistrations(ctx)
}

// GetRegistrationsForUser lists one account's enrollments
func (s *RegistrationService) GetRegistrationsForUser(ctx context.Context, userID int64) ([]*models.CourseRegistration, error) {
	return s.registrationStore.GetRegistrationsByUserID(ctx, userID)
}

// DropRegistration removes an enrollment. Only the owner may drop it.
func (s *RegistrationService) DropRegistration(ctx context.Context, actorID, registrationID int64) error {
	reg, err := s.registrationStore.GetRegistrationByID(ctx, registrationID)
	if err != nil {
		return err
	}
	if !appauth.IsOwner(actorID, reg.UserID) {
		return apperrors.ErrPermissionDenied
	}

	if err := s.registrationStore.DeleteRegistration(ctx, registrationID); err != nil {
		return err
	}

	s.logger.Info().Int64("userId", actorID).Int64("registrationId", registrationID).Msg("Course registration dropped")
	return nil
}
