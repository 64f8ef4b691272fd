package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/rs/zerolog"

	appauth "github.com/adeolu/campusreg/internal/app/auth"
	"github.com/adeolu/campusreg/internal/app/models"
	"github.com/adeolu/campusreg/internal/app/models/dto"
	"github.com/adeolu/campusreg/internal/pkg/apperrors"
	"github.com/adeolu/campusreg/internal/pkg/filestorage"
	"github.com/adeolu/campusreg/internal/pkg/validation"
)

const profilePictureDir = "profile_pictures"

// ProfileService handles student and councillor profile operations
type ProfileService struct {
	profileStore ProfileStore
	storage      filestorage.FileStorage
	logger       zerolog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileStore ProfileStore, storage filestorage.FileStorage, logger zerolog.Logger) *ProfileService {
	return &ProfileService{
		profileStore: profileStore,
		storage:      storage,
		logger:       logger,
	}
}

func parseBirthday(value string) (time.Time, error) {
	birthday, err := time.Parse(dto.BirthdayLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("birthday must be in YYYY-MM-DD format")
	}
	return birthday, nil
}

// CreateStudentProfile creates the student profile owned by the caller. One
// profile per account; a second attempt surfaces as a conflict.
func (s *ProfileService) CreateStudentProfile(ctx context.Context, userID int64, req *dto.CreateStudentProfileRequest) (*models.StudentProfile, error) {
	if !validation.IsValidPhoneNumber(req.PhoneNumber) {
		return nil, apperrors.NewValidationError("phone number does not match the expected format")
	}
	birthday, err := parseBirthday(req.Birthday)
	if err != nil {
		return nil, err
	}

	profile := &models.StudentProfile{
		UserID:       userID,
		MiddleName:   req.MiddleName,
		StudentLevel: req.StudentLevel,
		Birthday:     birthday,
		Gender:       models.Gender(req.Gender),
		Address:      req.Address,
		PhoneNumber:  req.PhoneNumber,
		Country:      req.Country,
	}

	id, err := s.profileStore.CreateStudentProfile(ctx, profile)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", userID).Int64("profileId", id).Msg("Student profile created")
	return s.profileStore.GetStudentProfileByID(ctx, id)
}

// GetStudentProfile retrieves a student profile by id
func (s *ProfileService) GetStudentProfile(ctx context.Context, id int64) (*models.StudentProfile, error) {
	return s.profileStore.GetStudentProfileByID(ctx, id)
}

// GetOwnStudentProfile retrieves the caller's student profile
func (s *ProfileService) GetOwnStudentProfile(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	return s.profileStore.GetStudentProfileByUserID(ctx, userID)
}

// GetAllStudentProfiles lists every student profile
func (s *ProfileService) GetAllStudentProfiles(ctx context.Context) ([]*models.StudentProfile, error) {
	return s.profileStore.GetAllStudentProfiles(ctx)
}

// UpdateStudentProfile replaces every field of a student profile. Only the
// owner may update it; there are no partial updates.
func (s *ProfileService) UpdateStudentProfile(ctx context.Context, actorID, profileID int64, req *dto.UpdateStudentProfileRequest) (*models.StudentProfile, error) {
	if !validation.IsValidPhoneNumber(req.PhoneNumber) {
		return nil, apperrors.NewValidationError("phone number does not match the expected format")
	}
	birthday, err := parseBirthday(req.Birthday)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileStore.GetStudentProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !appauth.IsOwner(actorID, profile.UserID) {
		return nil, apperrors.ErrPermissionDenied
	}

	profile.MiddleName = req.MiddleName
	profile.StudentLevel = req.StudentLevel
	profile.Birthday = birthday
	profile.Gender = models.Gender(req.Gender)
	profile.Address = req.Address
	profile.PhoneNumber = req.PhoneNumber
	profile.Country = req.Country

	if err := s.profileStore.UpdateStudentProfile(ctx, profile); err != nil {
		return nil, err
	}

	return s.profileStore.GetStudentProfileByID(ctx, profileID)
}

// UpdateStudentProfilePicture stores a new picture for an owned student profile
func (s *ProfileService) UpdateStudentProfilePicture(ctx context.Context, actorID, profileID int64, fileHeader *multipart.FileHeader) (*models.StudentProfile, error) {
	profile, err := s.profileStore.GetStudentProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !appauth.IsOwner(actorID, profile.UserID) {
		return nil, apperrors.ErrPermissionDenied
	}

	path, err := s.storage.SaveFileWithPath(fileHeader, profilePictureDir)
	if err != nil {
		return nil, fmt.Errorf("failed to store profile picture: %w", err)
	}

	if profile.ProfilePicture != nil {
		if err := s.storage.DeleteFile(*profile.ProfilePicture); err != nil {
			s.logger.Warn().Err(err).Int64("profileId", profileID).Msg("Failed to delete old profile picture")
		}
	}

	if err := s.profileStore.UpdateStudentProfilePicture(ctx, profileID, &path); err != nil {
		return nil, err
	}

	return s.profileStore.GetStudentProfileByID(ctx, profileID)
}

// CreateCouncillorProfile creates the councillor profile owned by the caller
func (s *ProfileService) CreateCouncillorProfile(ctx context.Context, userID int64, req *dto.CreateCouncillorProfileRequest) (*models.CouncillorProfile, error) {
	if !validation.IsValidPhoneNumber(req.PhoneNumber) {
		return nil, apperrors.NewValidationError("phone number does not match the expected format")
	}
	birthday, err := parseBirthday(req.Birthday)
	if err != nil {
		return nil, err
	}

	profile := &models.CouncillorProfile{
		UserID:            userID,
		Title:             models.CouncillorTitle(req.Title),
		Qualification:     req.Qualification,
		Discipline:        req.Discipline,
		YearsOfExperience: req.YearsOfExperience,
		Birthday:          birthday,
		Gender:            models.Gender(req.Gender),
		Address:           req.Address,
		PhoneNumber:       req.PhoneNumber,
		Country:           req.Country,
	}

	id, err := s.profileStore.CreateCouncillorProfile(ctx, profile)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", userID).Int64("profileId", id).Msg("Councillor profile created")
	return s.profileStore.GetCouncillorProfileByID(ctx, id)
}

// GetCouncillorProfile retrieves a councillor profile by id
func (s *ProfileService) GetCouncillorProfile(ctx context.Context, id int64) (*models.CouncillorProfile, error) {
	return s.profileStore.GetCouncillorProfileByID(ctx, id)
}

// GetOwnCouncillorProfile retrieves the caller's councillor profile
func (s *ProfileService) GetOwnCouncillorProfile(ctx context.Context, userID int64) (*models.CouncillorProfile, error) {
	return s.profileStore.GetCouncillorProfileByUserID(ctx, userID)
}

// GetAllCouncillorProfiles lists every councillor profile
func (s *ProfileService) GetAllCouncillorProfiles(ctx context.Context) ([]*models.CouncillorProfile, error) {
	return s.profileStore.GetAllCouncillorProfiles(ctx)
}

// UpdateCouncillorProfile replaces every field of an owned councillor profile
func (s *ProfileService) UpdateCouncillorProfile(ctx context.Context, actorID, profileID int64, req *dto.UpdateCouncillorProfileRequest) (*models.CouncillorProfile, error) {
	if !validation.IsValidPhoneNumber(req.PhoneNumber) {
		return nil, apperrors.NewValidationError("phone number does not match the expected format")
	}
	birthday, err := parseBirthday(req.Birthday)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileStore.GetCouncillorProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !appauth.IsOwner(actorID, profile.UserID) {
		return nil, apperrors.ErrPermissionDenied
	}

	profile.Title = models.CouncillorTitle(req.Title)
	profile.Qualification = req.Qualification
	profile.Discipline = req.Discipline
	profile.YearsOfExperience = req.YearsOfExperience
	profile.Birthday = birthday
	profile.Gender = models.Gender(req.Gender)
	profile.Address = req.Address
	profile.PhoneNumber = req.PhoneNumber
	profile.Country = req.Country

	if err := s.profileStore.UpdateCouncillorProfile(ctx, profile); err != nil {
		return nil, err
	}

	return s.profileStore.GetCouncillorProfileByID(ctx, profileID)
}

// UpdateCouncillorProfilePicture stores a new picture for an owned councillor profile
func (s *ProfileService) UpdateCouncillorProfilePicture(ctx context.Context, actorID, profileID int64, fileHeader *multipart.FileHeader) (*models.CouncillorProfile, error) {
	profile, err := s.profileStore.GetCouncillorProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !appauth.IsOwner(actorID, profile.UserID) {
		return nil, apperrors.ErrPermissionDenied
	}

	path, err := s.storage.SaveFileWithPath(fileHeader, profilePictureDir)
	if err != nil {
		return nil, fmt.Errorf("failed to store profile picture: %w", err)
	}

	if profile.ProfilePicture != nil {
		if err := s.storage.DeleteFile(*profile.ProfilePicture); err != nil {
			s.logger.Warn().Err(err).Int64("profileId", profileID).Msg("Failed to delete old profile picture")
		}
	}

	if err := s.profileStore.UpdateCouncillorProfilePicture(ctx, profileID, &path); err != nil {
		return nil, err
	}

	return s.profileStore.GetCouncillorProfileByID(ctx, profileID)
}
