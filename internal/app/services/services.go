// Package services implements the business logic between controllers and
// repositories. Services depend on narrow store interfaces so they can be
// exercised against in-memory fakes in tests.
package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/adeolu/campusreg/internal/app/models"
	"github.com/adeolu/campusreg/internal/app/repositories"
	"github.com/adeolu/campusreg/internal/pkg/auth"
	"github.com/adeolu/campusreg/internal/pkg/filestorage"
)

// UserStore is the account persistence surface used by services
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	UsernameExists(ctx context.Context, username string, excludeID int64) (bool, error)
	UpdateAccount(ctx context.Context, userID int64, username, firstName, lastName, email string) error
	UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error
	UpdateLastLogin(ctx context.Context, userID int64) error
}

// TokenStore is the refresh token persistence surface used by services
type TokenStore interface {
	StoreRefreshToken(ctx context.Context, token *models.RefreshToken) error
	GetRefreshToken(ctx context.Context, tokenValue string) (*models.RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, tokenValue string) error
	RevokeUserRefreshTokens(ctx context.Context, userID int64) error
}

// ProfileStore is the profile persistence surface used by services
type ProfileStore interface {
	CreateStudentProfile(ctx context.Context, profile *models.StudentProfile) (int64, error)
	GetStudentProfileByID(ctx context.Context, id int64) (*models.StudentProfile, error)
	GetStudentProfileByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error)
	GetAllStudentProfiles(ctx context.Context) ([]*models.StudentProfile, error)
	UpdateStudentProfile(ctx context.Context, profile *models.StudentProfile) error
	UpdateStudentProfilePicture(ctx context.Context, profileID int64, picturePath *string) error
	CreateCouncillorProfile(ctx context.Context, profile *models.CouncillorProfile) (int64, error)
	GetCouncillorProfileByID(ctx context.Context, id int64) (*models.CouncillorProfile, error)
	GetCouncillorProfileByUserID(ctx context.Context, userID int64) (*models.CouncillorProfile, error)
	GetAllCouncillorProfiles(ctx context.Context) ([]*models.CouncillorProfile, error)
	UpdateCouncillorProfile(ctx context.Context, profile *models.CouncillorProfile) error
	UpdateCouncillorProfilePicture(ctx context.Context, profileID int64, picturePath *string) error
}

// CourseStore is the catalog persistence surface used by services
type CourseStore interface {
	CreateCourse(ctx context.Context, course *models.Course) (int64, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetAllCourses(ctx context.Context, semester models.Semester) ([]*models.Course, error)
}

// RegistrationStore is the enrollment persistence surface used by services
type RegistrationStore interface {
	CreateRegistration(ctx context.Context, userID, courseID int64) (int64, error)
	GetRegistrationByID(ctx context.Context, id int64) (*models.CourseRegistration, error)
	GetAllRegistrations(ctx context.Context) ([]*models.CourseRegistration, error)
	GetRegistrationsByUserID(ctx context.Context, userID int64) ([]*models.CourseRegistration, error)
	DeleteRegistration(ctx context.Context, id int64) error
}

// Services bundles every service for dependency injection
type Services struct {
	Auth         *AuthService
	Profile      *ProfileService
	Course       *CourseService
	Registration *RegistrationService
}

// NewServices wires every service against the shared repositories
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) *Services {
	return &Services{
		Auth:         NewAuthService(repos.User, repos.Token, jwtService, logger),
		Profile:      NewProfileService(repos.Profile, storage, logger),
		Course:       NewCourseService(repos.Course, logger),
		Registration: NewRegistrationService(repos.Registration, repos.Course, logger),
	}
}
