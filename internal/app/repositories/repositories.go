// Package repositories implements database access on top of pgx.
package repositories

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories bundles every repository for dependency injection
type Repositories struct {
	User         *UserRepository
	Profile      *ProfileRepository
	Course       *CourseRepository
	Registration *RegistrationRepository
	Token        *TokenRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Profile:      NewProfileRepository(db),
		Course:       NewCourseRepository(db),
		Registration: NewRegistrationRepository(db),
		Token:        NewTokenRepository(db),
	}
}
