package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adeolu/campusreg/internal/app/models"
	"github.com/adeolu/campusreg/internal/pkg/apperrors"
	"github.com/adeolu/campusreg/internal/pkg/dberrors"
)

const studentProfileColumns = `sp.id, sp.user_id, sp.middle_name, sp.student_level, sp.birthday,
	sp.gender, sp.address, sp.phone_number, sp.country, sp.profile_picture, sp.created_at, sp.updated_at`

const councillorProfileColumns = `cp.id, cp.user_id, cp.title, cp.qualification,
	cp.discipline, cp.years_of_experience, cp.birthday, cp.gender, cp.address, cp.phone_number,
	cp.country, cp.profile_picture, cp.created_at, cp.updated_at`

// ProfileRepository handles student and councillor profile database operations
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

func scanStudentProfile(row pgx.Row) (*models.StudentProfile, error) {
	profile := &models.StudentProfile{User: &models.User{}}
	err := row.Scan(
		&profile.ID, &profile.UserID, &profile.MiddleName, &profile.StudentLevel, &profile.Birthday,
		&profile.Gender, &profile.Address, &profile.PhoneNumber, &profile.Country,
		&profile.ProfilePicture, &profile.CreatedAt, &profile.UpdatedAt,
		&profile.User.ID, &profile.User.Username, &profile.User.Email, &profile.User.FirstName,
		&profile.User.LastName, &profile.User.RegistrationNumber, &profile.User.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error scanning student profile row: %w", err)
	}
	return profile, nil
}

func scanCouncillorProfile(row pgx.Row) (*models.CouncillorProfile, error) {
	profile := &models.CouncillorProfile{User: &models.User{}}
	err := row.Scan(
		&profile.ID, &profile.UserID, &profile.Title, &profile.Qualification,
		&profile.Discipline, &profile.YearsOfExperience, &profile.Birthday, &profile.Gender,
		&profile.Address, &profile.PhoneNumber, &profile.Country, &profile.ProfilePicture,
		&profile.CreatedAt, &profile.UpdatedAt,
		&profile.User.ID, &profile.User.Username, &profile.User.Email, &profile.User.FirstName,
		&profile.User.LastName, &profile.User.RegistrationNumber, &profile.User.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error scanning councillor profile row: %w", err)
	}
	return profile, nil
}

// CreateStudentProfile creates a student profile and returns its id
func (r *ProfileRepository) CreateStudentProfile(ctx context.Context, profile *models.StudentProfile) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO student_profiles (user_id, middle_name, student_level, birthday, gender,
			address, phone_number, country, profile_picture)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		profile.UserID, profile.MiddleName, profile.StudentLevel, profile.Birthday, profile.Gender,
		profile.Address, profile.PhoneNumber, profile.Country, profile.ProfilePicture).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrProfileAlreadyExists
		}
		if dberrors.IsForeignKeyError(err) {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, fmt.Errorf("error creating student profile: %w", err)
	}

	return id, nil
}

// GetStudentProfileByID retrieves a student profile with its owning account
func (r *ProfileRepository) GetStudentProfileByID(ctx context.Context, id int64) (*models.StudentProfile, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+studentProfileColumns+`,
			u.id, u.username, u.email, u.first_name, u.last_name, u.registration_number, u.role
		FROM student_profiles sp
		JOIN users u ON u.id = sp.user_id
		WHERE sp.id = $1`, id)
	return scanStudentProfile(row)
}

// GetStudentProfileByUserID retrieves the student profile owned by an account
func (r *ProfileRepository) GetStudentProfileByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+studentProfileColumns+`,
			u.id, u.username, u.email, u.first_name, u.last_name, u.registration_number, u.role
		FROM student_profiles sp
		JOIN users u ON u.id = sp.user_id
		WHERE sp.user_id = $1`, userID)
	return scanStudentProfile(row)
}

// GetAllStudentProfiles lists every student profile with its owning account
func (r *ProfileRepository) GetAllStudentProfiles(ctx context.Context) ([]*models.StudentProfile, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+studentProfileColumns+`,
			u.id, u.username, u.email, u.first_name, u.last_name, u.registration_number, u.role
		FROM student_profiles sp
		JOIN users u ON u.id = sp.user_id
		ORDER BY sp.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("error querying student profiles: %w", err)
	}
	defer rows.Close()

	profiles := []*models.StudentProfile{}
	for rows.Next() {
		profile, err := scanStudentProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student profile rows: %w", err)
	}

	return profiles, nil
}

// UpdateStudentProfile replaces every mutable field of a student profile
func (r *ProfileRepository) UpdateStudentProfile(ctx context.Context, profile *models.StudentProfile) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE student_profiles
		SET middle_name = $1, student_level = $2, birthday = $3, gender = $4, address = $5,
			phone_number = $6, country = $7, updated_at = $8
		WHERE id = $9`,
		profile.MiddleName, profile.StudentLevel, profile.Birthday, profile.Gender, profile.Address,
		profile.PhoneNumber, profile.Country, time.Now(), profile.ID)
	if err != nil {
		return fmt.Errorf("error updating student profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}
	return nil
}

// UpdateStudentProfilePicture stores the picture path for a student profile
func (r *ProfileRepository) UpdateStudentProfilePicture(ctx context.Context, profileID int64, picturePath *string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE student_profiles SET profile_picture = $1, updated_at = $2 WHERE id = $3`,
		picturePath, time.Now(), profileID)
	if err != nil {
		return fmt.Errorf("error updating student profile picture: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}
	return nil
}

// CreateCouncillorProfile creates a councillor profile and returns its id
func (r *ProfileRepository) CreateCouncillorProfile(ctx context.Context, profile *models.CouncillorProfile) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO councillor_profiles (user_id, title, qualification, discipline,
			years_of_experience, birthday, gender, address, phone_number, country, profile_picture)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		profile.UserID, profile.Title, profile.Qualification, profile.Discipline,
		profile.YearsOfExperience, profile.Birthday, profile.Gender, profile.Address,
		profile.PhoneNumber, profile.Country, profile.ProfilePicture).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrProfileAlreadyExists
		}
		if dberrors.IsForeignKeyError(err) {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, fmt.Errorf("error creating councillor profile: %w", err)
	}

	return id, nil
}

// GetCouncillorProfileByID retrieves a councillor profile with its owning account
func (r *ProfileRepository) GetCouncillorProfileByID(ctx context.Context, id int64) (*models.CouncillorProfile, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+councillorProfileColumns+`,
			u.id, u.username, u.email, u.first_name, u.last_name, u.registration_number, u.role
		FROM councillor_profiles cp
		JOIN users u ON u.id = cp.user_id
		WHERE cp.id = $1`, id)
	return scanCouncillorProfile(row)
}

// GetCouncillorProfileByUserID retrieves the councillor profile owned by an account
func (r *ProfileRepository) GetCouncillorProfileByUserID(ctx context.Context, userID int64) (*models.CouncillorProfile, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+councillorProfileColumns+`,
			u.id, u.username, u.email, u.first_name, u.last_name, u.registration_number, u.role
		FROM councillor_profiles cp
		JOIN users u ON u.id = cp.user_id
		WHERE cp.user_id = $1`, userID)
	return scanCouncillorProfile(row)
}

// GetAllCouncillorProfiles lists every councillor profile with its owning account
func (r *ProfileRepository) GetAllCouncillorProfiles(ctx context.Context) ([]*models.CouncillorProfile, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+councillorProfileColumns+`,
			u.id, u.username, u.email, u.first_name, u.last_name, u.registration_number, u.role
		FROM councillor_profiles cp
		JOIN users u ON u.id = cp.user_id
		ORDER BY cp.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("error querying councillor profiles: %w", err)
	}
	defer rows.Close()

	profiles := []*models.CouncillorProfile{}
	for rows.Next() {
		profile, err := scanCouncillorProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating councillor profile rows: %w", err)
	}

	return profiles, nil
}

// UpdateCouncillorProfile replaces every mutable field of a councillor profile
func (r *ProfileRepository) UpdateCouncillorProfile(ctx context.Context, profile *models.CouncillorProfile) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE councillor_profiles
		SET title = $1, qualification = $2, discipline = $3,
			years_of_experience = $4, birthday = $5, gender = $6, address = $7, phone_number = $8,
			country = $9, updated_at = $10
		WHERE id = $11`,
		profile.Title, profile.Qualification, profile.Discipline,
		profile.YearsOfExperience, profile.Birthday, profile.Gender, profile.Address,
		profile.PhoneNumber, profile.Country, time.Now(), profile.ID)
	if err != nil {
		return fmt.Errorf("error updating councillor profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}
	return nil
}

// UpdateCouncillorProfilePicture stores the picture path for a councillor profile
func (r *ProfileRepository) UpdateCouncillorProfilePicture(ctx context.Context, profileID int64, picturePath *string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE councillor_profiles SET profile_picture = $1, updated_at = $2 WHERE id = $3`,
		picturePath, time.Now(), profileID)
	if err != nil {
		return fmt.Errorf("error updating councillor profile picture: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}
	return nil
}
