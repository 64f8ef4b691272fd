package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adeolu/campusreg/internal/app/models"
	"github.com/adeolu/campusreg/internal/pkg/apperrors"
	"github.com/adeolu/campusreg/internal/pkg/dberrors"
)

var registrationColumns = []string{
	"cr.id", "cr.user_id", "cr.course_id", "cr.created_at",
	"u.id", "u.username", "u.email", "u.first_name", "u.last_name", "u.registration_number", "u.role",
	"c.id", "c.semester", "c.course_code", "c.course_name", "c.course_type", "c.course_unit",
	"c.minimum_credit", "c.maximum_credit", "c.created_at", "c.updated_at",
}

// RegistrationRepository handles course enrollment database operations
type RegistrationRepository struct {
	db *pgxpool.Pool
	sq squirrel.StatementBuilderType
}

// NewRegistrationRepository creates a new RegistrationRepository
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
		sq: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanRegistration(row pgx.Row) (*models.CourseRegistration, error) {
	reg := &models.CourseRegistration{User: &models.User{}, Course: &models.Course{}}
	err := row.Scan(
		&reg.ID, &reg.UserID, &reg.CourseID, &reg.CreatedAt,
		&reg.User.ID, &reg.User.Username, &reg.User.Email, &reg.User.FirstName, &reg.User.LastName,
		&reg.User.RegistrationNumber, &reg.User.Role,
		&reg.Course.ID, &reg.Course.Semester, &reg.Course.CourseCode, &reg.Course.CourseName,
		&reg.Course.CourseType, &reg.Course.CourseUnit, &reg.Course.MinimumCredit,
		&reg.Course.MaximumCredit, &reg.Course.CreatedAt, &reg.Course.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("error scanning registration row: %w", err)
	}
	return reg, nil
}

// CreateRegistration enrolls a user in a course and returns the registration id
func (r *RegistrationRepository) CreateRegistration(ctx context.Context, userID, courseID int64) (int64, error) {
	query, args, err := r.sq.Insert("course_registrations").
		Columns("user_id", "course_id").
		Values(userID, courseID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building insert query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrAlreadyRegistered
		}
		if dberrors.IsForeignKeyError(err) {
			return 0, apperrors.ErrCourseNotFound
		}
		return 0, fmt.Errorf("error creating registration: %w", err)
	}

	return id, nil
}

// GetRegistrationByID retrieves a registration with its user and course
func (r *RegistrationRepository) GetRegistrationByID(ctx context.Context, id int64) (*models.CourseRegistration, error) {
	query, args, err := r.sq.Select(registrationColumns...).
		From("course_registrations cr").
		Join("users u ON u.id = cr.user_id").
		Join("courses c ON c.id = cr.course_id").
		Where(squirrel.Eq{"cr.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building select query: %w", err)
	}

	return scanRegistration(r.db.QueryRow(ctx, query, args...))
}

// GetAllRegistrations lists every registration with its user and course
func (r *RegistrationRepository) GetAllRegistrations(ctx context.Context) ([]*models.CourseRegistration, error) {
	query, args, err := r.sq.Select(registrationColumns...).
		From("course_registrations cr").
		Join("users u ON u.id = cr.user_id").
		Join("courses c ON c.id = cr.course_id").
		OrderBy("cr.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building select query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying registrations: %w", err)
	}
	defer rows.Close()

	registrations := []*models.CourseRegistration{}
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		registrations = append(registrations, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registration rows: %w", err)
	}

	return registrations, nil
}

// GetRegistrationsByUserID lists a single user's registrations
func (r *RegistrationRepository) GetRegistrationsByUserID(ctx context.Context, userID int64) ([]*models.CourseRegistration, error) {
	query, args, err := r.sq.Select(registrationColumns...).
		From("course_registrations cr").
		Join("users u ON u.id = cr.user_id").
		Join("courses c ON c.id = cr.course_id").
		Where(squirrel.Eq{"cr.user_id": userID}).
		OrderBy("cr.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building select query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying user registrations: %w", err)
	}
	defer rows.Close()

	registrations := []*models.CourseRegistration{}
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		registrations = append(registrations, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registration rows: %w", err)
	}

	return registrations, nil
}

// DeleteRegistration removes an enrollment
func (r *RegistrationRepository) DeleteRegistration(ctx context.Context, id int64) error {
	query, args, err := r.sq.Delete("course_registrations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building delete query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error deleting registration: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRegistrationNotFound
	}
	return nil
}
