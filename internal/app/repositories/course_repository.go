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

// CourseRepository handles course catalog database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sq squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sq: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateCourse adds a course to the catalog and returns its id
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course) (int64, error) {
	query, args, err := r.sq.Insert("courses").
		Columns("semester", "course_code", "course_name", "course_type", "course_unit",
			"minimum_credit", "maximum_credit").
		Values(course.Semester, course.CourseCode, course.CourseName, course.CourseType,
			course.CourseUnit, course.MinimumCredit, course.MaximumCredit).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building insert query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrCourseAlreadyExists
		}
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}

// GetCourseByID retrieves a course by ID
func (r *CourseRepository) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	query, args, err := r.sq.Select("id", "semester", "course_code", "course_name", "course_type",
		"course_unit", "minimum_credit", "maximum_credit", "created_at", "updated_at").
		From("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building select query: %w", err)
	}

	course := &models.Course{}
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&course.ID, &course.Semester, &course.CourseCode, &course.CourseName, &course.CourseType,
		&course.CourseUnit, &course.MinimumCredit, &course.MaximumCredit,
		&course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error getting course: %w", err)
	}

	return course, nil
}

// GetAllCourses lists the whole catalog, optionally filtered by semester
func (r *CourseRepository) GetAllCourses(ctx context.Context, semester models.Semester) ([]*models.Course, error) {
	builder := r.sq.Select("id", "semester", "course_code", "course_name", "course_type",
		"course_unit", "minimum_credit", "maximum_credit", "created_at", "updated_at").
		From("courses").
		OrderBy("id ASC")

	if semester != "" {
		builder = builder.Where(squirrel.Eq{"semester": semester})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building select query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course := &models.Course{}
		err := rows.Scan(
			&course.ID, &course.Semester, &course.CourseCode, &course.CourseName, &course.CourseType,
			&course.CourseUnit, &course.MinimumCredit, &course.MaximumCredit,
			&course.CreatedAt, &course.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}
