package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/cadet-records-api/internal/models"
)

const courseColumns = "id, name, level, is_active, archived, start_year, end_year, team_count"

// CourseRepository persists courses.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns courses ordered by level then name. activeOnly drops archived courses.
func (r *CourseRepository) List(ctx context.Context, activeOnly bool) ([]models.Course, error) {
	builder := sq.Select(courseColumns).From("courses").OrderBy("level", "name", "id")
	if activeOnly {
		builder = builder.Where(sq.Eq{"is_active": true})
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build course query: %w", err)
	}
	courses := []models.Course{}
	if err := r.db.SelectContext(ctx, &courses, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// FindByID fetches a course. sql.ErrNoRows is returned untouched when absent.
func (r *CourseRepository) FindByID(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	if err := r.db.GetContext(ctx, &course, r.db.Rebind("SELECT "+courseColumns+" FROM courses WHERE id = ?"), id); err != nil {
		return nil, err
	}
	return &course, nil
}

// Create inserts a course.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	const query = `INSERT INTO courses (id, name, level, is_active, archived, start_year, end_year, team_count)
        VALUES (:id, :name, :level, :is_active, :archived, :start_year, :end_year, :team_count)`
	if _, err := r.db.NamedExecContext(ctx, query, course); err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// Update writes the mutable course columns.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	const query = `UPDATE courses SET name = :name, level = :level, is_active = :is_active, archived = :archived,
        start_year = :start_year, end_year = :end_year, team_count = :team_count WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, course); err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	return nil
}
