package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/cadet-records-api/internal/models"
)

const leadershipColumns = "id, course_id, full_name, position, rank, email, phone, photo_url, bio"

// LeadershipRepository persists the one leadership profile per course.
type LeadershipRepository struct {
	db *sqlx.DB
}

// NewLeadershipRepository constructs a LeadershipRepository.
func NewLeadershipRepository(db *sqlx.DB) *LeadershipRepository {
	return &LeadershipRepository{db: db}
}

// FindByID fetches a leadership row. sql.ErrNoRows is returned untouched when absent.
func (r *LeadershipRepository) FindByID(ctx context.Context, id string) (*models.Leadership, error) {
	var l models.Leadership
	if err := r.db.GetContext(ctx, &l, r.db.Rebind("SELECT "+leadershipColumns+" FROM leadership WHERE id = ?"), id); err != nil {
		return nil, err
	}
	return &l, nil
}

// FindByCourse fetches the leadership of a course. sql.ErrNoRows is returned untouched when absent.
func (r *LeadershipRepository) FindByCourse(ctx context.Context, courseID string) (*models.Leadership, error) {
	var l models.Leadership
	if err := r.db.GetContext(ctx, &l, r.db.Rebind("SELECT "+leadershipColumns+" FROM leadership WHERE course_id = ?"), courseID); err != nil {
		return nil, err
	}
	return &l, nil
}

// Create inserts a leadership row.
func (r *LeadershipRepository) Create(ctx context.Context, l *models.Leadership) error {
	const query = `INSERT INTO leadership (id, course_id, full_name, position, rank, email, phone, photo_url, bio)
        VALUES (:id, :course_id, :full_name, :position, :rank, :email, :phone, :photo_url, :bio)`
	if _, err := r.db.NamedExecContext(ctx, query, l); err != nil {
		return fmt.Errorf("create leadership: %w", err)
	}
	return nil
}

// Update rewrites the profile fields. The course reference never changes.
func (r *LeadershipRepository) Update(ctx context.Context, l *models.Leadership) error {
	const query = `UPDATE leadership SET full_name = :full_name, position = :position, rank = :rank, email = :email,
        phone = :phone, photo_url = :photo_url, bio = :bio WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, l); err != nil {
		return fmt.Errorf("update leadership: %w", err)
	}
	return nil
}

// Delete removes a leadership row. Staff rows keep living under the course.
func (r *LeadershipRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM leadership WHERE id = ?"), id); err != nil {
		return fmt.Errorf("delete leadership: %w", err)
	}
	return nil
}
