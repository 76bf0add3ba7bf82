package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/cadet-records-api/internal/models"
)

const leadershipStaffColumns = "id, course_id, leadership_id, full_name, position, rank, email, phone, photo_url"

// LeadershipStaffRepository stores course leadership rosters. Rows are scoped by course id.
type LeadershipStaffRepository struct {
	db *sqlx.DB
}

// NewLeadershipStaffRepository constructs a LeadershipStaffRepository.
func NewLeadershipStaffRepository(db *sqlx.DB) *LeadershipStaffRepository {
	return &LeadershipStaffRepository{db: db}
}

// ListByCourse returns the staff roster of a course.
func (r *LeadershipStaffRepository) ListByCourse(ctx context.Context, courseID string) ([]models.LeadershipStaff, error) {
	query := r.db.Rebind("SELECT " + leadershipStaffColumns + " FROM leadership_staff WHERE course_id = ? ORDER BY full_name, id")
	staff := []models.LeadershipStaff{}
	if err := r.db.SelectContext(ctx, &staff, query, courseID); err != nil {
		return nil, fmt.Errorf("list leadership staff: %w", err)
	}
	return staff, nil
}

// ExistingIDs lists the staff ids of a course.
func (r *LeadershipStaffRepository) ExistingIDs(ctx context.Context, courseID string) ([]string, error) {
	return childIDs(ctx, r.db, "leadership_staff", "course_id", courseID)
}

// Insert adds a staff member to the course roster.
func (r *LeadershipStaffRepository) Insert(ctx context.Context, courseID string, staff models.LeadershipStaff) error {
	staff.CourseID = courseID
	const query = `INSERT INTO leadership_staff (id, course_id, leadership_id, full_name, position, rank, email, phone, photo_url)
        VALUES (:id, :course_id, :leadership_id, :full_name, :position, :rank, :email, :phone, :photo_url)`
	if _, err := r.db.NamedExecContext(ctx, query, staff); err != nil {
		return fmt.Errorf("insert leadership staff: %w", err)
	}
	return nil
}

// Update rewrites a staff member of the course roster.
func (r *LeadershipStaffRepository) Update(ctx context.Context, courseID string, staff models.LeadershipStaff) error {
	staff.CourseID = courseID
	const query = `UPDATE leadership_staff SET leadership_id = :leadership_id, full_name = :full_name, position = :position,
        rank = :rank, email = :email, phone = :phone, photo_url = :photo_url WHERE id = :id AND course_id = :course_id`
	if _, err := r.db.NamedExecContext(ctx, query, staff); err != nil {
		return fmt.Errorf("update leadership staff: %w", err)
	}
	return nil
}

// Delete removes the listed staff members of a course.
func (r *LeadershipStaffRepository) Delete(ctx context.Context, courseID string, ids []string) error {
	return deleteChildren(ctx, r.db, "leadership_staff", "course_id", courseID, ids)
}

// DeleteByLeadership removes the staff attached to a leadership row.
func (r *LeadershipStaffRepository) DeleteByLeadership(ctx context.Context, leadershipID string) error {
	return deleteScope(ctx, r.db, "leadership_staff", "leadership_id", leadershipID)
}
