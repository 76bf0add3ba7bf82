package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/cadet-records-api/internal/models"
)

const familyMemberColumns = "id, student_id, relation, full_name, birth_date, birth_place, address, job, phone_mobile, phone_home"

// FamilyMemberRepository stores the family members of students.
type FamilyMemberRepository struct {
	db *sqlx.DB
}

// NewFamilyMemberRepository constructs a FamilyMemberRepository.
func NewFamilyMemberRepository(db *sqlx.DB) *FamilyMemberRepository {
	return &FamilyMemberRepository{db: db}
}

// ListByStudent returns a student's family members ordered by name.
func (r *FamilyMemberRepository) ListByStudent(ctx context.Context, studentID string) ([]models.FamilyMember, error) {
	query := r.db.Rebind("SELECT " + familyMemberColumns + " FROM family_members WHERE student_id = ? ORDER BY full_name, id")
	members := []models.FamilyMember{}
	if err := r.db.SelectContext(ctx, &members, query, studentID); err != nil {
		return nil, fmt.Errorf("list family members: %w", err)
	}
	return members, nil
}

// ListByStudents returns the family members of several students grouped by student id.
func (r *FamilyMemberRepository) ListByStudents(ctx context.Context, studentIDs []string) (map[string][]models.FamilyMember, error) {
	grouped := make(map[string][]models.FamilyMember, len(studentIDs))
	if len(studentIDs) == 0 {
		return grouped, nil
	}
	query, args, err := sq.Select(familyMemberColumns).
		From("family_members").
		Where(sq.Eq{"student_id": studentIDs}).
		OrderBy("student_id", "full_name", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build family member query: %w", err)
	}
	var members []models.FamilyMember
	if err := r.db.SelectContext(ctx, &members, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list family members: %w", err)
	}
	for _, m := range members {
		grouped[m.StudentID] = append(grouped[m.StudentID], m)
	}
	return grouped, nil
}

// ExistingIDs lists the ids of a student's family members.
func (r *FamilyMemberRepository) ExistingIDs(ctx context.Context, studentID string) ([]string, error) {
	return childIDs(ctx, r.db, "family_members", "student_id", studentID)
}

// Insert adds a family member under studentID.
func (r *FamilyMemberRepository) Insert(ctx context.Context, studentID string, member models.FamilyMember) error {
	member.StudentID = studentID
	const query = `INSERT INTO family_members (id, student_id, relation, full_name, birth_date, birth_place, address, job, phone_mobile, phone_home)
        VALUES (:id, :student_id, :relation, :full_name, :birth_date, :birth_place, :address, :job, :phone_mobile, :phone_home)`
	if _, err := r.db.NamedExecContext(ctx, query, member); err != nil {
		return fmt.Errorf("insert family member: %w", err)
	}
	return nil
}

// Update rewrites a family member. Rows of other students are never matched.
func (r *FamilyMemberRepository) Update(ctx context.Context, studentID string, member models.FamilyMember) error {
	member.StudentID = studentID
	const query = `UPDATE family_members SET relation = :relation, full_name = :full_name, birth_date = :birth_date, birth_place = :birth_place, address = :address, job = :job, phone_mobile = :phone_mobile, phone_home = :phone_home WHERE id = :id AND student_id = :student_id`
	if _, err := r.db.NamedExecContext(ctx, query, member); err != nil {
		return fmt.Errorf("update family member: %w", err)
	}
	return nil
}

// Delete removes the listed family members of a student.
func (r *FamilyMemberRepository) Delete(ctx context.Context, studentID string, ids []string) error {
	return deleteChildren(ctx, r.db, "family_members", "student_id", studentID, ids)
}

// DeleteByStudent removes every family member of a student.
func (r *FamilyMemberRepository) DeleteByStudent(ctx context.Context, studentID string) error {
	return deleteScope(ctx, r.db, "family_members", "student_id", studentID)
}
