package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/cadet-records-api/internal/models"
)

const disciplineRecordColumns = "id, student_id, date, year, event, score_change, note"

// DisciplineRecordRepository stores the conduct history of students.
type DisciplineRecordRepository struct {
	db *sqlx.DB
}

// NewDisciplineRecordRepository constructs a DisciplineRecordRepository.
func NewDisciplineRecordRepository(db *sqlx.DB) *DisciplineRecordRepository {
	return &DisciplineRecordRepository{db: db}
}

// ListByStudent returns a student's records, most recent first.
func (r *DisciplineRecordRepository) ListByStudent(ctx context.Context, studentID string) ([]models.DisciplineRecord, error) {
	query := r.db.Rebind("SELECT " + disciplineRecordColumns + " FROM discipline_records WHERE student_id = ? ORDER BY date DESC, id DESC")
	records := []models.DisciplineRecord{}
	if err := r.db.SelectContext(ctx, &records, query, studentID); err != nil {
		return nil, fmt.Errorf("list discipline records: %w", err)
	}
	return records, nil
}

// ListByStudents returns the records of several students grouped by student id, most recent first.
func (r *DisciplineRecordRepository) ListByStudents(ctx context.Context, studentIDs []string) (map[string][]models.DisciplineRecord, error) {
	grouped := make(map[string][]models.DisciplineRecord, len(studentIDs))
	if len(studentIDs) == 0 {
		return grouped, nil
	}
	query, args, err := sq.Select(disciplineRecordColumns).
		From("discipline_records").
		Where(sq.Eq{"student_id": studentIDs}).
		OrderBy("student_id", "date DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build discipline record query: %w", err)
	}
	var records []models.DisciplineRecord
	if err := r.db.SelectContext(ctx, &records, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list discipline records: %w", err)
	}
	for _, rec := range records {
		grouped[rec.StudentID] = append(grouped[rec.StudentID], rec)
	}
	return grouped, nil
}

// ExistingIDs lists the ids of a student's discipline records.
func (r *DisciplineRecordRepository) ExistingIDs(ctx context.Context, studentID string) ([]string, error) {
	return childIDs(ctx, r.db, "discipline_records", "student_id", studentID)
}

// Insert adds a discipline record under studentID.
func (r *DisciplineRecordRepository) Insert(ctx context.Context, studentID string, record models.DisciplineRecord) error {
	record.StudentID = studentID
	const query = `INSERT INTO discipline_records (id, student_id, date, year, event, score_change, note)
        VALUES (:id, :student_id, :date, :year, :event, :score_change, :note)`
	if _, err := r.db.NamedExecContext(ctx, query, record); err != nil {
		return fmt.Errorf("insert discipline record: %w", err)
	}
	return nil
}

// Update rewrites a discipline record owned by studentID.
func (r *DisciplineRecordRepository) Update(ctx context.Context, studentID string, record models.DisciplineRecord) error {
	record.StudentID = studentID
	const query = `UPDATE discipline_records SET date = :date, year = :year, event = :event, score_change = :score_change, note = :note WHERE id = :id AND student_id = :student_id`
	if _, err := r.db.NamedExecContext(ctx, query, record); err != nil {
		return fmt.Errorf("update discipline record: %w", err)
	}
	return nil
}

// Delete removes the listed records of a student.
func (r *DisciplineRecordRepository) Delete(ctx context.Context, studentID string, ids []string) error {
	return deleteChildren(ctx, r.db, "discipline_records", "student_id", studentID, ids)
}

// DeleteByStudent removes a student's whole history.
func (r *DisciplineRecordRepository) DeleteByStudent(ctx context.Context, studentID string) error {
	return deleteScope(ctx, r.db, "discipline_records", "student_id", studentID)
}
