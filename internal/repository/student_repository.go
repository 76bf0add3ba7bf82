package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/cadet-records-api/internal/models"
)

const studentColumns = `id, team_id, course_id, first_name, last_name, father_name, birth_date, birth_place,
        registered_address, current_address, work_number, origin_location, service_start_year, position, rank, awards,
        foreign_languages, sports_achievements, id_card_number, service_card_number, email, phone, phone_home, address,
        emergency_contact, military_service, height, weight, photo_url, current_score`

// StudentRepository manages persistence for student rows.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// FindByID fetches a student by ID. sql.ErrNoRows is returned untouched when absent.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	query := r.db.Rebind("SELECT " + studentColumns + " FROM students WHERE id = ?")
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		return nil, err
	}
	return &student, nil
}

// ListByTeam returns the students of a team ordered by name.
func (r *StudentRepository) ListByTeam(ctx context.Context, teamID string) ([]models.Student, error) {
	query := r.db.Rebind("SELECT " + studentColumns + " FROM students WHERE team_id = ? ORDER BY last_name, first_name, id")
	students := []models.Student{}
	if err := r.db.SelectContext(ctx, &students, query, teamID); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// Create inserts a new student row. The ID must already be set.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	const query = `INSERT INTO students (id, team_id, course_id, first_name, last_name, father_name, birth_date, birth_place,
        registered_address, current_address, work_number, origin_location, service_start_year, position, rank, awards,
        foreign_languages, sports_achievements, id_card_number, service_card_number, email, phone, phone_home, address,
        emergency_contact, military_service, height, weight, photo_url, current_score)
        VALUES (:id, :team_id, :course_id, :first_name, :last_name, :father_name, :birth_date, :birth_place,
        :registered_address, :current_address, :work_number, :origin_location, :service_start_year, :position, :rank, :awards,
        :foreign_languages, :sports_achievements, :id_card_number, :service_card_number, :email, :phone, :phone_home, :address,
        :emergency_contact, :military_service, :height, :weight, :photo_url, :current_score)`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// Update writes every column of an existing student.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	const query = `UPDATE students SET team_id = :team_id, course_id = :course_id, first_name = :first_name, last_name = :last_name,
        father_name = :father_name, birth_date = :birth_date, birth_place = :birth_place, registered_address = :registered_address,
        current_address = :current_address, work_number = :work_number, origin_location = :origin_location,
        service_start_year = :service_start_year, position = :position, rank = :rank, awards = :awards,
        foreign_languages = :foreign_languages, sports_achievements = :sports_achievements, id_card_number = :id_card_number,
        service_card_number = :service_card_number, email = :email, phone = :phone, phone_home = :phone_home, address = :address,
        emergency_contact = :emergency_contact, military_service = :military_service, height = :height, weight = :weight,
        photo_url = :photo_url, current_score = :current_score WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	return nil
}

// Delete removes the student row. Deleting a missing id is not an error.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM students WHERE id = ?"), id); err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	return nil
}
