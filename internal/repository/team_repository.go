package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/cadet-records-api/internal/models"
)

const teamColumns = `id, course_id, name, commander, commander_rank, commander_contact,
        sub_commander_1, sub_commander_1_rank, sub_commander_1_contact,
        sub_commander_2, sub_commander_2_rank, sub_commander_2_contact,
        sub_commander_3, sub_commander_3_rank, sub_commander_3_contact`

// TeamRepository persists teams.
type TeamRepository struct {
	db *sqlx.DB
}

// NewTeamRepository constructs a TeamRepository.
func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// List returns teams, optionally restricted to one course.
func (r *TeamRepository) List(ctx context.Context, filter models.TeamFilter) ([]models.Team, error) {
	builder := sq.Select(teamColumns).From("teams").OrderBy("course_id", "LENGTH(name)", "name", "id")
	if filter.CourseID != "" {
		builder = builder.Where(sq.Eq{"course_id": filter.CourseID})
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build team query: %w", err)
	}
	teams := []models.Team{}
	if err := r.db.SelectContext(ctx, &teams, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

// FindByID fetches a team. sql.ErrNoRows is returned untouched when absent.
func (r *TeamRepository) FindByID(ctx context.Context, id string) (*models.Team, error) {
	var team models.Team
	if err := r.db.GetContext(ctx, &team, r.db.Rebind("SELECT "+teamColumns+" FROM teams WHERE id = ?"), id); err != nil {
		return nil, err
	}
	return &team, nil
}

// Upsert inserts the team or overwrites the row carrying the same id.
func (r *TeamRepository) Upsert(ctx context.Context, team *models.Team) error {
	const query = `INSERT INTO teams (id, course_id, name, commander, commander_rank, commander_contact,
        sub_commander_1, sub_commander_1_rank, sub_commander_1_contact,
        sub_commander_2, sub_commander_2_rank, sub_commander_2_contact,
        sub_commander_3, sub_commander_3_rank, sub_commander_3_contact)
        VALUES (:id, :course_id, :name, :commander, :commander_rank, :commander_contact,
        :sub_commander_1, :sub_commander_1_rank, :sub_commander_1_contact,
        :sub_commander_2, :sub_commander_2_rank, :sub_commander_2_contact,
        :sub_commander_3, :sub_commander_3_rank, :sub_commander_3_contact)
        ON CONFLICT (id) DO UPDATE SET course_id = excluded.course_id, name = excluded.name,
        commander = excluded.commander, commander_rank = excluded.commander_rank, commander_contact = excluded.commander_contact,
        sub_commander_1 = excluded.sub_commander_1, sub_commander_1_rank = excluded.sub_commander_1_rank,
        sub_commander_1_contact = excluded.sub_commander_1_contact,
        sub_commander_2 = excluded.sub_commander_2, sub_commander_2_rank = excluded.sub_commander_2_rank,
        sub_commander_2_contact = excluded.sub_commander_2_contact,
        sub_commander_3 = excluded.sub_commander_3, sub_commander_3_rank = excluded.sub_commander_3_rank,
        sub_commander_3_contact = excluded.sub_commander_3_contact`
	if _, err := r.db.NamedExecContext(ctx, query, team); err != nil {
		return fmt.Errorf("save team: %w", err)
	}
	return nil
}
