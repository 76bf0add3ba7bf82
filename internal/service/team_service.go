package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/cadet-records-api/internal/dto"
	"github.com/noah-isme/cadet-records-api/internal/models"
	appErrors "github.com/noah-isme/cadet-records-api/pkg/errors"
)

type teamRepository interface {
	List(ctx context.Context, filter models.TeamFilter) ([]models.Team, error)
	FindByID(ctx context.Context, id string) (*models.Team, error)
	Upsert(ctx context.Context, team *models.Team) error
}

// TeamService manages teams and their command chain.
type TeamService struct {
	teams     teamRepository
	courses   courseReader
	validator *validator.Validate
	logger    *zap.Logger
	newID     func() string
}

// NewTeamService constructs the team service.
func NewTeamService(teams teamRepository, courses courseReader, validate *validator.Validate, logger *zap.Logger) *TeamService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeamService{teams: teams, courses: courses, validator: validate, logger: logger, newID: uuid.NewString}
}

// List returns every team, or the teams of one course.
func (s *TeamService) List(ctx context.Context, filter models.TeamFilter) ([]models.Team, error) {
	teams, err := s.teams.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Storage(err, "list teams")
	}
	return teams, nil
}

// Get returns one team.
func (s *TeamService) Get(ctx context.Context, id string) (*models.Team, error) {
	team, err := s.teams.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "team not found")
		}
		return nil, appErrors.Storage(err, "load team")
	}
	return team, nil
}

// Save inserts or overwrites a team. Teams without an id get a generated "team-" id.
func (s *TeamService) Save(ctx context.Context, req dto.SaveTeamRequest) (*models.Team, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid team payload")
	}
	if _, err := s.courses.FindByID(ctx, req.CourseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Storage(err, "load course")
	}

	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = "team-" + s.newID()
	}
	team := req.Model(id)
	if err := s.teams.Upsert(ctx, &team); err != nil {
		return nil, appErrors.Storage(err, "save team")
	}
	return &team, nil
}
