package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/cadet-records-api/internal/models"
	appErrors "github.com/noah-isme/cadet-records-api/pkg/errors"
	"github.com/noah-isme/cadet-records-api/pkg/export"
)

type rosterSource interface {
	ListByTeam(ctx context.Context, teamID string) ([]models.StudentDetail, error)
}

// Renderer turns a roster table into a document.
type Renderer interface {
	Render(t export.Table) ([]byte, error)
	ContentType() string
	Extension() string
}

// RosterDocument is a rendered roster ready for download.
type RosterDocument struct {
	Filename    string
	ContentType string
	Data        []byte
}

// RosterService exports team rosters.
type RosterService struct {
	students  rosterSource
	teams     teamReader
	renderers map[string]Renderer
	logger    *zap.Logger
}

// NewRosterService wires the CSV and PDF renderers.
func NewRosterService(students rosterSource, teams teamReader, logger *zap.Logger) *RosterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RosterService{
		students: students,
		teams:    teams,
		renderers: map[string]Renderer{
			"csv": export.NewCSV(),
			"pdf": export.NewPDF(),
		},
		logger: logger,
	}
}

// Export renders the roster of teamID. An empty format means csv.
func (s *RosterService) Export(ctx context.Context, teamID, format string) (*RosterDocument, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "csv"
	}
	renderer, ok := s.renderers[format]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be one of csv pdf")
	}

	team, err := s.teams.FindByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "team not found")
		}
		return nil, appErrors.Storage(err, "load team")
	}

	students, err := s.students.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	data, err := renderer.Render(rosterTable(team, students))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render roster")
	}
	s.logger.Debug("roster exported", zap.String("team_id", teamID), zap.String("format", format), zap.Int("students", len(students)))

	return &RosterDocument{
		Filename:    fmt.Sprintf("roster-%s.%s", team.ID, renderer.Extension()),
		ContentType: renderer.ContentType(),
		Data:        data,
	}, nil
}

func rosterTable(team *models.Team, students []models.StudentDetail) export.Table {
	table := export.Table{
		Title: team.Name,
		Columns: []export.Column{
			{Header: "#", Width: 10},
			{Header: "Name"},
			{Header: "Rank", Width: 30},
			{Header: "Phone", Width: 35},
			{Header: "Email", Width: 60},
			{Header: "Score", Width: 18},
		},
		Rows: make([][]string, 0, len(students)),
	}
	if team.Commander != "" {
		table.Title = fmt.Sprintf("%s (%s)", team.Name, team.Commander)
	}
	for i, st := range students {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(i + 1),
			st.FullName(),
			st.Rank,
			st.Phone,
			st.Email,
			strconv.Itoa(st.CurrentScore),
		})
	}
	return table
}
