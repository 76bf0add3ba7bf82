package handler

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/cadet-records-api/internal/dto"
	"github.com/noah-isme/cadet-records-api/internal/models"
	"github.com/noah-isme/cadet-records-api/internal/service"
	"github.com/noah-isme/cadet-records-api/pkg/response"
)

type teamService interface {
	List(ctx context.Context, filter models.TeamFilter) ([]models.Team, error)
	Save(ctx context.Context, req dto.SaveTeamRequest) (*models.Team, error)
}

type rosterExporter interface {
	Export(ctx context.Context, teamID, format string) (*service.RosterDocument, error)
}

// TeamHandler exposes team endpoints.
type TeamHandler struct {
	teams  teamService
	roster rosterExporter
}

// NewTeamHandler constructs TeamHandler.
func NewTeamHandler(teams teamService, roster rosterExporter) *TeamHandler {
	return &TeamHandler{teams: teams, roster: roster}
}

// List godoc
// @Summary List teams
// @Tags Teams
// @Produce json
// @Security BearerAuth
// @Param courseId query string false "Filter by course"
// @Success 200 {array} models.Team
// @Router /teams [get]
func (h *TeamHandler) List(c *gin.Context) {
	filter := models.TeamFilter{CourseID: strings.TrimSpace(c.Query("courseId"))}
	teams, err := h.teams.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, teams)
}

// Save godoc
// @Summary Create or update team
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.SaveTeamRequest true "Team payload"
// @Success 200 {object} response.Created
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /teams [post]
func (h *TeamHandler) Save(c *gin.Context) {
	var req dto.SaveTeamRequest
	if !bindJSON(c, &req, "invalid team payload") {
		return
	}

	team, err := h.teams.Save(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, response.Created{ID: team.ID, Success: true})
}

// Export godoc
// @Summary Export team roster
// @Tags Teams
// @Produce text/csv
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Param format query string false "csv or pdf" Enums(csv, pdf)
// @Success 200 {file} binary
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /teams/{id}/students/export [get]
func (h *TeamHandler) Export(c *gin.Context) {
	var query dto.TeamRosterExport
	_ = c.ShouldBindQuery(&query)

	doc, err := h.roster.Export(c.Request.Context(), c.Param("id"), query.Format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.File(c, doc.Filename, doc.ContentType, doc.Data)
}
