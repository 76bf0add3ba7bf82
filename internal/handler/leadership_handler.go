package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/cadet-records-api/internal/dto"
	"github.com/noah-isme/cadet-records-api/internal/models"
	"github.com/noah-isme/cadet-records-api/pkg/response"
)

type leadershipService interface {
	GetByCourse(ctx context.Context, courseID string) ([]models.LeadershipDetail, error)
	Save(ctx context.Context, req dto.LeadershipRequest) (*models.LeadershipSaveResult, error)
	Delete(ctx context.Context, id string) error
}

// LeadershipHandler exposes course leadership endpoints.
type LeadershipHandler struct {
	service leadershipService
}

// NewLeadershipHandler constructs LeadershipHandler.
func NewLeadershipHandler(svc leadershipService) *LeadershipHandler {
	return &LeadershipHandler{service: svc}
}

// GetByCourse godoc
// @Summary Course leadership
// @Description Returns a one element list, or an empty list when the course has no leadership
// @Tags Leadership
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Success 200 {array} models.LeadershipDetail
// @Router /leadership/{courseId} [get]
func (h *LeadershipHandler) GetByCourse(c *gin.Context) {
	list, err := h.service.GetByCourse(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, list)
}

// Save godoc
// @Summary Save course leadership
// @Description Upserts the leadership and replaces the whole staff roster
// @Tags Leadership
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.LeadershipRequest true "Leadership payload"
// @Success 200 {object} models.LeadershipSaveResult
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /leadership [post]
func (h *LeadershipHandler) Save(c *gin.Context) {
	var req dto.LeadershipRequest
	if !bindJSON(c, &req, "invalid leadership payload") {
		return
	}

	res, err := h.service.Save(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, res)
}

// Delete godoc
// @Summary Delete course leadership
// @Tags Leadership
// @Produce json
// @Security BearerAuth
// @Param id path string true "Leadership ID"
// @Success 200 {object} response.Deleted
// @Router /leadership/{id} [delete]
func (h *LeadershipHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, response.Deleted{Deleted: true})
}
