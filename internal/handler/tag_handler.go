package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/cadet-records-api/internal/middleware"
	"github.com/noah-isme/cadet-records-api/internal/models"
	appErrors "github.com/noah-isme/cadet-records-api/pkg/errors"
	"github.com/noah-isme/cadet-records-api/pkg/response"
)

type tagService interface {
	List(ctx context.Context, userID string) ([]models.Tag, error)
	Create(ctx context.Context, userID string, req models.TagRequest) (*models.Tag, error)
	Update(ctx context.Context, userID, id string, req models.TagRequest) error
	Delete(ctx context.Context, userID, id string) error
}

// TagHandler exposes the caller's private notes.
type TagHandler struct {
	tags tagService
}

// NewTagHandler constructs TagHandler.
func NewTagHandler(tags tagService) *TagHandler {
	return &TagHandler{tags: tags}
}

func callerID(c *gin.Context) (string, bool) {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrMissingCredential, "missing credential"))
		return "", false
	}
	return claims.UserID, true
}

// List godoc
// @Summary List notes
// @Tags Tags
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Tag
// @Router /tags [get]
func (h *TagHandler) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	tags, err := h.tags.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tags)
}

// Create godoc
// @Summary Create note
// @Tags Tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.TagRequest true "Note"
// @Success 200 {object} response.Created
// @Router /tags [post]
func (h *TagHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req models.TagRequest
	if !bindJSON(c, &req, "invalid tag payload") {
		return
	}
	tag, err := h.tags.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, response.Created{ID: tag.ID, Success: true})
}

// Update godoc
// @Summary Update note
// @Tags Tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tag ID"
// @Param payload body models.TagRequest true "Note"
// @Success 200 {object} response.Success
// @Router /tags/{id} [put]
func (h *TagHandler) Update(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req models.TagRequest
	if !bindJSON(c, &req, "invalid tag payload") {
		return
	}
	if err := h.tags.Update(c.Request.Context(), userID, c.Param("id"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Done(c)
}

// Delete godoc
// @Summary Delete note
// @Tags Tags
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tag ID"
// @Success 200 {object} response.Success
// @Router /tags/{id} [delete]
func (h *TagHandler) Delete(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.tags.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Done(c)
}
