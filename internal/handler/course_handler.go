package handler

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/cadet-records-api/internal/models"
	"github.com/noah-isme/cadet-records-api/pkg/response"
)

type courseService interface {
	List(ctx context.Context) ([]models.Course, error)
	Create(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error)
	Promote(ctx context.Context, force bool) (*models.PromotionResult, error)
}

// CourseHandler exposes course endpoints.
type CourseHandler struct {
	courses courseService
}

// NewCourseHandler constructs CourseHandler.
func NewCourseHandler(courses courseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// List godoc
// @Summary List courses
// @Tags Courses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Course
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courses.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, courses)
}

// Create godoc
// @Summary Open a course
// @Tags Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.CreateCourseRequest true "Course payload"
// @Success 200 {object} response.Created
// @Failure 400 {object} response.ErrorBody
// @Router /courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req models.CreateCourseRequest
	if !bindJSON(c, &req, "invalid course payload") {
		return
	}

	course, err := h.courses.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, response.Created{ID: course.ID, Success: true})
}

// Promote godoc
// @Summary Yearly course promotion
// @Description Runs on 15 August, or any day with force=true
// @Tags Courses
// @Produce json
// @Security BearerAuth
// @Param force query bool false "Run outside 15 August"
// @Success 200 {object} models.PromotionResult
// @Router /courses/promote [post]
func (h *CourseHandler) Promote(c *gin.Context) {
	force, _ := strconv.ParseBool(c.Query("force"))
	res, err := h.courses.Promote(c.Request.Context(), force)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, res)
}
