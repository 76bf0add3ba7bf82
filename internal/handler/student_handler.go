package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/cadet-records-api/internal/dto"
	"github.com/noah-isme/cadet-records-api/internal/models"
	"github.com/noah-isme/cadet-records-api/pkg/response"
)

type studentService interface {
	Get(ctx context.Context, id string) (*models.StudentDetail, error)
	ListByTeam(ctx context.Context, teamID string) ([]models.StudentDetail, error)
	Create(ctx context.Context, req dto.StudentRequest) (*models.Student, error)
	Update(ctx context.Context, id string, req dto.StudentRequest) error
	Delete(ctx context.Context, id string) error
}

// StudentHandler exposes student endpoints.
type StudentHandler struct {
	students studentService
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students studentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// ListByTeam godoc
// @Summary Team roster
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Param teamId path string true "Team ID"
// @Success 200 {array} models.StudentDetail
// @Router /students/team/{teamId} [get]
func (h *StudentHandler) ListByTeam(c *gin.Context) {
	students, err := h.students.ListByTeam(c.Request.Context(), c.Param("teamId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, students)
}

// Get godoc
// @Summary Student detail
// @Description Student with family members and discipline records, most recent record first
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} models.StudentDetail
// @Failure 404 {object} response.ErrorBody
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.students.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, student)
}

// Create godoc
// @Summary Create student
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.StudentRequest true "Student payload"
// @Success 200 {object} response.Created
// @Failure 400 {object} response.ErrorBody
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.StudentRequest
	if !bindJSON(c, &req, "invalid student payload") {
		return
	}

	student, err := h.students.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, response.Created{ID: student.ID, Success: true})
}

// Update godoc
// @Summary Update student
// @Description Omitted team and course keep their stored values. Omitted child lists are left untouched, empty lists clear them.
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param payload body dto.StudentRequest true "Student payload"
// @Success 200 {object} response.Success
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /students/{id} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	var req dto.StudentRequest
	if !bindJSON(c, &req, "invalid student payload") {
		return
	}

	if err := h.students.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Done(c)
}

// Delete godoc
// @Summary Delete student
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} response.Success
// @Router /students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.students.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Done(c)
}
