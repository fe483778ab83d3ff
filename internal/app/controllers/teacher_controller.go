package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/axela/cetpro-backend/internal/app/models/dto"
	"github.com/axela/cetpro-backend/internal/app/services"
	"github.com/axela/cetpro-backend/internal/middleware"
)

// TeacherController exposes the teacher self-service surface: own assignments and grading
type TeacherController struct {
	teacherService *services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService *services.TeacherService) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
	}
}

// MyAssignments lists the authenticated teacher's assignments
// @Summary List own assignments
// @Description Retrieves the teaching assignments of the authenticated teacher
// @Tags teacher
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AssignmentSummary} "Assignments retrieved"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Teacher record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/assignments [get]
func (c *TeacherController) MyAssignments(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	assignments, err := c.teacherService.MyAssignments(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      assignments,
		Timestamp: time.Now(),
	})
}

// Roster lists the grade records of one of the teacher's assignments
// @Summary Get assignment roster
// @Description Retrieves the students and grade records of an assignment owned by the authenticated teacher
// @Tags teacher
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.GradeRow} "Roster retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid assignment ID"
// @Failure 403 {object} dto.ErrorResponse "Assignment belongs to another teacher"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/assignments/{id}/grades [get]
func (c *TeacherController) Roster(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	roster, err := c.teacherService.Roster(ctx.Request.Context(), p, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      roster,
		Timestamp: time.Now(),
	})
}

// UpdateGrades records scores for one of the teacher's assignments
// @Summary Record grades
// @Description Writes scores into the grade records of an assignment owned by the authenticated teacher. All updates apply atomically.
// @Tags teacher
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateGradesRequest true "Grade updates"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Grades recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown grade record"
// @Failure 403 {object} dto.ErrorResponse "Assignment belongs to another teacher"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/grades [put]
func (c *TeacherController) UpdateGrades(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.UpdateGradesRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.teacherService.UpdateGrades(ctx.Request.Context(), p, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Grades recorded"},
		Timestamp: time.Now(),
	})
}
