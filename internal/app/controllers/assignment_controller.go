package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/axela/cetpro-backend/internal/app/models/dto"
	"github.com/axela/cetpro-backend/internal/app/services"
	"github.com/axela/cetpro-backend/internal/middleware"
)

// AssignmentController handles teaching assignment operations within the caller's institution
type AssignmentController struct {
	assignmentService *services.AssignmentService
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService *services.AssignmentService) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
	}
}

// Create handles assignment creation
// @Summary Create a teaching assignment
// @Description Assigns a teacher to a course for a period and shift. Course, teacher and period must belong to the caller's institution.
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAssignmentRequest true "Assignment information"
// @Success 201 {object} dto.APIResponse{data=models.Assignment} "Assignment created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Course, teacher or period not found"
// @Failure 409 {object} dto.ErrorResponse "Assignment already exists for that course, period and shift"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments [post]
func (c *AssignmentController) Create(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.CreateAssignmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	assignment, err := c.assignmentService.Create(ctx.Request.Context(), p, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      assignment,
		Timestamp: time.Now(),
	})
}

// GetAll lists the assignments of the caller's institution
// @Summary List teaching assignments
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AssignmentSummary} "Assignments retrieved"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments [get]
func (c *AssignmentController) GetAll(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	assignments, err := c.assignmentService.GetAll(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      assignments,
		Timestamp: time.Now(),
	})
}

// Update handles assignment updates
// @Summary Update a teaching assignment
// @Description Changes the teacher or shift of an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Param request body dto.CreateAssignmentRequest true "Assignment information"
// @Success 200 {object} dto.APIResponse{data=models.Assignment} "Assignment updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Assignment or teacher not found"
// @Failure 409 {object} dto.ErrorResponse "Assignment already exists for that course, period and shift"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments/{id} [put]
func (c *AssignmentController) Update(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateAssignmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	assignment, err := c.assignmentService.Update(ctx.Request.Context(), p, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      assignment,
		Timestamp: time.Now(),
	})
}

// Delete handles assignment deletion
// @Summary Delete a teaching assignment
// @Description Deletes an assignment. Blocked while grade records reference it.
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Assignment deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid assignment ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 409 {object} dto.ErrorResponse "Assignment has dependent grade records"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments/{id} [delete]
func (c *AssignmentController) Delete(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.assignmentService.Delete(ctx.Request.Context(), p, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Assignment deleted"},
		Timestamp: time.Now(),
	})
}
