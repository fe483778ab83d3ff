package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/axela/cetpro-backend/internal/app/models/dto"
	"github.com/axela/cetpro-backend/internal/app/services"
	"github.com/axela/cetpro-backend/internal/middleware"
)

// AdmissionProcessController handles admission process operations within the caller's institution
type AdmissionProcessController struct {
	processService *services.AdmissionProcessService
}

// NewAdmissionProcessController creates a new AdmissionProcessController
func NewAdmissionProcessController(processService *services.AdmissionProcessService) *AdmissionProcessController {
	return &AdmissionProcessController{
		processService: processService,
	}
}

// Create handles admission process creation
// @Summary Create an admission process
// @Description Creates the admission process of an academic period. A period can hold at most one process.
// @Tags admission-processes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAdmissionProcessRequest true "Process information"
// @Success 201 {object} dto.APIResponse{data=models.AdmissionProcess} "Process created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Academic period not found"
// @Failure 409 {object} dto.ErrorResponse "Period already has a process"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admission-processes [post]
func (c *AdmissionProcessController) Create(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.CreateAdmissionProcessRequest
	if !bindJSON(ctx, &req) {
		return
	}

	process, err := c.processService.Create(ctx.Request.Context(), p, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      process,
		Timestamp: time.Now(),
	})
}

// GetAll lists the admission processes of the caller's institution
// @Summary List admission processes
// @Tags admission-processes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.AdmissionProcess} "Processes retrieved"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admission-processes [get]
func (c *AdmissionProcessController) GetAll(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	processes, err := c.processService.GetAll(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      processes,
		Timestamp: time.Now(),
	})
}

// GetByID retrieves one admission process
// @Summary Get admission process by ID
// @Tags admission-processes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Process ID"
// @Success 200 {object} dto.APIResponse{data=models.AdmissionProcess} "Process retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid process ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Process not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admission-processes/{id} [get]
func (c *AdmissionProcessController) GetByID(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	process, err := c.processService.GetByID(ctx.Request.Context(), p, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      process,
		Timestamp: time.Now(),
	})
}

// Update handles admission process updates
// @Summary Update an admission process
// @Tags admission-processes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Process ID"
// @Param request body dto.CreateAdmissionProcessRequest true "Process information"
// @Success 200 {object} dto.APIResponse{data=models.AdmissionProcess} "Process updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Process or period not found"
// @Failure 409 {object} dto.ErrorResponse "Period already has a process"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admission-processes/{id} [put]
func (c *AdmissionProcessController) Update(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateAdmissionProcessRequest
	if !bindJSON(ctx, &req) {
		return
	}

	process, err := c.processService.Update(ctx.Request.Context(), p, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      process,
		Timestamp: time.Now(),
	})
}

// Delete handles admission process deletion
// @Summary Delete an admission process
// @Description Deletes a process. Blocked while enrollments reference it.
// @Tags admission-processes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Process ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Process deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid process ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Process not found"
// @Failure 409 {object} dto.ErrorResponse "Process has dependent enrollments"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admission-processes/{id} [delete]
func (c *AdmissionProcessController) Delete(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.processService.Delete(ctx.Request.Context(), p, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Admission process deleted"},
		Timestamp: time.Now(),
	})
}
