package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/axela/cetpro-backend/internal/app/models/dto"
	"github.com/axela/cetpro-backend/internal/app/services"
	"github.com/axela/cetpro-backend/internal/middleware"
)

// AcademicPeriodController handles academic period operations within the caller's institution
type AcademicPeriodController struct {
	periodService *services.AcademicPeriodService
}

// NewAcademicPeriodController creates a new AcademicPeriodController
func NewAcademicPeriodController(periodService *services.AcademicPeriodService) *AcademicPeriodController {
	return &AcademicPeriodController{
		periodService: periodService,
	}
}

// Create handles period creation
// @Summary Create an academic period
// @Description Creates a period in the caller's institution. An active period deactivates every other period of the institution.
// @Tags academic-periods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAcademicPeriodRequest true "Period information"
// @Success 201 {object} dto.APIResponse{data=models.AcademicPeriod} "Period created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "Period already exists for that name and year"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academic-periods [post]
func (c *AcademicPeriodController) Create(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.CreateAcademicPeriodRequest
	if !bindJSON(ctx, &req) {
		return
	}

	period, err := c.periodService.Create(ctx.Request.Context(), p, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      period,
		Timestamp: time.Now(),
	})
}

// GetAll lists the periods of the caller's institution
// @Summary List academic periods
// @Tags academic-periods
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.AcademicPeriod} "Periods retrieved"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academic-periods [get]
func (c *AcademicPeriodController) GetAll(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	periods, err := c.periodService.GetAll(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      periods,
		Timestamp: time.Now(),
	})
}

// GetActive retrieves the active period
// @Summary Get the active academic period
// @Description Retrieves the institution's currently active period
// @Tags academic-periods
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.AcademicPeriod} "Active period retrieved"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "No active period"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academic-periods/active [get]
func (c *AcademicPeriodController) GetActive(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	period, err := c.periodService.GetActive(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      period,
		Timestamp: time.Now(),
	})
}

// GetByID retrieves one period
// @Summary Get academic period by ID
// @Tags academic-periods
// @Produce json
// @Security BearerAuth
// @Param id path int true "Period ID"
// @Success 200 {object} dto.APIResponse{data=models.AcademicPeriod} "Period retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid period ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Period not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academic-periods/{id} [get]
func (c *AcademicPeriodController) GetByID(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	period, err := c.periodService.GetByID(ctx.Request.Context(), p, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      period,
		Timestamp: time.Now(),
	})
}

// Update handles period updates
// @Summary Update an academic period
// @Description Updates a period. Activating it deactivates every other period of the institution.
// @Tags academic-periods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Period ID"
// @Param request body dto.CreateAcademicPeriodRequest true "Period information"
// @Success 200 {object} dto.APIResponse{data=models.AcademicPeriod} "Period updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Period not found"
// @Failure 409 {object} dto.ErrorResponse "Period already exists for that name and year"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academic-periods/{id} [put]
func (c *AcademicPeriodController) Update(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateAcademicPeriodRequest
	if !bindJSON(ctx, &req) {
		return
	}

	period, err := c.periodService.Update(ctx.Request.Context(), p, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      period,
		Timestamp: time.Now(),
	})
}

// Delete handles period deletion
// @Summary Delete an academic period
// @Description Deletes a period. Blocked while admission processes or assignments reference it.
// @Tags academic-periods
// @Produce json
// @Security BearerAuth
// @Param id path int true "Period ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Period deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid period ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Period not found"
// @Failure 409 {object} dto.ErrorResponse "Period has dependent records"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academic-periods/{id} [delete]
func (c *AcademicPeriodController) Delete(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.periodService.Delete(ctx.Request.Context(), p, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Academic period deleted"},
		Timestamp: time.Now(),
	})
}
