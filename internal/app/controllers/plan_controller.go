package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/axela/cetpro-backend/internal/app/models/dto"
	"github.com/axela/cetpro-backend/internal/app/services"
	"github.com/axela/cetpro-backend/internal/middleware"
)

// PlanController handles study plan operations within the caller's institution
type PlanController struct {
	planService *services.PlanService
}

// NewPlanController creates a new PlanController
func NewPlanController(planService *services.PlanService) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// Create handles plan creation
// @Summary Create a study plan
// @Description Creates a plan in the caller's institution. An active plan deactivates every other plan of the institution.
// @Tags plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePlanRequest true "Plan information"
// @Success 201 {object} dto.APIResponse{data=models.Plan} "Plan created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "Plan title already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /plans [post]
func (c *PlanController) Create(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.CreatePlanRequest
	if !bindJSON(ctx, &req) {
		return
	}

	plan, err := c.planService.Create(ctx.Request.Context(), p, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      plan,
		Timestamp: time.Now(),
	})
}

// GetAll lists the plans of the caller's institution
// @Summary List study plans
// @Tags plans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Plan} "Plans retrieved"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /plans [get]
func (c *PlanController) GetAll(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	plans, err := c.planService.GetAll(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      plans,
		Timestamp: time.Now(),
	})
}

// GetByID retrieves one plan
// @Summary Get plan by ID
// @Tags plans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Success 200 {object} dto.APIResponse{data=models.Plan} "Plan retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid plan ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /plans/{id} [get]
func (c *PlanController) GetByID(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	plan, err := c.planService.GetByID(ctx.Request.Context(), p, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      plan,
		Timestamp: time.Now(),
	})
}

// Update handles plan updates
// @Summary Update a study plan
// @Description Updates a plan. Activating it deactivates every other plan of the institution.
// @Tags plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Param request body dto.CreatePlanRequest true "Plan information"
// @Success 200 {object} dto.APIResponse{data=models.Plan} "Plan updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Failure 409 {object} dto.ErrorResponse "Plan title already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /plans/{id} [put]
func (c *PlanController) Update(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreatePlanRequest
	if !bindJSON(ctx, &req) {
		return
	}

	plan, err := c.planService.Update(ctx.Request.Context(), p, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      plan,
		Timestamp: time.Now(),
	})
}

// Delete handles plan deletion
// @Summary Delete a study plan
// @Description Deletes a plan. Blocked while programs reference it.
// @Tags plans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Plan deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid plan ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Failure 409 {object} dto.ErrorResponse "Plan has dependent programs"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /plans/{id} [delete]
func (c *PlanController) Delete(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.planService.Delete(ctx.Request.Context(), p, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Plan deleted"},
		Timestamp: time.Now(),
	})
}
