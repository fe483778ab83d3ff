package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/axela/cetpro-backend/internal/app/models/dto"
	"github.com/axela/cetpro-backend/internal/app/services"
	"github.com/axela/cetpro-backend/internal/middleware"
)

// InstitutionController handles institution management operations
type InstitutionController struct {
	institutionService *services.InstitutionService
}

// NewInstitutionController creates a new InstitutionController
func NewInstitutionController(institutionService *services.InstitutionService) *InstitutionController {
	return &InstitutionController{
		institutionService: institutionService,
	}
}

// Create handles institution creation
// @Summary Create an institution
// @Description Creates a new institution. Superadmin only.
// @Tags institutions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateInstitutionRequest true "Institution information"
// @Success 201 {object} dto.APIResponse{data=models.Institution} "Institution created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "Institution code already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /institutions [post]
func (c *InstitutionController) Create(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.CreateInstitutionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	institution, err := c.institutionService.Create(ctx.Request.Context(), p, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      institution,
		Timestamp: time.Now(),
	})
}

// GetAll lists institutions
// @Summary List institutions
// @Description Retrieves all institutions. Superadmin only.
// @Tags institutions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Institution} "Institutions retrieved"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /institutions [get]
func (c *InstitutionController) GetAll(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	institutions, err := c.institutionService.GetAll(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      institutions,
		Timestamp: time.Now(),
	})
}

// GetByID retrieves one institution
// @Summary Get institution by ID
// @Tags institutions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Institution ID"
// @Success 200 {object} dto.APIResponse{data=models.Institution} "Institution retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid institution ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Institution not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /institutions/{id} [get]
func (c *InstitutionController) GetByID(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	institution, err := c.institutionService.GetByID(ctx.Request.Context(), p, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      institution,
		Timestamp: time.Now(),
	})
}

// Update handles institution updates
// @Summary Update an institution
// @Tags institutions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Institution ID"
// @Param request body dto.UpdateInstitutionRequest true "Institution information"
// @Success 200 {object} dto.APIResponse{data=models.Institution} "Institution updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Institution not found"
// @Failure 409 {object} dto.ErrorResponse "Institution code already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /institutions/{id} [put]
func (c *InstitutionController) Update(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateInstitutionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	institution, err := c.institutionService.Update(ctx.Request.Context(), p, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      institution,
		Timestamp: time.Now(),
	})
}

// Delete handles institution deletion
// @Summary Delete an institution
// @Description Deletes an institution. Blocked while faculties, plans, periods, students or teachers still belong to it.
// @Tags institutions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Institution ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Institution deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid institution ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Institution not found"
// @Failure 409 {object} dto.ErrorResponse "Institution has dependent records"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /institutions/{id} [delete]
func (c *InstitutionController) Delete(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.institutionService.Delete(ctx.Request.Context(), p, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Institution deleted"},
		Timestamp: time.Now(),
	})
}
