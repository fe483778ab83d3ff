package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/axela/cetpro-backend/internal/app/models/dto"
	"github.com/axela/cetpro-backend/internal/app/services"
	"github.com/axela/cetpro-backend/internal/middleware"
)

// FacultyController handles faculty operations within the caller's institution
type FacultyController struct {
	facultyService *services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService *services.FacultyService) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
	}
}

// Create handles faculty creation
// @Summary Create a faculty
// @Description Creates a faculty in the caller's institution
// @Tags faculties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFacultyRequest true "Faculty information"
// @Success 201 {object} dto.APIResponse{data=models.Faculty} "Faculty created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "Faculty name already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculties [post]
func (c *FacultyController) Create(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.CreateFacultyRequest
	if !bindJSON(ctx, &req) {
		return
	}

	faculty, err := c.facultyService.Create(ctx.Request.Context(), p, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      faculty,
		Timestamp: time.Now(),
	})
}

// GetAll lists the faculties of the caller's institution
// @Summary List faculties
// @Tags faculties
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Faculty} "Faculties retrieved"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculties [get]
func (c *FacultyController) GetAll(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	faculties, err := c.facultyService.GetAll(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      faculties,
		Timestamp: time.Now(),
	})
}

// GetByID retrieves one faculty
// @Summary Get faculty by ID
// @Tags faculties
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=models.Faculty} "Faculty retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid faculty ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculties/{id} [get]
func (c *FacultyController) GetByID(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	faculty, err := c.facultyService.GetByID(ctx.Request.Context(), p, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      faculty,
		Timestamp: time.Now(),
	})
}

// Update handles faculty updates
// @Summary Update a faculty
// @Tags faculties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param request body dto.CreateFacultyRequest true "Faculty information"
// @Success 200 {object} dto.APIResponse{data=models.Faculty} "Faculty updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 409 {object} dto.ErrorResponse "Faculty name already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculties/{id} [put]
func (c *FacultyController) Update(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateFacultyRequest
	if !bindJSON(ctx, &req) {
		return
	}

	faculty, err := c.facultyService.Update(ctx.Request.Context(), p, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      faculty,
		Timestamp: time.Now(),
	})
}

// Delete handles faculty deletion
// @Summary Delete a faculty
// @Description Deletes a faculty. Blocked while programs reference it.
// @Tags faculties
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Faculty deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid faculty ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 409 {object} dto.ErrorResponse "Faculty has dependent programs"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculties/{id} [delete]
func (c *FacultyController) Delete(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.facultyService.Delete(ctx.Request.Context(), p, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Faculty deleted"},
		Timestamp: time.Now(),
	})
}
