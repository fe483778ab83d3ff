package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/axela/cetpro-backend/internal/app/models/dto"
	"github.com/axela/cetpro-backend/internal/app/services"
	"github.com/axela/cetpro-backend/internal/middleware"
)

// InstitutionAdminController handles admin-to-institution assignments
type InstitutionAdminController struct {
	adminService *services.InstitutionAdminService
}

// NewInstitutionAdminController creates a new InstitutionAdminController
func NewInstitutionAdminController(adminService *services.InstitutionAdminService) *InstitutionAdminController {
	return &InstitutionAdminController{
		adminService: adminService,
	}
}

// Assign binds an admin user to an institution
// @Summary Assign an admin to an institution
// @Description Gives an admin-role user its institution scope. A user can hold at most one assignment.
// @Tags institution-admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AssignInstitutionAdminRequest true "Assignment information"
// @Success 201 {object} dto.APIResponse{data=models.InstitutionAdmin} "Admin assigned"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "User or institution not found"
// @Failure 409 {object} dto.ErrorResponse "User already assigned"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /institution-admins [post]
func (c *InstitutionAdminController) Assign(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.AssignInstitutionAdminRequest
	if !bindJSON(ctx, &req) {
		return
	}

	assignment, err := c.adminService.Assign(ctx.Request.Context(), p, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      assignment,
		Timestamp: time.Now(),
	})
}

// GetAll lists all assignments
// @Summary List admin assignments
// @Tags institution-admins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.InstitutionAdmin} "Assignments retrieved"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /institution-admins [get]
func (c *InstitutionAdminController) GetAll(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	assignments, err := c.adminService.GetAll(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      assignments,
		Timestamp: time.Now(),
	})
}

// ListUnassigned lists admin users without an assignment
// @Summary List unassigned admin users
// @Description Retrieves admin-role users that have no institution yet
// @Tags institution-admins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse} "Users retrieved"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /institution-admins/unassigned [get]
func (c *InstitutionAdminController) ListUnassigned(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	users, err := c.adminService.ListUnassigned(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      users,
		Timestamp: time.Now(),
	})
}

// Remove deletes an assignment
// @Summary Remove an admin assignment
// @Description Revokes an admin's institution scope
// @Tags institution-admins
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Assignment removed"
// @Failure 400 {object} dto.ErrorResponse "Invalid assignment ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /institution-admins/{id} [delete]
func (c *InstitutionAdminController) Remove(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.adminService.Remove(ctx.Request.Context(), p, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Admin assignment removed"},
		Timestamp: time.Now(),
	})
}
