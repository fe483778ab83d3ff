package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/axela/cetpro-backend/internal/app/models/dto"
	"github.com/axela/cetpro-backend/internal/app/services"
	"github.com/axela/cetpro-backend/internal/middleware"
)

// EnrollmentController handles enrollment and course registration operations
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// Create handles enrollment creation
// @Summary Enroll a student
// @Description Enrolls a student into a program through an admission process. All three must belong to the caller's institution.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEnrollmentRequest true "Enrollment information"
// @Success 201 {object} dto.APIResponse{data=models.Enrollment} "Enrollment created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Student, program or process not found"
// @Failure 409 {object} dto.ErrorResponse "Student already enrolled for that process"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments [post]
func (c *EnrollmentController) Create(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.CreateEnrollmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	enrollment, err := c.enrollmentService.Create(ctx.Request.Context(), p, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      enrollment,
		Timestamp: time.Now(),
	})
}

// GetAll lists the enrollments of the caller's institution
// @Summary List enrollments
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.EnrollmentSummary} "Enrollments retrieved"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments [get]
func (c *EnrollmentController) GetAll(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	enrollments, err := c.enrollmentService.GetAll(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      enrollments,
		Timestamp: time.Now(),
	})
}

// Delete handles enrollment deletion
// @Summary Delete an enrollment
// @Description Deletes an enrollment with its course registrations and their grades
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Enrollment deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid enrollment ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/{id} [delete]
func (c *EnrollmentController) Delete(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.enrollmentService.Delete(ctx.Request.Context(), p, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Enrollment deleted"},
		Timestamp: time.Now(),
	})
}

// RegisterCourse adds a course to an enrollment
// @Summary Register a course
// @Description Registers an enrolled student in a course and opens its grade record. The course must have an assignment in the enrollment's period.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterCourseRequest true "Registration information"
// @Success 201 {object} dto.APIResponse{data=dto.SuccessResponse} "Course registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or course not offered"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Enrollment or course not found"
// @Failure 409 {object} dto.ErrorResponse "Course already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/courses [post]
func (c *EnrollmentController) RegisterCourse(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.RegisterCourseRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.enrollmentService.RegisterCourse(ctx.Request.Context(), p, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Course registered"},
		Timestamp: time.Now(),
	})
}

// RemoveCourse drops a course from an enrollment
// @Summary Remove a registered course
// @Description Drops a course from an enrollment and deletes its grade record
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Course removed"
// @Failure 400 {object} dto.ErrorResponse "Invalid enrollment or course ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Enrollment or registration not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/{id}/courses/{courseId} [delete]
func (c *EnrollmentController) RemoveCourse(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	courseID, ok := parseIDParam(ctx, "courseId")
	if !ok {
		return
	}

	if err := c.enrollmentService.RemoveCourse(ctx.Request.Context(), p, id, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Course removed from enrollment"},
		Timestamp: time.Now(),
	})
}

// ListRegisteredCourses lists the courses registered under an enrollment
// @Summary List registered courses
// @Description Retrieves the courses an enrollment is registered in, each with its grade record
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.RegisteredCourse} "Courses retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid enrollment ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/{id}/courses [get]
func (c *EnrollmentController) ListRegisteredCourses(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	courses, err := c.enrollmentService.ListRegisteredCourses(ctx.Request.Context(), p, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      courses,
		Timestamp: time.Now(),
	})
}

// ListAvailableCourses lists the program courses an enrollment has not registered yet
// @Summary List available courses
// @Description Retrieves the courses of the enrollment's program that are not registered yet
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid enrollment ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/{id}/available-courses [get]
func (c *EnrollmentController) ListAvailableCourses(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	courses, err := c.enrollmentService.ListAvailableCourses(ctx.Request.Context(), p, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      courses,
		Timestamp: time.Now(),
	})
}
