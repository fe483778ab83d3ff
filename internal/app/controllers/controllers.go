package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	coreauth "github.com/axela/cetpro-backend/internal/app/auth"
	"github.com/axela/cetpro-backend/internal/app/models/dto"
	"github.com/axela/cetpro-backend/internal/app/services"
	"github.com/axela/cetpro-backend/internal/middleware"
)

// requirePrincipal rebuilds the authenticated principal from the request
// context. A missing principal means the auth middleware did not run; the
// response is written before returning.
func requirePrincipal(ctx *gin.Context) (coreauth.Principal, bool) {
	p, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
	}
	return p, ok
}

// parseIDParam parses a numeric path parameter, writing the 400 response on
// failure.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// bindJSON binds the request payload, writing the 400 response on failure.
func bindJSON(ctx *gin.Context, target interface{}) bool {
	if err := ctx.ShouldBindJSON(target); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}

// Controllers holds all controller instances
type Controllers struct {
	Auth             *AuthController
	Institution      *InstitutionController
	InstitutionAdmin *InstitutionAdminController
	Faculty          *FacultyController
	Plan             *PlanController
	Program          *ProgramController
	Course           *CourseController
	AcademicPeriod   *AcademicPeriodController
	AdmissionProcess *AdmissionProcessController
	Personnel        *PersonnelController
	Enrollment       *EnrollmentController
	Assignment       *AssignmentController
	Teacher          *TeacherController
}

// NewControllers creates and wires all controllers
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		Auth:             NewAuthController(svcs.Auth),
		Institution:      NewInstitutionController(svcs.Institution),
		InstitutionAdmin: NewInstitutionAdminController(svcs.InstitutionAdmin),
		Faculty:          NewFacultyController(svcs.Faculty),
		Plan:             NewPlanController(svcs.Plan),
		Program:          NewProgramController(svcs.Program),
		Course:           NewCourseController(svcs.Course),
		AcademicPeriod:   NewAcademicPeriodController(svcs.AcademicPeriod),
		AdmissionProcess: NewAdmissionProcessController(svcs.AdmissionProcess),
		Personnel:        NewPersonnelController(svcs.Personnel),
		Enrollment:       NewEnrollmentController(svcs.Enrollment),
		Assignment:       NewAssignmentController(svcs.Assignment),
		Teacher:          NewTeacherController(svcs.Teacher),
	}
}
