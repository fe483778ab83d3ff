package services

import (
	"context"

	coreauth "github.com/axela/cetpro-backend/internal/app/auth"
	"github.com/axela/cetpro-backend/internal/app/repositories"
	"github.com/axela/cetpro-backend/internal/pkg/apperrors"
	"github.com/axela/cetpro-backend/internal/pkg/auth"
	"github.com/axela/cetpro-backend/internal/pkg/email"
)

// requireScope checks that the role holds the capability, then resolves the
// caller's institution scope. Both failures reject the request; there is no
// unscoped fallback.
func requireScope(ctx context.Context, resolver *coreauth.ScopeResolver, p coreauth.Principal, capability coreauth.Capability) (coreauth.Scope, error) {
	if !coreauth.Can(p.Role, capability) {
		return coreauth.Scope{}, apperrors.ErrPermissionDenied
	}
	return resolver.ResolveInstitution(ctx, p)
}

// Services holds all service instances
type Services struct {
	Auth             *AuthService
	Institution      *InstitutionService
	InstitutionAdmin *InstitutionAdminService
	Faculty          *FacultyService
	Plan             *PlanService
	Program          *ProgramService
	Course           *CourseService
	AcademicPeriod   *AcademicPeriodService
	AdmissionProcess *AdmissionProcessService
	Personnel        *PersonnelService
	Enrollment       *EnrollmentService
	Assignment       *AssignmentService
	Teacher          *TeacherService
}

// NewServices creates and wires all services
func NewServices(
	repos *repositories.Repositories,
	resolver *coreauth.ScopeResolver,
	validator *coreauth.OwnershipValidator,
	guard *coreauth.IntegrityGuard,
	jwtService *auth.JWTService,
	emailService email.EmailService,
) *Services {
	return &Services{
		Auth:             NewAuthService(repos.User, repos.Token, repos.PasswordResetToken, repos.Personnel, repos.Institution, jwtService, emailService),
		Institution:      NewInstitutionService(repos.Institution, guard),
		InstitutionAdmin: NewInstitutionAdminService(repos.InstitutionAdmin, repos.User, repos.Institution),
		Faculty:          NewFacultyService(repos.Faculty, resolver, validator, guard),
		Plan:             NewPlanService(repos.Plan, resolver, validator, guard),
		Program:          NewProgramService(repos.Program, resolver, validator, guard),
		Course:           NewCourseService(repos.Course, resolver, validator, guard),
		AcademicPeriod:   NewAcademicPeriodService(repos.AcademicPeriod, resolver, validator, guard),
		AdmissionProcess: NewAdmissionProcessService(repos.AdmissionProcess, repos.AcademicPeriod, resolver, validator, guard),
		Personnel:        NewPersonnelService(repos.Personnel, resolver),
		Enrollment:       NewEnrollmentService(repos.Enrollment, resolver, validator),
		Assignment:       NewAssignmentService(repos.Assignment, resolver, validator, guard),
		Teacher:          NewTeacherService(repos.Assignment, resolver),
	}
}
