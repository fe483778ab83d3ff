package repositories

import (
	"github.com/axela/cetpro-backend/internal/db"
)

// Repositories holds all repository instances
type Repositories struct {
	User               *UserRepository
	Token              *TokenRepository
	PasswordResetToken *PasswordResetTokenRepository
	Institution        *InstitutionRepository
	InstitutionAdmin   *InstitutionAdminRepository
	Faculty            *FacultyRepository
	Plan               *PlanRepository
	Program            *ProgramRepository
	Course             *CourseRepository
	AcademicPeriod     *AcademicPeriodRepository
	AdmissionProcess   *AdmissionProcessRepository
	Personnel          *PersonnelRepository
	Enrollment         *EnrollmentRepository
	Assignment         *AssignmentRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		User:               NewUserRepository(database.Pool),
		Token:              NewTokenRepository(database.Pool),
		PasswordResetToken: NewPasswordResetTokenRepository(database.Pool),
		Institution:        NewInstitutionRepository(database.Pool),
		InstitutionAdmin:   NewInstitutionAdminRepository(database.Pool),
		Faculty:            NewFacultyRepository(database.Pool),
		Plan:               NewPlanRepository(database),
		Program:            NewProgramRepository(database.Pool),
		Course:             NewCourseRepository(database.Pool),
		AcademicPeriod:     NewAcademicPeriodRepository(database),
		AdmissionProcess:   NewAdmissionProcessRepository(database.Pool),
		Personnel:          NewPersonnelRepository(database.Pool),
		Enrollment:         NewEnrollmentRepository(database),
		Assignment:         NewAssignmentRepository(database),
	}
}
