package services

import (
	"context"
	"errors"

	coreauth "github.com/axela/cetpro-backend/internal/app/auth"
	"github.com/axela/cetpro-backend/internal/app/models"
	"github.com/axela/cetpro-backend/internal/app/models/dto"
	"github.com/axela/cetpro-backend/internal/app/repositories"
	"github.com/axela/cetpro-backend/internal/pkg/apperrors"
)

// PersonnelService exposes the student and teacher rosters of the caller's
// institution. Personnel rows are created through registration, not here.
type PersonnelService struct {
	personnelRepo *repositories.PersonnelRepository
	resolver      *coreauth.ScopeResolver
}

// NewPersonnelService creates a new PersonnelService
func NewPersonnelService(personnelRepo *repositories.PersonnelRepository, resolver *coreauth.ScopeResolver) *PersonnelService {
	return &PersonnelService{
		personnelRepo: personnelRepo,
		resolver:      resolver,
	}
}

func studentResponse(student *models.Student) *dto.StudentResponse {
	return &dto.StudentResponse{
		ID:             student.ID,
		UserID:         student.UserID,
		FirstName:      student.User.FirstName,
		LastName:       student.User.LastName,
		Email:          student.User.Email,
		DocumentNumber: student.DocumentNumber,
		Phone:          student.Phone,
	}
}

func teacherResponse(teacher *models.Teacher) *dto.TeacherResponse {
	return &dto.TeacherResponse{
		ID:        teacher.ID,
		UserID:    teacher.UserID,
		FirstName: teacher.User.FirstName,
		LastName:  teacher.User.LastName,
		Email:     teacher.User.Email,
		Specialty: teacher.Specialty,
		Phone:     teacher.Phone,
	}
}

// ListStudents lists the students of the caller's institution
func (s *PersonnelService) ListStudents(ctx context.Context, p coreauth.Principal) ([]*dto.StudentResponse, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapViewPersonnel)
	if err != nil {
		return nil, err
	}

	students, err := s.personnelRepo.ListStudents(ctx, scope.InstitutionID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, studentResponse(student))
	}
	return responses, nil
}

// ListTeachers lists the teachers of the caller's institution
func (s *PersonnelService) ListTeachers(ctx context.Context, p coreauth.Principal) ([]*dto.TeacherResponse, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapViewPersonnel)
	if err != nil {
		return nil, err
	}

	teachers, err := s.personnelRepo.ListTeachers(ctx, scope.InstitutionID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.TeacherResponse, 0, len(teachers))
	for _, teacher := range teachers {
		responses = append(responses, teacherResponse(teacher))
	}
	return responses, nil
}

// GetStudent retrieves one student of the caller's institution
func (s *PersonnelService) GetStudent(ctx context.Context, p coreauth.Principal, id int64) (*dto.StudentResponse, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapViewPersonnel)
	if err != nil {
		return nil, err
	}

	student, err := s.personnelRepo.GetStudentByID(ctx, scope.InstitutionID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("student not found")
		}
		return nil, err
	}
	return studentResponse(student), nil
}

// GetTeacher retrieves one teacher of the caller's institution
func (s *PersonnelService) GetTeacher(ctx context.Context, p coreauth.Principal, id int64) (*dto.TeacherResponse, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapViewPersonnel)
	if err != nil {
		return nil, err
	}

	teacher, err := s.personnelRepo.GetTeacherByID(ctx, scope.InstitutionID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("teacher not found")
		}
		return nil, err
	}
	return teacherResponse(teacher), nil
}
