package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/axela/cetpro-backend/internal/app/controllers"
	"github.com/axela/cetpro-backend/internal/app/models"
	"github.com/axela/cetpro-backend/internal/app/models/dto"
	"github.com/axela/cetpro-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrls *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", ctrls.Auth.Register)
		auth.POST("/login", ctrls.Auth.Login)
		auth.POST("/refresh", ctrls.Auth.RefreshToken)
		auth.POST("/forgot-password", ctrls.Auth.ForgotPassword)
		auth.POST("/reset-password", ctrls.Auth.ResetPassword)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", ctrls.Auth.Logout)
		authenticated.GET("/auth/me", ctrls.Auth.Me)

		// Platform management (superadmin)
		platform := authenticated.Group("")
		platform.Use(authMiddleware.RoleRequired(models.RoleSuperadmin))
		{
			institutions := platform.Group("/institutions")
			{
				institutions.POST("", ctrls.Institution.Create)
				institutions.GET("", ctrls.Institution.GetAll)
				institutions.GET("/:id", ctrls.Institution.GetByID)
				institutions.PUT("/:id", ctrls.Institution.Update)
				institutions.DELETE("/:id", ctrls.Institution.Delete)
			}

			institutionAdmins := platform.Group("/institution-admins")
			{
				institutionAdmins.POST("", ctrls.InstitutionAdmin.Assign)
				institutionAdmins.GET("", ctrls.InstitutionAdmin.GetAll)
				institutionAdmins.GET("/unassigned", ctrls.InstitutionAdmin.ListUnassigned)
				institutionAdmins.DELETE("/:id", ctrls.InstitutionAdmin.Remove)
			}
		}

		// Institution management (admin, scoped to the admin's institution)
		management := authenticated.Group("")
		management.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			faculties := management.Group("/faculties")
			{
				faculties.POST("", ctrls.Faculty.Create)
				faculties.GET("", ctrls.Faculty.GetAll)
				faculties.GET("/:id", ctrls.Faculty.GetByID)
				faculties.PUT("/:id", ctrls.Faculty.Update)
				faculties.DELETE("/:id", ctrls.Faculty.Delete)
			}

			plans := management.Group("/plans")
			{
				plans.POST("", ctrls.Plan.Create)
				plans.GET("", ctrls.Plan.GetAll)
				plans.GET("/:id", ctrls.Plan.GetByID)
				plans.PUT("/:id", ctrls.Plan.Update)
				plans.DELETE("/:id", ctrls.Plan.Delete)
			}

			programs := management.Group("/programs")
			{
				programs.POST("", ctrls.Program.Create)
				programs.GET("", ctrls.Program.GetAll)
				programs.GET("/:id", ctrls.Program.GetByID)
				programs.PUT("/:id", ctrls.Program.Update)
				programs.DELETE("/:id", ctrls.Program.Delete)
			}

			courses := management.Group("/courses")
			{
				courses.POST("", ctrls.Course.Create)
				courses.GET("", ctrls.Course.GetAll)
				courses.GET("/:id", ctrls.Course.GetByID)
				courses.PUT("/:id", ctrls.Course.Update)
				courses.DELETE("/:id", ctrls.Course.Delete)
			}

			periods := management.Group("/academic-periods")
			{
				periods.POST("", ctrls.AcademicPeriod.Create)
				periods.GET("", ctrls.AcademicPeriod.GetAll)
				periods.GET("/active", ctrls.AcademicPeriod.GetActive)
				periods.GET("/:id", ctrls.AcademicPeriod.GetByID)
				periods.PUT("/:id", ctrls.AcademicPeriod.Update)
				periods.DELETE("/:id", ctrls.AcademicPeriod.Delete)
			}

			processes := management.Group("/admission-processes")
			{
				processes.POST("", ctrls.AdmissionProcess.Create)
				processes.GET("", ctrls.AdmissionProcess.GetAll)
				processes.GET("/:id", ctrls.AdmissionProcess.GetByID)
				processes.PUT("/:id", ctrls.AdmissionProcess.Update)
				processes.DELETE("/:id", ctrls.AdmissionProcess.Delete)
			}

			management.GET("/students", ctrls.Personnel.ListStudents)
			management.GET("/students/:id", ctrls.Personnel.GetStudent)
			management.GET("/teachers", ctrls.Personnel.ListTeachers)
			management.GET("/teachers/:id", ctrls.Personnel.GetTeacher)

			enrollments := management.Group("/enrollments")
			{
				enrollments.POST("", ctrls.Enrollment.Create)
				enrollments.GET("", ctrls.Enrollment.GetAll)
				enrollments.DELETE("/:id", ctrls.Enrollment.Delete)
				enrollments.POST("/courses", ctrls.Enrollment.RegisterCourse)
				enrollments.GET("/:id/courses", ctrls.Enrollment.ListRegisteredCourses)
				enrollments.DELETE("/:id/courses/:courseId", ctrls.Enrollment.RemoveCourse)
				enrollments.GET("/:id/available-courses", ctrls.Enrollment.ListAvailableCourses)
			}

			assignments := management.Group("/assignments")
			{
				assignments.POST("", ctrls.Assignment.Create)
				assignments.GET("", ctrls.Assignment.GetAll)
				assignments.PUT("/:id", ctrls.Assignment.Update)
				assignments.DELETE("/:id", ctrls.Assignment.Delete)
			}
		}

		// Teacher self-service (docente)
		teacher := authenticated.Group("/teacher")
		teacher.Use(authMiddleware.RoleRequired(models.RoleTeacher))
		{
			teacher.GET("/assignments", ctrls.Teacher.MyAssignments)
			teacher.GET("/assignments/:id/grades", ctrls.Teacher.Roster)
			teacher.PUT("/grades", ctrls.Teacher.UpdateGrades)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data:      gin.H{"status": "ok"},
			Timestamp: time.Now(),
		})
	})
}
