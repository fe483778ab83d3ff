//go:build integration

package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axela/cetpro-backend/internal/app/migrations"
	"github.com/axela/cetpro-backend/internal/app/models"
	"github.com/axela/cetpro-backend/internal/db"
)

// setupTestDB connects to the database named by TEST_DATABASE_URL, applies
// the migrations and truncates every table so each test starts clean.
// Run with: go test -tags integration ./internal/app/repositories/
func setupTestDB(t *testing.T) *db.PostgresDB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, migrations.NewMigrator(pool).ApplyDirectory(ctx, "../../../migrations"))

	_, err = pool.Exec(ctx, `TRUNCATE grades, assignments, enrollment_courses, enrollments,
		admission_processes, academic_periods, courses, programs, plans, faculties,
		students, teachers, institution_admins, password_reset_tokens, refresh_tokens,
		users, institutions RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return &db.PostgresDB{Pool: pool}
}

func insertRow(t *testing.T, database *db.PostgresDB, sql string, args ...interface{}) int64 {
	t.Helper()
	var id int64
	require.NoError(t, database.Pool.QueryRow(context.Background(), sql, args...).Scan(&id))
	return id
}

func countRows(t *testing.T, database *db.PostgresDB, sql string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, database.Pool.QueryRow(context.Background(), sql, args...).Scan(&n))
	return n
}

func insertInstitution(t *testing.T, database *db.PostgresDB, code string) int64 {
	return insertRow(t, database,
		`INSERT INTO institutions (name, code) VALUES ($1, $2) RETURNING id`,
		"CETPRO "+code, code)
}

func TestPlanSingleActiveInvariant(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	repo := NewPlanRepository(database)
	institutionID := insertInstitution(t, database, "INT-01")

	first, err := repo.Create(ctx, &models.Plan{
		InstitutionID: institutionID, Title: "Plan 2024", StartYear: 2024, EndYear: 2026, IsActive: true,
	})
	require.NoError(t, err)

	second, err := repo.Create(ctx, &models.Plan{
		InstitutionID: institutionID, Title: "Plan 2025", StartYear: 2025, EndYear: 2027, IsActive: true,
	})
	require.NoError(t, err)

	active := countRows(t, database,
		`SELECT COUNT(*) FROM plans WHERE institution_id = $1 AND is_active`, institutionID)
	assert.Equal(t, int64(1), active)

	got, err := repo.GetByID(ctx, institutionID, second)
	require.NoError(t, err)
	assert.True(t, got.IsActive)

	// Re-activating the first plan flips the second back off.
	err = repo.Update(ctx, &models.Plan{
		ID: first, InstitutionID: institutionID, Title: "Plan 2024", StartYear: 2024, EndYear: 2026, IsActive: true,
	})
	require.NoError(t, err)

	active = countRows(t, database,
		`SELECT COUNT(*) FROM plans WHERE institution_id = $1 AND is_active`, institutionID)
	assert.Equal(t, int64(1), active)

	got, err = repo.GetByID(ctx, institutionID, first)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
}

func TestPlanSingleActiveScopedPerInstitution(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	repo := NewPlanRepository(database)
	instA := insertInstitution(t, database, "INT-02")
	instB := insertInstitution(t, database, "INT-03")

	_, err := repo.Create(ctx, &models.Plan{
		InstitutionID: instA, Title: "Plan A", StartYear: 2024, EndYear: 2026, IsActive: true,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.Plan{
		InstitutionID: instB, Title: "Plan B", StartYear: 2024, EndYear: 2026, IsActive: true,
	})
	require.NoError(t, err)

	// One active plan each; activation never crosses institutions.
	assert.Equal(t, int64(1), countRows(t, database,
		`SELECT COUNT(*) FROM plans WHERE institution_id = $1 AND is_active`, instA))
	assert.Equal(t, int64(1), countRows(t, database,
		`SELECT COUNT(*) FROM plans WHERE institution_id = $1 AND is_active`, instB))
}

func TestAcademicPeriodSingleActiveInvariant(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	repo := NewAcademicPeriodRepository(database)
	institutionID := insertInstitution(t, database, "INT-04")

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 5, 0)

	_, err := repo.Create(ctx, &models.AcademicPeriod{
		InstitutionID: institutionID, Name: "2024-I", Year: 2024, StartDate: start, EndDate: end, IsActive: true,
	})
	require.NoError(t, err)

	second, err := repo.Create(ctx, &models.AcademicPeriod{
		InstitutionID: institutionID, Name: "2024-II", Year: 2024,
		StartDate: start.AddDate(0, 6, 0), EndDate: end.AddDate(0, 6, 0), IsActive: true,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), countRows(t, database,
		`SELECT COUNT(*) FROM academic_periods WHERE institution_id = $1 AND is_active`, institutionID))

	got, err := repo.GetActive(ctx, institutionID)
	require.NoError(t, err)
	assert.Equal(t, second, got.ID)
}

// enrollmentFixture seeds the full chain an enrollment needs: institution,
// faculty, plan, program, course, period, process, student and a taught
// assignment for the course in the process's period.
type enrollmentFixture struct {
	institutionID int64
	programID     int64
	courseID      int64
	processID     int64
	studentID     int64
}

func seedEnrollmentFixture(t *testing.T, database *db.PostgresDB, code string) enrollmentFixture {
	t.Helper()

	institutionID := insertInstitution(t, database, code)
	facultyID := insertRow(t, database,
		`INSERT INTO faculties (institution_id, name) VALUES ($1, $2) RETURNING id`,
		institutionID, "Tecnología")
	planID := insertRow(t, database,
		`INSERT INTO plans (institution_id, title, start_year, end_year) VALUES ($1, $2, 2024, 2026) RETURNING id`,
		institutionID, "Plan "+code)
	programID := insertRow(t, database,
		`INSERT INTO programs (institution_id, plan_id, faculty_id, name) VALUES ($1, $2, $3, $4) RETURNING id`,
		institutionID, planID, facultyID, "Computación "+code)
	courseID := insertRow(t, database,
		`INSERT INTO courses (program_id, name, code, credits) VALUES ($1, $2, $3, 3) RETURNING id`,
		programID, "Ofimática", "CRS-"+code)
	periodID := insertRow(t, database,
		`INSERT INTO academic_periods (institution_id, name, year, start_date, end_date) VALUES ($1, $2, 2024, '2024-03-01', '2024-07-31') RETURNING id`,
		institutionID, "2024-I")
	processID := insertRow(t, database,
		`INSERT INTO admission_processes (academic_period_id, name, start_date, end_date) VALUES ($1, $2, '2024-01-15', '2024-02-28') RETURNING id`,
		periodID, "Admisión 2024-I")

	studentUserID := insertRow(t, database,
		`INSERT INTO users (email, password, first_name, last_name, role_type) VALUES ($1, 'x', 'Rosa', 'Quispe', 'estudiante') RETURNING id`,
		"student-"+code+"@cetpro.edu.pe")
	studentID := insertRow(t, database,
		`INSERT INTO students (user_id, institution_id, document_number) VALUES ($1, $2, '40000001') RETURNING id`,
		studentUserID, institutionID)

	teacherUserID := insertRow(t, database,
		`INSERT INTO users (email, password, first_name, last_name, role_type) VALUES ($1, 'x', 'Luis', 'Mamani', 'docente') RETURNING id`,
		"teacher-"+code+"@cetpro.edu.pe")
	teacherID := insertRow(t, database,
		`INSERT INTO teachers (user_id, institution_id) VALUES ($1, $2) RETURNING id`,
		teacherUserID, institutionID)
	insertRow(t, database,
		`INSERT INTO assignments (course_id, teacher_id, academic_period_id, shift) VALUES ($1, $2, $3, 'noche') RETURNING id`,
		courseID, teacherID, periodID)

	return enrollmentFixture{
		institutionID: institutionID,
		programID:     programID,
		courseID:      courseID,
		processID:     processID,
		studentID:     studentID,
	}
}

func TestEnrollmentDeleteCascades(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	repo := NewEnrollmentRepository(database)
	fx := seedEnrollmentFixture(t, database, "CAS-01")

	enrollmentID, err := repo.Create(ctx, &models.Enrollment{
		StudentID: fx.studentID, ProgramID: fx.programID, AdmissionProcessID: fx.processID,
	})
	require.NoError(t, err)

	gradeID, err := repo.RegisterCourse(ctx, fx.institutionID, enrollmentID, fx.courseID)
	require.NoError(t, err)
	require.NotZero(t, gradeID)

	require.NoError(t, repo.Delete(ctx, fx.institutionID, enrollmentID))

	assert.Zero(t, countRows(t, database,
		`SELECT COUNT(*) FROM enrollments WHERE id = $1`, enrollmentID))
	assert.Zero(t, countRows(t, database,
		`SELECT COUNT(*) FROM enrollment_courses WHERE enrollment_id = $1`, enrollmentID))
	assert.Zero(t, countRows(t, database,
		`SELECT COUNT(*) FROM grades WHERE id = $1`, gradeID))
}

func TestEnrollmentDeleteFailureLeavesRowsIntact(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	repo := NewEnrollmentRepository(database)
	fx := seedEnrollmentFixture(t, database, "CAS-02")

	enrollmentID, err := repo.Create(ctx, &models.Enrollment{
		StudentID: fx.studentID, ProgramID: fx.programID, AdmissionProcessID: fx.processID,
	})
	require.NoError(t, err)

	gradeID, err := repo.RegisterCourse(ctx, fx.institutionID, enrollmentID, fx.courseID)
	require.NoError(t, err)

	// The scoped lookup is the first step of the cascade; failing it must
	// leave grade, registration and enrollment untouched.
	err = repo.Delete(ctx, fx.institutionID+1, enrollmentID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, int64(1), countRows(t, database,
		`SELECT COUNT(*) FROM enrollments WHERE id = $1`, enrollmentID))
	assert.Equal(t, int64(1), countRows(t, database,
		`SELECT COUNT(*) FROM enrollment_courses WHERE enrollment_id = $1`, enrollmentID))
	assert.Equal(t, int64(1), countRows(t, database,
		`SELECT COUNT(*) FROM grades WHERE id = $1`, gradeID))
}

func TestRegisterCourseWithoutAssignmentRollsBack(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	repo := NewEnrollmentRepository(database)
	fx := seedEnrollmentFixture(t, database, "CAS-03")

	// A second course with no assignment in the period cannot be registered,
	// and the failed attempt must not leave a registration row behind.
	orphanCourseID := insertRow(t, database,
		`INSERT INTO courses (program_id, name, code, credits) VALUES ($1, 'Dibujo', 'CRS-ORPHAN', 2) RETURNING id`,
		fx.programID)

	enrollmentID, err := repo.Create(ctx, &models.Enrollment{
		StudentID: fx.studentID, ProgramID: fx.programID, AdmissionProcessID: fx.processID,
	})
	require.NoError(t, err)

	_, err = repo.RegisterCourse(ctx, fx.institutionID, enrollmentID, orphanCourseID)
	assert.ErrorIs(t, err, ErrNoAssignmentForCourse)

	assert.Zero(t, countRows(t, database,
		`SELECT COUNT(*) FROM enrollment_courses WHERE enrollment_id = $1 AND course_id = $2`,
		enrollmentID, orphanCourseID))
}
