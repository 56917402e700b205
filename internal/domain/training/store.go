package training

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"workforce/internal/apperr"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

// ListProgramsWithCounts counts distinct enrolled employees and completed
// enrollments per program. The outer join keeps zero-enrollment programs
// in the result.
func (s *Store) ListProgramsWithCounts(ctx context.Context) ([]ProgramStats, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT tp.id, tp.code, tp.title, tp.objectives, tp.type, tp.subtype,
           tp.delivery_method, tp.approval_status,
           COUNT(DISTINCT et.employee_id) AS enrolled_count,
           COUNT(DISTINCT CASE WHEN et.completion_status = 'Completed' THEN et.id END) AS completed_count
    FROM training_programs tp
    LEFT JOIN employee_trainings et ON et.program_id = tp.id
    GROUP BY tp.id
    ORDER BY tp.id
  `)
	if err != nil {
		return nil, apperr.FromStore(err, "")
	}
	defer rows.Close()

	var programs []ProgramStats
	for rows.Next() {
		var p ProgramStats
		if err := rows.Scan(&p.ID, &p.Code, &p.Title, &p.Objectives, &p.Type, &p.Subtype,
			&p.DeliveryMethod, &p.ApprovalStatus, &p.EnrolledCount, &p.CompletedCount); err != nil {
			return nil, apperr.FromStore(err, "")
		}
		programs = append(programs, p)
	}
	return programs, rows.Err()
}

func (s *Store) CreateProgram(ctx context.Context, in ProgramInput) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO training_programs (code, title, objectives, type, subtype, delivery_method, approval_status)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id
  `, in.Code, in.Title, in.Objectives, in.Type, in.Subtype, in.DeliveryMethod, in.ApprovalStatus).Scan(&id)
	if err != nil {
		return 0, apperr.FromStore(err, "")
	}
	return id, nil
}

func (s *Store) ProgramExists(ctx context.Context, programID int64) (bool, error) {
	var exists bool
	if err := s.DB.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM training_programs WHERE id = $1)", programID).Scan(&exists); err != nil {
		return false, apperr.FromStore(err, "")
	}
	return exists, nil
}

func (s *Store) EmployeeExists(ctx context.Context, employeeID int64) (bool, error) {
	var exists bool
	if err := s.DB.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1)", employeeID).Scan(&exists); err != nil {
		return false, apperr.FromStore(err, "")
	}
	return exists, nil
}

func (s *Store) CreateEnrollment(ctx context.Context, in EnrollmentInput) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employee_trainings (employee_id, program_id, completion_status)
    VALUES ($1, $2, $3)
    RETURNING id
  `, in.EmployeeID, in.ProgramID, in.CompletionStatus).Scan(&id)
	if err != nil {
		return 0, apperr.FromStore(err, "")
	}
	return id, nil
}

func (s *Store) GetEnrollment(ctx context.Context, id int64) (*Enrollment, error) {
	var e Enrollment
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, program_id, completion_status
    FROM employee_trainings
    WHERE id = $1
  `, id).Scan(&e.ID, &e.EmployeeID, &e.ProgramID, &e.CompletionStatus)
	if err != nil {
		return nil, apperr.FromStore(err, "enrollment not found")
	}
	return &e, nil
}

func (s *Store) UpdateEnrollmentStatus(ctx context.Context, id int64, status string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE employee_trainings SET completion_status = $1 WHERE id = $2", status, id)
	if err != nil {
		return apperr.FromStore(err, "")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("enrollment not found")
	}
	return nil
}

// EmployeeRecords lists an employee's enrollments newest-first, each with
// program metadata and the certificate when issued.
func (s *Store) EmployeeRecords(ctx context.Context, employeeID int64) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT et.id, et.employee_id, et.program_id, et.completion_status,
           tp.code, tp.title, tp.type, tp.delivery_method,
           tc.file_path, tc.issue_date
    FROM employee_trainings et
    JOIN training_programs tp ON et.program_id = tp.id
    LEFT JOIN training_certificates tc ON tc.enrollment_id = et.id
    WHERE et.employee_id = $1
    ORDER BY et.id DESC
  `, employeeID)
	if err != nil {
		return nil, apperr.FromStore(err, "")
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.EmployeeID, &r.ProgramID, &r.CompletionStatus,
			&r.ProgramCode, &r.Title, &r.Type, &r.DeliveryMethod,
			&r.CertificatePath, &r.CertificateIssueDate); err != nil {
			return nil, apperr.FromStore(err, "")
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetCertificateByEnrollment returns nil, nil when no certificate has
// been issued for the enrollment.
func (s *Store) GetCertificateByEnrollment(ctx context.Context, enrollmentID int64) (*Certificate, error) {
	var c Certificate
	err := s.DB.QueryRow(ctx, `
    SELECT id, enrollment_id, file_path, issue_date
    FROM training_certificates
    WHERE enrollment_id = $1
  `, enrollmentID).Scan(&c.ID, &c.EnrollmentID, &c.FilePath, &c.IssueDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.FromStore(err, "")
	}
	return &c, nil
}

func (s *Store) CertificateData(ctx context.Context, enrollmentID int64) (*CertificateData, error) {
	var d CertificateData
	err := s.DB.QueryRow(ctx, `
    SELECT et.id, e.first_name, e.last_name, tp.title, tp.code
    FROM employee_trainings et
    JOIN employees e ON et.employee_id = e.id
    JOIN training_programs tp ON et.program_id = tp.id
    WHERE et.id = $1
  `, enrollmentID).Scan(&d.EnrollmentID, &d.FirstName, &d.LastName, &d.ProgramTitle, &d.ProgramCode)
	if err != nil {
		return nil, apperr.FromStore(err, "enrollment not found")
	}
	return &d, nil
}

func (s *Store) CreateCertificate(ctx context.Context, enrollmentID int64, filePath string, issueDate time.Time) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO training_certificates (enrollment_id, file_path, issue_date)
    VALUES ($1, $2, $3)
    RETURNING id
  `, enrollmentID, filePath, issueDate).Scan(&id)
	if err != nil {
		return 0, apperr.FromStore(err, "")
	}
	return id, nil
}
