package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"workforce/internal/apperr"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

const employeeColumns = `
  e.id, e.first_name, e.middle_name, e.last_name, e.arabic_name,
  e.gender, e.nationality, e.dob, e.place_of_birth, e.marital_status,
  e.employment_status, e.mobile_phone, e.work_phone, e.work_email,
  e.personal_email, e.residential_city, e.residential_country`

// ListEmployees left-joins each employee to their active assignment and its
// job/department; unassigned employees appear with nil assignment fields.
func (s *Store) ListEmployees(ctx context.Context) ([]Row, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`,
           ja.id, ja.start_date, ja.status, ja.assigned_salary,
           j.title, j.code, d.name
    FROM employees e
    LEFT JOIN job_assignments ja ON e.id = ja.employee_id AND ja.status = 'Active'
    LEFT JOIN jobs j ON ja.job_id = j.id
    LEFT JOIN departments d ON j.department_id = d.id
    ORDER BY e.id
  `)
	if err != nil {
		return nil, apperr.FromStore(err, "")
	}
	defer rows.Close()

	var employees []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(
			&r.ID, &r.FirstName, &r.MiddleName, &r.LastName, &r.ArabicName,
			&r.Gender, &r.Nationality, &r.DOB, &r.PlaceOfBirth, &r.MaritalStatus,
			&r.EmploymentStatus, &r.MobilePhone, &r.WorkPhone, &r.WorkEmail,
			&r.PersonalEmail, &r.ResidentialCity, &r.ResidentialCountry,
			&r.AssignmentID, &r.AssignmentStartDate, &r.AssignmentStatus, &r.AssignedSalary,
			&r.JobTitle, &r.JobCode, &r.DepartmentName,
		); err != nil {
			return nil, apperr.FromStore(err, "")
		}
		employees = append(employees, r)
	}
	return employees, rows.Err()
}

func (s *Store) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	var e Employee
	err := s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees e
    WHERE e.id = $1
  `, id).Scan(
		&e.ID, &e.FirstName, &e.MiddleName, &e.LastName, &e.ArabicName,
		&e.Gender, &e.Nationality, &e.DOB, &e.PlaceOfBirth, &e.MaritalStatus,
		&e.EmploymentStatus, &e.MobilePhone, &e.WorkPhone, &e.WorkEmail,
		&e.PersonalEmail, &e.ResidentialCity, &e.ResidentialCountry,
	)
	if err != nil {
		return nil, apperr.FromStore(err, "employee not found")
	}
	return &e, nil
}

func (s *Store) CreateEmployee(ctx context.Context, in Input) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (
      first_name, middle_name, last_name, arabic_name, gender, nationality,
      dob, place_of_birth, marital_status, employment_status,
      mobile_phone, work_phone, work_email, personal_email,
      residential_city, residential_country
    ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
    RETURNING id
  `, in.FirstName, in.MiddleName, in.LastName, in.ArabicName, in.Gender, in.Nationality,
		in.DOB, in.PlaceOfBirth, in.MaritalStatus, in.EmploymentStatus,
		in.MobilePhone, in.WorkPhone, in.WorkEmail, in.PersonalEmail,
		in.ResidentialCity, in.ResidentialCountry).Scan(&id)
	if err != nil {
		return 0, apperr.FromStore(err, "")
	}
	return id, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, id int64, patch Patch) error {
	names, values := patch.Columns()
	if len(names) == 0 {
		return nil
	}
	assignments := make([]string, len(names))
	for i, name := range names {
		assignments[i] = fmt.Sprintf("%s = $%d", name, i+1)
	}
	values = append(values, id)
	query := fmt.Sprintf("UPDATE employees SET %s WHERE id = $%d", strings.Join(assignments, ", "), len(values))
	tag, err := s.DB.Exec(ctx, query, values...)
	if err != nil {
		return apperr.FromStore(err, "")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("employee not found")
	}
	return nil
}

func (s *Store) DeleteEmployee(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		return apperr.FromStore(err, "")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("employee not found")
	}
	return nil
}

func (s *Store) EmployeeDependentCount(ctx context.Context, id int64) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT (SELECT COUNT(1) FROM job_assignments WHERE employee_id = $1)
         + (SELECT COUNT(1) FROM employee_trainings WHERE employee_id = $1)
  `, id).Scan(&count)
	if err != nil {
		return 0, apperr.FromStore(err, "")
	}
	return count, nil
}

func (s *Store) ListAssignments(ctx context.Context, employeeID int64) ([]Assignment, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT ja.id, ja.employee_id, ja.job_id, ja.contract_id, ja.start_date,
           ja.end_date, ja.assigned_salary, ja.status,
           j.title, j.code, c.name, c.type, d.name
    FROM job_assignments ja
    JOIN jobs j ON ja.job_id = j.id
    JOIN contracts c ON ja.contract_id = c.id
    LEFT JOIN departments d ON j.department_id = d.id
    WHERE ja.employee_id = $1
    ORDER BY ja.start_date DESC
  `, employeeID)
	if err != nil {
		return nil, apperr.FromStore(err, "")
	}
	defer rows.Close()

	var assignments []Assignment
	for rows.Next() {
		var a Assignment
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.JobID, &a.ContractID, &a.StartDate,
			&a.EndDate, &a.AssignedSalary, &a.Status,
			&a.JobTitle, &a.JobCode, &a.ContractName, &a.ContractType, &a.DepartmentName); err != nil {
			return nil, apperr.FromStore(err, "")
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (s *Store) CreateAssignment(ctx context.Context, employeeID int64, in AssignmentInput) (int64, error) {
	status := AssignmentActive
	if in.EndDate != nil {
		status = AssignmentEnded
	}
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO job_assignments (employee_id, job_id, contract_id, start_date, end_date, assigned_salary, status)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING id
  `, employeeID, in.JobID, in.ContractID, in.StartDate, in.EndDate, in.AssignedSalary, status).Scan(&id)
	if err != nil {
		return 0, apperr.FromStore(err, "")
	}
	return id, nil
}

func (s *Store) CountActiveAssignments(ctx context.Context, employeeID int64) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1) FROM job_assignments
    WHERE employee_id = $1 AND status = 'Active'
  `, employeeID).Scan(&count)
	if err != nil {
		return 0, apperr.FromStore(err, "")
	}
	return count, nil
}

func (s *Store) HasActiveAssignmentForJob(ctx context.Context, employeeID, jobID int64) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1) FROM job_assignments
    WHERE employee_id = $1 AND job_id = $2 AND status = 'Active'
  `, employeeID, jobID).Scan(&count)
	if err != nil {
		return false, apperr.FromStore(err, "")
	}
	return count > 0, nil
}

func (s *Store) ListAppraisals(ctx context.Context, employeeID int64) ([]AppraisalHistory, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT a.id, a.assignment_id, a.cycle_id, a.appraisal_date, a.overall_score,
           a.manager_comments, a.hr_comments, a.employee_comments,
           pc.name, pc.type, j.title
    FROM appraisals a
    JOIN job_assignments ja ON a.assignment_id = ja.id
    JOIN performance_cycles pc ON a.cycle_id = pc.id
    JOIN jobs j ON ja.job_id = j.id
    WHERE ja.employee_id = $1
    ORDER BY a.appraisal_date DESC
  `, employeeID)
	if err != nil {
		return nil, apperr.FromStore(err, "")
	}
	defer rows.Close()

	var appraisals []AppraisalHistory
	for rows.Next() {
		var a AppraisalHistory
		if err := rows.Scan(&a.ID, &a.AssignmentID, &a.CycleID, &a.Date, &a.OverallScore,
			&a.ManagerComments, &a.HRComments, &a.EmployeeComments,
			&a.CycleName, &a.CycleType, &a.JobTitle); err != nil {
			return nil, apperr.FromStore(err, "")
		}
		appraisals = append(appraisals, a)
	}
	return appraisals, rows.Err()
}
