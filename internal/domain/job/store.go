package job

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

func (s *Store) ListJobs(ctx context.Context) ([]Row, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT j.id, j.department_id, j.code, j.title, j.level, j.category, j.grade,
           j.min_salary, j.max_salary, j.description, j.status, j.reports_to,
           d.name, f.name, u.name,
           COUNT(ja.id) AS active_assignments
    FROM jobs j
    LEFT JOIN departments d ON j.department_id = d.id
    LEFT JOIN faculties f ON d.faculty_id = f.id
    LEFT JOIN universities u ON f.university_id = u.id
    LEFT JOIN job_assignments ja ON ja.job_id = j.id AND ja.status = 'Active'
    GROUP BY j.id, d.name, f.name, u.name
    ORDER BY j.id
  `)
	if err != nil {
		return nil, apperr.FromStore(err, "")
	}
	defer rows.Close()

	var jobs []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(
			&r.ID, &r.DepartmentID, &r.Code, &r.Title, &r.Level, &r.Category, &r.Grade,
			&r.MinSalary, &r.MaxSalary, &r.Description, &r.Status, &r.ReportsTo,
			&r.DepartmentName, &r.FacultyName, &r.UniversityName, &r.ActiveAssignments,
		); err != nil {
			return nil, apperr.FromStore(err, "")
		}
		jobs = append(jobs, r)
	}
	return jobs, rows.Err()
}

func (s *Store) GetJob(ctx context.Context, id int64) (*Detail, error) {
	var d Detail
	err := s.DB.QueryRow(ctx, `
    SELECT j.id, j.department_id, j.code, j.title, j.level, j.category, j.grade,
           j.min_salary, j.max_salary, j.description, j.status, j.reports_to,
           d.name, f.name, u.name
    FROM jobs j
    LEFT JOIN departments d ON j.department_id = d.id
    LEFT JOIN faculties f ON d.faculty_id = f.id
    LEFT JOIN universities u ON f.university_id = u.id
    WHERE j.id = $1
  `, id).Scan(
		&d.ID, &d.DepartmentID, &d.Code, &d.Title, &d.Level, &d.Category, &d.Grade,
		&d.MinSalary, &d.MaxSalary, &d.Description, &d.Status, &d.ReportsTo,
		&d.DepartmentName, &d.FacultyName, &d.UniversityName,
	)
	if err != nil {
		return nil, apperr.FromStore(err, "job not found")
	}

	objectives, err := s.listObjectives(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Objectives = objectives
	return &d, nil
}

func (s *Store) listObjectives(ctx context.Context, jobID int64) ([]Objective, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, job_id, description
    FROM job_objectives
    WHERE job_id = $1
    ORDER BY id
  `, jobID)
	if err != nil {
		return nil, apperr.FromStore(err, "")
	}
	defer rows.Close()

	var objectives []Objective
	index := map[int64]int{}
	for rows.Next() {
		var o Objective
		if err := rows.Scan(&o.ID, &o.JobID, &o.Description); err != nil {
			return nil, apperr.FromStore(err, "")
		}
		index[o.ID] = len(objectives)
		objectives = append(objectives, o)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.FromStore(err, "")
	}
	if len(objectives) == 0 {
		return nil, nil
	}

	kpiRows, err := s.DB.Query(ctx, `
    SELECT k.id, k.objective_id, k.name, k.target_value, k.weight
    FROM objective_kpis k
    JOIN job_objectives o ON k.objective_id = o.id
    WHERE o.job_id = $1
    ORDER BY k.id
  `, jobID)
	if err != nil {
		return nil, apperr.FromStore(err, "")
	}
	defer kpiRows.Close()

	for kpiRows.Next() {
		var k KPI
		if err := kpiRows.Scan(&k.ID, &k.ObjectiveID, &k.Name, &k.TargetValue, &k.Weight); err != nil {
			return nil, apperr.FromStore(err, "")
		}
		if i, ok := index[k.ObjectiveID]; ok {
			objectives[i].KPIs = append(objectives[i].KPIs, k)
		}
	}
	return objectives, kpiRows.Err()
}

func (s *Store) CreateJob(ctx context.Context, in Input) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO jobs (department_id, code, title, level, category, grade,
                      min_salary, max_salary, description, status, reports_to)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
    RETURNING id
  `, in.DepartmentID, in.Code, in.Title, in.Level, in.Category, in.Grade,
		in.MinSalary, in.MaxSalary, in.Description, in.Status, in.ReportsTo).Scan(&id)
	if err != nil {
		return 0, apperr.FromStore(err, "")
	}
	return id, nil
}

func (s *Store) UpdateJob(ctx context.Context, id int64, patch Patch) error {
	names, values := patch.Columns()
	if len(names) == 0 {
		return nil
	}
	assignments := make([]string, len(names))
	for i, name := range names {
		assignments[i] = fmt.Sprintf("%s = $%d", name, i+1)
	}
	values = append(values, id)
	query := fmt.Sprintf("UPDATE jobs SET %s WHERE id = $%d", strings.Join(assignments, ", "), len(values))
	tag, err := s.DB.Exec(ctx, query, values...)
	if err != nil {
		return apperr.FromStore(err, "")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("job not found")
	}
	return nil
}

func (s *Store) DeleteJob(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM jobs WHERE id = $1", id)
	if err != nil {
		return apperr.FromStore(err, "")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("job not found")
	}
	return nil
}

func (s *Store) JobDependentCount(ctx context.Context, id int64) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT (SELECT COUNT(1) FROM job_assignments WHERE job_id = $1)
         + (SELECT COUNT(1) FROM job_objectives WHERE job_id = $1)
  `, id).Scan(&count)
	if err != nil {
		return 0, apperr.FromStore(err, "")
	}
	return count, nil
}

func (s *Store) ListAssignments(ctx context.Context, jobID int64) ([]AssignmentRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT ja.id, ja.employee_id, ja.contract_id, ja.start_date, ja.end_date,
           ja.assigned_salary, ja.status,
           e.first_name, e.last_name, e.work_email, c.name
    FROM job_assignments ja
    JOIN employees e ON ja.employee_id = e.id
    JOIN contracts c ON ja.contract_id = c.id
    WHERE ja.job_id = $1
    ORDER BY ja.start_date DESC
  `, jobID)
	if err != nil {
		return nil, apperr.FromStore(err, "")
	}
	defer rows.Close()

	var assignments []AssignmentRow
	for rows.Next() {
		var a AssignmentRow
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.ContractID, &a.StartDate, &a.EndDate,
			&a.AssignedSalary, &a.Status, &a.FirstName, &a.LastName, &a.WorkEmail, &a.ContractName); err != nil {
			return nil, apperr.FromStore(err, "")
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (s *Store) CreateObjective(ctx context.Context, jobID int64, description string) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO job_objectives (job_id, description)
    VALUES ($1, $2)
    RETURNING id
  `, jobID, description).Scan(&id)
	if err != nil {
		return 0, apperr.FromStore(err, "")
	}
	return id, nil
}

func (s *Store) CreateKPI(ctx context.Context, kpi KPI) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO objective_kpis (objective_id, name, target_value, weight)
    VALUES ($1, $2, $3, $4)
    RETURNING id
  `, kpi.ObjectiveID, kpi.Name, kpi.TargetValue, kpi.Weight).Scan(&id)
	if err != nil {
		return 0, apperr.FromStore(err, "")
	}
	return id, nil
}

func (s *Store) ObjectiveWeightSum(ctx context.Context, objectiveID int64) (float64, error) {
	var sum float64
	err := s.DB.QueryRow(ctx, `
    SELECT COALESCE(SUM(weight), 0)
    FROM objective_kpis
    WHERE objective_id = $1
  `, objectiveID).Scan(&sum)
	if err != nil {
		return 0, apperr.FromStore(err, "")
	}
	return sum, nil
}

func (s *Store) ObjectiveExists(ctx context.Context, objectiveID int64) (bool, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM job_objectives WHERE id = $1", objectiveID).Scan(&count); err != nil {
		return false, apperr.FromStore(err, "")
	}
	return count > 0, nil
}
