package analytics

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"workforce/internal/apperr"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

func (s *Store) StatsData(ctx context.Context) (*StatsData, error) {
	var d StatsData
	err := s.DB.QueryRow(ctx, `
    SELECT
      (SELECT COUNT(*) FROM employees),
      (SELECT COUNT(*) FROM employees WHERE employment_status = 'Active'),
      (SELECT COUNT(*) FROM jobs),
      (SELECT COUNT(*) FROM job_assignments WHERE status = 'Active'),
      (SELECT COUNT(*) FROM departments),
      (SELECT COUNT(*) FROM training_programs),
      (SELECT COALESCE(SUM(overall_score), 0) FROM appraisals),
      (SELECT COUNT(*) FROM appraisals)
  `).Scan(&d.TotalEmployees, &d.ActiveEmployees, &d.TotalJobs, &d.ActiveAssignments,
		&d.TotalDepartments, &d.TotalTrainingPrograms, &d.ScoreSum, &d.ScoreCount)
	if err != nil {
		return nil, apperr.FromStore(err, "")
	}
	return &d, nil
}

func (s *Store) GenderDistribution(ctx context.Context) ([]GenderCount, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT gender, COUNT(*)
    FROM employees
    WHERE gender IS NOT NULL
    GROUP BY gender
  `)
	if err != nil {
		return nil, apperr.FromStore(err, "")
	}
	defer rows.Close()

	var counts []GenderCount
	for rows.Next() {
		var g GenderCount
		if err := rows.Scan(&g.Gender, &g.Count); err != nil {
			return nil, apperr.FromStore(err, "")
		}
		counts = append(counts, g)
	}
	return counts, rows.Err()
}

// DepartmentEmployeeCounts counts distinct employees holding an active
// assignment to a job in each department. Departments with no jobs still
// appear with a zero count.
func (s *Store) DepartmentEmployeeCounts(ctx context.Context) ([]DepartmentCount, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT d.name, COUNT(DISTINCT ja.employee_id) AS employee_count
    FROM departments d
    LEFT JOIN jobs j ON j.department_id = d.id
    LEFT JOIN job_assignments ja ON ja.job_id = j.id AND ja.status = 'Active'
    GROUP BY d.id, d.name
    ORDER BY employee_count DESC
  `)
	if err != nil {
		return nil, apperr.FromStore(err, "")
	}
	defer rows.Close()

	var counts []DepartmentCount
	for rows.Next() {
		var c DepartmentCount
		if err := rows.Scan(&c.DepartmentName, &c.EmployeeCount); err != nil {
			return nil, apperr.FromStore(err, "")
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (s *Store) RecentAppraisals(ctx context.Context, limit int) ([]RecentAppraisal, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT a.id, e.first_name || ' ' || e.last_name, j.title, a.overall_score, a.appraisal_date, pc.name
    FROM appraisals a
    JOIN job_assignments ja ON a.assignment_id = ja.id
    JOIN employees e ON ja.employee_id = e.id
    JOIN jobs j ON ja.job_id = j.id
    JOIN performance_cycles pc ON a.cycle_id = pc.id
    ORDER BY a.appraisal_date DESC
    LIMIT $1
  `, limit)
	if err != nil {
		return nil, apperr.FromStore(err, "")
	}
	defer rows.Close()

	var appraisals []RecentAppraisal
	for rows.Next() {
		var r RecentAppraisal
		if err := rows.Scan(&r.ID, &r.EmployeeName, &r.JobTitle, &r.OverallScore, &r.Date, &r.CycleName); err != nil {
			return nil, apperr.FromStore(err, "")
		}
		appraisals = append(appraisals, r)
	}
	return appraisals, rows.Err()
}
