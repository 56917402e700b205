package org

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

func (s *Store) ListUniversities(ctx context.Context) ([]University, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, acronym, established_year
    FROM universities
    ORDER BY name
  `)
	if err != nil {
		return nil, apperr.FromStore(err, "")
	}
	defer rows.Close()

	var universities []University
	for rows.Next() {
		var u University
		if err := rows.Scan(&u.ID, &u.Name, &u.Acronym, &u.EstablishedYear); err != nil {
			return nil, apperr.FromStore(err, "")
		}
		universities = append(universities, u)
	}
	return universities, rows.Err()
}

func (s *Store) ListFaculties(ctx context.Context) ([]Faculty, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT f.id, f.university_id, f.name, u.name
    FROM faculties f
    JOIN universities u ON f.university_id = u.id
    ORDER BY f.name
  `)
	if err != nil {
		return nil, apperr.FromStore(err, "")
	}
	defer rows.Close()

	var faculties []Faculty
	for rows.Next() {
		var f Faculty
		if err := rows.Scan(&f.ID, &f.UniversityID, &f.Name, &f.UniversityName); err != nil {
			return nil, apperr.FromStore(err, "")
		}
		faculties = append(faculties, f)
	}
	return faculties, rows.Err()
}

// ListDepartments resolves each department up the hierarchy and attaches
// job and active-employee counts. Outer joins keep departments with zero
// jobs in the result with zero counts.
func (s *Store) ListDepartments(ctx context.Context) ([]Department, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT d.id, d.faculty_id, d.name, d.type, f.name, u.name,
           COUNT(DISTINCT j.id) AS total_jobs,
           COUNT(DISTINCT ja.employee_id) AS total_employees
    FROM departments d
    LEFT JOIN faculties f ON d.faculty_id = f.id
    LEFT JOIN universities u ON f.university_id = u.id
    LEFT JOIN jobs j ON j.department_id = d.id
    LEFT JOIN job_assignments ja ON ja.job_id = j.id AND ja.status = 'Active'
    GROUP BY d.id, d.faculty_id, d.name, d.type, f.name, u.name
    ORDER BY d.name
  `)
	if err != nil {
		return nil, apperr.FromStore(err, "")
	}
	defer rows.Close()

	var departments []Department
	for rows.Next() {
		var d Department
		if err := rows.Scan(&d.ID, &d.FacultyID, &d.Name, &d.Type, &d.FacultyName, &d.UniversityName, &d.TotalJobs, &d.TotalEmployees); err != nil {
			return nil, apperr.FromStore(err, "")
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

func (s *Store) GetDepartment(ctx context.Context, id int64) (*Department, error) {
	var d Department
	err := s.DB.QueryRow(ctx, `
    SELECT d.id, d.faculty_id, d.name, d.type, f.name, u.name
    FROM departments d
    LEFT JOIN faculties f ON d.faculty_id = f.id
    LEFT JOIN universities u ON f.university_id = u.id
    WHERE d.id = $1
  `, id).Scan(&d.ID, &d.FacultyID, &d.Name, &d.Type, &d.FacultyName, &d.UniversityName)
	if err != nil {
		return nil, apperr.FromStore(err, "department not found")
	}
	return &d, nil
}

func (s *Store) CreateDepartment(ctx context.Context, in DepartmentInput) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO departments (faculty_id, name, type)
    VALUES ($1, $2, $3)
    RETURNING id
  `, in.FacultyID, in.Name, in.Type).Scan(&id)
	if err != nil {
		return 0, apperr.FromStore(err, "")
	}
	return id, nil
}

func (s *Store) UpdateDepartment(ctx context.Context, id int64, patch DepartmentPatch) error {
	names, values := patch.Columns()
	if len(names) == 0 {
		return nil
	}
	assignments := make([]string, len(names))
	for i, name := range names {
		assignments[i] = fmt.Sprintf("%s = $%d", name, i+1)
	}
	values = append(values, id)
	query := fmt.Sprintf("UPDATE departments SET %s WHERE id = $%d", strings.Join(assignments, ", "), len(values))
	tag, err := s.DB.Exec(ctx, query, values...)
	if err != nil {
		return apperr.FromStore(err, "")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("department not found")
	}
	return nil
}

func (s *Store) DeleteDepartment(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM departments WHERE id = $1", id)
	if err != nil {
		return apperr.FromStore(err, "")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("department not found")
	}
	return nil
}

func (s *Store) DepartmentJobCount(ctx context.Context, id int64) (int, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM jobs WHERE department_id = $1", id).Scan(&count); err != nil {
		return 0, apperr.FromStore(err, "")
	}
	return count, nil
}
