package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts a minimal organizational baseline for development
// environments: one university, a faculty, two departments, a contract
// type, and an annual performance cycle. It is a no-op when any
// universities already exist.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	var universities int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM universities").Scan(&universities); err != nil {
		return err
	}
	if universities > 0 {
		return nil
	}

	var universityID int64
	if err := pool.QueryRow(ctx, `
    INSERT INTO universities (name, acronym, established_year)
    VALUES ('Central University', 'CU', 1952)
    RETURNING id
  `).Scan(&universityID); err != nil {
		return err
	}

	var facultyID int64
	if err := pool.QueryRow(ctx, `
    INSERT INTO faculties (university_id, name)
    VALUES ($1, 'Faculty of Engineering')
    RETURNING id
  `, universityID).Scan(&facultyID); err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `
    INSERT INTO departments (faculty_id, name, type)
    VALUES ($1, 'Computer Engineering', 'Academic'),
           (NULL, 'Human Resources', 'Administrative')
  `, facultyID); err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `
    INSERT INTO contracts (name, type)
    VALUES ('Full-Time Standard', 'Permanent')
  `); err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `
    INSERT INTO performance_cycles (name, type, start_date, end_date, submission_deadline)
    VALUES ('2026 Annual', 'Annual', '2026-01-01', '2026-12-31', '2027-01-31')
  `); err != nil {
		return err
	}

	return nil
}
