package performance

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"workforce/internal/apperr"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

func (s *Store) ListCycles(ctx context.Context) ([]Cycle, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, type, start_date, end_date, submission_deadline
    FROM performance_cycles
    ORDER BY start_date DESC
  `)
	if err != nil {
		return nil, apperr.FromStore(err, "")
	}
	defer rows.Close()

	var cycles []Cycle
	for rows.Next() {
		var c Cycle
		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.StartDate, &c.EndDate, &c.SubmissionDeadline); err != nil {
			return nil, apperr.FromStore(err, "")
		}
		cycles = append(cycles, c)
	}
	return cycles, rows.Err()
}

func (s *Store) CreateCycle(ctx context.Context, in CycleInput) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO performance_cycles (name, type, start_date, end_date, submission_deadline)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, in.Name, in.Type, in.StartDate, in.EndDate, in.SubmissionDeadline).Scan(&id)
	if err != nil {
		return 0, apperr.FromStore(err, "")
	}
	return id, nil
}

func (s *Store) ListAppraisals(ctx context.Context) ([]AppraisalRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT a.id, a.assignment_id, a.cycle_id, a.appraisal_date, a.overall_score,
           a.manager_comments, a.hr_comments, a.employee_comments, a.reviewer_id,
           e.first_name, e.last_name, j.title, pc.name, pc.type
    FROM appraisals a
    JOIN job_assignments ja ON a.assignment_id = ja.id
    JOIN employees e ON ja.employee_id = e.id
    JOIN jobs j ON ja.job_id = j.id
    JOIN performance_cycles pc ON a.cycle_id = pc.id
    ORDER BY a.appraisal_date DESC
  `)
	if err != nil {
		return nil, apperr.FromStore(err, "")
	}
	defer rows.Close()

	var appraisals []AppraisalRow
	for rows.Next() {
		var a AppraisalRow
		if err := rows.Scan(&a.ID, &a.AssignmentID, &a.CycleID, &a.Date, &a.OverallScore,
			&a.ManagerComments, &a.HRComments, &a.EmployeeComments, &a.ReviewerID,
			&a.FirstName, &a.LastName, &a.JobTitle, &a.CycleName, &a.CycleType); err != nil {
			return nil, apperr.FromStore(err, "")
		}
		appraisals = append(appraisals, a)
	}
	return appraisals, rows.Err()
}

func (s *Store) GetAppraisal(ctx context.Context, id int64) (*Appraisal, error) {
	var a Appraisal
	err := s.DB.QueryRow(ctx, `
    SELECT id, assignment_id, cycle_id, appraisal_date, overall_score,
           manager_comments, hr_comments, employee_comments, reviewer_id
    FROM appraisals
    WHERE id = $1
  `, id).Scan(&a.ID, &a.AssignmentID, &a.CycleID, &a.Date, &a.OverallScore,
		&a.ManagerComments, &a.HRComments, &a.EmployeeComments, &a.ReviewerID)
	if err != nil {
		return nil, apperr.FromStore(err, "appraisal not found")
	}
	return &a, nil
}

func (s *Store) AppraisalExists(ctx context.Context, assignmentID, cycleID int64) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1) FROM appraisals
    WHERE assignment_id = $1 AND cycle_id = $2
  `, assignmentID, cycleID).Scan(&count)
	if err != nil {
		return false, apperr.FromStore(err, "")
	}
	return count > 0, nil
}

func (s *Store) AssignmentExists(ctx context.Context, assignmentID int64) (bool, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM job_assignments WHERE id = $1", assignmentID).Scan(&count); err != nil {
		return false, apperr.FromStore(err, "")
	}
	return count > 0, nil
}

func (s *Store) CycleExists(ctx context.Context, cycleID int64) (bool, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM performance_cycles WHERE id = $1", cycleID).Scan(&count); err != nil {
		return false, apperr.FromStore(err, "")
	}
	return count > 0, nil
}

func (s *Store) CreateAppraisal(ctx context.Context, in AppraisalInput, date time.Time) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO appraisals (assignment_id, cycle_id, appraisal_date, overall_score,
                            manager_comments, hr_comments, employee_comments, reviewer_id)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING id
  `, in.AssignmentID, in.CycleID, date, in.OverallScore,
		in.ManagerComments, in.HRComments, in.EmployeeComments, in.ReviewerID).Scan(&id)
	if err != nil {
		return 0, apperr.FromStore(err, "")
	}
	return id, nil
}

func (s *Store) GetKPI(ctx context.Context, kpiID int64) (*KPIRef, error) {
	var k KPIRef
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, target_value, weight
    FROM objective_kpis
    WHERE id = $1
  `, kpiID).Scan(&k.ID, &k.Name, &k.TargetValue, &k.Weight)
	if err != nil {
		return nil, apperr.FromStore(err, "kpi not found")
	}
	return &k, nil
}

// UpsertKPIScore keeps exactly one row per (assignment, kpi, cycle);
// concurrent writers race to a deterministic last-writer-wins outcome.
func (s *Store) UpsertKPIScore(ctx context.Context, score KPIScore) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employee_kpi_scores
      (assignment_id, kpi_id, cycle_id, target_value, actual_value,
       employee_score, weighted_score, review_date)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    ON CONFLICT (assignment_id, kpi_id, cycle_id) DO UPDATE SET
      target_value = EXCLUDED.target_value,
      actual_value = EXCLUDED.actual_value,
      employee_score = EXCLUDED.employee_score,
      weighted_score = EXCLUDED.weighted_score,
      review_date = EXCLUDED.review_date
    RETURNING id
  `, score.AssignmentID, score.KPIID, score.CycleID, score.TargetValue, score.ActualValue,
		score.EmployeeScore, score.WeightedScore, score.ReviewDate).Scan(&id)
	if err != nil {
		return 0, apperr.FromStore(err, "")
	}
	return id, nil
}

func (s *Store) ListKPIScores(ctx context.Context, cycleID int64, employeeID *int64) ([]KPIScoreRow, error) {
	query := `
    SELECT eks.id, eks.assignment_id, eks.kpi_id, eks.cycle_id, eks.target_value,
           eks.actual_value, eks.employee_score, eks.weighted_score, eks.review_date,
           e.first_name, e.last_name, ok.name, ok.target_value, pc.name, j.title
    FROM employee_kpi_scores eks
    JOIN job_assignments ja ON eks.assignment_id = ja.id
    JOIN employees e ON ja.employee_id = e.id
    JOIN objective_kpis ok ON eks.kpi_id = ok.id
    JOIN performance_cycles pc ON eks.cycle_id = pc.id
    JOIN jobs j ON ja.job_id = j.id
    WHERE eks.cycle_id = $1
  `
	args := []any{cycleID}
	if employeeID != nil {
		query += " AND ja.employee_id = $2"
		args = append(args, *employeeID)
	}
	query += " ORDER BY eks.review_date DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, apperr.FromStore(err, "")
	}
	defer rows.Close()

	var scores []KPIScoreRow
	for rows.Next() {
		var r KPIScoreRow
		if err := rows.Scan(&r.ID, &r.AssignmentID, &r.KPIID, &r.CycleID, &r.TargetValue,
			&r.ActualValue, &r.EmployeeScore, &r.WeightedScore, &r.ReviewDate,
			&r.FirstName, &r.LastName, &r.KPIName, &r.KPITarget, &r.CycleName, &r.JobTitle); err != nil {
			return nil, apperr.FromStore(err, "")
		}
		scores = append(scores, r)
	}
	return scores, rows.Err()
}

func (s *Store) ListAppeals(ctx context.Context) ([]AppealRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT ap.id, ap.appraisal_id, ap.submission_date, ap.status, ap.reason, ap.resolution,
           a.overall_score, e.first_name, e.last_name
    FROM appeals ap
    JOIN appraisals a ON ap.appraisal_id = a.id
    JOIN job_assignments ja ON a.assignment_id = ja.id
    JOIN employees e ON ja.employee_id = e.id
    ORDER BY ap.submission_date DESC
  `)
	if err != nil {
		return nil, apperr.FromStore(err, "")
	}
	defer rows.Close()

	var appeals []AppealRow
	for rows.Next() {
		var a AppealRow
		if err := rows.Scan(&a.ID, &a.AppraisalID, &a.SubmissionDate, &a.Status, &a.Reason, &a.Resolution,
			&a.CurrentScore, &a.FirstName, &a.LastName); err != nil {
			return nil, apperr.FromStore(err, "")
		}
		appeals = append(appeals, a)
	}
	return appeals, rows.Err()
}

func (s *Store) GetAppeal(ctx context.Context, id int64) (*Appeal, error) {
	var a Appeal
	err := s.DB.QueryRow(ctx, `
    SELECT id, appraisal_id, submission_date, status, reason, resolution
    FROM appeals
    WHERE id = $1
  `, id).Scan(&a.ID, &a.AppraisalID, &a.SubmissionDate, &a.Status, &a.Reason, &a.Resolution)
	if err != nil {
		return nil, apperr.FromStore(err, "appeal not found")
	}
	return &a, nil
}

func (s *Store) HasResolvedAppeal(ctx context.Context, appraisalID int64) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1) FROM appeals
    WHERE appraisal_id = $1 AND status = $2
  `, appraisalID, AppealResolved).Scan(&count)
	if err != nil {
		return false, apperr.FromStore(err, "")
	}
	return count > 0, nil
}

func (s *Store) CreateAppeal(ctx context.Context, appraisalID int64, reason *string, date time.Time) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO appeals (appraisal_id, submission_date, status, reason)
    VALUES ($1, $2, $3, $4)
    RETURNING id
  `, appraisalID, date, AppealSubmitted, reason).Scan(&id)
	if err != nil {
		return 0, apperr.FromStore(err, "")
	}
	return id, nil
}

func (s *Store) UpdateAppealStatus(ctx context.Context, id int64, status string, resolution *string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE appeals SET status = $1, resolution = $2 WHERE id = $3
  `, status, resolution, id)
	if err != nil {
		return apperr.FromStore(err, "")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("appeal not found")
	}
	return nil
}

// ResolveWithCorrection commits the appeal resolution and the corrected
// appraisal score atomically; a failure partway rolls both back.
func (s *Store) ResolveWithCorrection(ctx context.Context, appealID int64, resolution string, appraisalID int64, correctedScore float64) error {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return apperr.FromStore(err, "")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
    UPDATE appeals SET status = $1, resolution = $2 WHERE id = $3
  `, AppealResolved, resolution, appealID); err != nil {
		return apperr.FromStore(err, "")
	}
	if _, err := tx.Exec(ctx, `
    UPDATE appraisals SET overall_score = $1 WHERE id = $2
  `, correctedScore, appraisalID); err != nil {
		return apperr.FromStore(err, "")
	}
	if err := tx.Commit(ctx); err != nil {
		return apperr.FromStore(err, "")
	}
	return nil
}
