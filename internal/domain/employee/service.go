package employee

import (
	"context"
	"strings"

	"workforce/internal/apperr"
)

type Config struct {
	// AllowConcurrentAssignments permits active assignments on more than
	// one job at a time (joint appointments). A second active assignment on
	// the same job is rejected regardless.
	AllowConcurrentAssignments bool
}

type Service struct {
	store StoreAPI
	cfg   Config
}

func NewService(store StoreAPI, cfg Config) *Service {
	return &Service{store: store, cfg: cfg}
}

func (s *Service) ListEmployees(ctx context.Context) ([]Row, error) {
	return s.store.ListEmployees(ctx)
}

func (s *Service) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	return s.store.GetEmployee(ctx, id)
}

func (s *Service) CreateEmployee(ctx context.Context, in Input) (int64, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	if in.FirstName == "" {
		return 0, apperr.BadRequest("first name is required")
	}
	if in.LastName == "" {
		return 0, apperr.BadRequest("last name is required")
	}
	if in.EmploymentStatus == "" {
		in.EmploymentStatus = StatusActive
	}
	if err := validateEmploymentStatus(in.EmploymentStatus); err != nil {
		return 0, err
	}
	return s.store.CreateEmployee(ctx, in)
}

// UpdateEmployee applies only the supplied fields. An empty patch is
// rejected rather than treated as a no-op write.
func (s *Service) UpdateEmployee(ctx context.Context, id int64, patch Patch) error {
	if patch.IsZero() {
		return apperr.BadRequest("no fields to update")
	}
	if patch.FirstName != nil && strings.TrimSpace(*patch.FirstName) == "" {
		return apperr.BadRequest("first name cannot be empty")
	}
	if patch.LastName != nil && strings.TrimSpace(*patch.LastName) == "" {
		return apperr.BadRequest("last name cannot be empty")
	}
	if patch.EmploymentStatus != nil {
		if err := validateEmploymentStatus(*patch.EmploymentStatus); err != nil {
			return err
		}
	}
	return s.store.UpdateEmployee(ctx, id, patch)
}

func (s *Service) DeleteEmployee(ctx context.Context, id int64) error {
	if _, err := s.store.GetEmployee(ctx, id); err != nil {
		return err
	}
	count, err := s.store.EmployeeDependentCount(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Newf(apperr.KindReferential, "employee has %d dependent record(s)", count)
	}
	return s.store.DeleteEmployee(ctx, id)
}

func (s *Service) Assignments(ctx context.Context, employeeID int64) ([]Assignment, error) {
	if _, err := s.store.GetEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.store.ListAssignments(ctx, employeeID)
}

// CreateAssignment links an employee to a job. At most one active
// assignment may exist per (employee, job); holding active assignments on
// several jobs is governed by the concurrency policy flag.
func (s *Service) CreateAssignment(ctx context.Context, employeeID int64, in AssignmentInput) (int64, error) {
	if _, err := s.store.GetEmployee(ctx, employeeID); err != nil {
		return 0, err
	}
	if in.StartDate.IsZero() {
		return 0, apperr.BadRequest("assignment start date is required")
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return 0, apperr.BadRequest("assignment end date cannot precede start date")
	}
	if in.AssignedSalary < 0 {
		return 0, apperr.BadRequest("assigned salary cannot be negative")
	}

	active := in.EndDate == nil
	if active {
		duplicate, err := s.store.HasActiveAssignmentForJob(ctx, employeeID, in.JobID)
		if err != nil {
			return 0, err
		}
		if duplicate {
			return 0, apperr.Conflict("employee already holds an active assignment on this job")
		}
		if !s.cfg.AllowConcurrentAssignments {
			count, err := s.store.CountActiveAssignments(ctx, employeeID)
			if err != nil {
				return 0, err
			}
			if count > 0 {
				return 0, apperr.Conflict("employee already holds an active assignment")
			}
		}
	}
	return s.store.CreateAssignment(ctx, employeeID, in)
}

func (s *Service) Performance(ctx context.Context, employeeID int64) ([]AppraisalHistory, error) {
	if _, err := s.store.GetEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.store.ListAppraisals(ctx, employeeID)
}

func validateEmploymentStatus(value string) error {
	for _, status := range employmentStatuses {
		if value == status {
			return nil
		}
	}
	return apperr.Newf(apperr.KindBadRequest, "unknown employment status %q", value)
}
