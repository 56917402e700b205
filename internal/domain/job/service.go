package job

import (
	"context"
	"strings"

	"workforce/internal/apperr"
)

// maxObjectiveWeight bounds the summed KPI weights under one objective.
const maxObjectiveWeight = 100

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) ListJobs(ctx context.Context) ([]Row, error) {
	return s.store.ListJobs(ctx)
}

func (s *Service) GetJob(ctx context.Context, id int64) (*Detail, error) {
	return s.store.GetJob(ctx, id)
}

func (s *Service) CreateJob(ctx context.Context, in Input) (int64, error) {
	in.Code = strings.TrimSpace(in.Code)
	in.Title = strings.TrimSpace(in.Title)
	if in.Code == "" {
		return 0, apperr.BadRequest("job code is required")
	}
	if in.Title == "" {
		return 0, apperr.BadRequest("job title is required")
	}
	if in.Status == "" {
		in.Status = StatusOpen
	}
	if err := validateStatus(in.Status); err != nil {
		return 0, err
	}
	if in.MinSalary != nil && in.MaxSalary != nil && *in.MinSalary > *in.MaxSalary {
		return 0, apperr.BadRequest("min salary cannot exceed max salary")
	}
	return s.store.CreateJob(ctx, in)
}

func (s *Service) UpdateJob(ctx context.Context, id int64, patch Patch) error {
	if patch.IsZero() {
		return apperr.BadRequest("no fields to update")
	}
	if patch.Code != nil && strings.TrimSpace(*patch.Code) == "" {
		return apperr.BadRequest("job code cannot be empty")
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return apperr.BadRequest("job title cannot be empty")
	}
	if patch.Status != nil {
		if err := validateStatus(*patch.Status); err != nil {
			return err
		}
	}
	if patch.MinSalary != nil && patch.MaxSalary != nil && *patch.MinSalary > *patch.MaxSalary {
		return apperr.BadRequest("min salary cannot exceed max salary")
	}
	return s.store.UpdateJob(ctx, id, patch)
}

// DeleteJob surfaces dependent assignments and objectives instead of
// cascading through them.
func (s *Service) DeleteJob(ctx context.Context, id int64) error {
	if _, err := s.store.GetJob(ctx, id); err != nil {
		return err
	}
	count, err := s.store.JobDependentCount(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Newf(apperr.KindReferential, "job has %d dependent record(s)", count)
	}
	return s.store.DeleteJob(ctx, id)
}

func (s *Service) Assignments(ctx context.Context, jobID int64) ([]AssignmentRow, error) {
	if _, err := s.store.GetJob(ctx, jobID); err != nil {
		return nil, err
	}
	return s.store.ListAssignments(ctx, jobID)
}

func (s *Service) CreateObjective(ctx context.Context, jobID int64, description string) (int64, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return 0, apperr.BadRequest("objective description is required")
	}
	if _, err := s.store.GetJob(ctx, jobID); err != nil {
		return 0, err
	}
	return s.store.CreateObjective(ctx, jobID, description)
}

// AddKPI attaches a weighted KPI to an objective. The weights of all KPIs
// under one objective must stay within 100.
func (s *Service) AddKPI(ctx context.Context, kpi KPI) (int64, error) {
	kpi.Name = strings.TrimSpace(kpi.Name)
	if kpi.Name == "" {
		return 0, apperr.BadRequest("kpi name is required")
	}
	if kpi.Weight < 0 || kpi.Weight > maxObjectiveWeight {
		return 0, apperr.BadRequest("kpi weight must be between 0 and 100")
	}
	if kpi.TargetValue < 0 {
		return 0, apperr.BadRequest("kpi target value cannot be negative")
	}
	exists, err := s.store.ObjectiveExists(ctx, kpi.ObjectiveID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, apperr.NotFound("objective not found")
	}
	sum, err := s.store.ObjectiveWeightSum(ctx, kpi.ObjectiveID)
	if err != nil {
		return 0, err
	}
	if sum+kpi.Weight > maxObjectiveWeight {
		return 0, apperr.Newf(apperr.KindBadRequest, "objective weights would total %.1f, exceeding 100", sum+kpi.Weight)
	}
	return s.store.CreateKPI(ctx, kpi)
}

func validateStatus(value string) error {
	switch value {
	case StatusOpen, StatusClosed:
		return nil
	default:
		return apperr.Newf(apperr.KindBadRequest, "job status must be %q or %q", StatusOpen, StatusClosed)
	}
}
