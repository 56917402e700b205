package analytics

import "context"

const defaultRecentLimit = 10

// Service is the read side of the system; no operation here mutates
// anything.
type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	data, err := s.store.StatsData(ctx)
	if err != nil {
		return nil, err
	}
	stats := &Stats{
		TotalEmployees:        data.TotalEmployees,
		ActiveEmployees:       data.ActiveEmployees,
		TotalJobs:             data.TotalJobs,
		ActiveAssignments:     data.ActiveAssignments,
		TotalDepartments:      data.TotalDepartments,
		TotalTrainingPrograms: data.TotalTrainingPrograms,
	}
	if data.ScoreCount > 0 {
		stats.AverageAppraisalScore = data.ScoreSum / float64(data.ScoreCount)
	}
	return stats, nil
}

func (s *Service) GenderDistribution(ctx context.Context) ([]GenderCount, error) {
	return s.store.GenderDistribution(ctx)
}

func (s *Service) DepartmentEmployeeCounts(ctx context.Context) ([]DepartmentCount, error) {
	return s.store.DepartmentEmployeeCounts(ctx)
}

func (s *Service) RecentAppraisals(ctx context.Context, limit int) ([]RecentAppraisal, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.store.RecentAppraisals(ctx, limit)
}
