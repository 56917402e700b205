package analytics

import "context"

type StoreAPI interface {
	StatsData(ctx context.Context) (*StatsData, error)
	GenderDistribution(ctx context.Context) ([]GenderCount, error)
	DepartmentEmployeeCounts(ctx context.Context) ([]DepartmentCount, error)
	RecentAppraisals(ctx context.Context, limit int) ([]RecentAppraisal, error)
}
