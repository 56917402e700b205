package job

import "context"

type StoreAPI interface {
	ListJobs(ctx context.Context) ([]Row, error)
	GetJob(ctx context.Context, id int64) (*Detail, error)
	CreateJob(ctx context.Context, in Input) (int64, error)
	UpdateJob(ctx context.Context, id int64, patch Patch) error
	DeleteJob(ctx context.Context, id int64) error
	JobDependentCount(ctx context.Context, id int64) (int, error)
	ListAssignments(ctx context.Context, jobID int64) ([]AssignmentRow, error)
	CreateObjective(ctx context.Context, jobID int64, description string) (int64, error)
	CreateKPI(ctx context.Context, kpi KPI) (int64, error)
	ObjectiveWeightSum(ctx context.Context, objectiveID int64) (float64, error)
	ObjectiveExists(ctx context.Context, objectiveID int64) (bool, error)
}
