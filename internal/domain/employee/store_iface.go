package employee

import "context"

type StoreAPI interface {
	ListEmployees(ctx context.Context) ([]Row, error)
	GetEmployee(ctx context.Context, id int64) (*Employee, error)
	CreateEmployee(ctx context.Context, in Input) (int64, error)
	UpdateEmployee(ctx context.Context, id int64, patch Patch) error
	DeleteEmployee(ctx context.Context, id int64) error
	EmployeeDependentCount(ctx context.Context, id int64) (int, error)
	ListAssignments(ctx context.Context, employeeID int64) ([]Assignment, error)
	CreateAssignment(ctx context.Context, employeeID int64, in AssignmentInput) (int64, error)
	CountActiveAssignments(ctx context.Context, employeeID int64) (int, error)
	HasActiveAssignmentForJob(ctx context.Context, employeeID, jobID int64) (bool, error)
	ListAppraisals(ctx context.Context, employeeID int64) ([]AppraisalHistory, error)
}
