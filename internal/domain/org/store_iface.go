package org

import "context"

// StoreAPI is the persistence contract for the organizational hierarchy.
// Implementations return errors from the apperr taxonomy.
type StoreAPI interface {
	ListUniversities(ctx context.Context) ([]University, error)
	ListFaculties(ctx context.Context) ([]Faculty, error)
	ListDepartments(ctx context.Context) ([]Department, error)
	GetDepartment(ctx context.Context, id int64) (*Department, error)
	CreateDepartment(ctx context.Context, in DepartmentInput) (int64, error)
	UpdateDepartment(ctx context.Context, id int64, patch DepartmentPatch) error
	DeleteDepartment(ctx context.Context, id int64) error
	DepartmentJobCount(ctx context.Context, id int64) (int, error)
}
