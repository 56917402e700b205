package org

import (
	"context"
	"strings"

	"workforce/internal/apperr"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) ListUniversities(ctx context.Context) ([]University, error) {
	return s.store.ListUniversities(ctx)
}

func (s *Service) ListFaculties(ctx context.Context) ([]Faculty, error) {
	return s.store.ListFaculties(ctx)
}

func (s *Service) ListDepartments(ctx context.Context) ([]Department, error) {
	return s.store.ListDepartments(ctx)
}

func (s *Service) GetDepartment(ctx context.Context, id int64) (*Department, error) {
	return s.store.GetDepartment(ctx, id)
}

func (s *Service) CreateDepartment(ctx context.Context, in DepartmentInput) (int64, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return 0, apperr.BadRequest("department name is required")
	}
	if err := validateDepartmentType(in.Type); err != nil {
		return 0, err
	}
	return s.store.CreateDepartment(ctx, in)
}

func (s *Service) UpdateDepartment(ctx context.Context, id int64, patch DepartmentPatch) error {
	if patch.IsZero() {
		return apperr.BadRequest("no fields to update")
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return apperr.BadRequest("department name cannot be empty")
	}
	if patch.Type != nil {
		if err := validateDepartmentType(*patch.Type); err != nil {
			return err
		}
	}
	return s.store.UpdateDepartment(ctx, id, patch)
}

// DeleteDepartment refuses to remove a department that still owns jobs;
// the dependency is surfaced to the caller rather than cascaded.
func (s *Service) DeleteDepartment(ctx context.Context, id int64) error {
	if _, err := s.store.GetDepartment(ctx, id); err != nil {
		return err
	}
	count, err := s.store.DepartmentJobCount(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Newf(apperr.KindReferential, "department has %d job(s) referencing it", count)
	}
	return s.store.DeleteDepartment(ctx, id)
}

func validateDepartmentType(value string) error {
	switch value {
	case DepartmentTypeAcademic, DepartmentTypeAdministrative:
		return nil
	default:
		return apperr.Newf(apperr.KindBadRequest, "department type must be %q or %q", DepartmentTypeAcademic, DepartmentTypeAdministrative)
	}
}
