package employee

import (
	"context"
	"testing"
	"time"

	"workforce/internal/apperr"
)

type fakeAssignment struct {
	id     int64
	jobID  int64
	status string
}

type fakeStore struct {
	employees   map[int64]*Employee
	assignments map[int64][]fakeAssignment
	dependents  map[int64]int
	nextID      int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		employees:   map[int64]*Employee{},
		assignments: map[int64][]fakeAssignment{},
		dependents:  map[int64]int{},
		nextID:      1,
	}
}

func (f *fakeStore) id() int64 {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeStore) ListEmployees(ctx context.Context) ([]Row, error) { return nil, nil }

func (f *fakeStore) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return nil, apperr.NotFound("employee not found")
	}
	copied := *e
	return &copied, nil
}

func (f *fakeStore) CreateEmployee(ctx context.Context, in Input) (int64, error) {
	id := f.id()
	f.employees[id] = &Employee{
		ID:               id,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Gender:           in.Gender,
		WorkEmail:        in.WorkEmail,
		EmploymentStatus: in.EmploymentStatus,
	}
	return id, nil
}

func (f *fakeStore) UpdateEmployee(ctx context.Context, id int64, patch Patch) error {
	e, ok := f.employees[id]
	if !ok {
		return apperr.NotFound("employee not found")
	}
	if patch.FirstName != nil {
		e.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		e.LastName = *patch.LastName
	}
	if patch.WorkEmail != nil {
		e.WorkEmail = patch.WorkEmail
	}
	if patch.EmploymentStatus != nil {
		e.EmploymentStatus = *patch.EmploymentStatus
	}
	return nil
}

func (f *fakeStore) DeleteEmployee(ctx context.Context, id int64) error {
	if _, ok := f.employees[id]; !ok {
		return apperr.NotFound("employee not found")
	}
	delete(f.employees, id)
	return nil
}

func (f *fakeStore) EmployeeDependentCount(ctx context.Context, id int64) (int, error) {
	return f.dependents[id], nil
}

func (f *fakeStore) ListAssignments(ctx context.Context, employeeID int64) ([]Assignment, error) {
	return nil, nil
}

func (f *fakeStore) CreateAssignment(ctx context.Context, employeeID int64, in AssignmentInput) (int64, error) {
	status := AssignmentActive
	if in.EndDate != nil {
		status = AssignmentEnded
	}
	id := f.id()
	f.assignments[employeeID] = append(f.assignments[employeeID], fakeAssignment{id: id, jobID: in.JobID, status: status})
	return id, nil
}

func (f *fakeStore) CountActiveAssignments(ctx context.Context, employeeID int64) (int, error) {
	count := 0
	for _, a := range f.assignments[employeeID] {
		if a.status == AssignmentActive {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) HasActiveAssignmentForJob(ctx context.Context, employeeID, jobID int64) (bool, error) {
	for _, a := range f.assignments[employeeID] {
		if a.jobID == jobID && a.status == AssignmentActive {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) ListAppraisals(ctx context.Context, employeeID int64) ([]AppraisalHistory, error) {
	return nil, nil
}

func strPtr(v string) *string { return &v }

func seedEmployee(t *testing.T, store *fakeStore) int64 {
	t.Helper()
	id, err := store.CreateEmployee(context.Background(), Input{FirstName: "Amina", LastName: "Haddad", EmploymentStatus: StatusActive})
	if err != nil {
		t.Fatalf("seed employee: %v", err)
	}
	return id
}

func TestCreateEmployeeRequiresNames(t *testing.T) {
	svc := NewService(newFakeStore(), Config{})
	if _, err := svc.CreateEmployee(context.Background(), Input{LastName: "Haddad"}); !apperr.IsKind(err, apperr.KindBadRequest) {
		t.Fatalf("expected bad request for missing first name, got %v", err)
	}
	if _, err := svc.CreateEmployee(context.Background(), Input{FirstName: "Amina", LastName: "  "}); !apperr.IsKind(err, apperr.KindBadRequest) {
		t.Fatalf("expected bad request for blank last name, got %v", err)
	}
}

func TestCreateEmployeeDefaultsStatus(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, Config{})
	id, err := svc.CreateEmployee(context.Background(), Input{FirstName: "Amina", LastName: "Haddad"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if store.employees[id].EmploymentStatus != StatusActive {
		t.Fatalf("expected default Active status, got %s", store.employees[id].EmploymentStatus)
	}
}

func TestUpdateEmployeeEmptyPatch(t *testing.T) {
	store := newFakeStore()
	id := seedEmployee(t, store)
	svc := NewService(store, Config{})
	if err := svc.UpdateEmployee(context.Background(), id, Patch{}); !apperr.IsKind(err, apperr.KindBadRequest) {
		t.Fatalf("expected bad request for empty patch, got %v", err)
	}
}

func TestUpdateEmployeePartialSemantics(t *testing.T) {
	store := newFakeStore()
	id := seedEmployee(t, store)
	store.employees[id].WorkEmail = strPtr("amina@old.example")
	svc := NewService(store, Config{})

	// Only first name supplied: work email must survive untouched.
	if err := svc.UpdateEmployee(context.Background(), id, Patch{FirstName: strPtr("Mona")}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	e := store.employees[id]
	if e.FirstName != "Mona" {
		t.Fatalf("expected renamed employee, got %s", e.FirstName)
	}
	if e.WorkEmail == nil || *e.WorkEmail != "amina@old.example" {
		t.Fatal("work email should be untouched by an absent patch field")
	}
}

func TestUpdateEmployeeUnknownStatus(t *testing.T) {
	store := newFakeStore()
	id := seedEmployee(t, store)
	svc := NewService(store, Config{})
	err := svc.UpdateEmployee(context.Background(), id, Patch{EmploymentStatus: strPtr("Sabbatical")})
	if !apperr.IsKind(err, apperr.KindBadRequest) {
		t.Fatalf("expected bad request for unknown status, got %v", err)
	}
}

func TestCreateAssignmentRejectsDuplicateActiveOnSameJob(t *testing.T) {
	store := newFakeStore()
	id := seedEmployee(t, store)
	svc := NewService(store, Config{AllowConcurrentAssignments: true})
	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	if _, err := svc.CreateAssignment(context.Background(), id, AssignmentInput{JobID: 7, ContractID: 1, StartDate: start, AssignedSalary: 5000}); err != nil {
		t.Fatalf("first assignment failed: %v", err)
	}
	_, err := svc.CreateAssignment(context.Background(), id, AssignmentInput{JobID: 7, ContractID: 1, StartDate: start, AssignedSalary: 5000})
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("expected conflict for duplicate active assignment, got %v", err)
	}
}

func TestCreateAssignmentConcurrencyPolicy(t *testing.T) {
	store := newFakeStore()
	id := seedEmployee(t, store)
	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	strict := NewService(store, Config{AllowConcurrentAssignments: false})
	if _, err := strict.CreateAssignment(context.Background(), id, AssignmentInput{JobID: 1, ContractID: 1, StartDate: start, AssignedSalary: 4000}); err != nil {
		t.Fatalf("first assignment failed: %v", err)
	}
	_, err := strict.CreateAssignment(context.Background(), id, AssignmentInput{JobID: 2, ContractID: 1, StartDate: start, AssignedSalary: 4000})
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("expected conflict under strict policy, got %v", err)
	}

	relaxed := NewService(store, Config{AllowConcurrentAssignments: true})
	if _, err := relaxed.CreateAssignment(context.Background(), id, AssignmentInput{JobID: 2, ContractID: 1, StartDate: start, AssignedSalary: 4000}); err != nil {
		t.Fatalf("expected joint appointment to pass under relaxed policy, got %v", err)
	}
}

func TestDeleteEmployeeBlockedByHistory(t *testing.T) {
	store := newFakeStore()
	id := seedEmployee(t, store)
	store.dependents[id] = 1
	svc := NewService(store, Config{})
	if err := svc.DeleteEmployee(context.Background(), id); !apperr.IsKind(err, apperr.KindReferential) {
		t.Fatalf("expected referential error, got %v", err)
	}
}
