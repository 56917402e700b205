package job

import (
	"context"
	"testing"

	"workforce/internal/apperr"
)

type fakeStore struct {
	jobs       map[int64]*Detail
	objectives map[int64]int64 // objective id -> job id
	kpis       map[int64][]KPI // objective id -> kpis
	dependents map[int64]int
	nextID     int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		jobs:       map[int64]*Detail{},
		objectives: map[int64]int64{},
		kpis:       map[int64][]KPI{},
		dependents: map[int64]int{},
		nextID:     1,
	}
}

func (f *fakeStore) id() int64 {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeStore) ListJobs(ctx context.Context) ([]Row, error) { return nil, nil }

func (f *fakeStore) GetJob(ctx context.Context, id int64) (*Detail, error) {
	d, ok := f.jobs[id]
	if !ok {
		return nil, apperr.NotFound("job not found")
	}
	copied := *d
	return &copied, nil
}

func (f *fakeStore) CreateJob(ctx context.Context, in Input) (int64, error) {
	id := f.id()
	f.jobs[id] = &Detail{Job: Job{ID: id, Code: in.Code, Title: in.Title, Status: in.Status}}
	return id, nil
}

func (f *fakeStore) UpdateJob(ctx context.Context, id int64, patch Patch) error {
	d, ok := f.jobs[id]
	if !ok {
		return apperr.NotFound("job not found")
	}
	if patch.Title != nil {
		d.Title = *patch.Title
	}
	if patch.Status != nil {
		d.Status = *patch.Status
	}
	return nil
}

func (f *fakeStore) DeleteJob(ctx context.Context, id int64) error {
	if _, ok := f.jobs[id]; !ok {
		return apperr.NotFound("job not found")
	}
	delete(f.jobs, id)
	return nil
}

func (f *fakeStore) JobDependentCount(ctx context.Context, id int64) (int, error) {
	return f.dependents[id], nil
}

func (f *fakeStore) ListAssignments(ctx context.Context, jobID int64) ([]AssignmentRow, error) {
	return nil, nil
}

func (f *fakeStore) CreateObjective(ctx context.Context, jobID int64, description string) (int64, error) {
	id := f.id()
	f.objectives[id] = jobID
	return id, nil
}

func (f *fakeStore) CreateKPI(ctx context.Context, kpi KPI) (int64, error) {
	kpi.ID = f.id()
	f.kpis[kpi.ObjectiveID] = append(f.kpis[kpi.ObjectiveID], kpi)
	return kpi.ID, nil
}

func (f *fakeStore) ObjectiveWeightSum(ctx context.Context, objectiveID int64) (float64, error) {
	var sum float64
	for _, kpi := range f.kpis[objectiveID] {
		sum += kpi.Weight
	}
	return sum, nil
}

func (f *fakeStore) ObjectiveExists(ctx context.Context, objectiveID int64) (bool, error) {
	_, ok := f.objectives[objectiveID]
	return ok, nil
}

func seedJob(t *testing.T, store *fakeStore) int64 {
	t.Helper()
	id, err := store.CreateJob(context.Background(), Input{Code: "ENG-01", Title: "Lecturer", Status: StatusOpen})
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return id
}

func TestCreateJobDefaultsStatusOpen(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	id, err := svc.CreateJob(context.Background(), Input{Code: "ENG-01", Title: "Lecturer"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if store.jobs[id].Status != StatusOpen {
		t.Fatalf("expected default status Open, got %s", store.jobs[id].Status)
	}
}

func TestCreateJobValidation(t *testing.T) {
	svc := NewService(newFakeStore())
	lo, hi := 9000.0, 5000.0

	cases := []struct {
		name string
		in   Input
	}{
		{"missing code", Input{Title: "Lecturer"}},
		{"missing title", Input{Code: "ENG-01"}},
		{"bad status", Input{Code: "ENG-01", Title: "Lecturer", Status: "Paused"}},
		{"inverted salary band", Input{Code: "ENG-01", Title: "Lecturer", MinSalary: &lo, MaxSalary: &hi}},
	}
	for _, tc := range cases {
		if _, err := svc.CreateJob(context.Background(), tc.in); !apperr.IsKind(err, apperr.KindBadRequest) {
			t.Fatalf("%s: expected bad request, got %v", tc.name, err)
		}
	}
}

func TestUpdateJobRejectsEmptyPatch(t *testing.T) {
	store := newFakeStore()
	id := seedJob(t, store)
	svc := NewService(store)
	if err := svc.UpdateJob(context.Background(), id, Patch{}); !apperr.IsKind(err, apperr.KindBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestDeleteJobBlockedByDependents(t *testing.T) {
	store := newFakeStore()
	id := seedJob(t, store)
	store.dependents[id] = 2
	svc := NewService(store)
	if err := svc.DeleteJob(context.Background(), id); !apperr.IsKind(err, apperr.KindReferential) {
		t.Fatalf("expected referential error, got %v", err)
	}
}

func TestAddKPIEnforcesWeightBudget(t *testing.T) {
	store := newFakeStore()
	jobID := seedJob(t, store)
	svc := NewService(store)

	objID, err := svc.CreateObjective(context.Background(), jobID, "Deliver the curriculum")
	if err != nil {
		t.Fatalf("create objective: %v", err)
	}

	if _, err := svc.AddKPI(context.Background(), KPI{ObjectiveID: objID, Name: "Courses taught", TargetValue: 4, Weight: 60}); err != nil {
		t.Fatalf("first kpi should fit: %v", err)
	}
	if _, err := svc.AddKPI(context.Background(), KPI{ObjectiveID: objID, Name: "Student rating", TargetValue: 90, Weight: 40}); err != nil {
		t.Fatalf("second kpi should exactly fill the budget: %v", err)
	}
	_, err = svc.AddKPI(context.Background(), KPI{ObjectiveID: objID, Name: "Publications", TargetValue: 2, Weight: 1})
	if !apperr.IsKind(err, apperr.KindBadRequest) {
		t.Fatalf("expected weight overflow to be rejected, got %v", err)
	}
}

func TestAddKPIUnknownObjective(t *testing.T) {
	svc := NewService(newFakeStore())
	_, err := svc.AddKPI(context.Background(), KPI{ObjectiveID: 99, Name: "X", TargetValue: 1, Weight: 10})
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
