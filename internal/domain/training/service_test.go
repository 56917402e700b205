package training

import (
	"context"
	"fmt"
	"testing"
	"time"

	"workforce/internal/apperr"
)

type fakeStore struct {
	programs     map[int64]Program
	employees    map[int64]string
	enrollments  map[int64]*Enrollment
	certificates map[int64]*Certificate
	nextID       int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		programs:     map[int64]Program{},
		employees:    map[int64]string{},
		enrollments:  map[int64]*Enrollment{},
		certificates: map[int64]*Certificate{},
		nextID:       1,
	}
}

func (f *fakeStore) id() int64 {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeStore) ListProgramsWithCounts(ctx context.Context) ([]ProgramStats, error) {
	var out []ProgramStats
	for _, p := range f.programs {
		stats := ProgramStats{Program: p}
		enrolled := map[int64]bool{}
		for _, e := range f.enrollments {
			if e.ProgramID != p.ID {
				continue
			}
			enrolled[e.EmployeeID] = true
			if e.CompletionStatus == CompletionCompleted {
				stats.CompletedCount++
			}
		}
		stats.EnrolledCount = len(enrolled)
		out = append(out, stats)
	}
	return out, nil
}

func (f *fakeStore) CreateProgram(ctx context.Context, in ProgramInput) (int64, error) {
	id := f.id()
	f.programs[id] = Program{ID: id, Code: in.Code, Title: in.Title, ApprovalStatus: in.ApprovalStatus}
	return id, nil
}

func (f *fakeStore) ProgramExists(ctx context.Context, programID int64) (bool, error) {
	_, ok := f.programs[programID]
	return ok, nil
}

func (f *fakeStore) EmployeeExists(ctx context.Context, employeeID int64) (bool, error) {
	_, ok := f.employees[employeeID]
	return ok, nil
}

func (f *fakeStore) CreateEnrollment(ctx context.Context, in EnrollmentInput) (int64, error) {
	id := f.id()
	f.enrollments[id] = &Enrollment{ID: id, EmployeeID: in.EmployeeID, ProgramID: in.ProgramID, CompletionStatus: in.CompletionStatus}
	return id, nil
}

func (f *fakeStore) GetEnrollment(ctx context.Context, id int64) (*Enrollment, error) {
	e, ok := f.enrollments[id]
	if !ok {
		return nil, apperr.NotFound("enrollment not found")
	}
	copied := *e
	return &copied, nil
}

func (f *fakeStore) UpdateEnrollmentStatus(ctx context.Context, id int64, status string) error {
	e, ok := f.enrollments[id]
	if !ok {
		return apperr.NotFound("enrollment not found")
	}
	e.CompletionStatus = status
	return nil
}

func (f *fakeStore) EmployeeRecords(ctx context.Context, employeeID int64) ([]Record, error) {
	var out []Record
	for _, e := range f.enrollments {
		if e.EmployeeID == employeeID {
			out = append(out, Record{Enrollment: *e})
		}
	}
	return out, nil
}

func (f *fakeStore) GetCertificateByEnrollment(ctx context.Context, enrollmentID int64) (*Certificate, error) {
	c, ok := f.certificates[enrollmentID]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (f *fakeStore) CertificateData(ctx context.Context, enrollmentID int64) (*CertificateData, error) {
	e, ok := f.enrollments[enrollmentID]
	if !ok {
		return nil, apperr.NotFound("enrollment not found")
	}
	p := f.programs[e.ProgramID]
	return &CertificateData{
		EnrollmentID: enrollmentID,
		FirstName:    f.employees[e.EmployeeID],
		ProgramTitle: p.Title,
		ProgramCode:  p.Code,
	}, nil
}

func (f *fakeStore) CreateCertificate(ctx context.Context, enrollmentID int64, filePath string, issueDate time.Time) (int64, error) {
	id := f.id()
	f.certificates[enrollmentID] = &Certificate{ID: id, EnrollmentID: enrollmentID, FilePath: filePath, IssueDate: issueDate}
	return id, nil
}

type fakeRenderer struct {
	calls int
}

func (r *fakeRenderer) Render(data CertificateData) (string, error) {
	r.calls++
	return fmt.Sprintf("certs/certificate-%d.pdf", data.EnrollmentID), nil
}

func seedProgramAndEmployee(store *fakeStore) (employeeID, programID int64) {
	employeeID = store.id()
	store.employees[employeeID] = "Amara"
	programID = store.id()
	store.programs[programID] = Program{ID: programID, Code: "PED-101", Title: "Pedagogy Basics", ApprovalStatus: ApprovalApproved}
	return employeeID, programID
}

func TestEnrollDefaultsToPending(t *testing.T) {
	store := newFakeStore()
	employeeID, programID := seedProgramAndEmployee(store)
	svc := NewService(store)

	id, err := svc.Enroll(context.Background(), EnrollmentInput{EmployeeID: employeeID, ProgramID: programID})
	if err != nil {
		t.Fatalf("enroll failed: %v", err)
	}
	if got := store.enrollments[id].CompletionStatus; got != CompletionPending {
		t.Fatalf("expected default status %q, got %q", CompletionPending, got)
	}
}

func TestEnrollAllowsRetakes(t *testing.T) {
	store := newFakeStore()
	employeeID, programID := seedProgramAndEmployee(store)
	svc := NewService(store)

	in := EnrollmentInput{EmployeeID: employeeID, ProgramID: programID}
	if _, err := svc.Enroll(context.Background(), in); err != nil {
		t.Fatalf("first enrollment failed: %v", err)
	}
	if _, err := svc.Enroll(context.Background(), in); err != nil {
		t.Fatalf("re-enrollment in the same program should be allowed, got %v", err)
	}
	if len(store.enrollments) != 2 {
		t.Fatalf("expected two enrollment rows, got %d", len(store.enrollments))
	}
}

func TestEnrollRejectsUnknownReferences(t *testing.T) {
	store := newFakeStore()
	employeeID, programID := seedProgramAndEmployee(store)
	svc := NewService(store)

	if _, err := svc.Enroll(context.Background(), EnrollmentInput{EmployeeID: 999, ProgramID: programID}); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not found for unknown employee, got %v", err)
	}
	if _, err := svc.Enroll(context.Background(), EnrollmentInput{EmployeeID: employeeID, ProgramID: 999}); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not found for unknown program, got %v", err)
	}
}

func TestProgramCountsFollowCompletion(t *testing.T) {
	store := newFakeStore()
	employeeID, programID := seedProgramAndEmployee(store)
	svc := NewService(store)

	id, err := svc.Enroll(context.Background(), EnrollmentInput{EmployeeID: employeeID, ProgramID: programID})
	if err != nil {
		t.Fatalf("enroll failed: %v", err)
	}

	counts := func() ProgramStats {
		programs, err := svc.ProgramsWithCounts(context.Background())
		if err != nil {
			t.Fatalf("listing programs failed: %v", err)
		}
		for _, p := range programs {
			if p.ID == programID {
				return p
			}
		}
		t.Fatalf("program %d missing from counts", programID)
		return ProgramStats{}
	}

	before := counts()
	if before.EnrolledCount != 1 || before.CompletedCount != 0 {
		t.Fatalf("expected 1 enrolled / 0 completed, got %d / %d", before.EnrolledCount, before.CompletedCount)
	}

	if err := svc.UpdateEnrollmentStatus(context.Background(), id, CompletionCompleted); err != nil {
		t.Fatalf("completing enrollment failed: %v", err)
	}
	after := counts()
	if after.EnrolledCount != 1 || after.CompletedCount != 1 {
		t.Fatalf("expected 1 enrolled / 1 completed, got %d / %d", after.EnrolledCount, after.CompletedCount)
	}
}

func TestUpdateEnrollmentStatusValidation(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	err := svc.UpdateEnrollmentStatus(context.Background(), 1, "Done")
	if !apperr.IsKind(err, apperr.KindBadRequest) {
		t.Fatalf("expected bad request for unknown status, got %v", err)
	}
}

func TestIssueCertificateRequiresCompletion(t *testing.T) {
	store := newFakeStore()
	employeeID, programID := seedProgramAndEmployee(store)
	renderer := &fakeRenderer{}
	svc := NewService(store, WithRenderer(renderer))

	id, err := svc.Enroll(context.Background(), EnrollmentInput{EmployeeID: employeeID, ProgramID: programID})
	if err != nil {
		t.Fatalf("enroll failed: %v", err)
	}

	if _, err := svc.IssueCertificate(context.Background(), id); !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("expected conflict for pending enrollment, got %v", err)
	}

	if err := svc.UpdateEnrollmentStatus(context.Background(), id, CompletionCompleted); err != nil {
		t.Fatalf("completing enrollment failed: %v", err)
	}
	cert, err := svc.IssueCertificate(context.Background(), id)
	if err != nil {
		t.Fatalf("issuing certificate failed: %v", err)
	}
	if cert.FilePath == "" || cert.EnrollmentID != id {
		t.Fatalf("unexpected certificate: %+v", cert)
	}
}

func TestIssueCertificateIsIdempotent(t *testing.T) {
	store := newFakeStore()
	employeeID, programID := seedProgramAndEmployee(store)
	renderer := &fakeRenderer{}
	svc := NewService(store, WithRenderer(renderer))

	id, err := svc.Enroll(context.Background(), EnrollmentInput{EmployeeID: employeeID, ProgramID: programID, CompletionStatus: CompletionCompleted})
	if err != nil {
		t.Fatalf("enroll failed: %v", err)
	}
	first, err := svc.IssueCertificate(context.Background(), id)
	if err != nil {
		t.Fatalf("first issue failed: %v", err)
	}
	second, err := svc.IssueCertificate(context.Background(), id)
	if err != nil {
		t.Fatalf("second issue failed: %v", err)
	}
	if first.ID != second.ID || first.FilePath != second.FilePath {
		t.Fatalf("re-issuing produced a new certificate: %+v vs %+v", first, second)
	}
	if renderer.calls != 1 {
		t.Fatalf("expected a single render, got %d", renderer.calls)
	}
}

func TestIssueCertificateUnknownEnrollment(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, WithRenderer(&fakeRenderer{}))
	if _, err := svc.IssueCertificate(context.Background(), 404); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
