package training

import (
	"context"
	"strings"
	"time"

	"workforce/internal/apperr"
)

type Service struct {
	store    StoreAPI
	renderer Renderer
	now      func() time.Time
}

type Option func(*Service)

func WithRenderer(r Renderer) Option {
	return func(s *Service) { s.renderer = r }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(store StoreAPI, opts ...Option) *Service {
	s := &Service{store: store, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) ProgramsWithCounts(ctx context.Context) ([]ProgramStats, error) {
	return s.store.ListProgramsWithCounts(ctx)
}

func (s *Service) CreateProgram(ctx context.Context, in ProgramInput) (int64, error) {
	in.Code = strings.TrimSpace(in.Code)
	in.Title = strings.TrimSpace(in.Title)
	if in.Code == "" || in.Title == "" {
		return 0, apperr.BadRequest("program code and title are required")
	}
	if in.ApprovalStatus == "" {
		in.ApprovalStatus = ApprovalPending
	}
	if !validApprovalStatus(in.ApprovalStatus) {
		return 0, apperr.Newf(apperr.KindBadRequest, "unknown approval status %q", in.ApprovalStatus)
	}
	return s.store.CreateProgram(ctx, in)
}

// Enroll adds an employee to a program, defaulting the completion status
// to Pending. Re-enrollment in the same program is allowed; retakes get
// their own row.
func (s *Service) Enroll(ctx context.Context, in EnrollmentInput) (int64, error) {
	employeeOK, err := s.store.EmployeeExists(ctx, in.EmployeeID)
	if err != nil {
		return 0, err
	}
	if !employeeOK {
		return 0, apperr.NotFound("employee not found")
	}
	programOK, err := s.store.ProgramExists(ctx, in.ProgramID)
	if err != nil {
		return 0, err
	}
	if !programOK {
		return 0, apperr.NotFound("training program not found")
	}
	if in.CompletionStatus == "" {
		in.CompletionStatus = CompletionPending
	}
	if !validCompletionStatus(in.CompletionStatus) {
		return 0, apperr.Newf(apperr.KindBadRequest, "unknown completion status %q", in.CompletionStatus)
	}
	return s.store.CreateEnrollment(ctx, in)
}

func (s *Service) UpdateEnrollmentStatus(ctx context.Context, id int64, status string) error {
	if !validCompletionStatus(status) {
		return apperr.Newf(apperr.KindBadRequest, "unknown completion status %q", status)
	}
	return s.store.UpdateEnrollmentStatus(ctx, id, status)
}

func (s *Service) EmployeeRecords(ctx context.Context, employeeID int64) ([]Record, error) {
	ok, err := s.store.EmployeeExists(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("employee not found")
	}
	return s.store.EmployeeRecords(ctx, employeeID)
}

// IssueCertificate renders and records a certificate for a completed
// enrollment. Issuing twice returns the existing certificate unchanged.
func (s *Service) IssueCertificate(ctx context.Context, enrollmentID int64) (*Certificate, error) {
	enrollment, err := s.store.GetEnrollment(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	if existing, err := s.store.GetCertificateByEnrollment(ctx, enrollmentID); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}
	if enrollment.CompletionStatus != CompletionCompleted {
		return nil, apperr.Conflict("certificate requires a completed enrollment")
	}
	if s.renderer == nil {
		return nil, apperr.New(apperr.KindInternal, "certificate renderer is not configured")
	}

	data, err := s.store.CertificateData(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	issueDate := s.now()
	data.CompletedDate = issueDate

	filePath, err := s.renderer.Render(*data)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "rendering certificate", err)
	}
	id, err := s.store.CreateCertificate(ctx, enrollmentID, filePath, issueDate)
	if err != nil {
		return nil, err
	}
	return &Certificate{ID: id, EnrollmentID: enrollmentID, FilePath: filePath, IssueDate: issueDate}, nil
}

func validCompletionStatus(status string) bool {
	switch status {
	case CompletionPending, CompletionInProgress, CompletionCompleted:
		return true
	}
	return false
}

func validApprovalStatus(status string) bool {
	switch status {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}
