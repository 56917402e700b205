package training

import (
	"context"
	"time"
)

type StoreAPI interface {
	ListProgramsWithCounts(ctx context.Context) ([]ProgramStats, error)
	CreateProgram(ctx context.Context, in ProgramInput) (int64, error)
	ProgramExists(ctx context.Context, programID int64) (bool, error)

	EmployeeExists(ctx context.Context, employeeID int64) (bool, error)
	CreateEnrollment(ctx context.Context, in EnrollmentInput) (int64, error)
	GetEnrollment(ctx context.Context, id int64) (*Enrollment, error)
	UpdateEnrollmentStatus(ctx context.Context, id int64, status string) error
	EmployeeRecords(ctx context.Context, employeeID int64) ([]Record, error)

	GetCertificateByEnrollment(ctx context.Context, enrollmentID int64) (*Certificate, error)
	CertificateData(ctx context.Context, enrollmentID int64) (*CertificateData, error)
	CreateCertificate(ctx context.Context, enrollmentID int64, filePath string, issueDate time.Time) (int64, error)
}
