package training

import "time"

const (
	CompletionPending    = "Pending"
	CompletionInProgress = "In Progress"
	CompletionCompleted  = "Completed"
)

const (
	ApprovalPending  = "Pending"
	ApprovalApproved = "Approved"
	ApprovalRejected = "Rejected"
)

type Program struct {
	ID             int64   `json:"id"`
	Code           string  `json:"code"`
	Title          string  `json:"title"`
	Objectives     *string `json:"objectives"`
	Type           *string `json:"type"`
	Subtype        *string `json:"subtype"`
	DeliveryMethod *string `json:"deliveryMethod"`
	ApprovalStatus string  `json:"approvalStatus"`
}

// ProgramStats attaches enrollment counters to a program. Programs with
// zero enrollments report zero counts, not missing rows.
type ProgramStats struct {
	Program
	EnrolledCount  int `json:"enrolledCount"`
	CompletedCount int `json:"completedCount"`
}

type ProgramInput struct {
	Code           string  `json:"code"`
	Title          string  `json:"title"`
	Objectives     *string `json:"objectives"`
	Type           *string `json:"type"`
	Subtype        *string `json:"subtype"`
	DeliveryMethod *string `json:"deliveryMethod"`
	ApprovalStatus string  `json:"approvalStatus"`
}

type Enrollment struct {
	ID               int64  `json:"id"`
	EmployeeID       int64  `json:"employeeId"`
	ProgramID        int64  `json:"programId"`
	CompletionStatus string `json:"completionStatus"`
}

type EnrollmentInput struct {
	EmployeeID       int64  `json:"employeeId"`
	ProgramID        int64  `json:"programId"`
	CompletionStatus string `json:"completionStatus"`
}

// Record is one enrollment joined to its program metadata and, when one
// has been issued, its certificate.
type Record struct {
	Enrollment
	ProgramCode          string     `json:"programCode"`
	Title                string     `json:"title"`
	Type                 *string    `json:"type"`
	DeliveryMethod       *string    `json:"deliveryMethod"`
	CertificatePath      *string    `json:"certificatePath"`
	CertificateIssueDate *time.Time `json:"certificateIssueDate"`
}

type Certificate struct {
	ID           int64     `json:"id"`
	EnrollmentID int64     `json:"enrollmentId"`
	FilePath     string    `json:"filePath"`
	IssueDate    time.Time `json:"issueDate"`
}

// CertificateData is what the renderer needs to produce the document.
type CertificateData struct {
	EnrollmentID  int64
	FirstName     string
	LastName      string
	ProgramTitle  string
	ProgramCode   string
	CompletedDate time.Time
}
