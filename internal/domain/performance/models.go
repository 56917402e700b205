package performance

import "time"

type Cycle struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Type               string    `json:"type"`
	StartDate          time.Time `json:"startDate"`
	EndDate            time.Time `json:"endDate"`
	SubmissionDeadline time.Time `json:"submissionDeadline"`
}

type CycleInput struct {
	Name               string    `json:"name"`
	Type               string    `json:"type"`
	StartDate          time.Time `json:"startDate"`
	EndDate            time.Time `json:"endDate"`
	SubmissionDeadline time.Time `json:"submissionDeadline"`
}

type Appraisal struct {
	ID               int64     `json:"id"`
	AssignmentID     int64     `json:"assignmentId"`
	CycleID          int64     `json:"cycleId"`
	Date             time.Time `json:"date"`
	OverallScore     float64   `json:"overallScore"`
	ManagerComments  *string   `json:"managerComments"`
	HRComments       *string   `json:"hrComments"`
	EmployeeComments *string   `json:"employeeComments"`
	ReviewerID       *int64    `json:"reviewerId"`
}

// AppraisalRow joins an appraisal to the employee, job, and cycle it
// belongs to.
type AppraisalRow struct {
	Appraisal
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	JobTitle  string `json:"jobTitle"`
	CycleName string `json:"cycleName"`
	CycleType string `json:"cycleType"`
}

type AppraisalInput struct {
	AssignmentID     int64   `json:"assignmentId"`
	CycleID          int64   `json:"cycleId"`
	OverallScore     float64 `json:"overallScore"`
	ManagerComments  *string `json:"managerComments"`
	HRComments       *string `json:"hrComments"`
	EmployeeComments *string `json:"employeeComments"`
	ReviewerID       *int64  `json:"reviewerId"`
}

// KPIRef is the catalog-side data the scoring engine needs for one KPI.
type KPIRef struct {
	ID          int64
	Name        string
	TargetValue float64
	Weight      float64
}

type KPIScore struct {
	ID            int64     `json:"id"`
	AssignmentID  int64     `json:"assignmentId"`
	KPIID         int64     `json:"kpiId"`
	CycleID       int64     `json:"cycleId"`
	TargetValue   float64   `json:"targetValue"`
	ActualValue   float64   `json:"actualValue"`
	EmployeeScore float64   `json:"employeeScore"`
	WeightedScore float64   `json:"weightedScore"`
	ReviewDate    time.Time `json:"reviewDate"`
}

type KPIScoreRow struct {
	KPIScore
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	KPIName   string  `json:"kpiName"`
	KPITarget float64 `json:"kpiTarget"`
	CycleName string  `json:"cycleName"`
	JobTitle  string  `json:"jobTitle"`
}

// KPIScoreInput carries a raw actual-vs-target observation; the engine
// derives employee_score and weighted_score from it.
type KPIScoreInput struct {
	AssignmentID int64 `json:"assignmentId"`
	KPIID        int64 `json:"kpiId"`
	CycleID      int64 `json:"cycleId"`
	// TargetValue overrides the KPI's catalog target for this observation
	// when positive.
	TargetValue float64 `json:"targetValue"`
	ActualValue float64 `json:"actualValue"`
}

type Appeal struct {
	ID             int64     `json:"id"`
	AppraisalID    int64     `json:"appraisalId"`
	SubmissionDate time.Time `json:"submissionDate"`
	Status         string    `json:"status"`
	Reason         *string   `json:"reason"`
	Resolution     *string   `json:"resolution"`
}

type AppealRow struct {
	Appeal
	CurrentScore float64 `json:"currentScore"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
}
