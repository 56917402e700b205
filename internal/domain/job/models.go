package job

import "time"

const (
	StatusOpen   = "Open"
	StatusClosed = "Closed"
)

type Job struct {
	ID           int64    `json:"id"`
	DepartmentID *int64   `json:"departmentId"`
	Code         string   `json:"code"`
	Title        string   `json:"title"`
	Level        *string  `json:"level"`
	Category     *string  `json:"category"`
	Grade        *string  `json:"grade"`
	MinSalary    *float64 `json:"minSalary"`
	MaxSalary    *float64 `json:"maxSalary"`
	Description  *string  `json:"description"`
	Status       string   `json:"status"`
	ReportsTo    *int64   `json:"reportsTo"`
}

// Row is a job enriched with its resolved hierarchy and the number of
// currently active assignments.
type Row struct {
	Job
	DepartmentName    *string `json:"departmentName"`
	FacultyName       *string `json:"facultyName"`
	UniversityName    *string `json:"universityName"`
	ActiveAssignments int     `json:"activeAssignments"`
}

// Detail is a single job with its objective tree.
type Detail struct {
	Job
	DepartmentName *string     `json:"departmentName"`
	FacultyName    *string     `json:"facultyName"`
	UniversityName *string     `json:"universityName"`
	Objectives     []Objective `json:"objectives"`
}

type Objective struct {
	ID          int64  `json:"id"`
	JobID       int64  `json:"jobId"`
	Description string `json:"description"`
	KPIs        []KPI  `json:"kpis"`
}

type KPI struct {
	ID          int64   `json:"id"`
	ObjectiveID int64   `json:"objectiveId"`
	Name        string  `json:"name"`
	TargetValue float64 `json:"targetValue"`
	Weight      float64 `json:"weight"`
}

type Input struct {
	DepartmentID *int64   `json:"departmentId"`
	Code         string   `json:"code"`
	Title        string   `json:"title"`
	Level        *string  `json:"level"`
	Category     *string  `json:"category"`
	Grade        *string  `json:"grade"`
	MinSalary    *float64 `json:"minSalary"`
	MaxSalary    *float64 `json:"maxSalary"`
	Description  *string  `json:"description"`
	Status       string   `json:"status"`
	ReportsTo    *int64   `json:"reportsTo"`
}

// Patch carries the allow-listed updatable job fields; nil means untouched.
type Patch struct {
	DepartmentID *int64   `json:"departmentId"`
	Code         *string  `json:"code"`
	Title        *string  `json:"title"`
	Level        *string  `json:"level"`
	Category     *string  `json:"category"`
	Grade        *string  `json:"grade"`
	MinSalary    *float64 `json:"minSalary"`
	MaxSalary    *float64 `json:"maxSalary"`
	Description  *string  `json:"description"`
	Status       *string  `json:"status"`
	ReportsTo    *int64   `json:"reportsTo"`
}

func (p Patch) IsZero() bool {
	names, _ := p.Columns()
	return len(names) == 0
}

func (p Patch) Columns() ([]string, []any) {
	var names []string
	var values []any
	add := func(name string, set bool, value any) {
		if set {
			names = append(names, name)
			values = append(values, value)
		}
	}
	add("department_id", p.DepartmentID != nil, p.DepartmentID)
	add("code", p.Code != nil, p.Code)
	add("title", p.Title != nil, p.Title)
	add("level", p.Level != nil, p.Level)
	add("category", p.Category != nil, p.Category)
	add("grade", p.Grade != nil, p.Grade)
	add("min_salary", p.MinSalary != nil, p.MinSalary)
	add("max_salary", p.MaxSalary != nil, p.MaxSalary)
	add("description", p.Description != nil, p.Description)
	add("status", p.Status != nil, p.Status)
	add("reports_to", p.ReportsTo != nil, p.ReportsTo)
	return names, values
}

// AssignmentRow is an assignment as listed under a job, with the holder's
// identity and contract resolved.
type AssignmentRow struct {
	ID             int64      `json:"id"`
	EmployeeID     int64      `json:"employeeId"`
	ContractID     int64      `json:"contractId"`
	StartDate      time.Time  `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	AssignedSalary float64    `json:"assignedSalary"`
	Status         string     `json:"status"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	WorkEmail      *string    `json:"workEmail"`
	ContractName   string     `json:"contractName"`
}
