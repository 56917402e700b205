package analytics

import "time"

// Stats is the dashboard headline view. AverageAppraisalScore is 0 when
// no appraisals exist, never null or NaN.
type Stats struct {
	TotalEmployees        int     `json:"totalEmployees"`
	ActiveEmployees       int     `json:"activeEmployees"`
	TotalJobs             int     `json:"totalJobs"`
	ActiveAssignments     int     `json:"activeAssignments"`
	TotalDepartments      int     `json:"totalDepartments"`
	TotalTrainingPrograms int     `json:"totalTrainingPrograms"`
	AverageAppraisalScore float64 `json:"averageAppraisalScore"`
}

type GenderCount struct {
	Gender string `json:"gender"`
	Count  int    `json:"count"`
}

type DepartmentCount struct {
	DepartmentName string `json:"departmentName"`
	EmployeeCount  int    `json:"employeeCount"`
}

type RecentAppraisal struct {
	ID           int64     `json:"id"`
	EmployeeName string    `json:"employeeName"`
	JobTitle     string    `json:"jobTitle"`
	OverallScore float64   `json:"overallScore"`
	Date         time.Time `json:"date"`
	CycleName    string    `json:"cycleName"`
}

// StatsData is the raw material for Stats. The score sum and count stay
// separate so the average can be computed without a null-prone AVG.
type StatsData struct {
	TotalEmployees        int
	ActiveEmployees       int
	TotalJobs             int
	ActiveAssignments     int
	TotalDepartments      int
	TotalTrainingPrograms int
	ScoreSum              float64
	ScoreCount            int
}
