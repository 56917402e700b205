package employee

import "time"

const (
	StatusActive    = "Active"
	StatusProbation = "Probation"
	StatusLeave     = "Leave"
	StatusResigned  = "Resigned"
	StatusRetired   = "Retired"
)

const (
	AssignmentActive = "Active"
	AssignmentEnded  = "Ended"
)

var employmentStatuses = []string{StatusActive, StatusProbation, StatusLeave, StatusResigned, StatusRetired}

type Employee struct {
	ID                 int64      `json:"id"`
	FirstName          string     `json:"firstName"`
	MiddleName         *string    `json:"middleName"`
	LastName           string     `json:"lastName"`
	ArabicName         *string    `json:"arabicName"`
	Gender             *string    `json:"gender"`
	Nationality        *string    `json:"nationality"`
	DOB                *time.Time `json:"dob"`
	PlaceOfBirth       *string    `json:"placeOfBirth"`
	MaritalStatus      *string    `json:"maritalStatus"`
	EmploymentStatus   string     `json:"employmentStatus"`
	MobilePhone        *string    `json:"mobilePhone"`
	WorkPhone          *string    `json:"workPhone"`
	WorkEmail          *string    `json:"workEmail"`
	PersonalEmail      *string    `json:"personalEmail"`
	ResidentialCity    *string    `json:"residentialCity"`
	ResidentialCountry *string    `json:"residentialCountry"`
}

// Row is an employee left-joined to their active assignment; the
// assignment-side fields stay nil for employees currently unassigned.
type Row struct {
	Employee
	AssignmentID        *int64     `json:"assignmentId"`
	AssignmentStartDate *time.Time `json:"assignmentStartDate"`
	AssignmentStatus    *string    `json:"assignmentStatus"`
	AssignedSalary      *float64   `json:"assignedSalary"`
	JobTitle            *string    `json:"jobTitle"`
	JobCode             *string    `json:"jobCode"`
	DepartmentName      *string    `json:"departmentName"`
}

type Input struct {
	FirstName          string     `json:"firstName"`
	MiddleName         *string    `json:"middleName"`
	LastName           string     `json:"lastName"`
	ArabicName         *string    `json:"arabicName"`
	Gender             *string    `json:"gender"`
	Nationality        *string    `json:"nationality"`
	DOB                *time.Time `json:"dob"`
	PlaceOfBirth       *string    `json:"placeOfBirth"`
	MaritalStatus      *string    `json:"maritalStatus"`
	EmploymentStatus   string     `json:"employmentStatus"`
	MobilePhone        *string    `json:"mobilePhone"`
	WorkPhone          *string    `json:"workPhone"`
	WorkEmail          *string    `json:"workEmail"`
	PersonalEmail      *string    `json:"personalEmail"`
	ResidentialCity    *string    `json:"residentialCity"`
	ResidentialCountry *string    `json:"residentialCountry"`
}

// Patch lists the updatable employee fields. A nil field is left untouched;
// only fields named here can ever reach a column update.
type Patch struct {
	FirstName          *string    `json:"firstName"`
	MiddleName         *string    `json:"middleName"`
	LastName           *string    `json:"lastName"`
	ArabicName         *string    `json:"arabicName"`
	Gender             *string    `json:"gender"`
	Nationality        *string    `json:"nationality"`
	DOB                *time.Time `json:"dob"`
	PlaceOfBirth       *string    `json:"placeOfBirth"`
	MaritalStatus      *string    `json:"maritalStatus"`
	EmploymentStatus   *string    `json:"employmentStatus"`
	MobilePhone        *string    `json:"mobilePhone"`
	WorkPhone          *string    `json:"workPhone"`
	WorkEmail          *string    `json:"workEmail"`
	PersonalEmail      *string    `json:"personalEmail"`
	ResidentialCity    *string    `json:"residentialCity"`
	ResidentialCountry *string    `json:"residentialCountry"`
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
	add("first_name", p.FirstName != nil, p.FirstName)
	add("middle_name", p.MiddleName != nil, p.MiddleName)
	add("last_name", p.LastName != nil, p.LastName)
	add("arabic_name", p.ArabicName != nil, p.ArabicName)
	add("gender", p.Gender != nil, p.Gender)
	add("nationality", p.Nationality != nil, p.Nationality)
	add("dob", p.DOB != nil, p.DOB)
	add("place_of_birth", p.PlaceOfBirth != nil, p.PlaceOfBirth)
	add("marital_status", p.MaritalStatus != nil, p.MaritalStatus)
	add("employment_status", p.EmploymentStatus != nil, p.EmploymentStatus)
	add("mobile_phone", p.MobilePhone != nil, p.MobilePhone)
	add("work_phone", p.WorkPhone != nil, p.WorkPhone)
	add("work_email", p.WorkEmail != nil, p.WorkEmail)
	add("personal_email", p.PersonalEmail != nil, p.PersonalEmail)
	add("residential_city", p.ResidentialCity != nil, p.ResidentialCity)
	add("residential_country", p.ResidentialCountry != nil, p.ResidentialCountry)
	return names, values
}

// Assignment is one row of an employee's assignment history with job,
// contract, and department context resolved.
type Assignment struct {
	ID             int64      `json:"id"`
	EmployeeID     int64      `json:"employeeId"`
	JobID          int64      `json:"jobId"`
	ContractID     int64      `json:"contractId"`
	StartDate      time.Time  `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	AssignedSalary float64    `json:"assignedSalary"`
	Status         string     `json:"status"`
	JobTitle       string     `json:"jobTitle"`
	JobCode        string     `json:"jobCode"`
	ContractName   string     `json:"contractName"`
	ContractType   string     `json:"contractType"`
	DepartmentName *string    `json:"departmentName"`
}

type AssignmentInput struct {
	JobID          int64      `json:"jobId"`
	ContractID     int64      `json:"contractId"`
	StartDate      time.Time  `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	AssignedSalary float64    `json:"assignedSalary"`
}

// AppraisalHistory is an appraisal as seen from the employee side, joined
// to its cycle and the job held at the time.
type AppraisalHistory struct {
	ID               int64     `json:"id"`
	AssignmentID     int64     `json:"assignmentId"`
	CycleID          int64     `json:"cycleId"`
	Date             time.Time `json:"date"`
	OverallScore     float64   `json:"overallScore"`
	ManagerComments  *string   `json:"managerComments"`
	HRComments       *string   `json:"hrComments"`
	EmployeeComments *string   `json:"employeeComments"`
	CycleName        string    `json:"cycleName"`
	CycleType        string    `json:"cycleType"`
	JobTitle         string    `json:"jobTitle"`
}
