package org

const (
	DepartmentTypeAcademic       = "Academic"
	DepartmentTypeAdministrative = "Administrative"
)

type University struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Acronym         string `json:"acronym"`
	EstablishedYear int    `json:"establishedYear"`
}

type Faculty struct {
	ID             int64  `json:"id"`
	UniversityID   int64  `json:"universityId"`
	Name           string `json:"name"`
	UniversityName string `json:"universityName"`
}

// Department is resolved up the hierarchy on read; both hops are nullable
// since a department may sit outside any faculty.
type Department struct {
	ID             int64   `json:"id"`
	FacultyID      *int64  `json:"facultyId"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	FacultyName    *string `json:"facultyName"`
	UniversityName *string `json:"universityName"`
	TotalJobs      int     `json:"totalJobs"`
	TotalEmployees int     `json:"totalEmployees"`
}

type DepartmentInput struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	FacultyID *int64 `json:"facultyId"`
}

// DepartmentPatch carries the allow-listed updatable fields. A nil field is
// left untouched, which is different from setting a column to null.
type DepartmentPatch struct {
	Name      *string `json:"name"`
	Type      *string `json:"type"`
	FacultyID *int64  `json:"facultyId"`
}

func (p DepartmentPatch) IsZero() bool {
	return p.Name == nil && p.Type == nil && p.FacultyID == nil
}

// Columns expands the patch into column/value pairs for the store.
func (p DepartmentPatch) Columns() ([]string, []any) {
	var names []string
	var values []any
	if p.Name != nil {
		names = append(names, "name")
		values = append(values, *p.Name)
	}
	if p.Type != nil {
		names = append(names, "type")
		values = append(values, *p.Type)
	}
	if p.FacultyID != nil {
		names = append(names, "faculty_id")
		values = append(values, *p.FacultyID)
	}
	return names, values
}
