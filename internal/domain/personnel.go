package domain

import "time"

// ProjectGroup is a team inside a department.
type ProjectGroup struct {
	ID             int64
	Name           string
	DepartmentID   *int64
	DepartmentName string
	Description    string
	CreatedAt      time.Time
}

// Personnel is one member of the studio roster.
type Personnel struct {
	ID               int64
	Name             string
	StudentID        string
	Gender           Gender
	GradeMajor       string
	DepartmentID     *int64
	DepartmentName   string
	ProjectGroupID   *int64
	ProjectGroupName string
	Position         string
	StartDate        time.Time
	EndDate          *time.Time
	IsActive         bool
	Phone            string
	QQ               string
	Email            string
	Description      string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ApplyTenure forces IsActive to false once the end date is today or earlier.
// It must run before every save.
func (p *Personnel) ApplyTenure(today time.Time) {
	if p.EndDate != nil && !truncateDay(*p.EndDate).After(truncateDay(today)) {
		p.IsActive = false
	}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// PersonnelFilter narrows roster listings.
type PersonnelFilter struct {
	DepartmentID   *int64
	ProjectGroupID *int64
	Position       string
	Gender         *Gender
	IsActive       *bool
	StartFrom      *time.Time
	StartTo        *time.Time
	EndFrom        *time.Time
	EndTo          *time.Time
	Search         string
}

// GroupCount is one bucket of a roster breakdown.
type GroupCount struct {
	Name   string
	Total  int
	Active int
}

// PersonnelStatistics summarises the roster.
type PersonnelStatistics struct {
	Total        int
	Active       int
	Inactive     int
	ByDepartment []GroupCount
	ByPosition   []GroupCount
}
