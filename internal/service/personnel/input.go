package personnel

import (
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/studio-backend/internal/domain"
)

var (
	studentIDPattern = regexp.MustCompile(`^\d{8,12}$`)
	phonePattern     = regexp.MustCompile(`^1[3-9]\d{9}$`)
	qqPattern        = regexp.MustCompile(`^\d{5,15}$`)
)

// MemberInput holds every writable field of a roster entry. IsActive is
// overridden by the tenure rule on save.
type MemberInput struct {
	Name           string
	StudentID      string
	Gender         domain.Gender
	GradeMajor     string
	DepartmentID   *int64
	ProjectGroupID *int64
	Position       string
	StartDate      time.Time
	EndDate        *time.Time
	IsActive       bool
	Phone          string
	QQ             string
	Email          string
	Description    string
}

// Validate checks all fields and collects all errors.
func (i MemberInput) Validate() error {
	var errs []domain.FieldError
	add := func(field, msg string) { errs = append(errs, domain.FieldError{Field: field, Message: msg}) }

	name := strings.TrimSpace(i.Name)
	switch {
	case name == "":
		add("name", "required")
	case utf8.RuneCountInString(name) > 50:
		add("name", "max 50 characters")
	}
	if !studentIDPattern.MatchString(strings.TrimSpace(i.StudentID)) {
		add("student_id", "学号应为8-12位数字")
	}
	if !i.Gender.IsValid() {
		add("gender", "must be male or female")
	}
	if utf8.RuneCountInString(i.GradeMajor) > 100 {
		add("grade_major", "max 100 characters")
	}
	position := strings.TrimSpace(i.Position)
	switch {
	case position == "":
		add("position", "required")
	case utf8.RuneCountInString(position) > 50:
		add("position", "max 50 characters")
	}
	if i.StartDate.IsZero() {
		add("start_date", "required")
	}
	if i.EndDate != nil && !i.StartDate.IsZero() && !i.EndDate.After(i.StartDate) {
		add("end_date", "任职结束时间必须晚于开始时间")
	}
	if p := strings.TrimSpace(i.Phone); p != "" && !phonePattern.MatchString(p) {
		add("phone", "请输入有效的手机号码")
	}
	if q := strings.TrimSpace(i.QQ); q != "" && !qqPattern.MatchString(q) {
		add("qq", "QQ号应为5-15位数字")
	}
	if e := strings.TrimSpace(i.Email); e != "" {
		if _, err := mail.ParseAddress(e); err != nil {
			add("email", "invalid email")
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i MemberInput) apply(p *domain.Personnel) {
	p.Name = strings.TrimSpace(i.Name)
	p.StudentID = strings.TrimSpace(i.StudentID)
	p.Gender = i.Gender
	p.GradeMajor = strings.TrimSpace(i.GradeMajor)
	p.DepartmentID = i.DepartmentID
	p.ProjectGroupID = i.ProjectGroupID
	p.Position = strings.TrimSpace(i.Position)
	p.StartDate = i.StartDate
	p.EndDate = i.EndDate
	p.IsActive = i.IsActive
	p.Phone = strings.TrimSpace(i.Phone)
	p.QQ = strings.TrimSpace(i.QQ)
	p.Email = strings.TrimSpace(i.Email)
	p.Description = strings.TrimSpace(i.Description)
}

// InputOf returns the writable fields of an existing member.
func InputOf(p *domain.Personnel) MemberInput {
	return MemberInput{
		Name:           p.Name,
		StudentID:      p.StudentID,
		Gender:         p.Gender,
		GradeMajor:     p.GradeMajor,
		DepartmentID:   p.DepartmentID,
		ProjectGroupID: p.ProjectGroupID,
		Position:       p.Position,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		IsActive:       p.IsActive,
		Phone:          p.Phone,
		QQ:             p.QQ,
		Email:          p.Email,
		Description:    p.Description,
	}
}

// GroupInput holds the writable fields of a project group.
type GroupInput struct {
	Name         string
	DepartmentID *int64
	Description  string
}

// Validate checks all fields and collects all errors.
func (i GroupInput) Validate() error {
	name := strings.TrimSpace(i.Name)
	if name == "" {
		return domain.NewValidationError("name", "required")
	}
	if utf8.RuneCountInString(name) > 100 {
		return domain.NewValidationError("name", "max 100 characters")
	}
	return nil
}
