package memo

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/studio-backend/internal/domain"
)

// Input holds the writable fields of a memo.
type Input struct {
	Title     string
	Content   string
	CreatedBy string
	IsActive  *bool
}

func (i Input) Validate() error {
	var errs []domain.FieldError
	title := strings.TrimSpace(i.Title)
	switch {
	case title == "":
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	case utf8.RuneCountInString(title) > 200:
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if utf8.RuneCountInString(strings.TrimSpace(i.CreatedBy)) > 100 {
		errs = append(errs, domain.FieldError{Field: "created_by", Message: "max 100 characters"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i Input) apply(m *domain.Memo) {
	m.Title = strings.TrimSpace(i.Title)
	m.Content = i.Content
	m.CreatedBy = strings.TrimSpace(i.CreatedBy)
	m.IsActive = i.IsActive == nil || *i.IsActive
}

// InputOf returns the writable fields of an existing memo.
func InputOf(m *domain.Memo) Input {
	active := m.IsActive
	return Input{Title: m.Title, Content: m.Content, CreatedBy: m.CreatedBy, IsActive: &active}
}
