package notify

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/studio-backend/internal/domain"
)

func ItemFrom(it *domain.Item) *ItemPayload {
	p := &ItemPayload{
		ID:           ptr(it.ID),
		Name:         it.Name,
		SerialNumber: it.SerialNumber,
		Status:       string(it.Status),
		CategoryName: it.CategoryName,
		Location:     it.Location,
		Owner:        it.Owner,
		Value:        nullDecimal(it.Value),
		Description:  it.Description,
	}
	if it.CurrentUsage != nil {
		p.CurrentUser = &struct {
			Username string `json:"username"`
		}{Username: it.CurrentUsage.User}
	}
	return p
}

func ItemCategoryFrom(c *domain.ItemCategory) *ItemCategoryPayload {
	return &ItemCategoryPayload{ID: ptr(c.ID), Name: c.Name, Description: c.Description}
}

func ItemUsageFrom(u *domain.ItemUsage) *ItemUsagePayload {
	returned := u.IsReturned
	return &ItemUsagePayload{
		ID:                 ptr(u.ID),
		ItemName:           u.ItemName,
		User:               u.User,
		BorrowerContact:    u.BorrowerContact,
		StartTime:          At(u.StartTime),
		ExpectedReturnTime: AtPtr(u.ExpectedReturnTime),
		EndTime:            AtPtr(u.EndTime),
		IsReturned:         &returned,
		Purpose:            u.Purpose,
		ConditionAfter:     u.ConditionAfter,
	}
}

func FinancialRecordFrom(r *domain.FinancialRecord) *FinancialRecordPayload {
	return &FinancialRecordPayload{
		ID:              ptr(r.ID),
		Title:           r.Title,
		Amount:          decimal.NewNullDecimal(r.Amount),
		RecordType:      string(r.RecordType),
		TransactionDate: On(r.TransactionDate),
		DepartmentName:  r.DepartmentName,
		CategoryName:    r.CategoryName,
		FundManager:     r.FundManager,
		Description:     r.Description,
	}
}

func FinanceCategoryFrom(c *domain.FinanceCategory) *FinanceCategoryPayload {
	return &FinanceCategoryPayload{ID: ptr(c.ID), Name: c.Name, Description: c.Description}
}

func DepartmentFrom(d *domain.Department) *DepartmentPayload {
	return &DepartmentPayload{ID: ptr(d.ID), Name: d.Name, Description: d.Description}
}

// ProofImagesFrom describes receipts attached to record in one event.
func ProofImagesFrom(record *domain.FinancialRecord, images []domain.ProofImage) *ProofImagePayload {
	p := &ProofImagePayload{RecordID: ptr(record.ID), RecordTitle: record.Title}
	for _, img := range images {
		p.Images = append(p.Images, img.Image)
	}
	if len(images) == 1 {
		id := images[0].ID
		p.ID = &id
		p.Description = images[0].Description
	}
	return p
}

func PersonnelFrom(m *domain.Personnel) *PersonnelPayload {
	active := m.IsActive
	p := &PersonnelPayload{
		ID:               ptr(m.ID),
		Name:             m.Name,
		StudentID:        m.StudentID,
		Gender:           string(m.Gender),
		GradeMajor:       m.GradeMajor,
		DepartmentName:   m.DepartmentName,
		ProjectGroupName: m.ProjectGroupName,
		Position:         m.Position,
		StartDate:        On(m.StartDate),
		EndDate:          OnPtr(m.EndDate),
		IsActive:         &active,
		Phone:            m.Phone,
		Email:            m.Email,
	}
	if p.DepartmentName == "" && m.DepartmentID != nil {
		p.Department, _ = json.Marshal(*m.DepartmentID)
	}
	return p
}

func ProjectGroupFrom(g *domain.ProjectGroup) *ProjectGroupPayload {
	return &ProjectGroupPayload{ID: ptr(g.ID), Name: g.Name, DepartmentName: g.DepartmentName, Description: g.Description}
}

func EvaluationRecordFrom(r *domain.EvaluationRecord) *EvaluationRecordPayload {
	return &EvaluationRecordPayload{
		ID:              ptr(r.ID),
		PersonnelName:   r.PersonnelName,
		DepartmentName:  r.DepartmentName,
		ItemDescription: r.ItemDescription,
		BonusScore:      decimal.NewNullDecimal(r.BonusScore),
		DeductionScore:  decimal.NewNullDecimal(r.DeductionScore),
		TotalScore:      decimal.NewNullDecimal(r.TotalScore),
		EvaluationDate:  At(r.EvaluationDate),
		Remarks:         r.Remarks,
	}
}

func MemoFrom(m *domain.Memo) *MemoPayload {
	active := m.IsActive
	return &MemoPayload{
		ID:             ptr(m.ID),
		Title:          m.Title,
		CreatedBy:      m.CreatedBy,
		IsActive:       &active,
		ContentPreview: m.Preview(),
	}
}

// Batch describes a bulk operation on kind.
func Batch(kind Kind, action string, count int, filename string) *BatchPayload {
	return &BatchPayload{Of: kind, Action: action, Count: &count, Filename: filename}
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func ptr[T any](v T) *T { return &v }
