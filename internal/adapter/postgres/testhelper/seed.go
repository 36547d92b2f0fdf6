package testhelper

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/studio-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// uniqueStudentID returns a 10-digit student id unlikely to collide across tests.
func uniqueStudentID() string {
	return fmt.Sprintf("%010d", rand.Int64N(9_000_000_000)+1_000_000_000)
}

// SeedDepartment inserts a department with a unique name.
func SeedDepartment(t *testing.T, pool *pgxpool.Pool) domain.Department {
	t.Helper()

	d := domain.Department{Name: "dept-" + uniqueSuffix(), Description: "seeded"}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO departments (name, description) VALUES ($1, $2) RETURNING id, created_at`,
		d.Name, d.Description,
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedDepartment: %v", err)
	}
	return d
}

// SeedItemCategory inserts an item category with a unique name.
func SeedItemCategory(t *testing.T, pool *pgxpool.Pool) domain.ItemCategory {
	t.Helper()

	c := domain.ItemCategory{Name: "cat-" + uniqueSuffix()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO item_categories (name) VALUES ($1) RETURNING id`, c.Name,
	).Scan(&c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedItemCategory: %v", err)
	}
	return c
}

// SeedItem inserts an available item in the given category (nil for none).
func SeedItem(t *testing.T, pool *pgxpool.Pool, categoryID *int64) domain.Item {
	t.Helper()

	suffix := uniqueSuffix()
	it := domain.Item{
		Name:         "item-" + suffix,
		SerialNumber: "SN-" + suffix,
		CategoryID:   categoryID,
		Status:       domain.ItemStatusAvailable,
		Location:     "shelf A",
		Owner:        "studio",
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO items (name, serial_number, category_id, status, location, owner)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at`,
		it.Name, it.SerialNumber, it.CategoryID, string(it.Status), it.Location, it.Owner,
	).Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedItem: %v", err)
	}
	return it
}

// SeedFinancialRecord inserts a record of the given type and amount dated today.
func SeedFinancialRecord(t *testing.T, pool *pgxpool.Pool, rt domain.RecordType, amount string, departmentID *int64) domain.FinancialRecord {
	t.Helper()

	rec := domain.FinancialRecord{
		Title:           "record-" + uniqueSuffix(),
		Amount:          decimal.RequireFromString(amount),
		RecordType:      rt,
		TransactionDate: time.Now().UTC().Truncate(24 * time.Hour),
		DepartmentID:    departmentID,
		FundManager:     "treasurer",
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO financial_records (title, amount, record_type, transaction_date, department_id, fund_manager)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at`,
		rec.Title, rec.Amount, string(rec.RecordType), rec.TransactionDate, rec.DepartmentID, rec.FundManager,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedFinancialRecord: %v", err)
	}
	return rec
}

// SeedPersonnel inserts an active member who started a year ago. A non-nil
// endDate is stored as-is so tests can build expired-but-active rows.
func SeedPersonnel(t *testing.T, pool *pgxpool.Pool, departmentID *int64, endDate *time.Time) domain.Personnel {
	t.Helper()

	p := domain.Personnel{
		Name:         "member-" + uniqueSuffix(),
		StudentID:    uniqueStudentID(),
		Gender:       domain.GenderFemale,
		DepartmentID: departmentID,
		Position:     "developer",
		StartDate:    time.Now().UTC().AddDate(-1, 0, 0).Truncate(24 * time.Hour),
		EndDate:      endDate,
		IsActive:     true,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO personnel (name, student_id, gender, department_id, position, start_date, end_date, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at, updated_at`,
		p.Name, p.StudentID, string(p.Gender), p.DepartmentID, p.Position, p.StartDate, p.EndDate, p.IsActive,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedPersonnel: %v", err)
	}
	return p
}

// SeedMemo inserts an active memo.
func SeedMemo(t *testing.T, pool *pgxpool.Pool) domain.Memo {
	t.Helper()

	m := domain.Memo{Title: "memo-" + uniqueSuffix(), Content: "content", CreatedBy: "tester", IsActive: true}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO memos (title, content, created_by) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`,
		m.Title, m.Content, m.CreatedBy,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedMemo: %v", err)
	}
	return m
}
