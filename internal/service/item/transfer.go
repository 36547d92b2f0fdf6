package item

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/heartmarshall/studio-backend/internal/adapter/tabular"
	"github.com/heartmarshall/studio-backend/internal/domain"
)

var exportHeader = []string{
	"id", "name", "serial_number", "category", "status",
	"location", "owner", "purchase_date", "value", "description",
}

var importAliases = tabular.Aliases(map[string][]string{
	"id":            {"ID", "编号"},
	"name":          {"名称", "物品名称"},
	"serial_number": {"序列号", "编码"},
	"category":      {"类别", "分类", "category_name"},
	"status":        {"状态"},
	"location":      {"存放位置", "位置"},
	"owner":         {"所有者", "负责人"},
	"purchase_date": {"购买日期"},
	"value":         {"价值", "金额"},
	"description":   {"描述", "备注"},
})

var requiredColumns = []string{"name", "serial_number"}

var statusAliases = map[string]domain.ItemStatus{
	"可用":   domain.ItemStatusAvailable,
	"使用中":  domain.ItemStatusInUse,
	"维修中":  domain.ItemStatusMaintenance,
	"已损坏":  domain.ItemStatusDamaged,
	"已丢失":  domain.ItemStatusLost,
	"已报废":  domain.ItemStatusAbandoned,
	"禁止使用": domain.ItemStatusProhibited,
}

// Export renders the filtered item list as a table.
func (s *Service) Export(ctx context.Context, filter domain.ItemFilter) (tabular.Table, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return tabular.Table{}, fmt.Errorf("list items: %w", err)
	}

	t := tabular.Table{Sheet: "items", Header: exportHeader, Rows: make([][]any, 0, len(items))}
	for _, it := range items {
		var purchase any
		if it.PurchaseDate != nil {
			purchase = it.PurchaseDate.Format("2006-01-02")
		}
		t.Rows = append(t.Rows, []any{
			it.ID, it.Name, it.SerialNumber, it.CategoryName, string(it.Status),
			it.Location, it.Owner, purchase, it.Value, it.Description,
		})
	}

	s.log.InfoContext(ctx, "items exported", slog.Int("count", len(items)))
	return t, nil
}

// ImportResult reports a successful import.
type ImportResult struct {
	Count    int
	Filename string
}

type importRow struct {
	line     int
	item     domain.Item
	category string
}

// Import appends the items in r. Categories are matched by name and created
// on demand. Every row is validated first; any failure rejects the whole file.
func (s *Service) Import(ctx context.Context, r io.Reader, filename string) (ImportResult, error) {
	sheet, err := tabular.Read(r, tabular.FormatFromFilename(filename), importAliases)
	if err != nil {
		return ImportResult{}, domain.NewValidationError("file", err.Error())
	}
	if missing := sheet.Missing(requiredColumns); len(missing) > 0 {
		return ImportResult{}, domain.NewValidationError("file", "缺少必要的列: "+strings.Join(missing, ", "))
	}

	rows, rowErrs := s.parseRows(sheet)
	if len(rowErrs) > 0 {
		return ImportResult{}, &domain.ImportError{Rows: rowErrs}
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		categories := map[string]*int64{}
		for i := range rows {
			row := &rows[i]
			if row.category != "" {
				id, err := s.categoryID(ctx, categories, row.category)
				if err != nil {
					return err
				}
				row.item.CategoryID = id
			}
			if _, err := s.repo.Create(ctx, &row.item); err != nil {
				if errors.Is(err, domain.ErrAlreadyExists) {
					return &domain.ImportError{Rows: []domain.RowError{{
						Line:    row.line,
						Message: "序列号已存在: " + row.item.SerialNumber,
					}}}
				}
				return fmt.Errorf("import item line %d: %w", row.line, err)
			}
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}

	s.log.InfoContext(ctx, "items imported",
		slog.Int("count", len(rows)),
		slog.String("filename", filename),
	)
	return ImportResult{Count: len(rows), Filename: filename}, nil
}

func (s *Service) parseRows(sheet *tabular.Sheet) ([]importRow, []domain.RowError) {
	var (
		rows    []importRow
		errs    []domain.RowError
		serials = map[string]int{}
	)
	for _, r := range sheet.Rows {
		fail := func(msg string) { errs = append(errs, domain.RowError{Line: r.Line, Message: msg}) }

		in := ItemInput{
			Name:         r.Get("name"),
			SerialNumber: r.Get("serial_number"),
			Location:     r.Get("location"),
			Owner:        r.Get("owner"),
			Description:  r.Get("description"),
		}

		if raw := r.Get("status"); raw != "" {
			st, ok := statusAliases[raw]
			if !ok {
				st = domain.ItemStatus(domain.NormalizeText(raw))
			}
			in.Status = st
		}
		if raw := r.Get("purchase_date"); raw != "" {
			d, err := tabular.ParseTime(raw, s.loc)
			if err != nil {
				fail(err.Error())
				continue
			}
			in.PurchaseDate = &d
		}
		if raw := r.Get("value"); raw != "" {
			v, err := tabular.ParseDecimal(raw)
			if err != nil {
				fail(err.Error())
				continue
			}
			in.Value = &v
		}

		if err := in.Validate(); err != nil {
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				for _, fe := range ve.Errors {
					fail(fe.Field + ": " + fe.Message)
				}
			}
			continue
		}
		if prev, ok := serials[in.SerialNumber]; ok {
			fail(fmt.Sprintf("序列号与第 %d 行重复: %s", prev, in.SerialNumber))
			continue
		}
		serials[in.SerialNumber] = r.Line

		row := importRow{line: r.Line, category: r.Get("category")}
		in.apply(&row.item)
		rows = append(rows, row)
	}
	return rows, errs
}

func (s *Service) categoryID(ctx context.Context, cache map[string]*int64, name string) (*int64, error) {
	if id, ok := cache[name]; ok {
		return id, nil
	}
	c, err := s.repo.GetCategoryByName(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		c, err = s.repo.CreateCategory(ctx, &domain.ItemCategory{Name: name})
	}
	if err != nil {
		return nil, fmt.Errorf("resolve category %q: %w", name, err)
	}
	cache[name] = &c.ID
	return &c.ID, nil
}
