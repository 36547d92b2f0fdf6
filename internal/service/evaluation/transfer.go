package evaluation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/heartmarshall/studio-backend/internal/adapter/tabular"
	"github.com/heartmarshall/studio-backend/internal/domain"
	"github.com/heartmarshall/studio-backend/internal/notify"
)

// FilePrefix starts every export file name.
const FilePrefix = "evaluation_records"

var columns = []string{
	"id", "department_id", "department_name", "personnel_id", "personnel_name",
	"item_description", "bonus_score", "deduction_score", "total_score",
	"evaluation_date", "remarks", "created_at", "updated_at",
}

var requiredColumns = []string{
	"id", "department_id", "department_name", "personnel_id", "personnel_name",
	"item_description", "bonus_score", "deduction_score", "evaluation_date",
}

var aliases = tabular.Aliases(map[string][]string{
	"id":               {"编号", "记录ID"},
	"department_id":    {"部门ID", "部门编号"},
	"department_name":  {"部门名称", "部门"},
	"personnel_id":     {"人员ID", "人员编号"},
	"personnel_name":   {"人员姓名", "姓名"},
	"item_description": {"考核事项", "事项描述", "事项"},
	"bonus_score":      {"加分"},
	"deduction_score":  {"扣分"},
	"total_score":      {"总分"},
	"evaluation_date":  {"考核日期", "日期"},
	"remarks":          {"备注"},
	"created_at":       {"创建时间"},
	"updated_at":       {"更新时间"},
})

// Export is a rendered export ready to be written.
type Export struct {
	Table    tabular.Table
	Filename string
	Format   tabular.Format
}

// Export renders the filtered records. An empty result is rejected.
func (s *Service) Export(ctx context.Context, f domain.EvaluationFilter, format tabular.Format) (Export, error) {
	recs, err := s.repo.List(ctx, f)
	if err != nil {
		return Export{}, fmt.Errorf("list evaluation records: %w", err)
	}
	if len(recs) == 0 {
		return Export{}, domain.NewValidationError("detail", "暂无数据可导出")
	}

	t := tabular.Table{Sheet: FilePrefix, Header: columns, Rows: make([][]any, 0, len(recs))}
	for _, r := range recs {
		t.Rows = append(t.Rows, []any{
			r.ID, r.DepartmentID, r.DepartmentName, r.PersonnelID, r.PersonnelName,
			r.ItemDescription, r.BonusScore, r.DeductionScore, r.TotalScore,
			r.EvaluationDate.In(s.loc), r.Remarks, r.CreatedAt.In(s.loc), r.UpdatedAt.In(s.loc),
		})
	}

	out := Export{Table: t, Format: format, Filename: tabular.Filename(FilePrefix, format, s.now().In(s.loc))}
	s.log.InfoContext(ctx, "evaluation records exported",
		slog.Int("count", len(recs)),
		slog.String("filename", out.Filename),
	)
	s.publish(ctx, notify.OpCreate, notify.Batch(notify.KindEvaluationRecord, notify.ActionExport, len(recs), out.Filename))
	return out, nil
}

// ImportResult reports a successful import.
type ImportResult struct {
	Count int
}

// Message is the user-facing success text.
func (r ImportResult) Message() string {
	return fmt.Sprintf("成功导入 %d 条考评记录", r.Count)
}

// Import replaces every evaluation record with the rows of the file. The
// file is validated in full first; a single bad row rejects it and nothing
// changes. Ids in the file only serve duplicate detection.
func (s *Service) Import(ctx context.Context, r io.Reader, filename string) (ImportResult, error) {
	sheet, err := tabular.Read(r, tabular.FormatFromFilename(filename), aliases)
	if err != nil {
		return ImportResult{}, domain.NewValidationError("file", err.Error())
	}
	if missing := sheet.Missing(requiredColumns); len(missing) > 0 {
		sort.Strings(missing)
		return ImportResult{}, domain.NewValidationError("file", "缺少必要的列: "+strings.Join(missing, ", "))
	}

	records, rowErrs, err := s.parseRows(ctx, sheet)
	if err != nil {
		return ImportResult{}, fmt.Errorf("resolve import rows: %w", err)
	}
	if len(rowErrs) > 0 {
		return ImportResult{}, &domain.ImportError{Rows: rowErrs}
	}

	var n int
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		n, err = s.repo.ReplaceAll(ctx, records)
		return err
	})
	if err != nil {
		return ImportResult{}, fmt.Errorf("replace evaluation records: %w", err)
	}

	s.log.InfoContext(ctx, "evaluation records imported",
		slog.Int("count", n),
		slog.String("filename", filename),
	)
	s.publish(ctx, notify.OpCreate, notify.Batch(notify.KindEvaluationRecord, notify.ActionImport, n, filename))
	return ImportResult{Count: n}, nil
}

type resolver struct {
	s           *Service
	departments map[string]*domain.Department
	personnel   map[string]*domain.Personnel
}

// lookupError is a repository failure while resolving a row. It aborts the
// import instead of being reported against the row.
type lookupError struct{ err error }

func (e *lookupError) Error() string { return e.err.Error() }
func (e *lookupError) Unwrap() error { return e.err }

func (s *Service) parseRows(ctx context.Context, sheet *tabular.Sheet) ([]domain.EvaluationRecord, []domain.RowError, error) {
	var (
		out  []domain.EvaluationRecord
		errs []domain.RowError
		seen = map[int64]bool{}
		res  = &resolver{s: s, departments: map[string]*domain.Department{}, personnel: map[string]*domain.Personnel{}}
	)
	for _, row := range sheet.Rows {
		rec, err := res.parse(ctx, row, seen)
		var le *lookupError
		if errors.As(err, &le) {
			return nil, nil, le.err
		}
		if err != nil {
			errs = append(errs, domain.RowError{Line: row.Line, Message: err.Error()})
			continue
		}
		out = append(out, *rec)
	}
	return out, errs, nil
}

// found turns ErrNotFound into "no match" and any other failure into a
// lookupError.
func found[T any](v *T, err error) (*T, error) {
	if err == nil {
		return v, nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return nil, &lookupError{err: err}
}

func (r *resolver) parse(ctx context.Context, row tabular.Row, seen map[int64]bool) (*domain.EvaluationRecord, error) {
	id, err := tabular.ParseID(row.Get("id"))
	if err != nil {
		return nil, err
	}
	if id != 0 {
		if seen[id] {
			return nil, errors.New("表中存在重复的记录 ID")
		}
		seen[id] = true
	}

	dept, err := r.department(ctx, row.Get("department_id"), row.Get("department_name"))
	if err != nil {
		return nil, err
	}
	member, err := r.member(ctx, row.Get("personnel_id"), row.Get("personnel_name"))
	if err != nil {
		return nil, err
	}

	date, err := tabular.ParseTime(row.Get("evaluation_date"), r.s.loc)
	if err != nil {
		return nil, err
	}
	bonus, err := tabular.ParseDecimal(row.Get("bonus_score"))
	if err != nil {
		return nil, err
	}
	deduction, err := tabular.ParseDecimal(row.Get("deduction_score"))
	if err != nil {
		return nil, err
	}

	in := RecordInput{
		DepartmentID:    dept.ID,
		PersonnelID:     &member.ID,
		PersonnelName:   member.Name,
		ItemDescription: row.Get("item_description"),
		BonusScore:      bonus,
		DeductionScore:  deduction,
		Remarks:         row.Get("remarks"),
		EvaluationDate:  date,
	}
	if err := in.Validate(); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return nil, fmt.Errorf("%s: %s", ve.Errors[0].Field, ve.Errors[0].Message)
		}
		return nil, err
	}

	var rec domain.EvaluationRecord
	in.apply(&rec)
	rec.DepartmentName = dept.Name
	return &rec, nil
}

// department matches by id first, then by name.
func (r *resolver) department(ctx context.Context, rawID, name string) (*domain.Department, error) {
	key := rawID + "\x00" + name
	if d, ok := r.departments[key]; ok {
		return d, nil
	}

	var (
		d   *domain.Department
		err error
	)
	if id, perr := tabular.ParseID(rawID); perr == nil && id > 0 {
		if d, err = found(r.s.departments.GetDepartment(ctx, id)); err != nil {
			return nil, err
		}
	}
	if d == nil && name != "" {
		if d, err = found(r.s.departments.GetDepartmentByName(ctx, name)); err != nil {
			return nil, err
		}
	}
	if d == nil {
		return nil, errors.New("无法匹配部门")
	}
	r.departments[key] = d
	return d, nil
}

// member matches by id first, then by name.
func (r *resolver) member(ctx context.Context, rawID, name string) (*domain.Personnel, error) {
	key := rawID + "\x00" + name
	if p, ok := r.personnel[key]; ok {
		return p, nil
	}

	var (
		p   *domain.Personnel
		err error
	)
	if id, perr := tabular.ParseID(rawID); perr == nil && id > 0 {
		if p, err = found(r.s.personnel.GetByID(ctx, id)); err != nil {
			return nil, err
		}
	}
	if p == nil && name != "" {
		if p, err = found(r.s.personnel.GetByName(ctx, name)); err != nil {
			return nil, err
		}
	}
	if p == nil {
		return nil, errors.New("无法匹配人员")
	}
	r.personnel[key] = p
	return p, nil
}
