package notify

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/studio-backend/internal/adapter/mail"
)

const (
	unknownValue  = "未知"
	deletedPrefix = "[已删除] "
	systemActor   = "系统"
)

// Field is one itemized line of a notification body. Key is the english
// field name; the renderer maps it to a display label.
type Field struct {
	Key   string
	Value any
}

var fieldLabels = map[string]string{
	"id":                   "ID",
	"name":                 "名称",
	"serial_number":        "序列号",
	"status":               "状态",
	"category":             "类别",
	"location":             "存放位置",
	"owner":                "所有者",
	"value":                "价值",
	"current_user":         "当前使用人",
	"description":          "描述",
	"item":                 "物品",
	"user":                 "使用人",
	"borrower_contact":     "联系方式",
	"start_time":           "借出时间",
	"expected_return_time": "预计归还时间",
	"end_time":             "归还时间",
	"is_returned":          "已归还",
	"purpose":              "用途",
	"condition_after":      "归还状况",
	"title":                "标题",
	"amount":               "金额",
	"record_type":          "收支类型",
	"transaction_date":     "交易日期",
	"department":           "部门",
	"fund_manager":         "经费负责人",
	"record_id":            "财务记录ID",
	"record_title":         "财务记录",
	"images":               "图片",
	"student_id":           "学号",
	"gender":               "性别",
	"grade_major":          "年级专业",
	"project_group":        "项目组",
	"position":             "职位",
	"start_date":           "加入日期",
	"end_date":             "离开日期",
	"is_active":            "在职",
	"phone":                "电话",
	"email":                "邮箱",
	"personnel_name":       "人员",
	"item_description":     "考核事项",
	"bonus_score":          "加分",
	"deduction_score":      "扣分",
	"total_score":          "总分",
	"evaluation_date":      "考核日期",
	"remarks":              "备注",
	"created_by":           "创建人",
	"memo_active":          "有效",
	"content_preview":      "内容摘要",
	"action":               "批量操作",
	"count":                "记录数",
	"filename":             "文件名",
	"names":                "涉及人员",
}

var valueLabels = map[string]map[string]string{
	"status": {
		"available":   "可用",
		"in_use":      "使用中",
		"maintenance": "维修中",
		"damaged":     "已损坏",
		"lost":        "已丢失",
		"abandoned":   "已报废",
		"prohibited":  "禁止使用",
	},
	"record_type": {"income": "收入", "expense": "支出"},
	"gender":      {"male": "男", "female": "女"},
	"action": {
		ActionImport:       "导入",
		ActionExport:       "导出",
		ActionCheckExpired: "到期检查",
	},
}

// fieldsOf lists every field a variant declares, in display order, including
// empty ones. The first headline key found is the one marked on delete.
func fieldsOf(p Payload) []Field {
	switch v := p.(type) {
	case *ItemPayload:
		return []Field{
			{"id", v.ID}, {"name", v.Name}, {"serial_number", v.SerialNumber},
			{"status", v.Status}, {"category", v.CategoryName}, {"location", v.Location},
			{"owner", v.Owner}, {"value", v.Value}, {"current_user", v.currentUser()},
			{"description", v.Description},
		}
	case *ItemCategoryPayload:
		return []Field{{"id", v.ID}, {"name", v.Name}, {"description", v.Description}}
	case *ItemUsagePayload:
		return []Field{
			{"id", v.ID}, {"item", v.ItemName}, {"user", v.User},
			{"borrower_contact", v.BorrowerContact}, {"start_time", v.StartTime},
			{"expected_return_time", v.ExpectedReturnTime}, {"end_time", v.EndTime},
			{"is_returned", v.IsReturned}, {"purpose", v.Purpose},
			{"condition_after", v.ConditionAfter},
		}
	case *FinancialRecordPayload:
		return []Field{
			{"id", v.ID}, {"title", v.Title}, {"amount", v.Amount},
			{"record_type", v.RecordType}, {"transaction_date", v.TransactionDate},
			{"department", v.DepartmentName}, {"category", v.CategoryName},
			{"fund_manager", v.FundManager}, {"description", v.Description},
		}
	case *FinanceCategoryPayload:
		return []Field{{"id", v.ID}, {"name", v.Name}, {"description", v.Description}}
	case *DepartmentPayload:
		return []Field{{"id", v.ID}, {"name", v.Name}, {"description", v.Description}}
	case *ProofImagePayload:
		return []Field{
			{"id", v.ID}, {"record_id", v.RecordID}, {"record_title", v.RecordTitle},
			{"images", v.Images}, {"description", v.Description},
		}
	case *PersonnelPayload:
		return []Field{
			{"id", v.ID}, {"name", v.Name}, {"student_id", v.StudentID},
			{"gender", v.Gender}, {"grade_major", v.GradeMajor},
			{"department", v.department()}, {"project_group", v.ProjectGroupName},
			{"position", v.Position}, {"start_date", v.StartDate}, {"end_date", v.EndDate},
			{"is_active", v.IsActive}, {"phone", v.Phone}, {"email", v.Email},
		}
	case *ProjectGroupPayload:
		return []Field{
			{"id", v.ID}, {"name", v.Name}, {"department", v.DepartmentName},
			{"description", v.Description},
		}
	case *EvaluationRecordPayload:
		return []Field{
			{"id", v.ID}, {"personnel_name", v.PersonnelName}, {"department", v.DepartmentName},
			{"item_description", v.ItemDescription}, {"bonus_score", v.BonusScore},
			{"deduction_score", v.DeductionScore}, {"total_score", v.TotalScore},
			{"evaluation_date", v.EvaluationDate}, {"remarks", v.Remarks},
		}
	case *MemoPayload:
		return []Field{
			{"id", v.ID}, {"title", v.Title}, {"created_by", v.CreatedBy},
			{"memo_active", v.IsActive}, {"content_preview", v.ContentPreview},
		}
	case *BatchPayload:
		return []Field{
			{"action", v.Action}, {"count", v.Count}, {"filename", v.Filename},
			{"names", v.Names},
		}
	case *UnknownPayload:
		base := newPayload(v.Of)
		if base == nil {
			return []Field{{"id", v.ID}}
		}
		fields := fieldsOf(base)
		for i := range fields {
			if fields[i].Key == "id" && v.ID != 0 {
				fields[i].Value = v.ID
				continue
			}
			fields[i].Value = unknownValue
		}
		return fields
	}
	return nil
}

var headlineKeys = map[string]bool{
	"name":           true,
	"title":          true,
	"item":           true,
	"personnel_name": true,
	"record_title":   true,
}

// Line is a rendered field.
type Line struct {
	Label string
	Value string
}

// Renderer turns events into mail messages.
type Renderer struct {
	studio string
	loc    *time.Location
	html   *template.Template
}

//go:embed templates/notification.html
var htmlTemplate string

// NewRenderer creates a renderer. Times are shown in loc.
func NewRenderer(studio string, loc *time.Location) *Renderer {
	if loc == nil {
		loc = time.UTC
	}
	return &Renderer{
		studio: studio,
		loc:    loc,
		html:   template.Must(template.New("notification").Parse(htmlTemplate)),
	}
}

// Subject returns the mail subject for kind.
func (r *Renderer) Subject(kind Kind) string {
	return fmt.Sprintf("[%s管理系统] %s数据变更通知", r.studio, kind.Label())
}

// Lines normalizes the payload: known keys only, empty values omitted, the
// headline marked on delete.
func (r *Renderer) Lines(e Event) []Line {
	var (
		out    []Line
		marked bool
	)
	for _, f := range fieldsOf(e.Payload) {
		label, ok := fieldLabels[f.Key]
		if !ok {
			continue
		}
		s, ok := r.format(f.Key, f.Value)
		if !ok {
			continue
		}
		if e.Operation == OpDelete && !marked && headlineKeys[f.Key] {
			s = deletedPrefix + s
			marked = true
		}
		out = append(out, Line{Label: label, Value: s})
	}
	return out
}

type view struct {
	Studio  string
	Verb    string
	Kind    string
	Time    string
	Actor   string
	Request string
	Lines   []Line
}

// Render builds the message for e.
func (r *Renderer) Render(e Event) (mail.Message, error) {
	v := view{
		Studio: r.studio,
		Verb:   e.Operation.Verb(),
		Kind:   e.Kind.Label(),
		Time:   unknownValue,
		Actor:  e.Actor,
		Lines:  r.Lines(e),
	}
	if !e.OccurredAt.IsZero() {
		v.Time = e.OccurredAt.In(r.loc).Format(time.DateTime)
	}
	if v.Actor == "" {
		v.Actor = systemActor
	}
	if e.Method != "" && e.Path != "" {
		v.Request = e.Method + " " + e.Path
	}

	var buf bytes.Buffer
	if err := r.html.Execute(&buf, v); err != nil {
		return mail.Message{}, fmt.Errorf("render html: %w", err)
	}

	return mail.Message{
		Subject: r.Subject(e.Kind),
		Text:    renderText(v),
		HTML:    buf.String(),
	}, nil
}

func renderText(v view) string {
	var b strings.Builder
	b.WriteString("系统数据变更通知\n\n")
	fmt.Fprintf(&b, "操作类型: %s\n", v.Verb)
	fmt.Fprintf(&b, "数据类型: %s\n", v.Kind)
	fmt.Fprintf(&b, "操作时间: %s\n", v.Time)
	fmt.Fprintf(&b, "操作用户: %s\n", v.Actor)
	if v.Request != "" {
		fmt.Fprintf(&b, "请求: %s\n", v.Request)
	}
	b.WriteString("\n变更详情:\n")
	if len(v.Lines) == 0 {
		b.WriteString("  (无)\n")
	}
	for _, l := range v.Lines {
		fmt.Fprintf(&b, "  %s: %s\n", l.Label, l.Value)
	}
	b.WriteString("\n---\n")
	fmt.Fprintf(&b, "此邮件由%s物品管理及财务管理系统自动发送\n", v.Studio)
	return b.String()
}

// format renders one value. The second result is false for values that are
// omitted from the body.
func (r *Renderer) format(key string, v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		if x == "" {
			return "", false
		}
		if labels, ok := valueLabels[key]; ok {
			if l, ok := labels[x]; ok {
				return l, true
			}
		}
		return x, true
	case int64:
		return strconv.FormatInt(x, 10), true
	case *int64:
		if x == nil {
			return "", false
		}
		return strconv.FormatInt(*x, 10), true
	case *int:
		if x == nil {
			return "", false
		}
		return strconv.Itoa(*x), true
	case *bool:
		if x == nil {
			return "", false
		}
		if *x {
			return "是", true
		}
		return "否", true
	case decimal.NullDecimal:
		if !x.Valid {
			return "", false
		}
		return x.Decimal.StringFixed(2), true
	case Time:
		if x.IsZero() {
			return "", false
		}
		if x.DateOnly {
			return x.Format(time.DateOnly), true
		}
		return x.In(r.loc).Format(time.DateTime), true
	case []string:
		if len(x) == 0 {
			return "", false
		}
		return strings.Join(x, ", "), true
	}
	return fmt.Sprint(v), true
}
