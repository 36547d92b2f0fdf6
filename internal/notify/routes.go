package notify

import (
	"net/http"
	"strconv"
	"strings"
)

// Kind identifies the resource an event is about.
type Kind string

const (
	KindItem             Kind = "item"
	KindItemCategory     Kind = "item_category"
	KindItemUsage        Kind = "item_usage"
	KindFinancialRecord  Kind = "financial_record"
	KindFinanceCategory  Kind = "finance_category"
	KindDepartment       Kind = "department"
	KindProofImage       Kind = "proof_image"
	KindPersonnel        Kind = "personnel"
	KindProjectGroup     Kind = "project_group"
	KindEvaluationRecord Kind = "evaluation_record"
	KindMemo             Kind = "memo"
)

var kindLabels = map[Kind]string{
	KindItem:             "物品",
	KindItemCategory:     "物品类别",
	KindItemUsage:        "物品使用记录",
	KindFinancialRecord:  "财务记录",
	KindFinanceCategory:  "财务类别",
	KindDepartment:       "部门",
	KindProofImage:       "凭证图片",
	KindPersonnel:        "人员",
	KindProjectGroup:     "项目组",
	KindEvaluationRecord: "考核记录",
	KindMemo:             "备忘录",
}

// Label is the display name used in subjects and bodies.
func (k Kind) Label() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return string(k)
}

// Operation is the kind of mutation an event describes.
type Operation string

const (
	OpCreate Operation = "CREATE"
	OpUpdate Operation = "UPDATE"
	OpDelete Operation = "DELETE"
)

// Verb is the localized operation name.
func (o Operation) Verb() string {
	switch o {
	case OpCreate:
		return "创建"
	case OpUpdate:
		return "更新"
	case OpDelete:
		return "删除"
	}
	return string(o)
}

// OperationFromMethod maps a mutating HTTP method to an operation.
func OperationFromMethod(method string) (Operation, bool) {
	switch method {
	case http.MethodPost:
		return OpCreate, true
	case http.MethodPut, http.MethodPatch:
		return OpUpdate, true
	case http.MethodDelete:
		return OpDelete, true
	}
	return "", false
}

// Policy decides who emits events for a route.
type Policy int

const (
	// PolicyAuto routes are dispatched by the HTTP interceptor.
	PolicyAuto Policy = iota + 1
	// PolicySelf routes emit their own events from the owning service.
	PolicySelf
)

func (p Policy) String() string {
	switch p {
	case PolicyAuto:
		return "auto"
	case PolicySelf:
		return "self"
	}
	return "unknown"
}

// Route is one entry of the notification policy table.
type Route struct {
	Prefix string
	// Action, when set, matches the last non-empty path segment and beats the
	// generic entry for the same prefix.
	Action string
	Kind   Kind
	Policy Policy
}

// Routes is the only place that decides whether a path notifies and who sends.
var Routes = []Route{
	{Prefix: "/api/items/", Kind: KindItem, Policy: PolicyAuto},
	{Prefix: "/api/item_categories/", Kind: KindItemCategory, Policy: PolicyAuto},
	{Prefix: "/api/usages/", Kind: KindItemUsage, Policy: PolicyAuto},
	{Prefix: "/api/finance/", Kind: KindFinancialRecord, Policy: PolicyAuto},
	{Prefix: "/api/finance/", Action: "upload_images", Kind: KindProofImage, Policy: PolicySelf},
	{Prefix: "/api/finance_categories/", Kind: KindFinanceCategory, Policy: PolicyAuto},
	{Prefix: "/api/departments/", Kind: KindDepartment, Policy: PolicyAuto},
	{Prefix: "/api/proof-images/", Kind: KindProofImage, Policy: PolicySelf},
	{Prefix: "/api/personnel/", Kind: KindPersonnel, Policy: PolicyAuto},
	{Prefix: "/api/personnel/", Action: "check_expired", Kind: KindPersonnel, Policy: PolicySelf},
	{Prefix: "/api/project-groups/", Kind: KindProjectGroup, Policy: PolicyAuto},
	{Prefix: "/api/evaluation-records/", Kind: KindEvaluationRecord, Policy: PolicySelf},
	{Prefix: "/api/memos/", Kind: KindMemo, Policy: PolicyAuto},
}

// Resolve finds the policy entry for path. The longest matching prefix wins;
// among entries with that prefix an action match beats the generic entry.
func Resolve(path string) (Route, bool) {
	return resolveIn(Routes, path)
}

func resolveIn(routes []Route, path string) (Route, bool) {
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	action := lastSegment(path)

	var (
		best  Route
		score = -1
	)
	for _, rt := range routes {
		if !strings.HasPrefix(path, rt.Prefix) {
			continue
		}
		s := len(rt.Prefix) * 2
		if rt.Action != "" {
			if rt.Action != action {
				continue
			}
			s++
		}
		if s > score {
			best, score = rt, s
		}
	}
	return best, score >= 0
}

// ActionOf returns the last non-empty segment of path when it is not a numeric
// id and lies past the route prefix. It names the domain action of a request
// such as "borrow" or "import".
func (rt Route) ActionOf(path string) string {
	rest := strings.Trim(strings.TrimPrefix(path, rt.Prefix), "/")
	if rest == "" {
		return ""
	}
	seg := lastSegment(rest)
	if isDigits(seg) {
		return ""
	}
	return seg
}

// ParseID returns the first all-digit segment of path after the route prefix.
func (rt Route) ParseID(path string) (int64, bool) {
	rest := strings.TrimPrefix(path, rt.Prefix)
	for _, seg := range strings.Split(rest, "/") {
		if !isDigits(seg) {
			continue
		}
		id, err := strconv.ParseInt(seg, 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	}
	return 0, false
}

func lastSegment(path string) string {
	path = strings.TrimRight(path, "/")
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
