package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/studio-backend/internal/domain"
	"github.com/heartmarshall/studio-backend/internal/service/maintenance"
	"github.com/heartmarshall/studio-backend/internal/service/personnel"
)

type personnelService interface {
	List(ctx context.Context, f domain.PersonnelFilter) ([]domain.Personnel, error)
	Get(ctx context.Context, id int64) (*domain.Personnel, error)
	Create(ctx context.Context, in personnel.MemberInput) (*domain.Personnel, error)
	Update(ctx context.Context, id int64, in personnel.MemberInput) (*domain.Personnel, error)
	Delete(ctx context.Context, id int64) error
	SetActive(ctx context.Context, id int64) (*domain.Personnel, error)
	SetInactive(ctx context.Context, id int64) (*domain.Personnel, error)
	Statistics(ctx context.Context) (domain.PersonnelStatistics, error)
	CheckExpired(ctx context.Context) (maintenance.CheckResult, error)
	ListGroups(ctx context.Context, departmentID *int64) ([]domain.ProjectGroup, error)
	GetGroup(ctx context.Context, id int64) (*domain.ProjectGroup, error)
	CreateGroup(ctx context.Context, in personnel.GroupInput) (*domain.ProjectGroup, error)
	UpdateGroup(ctx context.Context, id int64, in personnel.GroupInput) (*domain.ProjectGroup, error)
	DeleteGroup(ctx context.Context, id int64) error
}

// PersonnelHandler serves /api/personnel/ and /api/project-groups/.
type PersonnelHandler struct {
	svc personnelService
	log *slog.Logger
	loc *time.Location
}

func NewPersonnelHandler(svc personnelService, log *slog.Logger, loc *time.Location) *PersonnelHandler {
	return &PersonnelHandler{svc: svc, log: log, loc: loc}
}

type personnelResponse struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	StudentID        string    `json:"student_id"`
	Gender           string    `json:"gender"`
	GradeMajor       string    `json:"grade_major"`
	Department       *int64    `json:"department"`
	DepartmentName   string    `json:"department_name"`
	ProjectGroup     *int64    `json:"project_group"`
	ProjectGroupName string    `json:"project_group_name"`
	Position         string    `json:"position"`
	StartDate        Date      `json:"start_date"`
	EndDate          *Date     `json:"end_date"`
	IsActive         bool      `json:"is_active"`
	Phone            string    `json:"phone"`
	QQ               string    `json:"qq"`
	Email            string    `json:"email"`
	Description      string    `json:"description"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func personnelResponseOf(p *domain.Personnel) personnelResponse {
	return personnelResponse{
		ID:               p.ID,
		Name:             p.Name,
		StudentID:        p.StudentID,
		Gender:           string(p.Gender),
		GradeMajor:       p.GradeMajor,
		Department:       p.DepartmentID,
		DepartmentName:   p.DepartmentName,
		ProjectGroup:     p.ProjectGroupID,
		ProjectGroupName: p.ProjectGroupName,
		Position:         p.Position,
		StartDate:        Date{Time: p.StartDate},
		EndDate:          dateOf(p.EndDate),
		IsActive:         p.IsActive,
		Phone:            p.Phone,
		QQ:               p.QQ,
		Email:            p.Email,
		Description:      p.Description,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

type personnelRequest struct {
	Name         string `json:"name"`
	StudentID    string `json:"student_id"`
	Gender       string `json:"gender"`
	GradeMajor   string `json:"grade_major"`
	Department   *int64 `json:"department"`
	ProjectGroup *int64 `json:"project_group"`
	Position     string `json:"position"`
	StartDate    *Date  `json:"start_date"`
	EndDate      *Date  `json:"end_date"`
	IsActive     *bool  `json:"is_active"`
	Phone        string `json:"phone"`
	QQ           string `json:"qq"`
	Email        string `json:"email"`
	Description  string `json:"description"`
}

func personnelRequestOf(p *domain.Personnel) personnelRequest {
	active := p.IsActive
	return personnelRequest{
		Name:         p.Name,
		StudentID:    p.StudentID,
		Gender:       string(p.Gender),
		GradeMajor:   p.GradeMajor,
		Department:   p.DepartmentID,
		ProjectGroup: p.ProjectGroupID,
		Position:     p.Position,
		StartDate:    &Date{Time: p.StartDate},
		EndDate:      dateOf(p.EndDate),
		IsActive:     &active,
		Phone:        p.Phone,
		QQ:           p.QQ,
		Email:        p.Email,
		Description:  p.Description,
	}
}

func (req personnelRequest) input() personnel.MemberInput {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return personnel.MemberInput{
		Name:           req.Name,
		StudentID:      req.StudentID,
		Gender:         domain.Gender(req.Gender),
		GradeMajor:     req.GradeMajor,
		DepartmentID:   req.Department,
		ProjectGroupID: req.ProjectGroup,
		Position:       req.Position,
		StartDate:      req.StartDate.value(),
		EndDate:        req.EndDate.ptr(),
		IsActive:       active,
		Phone:          req.Phone,
		QQ:             req.QQ,
		Email:          req.Email,
		Description:    req.Description,
	}
}

func (h *PersonnelHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r, h.loc)
	f := domain.PersonnelFilter{
		DepartmentID:   q.int64("department"),
		ProjectGroupID: q.int64("project_group"),
		Position:       q.str("position"),
		IsActive:       q.bool("is_active"),
		StartFrom:      q.date("start_date_from", false),
		StartTo:        q.date("start_date_to", true),
		EndFrom:        q.date("end_date_from", false),
		EndTo:          q.date("end_date_to", true),
		Search:         q.str("search"),
	}
	if g := q.str("gender"); g != "" {
		gender := domain.Gender(g)
		if !gender.IsValid() {
			q.fail("gender", "性别应为 male 或 female")
		}
		f.Gender = &gender
	}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	ps, err := h.svc.List(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]personnelResponse, 0, len(ps))
	for i := range ps {
		out = append(out, personnelResponseOf(&ps[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *PersonnelHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, personnelResponseOf(p))
}

func (h *PersonnelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req personnelRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	p, err := h.svc.Create(r.Context(), req.input())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, personnelResponseOf(p))
}

func (h *PersonnelHandler) Update(w http.ResponseWriter, r *http.Request) { h.update(w, r, false) }

func (h *PersonnelHandler) Patch(w http.ResponseWriter, r *http.Request) { h.update(w, r, true) }

func (h *PersonnelHandler) update(w http.ResponseWriter, r *http.Request, partial bool) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req personnelRequest
	if partial {
		cur, err := h.svc.Get(r.Context(), id)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		req = personnelRequestOf(cur)
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	p, err := h.svc.Update(r.Context(), id, req.input())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, personnelResponseOf(p))
}

func (h *PersonnelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type statusChangeResponse struct {
	Message string            `json:"message"`
	Data    personnelResponse `json:"data"`
}

func (h *PersonnelHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.svc.SetActive, "已设置为在职状态")
}

func (h *PersonnelHandler) SetInactive(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.svc.SetInactive, "已设置为已卸任状态")
}

func (h *PersonnelHandler) setStatus(
	w http.ResponseWriter,
	r *http.Request,
	change func(ctx context.Context, id int64) (*domain.Personnel, error),
	suffix string,
) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, err := change(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statusChangeResponse{
		Message: p.Name + " " + suffix,
		Data:    personnelResponseOf(p),
	})
}

type countBucket struct {
	Name     string `json:"name"`
	Total    int    `json:"total"`
	Active   int    `json:"active"`
	Inactive int    `json:"inactive"`
}

type statisticsResponse struct {
	Overview struct {
		Total    int `json:"total"`
		Active   int `json:"active"`
		Inactive int `json:"inactive"`
	} `json:"overview"`
	ByDepartment []countBucket `json:"by_department"`
	ByPosition   []countBucket `json:"by_position"`
}

func bucketsOf(gs []domain.GroupCount) []countBucket {
	out := make([]countBucket, 0, len(gs))
	for _, g := range gs {
		out = append(out, countBucket{Name: g.Name, Total: g.Total, Active: g.Active, Inactive: g.Total - g.Active})
	}
	return out
}

func (h *PersonnelHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Statistics(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var resp statisticsResponse
	resp.Overview.Total = st.Total
	resp.Overview.Active = st.Active
	resp.Overview.Inactive = st.Inactive
	resp.ByDepartment = bucketsOf(st.ByDepartment)
	resp.ByPosition = bucketsOf(st.ByPosition)
	writeJSON(w, http.StatusOK, resp)
}

type checkExpiredResponse struct {
	Message          string   `json:"message"`
	UpdatedPersonnel []string `json:"updated_personnel"`
	Count            int      `json:"count"`
}

func (h *PersonnelHandler) CheckExpired(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.CheckExpired(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	msg := "没有需要更新的人员"
	if res.Count() > 0 {
		msg = fmt.Sprintf("成功将 %d 名人员设置为已卸任状态", res.Count())
	}
	names := res.Names
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, checkExpiredResponse{Message: msg, UpdatedPersonnel: names, Count: res.Count()})
}

type groupResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Department     *int64    `json:"department"`
	DepartmentName string    `json:"department_name"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
}

func groupResponseOf(g *domain.ProjectGroup) groupResponse {
	return groupResponse{
		ID:             g.ID,
		Name:           g.Name,
		Department:     g.DepartmentID,
		DepartmentName: g.DepartmentName,
		Description:    g.Description,
		CreatedAt:      g.CreatedAt,
	}
}

func groupsResponse(gs []domain.ProjectGroup) []groupResponse {
	out := make([]groupResponse, 0, len(gs))
	for i := range gs {
		out = append(out, groupResponseOf(&gs[i]))
	}
	return out
}

type groupRequest struct {
	Name        string `json:"name"`
	Department  *int64 `json:"department"`
	Description string `json:"description"`
}

func (req groupRequest) input() personnel.GroupInput {
	return personnel.GroupInput{Name: req.Name, DepartmentID: req.Department, Description: req.Description}
}

func (h *PersonnelHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r, h.loc)
	dept := q.int64("department")
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	gs, err := h.svc.ListGroups(r.Context(), dept)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, groupsResponse(gs))
}

// GroupsByDepartment lists the groups of ?department_id=. Without the
// parameter the list is empty.
func (h *PersonnelHandler) GroupsByDepartment(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r, h.loc)
	dept := q.int64("department_id")
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if dept == nil {
		writeJSON(w, http.StatusOK, []groupResponse{})
		return
	}
	gs, err := h.svc.ListGroups(r.Context(), dept)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, groupsResponse(gs))
}

func (h *PersonnelHandler) GetGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	g, err := h.svc.GetGroup(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, groupResponseOf(g))
}

func (h *PersonnelHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req groupRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	g, err := h.svc.CreateGroup(r.Context(), req.input())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, groupResponseOf(g))
}

func (h *PersonnelHandler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	h.updateGroup(w, r, false)
}

func (h *PersonnelHandler) PatchGroup(w http.ResponseWriter, r *http.Request) {
	h.updateGroup(w, r, true)
}

func (h *PersonnelHandler) updateGroup(w http.ResponseWriter, r *http.Request, partial bool) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req groupRequest
	if partial {
		cur, err := h.svc.GetGroup(r.Context(), id)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		req = groupRequest{Name: cur.Name, Department: cur.DepartmentID, Description: cur.Description}
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	g, err := h.svc.UpdateGroup(r.Context(), id, req.input())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, groupResponseOf(g))
}

func (h *PersonnelHandler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteGroup(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
