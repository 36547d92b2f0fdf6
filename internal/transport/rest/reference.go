package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/studio-backend/internal/domain"
	"github.com/heartmarshall/studio-backend/internal/service/finance"
	"github.com/heartmarshall/studio-backend/internal/service/item"
)

// named is the shared shape of item categories, finance categories and
// departments.
type named struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
}

type namedResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

type namedRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// namedStore adapts one reference resource of a service.
type namedStore struct {
	list   func(ctx context.Context) ([]named, error)
	get    func(ctx context.Context, id int64) (named, error)
	create func(ctx context.Context, req namedRequest) (named, error)
	update func(ctx context.Context, id int64, req namedRequest) (named, error)
	delete func(ctx context.Context, id int64) error
}

// ReferenceHandler serves a name-and-description resource.
type ReferenceHandler struct {
	store namedStore
	log   *slog.Logger
}

func namedResponseOf(n named) namedResponse {
	resp := namedResponse{ID: n.ID, Name: n.Name, Description: n.Description}
	if !n.CreatedAt.IsZero() {
		t := n.CreatedAt
		resp.CreatedAt = &t
	}
	return resp
}

func (h *ReferenceHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.store.list(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]namedResponse, 0, len(all))
	for _, n := range all {
		out = append(out, namedResponseOf(n))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ReferenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	n, err := h.store.get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, namedResponseOf(n))
}

func (h *ReferenceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req namedRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	n, err := h.store.create(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, namedResponseOf(n))
}

func (h *ReferenceHandler) Update(w http.ResponseWriter, r *http.Request) { h.update(w, r, false) }

func (h *ReferenceHandler) Patch(w http.ResponseWriter, r *http.Request) { h.update(w, r, true) }

func (h *ReferenceHandler) update(w http.ResponseWriter, r *http.Request, partial bool) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req namedRequest
	if partial {
		cur, err := h.store.get(r.Context(), id)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		req = namedRequest{Name: cur.Name, Description: cur.Description}
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	n, err := h.store.update(r.Context(), id, req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, namedResponseOf(n))
}

func (h *ReferenceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.store.delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// adapt lifts a typed loader into the named shape.
func adapt[T any](fn func(ctx context.Context, id int64) (*T, error), conv func(*T) named) func(ctx context.Context, id int64) (named, error) {
	return func(ctx context.Context, id int64) (named, error) {
		v, err := fn(ctx, id)
		if err != nil {
			return named{}, err
		}
		return conv(v), nil
	}
}

func adaptList[T any](fn func(ctx context.Context) ([]T, error), conv func(*T) named) func(ctx context.Context) ([]named, error) {
	return func(ctx context.Context) ([]named, error) {
		vs, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]named, 0, len(vs))
		for i := range vs {
			out = append(out, conv(&vs[i]))
		}
		return out, nil
	}
}

type itemCategoryService interface {
	ListCategories(ctx context.Context) ([]domain.ItemCategory, error)
	GetCategory(ctx context.Context, id int64) (*domain.ItemCategory, error)
	CreateCategory(ctx context.Context, in item.CategoryInput) (*domain.ItemCategory, error)
	UpdateCategory(ctx context.Context, id int64, in item.CategoryInput) (*domain.ItemCategory, error)
	DeleteCategory(ctx context.Context, id int64) error
}

func itemCategoryNamed(c *domain.ItemCategory) named {
	return named{ID: c.ID, Name: c.Name, Description: c.Description}
}

// NewItemCategoryHandler serves /api/item_categories/.
func NewItemCategoryHandler(svc itemCategoryService, log *slog.Logger) *ReferenceHandler {
	in := func(req namedRequest) item.CategoryInput {
		return item.CategoryInput{Name: req.Name, Description: req.Description}
	}
	return &ReferenceHandler{log: log, store: namedStore{
		list: adaptList(svc.ListCategories, itemCategoryNamed),
		get:  adapt(svc.GetCategory, itemCategoryNamed),
		create: func(ctx context.Context, req namedRequest) (named, error) {
			c, err := svc.CreateCategory(ctx, in(req))
			if err != nil {
				return named{}, err
			}
			return itemCategoryNamed(c), nil
		},
		update: func(ctx context.Context, id int64, req namedRequest) (named, error) {
			c, err := svc.UpdateCategory(ctx, id, in(req))
			if err != nil {
				return named{}, err
			}
			return itemCategoryNamed(c), nil
		},
		delete: svc.DeleteCategory,
	}}
}

type financeCategoryService interface {
	ListCategories(ctx context.Context) ([]domain.FinanceCategory, error)
	GetCategory(ctx context.Context, id int64) (*domain.FinanceCategory, error)
	CreateCategory(ctx context.Context, in finance.NamedInput) (*domain.FinanceCategory, error)
	UpdateCategory(ctx context.Context, id int64, in finance.NamedInput) (*domain.FinanceCategory, error)
	DeleteCategory(ctx context.Context, id int64) error
}

func financeCategoryNamed(c *domain.FinanceCategory) named {
	return named{ID: c.ID, Name: c.Name, Description: c.Description}
}

func financeInput(req namedRequest) finance.NamedInput {
	return finance.NamedInput{Name: req.Name, Description: req.Description}
}

// NewFinanceCategoryHandler serves /api/finance_categories/.
func NewFinanceCategoryHandler(svc financeCategoryService, log *slog.Logger) *ReferenceHandler {
	return &ReferenceHandler{log: log, store: namedStore{
		list: adaptList(svc.ListCategories, financeCategoryNamed),
		get:  adapt(svc.GetCategory, financeCategoryNamed),
		create: func(ctx context.Context, req namedRequest) (named, error) {
			c, err := svc.CreateCategory(ctx, financeInput(req))
			if err != nil {
				return named{}, err
			}
			return financeCategoryNamed(c), nil
		},
		update: func(ctx context.Context, id int64, req namedRequest) (named, error) {
			c, err := svc.UpdateCategory(ctx, id, financeInput(req))
			if err != nil {
				return named{}, err
			}
			return financeCategoryNamed(c), nil
		},
		delete: svc.DeleteCategory,
	}}
}

type departmentService interface {
	ListDepartments(ctx context.Context) ([]domain.Department, error)
	GetDepartment(ctx context.Context, id int64) (*domain.Department, error)
	CreateDepartment(ctx context.Context, in finance.NamedInput) (*domain.Department, error)
	UpdateDepartment(ctx context.Context, id int64, in finance.NamedInput) (*domain.Department, error)
	DeleteDepartment(ctx context.Context, id int64) error
}

func departmentNamed(d *domain.Department) named {
	return named{ID: d.ID, Name: d.Name, Description: d.Description, CreatedAt: d.CreatedAt}
}

// NewDepartmentHandler serves /api/departments/.
func NewDepartmentHandler(svc departmentService, log *slog.Logger) *ReferenceHandler {
	return &ReferenceHandler{log: log, store: namedStore{
		list: adaptList(svc.ListDepartments, departmentNamed),
		get:  adapt(svc.GetDepartment, departmentNamed),
		create: func(ctx context.Context, req namedRequest) (named, error) {
			d, err := svc.CreateDepartment(ctx, financeInput(req))
			if err != nil {
				return named{}, err
			}
			return departmentNamed(d), nil
		},
		update: func(ctx context.Context, id int64, req namedRequest) (named, error) {
			d, err := svc.UpdateDepartment(ctx, id, financeInput(req))
			if err != nil {
				return named{}, err
			}
			return departmentNamed(d), nil
		},
		delete: svc.DeleteDepartment,
	}}
}
