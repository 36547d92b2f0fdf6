package rest

import "net/http"

// Handlers groups every API handler mounted by Register.
type Handlers struct {
	Items             *ItemHandler
	Usages            *UsageHandler
	ItemCategories    *ReferenceHandler
	Finance           *FinanceHandler
	FinanceCategories *ReferenceHandler
	Departments       *ReferenceHandler
	Personnel         *PersonnelHandler
	Evaluation        *EvaluationHandler
	Memos             *MemoHandler
	Settings          *SettingsHandler
}

// Wrappers decorate subsets of the routes. Nil wrappers are skipped.
type Wrappers struct {
	// Settings guards the notification settings API.
	Settings func(http.Handler) http.Handler
	// Upload guards multipart uploads and imports.
	Upload func(http.Handler) http.Handler
}

type crud interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Patch(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type router struct {
	mux  *http.ServeMux
	wrap Wrappers
}

func (rt router) handle(pattern string, fn http.HandlerFunc, wrap func(http.Handler) http.Handler) {
	var h http.Handler = fn
	if wrap != nil {
		h = wrap(h)
	}
	rt.mux.Handle(pattern, h)
}

// resource mounts list/create on base and retrieve/update/delete on base{id}/.
func (rt router) resource(base string, c crud) {
	rt.handle("GET "+base+"{$}", c.List, nil)
	rt.handle("POST "+base+"{$}", c.Create, nil)
	rt.handle("GET "+base+"{id}/{$}", c.Get, nil)
	rt.handle("PUT "+base+"{id}/{$}", c.Update, nil)
	rt.handle("PATCH "+base+"{id}/{$}", c.Patch, nil)
	rt.handle("DELETE "+base+"{id}/{$}", c.Delete, nil)
}

// Register mounts the REST API on mux.
func Register(mux *http.ServeMux, h Handlers, wrap Wrappers) {
	rt := router{mux: mux, wrap: wrap}

	rt.handle("GET /api/items/available/{$}", h.Items.Available, nil)
	rt.handle("GET /api/items/in_use/{$}", h.Items.InUse, nil)
	rt.handle("GET /api/items/export/{$}", h.Items.Export, nil)
	rt.handle("POST /api/items/import/{$}", h.Items.Import, wrap.Upload)
	rt.handle("POST /api/items/{id}/borrow/{$}", h.Items.Borrow, nil)
	rt.handle("POST /api/items/{id}/return_item/{$}", h.Items.Return, nil)
	rt.resource("/api/items/", h.Items)

	rt.handle("GET /api/usages/current/{$}", h.Usages.Current, nil)
	rt.handle("GET /api/usages/by_user/{$}", h.Usages.ByUser, nil)
	rt.resource("/api/usages/", h.Usages)

	rt.resource("/api/item_categories/", h.ItemCategories)

	rt.handle("GET /api/finance/summary/{$}", h.Finance.Summary, nil)
	rt.handle("POST /api/finance/{id}/upload_images/{$}", h.Finance.UploadImages, wrap.Upload)
	rt.resource("/api/finance/", h.Finance)

	rt.handle("GET /api/proof-images/{$}", h.Finance.ListProofImages, nil)
	rt.handle("GET /api/proof-images/{id}/{$}", h.Finance.GetProofImage, nil)
	rt.handle("DELETE /api/proof-images/{id}/{$}", h.Finance.DeleteProofImage, nil)

	rt.resource("/api/finance_categories/", h.FinanceCategories)
	rt.resource("/api/departments/", h.Departments)

	rt.handle("GET /api/personnel/statistics/{$}", h.Personnel.Statistics, nil)
	rt.handle("POST /api/personnel/check_expired/{$}", h.Personnel.CheckExpired, nil)
	rt.handle("POST /api/personnel/{id}/set_active/{$}", h.Personnel.SetActive, nil)
	rt.handle("POST /api/personnel/{id}/set_inactive/{$}", h.Personnel.SetInactive, nil)
	rt.resource("/api/personnel/", h.Personnel)

	rt.handle("GET /api/project-groups/by_department/{$}", h.Personnel.GroupsByDepartment, nil)
	rt.resource("/api/project-groups/", groups{h.Personnel})

	rt.handle("GET /api/evaluation-records/export/{$}", h.Evaluation.Export, nil)
	rt.handle("POST /api/evaluation-records/import/{$}", h.Evaluation.Import, wrap.Upload)
	rt.resource("/api/evaluation-records/", h.Evaluation)

	rt.handle("POST /api/memos/{id}/upload_image/{$}", h.Memos.UploadImage, wrap.Upload)
	rt.handle("DELETE /api/memos/{id}/delete_image/{$}", h.Memos.DeleteImage, nil)
	rt.resource("/api/memos/", h.Memos)

	rt.handle("GET /api/notification-settings/{$}", h.Settings.Get, wrap.Settings)
	rt.handle("POST /api/notification-settings/{$}", h.Settings.Update, wrap.Settings)
	rt.handle("POST /api/toggle-email-status/{$}", h.Settings.Toggle, wrap.Settings)
}

// groups exposes the project-group handlers of PersonnelHandler as a crud.
type groups struct{ h *PersonnelHandler }

func (g groups) List(w http.ResponseWriter, r *http.Request)   { g.h.ListGroups(w, r) }
func (g groups) Get(w http.ResponseWriter, r *http.Request)    { g.h.GetGroup(w, r) }
func (g groups) Create(w http.ResponseWriter, r *http.Request) { g.h.CreateGroup(w, r) }
func (g groups) Update(w http.ResponseWriter, r *http.Request) { g.h.UpdateGroup(w, r) }
func (g groups) Patch(w http.ResponseWriter, r *http.Request)  { g.h.PatchGroup(w, r) }
func (g groups) Delete(w http.ResponseWriter, r *http.Request) { g.h.DeleteGroup(w, r) }
