package controllers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/yinyiqing/hotel-backoffice/modules/employees/domain/department"
	"github.com/yinyiqing/hotel-backoffice/modules/employees/presentation/mappers"
	"github.com/yinyiqing/hotel-backoffice/pkg/application"
	"github.com/yinyiqing/hotel-backoffice/pkg/composables"
	"github.com/yinyiqing/hotel-backoffice/pkg/configuration"
	"github.com/yinyiqing/hotel-backoffice/pkg/crud"
	"github.com/yinyiqing/hotel-backoffice/pkg/htmlui"
)

type DepartmentsController struct {
	app      application.Application
	renderer *htmlui.Renderer
	basePath string

	session *crud.ModalSession
	list    *crud.ListView
	form    *crud.RecordForm
	confirm *crud.DeleteConfirmation
}

func NewDepartmentsController(app application.Application) application.Controller {
	session := crud.NewModalSession()
	list := crud.NewListView(app.Backend(), app.Notifier(), crud.Config{
		Kind:          "department",
		Title:         "部门",
		IDField:       "department_id",
		ListPath:      "/api/department/list",
		GetPath:       "/api/department/%s",
		CreatePath:    "/api/department/create",
		UpdatePath:    "/api/department/update/%s",
		DeletePath:    "/api/department/delete/%s",
		Columns:       mappers.DepartmentColumns(),
		EmptyMessages: []string{"0个部门"},
	})
	return &DepartmentsController{
		app:      app,
		renderer: htmlui.NewRenderer(),
		basePath: "/departments",
		session:  session,
		list:     list,
		form:     crud.NewRecordForm(app.Backend(), app.Notifier(), session, list),
		confirm: crud.NewDeleteConfirmation(app.Backend(), app.Notifier(), session, map[string]crud.DeleteTarget{
			"department": {List: list},
		}),
	}
}

func (c *DepartmentsController) Key() string {
	return c.basePath
}

func (c *DepartmentsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Save).Methods(http.MethodPost)
	router.HandleFunc("/rows", c.Rows).Methods(http.MethodGet)
	router.HandleFunc("/form", c.NewForm).Methods(http.MethodGet)
	router.HandleFunc("/close", c.CloseModal).Methods(http.MethodGet)
	router.HandleFunc("/{id}/form", c.EditForm).Methods(http.MethodGet)
	router.HandleFunc("/{id}/confirm", c.ConfirmDelete).Methods(http.MethodGet)
	router.HandleFunc("/{id}/delete", c.Delete).Methods(http.MethodPost)
}

func (c *DepartmentsController) filtered(keyword string) []crud.Record {
	return c.list.Filter(crud.FieldContains(keyword, "department_id", "department_name"))
}

func (c *DepartmentsController) page(keyword string) htmlui.ListPage {
	records := c.filtered(keyword)
	var confirm *htmlui.ConfirmVM
	if p := c.confirm.Pending(); p != nil {
		confirm = &htmlui.ConfirmVM{
			Message:   c.confirm.Message(),
			Action:    c.basePath + "/" + p.TargetID + "/delete",
			CancelURL: c.basePath + "/close",
		}
	}
	return htmlui.ListPage{
		Base: htmlui.Base{
			AppTitle: configuration.Use().PageTitle,
			Title:    "部门管理",
			Nav:      htmlui.Navigation(c.basePath),
			Notices:  c.app.Notifier().Drain(),
		},
		Tabs: employeeTabs(c.basePath),
		Search: &htmlui.SearchVM{
			Action:      c.basePath,
			Name:        "keyword",
			Keyword:     keyword,
			Placeholder: "搜索部门编号/名称",
		},
		CreateURL:   c.basePath + "/form",
		CreateLabel: "添加部门",
		Table:       mappers.DepartmentsTable(c.list.Render(records), records),
		Form:        mappers.DepartmentFormVM(c.form.State(), nil),
		Confirm:     confirm,
	}
}

func (c *DepartmentsController) render(w http.ResponseWriter, page string, data any) {
	if err := c.renderer.Render(w, page, data); err != nil {
		c.app.Logger().WithError(err).Error("render failed")
	}
}

func (c *DepartmentsController) List(w http.ResponseWriter, r *http.Request) {
	_, _ = c.list.Fetch(r.Context())
	c.render(w, "list", c.page(composables.UseQuery(r, "keyword")))
}

func (c *DepartmentsController) Rows(w http.ResponseWriter, r *http.Request) {
	records := c.filtered(composables.UseQuery(r, "q"))
	c.render(w, "table", mappers.DepartmentsTable(c.list.Render(records), records))
}

func (c *DepartmentsController) NewForm(w http.ResponseWriter, r *http.Request) {
	if err := c.form.OpenCreate(nil); errors.Is(err, crud.ErrModalBusy) {
		c.app.Notifier().Error(modalBusyMessage)
	}
	http.Redirect(w, r, c.basePath, http.StatusSeeOther)
}

// EditForm opens edit from the cached row; the backend exposes no
// single-department endpoint.
func (c *DepartmentsController) EditForm(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	rec, ok := c.list.Find(id)
	if !ok {
		_, _ = c.list.Fetch(r.Context())
		rec, ok = c.list.Find(id)
	}
	if !ok {
		c.app.Notifier().Error("部门不存在")
		http.Redirect(w, r, c.basePath, http.StatusSeeOther)
		return
	}
	if err := c.form.OpenEditRecord(id, rec); errors.Is(err, crud.ErrModalBusy) {
		c.app.Notifier().Error(modalBusyMessage)
	}
	http.Redirect(w, r, c.basePath, http.StatusSeeOther)
}

func (c *DepartmentsController) Save(w http.ResponseWriter, r *http.Request) {
	dto, err := composables.UseForm(&department.UpsertDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if fieldErrors, ok := dto.Ok(); !ok {
		state := c.form.State()
		if state == nil {
			http.Redirect(w, r, c.basePath, http.StatusSeeOther)
			return
		}
		for k, v := range dto.Values() {
			state.Fields[k] = v
		}
		page := c.page("")
		page.Form = mappers.DepartmentFormVM(state, fieldErrors)
		c.render(w, "list", page)
		return
	}
	_ = c.form.Submit(r.Context(), dto.Values())
	http.Redirect(w, r, c.basePath, http.StatusSeeOther)
}

func (c *DepartmentsController) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	label := composables.UseQuery(r, "label")
	if label == "" {
		if rec, ok := c.list.Find(id); ok {
			label = rec.Str("department_name")
		}
	}
	if err := c.confirm.Request(id, "department", label); errors.Is(err, crud.ErrModalBusy) {
		c.app.Notifier().Error(modalBusyMessage)
	}
	http.Redirect(w, r, c.basePath, http.StatusSeeOther)
}

func (c *DepartmentsController) Delete(w http.ResponseWriter, r *http.Request) {
	_ = c.confirm.Confirm(r.Context())
	http.Redirect(w, r, c.basePath, http.StatusSeeOther)
}

func (c *DepartmentsController) CloseModal(w http.ResponseWriter, r *http.Request) {
	if c.form.State() != nil {
		c.form.Close()
	}
	c.confirm.Cancel()
	http.Redirect(w, r, c.basePath, http.StatusSeeOther)
}
