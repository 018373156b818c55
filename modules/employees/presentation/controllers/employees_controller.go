package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/yinyiqing/hotel-backoffice/modules/employees/domain/employee"
	"github.com/yinyiqing/hotel-backoffice/modules/employees/presentation/mappers"
	"github.com/yinyiqing/hotel-backoffice/modules/employees/presentation/viewmodels"
	"github.com/yinyiqing/hotel-backoffice/pkg/application"
	"github.com/yinyiqing/hotel-backoffice/pkg/backend"
	"github.com/yinyiqing/hotel-backoffice/pkg/composables"
	"github.com/yinyiqing/hotel-backoffice/pkg/configuration"
	"github.com/yinyiqing/hotel-backoffice/pkg/crud"
	"github.com/yinyiqing/hotel-backoffice/pkg/htmlui"
)

const modalBusyMessage = "请先关闭当前窗口"

func employeeTabs(active string) []htmlui.Tab {
	tabs := []htmlui.Tab{
		{Label: "员工列表", URL: "/employees"},
		{Label: "部门管理", URL: "/departments"},
		{Label: "员工统计", URL: "/employees/statistics"},
	}
	for i := range tabs {
		tabs[i].Active = tabs[i].URL == active
	}
	return tabs
}

type EmployeesController struct {
	app      application.Application
	renderer *htmlui.Renderer
	basePath string

	session *crud.ModalSession
	list    *crud.ListView
	form    *crud.RecordForm
	confirm *crud.DeleteConfirmation
}

func NewEmployeesController(app application.Application) application.Controller {
	session := crud.NewModalSession()
	list := crud.NewListView(app.Backend(), app.Notifier(), crud.Config{
		Kind:          "employee",
		Title:         "员工",
		IDField:       "employee_id",
		ListPath:      "/api/employee/list",
		GetPath:       "/api/employee/%s",
		CreatePath:    "/api/employee/create",
		UpdatePath:    "/api/employee/update/%s",
		DeletePath:    "/api/employee/delete/%s",
		Columns:       mappers.EmployeeColumns(),
		EmptyMessages: []string{"0名员工"},
	})
	return &EmployeesController{
		app:      app,
		renderer: htmlui.NewRenderer(),
		basePath: "/employees",
		session:  session,
		list:     list,
		form:     crud.NewRecordForm(app.Backend(), app.Notifier(), session, list),
		confirm: crud.NewDeleteConfirmation(app.Backend(), app.Notifier(), session, map[string]crud.DeleteTarget{
			"employee": {List: list},
		}),
	}
}

func (c *EmployeesController) Key() string {
	return c.basePath
}

func (c *EmployeesController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Save).Methods(http.MethodPost)
	router.HandleFunc("/rows", c.Rows).Methods(http.MethodGet)
	router.HandleFunc("/statistics", c.Statistics).Methods(http.MethodGet)
	router.HandleFunc("/form", c.NewForm).Methods(http.MethodGet)
	router.HandleFunc("/close", c.CloseModal).Methods(http.MethodGet)
	router.HandleFunc("/{id}/form", c.EditForm).Methods(http.MethodGet)
	router.HandleFunc("/{id}/confirm", c.ConfirmDelete).Methods(http.MethodGet)
	router.HandleFunc("/{id}/delete", c.Delete).Methods(http.MethodPost)
}

func (c *EmployeesController) base(title string) htmlui.Base {
	return htmlui.Base{
		AppTitle: configuration.Use().PageTitle,
		Title:    title,
		Nav:      htmlui.Navigation(c.basePath),
		Notices:  c.app.Notifier().Drain(),
	}
}

func (c *EmployeesController) render(w http.ResponseWriter, page string, data any) {
	if err := c.renderer.Render(w, page, data); err != nil {
		c.app.Logger().WithError(err).Error("render failed")
	}
}

func (c *EmployeesController) filtered(keyword string) []crud.Record {
	return c.list.Filter(crud.FieldContains(keyword, "employee_id", "employee_name", "phone"))
}

func (c *EmployeesController) departmentOptions(ctx context.Context) []crud.Record {
	var departments []crud.Record
	if err := c.app.Backend().Get(ctx, "/api/department/list", &departments); err != nil {
		c.app.Logger().WithError(err).Warn("department options unavailable")
	}
	return departments
}

func (c *EmployeesController) confirmVM() *htmlui.ConfirmVM {
	p := c.confirm.Pending()
	if p == nil || p.TargetKind != "employee" {
		return nil
	}
	return &htmlui.ConfirmVM{
		Message:   c.confirm.Message(),
		Action:    c.basePath + "/" + p.TargetID + "/delete",
		CancelURL: c.basePath + "/close",
	}
}

func (c *EmployeesController) page(ctx context.Context, keyword string) htmlui.ListPage {
	records := c.filtered(keyword)
	var form *htmlui.FormVM
	if state := c.form.State(); state != nil {
		form = mappers.EmployeeFormVM(state, nil, c.departmentOptions(ctx))
	}
	return htmlui.ListPage{
		Base: c.base("员工管理"),
		Tabs: employeeTabs(c.basePath),
		Search: &htmlui.SearchVM{
			Action:      c.basePath,
			Name:        "keyword",
			Keyword:     keyword,
			Placeholder: "搜索工号/姓名/电话",
		},
		CreateURL:   c.basePath + "/form",
		CreateLabel: "添加员工",
		Table:       mappers.EmployeesTable(c.list.Render(records), records),
		Form:        form,
		Confirm:     c.confirmVM(),
	}
}

func (c *EmployeesController) List(w http.ResponseWriter, r *http.Request) {
	_, _ = c.list.Fetch(r.Context())
	keyword := composables.UseQuery(r, "keyword")
	c.render(w, "list", c.page(r.Context(), keyword))
}

// Rows serves the filtered table partial. Filtering runs over the cached
// list only; no backend call happens here.
func (c *EmployeesController) Rows(w http.ResponseWriter, r *http.Request) {
	records := c.filtered(composables.UseQuery(r, "q"))
	c.render(w, "table", mappers.EmployeesTable(c.list.Render(records), records))
}

func (c *EmployeesController) Statistics(w http.ResponseWriter, r *http.Request) {
	var stats viewmodels.EmployeeStatistics
	if err := c.app.Backend().Get(r.Context(), "/api/employee/statistics", &stats); err != nil {
		if msg, ok := backend.AppMessage(err); ok {
			c.app.Notifier().Error(msg)
		} else {
			c.app.Notifier().Error("获取员工统计失败")
		}
	}
	c.render(w, "report", htmlui.ReportPage{
		Base: c.base("员工统计"),
		Tabs: employeeTabs(c.basePath + "/statistics"),
		Sections: []htmlui.ReportSection{
			{Title: "员工概况", Cards: mappers.StatisticsCards(&stats)},
			{Title: "各部门在职人数", Cards: mappers.DepartmentBars(&stats)},
		},
	})
}

func (c *EmployeesController) NewForm(w http.ResponseWriter, r *http.Request) {
	err := c.form.OpenCreate(map[string]string{
		"hire_date": time.Now().Format("2006-01-02"),
		"status":    "在职",
	})
	if errors.Is(err, crud.ErrModalBusy) {
		c.app.Notifier().Error(modalBusyMessage)
	}
	http.Redirect(w, r, c.basePath, http.StatusSeeOther)
}

func (c *EmployeesController) EditForm(w http.ResponseWriter, r *http.Request) {
	err := c.form.OpenEdit(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, crud.ErrModalBusy) {
		c.app.Notifier().Error(modalBusyMessage)
	}
	http.Redirect(w, r, c.basePath, http.StatusSeeOther)
}

func (c *EmployeesController) Save(w http.ResponseWriter, r *http.Request) {
	dto, err := composables.UseForm(&employee.UpsertDTO{}, r)
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
		page := c.page(r.Context(), "")
		page.Form = mappers.EmployeeFormVM(state, fieldErrors, c.departmentOptions(r.Context()))
		c.render(w, "list", page)
		return
	}
	_ = c.form.Submit(r.Context(), dto.Values())
	http.Redirect(w, r, c.basePath, http.StatusSeeOther)
}

func (c *EmployeesController) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	label := composables.UseQuery(r, "label")
	if label == "" {
		if rec, ok := c.list.Find(id); ok {
			label = rec.Str("employee_name")
		}
	}
	if err := c.confirm.Request(id, "employee", label); errors.Is(err, crud.ErrModalBusy) {
		c.app.Notifier().Error(modalBusyMessage)
	}
	http.Redirect(w, r, c.basePath, http.StatusSeeOther)
}

func (c *EmployeesController) Delete(w http.ResponseWriter, r *http.Request) {
	_ = c.confirm.Confirm(r.Context())
	http.Redirect(w, r, c.basePath, http.StatusSeeOther)
}

func (c *EmployeesController) CloseModal(w http.ResponseWriter, r *http.Request) {
	if c.form.State() != nil {
		c.form.Close()
	}
	c.confirm.Cancel()
	http.Redirect(w, r, c.basePath, http.StatusSeeOther)
}
