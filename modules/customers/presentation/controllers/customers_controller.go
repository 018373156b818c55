package controllers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/yinyiqing/hotel-backoffice/modules/customers/domain/customer"
	"github.com/yinyiqing/hotel-backoffice/modules/customers/presentation/mappers"
	"github.com/yinyiqing/hotel-backoffice/pkg/application"
	"github.com/yinyiqing/hotel-backoffice/pkg/backend"
	"github.com/yinyiqing/hotel-backoffice/pkg/composables"
	"github.com/yinyiqing/hotel-backoffice/pkg/configuration"
	"github.com/yinyiqing/hotel-backoffice/pkg/crud"
	"github.com/yinyiqing/hotel-backoffice/pkg/htmlui"
)

const modalBusyMessage = "请先关闭当前窗口"

type CustomersController struct {
	app      application.Application
	renderer *htmlui.Renderer
	basePath string

	session *crud.ModalSession
	list    *crud.ListView
	form    *crud.RecordForm
	confirm *crud.DeleteConfirmation
}

func NewCustomersController(app application.Application) application.Controller {
	session := crud.NewModalSession()
	list := crud.NewListView(app.Backend(), app.Notifier(), crud.Config{
		Kind:          "customer",
		Title:         "客户",
		IDField:       "id",
		ListPath:      "/api/customer/list",
		GetPath:       "/api/customer/%s",
		CreatePath:    "/api/customer/create",
		UpdatePath:    "/api/customer/update/%s",
		DeletePath:    "/api/customer/delete/%s",
		Columns:       mappers.CustomerColumns(),
		EmptyMessages: []string{"未找到", "0名客户"},
	})
	return &CustomersController{
		app:      app,
		renderer: htmlui.NewRenderer(),
		basePath: "/customers",
		session:  session,
		list:     list,
		form:     crud.NewRecordForm(app.Backend(), app.Notifier(), session, list),
		confirm: crud.NewDeleteConfirmation(app.Backend(), app.Notifier(), session, map[string]crud.DeleteTarget{
			"customer": {List: list},
		}),
	}
}

func (c *CustomersController) Key() string {
	return c.basePath
}

func (c *CustomersController) Register(r *mux.Router) {
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

// search proxies the backend keyword search. An empty keyword serves the
// cached full list with no backend search call; search results never
// overwrite that cache. A transport failure falls back to the cached
// list, same as list fetches keep their previous render.
func (c *CustomersController) search(ctx context.Context, keyword string) []crud.Record {
	if keyword == "" {
		if len(c.list.Records()) == 0 {
			_, _ = c.list.Fetch(ctx)
		}
		return c.list.Records()
	}
	var records []crud.Record
	err := c.app.Backend().Get(ctx, "/api/customer/search?keyword="+url.QueryEscape(keyword), &records)
	if err != nil {
		if msg, ok := backend.AppMessage(err); ok {
			if !c.list.Config().IsEmptyMessage(msg) {
				c.app.Notifier().Error(msg)
			}
			return nil
		}
		c.app.Notifier().Error("搜索客户失败")
		return c.list.Records()
	}
	return records
}

func (c *CustomersController) page(records []crud.Record, keyword string) htmlui.ListPage {
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
			Title:    "客户管理",
			Nav:      htmlui.Navigation(c.basePath),
			Notices:  c.app.Notifier().Drain(),
		},
		Search: &htmlui.SearchVM{
			Action:      c.basePath,
			Name:        "keyword",
			Keyword:     keyword,
			Placeholder: "搜索姓名/电话/身份证号",
		},
		CreateURL:   c.basePath + "/form",
		CreateLabel: "添加客户",
		Table:       mappers.CustomersTable(c.list.Render(records), records),
		Form:        mappers.CustomerFormVM(c.form.State(), nil),
		Confirm:     confirm,
	}
}

func (c *CustomersController) render(w http.ResponseWriter, page string, data any) {
	if err := c.renderer.Render(w, page, data); err != nil {
		c.app.Logger().WithError(err).Error("render failed")
	}
}

func (c *CustomersController) List(w http.ResponseWriter, r *http.Request) {
	keyword := composables.UseQuery(r, "keyword")
	var records []crud.Record
	if keyword == "" {
		_, _ = c.list.Fetch(r.Context())
		records = c.list.Records()
	} else {
		records = c.search(r.Context(), keyword)
	}
	c.render(w, "list", c.page(records, keyword))
}

func (c *CustomersController) Rows(w http.ResponseWriter, r *http.Request) {
	records := c.search(r.Context(), composables.UseQuery(r, "keyword"))
	c.render(w, "table", mappers.CustomersTable(c.list.Render(records), records))
}

func (c *CustomersController) NewForm(w http.ResponseWriter, r *http.Request) {
	if err := c.form.OpenCreate(nil); errors.Is(err, crud.ErrModalBusy) {
		c.app.Notifier().Error(modalBusyMessage)
	}
	http.Redirect(w, r, c.basePath, http.StatusSeeOther)
}

func (c *CustomersController) EditForm(w http.ResponseWriter, r *http.Request) {
	if err := c.form.OpenEdit(r.Context(), mux.Vars(r)["id"]); errors.Is(err, crud.ErrModalBusy) {
		c.app.Notifier().Error(modalBusyMessage)
	}
	http.Redirect(w, r, c.basePath, http.StatusSeeOther)
}

func (c *CustomersController) Save(w http.ResponseWriter, r *http.Request) {
	dto, err := composables.UseForm(&customer.UpsertDTO{}, r)
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
		page := c.page(c.list.Records(), "")
		page.Form = mappers.CustomerFormVM(state, fieldErrors)
		c.render(w, "list", page)
		return
	}
	_ = c.form.Submit(r.Context(), dto.Values())
	http.Redirect(w, r, c.basePath, http.StatusSeeOther)
}

func (c *CustomersController) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	label := composables.UseQuery(r, "label")
	if label == "" {
		if rec, ok := c.list.Find(id); ok {
			label = rec.Str("name")
		}
	}
	if err := c.confirm.Request(id, "customer", label); errors.Is(err, crud.ErrModalBusy) {
		c.app.Notifier().Error(modalBusyMessage)
	}
	http.Redirect(w, r, c.basePath, http.StatusSeeOther)
}

func (c *CustomersController) Delete(w http.ResponseWriter, r *http.Request) {
	_ = c.confirm.Confirm(r.Context())
	http.Redirect(w, r, c.basePath, http.StatusSeeOther)
}

func (c *CustomersController) CloseModal(w http.ResponseWriter, r *http.Request) {
	if c.form.State() != nil {
		c.form.Close()
	}
	c.confirm.Cancel()
	http.Redirect(w, r, c.basePath, http.StatusSeeOther)
}
