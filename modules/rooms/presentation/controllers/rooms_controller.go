package controllers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/yinyiqing/hotel-backoffice/modules/rooms/domain/room"
	"github.com/yinyiqing/hotel-backoffice/modules/rooms/presentation/mappers"
	"github.com/yinyiqing/hotel-backoffice/pkg/application"
	"github.com/yinyiqing/hotel-backoffice/pkg/backend"
	"github.com/yinyiqing/hotel-backoffice/pkg/composables"
	"github.com/yinyiqing/hotel-backoffice/pkg/configuration"
	"github.com/yinyiqing/hotel-backoffice/pkg/crud"
	"github.com/yinyiqing/hotel-backoffice/pkg/htmlui"
)

const modalBusyMessage = "请先关闭当前窗口"

type RoomsController struct {
	app      application.Application
	renderer *htmlui.Renderer
	basePath string

	session *crud.ModalSession
	list    *crud.ListView
	form    *crud.RecordForm
	confirm *crud.DeleteConfirmation
}

func NewRoomsController(app application.Application) application.Controller {
	session := crud.NewModalSession()
	list := crud.NewListView(app.Backend(), app.Notifier(), crud.Config{
		Kind:     "room",
		Title:    "房间",
		IDField:  "room_number",
		ListPath: "/api/rooms/list",
		// The add endpoint predates the create/update naming of the
		// other entities.
		CreatePath:    "/api/rooms/add",
		UpdatePath:    "/api/rooms/update/%s",
		DeletePath:    "/api/rooms/delete/%s",
		Columns:       mappers.RoomColumns(),
		EmptyMessages: []string{"0间房间"},
	})
	return &RoomsController{
		app:      app,
		renderer: htmlui.NewRenderer(),
		basePath: "/rooms",
		session:  session,
		list:     list,
		form:     crud.NewRecordForm(app.Backend(), app.Notifier(), session, list),
		confirm: crud.NewDeleteConfirmation(app.Backend(), app.Notifier(), session, map[string]crud.DeleteTarget{
			"room": {List: list},
		}),
	}
}

func (c *RoomsController) Key() string {
	return c.basePath
}

func (c *RoomsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Save).Methods(http.MethodPost)
	router.HandleFunc("/rows", c.Rows).Methods(http.MethodGet)
	router.HandleFunc("/form", c.NewForm).Methods(http.MethodGet)
	router.HandleFunc("/close", c.CloseModal).Methods(http.MethodGet)
	router.HandleFunc("/{id}/form", c.EditForm).Methods(http.MethodGet)
	router.HandleFunc("/{id}/confirm", c.ConfirmDelete).Methods(http.MethodGet)
	router.HandleFunc("/{id}/delete", c.Delete).Methods(http.MethodPost)
	router.HandleFunc("/{id}/status", c.Status).Methods(http.MethodPost)
}

func (c *RoomsController) filtered(keyword string) []crud.Record {
	return c.list.Filter(crud.FieldContains(keyword, "room_number", "room_type"))
}

func (c *RoomsController) page(keyword string) htmlui.ListPage {
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
			Title:    "房间管理",
			Nav:      htmlui.Navigation(c.basePath),
			Notices:  c.app.Notifier().Drain(),
		},
		Search: &htmlui.SearchVM{
			Action:      c.basePath,
			Name:        "keyword",
			Keyword:     keyword,
			Placeholder: "搜索房间号/房型",
		},
		CreateURL:   c.basePath + "/form",
		CreateLabel: "添加房间",
		Table:       mappers.RoomsTable(c.list.Render(records), records),
		Form:        mappers.RoomFormVM(c.form.State(), nil),
		Confirm:     confirm,
	}
}

func (c *RoomsController) render(w http.ResponseWriter, page string, data any) {
	if err := c.renderer.Render(w, page, data); err != nil {
		c.app.Logger().WithError(err).Error("render failed")
	}
}

func (c *RoomsController) List(w http.ResponseWriter, r *http.Request) {
	_, _ = c.list.Fetch(r.Context())
	c.render(w, "list", c.page(composables.UseQuery(r, "keyword")))
}

func (c *RoomsController) Rows(w http.ResponseWriter, r *http.Request) {
	records := c.filtered(composables.UseQuery(r, "q"))
	c.render(w, "table", mappers.RoomsTable(c.list.Render(records), records))
}

func (c *RoomsController) NewForm(w http.ResponseWriter, r *http.Request) {
	err := c.form.OpenCreate(map[string]string{
		"area":     "23",
		"capacity": "2",
	})
	if errors.Is(err, crud.ErrModalBusy) {
		c.app.Notifier().Error(modalBusyMessage)
	}
	http.Redirect(w, r, c.basePath, http.StatusSeeOther)
}

// EditForm opens edit from the cached row; rooms have no single-record
// endpoint.
func (c *RoomsController) EditForm(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	rec, ok := c.list.Find(id)
	if !ok {
		_, _ = c.list.Fetch(r.Context())
		rec, ok = c.list.Find(id)
	}
	if !ok {
		c.app.Notifier().Error("房间不存在")
		http.Redirect(w, r, c.basePath, http.StatusSeeOther)
		return
	}
	if err := c.form.OpenEditRecord(id, rec); errors.Is(err, crud.ErrModalBusy) {
		c.app.Notifier().Error(modalBusyMessage)
	}
	http.Redirect(w, r, c.basePath, http.StatusSeeOther)
}

func (c *RoomsController) Save(w http.ResponseWriter, r *http.Request) {
	dto, err := composables.UseForm(&room.UpsertDTO{}, r)
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
		page.Form = mappers.RoomFormVM(state, fieldErrors)
		c.render(w, "list", page)
		return
	}
	_ = c.form.Submit(r.Context(), dto.Values())
	http.Redirect(w, r, c.basePath, http.StatusSeeOther)
}

// Status forwards a lifecycle action to the backend. The resulting status
// is whatever the backend decides; the UI only re-fetches afterwards.
func (c *RoomsController) Status(w http.ResponseWriter, r *http.Request) {
	num := mux.Vars(r)["id"]
	action := composables.UseQuery(r, "action")
	if _, ok := room.Actions[action]; !ok {
		http.Error(w, "unknown action", http.StatusBadRequest)
		return
	}

	msg, err := c.app.Backend().PostJSON(r.Context(), "/api/rooms/status", map[string]any{
		"room_number": num,
		"action":      action,
	})
	if err != nil {
		if appMsg, ok := backend.AppMessage(err); ok {
			c.app.Notifier().Error(appMsg)
		} else {
			c.app.Notifier().Error("操作失败")
		}
	} else {
		if msg == "" {
			msg = "操作成功"
		}
		c.app.Notifier().Success(msg)
		_, _ = c.list.Fetch(r.Context())
	}
	http.Redirect(w, r, c.basePath, http.StatusSeeOther)
}

func (c *RoomsController) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	label := composables.UseQuery(r, "label")
	if label == "" {
		label = id
	}
	if err := c.confirm.Request(id, "room", label); errors.Is(err, crud.ErrModalBusy) {
		c.app.Notifier().Error(modalBusyMessage)
	}
	http.Redirect(w, r, c.basePath, http.StatusSeeOther)
}

func (c *RoomsController) Delete(w http.ResponseWriter, r *http.Request) {
	_ = c.confirm.Confirm(r.Context())
	http.Redirect(w, r, c.basePath, http.StatusSeeOther)
}

func (c *RoomsController) CloseModal(w http.ResponseWriter, r *http.Request) {
	if c.form.State() != nil {
		c.form.Close()
	}
	c.confirm.Cancel()
	http.Redirect(w, r, c.basePath, http.StatusSeeOther)
}
