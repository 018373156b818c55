package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yinyiqing/hotel-backoffice/modules/analytics/presentation/mappers"
	"github.com/yinyiqing/hotel-backoffice/modules/analytics/presentation/viewmodels"
	"github.com/yinyiqing/hotel-backoffice/pkg/application"
	"github.com/yinyiqing/hotel-backoffice/pkg/backend"
	"github.com/yinyiqing/hotel-backoffice/pkg/configuration"
	"github.com/yinyiqing/hotel-backoffice/pkg/htmlui"
)

type DashboardController struct {
	app      application.Application
	renderer *htmlui.Renderer
	basePath string
}

func NewDashboardController(app application.Application) application.Controller {
	return &DashboardController{
		app:      app,
		renderer: htmlui.NewRenderer(),
		basePath: "/dashboard",
	}
}

func (c *DashboardController) Key() string {
	return c.basePath
}

func (c *DashboardController) Register(r *mux.Router) {
	r.HandleFunc(c.basePath, c.Dashboard).Methods(http.MethodGet)
}

func (c *DashboardController) Dashboard(w http.ResponseWriter, r *http.Request) {
	var stats viewmodels.DashboardSummary
	if err := c.app.Backend().Get(r.Context(), "/api/analytics/dashboard", &stats); err != nil {
		if msg, ok := backend.AppMessage(err); ok {
			c.app.Notifier().Error(msg)
		} else {
			c.app.Notifier().Error("统计数据加载失败")
		}
	}
	page := htmlui.DashboardPage{
		Base: htmlui.Base{
			AppTitle: configuration.Use().PageTitle,
			Title:    "仪表板",
			Nav:      htmlui.Navigation(c.basePath),
			Notices:  c.app.Notifier().Drain(),
		},
		Cards: mappers.SummaryCards(&stats),
		Links: []htmlui.ActionVM{
			{Label: "员工管理", URL: "/employees", Method: http.MethodGet},
			{Label: "客户管理", URL: "/customers", Method: http.MethodGet},
			{Label: "房间管理", URL: "/rooms", Method: http.MethodGet},
			{Label: "数据分析", URL: "/analytics", Method: http.MethodGet},
		},
	}
	if err := c.renderer.Render(w, "dashboard", page); err != nil {
		c.app.Logger().WithError(err).Error("render failed")
	}
}
