package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/mux"
	"github.com/xuri/excelize/v2"

	"github.com/yinyiqing/hotel-backoffice/modules/analytics/presentation/mappers"
	"github.com/yinyiqing/hotel-backoffice/modules/analytics/presentation/viewmodels"
	"github.com/yinyiqing/hotel-backoffice/pkg/application"
	"github.com/yinyiqing/hotel-backoffice/pkg/backend"
	"github.com/yinyiqing/hotel-backoffice/pkg/composables"
	"github.com/yinyiqing/hotel-backoffice/pkg/configuration"
	"github.com/yinyiqing/hotel-backoffice/pkg/htmlui"
)

// revenueWindowDays is the default revenue reporting window when no
// start/end dates are given.
const revenueWindowDays = 30

func analyticsTabs(active string) []htmlui.Tab {
	tabs := []htmlui.Tab{
		{Label: "总览", URL: "/analytics"},
		{Label: "员工分析", URL: "/analytics/employees"},
		{Label: "客户分析", URL: "/analytics/customers"},
		{Label: "房间分析", URL: "/analytics/rooms"},
		{Label: "订单分析", URL: "/analytics/orders"},
		{Label: "收入报表", URL: "/analytics/revenue"},
	}
	for i := range tabs {
		tabs[i].Active = tabs[i].URL == active
	}
	return tabs
}

type AnalyticsController struct {
	app      application.Application
	renderer *htmlui.Renderer
	basePath string
}

func NewAnalyticsController(app application.Application) application.Controller {
	return &AnalyticsController{
		app:      app,
		renderer: htmlui.NewRenderer(),
		basePath: "/analytics",
	}
}

func (c *AnalyticsController) Key() string {
	return c.basePath
}

func (c *AnalyticsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.Overview).Methods(http.MethodGet)
	router.HandleFunc("/employees", c.Employees).Methods(http.MethodGet)
	router.HandleFunc("/customers", c.Customers).Methods(http.MethodGet)
	router.HandleFunc("/rooms", c.Rooms).Methods(http.MethodGet)
	router.HandleFunc("/orders", c.Orders).Methods(http.MethodGet)
	router.HandleFunc("/revenue", c.Revenue).Methods(http.MethodGet)
	router.HandleFunc("/chart", c.Chart).Methods(http.MethodGet)
	router.HandleFunc("/export", c.Export).Methods(http.MethodGet)
}

func (c *AnalyticsController) base(title string) htmlui.Base {
	return htmlui.Base{
		AppTitle: configuration.Use().PageTitle,
		Title:    title,
		Nav:      htmlui.Navigation(c.basePath),
		Notices:  c.app.Notifier().Drain(),
	}
}

func (c *AnalyticsController) render(w http.ResponseWriter, page string, data any) {
	if err := c.renderer.Render(w, page, data); err != nil {
		c.app.Logger().WithError(err).Error("render failed")
	}
}

// fetch loads one stats payload and turns failures into a notice so the
// report page still renders with zeroed figures.
func (c *AnalyticsController) fetch(ctx context.Context, path string, out any) {
	if err := c.app.Backend().Get(ctx, path, out); err != nil {
		if msg, ok := backend.AppMessage(err); ok {
			c.app.Notifier().Error(msg)
		} else {
			c.app.Notifier().Error("统计数据加载失败")
		}
	}
}

func (c *AnalyticsController) exportActions() []htmlui.ActionVM {
	return []htmlui.ActionVM{
		{Label: "导出 JSON", URL: c.basePath + "/export?type=json", Method: http.MethodGet},
		{Label: "导出摘要", URL: c.basePath + "/export?type=summary", Method: http.MethodGet},
		{Label: "导出 Excel", URL: c.basePath + "/export?type=xlsx", Method: http.MethodGet},
	}
}

func (c *AnalyticsController) Overview(w http.ResponseWriter, r *http.Request) {
	var stats viewmodels.DashboardSummary
	c.fetch(r.Context(), "/api/analytics/dashboard", &stats)
	c.render(w, "report", htmlui.ReportPage{
		Base: c.base("数据分析"),
		Tabs: analyticsTabs(c.basePath),
		Sections: []htmlui.ReportSection{
			{Title: "经营概况", Cards: mappers.SummaryCards(&stats)},
			{Title: "近7天订单趋势", Table: mappers.WeekTrendTable(stats.WeekTrend)},
		},
		Exports: c.exportActions(),
	})
}

func (c *AnalyticsController) Employees(w http.ResponseWriter, r *http.Request) {
	var stats viewmodels.EmployeeStats
	c.fetch(r.Context(), "/api/analytics/employees", &stats)
	c.render(w, "report", htmlui.ReportPage{
		Base: c.base("员工分析"),
		Tabs: analyticsTabs(c.basePath + "/employees"),
		Sections: []htmlui.ReportSection{
			{Title: "员工概况", Cards: mappers.EmployeeCards(&stats)},
			{Title: "部门分布", Table: mappers.DepartmentTable(&stats)},
		},
	})
}

func (c *AnalyticsController) Customers(w http.ResponseWriter, r *http.Request) {
	var stats viewmodels.CustomerStats
	c.fetch(r.Context(), "/api/analytics/customers", &stats)
	c.render(w, "report", htmlui.ReportPage{
		Base: c.base("客户分析"),
		Tabs: analyticsTabs(c.basePath + "/customers"),
		Sections: []htmlui.ReportSection{
			{Title: "客户概况", Cards: mappers.CustomerCards(&stats)},
			{Title: "消费排行", Table: mappers.TopCustomersTable(&stats)},
		},
	})
}

func (c *AnalyticsController) Rooms(w http.ResponseWriter, r *http.Request) {
	var stats viewmodels.RoomStats
	c.fetch(r.Context(), "/api/analytics/rooms", &stats)
	c.render(w, "report", htmlui.ReportPage{
		Base: c.base("房间分析"),
		Tabs: analyticsTabs(c.basePath + "/rooms"),
		Sections: []htmlui.ReportSection{
			{Title: "房间概况", Cards: mappers.RoomCards(&stats)},
			{Title: "状态分布", Table: mappers.RoomStatusTable(&stats)},
			{Title: "房型分布", Table: mappers.RoomTypeTable(&stats)},
			{Title: "价格区间", Table: mappers.PriceRangeTable(&stats)},
		},
	})
}

func (c *AnalyticsController) Orders(w http.ResponseWriter, r *http.Request) {
	var stats viewmodels.OrderStats
	c.fetch(r.Context(), "/api/analytics/orders", &stats)
	c.render(w, "report", htmlui.ReportPage{
		Base: c.base("订单分析"),
		Tabs: analyticsTabs(c.basePath + "/orders"),
		Sections: []htmlui.ReportSection{
			{Title: "订单概况", Cards: mappers.OrderCards(&stats)},
			{Title: "订单状态", Table: mappers.OrderStatusTable(&stats)},
			{Title: "支付状态", Table: mappers.OrderPaymentTable(&stats)},
		},
	})
}

// revenueRange resolves the requested reporting window, defaulting to the
// last revenueWindowDays days.
func revenueRange(r *http.Request) (string, string) {
	start := composables.UseQuery(r, "start_date")
	end := composables.UseQuery(r, "end_date")
	if start == "" {
		start = time.Now().AddDate(0, 0, -revenueWindowDays).Format("2006-01-02")
	}
	if end == "" {
		end = time.Now().Format("2006-01-02")
	}
	return start, end
}

func revenuePath(start, end string) string {
	q := url.Values{}
	q.Set("start_date", start)
	q.Set("end_date", end)
	return "/api/analytics/revenue?" + q.Encode()
}

func (c *AnalyticsController) Revenue(w http.ResponseWriter, r *http.Request) {
	start, end := revenueRange(r)
	var report viewmodels.RevenueReport
	c.fetch(r.Context(), revenuePath(start, end), &report)
	c.render(w, "report", htmlui.ReportPage{
		Base:  c.base("收入报表"),
		Tabs:  analyticsTabs(c.basePath + "/revenue"),
		Range: &htmlui.RangeVM{Action: c.basePath + "/revenue", Start: start, End: end},
		Sections: []htmlui.ReportSection{
			{Title: "收入概况", Cards: mappers.RevenueCards(&report)},
			{Title: "每日收入", Table: mappers.DailyTrendTable(&report)},
			{Title: "房型收入", Table: mappers.RoomTypeRevenueTable(&report)},
			{Title: "支付构成", Table: mappers.PaymentBreakdownTable(&report)},
		},
		Exports: c.exportActions(),
	})
}

// Chart proxies one chart dataset as JSON for the report page scripts.
func (c *AnalyticsController) Chart(w http.ResponseWriter, r *http.Request) {
	chartType := composables.UseQuery(r, "type")
	if chartType == "" {
		http.Error(w, "missing chart type", http.StatusBadRequest)
		return
	}
	var payload json.RawMessage
	path := "/api/analytics/chart?" + url.Values{"type": {chartType}}.Encode()
	if err := c.app.Backend().Get(r.Context(), path, &payload); err != nil {
		c.app.Logger().WithError(err).WithField("type", chartType).Error("chart fetch failed")
		http.Error(w, "chart data unavailable", http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write(payload)
}

// Export downloads the analytics data. json and summary pass the backend
// payload through as a file; xlsx builds a workbook locally.
func (c *AnalyticsController) Export(w http.ResponseWriter, r *http.Request) {
	kind := composables.UseQuery(r, "type")
	if kind == "" {
		kind = "json"
	}
	stamp := time.Now().Format("20060102")
	switch kind {
	case "json", "summary":
		var payload json.RawMessage
		path := "/api/analytics/export?" + url.Values{"type": {kind}}.Encode()
		if err := c.app.Backend().Get(r.Context(), path, &payload); err != nil {
			c.app.Logger().WithError(err).Error("export fetch failed")
			http.Error(w, "export unavailable", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=analytics_%s_%s.json", kind, stamp))
		_, _ = w.Write(payload)
	case "xlsx":
		c.exportWorkbook(w, r)
	default:
		http.Error(w, "unknown export type", http.StatusBadRequest)
	}
}

// exportWorkbook assembles the Excel report from the dashboard summary and
// the default revenue window.
func (c *AnalyticsController) exportWorkbook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var dashboard viewmodels.DashboardSummary
	if err := c.app.Backend().Get(ctx, "/api/analytics/dashboard", &dashboard); err != nil {
		c.app.Logger().WithError(err).Error("export fetch failed")
		http.Error(w, "export unavailable", http.StatusBadGateway)
		return
	}
	start, end := revenueRange(r)
	var report viewmodels.RevenueReport
	if err := c.app.Backend().Get(ctx, revenuePath(start, end), &report); err != nil {
		c.app.Logger().WithError(err).Error("export fetch failed")
		http.Error(w, "export unavailable", http.StatusBadGateway)
		return
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			c.app.Logger().WithError(err).Warn("close workbook")
		}
	}()

	const summarySheet = "经营概况"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		c.workbookError(w, err)
		return
	}
	summaryRows := [][]any{
		{"指标", "数值"},
		{"员工总数", dashboard.Summary.Employees},
		{"在职员工", dashboard.Summary.ActiveEmployees},
		{"客户总数", dashboard.Summary.Customers},
		{"今日新增客户", dashboard.Summary.TodayNewCustomers},
		{"房间总数", dashboard.Summary.Rooms},
		{"已入住房间", dashboard.Summary.OccupiedRooms},
		{"入住率(%)", dashboard.Summary.OccupancyRate},
		{"订单总数", dashboard.Summary.TotalOrders},
		{"今日收入", dashboard.Summary.TodayRevenue},
		{"今日实收", dashboard.Summary.TodayPaid},
	}
	for i, row := range summaryRows {
		if err := f.SetSheetRow(summarySheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			c.workbookError(w, err)
			return
		}
	}

	const revenueSheet = "收入明细"
	if _, err := f.NewSheet(revenueSheet); err != nil {
		c.workbookError(w, err)
		return
	}
	header := []any{"日期", "收入", "实收", "订单数"}
	if err := f.SetSheetRow(revenueSheet, "A1", &header); err != nil {
		c.workbookError(w, err)
		return
	}
	for i, d := range report.DailyTrend {
		row := []any{d.Date, d.DailyRevenue, d.DailyPaid, d.DailyOrders}
		if err := f.SetSheetRow(revenueSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			c.workbookError(w, err)
			return
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=analytics_%s.xlsx", time.Now().Format("20060102")))
	if err := f.Write(w); err != nil {
		c.app.Logger().WithError(err).Error("write workbook")
	}
}

func (c *AnalyticsController) workbookError(w http.ResponseWriter, err error) {
	c.app.Logger().WithError(err).Error("build workbook")
	http.Error(w, "export unavailable", http.StatusInternalServerError)
}
