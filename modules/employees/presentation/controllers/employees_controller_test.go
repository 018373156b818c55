package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/yinyiqing/hotel-backoffice/pkg/application"
	"github.com/yinyiqing/hotel-backoffice/pkg/backend"
)

// hotelBackend fakes the employee and department endpoints with an
// in-memory record set.
type hotelBackend struct {
	mu          sync.Mutex
	employees   []map[string]any
	departments []map[string]any
	listHits    int
	creates     []map[string]any
	updates     map[string]map[string]any
	deletes     []string
}

func newHotelBackend() *hotelBackend {
	return &hotelBackend{
		employees: []map[string]any{
			{"employee_id": "E1", "employee_name": "张三", "gender": "男", "phone": "13800000001", "status": "在职"},
			{"employee_id": "E2", "employee_name": "李四", "gender": "女", "phone": "13800000002", "status": "离职"},
		},
		departments: []map[string]any{
			{"department_id": "D1", "department_name": "前台部", "description": "接待与预订"},
		},
		updates: map[string]map[string]any{},
	}
}

func respond(w http.ResponseWriter, data any, message string) {
	payload, _ := json.Marshal(data)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": true, "data": json.RawMessage(payload), "message": message,
	})
}

func (b *hotelBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch {
	case r.URL.Path == "/api/employee/list":
		b.listHits++
		respond(w, b.employees, "")
	case r.URL.Path == "/api/department/list":
		respond(w, b.departments, "")
	case strings.HasPrefix(r.URL.Path, "/api/department/update/"):
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		b.updates[strings.TrimPrefix(r.URL.Path, "/api/department/update/")] = body
		respond(w, nil, "部门保存成功")
	case r.URL.Path == "/api/employee/create":
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		b.creates = append(b.creates, body)
		respond(w, nil, "员工添加成功")
	case strings.HasPrefix(r.URL.Path, "/api/employee/update/"):
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		b.updates[strings.TrimPrefix(r.URL.Path, "/api/employee/update/")] = body
		respond(w, nil, "员工保存成功")
	case strings.HasPrefix(r.URL.Path, "/api/employee/delete/"):
		b.deletes = append(b.deletes, strings.TrimPrefix(r.URL.Path, "/api/employee/delete/"))
		respond(w, nil, "员工删除成功")
	case r.URL.Path == "/api/employee/statistics":
		respond(w, map[string]any{
			"total": 2, "active": 1, "terminated": 1, "active_rate": 50.0,
			"by_department": []map[string]any{{"department_name": "前台部", "count": 1}},
		}, "")
	case strings.HasPrefix(r.URL.Path, "/api/employee/"):
		id := strings.TrimPrefix(r.URL.Path, "/api/employee/")
		for _, e := range b.employees {
			if e["employee_id"] == id {
				respond(w, e, "")
				return
			}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "员工不存在"})
	default:
		http.NotFound(w, r)
	}
}

func newEmployeesRouter(t *testing.T) (*mux.Router, *hotelBackend) {
	t.Helper()
	fake := newHotelBackend()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	app := application.New(&application.ApplicationOptions{
		Backend: backend.NewClient(srv.URL, time.Second, logger),
		Logger:  logger,
	})
	router := mux.NewRouter()
	NewEmployeesController(app).Register(router)
	NewDepartmentsController(app).Register(router)
	return router, fake
}

func get(router *mux.Router, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func post(router *mux.Router, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestEmployeeList_RendersRows(t *testing.T) {
	router, _ := newEmployeesRouter(t)

	rec := get(router, "/employees")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "张三")
	require.Contains(t, body, `badge active`)
	require.Contains(t, body, `badge inactive`)
	require.Contains(t, body, "添加员工")
}

func TestEmployeeRows_FilterUsesCacheOnly(t *testing.T) {
	router, fake := newEmployeesRouter(t)

	get(router, "/employees")
	fake.mu.Lock()
	hits := fake.listHits
	fake.mu.Unlock()

	rec := get(router, "/employees/rows?q=李")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "李四")
	require.NotContains(t, rec.Body.String(), "张三")

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Equal(t, hits, fake.listHits)
}

func TestEmployeeCreateFlow(t *testing.T) {
	router, fake := newEmployeesRouter(t)
	get(router, "/employees")

	rec := get(router, "/employees/form")
	require.Equal(t, http.StatusSeeOther, rec.Code)

	// Create defaults show up on the page that follows.
	rec = get(router, "/employees")
	require.Contains(t, rec.Body.String(), "在职")
	require.Contains(t, rec.Body.String(), `<div class="overlay">`)

	rec = post(router, "/employees", url.Values{
		"employee_name": {"王五"},
		"gender":        {"男"},
		"status":        {"在职"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Len(t, fake.creates, 1)
	require.Equal(t, "王五", fake.creates[0]["employee_name"])
	require.Empty(t, fake.updates)
}

func TestEmployeeSave_ValidationErrorKeepsModalOpen(t *testing.T) {
	router, fake := newEmployeesRouter(t)
	get(router, "/employees")
	get(router, "/employees/form")

	rec := post(router, "/employees", url.Values{
		"gender": {"男"},
		"email":  {"not-an-email"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "姓名是必填项")
	require.Contains(t, body, "邮箱格式不正确")
	require.Contains(t, body, `<div class="overlay">`)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Empty(t, fake.creates)
}

func TestEmployeeEditFlow_UpdatesById(t *testing.T) {
	router, fake := newEmployeesRouter(t)
	get(router, "/employees")

	rec := get(router, "/employees/E1/form")
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = post(router, "/employees", url.Values{
		"employee_name": {"张三"},
		"gender":        {"男"},
		"phone":         {"13900000001"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Empty(t, fake.creates)
	require.Contains(t, fake.updates, "E1")
	require.Equal(t, "13900000001", fake.updates["E1"]["phone"])
}

func TestEmployeeDeleteFlow(t *testing.T) {
	router, fake := newEmployeesRouter(t)
	get(router, "/employees")

	rec := get(router, "/employees/E2/confirm")
	require.Equal(t, http.StatusSeeOther, rec.Code)

	// The label was resolved from the cached record.
	rec = get(router, "/employees")
	require.Contains(t, rec.Body.String(), `确定要删除员工 "李四" 吗？此操作不可恢复！`)

	rec = post(router, "/employees/E2/delete", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Equal(t, []string{"E2"}, fake.deletes)
}

func TestEmployeeSecondModalRejected(t *testing.T) {
	router, fake := newEmployeesRouter(t)
	get(router, "/employees")
	get(router, "/employees/form")

	get(router, "/employees/E1/confirm")
	rec := get(router, "/employees")
	require.Contains(t, rec.Body.String(), "请先关闭当前窗口")
	// The edit modal stays; no confirmation dialog appears.
	require.NotContains(t, rec.Body.String(), "确定要删除")

	get(router, "/employees/close")
	rec = get(router, "/employees")
	require.NotContains(t, rec.Body.String(), `<div class="overlay">`)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Empty(t, fake.deletes)
}

func TestEmployeeStatisticsPage(t *testing.T) {
	router, _ := newEmployeesRouter(t)

	rec := get(router, "/employees/statistics")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "员工概况")
	require.Contains(t, rec.Body.String(), "前台部")
	require.Contains(t, rec.Body.String(), "50.0%")
}
