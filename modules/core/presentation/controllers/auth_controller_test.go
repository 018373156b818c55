package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/yinyiqing/hotel-backoffice/pkg/application"
	"github.com/yinyiqing/hotel-backoffice/pkg/backend"
)

type countingBackend struct {
	hits    atomic.Int64
	handler http.HandlerFunc
}

func (b *countingBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.hits.Add(1)
	b.handler(w, r)
}

func newAuthRouter(t *testing.T, handler http.HandlerFunc) (*mux.Router, *countingBackend) {
	t.Helper()
	cb := &countingBackend{handler: handler}
	srv := httptest.NewServer(cb)
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	app := application.New(&application.ApplicationOptions{
		Backend: backend.NewClient(srv.URL, time.Second, logger),
		Logger:  logger,
	})
	router := mux.NewRouter()
	NewAuthController(app).Register(router)
	NewDashboardController(app).Register(router)
	return router, cb
}

func postForm(router *mux.Router, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLogin_SuccessRedirectsToDashboard(t *testing.T) {
	router, cb := newAuthRouter(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login", r.URL.Path)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "admin", r.PostForm.Get("username"))
		require.Equal(t, "admin123", r.PostForm.Get("password"))
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "登录成功"})
	})

	rec := postForm(router, "/login", url.Values{"username": {"admin"}, "password": {"admin123"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/dashboard", rec.Header().Get("Location"))
	require.EqualValues(t, 1, cb.hits.Load())
}

func TestLogin_BadCredentialsRendersVerbatimMessage(t *testing.T) {
	router, _ := newAuthRouter(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "用户名或密码错误"})
	})

	rec := postForm(router, "/login", url.Values{"username": {"admin"}, "password": {"wrong"}})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "用户名或密码错误")
	// The attempted username is kept in the form.
	require.Contains(t, rec.Body.String(), `value="admin"`)
}

func TestLogin_MissingFieldsNeverReachBackend(t *testing.T) {
	router, cb := newAuthRouter(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	rec := postForm(router, "/login", url.Values{"username": {"admin"}})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "密码是必填项")
	require.EqualValues(t, 0, cb.hits.Load())
}

func TestChangePassword_ShortPasswordIssuesNoRequest(t *testing.T) {
	router, cb := newAuthRouter(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	rec := postForm(router, "/change-password", url.Values{
		"old_password":     {"admin123"},
		"new_password":     {"abc12"},
		"confirm_password": {"abc12"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "新密码长度至少6位")
	require.EqualValues(t, 0, cb.hits.Load())
}

func TestChangePassword_MismatchIssuesNoRequest(t *testing.T) {
	router, cb := newAuthRouter(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	rec := postForm(router, "/change-password", url.Values{
		"old_password":     {"admin123"},
		"new_password":     {"abc123"},
		"confirm_password": {"abc124"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "确认新密码")
	require.EqualValues(t, 0, cb.hits.Load())
}

func TestChangePassword_SuccessRedirectsWithServerMessage(t *testing.T) {
	router, cb := newAuthRouter(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/change-password", r.URL.Path)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "admin123", r.PostForm.Get("currentPassword"))
		require.Equal(t, "secret9", r.PostForm.Get("newPassword"))
		require.Equal(t, "secret9", r.PostForm.Get("confirmPassword"))
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "密码修改成功"})
	})

	rec := postForm(router, "/change-password", url.Values{
		"old_password":     {"admin123"},
		"new_password":     {"secret9"},
		"confirm_password": {"secret9"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/change-password", rec.Header().Get("Location"))
	require.EqualValues(t, 1, cb.hits.Load())
}

func TestChangePassword_WrongOldPasswordShowsServerMessage(t *testing.T) {
	router, _ := newAuthRouter(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "当前密码错误"})
	})

	rec := postForm(router, "/change-password", url.Values{
		"old_password":     {"nope"},
		"new_password":     {"secret9"},
		"confirm_password": {"secret9"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "当前密码错误")
}

func TestLogout_RedirectsToLogin(t *testing.T) {
	router, cb := newAuthRouter(t, func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/logout", nil))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))
	require.EqualValues(t, 0, cb.hits.Load())

	// The flash shows up on the login page that follows.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))
	require.Contains(t, rec.Body.String(), "已退出登录")
}

func TestRootServesLoginPage(t *testing.T) {
	router, _ := newAuthRouter(t, func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `action="/login"`)
}

func TestDashboard_RendersSummaryCards(t *testing.T) {
	router, _ := newAuthRouter(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/analytics/dashboard", r.URL.Path)
		data, _ := json.Marshal(map[string]any{
			"summary": map[string]any{"employees": 12, "rooms": 30, "occupancy_rate": 60.0},
		})
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": json.RawMessage(data)})
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "员工总数")
	require.Contains(t, rec.Body.String(), "60.0%")
}
