package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

type roomBackend struct {
	mu      sync.Mutex
	rooms   []map[string]any
	actions []map[string]any
	fail    string
}

func newRoomBackend() *roomBackend {
	return &roomBackend{
		rooms: []map[string]any{
			{"room_number": "101", "room_type": "单人房", "status": "空闲", "price": 188.0, "area": 23.0, "capacity": 2, "has_window": 1},
			{"room_number": "102", "room_type": "双人房", "status": "已入住", "price": 288.0, "area": 30.0, "capacity": 2, "has_window": 0},
			{"room_number": "201", "room_type": "豪华大床房", "status": "已预订", "price": 488.0, "area": 45.0, "capacity": 3, "has_window": 1},
		},
	}
}

func (b *roomBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	write := func(data any, msg string) {
		payload, _ := json.Marshal(data)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": json.RawMessage(payload), "message": msg})
	}
	switch r.URL.Path {
	case "/api/rooms/list":
		write(b.rooms, "")
	case "/api/rooms/status":
		if b.fail != "" {
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": b.fail})
			return
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		b.actions = append(b.actions, body)
		if body["action"] == "reserve" {
			b.rooms[0]["status"] = "已预订"
		}
		write(nil, "预订成功")
	default:
		if strings.HasPrefix(r.URL.Path, "/api/rooms/delete/") {
			write(nil, "房间删除成功")
			return
		}
		http.NotFound(w, r)
	}
}

func newRoomsRouter(t *testing.T) (*mux.Router, *roomBackend) {
	t.Helper()
	fake := newRoomBackend()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	app := application.New(&application.ApplicationOptions{
		Backend: backend.NewClient(srv.URL, time.Second, logger),
		Logger:  logger,
	})
	router := mux.NewRouter()
	NewRoomsController(app).Register(router)
	return router, fake
}

func get(router *mux.Router, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func post(router *mux.Router, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
	return rec
}

func TestRoomList_RendersStatusBadges(t *testing.T) {
	router, _ := newRoomsRouter(t)

	rec := get(router, "/rooms")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "badge free")
	require.Contains(t, body, "badge occupied")
	require.Contains(t, body, "badge reserved")
	require.Contains(t, body, "¥188.00")
	require.Contains(t, body, "45 m²")
}

func TestRoomActions_FollowStatus(t *testing.T) {
	router, _ := newRoomsRouter(t)

	body := get(router, "/rooms").Body.String()
	// The occupied room offers checkout, the reserved one offers
	// check-in and cancel.
	require.Contains(t, body, `/rooms/102/status?action=checkout`)
	require.NotContains(t, body, `/rooms/102/status?action=reserve`)
	require.Contains(t, body, `/rooms/201/status?action=checkin`)
	require.Contains(t, body, `/rooms/201/status?action=cancel`)
	require.Contains(t, body, `/rooms/101/status?action=reserve`)
	require.NotContains(t, body, `/rooms/102/confirm`)
}

func TestRoomStatus_PostsActionAndRefreshes(t *testing.T) {
	router, fake := newRoomsRouter(t)
	get(router, "/rooms")

	rec := post(router, "/rooms/101/status?action=reserve")
	require.Equal(t, http.StatusSeeOther, rec.Code)

	fake.mu.Lock()
	require.Len(t, fake.actions, 1)
	require.Equal(t, "101", fake.actions[0]["room_number"])
	require.Equal(t, "reserve", fake.actions[0]["action"])
	fake.mu.Unlock()

	body := get(router, "/rooms").Body.String()
	require.Contains(t, body, "预订成功")
	require.NotContains(t, body, "badge free")
}

func TestRoomStatus_UnknownActionRejected(t *testing.T) {
	router, fake := newRoomsRouter(t)

	rec := post(router, "/rooms/101/status?action=explode")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Empty(t, fake.actions)
}

func TestRoomStatus_FailureShowsVerbatimMessage(t *testing.T) {
	router, fake := newRoomsRouter(t)
	get(router, "/rooms")
	fake.mu.Lock()
	fake.fail = "房间已被预订"
	fake.mu.Unlock()

	rec := post(router, "/rooms/101/status?action=reserve")
	require.Equal(t, http.StatusSeeOther, rec.Code)

	body := get(router, "/rooms").Body.String()
	require.Contains(t, body, "房间已被预订")
}

func TestRoomEditForm_OpensFromCache(t *testing.T) {
	router, _ := newRoomsRouter(t)
	get(router, "/rooms")

	rec := get(router, "/rooms/101/form")
	require.Equal(t, http.StatusSeeOther, rec.Code)

	body := get(router, "/rooms").Body.String()
	require.Contains(t, body, `<div class="overlay">`)
	// Room numbers are immutable once assigned.
	require.Contains(t, body, "readonly")
}

func TestRoomEditForm_UnknownRoom(t *testing.T) {
	router, _ := newRoomsRouter(t)

	rec := get(router, "/rooms/999/form")
	require.Equal(t, http.StatusSeeOther, rec.Code)

	body := get(router, "/rooms").Body.String()
	require.Contains(t, body, "房间不存在")
	require.NotContains(t, body, `<div class="overlay">`)
}
