package crud

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/yinyiqing/hotel-backoffice/pkg/backend"
	"github.com/yinyiqing/hotel-backoffice/pkg/format"
)

type recordingSink struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (s *recordingSink) Success(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.successes = append(s.successes, msg)
}

func (s *recordingSink) Error(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = append(s.errors, msg)
}

func (s *recordingSink) errorCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.errors)
}

func testClient(t *testing.T, handler http.Handler) (*backend.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return backend.NewClient(srv.URL, time.Second, logger), srv
}

func employeeConfig() Config {
	return Config{
		Kind:       "employee",
		Title:      "员工",
		IDField:    "employee_id",
		ListPath:   "/api/employee/list",
		GetPath:    "/api/employee/%s",
		CreatePath: "/api/employee/create",
		UpdatePath: "/api/employee/update/%s",
		DeletePath: "/api/employee/delete/%s",
		Columns: []Column{
			{Key: "employee_id", Title: "工号"},
			{Key: "employee_name", Title: "姓名"},
			{Key: "status", Title: "状态", Format: func(rec Record) Cell {
				status := rec.Str("status")
				badge := "inactive"
				if status == "在职" {
					badge = "active"
				}
				return Cell{Text: status, Badge: badge}
			}},
			{Key: "hire_date", Title: "入职日期", Format: func(rec Record) Cell {
				return Cell{Text: format.Date(rec.Str("hire_date"))}
			}},
		},
		EmptyMessages: []string{"0名员工"},
	}
}

func TestFetch_ReplacesStateAndRenders(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":[{"employee_id":"E1","employee_name":"张三","status":"在职"}],"message":"获取到1名员工"}`))
	}))
	sink := &recordingSink{}
	lv := NewListView(client, sink, employeeConfig())

	records, err := lv.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	table := lv.Render(records)
	require.Len(t, table.Rows, 1)
	require.Equal(t, "E1", table.Rows[0].ID)
	require.Equal(t, "张三", table.Rows[0].Cells[1].Text)
	require.Equal(t, "在职", table.Rows[0].Cells[2].Text)
	require.Equal(t, "active", table.Rows[0].Cells[2].Badge)
}

func TestFetch_EmptyMessageClassIsValidEmptyResult(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"获取到0名员工"}`))
	}))
	sink := &recordingSink{}
	lv := NewListView(client, sink, employeeConfig())

	records, err := lv.Fetch(context.Background())
	require.NoError(t, err)
	require.Empty(t, records)
	require.Zero(t, sink.errorCount())
}

func TestFetch_OtherApplicationFailureClearsAndReports(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"获取员工列表失败: disk error"}`))
	}))
	sink := &recordingSink{}
	lv := NewListView(client, sink, employeeConfig())

	records, err := lv.Fetch(context.Background())
	require.Error(t, err)
	require.Empty(t, records)
	require.Equal(t, []string{"获取员工列表失败: disk error"}, sink.errors)
}

func TestFetch_TransportFailureKeepsPreviousState(t *testing.T) {
	var fail bool
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			_, _ = w.Write([]byte("not json"))
			return
		}
		_, _ = w.Write([]byte(`{"success":true,"data":[{"employee_id":"E1","employee_name":"张三","status":"在职"}]}`))
	}))
	sink := &recordingSink{}
	lv := NewListView(client, sink, employeeConfig())

	_, err := lv.Fetch(context.Background())
	require.NoError(t, err)

	fail = true
	_, err = lv.Fetch(context.Background())
	require.ErrorIs(t, err, backend.ErrTransport)
	require.Len(t, lv.Records(), 1)
	require.Equal(t, 1, sink.errorCount())
}

func TestFetch_StaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		_, _ = w.Write([]byte(`{"success":true,"data":[{"employee_id":"OLD"}]}`))
	}))
	sink := &recordingSink{}
	lv := NewListView(client, sink, employeeConfig())

	done := make(chan error, 1)
	go func() {
		_, err := lv.Fetch(context.Background())
		done <- err
	}()

	// A newer fetch gets issued while the first response is still in flight.
	time.Sleep(20 * time.Millisecond)
	lv.mu.Lock()
	lv.issued++
	lv.mu.Unlock()
	close(release)

	require.ErrorIs(t, <-done, ErrStaleResponse)
	require.Empty(t, lv.Records())
}

func TestFilter_OrderPreservingNonMutating(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":[
			{"employee_id":"E1","employee_name":"张三","phone":"13800000001","status":"在职"},
			{"employee_id":"E2","employee_name":"李四","phone":"13900000002","status":"离职"},
			{"employee_id":"E3","employee_name":"张伟","phone":"13800000003","status":"在职"}
		]}`))
	}))
	lv := NewListView(client, &recordingSink{}, employeeConfig())
	_, err := lv.Fetch(context.Background())
	require.NoError(t, err)

	filtered := lv.Filter(FieldContains("张", "employee_id", "employee_name", "phone"))
	require.Len(t, filtered, 2)
	require.Equal(t, "E1", filtered[0].Str("employee_id"))
	require.Equal(t, "E3", filtered[1].Str("employee_id"))
	// The cache itself stays intact.
	require.Len(t, lv.Records(), 3)

	// Composed criteria AND together.
	both := lv.Filter(
		FieldContains("张", "employee_name"),
		FieldEquals("status", "在职"),
	)
	require.Len(t, both, 2)

	// An empty keyword restores the full unfiltered list.
	all := lv.Filter(FieldContains("", "employee_name"))
	require.Len(t, all, 3)
}

func TestFilter_NumericThreshold(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":[
			{"employee_id":"E1","salary":3200},
			{"employee_id":"E2","salary":8800},
			{"employee_id":"E3"}
		]}`))
	}))
	lv := NewListView(client, &recordingSink{}, employeeConfig())
	_, err := lv.Fetch(context.Background())
	require.NoError(t, err)

	high := lv.Filter(FieldAtLeast("salary", 5000))
	require.Len(t, high, 1)
	require.Equal(t, "E2", high[0].Str("employee_id"))
}

func TestRender_AbsentFieldsFallBackToDash(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":[{"employee_id":"E9","status":"在职","hire_date":null}]}`))
	}))
	lv := NewListView(client, &recordingSink{}, employeeConfig())
	records, err := lv.Fetch(context.Background())
	require.NoError(t, err)

	table := lv.Render(records)
	require.Equal(t, "-", table.Rows[0].Cells[1].Text) // employee_name absent
	require.Equal(t, "-", table.Rows[0].Cells[3].Text) // hire_date null
}

func TestRecordAccessors(t *testing.T) {
	rec := Record{
		"id":         float64(101),
		"name":       "标准间",
		"has_window": float64(1),
		"price":      288.5,
		"notes":      nil,
	}
	require.Equal(t, "101", rec.Str("id"))
	require.Equal(t, "标准间", rec.Str("name"))
	require.Equal(t, "", rec.Str("notes"))
	require.True(t, rec.Bool("has_window"))
	require.False(t, rec.Has("notes"))

	price, ok := rec.Float("price")
	require.True(t, ok)
	require.InDelta(t, 288.5, price, 1e-9)
}
