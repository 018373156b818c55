package crud

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yinyiqing/hotel-backoffice/pkg/backend"
)

// fakeBackend serves the employee CRUD routes and records every write
// request it receives.
type fakeBackend struct {
	mu      sync.Mutex
	creates []map[string]any
	updates map[string]map[string]any
	getBody string
	list    string
	failMsg string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		updates: map[string]map[string]any{},
		getBody: `{"success":true,"data":{"employee_id":"E1","employee_name":"张三","phone":"13800000001","email":null,"status":"在职"}}`,
		list:    `{"success":true,"data":[{"employee_id":"E1","employee_name":"张三","status":"在职"}]}`,
	}
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/employee/list":
		_, _ = io.WriteString(w, b.list)
	case r.Method == http.MethodGet && r.URL.Path == "/api/employee/E1":
		_, _ = io.WriteString(w, b.getBody)
	case r.Method == http.MethodPost && r.URL.Path == "/api/employee/create":
		if b.failMsg != "" {
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": b.failMsg})
			return
		}
		var payload map[string]any
		_ = json.NewDecoder(r.Body).Decode(&payload)
		b.creates = append(b.creates, payload)
		_, _ = io.WriteString(w, `{"success":true,"message":"添加成功"}`)
	case r.Method == http.MethodPut && r.URL.Path == "/api/employee/update/E1":
		if b.failMsg != "" {
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": b.failMsg})
			return
		}
		var payload map[string]any
		_ = json.NewDecoder(r.Body).Decode(&payload)
		b.updates["E1"] = payload
		_, _ = io.WriteString(w, `{"success":true,"message":"更新成功"}`)
	default:
		http.NotFound(w, r)
	}
}

func newFormFixture(t *testing.T) (*RecordForm, *ListView, *ModalSession, *fakeBackend, *recordingSink) {
	t.Helper()
	be := newFakeBackend()
	client, _ := testClient(t, be)
	sink := &recordingSink{}
	session := NewModalSession()
	list := NewListView(client, sink, employeeConfig())
	form := NewRecordForm(client, sink, session, list)
	return form, list, session, be, sink
}

func TestOpenEditThenSubmitUnmodified_UpdatesInPlace(t *testing.T) {
	form, _, session, be, sink := newFormFixture(t)
	ctx := context.Background()

	require.NoError(t, form.OpenEdit(ctx, "E1"))
	state := form.State()
	require.Equal(t, ModeEdit, state.Mode)
	require.Equal(t, "E1", state.TargetID)
	require.Equal(t, "张三", state.Fields["employee_name"])
	// Null fields surface as empty strings for editing.
	require.Equal(t, "", state.Fields["email"])

	require.NoError(t, form.Submit(ctx, state.Fields))

	// The write went to the update endpoint for the same id; no duplicate
	// record was created.
	be.mu.Lock()
	defer be.mu.Unlock()
	require.Empty(t, be.creates)
	require.Contains(t, be.updates, "E1")
	require.Equal(t, "张三", be.updates["E1"]["employee_name"])
	// Emptied fields travel as explicit nulls, not empty strings.
	require.Contains(t, be.updates["E1"], "email")
	require.Nil(t, be.updates["E1"]["email"])

	require.True(t, session.Idle())
	require.Nil(t, form.State())
	require.Equal(t, []string{"员工保存成功"}, sink.successes)
}

func TestOpenCreateSubmit_PostsWithoutTargetID(t *testing.T) {
	form, _, session, be, _ := newFormFixture(t)
	ctx := context.Background()

	require.NoError(t, form.OpenCreate(map[string]string{"status": "在职"}))
	state := form.State()
	require.Equal(t, ModeCreate, state.Mode)
	require.Empty(t, state.TargetID)
	require.Equal(t, "在职", state.Fields["status"])

	state.Fields["employee_name"] = "王五"
	require.NoError(t, form.Submit(ctx, state.Fields))

	be.mu.Lock()
	defer be.mu.Unlock()
	require.Len(t, be.creates, 1)
	require.Equal(t, "王五", be.creates[0]["employee_name"])
	require.Empty(t, be.updates)
	require.True(t, session.Idle())
}

func TestSubmitFailure_LeavesModalOpenWithVerbatimMessage(t *testing.T) {
	form, _, session, be, sink := newFormFixture(t)
	ctx := context.Background()

	require.NoError(t, form.OpenCreate(nil))
	be.mu.Lock()
	be.failMsg = "工号已存在"
	be.mu.Unlock()

	err := form.Submit(ctx, map[string]string{"employee_id": "E1"})
	require.ErrorIs(t, err, backend.ErrApplication)
	require.NotNil(t, form.State())
	require.False(t, session.Idle())
	require.Equal(t, []string{"工号已存在"}, sink.errors)
	require.Empty(t, sink.successes)
}

func TestOpenEditFetchFailure_ModalStaysClosed(t *testing.T) {
	form, _, session, be, sink := newFormFixture(t)
	be.mu.Lock()
	be.getBody = `{"success":false,"message":"员工不存在"}`
	be.mu.Unlock()

	err := form.OpenEdit(context.Background(), "E1")
	require.ErrorIs(t, err, backend.ErrApplication)
	require.Nil(t, form.State())
	require.True(t, session.Idle())
	require.Equal(t, []string{"员工不存在"}, sink.errors)
}

func TestSubmitWhileClosed(t *testing.T) {
	form, _, _, _, _ := newFormFixture(t)
	err := form.Submit(context.Background(), map[string]string{"employee_name": "x"})
	require.ErrorIs(t, err, ErrFormClosed)
}

func TestSecondModalIsRejected(t *testing.T) {
	form, list, session, _, _ := newFormFixture(t)
	confirm := NewDeleteConfirmation(nil, &recordingSink{}, session, map[string]DeleteTarget{
		"employee": {List: list},
	})

	require.NoError(t, form.OpenCreate(nil))
	require.ErrorIs(t, confirm.Request("E1", "employee", "张三"), ErrModalBusy)
	require.ErrorIs(t, form.OpenCreate(nil), ErrModalBusy)

	form.Close()
	require.NoError(t, confirm.Request("E1", "employee", "张三"))
}

func TestSubmitSuccess_RefreshesList(t *testing.T) {
	form, list, _, be, _ := newFormFixture(t)
	ctx := context.Background()

	require.NoError(t, form.OpenCreate(nil))
	be.mu.Lock()
	be.list = `{"success":true,"data":[{"employee_id":"E1"},{"employee_id":"E2"}]}`
	be.mu.Unlock()

	require.NoError(t, form.Submit(ctx, map[string]string{"employee_name": "王五"}))
	require.Len(t, list.Records(), 2)
}
