package crud

import (
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/yinyiqing/hotel-backoffice/pkg/backend"
	"github.com/yinyiqing/hotel-backoffice/pkg/notify"
)

// FormMode tags whether the open form creates a new record or edits an
// existing one. The write verb is chosen from this tag alone, never from
// the truthiness of an id string.
type FormMode int

const (
	ModeCreate FormMode = iota
	ModeEdit
)

func (m FormMode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// ErrFormClosed is returned when submitting while no form modal is open.
var ErrFormClosed = errors.New("crud: no form modal is open")

// FormState is the live state of the record modal. It exists only between
// open and close; a successful submit or an explicit close destroys it.
type FormState struct {
	Mode     FormMode
	TargetID string
	Fields   map[string]string
}

// RecordForm owns the create/edit modal for one entity kind.
type RecordForm struct {
	cfg     Config
	client  *backend.Client
	sink    notify.Sink
	session *ModalSession
	list    *ListView

	mu    sync.Mutex
	state *FormState
}

func NewRecordForm(client *backend.Client, sink notify.Sink, session *ModalSession, list *ListView) *RecordForm {
	return &RecordForm{
		cfg:     list.Config(),
		client:  client,
		sink:    sink,
		session: session,
		list:    list,
	}
}

// OpenCreate opens the modal in create mode with the given field defaults
// and no target id.
func (f *RecordForm) OpenCreate(defaults map[string]string) error {
	if err := f.session.acquire(modalForm); err != nil {
		return err
	}
	fields := make(map[string]string, len(defaults))
	for k, v := range defaults {
		fields[k] = v
	}
	f.mu.Lock()
	f.state = &FormState{Mode: ModeCreate, Fields: fields}
	f.mu.Unlock()
	return nil
}

// OpenEdit fetches the record by id and opens the modal in edit mode with
// every field null-coalesced to the empty string. On any failure the modal
// stays closed and the error is reported.
func (f *RecordForm) OpenEdit(ctx context.Context, id string) error {
	if err := f.session.acquire(modalForm); err != nil {
		return err
	}

	var rec Record
	if err := f.client.Get(ctx, f.cfg.getPath(id), &rec); err != nil {
		f.session.release(modalForm)
		if msg, ok := backend.AppMessage(err); ok {
			f.sink.Error(msg)
		} else {
			f.sink.Error("获取" + f.cfg.Title + "信息失败")
		}
		return err
	}

	fields := make(map[string]string, len(rec))
	for key := range rec {
		fields[key] = rec.Str(key)
	}
	f.mu.Lock()
	f.state = &FormState{Mode: ModeEdit, TargetID: id, Fields: fields}
	f.mu.Unlock()
	return nil
}

// OpenEditRecord opens the modal in edit mode from an already cached
// record, for entity kinds without a single-record endpoint.
func (f *RecordForm) OpenEditRecord(id string, rec Record) error {
	if err := f.session.acquire(modalForm); err != nil {
		return err
	}
	fields := make(map[string]string, len(rec))
	for key := range rec {
		fields[key] = rec.Str(key)
	}
	f.mu.Lock()
	f.state = &FormState{Mode: ModeEdit, TargetID: id, Fields: fields}
	f.mu.Unlock()
	return nil
}

// State returns a copy of the live form state, or nil when closed.
func (f *RecordForm) State() *FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == nil {
		return nil
	}
	fields := make(map[string]string, len(f.state.Fields))
	for k, v := range f.state.Fields {
		fields[k] = v
	}
	return &FormState{Mode: f.state.Mode, TargetID: f.state.TargetID, Fields: fields}
}

// Submit transmits the form values. Empty strings become explicit nulls so
// the backend can distinguish a cleared field from an untouched one. Create
// posts to the create endpoint; edit puts to the update endpoint for the
// target id, with the mode tag as the only signal. Success closes the modal and
// re-fetches the list before anything else renders; failure leaves the modal
// open with the server message shown verbatim.
func (f *RecordForm) Submit(ctx context.Context, values map[string]string) error {
	f.mu.Lock()
	state := f.state
	f.mu.Unlock()
	if state == nil {
		return ErrFormClosed
	}

	payload := make(map[string]any, len(values))
	for _, key := range sortedKeys(values) {
		if values[key] == "" {
			payload[key] = nil
		} else {
			payload[key] = values[key]
		}
	}

	var err error
	if state.Mode == ModeEdit {
		_, err = f.client.PutJSON(ctx, f.cfg.updatePath(state.TargetID), payload)
	} else {
		_, err = f.client.PostJSON(ctx, f.cfg.CreatePath, payload)
	}
	if err != nil {
		if msg, ok := backend.AppMessage(err); ok {
			f.sink.Error(msg)
		} else {
			f.sink.Error("保存" + f.cfg.Title + "失败")
		}
		return err
	}

	f.Close()
	f.sink.Success(f.cfg.Title + "保存成功")
	if _, err := f.list.Fetch(ctx); err != nil && !errors.Is(err, ErrStaleResponse) {
		return err
	}
	return nil
}

// Close resets the form state and releases the modal without submitting.
func (f *RecordForm) Close() {
	f.mu.Lock()
	f.state = nil
	f.mu.Unlock()
	f.session.release(modalForm)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
