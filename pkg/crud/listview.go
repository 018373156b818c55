package crud

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/yinyiqing/hotel-backoffice/pkg/backend"
	"github.com/yinyiqing/hotel-backoffice/pkg/notify"
)

// ErrStaleResponse marks a fetch whose response arrived after a newer fetch
// for the same list was issued; its result is discarded instead of
// overwriting fresher state.
var ErrStaleResponse = errors.New("crud: stale fetch response discarded")

// ListView owns the cached record list for one entity kind. The cache is
// replaced wholesale on every successful fetch and is the sole source of
// truth for client-side filtering; no partial-row mutation ever happens
// after a write.
type ListView struct {
	cfg    Config
	client *backend.Client
	sink   notify.Sink

	mu      sync.Mutex
	records []Record
	issued  uint64 // sequence of the most recently issued fetch
	applied uint64 // sequence of the fetch whose result is current
}

func NewListView(client *backend.Client, sink notify.Sink, cfg Config) *ListView {
	return &ListView{cfg: cfg, client: client, sink: sink}
}

func (v *ListView) Config() Config { return v.cfg }

// Fetch reads the full collection and replaces the cached state.
//
// Failure handling follows one canonical behavior for every entity kind:
// an application-level failure whose message matches the configured
// empty-message class is an empty-but-valid result; any other application
// failure clears the table and surfaces the server message verbatim; a
// transport failure keeps the previous state in place and reports a generic
// load-failure notification. A response that is no longer the latest issued
// fetch for this list is discarded.
func (v *ListView) Fetch(ctx context.Context) ([]Record, error) {
	v.mu.Lock()
	v.issued++
	seq := v.issued
	v.mu.Unlock()

	var records []Record
	err := v.client.Get(ctx, v.cfg.ListPath, &records)

	v.mu.Lock()
	defer v.mu.Unlock()
	if seq < v.issued {
		return nil, ErrStaleResponse
	}

	switch {
	case err == nil:
		if records == nil {
			records = []Record{}
		}
		v.records = records
		v.applied = seq
		return v.snapshot(), nil
	case errors.Is(err, backend.ErrApplication):
		msg, _ := backend.AppMessage(err)
		v.records = []Record{}
		v.applied = seq
		if v.cfg.IsEmptyMessage(msg) {
			return v.snapshot(), nil
		}
		v.sink.Error(msg)
		return v.snapshot(), err
	default:
		v.sink.Error("加载" + v.cfg.Title + "列表失败")
		return nil, err
	}
}

// Records returns a copy of the cached list in fetch order.
func (v *ListView) Records() []Record {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshot()
}

// Find returns the cached record with the given identity value.
func (v *ListView) Find(id string) (Record, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, rec := range v.records {
		if rec.Str(v.cfg.IDField) == id {
			return rec, true
		}
	}
	return nil, false
}

// Filter applies the AND of the given predicates over the cached state,
// preserving fetch order and never mutating the cache.
func (v *ListView) Filter(preds ...Predicate) []Record {
	v.mu.Lock()
	records := v.snapshot()
	v.mu.Unlock()

	pred := And(preds...)
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Render maps records to table rows. Each computed cell is a pure function
// of its record, so rendering the same records always yields the same table.
func (v *ListView) Render(records []Record) Table {
	columns := make([]string, len(v.cfg.Columns))
	for i, col := range v.cfg.Columns {
		columns[i] = col.Title
	}
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		row := Row{ID: rec.Str(v.cfg.IDField)}
		for _, col := range v.cfg.Columns {
			row.Cells = append(row.Cells, v.cfg.cell(col, rec))
		}
		rows = append(rows, row)
	}
	return Table{Columns: columns, Rows: rows}
}

func (v *ListView) snapshot() []Record {
	out := make([]Record, len(v.records))
	copy(out, v.records)
	return out
}
