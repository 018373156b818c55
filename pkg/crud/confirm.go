package crud

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/yinyiqing/hotel-backoffice/pkg/backend"
	"github.com/yinyiqing/hotel-backoffice/pkg/notify"
)

// ErrNoPendingDeletion is returned when confirming while nothing is pending.
var ErrNoPendingDeletion = errors.New("crud: no pending deletion")

// ErrUnknownKind is returned for a delete request against an unregistered
// entity kind.
var ErrUnknownKind = errors.New("crud: unknown delete target kind")

// PendingDeletion is the single delete awaiting confirmation.
type PendingDeletion struct {
	TargetID   string
	TargetKind string
	Label      string
}

// DeleteTarget wires one entity kind into the shared confirmation modal.
type DeleteTarget struct {
	// List is the view to re-fetch after a successful delete.
	List *ListView
}

// DeleteConfirmation is the generic "are you sure" modal shared by every
// entity kind on a page. At most one deletion is pending; a new request
// overwrites a stale one.
type DeleteConfirmation struct {
	client  *backend.Client
	sink    notify.Sink
	session *ModalSession
	targets map[string]DeleteTarget

	mu      sync.Mutex
	pending *PendingDeletion
}

func NewDeleteConfirmation(client *backend.Client, sink notify.Sink, session *ModalSession, targets map[string]DeleteTarget) *DeleteConfirmation {
	return &DeleteConfirmation{
		client:  client,
		sink:    sink,
		session: session,
		targets: targets,
	}
}

// Request records the pending deletion and opens the confirmation modal.
func (d *DeleteConfirmation) Request(id, kind, label string) error {
	if _, ok := d.targets[kind]; !ok {
		return errors.Wrap(ErrUnknownKind, kind)
	}
	if err := d.session.acquire(modalConfirm); err != nil {
		return err
	}
	d.mu.Lock()
	d.pending = &PendingDeletion{TargetID: id, TargetKind: kind, Label: label}
	d.mu.Unlock()
	return nil
}

// Pending returns a copy of the pending deletion, or nil.
func (d *DeleteConfirmation) Pending() *PendingDeletion {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending == nil {
		return nil
	}
	p := *d.pending
	return &p
}

// Message is the human-readable confirmation line shown in the modal.
func (d *DeleteConfirmation) Message() string {
	p := d.Pending()
	if p == nil {
		return ""
	}
	target := d.targets[p.TargetKind]
	title := p.TargetKind
	if target.List != nil {
		title = target.List.Config().Title
	}
	return fmt.Sprintf("确定要删除%s \"%s\" 吗？此操作不可恢复！", title, p.Label)
}

// Confirm issues the delete for the pending target. The pending state is
// consumed no matter the outcome: a failed delete is reported, never
// retried. Success triggers a re-fetch of the target kind's list.
func (d *DeleteConfirmation) Confirm(ctx context.Context) error {
	d.mu.Lock()
	p := d.pending
	d.pending = nil
	d.mu.Unlock()
	d.session.release(modalConfirm)

	if p == nil {
		return ErrNoPendingDeletion
	}
	target := d.targets[p.TargetKind]

	_, err := d.client.Delete(ctx, target.List.Config().deletePath(p.TargetID))
	if err != nil {
		if msg, ok := backend.AppMessage(err); ok {
			d.sink.Error(msg)
		} else {
			d.sink.Error("删除失败")
		}
		return err
	}

	d.sink.Success("删除成功")
	if _, err := target.List.Fetch(ctx); err != nil && !errors.Is(err, ErrStaleResponse) {
		return err
	}
	return nil
}

// Cancel clears the pending deletion and hides the modal without any
// network call.
func (d *DeleteConfirmation) Cancel() {
	d.mu.Lock()
	d.pending = nil
	d.mu.Unlock()
	d.session.release(modalConfirm)
}
