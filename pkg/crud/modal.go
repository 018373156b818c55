package crud

import (
	"sync"

	"github.com/pkg/errors"
)

// ErrModalBusy is returned when a modal would open while another one is
// already visible. Exactly one modal may be open at a time; callers must
// close the current one first.
var ErrModalBusy = errors.New("crud: another modal is already open")

type modalKind int

const (
	modalNone modalKind = iota
	modalForm
	modalConfirm
)

// ModalSession enforces the single-visible-modal invariant shared by the
// record form and the delete confirmation.
type ModalSession struct {
	mu   sync.Mutex
	open modalKind
}

func NewModalSession() *ModalSession {
	return &ModalSession{}
}

func (s *ModalSession) acquire(kind modalKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// A repeated confirmation request overwrites the stale pending target
	// rather than stacking a second modal.
	if s.open != modalNone && !(s.open == kind && kind == modalConfirm) {
		return ErrModalBusy
	}
	s.open = kind
	return nil
}

func (s *ModalSession) release(kind modalKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open == kind {
		s.open = modalNone
	}
}

// Idle reports whether no modal is open.
func (s *ModalSession) Idle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open == modalNone
}
