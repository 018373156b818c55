package notify

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Sink receives transient success/error notifications. Controllers report
// every user-visible outcome here; the rendering layer decides how the
// notices reach the user.
type Sink interface {
	Success(message string)
	Error(message string)
}

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Notice struct {
	Level   Level
	Message string
}

// Flash buffers notices until the next page render drains them, and mirrors
// every notice to the logger so failures are never silently swallowed.
type Flash struct {
	logger *logrus.Logger

	mu      sync.Mutex
	pending []Notice
}

func NewFlash(logger *logrus.Logger) *Flash {
	return &Flash{logger: logger}
}

func (f *Flash) Success(message string) {
	f.logger.WithField("notice", message).Info("notification")
	f.push(Notice{Level: LevelSuccess, Message: message})
}

func (f *Flash) Error(message string) {
	f.logger.WithField("notice", message).Warn("notification")
	f.push(Notice{Level: LevelError, Message: message})
}

func (f *Flash) push(n Notice) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = append(f.pending, n)
}

// Drain returns buffered notices and clears the buffer.
func (f *Flash) Drain() []Notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.pending
	f.pending = nil
	return out
}
