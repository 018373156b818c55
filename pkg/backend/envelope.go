package backend

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Envelope is the uniform response wrapper every backend endpoint uses.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

var (
	// ErrTransport marks failures where no well-formed envelope was
	// received: connection errors, timeouts, unparseable bodies.
	ErrTransport = errors.New("backend: transport failure")

	// ErrApplication marks envelopes with success=false. The verbatim server
	// message travels in AppError.
	ErrApplication = errors.New("backend: application failure")
)

// AppError carries the server-provided failure message verbatim.
type AppError struct {
	Message string
}

func (e *AppError) Error() string {
	if e.Message == "" {
		return "操作失败"
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return ErrApplication }

// AppMessage extracts the server message when err is an application-level
// failure. ok is false for transport failures and nil errors.
func AppMessage(err error) (string, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message, true
	}
	return "", false
}
