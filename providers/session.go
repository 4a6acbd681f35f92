// Package providers - Session configuration handle.
package providers

import (
	"github.com/nvr-ai/go-ort/engine"
	"github.com/pkg/errors"
)

// SessionOptions is the mutable session configuration providers register
// against. It owns a native OrtSessionOptions handle for its lifetime.
//
// A SessionOptions belongs to a single session-construction call on a single
// goroutine; it holds no state shared across sessions.
type SessionOptions struct {
	engine Engine
	handle engine.SessionHandle
}

// NewSessionOptions creates a session configuration against eng. Passing nil
// uses the process-wide runtime library, loading it on first use.
func NewSessionOptions(eng Engine) (*SessionOptions, error) {
	if eng == nil {
		var err error
		eng, err = activeEngine()
		if err != nil {
			return nil, errors.Wrap(err, "loading runtime library")
		}
	}

	handle, err := eng.NewSessionOptions()
	if err != nil {
		return nil, errors.Wrap(err, "creating session options")
	}

	return &SessionOptions{engine: eng, handle: handle}, nil
}

// Handle exposes the native session options pointer for session construction.
func (o *SessionOptions) Handle() engine.SessionHandle {
	return o.handle
}

// Close releases the native session options handle. Close is idempotent.
func (o *SessionOptions) Close() error {
	if o.handle != 0 {
		o.engine.ReleaseSessionOptions(o.handle)
		o.handle = 0
	}
	return nil
}
