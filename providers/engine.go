// Package providers - Native runtime boundary.
package providers

import (
	"sync"

	"github.com/nvr-ai/go-ort/engine"
)

// Engine is the slice of the native runtime this package registers providers
// against. engine.Library implements it; tests substitute fakes through
// SetEngine or the NewSessionOptions argument.
type Engine interface {
	// AvailableProviders returns the provider identifiers compiled into the
	// runtime. An empty result is valid.
	AvailableProviders() ([]string, error)

	// NewSessionOptions creates a native session configuration handle.
	NewSessionOptions() (engine.SessionHandle, error)

	// ReleaseSessionOptions frees a handle created by NewSessionOptions.
	ReleaseSessionOptions(h engine.SessionHandle)

	// AppendProvider registers through the generic key/value entry point.
	AppendProvider(h engine.SessionHandle, name string, keys, values []string) error

	// AppendProviderV2 registers through a provider's dedicated native
	// options object (CUDA, TensorRT, CANN).
	AppendProviderV2(h engine.SessionHandle, name string, keys, values []string) error

	// Registrar resolves a legacy registration entry point by symbol name.
	Registrar(symbol string) (engine.Registrar, error)
}

// defaultEngine is process-wide: the loaded runtime library on first use, or
// whatever SetEngine installed. Guarded by engineMu; sessions may be
// constructed from multiple goroutines.
var (
	engineMu      sync.Mutex
	defaultEngine Engine
)

// SetEngine overrides the runtime boundary used when no explicit engine is
// passed. Intended for embedding and tests.
func SetEngine(e Engine) {
	engineMu.Lock()
	defaultEngine = e
	engineMu.Unlock()
}

// activeEngine returns the installed engine, loading the shared runtime
// library on first use.
func activeEngine() (Engine, error) {
	engineMu.Lock()
	defer engineMu.Unlock()

	if defaultEngine != nil {
		return defaultEngine, nil
	}
	lib, err := engine.Default()
	if err != nil {
		return nil, err
	}
	defaultEngine = lib
	return lib, nil
}
