// Package providers - Shared registration plumbing.
package providers

import (
	"errors"

	"github.com/nvr-ai/go-ort/engine"
)

// registerLegacy resolves a legacy OrtSessionOptionsAppendExecutionProvider_*
// entry point and invokes it. Missing-symbol handling is centralized here so
// every backend degrades the same way: the symbol only exists when the runtime
// was built with that provider, so resolution failure becomes a
// *FeatureNotCompiledError instead of a crash.
func registerLegacy(o *SessionOptions, p ExecutionProvider, symbol string, args ...any) error {
	registrar, err := o.engine.Registrar(symbol)
	if err != nil {
		if errors.Is(err, engine.ErrSymbolNotFound) {
			return &FeatureNotCompiledError{Identifier: p.Identifier(), Symbol: symbol}
		}
		return &RegistrationError{Identifier: p.Identifier(), Err: err}
	}

	if err := registrar(o.handle, args...); err != nil {
		return &RegistrationError{Identifier: p.Identifier(), Err: err}
	}
	return nil
}

// registerKV registers through the generic key/value entry point.
func registerKV(o *SessionOptions, p ExecutionProvider, name string, opts *ProviderOptions) error {
	keys, values := opts.foreignView()
	return classifyAppend(p, o.engine.AppendProvider(o.handle, name, keys, values))
}

// registerV2 registers through a provider's dedicated native options object.
func registerV2(o *SessionOptions, p ExecutionProvider, name string, opts *ProviderOptions) error {
	keys, values := opts.foreignView()
	return classifyAppend(p, o.engine.AppendProviderV2(o.handle, name, keys, values))
}

// classifyAppend converts an engine-level append failure into the package
// error taxonomy. The runtime reports a provider missing from its build
// either as an unresolvable symbol or as a not-implemented status; both mean
// the same thing to the dispatcher.
func classifyAppend(p ExecutionProvider, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, engine.ErrSymbolNotFound) {
		return &FeatureNotCompiledError{Identifier: p.Identifier()}
	}

	var status *engine.StatusError
	if errors.As(err, &status) && status.Code == engine.CodeNotImplemented {
		return &FeatureNotCompiledError{Identifier: p.Identifier()}
	}
	return &RegistrationError{Identifier: p.Identifier(), Err: err}
}

// boolToInt marshals a Go bool for a C int registrar argument.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
