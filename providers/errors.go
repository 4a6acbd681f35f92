// Package providers - Error taxonomy for provider registration.
package providers

import "fmt"

// EngineError reports a catastrophic native failure while querying the
// runtime, such as the availability probe itself erroring. It is fatal to the
// current operation, not the process.
type EngineError struct {
	Err error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("runtime engine failure: %v", e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// FeatureNotCompiledError reports that the runtime build does not include the
// requested provider: its registration entry point is absent, or the runtime
// answered "not implemented". The dispatcher downgrades this to a warning (or
// a debug line on platforms where the provider could never work) unless the
// provider opted into ErrorOnFailure.
//
// A failed symbol resolution in dynamic-loading mode produces the same error
// shape, with Symbol naming the missing entry point.
type FeatureNotCompiledError struct {
	Identifier string
	Symbol     string
}

func (e *FeatureNotCompiledError) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("%s is not compiled into this runtime build (missing symbol %s)", e.Identifier, e.Symbol)
	}
	return fmt.Sprintf("%s is not compiled into this runtime build", e.Identifier)
}

// RegistrationError reports that a provider's entry point exists and was
// called, but the runtime returned a non-success status: a bad option
// combination, a missing backend runtime dependency, or an unsupported
// platform at runtime.
type RegistrationError struct {
	Identifier string
	Err        error
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("registering %s failed: %v", e.Identifier, e.Err)
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}
