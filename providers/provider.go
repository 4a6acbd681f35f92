// Package providers - Execution provider contracts and dispatch.
package providers

// ProviderBackend names a backend kind in configuration and logs.
type ProviderBackend string

// ExecutionProvider represents the contract that all execution providers must
// implement.
type ExecutionProvider interface {
	// Backend returns the short name used in configuration and logging.
	Backend() ProviderBackend

	// Identifier returns the name the native runtime uses internally for this
	// provider. It must exactly match an entry of the runtime's available
	// provider list for the provider to be reported as available.
	Identifier() string

	// SupportedByPlatform reports whether this provider can possibly work on
	// the current platform. The answer is computed once at construction from
	// the target platform and is side-effect free.
	SupportedByPlatform() bool

	// Register attempts to enable this provider on the session configuration.
	// It returns nil on success, a *FeatureNotCompiledError when the runtime
	// build lacks this provider, or a *RegistrationError for any other
	// failure.
	Register(o *SessionOptions) error
}

// Dispatch pairs an execution provider with its failure policy for one
// registration pass. The zero policy is to log failures and fall through to
// the next provider in the sequence.
type Dispatch struct {
	provider       ExecutionProvider
	errorOnFailure bool
}

// NewDispatch wraps an execution provider with the default fail-silently
// policy.
func NewDispatch(p ExecutionProvider) Dispatch {
	return Dispatch{provider: p}
}

// Provider returns the wrapped execution provider.
func (d Dispatch) Provider() ExecutionProvider {
	return d.provider
}

// FailSilently configures registration failures of this provider to be logged
// and skipped. This is the default policy.
func (d Dispatch) FailSilently() Dispatch {
	d.errorOnFailure = false
	return d
}

// ErrorOnFailure configures a registration failure of this provider to abort
// the remaining sequence and propagate to the caller.
func (d Dispatch) ErrorOnFailure() Dispatch {
	d.errorOnFailure = true
	return d
}
