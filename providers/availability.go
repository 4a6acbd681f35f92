// Package providers - Compiled-in provider availability.
package providers

// IsAvailable reports whether the native runtime was compiled with support
// for p, by matching p's identifier against the runtime's available provider
// list.
//
// A true result does not guarantee the provider is usable for a specific
// session: a model may use unsupported operators, or the provider may fail to
// load its runtime dependencies during registration. Callers that need to
// react to those failures should register the provider with ErrorOnFailure
// and handle the returned error.
func IsAvailable(p ExecutionProvider) (bool, error) {
	eng, err := activeEngine()
	if err != nil {
		return false, &EngineError{Err: err}
	}
	return isAvailableOn(eng, p)
}

func isAvailableOn(eng Engine, p ExecutionProvider) (bool, error) {
	available, err := eng.AvailableProviders()
	if err != nil {
		return false, &EngineError{Err: err}
	}

	for _, identifier := range available {
		if identifier == p.Identifier() {
			return true, nil
		}
	}
	return false, nil
}
