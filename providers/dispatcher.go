// Package providers - Registration dispatch across an ordered provider
// sequence.
package providers

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// AppendExecutionProviders applies the given providers to the session
// configuration in order, isolating failures per provider.
//
// A provider that registers successfully is logged at info level. A provider
// that fails is skipped unless it was built with ErrorOnFailure, in which case
// its error propagates immediately and the remaining sequence is abandoned.
// Skipped failures are classified: a provider missing from the runtime build
// logs a warning when the platform could have supported it and a debug line
// when it could not; any other failure logs an error.
//
// If no provider in a non-empty sequence registers, a single warning notes
// that the runtime will fall back to its implicit CPU path. An empty sequence
// means the caller intends CPU-only execution and produces no warning. The
// CPU fallback itself is supplied by the runtime; nothing is registered here.
//
// Registration calls block for the duration of each backend's native
// initialization, which may load drivers and take non-trivial wall-clock
// time. There is no cancellation at this layer.
func (o *SessionOptions) AppendExecutionProviders(eps ...Dispatch) error {
	fallbackToCPU := len(eps) > 0

	for _, ep := range eps {
		p := ep.provider

		err := p.Register(o)
		if err == nil {
			logger.Info().
				Str("provider", string(p.Backend())).
				Str("identifier", p.Identifier()).
				Msg("registered execution provider")
			fallbackToCPU = false
			continue
		}

		if ep.errorOnFailure {
			return pkgerrors.Wrapf(err, "registering %s", p.Identifier())
		}

		var notCompiled *FeatureNotCompiledError
		switch {
		case errors.As(err, &notCompiled):
			if p.SupportedByPlatform() {
				logger.Warn().
					Str("provider", string(p.Backend())).
					Err(err).
					Msg("provider not compiled into this runtime build")
			} else {
				logger.Debug().
					Str("provider", string(p.Backend())).
					Err(err).
					Msg("provider not compiled into this runtime build and not supported on this platform")
			}
		default:
			logger.Error().
				Str("provider", string(p.Backend())).
				Err(err).
				Msg("provider registration failed")
		}
	}

	if fallbackToCPU {
		logger.Warn().Msg("no execution providers registered successfully, falling back to CPU")
	}
	return nil
}
