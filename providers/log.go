// Package providers - Logging.
package providers

import (
	"os"

	"github.com/rs/zerolog"
)

// logger receives registration diagnostics. Registration is deliberately
// forgiving: unless a provider opts into ErrorOnFailure, problems surface here
// rather than as returned errors.
var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().
	Timestamp().
	Str("component", "providers").
	Logger()

// SetLogger replaces the logger used for registration diagnostics.
func SetLogger(l zerolog.Logger) {
	logger = l
}
