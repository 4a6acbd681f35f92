package engine

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrSymbolNotFound reports that a named entry point does not exist in the
// loaded runtime library. Callers treat this as "feature not available" rather
// than a hard failure, since provider registration symbols are only present
// when the runtime was built with that provider.
var ErrSymbolNotFound = errors.New("symbol not found in runtime library")

// OrtErrorCode values as defined by the runtime's C API.
const (
	CodeOK               = 0
	CodeFail             = 1
	CodeInvalidArgument  = 2
	CodeNoSuchFile       = 3
	CodeNoModel          = 4
	CodeEngineError      = 5
	CodeRuntimeException = 6
	CodeInvalidProtobuf  = 7
	CodeModelLoaded      = 8
	CodeNotImplemented   = 9
	CodeInvalidGraph     = 10
	CodeEPFail           = 11
)

// StatusError is a non-success OrtStatus translated into a Go error. The
// native status object is released before a StatusError is returned.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("onnxruntime error %d: %s", e.Code, e.Message)
}
