package engine

import (
	"unsafe"

	"github.com/pkg/errors"
)

// GraphOptimizationLevel mirrors the runtime's GraphOptimizationLevel enum.
type GraphOptimizationLevel int

const (
	GraphOptimizationLevelDisableAll     GraphOptimizationLevel = 0
	GraphOptimizationLevelEnableBasic    GraphOptimizationLevel = 1
	GraphOptimizationLevelEnableExtended GraphOptimizationLevel = 2
	GraphOptimizationLevelEnableAll      GraphOptimizationLevel = 99
)

// NewSessionOptions creates a native OrtSessionOptions object. The caller owns
// the handle and must release it with ReleaseSessionOptions.
func (l *Library) NewSessionOptions() (SessionHandle, error) {
	var handle uintptr
	status := l.call(fnCreateSessionOptions, uintptr(unsafe.Pointer(&handle)))
	if err := l.statusError(status); err != nil {
		return 0, errors.Wrap(err, "creating session options")
	}
	return SessionHandle(handle), nil
}

// ReleaseSessionOptions frees a native OrtSessionOptions object.
func (l *Library) ReleaseSessionOptions(h SessionHandle) {
	if h != 0 {
		l.call(fnReleaseSessionOptions, uintptr(h))
	}
}

// SetIntraOpNumThreads sets the thread count for parallelizing execution
// inside individual graph nodes. Zero lets the runtime pick a default.
func (l *Library) SetIntraOpNumThreads(h SessionHandle, n int) error {
	return l.statusError(l.call(fnSetIntraOpNumThreads, uintptr(h), uintptr(n)))
}

// SetInterOpNumThreads sets the thread count for executing independent graph
// nodes in parallel. Zero lets the runtime pick a default.
func (l *Library) SetInterOpNumThreads(h SessionHandle, n int) error {
	return l.statusError(l.call(fnSetInterOpNumThreads, uintptr(h), uintptr(n)))
}

// SetGraphOptimizationLevel controls graph rewrites (fusion, constant folding)
// applied when a model is loaded against these options.
func (l *Library) SetGraphOptimizationLevel(h SessionHandle, level GraphOptimizationLevel) error {
	return l.statusError(l.call(fnSetSessionGraphOptimizationLevel, uintptr(h), uintptr(level)))
}
