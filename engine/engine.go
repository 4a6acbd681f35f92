// Package engine loads the ONNX Runtime shared library at runtime and exposes
// the narrow slice of its C API that execution-provider registration needs.
//
// The library handle is process-wide state: it is loaded once on first use and
// never unloaded, since unloading a native inference runtime mid-process is
// unsafe in general. Every raw OrtStatus returned by a native call is converted
// into a Go error at the call boundary; no foreign status value escapes this
// package.
package engine

import (
	"os"
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

// SessionHandle is an opaque pointer to a native OrtSessionOptions object.
type SessionHandle uintptr

// Library wraps a loaded ONNX Runtime shared library and its OrtApi table.
type Library struct {
	handle uintptr
	api    uintptr
}

var (
	sharedLibraryPath string

	defaultOnce sync.Once
	defaultLib  *Library
	defaultErr  error
)

// SetSharedLibraryPath overrides the path used by Default to locate the
// runtime. It must be called before the first call to Default; later calls
// have no effect on the already-loaded library.
func SetSharedLibraryPath(path string) {
	sharedLibraryPath = path
}

// SharedLibraryPath returns the path Default will load the runtime from: an
// explicit SetSharedLibraryPath value, the ONNXRUNTIME_SHARED_LIBRARY_PATH
// environment variable, or a platform-specific default name resolved through
// the system loader search path.
func SharedLibraryPath() string {
	if sharedLibraryPath != "" {
		return sharedLibraryPath
	}
	if env := os.Getenv("ONNXRUNTIME_SHARED_LIBRARY_PATH"); env != "" {
		return env
	}
	return defaultSharedLibraryName()
}

// defaultSharedLibraryName returns the conventional runtime library name for
// the current platform.
func defaultSharedLibraryName() string {
	switch runtime.GOOS {
	case "windows":
		return "onnxruntime.dll"
	case "darwin":
		return "libonnxruntime.dylib"
	default:
		return "libonnxruntime.so"
	}
}

// Default returns the process-wide runtime library, loading it on first use.
// The load happens at most once; a failed load is sticky and reported to every
// caller.
func Default() (*Library, error) {
	defaultOnce.Do(func() {
		defaultLib, defaultErr = Load(SharedLibraryPath())
	})
	return defaultLib, defaultErr
}

// Load opens the runtime shared library at path and binds its OrtApi table.
func Load(path string) (*Library, error) {
	handle, err := dlopen(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading onnxruntime library from %s", path)
	}

	lib := &Library{handle: handle}
	if err := lib.bindAPI(); err != nil {
		return nil, err
	}
	return lib, nil
}
