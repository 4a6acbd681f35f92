//go:build darwin || linux || freebsd

package engine

import (
	"github.com/ebitengine/purego"
	"github.com/pkg/errors"
)

// dlopen opens the shared library with RTLD_GLOBAL so that the legacy
// per-provider registration symbols are resolvable by name afterwards.
func dlopen(path string) (uintptr, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, err
	}
	return handle, nil
}

// dlsym resolves a named symbol from the loaded library. A missing symbol is
// reported as ErrSymbolNotFound so callers can treat it as a soft failure.
func dlsym(handle uintptr, name string) (uintptr, error) {
	addr, err := purego.Dlsym(handle, name)
	if err != nil || addr == 0 {
		return 0, errors.Wrapf(ErrSymbolNotFound, "%s", name)
	}
	return addr, nil
}
