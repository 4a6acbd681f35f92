//go:build windows

package engine

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

func dlopen(path string) (uintptr, error) {
	handle, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, err
	}
	return uintptr(handle), nil
}

// dlsym resolves a named symbol from the loaded library. A missing symbol is
// reported as ErrSymbolNotFound so callers can treat it as a soft failure.
func dlsym(handle uintptr, name string) (uintptr, error) {
	addr, err := windows.GetProcAddress(windows.Handle(handle), name)
	if err != nil || addr == 0 {
		return 0, errors.Wrapf(ErrSymbolNotFound, "%s", name)
	}
	return addr, nil
}
