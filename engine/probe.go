package engine

import (
	"unsafe"

	"github.com/pkg/errors"
)

// AvailableProviders queries the runtime for the set of execution provider
// identifiers it was compiled with. An empty result is valid and means only
// the default CPU path exists.
//
// The runtime allocates the returned array; it is released here on every exit
// path before results or errors reach the caller. A nil array pointer is
// tolerated even when a non-zero count was reported, since that inconsistency
// originates in the native side and cannot be validated further here.
func (l *Library) AvailableProviders() ([]string, error) {
	var raw uintptr
	var count int32

	status := l.call(fnGetAvailableProviders,
		uintptr(unsafe.Pointer(&raw)),
		uintptr(unsafe.Pointer(&count)),
	)
	if err := l.statusError(status); err != nil {
		return nil, errors.Wrap(err, "querying available providers")
	}
	if raw == 0 || count <= 0 {
		return nil, nil
	}

	return collectProviderNames(int(count),
		func(i int) (string, error) { return l.providerNameAt(raw, i) },
		func() { l.call(fnReleaseAvailableProviders, raw, uintptr(count)) },
	)
}

// providerNameAt extracts the i-th identifier from the native provider array.
func (l *Library) providerNameAt(raw uintptr, i int) (string, error) {
	entry := *(*uintptr)(unsafe.Pointer(raw + uintptr(i)*ptrSize))
	if entry == 0 {
		return "", errors.Errorf("provider list entry %d is nil", i)
	}
	return goString(entry), nil
}

// collectProviderNames iterates count entries and guarantees release runs
// exactly once, including when extraction fails partway through.
func collectProviderNames(count int, entry func(i int) (string, error), release func()) ([]string, error) {
	defer release()

	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		name, err := entry(i)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}
