// Package providers - Target platform predicates.
package providers

import "runtime"

// osIsOneOf reports whether the target OS is one of names. Evaluated once per
// provider at construction.
func osIsOneOf(names ...string) bool {
	for _, name := range names {
		if runtime.GOOS == name {
			return true
		}
	}
	return false
}

// archIsARM reports whether the target is a 32- or 64-bit ARM platform.
func archIsARM() bool {
	return runtime.GOARCH == "arm" || runtime.GOARCH == "arm64"
}

// archIsARM64 reports whether the target is a 64-bit ARM platform.
func archIsARM64() bool {
	return runtime.GOARCH == "arm64"
}
