// Package providers - Arbitrary key/value provider configuration.
package providers

import (
	"fmt"
	"strings"
)

// ProviderOptions accumulates string-keyed configuration for providers that
// expose more options than are statically modeled. Keys keep their insertion
// order and later writes to the same key overwrite the earlier value.
//
// A ProviderOptions is owned by exactly one provider instance. The view
// produced by foreignView is only valid until the bag is mutated or the
// registration call it was built for returns.
type ProviderOptions struct {
	keys   []string
	values map[string]string
}

// NewProviderOptions returns an empty option bag.
func NewProviderOptions() *ProviderOptions {
	return &ProviderOptions{values: make(map[string]string)}
}

// Set stores value under key, overwriting any existing entry.
//
// Keys and values containing a NUL byte can never be valid configuration for
// the native runtime, so passing one is a programmer error and panics rather
// than returning a runtime error.
func (o *ProviderOptions) Set(key, value string) {
	if strings.ContainsRune(key, 0) {
		panic(fmt.Sprintf("providers: option key %q contains a NUL byte", key))
	}
	if strings.ContainsRune(value, 0) {
		panic(fmt.Sprintf("providers: option value for key %q contains a NUL byte", key))
	}

	if o.values == nil {
		o.values = make(map[string]string)
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Len returns the number of distinct keys set on the bag.
func (o *ProviderOptions) Len() int {
	return len(o.keys)
}

// foreignView produces parallel key and value slices of equal length, in
// insertion order, for marshaling to the native runtime's key/value arrays.
func (o *ProviderOptions) foreignView() (keys, values []string) {
	keys = make([]string, len(o.keys))
	values = make([]string, len(o.keys))
	for i, k := range o.keys {
		keys[i] = k
		values[i] = o.values[k]
	}
	return keys, values
}
