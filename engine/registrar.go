package engine

import (
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/pkg/errors"
)

// Registrar invokes a resolved legacy registration entry point against a
// session configuration. Arguments marshal as C int (int), C uint32 (uint32)
// and NUL-terminated char* (string).
type Registrar func(h SessionHandle, args ...any) error

// Registrar resolves one of the exported legacy
// OrtSessionOptionsAppendExecutionProvider_* entry points by name. These
// symbols only exist when the runtime was built with the corresponding
// provider, so a resolution failure satisfies errors.Is(err, ErrSymbolNotFound)
// and callers downgrade it to "feature not available".
func (l *Library) Registrar(symbol string) (Registrar, error) {
	fn, err := dlsym(l.handle, symbol)
	if err != nil {
		return nil, err
	}

	return func(h SessionHandle, args ...any) error {
		call := make([]uintptr, 0, len(args)+1)
		call = append(call, uintptr(h))

		var pin [][]byte
		for _, arg := range args {
			switch v := arg.(type) {
			case int:
				call = append(call, uintptr(v))
			case uint32:
				call = append(call, uintptr(v))
			case string:
				b := cString(v)
				pin = append(pin, b)
				call = append(call, uintptr(unsafe.Pointer(&b[0])))
			default:
				return errors.Errorf("unsupported registrar argument type %T for %s", arg, symbol)
			}
		}

		status, _, _ := purego.SyscallN(fn, call...)
		keepAlive(pin)
		return l.statusError(status)
	}, nil
}

// AppendProvider registers a provider through the generic
// SessionOptionsAppendExecutionProvider entry point using parallel key/value
// option arrays. keys and values must have equal length; the marshaled views
// are only live for the duration of the call.
func (l *Library) AppendProvider(h SessionHandle, name string, keys, values []string) error {
	if len(keys) != len(values) {
		return errors.Errorf("mismatched option arrays for %s: %d keys, %d values", name, len(keys), len(values))
	}

	cname := cString(name)
	keyPtrs, keyPin := cStringArray(keys)
	valuePtrs, valuePin := cStringArray(values)

	var keyArg, valueArg uintptr
	if len(keys) > 0 {
		keyArg = uintptr(unsafe.Pointer(&keyPtrs[0]))
		valueArg = uintptr(unsafe.Pointer(&valuePtrs[0]))
	}

	status := l.call(fnSessionOptionsAppendExecutionProvider,
		uintptr(h),
		uintptr(unsafe.Pointer(&cname[0])),
		keyArg,
		valueArg,
		uintptr(len(keys)),
	)
	keepAlive(cname, keyPtrs, keyPin, valuePtrs, valuePin)
	return l.statusError(status)
}

// providerOptionsV2 describes the dedicated create/update/append/release entry
// quadruple used by providers that configure through a native options object.
type providerOptionsV2 struct {
	create  int
	update  int
	append_ int
	release int
}

var v2Providers = map[string]providerOptionsV2{
	"CUDA": {
		create:  fnCreateCUDAProviderOptions,
		update:  fnUpdateCUDAProviderOptions,
		append_: fnSessionOptionsAppendEPCUDAV2,
		release: fnReleaseCUDAProviderOptions,
	},
	"TensorRT": {
		create:  fnCreateTensorRTProviderOptions,
		update:  fnUpdateTensorRTProviderOptions,
		append_: fnSessionOptionsAppendEPTensorRTV2,
		release: fnReleaseTensorRTProviderOptions,
	},
	"CANN": {
		create:  fnCreateCANNProviderOptions,
		update:  fnUpdateCANNProviderOptions,
		append_: fnSessionOptionsAppendEPCANN,
		release: fnReleaseCANNProviderOptions,
	},
}

// AppendProviderV2 registers a provider through its dedicated native options
// object: create, apply key/value updates, append to the session options, and
// release the object on every exit path.
func (l *Library) AppendProviderV2(h SessionHandle, name string, keys, values []string) error {
	table, ok := v2Providers[name]
	if !ok {
		return errors.Errorf("provider %s has no dedicated options entry points", name)
	}
	if len(keys) != len(values) {
		return errors.Errorf("mismatched option arrays for %s: %d keys, %d values", name, len(keys), len(values))
	}

	var opts uintptr
	if err := l.statusError(l.call(table.create, uintptr(unsafe.Pointer(&opts)))); err != nil {
		return errors.Wrapf(err, "creating %s provider options", name)
	}
	defer l.call(table.release, opts)

	if len(keys) > 0 {
		keyPtrs, keyPin := cStringArray(keys)
		valuePtrs, valuePin := cStringArray(values)
		status := l.call(table.update,
			opts,
			uintptr(unsafe.Pointer(&keyPtrs[0])),
			uintptr(unsafe.Pointer(&valuePtrs[0])),
			uintptr(len(keys)),
		)
		keepAlive(keyPtrs, keyPin, valuePtrs, valuePin)
		if err := l.statusError(status); err != nil {
			return errors.Wrapf(err, "updating %s provider options", name)
		}
	}

	return l.statusError(l.call(table.append_, uintptr(h), opts))
}
