package engine

import (
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/pkg/errors"
)

// ortAPIVersion is the ORT_API_VERSION this package was written against. The
// runtime returns a nil OrtApi pointer when asked for a version newer than it
// supports.
const ortAPIVersion = 17

// Offsets into the OrtApi function-pointer table. The table is append-only
// across ONNX Runtime releases, so each index is frozen by the C ABI at the
// release that introduced the member. Derived by counting member declarations
// in onnxruntime_c_api.h; the trailing comment gives the member name and the
// release whose block it belongs to.
//
// Every dedicated provider-options block is declared as five consecutive
// members: Append_V2, Create, Update, GetAsString, Release. The per-block
// offsets below are expressed relative to the append entry so the declaration
// pattern is visible at the definition.
const (
	fnGetErrorCode                     = 1   // GetErrorCode, 1.0
	fnGetErrorMessage                  = 2   // GetErrorMessage, 1.0
	fnCreateSessionOptions             = 10  // CreateSessionOptions, 1.0
	fnSetSessionGraphOptimizationLevel = 23  // SetSessionGraphOptimizationLevel, 1.0
	fnSetIntraOpNumThreads             = 24  // SetIntraOpNumThreads, 1.0
	fnSetInterOpNumThreads             = 25  // SetInterOpNumThreads, 1.0
	fnReleaseStatus                    = 93  // ReleaseStatus, 1.0 (release block starts at ReleaseEnv, 92)
	fnReleaseSessionOptions            = 100 // ReleaseSessionOptions, 1.0
	fnGetAvailableProviders            = 125 // GetAvailableProviders, 1.3
	fnReleaseAvailableProviders        = 126 // ReleaseAvailableProviders, 1.3

	fnSessionOptionsAppendExecutionProvider = 215 // SessionOptionsAppendExecutionProvider, 1.12

	fnSessionOptionsAppendEPTensorRTV2 = 170 // SessionOptionsAppendExecutionProvider_TensorRT_V2, 1.8
	fnCreateTensorRTProviderOptions    = fnSessionOptionsAppendEPTensorRTV2 + 1
	fnUpdateTensorRTProviderOptions    = fnSessionOptionsAppendEPTensorRTV2 + 2
	fnReleaseTensorRTProviderOptions   = fnSessionOptionsAppendEPTensorRTV2 + 4

	fnSessionOptionsAppendEPCUDAV2 = 204 // SessionOptionsAppendExecutionProvider_CUDA_V2, 1.11
	fnCreateCUDAProviderOptions    = fnSessionOptionsAppendEPCUDAV2 + 1
	fnUpdateCUDAProviderOptions    = fnSessionOptionsAppendEPCUDAV2 + 2
	fnReleaseCUDAProviderOptions   = fnSessionOptionsAppendEPCUDAV2 + 4

	fnSessionOptionsAppendEPCANN = 219 // SessionOptionsAppendExecutionProvider_CANN, 1.13
	fnCreateCANNProviderOptions  = fnSessionOptionsAppendEPCANN + 1
	fnUpdateCANNProviderOptions  = fnSessionOptionsAppendEPCANN + 2
	fnReleaseCANNProviderOptions = fnSessionOptionsAppendEPCANN + 4
)

const ptrSize = unsafe.Sizeof(uintptr(0))

// bindAPI resolves OrtGetApiBase and asks it for the OrtApi table.
func (l *Library) bindAPI() error {
	getAPIBase, err := dlsym(l.handle, "OrtGetApiBase")
	if err != nil {
		return errors.Wrap(err, "library does not export OrtGetApiBase")
	}

	base, _, _ := purego.SyscallN(getAPIBase)
	if base == 0 {
		return errors.New("OrtGetApiBase returned a nil OrtApiBase")
	}

	// OrtApiBase is a struct of two function pointers; GetApi comes first.
	getAPI := *(*uintptr)(unsafe.Pointer(base))
	api, _, _ := purego.SyscallN(getAPI, uintptr(ortAPIVersion))
	if api == 0 {
		return errors.Errorf("runtime does not support ORT API version %d", ortAPIVersion)
	}

	l.api = api
	return nil
}

// call invokes the OrtApi table entry at index fn and returns its raw result,
// which for most entries is an OrtStatus pointer.
func (l *Library) call(fn int, args ...uintptr) uintptr {
	ptr := *(*uintptr)(unsafe.Pointer(l.api + uintptr(fn)*ptrSize))
	r1, _, _ := purego.SyscallN(ptr, args...)
	return r1
}

// statusError converts an OrtStatus pointer into a *StatusError, releasing the
// status object. A zero status means success and yields nil.
func (l *Library) statusError(status uintptr) error {
	if status == 0 {
		return nil
	}
	defer l.call(fnReleaseStatus, status)

	code := l.call(fnGetErrorCode, status)
	message := goString(l.call(fnGetErrorMessage, status))
	return &StatusError{Code: int(code), Message: message}
}

// goString copies a NUL-terminated C string into a Go string.
func goString(p uintptr) string {
	if p == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(p + uintptr(n))) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}

// cString returns a NUL-terminated copy of s. The backing slice must be kept
// alive (runtime.KeepAlive) for as long as the native side may read it.
func cString(s string) []byte {
	return append([]byte(s), 0)
}

// cStringArray marshals a slice of strings into an array of C string pointers.
// Both return values must be kept alive across the native call.
func cStringArray(values []string) (ptrs []uintptr, pin [][]byte) {
	ptrs = make([]uintptr, len(values))
	pin = make([][]byte, len(values))
	for i, v := range values {
		pin[i] = cString(v)
		ptrs[i] = uintptr(unsafe.Pointer(&pin[i][0]))
	}
	return ptrs, pin
}

// keepAlive pins marshaled C strings until after the native call returns.
func keepAlive(pins ...any) {
	for _, p := range pins {
		runtime.KeepAlive(p)
	}
}
