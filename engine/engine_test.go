package engine

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSharedLibraryPathPrecedence(t *testing.T) {
	previous := sharedLibraryPath
	t.Cleanup(func() { sharedLibraryPath = previous })

	sharedLibraryPath = ""
	t.Setenv("ONNXRUNTIME_SHARED_LIBRARY_PATH", "")
	assert.Equal(t, defaultSharedLibraryName(), SharedLibraryPath())

	t.Setenv("ONNXRUNTIME_SHARED_LIBRARY_PATH", "/opt/ort/libonnxruntime.so")
	assert.Equal(t, "/opt/ort/libonnxruntime.so", SharedLibraryPath())

	SetSharedLibraryPath("/explicit/libonnxruntime.so")
	assert.Equal(t, "/explicit/libonnxruntime.so", SharedLibraryPath(),
		"an explicit path wins over the environment")
}

func TestDefaultSharedLibraryName(t *testing.T) {
	name := defaultSharedLibraryName()
	switch runtime.GOOS {
	case "windows":
		assert.Equal(t, "onnxruntime.dll", name)
	case "darwin":
		assert.Equal(t, "libonnxruntime.dylib", name)
	default:
		assert.Equal(t, "libonnxruntime.so", name)
	}
}
