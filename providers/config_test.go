package providers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "providers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
library_path: /opt/onnxruntime/lib/libonnxruntime.so
providers:
  - backend: cuda
    error_on_failure: true
    options:
      deviceID: "1"
      gpu_mem_limit: "2147483648"
  - backend: coreml
  - backend: cpu
    options:
      useArena: "true"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/onnxruntime/lib/libonnxruntime.so", cfg.LibraryPath)
	require.Len(t, cfg.Providers, 3)
	assert.Equal(t, CUDAProviderBackend, cfg.Providers[0].Backend)
	assert.True(t, cfg.Providers[0].ErrorOnFailure)
	assert.False(t, cfg.Providers[1].ErrorOnFailure)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestConfigDispatchesPreservesOrderAndPolicy(t *testing.T) {
	cfg := &Config{
		Providers: []ProviderConfig{
			{Backend: TensorRTProviderBackend, ErrorOnFailure: true},
			{Backend: CUDAProviderBackend},
			{Backend: CPUProviderBackend, Options: map[string]string{"useArena": "true"}},
		},
	}

	dispatches, err := cfg.Dispatches()
	require.NoError(t, err)
	require.Len(t, dispatches, 3)

	assert.IsType(t, &TensorRTProvider{}, dispatches[0].Provider())
	assert.True(t, dispatches[0].errorOnFailure)
	assert.IsType(t, &CUDAProvider{}, dispatches[1].Provider())
	assert.False(t, dispatches[1].errorOnFailure)
	assert.IsType(t, &CPUProvider{}, dispatches[2].Provider())
}

func TestConfigDispatchesUnknownBackend(t *testing.T) {
	cfg := &Config{Providers: []ProviderConfig{{Backend: "hexagon"}}}

	_, err := cfg.Dispatches()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hexagon")
}

func TestConfigDispatchesArbitraryOptionsForwarded(t *testing.T) {
	eng := newFakeEngine()
	o := newTestSession(t, eng)

	cfg := &Config{
		Providers: []ProviderConfig{
			{
				Backend: CUDAProviderBackend,
				Options: map[string]string{
					"deviceID":      "2",
					"gpu_mem_limit": "1073741824",
				},
			},
		},
	}

	dispatches, err := cfg.Dispatches()
	require.NoError(t, err)
	require.Len(t, dispatches, 1)
	require.NoError(t, dispatches[0].Provider().Register(o))

	require.Len(t, eng.appendCalls, 1)
	got := make(map[string]string)
	for i, key := range eng.appendCalls[0].keys {
		got[key] = eng.appendCalls[0].values[i]
	}
	assert.Equal(t, "2", got["device_id"], "the typed deviceID option maps to the native key")
	assert.Equal(t, "1073741824", got["gpu_mem_limit"], "unclaimed keys pass through untyped")
}

func TestConfigDispatchesAllBackendsConstructible(t *testing.T) {
	backends := []ProviderBackend{
		CPUProviderBackend, CUDAProviderBackend, TensorRTProviderBackend,
		OneDNNProviderBackend, ACLProviderBackend, OpenVINOProviderBackend,
		CoreMLProviderBackend, ROCmProviderBackend, CANNProviderBackend,
		DirectMLProviderBackend, TVMProviderBackend, NNAPIProviderBackend,
		QNNProviderBackend, XNNPACKProviderBackend, ArmNNProviderBackend,
		MIGraphXProviderBackend, VitisAIProviderBackend, RKNPUProviderBackend,
	}

	for _, backend := range backends {
		p, err := newProviderForBackend(backend, nil)
		require.NoError(t, err, "backend %q", backend)
		assert.Equal(t, backend, p.Backend())
	}
}
