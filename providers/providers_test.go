package providers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-ort/engine"
)

func TestAllProvidersIdentifiersCanonical(t *testing.T) {
	want := map[ProviderBackend]string{
		CUDAProviderBackend:     "CUDAExecutionProvider",
		TensorRTProviderBackend: "TensorrtExecutionProvider",
		OneDNNProviderBackend:   "DnnlExecutionProvider",
		ACLProviderBackend:      "ACLExecutionProvider",
		OpenVINOProviderBackend: "OpenVINOExecutionProvider",
		CoreMLProviderBackend:   "CoreMLExecutionProvider",
		ROCmProviderBackend:     "ROCMExecutionProvider",
		CANNProviderBackend:     "CANNExecutionProvider",
		DirectMLProviderBackend: "DmlExecutionProvider",
		TVMProviderBackend:      "TvmExecutionProvider",
		NNAPIProviderBackend:    "NnapiExecutionProvider",
		QNNProviderBackend:      "QNNExecutionProvider",
		XNNPACKProviderBackend:  "XnnpackExecutionProvider",
		ArmNNProviderBackend:    "ArmNNExecutionProvider",
		MIGraphXProviderBackend: "MIGraphXExecutionProvider",
		VitisAIProviderBackend:  "VitisAIExecutionProvider",
		RKNPUProviderBackend:    "RknpuExecutionProvider",
		CPUProviderBackend:      "CPUExecutionProvider",
	}

	all := AllProviders()
	require.Len(t, all, len(want))

	seen := make(map[string]bool, len(all))
	for _, p := range all {
		identifier, ok := want[p.Backend()]
		require.True(t, ok, "unexpected backend %q", p.Backend())
		assert.Equal(t, identifier, p.Identifier())
		assert.False(t, seen[p.Identifier()], "duplicate identifier %q", p.Identifier())
		seen[p.Identifier()] = true
	}
}

func TestCPUProviderAlwaysSupported(t *testing.T) {
	assert.True(t, NewCPUProvider(CPUOptions{}).SupportedByPlatform())
}

func TestRegisterLegacyInvokesSymbol(t *testing.T) {
	eng := newFakeEngine()
	o := newTestSession(t, eng)

	p := NewOneDNNProvider(OneDNNOptions{UseArena: true})
	require.NoError(t, p.Register(o))

	require.Len(t, eng.registrarCalls, 1)
	call := eng.registrarCalls[0]
	assert.Equal(t, "OrtSessionOptionsAppendExecutionProvider_Dnnl", call.symbol)
	assert.Equal(t, []any{1}, call.args)
}

func TestRegisterLegacyMissingSymbol(t *testing.T) {
	eng := newFakeEngine()
	eng.missingSymbols["OrtSessionOptionsAppendExecutionProvider_Dnnl"] = true
	o := newTestSession(t, eng)

	err := NewOneDNNProvider(OneDNNOptions{}).Register(o)

	var notCompiled *FeatureNotCompiledError
	require.ErrorAs(t, err, &notCompiled)
	assert.Equal(t, "DnnlExecutionProvider", notCompiled.Identifier)
	assert.Equal(t, "OrtSessionOptionsAppendExecutionProvider_Dnnl", notCompiled.Symbol)
}

func TestRegisterLegacyRuntimeFailure(t *testing.T) {
	eng := newFakeEngine()
	eng.registrarErr["OrtSessionOptionsAppendExecutionProvider_CPU"] = &engine.StatusError{
		Code:    engine.CodeFail,
		Message: "arena init failed",
	}
	o := newTestSession(t, eng)

	err := NewCPUProvider(CPUOptions{}).Register(o)

	var regErr *RegistrationError
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, "CPUExecutionProvider", regErr.Identifier)
}

func TestRegisterKVPassesOptions(t *testing.T) {
	eng := newFakeEngine()
	o := newTestSession(t, eng)

	p := NewXNNPACKProvider(XNNPACKOptions{IntraOpNumThreads: 4}).
		WithArbitraryConfig("experimental_flag", "1")
	require.NoError(t, p.Register(o))

	require.Len(t, eng.appendCalls, 1)
	call := eng.appendCalls[0]
	assert.False(t, call.v2)
	assert.Equal(t, "XNNPACK", call.name)
	assert.Equal(t, []string{"intra_op_num_threads", "experimental_flag"}, call.keys)
	assert.Equal(t, []string{"4", "1"}, call.values)
}

func TestRegisterV2PassesOptions(t *testing.T) {
	eng := newFakeEngine()
	o := newTestSession(t, eng)

	p := NewCUDAProvider(CUDAOptions{DeviceID: 1, GPUMemLimit: 2147483648}).
		WithArbitraryConfig("prefer_nhwc", "1")
	require.NoError(t, p.Register(o))

	require.Len(t, eng.appendCalls, 1)
	call := eng.appendCalls[0]
	assert.True(t, call.v2)
	assert.Equal(t, "CUDA", call.name)
	assert.Equal(t, "device_id", call.keys[0])
	assert.Len(t, call.values, len(call.keys))

	got := make(map[string]string, len(call.keys))
	for i, key := range call.keys {
		got[key] = call.values[i]
	}
	assert.Equal(t, "1", got["device_id"])
	assert.Equal(t, "2147483648", got["gpu_mem_limit"])
	assert.Equal(t, "1", got["prefer_nhwc"])
}

func TestCUDAStreamCopyDefaultPreserved(t *testing.T) {
	eng := newFakeEngine()
	o := newTestSession(t, eng)

	require.NoError(t, NewCUDAProvider(CUDAOptions{}).Register(o))

	require.Len(t, eng.appendCalls, 1)
	assert.NotContains(t, eng.appendCalls[0].keys, "do_copy_in_default_stream",
		"an unconfigured provider must not override the runtime's default-stream copies")
}

func TestCUDADisableCopyInDefaultStream(t *testing.T) {
	eng := newFakeEngine()
	o := newTestSession(t, eng)

	p := NewCUDAProvider(CUDAOptions{DisableCopyInDefaultStream: true})
	require.NoError(t, p.Register(o))

	require.Len(t, eng.appendCalls, 1)
	got := make(map[string]string)
	for i, key := range eng.appendCalls[0].keys {
		got[key] = eng.appendCalls[0].values[i]
	}
	assert.Equal(t, "0", got["do_copy_in_default_stream"])
}

func TestClassifyAppendNotImplemented(t *testing.T) {
	eng := newFakeEngine()
	eng.appendErr["QNN"] = &engine.StatusError{Code: engine.CodeNotImplemented, Message: "QNN is not enabled"}
	o := newTestSession(t, eng)

	err := NewQNNProvider(QNNOptions{}).Register(o)

	var notCompiled *FeatureNotCompiledError
	require.ErrorAs(t, err, &notCompiled)
	assert.Equal(t, "QNNExecutionProvider", notCompiled.Identifier)
}

func TestClassifyAppendRuntimeFailure(t *testing.T) {
	eng := newFakeEngine()
	cause := &engine.StatusError{Code: engine.CodeInvalidArgument, Message: "bad backend_path"}
	eng.appendErr["QNN"] = cause
	o := newTestSession(t, eng)

	err := NewQNNProvider(QNNOptions{BackendPath: "/nonexistent"}).Register(o)

	var regErr *RegistrationError
	require.ErrorAs(t, err, &regErr)
	assert.True(t, errors.Is(err, cause))
}

func TestNNAPIFlagsBitmask(t *testing.T) {
	tests := []struct {
		name    string
		options NNAPIOptions
		want    uint32
	}{
		{name: "none", options: NNAPIOptions{}, want: 0},
		{name: "fp16", options: NNAPIOptions{UseFP16: true}, want: 0x001},
		{name: "nchw and cpu disabled", options: NNAPIOptions{UseNCHW: true, DisableCPU: true}, want: 0x006},
		{name: "all", options: NNAPIOptions{UseFP16: true, UseNCHW: true, DisableCPU: true, CPUOnly: true}, want: 0x00f},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NewNNAPIProvider(tc.options).flags())
		})
	}
}

func TestTVMSettingsString(t *testing.T) {
	p := NewTVMProvider(TVMOptions{
		Executor:       "vm",
		Target:         "llvm",
		OptLevel:       3,
		Tuning:         true,
		TuningFilePath: "/tmp/tune.log",
	})
	assert.Equal(t, "executor:vm,target:llvm,opt_level:3,tuning:1,tuning_file_path:/tmp/tune.log", p.settings())

	assert.Equal(t, "", NewTVMProvider(TVMOptions{}).settings())
}
