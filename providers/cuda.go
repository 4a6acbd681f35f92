// Package providers - NVIDIA CUDA execution provider.
package providers

import "strconv"

const (
	// CUDAProviderBackend uses NVIDIA CUDA for GPU acceleration.
	CUDAProviderBackend ProviderBackend = "cuda"
)

// CUDAOptions contains arguments for the CUDA provider.
// See:
// https://onnxruntime.ai/docs/execution-providers/CUDA-ExecutionProvider.html#configuration-options
type CUDAOptions struct {
	// The device ID.
	DeviceID int `json:"deviceID" yaml:"deviceID"`
	// The size limit of the device memory arena in bytes. This size limit is
	// only for the execution provider's arena; total device memory usage may
	// be higher. Zero means the runtime default.
	GPUMemLimit int64 `json:"gpuMemLimit" yaml:"gpuMemLimit"`
	// The strategy for extending the device memory arena.
	// 0: kNextPowerOfTwo - subsequent extensions extend by larger amounts
	// (multiplied by powers of two)
	// 1: kSameAsRequested - extend by the requested amount
	ArenaExtendStrategy int `json:"arenaExtendStrategy" yaml:"arenaExtendStrategy"`
	// The type of search done for cuDNN convolution algorithms.
	// 0: EXHAUSTIVE, 1: HEURISTIC, 2: DEFAULT
	CudnnConvAlgoSearch int `json:"cudnnConvAlgoSearch" yaml:"cudnnConvAlgoSearch"`
	// Use separate streams for copies instead of the default stream. The
	// runtime default is to copy in the default stream, which is the
	// recommended setting; separate streams risk race conditions.
	DisableCopyInDefaultStream bool `json:"disableCopyInDefaultStream" yaml:"disableCopyInDefaultStream"`
	// Capture the model graph with CUDA Graphs and replay it on later runs.
	EnableCudaGraph bool `json:"enableCudaGraph" yaml:"enableCudaGraph"`
}

// CUDAProvider implements the ExecutionProvider interface.
type CUDAProvider struct {
	options   CUDAOptions
	extra     *ProviderOptions
	supported bool
}

// NewCUDAProvider creates a new CUDA provider.
func NewCUDAProvider(options CUDAOptions) *CUDAProvider {
	return &CUDAProvider{
		options:   options,
		extra:     NewProviderOptions(),
		supported: osIsOneOf("linux", "windows"),
	}
}

// WithArbitraryConfig sets a CUDA option this package does not model
// statically. The CUDA provider regularly grows options between runtime
// releases; this passes them through untyped.
func (p *CUDAProvider) WithArbitraryConfig(key, value string) *CUDAProvider {
	p.extra.Set(key, value)
	return p
}

// Backend returns the short name of the CUDA provider.
func (p *CUDAProvider) Backend() ProviderBackend {
	return CUDAProviderBackend
}

// Identifier returns the runtime's internal name for the CUDA provider.
func (p *CUDAProvider) Identifier() string {
	return "CUDAExecutionProvider"
}

// SupportedByPlatform reports platform support, computed at construction.
func (p *CUDAProvider) SupportedByPlatform() bool {
	return p.supported
}

// Build wraps the provider for dispatch with the default failure policy.
func (p *CUDAProvider) Build() Dispatch {
	return NewDispatch(p)
}

// Register enables the CUDA provider on the session configuration through its
// dedicated native options object.
func (p *CUDAProvider) Register(o *SessionOptions) error {
	return registerV2(o, p, "CUDA", p.providerOptions())
}

func (p *CUDAProvider) providerOptions() *ProviderOptions {
	opts := NewProviderOptions()
	opts.Set("device_id", strconv.Itoa(p.options.DeviceID))
	if p.options.GPUMemLimit > 0 {
		opts.Set("gpu_mem_limit", strconv.FormatInt(p.options.GPUMemLimit, 10))
	}
	opts.Set("arena_extend_strategy", strconv.Itoa(p.options.ArenaExtendStrategy))
	opts.Set("cudnn_conv_algo_search", strconv.Itoa(p.options.CudnnConvAlgoSearch))
	if p.options.DisableCopyInDefaultStream {
		opts.Set("do_copy_in_default_stream", "0")
	}
	if p.options.EnableCudaGraph {
		opts.Set("enable_cuda_graph", "1")
	}
	for _, key := range p.extra.keys {
		opts.Set(key, p.extra.values[key])
	}
	return opts
}
