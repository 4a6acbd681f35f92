// Package providers - NVIDIA TensorRT execution provider.
package providers

import "strconv"

const (
	// TensorRTProviderBackend uses NVIDIA TensorRT for optimized GPU
	// inference.
	TensorRTProviderBackend ProviderBackend = "tensorrt"
)

// TensorRTOptions contains arguments for the TensorRT provider.
// See:
// https://onnxruntime.ai/docs/execution-providers/TensorRT-ExecutionProvider.html#configurations
type TensorRTOptions struct {
	// The device ID.
	DeviceID int `json:"deviceID" yaml:"deviceID"`
	// Maximum workspace size for TensorRT engine builds, in bytes. Zero means
	// the runtime default (1 GB).
	MaxWorkspaceSize int64 `json:"maxWorkspaceSize" yaml:"maxWorkspaceSize"`
	// Maximum number of iterations allowed in model partitioning for
	// TensorRT. Zero means the runtime default.
	MaxPartitionIterations int `json:"maxPartitionIterations" yaml:"maxPartitionIterations"`
	// Minimum node size in a subgraph after partitioning for that subgraph to
	// be handed to TensorRT. Zero means the runtime default.
	MinSubgraphSize int `json:"minSubgraphSize" yaml:"minSubgraphSize"`
	// Enable FP16 mode in TensorRT.
	FP16Enable bool `json:"fp16Enable" yaml:"fp16Enable"`
	// Enable INT8 mode in TensorRT.
	Int8Enable bool `json:"int8Enable" yaml:"int8Enable"`
	// Cache built TensorRT engines to disk. Rebuilding an engine can take
	// minutes for a complicated model; caching avoids paying that on every
	// session.
	EngineCacheEnable bool `json:"engineCacheEnable" yaml:"engineCacheEnable"`
	// Directory for cached TensorRT engines. Only used when
	// EngineCacheEnable is set.
	EngineCachePath string `json:"engineCachePath" yaml:"engineCachePath"`
}

// TensorRTProvider implements the ExecutionProvider interface.
type TensorRTProvider struct {
	options   TensorRTOptions
	extra     *ProviderOptions
	supported bool
}

// NewTensorRTProvider creates a new TensorRT provider.
func NewTensorRTProvider(options TensorRTOptions) *TensorRTProvider {
	return &TensorRTProvider{
		options:   options,
		extra:     NewProviderOptions(),
		supported: osIsOneOf("linux", "windows"),
	}
}

// WithArbitraryConfig sets a TensorRT option this package does not model
// statically.
func (p *TensorRTProvider) WithArbitraryConfig(key, value string) *TensorRTProvider {
	p.extra.Set(key, value)
	return p
}

// Backend returns the short name of the TensorRT provider.
func (p *TensorRTProvider) Backend() ProviderBackend {
	return TensorRTProviderBackend
}

// Identifier returns the runtime's internal name for the TensorRT provider.
func (p *TensorRTProvider) Identifier() string {
	return "TensorrtExecutionProvider"
}

// SupportedByPlatform reports platform support, computed at construction.
func (p *TensorRTProvider) SupportedByPlatform() bool {
	return p.supported
}

// Build wraps the provider for dispatch with the default failure policy.
func (p *TensorRTProvider) Build() Dispatch {
	return NewDispatch(p)
}

// Register enables the TensorRT provider on the session configuration through
// its dedicated native options object.
func (p *TensorRTProvider) Register(o *SessionOptions) error {
	return registerV2(o, p, "TensorRT", p.providerOptions())
}

func (p *TensorRTProvider) providerOptions() *ProviderOptions {
	opts := NewProviderOptions()
	opts.Set("device_id", strconv.Itoa(p.options.DeviceID))
	if p.options.MaxWorkspaceSize > 0 {
		opts.Set("trt_max_workspace_size", strconv.FormatInt(p.options.MaxWorkspaceSize, 10))
	}
	if p.options.MaxPartitionIterations > 0 {
		opts.Set("trt_max_partition_iterations", strconv.Itoa(p.options.MaxPartitionIterations))
	}
	if p.options.MinSubgraphSize > 0 {
		opts.Set("trt_min_subgraph_size", strconv.Itoa(p.options.MinSubgraphSize))
	}
	opts.Set("trt_fp16_enable", strconv.Itoa(boolToInt(p.options.FP16Enable)))
	opts.Set("trt_int8_enable", strconv.Itoa(boolToInt(p.options.Int8Enable)))
	if p.options.EngineCacheEnable {
		opts.Set("trt_engine_cache_enable", "1")
		opts.Set("trt_engine_cache_path", p.options.EngineCachePath)
	}
	for _, key := range p.extra.keys {
		opts.Set(key, p.extra.values[key])
	}
	return opts
}
