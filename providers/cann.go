// Package providers - Huawei CANN execution provider.
package providers

import "strconv"

const (
	// CANNProviderBackend uses Huawei CANN for Ascend NPU acceleration.
	CANNProviderBackend ProviderBackend = "cann"
)

// CANNOptions contains arguments for the CANN provider.
type CANNOptions struct {
	// The device ID.
	DeviceID int `json:"deviceID" yaml:"deviceID"`
	// The size limit of the NPU memory arena in bytes. Zero means the
	// runtime default.
	NPUMemLimit int64 `json:"npuMemLimit" yaml:"npuMemLimit"`
	// Whether to run the model with the graph engine or as single operators.
	// Graph mode usually performs better.
	EnableCANNGraph bool `json:"enableCANNGraph" yaml:"enableCANNGraph"`
}

// CANNProvider implements the ExecutionProvider interface.
type CANNProvider struct {
	options   CANNOptions
	extra     *ProviderOptions
	supported bool
}

// NewCANNProvider creates a new CANN provider.
func NewCANNProvider(options CANNOptions) *CANNProvider {
	return &CANNProvider{
		options:   options,
		extra:     NewProviderOptions(),
		supported: osIsOneOf("linux"),
	}
}

// WithArbitraryConfig sets a CANN option this package does not model
// statically.
func (p *CANNProvider) WithArbitraryConfig(key, value string) *CANNProvider {
	p.extra.Set(key, value)
	return p
}

// Backend returns the short name of the CANN provider.
func (p *CANNProvider) Backend() ProviderBackend {
	return CANNProviderBackend
}

// Identifier returns the runtime's internal name for the CANN provider.
func (p *CANNProvider) Identifier() string {
	return "CANNExecutionProvider"
}

// SupportedByPlatform reports platform support, computed at construction.
func (p *CANNProvider) SupportedByPlatform() bool {
	return p.supported
}

// Build wraps the provider for dispatch with the default failure policy.
func (p *CANNProvider) Build() Dispatch {
	return NewDispatch(p)
}

// Register enables the CANN provider on the session configuration through its
// dedicated native options object.
func (p *CANNProvider) Register(o *SessionOptions) error {
	return registerV2(o, p, "CANN", p.providerOptions())
}

func (p *CANNProvider) providerOptions() *ProviderOptions {
	opts := NewProviderOptions()
	opts.Set("device_id", strconv.Itoa(p.options.DeviceID))
	if p.options.NPUMemLimit > 0 {
		opts.Set("npu_mem_limit", strconv.FormatInt(p.options.NPUMemLimit, 10))
	}
	opts.Set("enable_cann_graph", strconv.Itoa(boolToInt(p.options.EnableCANNGraph)))
	for _, key := range p.extra.keys {
		opts.Set(key, p.extra.values[key])
	}
	return opts
}
