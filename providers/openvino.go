// Package providers - Intel OpenVINO execution provider.
package providers

const (
	// OpenVINOProviderBackend uses Intel OpenVINO for inference optimization
	// on Intel CPUs, GPUs and NPUs.
	OpenVINOProviderBackend ProviderBackend = "openvino"
)

// OpenVINOOptions contains arguments for the OpenVINO provider.
// See:
// https://onnxruntime.ai/docs/execution-providers/OpenVINO-ExecutionProvider.html#summary-of-options
type OpenVINOOptions struct {
	// Overrides the accelerator hardware type with these values at runtime
	// (e.g. "CPU", "GPU", "NPU", "GPU.0"). If this option is not explicitly
	// set, the default hardware chosen at runtime build time is used.
	DeviceType string `json:"deviceType" yaml:"deviceType"`
}

// OpenVINOProvider implements the ExecutionProvider interface.
type OpenVINOProvider struct {
	options   OpenVINOOptions
	supported bool
}

// NewOpenVINOProvider creates a new OpenVINO provider.
func NewOpenVINOProvider(options OpenVINOOptions) *OpenVINOProvider {
	return &OpenVINOProvider{
		options:   options,
		supported: osIsOneOf("linux", "windows"),
	}
}

// Backend returns the short name of the OpenVINO provider.
func (p *OpenVINOProvider) Backend() ProviderBackend {
	return OpenVINOProviderBackend
}

// Identifier returns the runtime's internal name for the OpenVINO provider.
func (p *OpenVINOProvider) Identifier() string {
	return "OpenVINOExecutionProvider"
}

// SupportedByPlatform reports platform support, computed at construction.
func (p *OpenVINOProvider) SupportedByPlatform() bool {
	return p.supported
}

// Build wraps the provider for dispatch with the default failure policy.
func (p *OpenVINOProvider) Build() Dispatch {
	return NewDispatch(p)
}

// Register enables the OpenVINO provider on the session configuration. An
// empty device type lets the runtime keep its build-time default.
func (p *OpenVINOProvider) Register(o *SessionOptions) error {
	return registerLegacy(o, p,
		"OrtSessionOptionsAppendExecutionProvider_OpenVINO",
		p.options.DeviceType,
	)
}
