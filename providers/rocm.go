// Package providers - AMD ROCm execution provider.
package providers

const (
	// ROCmProviderBackend uses AMD ROCm for GPU acceleration.
	ROCmProviderBackend ProviderBackend = "rocm"
)

// ROCmOptions contains arguments for the ROCm provider.
type ROCmOptions struct {
	// The device ID.
	DeviceID int `json:"deviceID" yaml:"deviceID"`
}

// ROCmProvider implements the ExecutionProvider interface.
type ROCmProvider struct {
	options   ROCmOptions
	supported bool
}

// NewROCmProvider creates a new ROCm provider.
func NewROCmProvider(options ROCmOptions) *ROCmProvider {
	return &ROCmProvider{
		options:   options,
		supported: osIsOneOf("linux"),
	}
}

// Backend returns the short name of the ROCm provider.
func (p *ROCmProvider) Backend() ProviderBackend {
	return ROCmProviderBackend
}

// Identifier returns the runtime's internal name for the ROCm provider.
func (p *ROCmProvider) Identifier() string {
	return "ROCMExecutionProvider"
}

// SupportedByPlatform reports platform support, computed at construction.
func (p *ROCmProvider) SupportedByPlatform() bool {
	return p.supported
}

// Build wraps the provider for dispatch with the default failure policy.
func (p *ROCmProvider) Build() Dispatch {
	return NewDispatch(p)
}

// Register enables the ROCm provider on the session configuration.
func (p *ROCmProvider) Register(o *SessionOptions) error {
	return registerLegacy(o, p,
		"OrtSessionOptionsAppendExecutionProvider_ROCM",
		p.options.DeviceID,
	)
}
