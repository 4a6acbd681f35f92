// Package providers - Microsoft DirectML execution provider.
package providers

const (
	// DirectMLProviderBackend uses DirectML for GPU acceleration on Windows.
	DirectMLProviderBackend ProviderBackend = "directml"
)

// DirectMLOptions contains arguments for the DirectML provider.
type DirectMLOptions struct {
	// The DirectX device ID.
	DeviceID int `json:"deviceID" yaml:"deviceID"`
}

// DirectMLProvider implements the ExecutionProvider interface.
type DirectMLProvider struct {
	options   DirectMLOptions
	supported bool
}

// NewDirectMLProvider creates a new DirectML provider.
func NewDirectMLProvider(options DirectMLOptions) *DirectMLProvider {
	return &DirectMLProvider{
		options:   options,
		supported: osIsOneOf("windows"),
	}
}

// Backend returns the short name of the DirectML provider.
func (p *DirectMLProvider) Backend() ProviderBackend {
	return DirectMLProviderBackend
}

// Identifier returns the runtime's internal name for the DirectML provider.
func (p *DirectMLProvider) Identifier() string {
	return "DmlExecutionProvider"
}

// SupportedByPlatform reports platform support, computed at construction.
func (p *DirectMLProvider) SupportedByPlatform() bool {
	return p.supported
}

// Build wraps the provider for dispatch with the default failure policy.
func (p *DirectMLProvider) Build() Dispatch {
	return NewDispatch(p)
}

// Register enables the DirectML provider on the session configuration.
func (p *DirectMLProvider) Register(o *SessionOptions) error {
	return registerLegacy(o, p,
		"OrtSessionOptionsAppendExecutionProvider_DML",
		p.options.DeviceID,
	)
}
