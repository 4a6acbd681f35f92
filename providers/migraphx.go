// Package providers - AMD MIGraphX execution provider.
package providers

const (
	// MIGraphXProviderBackend uses AMD MIGraphX for GPU acceleration on
	// Radeon hardware.
	MIGraphXProviderBackend ProviderBackend = "migraphx"
)

// MIGraphXOptions contains arguments for the MIGraphX provider.
type MIGraphXOptions struct {
	// The device ID.
	DeviceID int `json:"deviceID" yaml:"deviceID"`
}

// MIGraphXProvider implements the ExecutionProvider interface.
type MIGraphXProvider struct {
	options   MIGraphXOptions
	supported bool
}

// NewMIGraphXProvider creates a new MIGraphX provider.
func NewMIGraphXProvider(options MIGraphXOptions) *MIGraphXProvider {
	return &MIGraphXProvider{
		options:   options,
		supported: osIsOneOf("linux"),
	}
}

// Backend returns the short name of the MIGraphX provider.
func (p *MIGraphXProvider) Backend() ProviderBackend {
	return MIGraphXProviderBackend
}

// Identifier returns the runtime's internal name for the MIGraphX provider.
func (p *MIGraphXProvider) Identifier() string {
	return "MIGraphXExecutionProvider"
}

// SupportedByPlatform reports platform support, computed at construction.
func (p *MIGraphXProvider) SupportedByPlatform() bool {
	return p.supported
}

// Build wraps the provider for dispatch with the default failure policy.
func (p *MIGraphXProvider) Build() Dispatch {
	return NewDispatch(p)
}

// Register enables the MIGraphX provider on the session configuration.
func (p *MIGraphXProvider) Register(o *SessionOptions) error {
	return registerLegacy(o, p,
		"OrtSessionOptionsAppendExecutionProvider_MIGraphX",
		p.options.DeviceID,
	)
}
