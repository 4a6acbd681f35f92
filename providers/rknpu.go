// Package providers - Rockchip RKNPU execution provider.
package providers

const (
	// RKNPUProviderBackend uses the Rockchip NPU for on-device acceleration.
	RKNPUProviderBackend ProviderBackend = "rknpu"
)

// RKNPUProvider implements the ExecutionProvider interface. The RKNPU entry
// point takes no configuration.
type RKNPUProvider struct {
	supported bool
}

// NewRKNPUProvider creates a new RKNPU provider.
func NewRKNPUProvider() *RKNPUProvider {
	return &RKNPUProvider{
		supported: osIsOneOf("linux") && archIsARM64(),
	}
}

// Backend returns the short name of the RKNPU provider.
func (p *RKNPUProvider) Backend() ProviderBackend {
	return RKNPUProviderBackend
}

// Identifier returns the runtime's internal name for the RKNPU provider.
func (p *RKNPUProvider) Identifier() string {
	return "RknpuExecutionProvider"
}

// SupportedByPlatform reports platform support, computed at construction.
func (p *RKNPUProvider) SupportedByPlatform() bool {
	return p.supported
}

// Build wraps the provider for dispatch with the default failure policy.
func (p *RKNPUProvider) Build() Dispatch {
	return NewDispatch(p)
}

// Register enables the RKNPU provider on the session configuration.
func (p *RKNPUProvider) Register(o *SessionOptions) error {
	return registerLegacy(o, p, "OrtSessionOptionsAppendExecutionProvider_Rknpu")
}
