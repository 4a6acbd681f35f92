// Package providers - Arm NN execution provider.
package providers

const (
	// ArmNNProviderBackend uses Arm NN for acceleration on Arm Cortex CPUs
	// and Mali GPUs.
	ArmNNProviderBackend ProviderBackend = "armnn"
)

// ArmNNOptions contains arguments for the Arm NN provider.
type ArmNNOptions struct {
	// UseArena enables the memory arena allocator.
	UseArena bool `json:"useArena" yaml:"useArena"`
}

// ArmNNProvider implements the ExecutionProvider interface.
type ArmNNProvider struct {
	options   ArmNNOptions
	supported bool
}

// NewArmNNProvider creates a new Arm NN provider.
func NewArmNNProvider(options ArmNNOptions) *ArmNNProvider {
	return &ArmNNProvider{
		options:   options,
		supported: osIsOneOf("linux") && archIsARM(),
	}
}

// Backend returns the short name of the Arm NN provider.
func (p *ArmNNProvider) Backend() ProviderBackend {
	return ArmNNProviderBackend
}

// Identifier returns the runtime's internal name for the Arm NN provider.
func (p *ArmNNProvider) Identifier() string {
	return "ArmNNExecutionProvider"
}

// SupportedByPlatform reports platform support, computed at construction.
func (p *ArmNNProvider) SupportedByPlatform() bool {
	return p.supported
}

// Build wraps the provider for dispatch with the default failure policy.
func (p *ArmNNProvider) Build() Dispatch {
	return NewDispatch(p)
}

// Register enables the Arm NN provider on the session configuration.
func (p *ArmNNProvider) Register(o *SessionOptions) error {
	return registerLegacy(o, p,
		"OrtSessionOptionsAppendExecutionProvider_ArmNN",
		boolToInt(p.options.UseArena),
	)
}
