// Package providers - Intel oneDNN execution provider.
package providers

const (
	// OneDNNProviderBackend uses Intel oneDNN (formerly DNNL) for optimized
	// CPU inference.
	OneDNNProviderBackend ProviderBackend = "onednn"
)

// OneDNNOptions contains arguments for the oneDNN provider.
type OneDNNOptions struct {
	// UseArena enables the memory arena allocator.
	UseArena bool `json:"useArena" yaml:"useArena"`
}

// OneDNNProvider implements the ExecutionProvider interface.
type OneDNNProvider struct {
	options OneDNNOptions
}

// NewOneDNNProvider creates a new oneDNN provider.
func NewOneDNNProvider(options OneDNNOptions) *OneDNNProvider {
	return &OneDNNProvider{options: options}
}

// Backend returns the short name of the oneDNN provider.
func (p *OneDNNProvider) Backend() ProviderBackend {
	return OneDNNProviderBackend
}

// Identifier returns the runtime's internal name for the oneDNN provider.
func (p *OneDNNProvider) Identifier() string {
	return "DnnlExecutionProvider"
}

// SupportedByPlatform reports platform support. oneDNN runs on every platform
// the runtime itself builds on.
func (p *OneDNNProvider) SupportedByPlatform() bool {
	return true
}

// Build wraps the provider for dispatch with the default failure policy.
func (p *OneDNNProvider) Build() Dispatch {
	return NewDispatch(p)
}

// Register enables the oneDNN provider on the session configuration.
func (p *OneDNNProvider) Register(o *SessionOptions) error {
	return registerLegacy(o, p,
		"OrtSessionOptionsAppendExecutionProvider_Dnnl",
		boolToInt(p.options.UseArena),
	)
}
