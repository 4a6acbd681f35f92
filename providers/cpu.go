// Package providers - CPU execution provider.
package providers

const (
	// CPUProviderBackend is the runtime's default software execution path.
	CPUProviderBackend ProviderBackend = "cpu"
)

// CPUOptions contains arguments for the CPU provider.
type CPUOptions struct {
	// UseArena enables the memory arena allocator for CPU tensor allocations.
	UseArena bool `json:"useArena" yaml:"useArena"`
}

// CPUProvider implements the ExecutionProvider interface.
//
// The runtime always falls back to its CPU path implicitly; registering this
// provider explicitly only matters for controlling the arena allocator or for
// pinning execution to CPU ahead of other providers in the sequence.
type CPUProvider struct {
	options CPUOptions
}

// NewCPUProvider creates a new CPU provider.
func NewCPUProvider(options CPUOptions) *CPUProvider {
	return &CPUProvider{options: options}
}

// Backend returns the short name of the CPU provider.
func (p *CPUProvider) Backend() ProviderBackend {
	return CPUProviderBackend
}

// Identifier returns the runtime's internal name for the CPU provider.
func (p *CPUProvider) Identifier() string {
	return "CPUExecutionProvider"
}

// SupportedByPlatform reports platform support. The CPU provider works
// everywhere.
func (p *CPUProvider) SupportedByPlatform() bool {
	return true
}

// Build wraps the provider for dispatch with the default failure policy.
func (p *CPUProvider) Build() Dispatch {
	return NewDispatch(p)
}

// Register enables the CPU provider on the session configuration.
func (p *CPUProvider) Register(o *SessionOptions) error {
	return registerLegacy(o, p,
		"OrtSessionOptionsAppendExecutionProvider_CPU",
		boolToInt(p.options.UseArena),
	)
}
