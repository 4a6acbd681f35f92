// Package providers - Arm Compute Library execution provider.
package providers

const (
	// ACLProviderBackend uses the Arm Compute Library for acceleration on Arm
	// CPUs and GPUs.
	ACLProviderBackend ProviderBackend = "acl"
)

// ACLOptions contains arguments for the ACL provider.
type ACLOptions struct {
	// EnableFastMath allows ACL to use faster, lower-precision math where the
	// hardware supports it.
	EnableFastMath bool `json:"enableFastMath" yaml:"enableFastMath"`
}

// ACLProvider implements the ExecutionProvider interface.
type ACLProvider struct {
	options   ACLOptions
	supported bool
}

// NewACLProvider creates a new ACL provider.
func NewACLProvider(options ACLOptions) *ACLProvider {
	return &ACLProvider{
		options:   options,
		supported: osIsOneOf("linux") && archIsARM(),
	}
}

// Backend returns the short name of the ACL provider.
func (p *ACLProvider) Backend() ProviderBackend {
	return ACLProviderBackend
}

// Identifier returns the runtime's internal name for the ACL provider.
func (p *ACLProvider) Identifier() string {
	return "ACLExecutionProvider"
}

// SupportedByPlatform reports platform support, computed at construction.
func (p *ACLProvider) SupportedByPlatform() bool {
	return p.supported
}

// Build wraps the provider for dispatch with the default failure policy.
func (p *ACLProvider) Build() Dispatch {
	return NewDispatch(p)
}

// Register enables the ACL provider on the session configuration.
func (p *ACLProvider) Register(o *SessionOptions) error {
	return registerLegacy(o, p,
		"OrtSessionOptionsAppendExecutionProvider_ACL",
		boolToInt(p.options.EnableFastMath),
	)
}
