// Package providers - Android NNAPI execution provider.
package providers

const (
	// NNAPIProviderBackend uses the Android Neural Networks API for on-device
	// acceleration.
	NNAPIProviderBackend ProviderBackend = "nnapi"
)

// NNAPI flag bits as defined by the runtime's nnapi_provider_factory.h.
const (
	nnapiFlagUseFP16     uint32 = 0x001
	nnapiFlagUseNCHW     uint32 = 0x002
	nnapiFlagCPUDisabled uint32 = 0x004
	nnapiFlagCPUOnly     uint32 = 0x008
)

// NNAPIOptions contains arguments for the NNAPI provider.
type NNAPIOptions struct {
	// Use FP16 relaxation in NNAPI EP. May improve performance with some
	// accuracy loss.
	UseFP16 bool `json:"useFP16" yaml:"useFP16"`
	// Use NCHW layout in NNAPI EP. Only partially supported; NHWC is the
	// default.
	UseNCHW bool `json:"useNCHW" yaml:"useNCHW"`
	// Prevent NNAPI from falling back to its own CPU reference
	// implementation, which usually performs worse than the runtime's.
	DisableCPU bool `json:"disableCPU" yaml:"disableCPU"`
	// Use NNAPI's CPU reference implementation only. Intended for testing.
	CPUOnly bool `json:"cpuOnly" yaml:"cpuOnly"`
}

// NNAPIProvider implements the ExecutionProvider interface.
type NNAPIProvider struct {
	options   NNAPIOptions
	supported bool
}

// NewNNAPIProvider creates a new NNAPI provider.
func NewNNAPIProvider(options NNAPIOptions) *NNAPIProvider {
	return &NNAPIProvider{
		options:   options,
		supported: osIsOneOf("android"),
	}
}

// Backend returns the short name of the NNAPI provider.
func (p *NNAPIProvider) Backend() ProviderBackend {
	return NNAPIProviderBackend
}

// Identifier returns the runtime's internal name for the NNAPI provider.
func (p *NNAPIProvider) Identifier() string {
	return "NnapiExecutionProvider"
}

// SupportedByPlatform reports platform support, computed at construction.
func (p *NNAPIProvider) SupportedByPlatform() bool {
	return p.supported
}

// Build wraps the provider for dispatch with the default failure policy.
func (p *NNAPIProvider) Build() Dispatch {
	return NewDispatch(p)
}

// Register enables the NNAPI provider on the session configuration.
func (p *NNAPIProvider) Register(o *SessionOptions) error {
	return registerLegacy(o, p,
		"OrtSessionOptionsAppendExecutionProvider_Nnapi",
		p.flags(),
	)
}

func (p *NNAPIProvider) flags() uint32 {
	var flags uint32
	if p.options.UseFP16 {
		flags |= nnapiFlagUseFP16
	}
	if p.options.UseNCHW {
		flags |= nnapiFlagUseNCHW
	}
	if p.options.DisableCPU {
		flags |= nnapiFlagCPUDisabled
	}
	if p.options.CPUOnly {
		flags |= nnapiFlagCPUOnly
	}
	return flags
}
