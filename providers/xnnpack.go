// Package providers - XNNPACK execution provider.
package providers

import "strconv"

const (
	// XNNPACKProviderBackend uses the XNNPACK library for optimized
	// floating-point inference on ARM, x86 and WebAssembly CPUs.
	XNNPACKProviderBackend ProviderBackend = "xnnpack"
)

// XNNPACKOptions contains arguments for the XNNPACK provider.
type XNNPACKOptions struct {
	// Number of threads for the XNNPACK thread pool. Zero means the runtime
	// default.
	IntraOpNumThreads int `json:"intraOpNumThreads" yaml:"intraOpNumThreads"`
}

// XNNPACKProvider implements the ExecutionProvider interface.
type XNNPACKProvider struct {
	options XNNPACKOptions
	extra   *ProviderOptions
}

// NewXNNPACKProvider creates a new XNNPACK provider.
func NewXNNPACKProvider(options XNNPACKOptions) *XNNPACKProvider {
	return &XNNPACKProvider{
		options: options,
		extra:   NewProviderOptions(),
	}
}

// WithArbitraryConfig sets an XNNPACK option this package does not model
// statically.
func (p *XNNPACKProvider) WithArbitraryConfig(key, value string) *XNNPACKProvider {
	p.extra.Set(key, value)
	return p
}

// Backend returns the short name of the XNNPACK provider.
func (p *XNNPACKProvider) Backend() ProviderBackend {
	return XNNPACKProviderBackend
}

// Identifier returns the runtime's internal name for the XNNPACK provider.
func (p *XNNPACKProvider) Identifier() string {
	return "XnnpackExecutionProvider"
}

// SupportedByPlatform reports platform support. XNNPACK is a portable CPU
// library.
func (p *XNNPACKProvider) SupportedByPlatform() bool {
	return true
}

// Build wraps the provider for dispatch with the default failure policy.
func (p *XNNPACKProvider) Build() Dispatch {
	return NewDispatch(p)
}

// Register enables the XNNPACK provider on the session configuration.
func (p *XNNPACKProvider) Register(o *SessionOptions) error {
	return registerKV(o, p, "XNNPACK", p.providerOptions())
}

func (p *XNNPACKProvider) providerOptions() *ProviderOptions {
	opts := NewProviderOptions()
	if p.options.IntraOpNumThreads > 0 {
		opts.Set("intra_op_num_threads", strconv.Itoa(p.options.IntraOpNumThreads))
	}
	for _, key := range p.extra.keys {
		opts.Set(key, p.extra.values[key])
	}
	return opts
}
