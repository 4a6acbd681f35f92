// Package providers - Qualcomm QNN execution provider.
package providers

const (
	// QNNProviderBackend uses the Qualcomm AI Engine (QNN SDK) for
	// acceleration on Snapdragon NPUs.
	QNNProviderBackend ProviderBackend = "qnn"
)

// QNNOptions contains arguments for the QNN provider.
// See:
// https://onnxruntime.ai/docs/execution-providers/QNN-ExecutionProvider.html#configuration-options
type QNNOptions struct {
	// Path to the QNN backend library, e.g. "libQnnHtp.so" for the HTP
	// backend or "libQnnCpu.so" for the reference CPU backend.
	BackendPath string `json:"backendPath" yaml:"backendPath"`
	// HTP performance mode: "default", "burst", "balanced",
	// "high_performance", "high_power_saver", "low_balanced",
	// "low_power_saver", "power_saver" or "sustained_high_performance".
	HTPPerformanceMode string `json:"htpPerformanceMode" yaml:"htpPerformanceMode"`
	// Profiling level: "off", "basic" or "detailed".
	ProfilingLevel string `json:"profilingLevel" yaml:"profilingLevel"`
}

// QNNProvider implements the ExecutionProvider interface.
type QNNProvider struct {
	options   QNNOptions
	extra     *ProviderOptions
	supported bool
}

// NewQNNProvider creates a new QNN provider.
func NewQNNProvider(options QNNOptions) *QNNProvider {
	return &QNNProvider{
		options:   options,
		extra:     NewProviderOptions(),
		supported: osIsOneOf("android") || (osIsOneOf("windows", "linux") && archIsARM64()),
	}
}

// WithArbitraryConfig sets a QNN option this package does not model
// statically.
func (p *QNNProvider) WithArbitraryConfig(key, value string) *QNNProvider {
	p.extra.Set(key, value)
	return p
}

// Backend returns the short name of the QNN provider.
func (p *QNNProvider) Backend() ProviderBackend {
	return QNNProviderBackend
}

// Identifier returns the runtime's internal name for the QNN provider.
func (p *QNNProvider) Identifier() string {
	return "QNNExecutionProvider"
}

// SupportedByPlatform reports platform support, computed at construction.
func (p *QNNProvider) SupportedByPlatform() bool {
	return p.supported
}

// Build wraps the provider for dispatch with the default failure policy.
func (p *QNNProvider) Build() Dispatch {
	return NewDispatch(p)
}

// Register enables the QNN provider on the session configuration.
func (p *QNNProvider) Register(o *SessionOptions) error {
	return registerKV(o, p, "QNN", p.providerOptions())
}

func (p *QNNProvider) providerOptions() *ProviderOptions {
	opts := NewProviderOptions()
	if p.options.BackendPath != "" {
		opts.Set("backend_path", p.options.BackendPath)
	}
	if p.options.HTPPerformanceMode != "" {
		opts.Set("htp_performance_mode", p.options.HTPPerformanceMode)
	}
	if p.options.ProfilingLevel != "" {
		opts.Set("profiling_level", p.options.ProfilingLevel)
	}
	for _, key := range p.extra.keys {
		opts.Set(key, p.extra.values[key])
	}
	return opts
}
