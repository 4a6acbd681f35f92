// Package providers - AMD Vitis AI execution provider.
package providers

const (
	// VitisAIProviderBackend uses AMD Vitis AI for acceleration on Ryzen AI
	// NPUs and Versal/Zynq FPGAs.
	VitisAIProviderBackend ProviderBackend = "vitisai"
)

// VitisAIOptions contains arguments for the Vitis AI provider.
type VitisAIOptions struct {
	// Path to the Vitis AI configuration file.
	ConfigFile string `json:"configFile" yaml:"configFile"`
	// Directory for the compiled model cache.
	CacheDir string `json:"cacheDir" yaml:"cacheDir"`
	// Key identifying the model in the compiled cache.
	CacheKey string `json:"cacheKey" yaml:"cacheKey"`
}

// VitisAIProvider implements the ExecutionProvider interface.
type VitisAIProvider struct {
	options   VitisAIOptions
	extra     *ProviderOptions
	supported bool
}

// NewVitisAIProvider creates a new Vitis AI provider.
func NewVitisAIProvider(options VitisAIOptions) *VitisAIProvider {
	return &VitisAIProvider{
		options:   options,
		extra:     NewProviderOptions(),
		supported: osIsOneOf("linux", "windows"),
	}
}

// WithArbitraryConfig sets a Vitis AI option this package does not model
// statically.
func (p *VitisAIProvider) WithArbitraryConfig(key, value string) *VitisAIProvider {
	p.extra.Set(key, value)
	return p
}

// Backend returns the short name of the Vitis AI provider.
func (p *VitisAIProvider) Backend() ProviderBackend {
	return VitisAIProviderBackend
}

// Identifier returns the runtime's internal name for the Vitis AI provider.
func (p *VitisAIProvider) Identifier() string {
	return "VitisAIExecutionProvider"
}

// SupportedByPlatform reports platform support, computed at construction.
func (p *VitisAIProvider) SupportedByPlatform() bool {
	return p.supported
}

// Build wraps the provider for dispatch with the default failure policy.
func (p *VitisAIProvider) Build() Dispatch {
	return NewDispatch(p)
}

// Register enables the Vitis AI provider on the session configuration.
func (p *VitisAIProvider) Register(o *SessionOptions) error {
	return registerKV(o, p, "VitisAI", p.providerOptions())
}

func (p *VitisAIProvider) providerOptions() *ProviderOptions {
	opts := NewProviderOptions()
	if p.options.ConfigFile != "" {
		opts.Set("config_file", p.options.ConfigFile)
	}
	if p.options.CacheDir != "" {
		opts.Set("cache_dir", p.options.CacheDir)
	}
	if p.options.CacheKey != "" {
		opts.Set("cache_key", p.options.CacheKey)
	}
	for _, key := range p.extra.keys {
		opts.Set(key, p.extra.values[key])
	}
	return opts
}
