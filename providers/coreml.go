// Package providers - Apple CoreML execution provider.
package providers

import "strconv"

const (
	// CoreMLProviderBackend uses Apple CoreML for macOS/iOS acceleration.
	CoreMLProviderBackend ProviderBackend = "coreml"
)

// CoreMLOptions contains arguments for the CoreML provider.
// See: https://onnxruntime.ai/docs/execution-providers/CoreML-ExecutionProvider.html
type CoreMLOptions struct {
	// MLProgram: create an MLProgram format model. Requires Core ML 5 or
	// later (iOS 15+ or macOS 12+).
	// NeuralNetwork: create a NeuralNetwork format model. Requires Core ML 3
	// or later (iOS 13+ or macOS 10.15+).
	// Default: NeuralNetwork
	ModelFormat string `json:"modelFormat" yaml:"modelFormat"`
	// CPUOnly: limit CoreML to running on CPU only.
	// CPUAndNeuralEngine: enable CoreML on devices with a compatible Apple
	// Neural Engine.
	// CPUAndGPU: enable CoreML on devices with a compatible GPU.
	// ALL: enable CoreML on all compatible Apple devices.
	// Default: ALL
	MLComputeUnits string `json:"mlComputeUnits" yaml:"mlComputeUnits"`
	// Only allow CoreML to take nodes whose inputs have static shapes.
	// Dynamic-shape inputs are accepted by default but can hurt performance.
	RequireStaticInputShapes bool `json:"requireStaticInputShapes" yaml:"requireStaticInputShapes"`
	// Allow CoreML to run on a subgraph in the body of a control flow
	// operator (Loop, Scan or If).
	EnableOnSubgraphs bool `json:"enableOnSubgraphs" yaml:"enableOnSubgraphs"`
	// The path to the directory where the CoreML model cache is stored.
	// Without caching, CoreML recompiles the captured subgraph on every
	// session, which may cost minutes for a complicated model.
	ModelCacheDirectory string `json:"modelCacheDirectory" yaml:"modelCacheDirectory"`
}

// CoreMLProvider implements the ExecutionProvider interface.
type CoreMLProvider struct {
	options   CoreMLOptions
	extra     *ProviderOptions
	supported bool
}

// NewCoreMLProvider creates a new CoreML provider.
func NewCoreMLProvider(options CoreMLOptions) *CoreMLProvider {
	return &CoreMLProvider{
		options:   options,
		extra:     NewProviderOptions(),
		supported: osIsOneOf("darwin", "ios"),
	}
}

// WithArbitraryConfig sets a CoreML option this package does not model
// statically.
func (p *CoreMLProvider) WithArbitraryConfig(key, value string) *CoreMLProvider {
	p.extra.Set(key, value)
	return p
}

// Backend returns the short name of the CoreML provider.
func (p *CoreMLProvider) Backend() ProviderBackend {
	return CoreMLProviderBackend
}

// Identifier returns the runtime's internal name for the CoreML provider.
func (p *CoreMLProvider) Identifier() string {
	return "CoreMLExecutionProvider"
}

// SupportedByPlatform reports platform support, computed at construction.
func (p *CoreMLProvider) SupportedByPlatform() bool {
	return p.supported
}

// Build wraps the provider for dispatch with the default failure policy.
func (p *CoreMLProvider) Build() Dispatch {
	return NewDispatch(p)
}

// Register enables the CoreML provider on the session configuration.
func (p *CoreMLProvider) Register(o *SessionOptions) error {
	return registerKV(o, p, "CoreML", p.providerOptions())
}

func (p *CoreMLProvider) providerOptions() *ProviderOptions {
	opts := NewProviderOptions()
	if p.options.ModelFormat != "" {
		opts.Set("ModelFormat", p.options.ModelFormat)
	}
	if p.options.MLComputeUnits != "" {
		opts.Set("MLComputeUnits", p.options.MLComputeUnits)
	}
	opts.Set("RequireStaticInputShapes", strconv.Itoa(boolToInt(p.options.RequireStaticInputShapes)))
	opts.Set("EnableOnSubgraphs", strconv.Itoa(boolToInt(p.options.EnableOnSubgraphs)))
	if p.options.ModelCacheDirectory != "" {
		opts.Set("ModelCacheDirectory", p.options.ModelCacheDirectory)
	}
	for _, key := range p.extra.keys {
		opts.Set(key, p.extra.values[key])
	}
	return opts
}
