// Package providers - Apache TVM execution provider.
package providers

import (
	"fmt"
	"strings"
)

const (
	// TVMProviderBackend uses Apache TVM as a compilation backend.
	TVMProviderBackend ProviderBackend = "tvm"
)

// TVMOptions contains arguments for the TVM provider. The runtime consumes
// them as a single comma-separated settings string.
type TVMOptions struct {
	// Executor type: "graph" or "vm".
	Executor string `json:"executor" yaml:"executor"`
	// Target device specification, e.g. "llvm -mcpu=core-avx2".
	Target string `json:"target" yaml:"target"`
	// Target host specification.
	TargetHost string `json:"targetHost" yaml:"targetHost"`
	// TVM optimization level.
	OptLevel int `json:"optLevel" yaml:"optLevel"`
	// Enable tuned weights from a prior TVM tuning run.
	Tuning bool `json:"tuning" yaml:"tuning"`
	// Path to a TVM tuning log file. Only used when Tuning is set.
	TuningFilePath string `json:"tuningFilePath" yaml:"tuningFilePath"`
}

// TVMProvider implements the ExecutionProvider interface.
type TVMProvider struct {
	options TVMOptions
}

// NewTVMProvider creates a new TVM provider.
func NewTVMProvider(options TVMOptions) *TVMProvider {
	return &TVMProvider{options: options}
}

// Backend returns the short name of the TVM provider.
func (p *TVMProvider) Backend() ProviderBackend {
	return TVMProviderBackend
}

// Identifier returns the runtime's internal name for the TVM provider.
func (p *TVMProvider) Identifier() string {
	return "TvmExecutionProvider"
}

// SupportedByPlatform reports platform support. TVM targets are configured
// through the options string rather than constrained by host platform.
func (p *TVMProvider) SupportedByPlatform() bool {
	return true
}

// Build wraps the provider for dispatch with the default failure policy.
func (p *TVMProvider) Build() Dispatch {
	return NewDispatch(p)
}

// Register enables the TVM provider on the session configuration.
func (p *TVMProvider) Register(o *SessionOptions) error {
	return registerLegacy(o, p,
		"OrtSessionOptionsAppendExecutionProvider_Tvm",
		p.settings(),
	)
}

// settings flattens the options into the "key:value,key:value" form the TVM
// entry point expects.
func (p *TVMProvider) settings() string {
	var parts []string
	if p.options.Executor != "" {
		parts = append(parts, fmt.Sprintf("executor:%s", p.options.Executor))
	}
	if p.options.Target != "" {
		parts = append(parts, fmt.Sprintf("target:%s", p.options.Target))
	}
	if p.options.TargetHost != "" {
		parts = append(parts, fmt.Sprintf("target_host:%s", p.options.TargetHost))
	}
	if p.options.OptLevel > 0 {
		parts = append(parts, fmt.Sprintf("opt_level:%d", p.options.OptLevel))
	}
	if p.options.Tuning {
		parts = append(parts, "tuning:1")
		if p.options.TuningFilePath != "" {
			parts = append(parts, fmt.Sprintf("tuning_file_path:%s", p.options.TuningFilePath))
		}
	}
	return strings.Join(parts, ",")
}
