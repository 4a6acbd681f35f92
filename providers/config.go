// Package providers - Declarative provider configuration.
package providers

import (
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Config declares an ordered provider sequence and runtime location, loadable
// from a YAML/JSON/TOML file. The provider order in the file is the order the
// dispatcher attempts registration in.
type Config struct {
	// LibraryPath optionally points at the runtime shared library. Empty
	// means the default search behavior.
	LibraryPath string `json:"library_path" yaml:"library_path" mapstructure:"library_path"`

	// Providers lists backends in priority order.
	Providers []ProviderConfig `json:"providers" yaml:"providers" mapstructure:"providers"`
}

// ProviderConfig configures one backend in the sequence.
type ProviderConfig struct {
	// Backend selects the provider kind by short name, e.g. "cuda".
	Backend ProviderBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// Options contains provider-specific configuration options.
	Options map[string]string `json:"options" yaml:"options" mapstructure:"options"`

	// ErrorOnFailure aborts session construction if this provider fails to
	// register, instead of falling through to the next one.
	ErrorOnFailure bool `json:"error_on_failure" yaml:"error_on_failure" mapstructure:"error_on_failure"`
}

// LoadConfig reads a provider configuration file.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "reading provider config %s", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing provider config %s", path)
	}
	return &cfg, nil
}

// Dispatches converts the configured provider sequence into dispatchable
// provider instances, preserving order and failure policy.
func (c *Config) Dispatches() ([]Dispatch, error) {
	dispatches := make([]Dispatch, 0, len(c.Providers))
	for _, pc := range c.Providers {
		provider, err := newProviderForBackend(pc.Backend, pc.Options)
		if err != nil {
			return nil, err
		}

		dispatch := NewDispatch(provider)
		if pc.ErrorOnFailure {
			dispatch = dispatch.ErrorOnFailure()
		}
		dispatches = append(dispatches, dispatch)
	}
	return dispatches, nil
}

// newProviderForBackend constructs a provider from untyped config options.
// The switch is exhaustive over the closed backend set; an unknown name is a
// configuration error.
func newProviderForBackend(backend ProviderBackend, options map[string]string) (ExecutionProvider, error) {
	switch backend {
	case CPUProviderBackend:
		return NewCPUProvider(CPUOptions{
			UseArena: cast.ToBool(options["useArena"]),
		}), nil

	case CUDAProviderBackend:
		p := NewCUDAProvider(CUDAOptions{DeviceID: cast.ToInt(options["deviceID"])})
		applyArbitrary(options, []string{"deviceID"}, p.WithArbitraryConfig)
		return p, nil

	case TensorRTProviderBackend:
		p := NewTensorRTProvider(TensorRTOptions{DeviceID: cast.ToInt(options["deviceID"])})
		applyArbitrary(options, []string{"deviceID"}, p.WithArbitraryConfig)
		return p, nil

	case OneDNNProviderBackend:
		return NewOneDNNProvider(OneDNNOptions{
			UseArena: cast.ToBool(options["useArena"]),
		}), nil

	case ACLProviderBackend:
		return NewACLProvider(ACLOptions{
			EnableFastMath: cast.ToBool(options["enableFastMath"]),
		}), nil

	case OpenVINOProviderBackend:
		return NewOpenVINOProvider(OpenVINOOptions{
			DeviceType: options["deviceType"],
		}), nil

	case CoreMLProviderBackend:
		p := NewCoreMLProvider(CoreMLOptions{
			ModelFormat:         options["modelFormat"],
			MLComputeUnits:      options["mlComputeUnits"],
			ModelCacheDirectory: options["modelCacheDirectory"],
		})
		applyArbitrary(options, []string{"modelFormat", "mlComputeUnits", "modelCacheDirectory"}, p.WithArbitraryConfig)
		return p, nil

	case ROCmProviderBackend:
		return NewROCmProvider(ROCmOptions{
			DeviceID: cast.ToInt(options["deviceID"]),
		}), nil

	case CANNProviderBackend:
		p := NewCANNProvider(CANNOptions{DeviceID: cast.ToInt(options["deviceID"])})
		applyArbitrary(options, []string{"deviceID"}, p.WithArbitraryConfig)
		return p, nil

	case DirectMLProviderBackend:
		return NewDirectMLProvider(DirectMLOptions{
			DeviceID: cast.ToInt(options["deviceID"]),
		}), nil

	case TVMProviderBackend:
		return NewTVMProvider(TVMOptions{
			Executor:       options["executor"],
			Target:         options["target"],
			TargetHost:     options["targetHost"],
			OptLevel:       cast.ToInt(options["optLevel"]),
			Tuning:         cast.ToBool(options["tuning"]),
			TuningFilePath: options["tuningFilePath"],
		}), nil

	case NNAPIProviderBackend:
		return NewNNAPIProvider(NNAPIOptions{
			UseFP16:    cast.ToBool(options["useFP16"]),
			UseNCHW:    cast.ToBool(options["useNCHW"]),
			DisableCPU: cast.ToBool(options["disableCPU"]),
			CPUOnly:    cast.ToBool(options["cpuOnly"]),
		}), nil

	case QNNProviderBackend:
		p := NewQNNProvider(QNNOptions{
			BackendPath:        options["backendPath"],
			HTPPerformanceMode: options["htpPerformanceMode"],
			ProfilingLevel:     options["profilingLevel"],
		})
		applyArbitrary(options, []string{"backendPath", "htpPerformanceMode", "profilingLevel"}, p.WithArbitraryConfig)
		return p, nil

	case XNNPACKProviderBackend:
		p := NewXNNPACKProvider(XNNPACKOptions{
			IntraOpNumThreads: cast.ToInt(options["intraOpNumThreads"]),
		})
		applyArbitrary(options, []string{"intraOpNumThreads"}, p.WithArbitraryConfig)
		return p, nil

	case ArmNNProviderBackend:
		return NewArmNNProvider(ArmNNOptions{
			UseArena: cast.ToBool(options["useArena"]),
		}), nil

	case MIGraphXProviderBackend:
		return NewMIGraphXProvider(MIGraphXOptions{
			DeviceID: cast.ToInt(options["deviceID"]),
		}), nil

	case VitisAIProviderBackend:
		p := NewVitisAIProvider(VitisAIOptions{
			ConfigFile: options["configFile"],
			CacheDir:   options["cacheDir"],
			CacheKey:   options["cacheKey"],
		})
		applyArbitrary(options, []string{"configFile", "cacheDir", "cacheKey"}, p.WithArbitraryConfig)
		return p, nil

	case RKNPUProviderBackend:
		return NewRKNPUProvider(), nil

	default:
		return nil, errors.Errorf("unknown provider backend %q", backend)
	}
}

// applyArbitrary forwards config options not claimed by typed fields into a
// provider's arbitrary-config hook.
func applyArbitrary[T any](options map[string]string, typed []string, apply func(key, value string) T) {
	claimed := make(map[string]struct{}, len(typed))
	for _, key := range typed {
		claimed[key] = struct{}{}
	}
	for key, value := range options {
		if _, ok := claimed[key]; ok {
			continue
		}
		apply(key, value)
	}
}
