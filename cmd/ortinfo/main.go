// Command ortinfo reports which execution providers the local ONNX Runtime
// build offers, and how that intersects with the current platform.
package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nvr-ai/go-ort/engine"
	"github.com/nvr-ai/go-ort/providers"
)

func main() {
	configPath := flag.String("config", "", "path to a provider config file")
	libraryPath := flag.String("library", "", "path to the onnxruntime shared library")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// Optional; environment overrides live in .env during development.
	_ = godotenv.Load()

	if *configPath != "" {
		cfg, err := providers.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("loading config")
		}
		if cfg.LibraryPath != "" {
			engine.SetSharedLibraryPath(cfg.LibraryPath)
		}
	}
	if *libraryPath != "" {
		engine.SetSharedLibraryPath(*libraryPath)
	}

	lib, err := engine.Default()
	if err != nil {
		log.Fatal().Err(err).Str("path", engine.SharedLibraryPath()).Msg("loading onnxruntime library")
	}

	compiled, err := lib.AvailableProviders()
	if err != nil {
		log.Fatal().Err(err).Msg("querying available providers")
	}

	available := make(map[string]bool, len(compiled))
	for _, identifier := range compiled {
		available[identifier] = true
	}

	log.Info().Strs("providers", compiled).Msg("compiled into this runtime build")

	for _, p := range providers.AllProviders() {
		log.Info().
			Str("backend", string(p.Backend())).
			Str("identifier", p.Identifier()).
			Bool("platform_supported", p.SupportedByPlatform()).
			Bool("compiled_in", available[p.Identifier()]).
			Msg("provider")
	}
}
