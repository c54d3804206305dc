// Package config loads the ambient evaluator settings (default dialect
// version, max call depth, trace-on-start) from a brewin.yaml file, mirroring
// how go-dws separates "what the language does" from "how this run is
// configured".
package config

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/brewin-lang/brewin/internal/interp"
)

// Config is brewin.yaml's schema. Every field has a zero value that Load
// replaces with interp's own default, so an absent or partial file is valid.
type Config struct {
	// DialectVersion selects the default `--interpreter` value (1..4) when
	// the CLI flag is not given.
	DialectVersion int `yaml:"dialect_version"`
	// MaxCallDepth caps nested function/method calls.
	MaxCallDepth int `yaml:"max_call_depth"`
	// Trace turns on execution tracing by default.
	Trace bool `yaml:"trace"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		DialectVersion: 4,
		MaxCallDepth:   interp.DefaultMaxRecursionDepth,
		Trace:          false,
	}
}

// Load reads and parses path. A missing file is not an error: Load returns
// Default() in that case, matching the CLI's "brewin.yaml is optional"
// contract.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.DialectVersion <= 0 {
		cfg.DialectVersion = 4
	}
	if cfg.MaxCallDepth <= 0 {
		cfg.MaxCallDepth = interp.DefaultMaxRecursionDepth
	}
	return cfg, nil
}
