package main

import (
	"fmt"

	"github.com/docopt/docopt-go"
	"github.com/hupe1980/numlit/config"
)

func isSet(opts docopt.Opts, key string) bool {
	v, ok := opts[key]
	if !ok || v == nil {
		return false
	}
	if b, isBool := v.(bool); isBool {
		return b
	}
	return true
}

// loadConfig reads --config, if given, and applies the command line flags
// on top. Flags win over the file.
func loadConfig(opts docopt.Opts) (config.Config, error) {
	cfg := config.Default()

	if path, _ := opts["--config"].(string); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}

	if isSet(opts, "--base") {
		n, err := opts.Int("--base")
		if err != nil {
			return config.Config{}, fmt.Errorf("--base: %w", err)
		}
		cfg.Parse.Base = n
	}
	if isSet(opts, "--bits") {
		n, err := opts.Int("--bits")
		if err != nil {
			return config.Config{}, fmt.Errorf("--bits: %w", err)
		}
		cfg.Parse.BitSize = n
	}
	if isSet(opts, "--unsigned") {
		cfg.Parse.Unsigned = true
	}
	if s, _ := opts["--format"].(string); s != "" {
		cfg.Scan.Format = s
	}
	if s, _ := opts["--metrics-addr"].(string); s != "" {
		cfg.Metrics.Addr = s
	}
	if s, _ := opts["--log-level"].(string); s != "" {
		cfg.Log.Level = s
	}
	if s, _ := opts["--log-format"].(string); s != "" {
		cfg.Log.Format = s
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
