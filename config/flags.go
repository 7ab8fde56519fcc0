package config

import (
	"flag"

	"github.com/cyberpunk042/the-virus-block-mc-sub004/common"
)

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagShaders = flag.String("shaders", "", "Shader source directory")
	flagWorkers = flag.Int("workers", 0, "Parallel shape check workers")
	flagStrict  = flag.Bool("strict", false, "Warn on every shader drift check")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	cfg.Shaders.Dir = common.Coalesce(*flagShaders, cfg.Shaders.Dir)
	if *flagWorkers > 0 {
		cfg.Shaders.Workers = *flagWorkers
	}
	if *flagStrict {
		cfg.Uniforms.WarnOnDrift = true
	}
}
