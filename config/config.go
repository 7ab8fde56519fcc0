// Package config handles effect preset loading and management.
package config

// Config holds all engine presets.
type Config struct {
	Shaders  ShadersConfig  `yaml:"shaders"`
	Effects  EffectsConfig  `yaml:"effects"`
	Uniforms UniformsConfig `yaml:"uniforms"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ShadersConfig holds shader source locations for the shape check tooling.
type ShadersConfig struct {
	Dir     string `yaml:"dir"`     // Directory scanned for .wgsl sources
	Workers int    `yaml:"workers"` // Parallel validations during shape checks
}

// EffectsConfig holds the per-effect tuning sections.
type EffectsConfig struct {
	Corona    CoronaConfig    `yaml:"corona"`
	Shockwave ShockwaveConfig `yaml:"shockwave"`
	Decal     DecalConfig     `yaml:"decal"`
	Smoke     SmokeConfig     `yaml:"smoke"`
}

// CoronaConfig tunes the particle corona effect.
type CoronaConfig struct {
	Tint        [4]float32 `yaml:"tint"`
	PulseSpeed  float32    `yaml:"pulse_speed"`
	PulseWidth  float32    `yaml:"pulse_width"`
	OrbitRadius float32    `yaml:"orbit_radius"`
}

// ShockwaveConfig tunes the expanding ring effect.
type ShockwaveConfig struct {
	Tint          [4]float32 `yaml:"tint"`
	ExpansionRate float32    `yaml:"expansion_rate"`
	RingThickness float32    `yaml:"ring_thickness"`
	EdgeSoftness  float32    `yaml:"edge_softness"`
}

// DecalConfig tunes the ground decal effect.
type DecalConfig struct {
	Tint     [4]float32 `yaml:"tint"`
	FadeTime float32    `yaml:"fade_time"`
	Scale    float32    `yaml:"scale"`
}

// SmokeConfig tunes the smoke overlay effect.
type SmokeConfig struct {
	Density float32 `yaml:"density"`
	Falloff float32 `yaml:"falloff"`
	Rise    float32 `yaml:"rise"`
}

// UniformsConfig holds serialization-wide settings.
type UniformsConfig struct {
	// WarnOnDrift controls whether shader shape checks log mismatches at
	// startup. The checks never fail the engine either way.
	WarnOnDrift bool `yaml:"warn_on_drift"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Shaders: ShadersConfig{
			Dir:     "./assets/shaders",
			Workers: 4,
		},
		Effects: EffectsConfig{
			Corona: CoronaConfig{
				Tint:        [4]float32{1.0, 0.85, 0.3, 1.0},
				PulseSpeed:  2.0,
				PulseWidth:  0.35,
				OrbitRadius: 1.5,
			},
			Shockwave: ShockwaveConfig{
				Tint:          [4]float32{0.4, 0.8, 1.0, 0.9},
				ExpansionRate: 6.0,
				RingThickness: 0.25,
				EdgeSoftness:  0.1,
			},
			Decal: DecalConfig{
				Tint:     [4]float32{0.1, 0.1, 0.1, 0.8},
				FadeTime: 4.0,
				Scale:    1.0,
			},
			Smoke: SmokeConfig{
				Density: 0.6,
				Falloff: 2.0,
				Rise:    0.4,
			},
		},
		Uniforms: UniformsConfig{
			WarnOnDrift: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
