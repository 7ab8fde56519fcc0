package effects

import (
	"github.com/cyberpunk042/the-virus-block-mc-sub004/common"
	"github.com/cyberpunk042/the-virus-block-mc-sub004/config"
)

// NewCoronaUniforms builds corona parameters from a tuning preset. Dynamic
// values (origin, age, orbital positions) start zeroed and are populated by
// the caller each frame.
//
// Parameters:
//   - preset: the corona tuning section from the loaded config
//
// Returns:
//   - CoronaUniforms: parameters seeded from the preset
func NewCoronaUniforms(preset config.CoronaConfig) CoronaUniforms {
	return CoronaUniforms{
		Common: EffectCommon{
			Tint:      tintColor(preset.Tint),
			Intensity: 1,
		},
		PulseSpeed:  preset.PulseSpeed,
		PulseWidth:  preset.PulseWidth,
		OrbitRadius: preset.OrbitRadius,
	}
}

// NewShockwaveUniforms builds shockwave parameters from a tuning preset.
//
// Parameters:
//   - preset: the shockwave tuning section from the loaded config
//
// Returns:
//   - ShockwaveUniforms: parameters seeded from the preset
func NewShockwaveUniforms(preset config.ShockwaveConfig) ShockwaveUniforms {
	return ShockwaveUniforms{
		Common: EffectCommon{
			Tint:      tintColor(preset.Tint),
			Intensity: 1,
		},
		Thickness:     preset.RingThickness,
		EdgeSoftness:  preset.EdgeSoftness,
		ExpansionRate: preset.ExpansionRate,
	}
}

// NewDecalUniforms builds decal parameters from a tuning preset. Placement
// defaults to identity until the caller projects the decal.
//
// Parameters:
//   - preset: the decal tuning section from the loaded config
//
// Returns:
//   - DecalUniforms: parameters seeded from the preset
func NewDecalUniforms(preset config.DecalConfig) DecalUniforms {
	return DecalUniforms{
		Placement: common.IdentityMat4(),
		Tint:      tintColor(preset.Tint),
		Fade:      1,
		Scale:     preset.Scale,
	}
}

// NewSmokeUniforms builds smoke parameters from a tuning preset.
//
// Parameters:
//   - preset: the smoke tuning section from the loaded config
//
// Returns:
//   - SmokeUniforms: parameters seeded from the preset
func NewSmokeUniforms(preset config.SmokeConfig) SmokeUniforms {
	return SmokeUniforms{
		Density: preset.Density,
		Falloff: preset.Falloff,
		Rise:    preset.Rise,
	}
}

func tintColor(rgba [4]float32) common.ColorRGBA {
	return common.ColorRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
}
