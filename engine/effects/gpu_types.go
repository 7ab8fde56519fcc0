// Package effects declares the uniform parameter blocks the engine uploads
// each frame, one struct per visual effect. Every struct carries layout
// metadata in its field tags and a canonical WGSL mirror embedded next to it,
// so the shape check tooling can cross-reference the two.
package effects

import (
	_ "embed"

	"github.com/cyberpunk042/the-virus-block-mc-sub004/common"
	"github.com/cyberpunk042/the-virus-block-mc-sub004/engine/uniform"
)

// EffectCommon is the shared leading block of every positional effect.
// Structs embed it as their first untagged field so its entries inline at
// offset 0 of the containing block.
type EffectCommon struct {
	// Origin is the world-space effect origin. Serialized with w = 1.
	Origin common.Position `uniform:"vec4"`

	// Tint is the RGBA color multiplier for the whole effect.
	Tint common.ColorRGBA `uniform:"vec4"`

	// Age is seconds since the effect spawned.
	Age float32 `uniform:"scalars"`

	// Intensity is the overall strength multiplier. Padded so the common
	// block always spans a whole number of 16-byte slots.
	Intensity float32 `uniform:"scalars,pad"`
}

// FrameUniformsSource is the canonical WGSL declaration of the FrameUniforms
// block. The struct layout below must stay in lockstep with it (160 bytes).
//
//go:embed assets/frame.wgsl
var FrameUniformsSource string

// FrameUniforms holds the per-frame globals shared by every effect pass:
// camera matrices, camera position, and clock values.
// Matches the WGSL FrameUniforms struct layout exactly (see FrameUniformsSource).
// Size: 160 bytes.
type FrameUniforms struct {
	// ViewProj is the camera view-projection matrix.
	ViewProj common.Mat4 `uniform:"mat4"`

	// InvViewProj is the inverse of ViewProj, used by fullscreen passes to
	// reconstruct world-space rays.
	InvViewProj common.Mat4 `uniform:"mat4"`

	// CameraPos is the world-space camera position. Serialized with w = 1.
	CameraPos common.Position `uniform:"vec4"`

	// Time is seconds since engine start.
	Time float32 `uniform:"scalars"`

	// Delta is seconds since the previous frame.
	Delta float32 `uniform:"scalars"`

	// Screen is the viewport size in pixels (width, height).
	Screen [2]float32 `uniform:"scalars"`
}

// CoronaUniformsSource is the canonical WGSL declaration of the
// CoronaUniforms block (192 bytes).
//
//go:embed assets/corona.wgsl
var CoronaUniformsSource string

// CoronaUniforms drives the particle corona: a pulsing halo with up to eight
// orbiting bright points.
// Matches the WGSL CoronaUniforms struct layout exactly (see CoronaUniformsSource).
// Size: 192 bytes.
type CoronaUniforms struct {
	Common EffectCommon

	// Orbitals holds up to eight orbital particles as (x, y, z, phase).
	// Unpopulated slots serialize as zero.
	Orbitals []common.Vec4 `uniform:"vec4array,count=8"`

	// PulseSpeed is the halo pulse frequency in radians per second.
	PulseSpeed float32 `uniform:"scalars"`

	// PulseWidth is the fraction of the halo covered by the bright band.
	PulseWidth float32 `uniform:"scalars"`

	// OrbitRadius is the orbital distance from the origin.
	OrbitRadius float32 `uniform:"scalars,pad"`
}

// ShockwaveUniformsSource is the canonical WGSL declaration of the
// ShockwaveUniforms block (64 bytes).
//
//go:embed assets/shockwave.wgsl
var ShockwaveUniformsSource string

// ShockwaveUniforms drives the expanding ring effect.
// Matches the WGSL ShockwaveUniforms struct layout exactly (see ShockwaveUniformsSource).
// Size: 64 bytes.
type ShockwaveUniforms struct {
	Common EffectCommon

	// Radius is the current ring radius in world units.
	Radius float32 `uniform:"scalars"`

	// Thickness is the ring band thickness.
	Thickness float32 `uniform:"scalars"`

	// EdgeSoftness is the falloff width at the band edges.
	EdgeSoftness float32 `uniform:"scalars"`

	// ExpansionRate is the radius growth in world units per second.
	ExpansionRate float32 `uniform:"scalars"`
}

// DecalUniformsSource is the canonical WGSL declaration of the DecalUniforms
// block (96 bytes).
//
//go:embed assets/decal.wgsl
var DecalUniformsSource string

// DecalUniforms drives a projected ground decal.
// Matches the WGSL DecalUniforms struct layout exactly (see DecalUniformsSource).
// Size: 96 bytes.
type DecalUniforms struct {
	// Placement is the world-to-decal projection matrix.
	Placement common.Mat4 `uniform:"mat4"`

	// Tint is the RGBA decal color.
	Tint common.ColorRGBA `uniform:"vec4"`

	// Fade is the remaining fade fraction, 1 at spawn down to 0.
	Fade float32 `uniform:"scalars"`

	// Scale is the uniform footprint scale.
	Scale float32 `uniform:"scalars"`

	// Rotation is the rotation around the projection axis in radians.
	Rotation float32 `uniform:"scalars,pad"`
}

// SmokeUniformsSource is the canonical WGSL declaration of the SmokeUniforms
// block (80 bytes).
//
//go:embed assets/smoke.wgsl
var SmokeUniformsSource string

// SmokeUniforms drives the volumetric smoke overlay fed by up to four
// emitters.
// Matches the WGSL SmokeUniforms struct layout exactly (see SmokeUniformsSource).
// Size: 80 bytes.
type SmokeUniforms struct {
	// Emitters holds up to four emitters as (x, y, z, strength).
	// Unpopulated slots serialize as zero.
	Emitters []common.Vec4 `uniform:"vec4array,count=4"`

	// Density is the base smoke density.
	Density float32 `uniform:"scalars"`

	// Falloff is the distance falloff exponent.
	Falloff float32 `uniform:"scalars"`

	// Rise is the vertical drift in world units per second.
	Rise float32 `uniform:"scalars,pad"`
}

// Marshal serializes the frame globals into a buffer ready for GPU upload.
//
// Returns:
//   - []byte: 160-byte buffer ready for GPU upload
//   - error: serialization error, if any
func (f *FrameUniforms) Marshal() ([]byte, error) {
	return uniform.Marshal(f)
}

// Marshal serializes the corona parameters into a buffer ready for GPU upload.
//
// Returns:
//   - []byte: 192-byte buffer ready for GPU upload
//   - error: serialization error, if any
func (c *CoronaUniforms) Marshal() ([]byte, error) {
	return uniform.Marshal(c)
}

// Marshal serializes the shockwave parameters into a buffer ready for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload
//   - error: serialization error, if any
func (s *ShockwaveUniforms) Marshal() ([]byte, error) {
	return uniform.Marshal(s)
}

// Marshal serializes the decal parameters into a buffer ready for GPU upload.
//
// Returns:
//   - []byte: 96-byte buffer ready for GPU upload
//   - error: serialization error, if any
func (d *DecalUniforms) Marshal() ([]byte, error) {
	return uniform.Marshal(d)
}

// Marshal serializes the smoke parameters into a buffer ready for GPU upload.
//
// Returns:
//   - []byte: 80-byte buffer ready for GPU upload
//   - error: serialization error, if any
func (s *SmokeUniforms) Marshal() ([]byte, error) {
	return uniform.Marshal(s)
}
