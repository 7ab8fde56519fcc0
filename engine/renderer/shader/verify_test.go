package shader

import (
	"testing"

	"github.com/cyberpunk042/the-virus-block-mc-sub004/common"
	"github.com/cyberpunk042/the-virus-block-mc-sub004/engine/uniform"
)

const coronaWGSL = `
// Corona effect parameters.
struct CoronaParams {
    timing: vec4<f32>,
    tint: vec4<f32>,
    orbitals: array<vec4<f32>, 2>,
    placement: mat4x4<f32>,
}

@group(0) @binding(0) var<uniform> corona: CoronaParams;

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return corona.tint;
}
`

type coronaHost struct {
	Timing    [4]float32       `uniform:"scalars"`
	Tint      common.ColorRGBA `uniform:"vec4"`
	Orbitals  []common.Vec4    `uniform:"vec4array,count=2"`
	Placement common.Mat4      `uniform:"mat4"`
}

func TestVerifyBlockMatch(t *testing.T) {
	desc, err := uniform.Describe(coronaHost{})
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}

	result := VerifyBlock(desc, "CoronaParams", coronaWGSL)
	if !result.Found {
		t.Fatal("expected CoronaParams block to be found")
	}
	if !result.Bound {
		t.Error("expected CoronaParams to be bound as var<uniform>")
	}
	if !result.Matches() {
		t.Errorf("expected sizes to match, host=%d wgsl=%d", result.HostSize, result.WGSLSize)
	}
	if result.WGSLSize != 128 {
		t.Errorf("expected WGSL size 128, got %d", result.WGSLSize)
	}
}

func TestVerifyBlockSizeDrift(t *testing.T) {
	// Shader-side mirror is missing the orbital array: classic drift.
	drifted := `
struct CoronaParams {
    timing: vec4<f32>,
    tint: vec4<f32>,
    placement: mat4x4<f32>,
}
@group(0) @binding(0) var<uniform> corona: CoronaParams;
`
	desc, err := uniform.Describe(coronaHost{})
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}

	result := VerifyBlock(desc, "CoronaParams", drifted)
	if !result.Found {
		t.Fatal("expected CoronaParams block to be found")
	}
	if result.Matches() {
		t.Error("expected a size mismatch to be reported")
	}
	if result.WGSLSize != 96 {
		t.Errorf("expected drifted WGSL size 96, got %d", result.WGSLSize)
	}
}

func TestVerifyBlockMissing(t *testing.T) {
	desc, err := uniform.Describe(coronaHost{})
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}

	result := VerifyBlock(desc, "CoronaParams", "fn noop() {}")
	if result.Found {
		t.Error("expected no block to be found in unrelated source")
	}
	if result.Matches() {
		t.Error("a missing block must never report a match")
	}
}

func TestVerifyBlockDefaultsToTypeName(t *testing.T) {
	type RingParams struct {
		Edge [4]float32 `uniform:"scalars"`
	}
	desc, err := uniform.Describe(RingParams{})
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}

	source := `
struct RingParams { edge: vec4<f32>, }
@group(0) @binding(1) var<uniform> ring: RingParams;
`
	result := VerifyBlock(desc, "", source)
	if result.BlockName != "RingParams" {
		t.Errorf("expected fallback block name RingParams, got %s", result.BlockName)
	}
	if !result.Matches() {
		t.Errorf("expected sizes to match, host=%d wgsl=%d", result.HostSize, result.WGSLSize)
	}
}

func TestComputeStructSizes(t *testing.T) {
	source := stripComments(`
struct Inner {
    direction: vec3<f32>, // 12 bytes, aligned 16
    gain: f32,
}
struct Outer {
    inner: Inner,
    emitters: array<vec4<f32>, 4>,
    falloff: vec2<f32>,
}
`)
	sizes := computeStructSizes(parseStructBlocks(source))

	inner, ok := sizes["Inner"]
	if !ok {
		t.Fatal("Inner struct was not resolved")
	}
	if inner.size != 16 || inner.align != 16 {
		t.Errorf("Inner: expected size 16 align 16, got size %d align %d", inner.size, inner.align)
	}

	outer, ok := sizes["Outer"]
	if !ok {
		t.Fatal("Outer struct was not resolved")
	}
	// inner (16) + 4 vec4s (64) + vec2 (8) rounded up to align 16 = 96
	if outer.size != 96 {
		t.Errorf("Outer: expected size 96, got %d", outer.size)
	}
}

func TestResolveTypeLayoutArrays(t *testing.T) {
	known := map[string]wgslTypeLayout{}

	layout, ok := resolveTypeLayout("array<vec4<f32>, 8>", known)
	if !ok {
		t.Fatal("fixed-size vec4 array should resolve")
	}
	if layout.size != 128 {
		t.Errorf("expected array size 128, got %d", layout.size)
	}

	// vec3 elements stride at 16 despite a 12-byte size.
	layout, ok = resolveTypeLayout("array<vec3<f32>, 4>", known)
	if !ok {
		t.Fatal("fixed-size vec3 array should resolve")
	}
	if layout.size != 64 {
		t.Errorf("expected vec3 array stride to pad to 64 bytes, got %d", layout.size)
	}

	if _, ok = resolveTypeLayout("array<vec4<f32>>", known); ok {
		t.Error("runtime-sized arrays must not resolve to a static layout")
	}
}

func TestStripComments(t *testing.T) {
	source := `
struct A { // trailing comment
    /* block
       comment */ x: f32,
    /* nested /* comment */ still comment */ y: f32,
}
`
	cleaned := stripComments(source)
	structs := parseStructBlocks(cleaned)
	if len(structs) != 1 {
		t.Fatalf("expected 1 struct, got %d", len(structs))
	}
	if len(structs[0].fields) != 2 {
		t.Fatalf("expected 2 fields after comment stripping, got %d", len(structs[0].fields))
	}
	if structs[0].fields[0].name != "x" || structs[0].fields[1].name != "y" {
		t.Errorf("unexpected field names: %+v", structs[0].fields)
	}
}
