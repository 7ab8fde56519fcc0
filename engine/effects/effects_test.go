package effects

import (
	"testing"

	"github.com/cyberpunk042/the-virus-block-mc-sub004/common"
	"github.com/cyberpunk042/the-virus-block-mc-sub004/config"
	"github.com/cyberpunk042/the-virus-block-mc-sub004/engine/renderer/shader"
	"github.com/cyberpunk042/the-virus-block-mc-sub004/engine/uniform"
)

func TestBlockSizes(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want int
	}{
		{"FrameUniforms", FrameUniforms{}, 160},
		{"CoronaUniforms", CoronaUniforms{}, 192},
		{"ShockwaveUniforms", ShockwaveUniforms{}, 64},
		{"DecalUniforms", DecalUniforms{}, 96},
		{"SmokeUniforms", SmokeUniforms{}, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, err := uniform.SizeOf(tt.v)
			if err != nil {
				t.Fatalf("SizeOf failed: %v", err)
			}
			if size != tt.want {
				t.Errorf("expected %d bytes, got %d", tt.want, size)
			}
		})
	}
}

func TestBlocksMatchEmbeddedWGSL(t *testing.T) {
	for _, block := range Blocks() {
		t.Run(block.Name, func(t *testing.T) {
			desc, err := block.Describe()
			if err != nil {
				t.Fatalf("Describe failed: %v", err)
			}

			result := shader.VerifyBlock(desc, block.Name, block.Source)
			if !result.Found {
				t.Fatalf("embedded WGSL declares no %s block", block.Name)
			}
			if !result.Bound {
				t.Errorf("%s is declared but never bound as var<uniform>", block.Name)
			}
			if !result.Matches() {
				t.Errorf("size drift: host %d bytes, WGSL %d bytes", result.HostSize, result.WGSLSize)
			}
		})
	}
}

func TestCoronaCommonInlinesAtOffsetZero(t *testing.T) {
	desc, err := uniform.Describe(CoronaUniforms{})
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}

	if len(desc.Entries) == 0 {
		t.Fatal("descriptor has no entries")
	}
	first := desc.Entries[0]
	if first.Name != "Common.Origin" {
		t.Errorf("expected first entry Common.Origin, got %s", first.Name)
	}
	if first.Offset != 0 {
		t.Errorf("expected inlined common block at offset 0, got %d", first.Offset)
	}

	// Orbitals start right after the 48-byte common block.
	for _, e := range desc.Entries {
		if e.Name == "Orbitals" {
			if e.Offset != 48 {
				t.Errorf("expected orbitals at offset 48, got %d", e.Offset)
			}
			return
		}
	}
	t.Error("descriptor has no Orbitals entry")
}

func TestFrameUniformsMarshal(t *testing.T) {
	f := FrameUniforms{
		ViewProj:    common.IdentityMat4(),
		InvViewProj: common.IdentityMat4(),
		CameraPos:   common.Position{X: 0, Y: 5, Z: -10},
		Time:        12.5,
		Delta:       0.016,
		Screen:      [2]float32{1920, 1080},
	}

	buf, err := f.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if len(buf) != 160 {
		t.Errorf("expected 160 bytes, got %d", len(buf))
	}
}

func TestSmokeUniformsZeroFill(t *testing.T) {
	s := SmokeUniforms{
		Emitters: []common.Vec4{{1, 2, 3, 0.5}},
		Density:  0.6,
	}

	buf, err := s.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if len(buf) != 80 {
		t.Fatalf("expected 80 bytes, got %d", len(buf))
	}

	// Emitter slots 2..4 must be zero.
	for i := 16; i < 64; i++ {
		if buf[i] != 0 {
			t.Fatalf("expected zero fill at byte %d, got %d", i, buf[i])
		}
	}
}

func TestPresetConstructors(t *testing.T) {
	cfg := config.Default()

	corona := NewCoronaUniforms(cfg.Effects.Corona)
	if corona.PulseSpeed != cfg.Effects.Corona.PulseSpeed {
		t.Errorf("expected pulse speed %f, got %f", cfg.Effects.Corona.PulseSpeed, corona.PulseSpeed)
	}
	if corona.Common.Intensity != 1 {
		t.Errorf("expected intensity 1, got %f", corona.Common.Intensity)
	}
	if corona.Common.Tint.R != cfg.Effects.Corona.Tint[0] {
		t.Errorf("expected tint red %f, got %f", cfg.Effects.Corona.Tint[0], corona.Common.Tint.R)
	}

	shock := NewShockwaveUniforms(cfg.Effects.Shockwave)
	if shock.ExpansionRate != cfg.Effects.Shockwave.ExpansionRate {
		t.Errorf("expected expansion rate %f, got %f", cfg.Effects.Shockwave.ExpansionRate, shock.ExpansionRate)
	}

	decal := NewDecalUniforms(cfg.Effects.Decal)
	if decal.Placement != common.IdentityMat4() {
		t.Error("expected identity placement")
	}
	if decal.Fade != 1 {
		t.Errorf("expected fade 1, got %f", decal.Fade)
	}

	smoke := NewSmokeUniforms(cfg.Effects.Smoke)
	if smoke.Density != cfg.Effects.Smoke.Density {
		t.Errorf("expected density %f, got %f", cfg.Effects.Smoke.Density, smoke.Density)
	}

	// Every preset-built struct must serialize cleanly.
	for _, v := range []interface{ Marshal() ([]byte, error) }{&corona, &shock, &decal, &smoke} {
		if _, err := v.Marshal(); err != nil {
			t.Errorf("Marshal failed: %v", err)
		}
	}
}
