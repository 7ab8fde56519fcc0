package uniform

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/cyberpunk042/the-virus-block-mc-sub004/common"
)

// floats decodes a serialized buffer back into its float32 sequence.
func floats(t *testing.T, buf []byte) []float32 {
	t.Helper()
	if len(buf)%4 != 0 {
		t.Fatalf("buffer length %d is not a multiple of 4", len(buf))
	}
	out := make([]float32, len(buf)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return out
}

func expectFloats(t *testing.T, got []byte, want []float32) {
	t.Helper()
	gf := floats(t, got)
	if len(gf) != len(want) {
		t.Fatalf("expected %d floats, got %d", len(want), len(gf))
	}
	for i := range want {
		if gf[i] != want[i] {
			t.Errorf("float %d: expected %v, got %v", i, want[i], gf[i])
		}
	}
}

func TestMarshalScalarsVec4AndPartialArray(t *testing.T) {
	type params struct {
		Timing   [4]float32    `uniform:"scalars"`
		Center   common.Vec4   `uniform:"vec4"`
		Orbitals []common.Vec4 `uniform:"vec4array,count=2"`
	}

	buf, err := Marshal(params{
		Timing:   [4]float32{1, 2, 3, 4},
		Center:   common.Vec4{5, 6, 7, 8},
		Orbitals: []common.Vec4{{9, 10, 11, 12}},
	})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if len(buf) != 64 {
		t.Fatalf("expected 64 bytes, got %d", len(buf))
	}
	expectFloats(t, buf, []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		0, 0, 0, 0,
	})
}

func TestMarshalPaddedScalars(t *testing.T) {
	type params struct {
		Edge [3]float32 `uniform:"scalars,pad"`
	}

	buf, err := Marshal(params{Edge: [3]float32{1.5, 2.5, 3.5}})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if len(buf) != 16 {
		t.Fatalf("expected 16 bytes, got %d", len(buf))
	}
	expectFloats(t, buf, []float32{1.5, 2.5, 3.5, 0})
}

func TestMarshalMatrixColumnOrder(t *testing.T) {
	type params struct {
		Placement common.Mat4 `uniform:"mat4"`
	}

	// Distinct value in every cell: column i holds 10i+1 .. 10i+4.
	var m common.Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			m[col*4+row] = float32(col*10 + row + 1)
		}
	}

	buf, err := Marshal(params{Placement: m})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if len(buf) != 64 {
		t.Fatalf("expected 64 bytes, got %d", len(buf))
	}

	got := floats(t, buf)
	for col := 0; col < 4; col++ {
		want := m.Column(col)
		for row := 0; row < 4; row++ {
			if got[col*4+row] != want[row] {
				t.Errorf("column %d row %d: expected %v, got %v", col, row, want[row], got[col*4+row])
			}
		}
	}
}

func TestMarshalIdentityMatrix(t *testing.T) {
	type params struct {
		Placement common.Mat4 `uniform:"mat4"`
	}

	buf, err := Marshal(params{Placement: common.IdentityMat4()})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	expectFloats(t, buf, []float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

func TestMarshalVec4Sources(t *testing.T) {
	type params struct {
		Origin common.Position  `uniform:"vec4"`
		Aim    common.Direction `uniform:"vec4"`
		Tint   common.ColorRGBA `uniform:"vec4"`
		Raw    [4]float32       `uniform:"vec4"`
	}

	buf, err := Marshal(params{
		Origin: common.Position{X: 1, Y: 2, Z: 3},
		Aim:    common.Direction{X: 0, Y: 1, Z: 0},
		Tint:   common.ColorRGBA{R: 0.1, G: 0.2, B: 0.3, A: 0.4},
		Raw:    [4]float32{7, 8, 9, 10},
	})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	expectFloats(t, buf, []float32{
		1, 2, 3, 1,
		0, 1, 0, 0,
		0.1, 0.2, 0.3, 0.4,
		7, 8, 9, 10,
	})
}

func TestMarshalNestedInlining(t *testing.T) {
	type base struct {
		Origin common.Position `uniform:"vec4"`
		Pulse  [2]float32      `uniform:"scalars,pad"`
	}
	type params struct {
		Common base
		Tint   common.ColorRGBA `uniform:"vec4"`
	}

	buf, err := Marshal(params{
		Common: base{Origin: common.Position{X: 4, Y: 5, Z: 6}, Pulse: [2]float32{0.5, 0.25}},
		Tint:   common.ColorRGBA{R: 1, G: 1, B: 1, A: 1},
	})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	expectFloats(t, buf, []float32{
		4, 5, 6, 1,
		0.5, 0.25, 0, 0,
		1, 1, 1, 1,
	})
}

func TestMarshalZeroFillAndTruncation(t *testing.T) {
	type params struct {
		Orbitals []common.Vec4 `uniform:"vec4array,count=3"`
	}

	tests := []struct {
		name      string
		populated []common.Vec4
		want      []float32
	}{
		{
			name:      "empty",
			populated: nil,
			want:      make([]float32, 12),
		},
		{
			name:      "partial",
			populated: []common.Vec4{{1, 1, 1, 1}, {2, 2, 2, 2}},
			want:      []float32{1, 1, 1, 1, 2, 2, 2, 2, 0, 0, 0, 0},
		},
		{
			name:      "overfull is truncated",
			populated: []common.Vec4{{1, 1, 1, 1}, {2, 2, 2, 2}, {3, 3, 3, 3}, {4, 4, 4, 4}},
			want:      []float32{1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := Marshal(params{Orbitals: tt.populated})
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if len(buf) != 48 {
				t.Fatalf("expected 48 bytes regardless of population, got %d", len(buf))
			}
			expectFloats(t, buf, tt.want)
		})
	}
}

func TestMarshalSizeAgreement(t *testing.T) {
	type inner struct {
		Aim  common.Direction `uniform:"vec4"`
		Gain float32          `uniform:"scalars,pad"`
	}
	type params struct {
		View     common.Mat4   `uniform:"mat4"`
		Nested   inner
		Emitters []common.Vec4 `uniform:"vec4array,count=4"`
		Falloff  [2]float32    `uniform:"scalars"`
	}

	v := params{
		View:     common.Perspective(1.2, 16.0/9.0, 0.1, 100),
		Nested:   inner{Aim: common.Direction{Y: 1}, Gain: 0.8},
		Emitters: []common.Vec4{{1, 2, 3, 4}},
		Falloff:  [2]float32{0.5, 2},
	}

	size, err := SizeOf(v)
	if err != nil {
		t.Fatalf("SizeOf failed: %v", err)
	}
	buf, err := Marshal(v)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if len(buf) != size {
		t.Errorf("SizeOf reported %d bytes but Marshal emitted %d", size, len(buf))
	}
}

func TestMarshalIdempotence(t *testing.T) {
	type params struct {
		Timing [4]float32  `uniform:"scalars"`
		Center common.Vec4 `uniform:"vec4"`
	}

	v := params{Timing: [4]float32{1, 2, 3, 4}, Center: common.Vec4{5, 6, 7, 8}}

	first, err := Marshal(v)
	if err != nil {
		t.Fatalf("first Marshal failed: %v", err)
	}
	second, err := Marshal(v)
	if err != nil {
		t.Fatalf("second Marshal failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("expected byte-identical output from repeated serialization")
	}
}

func TestWriteAppendsToSharedBuffer(t *testing.T) {
	type header struct {
		Timing [4]float32 `uniform:"scalars"`
	}
	type body struct {
		Tint common.Vec4 `uniform:"vec4"`
	}

	dst := NewBuffer(32)
	if err := Write(dst, header{Timing: [4]float32{1, 2, 3, 4}}); err != nil {
		t.Fatalf("first Write failed: %v", err)
	}
	if dst.Len() != 16 {
		t.Fatalf("expected cursor at 16 after header, got %d", dst.Len())
	}
	if err := Write(dst, body{Tint: common.Vec4{5, 6, 7, 8}}); err != nil {
		t.Fatalf("second Write failed: %v", err)
	}
	expectFloats(t, dst.Bytes(), []float32{1, 2, 3, 4, 5, 6, 7, 8})
}

func TestMarshalNilPointer(t *testing.T) {
	type params struct {
		Timing float32 `uniform:"scalars"`
	}
	var p *params
	if _, err := Marshal(p); err == nil {
		t.Error("expected an error marshaling a nil pointer")
	}
}

func TestBufferPadTo16(t *testing.T) {
	b := NewBuffer(16)
	b.PutFloat32(1)
	b.PadTo16()
	if b.Len() != 16 {
		t.Errorf("expected padded length 16, got %d", b.Len())
	}
	if !b.Aligned16() {
		t.Error("expected cursor to be 16-byte aligned after PadTo16")
	}
	b.PadTo16()
	if b.Len() != 16 {
		t.Errorf("expected PadTo16 on aligned cursor to be a no-op, got %d", b.Len())
	}
}
