package common

import (
	"math"
	"testing"
)

func TestIdentityMat4Columns(t *testing.T) {
	m := IdentityMat4()
	for col := 0; col < 4; col++ {
		c := m.Column(col)
		for row := 0; row < 4; row++ {
			want := float32(0)
			if row == col {
				want = 1
			}
			if c[row] != want {
				t.Errorf("column %d row %d: expected %v, got %v", col, row, want, c[row])
			}
		}
	}
}

func TestMat4MulIdentity(t *testing.T) {
	m := Compose(Position{X: 1, Y: 2, Z: 3}, 0.5, 1.0, 0.25, 2)
	got := m.Mul(IdentityMat4())
	if got != m {
		t.Error("multiplying by identity changed the matrix")
	}
	got = IdentityMat4().Mul(m)
	if got != m {
		t.Error("left-multiplying by identity changed the matrix")
	}
}

func TestMat4InvertRoundTrip(t *testing.T) {
	m := Perspective(math.Pi/3, 16.0/9.0, 0.1, 100).Mul(
		LookAt(Position{X: 0, Y: 4, Z: -10}, Position{}, Position{Y: 1}),
	)

	inv, ok := m.Invert()
	if !ok {
		t.Fatal("expected the view-projection matrix to be invertible")
	}

	product := m.Mul(inv)
	identity := IdentityMat4()
	for i := range product {
		if diff := product[i] - identity[i]; diff > 1e-4 || diff < -1e-4 {
			t.Errorf("cell %d: expected %v, got %v", i, identity[i], product[i])
		}
	}
}

func TestMat4InvertSingular(t *testing.T) {
	var zero Mat4
	if _, ok := zero.Invert(); ok {
		t.Error("expected the zero matrix to be reported as singular")
	}
}

func TestFourVectorComponents(t *testing.T) {
	tests := []struct {
		name string
		v    FourVector
		want [4]float32
	}{
		{"position has w 1", Position{X: 1, Y: 2, Z: 3}, [4]float32{1, 2, 3, 1}},
		{"direction has w 0", Direction{X: 0, Y: 1, Z: 0}, [4]float32{0, 1, 0, 0}},
		{"color maps rgba", ColorRGBA{R: 0.1, G: 0.2, B: 0.3, A: 0.4}, [4]float32{0.1, 0.2, 0.3, 0.4}},
		{"vec4 is positional", Vec4{5, 6, 7, 8}, [4]float32{5, 6, 7, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Components(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			got := [4]float32{tt.v.First(), tt.v.Second(), tt.v.Third(), tt.v.Fourth()}
			if got != tt.want {
				t.Errorf("accessors: expected %v, got %v", tt.want, got)
			}
		})
	}
}
