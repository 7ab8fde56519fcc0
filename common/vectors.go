package common

// FourVector is the contract a value type implements to be embeddable as a
// vec4 component in a GPU uniform struct. The four accessors return the
// components in wire order. The accessors are named by position rather than
// x/y/z/w or r/g/b/a because the same contract backs positions, colors, and
// arbitrary float quadruples.
type FourVector interface {
	// First returns the first component in wire order.
	//
	// Returns:
	//   - float32: the first component
	First() float32

	// Second returns the second component in wire order.
	//
	// Returns:
	//   - float32: the second component
	Second() float32

	// Third returns the third component in wire order.
	//
	// Returns:
	//   - float32: the third component
	Third() float32

	// Fourth returns the fourth component in wire order.
	//
	// Returns:
	//   - float32: the fourth component
	Fourth() float32

	// Components returns all four components as a fixed-size array in wire
	// order. Provided as a bulk convenience; the serialization engine only
	// requires the four individual accessors.
	//
	// Returns:
	//   - [4]float32: the four components in wire order
	Components() [4]float32
}

// Vec4 is a plain four-component float vector.
type Vec4 [4]float32

var _ FourVector = Vec4{}

// First returns the first component.
//
// Returns:
//   - float32: the first component
func (v Vec4) First() float32 { return v[0] }

// Second returns the second component.
//
// Returns:
//   - float32: the second component
func (v Vec4) Second() float32 { return v[1] }

// Third returns the third component.
//
// Returns:
//   - float32: the third component
func (v Vec4) Third() float32 { return v[2] }

// Fourth returns the fourth component.
//
// Returns:
//   - float32: the fourth component
func (v Vec4) Fourth() float32 { return v[3] }

// Components returns all four components in order.
//
// Returns:
//   - [4]float32: the four components
func (v Vec4) Components() [4]float32 { return v }

// Position is a world-space point embeddable as a vec4 component. The fourth
// component is the homogeneous coordinate and is always 1.
type Position struct {
	X, Y, Z float32
}

var _ FourVector = Position{}

// First returns the X coordinate.
//
// Returns:
//   - float32: the X coordinate
func (p Position) First() float32 { return p.X }

// Second returns the Y coordinate.
//
// Returns:
//   - float32: the Y coordinate
func (p Position) Second() float32 { return p.Y }

// Third returns the Z coordinate.
//
// Returns:
//   - float32: the Z coordinate
func (p Position) Third() float32 { return p.Z }

// Fourth returns the homogeneous coordinate, always 1.
//
// Returns:
//   - float32: 1
func (p Position) Fourth() float32 { return 1 }

// Components returns X, Y, Z, 1 in order.
//
// Returns:
//   - [4]float32: the position as a homogeneous point
func (p Position) Components() [4]float32 { return [4]float32{p.X, p.Y, p.Z, 1} }

// ColorRGBA is an RGBA color embeddable as a vec4 component.
type ColorRGBA struct {
	R, G, B, A float32
}

var _ FourVector = ColorRGBA{}

// First returns the red channel.
//
// Returns:
//   - float32: the red channel
func (c ColorRGBA) First() float32 { return c.R }

// Second returns the green channel.
//
// Returns:
//   - float32: the green channel
func (c ColorRGBA) Second() float32 { return c.G }

// Third returns the blue channel.
//
// Returns:
//   - float32: the blue channel
func (c ColorRGBA) Third() float32 { return c.B }

// Fourth returns the alpha channel.
//
// Returns:
//   - float32: the alpha channel
func (c ColorRGBA) Fourth() float32 { return c.A }

// Components returns R, G, B, A in order.
//
// Returns:
//   - [4]float32: the color channels
func (c ColorRGBA) Components() [4]float32 { return [4]float32{c.R, c.G, c.B, c.A} }

// Direction is a normalized world-space direction embeddable as a vec4
// component. The fourth component is 0 so the vector is unaffected by
// translation when transformed as a homogeneous vector.
type Direction struct {
	X, Y, Z float32
}

var _ FourVector = Direction{}

// First returns the X component.
//
// Returns:
//   - float32: the X component
func (d Direction) First() float32 { return d.X }

// Second returns the Y component.
//
// Returns:
//   - float32: the Y component
func (d Direction) Second() float32 { return d.Y }

// Third returns the Z component.
//
// Returns:
//   - float32: the Z component
func (d Direction) Third() float32 { return d.Z }

// Fourth returns the homogeneous coordinate, always 0.
//
// Returns:
//   - float32: 0
func (d Direction) Fourth() float32 { return 0 }

// Components returns X, Y, Z, 0 in order.
//
// Returns:
//   - [4]float32: the direction as a homogeneous vector
func (d Direction) Components() [4]float32 { return [4]float32{d.X, d.Y, d.Z, 0} }
