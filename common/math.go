package common

import "math"

// Mat4 is a 4x4 matrix stored in column-major order (WebGPU convention).
// Element i*4+j is row j of column i, so the four columns occupy four
// consecutive 16-byte runs — the exact layout a mat4x4<f32> uniform expects.
type Mat4 [16]float32

// IdentityMat4 returns the identity matrix.
//
// Returns:
//   - Mat4: the identity matrix
func IdentityMat4() Mat4 {
	var m Mat4
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

// Mul returns the product m * other.
//
// Parameters:
//   - other: the right-hand matrix
//
// Returns:
//   - Mat4: the product matrix
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ { // column of other
		for j := 0; j < 4; j++ { // row of m
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += m[k*4+j] * other[i*4+k]
			}
			out[i*4+j] = sum
		}
	}
	return out
}

// Column returns one column of the matrix as a four-component vector.
//
// Parameters:
//   - i: the column index, 0-3
//
// Returns:
//   - Vec4: the column vector
func (m Mat4) Column(i int) Vec4 {
	return Vec4{m[i*4], m[i*4+1], m[i*4+2], m[i*4+3]}
}

// Perspective builds a perspective projection matrix using the WebGPU clip
// space convention (Z in [0, 1]) with an infinite-far-plane-friendly form.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - Mat4: the projection matrix
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))
	m := IdentityMat4()
	m[0] = f / aspect
	m[5] = f
	m[10] = far / (near - far)
	m[11] = -1.0
	m[14] = (near * far) / (near - far)
	m[15] = 0.0
	return m
}

// LookAt builds a view matrix that positions and orients the camera.
// The resulting matrix transforms world coordinates to view space.
//
// Parameters:
//   - eye: camera position in world space
//   - center: target point the camera looks at
//   - up: up vector defining camera orientation (typically 0,1,0)
//
// Returns:
//   - Mat4: the view matrix
func LookAt(eye, center, up Position) Mat4 {
	z0 := eye.X - center.X
	z1 := eye.Y - center.Y
	z2 := eye.Z - center.Z
	val := float64(z0*z0 + z1*z1 + z2*z2)
	if val == 0 {
		val = 1
	}
	invLen := 1.0 / float32(math.Sqrt(val))
	z0 *= invLen
	z1 *= invLen
	z2 *= invLen

	x0 := up.Y*z2 - up.Z*z1
	x1 := up.Z*z0 - up.X*z2
	x2 := up.X*z1 - up.Y*z0
	val = float64(x0*x0 + x1*x1 + x2*x2)
	if val == 0 {
		val = 1
	}
	invLen = 1.0 / float32(math.Sqrt(val))
	x0 *= invLen
	x1 *= invLen
	x2 *= invLen

	y0 := z1*x2 - z2*x1
	y1 := z2*x0 - z0*x2
	y2 := z0*x1 - z1*x0

	var m Mat4
	m[0], m[4], m[8], m[12] = x0, x1, x2, -(x0*eye.X + x1*eye.Y + x2*eye.Z)
	m[1], m[5], m[9], m[13] = y0, y1, y2, -(y0*eye.X + y1*eye.Y + y2*eye.Z)
	m[2], m[6], m[10], m[14] = z0, z1, z2, -(z0*eye.X + z1*eye.Y + z2*eye.Z)
	m[3], m[7], m[11], m[15] = 0, 0, 0, 1
	return m
}

// Compose builds a model matrix from position, Euler rotation, and uniform
// scale. The rotation order is Y * X * Z (yaw-pitch-roll).
//
// Parameters:
//   - pos: translation in world space
//   - rotX, rotY, rotZ: rotation angles in radians around each axis
//   - scale: uniform scale factor
//
// Returns:
//   - Mat4: the model matrix
func Compose(pos Position, rotX, rotY, rotZ, scale float32) Mat4 {
	cx := float32(math.Cos(float64(rotX)))
	sx := float32(math.Sin(float64(rotX)))
	cy := float32(math.Cos(float64(rotY)))
	sy := float32(math.Sin(float64(rotY)))
	cz := float32(math.Cos(float64(rotZ)))
	sz := float32(math.Sin(float64(rotZ)))

	var m Mat4
	// R = Ry * Rx * Rz, column-major
	m[0] = (cy*cz + sy*sx*sz) * scale
	m[1] = (cx * sz) * scale
	m[2] = (-sy*cz + cy*sx*sz) * scale

	m[4] = (cy*-sz + sy*sx*cz) * scale
	m[5] = (cx * cz) * scale
	m[6] = (sy*sz + cy*sx*cz) * scale

	m[8] = (sy * cx) * scale
	m[9] = (-sx) * scale
	m[10] = (cy * cx) * scale

	m[12] = pos.X
	m[13] = pos.Y
	m[14] = pos.Z
	m[15] = 1
	return m
}

// Invert computes the inverse of the matrix using the Laplace expansion
// (cofactor) method. If the matrix is singular (determinant ≈ 0) the
// identity matrix is returned along with false.
//
// Returns:
//   - Mat4: the inverted matrix, or identity if singular
//   - bool: true if the matrix was successfully inverted
func (m Mat4) Invert() (Mat4, bool) {
	// 2x2 sub-determinants of the upper-left and lower-right quadrants.
	s0 := m[0]*m[5] - m[4]*m[1]
	s1 := m[0]*m[6] - m[4]*m[2]
	s2 := m[0]*m[7] - m[4]*m[3]
	s3 := m[1]*m[6] - m[5]*m[2]
	s4 := m[1]*m[7] - m[5]*m[3]
	s5 := m[2]*m[7] - m[6]*m[3]

	c5 := m[10]*m[15] - m[14]*m[11]
	c4 := m[9]*m[15] - m[13]*m[11]
	c3 := m[9]*m[14] - m[13]*m[10]
	c2 := m[8]*m[15] - m[12]*m[11]
	c1 := m[8]*m[14] - m[12]*m[10]
	c0 := m[8]*m[13] - m[12]*m[9]

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if det == 0 {
		return IdentityMat4(), false
	}

	invDet := 1.0 / det

	var out Mat4
	out[0] = (m[5]*c5 - m[6]*c4 + m[7]*c3) * invDet
	out[1] = (-m[1]*c5 + m[2]*c4 - m[3]*c3) * invDet
	out[2] = (m[13]*s5 - m[14]*s4 + m[15]*s3) * invDet
	out[3] = (-m[9]*s5 + m[10]*s4 - m[11]*s3) * invDet

	out[4] = (-m[4]*c5 + m[6]*c2 - m[7]*c1) * invDet
	out[5] = (m[0]*c5 - m[2]*c2 + m[3]*c1) * invDet
	out[6] = (-m[12]*s5 + m[14]*s2 - m[15]*s1) * invDet
	out[7] = (m[8]*s5 - m[10]*s2 + m[11]*s1) * invDet

	out[8] = (m[4]*c4 - m[5]*c2 + m[7]*c0) * invDet
	out[9] = (-m[0]*c4 + m[1]*c2 - m[3]*c0) * invDet
	out[10] = (m[12]*s4 - m[13]*s2 + m[15]*s0) * invDet
	out[11] = (-m[8]*s4 + m[9]*s2 - m[11]*s0) * invDet

	out[12] = (-m[4]*c3 + m[5]*c1 - m[6]*c0) * invDet
	out[13] = (m[0]*c3 - m[1]*c1 + m[2]*c0) * invDet
	out[14] = (-m[12]*s3 + m[13]*s1 - m[14]*s0) * invDet
	out[15] = (m[8]*s3 - m[9]*s1 + m[10]*s0) * invDet

	return out, true
}

// Ortho builds an orthographic projection matrix compatible with WebGPU's
// clip-space convention: X/Y in [-1, 1], Z in [0, 1].
//
// Parameters:
//   - left, right, bottom, top: frustum extents in world units
//   - near, far: clipping plane distances
//
// Returns:
//   - Mat4: the projection matrix
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	m := IdentityMat4()
	rl := right - left
	tb := top - bottom
	fn := far - near

	m[0] = 2.0 / rl
	m[5] = 2.0 / tb
	m[10] = -1.0 / fn // WebGPU Z: [0, 1]
	m[12] = -(right + left) / rl
	m[13] = -(top + bottom) / tb
	m[14] = -near / fn
	return m
}
