package gfx

// Mat4 is a column-major 4x4 matrix, the layout GLSL expects for a mat4.
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Ortho creates an orthographic projection mapping the given box onto
// OpenGL clip space ([-1, 1] on every axis).
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	return Mat4{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}

// ScreenProjection returns a projection where (0, 0) is the top-left corner
// of the viewport and (width, height) the bottom-right corner. Positive Y
// points down, which is what UI code expects.
func ScreenProjection(width, height float32) Mat4 {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return Ortho(0, width, height, 0, -1, 1)
}

// CenteredProjection returns a Y-up projection with the origin in the middle
// of the viewport. The visible area is viewHeight world units tall and as wide
// as the aspect ratio of width x height allows.
func CenteredProjection(width, height, viewHeight float32) Mat4 {
	if width <= 0 || height <= 0 {
		return Ortho(-1, 1, -1, 1, -1, 1)
	}
	hh := 0.5 * viewHeight
	hw := hh * width / height
	return Ortho(-hw, hw, -hh, hh, -1, 1)
}

// Mul returns m * other.
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * other[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// Transform returns m * v.
func (m Mat4) Transform(v [4]float32) [4]float32 {
	var out [4]float32
	for row := 0; row < 4; row++ {
		out[row] = m[row]*v[0] + m[4+row]*v[1] + m[8+row]*v[2] + m[12+row]*v[3]
	}
	return out
}
