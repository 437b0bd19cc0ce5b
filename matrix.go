package motif

import "math"

// Matrix is a 2D affine transformation in row-major 2x3 form:
//
//	| a  b  c |
//	| d  e  f |
//
// representing x' = a*x + b*y + c and y' = d*x + e*y + f.
// The kernel transforms (Translate, Scale, Rotate) compose matrices and
// apply them to every vertex of a shape in one pass.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translation creates a translation matrix.
func Translation(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scaling creates a scaling matrix about the origin.
func Scaling(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotation creates a rotation matrix (angle in radians) about the origin.
func Rotation(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// AboutPivot wraps the matrix so it acts about the given pivot point
// instead of the origin: translate(-pivot), m, translate(pivot).
func (m Matrix) AboutPivot(pivot Point) Matrix {
	return Translation(pivot.X, pivot.Y).Multiply(m).Multiply(Translation(-pivot.X, -pivot.Y))
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Apply applies the transformation to a point.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// ApplyVector applies the transformation to a vector (no translation).
func (m Matrix) ApplyVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// IsIdentity reports whether the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}
