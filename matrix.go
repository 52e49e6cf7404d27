package pathdata

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// GeometryError is returned when a transformation cannot be applied to a path, such as for a singular matrix or a point that is projected to infinity.
type GeometryError struct {
	Message string
}

func (e *GeometryError) Error() string {
	return "geometry error: " + e.Message
}

////////////////////////////////////////////////////////////////

// Matrix is a 4x4 matrix in row-major order used for affine and perspective transformations of homogeneous coordinates (x,y,z,w). Be aware that concatenating transformation functions will be evaluated right-to-left! So in Identity.Rotate(0,0,30).Translate(20,0,0) will first translate 20 points horizontally and then rotate 30 degrees.
type Matrix f64.Mat4

// Identity is the identity transformation.
var Identity = Matrix{
	1.0, 0.0, 0.0, 0.0,
	0.0, 1.0, 0.0, 0.0,
	0.0, 0.0, 1.0, 0.0,
	0.0, 0.0, 0.0, 1.0,
}

// Affine returns the matrix of the 2D affine transformation (a,b,c,d,e,f), mapping (x,y) to (ax+cy+e, bx+dy+f) like SVG's matrix().
func Affine(a, b, c, d, e, f float64) Matrix {
	return Matrix{
		a, c, 0.0, e,
		b, d, 0.0, f,
		0.0, 0.0, 1.0, 0.0,
		0.0, 0.0, 0.0, 1.0,
	}
}

// Matrix3D returns the matrix for 16 coefficients given in column-major order like CSS's matrix3d().
func Matrix3D(v [16]float64) Matrix {
	m := Matrix{}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[4*r+c] = v[4*c+r]
		}
	}
	return m
}

// Mul multiplies the matrices, so that q is applied first and then m.
func (m Matrix) Mul(q Matrix) Matrix {
	r := Matrix{}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				r[4*i+j] += m[4*i+k] * q[4*k+j]
			}
		}
	}
	return r
}

// Dot multiplies the matrix with the homogeneous vector v.
func (m Matrix) Dot(v f64.Vec4) f64.Vec4 {
	return f64.Vec4{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3]*v[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7]*v[3],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11]*v[3],
		m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]*v[3],
	}
}

// Translate translates by (x,y,z).
func (m Matrix) Translate(x, y, z float64) Matrix {
	return m.Mul(Matrix{
		1.0, 0.0, 0.0, x,
		0.0, 1.0, 0.0, y,
		0.0, 0.0, 1.0, z,
		0.0, 0.0, 0.0, 1.0,
	})
}

// Rotate rotates by the given angles in degrees around the x, y, and z axes, in that order. A positive z angle rotates clockwise in a y-down coordinate system.
func (m Matrix) Rotate(x, y, z float64) Matrix {
	return m.RotateZ(z).RotateY(y).RotateX(x)
}

// RotateX rotates by rot degrees around the x-axis.
func (m Matrix) RotateX(rot float64) Matrix {
	sintheta, costheta := math.Sincos(rot * math.Pi / 180.0)
	return m.Mul(Matrix{
		1.0, 0.0, 0.0, 0.0,
		0.0, costheta, -sintheta, 0.0,
		0.0, sintheta, costheta, 0.0,
		0.0, 0.0, 0.0, 1.0,
	})
}

// RotateY rotates by rot degrees around the y-axis.
func (m Matrix) RotateY(rot float64) Matrix {
	sintheta, costheta := math.Sincos(rot * math.Pi / 180.0)
	return m.Mul(Matrix{
		costheta, 0.0, sintheta, 0.0,
		0.0, 1.0, 0.0, 0.0,
		-sintheta, 0.0, costheta, 0.0,
		0.0, 0.0, 0.0, 1.0,
	})
}

// RotateZ rotates by rot degrees around the z-axis, clockwise in a y-down coordinate system.
func (m Matrix) RotateZ(rot float64) Matrix {
	sintheta, costheta := math.Sincos(rot * math.Pi / 180.0)
	return m.Mul(Matrix{
		costheta, -sintheta, 0.0, 0.0,
		sintheta, costheta, 0.0, 0.0,
		0.0, 0.0, 1.0, 0.0,
		0.0, 0.0, 0.0, 1.0,
	})
}

// Scale scales by (x,y,z).
func (m Matrix) Scale(x, y, z float64) Matrix {
	return m.Mul(Matrix{
		x, 0.0, 0.0, 0.0,
		0.0, y, 0.0, 0.0,
		0.0, 0.0, z, 0.0,
		0.0, 0.0, 0.0, 1.0,
	})
}

// Skew skews along the x-axis by x degrees and then along the y-axis by y degrees.
func (m Matrix) Skew(x, y float64) Matrix {
	return m.Mul(Matrix{
		1.0, math.Tan(x * math.Pi / 180.0), 0.0, 0.0,
		0.0, 1.0, 0.0, 0.0,
		0.0, 0.0, 1.0, 0.0,
		0.0, 0.0, 0.0, 1.0,
	}).Mul(Matrix{
		1.0, 0.0, 0.0, 0.0,
		math.Tan(y * math.Pi / 180.0), 1.0, 0.0, 0.0,
		0.0, 0.0, 1.0, 0.0,
		0.0, 0.0, 0.0, 1.0,
	})
}

// Perspective applies a perspective projection with the viewer at distance d from the z=0 plane, like CSS's perspective().
func (m Matrix) Perspective(d float64) Matrix {
	return m.Mul(Matrix{
		1.0, 0.0, 0.0, 0.0,
		0.0, 1.0, 0.0, 0.0,
		0.0, 0.0, 1.0, 0.0,
		0.0, 0.0, -1.0 / d, 1.0,
	})
}

// IsIdentity returns true if the matrix equals the identity within tolerance Epsilon.
func (m Matrix) IsIdentity() bool {
	return m.Equals(Identity)
}

// IsAffine returns true if the matrix has no perspective terms, ie. the resulting w is always one.
func (m Matrix) IsAffine() bool {
	return m[12] == 0.0 && m[13] == 0.0 && m[14] == 0.0 && m[15] == 1.0
}

// Det returns the determinant of the projective transformation of the z=0 plane, ie. of the 3x3 matrix in the rows and columns of x, y, and w.
func (m Matrix) Det() float64 {
	a, b, c := m[0], m[1], m[3]
	d, e, f := m[4], m[5], m[7]
	g, h, i := m[12], m[13], m[15]
	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// singular returns true if the projective transformation of the z=0 plane is singular. The determinant is compared relative to the product of the row lengths, which bounds it, so that uniformly small scales are not singular.
func (m Matrix) singular() bool {
	n := math.Hypot(math.Hypot(m[0], m[1]), m[3])
	n *= math.Hypot(math.Hypot(m[4], m[5]), m[7])
	n *= math.Hypot(math.Hypot(m[12], m[13]), m[15])
	return math.Abs(m.Det()) <= Epsilon*n
}

// Inv returns the inverse matrix using Gauss-Jordan elimination with partial pivoting.
func (m Matrix) Inv() (Matrix, error) {
	a := m
	inv := Identity
	for c := 0; c < 4; c++ {
		pivot := c
		for r := c + 1; r < 4; r++ {
			if math.Abs(a[4*pivot+c]) < math.Abs(a[4*r+c]) {
				pivot = r
			}
		}
		if equal(a[4*pivot+c], 0.0) {
			return Matrix{}, &GeometryError{"matrix is singular"}
		}
		if pivot != c {
			for j := 0; j < 4; j++ {
				a[4*c+j], a[4*pivot+j] = a[4*pivot+j], a[4*c+j]
				inv[4*c+j], inv[4*pivot+j] = inv[4*pivot+j], inv[4*c+j]
			}
		}

		f := a[4*c+c]
		for j := 0; j < 4; j++ {
			a[4*c+j] /= f
			inv[4*c+j] /= f
		}
		for r := 0; r < 4; r++ {
			if r == c {
				continue
			}
			f := a[4*r+c]
			for j := 0; j < 4; j++ {
				a[4*r+j] -= f * a[4*c+j]
				inv[4*r+j] -= f * inv[4*c+j]
			}
		}
	}
	return inv, nil
}

// Equals returns true if both matrices are equal within tolerance Epsilon.
func (m Matrix) Equals(q Matrix) bool {
	for i := range m {
		if !equal(m[i], q[i]) {
			return false
		}
	}
	return true
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%g, %g, %g, %g; %g, %g, %g, %g; %g, %g, %g, %g; %g, %g, %g, %g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8], m[9], m[10], m[11], m[12], m[13], m[14], m[15])
}
