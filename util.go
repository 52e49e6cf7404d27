package pathdata

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used for comparing coordinates.
var Epsilon = 1e-10

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// finite returns true if f is neither NaN nor infinity.
func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float64
}

// IsZero returns true if P is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Rot rotates the line OP by phi radians around p0, counter clockwise in a y-up system.
func (p Point) Rot(phi float64, p0 Point) Point {
	sinphi, cosphi := math.Sincos(phi)
	return Point{
		p0.X + cosphi*(p.X-p0.X) - sinphi*(p.Y-p0.Y),
		p0.Y + sinphi*(p.X-p0.X) + cosphi*(p.Y-p0.Y),
	}
}

// Reflect returns the reflection of P through Q.
func (p Point) Reflect(q Point) Point {
	return Point{2.0*q.X - p.X, 2.0*q.Y - p.Y}
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Interpolate returns a point on PQ that is linearly interpolated by t, ie. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned rectangle given by its minimum (X0,Y0) and maximum (X1,Y1) corners.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// W returns the width.
func (r Rect) W() float64 {
	return r.X1 - r.X0
}

// H returns the height.
func (r Rect) H() float64 {
	return r.Y1 - r.Y0
}

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{(r.X0 + r.X1) / 2.0, (r.Y0 + r.Y1) / 2.0}
}

// AddPoint returns the smallest rectangle containing both r and p.
func (r Rect) AddPoint(p Point) Rect {
	r.X0 = math.Min(r.X0, p.X)
	r.Y0 = math.Min(r.Y0, p.Y)
	r.X1 = math.Max(r.X1, p.X)
	r.Y1 = math.Max(r.Y1, p.Y)
	return r
}

// Equals returns true if both rectangles are equal with tolerance Epsilon.
func (r Rect) Equals(q Rect) bool {
	return equal(r.X0, q.X0) && equal(r.Y0, q.Y0) && equal(r.X1, q.X1) && equal(r.Y1, q.Y1)
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.X0, r.Y0, r.X1, r.Y1)
}

////////////////////////////////////////////////////////////////

// Numerically stable quadratic formula, lowest root is returned first
// see https://math.stackexchange.com/a/2007723
func solveQuadraticFormula(a, b, c float64) (float64, float64) {
	if a == 0.0 {
		if b == 0.0 {
			if c == 0.0 {
				// all terms disappear, all x satisfy the solution
				return 0.0, math.NaN()
			}
			// linear term disappears, no solutions
			return math.NaN(), math.NaN()
		}
		// quadratic term disappears, solve linear equation
		return -c / b, math.NaN()
	}

	if c == 0.0 {
		// no constant term, one solution at zero and one from solving linearly
		x := -b / a
		if x < 0.0 {
			return x, 0.0
		}
		return 0.0, x
	}

	discriminant := b*b - 4.0*a*c
	if discriminant < 0.0 {
		return math.NaN(), math.NaN()
	} else if discriminant == 0.0 {
		return -b / (2.0 * a), math.NaN()
	}

	// avoid catastrophic cancellation when 4*a*c is small, see Citardauq Formula
	q := math.Sqrt(discriminant)
	if b < 0.0 {
		q = -q
	}
	x1 := -(b + q) / (2.0 * a)
	x2 := c / (a * x1)
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	return x1, x2
}

// Gauss-Legendre quadrature integration from a to b with n=7
// see https://pomax.github.io/bezierinfo/legendre-gauss.html
func gaussLegendre7(f func(float64) float64, a, b float64) float64 {
	c := (b - a) / 2.0
	d := (a + b) / 2.0
	Qd1 := f(-0.9491079123427585*c + d)
	Qd2 := f(-0.7415311855993945*c + d)
	Qd3 := f(-0.4058451513773972*c + d)
	Qd4 := f(d)
	Qd5 := f(0.4058451513773972*c + d)
	Qd6 := f(0.7415311855993945*c + d)
	Qd7 := f(0.9491079123427585*c + d)
	return c * (0.1294849661688697*(Qd1+Qd7) + 0.2797053914892766*(Qd2+Qd6) + 0.3818300505051189*(Qd3+Qd5) + 0.4179591836734694*Qd4)
}

// find value x for which f(x) = y in the interval x in [xmin, xmax] using the bisection method, f must be monotonically increasing
func bisectionMethod(f func(float64) float64, y, xmin, xmax float64) float64 {
	const MaxIterations = 64
	const Tolerance = 1e-9

	var x float64
	for n := 0; n < MaxIterations; n++ {
		x = (xmin + xmax) / 2.0
		dy := f(x) - y
		if math.Abs(dy) < Tolerance || (xmax-xmin)/2.0 < Tolerance {
			return x
		} else if dy > 0.0 {
			xmax = x
		} else {
			xmin = x
		}
	}
	return x // MaxIterations reached
}
