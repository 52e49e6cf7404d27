package pathdata

import (
	"math"
)

// arcToCenter changes between the SVG arc format to the center and angles format, returning the center, the corrected radii, the start angle, and the signed sweep angle in radians. With y pointing down a positive sweep angle runs clockwise.
// see https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
func arcToCenter(start Point, rx, ry, rot float64, large, sweep bool, end Point) (Point, float64, float64, float64, float64) {
	rx, ry = math.Abs(rx), math.Abs(ry)
	phi := rot * math.Pi / 180.0
	sinphi, cosphi := math.Sincos(phi)

	// rotate the half chord into the unrotated frame of the ellipse
	dx2, dy2 := (start.X-end.X)/2.0, (start.Y-end.Y)/2.0
	x1p := cosphi*dx2 + sinphi*dy2
	y1p := -sinphi*dx2 + cosphi*dy2

	// scale radii up when they cannot span the chord
	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if lambda > 1.0 {
		Logger().Debug("arc radii too small, scaling up", "rx", rx, "ry", ry, "lambda", lambda)
		rx *= math.Sqrt(lambda)
		ry *= math.Sqrt(lambda)
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0.0 || math.IsNaN(sq) {
		sq = 0.0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	center := Point{
		cosphi*cxp - sinphi*cyp + (start.X+end.X)/2.0,
		sinphi*cxp + cosphi*cyp + (start.Y+end.Y)/2.0,
	}

	// angles of the vectors from the center to the start and end points on the unit circle
	ux, uy := (x1p-cxp)/rx, (y1p-cyp)/ry
	vx, vy := (-x1p-cxp)/rx, (-y1p-cyp)/ry
	theta := math.Atan2(uy, ux)
	delta := math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	if !sweep && delta > 0.0 {
		delta -= 2.0 * math.Pi
	} else if sweep && delta < 0.0 {
		delta += 2.0 * math.Pi
	}
	return center, rx, ry, theta, delta
}

// arcToCubic approximates an elliptical arc in SVG format by one to four cubic Béziers, one for each sub-arc of at most 90 degrees. Arcs with a zero radius or coinciding end points are drawn as a straight line.
func arcToCubic(start Point, rx, ry, rot float64, large, sweep bool, end Point) []Segment {
	if start.Equals(end) || equal(rx, 0.0) || equal(ry, 0.0) {
		Logger().Debug("degenerate arc drawn as line", "rx", rx, "ry", ry, "start", start, "end", end)
		return []Segment{lineToCubic(start, end)}
	}

	center, rx, ry, theta, delta := arcToCenter(start, rx, ry, rot, large, sweep, end)
	sinphi, cosphi := math.Sincos(rot * math.Pi / 180.0)
	toFrame := func(x, y float64) Point {
		x *= rx
		y *= ry
		return Point{center.X + cosphi*x - sinphi*y, center.Y + sinphi*x + cosphi*y}
	}

	// the ratio is rounded to prevent an extra segment for sweeps of 90.0000001 degrees
	n := int(math.Ceil(math.Abs(delta)/(math.Pi/2.0) - 1e-7))
	if n < 1 {
		n = 1
	} else if 4 < n {
		n = 4
	}
	dtheta := delta / float64(n)
	kappa := 4.0 / 3.0 * math.Tan(dtheta/4.0)

	beziers := make([]Segment, 0, n)
	sin0, cos0 := math.Sincos(theta)
	for i := 0; i < n; i++ {
		sin1, cos1 := math.Sincos(theta + float64(i+1)*dtheta)
		cp1 := toFrame(cos0-kappa*sin0, sin0+kappa*cos0)
		cp2 := toFrame(cos1+kappa*sin1, sin1-kappa*cos1)
		p1 := toFrame(cos1, sin1)
		if i == n-1 {
			p1 = end
		}
		beziers = append(beziers, seg(CubeTo, cp1.X, cp1.Y, cp2.X, cp2.Y, p1.X, p1.Y))
		sin0, cos0 = sin1, cos1
	}
	return beziers
}

// lineToCubic returns a cubic Bézier tracing the line with the same linear parametrization.
func lineToCubic(start, end Point) Segment {
	cp1 := start.Interpolate(end, 1.0/3.0)
	cp2 := start.Interpolate(end, 2.0/3.0)
	return seg(CubeTo, cp1.X, cp1.Y, cp2.X, cp2.Y, end.X, end.Y)
}

// quadToCubic raises the degree of a quadratic Bézier.
func quadToCubic(start, cp, end Point) Segment {
	cp1 := start.Interpolate(cp, 2.0/3.0)
	cp2 := end.Interpolate(cp, 2.0/3.0)
	return seg(CubeTo, cp1.X, cp1.Y, cp2.X, cp2.Y, end.X, end.Y)
}

////////////////////////////////////////////////////////////////

func cubicBezierPos(p0, p1, p2, p3 Point, t float64) Point {
	p0 = p0.Mul(1.0 - 3.0*t + 3.0*t*t - t*t*t)
	p1 = p1.Mul(3.0*t - 6.0*t*t + 3.0*t*t*t)
	p2 = p2.Mul(3.0*t*t - 3.0*t*t*t)
	p3 = p3.Mul(t * t * t)
	return p0.Add(p1).Add(p2).Add(p3)
}

func cubicBezierDeriv(p0, p1, p2, p3 Point, t float64) Point {
	p0 = p0.Mul(-3.0 + 6.0*t - 3.0*t*t)
	p1 = p1.Mul(3.0 - 12.0*t + 9.0*t*t)
	p2 = p2.Mul(6.0*t - 9.0*t*t)
	p3 = p3.Mul(3.0 * t * t)
	return p0.Add(p1).Add(p2).Add(p3)
}

// cubicBezierExtrema returns the parameters in (0,1) where the derivative along one axis is zero. The derivative is the quadratic a*t^2 + b*t + c.
func cubicBezierExtrema(x0, x1, x2, x3 float64) []float64 {
	a := 3.0 * (-x0 + 3.0*x1 - 3.0*x2 + x3)
	b := 6.0 * (x0 - 2.0*x1 + x2)
	c := 3.0 * (x1 - x0)
	t1, t2 := solveQuadraticFormula(a, b, c)

	ts := []float64{}
	if !math.IsNaN(t1) && 0.0 < t1 && t1 < 1.0 {
		ts = append(ts, t1)
	}
	if !math.IsNaN(t2) && 0.0 < t2 && t2 < 1.0 {
		ts = append(ts, t2)
	}
	return ts
}

// cubicBezierLength returns the length of the curve up to t using Gauss-Legendre quadrature of the speed.
func cubicBezierLength(p0, p1, p2, p3 Point, t float64) float64 {
	speed := func(t float64) float64 {
		return cubicBezierDeriv(p0, p1, p2, p3, t).Length()
	}
	return gaussLegendre7(speed, 0.0, t)
}
