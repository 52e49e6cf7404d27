package pathdata

import (
	"math/rand/v2"
	"testing"
)

// RandomPath returns a path of n segments with integer coordinates using every command in both absolute and relative form. Integer coordinates keep every conversion exact.
func RandomPath(r *rand.Rand, n int, closed bool) Path {
	coord := func() float64 {
		return float64(r.IntN(41) - 20)
	}
	radius := func() float64 {
		return float64(r.IntN(20) + 1)
	}
	return randomPath(r, n, closed, coord, radius)
}

// RandomFractionalPath returns a path like RandomPath but with normally distributed coordinates, which are affected by rounding.
func RandomFractionalPath(r *rand.Rand, n int, closed bool) Path {
	coord := func() float64 {
		return 10.0 * r.NormFloat64()
	}
	radius := func() float64 {
		return 1.0 + 20.0*r.Float64()
	}
	return randomPath(r, n, closed, coord, radius)
}

func randomPath(r *rand.Rand, n int, closed bool, coord, radius func() float64) Path {
	flag := func() float64 {
		return float64(r.IntN(2))
	}

	p := Path{}
	if 0 < n {
		p = append(p, seg(MoveTo, coord(), coord()))
		for i := 1; i < n; i++ {
			var s Segment
			switch r.IntN(10) {
			case 0:
				s = seg(LineTo, coord(), coord())
			case 1:
				s = seg(HLineTo, coord())
			case 2:
				s = seg(VLineTo, coord())
			case 3:
				s = seg(CubeTo, coord(), coord(), coord(), coord(), coord(), coord())
			case 4:
				s = seg(SmoothCubeTo, coord(), coord(), coord(), coord())
			case 5:
				s = seg(QuadTo, coord(), coord(), coord(), coord())
			case 6:
				s = seg(SmoothQuadTo, coord(), coord())
			case 7:
				s = seg(ArcTo, radius(), radius(), float64(r.IntN(360)), flag(), flag(), coord(), coord())
			case 8:
				s = seg(Close)
			case 9:
				s = seg(MoveTo, coord(), coord())
			}
			if r.IntN(2) == 0 {
				s.Cmd = s.Cmd.Rel()
			}
			p = append(p, s)
		}
		if closed {
			p = append(p, seg(Close))
		}
	}
	return p
}

// randomPaths returns a deterministic set of random paths.
func randomPaths(n int) []Path {
	r := rand.New(rand.NewPCG(1, 2))
	ps := make([]Path, 0, n)
	for i := 0; i < n; i++ {
		ps = append(ps, RandomPath(r, 1+r.IntN(12), r.IntN(2) == 0))
	}
	return ps
}

// randomFractionalPaths returns a deterministic set of random paths with fractional coordinates.
func randomFractionalPaths(n int) []Path {
	r := rand.New(rand.NewPCG(3, 4))
	ps := make([]Path, 0, n)
	for i := 0; i < n; i++ {
		ps = append(ps, RandomFractionalPath(r, 1+r.IntN(12), r.IntN(2) == 0))
	}
	return ps
}

// withEpsilon sets Epsilon for the duration of the test.
func withEpsilon(t *testing.T, eps float64) {
	orig := Epsilon
	Epsilon = eps
	t.Cleanup(func() {
		Epsilon = orig
	})
}
