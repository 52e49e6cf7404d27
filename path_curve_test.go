package pathdata

import (
	"testing"

	"github.com/tdewolff/test"
)

func commands(p Path) string {
	b := []byte{}
	for _, s := range p {
		b = append(b, byte(s.Cmd))
	}
	return string(b)
}

func TestPathToCurve(t *testing.T) {
	var tts = []struct {
		orig string
		cmds string
	}{
		{"", ""},
		{"M0 0", "M"},
		{"M0 0Z", "MZ"},
		{"M0 0L10 0L10 10L0 10Z", "MCCCZ"},
		{"M0 0L10 0L0 0Z", "MCC"},
		{"M0 0L10 0L0 0ZZ", "MCC"},
		{"M0 0h10v10h-10z", "MCCCZ"},
		{"M0 0Q15 15 30 0T60 0", "MCC"},
		{"M0 0A10 10 0 0 1 20 0", "MCC"},
		{"M0 0A10 10 0 1 1 0.001 0", "MCCCC"},
		{"M0 0A10 10 0 0 0 10 10", "MC"},
		{"M0 0A0 10 0 0 0 10 10", "MC"},
		{"M0 0L10 0ZL5 5", "MCZC"},
		{"M0 0L10 0M5 5L10 10", "MCMC"},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			p := MustParse(tt.orig).ToCurve()
			test.String(t, commands(p), tt.cmds)
			test.That(t, p.IsCurve())
		})
	}
}

func TestPathToCurveValues(t *testing.T) {
	p := MustParse("M0 0L30 0Q45 15 60 0").ToCurve()
	test.That(t, p.Equals(Path{
		seg(MoveTo, 0, 0),
		seg(CubeTo, 10, 0, 20, 0, 30, 0),
		seg(CubeTo, 40, 10, 50, 10, 60, 0),
	}), p)

	// arcs end exactly at their end point
	p = MustParse("M0 0A10 10 0 0 1 20 0").ToCurve()
	test.T(t, p[len(p)-1].End(), Point{20, 0})

	// control points of a quarter circle
	p = MustParse("M10 0A10 10 0 0 1 0 10").ToCurve()
	k := 4.0 / 3.0 * (1.4142135623730951 - 1.0) * 10.0
	test.That(t, p.Equals(Path{
		seg(MoveTo, 10, 0),
		seg(CubeTo, 10, k, k, 10, 0, 10),
	}), p)
}

func TestPathToCurvePreservesGeometry(t *testing.T) {
	withEpsilon(t, 1e-2)
	var tts = []string{
		"M0 0L10 0L10 10L0 10Z",
		"M0 0Q15 15 30 0",
		"M0 0C0 10 10 10 10 0S20 -10 20 0",
		"M0 0A10 10 0 0 1 20 0",
		"M0 0A10 5 30 1 0 10 10",
	}
	for _, tt := range tts {
		t.Run(tt, func(t *testing.T) {
			p := MustParse(tt)
			q := p.ToCurve()
			test.T(t, q.Bounds(), p.Bounds())
			test.FloatDiff(t, q.Length(), p.Length(), 1e-6)
		})
	}
}
