package pathdata

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestPathToAbsolute(t *testing.T) {
	var tts = []struct {
		orig string
		abs  string
	}{
		{"", ""},
		{"M10 20L30 40", "M10 20L30 40"},
		{"m10 20l5 5h5v5c1 1 2 2 3 3s1 1 2 2q1 1 2 2t1 1a5 5 0 0 1 5 5zl1 1", "M10 20L15 25H20V30C21 31 22 32 23 33S24 34 25 35Q26 36 27 37T28 38A5 5 0 0 1 33 43ZL11 21"},
		{"m10 20 5 5m5 5 5 5", "M10 20L15 25M20 30L25 35"},
		{"M10 20l5 5zm5 5", "M10 20L15 25ZM15 25"},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			p := MustParse(tt.orig).ToAbsolute()
			test.T(t, p, MustParse(tt.abs))
			test.That(t, p.IsAbsolute())
		})
	}
}

func TestPathToRelative(t *testing.T) {
	var tts = []struct {
		orig string
		rel  string
	}{
		{"", ""},
		{"M10 20", "M10 20"},
		{"m10 20l5 5", "M10 20l5 5"},
		{"M10 20L15 25H20V30C21 31 22 32 23 33ZL11 21", "M10 20l5 5h5v5c1 1 2 2 3 3zl1 1"},
		{"M0 0A5 5 30 1 0 10 10", "M0 0a5 5 30 1 0 10 10"},
		{"M10 10S20 20 30 10T50 10", "M10 10s10 10 20 0t20 0"},
		{"M10 10L20 20M30 30L40 30", "M10 10l10 10m10 10l10 0"},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			p := MustParse(tt.orig).ToRelative()
			test.T(t, p, MustParse(tt.rel))
			test.That(t, p.IsRelative())
		})
	}
}

func TestPathNormalize(t *testing.T) {
	var tts = []struct {
		orig string
		norm string
	}{
		{"", ""},
		{"M0 0H10V10S20 20 30 10T50 10", "M0 0L10 0L10 10C10 10 20 20 30 10Q30 10 50 10"},
		{"M0 0C0 10 10 10 10 0S20 -10 20 0", "M0 0C0 10 10 10 10 0C10 -10 20 -10 20 0"},
		{"m0 0c0 10 10 10 10 0s10 -10 10 0", "M0 0C0 10 10 10 10 0C10 -10 20 -10 20 0"},
		{"M0 0Q5 10 10 0T20 0T30 0", "M0 0Q5 10 10 0Q15 -10 20 0Q25 10 30 0"},
		{"m0 0q5 10 10 0t10 0", "M0 0Q5 10 10 0Q15 -10 20 0"},
		{"M0 0Q5 10 10 0S20 10 20 0", "M0 0Q5 10 10 0C10 0 20 10 20 0"},
		{"M0 0C0 10 10 10 10 0T20 0", "M0 0C0 10 10 10 10 0Q10 0 20 0"},
		{"M10 10h10zv10", "M10 10L20 10ZL10 20"},
		{"M0 0a5 5 0 0 1 10 0", "M0 0A5 5 0 0 1 10 0"},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			p := MustParse(tt.orig).Normalize()
			test.T(t, p, MustParse(tt.norm))
			test.That(t, p.IsNormalized())
		})
	}
}

func TestPathPredicates(t *testing.T) {
	var tts = []struct {
		orig                            string
		abs, rel, normalized, curveOnly bool
	}{
		{"", true, true, true, true},
		{"M0 0", true, true, true, true},
		{"M0 0L10 10", true, false, true, false},
		{"M0 0l10 10z", false, true, false, false},
		{"M0 0H10", true, false, false, false},
		{"M0 0C1 1 2 2 3 3Z", true, false, true, true},
		{"M0 0c1 1 2 2 3 3", false, true, false, false},
		{"M0 0l10 10L5 5", false, false, false, false},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			p := MustParse(tt.orig)
			test.T(t, p.IsAbsolute(), tt.abs, "absolute")
			test.T(t, p.IsRelative(), tt.rel, "relative")
			test.T(t, p.IsNormalized(), tt.normalized, "normalized")
			test.T(t, p.IsCurve(), tt.curveOnly, "curve")
		})
	}
}

func TestPathFormsIdempotent(t *testing.T) {
	for i, p := range append(randomPaths(200), randomFractionalPaths(200)...) {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			abs := p.ToAbsolute()
			test.T(t, abs.ToAbsolute(), abs, p.String())

			rel := p.ToRelative()
			test.T(t, rel.ToRelative(), rel, p.String())

			norm := p.Normalize()
			test.T(t, norm.Normalize(), norm, p.String())

			curve := p.ToCurve()
			test.T(t, curve.ToCurve(), curve, p.String())
		})
	}
}

func TestPathFormsPreserveGeometry(t *testing.T) {
	for i, p := range append(randomPaths(200), randomFractionalPaths(200)...) {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			norm := p.Normalize()
			test.T(t, p.ToAbsolute().Normalize(), norm, p.String())
			test.T(t, p.ToRelative().Normalize(), norm, p.String())
			test.T(t, p.ToRelative().ToAbsolute().Normalize(), norm, p.String())
		})
	}
}

func TestPathFormsImmutable(t *testing.T) {
	p := MustParse("m10 20l5 5h5s1 1 2 2z")
	orig := p.Clone()
	p.ToAbsolute()
	p.ToRelative()
	p.Normalize()
	p.ToCurve()
	p.Optimize(Precision)
	p.Reverse(false)
	test.T(t, p, orig)
}
