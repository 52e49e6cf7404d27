package pathdata

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

func TestParse(t *testing.T) {
	var tts = []struct {
		orig string
		p    Path
	}{
		{"", Path{}},
		{" \n\t", Path{}},
		{"M10 20L30 40", Path{seg(MoveTo, 10, 20), seg(LineTo, 30, 40)}},
		{"M10,20,30,40", Path{seg(MoveTo, 10, 20), seg(LineTo, 30, 40)}},
		{"m10 20 30 40 50 60", Path{seg('m', 10, 20), seg('l', 30, 40), seg('l', 50, 60)}},
		{"M0 0h10v-5.5", Path{seg(MoveTo, 0, 0), seg('h', 10), seg('v', -5.5)}},
		{"M0-1.5L.5e1-2", Path{seg(MoveTo, 0, -1.5), seg(LineTo, 5, -2)}},
		{"M1e2 -5E-1", Path{seg(MoveTo, 100, -0.5)}},
		{"M.5.5", Path{seg(MoveTo, 0.5, 0.5)}},
		{"M+1 +2", Path{seg(MoveTo, 1, 2)}},
		{"M0e400 1e-400", Path{seg(MoveTo, 0, 0)}},
		{"M0 0C1 2 3 4 5 6S7 8 9 10", Path{seg(MoveTo, 0, 0), seg(CubeTo, 1, 2, 3, 4, 5, 6), seg(SmoothCubeTo, 7, 8, 9, 10)}},
		{"M0 0Q1 2 3 4T5 6 7 8", Path{seg(MoveTo, 0, 0), seg(QuadTo, 1, 2, 3, 4), seg(SmoothQuadTo, 5, 6), seg(SmoothQuadTo, 7, 8)}},
		{"M0 0A5 5 0 1 0 10 0", Path{seg(MoveTo, 0, 0), seg(ArcTo, 5, 5, 0, 1, 0, 10, 0)}},
		{"M0 0a1 1 0 11.5 3", Path{seg(MoveTo, 0, 0), seg('a', 1, 1, 0, 1, 1, 0.5, 3)}},
		{"M0 0a5 5 30 1010 0", Path{seg(MoveTo, 0, 0), seg('a', 5, 5, 30, 1, 0, 10, 0)}},
		{"M0 0L10 0ZzM5 5", Path{seg(MoveTo, 0, 0), seg(LineTo, 10, 0), seg(Close), seg('z'), seg(MoveTo, 5, 5)}},
		{"M0 0zl5 5", Path{seg(MoveTo, 0, 0), seg('z'), seg('l', 5, 5)}},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			p, err := Parse(tt.orig)
			test.Error(t, err)
			test.T(t, p, tt.p)
		})
	}
}

func TestParseErrors(t *testing.T) {
	var tts = []struct {
		orig   string
		offset int
		msg    string
	}{
		{"M0 0X", 4, "bad command letter 'X'"},
		{"L10 10", 0, "path must start with a moveto"},
		{"10 10", 0, "path must start with a moveto"},
		{"M0", 2, "expected 2 parameters for 'M', got 1"},
		{"M0 0L1 Z", 7, "expected 2 parameters for 'L', got 1"},
		{"M0 0c1 2 3", 10, "expected 6 parameters for 'c', got 3"},
		{"M0 0A1 1 0 2 0 5 5", 11, "invalid arc flag"},
		{"M0 0L. 5", 5, "malformed number"},
		{"M0 0L-e5 5", 5, "malformed number"},
		{"M1e400 0L1 1", 1, "malformed number"},
		{"M0 0L1 -1e999", 7, "malformed number"},
		{"M0 0Z 5", 6, "unexpected number after closepath"},
		{"M0 0#", 4, "unexpected character '#'"},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			p, err := Parse(tt.orig)
			test.That(t, p == nil)

			var perr *ParseError
			test.That(t, errors.As(err, &perr), "must be *ParseError")
			test.T(t, perr.Offset, tt.offset)
			test.String(t, perr.Message, tt.msg)
			test.T(t, perr.Line, 1)
			test.T(t, perr.Column, tt.offset+1)
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse("M0\n0 L1 1\nL")
	var perr *ParseError
	test.That(t, errors.As(err, &perr))
	test.T(t, perr.Offset, 11)
	test.T(t, perr.Line, 3)
	test.T(t, perr.Column, 2)
	test.String(t, perr.Message, "expected 2 parameters for 'L', got 0")
}

func TestParseDeterministic(t *testing.T) {
	for _, orig := range []string{"M0 0L10 10A5 5 0 1 1 20 20z", "M0 0L1 Z"} {
		p1, err1 := Parse(orig)
		p2, err2 := Parse(orig)
		test.T(t, p1, p2)
		if err1 != nil || err2 != nil {
			test.String(t, err1.Error(), err2.Error())
		}
	}
}

func TestParseArity(t *testing.T) {
	p := MustParse("M1 2l3 4H5v6C1 2 3 4 5 6s1 2 3 4Q1 2 3 4t5 6A1 2 3 0 1 4 5zm1 1 2 2")
	test.Error(t, p.Validate())
	for _, s := range p {
		test.T(t, len(s.Values()), s.Cmd.Arity())
	}
}

func TestMustParse(t *testing.T) {
	defer func() {
		r := recover()
		test.That(t, r != nil, "must panic")
		_, ok := r.(*ParseError)
		test.That(t, ok, "must panic with *ParseError")
	}()
	MustParse("M0 0L1")
}
