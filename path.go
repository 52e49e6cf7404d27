package pathdata

import "fmt"

// Command is an SVG path command letter. Upper case letters use absolute coordinates, lower case letters use coordinates relative to the current point.
type Command byte

// Absolute path commands, use Rel to obtain their relative variant.
const (
	MoveTo       Command = 'M'
	LineTo       Command = 'L'
	HLineTo      Command = 'H'
	VLineTo      Command = 'V'
	CubeTo       Command = 'C'
	SmoothCubeTo Command = 'S'
	QuadTo       Command = 'Q'
	SmoothQuadTo Command = 'T'
	ArcTo        Command = 'A'
	Close        Command = 'Z'
)

// MaxArity is the largest number of parameters of any command (ArcTo).
const MaxArity = 7

// Arity returns the number of parameters the command takes, or -1 for an unknown command.
func (cmd Command) Arity() int {
	switch cmd.Abs() {
	case MoveTo, LineTo, SmoothQuadTo:
		return 2
	case HLineTo, VLineTo:
		return 1
	case CubeTo:
		return 6
	case SmoothCubeTo, QuadTo:
		return 4
	case ArcTo:
		return 7
	case Close:
		return 0
	}
	return -1
}

// Valid returns true for one of the ten SVG path commands in either case.
func (cmd Command) Valid() bool {
	return cmd.Arity() != -1
}

// IsRelative returns true for lower case commands.
func (cmd Command) IsRelative() bool {
	return 'a' <= cmd && cmd <= 'z'
}

// Abs returns the absolute (upper case) variant.
func (cmd Command) Abs() Command {
	if cmd.IsRelative() {
		return cmd - 'a' + 'A'
	}
	return cmd
}

// Rel returns the relative (lower case) variant.
func (cmd Command) Rel() Command {
	if 'A' <= cmd && cmd <= 'Z' {
		return cmd - 'A' + 'a'
	}
	return cmd
}

func (cmd Command) String() string {
	return string(rune(cmd))
}

////////////////////////////////////////////////////////////////

// Segment is a single path command with its parameters. Only the first Cmd.Arity() values of Args are used, the others are zero. For ArcTo the parameters are (rx,ry,rot,large,sweep,x,y) with rot in degrees and large and sweep either 0 or 1.
type Segment struct {
	Cmd  Command
	Args [MaxArity]float64
}

// NewSegment returns a segment for the given command and parameters, which must match the command's arity.
func NewSegment(cmd Command, vals ...float64) (Segment, error) {
	n := cmd.Arity()
	if n == -1 {
		return Segment{}, &ValidationError{Index: -1, Message: fmt.Sprintf("unknown command %q", byte(cmd))}
	} else if len(vals) != n {
		return Segment{}, &ValidationError{Index: -1, Message: fmt.Sprintf("command '%v' takes %d parameters, got %d", cmd, n, len(vals))}
	}
	s := Segment{Cmd: cmd}
	copy(s.Args[:], vals)
	return s, nil
}

// seg is NewSegment for internal use where the arity is known to be correct.
func seg(cmd Command, vals ...float64) Segment {
	s := Segment{Cmd: cmd}
	copy(s.Args[:], vals)
	return s
}

// Values returns the used parameters of the segment.
func (s Segment) Values() []float64 {
	n := s.Cmd.Arity()
	if n < 0 {
		n = 0
	}
	return s.Args[:n]
}

// End returns the end point of absolute segments with two trailing coordinates (M, L, C, S, Q, T, A).
func (s Segment) End() Point {
	n := s.Cmd.Arity()
	if n < 2 {
		return Point{}
	}
	return Point{s.Args[n-2], s.Args[n-1]}
}

// Large returns the large-arc flag of an arc segment.
func (s Segment) Large() bool {
	return s.Args[3] == 1.0
}

// Sweep returns the sweep flag of an arc segment.
func (s Segment) Sweep() bool {
	return s.Args[4] == 1.0
}

func (s Segment) String() string {
	return Path{s}.Serialize(NoRounding)
}

// translate adds (dx,dy) to the coordinates of the segment, leaving radii, angles and flags untouched.
func (s Segment) translate(d Point) Segment {
	switch s.Cmd.Abs() {
	case MoveTo, LineTo, SmoothQuadTo:
		s.Args[0] += d.X
		s.Args[1] += d.Y
	case HLineTo:
		s.Args[0] += d.X
	case VLineTo:
		s.Args[0] += d.Y
	case CubeTo:
		s.Args[0] += d.X
		s.Args[1] += d.Y
		s.Args[2] += d.X
		s.Args[3] += d.Y
		s.Args[4] += d.X
		s.Args[5] += d.Y
	case SmoothCubeTo, QuadTo:
		s.Args[0] += d.X
		s.Args[1] += d.Y
		s.Args[2] += d.X
		s.Args[3] += d.Y
	case ArcTo:
		s.Args[5] += d.X
		s.Args[6] += d.Y
	}
	return s
}

func arcFlag(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}

////////////////////////////////////////////////////////////////

// ValidationError is returned for a Path that was constructed without the parser and breaks the path invariants.
type ValidationError struct {
	Index   int // index of the offending segment, or -1
	Message string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return "invalid path: " + e.Message
	}
	return fmt.Sprintf("invalid path: segment %d: %s", e.Index, e.Message)
}

////////////////////////////////////////////////////////////////

// Path is a sequence of path segments forming one or more subpaths, each starting with a moveto. All operations return a new path and leave the receiver untouched.
type Path []Segment

// Empty returns true if p has no segments other than movetos and closes.
func (p Path) Empty() bool {
	for _, s := range p {
		if cmd := s.Cmd.Abs(); cmd != MoveTo && cmd != Close {
			return false
		}
	}
	return true
}

// Clone returns a copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	q := make(Path, len(p))
	copy(q, p)
	return q
}

// Equals returns true if p and q have the same commands and their values are equal within tolerance Epsilon.
func (p Path) Equals(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i].Cmd != q[i].Cmd {
			return false
		}
		for j := range p[i].Args {
			if !equal(p[i].Args[j], q[i].Args[j]) {
				return false
			}
		}
	}
	return true
}

// Closed returns true if the last subpath of p is closed.
func (p Path) Closed() bool {
	return 0 < len(p) && p[len(p)-1].Cmd.Abs() == Close
}

// Validate checks the invariants of a path built by hand: known commands with unused parameters set to zero, a leading moveto, arc flags of 0 or 1, and finite values.
func (p Path) Validate() error {
	for i, s := range p {
		n := s.Cmd.Arity()
		if n == -1 {
			return &ValidationError{i, fmt.Sprintf("unknown command %q", byte(s.Cmd))}
		} else if i == 0 && s.Cmd.Abs() != MoveTo {
			return &ValidationError{i, "path must start with a moveto"}
		}
		for j, v := range s.Args {
			if n <= j {
				if v != 0.0 {
					return &ValidationError{i, fmt.Sprintf("command '%v' takes %d parameters", s.Cmd, n)}
				}
			} else if !finite(v) {
				return &ValidationError{i, fmt.Sprintf("parameter %d is not finite", j)}
			}
		}
		if s.Cmd.Abs() == ArcTo {
			if (s.Args[3] != 0.0 && s.Args[3] != 1.0) || (s.Args[4] != 0.0 && s.Args[4] != 1.0) {
				return &ValidationError{i, "arc flags must be 0 or 1"}
			}
		}
	}
	return nil
}

////////////////////////////////////////////////////////////////

// MoveTo appends an absolute moveto.
func (p *Path) MoveTo(x, y float64) *Path {
	*p = append(*p, seg(MoveTo, x, y))
	return p
}

// LineTo appends an absolute lineto.
func (p *Path) LineTo(x, y float64) *Path {
	*p = append(*p, seg(LineTo, x, y))
	return p
}

// QuadTo appends an absolute quadratic Bézier with control point (cpx,cpy).
func (p *Path) QuadTo(cpx, cpy, x, y float64) *Path {
	*p = append(*p, seg(QuadTo, cpx, cpy, x, y))
	return p
}

// CubeTo appends an absolute cubic Bézier with control points (cpx1,cpy1) and (cpx2,cpy2).
func (p *Path) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) *Path {
	*p = append(*p, seg(CubeTo, cpx1, cpy1, cpx2, cpy2, x, y))
	return p
}

// ArcTo appends an absolute elliptical arc with radii rx and ry, rot the rotation of the x-axis in degrees, and the large-arc and sweep flags.
func (p *Path) ArcTo(rx, ry, rot float64, large, sweep bool, x, y float64) *Path {
	*p = append(*p, seg(ArcTo, rx, ry, rot, arcFlag(large), arcFlag(sweep), x, y))
	return p
}

// Close appends a closepath.
func (p *Path) Close() *Path {
	*p = append(*p, seg(Close))
	return p
}

////////////////////////////////////////////////////////////////

// Split splits the path into its subpaths, each starting with an absolute moveto. A closepath followed directly by a drawing command starts a new subpath at the same initial point, which then gets an explicit moveto.
func (p Path) Split() []Path {
	ps := []Path{}
	var cur Path
	for s := p.Scanner(); s.Scan(); {
		cmd := s.Cmd().Abs()
		if cmd == MoveTo {
			if 0 < len(cur) {
				ps = append(ps, cur)
			}
			cur = Path{seg(MoveTo, s.End().X, s.End().Y)}
			continue
		} else if 0 < len(cur) && cur[len(cur)-1].Cmd.Abs() == Close {
			ps = append(ps, cur)
			cur = Path{seg(MoveTo, s.Start().X, s.Start().Y)}
		}
		cur = append(cur, s.Segment())
	}
	if 0 < len(cur) {
		ps = append(ps, cur)
	}
	return ps
}

// Reverse returns the path drawn in the opposite direction, in normalized form. If onlySubpaths is true the order of the subpaths is kept and each subpath is reversed by itself, otherwise the subpath order is reversed as well.
func (p Path) Reverse(onlySubpaths bool) Path {
	ps := p.Split()
	if !onlySubpaths {
		for i, j := 0, len(ps)-1; i < j; i, j = i+1, j-1 {
			ps[i], ps[j] = ps[j], ps[i]
		}
	}
	q := make(Path, 0, len(p)+len(ps))
	for _, pi := range ps {
		q = append(q, pi.reverseSubpath()...)
	}
	return q
}

// reverseSubpath reverses a single subpath as returned by Split.
func (p Path) reverseSubpath() Path {
	type span struct {
		start Point
		seg   Segment
	}

	var first Point
	var spans []span
	closed := false
	for s := p.Scanner(); s.Scan(); {
		n := s.Norm()
		switch n.Cmd {
		case MoveTo:
			first = s.End()
		case Close:
			closed = true
			if !s.Start().Equals(first) {
				spans = append(spans, span{s.Start(), seg(LineTo, first.X, first.Y)})
			}
		default:
			spans = append(spans, span{s.Start(), n})
		}
	}

	end := first
	if !closed && 0 < len(spans) {
		end = spans[len(spans)-1].seg.End()
	}
	q := Path{seg(MoveTo, end.X, end.Y)}
	for i := len(spans) - 1; 0 <= i; i-- {
		start, n := spans[i].start, spans[i].seg
		switch n.Cmd {
		case LineTo:
			q = append(q, seg(LineTo, start.X, start.Y))
		case QuadTo:
			q = append(q, seg(QuadTo, n.Args[0], n.Args[1], start.X, start.Y))
		case CubeTo:
			q = append(q, seg(CubeTo, n.Args[2], n.Args[3], n.Args[0], n.Args[1], start.X, start.Y))
		case ArcTo:
			q = append(q, seg(ArcTo, n.Args[0], n.Args[1], n.Args[2], n.Args[3], 1.0-n.Args[4], start.X, start.Y))
		}
	}
	if closed {
		if 1 < len(q) && q[len(q)-1].Cmd == LineTo {
			q = q[:len(q)-1]
		}
		q = append(q, seg(Close))
	}
	return q
}
