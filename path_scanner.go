package pathdata

// Scanner walks over the segments of a path while keeping track of the current point, the start of the current subpath and the control point of the previous segment. It returns every segment in its original, absolute and normalized encoding.
type Scanner struct {
	p     Path
	i     int
	start Point // current point before the segment
	end   Point // current point after the segment
	first Point // start of the current subpath
	abs   Segment
	norm  Segment
}

// Scanner returns a path scanner positioned before the first segment.
func (p Path) Scanner() *Scanner {
	return &Scanner{p: p, i: -1}
}

// Scan advances to the next segment and returns false at the end of the path.
func (s *Scanner) Scan() bool {
	if len(s.p) <= s.i+1 {
		return false
	}
	s.i++
	prev := s.norm
	s.start = s.end

	s.abs = s.p[s.i]
	if s.abs.Cmd.IsRelative() {
		s.abs = s.abs.translate(s.start)
		s.abs.Cmd = s.abs.Cmd.Abs()
	}

	x, y := s.start.X, s.start.Y
	s.norm = s.abs
	switch s.abs.Cmd {
	case MoveTo:
		s.first = s.abs.End()
	case HLineTo:
		s.norm = seg(LineTo, s.abs.Args[0], y)
	case VLineTo:
		s.norm = seg(LineTo, x, s.abs.Args[0])
	case SmoothCubeTo:
		cp1 := s.start
		if prev.Cmd == CubeTo {
			cp1 = Point{prev.Args[2], prev.Args[3]}.Reflect(s.start)
		}
		s.norm = seg(CubeTo, cp1.X, cp1.Y, s.abs.Args[0], s.abs.Args[1], s.abs.Args[2], s.abs.Args[3])
	case SmoothQuadTo:
		cp := s.start
		if prev.Cmd == QuadTo {
			cp = Point{prev.Args[0], prev.Args[1]}.Reflect(s.start)
		}
		s.norm = seg(QuadTo, cp.X, cp.Y, s.abs.Args[0], s.abs.Args[1])
	}

	if s.norm.Cmd == Close {
		s.end = s.first
	} else {
		s.end = s.norm.End()
	}
	return true
}

// Index returns the index of the current segment in the path.
func (s *Scanner) Index() int {
	return s.i
}

// Cmd returns the command of the current segment as it appears in the path.
func (s *Scanner) Cmd() Command {
	return s.p[s.i].Cmd
}

// Segment returns the current segment as it appears in the path.
func (s *Scanner) Segment() Segment {
	return s.p[s.i]
}

// Abs returns the current segment with absolute coordinates, shorthand commands are kept.
func (s *Scanner) Abs() Segment {
	return s.abs
}

// Norm returns the current segment with absolute coordinates and shorthand commands expanded, ie. one of M, L, C, Q, A, or Z.
func (s *Scanner) Norm() Segment {
	return s.norm
}

// Start returns the current point before the segment.
func (s *Scanner) Start() Point {
	return s.start
}

// End returns the current point after the segment.
func (s *Scanner) End() Point {
	return s.end
}

// SubpathStart returns the start point of the current subpath.
func (s *Scanner) SubpathStart() Point {
	return s.first
}
