package pathdata

// areaSamples is the number of line segments each curve is flattened into when computing the area.
const areaSamples = 64

// Winding is the orientation in which a path is drawn.
type Winding int

// Winding directions, as seen on screen with the y-axis pointing down.
const (
	Clockwise Winding = iota
	CounterClockwise
)

func (w Winding) String() string {
	if w == Clockwise {
		return "clockwise"
	}
	return "counter-clockwise"
}

// cubics returns the current segment as cubic Béziers, or nil for movetos and straight lines (L, H, V, and Z).
func (s *Scanner) cubics() []Segment {
	n := s.Norm()
	switch n.Cmd {
	case QuadTo:
		return []Segment{quadToCubic(s.Start(), Point{n.Args[0], n.Args[1]}, s.End())}
	case CubeTo:
		return []Segment{n}
	case ArcTo:
		return arcToCubic(s.Start(), n.Args[0], n.Args[1], n.Args[2], n.Large(), n.Sweep(), s.End())
	}
	return nil
}

func cubicPoints(start Point, c Segment) (Point, Point, Point, Point) {
	return start, Point{c.Args[0], c.Args[1]}, Point{c.Args[2], c.Args[3]}, Point{c.Args[4], c.Args[5]}
}

// Bounds returns the bounding box of the path. Curves are bounded tightly by including their extrema, and every moveto point is included. An empty path returns the zero Rect.
func (p Path) Bounds() Rect {
	r := Rect{}
	initialized := false
	add := func(q Point) {
		if !initialized {
			r = Rect{q.X, q.Y, q.X, q.Y}
			initialized = true
		} else {
			r = r.AddPoint(q)
		}
	}

	for s := p.Scanner(); s.Scan(); {
		cs := s.cubics()
		if cs == nil {
			add(s.End())
			continue
		}

		start := s.Start()
		for _, c := range cs {
			p0, p1, p2, p3 := cubicPoints(start, c)
			add(p3)
			for _, t := range cubicBezierExtrema(p0.X, p1.X, p2.X, p3.X) {
				add(cubicBezierPos(p0, p1, p2, p3, t))
			}
			for _, t := range cubicBezierExtrema(p0.Y, p1.Y, p2.Y, p3.Y) {
				add(cubicBezierPos(p0, p1, p2, p3, t))
			}
			start = p3
		}
	}
	return r
}

// Length returns the length of the path. Straight lines, including the closing line of a closepath, have their exact Euclidean length and curves are integrated numerically.
func (p Path) Length() float64 {
	l := 0.0
	for s := p.Scanner(); s.Scan(); {
		if s.Norm().Cmd == MoveTo {
			continue
		}

		cs := s.cubics()
		if cs == nil {
			l += s.End().Sub(s.Start()).Length()
			continue
		}

		start := s.Start()
		for _, c := range cs {
			p0, p1, p2, p3 := cubicPoints(start, c)
			l += cubicBezierLength(p0, p1, p2, p3, 1.0)
			start = p3
		}
	}
	return l
}

// PointAtLength returns the point on the path at distance l from the start, where l is clamped to [0,Length()]. An empty path returns the zero Point.
func (p Path) PointAtLength(l float64) Point {
	if total := p.Length(); total < l {
		l = total
	}
	if l < 0.0 {
		l = 0.0
	}

	pos := Point{}
	for s := p.Scanner(); s.Scan(); {
		if s.Norm().Cmd == MoveTo {
			if s.Index() == 0 {
				pos = s.End()
			}
			continue
		}

		cs := s.cubics()
		if cs == nil {
			start, end := s.Start(), s.End()
			if d := end.Sub(start).Length(); 0.0 < d {
				if l <= d {
					return start.Interpolate(end, l/d)
				}
				l -= d
			}
			pos = end
			continue
		}

		start := s.Start()
		for _, c := range cs {
			p0, p1, p2, p3 := cubicPoints(start, c)
			if d := cubicBezierLength(p0, p1, p2, p3, 1.0); 0.0 < d {
				if l <= d {
					t := bisectionMethod(func(t float64) float64 {
						return cubicBezierLength(p0, p1, p2, p3, t)
					}, l, 0.0, 1.0)
					return cubicBezierPos(p0, p1, p2, p3, t)
				}
				l -= d
			}
			start = p3
		}
		pos = s.End()
	}
	return pos
}

// Area returns the signed area enclosed by the path, where each subpath is implicitly closed. Curves are flattened into a fixed number of lines. The area is positive for paths drawn clockwise on screen, ie. in a coordinate system with the y-axis pointing down.
func (p Path) Area() float64 {
	cross := func(a, b Point) float64 {
		return a.X*b.Y - b.X*a.Y
	}

	area := 0.0
	var first, prev Point
	for s := p.Scanner(); s.Scan(); {
		if s.Norm().Cmd == MoveTo {
			area += cross(prev, first)
			first, prev = s.End(), s.End()
			continue
		}

		cs := s.cubics()
		if cs == nil {
			area += cross(prev, s.End())
			prev = s.End()
			continue
		}

		start := s.Start()
		for _, c := range cs {
			p0, p1, p2, p3 := cubicPoints(start, c)
			for i := 1; i <= areaSamples; i++ {
				q := cubicBezierPos(p0, p1, p2, p3, float64(i)/areaSamples)
				area += cross(prev, q)
				prev = q
			}
			start = p3
		}
	}
	area += cross(prev, first)
	return area / 2.0
}

// Direction returns the winding direction of the path from the sign of its area. Paths without area are reported as clockwise.
func (p Path) Direction() Winding {
	if 0.0 <= p.Area() {
		return Clockwise
	}
	return CounterClockwise
}
