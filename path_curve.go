package pathdata

// ToCurve returns the path using only M, C, and Z commands in absolute coordinates. Lines become cubic Béziers with their control points on the line, quadratic Béziers are degree raised, and arcs are approximated by cubic Béziers. A closepath is dropped when the previous segment already ends at the start of the subpath.
func (p Path) ToCurve() Path {
	q := make(Path, 0, len(p))
	for s := p.Scanner(); s.Scan(); {
		n := s.Norm()
		start, end := s.Start(), s.End()
		switch n.Cmd {
		case MoveTo:
			q = append(q, n)
		case LineTo:
			q = append(q, lineToCubic(start, end))
		case QuadTo:
			q = append(q, quadToCubic(start, Point{n.Args[0], n.Args[1]}, end))
		case CubeTo:
			q = append(q, n)
		case ArcTo:
			q = append(q, arcToCubic(start, n.Args[0], n.Args[1], n.Args[2], n.Large(), n.Sweep(), end)...)
		case Close:
			if 0 < len(q) && q[len(q)-1].Cmd != MoveTo && q[len(q)-1].Cmd != Close && start.Equals(end) {
				Logger().Debug("dropping redundant closepath", "index", s.Index())
				continue
			}
			q = append(q, seg(Close))
		}
	}
	return q
}
