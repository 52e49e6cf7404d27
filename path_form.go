package pathdata

// ToAbsolute returns the path with all coordinates absolute. Shorthand commands (H, V, S, T) are kept.
func (p Path) ToAbsolute() Path {
	q := make(Path, 0, len(p))
	for s := p.Scanner(); s.Scan(); {
		q = append(q, s.Abs())
	}
	return q
}

// ToRelative returns the path with all coordinates relative to the current point. The first moveto stays absolute, which encodes the same numbers.
func (p Path) ToRelative() Path {
	q := make(Path, 0, len(p))
	for s := p.Scanner(); s.Scan(); {
		abs := s.Abs()
		if s.Index() == 0 {
			q = append(q, abs)
			continue
		} else if s.Cmd().IsRelative() {
			// already relative, keep the deltas exactly
			q = append(q, s.Segment())
			continue
		}
		rel := abs.translate(s.Start().Mul(-1.0))
		rel.Cmd = abs.Cmd.Rel()
		q = append(q, rel)
	}
	return q
}

// Normalize returns the path in absolute coordinates with shorthand commands expanded, using only M, L, C, Q, A, and Z commands.
func (p Path) Normalize() Path {
	q := make(Path, 0, len(p))
	for s := p.Scanner(); s.Scan(); {
		q = append(q, s.Norm())
	}
	return q
}

// IsAbsolute returns true if no segment uses relative coordinates.
func (p Path) IsAbsolute() bool {
	for _, s := range p {
		if s.Cmd.IsRelative() {
			return false
		}
	}
	return true
}

// IsRelative returns true if every segment but the leading moveto uses relative coordinates. Closepath commands are ignored.
func (p Path) IsRelative() bool {
	for i, s := range p {
		if 0 < i && s.Cmd.Abs() != Close && !s.Cmd.IsRelative() {
			return false
		}
	}
	return true
}

// IsNormalized returns true if the path is absolute and only uses M, L, C, Q, A, and Z commands.
func (p Path) IsNormalized() bool {
	for _, s := range p {
		switch s.Cmd {
		case MoveTo, LineTo, CubeTo, QuadTo, ArcTo, Close:
		default:
			return false
		}
	}
	return true
}

// IsCurve returns true if the path is absolute and only uses M, C, and Z commands.
func (p Path) IsCurve() bool {
	for _, s := range p {
		switch s.Cmd {
		case MoveTo, CubeTo, Close:
		default:
			return false
		}
	}
	return true
}
