package pathdata

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Transform applies the transformation described by d to the path.
func Transform(p Path, d Descriptor) (Path, error) {
	m, err := d.Matrix()
	if err != nil {
		return nil, err
	}
	origin, err := d.Anchor()
	if err != nil {
		return nil, err
	}
	return TransformMatrix(p, m, origin)
}

// TransformMatrix applies matrix m around origin to the path, projecting every point in the z=0 plane with perspective division. The result is in absolute coordinates, and arcs are converted to cubic Béziers since the image of an ellipse is not an ellipse in general. Horizontal and vertical lines are kept only if they stay horizontal or vertical. An identity matrix returns a copy of the path.
func TransformMatrix(p Path, m Matrix, origin f64.Vec3) (Path, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	} else if m.IsIdentity() {
		Logger().Debug("identity transformation, path unchanged")
		return p.Clone(), nil
	} else if m.singular() {
		return nil, &GeometryError{"transformation matrix is singular"}
	}

	project := func(q Point) (Point, error) {
		v := m.Dot(f64.Vec4{q.X - origin[0], q.Y - origin[1], -origin[2], 1.0})
		if math.Abs(v[3]) < Epsilon {
			return Point{}, &GeometryError{fmt.Sprintf("point %v is projected to infinity", q)}
		}
		return Point{v[0]/v[3] + origin[0], v[1]/v[3] + origin[1]}, nil
	}
	projectSegment := func(s Segment) (Segment, error) {
		for i := 0; i+1 < s.Cmd.Arity(); i += 2 {
			q, err := project(Point{s.Args[i], s.Args[i+1]})
			if err != nil {
				return s, err
			}
			s.Args[i], s.Args[i+1] = q.X, q.Y
		}
		return s, nil
	}

	affine := m.IsAffine()
	q := make(Path, 0, len(p))
	prev := MoveTo
	var cur Point
	for s := p.Scanner(); s.Scan(); {
		a := s.Abs()
		if a.Cmd == SmoothCubeTo && (!affine || prev == ArcTo) || a.Cmd == SmoothQuadTo && !affine {
			// reflected control points are only preserved by affine maps
			a = s.Norm()
		}
		prev = s.Abs().Cmd

		switch a.Cmd {
		case ArcTo:
			n := s.Norm()
			for _, c := range arcToCubic(s.Start(), n.Args[0], n.Args[1], n.Args[2], n.Large(), n.Sweep(), s.End()) {
				c, err := projectSegment(c)
				if err != nil {
					return nil, err
				}
				q = append(q, c)
			}
		case HLineTo, VLineTo:
			end, err := project(s.End())
			if err != nil {
				return nil, err
			}
			if a.Cmd == HLineTo && equal(end.Y, cur.Y) {
				q = append(q, seg(HLineTo, end.X))
			} else if a.Cmd == VLineTo && equal(end.X, cur.X) {
				q = append(q, seg(VLineTo, end.Y))
			} else {
				q = append(q, seg(LineTo, end.X, end.Y))
			}
		case Close:
			q = append(q, a)
		default:
			a, err := projectSegment(a)
			if err != nil {
				return nil, err
			}
			q = append(q, a)
		}

		var err error
		if cur, err = project(s.End()); err != nil {
			return nil, err
		}
	}
	return q, nil
}

// Translate returns the path translated by (x,y).
func (p Path) Translate(x, y float64) (Path, error) {
	return TransformMatrix(p, Identity.Translate(x, y, 0.0), f64.Vec3{})
}

// Scale returns the path scaled by (sx,sy) around the origin.
func (p Path) Scale(sx, sy float64) (Path, error) {
	return TransformMatrix(p, Identity.Scale(sx, sy, 1.0), f64.Vec3{})
}

// Rotate returns the path rotated by rot degrees around the origin, clockwise on screen for positive angles.
func (p Path) Rotate(rot float64) (Path, error) {
	return TransformMatrix(p, Identity.Rotate(0.0, 0.0, rot), f64.Vec3{})
}
