package pathdata

// encodings of a segment, in order of preference on equal length
const (
	relEncoding = iota
	absEncoding
	relShorthand
	absShorthand
	relShorthand2
	absShorthand2
	inputEncoding    // segment as given
	inputAbsEncoding // segment as given by ToAbsolute
	inputRelEncoding // segment as given by ToRelative
	numEncodings
)

// Optimize returns the path with the shortest serialization after rounding to prec decimals, choosing for every segment between its relative, absolute, and shorthand (H, V, S, T) encoding. On equal length the relative encoding is preferred, then the absolute, then the shorthand encodings. Relative coordinates are computed from the current point as decoded from the rounded output, so rounding errors do not accumulate. A shorthand is used when its implied values round to the same values as the actual ones. The encodings of the segment as given, or as given by ToAbsolute or ToRelative, are used only when strictly shorter, so that the result is never longer than any of those. The first segment is kept absolute.
func (p Path) Optimize(prec int) Path {
	near := func(a, b float64) bool {
		if prec < 0 {
			return equal(a, b)
		}
		return round(a, prec) == round(b, prec)
	}
	abs, rel := p.ToAbsolute(), p.ToRelative()

	// the cost of an encoding depends on the previous one through implied command letters and separators, so we keep the shortest output ending in each encoding
	type node struct {
		s    Segment
		dec  Scanner // decodes the output like a reader would
		w    segmentWriter
		size int
		prev int
		ok   bool
	}

	layers := [][numEncodings]node{}
	prevLayer := [numEncodings]node{}
	prevLayer[0] = node{dec: Scanner{i: -1}, w: segmentWriter{prec: prec}, ok: true}
	for s := p.Scanner(); s.Scan(); {
		n := s.Norm()
		layer := [numEncodings]node{}
		for j, pn := range prevLayer {
			if !pn.ok {
				continue
			}

			var encs [numEncodings]Segment
			if n.Cmd == Close || len(layers) == 0 {
				encs[absEncoding] = n
			} else {
				cur := pn.dec.End()
				encs[relEncoding] = relative(n, cur)
				encs[absEncoding] = n
				for i, short := range shorthands(n, cur, pn.dec.Norm(), near) {
					encs[relShorthand+2*i] = relative(short, cur)
					encs[absShorthand+2*i] = short
				}
				encs[inputEncoding] = s.Segment()
				encs[inputAbsEncoding] = abs[s.Index()]
				encs[inputRelEncoding] = rel[s.Index()]
			}

			for k, enc := range encs {
				if enc.Cmd == 0 {
					continue
				}
				for i := range enc.Values() {
					enc.Args[i] = round(enc.Args[i], prec)
				}
				if size := pn.size + pn.w.size(enc); !layer[k].ok || size < layer[k].size {
					nd := node{s: enc, dec: pn.dec, w: pn.w, size: size, prev: j, ok: true}
					nd.dec.p, nd.dec.i = Path{enc}, -1
					nd.dec.Scan()
					nd.w.appendSegment(nil, enc)
					layer[k] = nd
				}
			}
		}
		layers = append(layers, layer)
		prevLayer = layer
	}
	if len(layers) == 0 {
		return Path{}
	}

	k := -1
	for i, nd := range prevLayer {
		if nd.ok && (k == -1 || nd.size < prevLayer[k].size) {
			k = i
		}
	}
	q := make(Path, len(layers))
	for i := len(layers) - 1; 0 <= i; i-- {
		q[i] = layers[i][k].s
		k = layers[i][k].prev
	}
	return q
}

func relative(s Segment, cur Point) Segment {
	s = s.translate(cur.Mul(-1.0))
	s.Cmd = s.Cmd.Rel()
	return s
}

// shorthands returns the shorthand encodings of the normalized segment n starting at cur, for which the implied values are near the actual values. Prev is the previous normalized segment.
func shorthands(n Segment, cur Point, prev Segment, near func(float64, float64) bool) []Segment {
	var ss []Segment
	switch n.Cmd {
	case LineTo:
		if near(n.Args[1], cur.Y) {
			ss = append(ss, seg(HLineTo, n.Args[0]))
		}
		if near(n.Args[0], cur.X) {
			ss = append(ss, seg(VLineTo, n.Args[1]))
		}
	case CubeTo:
		cp := cur
		if prev.Cmd == CubeTo {
			cp = Point{prev.Args[2], prev.Args[3]}.Reflect(cur)
		}
		if near(n.Args[0], cp.X) && near(n.Args[1], cp.Y) {
			ss = append(ss, seg(SmoothCubeTo, n.Args[2], n.Args[3], n.Args[4], n.Args[5]))
		}
	case QuadTo:
		cp := cur
		if prev.Cmd == QuadTo {
			cp = Point{prev.Args[0], prev.Args[1]}.Reflect(cur)
		}
		if near(n.Args[0], cp.X) && near(n.Args[1], cp.Y) {
			ss = append(ss, seg(SmoothQuadTo, n.Args[2], n.Args[3]))
		}
	}
	return ss
}
