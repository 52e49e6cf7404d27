package pathdata

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/image/math/f64"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDescriptor is returned for transform descriptors that cannot be decoded or have the wrong number of values.
var ErrInvalidDescriptor = errors.New("invalid transform descriptor")

// Values is a list of numbers that may also be written as a single YAML scalar.
type Values []float64

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Values) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		*v = Values{f}
		return nil
	}
	var fs []float64
	if err := node.Decode(&fs); err != nil {
		return err
	}
	*v = fs
	return nil
}

// Descriptor describes a transformation by its components, each of which is optional. Angles are in degrees.
//
//	translate: [x, y, z]   x, [x,y], or [x,y,z]
//	rotate:    [x, y, z]   angle around the z-axis, or [x,y,z]
//	scale:     [x, y, z]   uniform factor, [x,y], or [x,y,z]
//	skew:      [x, y]      x, or [x,y]
//	matrix:    [a, b, c, d, e, f] or 16 matrix3d coefficients in column-major order
//	origin:    [x, y, z]   [x,y] or [x,y,z], defaults to [0,0,0]
type Descriptor struct {
	Translate    Values `yaml:"translate"`
	Rotate       Values `yaml:"rotate"`
	Scale        Values `yaml:"scale"`
	Skew         Values `yaml:"skew"`
	Coefficients Values `yaml:"matrix"`
	Origin       Values `yaml:"origin"`
}

// ParseDescriptor decodes a YAML transform descriptor, such as {translate: [10, 5], rotate: 45, origin: [50, 50]}. Empty input returns the identity descriptor.
func ParseDescriptor(s string) (Descriptor, error) {
	d := Descriptor{}
	dec := yaml.NewDecoder(strings.NewReader(s))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil && err != io.EOF {
		return Descriptor{}, fmt.Errorf("%w: %v", ErrInvalidDescriptor, err)
	}
	if _, err := d.Matrix(); err != nil {
		return Descriptor{}, err
	}
	if _, err := d.Anchor(); err != nil {
		return Descriptor{}, err
	}
	return d, nil
}

func checkValues(name string, v Values, lengths ...int) error {
	for _, f := range v {
		if !finite(f) {
			return fmt.Errorf("%w: %s has non-finite value", ErrInvalidDescriptor, name)
		}
	}
	for _, n := range lengths {
		if len(v) == n {
			return nil
		}
	}
	return fmt.Errorf("%w: %s takes %v values, got %d", ErrInvalidDescriptor, name, lengths, len(v))
}

// Matrix composes the transformation matrix as matrix · translate · rotate · skew · scale, where rotations are applied around the x-axis first, then y, then z.
func (d Descriptor) Matrix() (Matrix, error) {
	m := Identity
	if d.Coefficients != nil {
		if err := checkValues("matrix", d.Coefficients, 6, 16); err != nil {
			return Matrix{}, err
		}
		if len(d.Coefficients) == 6 {
			c := d.Coefficients
			m = Affine(c[0], c[1], c[2], c[3], c[4], c[5])
		} else {
			m = Matrix3D([16]float64(d.Coefficients))
		}
	}

	if d.Translate != nil {
		if err := checkValues("translate", d.Translate, 1, 2, 3); err != nil {
			return Matrix{}, err
		}
		t := [3]float64{}
		copy(t[:], d.Translate)
		m = m.Translate(t[0], t[1], t[2])
	}

	if d.Rotate != nil {
		if err := checkValues("rotate", d.Rotate, 1, 3); err != nil {
			return Matrix{}, err
		}
		if len(d.Rotate) == 1 {
			m = m.Rotate(0.0, 0.0, d.Rotate[0])
		} else {
			m = m.Rotate(d.Rotate[0], d.Rotate[1], d.Rotate[2])
		}
	}

	if d.Skew != nil {
		if err := checkValues("skew", d.Skew, 1, 2); err != nil {
			return Matrix{}, err
		}
		t := [2]float64{}
		copy(t[:], d.Skew)
		m = m.Skew(t[0], t[1])
	}

	if d.Scale != nil {
		if err := checkValues("scale", d.Scale, 1, 2, 3); err != nil {
			return Matrix{}, err
		}
		switch len(d.Scale) {
		case 1:
			m = m.Scale(d.Scale[0], d.Scale[0], d.Scale[0])
		case 2:
			m = m.Scale(d.Scale[0], d.Scale[1], 1.0)
		default:
			m = m.Scale(d.Scale[0], d.Scale[1], d.Scale[2])
		}
	}
	return m, nil
}

// Anchor returns the origin around which the transformation is applied.
func (d Descriptor) Anchor() (f64.Vec3, error) {
	o := f64.Vec3{}
	if d.Origin != nil {
		if err := checkValues("origin", d.Origin, 2, 3); err != nil {
			return o, err
		}
		copy(o[:], d.Origin)
	}
	return o, nil
}
