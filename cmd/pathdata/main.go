package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/pathdata"
)

type Normalize struct {
	Precision int    `short:"p" default:"4" desc:"Number of decimals, -1 disables rounding"`
	Verbose   bool   `short:"v" desc:"Log repairs to stderr"`
	Input     string `index:"0" desc:"Path data, or - for stdin"`
}

type Abs Normalize
type Rel Normalize
type Curve Normalize
type Optimize Normalize
type Split Normalize

type Measure struct {
	Verbose bool   `short:"v" desc:"Log repairs to stderr"`
	Input   string `index:"0" desc:"Path data, or - for stdin"`
}

type Bounds Measure
type Length Measure
type Area Measure
type Direction Measure

type Point struct {
	Length  float64 `short:"l" desc:"Distance along the path"`
	Verbose bool    `short:"v" desc:"Log repairs to stderr"`
	Input   string  `index:"0" desc:"Path data, or - for stdin"`
}

type Transform struct {
	Descriptor string `short:"t" desc:"Transformation in YAML, eg. {translate: [10, 5], rotate: 45}"`
	Precision  int    `short:"p" default:"4" desc:"Number of decimals, -1 disables rounding"`
	Verbose    bool   `short:"v" desc:"Log repairs to stderr"`
	Input      string `index:"0" desc:"Path data, or - for stdin"`
}

type Reverse struct {
	Subpaths  bool   `short:"s" desc:"Keep the order of subpaths"`
	Precision int    `short:"p" default:"4" desc:"Number of decimals, -1 disables rounding"`
	Verbose   bool   `short:"v" desc:"Log repairs to stderr"`
	Input     string `index:"0" desc:"Path data, or - for stdin"`
}

func main() {
	root := argp.NewCmd(&Normalize{}, "SVG path data toolkit, prints the normalized path by default")
	root.AddCmd(&Abs{}, "abs", "Convert to absolute coordinates")
	root.AddCmd(&Rel{}, "rel", "Convert to relative coordinates")
	root.AddCmd(&Curve{}, "curve", "Convert to cubic Béziers")
	root.AddCmd(&Optimize{}, "optimize", "Convert to the shortest encoding")
	root.AddCmd(&Split{}, "split", "Print each subpath on its own line")
	root.AddCmd(&Bounds{}, "bbox", "Print the bounding box")
	root.AddCmd(&Length{}, "length", "Print the length")
	root.AddCmd(&Area{}, "area", "Print the signed area")
	root.AddCmd(&Direction{}, "direction", "Print the winding direction")
	root.AddCmd(&Point{}, "point", "Print the point at a distance along the path")
	root.AddCmd(&Transform{}, "transform", "Apply a transformation")
	root.AddCmd(&Reverse{}, "reverse", "Reverse the drawing direction")
	root.Parse()
	root.PrintHelp()
}

// load parses the path data from the argument, or from stdin if it is empty or -.
func load(input string, verbose bool) (pathdata.Path, error) {
	if verbose {
		pathdata.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if input == "" || input == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		input = strings.TrimSpace(string(b))
	}
	return pathdata.Parse(input)
}

func convert(cmd *Normalize, f func(pathdata.Path) pathdata.Path) error {
	p, err := load(cmd.Input, cmd.Verbose)
	if err != nil {
		return err
	}
	fmt.Println(f(p).Serialize(cmd.Precision))
	return nil
}

func (cmd *Normalize) Run() error {
	return convert(cmd, pathdata.Path.Normalize)
}

func (cmd *Abs) Run() error {
	return convert((*Normalize)(cmd), pathdata.Path.ToAbsolute)
}

func (cmd *Rel) Run() error {
	return convert((*Normalize)(cmd), pathdata.Path.ToRelative)
}

func (cmd *Curve) Run() error {
	return convert((*Normalize)(cmd), pathdata.Path.ToCurve)
}

func (cmd *Optimize) Run() error {
	return convert((*Normalize)(cmd), func(p pathdata.Path) pathdata.Path {
		return p.Optimize(cmd.Precision)
	})
}

func (cmd *Split) Run() error {
	p, err := load(cmd.Input, cmd.Verbose)
	if err != nil {
		return err
	}
	for _, pi := range p.Split() {
		fmt.Println(pi.Serialize(cmd.Precision))
	}
	return nil
}

func (cmd *Bounds) Run() error {
	p, err := load(cmd.Input, cmd.Verbose)
	if err != nil {
		return err
	}
	r := p.Bounds()
	fmt.Printf("%g %g %g %g\n", r.X0, r.Y0, r.X1, r.Y1)
	return nil
}

func (cmd *Length) Run() error {
	p, err := load(cmd.Input, cmd.Verbose)
	if err != nil {
		return err
	}
	fmt.Printf("%g\n", p.Length())
	return nil
}

func (cmd *Area) Run() error {
	p, err := load(cmd.Input, cmd.Verbose)
	if err != nil {
		return err
	}
	fmt.Printf("%g\n", p.Area())
	return nil
}

func (cmd *Direction) Run() error {
	p, err := load(cmd.Input, cmd.Verbose)
	if err != nil {
		return err
	}
	fmt.Println(p.Direction())
	return nil
}

func (cmd *Point) Run() error {
	p, err := load(cmd.Input, cmd.Verbose)
	if err != nil {
		return err
	}
	q := p.PointAtLength(cmd.Length)
	fmt.Printf("%g %g\n", q.X, q.Y)
	return nil
}

func (cmd *Transform) Run() error {
	if cmd.Descriptor == "" {
		fmt.Println("ERROR: must specify transformation")
		return argp.ShowUsage
	}

	d, err := pathdata.ParseDescriptor(cmd.Descriptor)
	if err != nil {
		return err
	}
	p, err := load(cmd.Input, cmd.Verbose)
	if err != nil {
		return err
	}
	if p, err = pathdata.Transform(p, d); err != nil {
		return err
	}
	fmt.Println(p.Serialize(cmd.Precision))
	return nil
}

func (cmd *Reverse) Run() error {
	p, err := load(cmd.Input, cmd.Verbose)
	if err != nil {
		return err
	}
	fmt.Println(p.Reverse(cmd.Subpaths).Serialize(cmd.Precision))
	return nil
}
