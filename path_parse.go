package pathdata

import (
	"bytes"
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
)

// ParseError is returned for path data that does not follow the SVG path grammar.
type ParseError struct {
	Offset  int // byte offset of the offending character
	Line    int
	Column  int
	Message string
	Context string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s on line %d and column %d\n%s", e.Message, e.Line, e.Column, e.Context)
}

// parser holds the cursor over the path data and the first error encountered.
type parser struct {
	b   []byte
	z   *parse.Input
	err *ParseError
}

func (p *parser) fail(offset int, format string, a ...interface{}) {
	if p.err != nil {
		return
	}
	msg := fmt.Sprintf(format, a...)
	perr := parse.NewError(bytes.NewReader(p.b), offset, msg)
	p.err = &ParseError{
		Offset:  offset,
		Line:    perr.Line,
		Column:  perr.Column,
		Message: msg,
		Context: perr.Context,
	}
}

func (p *parser) eof() bool {
	return p.z.Err() != nil
}

func (p *parser) skipCommaWhitespace() {
	for !p.eof() {
		switch p.z.Peek(0) {
		case ' ', ',', '\n', '\r', '\t', '\f':
			p.z.Move(1)
		default:
			return
		}
	}
}

func isLetter(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

func isNumStart(c byte) bool {
	return '0' <= c && c <= '9' || c == '.' || c == '-' || c == '+'
}

func hasDigit(b []byte) bool {
	for _, c := range b {
		if '0' <= c && c <= '9' {
			return true
		}
	}
	return false
}

// segment scans the parameters of one segment for the given command.
func (p *parser) segment(cmd Command) (Segment, bool) {
	s := Segment{Cmd: cmd}
	n := cmd.Arity()
	for i := 0; i < n; i++ {
		p.skipCommaWhitespace()
		pos := p.z.Pos()
		c := p.z.Peek(0)
		if p.eof() || isLetter(c) {
			p.fail(pos, "expected %d parameters for '%v', got %d", n, cmd, i)
			return s, false
		} else if cmd.Abs() == ArcTo && (i == 3 || i == 4) {
			// flags are a single digit and may be followed directly by the next number
			if c != '0' && c != '1' {
				p.fail(pos, "invalid arc flag")
				return s, false
			}
			s.Args[i] = float64(c - '0')
			p.z.Move(1)
			continue
		} else if !isNumStart(c) {
			p.fail(pos, "malformed number")
			return s, false
		}

		f, m := strconv.ParseFloat(p.b[pos:])
		if math.IsNaN(f) {
			f = 0.0 // zero with an overflowing exponent
		}
		if m == 0 || !hasDigit(p.b[pos:pos+m]) || !finite(f) {
			p.fail(pos, "malformed number")
			return s, false
		}
		p.z.Move(m)
		s.Args[i] = f
	}
	return s, true
}

// Parse parses SVG path data, see https://www.w3.org/TR/SVG2/paths.html#PathDataBNF. Segments keep the command letters of the input, so relative and shorthand commands remain as is. Empty input returns an empty path. An error is of type *ParseError.
func Parse(d string) (Path, error) {
	p := &parser{
		b: []byte(d),
		z: parse.NewInputString(d),
	}

	path := Path{}
	var cmd Command
	for {
		p.skipCommaWhitespace()
		if p.eof() {
			break
		}

		pos := p.z.Pos()
		c := p.z.Peek(0)
		if isLetter(c) {
			cmd = Command(c)
			if !cmd.Valid() {
				p.fail(pos, "bad command letter '%c'", c)
				break
			}
			p.z.Move(1)
		} else if !isNumStart(c) {
			p.fail(pos, "unexpected character %q", c)
			break
		} else if cmd == 0 {
			p.fail(pos, "path must start with a moveto")
			break
		} else if cmd.Abs() == Close {
			p.fail(pos, "unexpected number after closepath")
			break
		}

		if len(path) == 0 && cmd.Abs() != MoveTo {
			p.fail(pos, "path must start with a moveto")
			break
		}

		s, ok := p.segment(cmd)
		if !ok {
			break
		}
		path = append(path, s)

		// a number after a completed segment repeats the previous command, for moveto that is a lineto
		if cmd == MoveTo {
			cmd = LineTo
		} else if cmd == MoveTo.Rel() {
			cmd = LineTo.Rel()
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return path, nil
}

// MustParse parses SVG path data and panics on error.
func MustParse(d string) Path {
	p, err := Parse(d)
	if err != nil {
		panic(err)
	}
	return p
}
