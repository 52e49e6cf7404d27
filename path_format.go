package pathdata

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/tdewolff/minify/v2"
)

// Precision is the number of decimals used by String.
var Precision = 4

// NoRounding disables rounding when passed as precision.
const NoRounding = -1

// round rounds f to prec decimals, prec < 0 leaves f unchanged. Negative zero becomes zero.
func round(f float64, prec int) float64 {
	if 0 <= prec {
		p := math.Pow(10.0, float64(prec))
		if r := math.Round(f*p) / p; finite(r) {
			f = r
		}
	}
	if f == 0.0 {
		f = 0.0 // -0
	}
	return f
}

// formatNumber returns the shortest representation of f rounded to prec decimals.
func formatNumber(f float64, prec int) string {
	f = round(f, prec)
	b := strconv.AppendFloat(nil, f, 'f', -1, 64)
	if math.MaxInt32 < f || f < math.MinInt32 {
		if bytes.IndexByte(b, '.') == -1 {
			b = append(b, ".0"...)
		}
	}
	return string(minify.Number(b, 0))
}

// numberSeparated returns true if a separator is needed between the numerals prev and next.
func numberSeparated(prev, next string) bool {
	if prev == "" || next[0] == '-' {
		return false
	}
	return next[0] != '.' || !strings.ContainsAny(prev, ".eE")
}

// segmentWriter serializes consecutive segments, omitting command letters that are implied by repetition and separators that are not needed. It keeps track of the previous command and numeral.
type segmentWriter struct {
	prec    int
	prevCmd Command
	prevNum string
}

// implied returns true if cmd can be omitted after a segment with command prev.
func implied(prev, cmd Command) bool {
	return prev == cmd && cmd.Abs() != MoveTo && 0 < cmd.Arity()
}

func (w *segmentWriter) appendSegment(b []byte, s Segment) []byte {
	if !implied(w.prevCmd, s.Cmd) {
		b = append(b, byte(s.Cmd))
		w.prevNum = ""
	}
	for _, v := range s.Values() {
		num := formatNumber(v, w.prec)
		if numberSeparated(w.prevNum, num) {
			b = append(b, ' ')
		}
		b = append(b, num...)
		w.prevNum = num
	}
	w.prevCmd = s.Cmd
	return b
}

// size returns the number of bytes s would add to the output.
func (w segmentWriter) size(s Segment) int {
	return len(w.appendSegment(nil, s))
}

// Serialize returns the path data with values rounded to prec decimals, or unrounded for NoRounding. Numbers are written in their shortest form, separators are left out where the next number cannot be read as part of the previous, and command letters are left out when a command is repeated.
func (p Path) Serialize(prec int) string {
	w := segmentWriter{prec: prec}
	b := []byte{}
	for _, s := range p {
		b = w.appendSegment(b, s)
	}
	return string(b)
}

// String returns the path data with values rounded to Precision decimals.
func (p Path) String() string {
	return p.Serialize(Precision)
}
