package store

import (
	"strconv"
	"strings"

	"github.com/drawkit/drawgo/shape"
)

// PathParse reports how much of a path data string was consumed.
type PathParse struct {
	Commands int  // commands successfully parsed
	Complete bool // false when parsing stopped before the end of input
}

// InsertPath parses an SVG-style path data string ("M 10 20 L 30 40 Z")
// and appends a path record referencing the parsed segments.
//
// Recognized commands and their exact argument counts: M/L take 2,
// C takes 6, Q takes 4, A takes 7, Z takes none. Coordinates are
// treated as absolute regardless of letter case. Parsing is
// best-effort: a malformed number, an unknown letter or premature end
// of input truncates the path at the last fully parsed command instead
// of failing the insertion, and the returned PathParse makes the
// truncation observable to the caller.
func (s *Storage) InsertPath(data string) (shape.Handle, PathParse, error) {
	h, err := shape.MakeHandle(shape.KindPath, uint32(len(s.Paths)))
	if err != nil {
		return 0, PathParse{}, err
	}

	segs, complete := s.parsePathData(data)
	sp := s.PathSegments.Append(segs)
	s.Paths = append(s.Paths, shape.Path{Header: shape.DefaultHeader(), Segments: sp})
	return h, PathParse{Commands: len(segs), Complete: complete}, nil
}

// parsePathData tokenizes data and emits one segment per command,
// appending parameters to the flat float pool as each command
// completes. Parameters of a truncated trailing command are never
// appended.
func (s *Storage) parsePathData(data string) (segs []shape.Segment, complete bool) {
	toks := tokenizePath(data)
	i := 0
	for i < len(toks) {
		op, ok := segOpFor(toks[i])
		if !ok {
			return segs, false
		}
		i++
		n := op.ParamCount()
		if i+n > len(toks) {
			return segs, false
		}
		params := make([]float32, n)
		for j := 0; j < n; j++ {
			v, err := strconv.ParseFloat(toks[i+j], 32)
			if err != nil {
				return segs, false
			}
			params[j] = float32(v)
		}
		i += n
		segs = append(segs, shape.Segment{Op: op, Params: s.PathParams.Append(params)})
	}
	return segs, true
}

func segOpFor(tok string) (shape.SegOp, bool) {
	if len(tok) != 1 {
		return 0, false
	}
	switch tok[0] {
	case 'M', 'm':
		return shape.SegMove, true
	case 'L', 'l':
		return shape.SegLine, true
	case 'C', 'c':
		return shape.SegCubic, true
	case 'Q', 'q':
		return shape.SegQuad, true
	case 'A', 'a':
		return shape.SegArc, true
	case 'Z', 'z':
		return shape.SegClose, true
	default:
		return 0, false
	}
}

// tokenizePath splits on whitespace and commas, and separates command
// letters glued to their first number ("M10 20" -> "M", "10", "20").
func tokenizePath(data string) []string {
	var toks []string
	fields := strings.FieldsFunc(data, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ','
	})
	for _, f := range fields {
		for len(f) > 0 && isPathLetter(f[0]) {
			toks = append(toks, f[:1])
			f = f[1:]
		}
		if len(f) > 0 {
			toks = append(toks, f)
		}
	}
	return toks
}

func isPathLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
