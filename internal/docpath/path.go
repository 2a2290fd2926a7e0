package docpath

import (
	"fmt"
	"strconv"
	"strings"
)

// SegmentKind tells whether a segment addresses an object key or a list index.
type SegmentKind int

const (
	KeySegment SegmentKind = iota
	IndexSegment
)

func (k SegmentKind) String() string {
	if k == IndexSegment {
		return "index"
	}
	return "key"
}

// Segment is one step of a Path.
type Segment struct {
	Kind  SegmentKind
	Key   string
	Index int
}

// Key returns an object-key segment.
func Key(name string) Segment {
	return Segment{Kind: KeySegment, Key: name}
}

// Index returns a list-index segment.
func Index(i int) Segment {
	return Segment{Kind: IndexSegment, Index: i}
}

// Path addresses a location inside a JSON document,
// e.g. destinations[0].accommodationOptions[1].hotel.pricePerNight.
type Path []Segment

// String renders the path in the same syntax Parse accepts.
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		if seg.Kind == IndexSegment {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(seg.Index))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.Key)
	}
	return b.String()
}

// Child returns a copy of p extended with seg.
func (p Path) Child(seg Segment) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, seg)
}

// Last returns the final segment and false for an empty path.
func (p Path) Last() (Segment, bool) {
	if len(p) == 0 {
		return Segment{}, false
	}
	return p[len(p)-1], true
}

// Parse parses a path expression of the form segment(.segment|[index])*.
// Tokens are split on '.', '[' and ']' with empty tokens discarded; a token of
// ASCII digits is an index, anything else is a key. A bracketed token must be
// an index.
func Parse(expr string) (Path, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, &PathError{Expr: expr, Msg: "empty path"}
	}

	var (
		path      Path
		tok       strings.Builder
		inBracket bool
	)

	flush := func(bracketed bool) error {
		if tok.Len() == 0 {
			return nil
		}
		s := tok.String()
		tok.Reset()

		if isIndex(s) {
			i, err := strconv.Atoi(s)
			if err != nil || i > MaxIndex {
				return &PathError{Expr: expr, Msg: fmt.Sprintf("index %s out of range", s)}
			}
			path = append(path, Index(i))
			return nil
		}
		if bracketed {
			return &PathError{Expr: expr, Msg: fmt.Sprintf("non-numeric index %q", s)}
		}
		path = append(path, Key(s))
		return nil
	}

	for _, r := range expr {
		switch r {
		case '.':
			if inBracket {
				return nil, &PathError{Expr: expr, Msg: "'.' inside brackets"}
			}
			if err := flush(false); err != nil {
				return nil, err
			}
		case '[':
			if inBracket {
				return nil, &PathError{Expr: expr, Msg: "nested '['"}
			}
			if err := flush(false); err != nil {
				return nil, err
			}
			inBracket = true
		case ']':
			if !inBracket {
				return nil, &PathError{Expr: expr, Msg: "unbalanced ']'"}
			}
			if err := flush(true); err != nil {
				return nil, err
			}
			inBracket = false
		default:
			tok.WriteRune(r)
		}
	}

	if inBracket {
		return nil, &PathError{Expr: expr, Msg: "unclosed '['"}
	}
	if err := flush(false); err != nil {
		return nil, err
	}
	if len(path) == 0 {
		return nil, &PathError{Expr: expr, Msg: "no segments"}
	}

	return path, nil
}

// MustParse is like Parse but panics on error. Use it for static paths only.
func MustParse(expr string) Path {
	p, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return p
}

func isIndex(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
