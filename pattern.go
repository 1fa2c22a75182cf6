package glob

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrBadPattern is matched (via errors.Is) by every *PatternCompileError.
var ErrBadPattern = errors.New("glob: syntax error in pattern")

// ErrInvalidInput is returned for an empty pattern.
var ErrInvalidInput = errors.New("glob: invalid input")

// PatternCompileError reports malformed glob syntax. It is returned before
// any filesystem access takes place.
type PatternCompileError struct {
	// Pattern is the full glob that failed to compile.
	Pattern string
	// Portion is the "/"-separated piece of Pattern holding the error.
	Portion string
	// Offset is the byte offset of the offending character in Pattern.
	Offset int
	// Reason is a short human-readable description.
	Reason string
	// Err is the regexp error, when the dialect itself rejected the portion.
	Err error
}

func (e *PatternCompileError) Error() string {
	msg := fmt.Sprintf("glob: bad pattern %q: %s at offset %d (portion %q)",
		e.Pattern, e.Reason, e.Offset, e.Portion)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *PatternCompileError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrBadPattern) true for every compile error.
func (e *PatternCompileError) Is(target error) bool { return target == ErrBadPattern }

// SegmentKind tells literal segments from pattern segments.
type SegmentKind int

const (
	// LiteralSegment is a plain path, resolved with a single existence check.
	LiteralSegment SegmentKind = iota
	// PatternSegment is resolved by listing a directory (or a whole subtree
	// for a globstar) and matching entry names.
	PatternSegment
)

func (k SegmentKind) String() string {
	if k == LiteralSegment {
		return "literal"
	}
	return "pattern"
}

// Segment is one compiled unit of a Pattern.
//
// For a LiteralSegment, Value is a plain path; adjacent literal portions of
// the source are merged, so Value may contain "/". For a PatternSegment,
// Value is the unanchored regular expression the portion translates to.
type Segment struct {
	Kind     SegmentKind
	Value    string
	Globstar bool

	re   *regexp.Regexp // entry-name match, non-globstar pattern segments
	tail *regexp.Regexp // remainder of the chain, globstar segments
}

// Pattern is a compiled glob: an ordered chain of segments where the segment
// following index i is i+1. A Pattern is immutable and safe for concurrent
// use.
type Pattern struct {
	source   string
	segments []Segment
	full     *regexp.Regexp
}

// String returns the source glob.
func (p *Pattern) String() string { return p.source }

// Len returns the number of segments in the chain.
func (p *Pattern) Len() int { return len(p.segments) }

// Segment returns a copy of the i-th segment.
func (p *Pattern) Segment(i int) Segment { return p.segments[i] }

// Segments returns a copy of the chain.
func (p *Pattern) Segments() []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// Next returns the index of the segment after i, if any.
func (p *Pattern) Next(i int) (int, bool) {
	if i+1 < len(p.segments) {
		return i + 1, true
	}
	return 0, false
}

// Regexp returns the anchored expression for the whole chain, as used by
// Match.
func (p *Pattern) Regexp() *regexp.Regexp { return p.full }

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// Compile splits pattern on "/" and turns it into a segment chain.
//
// Portions without any of "*?[" are literal and coalesce with a preceding
// literal segment. Every other portion is translated into a regular
// expression. "**" is only legal as a whole portion.
func Compile(pattern string) (*Pattern, error) {
	parts := portionsOf(pattern)
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: pattern %q has no path portions", ErrInvalidInput, pattern)
	}

	p := &Pattern{source: pattern, segments: make([]Segment, 0, len(parts))}
	for _, part := range parts {
		if !hasMeta(part.text) {
			if n := len(p.segments); n > 0 && p.segments[n-1].Kind == LiteralSegment {
				p.segments[n-1].Value = JoinPath(p.segments[n-1].Value, part.text)
				continue
			}
			p.segments = append(p.segments, Segment{Kind: LiteralSegment, Value: part.text})
			continue
		}

		expr, re, err := translatePortion(part.text)
		if err != nil {
			var pce *PatternCompileError
			if errors.As(err, &pce) {
				pce.Pattern = pattern
				pce.Offset += part.offset
			}
			return nil, err
		}
		p.segments = append(p.segments, Segment{
			Kind:     PatternSegment,
			Value:    expr,
			Globstar: part.text == "**",
			re:       re,
		})
	}

	for i := range p.segments {
		if !p.segments[i].Globstar {
			continue
		}
		re, err := regexp.Compile(anchor(p.tailExpr(i)))
		if err != nil {
			return nil, &PatternCompileError{Pattern: pattern, Reason: "invalid expression", Err: err}
		}
		p.segments[i].tail = re
	}

	full, err := regexp.Compile(anchor(p.tailExpr(0)))
	if err != nil {
		return nil, &PatternCompileError{Pattern: pattern, Reason: "invalid expression", Err: err}
	}
	p.full = full
	return p, nil
}

// tailExpr renders segments[from:] as one unanchored expression. A globstar
// followed by more segments absorbs the separator after it so that it can
// match zero directories.
func (p *Pattern) tailExpr(from int) string {
	var b strings.Builder
	last := len(p.segments) - 1
	for i := from; i <= last; i++ {
		s := p.segments[i]
		switch {
		case s.Globstar && i < last:
			b.WriteString("(?:.*/)?")
			continue
		case s.Kind == LiteralSegment:
			b.WriteString(regexp.QuoteMeta(s.Value))
		default:
			b.WriteString(s.Value)
		}
		if i < last {
			b.WriteByte('/')
		}
	}
	return b.String()
}

// anchor matches expr against the whole string. "." also matches newlines,
// so "**" spans any name.
func anchor(expr string) string {
	return "(?s)^(?:" + expr + ")$"
}

type portion struct {
	text   string
	offset int
}

// portionsOf is splitPortions keeping each portion's offset in path.
func portionsOf(path string) []portion {
	var out []portion
	start := 0
	for i := 0; i <= len(path); i++ {
		if i < len(path) && path[i] != '/' {
			continue
		}
		if i > start {
			out = append(out, portion{text: path[start:i], offset: start})
		}
		start = i + 1
	}
	return out
}

// translatePortion converts a single glob portion (no "/") into a regular
// expression and its anchored compiled form. The globstar portion yields a
// nil regexp: it is only ever matched through the chain tail.
func translatePortion(part string) (string, *regexp.Regexp, error) {
	if part == "**" {
		return ".*", nil, nil
	}

	var b strings.Builder
	for i := 0; i < len(part); i++ {
		c := part[i]
		switch c {
		case '*':
			if i+1 < len(part) && part[i+1] == '*' {
				return "", nil, &PatternCompileError{
					Portion: part,
					Offset:  i,
					Reason:  "globstar must be alone in its portion",
				}
			}
			b.WriteString("[^/]*")
		case '?':
			b.WriteString("[^/]")
		case '[':
			class, end, err := translateClass(part, i)
			if err != nil {
				return "", nil, err
			}
			b.WriteString(class)
			i = end
		default:
			if isRegexpSpecial(c) {
				b.WriteByte('\\')
			}
			b.WriteByte(c)
		}
	}

	expr := b.String()
	re, err := regexp.Compile(anchor(expr))
	if err != nil {
		return "", nil, &PatternCompileError{Portion: part, Reason: "invalid expression", Err: err}
	}
	return expr, re, nil
}

// translateClass copies the class opening at part[start] and returns it
// with the index of its closing ']'. A ']' directly after the opening
// bracket (or after the negation marker) is a member, not the terminator.
func translateClass(part string, start int) (string, int, error) {
	var b strings.Builder
	b.WriteByte('[')

	i := start + 1
	negate := i < len(part) && (part[i] == '!' || part[i] == '^')
	if negate {
		b.WriteString("^/")
		i++
	}

	first := true
	for ; i < len(part); i++ {
		c := part[i]
		if c == ']' && !first {
			b.WriteByte(']')
			return b.String(), i, nil
		}
		switch {
		case c == '\\', c == '[', c == ']', c == '^':
			b.WriteByte('\\')
		case c == '-' && first:
			// would otherwise extend the leading "/" of a negated class
			b.WriteByte('\\')
		}
		first = false
		b.WriteByte(c)
	}

	return "", 0, &PatternCompileError{
		Portion: part,
		Offset:  start,
		Reason:  "unterminated character class",
	}
}

func isRegexpSpecial(c byte) bool {
	return strings.IndexByte(`\.+*?()|[]{}^$`, c) >= 0
}
