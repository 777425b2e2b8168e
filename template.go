package slotf

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Template is a parsed formatting template: literal segments with one value
// slot between each adjacent pair. n segments carry n-1 slots. A Template is
// immutable and safe for concurrent use.
type Template struct {
	segments []string
	indices  []int // explicit argument index per slot, -1 for implicit
}

// New builds a template directly from its literal segments. Each segment
// after the first may begin with a specifier for the slot ahead of it. At
// least one segment is required.
func New(segments ...string) (*Template, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: need at least one literal segment", ErrInvalidTemplate)
	}
	t := &Template{
		segments: slices.Clone(segments),
		indices:  make([]int, len(segments)-1),
	}
	for i := range t.indices {
		t.indices[i] = -1
	}
	return t, nil
}

// Compile parses a brace pattern into a template. {} is a slot, {2} a slot
// bound to argument 2, {:>8x} a slot with a specifier, {1:^5} both. {{ and
// }} are literal braces. The segment view underneath is the same one [New]
// builds, so deferred width and precision work across adjacent slots.
func Compile(pattern string) (*Template, error) {
	t := &Template{}
	var seg strings.Builder
	i := 0
	for i < len(pattern) {
		switch pattern[i] {
		case '{':
			if i+1 < len(pattern) && pattern[i+1] == '{' {
				seg.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(pattern[i:], '}')
			if end < 0 {
				return nil, fmt.Errorf("%w: unmatched %q at offset %d", ErrInvalidPattern, "{", i)
			}
			end += i
			index, spec, hasSpec, err := splitSlot(pattern[i+1 : end])
			if err != nil {
				return nil, fmt.Errorf("%w at offset %d", err, i+1)
			}
			t.segments = append(t.segments, seg.String())
			t.indices = append(t.indices, index)
			seg.Reset()
			i = end + 1
			if hasSpec {
				seg.WriteByte(introducer)
				seg.WriteString(spec)
				if trailingLiteral(pattern, i) {
					seg.WriteByte(terminator)
				}
			} else if i < len(pattern) && pattern[i] == introducer {
				// The literal ahead starts with the introducer; double it
				// so it stays literal.
				seg.WriteByte(introducer)
			}
		case '}':
			if i+1 < len(pattern) && pattern[i+1] == '}' {
				seg.WriteByte('}')
				i += 2
				continue
			}
			return nil, fmt.Errorf("%w: unmatched %q at offset %d", ErrInvalidPattern, "}", i)
		default:
			seg.WriteByte(pattern[i])
			i++
		}
	}
	t.segments = append(t.segments, seg.String())
	return t, nil
}

// splitSlot parses the inside of a brace pair: an optional argument index,
// then an optional specifier behind a colon.
func splitSlot(body string) (index int, spec string, hasSpec bool, err error) {
	index = -1
	if colon := strings.IndexByte(body, ':'); colon >= 0 {
		spec = body[colon+1:]
		hasSpec = true
		body = body[:colon]
	}
	if body != "" {
		n, convErr := strconv.Atoi(body)
		if convErr != nil || n < 0 {
			return 0, "", false, fmt.Errorf("%w: argument index %q is not a non-negative integer", ErrInvalidPattern, body)
		}
		index = n
	}
	return index, spec, hasSpec, nil
}

// trailingLiteral reports whether literal text follows position i, as
// opposed to the end of the pattern or an immediately adjacent slot. A
// specifier ahead of an adjacent slot must end with the segment so deferred
// width and precision can reach the neighbor.
func trailingLiteral(pattern string, i int) bool {
	if i >= len(pattern) {
		return false
	}
	if pattern[i] != '{' {
		return true
	}
	return i+1 < len(pattern) && pattern[i+1] == '{'
}

// MustCompile is [Compile] for patterns known to be well formed; it panics
// on error. Intended for package-level template variables.
func MustCompile(pattern string) *Template {
	t, err := Compile(pattern)
	if err != nil {
		panic("slotf: " + err.Error())
	}
	return t
}

// Format compiles pattern and renders it with values in one step.
func Format(pattern string, values ...any) (string, error) {
	t, err := Compile(pattern)
	if err != nil {
		return "", err
	}
	return t.Render(values...)
}

// Slots returns the number of value slots in the template.
func (t *Template) Slots() int { return t.slots() }

func (t *Template) slots() int { return len(t.indices) }
