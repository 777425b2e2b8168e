package slotf

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// alignKind is the horizontal placement of a value inside its width.
type alignKind int

const (
	alignRight alignKind = iota
	alignLeft
	alignCenter
)

// alignOf maps an alignment character to its kind.
func alignOf(r rune) (alignKind, bool) {
	switch r {
	case '<':
		return alignLeft, true
	case '^':
		return alignCenter, true
	case '>':
		return alignRight, true
	}
	return alignRight, false
}

// trueLength is the display width of s in terminal cells: styling codes
// count for nothing and wide runes count for two.
func trueLength(s string) int {
	return runewidth.StringWidth(StripStyles(s))
}

// alignText fills s out to the specifier's width. Values at or beyond the
// width pass through untruncated. Centering puts the odd fill cell on the
// right.
func alignText(s string, sp specifier) string {
	pad := sp.width - trueLength(s)
	if pad <= 0 {
		return s
	}
	fill := string(sp.fill)
	switch sp.align {
	case alignLeft:
		return s + strings.Repeat(fill, pad)
	case alignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(fill, left) + s + strings.Repeat(fill, right)
	default:
		return strings.Repeat(fill, pad) + s
	}
}
