package slotf

import (
	"regexp"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// ansiPattern matches the SGR escape sequences the palette emits.
var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// StripStyles returns s with all inline styling codes removed. Strings that
// carry no escape character are returned unchanged without allocating.
func StripStyles(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	return ansiPattern.ReplaceAllString(s, "")
}

// Palette selects the colors used for decorated structural output. Any nil
// entry leaves that token class unstyled. The zero Palette decorates
// nothing; a nil *Palette passed to the styled entry points falls back to
// [DefaultPalette].
type Palette struct {
	Key    *color.Color // map keys and struct field names
	Text   *color.Color // quoted strings
	Number *color.Color // numeric scalars
	Bool   *color.Color // true and false
	Nil    *color.Color // nil values and nil pointers
	Type   *color.Color // struct type names and opaque kinds
	Punct  *color.Color // brackets, braces, commas, colons
}

// DefaultPalette returns a fresh palette with the stock color scheme. The
// colors are force-enabled so decorated output is identical whether or not
// the process is attached to a terminal.
func DefaultPalette() *Palette {
	p := &Palette{
		Key:    color.New(color.FgBlue, color.Bold),
		Text:   color.New(color.FgGreen),
		Number: color.New(color.FgCyan),
		Bool:   color.New(color.FgYellow),
		Nil:    color.New(color.FgRed),
		Type:   color.New(color.FgMagenta),
		Punct:  color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.Key, p.Text, p.Number, p.Bool, p.Nil, p.Type, p.Punct} {
		c.EnableColor()
	}
	return p
}

// paint wraps s in c's escape codes. A nil color passes s through.
func paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

// Styled is the result of a styled render. The decorated pane is built
// eagerly; the plain pane is derived by stripping styling codes on first
// access and cached. Styled is safe for concurrent use.
type Styled struct {
	decorated string

	once  sync.Once
	plain string
}

// Decorated returns the pane with inline styling codes.
func (s *Styled) Decorated() string { return s.decorated }

// Plain returns the pane without styling codes.
func (s *Styled) Plain() string {
	s.once.Do(func() { s.plain = StripStyles(s.decorated) })
	return s.plain
}
