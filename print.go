package slotf

import (
	"fmt"
	"io"
)

// Write renders t with values and writes the plain result to w.
func Write(w io.Writer, t *Template, values ...any) error {
	out, err := t.Render(values...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// WriteLine is [Write] with a trailing newline.
func WriteLine(w io.Writer, t *Template, values ...any) error {
	out, err := t.Render(values...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// WriteStyled renders the decorated form of t with values and writes it to
// w. A nil palette uses [DefaultPalette].
func WriteStyled(w io.Writer, p *Palette, t *Template, values ...any) error {
	s, err := t.RenderStyled(p, values...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s.Decorated())
	return err
}
