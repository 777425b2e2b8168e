package slotf

import (
	"fmt"
	"strings"
)

// renderState carries one render pass: the template, the arguments, the
// implicit-argument cursor, and the palette when the pass is decorated. A
// fresh state per call keeps templates reusable and renders reentrant.
type renderState struct {
	tpl     *Template
	values  []any
	cursor  int
	palette *Palette
}

// Render produces the plain output: each literal segment verbatim with the
// formatted slot values between them. The first error aborts the render.
func (t *Template) Render(values ...any) (string, error) {
	return t.render(values, nil)
}

// RenderStyled produces the decorated output, with debug dumps colored by p.
// A nil palette uses [DefaultPalette]. Slots without a debug verb render
// exactly as [Template.Render] does, so stripping a Styled's codes always
// recovers the plain form.
func (t *Template) RenderStyled(p *Palette, values ...any) (*Styled, error) {
	if p == nil {
		p = DefaultPalette()
	}
	out, err := t.render(values, p)
	if err != nil {
		return nil, err
	}
	return &Styled{decorated: out}, nil
}

func (t *Template) render(values []any, p *Palette) (string, error) {
	if len(t.segments) == 0 {
		return "", fmt.Errorf("%w: zero value Template", ErrInvalidTemplate)
	}
	st := &renderState{tpl: t, values: values, palette: p}
	var b strings.Builder
	b.WriteString(t.segments[0])
	for i := 0; i < t.slots(); {
		rendered, remainder, absorbed, err := st.renderSlot(i)
		if err != nil {
			return "", err
		}
		b.WriteString(rendered)
		b.WriteString(remainder)
		i += 1 + absorbed
	}
	return b.String(), nil
}

// renderSlot resolves and formats slot i. It returns the formatted value,
// the rest of the specifier segment after the directive, and how many
// following slots were absorbed for deferred width or precision.
func (st *renderState) renderSlot(i int) (rendered, remainder string, absorbed int, err error) {
	raw, err := st.resolveSlot(i)
	if err != nil {
		return "", "", 0, err
	}
	seg := st.tpl.segments[i+1]

	// A doubled introducer renders the value plainly and keeps a single
	// introducer in the literal text.
	if len(seg) >= 2 && seg[0] == introducer && seg[1] == introducer {
		return classify(raw).natural(), seg[1:], 0, nil
	}

	sp := defaultSpecifier()
	rest := seg
	if len(seg) >= 1 && seg[0] == introducer {
		p := &specParser{st: st, slot: i, text: seg, pos: 1}
		sp, err = p.parse()
		if err != nil {
			return "", "", 0, err
		}
		rest = p.text[p.pos:]
		absorbed = p.absorbed
	}

	v := classify(raw)
	out := convert(v, sp, st.palette)
	out = postProcess(out, sp, v)
	if !zeroPadActive(sp, v) {
		out = alignText(out, sp)
	}
	return out, rest, absorbed, nil
}
