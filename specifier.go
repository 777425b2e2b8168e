package slotf

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// introducer starts a specifier at the head of a segment; doubling it
// escapes it. terminator ends a specifier explicitly and is consumed.
const (
	introducer = ':'
	terminator = ';'
)

// signKind is the sign policy for non-negative numeric values. Negative
// values always keep their minus.
type signKind int

const (
	signNone  signKind = iota
	signPlus           // always emit a sign
	signSpace          // blank where the plus would go
)

// specifier is the parsed formatting directive for one slot.
type specifier struct {
	fill      rune
	align     alignKind
	sign      signKind
	pretty    bool
	zeroPad   bool
	width     int
	precision int // -1 when unset
	verb      verbCode
}

func defaultSpecifier() specifier {
	return specifier{fill: ' ', align: alignRight, precision: -1}
}

// specParser scans one specifier with a single forward cursor over the
// segment text. Stages run in a fixed order and each consumes only what it
// recognizes, so any prefix of a valid specifier is valid. Deferred width
// and precision absorb following slots, fusing their trailing segments onto
// text so scanning continues seamlessly.
type specParser struct {
	st       *renderState
	slot     int
	text     string
	pos      int
	absorbed int
}

func (p *specParser) parse() (specifier, error) {
	sp := defaultSpecifier()

	// Fill and alignment: an alignment character, optionally preceded by a
	// single fill rune. Two runes of lookahead decide which.
	if p.pos < len(p.text) {
		r1, w1 := utf8.DecodeRuneInString(p.text[p.pos:])
		if a1, ok1 := alignOf(r1); p.pos+w1 < len(p.text) {
			r2, w2 := utf8.DecodeRuneInString(p.text[p.pos+w1:])
			if a2, ok2 := alignOf(r2); ok2 {
				sp.fill, sp.align = r1, a2
				p.pos += w1 + w2
			} else if ok1 {
				sp.align = a1
				p.pos += w1
			}
		} else if ok1 {
			sp.align = a1
			p.pos += w1
		}
	}

	// Sign: plus forces one, minus reserves a blank for it.
	if p.pos < len(p.text) {
		switch p.text[p.pos] {
		case '+':
			sp.sign = signPlus
			p.pos++
		case '-':
			sp.sign = signSpace
			p.pos++
		}
	}

	// Pretty flag.
	if p.pos < len(p.text) && p.text[p.pos] == '#' {
		sp.pretty = true
		p.pos++
	}

	// Zero-pad flag: a zero ahead of the width digits.
	if p.pos < len(p.text) && p.text[p.pos] == '0' {
		sp.zeroPad = true
		p.pos++
	}

	// Width: inline digits, or deferred to the next slot when the segment
	// ends here.
	start := p.pos
	p.scanDigits()
	switch {
	case p.pos > start:
		n, err := strconv.Atoi(p.text[start:p.pos])
		if err != nil {
			return sp, specErr(p.slot, start, ErrInvalidWidth, "width %q out of range", p.text[start:p.pos])
		}
		sp.width = n
	case p.pos == len(p.text):
		n, ok, err := p.deferInt(ErrInvalidWidth)
		if err != nil {
			return sp, err
		}
		if ok {
			sp.width = n
		}
	}

	// Precision: a point followed by inline digits, or deferred when the
	// segment ends at the point.
	if p.pos < len(p.text) && p.text[p.pos] == '.' {
		p.pos++
		start = p.pos
		p.scanDigits()
		switch {
		case p.pos > start:
			n, err := strconv.Atoi(p.text[start:p.pos])
			if err != nil {
				return sp, specErr(p.slot, start, ErrInvalidPrecision, "precision %q out of range", p.text[start:p.pos])
			}
			sp.precision = n
		case p.pos == len(p.text):
			n, ok, err := p.deferInt(ErrInvalidPrecision)
			if err != nil {
				return sp, err
			}
			if !ok {
				return sp, specErr(p.slot, start, ErrInvalidPrecision, "missing precision digits")
			}
			sp.precision = n
		default:
			return sp, specErr(p.slot, start, ErrInvalidPrecision, "expected digits after %q", ".")
		}
	}

	// Type character.
	if p.pos < len(p.text) {
		if v, ok := verbOf(p.text[p.pos]); ok {
			sp.verb = v
			p.pos++
		}
	}

	// Terminator: the delimiter is consumed, whitespace ends the specifier
	// and stays in the literal text, anything else is an error.
	if p.pos < len(p.text) {
		r, _ := utf8.DecodeRuneInString(p.text[p.pos:])
		switch {
		case r == terminator:
			p.pos++
		case !unicode.IsSpace(r):
			return sp, specErr(p.slot, p.pos, ErrMalformedSpecifier, "unexpected %q", string(r))
		}
	}

	return sp, nil
}

func (p *specParser) scanDigits() {
	for p.pos < len(p.text) && p.text[p.pos] >= '0' && p.text[p.pos] <= '9' {
		p.pos++
	}
}

// deferInt consumes the next slot as a deferred width or precision. The slot
// resolves through the usual path, so implicit slots advance the argument
// cursor and back-references chase. ok is false when the template has no
// further slot.
func (p *specParser) deferInt(sentinel error) (n int, ok bool, err error) {
	next := p.slot + 1 + p.absorbed
	if next >= p.st.tpl.slots() {
		return 0, false, nil
	}
	raw, err := p.st.resolveSlot(next)
	if err != nil {
		return 0, false, err
	}
	n, ok = intArg(raw)
	if !ok {
		return 0, false, slotErr(p.slot, sentinel, "deferred value at slot %d is %T, need a non-negative integer", next, raw)
	}
	p.absorbed++
	p.text += p.st.tpl.segments[next+1]
	return n, true, nil
}
