package slotf

import (
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// elided stands in for composite contents cut off by the depth limit.
const elided = "..."

// plainPalette renders every token class unstyled.
var plainPalette = &Palette{}

// Inspect returns a structural dump of v: scalars in their literal form,
// strings quoted, slices and arrays bracketed, maps braced with keys sorted,
// structs as Name{Field: value} over their exported fields, pointers
// prefixed with & and followed through. depth bounds recursion into
// composite values (negative means unbounded; 0 elides every composite's
// contents). multiline selects an indented one-entry-per-line layout over
// the single-line compact form.
func Inspect(v any, depth int, multiline bool) string {
	return inspect(v, depth, multiline, nil)
}

// InspectStyled is [Inspect] with inline styling codes taken from p. A nil
// palette uses [DefaultPalette]. Stripping the styling codes from the result
// yields exactly the Inspect output.
func InspectStyled(p *Palette, v any, depth int, multiline bool) string {
	if p == nil {
		p = DefaultPalette()
	}
	return inspect(v, depth, multiline, p)
}

func inspect(v any, depth int, multiline bool, p *Palette) string {
	if p == nil {
		p = plainPalette
	}
	ins := &inspector{depth: depth, multiline: multiline, palette: p}
	var b strings.Builder
	ins.value(&b, reflect.ValueOf(v), 0)
	return b.String()
}

// inspector walks values recursively, tracking the nesting level against the
// depth limit and the pointers already on the path so cyclic data
// terminates.
type inspector struct {
	depth     int
	multiline bool
	palette   *Palette
	seen      map[uintptr]bool
}

// limited reports whether composites at this nesting level have their
// contents elided.
func (ins *inspector) limited(level int) bool {
	return ins.depth >= 0 && level >= ins.depth
}

// entered marks a reference as being on the current path. It reports false
// when the reference is already there, which means a cycle.
func (ins *inspector) entered(ptr uintptr) bool {
	if ins.seen[ptr] {
		return false
	}
	if ins.seen == nil {
		ins.seen = make(map[uintptr]bool)
	}
	ins.seen[ptr] = true
	return true
}

func (ins *inspector) leave(ptr uintptr) { delete(ins.seen, ptr) }

func (ins *inspector) indent(b *strings.Builder, level int) {
	b.WriteString(strings.Repeat("  ", level))
}

func (ins *inspector) value(b *strings.Builder, rv reflect.Value, level int) {
	if !rv.IsValid() {
		b.WriteString(paint(ins.palette.Nil, "nil"))
		return
	}
	switch rv.Kind() {
	case reflect.Bool:
		b.WriteString(paint(ins.palette.Bool, strconv.FormatBool(rv.Bool())))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b.WriteString(paint(ins.palette.Number, strconv.FormatInt(rv.Int(), 10)))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		b.WriteString(paint(ins.palette.Number, strconv.FormatUint(rv.Uint(), 10)))
	case reflect.Float32:
		b.WriteString(paint(ins.palette.Number, strconv.FormatFloat(rv.Float(), 'g', -1, 32)))
	case reflect.Float64:
		b.WriteString(paint(ins.palette.Number, strconv.FormatFloat(rv.Float(), 'g', -1, 64)))
	case reflect.Complex64, reflect.Complex128:
		b.WriteString(paint(ins.palette.Number, strconv.FormatComplex(rv.Complex(), 'g', -1, 128)))
	case reflect.String:
		b.WriteString(paint(ins.palette.Text, strconv.Quote(rv.String())))
	case reflect.Slice:
		if rv.IsNil() {
			b.WriteString(paint(ins.palette.Nil, "nil"))
			return
		}
		ptr := rv.Pointer()
		if !ins.entered(ptr) {
			b.WriteString(paint(ins.palette.Punct, "(cycle)"))
			return
		}
		ins.seq(b, rv, level)
		ins.leave(ptr)
	case reflect.Array:
		ins.seq(b, rv, level)
	case reflect.Map:
		if rv.IsNil() {
			b.WriteString(paint(ins.palette.Nil, "nil"))
			return
		}
		ptr := rv.Pointer()
		if !ins.entered(ptr) {
			b.WriteString(paint(ins.palette.Punct, "(cycle)"))
			return
		}
		ins.mapping(b, rv, level)
		ins.leave(ptr)
	case reflect.Struct:
		ins.structure(b, rv, level)
	case reflect.Pointer:
		if rv.IsNil() {
			b.WriteString(paint(ins.palette.Nil, "nil"))
			return
		}
		ptr := rv.Pointer()
		if !ins.entered(ptr) {
			b.WriteString(paint(ins.palette.Punct, "(cycle)"))
			return
		}
		b.WriteString(paint(ins.palette.Punct, "&"))
		ins.value(b, rv.Elem(), level)
		ins.leave(ptr)
	case reflect.Interface:
		if rv.IsNil() {
			b.WriteString(paint(ins.palette.Nil, "nil"))
			return
		}
		ins.value(b, rv.Elem(), level)
	default:
		// Func, Chan, UnsafePointer: opaque, show the type.
		b.WriteString(paint(ins.palette.Type, "<"+rv.Type().String()+">"))
	}
}

func (ins *inspector) seq(b *strings.Builder, rv reflect.Value, level int) {
	n := rv.Len()
	if n == 0 {
		b.WriteString(paint(ins.palette.Punct, "[]"))
		return
	}
	if ins.limited(level) {
		b.WriteString(paint(ins.palette.Punct, "["))
		b.WriteString(paint(ins.palette.Punct, elided))
		b.WriteString(paint(ins.palette.Punct, "]"))
		return
	}
	b.WriteString(paint(ins.palette.Punct, "["))
	for i := 0; i < n; i++ {
		if ins.multiline {
			if i > 0 {
				b.WriteString(paint(ins.palette.Punct, ","))
			}
			b.WriteString("\n")
			ins.indent(b, level+1)
		} else if i > 0 {
			b.WriteString(paint(ins.palette.Punct, ","))
			b.WriteString(" ")
		}
		ins.value(b, rv.Index(i), level+1)
	}
	if ins.multiline {
		b.WriteString("\n")
		ins.indent(b, level)
	}
	b.WriteString(paint(ins.palette.Punct, "]"))
}

func (ins *inspector) mapping(b *strings.Builder, rv reflect.Value, level int) {
	n := rv.Len()
	if n == 0 {
		b.WriteString(paint(ins.palette.Punct, "{}"))
		return
	}
	if ins.limited(level) {
		b.WriteString(paint(ins.palette.Punct, "{"))
		b.WriteString(paint(ins.palette.Punct, elided))
		b.WriteString(paint(ins.palette.Punct, "}"))
		return
	}
	type entry struct {
		key string
		val reflect.Value
	}
	entries := make([]entry, 0, n)
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, entry{key: keyString(iter.Key()), val: iter.Value()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	b.WriteString(paint(ins.palette.Punct, "{"))
	for i, e := range entries {
		if ins.multiline {
			if i > 0 {
				b.WriteString(paint(ins.palette.Punct, ","))
			}
			b.WriteString("\n")
			ins.indent(b, level+1)
		} else if i > 0 {
			b.WriteString(paint(ins.palette.Punct, ","))
			b.WriteString(" ")
		}
		b.WriteString(paint(ins.palette.Key, e.key))
		b.WriteString(paint(ins.palette.Punct, ":"))
		b.WriteString(" ")
		ins.value(b, e.val, level+1)
	}
	if ins.multiline {
		b.WriteString("\n")
		ins.indent(b, level)
	}
	b.WriteString(paint(ins.palette.Punct, "}"))
}

func (ins *inspector) structure(b *strings.Builder, rv reflect.Value, level int) {
	rt := rv.Type()
	if name := rt.Name(); name != "" {
		b.WriteString(paint(ins.palette.Type, name))
	}
	type field struct {
		name string
		val  reflect.Value
	}
	var fields []field
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		fields = append(fields, field{name: f.Name, val: rv.Field(i)})
	}
	if len(fields) == 0 {
		b.WriteString(paint(ins.palette.Punct, "{}"))
		return
	}
	if ins.limited(level) {
		b.WriteString(paint(ins.palette.Punct, "{"))
		b.WriteString(paint(ins.palette.Punct, elided))
		b.WriteString(paint(ins.palette.Punct, "}"))
		return
	}
	b.WriteString(paint(ins.palette.Punct, "{"))
	for i, f := range fields {
		if ins.multiline {
			if i > 0 {
				b.WriteString(paint(ins.palette.Punct, ","))
			}
			b.WriteString("\n")
			ins.indent(b, level+1)
		} else if i > 0 {
			b.WriteString(paint(ins.palette.Punct, ","))
			b.WriteString(" ")
		}
		b.WriteString(paint(ins.palette.Key, f.name))
		b.WriteString(paint(ins.palette.Punct, ":"))
		b.WriteString(" ")
		ins.value(b, f.val, level+1)
	}
	if ins.multiline {
		b.WriteString("\n")
		ins.indent(b, level)
	}
	b.WriteString(paint(ins.palette.Punct, "}"))
}

// keyString renders a map key for display and ordering: identifier-like
// strings bare, other strings quoted, and non-string keys in the compact
// unstyled form.
func keyString(k reflect.Value) string {
	for k.Kind() == reflect.Interface && !k.IsNil() {
		k = k.Elem()
	}
	if k.Kind() == reflect.String {
		if isIdentifier(k.String()) {
			return k.String()
		}
		return strconv.Quote(k.String())
	}
	var b strings.Builder
	ins := &inspector{depth: -1, palette: plainPalette}
	ins.value(&b, k, 0)
	return b.String()
}

// isIdentifier reports whether s can appear as a bare map key: a letter or
// underscore followed by letters, digits, and underscores.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_',
			'a' <= r && r <= 'z',
			'A' <= r && r <= 'Z':
		case '0' <= r && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
