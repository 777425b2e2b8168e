package slotf

// Reference is a back-reference token produced by [Ref]. Supplying one as an
// argument makes the slot render another argument's value instead.
type Reference struct {
	pos int
}

// Ref returns a back-reference to the argument at position n. Chains of
// references are followed until a concrete value turns up; a reference that
// points outside the arguments, at itself, or around a loop fails the render
// with [ErrInvalidReference], [ErrSelfReference], or [ErrReferenceCycle].
func Ref(n int) Reference {
	return Reference{pos: n}
}

// resolveSlot returns the concrete value for slot i. Implicit slots take the
// next unclaimed argument and advance the cursor; slots with an explicit
// index leave the cursor alone.
func (st *renderState) resolveSlot(i int) (any, error) {
	pos := st.tpl.indices[i]
	if pos < 0 {
		pos = st.cursor
		st.cursor++
	}
	if pos >= len(st.values) {
		return nil, slotErr(i, ErrMissingArgument, "slot wants argument %d, have %d", pos, len(st.values))
	}
	v := st.values[pos]
	if ref, ok := v.(Reference); ok {
		return st.deref(i, pos, ref)
	}
	return v, nil
}

// deref follows a back-reference chain that starts at argument origin. The
// origin seeds the visited set, so a chain that comes straight back is a
// self reference and one that revisits any later hop is a cycle.
func (st *renderState) deref(slot, origin int, ref Reference) (any, error) {
	visited := map[int]bool{origin: true}
	for {
		pos := ref.pos
		if pos < 0 || pos >= len(st.values) {
			return nil, slotErr(slot, ErrInvalidReference, "reference to %d is out of range [0, %d)", pos, len(st.values))
		}
		if pos == origin {
			return nil, slotErr(slot, ErrSelfReference, "argument %d refers back to itself", origin)
		}
		if visited[pos] {
			return nil, slotErr(slot, ErrReferenceCycle, "reference chain revisits %d", pos)
		}
		visited[pos] = true
		v := st.values[pos]
		next, ok := v.(Reference)
		if !ok {
			return v, nil
		}
		ref = next
	}
}
