// Package slotf renders templates made of literal segments with formatted
// value slots between them.
//
// A template with n literal segments has n-1 slots. Each slot takes one
// argument, formats it under the specifier at the head of the following
// segment, and splices the result between the segments:
//
//	t, _ := slotf.New("", " is ", " years old")
//	s, _ := t.Render("Ada", 36) // "Ada is 36 years old"
//
// The same engine sits behind a brace pattern surface:
//
//	s, _ := slotf.Format("{} is {} years old", "Ada", 36)
//
// # Specifiers
//
// A specifier starts with a colon at the head of the segment after the slot
// and reads, in order: an optional fill rune ahead of an alignment character
// (< left, ^ center, > right), an optional sign (+ always signs, - leaves a
// blank for the sign), an optional # pretty flag, an optional 0 zero-pad
// flag, an optional width, an optional .precision, and an optional type
// character. A semicolon ends the specifier and is dropped; whitespace ends
// it and stays in the output.
//
//	slotf.Format("{:>8}", "hi")   // "      hi"
//	slotf.Format("{:*^7}", "hi")  // "**hi***"
//	slotf.Format("{:+08.2}", 3.5) // "+0003.50"
//	slotf.Format("{:#x}", 255)    // "0xff"
//
// Type characters: o, x, X, and b render the integer portion of a number in
// octal, hex, upper hex, or binary; e and E render scientific notation; n
// and N append an English ordinal suffix; ? renders a structural dump of
// any value (see [Inspect]). Doubling the colon escapes it: the slot
// renders plainly and a single literal colon follows.
//
// Width counts terminal cells, not bytes. Wide runes count for two and
// styling codes count for nothing, so aligned columns stay aligned. Numeric
// precision reshapes the fractional digits textually, truncating rather
// than rounding.
//
// # Deferred width and precision
//
// A specifier whose segment ends where width digits or precision digits
// would start takes the number from the next slot instead. That slot is
// consumed and does not render on its own:
//
//	slotf.Format("{:>}{}", "hi", 8) // "      hi"
//	t, _ := slotf.New("", ":>", "") // the segment ends at the width
//	t.Render("hi", 8)               // "      hi"
//
// # Argument selection
//
// Slots take arguments left to right. A slot may instead name its argument
// ({1}), which does not disturb the left-to-right cursor of the unnamed
// slots. An argument may also be a [Ref], which makes the slot render
// another argument's value:
//
//	slotf.Format("{0} {0}!", "hey")         // "hey hey!"
//	slotf.Format("{}{}", "z", slotf.Ref(0)) // "zz"
//
// # Styled output
//
// [Template.RenderStyled] renders with a [Palette]: debug dumps come back
// with inline color codes, everything else identical to the plain render.
// The [Styled] result exposes both panes, and [StripStyles] on the
// decorated pane always reproduces the plain one.
//
// # Errors
//
// Render failures wrap a sentinel ([ErrMissingArgument],
// [ErrInvalidReference], [ErrSelfReference], [ErrReferenceCycle],
// [ErrInvalidWidth], [ErrInvalidPrecision], [ErrMalformedSpecifier]) in a
// [SlotError] that carries the slot index and, for specifier text problems,
// the byte offset. Rendering stops at the first error; there is no partial
// output.
package slotf
