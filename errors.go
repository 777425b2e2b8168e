package slotf

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling. Failures tied to a
// particular slot are wrapped in a [SlotError], so errors.Is still matches
// the sentinel.
var (
	ErrInvalidTemplate    = errors.New("invalid template")
	ErrInvalidPattern     = errors.New("invalid pattern")
	ErrMissingArgument    = errors.New("missing argument")
	ErrInvalidReference   = errors.New("invalid reference")
	ErrSelfReference      = errors.New("self reference")
	ErrReferenceCycle     = errors.New("reference cycle")
	ErrInvalidWidth       = errors.New("invalid width")
	ErrInvalidPrecision   = errors.New("invalid precision")
	ErrMalformedSpecifier = errors.New("malformed specifier")
)

// SlotError reports a failure while resolving or formatting a single slot.
// Rendering aborts at the first SlotError; no partial output is returned.
type SlotError struct {
	// Slot is the index of the slot whose processing failed.
	Slot int

	// Offset is the byte offset within the slot's specifier segment, with
	// the introducer at offset 0. It is -1 when the error has no text
	// position (resolution errors, deferred-slot errors).
	Offset int

	// Err is the sentinel classifying the failure.
	Err error

	// Detail describes the specific input that failed.
	Detail string
}

func (e *SlotError) Error() string {
	msg := fmt.Sprintf("slot %d: %v", e.Slot, e.Err)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Offset >= 0 {
		msg += fmt.Sprintf(" (offset %d)", e.Offset)
	}
	return msg
}

func (e *SlotError) Unwrap() error { return e.Err }

// slotErr builds a SlotError with no text position.
func slotErr(slot int, sentinel error, format string, args ...any) error {
	return &SlotError{Slot: slot, Offset: -1, Err: sentinel, Detail: fmt.Sprintf(format, args...)}
}

// specErr builds a SlotError positioned within the specifier segment.
func specErr(slot, offset int, sentinel error, format string, args ...any) error {
	return &SlotError{Slot: slot, Offset: offset, Err: sentinel, Detail: fmt.Sprintf(format, args...)}
}
