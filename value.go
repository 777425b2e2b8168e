package slotf

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

// valueKind is the closed set of shapes the engine distinguishes. All
// formatting decisions dispatch on the kind; nothing downstream inspects the
// raw value again.
type valueKind int

const (
	kindNumber     valueKind = iota // Go integer and float kinds
	kindBigInt                      // *big.Int
	kindDecimal                     // decimal.Decimal
	kindText                        // string or fmt.Stringer
	kindStructural                  // everything else
)

// value pairs a raw argument with its classified kind.
type value struct {
	kind valueKind
	raw  any
}

// classify assigns an argument its formatting kind.
func classify(v any) value {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return value{kind: kindNumber, raw: v}
	case *big.Int:
		return value{kind: kindBigInt, raw: v}
	case decimal.Decimal:
		return value{kind: kindDecimal, raw: v}
	case string:
		return value{kind: kindText, raw: v}
	}
	if _, ok := v.(fmt.Stringer); ok {
		return value{kind: kindText, raw: v}
	}
	return value{kind: kindStructural, raw: v}
}

// numeric reports whether sign handling, zero-padding, and precision shaping
// apply to the value.
func (v value) numeric() bool {
	switch v.kind {
	case kindNumber, kindBigInt, kindDecimal:
		return true
	}
	return false
}

// natural returns the value's plain string form: integers in decimal, floats
// in their shortest round-trip form, text verbatim, and anything structural
// through the compact inspector.
func (v value) natural() string {
	switch v.kind {
	case kindNumber:
		switch n := v.raw.(type) {
		case int:
			return strconv.Itoa(n)
		case int8:
			return strconv.FormatInt(int64(n), 10)
		case int16:
			return strconv.FormatInt(int64(n), 10)
		case int32:
			return strconv.FormatInt(int64(n), 10)
		case int64:
			return strconv.FormatInt(n, 10)
		case uint:
			return strconv.FormatUint(uint64(n), 10)
		case uint8:
			return strconv.FormatUint(uint64(n), 10)
		case uint16:
			return strconv.FormatUint(uint64(n), 10)
		case uint32:
			return strconv.FormatUint(uint64(n), 10)
		case uint64:
			return strconv.FormatUint(n, 10)
		case float32:
			return strconv.FormatFloat(float64(n), 'g', -1, 32)
		case float64:
			return strconv.FormatFloat(n, 'g', -1, 64)
		}
	case kindBigInt:
		return v.raw.(*big.Int).String()
	case kindDecimal:
		return v.raw.(decimal.Decimal).String()
	case kindText:
		if s, ok := v.raw.(string); ok {
			return s
		}
		return v.raw.(fmt.Stringer).String()
	}
	return inspect(v.raw, -1, false, nil)
}

// integral returns the integer portion of a numeric value, truncated toward
// zero, for radix conversion. It returns nil for non-numeric kinds.
func (v value) integral() *big.Int {
	switch v.kind {
	case kindBigInt:
		return v.raw.(*big.Int)
	case kindDecimal:
		return v.raw.(decimal.Decimal).BigInt()
	}
	switch n := v.raw.(type) {
	case int:
		return big.NewInt(int64(n))
	case int8:
		return big.NewInt(int64(n))
	case int16:
		return big.NewInt(int64(n))
	case int32:
		return big.NewInt(int64(n))
	case int64:
		return big.NewInt(n)
	case uint:
		return new(big.Int).SetUint64(uint64(n))
	case uint8:
		return big.NewInt(int64(n))
	case uint16:
		return big.NewInt(int64(n))
	case uint32:
		return big.NewInt(int64(n))
	case uint64:
		return new(big.Int).SetUint64(n)
	case float32:
		return floatIntegral(float64(n))
	case float64:
		return floatIntegral(n)
	}
	return nil
}

// floatIntegral truncates f toward zero without losing magnitude beyond the
// int64 range. NaN and infinities collapse to zero.
func floatIntegral(f float64) *big.Int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return new(big.Int)
	}
	i, _ := new(big.Float).SetFloat64(math.Trunc(f)).Int(nil)
	return i
}

// float returns the value as float64 for scientific conversion.
func (v value) float() float64 {
	switch v.kind {
	case kindBigInt:
		f, _ := v.raw.(*big.Int).Float64()
		return f
	case kindDecimal:
		f, _ := v.raw.(decimal.Decimal).Float64()
		return f
	}
	switch n := v.raw.(type) {
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case float32:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

// intArg reports v as a non-negative int, for deferred width and precision
// values pulled from an absorbed slot.
func intArg(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		if n >= 0 {
			return n, true
		}
	case int8:
		if n >= 0 {
			return int(n), true
		}
	case int16:
		if n >= 0 {
			return int(n), true
		}
	case int32:
		if n >= 0 {
			return int(n), true
		}
	case int64:
		if n >= 0 && n <= math.MaxInt {
			return int(n), true
		}
	case uint:
		if uint64(n) <= math.MaxInt {
			return int(n), true
		}
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		if n <= math.MaxInt {
			return int(n), true
		}
	}
	return 0, false
}
