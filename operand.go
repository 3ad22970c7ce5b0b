// operand.go: the exact-integer value model.
//
// An Operand is an immutable, arbitrarily large signed integer. Values that
// fit a machine word are carried as an int64 (the fast path); everything
// else is carried in extended form as a sign plus a base-10 digit sequence,
// most significant digit first, with no leading zeros.
//
// The representation is canonical:
//   - zero is always native 0 (an extended operand is never zero, so its
//     sign bit is always meaningful);
//   - any extended result whose value fits int64 shrinks back to native.
//
// Canonical form means two Operands are numerically equal exactly when their
// fields are equal, and String round-trips through Parse.
package hotscript

import (
	"math"
	"strconv"
)

// Operand is an exact signed integer of unbounded magnitude.
// The zero value is the number 0. Operands are immutable; every arithmetic
// result is a freshly produced value.
type Operand struct {
	ext bool // extended form; when false, n holds the value
	n   int64
	neg bool   // extended sign (never set for magnitude zero)
	mag []byte // base-10 digits, most significant first, no leading zeros
}

// FromInt64 returns the operand for n.
func FromInt64(n int64) Operand { return Operand{n: n} }

// Parse reads a decimal integer literal: an optional leading '+' or '-'
// followed by one or more ASCII digits. Anything else fails with an
// invalid-operand error. Leading zeros and "-0" are accepted and normalized.
func Parse(s string) (Operand, error) {
	t := s
	neg := false
	if len(t) > 0 && (t[0] == '+' || t[0] == '-') {
		neg = t[0] == '-'
		t = t[1:]
	}
	if len(t) == 0 {
		return Operand{}, newErr(CodeInvalidOperand, "", "not a decimal integer: %q", s)
	}
	mag := make([]byte, len(t))
	for i := 0; i < len(t); i++ {
		c := t[i]
		if c < '0' || c > '9' {
			return Operand{}, newErr(CodeInvalidOperand, "", "not a decimal integer: %q", s)
		}
		mag[i] = c - '0'
	}
	return fromMag(neg, mag), nil
}

// MustParse is Parse for literals known to be well-formed; it panics on error.
func MustParse(s string) Operand {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// fromMag builds a canonical operand from a sign and raw digit sequence.
// It strips leading zeros, maps magnitude zero to native 0, and shrinks
// int64-representable values to native form. The slice is not copied; callers
// must not retain a mutable reference.
func fromMag(neg bool, mag []byte) Operand {
	mag = trimMag(mag)
	if mag == nil {
		return Operand{}
	}
	if n, ok := magInt64(neg, mag); ok {
		return Operand{n: n}
	}
	return Operand{ext: true, neg: neg, mag: mag}
}

// magInt64 reports the int64 value of a trimmed magnitude, if representable.
func magInt64(neg bool, mag []byte) (int64, bool) {
	if len(mag) > 19 { // MaxInt64 has 19 digits
		return 0, false
	}
	var v uint64
	for _, d := range mag {
		v = v*10 + uint64(d)
	}
	if neg {
		if v > 1<<63 {
			return 0, false
		}
		if v == 1<<63 {
			return math.MinInt64, true
		}
		return -int64(v), true
	}
	if v > math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}

// parts exposes any operand as sign + trimmed magnitude. The magnitude of
// zero is nil. The returned slice is shared and must not be mutated.
func (a Operand) parts() (neg bool, mag []byte) {
	if a.ext {
		return a.neg, a.mag
	}
	return a.n < 0, nativeMag(a.n)
}

// nativeMag converts an int64 to its digit sequence (nil for zero).
func nativeMag(n int64) []byte {
	if n == 0 {
		return nil
	}
	u := uint64(n)
	if n < 0 {
		u = -u // two's complement negate; correct for MinInt64 too
	}
	s := strconv.FormatUint(u, 10)
	mag := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		mag[i] = s[i] - '0'
	}
	return mag
}

// IsZero reports whether the operand is zero.
func (a Operand) IsZero() bool { return !a.ext && a.n == 0 }

// Sign returns -1, 0, or +1.
func (a Operand) Sign() int {
	if a.ext {
		if a.neg {
			return -1
		}
		return 1
	}
	switch {
	case a.n < 0:
		return -1
	case a.n > 0:
		return 1
	}
	return 0
}

// DigitCount returns the number of decimal digits in the magnitude.
// Zero counts as one digit.
func (a Operand) DigitCount() int {
	if a.ext {
		return len(a.mag)
	}
	if a.n == 0 {
		return 1
	}
	return len(nativeMag(a.n))
}

// Int64 returns the native value and true when the operand is representable
// as an int64. Extended operands never are (canonical form shrinks them).
func (a Operand) Int64() (int64, bool) {
	if a.ext {
		return 0, false
	}
	return a.n, true
}

// String renders the canonical decimal text (round-trips through Parse).
func (a Operand) String() string {
	if !a.ext {
		return strconv.FormatInt(a.n, 10)
	}
	b := make([]byte, 0, len(a.mag)+1)
	if a.neg {
		b = append(b, '-')
	}
	for _, d := range a.mag {
		b = append(b, '0'+d)
	}
	return string(b)
}
