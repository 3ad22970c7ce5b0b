// arith.go: sign-aware exact arithmetic over Operands.
//
// Every binary operation runs a native int64 fast path first, detecting
// overflow the way an unbounded integer notices a carry: each checked helper
// returns (result, ok), and !ok falls through to the digit algorithms in
// digits.go. The two paths are observably identical; the fast path is purely
// an optimization.
//
// Division truncates toward zero and the remainder takes the dividend's
// sign, so dividend == divisor*quotient + remainder always holds and
// |remainder| < |divisor| (Go's native / and % already behave this way;
// the digit path reproduces it).
package hotscript

import "math"

/* ---------- checked int64 helpers ---------- */

func addInt64(x, y int64) (int64, bool) {
	z := x + y
	if (x > 0 && y > 0 && z < 0) || (x < 0 && y < 0 && z >= 0) {
		return 0, false
	}
	return z, true
}

func subInt64(x, y int64) (int64, bool) {
	if y == math.MinInt64 {
		return 0, false
	}
	return addInt64(x, -y)
}

func mulInt64(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	// Guard the one case where z/y itself would trap.
	if (x == math.MinInt64 && y == -1) || (y == math.MinInt64 && x == -1) {
		return 0, false
	}
	z := x * y
	if z/y != x {
		return 0, false
	}
	return z, true
}

/* ---------- operations ---------- */

// Add returns a+b.
func Add(a, b Operand) Operand {
	if !a.ext && !b.ext {
		if z, ok := addInt64(a.n, b.n); ok {
			return Operand{n: z}
		}
	}
	return addSigned(a, b, false)
}

// Sub returns a-b.
func Sub(a, b Operand) Operand {
	if !a.ext && !b.ext {
		if z, ok := subInt64(a.n, b.n); ok {
			return Operand{n: z}
		}
	}
	return addSigned(a, b, true)
}

// addSigned is the extended add/sub core: it compares magnitudes so the
// digit-level subtraction always runs larger-minus-smaller, swapping the
// operands and flipping the result sign when b's magnitude wins.
func addSigned(a, b Operand, flipB bool) Operand {
	if b.IsZero() {
		return a
	}
	if a.IsZero() {
		if flipB {
			return Neg(b)
		}
		return b
	}
	an, am := a.parts()
	bn, bm := b.parts()
	if flipB {
		bn = !bn
	}
	if an == bn {
		return fromMag(an, addMag(am, bm))
	}
	switch cmpMag(am, bm) {
	case 0:
		return Operand{}
	case 1:
		return fromMag(an, subMag(am, bm))
	default:
		return fromMag(bn, subMag(bm, am))
	}
}

// Mul returns a*b. The result sign is negative exactly when the operand
// signs differ; a zero factor short-circuits to zero.
func Mul(a, b Operand) Operand {
	if !a.ext && !b.ext {
		if z, ok := mulInt64(a.n, b.n); ok {
			return Operand{n: z}
		}
	}
	if a.IsZero() || b.IsZero() {
		return Operand{}
	}
	an, am := a.parts()
	bn, bm := b.parts()
	return fromMag(an != bn, mulMag(am, bm))
}

// DivMod returns the quotient and remainder of a/b in one division.
// Truncating semantics: the quotient's sign is the XOR of the operand signs,
// the remainder follows the dividend. Fails with a division-by-zero error
// when b is zero.
func DivMod(a, b Operand) (q, r Operand, err error) {
	if b.IsZero() {
		return Operand{}, Operand{}, newErr(CodeDivisionByZero, "", "divisor is zero")
	}
	if !a.ext && !b.ext {
		// MinInt64 / -1 is the one native quotient that overflows.
		if !(a.n == math.MinInt64 && b.n == -1) {
			return Operand{n: a.n / b.n}, Operand{n: a.n % b.n}, nil
		}
	}
	an, am := a.parts()
	bn, bm := b.parts()
	qm, rm := divMag(am, bm)
	return fromMag(an != bn, qm), fromMag(an, rm), nil
}

// Div returns the truncated quotient of a/b.
func Div(a, b Operand) (Operand, error) {
	q, _, err := DivMod(a, b)
	return q, err
}

// Mod returns the remainder of the same division Div performs.
func Mod(a, b Operand) (Operand, error) {
	_, r, err := DivMod(a, b)
	return r, err
}

// Pow returns a**b by square-and-multiply over the exponent's binary digits,
// keeping the multiplication count logarithmic in the exponent. The exponent
// must be non-negative; Pow(0, 0) is 1 by convention. The exponent is halved
// as an Operand, so even an exponent beyond int64 drives the loop correctly.
func Pow(a, b Operand) (Operand, error) {
	if b.Sign() < 0 {
		return Operand{}, newErr(CodeInvalidExponent, "", "negative exponent %s", b)
	}
	acc := Operand{n: 1}
	base := a
	e := b
	for !e.IsZero() {
		half, odd := halve(e)
		if odd {
			acc = Mul(acc, base)
		}
		e = half
		if e.IsZero() {
			break // skip the last squaring
		}
		base = Mul(base, base)
	}
	return acc, nil
}

// halve returns floor(e/2) and e's parity; e must be non-negative.
func halve(e Operand) (Operand, bool) {
	if !e.ext {
		return Operand{n: e.n / 2}, e.n%2 == 1
	}
	h, odd := halfMag(e.mag)
	return fromMag(false, h), odd
}

// Neg returns -a. Zero is its own negation.
func Neg(a Operand) Operand {
	if !a.ext {
		if a.n == math.MinInt64 {
			return fromMag(false, nativeMag(a.n)) // promotes: 2^63 exceeds int64
		}
		return Operand{n: -a.n}
	}
	// fromMag re-canonicalizes: negating 2^63 lands back on MinInt64.
	return fromMag(!a.neg, a.mag)
}

// Abs returns the absolute value of a.
func Abs(a Operand) Operand {
	if a.Sign() < 0 {
		return Neg(a)
	}
	return a
}

// Cmp returns -1, 0, or +1 as a is less than, equal to, or greater than b.
// Differing signs decide immediately; equal signs compare magnitudes by
// digit count then lexicographically, inverted for negative operands.
func Cmp(a, b Operand) int {
	if !a.ext && !b.ext {
		switch {
		case a.n < b.n:
			return -1
		case a.n > b.n:
			return 1
		}
		return 0
	}
	as, bs := a.Sign(), b.Sign()
	if as != bs {
		if as < bs {
			return -1
		}
		return 1
	}
	_, am := a.parts()
	_, bm := b.parts()
	c := cmpMag(am, bm)
	if as < 0 {
		c = -c
	}
	return c
}

// Max returns the larger operand; ties return a.
func Max(a, b Operand) Operand {
	if Cmp(a, b) >= 0 {
		return a
	}
	return b
}

// Min returns the smaller operand; ties return a.
func Min(a, b Operand) Operand {
	if Cmp(a, b) <= 0 {
		return a
	}
	return b
}
