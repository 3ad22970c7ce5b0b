// digits.go: magnitude arithmetic on base-10 digit sequences.
//
// A magnitude is a []byte of digit values (0..9), most significant first,
// with no leading zeros; nil is zero. Every algorithm here is a plain loop
// over the digits — no recursion, so operand size never threatens the stack.
package hotscript

// trimMag strips leading zeros; an all-zero magnitude becomes nil.
func trimMag(a []byte) []byte {
	i := 0
	for i < len(a) && a[i] == 0 {
		i++
	}
	if i == len(a) {
		return nil
	}
	return a[i:]
}

// cmpMag compares two trimmed magnitudes: digit count first, then
// lexicographically from the most significant digit.
func cmpMag(a, b []byte) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// addMag returns a+b with ripple carry from the least significant digit.
func addMag(a, b []byte) []byte {
	if len(a) < len(b) {
		a, b = b, a
	}
	z := make([]byte, len(a)+1)
	copy(z[1:], a)
	carry := byte(0)
	ib := len(b) - 1
	for i := len(z) - 1; i >= 0; i-- {
		d := z[i] + carry
		if ib >= 0 {
			d += b[ib]
			ib--
		}
		if d >= 10 {
			d -= 10
			carry = 1
		} else {
			carry = 0
		}
		z[i] = d
		if ib < 0 && carry == 0 {
			break
		}
	}
	return trimMag(z)
}

// subMag returns a-b with borrow propagation. Requires cmpMag(a, b) >= 0;
// callers order the operands (and fix the sign) before getting here.
func subMag(a, b []byte) []byte {
	z := make([]byte, len(a))
	copy(z, a)
	borrow := 0
	ib := len(b) - 1
	for i := len(z) - 1; i >= 0; i-- {
		d := int(z[i]) - borrow
		if ib >= 0 {
			d -= int(b[ib])
			ib--
		}
		if d < 0 {
			d += 10
			borrow = 1
		} else {
			borrow = 0
		}
		z[i] = byte(d)
		if ib < 0 && borrow == 0 {
			break
		}
	}
	return trimMag(z)
}

// mulMag returns a*b by schoolbook long multiplication: every digit pair is
// accumulated at its positional offset, then one carry-normalization pass
// runs over the accumulator (not per partial product).
func mulMag(a, b []byte) []byte {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	acc := make([]int, len(a)+len(b))
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] == 0 {
			continue
		}
		for j := len(b) - 1; j >= 0; j-- {
			acc[i+j+1] += int(a[i]) * int(b[j])
		}
	}
	z := make([]byte, len(acc))
	carry := 0
	for i := len(acc) - 1; i >= 0; i-- {
		v := acc[i] + carry
		z[i] = byte(v % 10)
		carry = v / 10
	}
	// carry is exhausted: a product has at most len(a)+len(b) digits
	return trimMag(z)
}

// divMag returns the quotient and remainder of a/b by long division.
// Requires b nonzero. Both results come back trimmed; the remainder is
// always below b in magnitude.
func divMag(a, b []byte) (q, r []byte) {
	if cmpMag(a, b) < 0 {
		return nil, trimMag(append([]byte(nil), a...))
	}
	q = make([]byte, len(a))
	for i := 0; i < len(a); i++ {
		// r = r*10 + next digit; r stays trimmed so append suffices.
		if len(r) > 0 || a[i] != 0 {
			r = append(r, a[i])
		}
		// The quotient digit is found by repeated subtraction; it is
		// bounded by 9 since r < b*10 on entry.
		d := byte(0)
		for cmpMag(r, b) >= 0 {
			r = subMag(r, b)
			d++
		}
		q[i] = d
	}
	return trimMag(q), r
}

// halfMag returns floor(a/2) and whether a was odd. Used by the
// square-and-multiply exponentiation loop to walk the exponent's bits.
func halfMag(a []byte) (half []byte, odd bool) {
	z := make([]byte, len(a))
	rem := byte(0)
	for i := 0; i < len(a); i++ {
		cur := rem*10 + a[i]
		z[i] = cur / 2
		rem = cur % 2
	}
	return trimMag(z), rem == 1
}
