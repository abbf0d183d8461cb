package bignum

import "math/bits"

// addVV computes z = x + y over equal-length limb slices (len(z) == len(x)
// == len(y)) and returns the carry out of the top limb. Corresponds to the
// inner loop of mpi_add_abs (HAC 14.7).
func addVV(z, x, y []Word) Word {
	var c uint
	for i := range z {
		var zi uint
		zi, c = bits.Add(uint(x[i]), uint(y[i]), c)
		z[i] = Word(zi)
	}
	return Word(c)
}

// addVW adds the single word y to x, writing the result to z and returning
// the carry out. len(z) == len(x).
func addVW(z, x []Word, y Word) Word {
	c := uint(y)
	for i := range z {
		var zi uint
		zi, c = bits.Add(uint(x[i]), 0, c)
		z[i] = Word(zi)
		if c == 0 {
			if i+1 < len(z) {
				copy(z[i+1:], x[i+1:])
			}
			return 0
		}
	}
	return Word(c)
}

// subVV computes z = x - y over equal-length limb slices and returns the
// borrow out of the top limb. Corresponds to mpi_sub_hlp (HAC 14.9).
func subVV(z, x, y []Word) Word {
	var b uint
	for i := range z {
		var zi uint
		zi, b = bits.Sub(uint(x[i]), uint(y[i]), b)
		z[i] = Word(zi)
	}
	return Word(b)
}

// subVW subtracts the single word y from x, writing the result to z and
// returning the borrow out. len(z) == len(x).
func subVW(z, x []Word, y Word) Word {
	b := uint(y)
	for i := range z {
		var zi uint
		zi, b = bits.Sub(uint(x[i]), 0, b)
		z[i] = Word(zi)
		if b == 0 {
			if i+1 < len(z) {
				copy(z[i+1:], x[i+1:])
			}
			return 0
		}
	}
	return Word(b)
}

// mulAddVWW computes z = x*m + a word-by-word (len(z) == len(x)) and returns
// the carry out of the top limb. This is the digit-layer multiply-accumulate
// that HAC 14.12's mpi_mul_hlp builds its schoolbook multiply from; mbedTLS
// expresses it with an inline __int128/clang-builtin multiply-with-carry
// sequence (MULADDC), which math/bits.Mul+Add reproduces exactly without
// assembly.
func mulAddVWW(z, x []Word, m, a Word) Word {
	var carry uint
	for i := range x {
		hi, lo := bits.Mul(uint(x[i]), uint(m))
		var c0, c1 uint
		lo, c0 = bits.Add(lo, uint(a), 0)
		lo, c1 = bits.Add(lo, uint(carry), 0)
		z[i] = Word(lo)
		carry = hi + c0 + c1
		a = 0
	}
	return Word(carry)
}

// addMulVVW computes z += x*m in place (len(z) == len(x)) and returns the
// carry out of the top limb. Used by the schoolbook multiply to accumulate
// each partial product directly into the result, matching mpi_mul_hlp's
// accumulate-in-place structure.
func addMulVVW(z, x []Word, m Word) Word {
	var carry uint
	for i := range x {
		hi, lo := bits.Mul(uint(x[i]), uint(m))
		var c0, c1 uint
		lo, c0 = bits.Add(lo, uint(z[i]), 0)
		lo, c1 = bits.Add(lo, carry, 0)
		z[i] = Word(lo)
		carry = hi + c0 + c1
	}
	return Word(carry)
}

// divWVW divides the multi-limb dividend x (most significant limb first,
// with an explicit leading limb xhi) by the single word y, writing the
// quotient limbs to z (same order as x) and returning the remainder. It is
// not called by div.go: estimateQuotientDigit divides with math/bits.Div
// directly.
func divWVW(z []Word, xhi Word, x []Word, y Word) (rem Word) {
	r := uint(xhi)
	for i := len(x) - 1; i >= 0; i-- {
		var q uint
		q, r = bits.Div(r, uint(x[i]), uint(y))
		z[i] = Word(q)
	}
	return Word(r)
}
