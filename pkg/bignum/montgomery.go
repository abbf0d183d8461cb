package bignum

import "math/bits"

// MontgomeryContext holds the precomputed values needed for repeated
// Montgomery multiplication modulo a fixed odd modulus n: n itself, n's
// limb count, the Hensel-lifted -n^-1 mod 2^wordBits, and R^2 mod n (used
// to move operands into Montgomery form). Matches the state mbedtls builds
// once in mpi_montg_init and caches across an exponentiation in RR.
type MontgomeryContext struct {
	n    *BigInt
	nLen int
	mm   Word
	rr   *BigInt
}

// NewMontgomeryContext precomputes the Montgomery parameters for modulus n.
// n must be odd and positive.
func NewMontgomeryContext(n *BigInt) (*MontgomeryContext, error) {
	if n.Sign() <= 0 || n.Bit(0) == 0 {
		return nil, opErr("montgomery", ErrBadInput)
	}
	ctx := &MontgomeryContext{
		n:    n.Clone(),
		nLen: n.significant(),
		mm:   montgomerySetup(n),
	}
	ctx.rr = New()
	if err := ctx.computeRR(); err != nil {
		return nil, err
	}
	return ctx, nil
}

// montgomerySetup computes mm = -n^-1 mod 2^wordBits by Hensel lifting,
// matching mpi_montg_init: start with the 3-bit inverse of n's low digit
// (valid since n is odd) and double the precision each iteration until it
// covers a full word.
func montgomerySetup(n *BigInt) Word {
	x := n.limbs[0]
	y := x
	for i := 2; i < wordBits; i <<= 1 {
		y = y * (2 - x*y)
	}
	return ^y + 1
}

// computeRR sets ctx.rr = R^2 mod n, where R = 2^(wordBits*nLen), by
// setting the single bit 2^(2*wordBits*nLen) and reducing it with one full
// Mod.
func (ctx *MontgomeryContext) computeRR() error {
	rr := New()
	defer rr.Free()
	if err := rr.SetBit(2*ctx.nLen*wordBits, 1); err != nil {
		return opErr("montgomery", err)
	}
	if err := rr.Mod(rr, ctx.n); err != nil {
		return opErr("montgomery", err)
	}
	return ctx.rr.Set(rr)
}

// Reduce performs Montgomery reduction of t modulo n (equivalently,
// MontMul(t, 1)): it sets z = t * R^-1 mod n, where R = 2^(wordBits*nLen).
// Matches mpi_montred.
func (ctx *MontgomeryContext) Reduce(z, t *BigInt) error {
	one := NewFromInt64(1)
	defer one.Free()
	return ctx.Mul(z, t, one)
}

// Mul sets z = x * y * R^-1 mod n (Montgomery multiplication), the
// branch-free CIOS-style reduction of mpi_montmul: accumulate x*y one limb
// of y at a time, after each limb fold in a multiple of n chosen to cancel
// that limb's contribution mod the word radix, then finish with a single
// "dummy subtraction" that is always performed — its result is discarded
// via CondAssign-style masking when it isn't needed — so the instruction
// trace does not depend on whether the final compare-and-subtract fires.
func (ctx *MontgomeryContext) Mul(z, x, y *BigInt) error {
	n := ctx.n
	d := ctx.nLen

	xl := make([]Word, d)
	copy(xl, x.limbs[:min(d, len(x.limbs))])
	yl := make([]Word, d)
	copy(yl, y.limbs[:min(d, len(y.limbs))])
	nl := make([]Word, d)
	copy(nl, n.limbs[:min(d, len(n.limbs))])

	acc := make([]Word, d+d+2)

	for i := 0; i < d; i++ {
		// acc += x * y[i]
		carry := addMulVVW(acc[i:i+d], xl, yl[i])
		propagateCarry(acc, i+d, carry)

		// u = acc[i] * mm mod 2^wordBits cancels acc's i'th limb mod n
		u := acc[i] * ctx.mm
		carry = addMulVVW(acc[i:i+d], nl, u)
		propagateCarry(acc, i+d, carry)
	}

	// Result sits in acc[d:2d+1]; always compute acc-n, and always select
	// between acc and acc-n with a mask rather than a branch, so the timing
	// of Mul never depends on whether the subtraction was needed.
	hi := acc[d : d+d+1]
	diff := make([]Word, d+1)
	extended := make([]Word, d+1)
	copy(extended, nl)
	borrow := subVV(diff, hi, extended)

	mask := Word(0) - (Word(1) - borrow)
	for i := range hi {
		hi[i] = hi[i]&^mask | diff[i]&mask
	}

	if err := z.grow(d); err != nil {
		return opErr("montmul", err)
	}
	copy(z.limbs, hi[:d])
	for i := d; i < len(z.limbs); i++ {
		z.limbs[i] = 0
	}
	z.sign = 1
	return nil
}

// propagateCarry adds the word c into acc[idx] and ripples the resulting
// carry upward through every remaining limb of acc, visiting each limb
// whether or not a carry is still pending, so it has no value-dependent
// branch.
func propagateCarry(acc []Word, idx int, c Word) {
	for i := idx; i < len(acc); i++ {
		s, cc := bits.Add(uint(acc[i]), uint(c), 0)
		acc[i], c = Word(s), Word(cc)
	}
}

// ToMontgomery sets z = x * R mod n (moves x into Montgomery form) using
// the cached R^2 mod n value.
func (ctx *MontgomeryContext) ToMontgomery(z, x *BigInt) error {
	var r BigInt
	if err := r.Mod(x, ctx.n); err != nil {
		return err
	}
	return ctx.Mul(z, &r, ctx.rr)
}

// FromMontgomery sets z = x * R^-1 mod n (moves x out of Montgomery form).
func (ctx *MontgomeryContext) FromMontgomery(z, x *BigInt) error {
	return ctx.Reduce(z, x)
}

