package bignum

// CmpAbs compares |x| and |y|, returning -1, 0, or +1. Matches mpi_cmp_abs.
func CmpAbs(x, y *BigInt) int {
	nx, ny := x.significant(), y.significant()
	if nx != ny {
		if nx < ny {
			return -1
		}
		return 1
	}
	for i := nx - 1; i >= 0; i-- {
		if x.limbs[i] != y.limbs[i] {
			if x.limbs[i] < y.limbs[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Cmp compares the signed values of x and y, returning -1, 0, or +1. Matches
// mpi_cmp_mpi.
func Cmp(x, y *BigInt) int {
	sx, sy := x.Sign(), y.Sign()
	if sx != sy {
		if sx < sy {
			return -1
		}
		return 1
	}
	c := CmpAbs(x, y)
	if sx < 0 {
		return -c
	}
	return c
}

// CmpInt64 compares z's signed value against v. Matches mpi_cmp_int.
func (z *BigInt) CmpInt64(v int64) int {
	o := NewFromInt64(v)
	defer o.Free()
	return Cmp(z, o)
}

// Bit returns the value (0 or 1) of the pos'th bit of z's magnitude, least
// significant first. Matches mpi_get_bit.
func (z *BigInt) Bit(pos int) int {
	if pos < 0 {
		return 0
	}
	limb := pos / wordBits
	if limb >= len(z.limbs) {
		return 0
	}
	return int((z.limbs[limb] >> uint(pos%wordBits)) & 1)
}

// SetBit sets the pos'th bit of z's magnitude to val (0 or 1), growing z if
// necessary. Matches mpi_set_bit.
func (z *BigInt) SetBit(pos int, val int) error {
	if pos < 0 || (val != 0 && val != 1) {
		return opErr("setbit", ErrBadInput)
	}
	limb := pos / wordBits
	if err := z.grow(limb + 1); err != nil {
		return opErr("setbit", err)
	}
	off := uint(pos % wordBits)
	if val != 0 {
		z.limbs[limb] |= Word(1) << off
	} else {
		z.limbs[limb] &^= Word(1) << off
	}
	return nil
}

// Lsb returns the index of the least significant set bit of z's magnitude.
// By convention (spec.md §4.5/§9, matching mpi_lsb), the zero value reports
// 0 — the same value a single set bit 0 would report — so callers must not
// use Lsb to distinguish "zero" from "odd with bit 0 set"; IsZero is the
// correct test for that.
func (z *BigInt) Lsb() int {
	for i, w := range z.limbs {
		if w != 0 {
			for b := 0; b < wordBits; b++ {
				if w&(1<<uint(b)) != 0 {
					return i*wordBits + b
				}
			}
		}
	}
	return 0
}

// BitLen returns the number of bits in z's magnitude (the position of the
// most significant set bit, plus one); it is 0 for z == 0. Matches mpi_msb.
func (z *BigInt) BitLen() int {
	n := z.significant()
	if n == 0 {
		return 0
	}
	return (n-1)*wordBits + bitLenWord(z.limbs[n-1])
}
