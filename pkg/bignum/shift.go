package bignum

// ShiftL shifts z's magnitude left by count bits in place, growing the
// buffer as needed. Matches mpi_shift_l: a whole-limb move followed by an
// intra-limb shift with carry propagation.
func (z *BigInt) ShiftL(count int) error {
	if count < 0 {
		return opErr("shiftl", ErrBadInput)
	}
	if count == 0 {
		return nil
	}
	n := z.significant()
	if n == 0 {
		return nil
	}
	limbShift := count / wordBits
	bitShift := uint(count % wordBits)
	newN := n + limbShift + 1

	if err := z.grow(newN); err != nil {
		return opErr("shiftl", err)
	}

	if limbShift > 0 {
		for i := len(z.limbs) - 1; i >= limbShift; i-- {
			z.limbs[i] = z.limbs[i-limbShift]
		}
		for i := 0; i < limbShift && i < len(z.limbs); i++ {
			z.limbs[i] = 0
		}
	}

	if bitShift > 0 {
		var carry Word
		for i := limbShift; i < len(z.limbs); i++ {
			next := z.limbs[i] >> (Word(wordBits) - bitShift)
			z.limbs[i] = z.limbs[i]<<bitShift | carry
			carry = next
		}
	}
	return nil
}

// ShiftR shifts z's magnitude right by count bits in place. Bits shifted
// past the low end are discarded (truncating division by a power of two).
// Matches mpi_shift_r.
func (z *BigInt) ShiftR(count int) error {
	if count < 0 {
		return opErr("shiftr", ErrBadInput)
	}
	if count == 0 {
		return nil
	}
	v := len(z.limbs)
	if v == 0 {
		return nil
	}
	limbShift := count / wordBits
	bitShift := uint(count % wordBits)

	if limbShift >= v {
		for i := range z.limbs {
			z.limbs[i] = 0
		}
		z.sign = 1
		return nil
	}

	if limbShift > 0 {
		copy(z.limbs, z.limbs[limbShift:])
		for i := v - limbShift; i < v; i++ {
			z.limbs[i] = 0
		}
	}

	if bitShift > 0 {
		var carry Word
		for i := v - limbShift - 1; i >= 0; i-- {
			next := z.limbs[i] << (Word(wordBits) - bitShift)
			z.limbs[i] = z.limbs[i]>>bitShift | carry
			carry = next
		}
	}
	if z.IsZero() {
		z.sign = 1
	}
	return nil
}
