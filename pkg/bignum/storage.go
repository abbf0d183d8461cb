package bignum

import "runtime"

// significant recomputes the dynamic significant-limb count by scanning from
// the top; trailing allocated-but-zero limbs above the true magnitude are
// legal scratch space and are never assumed to be trimmed.
func (z *BigInt) significant() int {
	n := len(z.limbs)
	for n > 0 && z.limbs[n-1] == 0 {
		n--
	}
	return n
}

// grow ensures z has at least n limbs, preserving existing contents and
// zero-filling the new tail. It is a no-op if z already has n or more limbs.
func (z *BigInt) grow(n int) error {
	if n < 0 {
		n = 0
	}
	if n > maxLimbs {
		return opErr("grow", ErrAllocationFailed)
	}
	if len(z.limbs) >= n {
		return nil
	}
	next := make([]Word, n)
	copy(next, z.limbs)
	z.limbs = next
	if z.sign == 0 {
		z.sign = 1
	}
	return nil
}

// Grow ensures z can hold at least nblimbs limbs without reallocating on a
// subsequent operation. It is exposed so callers preparing scratch space
// (e.g. before a sequence of Montgomery multiplications) can preallocate
// once.
func (z *BigInt) Grow(nblimbs int) error {
	return z.grow(nblimbs)
}

// Shrink reallocates z's buffer to max(minLimbs, z's true significant limb
// count), zero-filling any newly allocated tail.
func (z *BigInt) Shrink(minLimbs int) error {
	n := z.significant()
	if n < minLimbs {
		n = minLimbs
	}
	if n > maxLimbs {
		return opErr("shrink", ErrAllocationFailed)
	}
	next := make([]Word, n)
	copy(next, z.limbs)
	z.limbs = next
	return nil
}

// Set copies y's value into z. It is a no-op if z and y are the same BigInt.
func (z *BigInt) Set(y *BigInt) error {
	if z == y {
		return nil
	}
	n := y.significant()
	if n == 0 {
		z.limbs = nil
		z.sign = 1
		return nil
	}
	if err := z.grow(n); err != nil {
		return opErr("set", err)
	}
	copy(z.limbs[:n], y.limbs[:n])
	for i := n; i < len(z.limbs); i++ {
		z.limbs[i] = 0
	}
	z.sign = y.sign
	return nil
}

// Swap exchanges the buffers of z and y in place without reallocating.
func (z *BigInt) Swap(y *BigInt) {
	if z == y {
		return
	}
	z.limbs, y.limbs = y.limbs, z.limbs
	z.sign, y.sign = y.sign, z.sign
}

// Free zeroizes z's limb buffer and releases it. z is left as the value 0
// and may be reused.
func (z *BigInt) Free() {
	for i := range z.limbs {
		z.limbs[i] = 0
	}
	runtime.KeepAlive(z.limbs)
	z.limbs = nil
	z.sign = 1
}

// zeroizeWords overwrites buf with zeros and prevents the compiler from
// eliding the store as dead code, following the pattern documented in
// golang/go#33325.
func zeroizeWords(buf []Word) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}
