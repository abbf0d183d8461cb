package bignum

// AddAbs sets z to |x| + |y|, ignoring both operands' signs. Matches
// mpi_add_abs (HAC 14.7): a ripple-carry add over the longer operand's
// limb count, followed by writing out any final carry.
func (z *BigInt) AddAbs(x, y *BigInt) error {
	if CmpAbs(x, y) < 0 {
		x, y = y, x
	}
	nx, ny := x.significant(), y.significant()
	n := nx
	if err := z.grow(n + 1); err != nil {
		return opErr("addabs", err)
	}

	xl := make([]Word, n)
	copy(xl, x.limbs[:nx])
	yl := make([]Word, n)
	copy(yl, y.limbs[:ny])

	carry := addVV(z.limbs[:n], xl, yl)
	z.limbs[n] = carry
	for i := n + 1; i < len(z.limbs); i++ {
		z.limbs[i] = 0
	}
	z.sign = 1
	return nil
}

// SubAbs sets z to |x| - |y|, requiring |x| >= |y|; otherwise it returns
// ErrNegativeValue without modifying z. Matches mpi_sub_abs.
func (z *BigInt) SubAbs(x, y *BigInt) error {
	if CmpAbs(x, y) < 0 {
		return opErr("subabs", ErrNegativeValue)
	}
	nx, ny := x.significant(), y.significant()
	n := nx
	if err := z.grow(n); err != nil {
		return opErr("subabs", err)
	}

	xl := make([]Word, n)
	copy(xl, x.limbs[:nx])
	yl := make([]Word, n)
	copy(yl, y.limbs[:ny])

	subVV(z.limbs[:n], xl, yl)
	for i := n; i < len(z.limbs); i++ {
		z.limbs[i] = 0
	}
	z.sign = 1
	return nil
}

// Add sets z = x + y and returns z. Matches mpi_add_mpi: equal-sign
// operands add their magnitudes and keep the shared sign; opposite-sign
// operands subtract the smaller magnitude from the larger and take the
// sign of whichever had the larger magnitude.
func (z *BigInt) Add(x, y *BigInt) (*BigInt, error) {
	sx, sy := x.Sign(), y.Sign()
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}

	if sx == sy {
		if err := z.AddAbs(x, y); err != nil {
			return nil, err
		}
		z.sign = sx
	} else if CmpAbs(x, y) >= 0 {
		if err := z.SubAbs(x, y); err != nil {
			return nil, err
		}
		z.sign = sx
	} else {
		if err := z.SubAbs(y, x); err != nil {
			return nil, err
		}
		z.sign = sy
	}
	if z.IsZero() {
		z.sign = 1
	}
	return z, nil
}

// Sub sets z = x - y and returns z. Matches mpi_sub_mpi, implemented as
// Add against a sign-flipped copy of y.
func (z *BigInt) Sub(x, y *BigInt) (*BigInt, error) {
	ny := y.Clone()
	defer ny.Free()
	if !ny.IsZero() {
		ny.sign = -ny.sign
	}
	return z.Add(x, ny)
}

// AddInt64 sets z = x + v and returns z. Matches mpi_add_int.
func (z *BigInt) AddInt64(x *BigInt, v int64) (*BigInt, error) {
	o := NewFromInt64(v)
	defer o.Free()
	return z.Add(x, o)
}

// SubInt64 sets z = x - v and returns z. Matches mpi_sub_int.
func (z *BigInt) SubInt64(x *BigInt, v int64) (*BigInt, error) {
	o := NewFromInt64(v)
	defer o.Free()
	return z.Sub(x, o)
}
