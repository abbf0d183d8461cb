package bignum

// GCD sets z to the greatest common divisor of |x| and |y|, using the
// binary GCD algorithm (HAC 14.54, matching mpi_gcd): strip common factors
// of two, then repeatedly strip factors of two from whichever operand is
// even and subtract the smaller from the larger while both are odd.
func (z *BigInt) GCD(x, y *BigInt) error {
	a := x.Clone()
	a.sign = 1
	defer a.Free()
	b := y.Clone()
	b.sign = 1
	defer b.Free()

	if a.IsZero() {
		return z.Set(b)
	}
	if b.IsZero() {
		return z.Set(a)
	}

	shift := a.Lsb()
	if bl := b.Lsb(); bl < shift {
		shift = bl
	}
	if err := a.ShiftR(shift); err != nil {
		return opErr("gcd", err)
	}
	if err := b.ShiftR(shift); err != nil {
		return opErr("gcd", err)
	}

	for !a.IsZero() {
		if err := a.ShiftR(a.Lsb()); err != nil {
			return opErr("gcd", err)
		}
		if err := b.ShiftR(b.Lsb()); err != nil {
			return opErr("gcd", err)
		}
		if CmpAbs(a, b) >= 0 {
			if err := a.SubAbs(a, b); err != nil {
				return opErr("gcd", err)
			}
			if err := a.ShiftR(1); err != nil {
				return opErr("gcd", err)
			}
		} else {
			if err := b.SubAbs(b, a); err != nil {
				return opErr("gcd", err)
			}
			if err := b.ShiftR(1); err != nil {
				return opErr("gcd", err)
			}
		}
	}

	if err := b.ShiftL(shift); err != nil {
		return opErr("gcd", err)
	}
	return z.Set(b)
}

// InvMod sets z to x^-1 mod n, using the binary extended Euclidean
// algorithm (HAC 14.61/14.64, matching mpi_inv_mod). n must be positive and
// greater than 1, and x must be coprime with n; if it is not, InvMod
// returns ErrNotAcceptable and leaves z unchanged.
func (z *BigInt) InvMod(x, n *BigInt) error {
	if n.Sign() <= 0 || n.CmpInt64(1) == 0 {
		return opErr("invmod", ErrBadInput)
	}

	a := New()
	defer a.Free()
	if err := a.Mod(x, n); err != nil {
		return opErr("invmod", err)
	}
	if a.IsZero() {
		return opErr("invmod", ErrNotAcceptable)
	}

	g := New()
	defer g.Free()
	if err := g.GCD(a, n); err != nil {
		return opErr("invmod", err)
	}
	if g.CmpInt64(1) != 0 {
		return opErr("invmod", ErrNotAcceptable)
	}

	tA := a.Clone()
	defer tA.Free()
	tB := n.Clone()
	defer tB.Free()

	u1 := NewFromInt64(1)
	defer u1.Free()
	u2 := New()
	defer u2.Free()
	v1 := New()
	defer v1.Free()
	v2 := NewFromInt64(1)
	defer v2.Free()

	for tA.Bit(0) == 0 {
		if err := tA.ShiftR(1); err != nil {
			return opErr("invmod", err)
		}
		if u1.Bit(0) == 0 && u2.Bit(0) == 0 {
			if err := u1.ShiftR(1); err != nil {
				return opErr("invmod", err)
			}
			if err := u2.ShiftR(1); err != nil {
				return opErr("invmod", err)
			}
		} else {
			if _, err := u1.Add(u1, n); err != nil {
				return opErr("invmod", err)
			}
			if err := u1.ShiftR(1); err != nil {
				return opErr("invmod", err)
			}
			if _, err := u2.Sub(u2, a); err != nil {
				return opErr("invmod", err)
			}
			if err := u2.ShiftR(1); err != nil {
				return opErr("invmod", err)
			}
		}
	}

	for !tA.IsZero() {
		for tA.Bit(0) == 0 {
			if err := tA.ShiftR(1); err != nil {
				return opErr("invmod", err)
			}
			if u1.Bit(0) == 0 && u2.Bit(0) == 0 {
				if err := u1.ShiftR(1); err != nil {
					return opErr("invmod", err)
				}
				if err := u2.ShiftR(1); err != nil {
					return opErr("invmod", err)
				}
			} else {
				if _, err := u1.Add(u1, n); err != nil {
					return opErr("invmod", err)
				}
				if err := u1.ShiftR(1); err != nil {
					return opErr("invmod", err)
				}
				if _, err := u2.Sub(u2, a); err != nil {
					return opErr("invmod", err)
				}
				if err := u2.ShiftR(1); err != nil {
					return opErr("invmod", err)
				}
			}
		}
		for tB.Bit(0) == 0 {
			if err := tB.ShiftR(1); err != nil {
				return opErr("invmod", err)
			}
			if v1.Bit(0) == 0 && v2.Bit(0) == 0 {
				if err := v1.ShiftR(1); err != nil {
					return opErr("invmod", err)
				}
				if err := v2.ShiftR(1); err != nil {
					return opErr("invmod", err)
				}
			} else {
				if _, err := v1.Add(v1, n); err != nil {
					return opErr("invmod", err)
				}
				if err := v1.ShiftR(1); err != nil {
					return opErr("invmod", err)
				}
				if _, err := v2.Sub(v2, a); err != nil {
					return opErr("invmod", err)
				}
				if err := v2.ShiftR(1); err != nil {
					return opErr("invmod", err)
				}
			}
		}
		if Cmp(tA, tB) >= 0 {
			if _, err := tA.Sub(tA, tB); err != nil {
				return opErr("invmod", err)
			}
			if _, err := u1.Sub(u1, v1); err != nil {
				return opErr("invmod", err)
			}
			if _, err := u2.Sub(u2, v2); err != nil {
				return opErr("invmod", err)
			}
		} else {
			if _, err := tB.Sub(tB, tA); err != nil {
				return opErr("invmod", err)
			}
			if _, err := v1.Sub(v1, u1); err != nil {
				return opErr("invmod", err)
			}
			if _, err := v2.Sub(v2, u2); err != nil {
				return opErr("invmod", err)
			}
		}
	}

	return z.Mod(v1, n)
}
