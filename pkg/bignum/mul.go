package bignum

// Mul sets z = x * y and returns z. Schoolbook O(n*m) multiply accumulating
// each partial product in place, matching mpi_mul_hlp/mpi_mul_mpi (HAC
// 14.12). z may alias x or y; the product is always built into a fresh
// buffer and swapped in at the end so aliasing is safe.
func (z *BigInt) Mul(x, y *BigInt) (*BigInt, error) {
	nx, ny := x.significant(), y.significant()
	if nx == 0 || ny == 0 {
		z.SetInt64(0)
		return z, nil
	}

	result := make([]Word, nx+ny)
	for i := 0; i < nx; i++ {
		carry := addMulVVW(result[i:i+ny], y.limbs[:ny], x.limbs[i])
		result[i+ny] = carry
	}

	out := New()
	if err := out.grow(len(result)); err != nil {
		return nil, opErr("mul", err)
	}
	copy(out.limbs, result)
	out.sign = x.Sign() * y.Sign()
	if out.sign == 0 {
		out.sign = 1
	}

	z.Swap(out)
	out.Free()
	return z, nil
}

// MulInt64 sets z = x * v and returns z. Matches mpi_mul_int.
func (z *BigInt) MulInt64(x *BigInt, v int64) (*BigInt, error) {
	o := NewFromInt64(v)
	defer o.Free()
	return z.Mul(x, o)
}
