package bignum

import (
	"errors"
	"io"
)

// smallPrimes lists the odd primes up to 997, used for quick trial-division
// rejection before committing to the more expensive Miller-Rabin test.
// Matches mbedtls's small_prime table (the list is terminated there by a
// sentinel 0; here the slice length plays that role).
var smallPrimes = []uint{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67,
	71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139,
	149, 151, 157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211, 223,
	227, 229, 233, 239, 241, 251, 257, 263, 269, 271, 277, 281, 283, 293,
	307, 311, 313, 317, 331, 337, 347, 349, 353, 359, 367, 373, 379, 383,
	389, 397, 401, 409, 419, 421, 431, 433, 439, 443, 449, 457, 461, 463,
	467, 479, 487, 491, 499, 503, 509, 521, 523, 541, 547, 557, 563, 569,
	571, 577, 587, 593, 599, 601, 607, 613, 617, 619, 631, 641, 643, 647,
	653, 659, 661, 673, 677, 683, 691, 701, 709, 719, 727, 733, 739, 743,
	751, 757, 761, 769, 773, 787, 797, 809, 811, 821, 823, 827, 829, 839,
	853, 857, 859, 863, 877, 881, 883, 887, 907, 911, 919, 929, 937, 941,
	947, 953, 967, 971, 977, 983, 991, 997,
}

// checkSmallFactors trial-divides z by every prime in smallPrimes, one
// ModInt64 call per prime; primes are not batched into a combined modulus.
// It returns ErrNotAcceptable if any small prime
// divides z (unless z equals that prime), nil if z survives every small
// prime, or another error on allocation failure.
func (z *BigInt) checkSmallFactors() error {
	if z.Bit(0) == 0 {
		return opErr("checksmallfactors", ErrNotAcceptable)
	}
	for _, p := range smallPrimes {
		pv := int64(p)
		if z.CmpInt64(pv) == 0 {
			return nil
		}
		r, err := z.ModInt64(z, pv)
		if err != nil {
			return opErr("checksmallfactors", err)
		}
		if r == 0 {
			return opErr("checksmallfactors", ErrNotAcceptable)
		}
	}
	return nil
}

// millerRabinRounds picks the number of Miller-Rabin rounds for an operand
// of the given bit length, matching mpi_miller_rabin's table: the
// probability bound FIPS 186-4 requires is met with fewer rounds as the
// candidate grows, since a false witness becomes exponentially less likely
// for larger inputs at fixed confidence.
func millerRabinRounds(bitLen int) int {
	switch {
	case bitLen >= 1300:
		return 2
	case bitLen >= 850:
		return 3
	case bitLen >= 650:
		return 4
	case bitLen >= 350:
		return 8
	case bitLen >= 250:
		return 12
	case bitLen >= 150:
		return 18
	default:
		return 27
	}
}

// millerRabin runs the Miller-Rabin probable-prime test (HAC 4.24,
// matching mpi_miller_rabin) against n with witnesses drawn from src. It
// returns nil if n is probably prime, ErrNotAcceptable if a witness proves
// n composite, or another error if src fails or an allocation limit is hit.
func millerRabin(n *BigInt, src io.Reader) error {
	if n.CmpInt64(1) <= 0 {
		return opErr("millerrabin", ErrNotAcceptable)
	}
	if n.CmpInt64(2) == 0 {
		return nil
	}

	nMinus1 := New()
	defer nMinus1.Free()
	if _, err := nMinus1.SubInt64(n, 1); err != nil {
		return opErr("millerrabin", err)
	}

	s := 0
	d := nMinus1.Clone()
	defer d.Free()
	for d.Bit(0) == 0 {
		if err := d.ShiftR(1); err != nil {
			return opErr("millerrabin", err)
		}
		s++
	}

	rounds := millerRabinRounds(n.BitLen())

	nMinus2 := New()
	defer nMinus2.Free()
	if _, err := nMinus2.SubInt64(n, 2); err != nil {
		return opErr("millerrabin", err)
	}

	byteLen := (n.BitLen() + 7) / 8
	if byteLen < 1 {
		byteLen = 1
	}

	a := New()
	defer a.Free()
	y := New()
	defer y.Free()

	for round := 0; round < rounds; round++ {
		for {
			if err := a.FillRandom(src, byteLen); err != nil {
				return opErr("millerrabin", err)
			}
			if a.CmpInt64(2) >= 0 && Cmp(a, nMinus2) <= 0 {
				break
			}
		}

		if err := y.ExpMod(a, d, n); err != nil {
			return opErr("millerrabin", err)
		}

		if y.CmpInt64(1) == 0 || Cmp(y, nMinus1) == 0 {
			continue
		}

		composite := true
		for i := 1; i < s; i++ {
			if _, err := y.Mul(y, y); err != nil {
				return opErr("millerrabin", err)
			}
			if err := y.Mod(y, n); err != nil {
				return opErr("millerrabin", err)
			}
			if Cmp(y, nMinus1) == 0 {
				composite = false
				break
			}
			if y.CmpInt64(1) == 0 {
				return opErr("millerrabin", ErrNotAcceptable)
			}
		}
		if composite {
			return opErr("millerrabin", ErrNotAcceptable)
		}
	}
	return nil
}

// IsPrime reports whether z is probably prime, using small-prime trial
// division followed by Miller-Rabin with witnesses drawn from src. Matches
// mpi_is_prime.
func (z *BigInt) IsPrime(src io.Reader) (bool, error) {
	if z.CmpInt64(1) <= 0 {
		return false, nil
	}
	if z.CmpInt64(3) <= 0 {
		return true, nil
	}
	if err := z.checkSmallFactors(); err != nil {
		if errors.Is(err, ErrNotAcceptable) {
			return false, nil
		}
		return false, err
	}
	if err := millerRabin(z, src); err != nil {
		if errors.Is(err, ErrNotAcceptable) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GenPrimeOptions configures GenPrime.
type GenPrimeOptions struct {
	// Safe requires the generated prime X to also satisfy (X-1)/2 prime,
	// producing a safe prime suitable for a Diffie-Hellman or DSA subgroup
	// generator search. Matches mpi_gen_prime's MBEDTLS_MPI_GEN_PRIME_FLAG_DH.
	Safe bool
}

// GenPrime sets z to a randomly generated probable prime of exactly nbits
// bits (the top bit is forced to 1, and so are the low two bits), drawing
// randomness from src. Only the top bit is forced, so the product of two
// such primes has either 2*nbits-1 or 2*nbits bits. Matches mpi_gen_prime,
// including its congruence fixups for the safe-prime case: a safe prime X
// requires X = 3 mod 4 so that Y = (X-1)/2 is an integer, and X = 2 mod 3
// so neither X nor Y is a multiple of 3; the search then steps X by 12 and Y by 6 to preserve both
// congruences between trials instead of rerolling from scratch.
func GenPrime(nbits int, src io.Reader, opts GenPrimeOptions) (*BigInt, error) {
	if nbits < 3 || nbits > MaxBits {
		return nil, opErr("genprime", ErrBadInput)
	}

	byteLen := (nbits + 7) / 8
	x := New()
	y := New()

	for {
		if err := x.FillRandom(src, byteLen); err != nil {
			return nil, opErr("genprime", err)
		}
		excess := byteLen*8 - nbits
		if excess > 0 {
			if err := x.ShiftR(excess); err != nil {
				return nil, opErr("genprime", err)
			}
		}
		if err := x.SetBit(nbits-1, 1); err != nil {
			return nil, opErr("genprime", err)
		}
		// Force the low two bits (X->p[0] |= 3 in mpi_gen_prime): bit 0
		// for oddness, bit 1 so X = 3 mod 4, which the safe-prime branch
		// below relies on directly and the non-safe branch inherits for
		// free.
		if err := x.SetBit(1, 1); err != nil {
			return nil, opErr("genprime", err)
		}
		if err := x.SetBit(0, 1); err != nil {
			return nil, opErr("genprime", err)
		}

		if !opts.Safe {
			for {
				if x.BitLen() > nbits {
					break
				}
				ok, err := x.IsPrime(src)
				if err != nil {
					return nil, opErr("genprime", err)
				}
				if ok {
					return x, nil
				}
				if _, err := x.AddInt64(x, 2); err != nil {
					return nil, opErr("genprime", err)
				}
			}
			continue
		}

		// Fix congruences: X = 3 mod 4, X = 2 mod 3.
		r4, err := x.ModInt64(x, 4)
		if err != nil {
			return nil, opErr("genprime", err)
		}
		if r4 != 3 {
			if _, err := x.AddInt64(x, 3-r4); err != nil {
				return nil, opErr("genprime", err)
			}
		}
		r3, err := x.ModInt64(x, 3)
		if err != nil {
			return nil, opErr("genprime", err)
		}
		if r3 == 0 {
			if _, err := x.AddInt64(x, 8); err != nil {
				return nil, opErr("genprime", err)
			}
		} else if r3 == 1 {
			if _, err := x.AddInt64(x, 4); err != nil {
				return nil, opErr("genprime", err)
			}
		}

		if _, err := y.SubInt64(x, 1); err != nil {
			return nil, opErr("genprime", err)
		}
		if err := y.ShiftR(1); err != nil {
			return nil, opErr("genprime", err)
		}

		for {
			if x.BitLen() > nbits {
				break
			}
			xPrime, err := x.IsPrime(src)
			if err != nil {
				return nil, opErr("genprime", err)
			}
			if xPrime {
				yPrime, err := y.IsPrime(src)
				if err != nil {
					return nil, opErr("genprime", err)
				}
				if yPrime {
					return x, nil
				}
			}
			if _, err := x.AddInt64(x, 12); err != nil {
				return nil, opErr("genprime", err)
			}
			if _, err := y.AddInt64(y, 6); err != nil {
				return nil, opErr("genprime", err)
			}
		}
	}
}
