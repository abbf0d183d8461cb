package bignum

import "testing"

func TestIsPrimeSmallKnownValues(t *testing.T) {
	src := &repeatReader{b: 7}
	cases := []struct {
		v    int64
		want bool
	}{
		{2, true},
		{3, true},
		{4, false},
		{17, true},
		{341, false}, // smallest base-2 Fermat pseudoprime, caught by trial division (11*31)
		{997, true},
		{998, false},
		{561, false}, // Carmichael number 3*11*17
	}
	for _, c := range cases {
		z := NewFromInt64(c.v)
		got, err := z.IsPrime(src)
		if err != nil {
			t.Fatalf("IsPrime(%d): %v", c.v, err)
		}
		if got != c.want {
			t.Errorf("IsPrime(%d) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestIsPrimeMersenneComposite(t *testing.T) {
	// 2^11 - 1 = 2047 = 23 * 89, a classic Mersenne composite.
	z := NewFromInt64(2047)
	got, err := z.IsPrime(&repeatReader{b: 3})
	if err != nil {
		t.Fatalf("IsPrime: %v", err)
	}
	if got {
		t.Error("IsPrime(2047) should be false: 2047 = 23*89")
	}
}

func TestCheckSmallFactorsRejectsEven(t *testing.T) {
	z := NewFromInt64(100)
	if err := z.checkSmallFactors(); err == nil {
		t.Error("checkSmallFactors should reject an even number")
	}
}

func TestGenPrimeProducesProbablePrime(t *testing.T) {
	src := &repeatReader{b: 11}
	p, err := GenPrime(64, src, GenPrimeOptions{})
	if err != nil {
		t.Fatalf("GenPrime: %v", err)
	}
	if p.BitLen() != 64 {
		t.Errorf("GenPrime(64) bit length = %d, want 64", p.BitLen())
	}
	if p.Bit(0) != 1 {
		t.Error("GenPrime should produce an odd number")
	}
	ok, err := p.IsPrime(src)
	if err != nil {
		t.Fatalf("IsPrime: %v", err)
	}
	if !ok {
		t.Errorf("GenPrime(64) produced a non-prime: %v", p)
	}
}

func TestGenPrimeSafe(t *testing.T) {
	src := &repeatReader{b: 23}
	p, err := GenPrime(48, src, GenPrimeOptions{Safe: true})
	if err != nil {
		t.Fatalf("GenPrime(safe): %v", err)
	}
	ok, err := p.IsPrime(src)
	if err != nil {
		t.Fatalf("IsPrime: %v", err)
	}
	if !ok {
		t.Fatalf("GenPrime(safe) produced non-prime X: %v", p)
	}

	q := New()
	if _, err := q.SubInt64(p, 1); err != nil {
		t.Fatalf("SubInt64: %v", err)
	}
	if err := q.ShiftR(1); err != nil {
		t.Fatalf("ShiftR: %v", err)
	}
	qPrime, err := q.IsPrime(src)
	if err != nil {
		t.Fatalf("IsPrime: %v", err)
	}
	if !qPrime {
		t.Errorf("GenPrime(safe) produced X=%v whose (X-1)/2=%v is not prime", p, q)
	}
}

func TestMillerRabinRoundsTableMonotonic(t *testing.T) {
	prev := millerRabinRounds(0)
	for _, bits := range []int{150, 250, 350, 650, 850, 1300, 2000} {
		r := millerRabinRounds(bits)
		if r > prev {
			t.Errorf("millerRabinRounds(%d) = %d, should not exceed rounds for smaller bit lengths (%d)", bits, r, prev)
		}
		prev = r
	}
}
