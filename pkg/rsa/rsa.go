package rsa

import (
	"context"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vaultfold/bignum/pkg/bignum"
	"github.com/vaultfold/bignum/pkg/bignum/logging"
)

// PublicExponent is the fixed public exponent used by GenerateKey. 65537 is
// the standard choice: a Fermat prime small enough to make encryption and
// verification fast, large enough to resist the low-exponent attacks that
// make e=3 risky without careful padding.
const PublicExponent = 65537

// logger logs the bit length and timing of each prime search GenerateKey
// runs, never the prime itself.
var logger = logging.New(nil)

// KeyPair holds an RSA modulus and public exponent, plus the private
// exponent when available.
type KeyPair struct {
	N *bignum.BigInt
	E int64
	D *bignum.BigInt // nil for a public-key-only KeyPair
}

// GenerateKey searches for a new RSA key pair whose modulus is the product
// of two bits/2-bit primes, so it has 2*(bits/2)-1 or 2*(bits/2) bits, using
// randomness from src. The two prime
// searches run concurrently against src from separate goroutines, so src
// must be safe for concurrent Read calls (crypto/rand.Reader and
// bignum/rand.Deterministic both are).
func GenerateKey(ctx context.Context, bits int, src io.Reader) (*KeyPair, error) {
	if bits < 16 {
		return nil, ErrInvalidKey
	}
	half := bits / 2

	for {
		logger.Debug(ctx, "starting prime factor search", "bits", half)
		start := time.Now()

		var p, q *bignum.BigInt
		g, _ := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			p, err = bignum.GenPrime(half, src, bignum.GenPrimeOptions{})
			return err
		})
		g.Go(func() error {
			var err error
			q, err = bignum.GenPrime(half, src, bignum.GenPrimeOptions{})
			return err
		})
		if err := g.Wait(); err != nil {
			logger.Error(ctx, "prime factor search failed", "bits", half, "err", err)
			return nil, err
		}
		logger.Debug(ctx, "prime factor search complete", logging.Redacted("p"), logging.Redacted("q"), "bits", half, "duration", time.Since(start))

		if bignum.Cmp(p, q) == 0 {
			logger.Warn(ctx, "retrying key search: factors collided")
			continue
		}

		kp, err := fromFactors(p, q)
		if err == ErrInvalidKey {
			// e not coprime with this particular (p-1)(q-1); vanishingly
			// rare for random primes, but retry with a fresh pair rather
			// than fail the caller's request.
			logger.Warn(ctx, "retrying key search: public exponent not coprime with (p-1)(q-1)")
			continue
		}
		if err != nil {
			return nil, err
		}
		logger.Info(ctx, "generated RSA key", "bits", bits, "e", kp.E)
		return kp, nil
	}
}

func fromFactors(p, q *bignum.BigInt) (*KeyPair, error) {
	n := bignum.New()
	if _, err := n.Mul(p, q); err != nil {
		return nil, err
	}

	pMinus1 := bignum.New()
	if _, err := pMinus1.SubInt64(p, 1); err != nil {
		return nil, err
	}
	qMinus1 := bignum.New()
	if _, err := qMinus1.SubInt64(q, 1); err != nil {
		return nil, err
	}
	phi := bignum.New()
	if _, err := phi.Mul(pMinus1, qMinus1); err != nil {
		return nil, err
	}

	e := bignum.NewFromInt64(PublicExponent)
	g := bignum.New()
	if err := g.GCD(e, phi); err != nil {
		return nil, err
	}
	if g.CmpInt64(1) != 0 {
		return nil, ErrInvalidKey
	}

	d := bignum.New()
	if err := d.InvMod(e, phi); err != nil {
		return nil, ErrInvalidKey
	}

	return &KeyPair{N: n, E: PublicExponent, D: d}, nil
}

// FromPublicKey builds a public-key-only KeyPair from a big-endian modulus
// and a public exponent.
func FromPublicKey(n []byte, e int64) (*KeyPair, error) {
	N := bignum.New()
	if err := N.SetBytes(n); err != nil {
		return nil, err
	}
	if N.CmpInt64(1) <= 0 || e <= 1 {
		return nil, ErrInvalidKey
	}
	return &KeyPair{N: N, E: e}, nil
}

// FromPrivateKey builds a full KeyPair from big-endian p, q and a public
// exponent, deriving N and d. It returns ErrInvalidKey if e is not coprime
// with (p-1)(q-1).
func FromPrivateKey(p, q []byte, e int64) (*KeyPair, error) {
	P := bignum.New()
	if err := P.SetBytes(p); err != nil {
		return nil, err
	}
	Q := bignum.New()
	if err := Q.SetBytes(q); err != nil {
		return nil, err
	}
	kp, err := fromFactorsWithExponent(P, Q, e)
	if err != nil {
		return nil, err
	}
	return kp, nil
}

func fromFactorsWithExponent(p, q *bignum.BigInt, e int64) (*KeyPair, error) {
	n := bignum.New()
	if _, err := n.Mul(p, q); err != nil {
		return nil, err
	}
	pMinus1 := bignum.New()
	if _, err := pMinus1.SubInt64(p, 1); err != nil {
		return nil, err
	}
	qMinus1 := bignum.New()
	if _, err := qMinus1.SubInt64(q, 1); err != nil {
		return nil, err
	}
	phi := bignum.New()
	if _, err := phi.Mul(pMinus1, qMinus1); err != nil {
		return nil, err
	}
	eBig := bignum.NewFromInt64(e)
	g := bignum.New()
	if err := g.GCD(eBig, phi); err != nil {
		return nil, err
	}
	if g.CmpInt64(1) != 0 {
		return nil, ErrInvalidKey
	}
	d := bignum.New()
	if err := d.InvMod(eBig, phi); err != nil {
		return nil, ErrInvalidKey
	}
	return &KeyPair{N: n, E: e, D: d}, nil
}

// HasPrivateKey reports whether kp can decrypt and sign.
func (kp *KeyPair) HasPrivateKey() bool {
	return kp.D != nil
}

// Encrypt raises the big-endian message representative m (interpreted as an
// unsigned integer less than N) to the public power: c = m^e mod N.
func (kp *KeyPair) Encrypt(m []byte) ([]byte, error) {
	M := bignum.New()
	if err := M.SetBytes(m); err != nil {
		return nil, err
	}
	if bignum.Cmp(M, kp.N) >= 0 {
		return nil, ErrMessageTooLarge
	}
	eBig := bignum.NewFromInt64(kp.E)
	c := bignum.New()
	if err := c.ExpMod(M, eBig, kp.N); err != nil {
		return nil, err
	}
	return c.Bytes(), nil
}

// Decrypt raises the big-endian ciphertext c to the private power:
// m = c^d mod N. Requires a private key.
func (kp *KeyPair) Decrypt(c []byte) ([]byte, error) {
	if kp.D == nil {
		return nil, ErrNoPrivateKey
	}
	C := bignum.New()
	if err := C.SetBytes(c); err != nil {
		return nil, err
	}
	if bignum.Cmp(C, kp.N) >= 0 {
		return nil, ErrMessageTooLarge
	}
	m := bignum.New()
	if err := m.ExpMod(C, kp.D, kp.N); err != nil {
		return nil, err
	}
	return m.Bytes(), nil
}

// Sign raises the big-endian message representative m to the private
// power: s = m^d mod N. Requires a private key. Callers needing
// unforgeability against an adaptive adversary must hash-and-pad m before
// calling Sign (e.g. PSS); this primitive alone is not a secure signature
// scheme.
func (kp *KeyPair) Sign(m []byte) ([]byte, error) {
	if kp.D == nil {
		return nil, ErrNoPrivateKey
	}
	M := bignum.New()
	if err := M.SetBytes(m); err != nil {
		return nil, err
	}
	if bignum.Cmp(M, kp.N) >= 0 {
		return nil, ErrMessageTooLarge
	}
	s := bignum.New()
	if err := s.ExpMod(M, kp.D, kp.N); err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

// Verify checks that signature s is m^d mod N by raising s to the public
// power and comparing against m.
func (kp *KeyPair) Verify(m, s []byte) error {
	M := bignum.New()
	if err := M.SetBytes(m); err != nil {
		return err
	}
	S := bignum.New()
	if err := S.SetBytes(s); err != nil {
		return err
	}
	eBig := bignum.NewFromInt64(kp.E)
	check := bignum.New()
	if err := check.ExpMod(S, eBig, kp.N); err != nil {
		return err
	}
	if bignum.Cmp(check, M) != 0 {
		return ErrVerificationFailed
	}
	return nil
}
