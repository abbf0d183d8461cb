package paillier

import (
	"context"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vaultfold/bignum/pkg/bignum"
	"github.com/vaultfold/bignum/pkg/bignum/logging"
)

// logger logs the bit length and timing of each prime search Generate runs,
// never the prime itself.
var logger = logging.New(nil)

// Paillier represents a Paillier cryptosystem instance (public or private
// key).
//
// A Paillier instance can be created in three ways:
//   - Generate(): creates a new keypair (has both public and private key)
//   - FromPublicKey(): creates from modulus N only (public key only, can
//     encrypt and verify)
//   - FromPrivateKey(): creates from N, p, q (has a private key, can
//     decrypt)
type Paillier struct {
	n      *bignum.BigInt
	n2     *bignum.BigInt
	lambda *bignum.BigInt // nil for a public-key-only instance
	mu     *bignum.BigInt // nil for a public-key-only instance
	factors [2]*bignum.BigInt // [p, q], retained so Serialize can round-trip a private key
	closed bool
}

// Generate creates a new Paillier keypair whose modulus is the product of
// two bits/2-bit primes, so it has 2*(bits/2)-1 or 2*(bits/2) bits, drawing randomness
// from src. The two prime searches run concurrently against src from
// separate goroutines, the same way rsa.GenerateKey does; src must
// therefore be safe for concurrent Read calls (crypto/rand.Reader and
// bignum/rand.Deterministic both are).
func Generate(bits int, src io.Reader) (*Paillier, error) {
	if bits < 16 {
		return nil, ErrInvalidKey
	}
	half := bits / 2
	ctx := context.Background()

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
		if err != nil {
			return nil, err
		}
		logger.Info(ctx, "generated Paillier key", "bits", bits)
		return kp, nil
	}
}

// fromFactors builds a Paillier private key from two distinct primes.
func fromFactors(p, q *bignum.BigInt) (*Paillier, error) {
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

	g := bignum.New()
	if err := g.GCD(pMinus1, qMinus1); err != nil {
		return nil, err
	}
	prod := bignum.New()
	if _, err := prod.Mul(pMinus1, qMinus1); err != nil {
		return nil, err
	}
	lambda := bignum.New()
	if err := bignum.Div(lambda, nil, prod, g); err != nil {
		return nil, err
	}

	lambdaModN := bignum.New()
	if err := lambdaModN.Mod(lambda, n); err != nil {
		return nil, err
	}
	mu := bignum.New()
	if err := mu.InvMod(lambdaModN, n); err != nil {
		return nil, ErrInvalidKey
	}

	n2 := bignum.New()
	if _, err := n2.Mul(n, n); err != nil {
		return nil, err
	}

	return &Paillier{n: n, n2: n2, lambda: lambda, mu: mu, factors: [2]*bignum.BigInt{p.Clone(), q.Clone()}}, nil
}

// FromPublicKey creates a Paillier instance from a public key (big-endian
// modulus n). The returned instance can encrypt and verify ciphertexts but
// cannot decrypt.
func FromPublicKey(n []byte) (*Paillier, error) {
	N := bignum.New()
	if err := N.SetBytes(n); err != nil {
		return nil, err
	}
	if N.CmpInt64(1) <= 0 || N.Bit(0) == 0 {
		return nil, ErrInvalidKey
	}
	n2 := bignum.New()
	if _, err := n2.Mul(N, N); err != nil {
		return nil, err
	}
	return &Paillier{n: N, n2: n2}, nil
}

// FromPrivateKey creates a Paillier instance from big-endian n, p, q. The
// returned instance can perform all operations including decryption. It
// returns ErrInvalidKey if p*q != n.
func FromPrivateKey(n, p, q []byte) (*Paillier, error) {
	N := bignum.New()
	if err := N.SetBytes(n); err != nil {
		return nil, err
	}
	P := bignum.New()
	if err := P.SetBytes(p); err != nil {
		return nil, err
	}
	Q := bignum.New()
	if err := Q.SetBytes(q); err != nil {
		return nil, err
	}
	check := bignum.New()
	if _, err := check.Mul(P, Q); err != nil {
		return nil, err
	}
	if bignum.Cmp(check, N) != 0 {
		return nil, ErrInvalidKey
	}
	return fromFactors(P, Q)
}

// Close zeroizes the private components of p (lambda and mu). After Close,
// any operation requiring a private key returns ErrClosed. A public-key-only
// instance has nothing to zeroize.
func (p *Paillier) Close() {
	if p.lambda != nil {
		p.lambda.Free()
		p.lambda = nil
	}
	if p.mu != nil {
		p.mu.Free()
		p.mu = nil
	}
	if p.factors[0] != nil {
		p.factors[0].Free()
		p.factors[1].Free()
		p.factors[0], p.factors[1] = nil, nil
	}
	p.closed = true
}

// HasPrivateKey reports whether p can decrypt.
func (p *Paillier) HasPrivateKey() bool {
	return p.lambda != nil && p.mu != nil
}

// GetN returns the big-endian modulus N of the Paillier key.
func (p *Paillier) GetN() []byte {
	return p.n.Bytes()
}

// Encrypt encrypts plaintext (a big-endian unsigned integer, which must be
// less than N) using randomness from src, and returns the big-endian
// ciphertext c = (1+N)^m * r^N mod N^2.
func (p *Paillier) Encrypt(plaintext []byte, src io.Reader) ([]byte, error) {
	if p.closed {
		return nil, ErrClosed
	}
	m := bignum.New()
	if err := m.SetBytes(plaintext); err != nil {
		return nil, err
	}
	if bignum.Cmp(m, p.n) >= 0 {
		return nil, ErrPlaintextTooLarge
	}

	r, err := p.randomUnit(src)
	if err != nil {
		return nil, err
	}

	// gN = (1 + m*N) mod N^2, the simplified encryption of m under
	// generator g = N+1.
	mN := bignum.New()
	if _, err := mN.Mul(m, p.n); err != nil {
		return nil, err
	}
	gN := bignum.New()
	if _, err := gN.AddInt64(mN, 1); err != nil {
		return nil, err
	}
	if err := gN.Mod(gN, p.n2); err != nil {
		return nil, err
	}

	rN := bignum.New()
	if err := rN.ExpMod(r, p.n, p.n2); err != nil {
		return nil, err
	}

	c := bignum.New()
	if _, err := c.Mul(gN, rN); err != nil {
		return nil, err
	}
	if err := c.Mod(c, p.n2); err != nil {
		return nil, err
	}
	return c.Bytes(), nil
}

// Decrypt decrypts a big-endian ciphertext and returns the big-endian
// plaintext. Requires a private key.
func (p *Paillier) Decrypt(ciphertext []byte) ([]byte, error) {
	if p.closed {
		return nil, ErrClosed
	}
	if !p.HasPrivateKey() {
		return nil, ErrNoPrivateKey
	}

	c := bignum.New()
	if err := c.SetBytes(ciphertext); err != nil {
		return nil, err
	}
	if c.Sign() <= 0 || bignum.Cmp(c, p.n2) >= 0 {
		return nil, ErrInvalidCiphertext
	}

	u := bignum.New()
	if err := u.ExpMod(c, p.lambda, p.n2); err != nil {
		return nil, err
	}
	l, err := p.lFunction(u)
	if err != nil {
		return nil, err
	}
	m := bignum.New()
	if _, err := m.Mul(l, p.mu); err != nil {
		return nil, err
	}
	if err := m.Mod(m, p.n); err != nil {
		return nil, err
	}
	return m.Bytes(), nil
}

// lFunction computes L(x) = (x-1)/N, mbedtls-style truncated integer
// division; x is required to be congruent to 1 mod N (the decryption
// exponentiation guarantees this for a valid ciphertext).
func (p *Paillier) lFunction(x *bignum.BigInt) (*bignum.BigInt, error) {
	num := bignum.New()
	if _, err := num.SubInt64(x, 1); err != nil {
		return nil, err
	}
	q := bignum.New()
	if err := bignum.Div(q, nil, num, p.n); err != nil {
		return nil, err
	}
	return q, nil
}

// AddCiphers homomorphically adds two ciphertexts: the result decrypts to
// plaintext1 + plaintext2 (mod N).
func (p *Paillier) AddCiphers(c1, c2 []byte) ([]byte, error) {
	if p.closed {
		return nil, ErrClosed
	}
	a := bignum.New()
	if err := a.SetBytes(c1); err != nil {
		return nil, err
	}
	b := bignum.New()
	if err := b.SetBytes(c2); err != nil {
		return nil, err
	}
	if a.Sign() <= 0 || bignum.Cmp(a, p.n2) >= 0 || b.Sign() <= 0 || bignum.Cmp(b, p.n2) >= 0 {
		return nil, ErrInvalidCiphertext
	}
	out := bignum.New()
	if _, err := out.Mul(a, b); err != nil {
		return nil, err
	}
	if err := out.Mod(out, p.n2); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// MulScalar homomorphically multiplies a ciphertext by a scalar: the result
// decrypts to plaintext * scalar (mod N).
func (p *Paillier) MulScalar(ciphertext, scalar []byte) ([]byte, error) {
	if p.closed {
		return nil, ErrClosed
	}
	c := bignum.New()
	if err := c.SetBytes(ciphertext); err != nil {
		return nil, err
	}
	if c.Sign() <= 0 || bignum.Cmp(c, p.n2) >= 0 {
		return nil, ErrInvalidCiphertext
	}
	k := bignum.New()
	if err := k.SetBytes(scalar); err != nil {
		return nil, err
	}
	out := bignum.New()
	if err := out.ExpMod(c, k, p.n2); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// VerifyCipher verifies that ciphertext is well-formed for this key: it
// must lie in [1, N^2) and be a unit modulo N^2 (gcd(c, N^2) == 1).
func (p *Paillier) VerifyCipher(ciphertext []byte) error {
	if p.closed {
		return ErrClosed
	}
	c := bignum.New()
	if err := c.SetBytes(ciphertext); err != nil {
		return err
	}
	if c.Sign() <= 0 || bignum.Cmp(c, p.n2) >= 0 {
		return ErrInvalidCiphertext
	}
	g := bignum.New()
	if err := g.GCD(c, p.n2); err != nil {
		return err
	}
	if g.CmpInt64(1) != 0 {
		return ErrInvalidCiphertext
	}
	return nil
}

// randomUnit draws a random element of [1, N) that is coprime with N (a
// random byte string as long as N, reduced mod N, so not exactly uniform),
// retrying on collision with a factor of N (astronomically
// unlikely for cryptographic-size N, but checked rather than assumed).
func (p *Paillier) randomUnit(src io.Reader) (*bignum.BigInt, error) {
	byteLen := len(p.n.Bytes())
	for {
		r := bignum.New()
		if err := r.FillRandom(src, byteLen); err != nil {
			return nil, err
		}
		if err := r.Mod(r, p.n); err != nil {
			return nil, err
		}
		if r.IsZero() {
			continue
		}
		g := bignum.New()
		if err := g.GCD(r, p.n); err != nil {
			return nil, err
		}
		if g.CmpInt64(1) == 0 {
			return r, nil
		}
	}
}
